package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/dll/ierrors"
)

var errUnsupportedProviderMethod = ierrors.New("pflag provider does not support this method")

// lowerPosflag implements a pflag command line provider that lower cases all flag names.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns
// a nested map[string]interface{} of the flags where the nesting hierarchy
// of keys is defined by delim. For instance, the delim "." will convert
// the flag `parent.child.key` to `{parent: {child: {key: ...}}}`.
//
// The Koanf instance is used to see if the flags have been set by other
// providers already (a config file for example). If they are not, the
// default values of the flags are merged. If they exist, only the values
// that have been explicitly set on the command line are merged.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)

		// defaults never override values of other providers
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		mp[key] = p.value(f)
	})

	return maps.Unflatten(mp, p.delim), nil
}

func (p *lowerPosflag) value(f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "int":
		i, _ := p.flagset.GetInt(f.Name)
		return int64(i)
	case "int32":
		i, _ := p.flagset.GetInt32(f.Name)
		return int64(i)
	case "int64":
		i, _ := p.flagset.GetInt64(f.Name)
		return i
	case "uint":
		i, _ := p.flagset.GetUint(f.Name)
		return uint64(i)
	case "uint64":
		i, _ := p.flagset.GetUint64(f.Name)
		return i
	case "float64":
		v, _ := p.flagset.GetFloat64(f.Name)
		return v
	case "bool":
		v, _ := p.flagset.GetBool(f.Name)
		return v
	case "stringSlice":
		v, _ := p.flagset.GetStringSlice(f.Name)
		return v
	case "intSlice":
		v, _ := p.flagset.GetIntSlice(f.Name)
		return v
	default:
		return f.Value.String()
	}
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, errUnsupportedProviderMethod
}

// Watch is not supported.
func (p *lowerPosflag) Watch(cb func(event interface{}, err error)) error {
	return errUnsupportedProviderMethod
}

package configuration

import (
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/dll/ierrors"
)

// ErrUnsupportedParameterType is returned if a field of a parameter struct has a type that can not be bound to a flag.
var ErrUnsupportedParameterType = ierrors.New("unsupported parameter type")

// BindParameters defines a flag in the given FlagSet for every field of the struct pointerToStruct points to and binds
// the field to it.
//
// The flag names are the lower camel cased field names prefixed with the namespace, a name tag overrides the field
// name. The default value is the current value of the field unless a default tag is given. The usage tag becomes the
// help text and a shorthand tag the one-letter shorthand.
//
// Nested structs are translated to nested flag names: --namespace.level1.parameterName
func BindParameters(flagSet *flag.FlagSet, namespace string, pointerToStruct interface{}) error {
	val := reflect.ValueOf(pointerToStruct)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return ierrors.Errorf("parameters of namespace %s must be a pointer to a struct but are %T", namespace, pointerToStruct)
	}

	val = val.Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		if !typeField.IsExported() {
			continue
		}

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += lowerCamelCase(typeField.Name)
		}

		if err := bindParameter(flagSet, name, valueField, typeField.Tag); err != nil {
			return ierrors.Wrapf(err, "unable to bind parameter %s", name)
		}
	}

	return nil
}

func bindParameter(flagSet *flag.FlagSet, name string, valueField reflect.Value, tag reflect.StructTag) (err error) {
	tagDefaultValue, hasDefault := tag.Lookup("default")
	shortHand := tag.Get("shorthand")
	usage := tag.Get("usage")

	switch defaultValue := valueField.Interface().(type) {
	case bool:
		if hasDefault {
			if defaultValue, err = cast.ToBoolE(tagDefaultValue); err != nil {
				return err
			}
		}
		flagSet.BoolVarP(valueField.Addr().Interface().(*bool), name, shortHand, defaultValue, usage)

	case time.Duration:
		if hasDefault {
			if defaultValue, err = cast.ToDurationE(tagDefaultValue); err != nil {
				return err
			}
		}
		flagSet.DurationVarP(valueField.Addr().Interface().(*time.Duration), name, shortHand, defaultValue, usage)

	case int:
		if hasDefault {
			if defaultValue, err = cast.ToIntE(tagDefaultValue); err != nil {
				return err
			}
		}
		flagSet.IntVarP(valueField.Addr().Interface().(*int), name, shortHand, defaultValue, usage)

	case int64:
		if hasDefault {
			if defaultValue, err = cast.ToInt64E(tagDefaultValue); err != nil {
				return err
			}
		}
		flagSet.Int64VarP(valueField.Addr().Interface().(*int64), name, shortHand, defaultValue, usage)

	case uint64:
		if hasDefault {
			if defaultValue, err = cast.ToUint64E(tagDefaultValue); err != nil {
				return err
			}
		}
		flagSet.Uint64VarP(valueField.Addr().Interface().(*uint64), name, shortHand, defaultValue, usage)

	case float64:
		if hasDefault {
			if defaultValue, err = cast.ToFloat64E(tagDefaultValue); err != nil {
				return err
			}
		}
		flagSet.Float64VarP(valueField.Addr().Interface().(*float64), name, shortHand, defaultValue, usage)

	case string:
		if hasDefault {
			defaultValue = tagDefaultValue
		}
		flagSet.StringVarP(valueField.Addr().Interface().(*string), name, shortHand, defaultValue, usage)

	case []string:
		if hasDefault {
			defaultValue = strings.Split(tagDefaultValue, ",")
		}
		flagSet.StringSliceVarP(valueField.Addr().Interface().(*[]string), name, shortHand, defaultValue, usage)

	default:
		if valueField.Kind() != reflect.Struct {
			return ierrors.Wrapf(ErrUnsupportedParameterType, "%s", valueField.Type())
		}

		return BindParameters(flagSet, name, valueField.Addr().Interface())
	}

	return nil
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	// lower the leading acronym but keep the first letter of the next word
	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

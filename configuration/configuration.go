package configuration

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/dll/ierrors"
)

var (
	// ErrConfigDoesNotExist is returned if the config file is unknown.
	ErrConfigDoesNotExist = ierrors.New("config does not exist")
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
// All keys are lower cased.
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadDefaults merges the given flat map of dotted keys into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadDefaults(defaults map[string]interface{}) error {
	lowered := make(map[string]interface{}, len(defaults))
	for key, value := range defaults {
		lowered[strings.ToLower(key)] = value
	}

	return c.config.Load(confmap.Provider(lowered, "."), nil)
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		if os.IsNotExist(err) {
			return ierrors.Wrapf(ErrConfigDoesNotExist, "file %s", filePath)
		}

		return ierrors.Wrapf(err, "unable to access config file %s", filePath)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		parser = JSONLowerParser("")
	case ".yaml", ".yml":
		parser = YAMLLowerParser()
	default:
		return ierrors.Wrapf(ErrUnknownConfigFormat, "file %s", filePath)
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Unmarshal decodes the sub-tree below path into the struct out points to. The json tags of the struct are used as
// field names and string values are converted to the type of the field.
func (c *Configuration) Unmarshal(path string, out interface{}) error {
	if err := c.config.UnmarshalWithConf(strings.ToLower(path), out, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return ierrors.Wrapf(err, "unable to unmarshal %q", path)
	}

	return nil
}

// Dump returns the loaded config as indented JSON. The keys in ignoredKeys are left out.
func (c *Configuration) Dump(ignoredKeys ...string) ([]byte, error) {
	settings := c.config.Raw()
	for _, ignoredKey := range ignoredKeys {
		deleteKey(settings, strings.Split(strings.ToLower(ignoredKey), "."))
	}

	return JSONLowerParser("  ").Marshal(settings)
}

// Exists returns true if the given key is set.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// All returns the flattened config map.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Bool returns the bool value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// Int64 returns the int64 value of the given key.
func (c *Configuration) Int64(key string) int64 {
	return c.config.Int64(strings.ToLower(key))
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Strings returns the string slice value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

func deleteKey(settings map[string]interface{}, path []string) {
	if len(path) == 1 {
		delete(settings, path[0])

		return
	}

	if nested, isMap := settings[path[0]].(map[string]interface{}); isMap {
		deleteKey(nested, path[1:])
	}
}

package configuration

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/dll/ierrors"
)

// lowerKeys rewrites every key of m, including the keys of nested maps, to lower case. YAML decodes nested maps with
// interface keys, those are converted to string keyed maps on the way.
func lowerKeys(m map[string]interface{}) {
	for key, value := range m {
		if nested, isMap := value.(map[interface{}]interface{}); isMap {
			value = cast.ToStringMap(nested)
		}

		if nested, isMap := value.(map[string]interface{}); isMap {
			lowerKeys(nested)
		}

		delete(m, key)
		m[strings.ToLower(key)] = value
	}
}

// LowerParser is a koanf.Parser that lower cases all keys it reads.
type LowerParser struct {
	format    string
	unmarshal func([]byte, interface{}) error
	marshal   func(interface{}) ([]byte, error)
}

// Unmarshal decodes b into a map with lower cased keys.
func (p *LowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := p.unmarshal(b, &out); err != nil {
		return nil, ierrors.Wrapf(err, "invalid %s", p.format)
	}

	lowerKeys(out)

	return out, nil
}

// Marshal encodes the config map.
func (p *LowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return p.marshal(o)
}

// JSONLowerParser returns a parser for JSON. A non-empty indent produces indented output.
func JSONLowerParser(indent string) *LowerParser {
	return &LowerParser{
		format:    "JSON",
		unmarshal: json.Unmarshal,
		marshal: func(v interface{}) ([]byte, error) {
			if indent == "" {
				return json.Marshal(v)
			}

			return json.MarshalIndent(v, "", indent)
		},
	}
}

// YAMLLowerParser returns a parser for YAML.
func YAMLLowerParser() *LowerParser {
	return &LowerParser{
		format:    "YAML",
		unmarshal: yaml.Unmarshal,
		marshal:   yaml.Marshal,
	}
}

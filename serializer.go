package cache

import (
	"encoding/json"
	"encoding/xml"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Serializer converts values to and from their stored representation. The
// cache is format-agnostic: any encoding that round-trips the value type
// works, as long as the same serializer reads the files it wrote.
type Serializer interface {
	// Encode renders v for storage.
	Encode(v any) ([]byte, error)

	// Decode parses data produced by Encode into v, which must be a
	// non-nil pointer.
	Decode(data []byte, v any) error

	// Format names the encoding, e.g. "json". Resolvers conventionally
	// use it as the object file's extension.
	Format() string
}

// JSONSerializer stores objects as indented JSON. It is the default.
type JSONSerializer struct{}

func (JSONSerializer) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSONSerializer) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSONSerializer) Format() string { return "json" }

// XMLSerializer stores objects as indented XML.
type XMLSerializer struct{}

func (XMLSerializer) Encode(v any) ([]byte, error) {
	return xml.MarshalIndent(v, "", "  ")
}

func (XMLSerializer) Decode(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

func (XMLSerializer) Format() string { return "xml" }

// YAMLSerializer stores objects as YAML.
type YAMLSerializer struct{}

func (YAMLSerializer) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAMLSerializer) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAMLSerializer) Format() string { return "yaml" }

// TOMLSerializer stores objects as TOML.
type TOMLSerializer struct{}

func (TOMLSerializer) Encode(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (TOMLSerializer) Decode(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

func (TOMLSerializer) Format() string { return "toml" }

// Compile-time interface checks.
var (
	_ Serializer = JSONSerializer{}
	_ Serializer = XMLSerializer{}
	_ Serializer = YAMLSerializer{}
	_ Serializer = TOMLSerializer{}
)

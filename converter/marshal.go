package converter

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MarshalJSONIndent encodes the converted metadata as indented JSON. Object keys
// are written in sorted order.
func (r *ConversionResult) MarshalJSONIndent(prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(r.Metadata, prefix, indent)
}

// MarshalYAML encodes the converted metadata as YAML.
func (r *ConversionResult) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(r.Metadata)
}

// Marshal encodes the converted metadata in the given format ("json" or "yaml").
func (r *ConversionResult) Marshal(format string) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatJSON:
		data, err = r.MarshalJSONIndent("", "  ")
	case FormatYAML:
		data, err = r.MarshalYAML()
	default:
		return nil, fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return data, nil
}

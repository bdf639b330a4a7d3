package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseDocument decodes a persisted schema document. JSON and YAML payloads
// are both accepted; the format is detected from the payload itself so
// callers do not need to track file extensions.
func ParseDocument(data []byte) (FormSchema, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormSchema{}, errors.New("schema: document payload is empty")
	}

	var (
		out FormSchema
		err error
	)
	if trimmed[0] == '{' {
		if err = json.Unmarshal(trimmed, &out); err != nil {
			return FormSchema{}, fmt.Errorf("schema: decode json document: %w", err)
		}
	} else {
		if out, err = parseYAMLDocument(trimmed); err != nil {
			return FormSchema{}, err
		}
	}

	if err := out.Validate(); err != nil {
		return FormSchema{}, err
	}
	return out, nil
}

// MarshalJSONDocument encodes the schema in the external interchange shape:
// {title, elements:[{id, type, name?, component, props, validationRules}]}.
// The output round-trips through ParseDocument losslessly.
func (s FormSchema) MarshalJSONDocument() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: encode json document: %w", err)
	}
	return data, nil
}

// MarshalYAMLDocument encodes the schema as YAML using the same key names as
// the JSON document shape.
func (s FormSchema) MarshalYAMLDocument() ([]byte, error) {
	// Route through JSON so the canonical json tags drive the YAML keys
	// instead of Go field names.
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("schema: encode document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("schema: encode document: %w", err)
	}
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("schema: encode yaml document: %w", err)
	}
	return data, nil
}

func parseYAMLDocument(data []byte) (FormSchema, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return FormSchema{}, fmt.Errorf("schema: decode yaml document: %w", err)
	}

	// Normalise through JSON so both formats share one field mapping.
	raw, err := json.Marshal(tree)
	if err != nil {
		return FormSchema{}, fmt.Errorf("schema: decode yaml document: %w", err)
	}
	var out FormSchema
	if err := json.Unmarshal(raw, &out); err != nil {
		return FormSchema{}, fmt.Errorf("schema: decode yaml document: %w", err)
	}
	return out, nil
}

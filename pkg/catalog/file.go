package catalog

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// File is the YAML document accepted by Import tooling:
//
//	tools:
//	  - name: GPT Helper
//	    description: Drafts replies
//	    price_id: price_123
type File struct {
	Tools []Tool `yaml:"tools"`
}

var toolFields = map[string]bool{"name": true, "description": true, "price_id": true, "is_active": true}

// UnmarshalYAML decodes a catalog file entry. is_active defaults to true.
func (t *Tool) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			if key := value.Content[i]; !toolFields[key.Value] {
				return fmt.Errorf("line %d: unknown tool field %q", key.Line, key.Value)
			}
		}
	}

	type plain Tool
	p := plain{IsActive: true}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = Tool(p)
	return nil
}

// ParseFile reads a catalog file. Unknown keys are rejected so typos in
// field names do not silently drop data.
func ParseFile(r io.Reader) ([]Tool, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []Tool{}, nil
		}
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}
	if f.Tools == nil {
		f.Tools = []Tool{}
	}
	return f.Tools, nil
}

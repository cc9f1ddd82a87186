package vfs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a mapping into a Directory, keeping the key order of
// the document as the insertion order of the tree.
//
// A scalar value becomes a File with that content, as does a mapping whose
// only key is "content". Any other mapping is a subdirectory and a null value
// is an empty directory.
func (d *Directory) UnmarshalYAML(value *yaml.Node) error {
	decoded, err := decodeDirectory(value)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

func decodeNode(value *yaml.Node) (Node, error) {
	switch value.Kind {
	case yaml.AliasNode:
		return decodeNode(value.Alias)
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return NewDirectory(), nil
		}
		return NewFile(value.Value), nil
	case yaml.MappingNode:
		if isFileMapping(value) {
			return NewFile(value.Content[1].Value), nil
		}
		return decodeDirectory(value)
	default:
		return nil, fmt.Errorf("line %d: expected a mapping or a scalar", value.Line)
	}
}

func isFileMapping(value *yaml.Node) bool {
	return len(value.Content) == 2 &&
		value.Content[0].Value == "content" &&
		value.Content[1].Kind == yaml.ScalarNode &&
		value.Content[1].Tag != "!!null"
}

func decodeDirectory(value *yaml.Node) (*Directory, error) {
	if value.Kind == yaml.AliasNode {
		return decodeDirectory(value.Alias)
	}
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return NewDirectory(), nil
	}
	if value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a directory mapping", value.Line)
	}

	entries := make([]Entry, 0, len(value.Content)/2)
	seen := make(map[string]bool, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if err := validateName(key.Value); err != nil {
			return nil, fmt.Errorf("line %d: %w", key.Line, err)
		}
		if seen[key.Value] {
			return nil, fmt.Errorf("line %d: duplicate name %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		node, err := decodeNode(val)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: key.Value, Node: node})
	}

	return NewDirectory(entries...), nil
}

func validateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("invalid name %q", name)
	case strings.Contains(name, "/"):
		return fmt.Errorf("invalid name %q: names cannot contain '/'", name)
	}
	return nil
}

package grammar

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML grammar spec.
// Unknown fields are rejected so typos like `precendence:` surface early.
func ParseYAML(data []byte) (*Spec, error) {
	var spec Spec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Second pass over the node tree for operator line numbers.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err == nil {
		for i, line := range operatorLines(&doc) {
			if i < len(spec.Operators) {
				spec.Operators[i].Line = line
			}
		}
	}

	return &spec, nil
}

// LoadYAML reads and decodes a YAML grammar file, then builds its table.
func LoadYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grammar file: %w", err)
	}
	spec, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return NewTable(spec)
}

// operatorLines returns the line of each item of the top-level operators list.
func operatorLines(doc *yaml.Node) []int {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "operators" {
			continue
		}
		list := root.Content[i+1]
		if list.Kind != yaml.SequenceNode {
			return nil
		}
		lines := make([]int, len(list.Content))
		for j, item := range list.Content {
			lines[j] = item.Line
		}
		return lines
	}
	return nil
}

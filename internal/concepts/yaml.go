package concepts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// libraryFile is the YAML shape operators edit: a flat concept list.
type libraryFile struct {
	Concepts []Concept `yaml:"concepts"`
}

// LoadLibraryFile merges concepts from a YAML file into base. A file
// concept whose id already exists replaces the builtin one.
func LoadLibraryFile(base []Concept, path string) ([]Concept, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read concept file: %w", err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse concept file: %w", err)
	}

	byID := make(map[string]int, len(base))
	merged := append([]Concept{}, base...)
	for i, c := range merged {
		byID[c.ID] = i
	}
	for _, c := range file.Concepts {
		if c.ID == "" || len(c.Templates) == 0 {
			return nil, fmt.Errorf("concept entry missing id or templates: %+v", c)
		}
		if idx, ok := byID[c.ID]; ok {
			merged[idx] = c
			continue
		}
		byID[c.ID] = len(merged)
		merged = append(merged, c)
	}
	return merged, nil
}

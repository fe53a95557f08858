// Package levelpack loads named collections of Sokoban levels from a YAML
// manifest, the config format benchmarking and batch-solving tools read
// instead of one level file at a time.
package levelpack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Level is a single named level, its rows in the standard Sokoban
// character grid (spec.md §6).
type Level struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Pack is an ordered collection of levels sharing a pack name, e.g. a
// microban or classic collection.
type Pack struct {
	Name   string  `yaml:"name"`
	Levels []Level `yaml:"levels"`
}

// Load reads and decodes a level pack manifest from path.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levelpack: read %s: %w", path, err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("levelpack: parse %s: %w", path, err)
	}
	if len(pack.Levels) == 0 {
		return nil, fmt.Errorf("levelpack: %s declares no levels", path)
	}
	for i, lvl := range pack.Levels {
		if len(lvl.Rows) == 0 {
			return nil, fmt.Errorf("levelpack: %s: level %d (%q) has no rows", path, i, lvl.Name)
		}
	}
	return &pack, nil
}

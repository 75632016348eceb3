package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/voodooEntity/archivist"
	"gopkg.in/yaml.v3"
)

// YAMLFile is the YAML-serialized counterpart to JSONFile, grounded on
// the teacher's production.YAMLPersister and using the same yaml.v3
// dependency.
type YAMLFile[T any] struct {
	dir string
	log *archivist.Archivist
}

// NewYAMLFile creates a YAMLFile backend rooted at dir, creating it if
// necessary.
func NewYAMLFile[T any](dir string, log *archivist.Archivist) (*YAMLFile[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("settings: mkdir %s: %w", dir, err)
	}
	return &YAMLFile[T]{dir: dir, log: log}, nil
}

// RegisterSetting reads dir/id.yaml, falling back to initial on any read
// or decode failure, then calls setter.
func (b *YAMLFile[T]) RegisterSetting(id string, initial T, setter func(T)) error {
	fn := filepath.Join(b.dir, id+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		logFallback(b.log, id, err)
		setter(initial)
		return nil
	}

	var v T
	if err := yaml.Unmarshal(data, &v); err != nil {
		logFallback(b.log, id, err)
		setter(initial)
		return nil
	}

	setter(v)
	return nil
}

// Persist writes v to dir/id.yaml.
func (b *YAMLFile[T]) Persist(id string, v T) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: yaml marshal %s: %w", id, err)
	}
	fn := filepath.Join(b.dir, id+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", fn, err)
	}
	return nil
}

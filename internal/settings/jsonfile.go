package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/voodooEntity/archivist"
)

// JSONFile is a settings backend keyed by a directory of one JSON file
// per id, grounded on the teacher's production.JSONPersister. On decode
// failure — missing file, malformed JSON — RegisterSetting falls back to
// initial silently (spec.md §7 SettingsDecode) rather than failing.
type JSONFile[T any] struct {
	dir string
	log *archivist.Archivist
}

// NewJSONFile creates a JSONFile backend rooted at dir, creating it if
// necessary.
func NewJSONFile[T any](dir string, log *archivist.Archivist) (*JSONFile[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("settings: mkdir %s: %w", dir, err)
	}
	return &JSONFile[T]{dir: dir, log: log}, nil
}

// RegisterSetting reads dir/id.json, falling back to initial on any
// read or decode failure, then calls setter.
func (b *JSONFile[T]) RegisterSetting(id string, initial T, setter func(T)) error {
	fn := filepath.Join(b.dir, id+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		logFallback(b.log, id, err)
		setter(initial)
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logFallback(b.log, id, err)
		setter(initial)
		return nil
	}

	setter(v)
	return nil
}

// Persist writes v to dir/id.json, for settings a caller wants durably
// recorded rather than merely read back on the next RegisterSetting.
func (b *JSONFile[T]) Persist(id string, v T) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: json marshal %s: %w", id, err)
	}
	fn := filepath.Join(b.dir, id+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", fn, err)
	}
	return nil
}

// Package settings implements the settings backend collaborator
// (component H): a single-method interface, per spec.md §6, with const,
// JSON-file, YAML-file, and Bolt-backed implementations. Grounded in the
// teacher's internal/production file persisters (JSONPersister,
// YAMLPersister) for the file-backend shape, extended with a durable
// go.etcd.io/bbolt backend the rest of the example pack carries.
package settings

import (
	"fmt"

	"github.com/voodooEntity/archivist"
)

// Backend is the settings collaborator from spec.md §6, generalised over
// the value type the way flexcore's ports are: RegisterSetting must
// invoke setter at least once — with either initial or a value
// deserialised from the backend's store — before returning. A backend
// that fails to deserialize falls back to initial silently (spec.md §7's
// SettingsDecode), optionally logging the failure at debug level if a
// logger was configured.
type Backend[T any] interface {
	RegisterSetting(id string, initial T, setter func(T)) error
}

// Const echoes initial for every id, never persisting anything. The
// reference "no-op" backend spec.md §6 calls out for tests.
type Const[T any] struct{}

// RegisterSetting calls setter with initial unconditionally.
func (Const[T]) RegisterSetting(id string, initial T, setter func(T)) error {
	setter(initial)
	return nil
}

// logFallback reports a SettingsDecode fallback at debug level if log is
// non-nil; left nil, the fallback is silent, per spec.md §7.
func logFallback(log *archivist.Archivist, id string, err error) {
	if log != nil {
		log.Debug(archivist.DEBUG_LEVEL_DETAIL, fmt.Sprintf("settings: id=%s decode failed, falling back to initial: %v", id, err))
	}
}

package settings

import (
	"encoding/json"
	"fmt"

	"github.com/voodooEntity/archivist"
	bolt "go.etcd.io/bbolt"
)

var settingsBucket = []byte("settings")

// Bolt is a durable settings backend backed by a single go.etcd.io/bbolt
// file, one key per id holding its JSON-encoded value. Unlike JSONFile
// and YAMLFile, writes through Persist are transactional and survive a
// process crash mid-write — the property bbolt exists to provide, which
// the file backends (plain os.WriteFile) do not.
type Bolt[T any] struct {
	db  *bolt.DB
	log *archivist.Archivist
}

// NewBolt opens (creating if absent) a bbolt database at path and ensures
// the settings bucket exists.
func NewBolt[T any](path string, log *archivist.Archivist) (*Bolt[T], error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("settings: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(settingsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("settings: init bucket: %w", err)
	}
	return &Bolt[T]{db: db, log: log}, nil
}

// Close closes the underlying database.
func (b *Bolt[T]) Close() error { return b.db.Close() }

// RegisterSetting reads id's value from the settings bucket, falling
// back to initial on a missing key or decode failure, then calls setter.
func (b *Bolt[T]) RegisterSetting(id string, initial T, setter func(T)) error {
	var v T
	found := false

	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(settingsBucket).Get([]byte(id))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		found = true
		return nil
	})

	if err != nil {
		logFallback(b.log, id, err)
		setter(initial)
		return nil
	}
	if !found {
		setter(initial)
		return nil
	}
	setter(v)
	return nil
}

// Persist durably writes v under id in a single bbolt transaction.
func (b *Bolt[T]) Persist(id string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("settings: json marshal %s: %w", id, err)
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(settingsBucket).Put([]byte(id), data)
	})
}

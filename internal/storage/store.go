// Package storage provides the key-value store the repositories persist
// through. Values are whole entity collections serialized as JSON; reads
// are lenient, so a missing or unreadable value is treated as absent.
package storage

import (
	"crypto/rand"
	"encoding/json"
	"strconv"
	"time"
)

// Collection keys. Each key holds the full ordered collection of one
// entity's records.
const (
	KeyBooks      = "library_books"
	KeyAuthors    = "library_authors"
	KeyMembers    = "library_members"
	KeyLoans      = "library_loans"
	KeyCategories = "library_categories"
)

// CollectionKeys lists every collection the store manages.
func CollectionKeys() []string {
	return []string{KeyBooks, KeyAuthors, KeyMembers, KeyLoans, KeyCategories}
}

// Store is the persistence contract. Get reports absence instead of
// failing; Set and Remove surface their errors to the caller.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Remove(key string) error
	Ping() error
	Close() error
}

// InitDefaults creates every collection that does not exist yet as an
// empty list. Safe to call repeatedly.
func InitDefaults(store Store) error {
	for _, key := range CollectionKeys() {
		if _, ok := store.Get(key); ok {
			continue
		}
		if err := store.Set(key, []byte("[]")); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll removes every collection.
func ClearAll(store Store) error {
	for _, key := range CollectionKeys() {
		if err := store.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// ReadCollection unmarshals the collection under key. Absent or corrupt
// data yields an empty collection, never an error.
func ReadCollection[T any](store Store, key string) []T {
	raw, ok := store.Get(key)
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// SaveCollection marshals items and writes them back under key.
func SaveCollection[T any](store Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return store.Set(key, raw)
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates an opaque record identifier: a base36 millisecond
// timestamp prefix plus a random suffix. Collision-free for practical
// purposes.
func NewID() string {
	suffix := make([]byte, 9)
	random := make([]byte, 9)
	_, _ = rand.Read(random)
	for i, b := range random {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}

	return strconv.FormatInt(time.Now().UnixMilli(), 36) + string(suffix)
}

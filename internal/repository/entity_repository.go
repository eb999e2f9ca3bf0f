// Package repository implements the entity repositories: shared CRUD
// semantics in a generic core, specialized per entity through injected
// validation, delete-guard, and search rules.
package repository

import (
	"fmt"
	"strings"
	"time"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/pkg/logger"
)

// entity constrains PT to a pointer to T that carries record metadata.
type entity[T any] interface {
	*T
	domain.Entity
}

// Rules are the entity-specific hooks. A nil hook falls back to the
// permissive default: always valid, always deletable, never matching.
type Rules[T any] struct {
	// Validate returns every violation found in one pass. excludeID is
	// the record under edit, so uniqueness checks can ignore it; it is
	// empty for create.
	Validate func(item *T, excludeID string) []string

	// CanDelete returns a human-readable reason when deletion is
	// blocked by a referential guard.
	CanDelete func(id string) (reason string, allowed bool)

	// MatchesSearch is called with a case-folded, trimmed query.
	MatchesSearch func(item *T, query string) bool
}

// entityRepository is a stateless façade over one named collection in
// the key-value store. Every operation reads the full collection,
// mutates it in memory, and writes it back.
type entityRepository[T any, PT entity[T]] struct {
	store      storage.Store
	key        string
	entityName string
	logger     logger.Logger
	rules      Rules[T]
}

func newEntityRepository[T any, PT entity[T]](
	store storage.Store,
	key string,
	entityName string,
	log logger.Logger,
	rules Rules[T],
) *entityRepository[T, PT] {
	return &entityRepository[T, PT]{
		store:      store,
		key:        key,
		entityName: entityName,
		logger:     log,
		rules:      rules,
	}
}

// GetAll returns the collection in storage order. The order carries no
// semantic meaning.
func (r *entityRepository[T, PT]) GetAll() []T {
	return storage.ReadCollection[T](r.store, r.key)
}

func (r *entityRepository[T, PT]) GetByID(id string) (*T, error) {
	if item := r.find(id); item != nil {
		return item, nil
	}
	return nil, &domain.NotFoundError{Entity: r.entityName, ID: id}
}

func (r *entityRepository[T, PT]) Create(item T) (*T, error) {
	if violations := r.validate(&item, ""); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	items := r.GetAll()
	now := time.Now().UTC()
	PT(&item).StampNew(storage.NewID(), now)

	items = append(items, item)
	if err := r.saveAll(items); err != nil {
		return nil, err
	}

	r.logger.Debug("Record created", map[string]interface{}{
		"entity": r.entityName,
		"id":     PT(&item).EntityID(),
	})

	return &item, nil
}

func (r *entityRepository[T, PT]) Update(id string, item T) (*T, error) {
	items := r.GetAll()
	index := -1
	for i := range items {
		if PT(&items[i]).EntityID() == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, &domain.NotFoundError{Entity: r.entityName, ID: id}
	}

	if violations := r.validate(&item, id); len(violations) > 0 {
		return nil, &domain.ValidationError{Violations: violations}
	}

	// New field values win; identity and creation time never change.
	PT(&item).StampUpdated(id, PT(&items[index]).CreatedTime(), time.Now().UTC())

	items[index] = item
	if err := r.saveAll(items); err != nil {
		return nil, err
	}

	return &items[index], nil
}

func (r *entityRepository[T, PT]) Delete(id string) error {
	if reason, allowed := r.canDelete(id); !allowed {
		return &domain.ConstraintError{Reason: reason}
	}

	items := r.GetAll()
	remaining := make([]T, 0, len(items))
	for i := range items {
		if PT(&items[i]).EntityID() != id {
			remaining = append(remaining, items[i])
		}
	}

	if len(remaining) == len(items) {
		return &domain.NotFoundError{Entity: r.entityName, ID: id}
	}

	if err := r.saveAll(remaining); err != nil {
		return err
	}

	r.logger.Debug("Record deleted", map[string]interface{}{
		"entity": r.entityName,
		"id":     id,
	})

	return nil
}

func (r *entityRepository[T, PT]) Search(query string) []T {
	folded := strings.ToLower(strings.TrimSpace(query))

	matched := []T{}
	if r.rules.MatchesSearch == nil {
		return matched
	}

	for _, item := range r.GetAll() {
		item := item
		if r.rules.MatchesSearch(&item, folded) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (r *entityRepository[T, PT]) Count() int {
	return len(r.GetAll())
}

// findByID is the read-only lookup used by cross-entity rules; it reads
// the target collection straight from the store, so hooks need no
// reference to the other repositories.
func findByID[T any, PT entity[T]](store storage.Store, key, id string) *T {
	items := storage.ReadCollection[T](store, key)
	for i := range items {
		if PT(&items[i]).EntityID() == id {
			return &items[i]
		}
	}
	return nil
}

func (r *entityRepository[T, PT]) find(id string) *T {
	items := r.GetAll()
	for i := range items {
		if PT(&items[i]).EntityID() == id {
			return &items[i]
		}
	}
	return nil
}

func (r *entityRepository[T, PT]) validate(item *T, excludeID string) []string {
	if r.rules.Validate == nil {
		return nil
	}
	return r.rules.Validate(item, excludeID)
}

func (r *entityRepository[T, PT]) canDelete(id string) (string, bool) {
	if r.rules.CanDelete == nil {
		return "", true
	}
	return r.rules.CanDelete(id)
}

func (r *entityRepository[T, PT]) saveAll(items []T) error {
	if err := storage.SaveCollection(r.store, r.key, items); err != nil {
		r.logger.Error("Could not persist collection", map[string]interface{}{
			"key":   r.key,
			"error": err.Error(),
		})
		return fmt.Errorf("could not persist %s: %w", r.key, err)
	}
	return nil
}

// Package repository implements the CRUD boundary between the ledger
// core and its storage backend. Each repository owns exactly one
// database handle, passed in explicitly so the core stays testable
// without any global state.
package repository

import (
	"reflect"

	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the union of entity types a repository can store.
type Model interface {
	models.Account | models.Category | models.Budget | models.Transaction
}

// Filter narrows a List query without mutating the stored order.
type Filter func(*gorm.DB) *gorm.DB

// Repository provides uniform persistence for one entity type.
//
// Validation lives in the model hooks, so every operation here is
// all-or-nothing: a refused mutation leaves no partial state behind.
type Repository[T Model] struct {
	db *gorm.DB
}

// New returns a repository for the entity type T backed by db.
func New[T Model](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Create validates and persists the resource and fills in its ID.
// A uniqueness violation returns models.ErrDuplicate.
func (r *Repository[T]) Create(resource *T) error {
	return r.db.Create(resource).Error
}

// Get returns the resource with the ID given. A missing resource
// returns models.ErrNotFound.
func (r *Repository[T]) Get(id uuid.UUID) (T, error) {
	var resource T
	err := r.db.First(&resource, "id = ?", id).Error
	return resource, err
}

// Update replaces the stored resource with the one given, re-running
// full validation on the new values. A missing resource returns
// models.ErrNotFound.
func (r *Repository[T]) Update(id uuid.UUID, resource T) (T, error) {
	existing, err := r.Get(id)
	if err != nil {
		return existing, err
	}

	// The incoming resource replaces every stored field but keeps the
	// stored identity and creation time. Every entity embeds
	// DefaultModel, which carries both. Saving the merged record makes
	// the model hooks validate the new values, not the stored ones.
	reflect.ValueOf(&resource).Elem().FieldByName("DefaultModel").
		Set(reflect.ValueOf(existing).FieldByName("DefaultModel"))

	err = r.db.Save(&resource).Error
	if err != nil {
		return existing, err
	}

	return r.Get(id)
}

// Delete removes the resource with the ID given. A missing resource
// returns models.ErrNotFound; a resource still referenced by others
// returns models.ErrReference per its deletion policy.
func (r *Repository[T]) Delete(id uuid.UUID) error {
	resource, err := r.Get(id)
	if err != nil {
		return err
	}

	return r.db.Delete(&resource).Error
}

// List returns all resources in insertion order, optionally narrowed
// by filters.
func (r *Repository[T]) List(filters ...Filter) ([]T, error) {
	query := r.db.Model(new(T))
	for _, filter := range filters {
		query = filter(query)
	}

	// created_at is stored as text with sub-second precision, so the
	// raw lexicographic order is the insertion order. datetime() would
	// truncate to whole seconds.
	resources := []T{}
	err := query.Order("created_at ASC, id ASC").Find(&resources).Error
	return resources, err
}

package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category classifies transactions. Categories form a tree through the
// nullable parent reference: a category with a nil parent is a root.
type Category struct {
	DefaultModel
	Name     string
	Note     string
	ParentID *uuid.UUID
	Archived bool
}

// BeforeSave validates the category fields.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.Name == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}

	return nil
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Category)
	return c.checkParent(tx, c.ID, toSave.ParentID)
}

// BeforeUpdate verifies the category tree stays acyclic before
// committing a reparent to the database. The check runs on the values
// being written, which gorm exposes as the statement destination.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Category)
	if !ok {
		toSave = *tx.Statement.Dest.(*Category)
	}

	return c.checkParent(tx, c.ID, toSave.ParentID)
}

// checkParent verifies that the parent reference resolves and that
// following it never leads back to the category itself.
func (c *Category) checkParent(tx *gorm.DB, id uuid.UUID, parentID *uuid.UUID) error {
	if parentID == nil {
		return nil
	}

	if *parentID == id {
		return ErrCategoryIsOwnAncestor
	}

	var parent Category
	err := tx.First(&parent, "id = ?", *parentID).Error
	if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ValidationError{Field: "parentId", Reason: "no category with this ID exists"}
	}
	if err != nil {
		return err
	}

	// Walk up from the new parent. Finding the category itself on the
	// way to the root means the reparent would close a cycle. The walk
	// is capped by the total category count as a guard against an
	// already corrupted tree.
	var total int64
	err = tx.Model(&Category{}).Count(&total).Error
	if err != nil {
		return err
	}

	current := parent
	for steps := int64(0); current.ParentID != nil; steps++ {
		if steps > total || *current.ParentID == id {
			return ErrCategoryIsOwnAncestor
		}

		// A fresh destination per lookup: gorm adds a populated
		// primary key on the destination as a query condition.
		var next Category
		err = tx.First(&next, "id = ?", *current.ParentID).Error
		if err != nil {
			return err
		}

		current = next
	}

	return nil
}

// BeforeDelete blocks deletion while transactions, budgets or child
// categories still reference the category.
func (c *Category) BeforeDelete(tx *gorm.DB) error {
	for _, query := range []*gorm.DB{
		tx.Model(&Transaction{}).Where("category_id = ?", c.ID),
		tx.Model(&Budget{}).Where("category_id = ?", c.ID),
		tx.Model(&Category{}).Where("parent_id = ?", c.ID),
	} {
		var count int64
		err := query.Count(&count).Error
		if err != nil {
			return err
		}

		if count > 0 {
			return ErrCategoryReferenced
		}
	}

	return nil
}

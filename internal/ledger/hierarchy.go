// Package ledger computes derived views over the stored entities:
// category hierarchy resolution, spending aggregation and budget
// status. It holds no state of its own, every call works on the
// current repository contents.
package ledger

import (
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ancestors returns the chain from the category up to its root, the
// category itself first. The last element always has a nil parent.
//
// The walk is capped at the total category count. Exceeding the cap
// means the stored tree is corrupted and returns models.ErrCycle.
func Ancestors(db *gorm.DB, id uuid.UUID) ([]models.Category, error) {
	var category models.Category
	err := db.First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	var total int64
	err = db.Model(&models.Category{}).Count(&total).Error
	if err != nil {
		return nil, err
	}

	// Each lookup needs a fresh destination: gorm adds a populated
	// primary key on the destination as a query condition.
	chain := []models.Category{category}
	current := category
	for current.ParentID != nil {
		if int64(len(chain)) > total {
			return nil, models.ErrCycle
		}

		var parent models.Category
		err = db.First(&parent, "id = ?", *current.ParentID).Error
		if err != nil {
			return nil, err
		}

		chain = append(chain, parent)
		current = parent
	}

	return chain, nil
}

// Descendants returns all categories below the one given, in breadth
// first order. The category itself is not included.
//
// The reverse index is rebuilt on every call. With a single user's
// category tree this is cheap and avoids cache invalidation entirely.
func Descendants(db *gorm.DB, id uuid.UUID) ([]models.Category, error) {
	err := db.First(&models.Category{}, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	var all []models.Category
	err = db.Find(&all).Error
	if err != nil {
		return nil, err
	}

	children := make(map[uuid.UUID][]models.Category)
	for _, category := range all {
		if category.ParentID != nil {
			children[*category.ParentID] = append(children[*category.ParentID], category)
		}
	}

	descendants := []models.Category{}
	queue := []uuid.UUID{id}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if len(descendants) > len(all) {
			return nil, models.ErrCycle
		}

		for _, child := range children[current] {
			descendants = append(descendants, child)
			queue = append(queue, child.ID)
		}
	}

	return descendants, nil
}

package models

import (
	"errors"
	"strings"

	"github.com/bookkeeper-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a spending limit for a category in a specific month.
// Nothing references a budget, so budgets delete freely.
type Budget struct {
	DefaultModel
	Category   Category        `json:"-"`
	CategoryID uuid.UUID       `gorm:"uniqueIndex:budget_category_month"`
	Month      types.Month     `gorm:"uniqueIndex:budget_category_month"`
	Limit      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Note = strings.TrimSpace(b.Note)

	if b.Limit.IsNegative() {
		return ValidationError{Field: "limit", Reason: "must not be negative"}
	}

	if b.Month.IsZero() {
		return ValidationError{Field: "month", Reason: "must be set"}
	}

	return nil
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Budget)
	return b.checkIntegrity(tx, *toSave)
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Budget)
	if !ok {
		toSave = *tx.Statement.Dest.(*Budget)
	}

	return b.checkIntegrity(tx, toSave)
}

// checkIntegrity verifies references to other resources.
func (b *Budget) checkIntegrity(tx *gorm.DB, toSave Budget) error {
	err := tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
	if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ValidationError{Field: "categoryId", Reason: "no category with this ID exists"}
	}

	return err
}

package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single signed monetary movement against one account
// and one category. Negative amounts are expenses, positive amounts
// are income.
type Transaction struct {
	DefaultModel
	Date       time.Time
	Amount     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note       string
	Account    Account `json:"-"`
	AccountID  uuid.UUID
	Category   Category `json:"-"`
	CategoryID uuid.UUID
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave validates the transaction and normalizes the date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Amount.IsZero() {
		return ValidationError{Field: "amount", Reason: "must not be zero"}
	}

	return nil
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Transaction)
	if !ok {
		toSave = *tx.Statement.Dest.(*Transaction)
	}

	return t.checkIntegrity(tx, toSave)
}

// checkIntegrity verifies that the account and category references
// resolve to live entities.
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Account{}, "id = ?", toSave.AccountID).Error
	if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ValidationError{Field: "accountId", Reason: "no account with this ID exists"}
	}
	if err != nil {
		return err
	}

	err = tx.First(&Category{}, "id = ?", toSave.CategoryID).Error
	if errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return ValidationError{Field: "categoryId", Reason: "no category with this ID exists"}
	}

	return err
}

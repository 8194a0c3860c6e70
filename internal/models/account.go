package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents a named pool of money, e.g. a bank account or a
// wallet. Its balance is always derived from its transactions, it is
// never stored.
type Account struct {
	DefaultModel
	Name               string `gorm:"uniqueIndex:account_name"`
	Note               string
	InitialBalance     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InitialBalanceDate *time.Time
	Archived           bool
}

// BeforeSave validates the account.
//
// It trims whitespace from all strings and refuses accounts without a
// name.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	if a.Name == "" {
		return ValidationError{Field: "name", Reason: "must not be empty"}
	}

	return nil
}

// BeforeDelete blocks deletion while transactions still reference the
// account. Deletion policy is "restrict": callers have to reassign or
// delete the referencing transactions first.
func (a *Account) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Transaction{}).Where("account_id = ?", a.ID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrAccountReferenced
	}

	return nil
}

// Balance calculates the balance of the account at a specific point in
// time: the initial balance plus the sum of all transaction amounts
// dated at or before it. A zero asOf means "now and unbounded".
func (a Account) Balance(db *gorm.DB, asOf time.Time) (decimal.Decimal, error) {
	query := db.Where(Transaction{AccountID: a.ID})
	if !asOf.IsZero() {
		query = query.Where("datetime(transactions.date) <= datetime(?)", asOf)
	}

	var transactions []Transaction
	err := query.Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	if a.InitialBalanceDate == nil || asOf.IsZero() || !a.InitialBalanceDate.After(asOf) {
		balance = a.InitialBalance
	}

	for _, t := range transactions {
		balance = balance.Add(t.Amount)
	}

	return balance, nil
}

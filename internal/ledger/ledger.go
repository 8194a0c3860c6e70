package ledger

import (
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/bookkeeper-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetStatus is the computed state of a budget for its month.
type BudgetStatus struct {
	Limit      decimal.Decimal `json:"limit" example:"300"`      // The budget limit
	Spent      decimal.Decimal `json:"spent" example:"105.5"`    // What was spent in the month, as a positive number
	Remaining  decimal.Decimal `json:"remaining" example:"194.5"` // Limit minus spent, negative when over budget
	OverBudget bool            `json:"overBudget" example:"false"` // True once spent exceeds the limit
}

// CategoryMonth is the spending report for one category in one month.
type CategoryMonth struct {
	Category models.Category `json:"category"`
	Spent    decimal.Decimal `json:"spent" example:"105.5"`
	Budget   *BudgetStatus   `json:"budget"` // nil when the category has no budget for the month
}

// Spent returns what was spent in the month for the category and all
// of its descendants, as a positive number.
//
// Only expense transactions (negative amounts) count. Income booked
// against the category does not reduce its spending; that policy is
// fixed here, not decided per call site.
func Spent(db *gorm.DB, categoryID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	descendants, err := Descendants(db, categoryID)
	if err != nil {
		return decimal.Zero, err
	}

	ids := []uuid.UUID{categoryID}
	for _, category := range descendants {
		ids = append(ids, category.ID)
	}

	start, next := month.Interval()

	var transactions []models.Transaction
	err = db.Where("category_id IN (?)", ids).
		Where("datetime(date) >= datetime(?) AND datetime(date) < datetime(?)", start, next).
		Find(&transactions).Error
	if err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, t := range transactions {
		if t.Amount.IsNegative() {
			spent = spent.Add(t.Amount)
		}
	}

	return spent.Neg(), nil
}

// Status computes the spent, remaining and over-budget state for a
// budget from the current transaction set.
func Status(db *gorm.DB, budget models.Budget) (BudgetStatus, error) {
	spent, err := Spent(db, budget.CategoryID, budget.Month)
	if err != nil {
		return BudgetStatus{}, err
	}

	return BudgetStatus{
		Limit:      budget.Limit,
		Spent:      spent,
		Remaining:  budget.Limit.Sub(spent),
		OverBudget: spent.GreaterThan(budget.Limit),
	}, nil
}

// Report returns the per-category spending for a month, with the
// budget status attached for every category that has a budget.
// Sub-category spending rolls up into each ancestor's total.
func Report(db *gorm.DB, month types.Month) ([]CategoryMonth, error) {
	var categories []models.Category
	err := db.Order("created_at ASC, id ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	var budgets []models.Budget
	err = db.Where(models.Budget{Month: month}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	budgeted := make(map[uuid.UUID]models.Budget, len(budgets))
	for _, budget := range budgets {
		budgeted[budget.CategoryID] = budget
	}

	report := make([]CategoryMonth, 0, len(categories))
	for _, category := range categories {
		spent, err := Spent(db, category.ID, month)
		if err != nil {
			return nil, err
		}

		entry := CategoryMonth{Category: category, Spent: spent}
		if budget, ok := budgeted[category.ID]; ok {
			status, err := Status(db, budget)
			if err != nil {
				return nil, err
			}
			entry.Budget = &status
		}

		report = append(report, entry)
	}

	return report, nil
}

// Package v1 implements the v1 API of the bookkeeper backend: the
// presentation surface over the ledger core. Handlers bind requests,
// call the repositories and the ledger, and render the results; no
// bookkeeping logic lives here.
package v1

import (
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/bookkeeper-app/backend/internal/repository"
	"github.com/bookkeeper-app/backend/internal/types"
	bk_uuid "github.com/bookkeeper-app/backend/internal/uuid"
	"gorm.io/gorm"
)

// Controller holds the repositories the handlers work on. It is
// created once at startup and passed by reference, there is no
// process-wide state.
type Controller struct {
	DB           *gorm.DB
	Accounts     *repository.Repository[models.Account]
	Categories   *repository.Repository[models.Category]
	Budgets      *repository.Repository[models.Budget]
	Transactions *repository.Repository[models.Transaction]
}

// NewController returns a Controller working on the database given.
func NewController(db *gorm.DB) Controller {
	return Controller{
		DB:           db,
		Accounts:     repository.New[models.Account](db),
		Categories:   repository.New[models.Category](db),
		Budgets:      repository.New[models.Budget](db),
		Transactions: repository.New[models.Transaction](db),
	}
}

type URIID struct {
	ID bk_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" binding:"required" example:"2013-11"` // Year and month in YYYY-MM format
}

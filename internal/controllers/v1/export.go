package v1

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for the export with
// the RouterGroup that is passed.
func (co Controller) RegisterExportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", co.GetExport)
	}
}

type ExportData struct {
	Accounts     []Account     `json:"accounts"`     // All accounts
	Categories   []Category    `json:"categories"`   // All categories
	Budgets      []Budget      `json:"budgets"`      // All budgets
	Transactions []Transaction `json:"transactions"` // All transactions
}

type ExportResponse struct {
	Data  *ExportData `json:"data"`  // The exported resources
	Error *string     `json:"error"` // The error, if any occurred
}

// @Summary		Export
// @Description	Returns all resources in one response, e.g. for backups
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func (co Controller) GetExport(c *gin.Context) {
	accounts, err := co.Accounts.List()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	categories, err := co.Categories.List()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	budgets, err := co.Budgets.List()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	transactions, err := co.Transactions.List()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportResponse{Error: &e})
		return
	}

	data := ExportData{
		Accounts:     make([]Account, 0, len(accounts)),
		Categories:   make([]Category, 0, len(categories)),
		Budgets:      make([]Budget, 0, len(budgets)),
		Transactions: make([]Transaction, 0, len(transactions)),
	}

	for _, account := range accounts {
		data.Accounts = append(data.Accounts, newAccount(account))
	}
	for _, category := range categories {
		data.Categories = append(data.Categories, newCategory(category))
	}
	for _, budget := range budgets {
		data.Budgets = append(data.Budgets, newBudget(budget))
	}
	for _, transaction := range transactions {
		data.Transactions = append(data.Transactions, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, ExportResponse{Data: &data})
}

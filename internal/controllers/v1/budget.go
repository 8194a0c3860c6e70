package v1

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/bookkeeper-app/backend/internal/ledger"
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/bookkeeper-app/backend/internal/repository"
	"github.com/bookkeeper-app/backend/internal/types"
	bk_uuid "github.com/bookkeeper-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgets)
		r.POST("", co.CreateBudgets)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id", co.OptionsBudgetDetail)
		r.GET("/:id", co.GetBudget)
		r.GET("/:id/status", co.GetBudgetStatus)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

type BudgetEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`          // ID of the category the budget limits
	Month      types.Month     `json:"month" example:"2024-10-01T00:00:00Z"`                               // The month the budget is for
	Limit      decimal.Decimal `json:"limit" example:"300" minimum:"0.00000001" multipleOf:"0.00000001"`   // The spending limit
	Note       string          `json:"note" example:"Was 250 last year" default:""`                        // A note
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		CategoryID: editable.CategoryID,
		Month:      editable.Month,
		Limit:      editable.Limit,
		Note:       editable.Note,
	}
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			CategoryID: model.CategoryID,
			Month:      model.Month,
			Limit:      model.Limit,
			Note:       model.Note,
		},
	}
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`  // List of created budgets
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Error *string `json:"error"` // The error, if any occurred for this budget
	Data  *Budget `json:"data"`  // The budget data, if creation was successful
}

type BudgetStatusResponse struct {
	Data  *ledger.BudgetStatus `json:"data"`  // The computed budget status
	Error *string              `json:"error"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	CategoryID bk_uuid.UUID `form:"category"` // Filter by category
	Month      types.Month  `form:"month"`    // Filter by month
}

func (f BudgetQueryFilter) filters() []repository.Filter {
	var filters []repository.Filter

	if f.CategoryID != bk_uuid.Nil {
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("category_id = ?", f.CategoryID.UUID)
		})
	}

	if !f.Month.IsZero() {
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("month = ?", f.Month)
		})
	}

	return filters
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budgets/{id} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	resourceOptionsDetail(c, co.Budgets)
}

// @Summary		Create budgets
// @Description	Creates new budgets. At most one budget can exist per category and month.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budgets	body		[]BudgetEditable	true	"Budgets"
// @Router			/v1/budgets [post]
func (co Controller) CreateBudgets(c *gin.Context) {
	var editables []BudgetEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := BudgetCreateResponse{}

	for _, editable := range editables {
		budget := editable.model()

		err := co.Budgets.Create(&budget)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudget(budget)
		r.Data = append(r.Data, BudgetResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List budgets
// @Description	Returns a list of budgets
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
// @Param			category	query	string	false	"Filter by category ID"
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
func (co Controller) GetBudgets(c *gin.Context) {
	var filter BudgetQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{Error: &e})
		return
	}

	budgets, err := co.Budgets.List(filter.filters()...)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	budget, ok := bindResource(c, co.Budgets)
	if !ok {
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Get budget status
// @Description	Returns the computed state of the budget for its month: the limit, what was spent in the category tree below it, what remains and whether the budget is exceeded. Everything is computed fresh from the current transactions.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetStatusResponse
// @Failure		400	{object}	BudgetStatusResponse
// @Failure		404	{object}	BudgetStatusResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/budgets/{id}/status [get]
func (co Controller) GetBudgetStatus(c *gin.Context) {
	budget, ok := bindResource(c, co.Budgets)
	if !ok {
		return
	}

	budgetStatus, err := ledger.Status(co.DB, budget)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetStatusResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetStatusResponse{Data: &budgetStatus})
}

// @Summary		Update budget
// @Description	Updates a budget
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	budget, ok := bindResource(c, co.Budgets)
	if !ok {
		return
	}

	editable := newBudget(budget).BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	updated, err := co.Budgets.Update(budget.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(updated)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Nothing references budgets, they delete freely.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	deleteResource(c, co.Budgets)
}

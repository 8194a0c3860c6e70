package v1

import (
	"net/http"
	"time"

	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/bookkeeper-app/backend/internal/repository"
	bk_uuid "github.com/bookkeeper-app/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

type TransactionEditable struct {
	Date       time.Time       `json:"date" example:"2024-10-12T20:49:05Z"`                                              // Date of the transaction. Time is currently only used for sorting
	Amount     decimal.Decimal `json:"amount" example:"-45.5" multipleOf:"0.00000001"`                                   // The amount, negative for expenses, positive for income
	Note       string          `json:"note" example:"Weekly groceries" default:""`                                       // A note
	AccountID  uuid.UUID       `json:"accountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`                         // ID of the account the money moved on
	CategoryID uuid.UUID       `json:"categoryId" example:"43d481fa-4ca8-4b48-9862-3504093ffc58"`                        // ID of the category
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:       editable.Date,
		Amount:     editable.Amount,
		Note:       editable.Note,
		AccountID:  editable.AccountID,
		CategoryID: editable.CategoryID,
	}
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:       model.Date,
			Amount:     model.Amount,
			Note:       model.Note,
			AccountID:  model.AccountID,
			CategoryID: model.CategoryID,
		},
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`  // List of transactions
	Error *string       `json:"error"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`  // List of created transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`  // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	AccountID  bk_uuid.UUID `form:"account"`  // Filter by account
	CategoryID bk_uuid.UUID `form:"category"` // Filter by category
	FromDate   time.Time    `form:"fromDate" time_format:"2006-01-02"` // Transactions dated on or after this date
	UntilDate  time.Time    `form:"untilDate" time_format:"2006-01-02"` // Transactions dated on or before this date
}

func (f TransactionQueryFilter) filters() []repository.Filter {
	var filters []repository.Filter

	if f.AccountID != bk_uuid.Nil {
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("account_id = ?", f.AccountID.UUID)
		})
	}

	if f.CategoryID != bk_uuid.Nil {
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("category_id = ?", f.CategoryID.UUID)
		})
	}

	if !f.FromDate.IsZero() {
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("datetime(date) >= datetime(?)", f.FromDate)
		})
	}

	if !f.UntilDate.IsZero() {
		// Include the whole day
		until := f.UntilDate.AddDate(0, 0, 1)
		filters = append(filters, func(db *gorm.DB) *gorm.DB {
			return db.Where("datetime(date) < datetime(?)", until)
		})
	}

	return filters
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, co.Transactions)
}

// @Summary		Create transactions
// @Description	Creates new transactions. The amount must not be zero, negative amounts are expenses, positive amounts are income.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction := editable.model()

		err := co.Transactions.Create(&transaction)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			fromDate	query	string	false	"Transactions dated on or after this date, YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Transactions dated on or before this date, YYYY-MM-DD"
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	transactions, err := co.Transactions.List(filter.filters()...)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, ok := bindResource(c, co.Transactions)
	if !ok {
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	transaction, ok := bindResource(c, co.Transactions)
	if !ok {
		return
	}

	editable := newTransaction(transaction).TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &e})
		return
	}

	updated, err := co.Transactions.Update(transaction.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &e})
		return
	}

	data := newTransaction(updated)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	deleteResource(c, co.Transactions)
}

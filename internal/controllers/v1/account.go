package v1

import (
	"net/http"
	"time"

	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccounts)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.GET("/:id/balance", co.GetAccountBalance)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}
}

type AccountEditable struct {
	Name               string          `json:"name" example:"Checking"`                                    // Name of the account
	Note               string          `json:"note" example:"My main account" default:""`                  // A note
	InitialBalance     decimal.Decimal `json:"initialBalance" example:"173.12" default:"0"`                // The balance of the account before any transactions were recorded
	InitialBalanceDate *time.Time      `json:"initialBalanceDate" example:"2017-05-12T00:00:00.000000Z"`   // The date of the initial balance
	Archived           bool            `json:"archived" example:"true" default:"false"`                    // Is the account archived?
}

// model returns the database resource for the API representation of
// the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:               editable.Name,
		Note:               editable.Note,
		InitialBalance:     editable.InitialBalance,
		InitialBalanceDate: editable.InitialBalanceDate,
		Archived:           editable.Archived,
	}
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	AccountEditable
}

func newAccount(model models.Account) Account {
	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:               model.Name,
			Note:               model.Note,
			InitialBalance:     model.InitialBalance,
			InitialBalanceDate: model.InitialBalanceDate,
			Archived:           model.Archived,
		},
	}
}

type AccountListResponse struct {
	Data  []Account `json:"data"`  // List of accounts
	Error *string   `json:"error"` // The error, if any occurred
}

type AccountCreateResponse struct {
	Error *string           `json:"error"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`  // List of created accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Error *string  `json:"error"` // The error, if any occurred for this account
	Data  *Account `json:"data"`  // The account data, if creation was successful
}

type AccountQueryFilter struct {
	Name     string `form:"name" filterField:"false"` // Filter by name, glob patterns are supported
	Note     string `form:"note" filterField:"false"` // Filter by note, glob patterns are supported
	Archived bool   `form:"archived"`                 // Is the account archived?
}

type AccountBalanceResponse struct {
	Data *AccountBalance `json:"data"`  // The computed balance
	Error *string        `json:"error"` // The error, if any occurred
}

type AccountBalance struct {
	Balance decimal.Decimal `json:"balance" example:"-105.5"` // The balance of the account
	AsOf    *time.Time      `json:"asOf"`                     // The point in time the balance was computed for. Unset means "now".
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	resourceOptionsDetail(c, co.Accounts)
}

// @Summary		Create accounts
// @Description	Creates new accounts
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201			{object}	AccountCreateResponse
// @Failure		400			{object}	AccountCreateResponse
// @Failure		500			{object}	AccountCreateResponse
// @Param			accounts	body		[]AccountEditable	true	"Accounts"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccounts(c *gin.Context) {
	var editables []AccountEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := AccountCreateResponse{}

	for _, editable := range editables {
		account := editable.model()

		err := co.Accounts.Create(&account)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAccount(account)
		r.Data = append(r.Data, AccountResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List accounts
// @Description	Returns a list of accounts
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountListResponse
// @Failure		500	{object}	AccountListResponse
// @Router			/v1/accounts [get]
// @Param			name		query	string	false	"Filter by name, glob patterns are supported"
// @Param			note		query	string	false	"Filter by note, glob patterns are supported"
// @Param			archived	query	bool	false	"Is the account archived?"
func (co Controller) GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	accounts, err := co.Accounts.List(archivedFilter(c, filter.Archived))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountListResponse{
			Error: &e,
		})
		return
	}

	data := []Account{}
	for _, account := range accounts {
		if filter.Name != "" && !glob.Glob(filter.Name, account.Name) {
			continue
		}
		if filter.Note != "" && !glob.Glob(filter.Note, account.Note) {
			continue
		}

		data = append(data, newAccount(account))
	}

	c.JSON(http.StatusOK, AccountListResponse{Data: data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	account, ok := bindResource(c, co.Accounts)
	if !ok {
		return
	}

	data := newAccount(account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Get account balance
// @Description	Returns the balance of the account: the sum of its transactions up to a point in time. The balance is always computed from the transactions, it is never stored.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	AccountBalanceResponse
// @Failure		400		{object}	AccountBalanceResponse
// @Failure		404		{object}	AccountBalanceResponse
// @Param			id		path		URIID	true	"ID formatted as string"
// @Param			asOf	query		string	false	"Only include transactions up to this RFC3339 timestamp"
// @Router			/v1/accounts/{id}/balance [get]
func (co Controller) GetAccountBalance(c *gin.Context) {
	account, ok := bindResource(c, co.Accounts)
	if !ok {
		return
	}

	var asOf time.Time
	var asOfResponse *time.Time
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			e := "the asOf parameter must be an RFC3339 timestamp"
			c.JSON(http.StatusBadRequest, AccountBalanceResponse{Error: &e})
			return
		}
		asOf = parsed
		asOfResponse = &parsed
	}

	balance, err := account.Balance(co.DB, asOf)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountBalanceResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, AccountBalanceResponse{
		Data: &AccountBalance{Balance: balance, AsOf: asOfResponse},
	})
}

// @Summary		Update account
// @Description	Updates an account. The update is all-or-nothing: the full validation runs again and nothing is written when it fails.
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Param			id		path		URIID			true	"ID formatted as string"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func (co Controller) UpdateAccount(c *gin.Context) {
	account, ok := bindResource(c, co.Accounts)
	if !ok {
		return
	}

	editable := newAccount(account).AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{Error: &e})
		return
	}

	updated, err := co.Accounts.Update(account.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{Error: &e})
		return
	}

	data := newAccount(updated)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Delete account
// @Description	Deletes an account. Deletion is restricted while transactions still reference the account.
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	deleteResource(c, co.Accounts)
}

package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/bookkeeper-app/backend/internal/controllers/v1"
	"github.com/bookkeeper-app/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	existing := suite.createTestTransaction(v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Transaction exists", existing.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodOptions, fmt.Sprintf("/v1/transactions/%s", tt.id), nil)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	account := suite.createTestAccount(v1.AccountEditable{})
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{
			Date:       time.Date(2024, 10, 12, 20, 49, 5, 0, time.UTC),
			Amount:     decimal.NewFromFloat(-45.5),
			Note:       "Weekly groceries",
			AccountID:  account.Data.ID,
			CategoryID: category.Data.ID,
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.True(suite.T(), response.Data[0].Data.Amount.Equal(decimal.NewFromFloat(-45.5)))
	assert.Equal(suite.T(), "Weekly groceries", response.Data[0].Data.Note)
}

func (suite *TestSuiteStandard) TestTransactionsCreateZeroAmount() {
	account := suite.createTestAccount(v1.AccountEditable{})
	category := suite.createTestCategory(v1.CategoryEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{AccountID: account.Data.ID, CategoryID: category.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Contains(suite.T(), *response.Data[0].Error, "amount")
}

func (suite *TestSuiteStandard) TestTransactionsCreateUnknownReferences() {
	account := suite.createTestAccount(v1.AccountEditable{})

	tests := []struct {
		name     string
		editable v1.TransactionEditable
	}{
		{"Unknown account", v1.TransactionEditable{Amount: decimal.NewFromFloat(-10), AccountID: uuid.New(), CategoryID: suite.createTestCategory(v1.CategoryEditable{}).Data.ID}},
		{"Unknown category", v1.TransactionEditable{Amount: decimal.NewFromFloat(-10), AccountID: account.Data.ID, CategoryID: uuid.New()}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodPost, "/v1/transactions", []v1.TransactionEditable{tt.editable})
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListFilters() {
	checking := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	savings := suite.createTestAccount(v1.AccountEditable{Name: "Savings"})
	groceries := suite.createTestCategory(v1.CategoryEditable{Name: "Groceries"})
	household := suite.createTestCategory(v1.CategoryEditable{Name: "Household"})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-10),
		AccountID:  checking.Data.ID,
		CategoryID: groceries.Data.ID,
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-20),
		AccountID:  savings.Data.ID,
		CategoryID: household.Data.ID,
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 11, 2, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-30),
		AccountID:  checking.Data.ID,
		CategoryID: groceries.Data.ID,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 3},
		{"By account", fmt.Sprintf("account=%s", checking.Data.ID), 2},
		{"By category", fmt.Sprintf("category=%s", household.Data.ID), 1},
		{"From date", "fromDate=2024-10-10", 2},
		{"Until date", "untilDate=2024-10-20", 2},
		{"Date range", "fromDate=2024-10-01&untilDate=2024-10-31", 2},
		{"Combined", fmt.Sprintf("account=%s&fromDate=2024-11-01", checking.Data.ID), 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), nil)
			test.AssertHTTPStatus(t, http.StatusOK, &r)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Note: "Initial"})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.Data.ID), map[string]any{
		"amount": -99.5,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(-99.5)))
	assert.Equal(suite.T(), "Initial", response.Data.Note, "PATCH changed a field that was not in the request")
}

func (suite *TestSuiteStandard) TestTransactionsUpdateReassignAccount() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{})
	other := suite.createTestAccount(v1.AccountEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.Data.ID), map[string]any{
		"accountId": other.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), other.Data.ID, response.Data.AccountID)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateUnknownAccount() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.Data.ID), map[string]any{
		"accountId": uuid.New(),
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/transactions/%s", transaction.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

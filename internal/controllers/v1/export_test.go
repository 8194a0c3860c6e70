package v1_test

import (
	"net/http"

	v1 "github.com/bookkeeper-app/backend/internal/controllers/v1"
	"github.com/bookkeeper-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{})
	_ = suite.createTestBudget(v1.BudgetEditable{
		CategoryID: transaction.Data.CategoryID,
		Limit:      decimal.NewFromFloat(300),
	})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data.Accounts, 1)
	assert.Len(suite.T(), response.Data.Categories, 1)
	assert.Len(suite.T(), response.Data.Budgets, 1)
	assert.Len(suite.T(), response.Data.Transactions, 1)
}

func (suite *TestSuiteStandard) TestExportEmpty() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.NotNil(suite.T(), response.Data.Accounts)
	assert.Len(suite.T(), response.Data.Accounts, 0)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/export", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

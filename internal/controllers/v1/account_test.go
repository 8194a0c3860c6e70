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

func (suite *TestSuiteStandard) TestAccountsOptions() {
	existing := suite.createTestAccount(v1.AccountEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Account exists", existing.Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.router, http.MethodOptions, fmt.Sprintf("/v1/accounts/%s", tt.id), nil)
			test.AssertHTTPStatus(t, tt.status, &r)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Checking", Note: "Bills", InitialBalance: decimal.NewFromFloat(100)},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Data)
	assert.Equal(suite.T(), "Checking", response.Data[0].Data.Name)
	assert.NotEqual(suite.T(), uuid.Nil, response.Data[0].Data.ID)
}

func (suite *TestSuiteStandard) TestAccountsCreateDuplicateName() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Checking"})

	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Checking"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	require.NotNil(suite.T(), response.Data[0].Error)
	assert.Contains(suite.T(), *response.Data[0].Error, "unique")
}

func (suite *TestSuiteStandard) TestAccountsCreateBatchPartialFailure() {
	// The second account has no name, the first one is still created
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Checking"},
		{Name: "   "},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidBody() {
	r := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/accounts", `{ "name": "not an array" }`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestAccountsList() {
	for _, name := range []string{"Checking", "Savings"} {
		_ = suite.createTestAccount(v1.AccountEditable{Name: name})
	}

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/accounts", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestAccountsListFilterName() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Daily checking"})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/accounts?name=*checking", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Daily checking", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountsListFilterArchived() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Old", Archived: true})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Current"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/accounts?archived=true", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Old", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	existing := suite.createTestAccount(v1.AccountEditable{Name: "Checking"})

	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/accounts/%s", existing.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Checking", response.Data.Name)
}

func (suite *TestSuiteStandard) TestAccountsGetNotFound() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/accounts/%s", uuid.New()), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestAccountsGetInvalidID() {
	r := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/accounts/NotParseableAsUUID", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	existing := suite.createTestAccount(v1.AccountEditable{Name: "Checking", Note: "Bills"})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", existing.Data.ID), map[string]any{
		"name": "Daily checking",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Daily checking", response.Data.Name)
	assert.Equal(suite.T(), "Bills", response.Data.Note, "PATCH changed a field that was not in the request")
}

func (suite *TestSuiteStandard) TestAccountsUpdateDuplicateName() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Checking"})
	existing := suite.createTestAccount(v1.AccountEditable{Name: "Savings"})

	r := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", existing.Data.ID), map[string]any{
		"name": "Checking",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	existing := suite.createTestAccount(v1.AccountEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", existing.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/accounts/%s", existing.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestAccountsDeleteReferenced() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", transaction.Data.AccountID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	// Once the transaction is gone, the account deletes
	r = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", transaction.Data.AccountID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
}

func (suite *TestSuiteStandard) TestAccountsBalance() {
	account := suite.createTestAccount(v1.AccountEditable{InitialBalance: decimal.NewFromFloat(100)})
	category := suite.createTestCategory(v1.CategoryEditable{})

	for i, amount := range []float64{-45.5, 250} {
		_ = suite.createTestTransaction(v1.TransactionEditable{
			Date:       time.Date(2024, time.Month(i+9), 12, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromFloat(amount),
			AccountID:  account.Data.ID,
			CategoryID: category.Data.ID,
		})
	}

	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/accounts/%s/balance", account.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountBalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.Equal(decimal.NewFromFloat(304.5)), "Balance is wrong: %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestAccountsBalanceAsOf() {
	account := suite.createTestAccount(v1.AccountEditable{})
	category := suite.createTestCategory(v1.CategoryEditable{})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Date:       time.Date(2024, 10, 12, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromFloat(-45.5),
		AccountID:  account.Data.ID,
		CategoryID: category.Data.ID,
	})

	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/accounts/%s/balance?asOf=2024-09-30T00:00:00Z", account.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.AccountBalanceResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.IsZero(), "Balance is wrong: %s", response.Data.Balance)
}

func (suite *TestSuiteStandard) TestAccountsBalanceInvalidAsOf() {
	account := suite.createTestAccount(v1.AccountEditable{})

	r := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("/v1/accounts/%s/balance?asOf=yesterday", account.Data.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

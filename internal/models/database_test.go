package models_test

import (
	"strings"

	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	_, err := models.Connect("/this/path/does/not/exist/db")
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	err := suite.db.First(&models.Account{}, "id = ?", uuid.New()).Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
	assert.True(suite.T(), strings.Contains(err.Error(), "account"), "Error message does not name the resource: %s", err)
}

func (suite *TestSuiteStandard) TestNotFoundMessageSingularizesCategory() {
	err := suite.db.First(&models.Category{}, "id = ?", uuid.New()).Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
	assert.True(suite.T(), strings.Contains(err.Error(), "category"), "Error message does not name the resource: %s", err)
}

func (suite *TestSuiteStandard) TestDuplicateID() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	err := suite.db.Create(&models.Account{
		DefaultModel: models.DefaultModel{ID: account.ID},
		Name:         "Savings",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrIDNotUnique)
	assert.ErrorIs(suite.T(), err, models.ErrDuplicate)
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	account := suite.createTestAccount(models.Account{})
	category := suite.createTestCategory(models.Category{})

	suite.CloseDB()

	err := suite.db.Create(&models.Transaction{
		Amount:     decimal.NewFromFloat(-10),
		AccountID:  account.ID,
		CategoryID: category.ID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestValidationErrorMessage() {
	err := models.ValidationError{Field: "amount", Reason: "must not be zero"}

	assert.Equal(suite.T(), "invalid amount: must not be zero", err.Error())
}

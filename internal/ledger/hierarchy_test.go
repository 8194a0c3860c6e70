package ledger_test

import (
	"github.com/bookkeeper-app/backend/internal/ledger"
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAncestors() {
	food := suite.createTestCategory(models.Category{Name: "Food"})
	groceries := suite.createTestCategory(models.Category{Name: "Groceries", ParentID: &food.ID})
	vegetables := suite.createTestCategory(models.Category{Name: "Vegetables", ParentID: &groceries.ID})

	chain, err := ledger.Ancestors(suite.db, vegetables.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), chain, 3)

	assert.Equal(suite.T(), vegetables.ID, chain[0].ID)
	assert.Equal(suite.T(), groceries.ID, chain[1].ID)
	assert.Equal(suite.T(), food.ID, chain[2].ID)
	assert.Nil(suite.T(), chain[2].ParentID, "Last element of the chain is not a root")
}

func (suite *TestSuiteStandard) TestAncestorsRoot() {
	food := suite.createTestCategory(models.Category{Name: "Food"})

	chain, err := ledger.Ancestors(suite.db, food.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), chain, 1)
	assert.Equal(suite.T(), food.ID, chain[0].ID)
}

func (suite *TestSuiteStandard) TestAncestorsNotFound() {
	_, err := ledger.Ancestors(suite.db, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}

func (suite *TestSuiteStandard) TestDescendants() {
	food := suite.createTestCategory(models.Category{Name: "Food"})
	groceries := suite.createTestCategory(models.Category{Name: "Groceries", ParentID: &food.ID})
	restaurants := suite.createTestCategory(models.Category{Name: "Restaurants", ParentID: &food.ID})
	vegetables := suite.createTestCategory(models.Category{Name: "Vegetables", ParentID: &groceries.ID})

	// An unrelated tree does not show up
	_ = suite.createTestCategory(models.Category{Name: "Household"})

	descendants, err := ledger.Descendants(suite.db, food.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), descendants, 3)

	ids := make(map[uuid.UUID]bool, len(descendants))
	for _, category := range descendants {
		ids[category.ID] = true
	}

	assert.True(suite.T(), ids[groceries.ID])
	assert.True(suite.T(), ids[restaurants.ID])
	assert.True(suite.T(), ids[vegetables.ID])
	assert.False(suite.T(), ids[food.ID], "The category itself must not be part of its descendants")
}

func (suite *TestSuiteStandard) TestDescendantsBreadthFirst() {
	food := suite.createTestCategory(models.Category{Name: "Food"})
	groceries := suite.createTestCategory(models.Category{Name: "Groceries", ParentID: &food.ID})
	vegetables := suite.createTestCategory(models.Category{Name: "Vegetables", ParentID: &groceries.ID})

	descendants, err := ledger.Descendants(suite.db, food.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), descendants, 2)

	assert.Equal(suite.T(), groceries.ID, descendants[0].ID)
	assert.Equal(suite.T(), vegetables.ID, descendants[1].ID)
}

func (suite *TestSuiteStandard) TestDescendantsLeaf() {
	food := suite.createTestCategory(models.Category{Name: "Food"})

	descendants, err := ledger.Descendants(suite.db, food.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), descendants, 0)
}

func (suite *TestSuiteStandard) TestDescendantsNotFound() {
	_, err := ledger.Descendants(suite.db, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}

package v1

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/importer"
	"github.com/gin-gonic/gin"
)

// @Summary		Import categories
// @Description	Creates a category tree from an indentation-structured text body: nesting depth encodes the parent relationship.
// @Tags			Categories
// @Accept			plain
// @Produce		json
// @Success		201			{object}	CategoryListResponse
// @Failure		400			{object}	CategoryListResponse
// @Param			categories	body		string	true	"Indented category tree"
// @Router			/v1/categories/import [post]
func (co Controller) ImportCategories(c *gin.Context) {
	entries, err := importer.Parse(c.Request.Body)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	categories, err := importer.CreateTree(co.DB, entries)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusCreated, CategoryListResponse{Data: data})
}

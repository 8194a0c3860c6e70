package v1

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/bookkeeper-app/backend/internal/ledger"
	"github.com/bookkeeper-app/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategories)
		r.OPTIONS("/import", httputil.OptionsPost)
		r.POST("/import", co.ImportCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", co.OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.GET("/:id/ancestors", co.GetCategoryAncestors)
		r.GET("/:id/descendants", co.GetCategoryDescendants)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

type CategoryEditable struct {
	Name     string     `json:"name" example:"Groceries"`                                  // Name of the category
	Note     string     `json:"note" example:"Everything the supermarket sells" default:""` // A note
	ParentID *uuid.UUID `json:"parentId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"`   // ID of the parent category. Unset for root categories.
	Archived bool       `json:"archived" example:"true" default:"false"`                   // Is the category archived?
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:     editable.Name,
		Note:     editable.Note,
		ParentID: editable.ParentID,
		Archived: editable.Archived,
	}
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
}

func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			Note:     model.Note,
			ParentID: model.ParentID,
			Archived: model.Archived,
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // The error, if any occurred
}

type CategoryCreateResponse struct {
	Error *string            `json:"error"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`  // List of created categories
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Error *string   `json:"error"` // The error, if any occurred for this category
	Data  *Category `json:"data"`  // The category data, if creation was successful
}

type CategoryQueryFilter struct {
	Name     string `form:"name" filterField:"false"` // Filter by name, glob patterns are supported
	Archived bool   `form:"archived"`                 // Is the category archived?
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/categories/{id} [options]
func (co Controller) OptionsCategoryDetail(c *gin.Context) {
	resourceOptionsDetail(c, co.Categories)
}

// @Summary		Create categories
// @Description	Creates new categories
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryCreateResponse
// @Failure		400			{object}	CategoryCreateResponse
// @Failure		500			{object}	CategoryCreateResponse
// @Param			categories	body		[]CategoryEditable	true	"Categories"
// @Router			/v1/categories [post]
func (co Controller) CreateCategories(c *gin.Context) {
	var editables []CategoryEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := CategoryCreateResponse{}

	for _, editable := range editables {
		category := editable.model()

		err := co.Categories.Create(&category)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCategory(category)
		r.Data = append(r.Data, CategoryResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List categories
// @Description	Returns a list of categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
// @Param			name		query	string	false	"Filter by name, glob patterns are supported"
// @Param			archived	query	bool	false	"Is the category archived?"
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	_ = c.Bind(&filter)

	categories, err := co.Categories.List(archivedFilter(c, filter.Archived))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	data := []Category{}
	for _, category := range categories {
		if filter.Name != "" && !glob.Glob(filter.Name, category.Name) {
			continue
		}

		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryResponse
// @Failure		400	{object}	CategoryResponse
// @Failure		404	{object}	CategoryResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	category, ok := bindResource(c, co.Categories)
	if !ok {
		return
	}

	data := newCategory(category)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Get category ancestors
// @Description	Returns the chain from the category up to its root, the category itself first
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		404	{object}	CategoryListResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id}/ancestors [get]
func (co Controller) GetCategoryAncestors(c *gin.Context) {
	category, ok := bindResource(c, co.Categories)
	if !ok {
		return
	}

	ancestors, err := ledger.Ancestors(co.DB, category.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(ancestors))
	for _, ancestor := range ancestors {
		data = append(data, newCategory(ancestor))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Get category descendants
// @Description	Returns all categories below this one, in breadth-first order
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		404	{object}	CategoryListResponse
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id}/descendants [get]
func (co Controller) GetCategoryDescendants(c *gin.Context) {
	category, ok := bindResource(c, co.Categories)
	if !ok {
		return
	}

	descendants, err := ledger.Descendants(co.DB, category.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	data := make([]Category, 0, len(descendants))
	for _, descendant := range descendants {
		data = append(data, newCategory(descendant))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// @Summary		Update category
// @Description	Updates a category. Reparenting runs the full cycle check again.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	CategoryResponse
// @Failure		404			{object}	CategoryResponse
// @Param			id			path		URIID				true	"ID formatted as string"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	category, ok := bindResource(c, co.Categories)
	if !ok {
		return
	}

	editable := newCategory(category).CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryResponse{Error: &e})
		return
	}

	updated, err := co.Categories.Update(category.ID, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryResponse{Error: &e})
		return
	}

	data := newCategory(updated)
	c.JSON(http.StatusOK, CategoryResponse{Data: &data})
}

// @Summary		Delete category
// @Description	Deletes a category. Deletion is restricted while transactions, budgets or child categories still reference it.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ID formatted as string"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	deleteResource(c, co.Categories)
}

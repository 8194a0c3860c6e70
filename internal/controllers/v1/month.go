package v1

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/httperror"
	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/bookkeeper-app/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:month", httputil.OptionsGet)
		r.GET("/:month", co.GetMonth)
	}
}

type MonthResponse struct {
	Data  []ledger.CategoryMonth `json:"data"`  // Every category with its spending and budget status for the month
	Error *string                `json:"error"` // The error, if any occurred
}

// @Summary		Month report
// @Description	Returns the state of all categories for a month: what was spent in each category including its subtree, and the budget status where a budget exists for the month.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func (co Controller) GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	report, err := ledger.Report(co.DB, uri.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: report})
}

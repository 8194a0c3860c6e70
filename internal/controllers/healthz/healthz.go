// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/httperror"
	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Controller struct {
	DB *gorm.DB
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", co.Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func (co Controller) Get(c *gin.Context) {
	sqlDB, err := co.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	c.Status(http.StatusNoContent)
}

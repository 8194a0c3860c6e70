package v1

import (
	"net/http"

	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/bookkeeper-app/backend/internal/repository"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP
// OPTIONS request for a specific resource.
func resourceOptionsDetail[R repository.Model](c *gin.Context, repo *repository.Repository[R]) {
	if _, ok := bindResource(c, repo); !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// bindResource binds the ID from the URI and loads the resource it
// refers to. On failure the error response has already been written.
func bindResource[R repository.Model](c *gin.Context, repo *repository.Repository[R]) (resource R, ok bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return resource, false
	}

	resource, err = repo.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return resource, false
	}

	return resource, true
}

// deleteResource deletes the resource a request refers to, honoring
// the entity's deletion policy.
func deleteResource[R repository.Model](c *gin.Context, repo *repository.Repository[R]) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = repo.Delete(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

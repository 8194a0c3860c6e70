package v1

import (
	"github.com/bookkeeper-app/backend/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// archivedFilter narrows a list query to the archived state, but only
// when the query string actually contains the parameter.
func archivedFilter(c *gin.Context, archived bool) repository.Filter {
	return func(db *gorm.DB) *gorm.DB {
		if _, ok := c.GetQuery("archived"); !ok {
			return db
		}

		return db.Where("archived = ?", archived)
	}
}

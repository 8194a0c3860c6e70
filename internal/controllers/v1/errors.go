package v1

import (
	"errors"
	"net/http"

	"github.com/bookkeeper-app/backend/internal/models"
	"gorm.io/gorm"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for a ledger error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	// Validation, duplicate, reference and cycle errors are all caused
	// by the request
	return http.StatusBadRequest
}

// Package httperr translates the service error taxonomy into HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/models"
)

// Status maps a service error onto an HTTP status code. Unknown errors are
// treated as internal.
func Status(err error) int {
	var (
		validation models.ValidationError
		notFound   models.NotFoundError
		duplicate  models.DuplicateError
		unauth     models.UnauthorizedError
		external   models.ExternalServiceError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &duplicate):
		return http.StatusConflict
	case errors.As(err, &unauth):
		return http.StatusUnauthorized
	case errors.As(err, &external):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes the error as an {"error": ...} body with the mapped status.
func JSON(c *gin.Context, err error) {
	c.JSON(Status(err), gin.H{"error": err.Error()})
}

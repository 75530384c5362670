package handler

import (
	"errors"
	"net/http"

	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps the domain error taxonomy to HTTP. Anything outside the
// taxonomy becomes a generic 500; store details never reach the caller.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": "ID already exists"})
	case errors.Is(err, domain.ErrInvalidItem), errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store unavailable, retry later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

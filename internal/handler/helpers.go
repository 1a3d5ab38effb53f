package handler

import (
	"errors"
	"net/http"

	"islandhop/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps domain error kinds to HTTP statuses. Paywall is
// checked before the broader Forbidden so the upgrade hint survives.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPaywall):
		c.JSON(http.StatusForbidden, gin.H{"error": "Upgrade to Pro or VIP to access this feature"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

package controllers

import (
	"errors"
	"net/http"

	"conference-management-api/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service error kinds to HTTP responses. Unknown errors come
// back as a generic 500 so storage detail never reaches the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// callerFromContext builds the service-layer caller identity from the values
// AuthMiddleware stashed in the gin context.
func callerFromContext(c *gin.Context) services.Caller {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	caller := services.Caller{}
	if id, ok := userID.(int); ok {
		caller.UserID = id
	}
	if r, ok := role.(string); ok {
		caller.Role = r
	}
	return caller
}

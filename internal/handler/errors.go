package handler

import (
	"errors"
	"log"
	"net/http"

	"dailytodo/internal/middleware"
	"dailytodo/internal/model"
	"dailytodo/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps service errors onto HTTP statuses. Anything unexpected is
// logged and reported as a 500 without leaking the cause.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidTask), errors.Is(err, model.ErrInvalidDay):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Task list was modified concurrently, please retry"})
	default:
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// authenticatedUser aborts with 401 when the middleware did not run.
func authenticatedUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return uuid.Nil, false
	}
	return userID, true
}

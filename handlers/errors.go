package handlers

import (
	"ChronicStable/repositories"
	"errors"

	"github.com/gin-gonic/gin"
)

// respondDataError maps repository errors to HTTP statuses: integrity
// violations are the client's fault (422), invalid statuses are bad input
// (400), anything else is a server error.
func respondDataError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrIntegrity):
		c.JSON(422, gin.H{"error": err.Error()})
	case errors.Is(err, repositories.ErrInvalidStatus):
		c.JSON(400, gin.H{"error": err.Error()})
	default:
		c.JSON(500, gin.H{"error": err.Error()})
	}
}

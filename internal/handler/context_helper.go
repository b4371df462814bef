package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/college-adp-api/internal/middleware"
	"github.com/campushq/college-adp-api/internal/models"
)

// claimsFromContext returns the session claims the JWT middleware stored on
// the request. Routes are always registered behind Authenticate, so a miss
// means a wiring bug; returning zero claims makes it fail the scope checks
// instead of panicking.
func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return &models.JWTClaims{}
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return &models.JWTClaims{}
	}
	return claims
}

// actorID identifies the acting user for routes that record who performed a
// mutation (marking submissions, assigning defaulter work, electives).
func actorID(c *gin.Context) string {
	return claimsFromContext(c).UserID
}

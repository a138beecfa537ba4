package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwthandling "github.com/Trust-Tai/bioptrics-survey-backend/pkg/jwt-handling"
)

// IsInstanceIDInJWTAllowed rejects requests whose token references an
// instance this service is not configured to serve.
func IsInstanceIDInJWTAllowed(allowedInstanceIDs []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

		for _, id := range allowedInstanceIDs {
			if id == token.InstanceID {
				c.Next()
				return
			}
		}

		slog.Warn("instance id not allowed", slog.String("instanceID", token.InstanceID))
		c.JSON(http.StatusForbidden, gin.H{"error": "instance id not allowed"})
		c.Abort()
	}
}

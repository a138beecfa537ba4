package apihandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mw "github.com/Trust-Tai/bioptrics-survey-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/Trust-Tai/bioptrics-survey-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.GET("/renew-token", mw.GetAndValidateAuthoringUserJWT(h.tokenSignKey), h.getRenewToken)
}

// getRenewToken issues a fresh token for the already authenticated user so
// an authoring session can outlive a single token lifetime.
func (h *HttpEndpoints) getRenewToken(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	slog.Info("renewing token", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject))

	newToken, err := jwthandling.GenerateNewAuthoringUserToken(
		h.tokenExpiresIn,
		token.Subject,
		token.InstanceID,
		token.IsAdmin,
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("error generating token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": newToken,
		"expiresAt":   time.Now().Add(h.tokenExpiresIn).Unix(),
	})
}

package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/Trust-Tai/bioptrics-survey-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/Trust-Tai/bioptrics-survey-backend/pkg/jwt-handling"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/question"
	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

func (h *HttpEndpoints) AddQuestionTemplateAPI(rg *gin.RouterGroup) {
	templatesGroup := rg.Group("/question-templates")

	templatesGroup.Use(mw.GetAndValidateAuthoringUserJWT(h.tokenSignKey))
	templatesGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		templatesGroup.GET("/", h.getQuestionTemplates)
		templatesGroup.POST("/", mw.RequirePayload(), h.saveQuestionTemplate)
		templatesGroup.DELETE("/:templateID", h.deleteQuestionTemplate)
	}
}

type saveTemplateReq struct {
	Name    string                        `json:"name"`
	Content questionTypes.QuestionContent `json:"content"`
}

func (h *HttpEndpoints) saveQuestionTemplate(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	var req saveTemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	slog.Info("saving question template", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("name", req.Name))

	templateID, err := question.SaveQuestionTemplate(token.InstanceID, req.Name, req.Content, token.Subject)
	if err != nil {
		slog.Error("error saving question template", slog.String("error", err.Error()))
		abortWithError(c, err, "error saving question template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": templateID})
}

func (h *HttpEndpoints) getQuestionTemplates(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	templates, err := question.GetQuestionTemplates(token.InstanceID)
	if err != nil {
		slog.Error("error getting question templates", slog.String("error", err.Error()))
		abortWithError(c, err, "error getting question templates")
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (h *HttpEndpoints) deleteQuestionTemplate(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	templateID := c.Param("templateID")

	slog.Info("deleting question template", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("templateID", templateID))

	if err := question.DeleteQuestionTemplate(token.InstanceID, templateID); err != nil {
		slog.Error("error deleting question template", slog.String("error", err.Error()), slog.String("templateID", templateID))
		abortWithError(c, err, "error deleting question template")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}

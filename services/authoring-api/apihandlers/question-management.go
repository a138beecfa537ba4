package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mw "github.com/Trust-Tai/bioptrics-survey-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/Trust-Tai/bioptrics-survey-backend/pkg/jwt-handling"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/question"
	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

func (h *HttpEndpoints) AddQuestionManagementAPI(rg *gin.RouterGroup) {
	questionsGroup := rg.Group("/questions")

	questionsGroup.Use(mw.GetAndValidateAuthoringUserJWT(h.tokenSignKey))
	questionsGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		questionsGroup.GET("/", h.getQuestionsByIDs)
		questionsGroup.POST("/", mw.RequirePayload(), h.createQuestion)

		questionsGroup.GET("/:questionID", h.getQuestion)
		questionsGroup.GET("/:questionID/current", h.getCurrentQuestionVersion)
		questionsGroup.PUT("/:questionID", mw.RequirePayload(), h.updateQuestion)
		questionsGroup.DELETE("/:questionID", h.deleteQuestion)
	}
}

func (h *HttpEndpoints) createQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	var content questionTypes.QuestionContent
	if err := c.ShouldBindJSON(&content); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	slog.Info("creating question", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject))

	questionID, err := question.CreateQuestion(token.InstanceID, content, token.Subject)
	if err != nil {
		slog.Error("error creating question", slog.String("error", err.Error()))
		abortWithError(c, err, "error creating question")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": questionID})
}

func (h *HttpEndpoints) updateQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	questionID := c.Param("questionID")

	var content questionTypes.QuestionContent
	if err := c.ShouldBindJSON(&content); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	slog.Info("updating question", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("questionID", questionID))

	newVersion, err := question.UpdateQuestion(token.InstanceID, questionID, content, token.Subject)
	if err != nil {
		slog.Error("error updating question", slog.String("error", err.Error()), slog.String("questionID", questionID))
		abortWithError(c, err, "error updating question")
		return
	}
	c.JSON(http.StatusOK, gin.H{"version": newVersion})
}

func (h *HttpEndpoints) getQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	questionID := c.Param("questionID")

	q, err := question.GetQuestion(token.InstanceID, questionID)
	if err != nil {
		slog.Error("error getting question", slog.String("error", err.Error()), slog.String("questionID", questionID))
		abortWithError(c, err, "error getting question")
		return
	}
	c.JSON(http.StatusOK, gin.H{"question": q})
}

func (h *HttpEndpoints) getCurrentQuestionVersion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	questionID := c.Param("questionID")

	currentVersion, err := question.GetCurrentVersion(token.InstanceID, questionID)
	if err != nil {
		slog.Error("error getting current question version", slog.String("error", err.Error()), slog.String("questionID", questionID))
		abortWithError(c, err, "error getting current question version")
		return
	}
	c.JSON(http.StatusOK, gin.H{"version": currentVersion})
}

func (h *HttpEndpoints) deleteQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	questionID := c.Param("questionID")

	slog.Info("deleting question", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("questionID", questionID))

	if err := question.DeleteQuestion(token.InstanceID, questionID); err != nil {
		slog.Error("error deleting question", slog.String("error", err.Error()), slog.String("questionID", questionID))
		abortWithError(c, err, "error deleting question")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}

func (h *HttpEndpoints) getQuestionsByIDs(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	idsParam := c.DefaultQuery("ids", "")
	if idsParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter missing"})
		return
	}
	ids := strings.Split(idsParam, ",")

	questions, err := question.GetQuestionsByIDs(token.InstanceID, ids)
	if err != nil {
		slog.Error("error getting questions", slog.String("error", err.Error()))
		abortWithError(c, err, "error getting questions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

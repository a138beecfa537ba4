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

func (h *HttpEndpoints) AddSurveyManagementAPI(rg *gin.RouterGroup) {
	surveysGroup := rg.Group("/surveys")

	surveysGroup.Use(mw.GetAndValidateAuthoringUserJWT(h.tokenSignKey))
	surveysGroup.Use(mw.IsInstanceIDInJWTAllowed(h.allowedInstanceIDs))
	{
		surveysGroup.GET("/", h.getSurveys)
		surveysGroup.POST("/", mw.RequirePayload(), h.createSurvey)

		surveysGroup.GET("/:surveyID", h.getSurvey)
		surveysGroup.PUT("/:surveyID", mw.RequirePayload(), h.updateSurvey)
		surveysGroup.DELETE("/:surveyID", h.deleteSurvey)

		surveysGroup.PUT("/:surveyID/publish", h.publishSurvey)
		surveysGroup.PUT("/:surveyID/unpublish", h.unpublishSurvey)
	}
}

func (h *HttpEndpoints) createSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	var survey questionTypes.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	slog.Info("creating survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject))

	surveyID, err := question.CreateSurvey(token.InstanceID, survey, token.Subject)
	if err != nil {
		slog.Error("error creating survey", slog.String("error", err.Error()))
		abortWithError(c, err, "error creating survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": surveyID})
}

func (h *HttpEndpoints) getSurveys(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)

	includeUnpublished := c.DefaultQuery("includeUnpublished", "true") == "true"

	surveys, err := question.GetSurveys(token.InstanceID, includeUnpublished)
	if err != nil {
		slog.Error("error getting surveys", slog.String("error", err.Error()))
		abortWithError(c, err, "error getting surveys")
		return
	}
	c.JSON(http.StatusOK, gin.H{"surveys": surveys})
}

func (h *HttpEndpoints) getSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	surveyID := c.Param("surveyID")

	survey, err := question.GetSurvey(token.InstanceID, surveyID)
	if err != nil {
		slog.Error("error getting survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		abortWithError(c, err, "error getting survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) updateSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	surveyID := c.Param("surveyID")

	var survey questionTypes.Survey
	if err := c.ShouldBindJSON(&survey); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	slog.Info("updating survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("surveyID", surveyID))

	if err := question.UpdateSurvey(token.InstanceID, surveyID, survey, token.Subject); err != nil {
		slog.Error("error updating survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		abortWithError(c, err, "error updating survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "survey updated"})
}

func (h *HttpEndpoints) deleteSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	surveyID := c.Param("surveyID")

	slog.Info("deleting survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("surveyID", surveyID))

	if err := question.DeleteSurvey(token.InstanceID, surveyID); err != nil {
		slog.Error("error deleting survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		abortWithError(c, err, "error deleting survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "survey deleted"})
}

func (h *HttpEndpoints) publishSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	surveyID := c.Param("surveyID")

	slog.Info("publishing survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("surveyID", surveyID))

	survey, err := question.PublishSurvey(token.InstanceID, surveyID, token.Subject)
	if err != nil {
		slog.Error("error publishing survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		abortWithError(c, err, "error publishing survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) unpublishSurvey(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AuthoringUserClaims)
	surveyID := c.Param("surveyID")

	slog.Info("unpublishing survey", slog.String("instanceID", token.InstanceID), slog.String("userID", token.Subject), slog.String("surveyID", surveyID))

	survey, err := question.UnpublishSurvey(token.InstanceID, surveyID, token.Subject)
	if err != nil {
		slog.Error("error unpublishing survey", slog.String("error", err.Error()), slog.String("surveyID", surveyID))
		abortWithError(c, err, "error unpublishing survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

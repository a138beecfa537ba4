package question

import (
	"time"

	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/notifications"
	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/utils"
)

// CreateSurvey stores a new survey in draft state (never published).
func CreateSurvey(instanceID string, survey questionTypes.Survey, authorID string) (string, error) {
	if survey.Name == "" {
		return "", questionTypes.NewValidationError("survey name must not be empty")
	}

	now := time.Now()
	survey.Published = 0
	survey.Unpublished = 0
	survey.VersionID = ""
	survey.CreatedAt = now
	survey.CreatedBy = authorID
	survey.UpdatedAt = now
	survey.UpdatedBy = authorID

	if err := questionBankDBService.CreateSurvey(instanceID, &survey); err != nil {
		return "", err
	}
	return survey.ID.Hex(), nil
}

func GetSurvey(instanceID string, surveyID string) (questionTypes.Survey, error) {
	return questionBankDBService.GetSurveyByID(instanceID, surveyID)
}

func GetSurveys(instanceID string, includeUnpublished bool) ([]questionTypes.Survey, error) {
	return questionBankDBService.GetSurveys(instanceID, includeUnpublished)
}

// UpdateSurvey replaces the authorable parts of the stored survey. Publish
// state is carried over from the stored document, it only changes through
// PublishSurvey / UnpublishSurvey.
func UpdateSurvey(instanceID string, surveyID string, updated questionTypes.Survey, authorID string) error {
	if updated.Name == "" {
		return questionTypes.NewValidationError("survey name must not be empty")
	}

	stored, err := questionBankDBService.GetSurveyByID(instanceID, surveyID)
	if err != nil {
		return err
	}

	stored.Name = updated.Name
	stored.Description = updated.Description
	stored.Sections = updated.Sections
	stored.Theme = updated.Theme
	stored.Demographics = updated.Demographics
	stored.UpdatedBy = authorID

	return questionBankDBService.ReplaceSurvey(instanceID, &stored)
}

// PublishSurvey makes the survey available to respondents, stamping the
// publish time and generating a fresh version id. Collaborators are
// notified best effort.
func PublishSurvey(instanceID string, surveyID string, authorID string) (questionTypes.Survey, error) {
	survey, err := questionBankDBService.GetSurveyByID(instanceID, surveyID)
	if err != nil {
		return survey, err
	}

	var usedVersionIDs []string
	if survey.VersionID != "" {
		usedVersionIDs = append(usedVersionIDs, survey.VersionID)
	}

	survey.Published = time.Now().Unix()
	survey.Unpublished = 0
	survey.VersionID = utils.GenerateSurveyVersionID(usedVersionIDs)
	survey.UpdatedBy = authorID

	if err := questionBankDBService.ReplaceSurvey(instanceID, &survey); err != nil {
		return survey, err
	}

	notifications.OnSurveyPublished(instanceID, survey, authorID)
	return survey, nil
}

// UnpublishSurvey takes the survey offline for respondents.
func UnpublishSurvey(instanceID string, surveyID string, authorID string) (questionTypes.Survey, error) {
	survey, err := questionBankDBService.GetSurveyByID(instanceID, surveyID)
	if err != nil {
		return survey, err
	}

	if !survey.IsPublished() {
		return survey, questionTypes.NewValidationError("survey is not published")
	}

	survey.Unpublished = time.Now().Unix()
	survey.UpdatedBy = authorID

	if err := questionBankDBService.ReplaceSurvey(instanceID, &survey); err != nil {
		return survey, err
	}
	return survey, nil
}

// DeleteSurvey removes the survey document. Deleting a non-existent id is
// not an error.
func DeleteSurvey(instanceID string, surveyID string) error {
	return questionBankDBService.DeleteSurvey(instanceID, surveyID)
}

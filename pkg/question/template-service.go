package question

import (
	"github.com/google/uuid"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

// SaveQuestionTemplate stores the builder's working state under a template
// name and returns the assigned template id.
func SaveQuestionTemplate(instanceID string, name string, content questionTypes.QuestionContent, authorID string) (string, error) {
	if name == "" {
		return "", questionTypes.NewValidationError("template name must not be empty")
	}

	template := questionTypes.QuestionTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Content:   content,
		CreatedBy: authorID,
	}

	if err := questionBankDBService.SaveQuestionTemplate(instanceID, &template); err != nil {
		return "", err
	}
	return template.ID, nil
}

func GetQuestionTemplates(instanceID string) ([]questionTypes.QuestionTemplate, error) {
	return questionBankDBService.GetQuestionTemplates(instanceID)
}

// DeleteQuestionTemplate removes the template. Deleting a non-existent id
// is not an error.
func DeleteQuestionTemplate(instanceID string, templateID string) error {
	return questionBankDBService.DeleteQuestionTemplate(instanceID, templateID)
}

package question

import (
	"log/slog"

	questionbank "github.com/Trust-Tai/bioptrics-survey-backend/pkg/db/question-bank"
	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

// How often a version append is retried when a concurrent writer advanced
// the question in between our read and write.
const maxVersionAppendAttempts = 3

var questionBankDBService *questionbank.QuestionBankDBService

func Init(qbDB *questionbank.QuestionBankDBService) {
	questionBankDBService = qbDB
}

// CreateQuestion validates the content and stores a new question aggregate
// with version 1. Returns the assigned question id.
func CreateQuestion(instanceID string, content questionTypes.QuestionContent, authorID string) (string, error) {
	q, err := questionTypes.NewQuestion(content, authorID)
	if err != nil {
		return "", err
	}

	if err := questionBankDBService.CreateQuestion(instanceID, q); err != nil {
		return "", err
	}
	return q.ID.Hex(), nil
}

// UpdateQuestion appends a new version to the question's history and
// returns the new version number. The append is a conditional write keyed
// on the currentVersion observed at read time; on conflict the whole
// read-append sequence is retried up to maxVersionAppendAttempts times.
func UpdateQuestion(instanceID string, questionID string, content questionTypes.QuestionContent, authorID string) (int, error) {
	if err := content.Validate(); err != nil {
		return 0, err
	}

	for attempt := 0; attempt < maxVersionAppendAttempts; attempt++ {
		q, err := questionBankDBService.GetQuestionByID(instanceID, questionID)
		if err != nil {
			return 0, err
		}

		observedVersion := q.CurrentVersion
		newVersionNumber, err := q.AppendVersion(content, authorID)
		if err != nil {
			return 0, err
		}

		matched, err := questionBankDBService.AppendQuestionVersion(
			instanceID,
			questionID,
			observedVersion,
			q.Versions[len(q.Versions)-1],
		)
		if err != nil {
			return 0, err
		}
		if matched {
			return newVersionNumber, nil
		}

		slog.Debug("question version append lost write race, retrying",
			slog.String("instanceID", instanceID),
			slog.String("questionID", questionID),
			slog.Int("observedVersion", observedVersion))
	}
	return 0, questionTypes.ErrConflict
}

// GetCurrentVersion returns the current version of the question.
func GetCurrentVersion(instanceID string, questionID string) (questionTypes.QuestionVersion, error) {
	q, err := questionBankDBService.GetQuestionByID(instanceID, questionID)
	if err != nil {
		return questionTypes.QuestionVersion{}, err
	}
	return q.GetCurrentVersion()
}

// GetQuestion returns the whole aggregate including its version history.
func GetQuestion(instanceID string, questionID string) (questionTypes.Question, error) {
	return questionBankDBService.GetQuestionByID(instanceID, questionID)
}

// DeleteQuestion removes the question with all its versions. Removing a
// non-existent id succeeds.
func DeleteQuestion(instanceID string, questionID string) error {
	return questionBankDBService.DeleteQuestion(instanceID, questionID)
}

// GetQuestionsByIDs batch-fetches question aggregates. Missing ids are
// omitted from the result; callers needing to detect them diff against the
// requested set.
func GetQuestionsByIDs(instanceID string, questionIDs []string) ([]questionTypes.Question, error) {
	return questionBankDBService.GetQuestionsByIDs(instanceID, questionIDs)
}

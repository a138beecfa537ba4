package types

import "errors"

var (
	// ErrNotFound is returned when an operation targets a question id that
	// does not exist.
	ErrNotFound = errors.New("question not found")

	// ErrConflict is returned when a version append lost the write race
	// on every retry.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrNoVersions signals an aggregate without any version, which should
	// not exist once a question has been created.
	ErrNoVersions = errors.New("question has no versions")
)

// ValidationError describes malformed authoring input. It is never retried
// automatically.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// Validate checks the content against the rules the store enforces on
// create and update: question text must be present, choice-like response
// types need at least one option.
func (c QuestionContent) Validate() error {
	if c.QuestionText == "" {
		return NewValidationError("questionText must not be empty")
	}
	if ResponseTypeRequiresOptions(c.ResponseType) && len(c.Options) < 1 {
		return NewValidationError("response type '" + c.ResponseType + "' requires at least one option")
	}
	return nil
}

package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// response types
const (
	RESPONSE_TYPE_SINGLE_CHOICE = "single-choice"
	RESPONSE_TYPE_MULTI_CHOICE  = "multi-choice"
	RESPONSE_TYPE_DROPDOWN      = "dropdown"
	RESPONSE_TYPE_SHORT_TEXT    = "short-text"
	RESPONSE_TYPE_LONG_TEXT     = "long-text"
	RESPONSE_TYPE_RATING        = "rating"
	RESPONSE_TYPE_LIKERT        = "likert"
	RESPONSE_TYPE_RANKING       = "ranking"
	RESPONSE_TYPE_DATE          = "date"
	RESPONSE_TYPE_FILE_UPLOAD   = "file-upload"
)

// feedback types
const (
	FEEDBACK_TYPE_TEXT   = "text"
	FEEDBACK_TYPE_RATING = "rating"
	FEEDBACK_TYPE_FILE   = "file"
)

type Question struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CurrentVersion int                `bson:"currentVersion" json:"currentVersion"`
	Versions       []QuestionVersion  `bson:"versions" json:"versions"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	CreatedBy      string             `bson:"createdBy" json:"createdBy"`
}

// QuestionVersion is one immutable snapshot of the authorable content of a
// question. Once appended to a question's version history it is never
// modified in place.
type QuestionVersion struct {
	Version      int    `bson:"version" json:"version"`
	QuestionText string `bson:"questionText" json:"questionText"`
	Description  string `bson:"description,omitempty" json:"description,omitempty"`
	ResponseType string `bson:"responseType" json:"responseType"`

	Options    []string    `bson:"options,omitempty" json:"options,omitempty"`
	ScaleRange *ScaleRange `bson:"scaleRange,omitempty" json:"scaleRange,omitempty"`

	CategoryTags []string `bson:"categoryTags,omitempty" json:"categoryTags,omitempty"`
	SurveyThemes []string `bson:"surveyThemes,omitempty" json:"surveyThemes,omitempty"`
	Keywords     []string `bson:"keywords,omitempty" json:"keywords,omitempty"`

	BranchingLogic *BranchingConfig `bson:"branchingLogic,omitempty" json:"branchingLogic,omitempty"`

	CollectFeedback bool   `bson:"collectFeedback,omitempty" json:"collectFeedback,omitempty"`
	FeedbackType    string `bson:"feedbackType,omitempty" json:"feedbackType,omitempty"`
	FeedbackPrompt  string `bson:"feedbackPrompt,omitempty" json:"feedbackPrompt,omitempty"`

	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
}

type ScaleRange struct {
	Min  float64 `bson:"min" json:"min"`
	Max  float64 `bson:"max" json:"max"`
	Step float64 `bson:"step,omitempty" json:"step,omitempty"`
}

// QuestionContent is the authorable part of a question version, as submitted
// by the authoring client. Version number and author stamps are assigned by
// the aggregate.
type QuestionContent struct {
	QuestionText string `json:"questionText"`
	Description  string `json:"description,omitempty"`
	ResponseType string `json:"responseType"`

	Options    []string    `json:"options,omitempty"`
	ScaleRange *ScaleRange `json:"scaleRange,omitempty"`

	CategoryTags []string `json:"categoryTags,omitempty"`
	SurveyThemes []string `json:"surveyThemes,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`

	BranchingLogic *BranchingConfig `json:"branchingLogic,omitempty"`

	CollectFeedback bool   `json:"collectFeedback,omitempty"`
	FeedbackType    string `json:"feedbackType,omitempty"`
	FeedbackPrompt  string `json:"feedbackPrompt,omitempty"`
}

// ResponseTypeRequiresOptions returns true for choice-like response types
// that need at least one answer option to be presentable.
func ResponseTypeRequiresOptions(responseType string) bool {
	switch responseType {
	case RESPONSE_TYPE_SINGLE_CHOICE,
		RESPONSE_TYPE_MULTI_CHOICE,
		RESPONSE_TYPE_DROPDOWN,
		RESPONSE_TYPE_RANKING,
		RESPONSE_TYPE_LIKERT:
		return true
	}
	return false
}

// NewQuestion builds a question aggregate with its first version.
func NewQuestion(content QuestionContent, authorID string) (*Question, error) {
	if err := content.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Question{
		CurrentVersion: 1,
		Versions: []QuestionVersion{
			newVersionFromContent(content, 1, authorID, now),
		},
		CreatedAt: now,
		CreatedBy: authorID,
	}, nil
}

// AppendVersion adds a new version built from content and advances the
// current version pointer. Prior versions are left untouched. Returns the
// new version number.
func (q *Question) AppendVersion(content QuestionContent, authorID string) (int, error) {
	if err := content.Validate(); err != nil {
		return 0, err
	}

	nextVersion := q.CurrentVersion + 1
	q.Versions = append(q.Versions, newVersionFromContent(content, nextVersion, authorID, time.Now()))
	q.CurrentVersion = nextVersion
	return nextVersion, nil
}

// GetCurrentVersion returns the version whose number matches
// CurrentVersion. If no exact match exists (invariant violated by a bug
// elsewhere), it falls back to the last element of the history.
func (q Question) GetCurrentVersion() (QuestionVersion, error) {
	if len(q.Versions) < 1 {
		return QuestionVersion{}, ErrNoVersions
	}
	for _, v := range q.Versions {
		if v.Version == q.CurrentVersion {
			return v, nil
		}
	}
	return q.Versions[len(q.Versions)-1], nil
}

func newVersionFromContent(content QuestionContent, version int, authorID string, at time.Time) QuestionVersion {
	return QuestionVersion{
		Version:         version,
		QuestionText:    content.QuestionText,
		Description:     content.Description,
		ResponseType:    content.ResponseType,
		Options:         copyStrings(content.Options),
		ScaleRange:      copyScaleRange(content.ScaleRange),
		CategoryTags:    dedupStrings(content.CategoryTags),
		SurveyThemes:    dedupStrings(content.SurveyThemes),
		Keywords:        dedupStrings(content.Keywords),
		BranchingLogic:  content.BranchingLogic.Copy(),
		CollectFeedback: content.CollectFeedback,
		FeedbackType:    content.FeedbackType,
		FeedbackPrompt:  content.FeedbackPrompt,
		UpdatedAt:       at,
		UpdatedBy:       authorID,
	}
}

func copyStrings(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

// dedupStrings removes duplicates while keeping first occurrence order.
func dedupStrings(src []string) []string {
	if src == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(src))
	dst := make([]string, 0, len(src))
	for _, s := range src {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		dst = append(dst, s)
	}
	return dst
}

func copyScaleRange(src *ScaleRange) *ScaleRange {
	if src == nil {
		return nil
	}
	cp := *src
	return &cp
}

package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	Sections     []SurveySection `bson:"sections,omitempty" json:"sections,omitempty"`
	Theme        *SurveyTheme    `bson:"theme,omitempty" json:"theme,omitempty"`
	Demographics *Demographics   `bson:"demographics,omitempty" json:"demographics,omitempty"`

	// unix timestamps, zero means never published / not unpublished
	Published   int64  `bson:"published,omitempty" json:"published,omitempty"`
	Unpublished int64  `bson:"unpublished,omitempty" json:"unpublished,omitempty"`
	VersionID   string `bson:"versionID,omitempty" json:"versionId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
}

// SurveySection groups an ordered list of questions under a title. Question
// order within the section is the sequential presentation order used when
// branching yields no destination.
type SurveySection struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	QuestionIDs []string `bson:"questionIds,omitempty" json:"questionIds,omitempty"`
}

type SurveyTheme struct {
	PrimaryColor    string `bson:"primaryColor,omitempty" json:"primaryColor,omitempty"`
	BackgroundColor string `bson:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	LogoURL         string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	FontFamily      string `bson:"fontFamily,omitempty" json:"fontFamily,omitempty"`
}

type Demographics struct {
	CollectAge        bool `bson:"collectAge,omitempty" json:"collectAge,omitempty"`
	CollectGender     bool `bson:"collectGender,omitempty" json:"collectGender,omitempty"`
	CollectLocation   bool `bson:"collectLocation,omitempty" json:"collectLocation,omitempty"`
	CollectEducation  bool `bson:"collectEducation,omitempty" json:"collectEducation,omitempty"`
	CollectOccupation bool `bson:"collectOccupation,omitempty" json:"collectOccupation,omitempty"`
}

// IsPublished reports whether the survey is currently available to
// respondents.
func (s Survey) IsPublished() bool {
	return s.Published > 0 && s.Unpublished == 0
}

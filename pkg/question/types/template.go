package types

import "time"

// QuestionTemplate is a named, reusable snapshot of the question builder's
// working state. Templates have no version history and are deleted
// explicitly.
type QuestionTemplate struct {
	ID        string          `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string          `bson:"name" json:"name"`
	Content   QuestionContent `bson:"content" json:"content"`
	CreatedAt time.Time       `bson:"createdAt" json:"createdAt"`
	CreatedBy string          `bson:"createdBy" json:"createdBy"`
}

package types

import (
	"testing"
	"time"
)

func TestSurveyIsPublished(t *testing.T) {
	now := time.Now().Unix()

	t.Run("draft", func(t *testing.T) {
		s := Survey{}
		if s.IsPublished() {
			t.Error("draft survey should not be published")
		}
	})

	t.Run("published", func(t *testing.T) {
		s := Survey{Published: now}
		if !s.IsPublished() {
			t.Error("survey should be published")
		}
	})

	t.Run("unpublished after publish", func(t *testing.T) {
		s := Survey{Published: now, Unpublished: now + 60}
		if s.IsPublished() {
			t.Error("unpublished survey should not be published")
		}
	})
}

package types

import (
	"testing"
)

func TestNewQuestion(t *testing.T) {

	t.Run("empty question text", func(t *testing.T) {
		_, err := NewQuestion(QuestionContent{
			ResponseType: RESPONSE_TYPE_SHORT_TEXT,
		}, "author1")
		if err == nil {
			t.Error("should produce error")
		}
	})

	t.Run("choice type without options", func(t *testing.T) {
		_, err := NewQuestion(QuestionContent{
			QuestionText: "How satisfied are you?",
			ResponseType: RESPONSE_TYPE_SINGLE_CHOICE,
		}, "author1")
		if err == nil {
			t.Error("should produce error")
		}
	})

	t.Run("free text without options", func(t *testing.T) {
		q, err := NewQuestion(QuestionContent{
			QuestionText: "Any other comments?",
			ResponseType: RESPONSE_TYPE_LONG_TEXT,
		}, "author1")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if q.CurrentVersion != 1 {
			t.Errorf("unexpected current version: %d", q.CurrentVersion)
		}
		if len(q.Versions) != 1 || q.Versions[0].Version != 1 {
			t.Errorf("unexpected versions: %v", q.Versions)
		}
		if q.Versions[0].UpdatedBy != "author1" || q.CreatedBy != "author1" {
			t.Error("author not stamped")
		}
	})

	t.Run("classification tags are deduplicated", func(t *testing.T) {
		q, err := NewQuestion(QuestionContent{
			QuestionText: "Pick one",
			ResponseType: RESPONSE_TYPE_DROPDOWN,
			Options:      []string{"A", "B"},
			CategoryTags: []string{"hr", "wellbeing", "hr"},
		}, "author1")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if len(q.Versions[0].CategoryTags) != 2 {
			t.Errorf("unexpected category tags: %v", q.Versions[0].CategoryTags)
		}
	})
}

func TestAppendVersion(t *testing.T) {

	t.Run("version numbers stay contiguous", func(t *testing.T) {
		q, err := NewQuestion(QuestionContent{
			QuestionText: "Q1",
			ResponseType: RESPONSE_TYPE_SHORT_TEXT,
		}, "author1")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		for i := 0; i < 4; i++ {
			if _, err := q.AppendVersion(QuestionContent{
				QuestionText: "Q1 edited",
				ResponseType: RESPONSE_TYPE_SHORT_TEXT,
			}, "author2"); err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
		}

		if q.CurrentVersion != 5 {
			t.Errorf("unexpected current version: %d", q.CurrentVersion)
		}
		if len(q.Versions) != 5 {
			t.Errorf("unexpected number of versions: %d", len(q.Versions))
		}
		for i, v := range q.Versions {
			if v.Version != i+1 {
				t.Errorf("unexpected version number at %d: %d", i, v.Version)
			}
		}
	})

	t.Run("invalid content is rejected without appending", func(t *testing.T) {
		q, _ := NewQuestion(QuestionContent{
			QuestionText: "Q1",
			ResponseType: RESPONSE_TYPE_SHORT_TEXT,
		}, "author1")

		_, err := q.AppendVersion(QuestionContent{
			ResponseType: RESPONSE_TYPE_SHORT_TEXT,
		}, "author2")
		if err == nil {
			t.Error("should produce error")
		}
		if q.CurrentVersion != 1 || len(q.Versions) != 1 {
			t.Error("aggregate was modified by failed append")
		}
	})

	t.Run("prior versions are not altered", func(t *testing.T) {
		q, _ := NewQuestion(QuestionContent{
			QuestionText: "Q1",
			ResponseType: RESPONSE_TYPE_SINGLE_CHOICE,
			Options:      []string{"Yes", "No"},
		}, "author1")

		if _, err := q.AppendVersion(QuestionContent{
			QuestionText: "Q1 revised",
			ResponseType: RESPONSE_TYPE_SINGLE_CHOICE,
			Options:      []string{"Yes", "No", "Maybe"},
		}, "author2"); err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if _, err := q.AppendVersion(QuestionContent{
			QuestionText: "Q1 final",
			ResponseType: RESPONSE_TYPE_SINGLE_CHOICE,
			Options:      []string{"Yes", "No"},
		}, "author2"); err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		if q.Versions[0].QuestionText != "Q1" {
			t.Errorf("first version altered: %v", q.Versions[0].QuestionText)
		}
		if q.Versions[1].QuestionText != "Q1 revised" {
			t.Errorf("second version altered: %v", q.Versions[1].QuestionText)
		}
		if q.Versions[2].QuestionText != "Q1 final" {
			t.Errorf("third version altered: %v", q.Versions[2].QuestionText)
		}
		if q.CurrentVersion != 3 {
			t.Errorf("unexpected current version: %d", q.CurrentVersion)
		}
	})

	t.Run("submitted content is deep copied", func(t *testing.T) {
		options := []string{"Yes", "No"}
		branching := &BranchingConfig{
			Enabled: true,
			Rules: []BranchingRule{
				{Condition: CONDITION_EQUALS, Value: "No", DestinationQuestionID: "q_exit"},
			},
		}

		q, _ := NewQuestion(QuestionContent{
			QuestionText:   "Q1",
			ResponseType:   RESPONSE_TYPE_SINGLE_CHOICE,
			Options:        options,
			BranchingLogic: branching,
		}, "author1")

		// mutating caller owned data must not leak into the stored version
		options[0] = "CHANGED"
		branching.Rules[0].Value = "CHANGED"
		branching.Enabled = false

		v := q.Versions[0]
		if v.Options[0] != "Yes" {
			t.Errorf("options not copied: %v", v.Options)
		}
		if v.BranchingLogic.Rules[0].Value != "No" || !v.BranchingLogic.Enabled {
			t.Errorf("branching config not copied: %+v", v.BranchingLogic)
		}
	})
}

func TestGetCurrentVersion(t *testing.T) {

	t.Run("no versions", func(t *testing.T) {
		q := Question{}
		_, err := q.GetCurrentVersion()
		if err == nil {
			t.Error("should produce error")
		}
	})

	t.Run("exact match", func(t *testing.T) {
		q, _ := NewQuestion(QuestionContent{
			QuestionText: "Q1",
			ResponseType: RESPONSE_TYPE_SHORT_TEXT,
		}, "author1")
		_, _ = q.AppendVersion(QuestionContent{
			QuestionText: "Q1 revised",
			ResponseType: RESPONSE_TYPE_SHORT_TEXT,
		}, "author1")

		v, err := q.GetCurrentVersion()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if v.Version != q.CurrentVersion || v.QuestionText != "Q1 revised" {
			t.Errorf("unexpected version: %+v", v)
		}
	})

	t.Run("falls back to last element when pointer is off", func(t *testing.T) {
		// invariant-violating state constructed directly
		q := Question{
			CurrentVersion: 7,
			Versions: []QuestionVersion{
				{Version: 1, QuestionText: "a"},
				{Version: 2, QuestionText: "b"},
			},
		}
		v, err := q.GetCurrentVersion()
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}
		if v.Version != 2 || v.QuestionText != "b" {
			t.Errorf("unexpected fallback version: %+v", v)
		}
	})
}

package branching

import (
	"testing"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

func TestEvaluateShortCircuits(t *testing.T) {

	rules := []questionTypes.BranchingRule{
		{Condition: questionTypes.CONDITION_EQUALS, Value: "A", DestinationQuestionID: "q1"},
	}

	t.Run("nil config", func(t *testing.T) {
		dest := Evaluate(nil, Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE)
		if dest != SequentialContinue {
			t.Errorf("unexpected destination: %s", dest)
		}
	})

	t.Run("disabled with matching rules", func(t *testing.T) {
		config := &questionTypes.BranchingConfig{
			Enabled: false,
			Rules:   rules,
		}
		dest := Evaluate(config, Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE)
		if dest != SequentialContinue {
			t.Errorf("unexpected destination: %s", dest)
		}
	})

	t.Run("enabled without rules", func(t *testing.T) {
		config := &questionTypes.BranchingConfig{
			Enabled:            true,
			DefaultDestination: "q9",
		}
		dest := Evaluate(config, Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE)
		if dest != SequentialContinue {
			t.Errorf("unexpected destination: %s", dest)
		}
	})
}

func TestEvaluateFirstMatchWins(t *testing.T) {
	config := &questionTypes.BranchingConfig{
		Enabled: true,
		Rules: []questionTypes.BranchingRule{
			{Condition: questionTypes.CONDITION_EQUALS, Value: "A", DestinationQuestionID: "q1"},
			{Condition: questionTypes.CONDITION_EQUALS, Value: "A", DestinationQuestionID: "q2"},
		},
	}

	dest := Evaluate(config, Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE)
	if dest != "q1" {
		t.Errorf("unexpected destination: %s", dest)
	}
}

func TestEvaluateDefaultFallback(t *testing.T) {
	rules := []questionTypes.BranchingRule{
		{Condition: questionTypes.CONDITION_EQUALS, Value: "X", DestinationQuestionID: "q1"},
	}

	t.Run("with default destination", func(t *testing.T) {
		config := &questionTypes.BranchingConfig{
			Enabled:            true,
			Rules:              rules,
			DefaultDestination: "q9",
		}
		dest := Evaluate(config, Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE)
		if dest != "q9" {
			t.Errorf("unexpected destination: %s", dest)
		}
	})

	t.Run("without default destination", func(t *testing.T) {
		config := &questionTypes.BranchingConfig{
			Enabled: true,
			Rules:   rules,
		}
		dest := Evaluate(config, Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE)
		if dest != SequentialContinue {
			t.Errorf("unexpected destination: %s", dest)
		}
	})
}

func TestEvaluateConditions(t *testing.T) {

	destFor := func(condition string, value string, answer Answer, responseType string) string {
		config := &questionTypes.BranchingConfig{
			Enabled: true,
			Rules: []questionTypes.BranchingRule{
				{Condition: condition, Value: value, DestinationQuestionID: "dest"},
			},
		}
		return Evaluate(config, answer, responseType)
	}

	t.Run("equals on empty value", func(t *testing.T) {
		if destFor(questionTypes.CONDITION_EQUALS, "", Answer{Value: ""}, questionTypes.RESPONSE_TYPE_SHORT_TEXT) != "dest" {
			t.Error("equals \"\" should match an empty answer")
		}
	})

	t.Run("not-equals", func(t *testing.T) {
		if destFor(questionTypes.CONDITION_NOT_EQUALS, "A", Answer{Value: "B"}, questionTypes.RESPONSE_TYPE_SHORT_TEXT) != "dest" {
			t.Error("should match")
		}
		if destFor(questionTypes.CONDITION_NOT_EQUALS, "A", Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SHORT_TEXT) != SequentialContinue {
			t.Error("should not match")
		}
	})

	t.Run("contains", func(t *testing.T) {
		if destFor(questionTypes.CONDITION_CONTAINS, "good", Answer{Value: "very good service"}, questionTypes.RESPONSE_TYPE_LONG_TEXT) != "dest" {
			t.Error("should match")
		}
		if destFor(questionTypes.CONDITION_NOT_CONTAINS, "bad", Answer{Value: "very good service"}, questionTypes.RESPONSE_TYPE_LONG_TEXT) != "dest" {
			t.Error("should match")
		}
	})

	t.Run("contains on multi-select never matches", func(t *testing.T) {
		answer := Answer{Selected: []string{"very good service"}}
		if destFor(questionTypes.CONDITION_CONTAINS, "good", answer, questionTypes.RESPONSE_TYPE_MULTI_CHOICE) != SequentialContinue {
			t.Error("should not match")
		}
	})

	t.Run("numeric comparisons", func(t *testing.T) {
		tests := []struct {
			condition   string
			value       string
			answer      string
			shouldMatch bool
		}{
			{questionTypes.CONDITION_GREATER_THAN, "3", "4", true},
			{questionTypes.CONDITION_GREATER_THAN, "3", "3", false},
			{questionTypes.CONDITION_GREATER_THAN, "3", "2", false},
			{questionTypes.CONDITION_LESS_THAN, "3", "2.5", true},
			{questionTypes.CONDITION_LESS_THAN, "3", "3", false},
			{questionTypes.CONDITION_GREATER_THAN, "3", "not a number", false},
			{questionTypes.CONDITION_LESS_THAN, "not a number", "2", false},
		}
		for _, test := range tests {
			dest := destFor(test.condition, test.value, Answer{Value: test.answer}, questionTypes.RESPONSE_TYPE_RATING)
			matched := dest == "dest"
			if matched != test.shouldMatch {
				t.Errorf("%s %s with answer %s: matched=%v, want %v", test.condition, test.value, test.answer, matched, test.shouldMatch)
			}
		}
	})

	t.Run("numeric equals on rating type", func(t *testing.T) {
		if destFor(questionTypes.CONDITION_EQUALS, "4", Answer{Value: "4.0"}, questionTypes.RESPONSE_TYPE_RATING) != "dest" {
			t.Error("should match numerically")
		}
	})

	t.Run("unknown condition never matches", func(t *testing.T) {
		if destFor("sounds-like", "A", Answer{Value: "A"}, questionTypes.RESPONSE_TYPE_SHORT_TEXT) != SequentialContinue {
			t.Error("should not match")
		}
	})
}

func TestEvaluateMultiSelect(t *testing.T) {
	config := &questionTypes.BranchingConfig{
		Enabled: true,
		Rules: []questionTypes.BranchingRule{
			{Condition: questionTypes.CONDITION_EQUALS, Value: "Email", DestinationQuestionID: "q_email"},
		},
	}

	t.Run("rule value member of selected set", func(t *testing.T) {
		answer := Answer{Selected: []string{"Phone", "Email"}}
		if Evaluate(config, answer, questionTypes.RESPONSE_TYPE_MULTI_CHOICE) != "q_email" {
			t.Error("should match")
		}
	})

	t.Run("rule value not selected", func(t *testing.T) {
		answer := Answer{Selected: []string{"Phone", "Post"}}
		if Evaluate(config, answer, questionTypes.RESPONSE_TYPE_MULTI_CHOICE) != SequentialContinue {
			t.Error("should not match")
		}
	})
}

func TestEvaluateExitScenario(t *testing.T) {
	// single-choice question with options Yes/No and an exit branch on "No"
	config := &questionTypes.BranchingConfig{
		Enabled: true,
		Rules: []questionTypes.BranchingRule{
			{Condition: questionTypes.CONDITION_EQUALS, Value: "No", DestinationQuestionID: "q_exit"},
		},
	}

	if Evaluate(config, Answer{Value: "No"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE) != "q_exit" {
		t.Error("answering No should branch to q_exit")
	}
	if Evaluate(config, Answer{Value: "Yes"}, questionTypes.RESPONSE_TYPE_SINGLE_CHOICE) != SequentialContinue {
		t.Error("answering Yes should continue sequentially")
	}
}

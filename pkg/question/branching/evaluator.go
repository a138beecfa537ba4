package branching

import (
	"strconv"
	"strings"

	questionTypes "github.com/Trust-Tai/bioptrics-survey-backend/pkg/question/types"
)

// SequentialContinue is the destination value meaning "no branching
// decision, proceed to the next question in natural order".
const SequentialContinue = ""

// Answer is the respondent's submitted value for one question. Value holds
// the raw answer for single-valued response types; Selected holds the set
// of selected option labels for multi-select types.
type Answer struct {
	Value    string
	Selected []string
}

// Evaluate maps a branching configuration and a submitted answer to the id
// of the next question, or SequentialContinue. It never returns an error:
// malformed rules simply do not match, so branching can never block a
// respondent's survey session.
func Evaluate(config *questionTypes.BranchingConfig, answer Answer, responseType string) string {
	if config == nil || !config.Enabled || len(config.Rules) == 0 {
		return SequentialContinue
	}

	numeric := isNumericResponseType(responseType)
	for _, rule := range config.Rules {
		if ruleMatches(rule, answer, numeric) {
			return rule.DestinationQuestionID
		}
	}

	if config.DefaultDestination != "" {
		return config.DefaultDestination
	}
	return SequentialContinue
}

func isNumericResponseType(responseType string) bool {
	return responseType == questionTypes.RESPONSE_TYPE_RATING
}

func ruleMatches(rule questionTypes.BranchingRule, answer Answer, numeric bool) bool {
	switch rule.Condition {
	case questionTypes.CONDITION_EQUALS:
		return answerEquals(rule.Value, answer, numeric)
	case questionTypes.CONDITION_NOT_EQUALS:
		return !answerEquals(rule.Value, answer, numeric)
	case questionTypes.CONDITION_CONTAINS:
		return answerContains(rule.Value, answer)
	case questionTypes.CONDITION_NOT_CONTAINS:
		return !answerContains(rule.Value, answer)
	case questionTypes.CONDITION_GREATER_THAN:
		return compareNumeric(rule.Value, answer, func(a, b float64) bool { return a > b })
	case questionTypes.CONDITION_LESS_THAN:
		return compareNumeric(rule.Value, answer, func(a, b float64) bool { return a < b })
	default:
		// unknown condition tags never match
		return false
	}
}

// answerEquals compares the rule value against the single answer value, or
// for multi-select answers checks membership of the rule value in the
// selected set. For numeric response types both operands are compared as
// numbers when they parse, so "1.0" equals "1".
func answerEquals(ruleValue string, answer Answer, numeric bool) bool {
	if answer.Selected != nil {
		for _, sel := range answer.Selected {
			if sel == ruleValue {
				return true
			}
		}
		return false
	}
	if numeric {
		answerNum, errA := strconv.ParseFloat(answer.Value, 64)
		ruleNum, errB := strconv.ParseFloat(ruleValue, 64)
		if errA == nil && errB == nil {
			return answerNum == ruleNum
		}
	}
	return answer.Value == ruleValue
}

// answerContains is only defined for string-valued answers; a multi-select
// answer never matches.
func answerContains(ruleValue string, answer Answer) bool {
	if answer.Selected != nil {
		return false
	}
	return strings.Contains(answer.Value, ruleValue)
}

// compareNumeric applies cmp to (answer, rule value). If either side is not
// numeric the rule does not match, indistinguishable from a false
// comparison.
func compareNumeric(ruleValue string, answer Answer, cmp func(a, b float64) bool) bool {
	if answer.Selected != nil {
		return false
	}
	answerNum, err := strconv.ParseFloat(answer.Value, 64)
	if err != nil {
		return false
	}
	ruleNum, err := strconv.ParseFloat(ruleValue, 64)
	if err != nil {
		return false
	}
	return cmp(answerNum, ruleNum)
}

package types

// branching rule conditions
const (
	CONDITION_EQUALS       = "equals"
	CONDITION_NOT_EQUALS   = "not-equals"
	CONDITION_CONTAINS     = "contains"
	CONDITION_NOT_CONTAINS = "not-contains"
	CONDITION_GREATER_THAN = "greater-than"
	CONDITION_LESS_THAN    = "less-than"
)

type BranchingConfig struct {
	Enabled            bool            `bson:"enabled" json:"enabled"`
	Rules              []BranchingRule `bson:"rules,omitempty" json:"rules,omitempty"`
	DefaultDestination string          `bson:"defaultDestination,omitempty" json:"defaultDestination,omitempty"`
}

// BranchingRule maps one condition on the respondent's answer to a
// destination question. Rule order is significant, the first matching rule
// wins.
type BranchingRule struct {
	Condition             string `bson:"condition" json:"condition"`
	Value                 string `bson:"value" json:"value"`
	DestinationQuestionID string `bson:"destinationQuestionId" json:"destinationQuestionId"`
}

func (c *BranchingConfig) Copy() *BranchingConfig {
	if c == nil {
		return nil
	}
	cp := BranchingConfig{
		Enabled:            c.Enabled,
		DefaultDestination: c.DefaultDestination,
	}
	if c.Rules != nil {
		cp.Rules = make([]BranchingRule, len(c.Rules))
		copy(cp.Rules, c.Rules)
	}
	return &cp
}

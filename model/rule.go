// api/model/rule.go
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

type Operator string

const (
	OperatorEquals              Operator = "EQUALS"
	OperatorNotEquals           Operator = "NOT_EQUALS"
	OperatorGreaterThan         Operator = "GREATER_THAN"
	OperatorLessThan            Operator = "LESS_THAN"
	OperatorGreaterThanOrEquals Operator = "GREATER_THAN_OR_EQUALS"
	OperatorLessThanOrEquals    Operator = "LESS_THAN_OR_EQUALS"
	OperatorContains            Operator = "CONTAINS"
	OperatorNotContains         Operator = "NOT_CONTAINS"
	OperatorIn                  Operator = "IN"
	OperatorNotIn               Operator = "NOT_IN"
)

// Valid reports whether o is one of the supported comparison operators
func (o Operator) Valid() bool {
	switch o {
	case OperatorEquals, OperatorNotEquals,
		OperatorGreaterThan, OperatorLessThan,
		OperatorGreaterThanOrEquals, OperatorLessThanOrEquals,
		OperatorContains, OperatorNotContains,
		OperatorIn, OperatorNotIn:
		return true
	}
	return false
}

type JoinOperator string

const (
	JoinAnd JoinOperator = "AND"
	JoinOr  JoinOperator = "OR"
)

func (j JoinOperator) Valid() bool {
	return j == JoinAnd || j == JoinOr
}

// ValueType documents the intended comparison semantics of a leaf. It does not
// change how a leaf is evaluated.
type ValueType string

const (
	ValueTypeEnum    ValueType = "ENUM"
	ValueTypeBoolean ValueType = "BOOLEAN"
	ValueTypeNumber  ValueType = "NUMBER"
	ValueTypeString  ValueType = "STRING"
	ValueTypeDate    ValueType = "DATE"
)

func (v ValueType) Valid() bool {
	switch v {
	case ValueTypeEnum, ValueTypeBoolean, ValueTypeNumber, ValueTypeString, ValueTypeDate:
		return true
	}
	return false
}

// Condition is a node of a rule tree: either a *LeafCondition or a *ConditionGroup.
type Condition interface {
	isCondition()
}

// LeafCondition is a single predicate over one observation type.
// A nil ObservationValueIDs means the leaf compares values with Operator; a
// non-nil slice (even an empty one) switches the leaf to catalog membership.
type LeafCondition struct {
	ObservationTypeID   string      `json:"observation_type_id"`
	Operator            Operator    `json:"operator,omitempty"`
	ValueType           ValueType   `json:"value_type,omitempty"`
	Value               interface{} `json:"value,omitempty"`
	ObservationValueIDs []string    `json:"observation_value_ids"`
}

// ConditionGroup combines child conditions with a join operator.
type ConditionGroup struct {
	JoinOperator JoinOperator `json:"join_operator"`
	Conditions   []Condition  `json:"conditions"`
}

func (*LeafCondition) isCondition()  {}
func (*ConditionGroup) isCondition() {}

// And builds an AND group; Or builds an OR group.
func And(conditions ...Condition) *ConditionGroup {
	return &ConditionGroup{JoinOperator: JoinAnd, Conditions: conditions}
}

func Or(conditions ...Condition) *ConditionGroup {
	return &ConditionGroup{JoinOperator: JoinOr, Conditions: conditions}
}

func (g ConditionGroup) MarshalJSON() ([]byte, error) {
	conditions := g.Conditions
	if conditions == nil {
		conditions = []Condition{}
	}
	return json.Marshal(struct {
		JoinOperator JoinOperator `json:"join_operator"`
		Conditions   []Condition  `json:"conditions"`
	}{g.JoinOperator, conditions})
}

// UnmarshalJSON decodes the wire shape where any node carrying a "conditions"
// key is a group and everything else is a leaf.
func (g *ConditionGroup) UnmarshalJSON(data []byte) error {
	var raw struct {
		JoinOperator JoinOperator      `json:"join_operator"`
		Conditions   []json.RawMessage `json:"conditions"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	g.JoinOperator = raw.JoinOperator
	g.Conditions = make([]Condition, 0, len(raw.Conditions))
	for i, item := range raw.Conditions {
		condition, err := decodeCondition(item)
		if err != nil {
			return fmt.Errorf("condition %d: %w", i, err)
		}
		g.Conditions = append(g.Conditions, condition)
	}
	return nil
}

func decodeCondition(data json.RawMessage) (Condition, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	if probe == nil {
		return nil, fmt.Errorf("condition must be an object")
	}

	if _, isGroup := probe["conditions"]; isGroup {
		group := &ConditionGroup{}
		if err := json.Unmarshal(data, group); err != nil {
			return nil, err
		}
		return group, nil
	}

	leaf := &LeafCondition{}
	if err := json.Unmarshal(data, leaf); err != nil {
		return nil, err
	}
	return leaf, nil
}

type Rule struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	FunctionalRule ConditionGroup `json:"functional_rule"`
	EffectiveFrom  time.Time      `json:"effective_from"`
	EffectiveTo    *time.Time     `json:"effective_to,omitempty"`
	IsActive       bool           `json:"is_active"`
	Version        int            `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// EffectiveAt reports whether the rule's window contains t. The lower bound is
// inclusive and the upper bound exclusive.
func (r Rule) EffectiveAt(t time.Time) bool {
	if r.EffectiveFrom.After(t) {
		return false
	}
	return r.EffectiveTo == nil || r.EffectiveTo.After(t)
}

// RuleInput carries the fields accepted when creating a rule.
type RuleInput struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	FunctionalRule ConditionGroup `json:"functional_rule"`
	EffectiveFrom  *time.Time     `json:"effective_from,omitempty"`
	EffectiveTo    *time.Time     `json:"effective_to,omitempty"`
	IsActive       *bool          `json:"is_active,omitempty"`
}

// RulePatch is a partial update. Nil fields are left unchanged.
type RulePatch struct {
	Name             *string         `json:"name,omitempty"`
	Description      *string         `json:"description,omitempty"`
	FunctionalRule   *ConditionGroup `json:"functional_rule,omitempty"`
	EffectiveFrom    *time.Time      `json:"effective_from,omitempty"`
	EffectiveTo      *time.Time      `json:"effective_to,omitempty"`
	ClearEffectiveTo bool            `json:"clear_effective_to,omitempty"`
	IsActive         *bool           `json:"is_active,omitempty"`
}

// Apply returns a copy of rule with the patch applied.
func (p RulePatch) Apply(rule Rule) Rule {
	if p.Name != nil {
		rule.Name = *p.Name
	}
	if p.Description != nil {
		rule.Description = *p.Description
	}
	if p.FunctionalRule != nil {
		rule.FunctionalRule = *p.FunctionalRule
	}
	if p.EffectiveFrom != nil {
		rule.EffectiveFrom = *p.EffectiveFrom
	}
	if p.ClearEffectiveTo {
		rule.EffectiveTo = nil
	} else if p.EffectiveTo != nil {
		to := *p.EffectiveTo
		rule.EffectiveTo = &to
	}
	if p.IsActive != nil {
		rule.IsActive = *p.IsActive
	}
	return rule
}

type RuleTestCase struct {
	Observations []Observation `json:"observations"`
}

type RuleTestResult struct {
	Case      RuleTestCase `json:"case"`
	Triggered bool         `json:"triggered"`
}

// RulePreview reports what an update to a rule tree would do without applying it.
type RulePreview struct {
	RuleID                 string   `json:"rule_id"`
	VulnerabilitiesChecked int      `json:"vulnerabilities_checked"`
	VulnerabilitiesSkipped int      `json:"vulnerabilities_skipped"`
	WouldRemove            []string `json:"would_remove"`
	WouldKeep              []string `json:"would_keep"`
}

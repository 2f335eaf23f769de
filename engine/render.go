// api/engine/render.go
package engine

import (
	"fmt"
	"strings"

	"github.com/dev-mohitbeniwal/hazard/api/model"
)

var operatorPhrases = map[model.Operator]string{
	model.OperatorEquals:              "equals",
	model.OperatorNotEquals:           "does not equal",
	model.OperatorGreaterThan:         "is greater than",
	model.OperatorLessThan:            "is less than",
	model.OperatorGreaterThanOrEquals: "is greater than or equal to",
	model.OperatorLessThanOrEquals:    "is less than or equal to",
	model.OperatorContains:            "contains",
	model.OperatorNotContains:         "does not contain",
	model.OperatorIn:                  "is in",
	model.OperatorNotIn:               "is not in",
}

// Labels maps catalog ids to their display text.
type Labels struct {
	TypeNames  map[string]string
	ValueNames map[string]string
}

// OperatorPhrase returns the English phrase for op. A missing operator reads as
// EQUALS and an unknown one is returned verbatim.
func OperatorPhrase(op model.Operator) string {
	if op == "" {
		op = model.OperatorEquals
	}
	if phrase, ok := operatorPhrases[op]; ok {
		return phrase
	}
	return string(op)
}

// Render produces the human-readable form of a rule.
func Render(rule model.Rule, labels Labels) string {
	return fmt.Sprintf("Rule: %s\nDescription: %s\nConditions: %s",
		rule.Name, rule.Description, RenderConditions(rule.FunctionalRule, labels))
}

// RenderConditions renders a condition tree. Nested groups are parenthesised
// and siblings are joined by the lowercase join operator.
func RenderConditions(group model.ConditionGroup, labels Labels) string {
	return renderGroup(&group, labels)
}

func renderGroup(group *model.ConditionGroup, labels Labels) string {
	parts := make([]string, 0, len(group.Conditions))
	for _, condition := range group.Conditions {
		switch c := condition.(type) {
		case *model.ConditionGroup:
			parts = append(parts, "("+renderGroup(c, labels)+")")
		case *model.LeafCondition:
			parts = append(parts, renderLeaf(c, labels))
		}
	}
	return strings.Join(parts, " "+strings.ToLower(string(group.JoinOperator))+" ")
}

func renderLeaf(leaf *model.LeafCondition, labels Labels) string {
	typeName := labels.TypeNames[leaf.ObservationTypeID]
	if typeName == "" {
		typeName = leaf.ObservationTypeID
	}

	if leaf.ObservationValueIDs != nil {
		names := make([]string, 0, len(leaf.ObservationValueIDs))
		for _, id := range leaf.ObservationValueIDs {
			if name, ok := labels.ValueNames[id]; ok {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			names = leaf.ObservationValueIDs
		}
		return fmt.Sprintf("%s is %s", typeName, strings.Join(names, " or "))
	}

	if leaf.Value != nil {
		return fmt.Sprintf("%s %s %s", typeName, OperatorPhrase(leaf.Operator), toText(leaf.Value))
	}

	return ""
}

// api/engine/evaluator.go
package engine

import (
	"slices"

	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// Evaluate reports whether the condition tree holds for the given observations.
// An empty group never holds, whatever its join operator.
func Evaluate(group model.ConditionGroup, observations []model.Observation) bool {
	return evaluateGroup(&group, observations)
}

func evaluateGroup(group *model.ConditionGroup, observations []model.Observation) bool {
	if group == nil || len(group.Conditions) == 0 {
		return false
	}

	switch group.JoinOperator {
	case model.JoinAnd:
		for _, condition := range group.Conditions {
			if !evaluateCondition(condition, observations) {
				return false
			}
		}
		return true
	case model.JoinOr:
		for _, condition := range group.Conditions {
			if evaluateCondition(condition, observations) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func evaluateCondition(condition model.Condition, observations []model.Observation) bool {
	switch c := condition.(type) {
	case *model.ConditionGroup:
		return evaluateGroup(c, observations)
	case *model.LeafCondition:
		return evaluateLeaf(c, observations)
	default:
		return false
	}
}

func evaluateLeaf(leaf *model.LeafCondition, observations []model.Observation) bool {
	if leaf == nil {
		return false
	}

	observation, found := findObservation(observations, leaf.ObservationTypeID)
	if !found {
		return false
	}

	if leaf.ObservationValueIDs != nil {
		return slices.Contains(leaf.ObservationValueIDs, observation.ObservationValueID)
	}

	if leaf.Value != nil && observation.Value != nil {
		return applyOperator(leaf.Operator, observation.Value, leaf.Value)
	}

	return false
}

// findObservation returns the first observation recorded for typeID.
func findObservation(observations []model.Observation, typeID string) (model.Observation, bool) {
	for _, observation := range observations {
		if observation.ObservationTypeID == typeID {
			return observation, true
		}
	}
	return model.Observation{}, false
}

func applyOperator(operator model.Operator, observed, expected interface{}) bool {
	switch operator {
	case model.OperatorEquals:
		return strictEqual(observed, expected)
	case model.OperatorNotEquals:
		return !strictEqual(observed, expected)
	case model.OperatorGreaterThan:
		return toNumber(observed) > toNumber(expected)
	case model.OperatorLessThan:
		return toNumber(observed) < toNumber(expected)
	case model.OperatorGreaterThanOrEquals:
		return toNumber(observed) >= toNumber(expected)
	case model.OperatorLessThanOrEquals:
		return toNumber(observed) <= toNumber(expected)
	case model.OperatorContains:
		return containsText(observed, expected)
	case model.OperatorNotContains:
		return !containsText(observed, expected)
	case model.OperatorIn:
		return slices.Contains(splitList(expected), toText(observed))
	case model.OperatorNotIn:
		return !slices.Contains(splitList(expected), toText(observed))
	default:
		return false
	}
}

// CollectLeaves returns every leaf of the tree in document order.
func CollectLeaves(group model.ConditionGroup) []*model.LeafCondition {
	var leaves []*model.LeafCondition
	var walk func(g *model.ConditionGroup)
	walk = func(g *model.ConditionGroup) {
		for _, condition := range g.Conditions {
			switch c := condition.(type) {
			case *model.ConditionGroup:
				if c != nil {
					walk(c)
				}
			case *model.LeafCondition:
				if c != nil {
					leaves = append(leaves, c)
				}
			}
		}
	}
	walk(&group)
	return leaves
}

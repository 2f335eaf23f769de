// api/util/validation_util.go

package util

import (
	"fmt"
	"strings"
	"time"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// ValidationUtil runs the structural checks that need no store access. Every
// check collects problems instead of stopping at the first one.
type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

// ValidateRule checks a rule definition. The returned error is never nil so
// callers can append referential problems before calling ErrOrNil.
func (v *ValidationUtil) ValidateRule(name string, tree model.ConditionGroup, from time.Time, to *time.Time) *hazard_errors.ValidationError {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidRuleData)
	if strings.TrimSpace(name) == "" {
		verr.Add("rule name cannot be empty")
	}
	if to != nil && !to.After(from) {
		verr.Add("effective_to must be after effective_from")
	}
	v.validateGroup(verr, "functional_rule", tree)
	return verr
}

// ValidateTree checks only the condition tree, for patches that leave the rest
// of the rule untouched.
func (v *ValidationUtil) ValidateTree(tree model.ConditionGroup) *hazard_errors.ValidationError {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidRuleData)
	v.validateGroup(verr, "functional_rule", tree)
	return verr
}

func (v *ValidationUtil) validateGroup(verr *hazard_errors.ValidationError, path string, group model.ConditionGroup) {
	if !group.JoinOperator.Valid() {
		verr.Add("%s: join operator %q must be AND or OR", path, group.JoinOperator)
	}
	for i, condition := range group.Conditions {
		childPath := fmt.Sprintf("%s.conditions[%d]", path, i)
		switch c := condition.(type) {
		case *model.ConditionGroup:
			if c == nil {
				verr.Add("%s: condition cannot be null", childPath)
				continue
			}
			v.validateGroup(verr, childPath, *c)
		case *model.LeafCondition:
			if c == nil {
				verr.Add("%s: condition cannot be null", childPath)
				continue
			}
			v.validateLeaf(verr, childPath, *c)
		default:
			verr.Add("%s: condition cannot be null", childPath)
		}
	}
}

func (v *ValidationUtil) validateLeaf(verr *hazard_errors.ValidationError, path string, leaf model.LeafCondition) {
	if strings.TrimSpace(leaf.ObservationTypeID) == "" {
		verr.Add("%s: observation_type_id cannot be empty", path)
	}
	if leaf.Operator != "" && !leaf.Operator.Valid() {
		verr.Add("%s: unknown operator %q", path, leaf.Operator)
	}
	if leaf.ValueType != "" && !leaf.ValueType.Valid() {
		verr.Add("%s: unknown value_type %q", path, leaf.ValueType)
	}
	for i, id := range leaf.ObservationValueIDs {
		if strings.TrimSpace(id) == "" {
			verr.Add("%s: observation_value_ids[%d] cannot be empty", path, i)
		}
	}
}

func (v *ValidationUtil) ValidateAssessment(assessment model.Assessment) error {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidAssessmentData)
	if strings.TrimSpace(assessment.PropertyID) == "" {
		verr.Add("property_id cannot be empty")
	}
	for i, observation := range assessment.Observations {
		if strings.TrimSpace(observation.ObservationTypeID) == "" {
			verr.Add("observations[%d]: observation_type_id cannot be empty", i)
		}
	}
	return verr.ErrOrNil()
}

func (v *ValidationUtil) ValidateObservationType(observationType model.ObservationType) error {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidCatalogData)
	if strings.TrimSpace(observationType.Name) == "" {
		verr.Add("observation type name cannot be empty")
	}
	if observationType.ValueType != "" && !observationType.ValueType.Valid() {
		verr.Add("unknown value_type %q", observationType.ValueType)
	}
	return verr.ErrOrNil()
}

func (v *ValidationUtil) ValidateObservationValue(value model.ObservationValue) error {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidCatalogData)
	if strings.TrimSpace(value.ObservationTypeID) == "" {
		verr.Add("observation_type_id cannot be empty")
	}
	if strings.TrimSpace(value.Value) == "" {
		verr.Add("observation value cannot be empty")
	}
	return verr.ErrOrNil()
}

func (v *ValidationUtil) ValidateMitigationType(mitigationType model.MitigationType) error {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidCatalogData)
	if strings.TrimSpace(mitigationType.Name) == "" {
		verr.Add("mitigation type name cannot be empty")
	}
	if mitigationType.ValueType != "" && !mitigationType.ValueType.Valid() {
		verr.Add("unknown value_type %q", mitigationType.ValueType)
	}
	return verr.ErrOrNil()
}

func (v *ValidationUtil) ValidateMitigationValue(value model.MitigationValue) error {
	verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidCatalogData)
	if strings.TrimSpace(value.MitigationTypeID) == "" {
		verr.Add("mitigation_type_id cannot be empty")
	}
	if strings.TrimSpace(value.Description) == "" {
		verr.Add("mitigation value description cannot be empty")
	}
	switch value.Category {
	case "", model.CategoryFull, model.CategoryBridge:
	default:
		verr.Add("category %q must be FULL or BRIDGE", value.Category)
	}
	return verr.ErrOrNil()
}

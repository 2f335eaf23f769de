package dao

import (
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/hazard/api/model"
)

func TestRulePropsRoundTrip(t *testing.T) {
	from := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	to := from.Add(48 * time.Hour)
	rule := model.Rule{
		ID:          "rule-1",
		Name:        "Coastal wood roof",
		Description: "Wood roofs near the coast",
		FunctionalRule: *model.And(
			&model.LeafCondition{ObservationTypeID: "roof_type", ObservationValueIDs: []string{"wood"}},
			&model.LeafCondition{ObservationTypeID: "distance", Operator: model.OperatorLessThan, Value: 10.0},
		),
		EffectiveFrom: from,
		EffectiveTo:   &to,
		IsActive:      true,
		Version:       3,
		CreatedAt:     from,
		UpdatedAt:     to,
	}

	props, err := ruleProps(rule)
	require.NoError(t, err)
	props["id"] = rule.ID
	// the driver returns integers as int64
	props["version"] = int64(rule.Version)

	mapped, err := mapNodeToRule(neo4j.Node{Props: props})
	require.NoError(t, err)

	assert.Equal(t, rule.ID, mapped.ID)
	assert.Equal(t, rule.Name, mapped.Name)
	assert.True(t, rule.EffectiveFrom.Equal(mapped.EffectiveFrom))
	require.NotNil(t, mapped.EffectiveTo)
	assert.True(t, to.Equal(*mapped.EffectiveTo))
	assert.Equal(t, 3, mapped.Version)
	assert.True(t, mapped.IsActive)

	require.Len(t, mapped.FunctionalRule.Conditions, 2)
	leaf := mapped.FunctionalRule.Conditions[0].(*model.LeafCondition)
	assert.Equal(t, []string{"wood"}, leaf.ObservationValueIDs)
	distance := mapped.FunctionalRule.Conditions[1].(*model.LeafCondition)
	assert.Nil(t, distance.ObservationValueIDs)
	assert.Equal(t, 10.0, distance.Value)
}

func TestStoredTimesSortChronologically(t *testing.T) {
	early := time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("X", 5*3600))
	late := time.Date(2024, 1, 1, 5, 0, 0, 1, time.UTC)

	assert.Less(t, formatTime(early), formatTime(late))
	assert.True(t, early.Equal(parseTime(formatTime(early))))
	assert.Nil(t, formatNullableTime(nil))
	assert.Nil(t, parseNullableTime(nil))
}

func TestMapNodeToRuleRejectsMissingID(t *testing.T) {
	_, err := mapNodeToRule(neo4j.Node{Props: map[string]interface{}{"functionalRule": "{}"}})
	assert.Error(t, err)
}

func TestVulnerabilityPropsRoundTrip(t *testing.T) {
	detected := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	v := model.Vulnerability{
		ID:                "v1",
		RuleID:            "r1",
		AssessmentID:      "a1",
		PropertyID:        "p1",
		Status:            model.StatusInReview,
		DetectedAt:        detected,
		MitigationTypeID:  "shutters",
		MitigationValueID: "install",
		Notes:             "checked",
	}

	props := vulnerabilityProps(v)
	props["id"] = v.ID

	mapped, err := mapNodeToVulnerability(neo4j.Node{Props: props})
	require.NoError(t, err)
	assert.Equal(t, v.RuleID, mapped.RuleID)
	assert.Equal(t, v.Status, mapped.Status)
	assert.True(t, detected.Equal(mapped.DetectedAt))
	assert.Equal(t, "shutters", mapped.MitigationTypeID)
	assert.Equal(t, "install", mapped.MitigationValueID)
	assert.Equal(t, "checked", mapped.Notes)
}

func TestMapNodeToAssessment(t *testing.T) {
	node := neo4j.Node{Props: map[string]interface{}{
		"id":           "a1",
		"propertyId":   "p1",
		"assessedAt":   "2024-06-01T00:00:00.000000000Z",
		"observations": `[{"observation_type_id":"roof_type","observation_value_id":"wood"}]`,
	}}

	assessment, err := mapNodeToAssessment(node)
	require.NoError(t, err)
	assert.Equal(t, "p1", assessment.PropertyID)
	require.Len(t, assessment.Observations, 1)
	assert.Equal(t, "wood", assessment.Observations[0].ObservationValueID)
}

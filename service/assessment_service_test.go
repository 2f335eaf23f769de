package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dev-mohitbeniwal/hazard/api/dao"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
)

func TestSubmitAssessmentCreatesOneVulnerabilityPerTriggeredRule(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	woodNearFuel := createRule(t, svcs, "Wood roof near vegetation", model.And(roofIn(valueWood), distanceBelow(30)))
	createRule(t, svcs, "Metal roof", model.And(roofIn(valueMetal)))
	createRule(t, svcs, "Empty rule", &model.ConditionGroup{JoinOperator: model.JoinOr})

	result := submit(t, svcs, "p1", roof(valueWood), distance(12))

	assert.NotEmpty(t, result.AssessmentID)
	assert.Equal(t, "p1", result.PropertyID)
	assert.Equal(t, 3, result.RulesEvaluated)
	assert.Equal(t, []string{woodNearFuel.ID}, result.TriggeredRules)
	require.Len(t, result.Created, 1)

	vulnerability := result.Created[0]
	assert.Equal(t, woodNearFuel.ID, vulnerability.RuleID)
	assert.Equal(t, result.AssessmentID, vulnerability.AssessmentID)
	assert.Equal(t, model.StatusOpen, vulnerability.Status)
	assert.False(t, vulnerability.DetectedAt.IsZero())

	stored, err := svcs.Assessment.GetAssessment(ctx, result.AssessmentID)
	require.NoError(t, err)
	assert.Len(t, stored.Observations, 2)
}

func TestProcessLogsWhyRulesDidNotTrigger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	metal := createRule(t, svcs, "Metal roof", model.And(roofIn(valueMetal)))
	empty := createRule(t, svcs, "Empty rule", &model.ConditionGroup{JoinOperator: model.JoinOr})

	submit(t, svcs, "p1", roof(valueWood))

	reasons := map[string]string{}
	for _, entry := range logs.FilterMessage("Rule not triggered").All() {
		fields := entry.ContextMap()
		reasons[fields["ruleID"].(string)] = fields["reason"].(string)
	}
	assert.Equal(t, "Conditions did not match", reasons[metal.ID])
	assert.Equal(t, "Rule has no conditions", reasons[empty.ID])
}

func TestSubmitAssessmentValidation(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, dao.NewMemoryStore(), service.DefaultOptions())

	_, err := svcs.Assessment.SubmitAssessment(ctx, model.Assessment{
		Observations: []model.Observation{{ObservationTypeID: ""}},
	})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidAssessmentData)

	_, err = svcs.Assessment.ProcessAssessment(ctx, model.Assessment{PropertyID: "p1"})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidAssessmentData)

	_, err = svcs.Assessment.ProcessStoredAssessment(ctx, "missing", nil)
	assert.ErrorIs(t, err, hazard_errors.ErrAssessmentNotFound)
}

func TestProcessDeduplicatesOpenVulnerabilities(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	rule := createRule(t, svcs, "Wood roof", model.And(roofIn(valueWood)))
	first := submit(t, svcs, "p1", roof(valueWood))
	require.Len(t, first.Created, 1)

	second := submit(t, svcs, "p1", roof(valueWood))
	assert.Empty(t, second.Created)
	assert.Equal(t, []string{rule.ID}, second.TriggeredRules)
	assert.Equal(t, []string{rule.ID}, second.Duplicates)

	_, err := svcs.Vulnerability.UpdateStatus(ctx, first.Created[0].ID, model.StatusUpdate{Status: model.StatusResolved})
	require.NoError(t, err)

	third := submit(t, svcs, "p1", roof(valueWood))
	assert.Len(t, third.Created, 1)
	assert.Empty(t, third.Duplicates)
}

func TestProcessWithoutDeduplication(t *testing.T) {
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	opts := service.DefaultOptions()
	opts.DedupeOpenVulnerabilities = false
	svcs := newServices(t, store, opts)

	createRule(t, svcs, "Wood roof", model.And(roofIn(valueWood)))
	assert.Len(t, submit(t, svcs, "p1", roof(valueWood)).Created, 1)
	assert.Len(t, submit(t, svcs, "p1", roof(valueWood)).Created, 1)
}

func TestProcessAssessmentAtTimeRespectsEffectiveWindow(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	inactive := false

	newRule := func(name string, from time.Time, to *time.Time, active *bool) *model.Rule {
		rule, err := svcs.Rule.CreateRule(ctx, model.RuleInput{
			Name:           name,
			FunctionalRule: *model.And(roofIn(valueWood)),
			EffectiveFrom:  &from,
			EffectiveTo:    to,
			IsActive:       active,
		})
		require.NoError(t, err)
		return rule
	}
	firstHalf := newRule("first half", jan, &jun, nil)
	secondHalf := newRule("second half", jun, nil, nil)
	newRule("retired", jan, nil, &inactive)

	assessment, err := store.CreateAssessment(ctx, model.Assessment{
		PropertyID:   "p1",
		AssessedAt:   mar,
		Observations: []model.Observation{roof(valueWood)},
	})
	require.NoError(t, err)

	result, err := svcs.Assessment.ProcessAssessmentAtTime(ctx, *assessment, mar)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RulesEvaluated)
	assert.Equal(t, []string{firstHalf.ID}, result.TriggeredRules)
	require.Len(t, result.Created, 1)

	result, err = svcs.Assessment.ProcessAssessmentAtTime(ctx, *assessment, jun)
	require.NoError(t, err)
	assert.Equal(t, []string{secondHalf.ID}, result.TriggeredRules)
	require.Len(t, result.Created, 1)

	result, err = svcs.Assessment.ProcessStoredAssessment(ctx, assessment.ID, &time.Time{})
	require.NoError(t, err)
	assert.Equal(t, []string{firstHalf.ID}, result.Duplicates)
	assert.Empty(t, result.Created)
}

func TestProcessReportsPerRuleFailures(t *testing.T) {
	store := newFailingStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	broken := createRule(t, svcs, "Broken", model.And(roofIn(valueWood)))
	healthy := createRule(t, svcs, "Healthy", model.And(roofIn(valueWood)))
	store.failCreateForRule[broken.ID] = true

	result := submit(t, svcs, "p1", roof(valueWood))

	assert.ElementsMatch(t, []string{broken.ID, healthy.ID}, result.TriggeredRules)
	require.Len(t, result.Created, 1)
	assert.Equal(t, healthy.ID, result.Created[0].RuleID)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, broken.ID, result.Failures[0].ID)
	assert.Equal(t, "create_vulnerability", result.Failures[0].Op)
}

func TestProcessRechecksRuleEditedAfterSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newFailingStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	rule := createRule(t, svcs, "Wood roof", model.And(roofIn(valueWood)))
	store.afterListActive = func() {
		edited, err := store.MemoryStore.GetRule(ctx, rule.ID)
		require.NoError(t, err)
		edited.FunctionalRule = *model.And(roofIn(valueMetal))
		edited.Version++
		_, err = store.MemoryStore.UpdateRule(ctx, *edited)
		require.NoError(t, err)
	}

	result := submit(t, svcs, "p1", roof(valueWood))
	assert.Empty(t, result.Created)
	assert.Empty(t, result.TriggeredRules)
	assert.Empty(t, result.Failures)
}

func TestProcessAssessments(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	opts := service.DefaultOptions()
	opts.BatchConcurrency = 2
	svcs := newServices(t, store, opts)

	rule := createRule(t, svcs, "Wood roof", model.And(roofIn(valueWood)))

	assessments := make([]model.Assessment, 5)
	for i := range assessments {
		assessments[i] = model.Assessment{
			PropertyID:   fmt.Sprintf("p%d", i),
			Observations: []model.Observation{roof(valueWood)},
		}
	}

	results, err := svcs.Assessment.ProcessAssessments(ctx, assessments)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, result := range results {
		assert.Equal(t, fmt.Sprintf("p%d", i), result.PropertyID)
		require.Len(t, result.Created, 1)
		assert.Equal(t, rule.ID, result.Created[0].RuleID)
	}

	_, err = svcs.Assessment.ProcessAssessments(ctx, []model.Assessment{{PropertyID: ""}})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidAssessmentData)
}

func TestGetVulnerabilityStateAtTime(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	svcs := newServices(t, store, service.DefaultOptions())

	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	create := func(propertyID string, detectedAt time.Time) *model.Vulnerability {
		v, err := store.CreateVulnerability(ctx, model.Vulnerability{
			RuleID:     "r1",
			PropertyID: propertyID,
			Status:     model.StatusOpen,
			DetectedAt: detectedAt,
		})
		require.NoError(t, err)
		return v
	}
	early := create("p1", jan)
	late := create("p1", mar)
	create("p2", jan)

	state, err := svcs.Assessment.GetVulnerabilityStateAtTime(ctx, "p1", jan.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, "p1", state.PropertyID)
	assert.Equal(t, []string{early.ID}, vulnerabilityIDs(state.Vulnerabilities))

	state, err = svcs.Assessment.GetVulnerabilityStateAtTime(ctx, "p1", mar)
	require.NoError(t, err)
	assert.Equal(t, []string{early.ID, late.ID}, vulnerabilityIDs(state.Vulnerabilities))
}

func TestReevaluateProperty(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	changed := createRule(t, svcs, "Wood roof", model.And(roofIn(valueWood)))
	deleted := createRule(t, svcs, "Any roof", model.And(roofIn(valueWood, valueMetal)))
	unchanged := createRule(t, svcs, "Close vegetation", model.And(distanceBelow(30)))
	result := submit(t, svcs, "p1", roof(valueWood), distance(5))
	require.Len(t, result.Created, 3)

	edited, err := store.GetRule(ctx, changed.ID)
	require.NoError(t, err)
	edited.FunctionalRule = *model.And(roofIn(valueMetal))
	_, err = store.UpdateRule(ctx, *edited)
	require.NoError(t, err)
	require.NoError(t, store.DeleteRule(ctx, deleted.ID))

	reconcile, err := svcs.Assessment.ReevaluateProperty(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", reconcile.PropertyID)
	assert.Equal(t, 3, reconcile.VulnerabilitiesChecked)
	assert.Equal(t, 1, reconcile.VulnerabilitiesSkipped)
	assert.Equal(t, 1, reconcile.VulnerabilitiesRemoved)
	assert.Empty(t, reconcile.Failures)

	remaining, err := store.ListVulnerabilities(ctx, model.VulnerabilityFilter{PropertyID: "p1"})
	require.NoError(t, err)
	ruleIDs := make([]string, 0, len(remaining))
	for _, v := range remaining {
		ruleIDs = append(ruleIDs, v.RuleID)
	}
	assert.ElementsMatch(t, []string{deleted.ID, unchanged.ID}, ruleIDs)
}

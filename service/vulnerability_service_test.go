package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/hazard/api/dao"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
)

func seedMitigations(t *testing.T, store dao.CatalogStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.CreateMitigationType(ctx, model.MitigationType{ID: "roof_treatment", Name: "Roof Treatment", ValueType: model.ValueTypeEnum})
	require.NoError(t, err)
	for _, value := range []model.MitigationValue{
		{ID: "class_a", MitigationTypeID: "roof_treatment", Description: "Class A coating", Category: model.CategoryFull},
		{ID: "ember_guard", MitigationTypeID: "roof_treatment", Description: "Ember guard", Category: model.CategoryBridge},
	} {
		_, err := store.CreateMitigationValue(ctx, value)
		require.NoError(t, err)
	}
}

func detectOne(t *testing.T, svcs *service.Services) model.Vulnerability {
	t.Helper()
	createRule(t, svcs, "Wood roof", model.And(roofIn(valueWood)))
	result := submit(t, svcs, "p1", roof(valueWood))
	require.Len(t, result.Created, 1)
	return result.Created[0]
}

func TestUpdateStatusTransitions(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)

	updated, err := svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: model.StatusInReview})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInReview, updated.Status)

	_, err = svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: model.StatusOpen})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidStatusTransition)

	notes := "contractor booked"
	updated, err = svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: model.StatusInReview, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)

	_, err = svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: "closed"})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidVulnerabilityData)

	_, err = svcs.Vulnerability.UpdateStatus(ctx, "missing", model.StatusUpdate{Status: model.StatusResolved})
	assert.ErrorIs(t, err, hazard_errors.ErrVulnerabilityNotFound)

	stored, err := svcs.Vulnerability.GetVulnerability(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInReview, stored.Status)
	assert.Equal(t, notes, stored.Notes)
}

func TestUpdateStatusWithoutEnforcement(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	opts := service.DefaultOptions()
	opts.EnforceStatusTransitions = false
	svcs := newServices(t, store, opts)
	v := detectOne(t, svcs)

	_, err := svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: model.StatusResolved})
	require.NoError(t, err)
	reopened, err := svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: model.StatusOpen})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOpen, reopened.Status)
}

func TestApplyMitigation(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	seedMitigations(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)

	options, err := svcs.Vulnerability.GetMitigationOptions(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, options)

	updated, err := svcs.Vulnerability.ApplyMitigation(ctx, v.ID, model.MitigationRequest{
		MitigationValueID: "class_a",
		Description:       "Apply Class A coating",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInReview, updated.Status)
	assert.Equal(t, "class_a", updated.MitigationValueID)
	assert.Equal(t, "roof_treatment", updated.MitigationTypeID)
	assert.Equal(t, "Apply Class A coating", updated.MitigationDescription)

	options, err = svcs.Vulnerability.GetMitigationOptions(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "roof_treatment", options[0].ID)
	assert.Equal(t, "Roof Treatment", options[0].Type.Name)
	assert.Len(t, options[0].Values, 2)

	_, err = svcs.Vulnerability.ApplyMitigation(ctx, "missing", model.MitigationRequest{MitigationValueID: "class_a"})
	assert.ErrorIs(t, err, hazard_errors.ErrVulnerabilityNotFound)

	_, err = svcs.Vulnerability.ApplyMitigation(ctx, v.ID, model.MitigationRequest{})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidVulnerabilityData)

	_, err = svcs.Vulnerability.GetMitigationOptions(ctx, "missing")
	assert.ErrorIs(t, err, hazard_errors.ErrVulnerabilityNotFound)
}

func TestApplyMitigationToResolvedVulnerability(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	seedMitigations(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)

	_, err := svcs.Vulnerability.UpdateStatus(ctx, v.ID, model.StatusUpdate{Status: model.StatusResolved})
	require.NoError(t, err)

	_, err = svcs.Vulnerability.ApplyMitigation(ctx, v.ID, model.MitigationRequest{MitigationValueID: "class_a"})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidStatusTransition)
}

func TestGetMitigationOptionsUnknownType(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)

	v.MitigationTypeID = "retired_type"
	_, err := store.UpdateVulnerability(ctx, v)
	require.NoError(t, err)

	options, err := svcs.Vulnerability.GetMitigationOptions(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestGetObservationsFor(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)

	observations, err := svcs.Vulnerability.GetObservationsFor(ctx, v)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, valueWood, observations[0].ObservationValueID)

	observations, err = svcs.Vulnerability.GetObservationsFor(ctx, model.Vulnerability{ID: "v", AssessmentID: "gone"})
	require.NoError(t, err)
	assert.NotNil(t, observations)
	assert.Empty(t, observations)
}

func TestReevaluateVulnerability(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)

	triggered, err := svcs.Vulnerability.ReevaluateVulnerability(ctx, v.ID)
	require.NoError(t, err)
	assert.True(t, triggered)

	require.NoError(t, store.DeleteRule(ctx, v.RuleID))
	triggered, err = svcs.Vulnerability.ReevaluateVulnerability(ctx, v.ID)
	require.NoError(t, err)
	assert.False(t, triggered)

	_, err = svcs.Vulnerability.ReevaluateVulnerability(ctx, "missing")
	assert.ErrorIs(t, err, hazard_errors.ErrVulnerabilityNotFound)
}

func TestListVulnerabilities(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())
	v := detectOne(t, svcs)
	submit(t, svcs, "p2", roof(valueWood))

	vulnerabilities, err := svcs.Vulnerability.ListVulnerabilities(ctx, model.VulnerabilityFilter{PropertyID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{v.ID}, vulnerabilityIDs(vulnerabilities))

	vulnerabilities, err = svcs.Vulnerability.ListVulnerabilities(ctx, model.VulnerabilityFilter{Status: model.StatusOpen})
	require.NoError(t, err)
	assert.Len(t, vulnerabilities, 2)

	_, err = svcs.Vulnerability.ListVulnerabilities(ctx, model.VulnerabilityFilter{Status: "closed"})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidVulnerabilityData)
}

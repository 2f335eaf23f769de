package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/hazard/api/dao"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

const (
	typeRoof     = "roof_type"
	typeDistance = "distance_to_vegetation"
	typeWindow   = "window_type"

	valueWood   = "roof_wood"
	valueMetal  = "roof_metal"
	valueSingle = "window_single"
)

func newServices(t *testing.T, store dao.Store, opts service.Options) *service.Services {
	t.Helper()
	svcs, err := service.InitializeServices(store, nil, util.NewValidationUtil(), nil, util.NewLocalLocker(time.Second), nil, nil, opts)
	require.NoError(t, err)
	return svcs
}

func seedCatalog(t *testing.T, store dao.CatalogStore) {
	t.Helper()
	ctx := context.Background()

	for _, observationType := range []model.ObservationType{
		{ID: typeRoof, Name: "Roof Type", ValueType: model.ValueTypeEnum},
		{ID: typeDistance, Name: "Distance To Vegetation", ValueType: model.ValueTypeNumber},
		{ID: typeWindow, Name: "Window Type", ValueType: model.ValueTypeEnum},
	} {
		_, err := store.CreateObservationType(ctx, observationType)
		require.NoError(t, err)
	}

	for _, value := range []model.ObservationValue{
		{ID: valueWood, ObservationTypeID: typeRoof, Value: "Wood"},
		{ID: valueMetal, ObservationTypeID: typeRoof, Value: "Metal"},
		{ID: valueSingle, ObservationTypeID: typeWindow, Value: "Single Pane"},
	} {
		_, err := store.CreateObservationValue(ctx, value)
		require.NoError(t, err)
	}
}

func roofIn(valueIDs ...string) *model.LeafCondition {
	return &model.LeafCondition{ObservationTypeID: typeRoof, ObservationValueIDs: valueIDs}
}

func distanceBelow(limit float64) *model.LeafCondition {
	return &model.LeafCondition{
		ObservationTypeID: typeDistance,
		Operator:          model.OperatorLessThan,
		ValueType:         model.ValueTypeNumber,
		Value:             limit,
	}
}

func roof(valueID string) model.Observation {
	return model.Observation{ObservationTypeID: typeRoof, ObservationValueID: valueID}
}

func distance(feet float64) model.Observation {
	return model.Observation{ObservationTypeID: typeDistance, Value: feet}
}

func createRule(t *testing.T, svcs *service.Services, name string, tree *model.ConditionGroup) *model.Rule {
	t.Helper()
	rule, err := svcs.Rule.CreateRule(context.Background(), model.RuleInput{Name: name, FunctionalRule: *tree})
	require.NoError(t, err)
	return rule
}

func submit(t *testing.T, svcs *service.Services, propertyID string, observations ...model.Observation) *model.ProcessResult {
	t.Helper()
	result, err := svcs.Assessment.SubmitAssessment(context.Background(), model.Assessment{
		PropertyID:   propertyID,
		Observations: observations,
	})
	require.NoError(t, err)
	return result
}

func vulnerabilityIDs(vulnerabilities []model.Vulnerability) []string {
	ids := make([]string, 0, len(vulnerabilities))
	for _, v := range vulnerabilities {
		ids = append(ids, v.ID)
	}
	return ids
}

var errConnectionReset = errors.New("connection reset")

// failingStore fails selected writes and passes everything else through.
type failingStore struct {
	*dao.MemoryStore
	failDelete        map[string]bool
	failCreateForRule map[string]bool
	afterListActive   func()
}

func newFailingStore() *failingStore {
	return &failingStore{
		MemoryStore:       dao.NewMemoryStore(),
		failDelete:        make(map[string]bool),
		failCreateForRule: make(map[string]bool),
	}
}

func (f *failingStore) DeleteVulnerability(ctx context.Context, vulnerabilityID string) error {
	if f.failDelete[vulnerabilityID] {
		return hazard_errors.NewPersistenceError("delete vulnerability", errConnectionReset)
	}
	return f.MemoryStore.DeleteVulnerability(ctx, vulnerabilityID)
}

func (f *failingStore) CreateVulnerability(ctx context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error) {
	if f.failCreateForRule[vulnerability.RuleID] {
		return nil, hazard_errors.NewPersistenceError("create vulnerability", errConnectionReset)
	}
	return f.MemoryStore.CreateVulnerability(ctx, vulnerability)
}

// ListActiveRules returns the snapshot and then runs afterListActive, which
// lets a test edit a rule between evaluation and vulnerability creation.
func (f *failingStore) ListActiveRules(ctx context.Context) ([]model.Rule, error) {
	rules, err := f.MemoryStore.ListActiveRules(ctx)
	if f.afterListActive != nil {
		f.afterListActive()
	}
	return rules, err
}

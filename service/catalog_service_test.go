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
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

const catalogYAML = `
observation_types:
  - id: roof_type
    name: Roof Type
    value_type: ENUM
    values:
      - {id: roof_wood, value: Wood}
      - {id: roof_metal, value: Metal}
  - id: distance_to_vegetation
    name: Distance To Vegetation
    value_type: NUMBER
mitigation_types:
  - id: roof_treatment
    name: Roof Treatment
    values:
      - {id: class_a, description: Class A coating, category: FULL}
`

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	svcs := newServices(t, store, service.DefaultOptions())

	seed, err := util.ParseCatalogSeed([]byte(catalogYAML))
	require.NoError(t, err)

	summary, err := svcs.Catalog.SeedCatalog(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, &service.SeedSummary{
		ObservationTypes:  2,
		ObservationValues: 2,
		MitigationTypes:   1,
		MitigationValues:  1,
	}, summary)

	_, err = svcs.Catalog.SeedCatalog(ctx, seed)
	require.NoError(t, err)

	types, err := svcs.Catalog.ListObservationTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	values, err := svcs.Catalog.ListObservationValues(ctx, "roof_type")
	require.NoError(t, err)
	assert.Len(t, values, 2)

	rule, err := svcs.Rule.CreateRule(ctx, model.RuleInput{
		Name:           "Wood roof",
		FunctionalRule: *model.And(roofIn(valueWood)),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rule.ID)
}

func TestCatalogValidation(t *testing.T) {
	ctx := context.Background()
	svcs := newServices(t, dao.NewMemoryStore(), service.DefaultOptions())

	_, err := svcs.Catalog.CreateObservationType(ctx, model.ObservationType{ValueType: "COLOUR"})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidCatalogData)

	_, err = svcs.Catalog.CreateMitigationValue(ctx, model.MitigationValue{MitigationTypeID: "t", Description: "d", Category: "PARTIAL"})
	assert.ErrorIs(t, err, hazard_errors.ErrInvalidCatalogData)

	_, err = svcs.Catalog.CreateObservationValue(ctx, model.ObservationValue{ObservationTypeID: "missing", Value: "x"})
	assert.ErrorIs(t, err, hazard_errors.ErrObservationTypeNotFound)
}

func TestDeleteObservationTypeCascades(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	require.NoError(t, svcs.Catalog.DeleteObservationType(ctx, typeRoof))

	_, err := svcs.Catalog.GetObservationType(ctx, typeRoof)
	assert.ErrorIs(t, err, hazard_errors.ErrObservationTypeNotFound)

	values, err := store.GetObservationValues(ctx, []string{valueWood, valueMetal, valueSingle})
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, valueSingle, values[0].ID)

	assert.ErrorIs(t, svcs.Catalog.DeleteObservationType(ctx, typeRoof), hazard_errors.ErrObservationTypeNotFound)
}

func TestUpdateCatalogEntries(t *testing.T) {
	ctx := context.Background()
	store := dao.NewMemoryStore()
	seedCatalog(t, store)
	svcs := newServices(t, store, service.DefaultOptions())

	t.Run("observation type keeps id and creation time", func(t *testing.T) {
		before, err := svcs.Catalog.GetObservationType(ctx, typeRoof)
		require.NoError(t, err)

		updated, err := svcs.Catalog.UpdateObservationType(ctx, typeRoof, model.ObservationType{
			ID:        "ignored",
			Name:      "Roof Covering",
			ValueType: model.ValueTypeEnum,
		})
		require.NoError(t, err)
		assert.Equal(t, typeRoof, updated.ID)
		assert.Equal(t, before.CreatedAt, updated.CreatedAt)

		stored, err := svcs.Catalog.GetObservationType(ctx, typeRoof)
		require.NoError(t, err)
		assert.Equal(t, "Roof Covering", stored.Name)
	})

	t.Run("observation value stays on its type", func(t *testing.T) {
		updated, err := svcs.Catalog.UpdateObservationValue(ctx, valueWood, model.ObservationValue{
			ObservationTypeID: typeWindow,
			Value:             "Wood Shake",
		})
		require.NoError(t, err)
		assert.Equal(t, typeRoof, updated.ObservationTypeID)

		values, err := svcs.Catalog.ListObservationValues(ctx, typeRoof)
		require.NoError(t, err)
		assert.Contains(t, values, *updated)
	})

	t.Run("mitigation entries", func(t *testing.T) {
		_, err := svcs.Catalog.CreateMitigationType(ctx, model.MitigationType{ID: "roof_treatment", Name: "Roof Treatment"})
		require.NoError(t, err)
		_, err = svcs.Catalog.CreateMitigationValue(ctx, model.MitigationValue{
			ID: "class_a", MitigationTypeID: "roof_treatment", Description: "Class A coating", Category: model.CategoryFull,
		})
		require.NoError(t, err)

		mitigationType, err := svcs.Catalog.UpdateMitigationType(ctx, "roof_treatment", model.MitigationType{Name: "Roof Coating"})
		require.NoError(t, err)
		assert.Equal(t, "Roof Coating", mitigationType.Name)

		value, err := svcs.Catalog.UpdateMitigationValue(ctx, "class_a", model.MitigationValue{
			Description: "Class A membrane", Category: model.CategoryBridge,
		})
		require.NoError(t, err)
		assert.Equal(t, "roof_treatment", value.MitigationTypeID)
		assert.Equal(t, model.CategoryBridge, value.Category)
	})

	t.Run("missing and invalid entries", func(t *testing.T) {
		_, err := svcs.Catalog.UpdateObservationType(ctx, "missing", model.ObservationType{Name: "x"})
		assert.ErrorIs(t, err, hazard_errors.ErrObservationTypeNotFound)

		_, err = svcs.Catalog.UpdateObservationValue(ctx, "missing", model.ObservationValue{Value: "x"})
		assert.ErrorIs(t, err, hazard_errors.ErrObservationValueNotFound)

		_, err = svcs.Catalog.UpdateMitigationValue(ctx, "missing", model.MitigationValue{Description: "x"})
		assert.ErrorIs(t, err, hazard_errors.ErrMitigationValueNotFound)

		_, err = svcs.Catalog.UpdateObservationType(ctx, typeRoof, model.ObservationType{Name: " "})
		assert.ErrorIs(t, err, hazard_errors.ErrInvalidCatalogData)
	})
}

package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/hazard/api/controller"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	mock_service "github.com/dev-mohitbeniwal/hazard/api/test/service_mock"
)

func TestCatalogController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCatalogService := mock_service.NewMockICatalogService(ctrl)
	router, api := setupRouter(t)
	controller.NewCatalogController(mockCatalogService).RegisterRoutes(api)

	t.Run("CreateObservationType_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			CreateObservationType(gomock.Any(), model.ObservationType{ID: "roof_type", Name: "Roof Type", ValueType: model.ValueType("ENUM")}).
			Return(&model.ObservationType{ID: "roof_type", Name: "Roof Type"}, nil)

		w := serve(router, "POST", "/observation-types", `{"id": "roof_type", "name": "Roof Type", "value_type": "ENUM"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateObservationType_Failure_Conflict", func(t *testing.T) {
		mockCatalogService.EXPECT().
			CreateObservationType(gomock.Any(), gomock.Any()).
			Return(nil, hazard_errors.ErrCatalogConflict)

		w := serve(router, "POST", "/observation-types", `{"id": "roof_type", "name": "Roof Type", "value_type": "ENUM"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("CreateObservationValue_TypeFromPath", func(t *testing.T) {
		mockCatalogService.EXPECT().
			CreateObservationValue(gomock.Any(), model.ObservationValue{ObservationTypeID: "roof_type", Value: "Wood"}).
			Return(&model.ObservationValue{ID: "roof_wood", ObservationTypeID: "roof_type", Value: "Wood"}, nil)

		w := serve(router, "POST", "/observation-types/roof_type/values", `{"value": "Wood"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ListObservationValues_Failure_UnknownType", func(t *testing.T) {
		mockCatalogService.EXPECT().
			ListObservationValues(gomock.Any(), "missing").
			Return(nil, hazard_errors.ErrObservationTypeNotFound)

		w := serve(router, "GET", "/observation-types/missing/values", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteObservationValue_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().DeleteObservationValue(gomock.Any(), "roof_wood").Return(nil)

		w := serve(router, "DELETE", "/observation-values/roof_wood", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("CreateMitigationValue_TypeFromPath", func(t *testing.T) {
		mockCatalogService.EXPECT().
			CreateMitigationValue(gomock.Any(), model.MitigationValue{
				MitigationTypeID: "roof_treatment",
				Description:      "Class A coating",
				Category:         model.CategoryFull,
			}).
			Return(&model.MitigationValue{ID: "class_a"}, nil)

		w := serve(router, "POST", "/mitigation-types/roof_treatment/values", `{"description": "Class A coating", "category": "FULL"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("ListMitigationTypes_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			ListMitigationTypes(gomock.Any()).
			Return([]model.MitigationType{{ID: "roof_treatment"}}, nil)

		w := serve(router, "GET", "/mitigation-types", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("DeleteMitigationType_Failure_NotFound", func(t *testing.T) {
		mockCatalogService.EXPECT().
			DeleteMitigationType(gomock.Any(), "missing").
			Return(hazard_errors.ErrMitigationTypeNotFound)

		w := serve(router, "DELETE", "/mitigation-types/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateObservationType_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			UpdateObservationType(gomock.Any(), "roof_type", model.ObservationType{Name: "Roof Covering", ValueType: model.ValueType("ENUM")}).
			Return(&model.ObservationType{ID: "roof_type", Name: "Roof Covering"}, nil)

		w := serve(router, "PUT", "/observation-types/roof_type", `{"name": "Roof Covering", "value_type": "ENUM"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateObservationType_Failure_NotFound", func(t *testing.T) {
		mockCatalogService.EXPECT().
			UpdateObservationType(gomock.Any(), "missing", gomock.Any()).
			Return(nil, hazard_errors.ErrObservationTypeNotFound)

		w := serve(router, "PUT", "/observation-types/missing", `{"name": "Roof Covering"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateObservationValue_Success", func(t *testing.T) {
		mockCatalogService.EXPECT().
			UpdateObservationValue(gomock.Any(), "roof_wood", model.ObservationValue{Value: "Wood Shake"}).
			Return(&model.ObservationValue{ID: "roof_wood", ObservationTypeID: "roof_type", Value: "Wood Shake"}, nil)

		w := serve(router, "PUT", "/observation-values/roof_wood", `{"value": "Wood Shake"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateMitigationType_Failure_InvalidBody", func(t *testing.T) {
		w := serve(router, "PUT", "/mitigation-types/roof_treatment", `{"name": `)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateMitigationValue_Failure_Invalid", func(t *testing.T) {
		mockCatalogService.EXPECT().
			UpdateMitigationValue(gomock.Any(), "class_a", model.MitigationValue{Description: "Class A", Category: model.MitigationCategory("PARTIAL")}).
			Return(nil, hazard_errors.ErrInvalidCatalogData)

		w := serve(router, "PUT", "/mitigation-values/class_a", `{"description": "Class A", "category": "PARTIAL"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

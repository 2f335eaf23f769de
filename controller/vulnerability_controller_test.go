package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/hazard/api/controller"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	mock_service "github.com/dev-mohitbeniwal/hazard/api/test/service_mock"
)

func TestVulnerabilityController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVulnerabilityService := mock_service.NewMockIVulnerabilityService(ctrl)
	router, api := setupRouter(t)
	controller.NewVulnerabilityController(mockVulnerabilityService).RegisterRoutes(api)

	open := model.Vulnerability{ID: "v1", RuleID: "r1", AssessmentID: "a1", PropertyID: "p1", Status: model.StatusOpen}

	t.Run("ListVulnerabilities_Filters", func(t *testing.T) {
		before := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		mockVulnerabilityService.EXPECT().
			ListVulnerabilities(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, filter model.VulnerabilityFilter) ([]model.Vulnerability, error) {
				assert.Equal(t, "p1", filter.PropertyID)
				assert.Equal(t, model.StatusOpen, filter.Status)
				require.NotNil(t, filter.DetectedBefore)
				assert.True(t, before.Equal(*filter.DetectedBefore))
				return []model.Vulnerability{open}, nil
			})

		w := serve(router, "GET", "/vulnerabilities?property_id=p1&status=open&detected_before=2024-06-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var vulnerabilities []model.Vulnerability
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vulnerabilities))
		assert.Len(t, vulnerabilities, 1)
	})

	t.Run("ListVulnerabilities_Failure_BadStatus", func(t *testing.T) {
		mockVulnerabilityService.EXPECT().
			ListVulnerabilities(gomock.Any(), gomock.Any()).
			Return(nil, hazard_errors.ErrInvalidVulnerabilityData)

		w := serve(router, "GET", "/vulnerabilities?status=closed", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListVulnerabilities_Failure_BadTime", func(t *testing.T) {
		w := serve(router, "GET", "/vulnerabilities?detected_before=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetVulnerability_Failure_NotFound", func(t *testing.T) {
		mockVulnerabilityService.EXPECT().
			GetVulnerability(gomock.Any(), "missing").
			Return(nil, hazard_errors.ErrVulnerabilityNotFound)

		w := serve(router, "GET", "/vulnerabilities/missing", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetMitigationOptions_Success", func(t *testing.T) {
		mockVulnerabilityService.EXPECT().
			GetMitigationOptions(gomock.Any(), "v1").
			Return([]model.MitigationOption{{
				ID:   "roof_treatment",
				Type: model.MitigationType{ID: "roof_treatment", Name: "Roof Treatment"},
				Values: []model.MitigationValue{
					{ID: "class_a", MitigationTypeID: "roof_treatment", Category: model.CategoryFull},
				},
			}}, nil)

		w := serve(router, "GET", "/vulnerabilities/v1/mitigation-options", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var options []model.MitigationOption
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &options))
		require.Len(t, options, 1)
		assert.Equal(t, model.CategoryFull, options[0].Values[0].Category)
	})

	t.Run("ApplyMitigation_Success", func(t *testing.T) {
		mockVulnerabilityService.EXPECT().
			ApplyMitigation(gomock.Any(), "v1", model.MitigationRequest{MitigationValueID: "class_a", Description: "coated"}).
			Return(&model.Vulnerability{ID: "v1", Status: model.StatusInReview, MitigationValueID: "class_a"}, nil)

		w := serve(router, "POST", "/vulnerabilities/v1/mitigation", `{"mitigation_value_id": "class_a", "description": "coated"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var vulnerability model.Vulnerability
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vulnerability))
		assert.Equal(t, model.StatusInReview, vulnerability.Status)
	})

	t.Run("UpdateStatus_Failure_Transition", func(t *testing.T) {
		mockVulnerabilityService.EXPECT().
			UpdateStatus(gomock.Any(), "v1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, update model.StatusUpdate) (*model.Vulnerability, error) {
				assert.Equal(t, model.StatusOpen, update.Status)
				return nil, hazard_errors.ErrInvalidStatusTransition
			})

		w := serve(router, "PUT", "/vulnerabilities/v1/status", `{"status": "open"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("GetObservations_Success", func(t *testing.T) {
		gomock.InOrder(
			mockVulnerabilityService.EXPECT().GetVulnerability(gomock.Any(), "v1").Return(&open, nil),
			mockVulnerabilityService.EXPECT().
				GetObservationsFor(gomock.Any(), open).
				Return([]model.Observation{{ObservationTypeID: "roof_type", ObservationValueID: "roof_wood"}}, nil),
		)

		w := serve(router, "GET", "/vulnerabilities/v1/observations", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"observation_type_id": "roof_type", "observation_value_id": "roof_wood"}]`, w.Body.String())
	})

	t.Run("ReevaluateVulnerability_Success", func(t *testing.T) {
		mockVulnerabilityService.EXPECT().ReevaluateVulnerability(gomock.Any(), "v1").Return(false, nil)

		w := serve(router, "POST", "/vulnerabilities/v1/reevaluate", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"vulnerability_id": "v1", "triggered": false}`, w.Body.String())
	})
}

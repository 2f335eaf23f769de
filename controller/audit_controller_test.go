package controller_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/controller"
	hazard_mock "github.com/dev-mohitbeniwal/hazard/api/test/mock"
)

func TestAuditController(t *testing.T) {
	mockAuditService := new(hazard_mock.MockAuditService)
	router, api := setupRouter(t)
	controller.NewAuditController(mockAuditService).RegisterRoutes(api)

	t.Run("QueryAuditLogs_Filters", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		mockAuditService.On("Query", mock.Anything, audit.Query{
			From:       from,
			To:         to,
			EntityType: audit.EntityRule,
			RuleID:     "r1",
		}).Return([]audit.AuditLog{{ID: "l1", Action: audit.ActionUpdate}}, nil).Once()

		w := serve(router, "GET", "/audit-logs?entity_type=rule&rule_id=r1&from=2024-01-01&to=2024-02-01", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"action":"UPDATE"`)
	})

	t.Run("QueryAuditLogs_Failure_BadTime", func(t *testing.T) {
		w := serve(router, "GET", "/audit-logs?from=soon", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("QueryAuditLogs_Failure_Backend", func(t *testing.T) {
		mockAuditService.On("Query", mock.Anything, mock.Anything).
			Return([]audit.AuditLog(nil), errors.New("cluster unavailable")).Once()

		w := serve(router, "GET", "/audit-logs", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	mockAuditService.AssertExpectations(t)
}

// api/controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	helper_util "github.com/dev-mohitbeniwal/hazard/api/util/helper"
)

const defaultAuditWindow = 30 * 24 * time.Hour

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/audit-logs", ac.QueryAuditLogs)
}

// QueryAuditLogs endpoint. from and to default to the last thirty days.
func (ac *AuditController) QueryAuditLogs(c *gin.Context) {
	now := time.Now().UTC()
	q := audit.Query{
		From:       now.Add(-defaultAuditWindow),
		To:         now,
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
		RuleID:     c.Query("rule_id"),
		PropertyID: c.Query("property_id"),
	}

	for param, target := range map[string]*time.Time{"from": &q.From, "to": &q.To} {
		t, err := helper_util.ParseOptionalTime(c.Query(param))
		if err != nil {
			respondWithBindError(c, "Invalid "+param, hazard_errors.ErrInvalidQuery, err)
			return
		}
		if t != nil {
			*target = *t
		}
	}

	logs, err := ac.auditService.Query(c, q)
	if err != nil {
		respondWithServiceError(c, err, "Failed to query audit logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

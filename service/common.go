// api/service/common.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

// recordAudit writes an audit entry. Audit failures are logged and swallowed.
func recordAudit(ctx context.Context, auditService audit.Service, entry audit.AuditLog) {
	if auditService == nil {
		return
	}
	if err := auditService.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record audit entry",
			zap.Error(err),
			zap.String("action", entry.Action),
			zap.String("entityType", entry.EntityType),
			zap.String("entityID", entry.EntityID))
	}
}

// lockRule takes the per-rule lock shared by rule mutation and vulnerability creation.
func lockRule(ctx context.Context, locker util.Locker, ruleID string) (func(), error) {
	release, err := locker.Lock(ctx, util.RuleLockKey(ruleID))
	if err != nil {
		logger.Error("Failed to lock rule", zap.Error(err), zap.String("ruleID", ruleID))
		return nil, fmt.Errorf("failed to lock rule %s: %w", ruleID, err)
	}
	return release, nil
}

// observationsFor returns the observations of the assessment that produced v.
// A missing assessment yields no observations.
func observationsFor(ctx context.Context, assessments dao.AssessmentStore, v model.Vulnerability) ([]model.Observation, error) {
	if v.AssessmentID == "" {
		return nil, nil
	}
	assessment, err := assessments.GetAssessment(ctx, v.AssessmentID)
	if errors.Is(err, hazard_errors.ErrAssessmentNotFound) {
		logger.Warn("Assessment for vulnerability not found",
			zap.String("vulnerabilityID", v.ID),
			zap.String("assessmentID", v.AssessmentID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment %s: %w", v.AssessmentID, err)
	}
	return assessment.Observations, nil
}

func failure(id, op string, err error) model.ItemFailure {
	return model.ItemFailure{ID: id, Op: op, Error: err.Error()}
}

// api/service/vulnerability_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	"github.com/dev-mohitbeniwal/hazard/api/engine"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

// IVulnerabilityService defines the interface for vulnerability operations
type IVulnerabilityService interface {
	CreateVulnerability(ctx context.Context, ruleID, assessmentID, propertyID string) (*model.Vulnerability, error)
	GetVulnerability(ctx context.Context, vulnerabilityID string) (*model.Vulnerability, error)
	ListVulnerabilities(ctx context.Context, filter model.VulnerabilityFilter) ([]model.Vulnerability, error)
	GetMitigationOptions(ctx context.Context, vulnerabilityID string) ([]model.MitigationOption, error)
	ApplyMitigation(ctx context.Context, vulnerabilityID string, request model.MitigationRequest) (*model.Vulnerability, error)
	UpdateStatus(ctx context.Context, vulnerabilityID string, update model.StatusUpdate) (*model.Vulnerability, error)
	GetObservationsFor(ctx context.Context, vulnerability model.Vulnerability) ([]model.Observation, error)
	ReevaluateVulnerability(ctx context.Context, vulnerabilityID string) (bool, error)
}

// VulnerabilityService handles business logic for vulnerability operations
type VulnerabilityService struct {
	store        dao.Store
	auditService audit.Service
	eventBus     *util.EventBus
	opts         Options
}

// NewVulnerabilityService creates a new instance of VulnerabilityService
func NewVulnerabilityService(store dao.Store, auditService audit.Service, eventBus *util.EventBus, opts Options) *VulnerabilityService {
	return &VulnerabilityService{
		store:        store,
		auditService: auditService,
		eventBus:     eventBus,
		opts:         opts,
	}
}

// CreateVulnerability stores an open vulnerability detected now
func (s *VulnerabilityService) CreateVulnerability(ctx context.Context, ruleID, assessmentID, propertyID string) (*model.Vulnerability, error) {
	now := time.Now().UTC()
	created, err := s.store.CreateVulnerability(ctx, model.Vulnerability{
		RuleID:       ruleID,
		AssessmentID: assessmentID,
		PropertyID:   propertyID,
		Status:       model.StatusOpen,
		DetectedAt:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.Error("Error creating vulnerability",
			zap.Error(err),
			zap.String("ruleID", ruleID),
			zap.String("assessmentID", assessmentID))
		return nil, fmt.Errorf("failed to create vulnerability: %w", err)
	}

	recordAudit(ctx, s.auditService,
		audit.NewEntry(audit.ActionCreate, audit.EntityVulnerability, created.ID, created).
			WithRule(ruleID).
			WithProperty(propertyID))
	s.eventBus.Publish(ctx, util.EventVulnerabilityDetected, *created)

	logger.Info("Vulnerability created",
		zap.String("vulnerabilityID", created.ID),
		zap.String("ruleID", ruleID),
		zap.String("propertyID", propertyID))
	return created, nil
}

func (s *VulnerabilityService) GetVulnerability(ctx context.Context, vulnerabilityID string) (*model.Vulnerability, error) {
	vulnerability, err := s.store.GetVulnerability(ctx, vulnerabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vulnerability: %w", err)
	}
	return vulnerability, nil
}

func (s *VulnerabilityService) ListVulnerabilities(ctx context.Context, filter model.VulnerabilityFilter) ([]model.Vulnerability, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidVulnerabilityData)
		verr.Add("unknown status %q", filter.Status)
		return nil, verr
	}
	vulnerabilities, err := s.store.ListVulnerabilities(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list vulnerabilities: %w", err)
	}
	return vulnerabilities, nil
}

// GetMitigationOptions returns the mitigation type recorded on the
// vulnerability with every value of that type. A vulnerability without a
// known mitigation type has no options.
func (s *VulnerabilityService) GetMitigationOptions(ctx context.Context, vulnerabilityID string) ([]model.MitigationOption, error) {
	vulnerability, err := s.store.GetVulnerability(ctx, vulnerabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vulnerability: %w", err)
	}

	options := make([]model.MitigationOption, 0, 1)
	if vulnerability.MitigationTypeID == "" {
		return options, nil
	}

	mitigationType, err := s.store.GetMitigationType(ctx, vulnerability.MitigationTypeID)
	if errors.Is(err, hazard_errors.ErrMitigationTypeNotFound) {
		logger.Warn("Mitigation type on vulnerability not found",
			zap.String("vulnerabilityID", vulnerabilityID),
			zap.String("mitigationTypeID", vulnerability.MitigationTypeID))
		return options, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mitigation type: %w", err)
	}

	values, err := s.store.ListMitigationValues(ctx, mitigationType.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mitigation values: %w", err)
	}

	return append(options, model.MitigationOption{
		ID:     mitigationType.ID,
		Type:   *mitigationType,
		Values: values,
	}), nil
}

// ApplyMitigation records the chosen mitigation and moves the vulnerability
// to in_review.
func (s *VulnerabilityService) ApplyMitigation(ctx context.Context, vulnerabilityID string, request model.MitigationRequest) (*model.Vulnerability, error) {
	vulnerability, err := s.store.GetVulnerability(ctx, vulnerabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vulnerability: %w", err)
	}

	if request.MitigationValueID == "" {
		verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidVulnerabilityData)
		verr.Add("mitigation_value_id cannot be empty")
		return nil, verr
	}
	if s.opts.EnforceStatusTransitions && !vulnerability.Status.CanTransitionTo(model.StatusInReview) {
		return nil, fmt.Errorf("cannot mitigate %s vulnerability: %w", vulnerability.Status, hazard_errors.ErrInvalidStatusTransition)
	}

	value, err := s.store.GetMitigationValue(ctx, request.MitigationValueID)
	switch {
	case err == nil:
		if vulnerability.MitigationTypeID == "" {
			vulnerability.MitigationTypeID = value.MitigationTypeID
		}
	case errors.Is(err, hazard_errors.ErrMitigationValueNotFound):
		logger.Warn("Applying unknown mitigation value",
			zap.String("vulnerabilityID", vulnerabilityID),
			zap.String("mitigationValueID", request.MitigationValueID))
	default:
		return nil, fmt.Errorf("failed to get mitigation value: %w", err)
	}

	previous := vulnerability.Status
	vulnerability.Status = model.StatusInReview
	vulnerability.MitigationValueID = request.MitigationValueID
	vulnerability.MitigationDescription = request.Description
	vulnerability.UpdatedAt = time.Now().UTC()

	updated, err := s.store.UpdateVulnerability(ctx, *vulnerability)
	if err != nil {
		logger.Error("Error applying mitigation", zap.Error(err), zap.String("vulnerabilityID", vulnerabilityID))
		return nil, fmt.Errorf("failed to apply mitigation: %w", err)
	}

	recordAudit(ctx, s.auditService,
		audit.NewEntry(audit.ActionApplyMitigation, audit.EntityVulnerability, vulnerabilityID, map[string]interface{}{
			"previous_status":     previous,
			"mitigation_value_id": request.MitigationValueID,
			"description":         request.Description,
		}).WithRule(updated.RuleID).WithProperty(updated.PropertyID))
	s.eventBus.Publish(ctx, util.EventVulnerabilityUpdated, *updated)

	logger.Info("Mitigation applied",
		zap.String("vulnerabilityID", vulnerabilityID),
		zap.String("mitigationValueID", request.MitigationValueID))
	return updated, nil
}

// UpdateStatus sets the status and, when given, the notes of a vulnerability.
// With transition enforcement a status may only move forward; keeping the
// same status to edit notes is allowed.
func (s *VulnerabilityService) UpdateStatus(ctx context.Context, vulnerabilityID string, update model.StatusUpdate) (*model.Vulnerability, error) {
	if !update.Status.Valid() {
		verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidVulnerabilityData)
		verr.Add("unknown status %q", update.Status)
		return nil, verr
	}

	vulnerability, err := s.store.GetVulnerability(ctx, vulnerabilityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vulnerability: %w", err)
	}

	previous := vulnerability.Status
	if s.opts.EnforceStatusTransitions && !previous.CanTransitionTo(update.Status) {
		logger.Warn("Rejected status transition",
			zap.String("vulnerabilityID", vulnerabilityID),
			zap.String("from", string(previous)),
			zap.String("to", string(update.Status)))
		return nil, fmt.Errorf("%s -> %s: %w", previous, update.Status, hazard_errors.ErrInvalidStatusTransition)
	}

	vulnerability.Status = update.Status
	if update.Notes != nil {
		vulnerability.Notes = *update.Notes
	}
	vulnerability.UpdatedAt = time.Now().UTC()

	updated, err := s.store.UpdateVulnerability(ctx, *vulnerability)
	if err != nil {
		logger.Error("Error updating vulnerability status", zap.Error(err), zap.String("vulnerabilityID", vulnerabilityID))
		return nil, fmt.Errorf("failed to update vulnerability status: %w", err)
	}

	recordAudit(ctx, s.auditService,
		audit.NewEntry(audit.ActionUpdateStatus, audit.EntityVulnerability, vulnerabilityID, map[string]interface{}{
			"from":  previous,
			"to":    updated.Status,
			"notes": updated.Notes,
		}).WithRule(updated.RuleID).WithProperty(updated.PropertyID))
	s.eventBus.Publish(ctx, util.EventVulnerabilityUpdated, *updated)

	logger.Info("Vulnerability status updated",
		zap.String("vulnerabilityID", vulnerabilityID),
		zap.String("from", string(previous)),
		zap.String("to", string(updated.Status)))
	return updated, nil
}

// GetObservationsFor returns the observations of the assessment that produced
// the vulnerability, or none when that assessment is gone.
func (s *VulnerabilityService) GetObservationsFor(ctx context.Context, vulnerability model.Vulnerability) ([]model.Observation, error) {
	observations, err := observationsFor(ctx, s.store, vulnerability)
	if err != nil {
		return nil, err
	}
	if observations == nil {
		observations = []model.Observation{}
	}
	return observations, nil
}

// ReevaluateVulnerability reports whether the vulnerability's current rule
// still triggers on its observations. A deleted rule never triggers.
func (s *VulnerabilityService) ReevaluateVulnerability(ctx context.Context, vulnerabilityID string) (bool, error) {
	vulnerability, err := s.store.GetVulnerability(ctx, vulnerabilityID)
	if err != nil {
		return false, fmt.Errorf("failed to get vulnerability: %w", err)
	}

	rule, err := s.store.GetRule(ctx, vulnerability.RuleID)
	if errors.Is(err, hazard_errors.ErrRuleNotFound) {
		logger.Debug("Vulnerability rule no longer exists",
			zap.String("vulnerabilityID", vulnerabilityID),
			zap.String("ruleID", vulnerability.RuleID))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get rule: %w", err)
	}

	observations, err := observationsFor(ctx, s.store, *vulnerability)
	if err != nil {
		return false, err
	}
	return engine.Evaluate(rule.FunctionalRule, observations), nil
}

// api/service/assessment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	"github.com/dev-mohitbeniwal/hazard/api/engine"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

// IAssessmentService defines the interface for assessment processing
type IAssessmentService interface {
	SubmitAssessment(ctx context.Context, assessment model.Assessment) (*model.ProcessResult, error)
	ProcessAssessment(ctx context.Context, assessment model.Assessment) (*model.ProcessResult, error)
	ProcessAssessmentAtTime(ctx context.Context, assessment model.Assessment, at time.Time) (*model.ProcessResult, error)
	ProcessStoredAssessment(ctx context.Context, assessmentID string, at *time.Time) (*model.ProcessResult, error)
	ProcessAssessments(ctx context.Context, assessments []model.Assessment) ([]model.ProcessResult, error)
	GetAssessment(ctx context.Context, assessmentID string) (*model.Assessment, error)
	ListAssessments(ctx context.Context, propertyID string) ([]model.Assessment, error)
	GetVulnerabilityStateAtTime(ctx context.Context, propertyID string, at time.Time) (*model.VulnerabilityState, error)
	ReevaluateProperty(ctx context.Context, propertyID string) (*model.ReconcileResult, error)
}

// AssessmentService turns assessments into vulnerabilities
type AssessmentService struct {
	store           dao.Store
	vulnerabilities IVulnerabilityService
	evaluator       *engine.RuleEvaluator
	validationUtil  *util.ValidationUtil
	locker          util.Locker
	auditService    audit.Service
	eventBus        *util.EventBus
	opts            Options
}

// NewAssessmentService creates a new instance of AssessmentService
func NewAssessmentService(store dao.Store, vulnerabilities IVulnerabilityService, validationUtil *util.ValidationUtil, locker util.Locker, auditService audit.Service, eventBus *util.EventBus, opts Options) *AssessmentService {
	return &AssessmentService{
		store:           store,
		vulnerabilities: vulnerabilities,
		evaluator:       engine.NewRuleEvaluator(),
		validationUtil:  validationUtil,
		locker:          locker,
		auditService:    auditService,
		eventBus:        eventBus,
		opts:            opts,
	}
}

// SubmitAssessment stores a new assessment and processes it against every
// active rule.
func (s *AssessmentService) SubmitAssessment(ctx context.Context, assessment model.Assessment) (*model.ProcessResult, error) {
	if err := s.validationUtil.ValidateAssessment(assessment); err != nil {
		return nil, err
	}
	if assessment.AssessedAt.IsZero() {
		assessment.AssessedAt = time.Now().UTC()
	}
	if assessment.Observations == nil {
		assessment.Observations = []model.Observation{}
	}

	stored, err := s.store.CreateAssessment(ctx, assessment)
	if err != nil {
		logger.Error("Error creating assessment", zap.Error(err), zap.String("propertyID", assessment.PropertyID))
		return nil, fmt.Errorf("failed to create assessment: %w", err)
	}
	recordAudit(ctx, s.auditService,
		audit.NewEntry(audit.ActionCreate, audit.EntityAssessment, stored.ID, map[string]interface{}{
			"assessed_at":  stored.AssessedAt,
			"observations": len(stored.Observations),
		}).WithProperty(stored.PropertyID))

	return s.ProcessAssessment(ctx, *stored)
}

// ProcessAssessment evaluates every active rule against the assessment and
// creates one vulnerability per triggered rule.
func (s *AssessmentService) ProcessAssessment(ctx context.Context, assessment model.Assessment) (*model.ProcessResult, error) {
	if err := s.validateForProcessing(assessment); err != nil {
		return nil, err
	}

	rules, err := s.store.ListActiveRules(ctx)
	if err != nil {
		logger.Error("Error listing active rules", zap.Error(err), zap.String("assessmentID", assessment.ID))
		return nil, fmt.Errorf("failed to list active rules: %w", err)
	}

	return s.process(ctx, assessment, rules, func(rule model.Rule) bool { return rule.IsActive })
}

// ProcessAssessmentAtTime evaluates only the rules effective at the given
// instant. A zero instant means the assessment's own date.
func (s *AssessmentService) ProcessAssessmentAtTime(ctx context.Context, assessment model.Assessment, at time.Time) (*model.ProcessResult, error) {
	if err := s.validateForProcessing(assessment); err != nil {
		return nil, err
	}
	if at.IsZero() {
		at = assessment.AssessedAt
	}

	rules, err := s.store.ListRulesEffectiveAt(ctx, at)
	if err != nil {
		logger.Error("Error listing rules effective at time",
			zap.Error(err),
			zap.String("assessmentID", assessment.ID),
			zap.Time("at", at))
		return nil, fmt.Errorf("failed to list rules effective at %s: %w", at.Format(time.RFC3339), err)
	}

	return s.process(ctx, assessment, rules, func(rule model.Rule) bool {
		return rule.IsActive && rule.EffectiveAt(at)
	})
}

// ProcessStoredAssessment re-runs a stored assessment, at a point in time when at is set.
func (s *AssessmentService) ProcessStoredAssessment(ctx context.Context, assessmentID string, at *time.Time) (*model.ProcessResult, error) {
	assessment, err := s.store.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	if at != nil {
		return s.ProcessAssessmentAtTime(ctx, *assessment, *at)
	}
	return s.ProcessAssessment(ctx, *assessment)
}

// ProcessAssessments submits a batch of assessments with bounded parallelism.
// Each assessment is one sequential unit of work.
func (s *AssessmentService) ProcessAssessments(ctx context.Context, assessments []model.Assessment) ([]model.ProcessResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]model.ProcessResult, len(assessments))

	limit := s.opts.BatchConcurrency
	if limit < 1 {
		limit = 1
	}
	semaphore := make(chan struct{}, limit)

	for i, assessment := range assessments {
		i, assessment := i, assessment
		g.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			result, err := s.SubmitAssessment(ctx, assessment)
			if err != nil {
				return fmt.Errorf("assessment %d: %w", i, err)
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Error in batch assessment processing", zap.Error(err), zap.Int("count", len(assessments)))
		return nil, fmt.Errorf("failed to process assessments: %w", err)
	}

	logger.Info("Batch assessment processing completed", zap.Int("count", len(assessments)))
	return results, nil
}

func (s *AssessmentService) validateForProcessing(assessment model.Assessment) error {
	if err := s.validationUtil.ValidateAssessment(assessment); err != nil {
		return err
	}
	if strings.TrimSpace(assessment.ID) == "" {
		verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidAssessmentData)
		verr.Add("assessment id cannot be empty")
		return verr
	}
	return nil
}

type detection int

const (
	detectionCreated detection = iota
	detectionDuplicate
	detectionWithdrawn
)

// process evaluates rules against the assessment snapshot. applies re-checks
// a rule that changed between the snapshot and vulnerability creation.
func (s *AssessmentService) process(ctx context.Context, assessment model.Assessment, rules []model.Rule, applies func(model.Rule) bool) (*model.ProcessResult, error) {
	start := time.Now()
	result := &model.ProcessResult{
		AssessmentID:   assessment.ID,
		PropertyID:     assessment.PropertyID,
		RulesEvaluated: len(rules),
		TriggeredRules: []string{},
		Created:        []model.Vulnerability{},
	}

	for _, evaluation := range s.evaluator.EvaluateRules(rules, assessment.Observations) {
		if !evaluation.Triggered {
			logger.Debug("Rule not triggered",
				zap.String("ruleID", evaluation.RuleID),
				zap.String("assessmentID", assessment.ID),
				zap.String("reason", evaluation.Reason))
			continue
		}

		outcome, vulnerability, err := s.detect(ctx, assessment, evaluation, applies)
		if err != nil {
			logger.Error("Failed to record vulnerability",
				zap.Error(err),
				zap.String("ruleID", evaluation.RuleID),
				zap.String("assessmentID", assessment.ID))
			result.TriggeredRules = append(result.TriggeredRules, evaluation.RuleID)
			result.Failures = append(result.Failures, failure(evaluation.RuleID, "create_vulnerability", err))
			continue
		}

		switch outcome {
		case detectionCreated:
			result.TriggeredRules = append(result.TriggeredRules, evaluation.RuleID)
			result.Created = append(result.Created, *vulnerability)
		case detectionDuplicate:
			result.TriggeredRules = append(result.TriggeredRules, evaluation.RuleID)
			result.Duplicates = append(result.Duplicates, evaluation.RuleID)
		case detectionWithdrawn:
			logger.Debug("Rule changed before vulnerability creation and no longer triggers",
				zap.String("ruleID", evaluation.RuleID),
				zap.String("assessmentID", assessment.ID))
		}
	}

	recordAudit(ctx, s.auditService,
		audit.NewEntry(audit.ActionProcess, audit.EntityAssessment, assessment.ID, map[string]interface{}{
			"rules_evaluated": result.RulesEvaluated,
			"triggered_rules": result.TriggeredRules,
			"created":         len(result.Created),
			"duplicates":      len(result.Duplicates),
			"failures":        len(result.Failures),
		}).WithProperty(assessment.PropertyID))

	logger.Info("Assessment processed",
		zap.String("assessmentID", assessment.ID),
		zap.String("propertyID", assessment.PropertyID),
		zap.Int("rulesEvaluated", result.RulesEvaluated),
		zap.Int("created", len(result.Created)),
		zap.Int("duplicates", len(result.Duplicates)),
		zap.Int("failures", len(result.Failures)),
		zap.Duration("duration", time.Since(start)))
	return result, nil
}

// detect creates the vulnerability for a triggered rule under the rule lock.
// If the rule was edited since the snapshot it is re-evaluated first.
func (s *AssessmentService) detect(ctx context.Context, assessment model.Assessment, evaluation engine.RuleEvaluation, applies func(model.Rule) bool) (detection, *model.Vulnerability, error) {
	release, err := lockRule(ctx, s.locker, evaluation.RuleID)
	if err != nil {
		return 0, nil, err
	}
	defer release()

	current, err := s.store.GetRule(ctx, evaluation.RuleID)
	if errors.Is(err, hazard_errors.ErrRuleNotFound) {
		return detectionWithdrawn, nil, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("failed to re-read rule: %w", err)
	}
	if current.Version != evaluation.Version {
		if !applies(*current) || !engine.Evaluate(current.FunctionalRule, assessment.Observations) {
			return detectionWithdrawn, nil, nil
		}
	}

	if s.opts.DedupeOpenVulnerabilities {
		existing, err := s.store.ListVulnerabilities(ctx, model.VulnerabilityFilter{
			RuleID:     evaluation.RuleID,
			PropertyID: assessment.PropertyID,
		})
		if err != nil {
			return 0, nil, fmt.Errorf("failed to check for open vulnerabilities: %w", err)
		}
		for _, v := range existing {
			if v.Status != model.StatusResolved {
				return detectionDuplicate, nil, nil
			}
		}
	}

	created, err := s.vulnerabilities.CreateVulnerability(ctx, evaluation.RuleID, assessment.ID, assessment.PropertyID)
	if err != nil {
		return 0, nil, err
	}
	return detectionCreated, created, nil
}

func (s *AssessmentService) GetAssessment(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	assessment, err := s.store.GetAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return assessment, nil
}

func (s *AssessmentService) ListAssessments(ctx context.Context, propertyID string) ([]model.Assessment, error) {
	assessments, err := s.store.ListAssessments(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	return assessments, nil
}

// GetVulnerabilityStateAtTime returns the property's vulnerabilities detected at or before at.
func (s *AssessmentService) GetVulnerabilityStateAtTime(ctx context.Context, propertyID string, at time.Time) (*model.VulnerabilityState, error) {
	vulnerabilities, err := s.store.ListVulnerabilities(ctx, model.VulnerabilityFilter{
		PropertyID:     propertyID,
		DetectedBefore: &at,
	})
	if err != nil {
		logger.Error("Error listing vulnerabilities at time", zap.Error(err), zap.String("propertyID", propertyID))
		return nil, fmt.Errorf("failed to get vulnerability state: %w", err)
	}

	return &model.VulnerabilityState{
		PropertyID:      propertyID,
		Timestamp:       at,
		Vulnerabilities: vulnerabilities,
	}, nil
}

// ReevaluateProperty re-tests every vulnerability of a property against its
// current rule and deletes those that no longer trigger. Vulnerabilities whose
// rule is gone or whose assessment has no observations are skipped.
func (s *AssessmentService) ReevaluateProperty(ctx context.Context, propertyID string) (*model.ReconcileResult, error) {
	vulnerabilities, err := s.store.ListVulnerabilities(ctx, model.VulnerabilityFilter{PropertyID: propertyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list vulnerabilities for property: %w", err)
	}

	byRule := make(map[string][]model.Vulnerability)
	var ruleOrder []string
	for _, v := range vulnerabilities {
		if _, seen := byRule[v.RuleID]; !seen {
			ruleOrder = append(ruleOrder, v.RuleID)
		}
		byRule[v.RuleID] = append(byRule[v.RuleID], v)
	}

	result := &model.ReconcileResult{PropertyID: propertyID, VulnerabilitiesChecked: len(vulnerabilities)}
	for _, ruleID := range ruleOrder {
		s.reevaluateRuleGroup(ctx, ruleID, byRule[ruleID], result)
	}

	logger.Info("Property re-evaluated",
		zap.String("propertyID", propertyID),
		zap.Int("checked", result.VulnerabilitiesChecked),
		zap.Int("skipped", result.VulnerabilitiesSkipped),
		zap.Int("removed", result.VulnerabilitiesRemoved),
		zap.Int("failures", len(result.Failures)))
	return result, nil
}

func (s *AssessmentService) reevaluateRuleGroup(ctx context.Context, ruleID string, vulnerabilities []model.Vulnerability, result *model.ReconcileResult) {
	release, err := lockRule(ctx, s.locker, ruleID)
	if err != nil {
		for _, v := range vulnerabilities {
			result.Failures = append(result.Failures, failure(v.ID, "lock_rule", err))
		}
		return
	}
	defer release()

	rule, err := s.store.GetRule(ctx, ruleID)
	if errors.Is(err, hazard_errors.ErrRuleNotFound) {
		result.VulnerabilitiesSkipped += len(vulnerabilities)
		return
	}
	if err != nil {
		for _, v := range vulnerabilities {
			result.Failures = append(result.Failures, failure(v.ID, "get_rule", err))
		}
		return
	}

	for _, v := range vulnerabilities {
		observations, err := observationsFor(ctx, s.store, v)
		if err != nil {
			result.Failures = append(result.Failures, failure(v.ID, "get_observations", err))
			continue
		}
		if len(observations) == 0 {
			result.VulnerabilitiesSkipped++
			continue
		}
		if engine.Evaluate(rule.FunctionalRule, observations) {
			continue
		}

		if err := s.store.DeleteVulnerability(ctx, v.ID); err != nil {
			logger.Error("Failed to delete vulnerability during re-evaluation",
				zap.Error(err),
				zap.String("vulnerabilityID", v.ID),
				zap.String("ruleID", ruleID))
			result.Failures = append(result.Failures, failure(v.ID, "delete", err))
			continue
		}
		result.VulnerabilitiesRemoved++
		recordAudit(ctx, s.auditService,
			audit.NewEntry(audit.ActionReconcile, audit.EntityVulnerability, v.ID, map[string]interface{}{
				"reason": "property re-evaluation",
			}).WithRule(ruleID).WithProperty(v.PropertyID))
		s.eventBus.Publish(ctx, util.EventVulnerabilityRemoved, v)
	}
}

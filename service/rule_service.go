// api/service/rule_service.go
package service

import (
	"context"
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

// IRuleService defines the interface for rule operations
type IRuleService interface {
	CreateRule(ctx context.Context, input model.RuleInput) (*model.Rule, error)
	UpdateRule(ctx context.Context, ruleID string, patch model.RulePatch) (*model.Rule, *model.ReconcileResult, error)
	PreviewRuleUpdate(ctx context.Context, ruleID string, tree model.ConditionGroup) (*model.RulePreview, error)
	TestRule(tree model.ConditionGroup, cases []model.RuleTestCase) ([]model.RuleTestResult, error)
	DeleteRule(ctx context.Context, ruleID string) error
	GetRule(ctx context.Context, ruleID string) (*model.Rule, error)
	ListRules(ctx context.Context) ([]model.Rule, error)
	ListRulesEffectiveAt(ctx context.Context, at time.Time) ([]model.Rule, error)
	RenderHumanReadable(ctx context.Context, ruleID string) (string, error)
}

// RuleService handles business logic for rule operations
type RuleService struct {
	store          dao.Store
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	locker         util.Locker
	auditService   audit.Service
	eventBus       *util.EventBus
	opts           Options
}

// NewRuleService creates a new instance of RuleService
func NewRuleService(store dao.Store, validationUtil *util.ValidationUtil, cacheService *util.CacheService, locker util.Locker, auditService audit.Service, eventBus *util.EventBus, opts Options) *RuleService {
	return &RuleService{
		store:          store,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		locker:         locker,
		auditService:   auditService,
		eventBus:       eventBus,
		opts:           opts,
	}
}

// CreateRule validates a rule definition and stores it as version 1
func (s *RuleService) CreateRule(ctx context.Context, input model.RuleInput) (*model.Rule, error) {
	now := time.Now().UTC()
	rule := model.Rule{
		Name:           input.Name,
		Description:    input.Description,
		FunctionalRule: input.FunctionalRule,
		EffectiveFrom:  now,
		EffectiveTo:    input.EffectiveTo,
		IsActive:       true,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if input.EffectiveFrom != nil {
		rule.EffectiveFrom = *input.EffectiveFrom
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	verr := s.validationUtil.ValidateRule(rule.Name, rule.FunctionalRule, rule.EffectiveFrom, rule.EffectiveTo)
	if err := s.validateReferences(ctx, rule.FunctionalRule, verr); err != nil {
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		logger.Warn("Rejected invalid rule", zap.Strings("problems", verr.Problems))
		return nil, err
	}

	created, err := s.store.CreateRule(ctx, rule)
	if err != nil {
		logger.Error("Error creating rule", zap.Error(err), zap.String("ruleName", rule.Name))
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	if err := s.cacheService.SetRule(ctx, *created); err != nil {
		logger.Warn("Failed to cache rule", zap.Error(err), zap.String("ruleID", created.ID))
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionCreate, audit.EntityRule, created.ID, created).WithRule(created.ID))
	s.eventBus.Publish(ctx, util.EventRuleCreated, *created)

	logger.Info("Rule created successfully", zap.String("ruleID", created.ID), zap.String("ruleName", created.Name))
	return created, nil
}

// UpdateRule applies patch under the rule lock. Every vulnerability the rule
// produced is re-tested against the patched tree and deleted when it no longer
// triggers, then the rule is stored with its version incremented.
func (s *RuleService) UpdateRule(ctx context.Context, ruleID string, patch model.RulePatch) (*model.Rule, *model.ReconcileResult, error) {
	release, err := lockRule(ctx, s.locker, ruleID)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	existing, err := s.store.GetRule(ctx, ruleID)
	if err != nil {
		logger.Error("Error fetching rule for update", zap.Error(err), zap.String("ruleID", ruleID))
		return nil, nil, fmt.Errorf("failed to get rule: %w", err)
	}

	updated := patch.Apply(*existing)
	verr := s.validationUtil.ValidateRule(updated.Name, updated.FunctionalRule, updated.EffectiveFrom, updated.EffectiveTo)
	if patch.FunctionalRule != nil {
		if err := s.validateReferences(ctx, updated.FunctionalRule, verr); err != nil {
			return nil, nil, err
		}
	}
	if err := verr.ErrOrNil(); err != nil {
		logger.Warn("Rejected invalid rule update", zap.String("ruleID", ruleID), zap.Strings("problems", verr.Problems))
		return nil, nil, err
	}

	plan, err := s.planReconcile(ctx, ruleID, updated.FunctionalRule)
	if err != nil {
		return nil, nil, err
	}

	result := &model.ReconcileResult{
		RuleID:                 ruleID,
		VulnerabilitiesChecked: plan.checked,
		VulnerabilitiesSkipped: plan.skipped,
		Failures:               plan.failures,
	}
	for _, v := range plan.remove {
		if err := s.store.DeleteVulnerability(ctx, v.ID); err != nil {
			logger.Error("Failed to delete vulnerability during reconciliation",
				zap.Error(err),
				zap.String("ruleID", ruleID),
				zap.String("vulnerabilityID", v.ID))
			result.Failures = append(result.Failures, failure(v.ID, "delete", err))
			continue
		}
		result.VulnerabilitiesRemoved++
		recordAudit(ctx, s.auditService,
			audit.NewEntry(audit.ActionReconcile, audit.EntityVulnerability, v.ID, map[string]interface{}{
				"reason":       "rule no longer triggers",
				"rule_version": existing.Version + 1,
			}).WithRule(ruleID).WithProperty(v.PropertyID))
		s.eventBus.Publish(ctx, util.EventVulnerabilityRemoved, v)
	}

	updated.Version = existing.Version + 1
	updated.UpdatedAt = time.Now().UTC()
	stored, err := s.store.UpdateRule(ctx, updated)
	if err != nil {
		logger.Error("Error updating rule", zap.Error(err), zap.String("ruleID", ruleID))
		return nil, result, fmt.Errorf("failed to update rule: %w", err)
	}

	if err := s.cacheService.SetRule(ctx, *stored); err != nil {
		logger.Warn("Failed to update rule in cache", zap.Error(err), zap.String("ruleID", ruleID))
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionUpdate, audit.EntityRule, ruleID, map[string]interface{}{
		"old":     existing,
		"new":     stored,
		"removed": result.VulnerabilitiesRemoved,
	}).WithRule(ruleID))
	s.eventBus.Publish(ctx, util.EventRuleUpdated, *stored)

	logger.Info("Rule updated successfully",
		zap.String("ruleID", ruleID),
		zap.Int("version", stored.Version),
		zap.Int("checked", result.VulnerabilitiesChecked),
		zap.Int("skipped", result.VulnerabilitiesSkipped),
		zap.Int("removed", result.VulnerabilitiesRemoved),
		zap.Int("failures", len(result.Failures)))
	return stored, result, nil
}

// PreviewRuleUpdate reports which vulnerabilities an update to tree would
// remove without changing anything.
func (s *RuleService) PreviewRuleUpdate(ctx context.Context, ruleID string, tree model.ConditionGroup) (*model.RulePreview, error) {
	if _, err := s.store.GetRule(ctx, ruleID); err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	verr := s.validationUtil.ValidateTree(tree)
	if err := s.validateReferences(ctx, tree, verr); err != nil {
		return nil, err
	}
	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}

	plan, err := s.planReconcile(ctx, ruleID, tree)
	if err != nil {
		return nil, err
	}

	preview := &model.RulePreview{
		RuleID:                 ruleID,
		VulnerabilitiesChecked: plan.checked,
		VulnerabilitiesSkipped: plan.skipped,
		WouldRemove:            make([]string, 0, len(plan.remove)),
		WouldKeep:              make([]string, 0, len(plan.keep)),
	}
	for _, v := range plan.remove {
		preview.WouldRemove = append(preview.WouldRemove, v.ID)
	}
	for _, v := range plan.keep {
		preview.WouldKeep = append(preview.WouldKeep, v.ID)
	}
	return preview, nil
}

type reconcilePlan struct {
	checked  int
	skipped  int
	keep     []model.Vulnerability
	remove   []model.Vulnerability
	failures []model.ItemFailure
}

// planReconcile evaluates tree against the observations behind every
// vulnerability of the rule. Vulnerabilities without observations are skipped.
func (s *RuleService) planReconcile(ctx context.Context, ruleID string, tree model.ConditionGroup) (*reconcilePlan, error) {
	vulnerabilities, err := s.store.ListVulnerabilities(ctx, model.VulnerabilityFilter{RuleID: ruleID})
	if err != nil {
		logger.Error("Error listing vulnerabilities for rule", zap.Error(err), zap.String("ruleID", ruleID))
		return nil, fmt.Errorf("failed to list vulnerabilities for rule: %w", err)
	}

	plan := &reconcilePlan{checked: len(vulnerabilities)}
	for _, v := range vulnerabilities {
		observations, err := observationsFor(ctx, s.store, v)
		if err != nil {
			plan.failures = append(plan.failures, failure(v.ID, "get_observations", err))
			continue
		}
		if len(observations) == 0 {
			plan.skipped++
			continue
		}
		if engine.Evaluate(tree, observations) {
			plan.keep = append(plan.keep, v)
		} else {
			plan.remove = append(plan.remove, v)
		}
	}
	return plan, nil
}

// TestRule evaluates tree against each case without touching the store.
func (s *RuleService) TestRule(tree model.ConditionGroup, cases []model.RuleTestCase) ([]model.RuleTestResult, error) {
	if err := s.validationUtil.ValidateTree(tree).ErrOrNil(); err != nil {
		return nil, err
	}

	results := make([]model.RuleTestResult, 0, len(cases))
	for _, testCase := range cases {
		results = append(results, model.RuleTestResult{
			Case:      testCase,
			Triggered: engine.Evaluate(tree, testCase.Observations),
		})
	}
	return results, nil
}

// DeleteRule removes a rule. Its vulnerabilities stay unless the block policy
// is configured, in which case unresolved vulnerabilities prevent deletion.
func (s *RuleService) DeleteRule(ctx context.Context, ruleID string) error {
	release, err := lockRule(ctx, s.locker, ruleID)
	if err != nil {
		return err
	}
	defer release()

	existing, err := s.store.GetRule(ctx, ruleID)
	if err != nil {
		return fmt.Errorf("failed to get rule: %w", err)
	}

	if s.opts.RuleDeletePolicy == DeletePolicyBlock {
		vulnerabilities, err := s.store.ListVulnerabilities(ctx, model.VulnerabilityFilter{RuleID: ruleID})
		if err != nil {
			return fmt.Errorf("failed to list vulnerabilities for rule: %w", err)
		}
		for _, v := range vulnerabilities {
			if v.Status != model.StatusResolved {
				logger.Warn("Rule deletion blocked by unresolved vulnerability",
					zap.String("ruleID", ruleID),
					zap.String("vulnerabilityID", v.ID))
				return fmt.Errorf("cannot delete rule %s: %w", ruleID, hazard_errors.ErrRuleInUse)
			}
		}
	}

	if err := s.store.DeleteRule(ctx, ruleID); err != nil {
		logger.Error("Error deleting rule", zap.Error(err), zap.String("ruleID", ruleID))
		return fmt.Errorf("failed to delete rule: %w", err)
	}

	if err := s.cacheService.DeleteRule(ctx, ruleID); err != nil {
		logger.Warn("Failed to delete rule from cache", zap.Error(err), zap.String("ruleID", ruleID))
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionDelete, audit.EntityRule, ruleID, existing).WithRule(ruleID))
	s.eventBus.Publish(ctx, util.EventRuleDeleted, *existing)

	logger.Info("Rule deleted successfully", zap.String("ruleID", ruleID))
	return nil
}

// GetRule reads through the rule cache
func (s *RuleService) GetRule(ctx context.Context, ruleID string) (*model.Rule, error) {
	cached, err := s.cacheService.GetRule(ctx, ruleID)
	if err != nil {
		logger.Warn("Failed to read rule from cache", zap.Error(err), zap.String("ruleID", ruleID))
	} else if cached != nil {
		return cached, nil
	}

	rule, err := s.store.GetRule(ctx, ruleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	if err := s.cacheService.SetRule(ctx, *rule); err != nil {
		logger.Warn("Failed to cache rule", zap.Error(err), zap.String("ruleID", ruleID))
	}
	return rule, nil
}

func (s *RuleService) ListRules(ctx context.Context) ([]model.Rule, error) {
	rules, err := s.store.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

func (s *RuleService) ListRulesEffectiveAt(ctx context.Context, at time.Time) ([]model.Rule, error) {
	rules, err := s.store.ListRulesEffectiveAt(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules effective at %s: %w", at.Format(time.RFC3339), err)
	}
	return rules, nil
}

// RenderHumanReadable renders a stored rule using catalog names for its
// observation types and values.
func (s *RuleService) RenderHumanReadable(ctx context.Context, ruleID string) (string, error) {
	rule, err := s.GetRule(ctx, ruleID)
	if err != nil {
		return "", err
	}

	labels, err := s.labelsFor(ctx, rule.FunctionalRule)
	if err != nil {
		return "", err
	}
	return engine.Render(*rule, labels), nil
}

func (s *RuleService) labelsFor(ctx context.Context, tree model.ConditionGroup) (engine.Labels, error) {
	typeIDs, valueIDs := referencedIDs(tree)
	labels := engine.Labels{
		TypeNames:  make(map[string]string, len(typeIDs)),
		ValueNames: make(map[string]string, len(valueIDs)),
	}

	if len(typeIDs) > 0 {
		types, err := s.store.GetObservationTypes(ctx, typeIDs)
		if err != nil {
			return labels, fmt.Errorf("failed to get observation types: %w", err)
		}
		for _, t := range types {
			labels.TypeNames[t.ID] = t.Name
		}
	}
	if len(valueIDs) > 0 {
		values, err := s.store.GetObservationValues(ctx, valueIDs)
		if err != nil {
			return labels, fmt.Errorf("failed to get observation values: %w", err)
		}
		for _, v := range values {
			labels.ValueNames[v.ID] = v.Value
		}
	}
	return labels, nil
}

// validateReferences appends a problem to verr for every catalog id in tree
// that does not exist or belongs to another observation type. The returned
// error is set only when the catalog could not be read.
func (s *RuleService) validateReferences(ctx context.Context, tree model.ConditionGroup, verr *hazard_errors.ValidationError) error {
	typeIDs, valueIDs := referencedIDs(tree)

	knownTypes := make(map[string]bool, len(typeIDs))
	if len(typeIDs) > 0 {
		types, err := s.store.GetObservationTypes(ctx, typeIDs)
		if err != nil {
			logger.Error("Error reading observation types", zap.Error(err))
			return fmt.Errorf("failed to validate rule references: %w", err)
		}
		for _, t := range types {
			knownTypes[t.ID] = true
		}
	}

	knownValues := make(map[string]model.ObservationValue, len(valueIDs))
	if len(valueIDs) > 0 {
		values, err := s.store.GetObservationValues(ctx, valueIDs)
		if err != nil {
			logger.Error("Error reading observation values", zap.Error(err))
			return fmt.Errorf("failed to validate rule references: %w", err)
		}
		for _, v := range values {
			knownValues[v.ID] = v
		}
	}

	reported := make(map[string]bool)
	report := func(format string, args ...interface{}) {
		msg := fmt.Sprintf(format, args...)
		if !reported[msg] {
			reported[msg] = true
			verr.Add("%s", msg)
		}
	}

	for _, leaf := range engine.CollectLeaves(tree) {
		if leaf.ObservationTypeID != "" && !knownTypes[leaf.ObservationTypeID] {
			report("observation type %q does not exist", leaf.ObservationTypeID)
		}
		for _, valueID := range leaf.ObservationValueIDs {
			if valueID == "" {
				continue
			}
			value, ok := knownValues[valueID]
			if !ok {
				report("observation value %q does not exist", valueID)
				continue
			}
			if value.ObservationTypeID != leaf.ObservationTypeID {
				report("observation value %q does not belong to observation type %q", valueID, leaf.ObservationTypeID)
			}
		}
	}
	return nil
}

// referencedIDs returns the distinct observation type and value ids used by tree
func referencedIDs(tree model.ConditionGroup) (typeIDs, valueIDs []string) {
	seenTypes := make(map[string]bool)
	seenValues := make(map[string]bool)
	for _, leaf := range engine.CollectLeaves(tree) {
		if leaf.ObservationTypeID != "" && !seenTypes[leaf.ObservationTypeID] {
			seenTypes[leaf.ObservationTypeID] = true
			typeIDs = append(typeIDs, leaf.ObservationTypeID)
		}
		for _, id := range leaf.ObservationValueIDs {
			if id != "" && !seenValues[id] {
				seenValues[id] = true
				valueIDs = append(valueIDs, id)
			}
		}
	}
	return typeIDs, valueIDs
}

// api/dao/memory_store.go
package dao

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// MemoryStore is a process-local Store. Every value crossing its boundary is
// copied so callers never share state with the store.
type MemoryStore struct {
	mu sync.RWMutex

	rules             map[string]model.Rule
	vulnerabilities   map[string]model.Vulnerability
	assessments       map[string]model.Assessment
	observationTypes  map[string]model.ObservationType
	observationValues map[string]model.ObservationValue
	mitigationTypes   map[string]model.MitigationType
	mitigationValues  map[string]model.MitigationValue
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rules:             make(map[string]model.Rule),
		vulnerabilities:   make(map[string]model.Vulnerability),
		assessments:       make(map[string]model.Assessment),
		observationTypes:  make(map[string]model.ObservationType),
		observationValues: make(map[string]model.ObservationValue),
		mitigationTypes:   make(map[string]model.MitigationType),
		mitigationValues:  make(map[string]model.MitigationValue),
	}
}

// cloneJSON deep copies values holding interface{} fields.
func cloneJSON[T any](in T) T {
	var out T
	data, err := json.Marshal(in)
	if err != nil {
		logger.Error("Failed to clone value", zap.Error(err))
		return in
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Error("Failed to clone value", zap.Error(err))
		return in
	}
	return out
}

func cloneRule(rule model.Rule) model.Rule {
	clone := rule
	clone.FunctionalRule = cloneJSON(rule.FunctionalRule)
	if rule.EffectiveTo != nil {
		to := *rule.EffectiveTo
		clone.EffectiveTo = &to
	}
	return clone
}

func sortByCreated[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return id(items[i]) < id(items[j])
	})
}

func (s *MemoryStore) CreateRule(_ context.Context, rule model.Rule) (*model.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if _, exists := s.rules[rule.ID]; exists {
		return nil, hazard_errors.ErrRuleConflict
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now()
	}
	if rule.UpdatedAt.IsZero() {
		rule.UpdatedAt = rule.CreatedAt
	}
	s.rules[rule.ID] = cloneRule(rule)
	out := cloneRule(rule)
	return &out, nil
}

func (s *MemoryStore) GetRule(_ context.Context, ruleID string) (*model.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, ok := s.rules[ruleID]
	if !ok {
		return nil, hazard_errors.ErrRuleNotFound
	}
	out := cloneRule(rule)
	return &out, nil
}

func (s *MemoryStore) ListRules(_ context.Context) ([]model.Rule, error) {
	return s.filterRules(func(model.Rule) bool { return true }), nil
}

func (s *MemoryStore) ListActiveRules(_ context.Context) ([]model.Rule, error) {
	return s.filterRules(func(r model.Rule) bool { return r.IsActive }), nil
}

func (s *MemoryStore) ListRulesEffectiveAt(_ context.Context, at time.Time) ([]model.Rule, error) {
	return s.filterRules(func(r model.Rule) bool { return r.IsActive && r.EffectiveAt(at) }), nil
}

func (s *MemoryStore) filterRules(keep func(model.Rule) bool) []model.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rules := make([]model.Rule, 0, len(s.rules))
	for _, rule := range s.rules {
		if keep(rule) {
			rules = append(rules, cloneRule(rule))
		}
	}
	sortByCreated(rules,
		func(r model.Rule) time.Time { return r.CreatedAt },
		func(r model.Rule) string { return r.ID })
	return rules
}

func (s *MemoryStore) UpdateRule(_ context.Context, rule model.Rule) (*model.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rules[rule.ID]; !ok {
		return nil, hazard_errors.ErrRuleNotFound
	}
	s.rules[rule.ID] = cloneRule(rule)
	out := cloneRule(rule)
	return &out, nil
}

func (s *MemoryStore) DeleteRule(_ context.Context, ruleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rules[ruleID]; !ok {
		return hazard_errors.ErrRuleNotFound
	}
	delete(s.rules, ruleID)
	return nil
}

func (s *MemoryStore) CreateVulnerability(_ context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if vulnerability.ID == "" {
		vulnerability.ID = uuid.New().String()
	}
	if vulnerability.CreatedAt.IsZero() {
		vulnerability.CreatedAt = time.Now()
	}
	if vulnerability.UpdatedAt.IsZero() {
		vulnerability.UpdatedAt = vulnerability.CreatedAt
	}
	s.vulnerabilities[vulnerability.ID] = vulnerability
	return &vulnerability, nil
}

func (s *MemoryStore) GetVulnerability(_ context.Context, vulnerabilityID string) (*model.Vulnerability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vulnerability, ok := s.vulnerabilities[vulnerabilityID]
	if !ok {
		return nil, hazard_errors.ErrVulnerabilityNotFound
	}
	return &vulnerability, nil
}

func (s *MemoryStore) ListVulnerabilities(_ context.Context, filter model.VulnerabilityFilter) ([]model.Vulnerability, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vulnerabilities := make([]model.Vulnerability, 0)
	for _, vulnerability := range s.vulnerabilities {
		if filter.Matches(vulnerability) {
			vulnerabilities = append(vulnerabilities, vulnerability)
		}
	}
	sortByCreated(vulnerabilities,
		func(v model.Vulnerability) time.Time { return v.DetectedAt },
		func(v model.Vulnerability) string { return v.ID })
	return vulnerabilities, nil
}

func (s *MemoryStore) UpdateVulnerability(_ context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vulnerabilities[vulnerability.ID]; !ok {
		return nil, hazard_errors.ErrVulnerabilityNotFound
	}
	s.vulnerabilities[vulnerability.ID] = vulnerability
	return &vulnerability, nil
}

func (s *MemoryStore) DeleteVulnerability(_ context.Context, vulnerabilityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vulnerabilities[vulnerabilityID]; !ok {
		return hazard_errors.ErrVulnerabilityNotFound
	}
	delete(s.vulnerabilities, vulnerabilityID)
	return nil
}

func (s *MemoryStore) CreateAssessment(_ context.Context, assessment model.Assessment) (*model.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if assessment.ID == "" {
		assessment.ID = uuid.New().String()
	}
	if _, exists := s.assessments[assessment.ID]; exists {
		verr := hazard_errors.NewValidationError(hazard_errors.ErrInvalidAssessmentData)
		verr.Add("assessment %s already exists", assessment.ID)
		return nil, verr
	}
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}
	s.assessments[assessment.ID] = cloneJSON(assessment)
	out := cloneJSON(assessment)
	return &out, nil
}

func (s *MemoryStore) GetAssessment(_ context.Context, assessmentID string) (*model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assessment, ok := s.assessments[assessmentID]
	if !ok {
		return nil, hazard_errors.ErrAssessmentNotFound
	}
	out := cloneJSON(assessment)
	return &out, nil
}

func (s *MemoryStore) ListAssessments(_ context.Context, propertyID string) ([]model.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assessments := make([]model.Assessment, 0)
	for _, assessment := range s.assessments {
		if propertyID == "" || assessment.PropertyID == propertyID {
			assessments = append(assessments, cloneJSON(assessment))
		}
	}
	sortByCreated(assessments,
		func(a model.Assessment) time.Time { return a.AssessedAt },
		func(a model.Assessment) string { return a.ID })
	return assessments, nil
}

func (s *MemoryStore) CreateObservationType(_ context.Context, observationType model.ObservationType) (*model.ObservationType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if observationType.ID == "" {
		observationType.ID = uuid.New().String()
	}
	if observationType.CreatedAt.IsZero() {
		observationType.CreatedAt = time.Now()
	}
	s.observationTypes[observationType.ID] = observationType
	return &observationType, nil
}

func (s *MemoryStore) GetObservationType(_ context.Context, typeID string) (*model.ObservationType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	observationType, ok := s.observationTypes[typeID]
	if !ok {
		return nil, hazard_errors.ErrObservationTypeNotFound
	}
	return &observationType, nil
}

func (s *MemoryStore) GetObservationTypes(_ context.Context, typeIDs []string) ([]model.ObservationType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]model.ObservationType, 0, len(typeIDs))
	for _, id := range uniqueSorted(typeIDs) {
		if observationType, ok := s.observationTypes[id]; ok {
			types = append(types, observationType)
		}
	}
	return types, nil
}

func (s *MemoryStore) ListObservationTypes(_ context.Context) ([]model.ObservationType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]model.ObservationType, 0, len(s.observationTypes))
	for _, observationType := range s.observationTypes {
		types = append(types, observationType)
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Name != types[j].Name {
			return types[i].Name < types[j].Name
		}
		return types[i].ID < types[j].ID
	})
	return types, nil
}

func (s *MemoryStore) DeleteObservationType(_ context.Context, typeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.observationTypes[typeID]; !ok {
		return hazard_errors.ErrObservationTypeNotFound
	}
	delete(s.observationTypes, typeID)
	for id, value := range s.observationValues {
		if value.ObservationTypeID == typeID {
			delete(s.observationValues, id)
		}
	}
	return nil
}

func (s *MemoryStore) CreateObservationValue(_ context.Context, value model.ObservationValue) (*model.ObservationValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.observationTypes[value.ObservationTypeID]; !ok {
		return nil, hazard_errors.ErrObservationTypeNotFound
	}
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = time.Now()
	}
	s.observationValues[value.ID] = value
	return &value, nil
}

func (s *MemoryStore) GetObservationValues(_ context.Context, valueIDs []string) ([]model.ObservationValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]model.ObservationValue, 0, len(valueIDs))
	for _, id := range uniqueSorted(valueIDs) {
		if value, ok := s.observationValues[id]; ok {
			values = append(values, value)
		}
	}
	return values, nil
}

func (s *MemoryStore) ListObservationValues(_ context.Context, typeID string) ([]model.ObservationValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]model.ObservationValue, 0)
	for _, value := range s.observationValues {
		if typeID == "" || value.ObservationTypeID == typeID {
			values = append(values, value)
		}
	}
	sortByCreated(values,
		func(v model.ObservationValue) time.Time { return v.CreatedAt },
		func(v model.ObservationValue) string { return v.ID })
	return values, nil
}

func (s *MemoryStore) DeleteObservationValue(_ context.Context, valueID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.observationValues[valueID]; !ok {
		return hazard_errors.ErrObservationValueNotFound
	}
	delete(s.observationValues, valueID)
	return nil
}

func (s *MemoryStore) CreateMitigationType(_ context.Context, mitigationType model.MitigationType) (*model.MitigationType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mitigationType.ID == "" {
		mitigationType.ID = uuid.New().String()
	}
	if mitigationType.CreatedAt.IsZero() {
		mitigationType.CreatedAt = time.Now()
	}
	s.mitigationTypes[mitigationType.ID] = mitigationType
	return &mitigationType, nil
}

func (s *MemoryStore) GetMitigationType(_ context.Context, typeID string) (*model.MitigationType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mitigationType, ok := s.mitigationTypes[typeID]
	if !ok {
		return nil, hazard_errors.ErrMitigationTypeNotFound
	}
	return &mitigationType, nil
}

func (s *MemoryStore) ListMitigationTypes(_ context.Context) ([]model.MitigationType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]model.MitigationType, 0, len(s.mitigationTypes))
	for _, mitigationType := range s.mitigationTypes {
		types = append(types, mitigationType)
	}
	sort.Slice(types, func(i, j int) bool {
		if types[i].Name != types[j].Name {
			return types[i].Name < types[j].Name
		}
		return types[i].ID < types[j].ID
	})
	return types, nil
}

func (s *MemoryStore) DeleteMitigationType(_ context.Context, typeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mitigationTypes[typeID]; !ok {
		return hazard_errors.ErrMitigationTypeNotFound
	}
	delete(s.mitigationTypes, typeID)
	for id, value := range s.mitigationValues {
		if value.MitigationTypeID == typeID {
			delete(s.mitigationValues, id)
		}
	}
	return nil
}

func (s *MemoryStore) CreateMitigationValue(_ context.Context, value model.MitigationValue) (*model.MitigationValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mitigationTypes[value.MitigationTypeID]; !ok {
		return nil, hazard_errors.ErrMitigationTypeNotFound
	}
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	if value.CreatedAt.IsZero() {
		value.CreatedAt = time.Now()
	}
	s.mitigationValues[value.ID] = value
	return &value, nil
}

func (s *MemoryStore) GetMitigationValue(_ context.Context, valueID string) (*model.MitigationValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.mitigationValues[valueID]
	if !ok {
		return nil, hazard_errors.ErrMitigationValueNotFound
	}
	return &value, nil
}

func (s *MemoryStore) ListMitigationValues(_ context.Context, typeID string) ([]model.MitigationValue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	values := make([]model.MitigationValue, 0)
	for _, value := range s.mitigationValues {
		if typeID == "" || value.MitigationTypeID == typeID {
			values = append(values, value)
		}
	}
	sortByCreated(values,
		func(v model.MitigationValue) time.Time { return v.CreatedAt },
		func(v model.MitigationValue) string { return v.ID })
	return values, nil
}

func (s *MemoryStore) DeleteMitigationValue(_ context.Context, valueID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.mitigationValues[valueID]; !ok {
		return hazard_errors.ErrMitigationValueNotFound
	}
	delete(s.mitigationValues, valueID)
	return nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*Neo4jStore)(nil)
)

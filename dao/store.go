// api/dao/store.go
package dao

import (
	"context"
	"time"

	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// RuleStore persists rules. Lookups of a missing id return errors.ErrRuleNotFound.
type RuleStore interface {
	CreateRule(ctx context.Context, rule model.Rule) (*model.Rule, error)
	GetRule(ctx context.Context, ruleID string) (*model.Rule, error)
	ListRules(ctx context.Context) ([]model.Rule, error)
	ListActiveRules(ctx context.Context) ([]model.Rule, error)
	// ListRulesEffectiveAt returns active rules whose window contains at.
	ListRulesEffectiveAt(ctx context.Context, at time.Time) ([]model.Rule, error)
	UpdateRule(ctx context.Context, rule model.Rule) (*model.Rule, error)
	DeleteRule(ctx context.Context, ruleID string) error
}

type VulnerabilityStore interface {
	CreateVulnerability(ctx context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error)
	GetVulnerability(ctx context.Context, vulnerabilityID string) (*model.Vulnerability, error)
	ListVulnerabilities(ctx context.Context, filter model.VulnerabilityFilter) ([]model.Vulnerability, error)
	UpdateVulnerability(ctx context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error)
	DeleteVulnerability(ctx context.Context, vulnerabilityID string) error
}

// CatalogStore persists observation and mitigation catalogs. Deleting a type
// also deletes its values.
type CatalogStore interface {
	CreateObservationType(ctx context.Context, observationType model.ObservationType) (*model.ObservationType, error)
	GetObservationType(ctx context.Context, typeID string) (*model.ObservationType, error)
	GetObservationTypes(ctx context.Context, typeIDs []string) ([]model.ObservationType, error)
	ListObservationTypes(ctx context.Context) ([]model.ObservationType, error)
	DeleteObservationType(ctx context.Context, typeID string) error

	CreateObservationValue(ctx context.Context, value model.ObservationValue) (*model.ObservationValue, error)
	GetObservationValues(ctx context.Context, valueIDs []string) ([]model.ObservationValue, error)
	ListObservationValues(ctx context.Context, typeID string) ([]model.ObservationValue, error)
	DeleteObservationValue(ctx context.Context, valueID string) error

	CreateMitigationType(ctx context.Context, mitigationType model.MitigationType) (*model.MitigationType, error)
	GetMitigationType(ctx context.Context, typeID string) (*model.MitigationType, error)
	ListMitigationTypes(ctx context.Context) ([]model.MitigationType, error)
	DeleteMitigationType(ctx context.Context, typeID string) error

	CreateMitigationValue(ctx context.Context, value model.MitigationValue) (*model.MitigationValue, error)
	GetMitigationValue(ctx context.Context, valueID string) (*model.MitigationValue, error)
	ListMitigationValues(ctx context.Context, typeID string) ([]model.MitigationValue, error)
	DeleteMitigationValue(ctx context.Context, valueID string) error
}

type AssessmentStore interface {
	CreateAssessment(ctx context.Context, assessment model.Assessment) (*model.Assessment, error)
	GetAssessment(ctx context.Context, assessmentID string) (*model.Assessment, error)
	ListAssessments(ctx context.Context, propertyID string) ([]model.Assessment, error)
}

// Store is the full persistence gateway used by the services.
type Store interface {
	RuleStore
	VulnerabilityStore
	CatalogStore
	AssessmentStore
}

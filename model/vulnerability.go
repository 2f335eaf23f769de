// api/model/vulnerability.go
package model

import "time"

type VulnerabilityStatus string

const (
	StatusOpen     VulnerabilityStatus = "open"
	StatusInReview VulnerabilityStatus = "in_review"
	StatusResolved VulnerabilityStatus = "resolved"
)

var statusRank = map[VulnerabilityStatus]int{
	StatusOpen:     0,
	StatusInReview: 1,
	StatusResolved: 2,
}

func (s VulnerabilityStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether next is the same status or further along
// open -> in_review -> resolved.
func (s VulnerabilityStatus) CanTransitionTo(next VulnerabilityStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

type Vulnerability struct {
	ID                    string              `json:"id"`
	RuleID                string              `json:"rule_id"`
	AssessmentID          string              `json:"assessment_id"`
	PropertyID            string              `json:"property_id"`
	Status                VulnerabilityStatus `json:"status"`
	DetectedAt            time.Time           `json:"detected_at"`
	MitigationTypeID      string              `json:"mitigation_type_id,omitempty"`
	MitigationValueID     string              `json:"mitigation_value_id,omitempty"`
	MitigationDescription string              `json:"mitigation_description,omitempty"`
	Notes                 string              `json:"notes,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// VulnerabilityFilter narrows a vulnerability listing. Empty fields match everything.
type VulnerabilityFilter struct {
	RuleID         string
	AssessmentID   string
	PropertyID     string
	Status         VulnerabilityStatus
	DetectedBefore *time.Time
}

// Matches reports whether v passes every set field of the filter.
// DetectedBefore is inclusive.
func (f VulnerabilityFilter) Matches(v Vulnerability) bool {
	if f.RuleID != "" && v.RuleID != f.RuleID {
		return false
	}
	if f.AssessmentID != "" && v.AssessmentID != f.AssessmentID {
		return false
	}
	if f.PropertyID != "" && v.PropertyID != f.PropertyID {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.DetectedBefore != nil && v.DetectedAt.After(*f.DetectedBefore) {
		return false
	}
	return true
}

// VulnerabilityState is a historical snapshot of a property's vulnerabilities.
type VulnerabilityState struct {
	PropertyID      string          `json:"property_id"`
	Timestamp       time.Time       `json:"timestamp"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}

type StatusUpdate struct {
	Status VulnerabilityStatus `json:"status"`
	Notes  *string             `json:"notes,omitempty"`
}

type MitigationRequest struct {
	MitigationValueID string `json:"mitigation_value_id"`
	Description       string `json:"description"`
}

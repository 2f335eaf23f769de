// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	ActionCreate          = "CREATE"
	ActionUpdate          = "UPDATE"
	ActionDelete          = "DELETE"
	ActionReconcile       = "RECONCILE"
	ActionApplyMitigation = "APPLY_MITIGATION"
	ActionUpdateStatus    = "UPDATE_STATUS"
	ActionProcess         = "PROCESS_ASSESSMENT"
)

const (
	EntityRule          = "rule"
	EntityVulnerability = "vulnerability"
	EntityAssessment    = "assessment"
	EntityCatalog       = "catalog"
)

type AuditLog struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	Action        string          `json:"action"`
	EntityType    string          `json:"entity_type"`
	EntityID      string          `json:"entity_id"`
	RuleID        string          `json:"rule_id,omitempty"`
	PropertyID    string          `json:"property_id,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Query selects audit entries in [From, To]. Empty fields match everything.
type Query struct {
	From       time.Time
	To         time.Time
	EntityType string
	EntityID   string
	RuleID     string
	PropertyID string
}

// NewEntry builds an audit entry stamped with a fresh id and the current time.
// details is stored as JSON; a value that cannot be marshalled is dropped.
func NewEntry(action, entityType, entityID string, details interface{}) AuditLog {
	entry := AuditLog{
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}
	if details != nil {
		if data, err := json.Marshal(details); err == nil {
			entry.ChangeDetails = data
		}
	}
	return entry
}

func (l AuditLog) WithRule(ruleID string) AuditLog {
	l.RuleID = ruleID
	return l
}

func (l AuditLog) WithProperty(propertyID string) AuditLog {
	l.PropertyID = propertyID
	return l
}

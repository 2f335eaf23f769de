// api/model/mitigation.go
package model

import "time"

type MitigationCategory string

const (
	CategoryFull   MitigationCategory = "FULL"
	CategoryBridge MitigationCategory = "BRIDGE"
)

type MitigationType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ValueType   ValueType `json:"value_type"`
	Multiple    bool      `json:"multiple"`
	CreatedAt   time.Time `json:"created_at"`
}

type MitigationValue struct {
	ID               string             `json:"id"`
	MitigationTypeID string             `json:"mitigation_type_id"`
	Value            string             `json:"value,omitempty"`
	Description      string             `json:"description"`
	Category         MitigationCategory `json:"category"`
	CreatedAt        time.Time          `json:"created_at"`
}

// MitigationOption bundles a mitigation type with every value scoped to it.
type MitigationOption struct {
	ID     string            `json:"id"`
	Type   MitigationType    `json:"type"`
	Values []MitigationValue `json:"values"`
}

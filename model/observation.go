// api/model/observation.go
package model

import "time"

// Observation is a single recorded fact about a property. ObservationValueID
// is set for catalog-backed facts and Value for raw measurements.
type Observation struct {
	ObservationTypeID  string      `json:"observation_type_id"`
	ObservationValueID string      `json:"observation_value_id,omitempty"`
	Value              interface{} `json:"value,omitempty"`
}

type ObservationType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ValueType   ValueType `json:"value_type"`
	Multiple    bool      `json:"multiple"`
	CreatedAt   time.Time `json:"created_at"`
}

type ObservationValue struct {
	ID                string    `json:"id"`
	ObservationTypeID string    `json:"observation_type_id"`
	Value             string    `json:"value"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Assessment is a point-in-time inspection of a property. Its observations are
// immutable once stored.
type Assessment struct {
	ID           string        `json:"id"`
	PropertyID   string        `json:"property_id"`
	AssessedAt   time.Time     `json:"assessed_at"`
	Observations []Observation `json:"observations"`
	CreatedAt    time.Time     `json:"created_at"`
}

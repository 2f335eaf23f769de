// api/util/catalog_seed.go

package util

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dev-mohitbeniwal/hazard/api/model"
)

// CatalogSeed is the YAML layout of a catalog file:
//
//	observation_types:
//	  - id: roof_type
//	    name: Roof Type
//	    value_type: ENUM
//	    values:
//	      - {id: wood, value: Wood}
//	mitigation_types:
//	  - id: roof_treatment
//	    name: Roof Treatment
//	    values:
//	      - {id: class_a, description: Class A coating, category: FULL}
type CatalogSeed struct {
	ObservationTypes []SeedObservationType `yaml:"observation_types"`
	MitigationTypes  []SeedMitigationType  `yaml:"mitigation_types"`
}

type SeedObservationType struct {
	ID          string                 `yaml:"id"`
	Name        string                 `yaml:"name"`
	Description string                 `yaml:"description"`
	ValueType   string                 `yaml:"value_type"`
	Multiple    bool                   `yaml:"multiple"`
	Values      []SeedObservationValue `yaml:"values"`
}

type SeedObservationValue struct {
	ID          string `yaml:"id"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
}

type SeedMitigationType struct {
	ID          string                `yaml:"id"`
	Name        string                `yaml:"name"`
	Description string                `yaml:"description"`
	ValueType   string                `yaml:"value_type"`
	Multiple    bool                  `yaml:"multiple"`
	Values      []SeedMitigationValue `yaml:"values"`
}

type SeedMitigationValue struct {
	ID          string `yaml:"id"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// LoadCatalogSeed reads and checks a catalog file. Every entry needs an id
// and ids must be unique within their kind.
func LoadCatalogSeed(path string) (*CatalogSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed file: %w", err)
	}
	return ParseCatalogSeed(data)
}

func ParseCatalogSeed(data []byte) (*CatalogSeed, error) {
	var seed CatalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("catalog seed validation failed: %w", err)
	}
	return &seed, nil
}

func (s *CatalogSeed) Validate() error {
	seen := make(map[string]bool)
	check := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s is missing required field 'id'", kind)
		}
		key := kind + "/" + id
		if seen[key] {
			return fmt.Errorf("duplicate %s id: %s", kind, id)
		}
		seen[key] = true
		return nil
	}

	for _, t := range s.ObservationTypes {
		if err := check("observation type", t.ID); err != nil {
			return err
		}
		for _, v := range t.Values {
			if err := check("observation value", v.ID); err != nil {
				return err
			}
		}
	}
	for _, t := range s.MitigationTypes {
		if err := check("mitigation type", t.ID); err != nil {
			return err
		}
		for _, v := range t.Values {
			if err := check("mitigation value", v.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t SeedObservationType) Model() model.ObservationType {
	return model.ObservationType{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ValueType:   model.ValueType(t.ValueType),
		Multiple:    t.Multiple,
	}
}

func (v SeedObservationValue) Model(typeID string) model.ObservationValue {
	return model.ObservationValue{
		ID:                v.ID,
		ObservationTypeID: typeID,
		Value:             v.Value,
		Description:       v.Description,
	}
}

func (t SeedMitigationType) Model() model.MitigationType {
	return model.MitigationType{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		ValueType:   model.ValueType(t.ValueType),
		Multiple:    t.Multiple,
	}
}

func (v SeedMitigationValue) Model(typeID string) model.MitigationValue {
	return model.MitigationValue{
		ID:               v.ID,
		MitigationTypeID: typeID,
		Value:            v.Value,
		Description:      v.Description,
		Category:         model.MitigationCategory(v.Category),
	}
}

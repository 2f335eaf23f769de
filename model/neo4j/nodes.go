// api/model/neo4j/nodes.go
package hazard_neo4j

// Node Labels
const (
	// LabelRule represents a detection rule and its condition tree
	LabelRule = "RULE"

	// LabelVulnerability represents a rule trigger against one assessment
	LabelVulnerability = "VULNERABILITY"

	// LabelAssessment represents an inspection of a property
	LabelAssessment = "ASSESSMENT"

	// LabelProperty represents an assessed property
	LabelProperty = "PROPERTY"

	// LabelObservationType represents a catalog observation type
	LabelObservationType = "OBSERVATION_TYPE"

	// LabelObservationValue represents an enumerated value of an observation type
	LabelObservationValue = "OBSERVATION_VALUE"

	// LabelMitigationType represents a catalog mitigation type
	LabelMitigationType = "MITIGATION_TYPE"

	// LabelMitigationValue represents a concrete mitigation choice
	LabelMitigationValue = "MITIGATION_VALUE"
)

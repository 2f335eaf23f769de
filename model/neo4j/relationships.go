// api/model/neo4j/relationships.go
package hazard_neo4j

// Relationship Types
const (
	// RelValueOf links an observation or mitigation value to its type
	RelValueOf = "VALUE_OF"

	// RelAssessed links an assessment to the property it inspected
	RelAssessed = "ASSESSED"

	// RelTriggeredBy links a vulnerability to the rule that produced it
	RelTriggeredBy = "TRIGGERED_BY"

	// RelFoundIn links a vulnerability to the assessment it was detected in
	RelFoundIn = "FOUND_IN"
)

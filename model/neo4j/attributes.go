// api/model/neo4j/attributes.go
package hazard_neo4j

// Attribute Keys
const (
	AttrID                = "id"
	AttrName              = "name"
	AttrRuleID            = "ruleId"
	AttrAssessmentID      = "assessmentId"
	AttrPropertyID        = "propertyId"
	AttrStatus            = "status"
	AttrDetectedAt        = "detectedAt"
	AttrEffectiveFrom     = "effectiveFrom"
	AttrEffectiveTo       = "effectiveTo"
	AttrIsActive          = "isActive"
	AttrObservationTypeID = "observationTypeId"
	AttrMitigationTypeID  = "mitigationTypeId"
)

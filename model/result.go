// api/model/result.go
package model

// ItemFailure records a single item of a batch that could not be persisted.
type ItemFailure struct {
	ID    string `json:"id"`
	Op    string `json:"op"`
	Error string `json:"error"`
}

// ProcessResult summarises one assessment run.
type ProcessResult struct {
	AssessmentID   string          `json:"assessment_id"`
	PropertyID     string          `json:"property_id"`
	RulesEvaluated int             `json:"rules_evaluated"`
	TriggeredRules []string        `json:"triggered_rules"`
	Created        []Vulnerability `json:"created"`
	Duplicates     []string        `json:"duplicates,omitempty"`
	Failures       []ItemFailure   `json:"failures,omitempty"`
}

// ReconcileResult summarises a re-evaluation of existing vulnerabilities.
// VulnerabilitiesRemoved counts only deletions that succeeded.
type ReconcileResult struct {
	RuleID                 string        `json:"rule_id,omitempty"`
	PropertyID             string        `json:"property_id,omitempty"`
	VulnerabilitiesChecked int           `json:"vulnerabilities_checked"`
	VulnerabilitiesSkipped int           `json:"vulnerabilities_skipped"`
	VulnerabilitiesRemoved int           `json:"vulnerabilities_removed"`
	Failures               []ItemFailure `json:"failures,omitempty"`
}

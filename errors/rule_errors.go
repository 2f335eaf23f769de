// api/errors/rule_errors.go
package errors

import "errors"

var (
	ErrRuleNotFound    = errors.New("rule not found")
	ErrInvalidRuleData = errors.New("invalid rule data")
	ErrRuleConflict    = errors.New("rule conflict")
	ErrRuleInUse       = errors.New("rule is referenced by unresolved vulnerabilities")
)

// api/errors/vulnerability_errors.go
package errors

import "errors"

var (
	ErrVulnerabilityNotFound    = errors.New("vulnerability not found")
	ErrInvalidVulnerabilityData = errors.New("invalid vulnerability data")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")

	ErrAssessmentNotFound    = errors.New("assessment not found")
	ErrInvalidAssessmentData = errors.New("invalid assessment data")
)

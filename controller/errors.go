// api/controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order with errors.Is.
var errorResponses = []errorResponse{
	{hazard_errors.ErrRuleNotFound, http.StatusNotFound, "Rule not found"},
	{hazard_errors.ErrVulnerabilityNotFound, http.StatusNotFound, "Vulnerability not found"},
	{hazard_errors.ErrAssessmentNotFound, http.StatusNotFound, "Assessment not found"},
	{hazard_errors.ErrObservationTypeNotFound, http.StatusNotFound, "Observation type not found"},
	{hazard_errors.ErrObservationValueNotFound, http.StatusNotFound, "Observation value not found"},
	{hazard_errors.ErrMitigationTypeNotFound, http.StatusNotFound, "Mitigation type not found"},
	{hazard_errors.ErrMitigationValueNotFound, http.StatusNotFound, "Mitigation value not found"},
	{hazard_errors.ErrInvalidRuleData, http.StatusBadRequest, "Invalid rule data"},
	{hazard_errors.ErrInvalidVulnerabilityData, http.StatusBadRequest, "Invalid vulnerability data"},
	{hazard_errors.ErrInvalidAssessmentData, http.StatusBadRequest, "Invalid assessment data"},
	{hazard_errors.ErrInvalidCatalogData, http.StatusBadRequest, "Invalid catalog data"},
	{hazard_errors.ErrInvalidPagination, http.StatusBadRequest, "Invalid pagination parameters"},
	{hazard_errors.ErrInvalidQuery, http.StatusBadRequest, "Invalid query parameters"},
	{hazard_errors.ErrRuleConflict, http.StatusConflict, "Rule already exists"},
	{hazard_errors.ErrCatalogConflict, http.StatusConflict, "Catalog entry already exists"},
	{hazard_errors.ErrRuleInUse, http.StatusConflict, "Rule is referenced by unresolved vulnerabilities"},
	{hazard_errors.ErrInvalidStatusTransition, http.StatusConflict, "Invalid status transition"},
	{hazard_errors.ErrLockTimeout, http.StatusServiceUnavailable, "Rule is busy, try again"},
	{hazard_errors.ErrDatabaseOperation, http.StatusInternalServerError, "Database operation failed"},
}

// respondWithServiceError maps a service error to its HTTP status. Unknown
// errors become a 500 with fallback as the message.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			util.RespondWithError(c, r.status, r.message, err)
			return
		}
	}
	util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
}

func respondWithBindError(c *gin.Context, message string, kind error, err error) {
	verr := hazard_errors.NewValidationError(kind)
	verr.Add("%s", err.Error())
	util.RespondWithError(c, http.StatusBadRequest, message, verr)
}

// api/controller/vulnerability_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
	helper_util "github.com/dev-mohitbeniwal/hazard/api/util/helper"
)

type VulnerabilityController struct {
	vulnerabilityService service.IVulnerabilityService
}

func NewVulnerabilityController(vulnerabilityService service.IVulnerabilityService) *VulnerabilityController {
	return &VulnerabilityController{
		vulnerabilityService: vulnerabilityService,
	}
}

// RegisterRoutes registers the API routes
func (vc *VulnerabilityController) RegisterRoutes(r *gin.RouterGroup) {
	vulnerabilities := r.Group("/vulnerabilities")
	{
		vulnerabilities.GET("", vc.ListVulnerabilities)
		vulnerabilities.GET("/:id", vc.GetVulnerability)
		vulnerabilities.GET("/:id/mitigation-options", vc.GetMitigationOptions)
		vulnerabilities.POST("/:id/mitigation", vc.ApplyMitigation)
		vulnerabilities.PUT("/:id/status", vc.UpdateStatus)
		vulnerabilities.GET("/:id/observations", vc.GetObservations)
		vulnerabilities.POST("/:id/reevaluate", vc.ReevaluateVulnerability)
	}
}

type reevaluateResponse struct {
	VulnerabilityID string `json:"vulnerability_id"`
	Triggered       bool   `json:"triggered"`
}

// ListVulnerabilities endpoint. Filters: property_id, rule_id, assessment_id,
// status and detected_before.
func (vc *VulnerabilityController) ListVulnerabilities(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		respondWithServiceError(c, err, "Invalid pagination parameters")
		return
	}
	detectedBefore, err := helper_util.ParseOptionalTime(c.Query("detected_before"))
	if err != nil {
		respondWithBindError(c, "Invalid detected_before", hazard_errors.ErrInvalidVulnerabilityData, err)
		return
	}

	filter := model.VulnerabilityFilter{
		RuleID:         c.Query("rule_id"),
		AssessmentID:   c.Query("assessment_id"),
		PropertyID:     c.Query("property_id"),
		Status:         model.VulnerabilityStatus(c.Query("status")),
		DetectedBefore: detectedBefore,
	}

	vulnerabilities, err := vc.vulnerabilityService.ListVulnerabilities(c, filter)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list vulnerabilities")
		return
	}

	c.JSON(http.StatusOK, helper_util.Paginate(vulnerabilities, limit, offset))
}

// GetVulnerability endpoint
func (vc *VulnerabilityController) GetVulnerability(c *gin.Context) {
	vulnerability, err := vc.vulnerabilityService.GetVulnerability(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve vulnerability")
		return
	}

	c.JSON(http.StatusOK, vulnerability)
}

// GetMitigationOptions endpoint
func (vc *VulnerabilityController) GetMitigationOptions(c *gin.Context) {
	options, err := vc.vulnerabilityService.GetMitigationOptions(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve mitigation options")
		return
	}

	c.JSON(http.StatusOK, options)
}

// ApplyMitigation endpoint
func (vc *VulnerabilityController) ApplyMitigation(c *gin.Context) {
	var req model.MitigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, "Invalid mitigation data", hazard_errors.ErrInvalidVulnerabilityData, err)
		return
	}

	vulnerability, err := vc.vulnerabilityService.ApplyMitigation(c, c.Param("id"), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to apply mitigation")
		return
	}

	c.JSON(http.StatusOK, vulnerability)
}

// UpdateStatus endpoint
func (vc *VulnerabilityController) UpdateStatus(c *gin.Context) {
	var update model.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondWithBindError(c, "Invalid status data", hazard_errors.ErrInvalidVulnerabilityData, err)
		return
	}

	vulnerability, err := vc.vulnerabilityService.UpdateStatus(c, c.Param("id"), update)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update vulnerability status")
		return
	}

	c.JSON(http.StatusOK, vulnerability)
}

// GetObservations endpoint
func (vc *VulnerabilityController) GetObservations(c *gin.Context) {
	vulnerability, err := vc.vulnerabilityService.GetVulnerability(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve vulnerability")
		return
	}

	observations, err := vc.vulnerabilityService.GetObservationsFor(c, *vulnerability)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve observations")
		return
	}

	c.JSON(http.StatusOK, observations)
}

// ReevaluateVulnerability endpoint
func (vc *VulnerabilityController) ReevaluateVulnerability(c *gin.Context) {
	vulnerabilityID := c.Param("id")
	triggered, err := vc.vulnerabilityService.ReevaluateVulnerability(c, vulnerabilityID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to re-evaluate vulnerability")
		return
	}

	c.JSON(http.StatusOK, reevaluateResponse{VulnerabilityID: vulnerabilityID, Triggered: triggered})
}

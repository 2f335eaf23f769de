// api/controller/assessment_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
	helper_util "github.com/dev-mohitbeniwal/hazard/api/util/helper"
)

type AssessmentController struct {
	assessmentService service.IAssessmentService
}

func NewAssessmentController(assessmentService service.IAssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AssessmentController) RegisterRoutes(r *gin.RouterGroup) {
	assessments := r.Group("/property-assessments")
	{
		assessments.POST("", ac.SubmitAssessment)
		assessments.POST("/batch", ac.SubmitAssessments)
		assessments.GET("", ac.ListAssessments)
		assessments.GET("/:id", ac.GetAssessment)
		assessments.POST("/:id/process", ac.ProcessAssessment)
	}

	properties := r.Group("/properties")
	{
		properties.GET("/:id/vulnerability-state", ac.GetVulnerabilityState)
		properties.POST("/:id/reevaluate", ac.ReevaluateProperty)
	}
}

// SubmitAssessment endpoint. Stores the assessment and reports the
// vulnerabilities it produced.
func (ac *AssessmentController) SubmitAssessment(c *gin.Context) {
	var assessment model.Assessment
	if err := c.ShouldBindJSON(&assessment); err != nil {
		respondWithBindError(c, "Invalid assessment data", hazard_errors.ErrInvalidAssessmentData, err)
		return
	}

	result, err := ac.assessmentService.SubmitAssessment(c, assessment)
	if err != nil {
		respondWithServiceError(c, err, "Failed to process assessment")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SubmitAssessments endpoint
func (ac *AssessmentController) SubmitAssessments(c *gin.Context) {
	var assessments []model.Assessment
	if err := c.ShouldBindJSON(&assessments); err != nil {
		respondWithBindError(c, "Invalid assessment data", hazard_errors.ErrInvalidAssessmentData, err)
		return
	}

	results, err := ac.assessmentService.ProcessAssessments(c, assessments)
	if err != nil {
		respondWithServiceError(c, err, "Failed to process assessments")
		return
	}

	c.JSON(http.StatusCreated, results)
}

// ListAssessments endpoint
func (ac *AssessmentController) ListAssessments(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		respondWithServiceError(c, err, "Invalid pagination parameters")
		return
	}

	assessments, err := ac.assessmentService.ListAssessments(c, c.Query("property_id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list assessments")
		return
	}

	c.JSON(http.StatusOK, helper_util.Paginate(assessments, limit, offset))
}

// GetAssessment endpoint
func (ac *AssessmentController) GetAssessment(c *gin.Context) {
	assessment, err := ac.assessmentService.GetAssessment(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve assessment")
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// ProcessAssessment endpoint. With ?at= only rules effective at that time apply.
func (ac *AssessmentController) ProcessAssessment(c *gin.Context) {
	at, err := helper_util.ParseOptionalTime(c.Query("at"))
	if err != nil {
		respondWithBindError(c, "Invalid at", hazard_errors.ErrInvalidAssessmentData, err)
		return
	}

	result, err := ac.assessmentService.ProcessStoredAssessment(c, c.Param("id"), at)
	if err != nil {
		respondWithServiceError(c, err, "Failed to process assessment")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVulnerabilityState endpoint. ?at= is required.
func (ac *AssessmentController) GetVulnerabilityState(c *gin.Context) {
	at, err := helper_util.ParseTime(c.Query("at"))
	if err != nil {
		respondWithBindError(c, "Invalid at", hazard_errors.ErrInvalidVulnerabilityData, err)
		return
	}

	state, err := ac.assessmentService.GetVulnerabilityStateAtTime(c, c.Param("id"), at)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve vulnerability state")
		return
	}

	c.JSON(http.StatusOK, state)
}

// ReevaluateProperty endpoint
func (ac *AssessmentController) ReevaluateProperty(c *gin.Context) {
	result, err := ac.assessmentService.ReevaluateProperty(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to re-evaluate property")
		return
	}

	c.JSON(http.StatusOK, result)
}

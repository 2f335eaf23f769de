// api/controller/rule_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
	helper_util "github.com/dev-mohitbeniwal/hazard/api/util/helper"
)

type RuleController struct {
	ruleService service.IRuleService
}

func NewRuleController(ruleService service.IRuleService) *RuleController {
	return &RuleController{
		ruleService: ruleService,
	}
}

// RegisterRoutes registers the API routes
func (rc *RuleController) RegisterRoutes(r *gin.RouterGroup) {
	rules := r.Group("/rules")
	{
		rules.POST("", rc.CreateRule)
		rules.GET("", rc.ListRules)
		rules.POST("/test", rc.TestRule)
		rules.GET("/:id", rc.GetRule)
		rules.PUT("/:id", rc.UpdateRule)
		rules.DELETE("/:id", rc.DeleteRule)
		rules.POST("/:id/preview", rc.PreviewRuleUpdate)
		rules.GET("/:id/human-readable", rc.GetHumanReadableRule)
	}
}

type updateRuleResponse struct {
	Rule           *model.Rule            `json:"rule"`
	Reconciliation *model.ReconcileResult `json:"reconciliation"`
}

type previewRequest struct {
	FunctionalRule model.ConditionGroup `json:"functional_rule"`
}

type testRuleRequest struct {
	FunctionalRule model.ConditionGroup  `json:"functional_rule"`
	Cases          []model.RuleTestCase `json:"cases"`
}

type humanReadableResponse struct {
	RuleID string `json:"rule_id"`
	Text   string `json:"text"`
}

// CreateRule endpoint
func (rc *RuleController) CreateRule(c *gin.Context) {
	var input model.RuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondWithBindError(c, "Invalid rule data", hazard_errors.ErrInvalidRuleData, err)
		return
	}

	rule, err := rc.ruleService.CreateRule(c, input)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create rule")
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// UpdateRule endpoint. The response carries the reconciliation summary.
func (rc *RuleController) UpdateRule(c *gin.Context) {
	ruleID := c.Param("id")
	var patch model.RulePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondWithBindError(c, "Invalid rule data", hazard_errors.ErrInvalidRuleData, err)
		return
	}

	rule, result, err := rc.ruleService.UpdateRule(c, ruleID, patch)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update rule")
		return
	}

	c.JSON(http.StatusOK, updateRuleResponse{Rule: rule, Reconciliation: result})
}

// DeleteRule endpoint
func (rc *RuleController) DeleteRule(c *gin.Context) {
	if err := rc.ruleService.DeleteRule(c, c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete rule")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetRule endpoint
func (rc *RuleController) GetRule(c *gin.Context) {
	rule, err := rc.ruleService.GetRule(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve rule")
		return
	}

	c.JSON(http.StatusOK, rule)
}

// ListRules endpoint. effective_at restricts the list to rules in force at that time.
func (rc *RuleController) ListRules(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		respondWithServiceError(c, err, "Invalid pagination parameters")
		return
	}
	at, err := helper_util.ParseOptionalTime(c.Query("effective_at"))
	if err != nil {
		respondWithBindError(c, "Invalid effective_at", hazard_errors.ErrInvalidRuleData, err)
		return
	}

	var rules []model.Rule
	if at != nil {
		rules, err = rc.ruleService.ListRulesEffectiveAt(c, *at)
	} else {
		rules, err = rc.ruleService.ListRules(c)
	}
	if err != nil {
		respondWithServiceError(c, err, "Failed to list rules")
		return
	}

	c.JSON(http.StatusOK, helper_util.Paginate(rules, limit, offset))
}

// PreviewRuleUpdate endpoint
func (rc *RuleController) PreviewRuleUpdate(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, "Invalid rule data", hazard_errors.ErrInvalidRuleData, err)
		return
	}

	preview, err := rc.ruleService.PreviewRuleUpdate(c, c.Param("id"), req.FunctionalRule)
	if err != nil {
		respondWithServiceError(c, err, "Failed to preview rule update")
		return
	}

	c.JSON(http.StatusOK, preview)
}

// TestRule endpoint
func (rc *RuleController) TestRule(c *gin.Context) {
	var req testRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, "Invalid rule data", hazard_errors.ErrInvalidRuleData, err)
		return
	}

	results, err := rc.ruleService.TestRule(req.FunctionalRule, req.Cases)
	if err != nil {
		respondWithServiceError(c, err, "Failed to test rule")
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetHumanReadableRule endpoint
func (rc *RuleController) GetHumanReadableRule(c *gin.Context) {
	ruleID := c.Param("id")
	text, err := rc.ruleService.RenderHumanReadable(c, ruleID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to render rule")
		return
	}

	c.JSON(http.StatusOK, humanReadableResponse{RuleID: ruleID, Text: text})
}

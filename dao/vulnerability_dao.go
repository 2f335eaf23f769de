// api/dao/vulnerability_dao.go
package dao

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	hazard_neo4j "github.com/dev-mohitbeniwal/hazard/api/model/neo4j"
)

type VulnerabilityDAO struct {
	*neo4jDAO
}

// CreateVulnerability stores a vulnerability and links it to its rule and
// assessment when those nodes exist
func (dao *VulnerabilityDAO) CreateVulnerability(ctx context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error) {
	start := time.Now()
	if vulnerability.ID == "" {
		vulnerability.ID = uuid.New().String()
	}
	logger.Info("Creating new vulnerability",
		zap.String("vulnerabilityID", vulnerability.ID),
		zap.String("ruleID", vulnerability.RuleID),
		zap.String("assessmentID", vulnerability.AssessmentID))

	query := `
        CREATE (v:` + hazard_neo4j.LabelVulnerability + ` {id: $id})
        SET v += $props
        WITH v
        OPTIONAL MATCH (r:` + hazard_neo4j.LabelRule + ` {id: $ruleId})
        OPTIONAL MATCH (a:` + hazard_neo4j.LabelAssessment + ` {id: $assessmentId})
        FOREACH (_ IN CASE WHEN r IS NULL THEN [] ELSE [1] END |
            MERGE (v)-[:` + hazard_neo4j.RelTriggeredBy + `]->(r))
        FOREACH (_ IN CASE WHEN a IS NULL THEN [] ELSE [1] END |
            MERGE (v)-[:` + hazard_neo4j.RelFoundIn + `]->(a))
        RETURN v
        `
	params := map[string]interface{}{
		"id":           vulnerability.ID,
		"ruleId":       vulnerability.RuleID,
		"assessmentId": vulnerability.AssessmentID,
		"props":        vulnerabilityProps(vulnerability),
	}

	node, err := dao.writeNode(ctx, query, params, "v")
	if err := logOp("create vulnerability", start, err, zap.String("vulnerabilityID", vulnerability.ID)); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, hazard_errors.NewPersistenceError("create vulnerability", fmt.Errorf("no node returned"))
	}
	return mapNodeToVulnerability(*node)
}

func (dao *VulnerabilityDAO) GetVulnerability(ctx context.Context, vulnerabilityID string) (*model.Vulnerability, error) {
	start := time.Now()
	query := `MATCH (v:` + hazard_neo4j.LabelVulnerability + ` {id: $id}) RETURN v`

	nodes, err := dao.queryNodes(ctx, query, map[string]interface{}{"id": vulnerabilityID}, "v")
	if err := logOp("get vulnerability", start, err, zap.String("vulnerabilityID", vulnerabilityID)); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, hazard_errors.ErrVulnerabilityNotFound
	}
	return mapNodeToVulnerability(nodes[0])
}

// ListVulnerabilities returns the vulnerabilities matching every set filter field
func (dao *VulnerabilityDAO) ListVulnerabilities(ctx context.Context, filter model.VulnerabilityFilter) ([]model.Vulnerability, error) {
	start := time.Now()

	var where []string
	params := map[string]interface{}{}
	if filter.RuleID != "" {
		where = append(where, "v."+hazard_neo4j.AttrRuleID+" = $ruleId")
		params["ruleId"] = filter.RuleID
	}
	if filter.AssessmentID != "" {
		where = append(where, "v."+hazard_neo4j.AttrAssessmentID+" = $assessmentId")
		params["assessmentId"] = filter.AssessmentID
	}
	if filter.PropertyID != "" {
		where = append(where, "v."+hazard_neo4j.AttrPropertyID+" = $propertyId")
		params["propertyId"] = filter.PropertyID
	}
	if filter.Status != "" {
		where = append(where, "v."+hazard_neo4j.AttrStatus+" = $status")
		params["status"] = string(filter.Status)
	}
	if filter.DetectedBefore != nil {
		where = append(where, "v."+hazard_neo4j.AttrDetectedAt+" <= $detectedBefore")
		params["detectedBefore"] = formatTime(*filter.DetectedBefore)
	}

	var query strings.Builder
	query.WriteString("MATCH (v:" + hazard_neo4j.LabelVulnerability + ")")
	if len(where) > 0 {
		query.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	query.WriteString(" RETURN v ORDER BY v." + hazard_neo4j.AttrDetectedAt + ", v.id")

	nodes, err := dao.queryNodes(ctx, query.String(), params, "v")
	if err := logOp("list vulnerabilities", start, err, zap.Int("filters", len(where))); err != nil {
		return nil, err
	}

	vulnerabilities := make([]model.Vulnerability, 0, len(nodes))
	for _, node := range nodes {
		vulnerability, err := mapNodeToVulnerability(node)
		if err != nil {
			logger.Error("Failed to map vulnerability node", zap.Error(err))
			return nil, err
		}
		vulnerabilities = append(vulnerabilities, *vulnerability)
	}
	return vulnerabilities, nil
}

func (dao *VulnerabilityDAO) UpdateVulnerability(ctx context.Context, vulnerability model.Vulnerability) (*model.Vulnerability, error) {
	start := time.Now()
	logger.Info("Updating vulnerability", zap.String("vulnerabilityID", vulnerability.ID))

	query := `
        MATCH (v:` + hazard_neo4j.LabelVulnerability + ` {id: $id})
        SET v += $props
        RETURN v
        `
	params := map[string]interface{}{"id": vulnerability.ID, "props": vulnerabilityProps(vulnerability)}

	node, err := dao.writeNode(ctx, query, params, "v")
	if err := logOp("update vulnerability", start, err, zap.String("vulnerabilityID", vulnerability.ID)); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, hazard_errors.ErrVulnerabilityNotFound
	}
	return mapNodeToVulnerability(*node)
}

func (dao *VulnerabilityDAO) DeleteVulnerability(ctx context.Context, vulnerabilityID string) error {
	start := time.Now()
	logger.Info("Deleting vulnerability", zap.String("vulnerabilityID", vulnerabilityID))

	query := `MATCH (v:` + hazard_neo4j.LabelVulnerability + ` {id: $id}) DETACH DELETE v`
	deleted, err := dao.deleteNodes(ctx, query, map[string]interface{}{"id": vulnerabilityID})
	if err := logOp("delete vulnerability", start, err, zap.String("vulnerabilityID", vulnerabilityID)); err != nil {
		return err
	}
	if deleted == 0 {
		return hazard_errors.ErrVulnerabilityNotFound
	}
	return nil
}

func vulnerabilityProps(v model.Vulnerability) map[string]interface{} {
	createdAt := v.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := v.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return map[string]interface{}{
		hazard_neo4j.AttrRuleID:           v.RuleID,
		hazard_neo4j.AttrAssessmentID:     v.AssessmentID,
		hazard_neo4j.AttrPropertyID:       v.PropertyID,
		hazard_neo4j.AttrStatus:           string(v.Status),
		hazard_neo4j.AttrDetectedAt:       formatTime(v.DetectedAt),
		hazard_neo4j.AttrMitigationTypeID: v.MitigationTypeID,
		"mitigationValueId":               v.MitigationValueID,
		"mitigationDescription":           v.MitigationDescription,
		"notes":                           v.Notes,
		"createdAt":                       formatTime(createdAt),
		"updatedAt":                       formatTime(updatedAt),
	}
}

func mapNodeToVulnerability(node neo4j.Node) (*model.Vulnerability, error) {
	props := node.Props

	id := stringProp(props, hazard_neo4j.AttrID)
	if id == "" {
		return nil, fmt.Errorf("failed to assert type for vulnerability ID: %v", props[hazard_neo4j.AttrID])
	}

	return &model.Vulnerability{
		ID:                    id,
		RuleID:                stringProp(props, hazard_neo4j.AttrRuleID),
		AssessmentID:          stringProp(props, hazard_neo4j.AttrAssessmentID),
		PropertyID:            stringProp(props, hazard_neo4j.AttrPropertyID),
		Status:                model.VulnerabilityStatus(stringProp(props, hazard_neo4j.AttrStatus)),
		DetectedAt:            parseTime(props[hazard_neo4j.AttrDetectedAt]),
		MitigationTypeID:      stringProp(props, hazard_neo4j.AttrMitigationTypeID),
		MitigationValueID:     stringProp(props, "mitigationValueId"),
		MitigationDescription: stringProp(props, "mitigationDescription"),
		Notes:                 stringProp(props, "notes"),
		CreatedAt:             parseTime(props["createdAt"]),
		UpdatedAt:             parseTime(props["updatedAt"]),
	}, nil
}

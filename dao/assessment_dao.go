// api/dao/assessment_dao.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	hazard_neo4j "github.com/dev-mohitbeniwal/hazard/api/model/neo4j"
)

type AssessmentDAO struct {
	*neo4jDAO
}

// CreateAssessment stores an assessment and attaches it to its property,
// creating the property node on first use
func (dao *AssessmentDAO) CreateAssessment(ctx context.Context, assessment model.Assessment) (*model.Assessment, error) {
	start := time.Now()
	if assessment.ID == "" {
		assessment.ID = uuid.New().String()
	}
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}
	logger.Info("Creating new assessment",
		zap.String("assessmentID", assessment.ID),
		zap.String("propertyID", assessment.PropertyID))

	observations, err := json.Marshal(assessment.Observations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal observations: %w", err)
	}

	query := `
        MERGE (p:` + hazard_neo4j.LabelProperty + ` {id: $propertyId})
        CREATE (a:` + hazard_neo4j.LabelAssessment + ` {id: $id})
        SET a += $props
        MERGE (a)-[:` + hazard_neo4j.RelAssessed + `]->(p)
        RETURN a
        `
	params := map[string]interface{}{
		"id":         assessment.ID,
		"propertyId": assessment.PropertyID,
		"props": map[string]interface{}{
			hazard_neo4j.AttrPropertyID: assessment.PropertyID,
			"assessedAt":                formatTime(assessment.AssessedAt),
			"observations":              string(observations),
			"createdAt":                 formatTime(assessment.CreatedAt),
		},
	}

	node, err := dao.writeNode(ctx, query, params, "a")
	if err := logOp("create assessment", start, err, zap.String("assessmentID", assessment.ID)); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, hazard_errors.NewPersistenceError("create assessment", fmt.Errorf("no node returned"))
	}
	return mapNodeToAssessment(*node)
}

func (dao *AssessmentDAO) GetAssessment(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	start := time.Now()
	query := `MATCH (a:` + hazard_neo4j.LabelAssessment + ` {id: $id}) RETURN a`

	nodes, err := dao.queryNodes(ctx, query, map[string]interface{}{"id": assessmentID}, "a")
	if err := logOp("get assessment", start, err, zap.String("assessmentID", assessmentID)); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, hazard_errors.ErrAssessmentNotFound
	}
	return mapNodeToAssessment(nodes[0])
}

// ListAssessments returns the assessments of a property, oldest first. An
// empty propertyID lists every assessment.
func (dao *AssessmentDAO) ListAssessments(ctx context.Context, propertyID string) ([]model.Assessment, error) {
	start := time.Now()
	query := `MATCH (a:` + hazard_neo4j.LabelAssessment + `) RETURN a ORDER BY a.assessedAt, a.id`
	params := map[string]interface{}{}
	if propertyID != "" {
		query = `
            MATCH (a:` + hazard_neo4j.LabelAssessment + `)
            WHERE a.` + hazard_neo4j.AttrPropertyID + ` = $propertyId
            RETURN a ORDER BY a.assessedAt, a.id
            `
		params["propertyId"] = propertyID
	}

	nodes, err := dao.queryNodes(ctx, query, params, "a")
	if err := logOp("list assessments", start, err, zap.String("propertyID", propertyID)); err != nil {
		return nil, err
	}

	assessments := make([]model.Assessment, 0, len(nodes))
	for _, node := range nodes {
		assessment, err := mapNodeToAssessment(node)
		if err != nil {
			logger.Error("Failed to map assessment node", zap.Error(err))
			return nil, err
		}
		assessments = append(assessments, *assessment)
	}
	return assessments, nil
}

func mapNodeToAssessment(node neo4j.Node) (*model.Assessment, error) {
	props := node.Props

	id := stringProp(props, hazard_neo4j.AttrID)
	if id == "" {
		return nil, fmt.Errorf("failed to assert type for assessment ID: %v", props[hazard_neo4j.AttrID])
	}

	assessment := &model.Assessment{
		ID:         id,
		PropertyID: stringProp(props, hazard_neo4j.AttrPropertyID),
		AssessedAt: parseTime(props["assessedAt"]),
		CreatedAt:  parseTime(props["createdAt"]),
	}
	if raw := stringProp(props, "observations"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &assessment.Observations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assessment observations: %w", err)
		}
	}
	return assessment, nil
}

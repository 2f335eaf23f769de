// api/dao/rule_dao.go
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

type RuleDAO struct {
	*neo4jDAO
}

// CreateRule creates a new rule node in Neo4j
func (dao *RuleDAO) CreateRule(ctx context.Context, rule model.Rule) (*model.Rule, error) {
	start := time.Now()
	logger.Info("Creating new rule", zap.String("ruleName", rule.Name))

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}

	props, err := ruleProps(rule)
	if err != nil {
		return nil, err
	}

	result, err := dao.write(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		// First, check if the rule already exists
		checkQuery := `MATCH (r:` + hazard_neo4j.LabelRule + ` {id: $id}) RETURN r.id`
		check, err := tx.Run(ctx, checkQuery, map[string]interface{}{"id": rule.ID})
		if err != nil {
			return nil, err
		}
		if check.Next(ctx) {
			return nil, nil
		}

		createQuery := `
            CREATE (r:` + hazard_neo4j.LabelRule + ` {id: $id})
            SET r += $props
            RETURN r
            `
		records, err := tx.Run(ctx, createQuery, map[string]interface{}{"id": rule.ID, "props": props})
		if err != nil {
			return nil, err
		}
		nodes, err := collectNodes(ctx, records, "r")
		if err != nil {
			return nil, err
		}
		if len(nodes) == 0 {
			return nil, fmt.Errorf("create returned no rule node")
		}
		return nodes[0], nil
	})
	if err := logOp("create rule", start, err, zap.String("ruleID", rule.ID)); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, hazard_errors.ErrRuleConflict
	}

	logger.Info("Rule created successfully", zap.String("ruleID", rule.ID))
	return mapNodeToRule(result.(neo4j.Node))
}

// GetRule retrieves a rule by ID
func (dao *RuleDAO) GetRule(ctx context.Context, ruleID string) (*model.Rule, error) {
	start := time.Now()
	query := `MATCH (r:` + hazard_neo4j.LabelRule + ` {id: $id}) RETURN r`

	nodes, err := dao.queryNodes(ctx, query, map[string]interface{}{"id": ruleID}, "r")
	if err := logOp("get rule", start, err, zap.String("ruleID", ruleID)); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, hazard_errors.ErrRuleNotFound
	}
	return mapNodeToRule(nodes[0])
}

func (dao *RuleDAO) ListRules(ctx context.Context) ([]model.Rule, error) {
	query := `MATCH (r:` + hazard_neo4j.LabelRule + `) RETURN r ORDER BY r.createdAt, r.id`
	return dao.listRules(ctx, "list rules", query, nil)
}

func (dao *RuleDAO) ListActiveRules(ctx context.Context) ([]model.Rule, error) {
	query := `
        MATCH (r:` + hazard_neo4j.LabelRule + `)
        WHERE r.` + hazard_neo4j.AttrIsActive + ` = true
        RETURN r ORDER BY r.createdAt, r.id
        `
	return dao.listRules(ctx, "list active rules", query, nil)
}

// ListRulesEffectiveAt returns active rules whose effective window contains at
func (dao *RuleDAO) ListRulesEffectiveAt(ctx context.Context, at time.Time) ([]model.Rule, error) {
	query := `
        MATCH (r:` + hazard_neo4j.LabelRule + `)
        WHERE r.` + hazard_neo4j.AttrIsActive + ` = true
          AND r.` + hazard_neo4j.AttrEffectiveFrom + ` <= $at
          AND (r.` + hazard_neo4j.AttrEffectiveTo + ` IS NULL OR r.` + hazard_neo4j.AttrEffectiveTo + ` > $at)
        RETURN r ORDER BY r.createdAt, r.id
        `
	return dao.listRules(ctx, "list effective rules", query, map[string]interface{}{"at": formatTime(at)})
}

func (dao *RuleDAO) listRules(ctx context.Context, op, query string, params map[string]interface{}) ([]model.Rule, error) {
	start := time.Now()
	nodes, err := dao.queryNodes(ctx, query, params, "r")
	if err := logOp(op, start, err); err != nil {
		return nil, err
	}

	rules := make([]model.Rule, 0, len(nodes))
	for _, node := range nodes {
		rule, err := mapNodeToRule(node)
		if err != nil {
			logger.Error("Failed to map rule node", zap.Error(err))
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, nil
}

// UpdateRule replaces the stored properties of an existing rule
func (dao *RuleDAO) UpdateRule(ctx context.Context, rule model.Rule) (*model.Rule, error) {
	start := time.Now()
	logger.Info("Updating rule", zap.String("ruleID", rule.ID))

	props, err := ruleProps(rule)
	if err != nil {
		return nil, err
	}

	query := `
        MATCH (r:` + hazard_neo4j.LabelRule + ` {id: $id})
        SET r += $props
        RETURN r
        `
	node, err := dao.writeNode(ctx, query, map[string]interface{}{"id": rule.ID, "props": props}, "r")
	if err := logOp("update rule", start, err, zap.String("ruleID", rule.ID)); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, hazard_errors.ErrRuleNotFound
	}
	return mapNodeToRule(*node)
}

// DeleteRule removes the rule node. Vulnerabilities keep their ruleId.
func (dao *RuleDAO) DeleteRule(ctx context.Context, ruleID string) error {
	start := time.Now()
	logger.Info("Deleting rule", zap.String("ruleID", ruleID))

	query := `MATCH (r:` + hazard_neo4j.LabelRule + ` {id: $id}) DETACH DELETE r`
	deleted, err := dao.deleteNodes(ctx, query, map[string]interface{}{"id": ruleID})
	if err := logOp("delete rule", start, err, zap.String("ruleID", ruleID)); err != nil {
		return err
	}
	if deleted == 0 {
		return hazard_errors.ErrRuleNotFound
	}
	return nil
}

func ruleProps(rule model.Rule) (map[string]interface{}, error) {
	functionalRule, err := json.Marshal(rule.FunctionalRule)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal functional rule: %w", err)
	}

	createdAt := rule.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := rule.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return map[string]interface{}{
		"name":                         rule.Name,
		"description":                  rule.Description,
		"functionalRule":               string(functionalRule),
		hazard_neo4j.AttrEffectiveFrom: formatTime(rule.EffectiveFrom),
		hazard_neo4j.AttrEffectiveTo:   formatNullableTime(rule.EffectiveTo),
		hazard_neo4j.AttrIsActive:      rule.IsActive,
		"version":                      rule.Version,
		"createdAt":                    formatTime(createdAt),
		"updatedAt":                    formatTime(updatedAt),
	}, nil
}

func mapNodeToRule(node neo4j.Node) (*model.Rule, error) {
	props := node.Props

	id := stringProp(props, hazard_neo4j.AttrID)
	if id == "" {
		return nil, fmt.Errorf("failed to assert type for rule ID: %v", props[hazard_neo4j.AttrID])
	}

	rule := &model.Rule{
		ID:            id,
		Name:          stringProp(props, "name"),
		Description:   stringProp(props, "description"),
		EffectiveFrom: parseTime(props[hazard_neo4j.AttrEffectiveFrom]),
		EffectiveTo:   parseNullableTime(props[hazard_neo4j.AttrEffectiveTo]),
		IsActive:      boolProp(props, hazard_neo4j.AttrIsActive),
		Version:       intProp(props, "version"),
		CreatedAt:     parseTime(props["createdAt"]),
		UpdatedAt:     parseTime(props["updatedAt"]),
	}

	functionalRule, ok := props["functionalRule"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to assert type for rule functionalRule: %v", props["functionalRule"])
	}
	if err := json.Unmarshal([]byte(functionalRule), &rule.FunctionalRule); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rule functionalRule: %w", err)
	}

	return rule, nil
}

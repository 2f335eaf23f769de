// api/dao/neo4j_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	hazard_neo4j "github.com/dev-mohitbeniwal/hazard/api/model/neo4j"
)

// Times are stored as fixed width UTC strings so that Cypher string
// comparison orders them chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Neo4jStore implements Store on top of a Neo4j driver.
type Neo4jStore struct {
	*RuleDAO
	*VulnerabilityDAO
	*CatalogDAO
	*AssessmentDAO
}

func NewNeo4jStore(driver neo4j.DriverWithContext) *Neo4jStore {
	base := &neo4jDAO{Driver: driver}
	store := &Neo4jStore{
		RuleDAO:          &RuleDAO{neo4jDAO: base},
		VulnerabilityDAO: &VulnerabilityDAO{neo4jDAO: base},
		CatalogDAO:       &CatalogDAO{neo4jDAO: base},
		AssessmentDAO:    &AssessmentDAO{neo4jDAO: base},
	}

	ctx := context.Background()
	if err := base.EnsureUniqueConstraints(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraints", zap.Error(err))
	}
	return store
}

type neo4jDAO struct {
	Driver neo4j.DriverWithContext
}

// EnsureUniqueConstraints ensures the unique id constraint on every node label
func (dao *neo4jDAO) EnsureUniqueConstraints(ctx context.Context) error {
	labels := []string{
		hazard_neo4j.LabelRule,
		hazard_neo4j.LabelVulnerability,
		hazard_neo4j.LabelAssessment,
		hazard_neo4j.LabelProperty,
		hazard_neo4j.LabelObservationType,
		hazard_neo4j.LabelObservationValue,
		hazard_neo4j.LabelMitigationType,
		hazard_neo4j.LabelMitigationValue,
	}

	_, err := dao.write(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		for _, label := range labels {
			query := fmt.Sprintf(
				"CREATE CONSTRAINT unique_%s_id IF NOT EXISTS FOR (n:%s) REQUIRE n.id IS UNIQUE",
				label, label)
			if _, err := tx.Run(ctx, query, nil); err != nil {
				return nil, fmt.Errorf("failed to create unique constraint on %s: %w", label, err)
			}
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to ensure unique constraints", zap.Error(err))
		return err
	}

	logger.Info("Successfully ensured unique constraints", zap.Int("labels", len(labels)))
	return nil
}

func (dao *neo4jDAO) write(ctx context.Context, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer func() {
		if err := session.Close(ctx); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()
	return session.ExecuteWrite(ctx, work)
}

func (dao *neo4jDAO) read(ctx context.Context, work neo4j.ManagedTransactionWork) (interface{}, error) {
	session := dao.Driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer func() {
		if err := session.Close(ctx); err != nil {
			logger.Error("Failed to close Neo4j session", zap.Error(err))
		}
	}()
	return session.ExecuteRead(ctx, work)
}

// queryNodes runs a read query and returns the node bound to key in every record.
func (dao *neo4jDAO) queryNodes(ctx context.Context, query string, params map[string]interface{}, key string) ([]neo4j.Node, error) {
	result, err := dao.read(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		records, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return collectNodes(ctx, records, key)
	})
	if err != nil {
		return nil, err
	}
	return result.([]neo4j.Node), nil
}

// writeNode runs a write query returning at most one node. A nil node means
// the query matched nothing.
func (dao *neo4jDAO) writeNode(ctx context.Context, query string, params map[string]interface{}, key string) (*neo4j.Node, error) {
	result, err := dao.write(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		records, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		nodes, err := collectNodes(ctx, records, key)
		if err != nil {
			return nil, err
		}
		if len(nodes) == 0 {
			return (*neo4j.Node)(nil), nil
		}
		return &nodes[0], nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*neo4j.Node), nil
}

// deleteNodes runs a delete query and returns the number of deleted nodes.
func (dao *neo4jDAO) deleteNodes(ctx context.Context, query string, params map[string]interface{}) (int, error) {
	result, err := dao.write(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		records, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		summary, err := records.Consume(ctx)
		if err != nil {
			return nil, err
		}
		return summary.Counters().NodesDeleted(), nil
	})
	if err != nil {
		return 0, err
	}
	return result.(int), nil
}

func collectNodes(ctx context.Context, result neo4j.ResultWithContext, key string) ([]neo4j.Node, error) {
	nodes := []neo4j.Node{}
	for result.Next(ctx) {
		value, found := result.Record().Get(key)
		if !found {
			return nil, fmt.Errorf("record has no %q column", key)
		}
		node, ok := value.(neo4j.Node)
		if !ok {
			return nil, fmt.Errorf("unexpected type %T for %q", value, key)
		}
		nodes = append(nodes, node)
	}
	return nodes, result.Err()
}

// logOp logs the outcome of a DAO call with its duration and wraps failures.
func logOp(op string, start time.Time, err error, fields ...zap.Field) error {
	fields = append(fields, zap.Duration("duration", time.Since(start)))
	if err != nil {
		logger.Error("Failed to "+op, append(fields, zap.Error(err))...)
		return hazard_errors.NewPersistenceError(op, err)
	}
	logger.Debug("Completed "+op, fields...)
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatNullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			logger.Warn("Failed to parse stored time", zap.String("value", t), zap.Error(err))
			return time.Time{}
		}
		return parsed
	case time.Time:
		return t.UTC()
	}
	return time.Time{}
}

func parseNullableTime(v interface{}) *time.Time {
	if v == nil {
		return nil
	}
	t := parseTime(v)
	if t.IsZero() {
		return nil
	}
	return &t
}

func stringProp(props map[string]interface{}, key string) string {
	s, _ := props[key].(string)
	return s
}

func intProp(props map[string]interface{}, key string) int {
	switch n := props[key].(type) {
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

func boolProp(props map[string]interface{}, key string) bool {
	b, _ := props[key].(bool)
	return b
}

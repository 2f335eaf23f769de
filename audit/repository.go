// api/audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
)

type Repository interface {
	Record(ctx context.Context, log AuditLog) error
	Query(ctx context.Context, q Query) ([]AuditLog, error)
}

// defaultPageSize is the number of hits fetched per search request.
const defaultPageSize = 500

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
	pageSize int
}

// NewElasticsearchRepository creates a repository writing to index on the cluster at esURL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index, pageSize: defaultPageSize}, nil
}

// Record indexes one audit entry under its id.
func (r *ElasticsearchRepository) Record(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog      `json:"_source"`
			Sort   []interface{} `json:"sort"`
		} `json:"hits"`
	} `json:"hits"`
}

// Query searches the index for entries matching q, oldest first. Results are
// paged with search_after until a short page comes back.
func (r *ElasticsearchRepository) Query(ctx context.Context, q Query) ([]AuditLog, error) {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": q.From.UTC().Format(time.RFC3339Nano),
					"lte": q.To.UTC().Format(time.RFC3339Nano),
				},
			},
		},
	}
	terms := map[string]string{
		"entity_type": q.EntityType,
		"entity_id":   q.EntityID,
		"rule_id":     q.RuleID,
		"property_id": q.PropertyID,
	}
	for field, value := range terms {
		if value != "" {
			must = append(must, map[string]interface{}{
				"term": map[string]interface{}{field + ".keyword": value},
			})
		}
	}

	logs := []AuditLog{}
	var after []interface{}
	for {
		query := map[string]interface{}{
			"size":  r.pageSize,
			"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
			"sort": []interface{}{
				map[string]interface{}{"timestamp": "asc"},
				map[string]interface{}{"id.keyword": "asc"},
			},
		}
		if after != nil {
			query["search_after"] = after
		}

		page, err := r.search(ctx, query)
		if err != nil {
			return nil, err
		}
		for _, hit := range page.Hits.Hits {
			logs = append(logs, hit.Source)
		}
		hits := page.Hits.Hits
		if len(hits) < r.pageSize || len(hits[len(hits)-1].Sort) == 0 {
			return logs, nil
		}
		after = hits[len(hits)-1].Sort
	}
}

func (r *ElasticsearchRepository) search(ctx context.Context, query map[string]interface{}) (*searchResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &parsed, nil
}

// LogRepository writes audit entries to the application log. It is used when
// Elasticsearch is disabled and cannot answer queries.
type LogRepository struct{}

func NewLogRepository() *LogRepository {
	return &LogRepository{}
}

func (r *LogRepository) Record(_ context.Context, log AuditLog) error {
	logger.Info("AUDIT",
		zap.String("action", log.Action),
		zap.String("entityType", log.EntityType),
		zap.String("entityID", log.EntityID),
		zap.String("ruleID", log.RuleID),
		zap.String("propertyID", log.PropertyID),
		zap.ByteString("changeDetails", log.ChangeDetails))
	return nil
}

func (r *LogRepository) Query(_ context.Context, _ Query) ([]AuditLog, error) {
	return []AuditLog{}, nil
}

package audit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCluster(t *testing.T, handler http.HandlerFunc) *ElasticsearchRepository {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	repo, err := NewElasticsearchRepository(server.URL, "hazard-audit-logs")
	require.NoError(t, err)
	return repo
}

func TestElasticsearchRepositoryRecord(t *testing.T) {
	entry := NewEntry(ActionDelete, EntityVulnerability, "v1", map[string]string{"reason": "rule updated"}).
		WithRule("r1").
		WithProperty("p1")

	var (
		gotPath string
		gotBody AuditLog
	)
	repo := newTestCluster(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	require.NoError(t, repo.Record(context.Background(), entry))
	assert.Equal(t, "/hazard-audit-logs/_doc/"+entry.ID, gotPath)
	assert.Equal(t, "r1", gotBody.RuleID)
	assert.Equal(t, "p1", gotBody.PropertyID)
	assert.JSONEq(t, `{"reason":"rule updated"}`, string(gotBody.ChangeDetails))
}

func TestElasticsearchRepositoryRecordError(t *testing.T) {
	repo := newTestCluster(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"bad"}`))
	})

	err := repo.Record(context.Background(), NewEntry(ActionCreate, EntityRule, "r1", nil))
	assert.ErrorContains(t, err, "error indexing document")
}

func TestElasticsearchRepositoryQuery(t *testing.T) {
	var gotQuery string
	repo := newTestCluster(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotQuery = string(body)
		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_source":{"id":"a1","action":"CREATE","entity_type":"rule","entity_id":"r1"}},
			{"_source":{"id":"a2","action":"UPDATE","entity_type":"rule","entity_id":"r1"}}
		]}}`))
	})

	now := time.Now()
	logs, err := repo.Query(context.Background(), Query{From: now.Add(-time.Hour), To: now, EntityID: "r1"})
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, ActionUpdate, logs[1].Action)
	assert.True(t, strings.Contains(gotQuery, `"term":{"entity_id.keyword":"r1"}`))
	assert.True(t, strings.Contains(gotQuery, `"size":500`))
	assert.False(t, strings.Contains(gotQuery, `"rule_id`))
}

func TestElasticsearchRepositoryQueryPages(t *testing.T) {
	var bodies []map[string]interface{}
	repo := newTestCluster(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		bodies = append(bodies, body)
		if len(bodies) == 1 {
			_, _ = w.Write([]byte(`{"hits":{"hits":[
				{"_source":{"id":"a1"},"sort":[1,"a1"]},
				{"_source":{"id":"a2"},"sort":[2,"a2"]}
			]}}`))
			return
		}
		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_source":{"id":"a3"},"sort":[3,"a3"]}
		]}}`))
	})
	repo.pageSize = 2

	now := time.Now()
	logs, err := repo.Query(context.Background(), Query{From: now.Add(-time.Hour), To: now})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, "a3", logs[2].ID)

	require.Len(t, bodies, 2)
	assert.Nil(t, bodies[0]["search_after"])
	assert.Equal(t, []interface{}{float64(2), "a2"}, bodies[1]["search_after"])
}

func TestLogRepository(t *testing.T) {
	repo := NewLogRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Record(ctx, NewEntry(ActionCreate, EntityRule, "r1", nil)))
	logs, err := repo.Query(ctx, Query{})
	assert.NoError(t, err)
	assert.Empty(t, logs)
}

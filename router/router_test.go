package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/controller"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/router"
	"github.com/dev-mohitbeniwal/hazard/api/service"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

func newEngine(t *testing.T, client *redis.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	auditService := audit.NewService(audit.NewLogRepository())
	services, err := service.InitializeServices(
		dao.NewMemoryStore(),
		auditService,
		nil,
		nil,
		util.NewLocalLocker(time.Second),
		nil,
		nil,
		service.DefaultOptions(),
	)
	require.NoError(t, err)
	return router.SetupRouter(controller.InitializeControllers(services, auditService), client, limit, time.Minute)
}

func do(t *testing.T, engine *gin.Engine, method, path, body string, out interface{}) int {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if out != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

func TestRuleLifecycle(t *testing.T) {
	engine := newEngine(t, nil, 0)

	require.Equal(t, http.StatusCreated, do(t, engine, "POST", "/api/v1/observation-types",
		`{"id": "roof_type", "name": "Roof Type", "value_type": "ENUM"}`, nil))
	require.Equal(t, http.StatusCreated, do(t, engine, "POST", "/api/v1/observation-types/roof_type/values",
		`{"id": "roof_wood", "value": "Wood"}`, nil))
	require.Equal(t, http.StatusCreated, do(t, engine, "POST", "/api/v1/observation-types/roof_type/values",
		`{"id": "roof_metal", "value": "Metal"}`, nil))

	var rule model.Rule
	require.Equal(t, http.StatusCreated, do(t, engine, "POST", "/api/v1/rules", `{
		"name": "Wood roof",
		"functional_rule": {
			"join_operator": "AND",
			"conditions": [{"observation_type_id": "roof_type", "observation_value_ids": ["roof_wood"]}]
		}
	}`, &rule))
	assert.Equal(t, 1, rule.Version)

	var readable struct {
		Text string `json:"text"`
	}
	require.Equal(t, http.StatusOK, do(t, engine, "GET", "/api/v1/rules/"+rule.ID+"/human-readable", "", &readable))
	assert.Contains(t, readable.Text, "Roof Type")

	var result model.ProcessResult
	require.Equal(t, http.StatusCreated, do(t, engine, "POST", "/api/v1/property-assessments", `{
		"property_id": "p1",
		"assessed_at": "2024-02-01T00:00:00Z",
		"observations": [{"observation_type_id": "roof_type", "observation_value_id": "roof_wood"}]
	}`, &result))
	assert.Equal(t, []string{rule.ID}, result.TriggeredRules)
	require.Len(t, result.Created, 1)

	var vulnerabilities []model.Vulnerability
	require.Equal(t, http.StatusOK, do(t, engine, "GET", "/api/v1/vulnerabilities?property_id=p1", "", &vulnerabilities))
	require.Len(t, vulnerabilities, 1)
	assert.Equal(t, model.StatusOpen, vulnerabilities[0].Status)

	var updated struct {
		Rule           model.Rule            `json:"rule"`
		Reconciliation model.ReconcileResult `json:"reconciliation"`
	}
	require.Equal(t, http.StatusOK, do(t, engine, "PUT", "/api/v1/rules/"+rule.ID, `{
		"functional_rule": {
			"join_operator": "AND",
			"conditions": [{"observation_type_id": "roof_type", "observation_value_ids": ["roof_metal"]}]
		}
	}`, &updated))
	assert.Equal(t, 2, updated.Rule.Version)
	assert.Equal(t, 1, updated.Reconciliation.VulnerabilitiesChecked)
	assert.Equal(t, 1, updated.Reconciliation.VulnerabilitiesRemoved)

	require.Equal(t, http.StatusOK, do(t, engine, "GET", "/api/v1/vulnerabilities?property_id=p1", "", &vulnerabilities))
	assert.Empty(t, vulnerabilities)

	assert.Equal(t, http.StatusNoContent, do(t, engine, "DELETE", "/api/v1/rules/"+rule.ID, "", nil))
	assert.Equal(t, http.StatusNotFound, do(t, engine, "GET", "/api/v1/rules/"+rule.ID, "", nil))
}

func TestRuleRejectsUnknownCatalogReferences(t *testing.T) {
	engine := newEngine(t, nil, 0)

	var body struct {
		Error    string   `json:"error"`
		Problems []string `json:"problems"`
	}
	code := do(t, engine, "POST", "/api/v1/rules", `{
		"name": "",
		"functional_rule": {
			"join_operator": "AND",
			"conditions": [{"observation_type_id": "roof_type", "observation_value_ids": ["roof_wood"]}]
		}
	}`, &body)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid rule data", body.Error)
	assert.GreaterOrEqual(t, len(body.Problems), 2)
}

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	engine := newEngine(t, client, 2)

	assert.Equal(t, http.StatusOK, do(t, engine, "GET", "/healthz", "", nil))
	assert.Equal(t, http.StatusOK, do(t, engine, "GET", "/healthz", "", nil))
	assert.Equal(t, http.StatusTooManyRequests, do(t, engine, "GET", "/healthz", "", nil))
}

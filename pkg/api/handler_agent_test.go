package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentEndpoints(t *testing.T) {
	ts := newTestServer(t)

	t.Run("create applies defaults", func(t *testing.T) {
		agent := ts.createAgentViaAPI(t, "owner-token", "Alex")
		assert.Equal(t, "Alex", agent["name"])
		assert.Equal(t, "friendly", agent["tone"])
		assert.Equal(t, true, agent["is_active"])
		assert.NotEmpty(t, agent["id"])
	})

	t.Run("create without name is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/agents", gin.H{"company_name": "Acme"}, "owner-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list is scoped to the caller", func(t *testing.T) {
		ts.createAgentViaAPI(t, "other-token", "Foreign")

		rec := ts.request(t, http.MethodGet, "/api/agents", nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var agents []map[string]any
		decodeData(t, rec, &agents)
		for _, a := range agents {
			assert.NotEqual(t, "Foreign", a["name"])
		}
	})

	t.Run("get is public", func(t *testing.T) {
		agent := ts.createAgentViaAPI(t, "owner-token", "Public")

		rec := ts.request(t, http.MethodGet, "/api/agents/"+agent["id"].(string), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		decodeData(t, rec, &got)
		assert.Equal(t, "Public", got["name"])
	})

	t.Run("update is owner only", func(t *testing.T) {
		agent := ts.createAgentViaAPI(t, "owner-token", "Mine")
		id := agent["id"].(string)

		rec := ts.request(t, http.MethodPut, "/api/agents/"+id, gin.H{"name": "Hijacked"}, "other-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = ts.request(t, http.MethodPut, "/api/agents/"+id, gin.H{"name": "Renamed"}, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]any
		decodeData(t, rec, &got)
		assert.Equal(t, "Renamed", got["name"])
	})

	t.Run("delete removes the agent", func(t *testing.T) {
		agent := ts.createAgentViaAPI(t, "owner-token", "Doomed")
		id := agent["id"].(string)

		rec := ts.request(t, http.MethodDelete, "/api/agents/"+id, nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.request(t, http.MethodGet, "/api/agents/"+id, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown agent yields 404", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/agents/no-such-agent", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

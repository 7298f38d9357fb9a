package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/analytics"
)

func TestAnalyticsDashboard(t *testing.T) {
	ts := newTestServer(t)
	agent := ts.createAgentViaAPI(t, "owner-token", "Alex")
	agentID := agent["id"].(string)

	t.Run("empty dashboard has zeroed funnel", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/analytics/dashboard", nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var overview analytics.Overview
		decodeData(t, rec, &overview)
		assert.Zero(t, overview.Funnel.Visitors)
		assert.Len(t, overview.PeakHours, 24)
		require.Len(t, overview.Agents, 1)
		assert.Equal(t, agentID, overview.Agents[0].AgentID)
	})

	t.Run("conversations show up in the funnel", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/chat/"+agentID+"/message",
			gin.H{"message": "what do you sell?", "session_id": "dash-1"}, "")
		require.Equal(t, http.StatusOK, rec.Code)

		dash := ts.request(t, http.MethodGet, "/api/analytics/dashboard?agent_id="+agentID, nil, "owner-token")
		require.Equal(t, http.StatusOK, dash.Code)

		var overview analytics.Overview
		decodeData(t, dash, &overview)
		assert.Equal(t, 1, overview.Funnel.Visitors)
	})

	t.Run("foreign agent id is 404", func(t *testing.T) {
		foreign := ts.createAgentViaAPI(t, "other-token", "Foreign")

		rec := ts.request(t, http.MethodGet,
			"/api/analytics/dashboard?agent_id="+foreign["id"].(string), nil, "owner-token")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed window is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/analytics/dashboard?from=yesterday", nil, "owner-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

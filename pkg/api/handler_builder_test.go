package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func builderTurn(t *testing.T, ts *testServer, sessionID, message string) builderTurnResponse {
	t.Helper()
	rec := ts.request(t, http.MethodPost, "/api/conversational-builder/converse",
		gin.H{"session_id": sessionID, "message": message}, "owner-token")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out builderTurnResponse
	decodeData(t, rec, &out)
	return out
}

func TestBuilderEndpoints(t *testing.T) {
	ts := newTestServer(t)

	t.Run("full dialogue produces a live agent", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/conversational-builder/start", nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var start builderTurnResponse
		decodeData(t, rec, &start)
		require.NotEmpty(t, start.SessionID)
		assert.NotEmpty(t, start.Prompt)

		id := start.SessionID
		builderTurn(t, ts, id, "Acme Corp")
		builderTurn(t, ts, id, "We sell widgets.")
		builderTurn(t, ts, id, "Alex")
		builderTurn(t, ts, id, "skip")
		builderTurn(t, ts, id, "skip")
		builderTurn(t, ts, id, "skip")
		out := builderTurn(t, ts, id, "done")

		require.True(t, out.IsComplete)
		require.NotEmpty(t, out.AgentID)

		agentRec := ts.request(t, http.MethodGet, "/api/agents/"+out.AgentID, nil, "")
		require.Equal(t, http.StatusOK, agentRec.Code)

		var agent map[string]any
		decodeData(t, agentRec, &agent)
		assert.Equal(t, "Alex", agent["name"])
		assert.Equal(t, "Acme Corp", agent["company_name"])
	})

	t.Run("sessions are owner scoped", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/conversational-builder/start", nil, "owner-token")
		var start builderTurnResponse
		decodeData(t, rec, &start)

		foreign := ts.request(t, http.MethodPost, "/api/conversational-builder/converse",
			gin.H{"session_id": start.SessionID, "message": "Acme"}, "other-token")
		assert.Equal(t, http.StatusNotFound, foreign.Code)
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/conversational-builder/converse",
			gin.H{"session_id": "no-such-session", "message": "Acme"}, "owner-token")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/models"
)

func TestChatEndpoint(t *testing.T) {
	ts := newTestServer(t)
	agent := ts.createAgentViaAPI(t, "owner-token", "Alex")
	agentID := agent["id"].(string)

	t.Run("first message without session id gets one assigned", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/chat/"+agentID+"/message",
			gin.H{"message": "what do you sell?"}, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp chatMessageResponse
		decodeData(t, rec, &resp)
		assert.NotEmpty(t, resp.SessionID)
		assert.Equal(t, "Happy to help!", resp.Reply)
		assert.False(t, resp.FallbackUsed)
	})

	t.Run("turns accumulate on one session", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/chat/"+agentID+"/message",
			gin.H{"message": "tell me more", "session_id": "widget-1"}, "")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.request(t, http.MethodPost, "/api/chat/"+agentID+"/message",
			gin.H{"message": "and pricing?", "session_id": "widget-1"}, "")
		require.Equal(t, http.StatusOK, rec.Code)

		list := ts.request(t, http.MethodGet, "/api/conversations/agent/"+agentID, nil, "owner-token")
		require.Equal(t, http.StatusOK, list.Code)

		var conversations []struct {
			SessionID string `json:"session_id"`
			Messages  []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		decodeData(t, list, &conversations)

		var found bool
		for _, conv := range conversations {
			if conv.SessionID == "widget-1" {
				found = true
				require.Len(t, conv.Messages, 4, "two user turns and two replies")
				assert.Equal(t, "tell me more", conv.Messages[0].Content)
				assert.Equal(t, "assistant", conv.Messages[1].Role)
			}
		}
		assert.True(t, found)
	})

	t.Run("detached retry waits for the session lock", func(t *testing.T) {
		ctx := context.Background()
		conv, err := ts.server.deps.Conversations.GetOrCreate(ctx, agentID, "widget-retry")
		require.NoError(t, err)

		turns := []models.ChatMessage{
			{Role: models.RoleUser, Content: "are you open?", Timestamp: time.Now().UTC()},
			{Role: models.RoleAssistant, Content: "Happy to help!", Timestamp: time.Now().UTC()},
		}

		lock := ts.server.locks.lock(agentID, "widget-retry")
		lock.Lock()

		done := make(chan struct{})
		go func() {
			ts.server.retryAppend(agentID, "widget-retry", conv.ID, turns, nil)
			close(done)
		}()

		// The retry sleeps before retaking the lock; well past that delay
		// it must still be blocked behind the in-flight turn.
		select {
		case <-done:
			t.Fatal("retry appended while the session lock was held")
		case <-time.After(2500 * time.Millisecond):
		}
		lock.Unlock()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("retry never completed after the lock was released")
		}

		reloaded, err := ts.server.deps.Conversations.Get(ctx, "owner-1", conv.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Messages, 2)
		assert.Equal(t, "are you open?", reloaded.Messages[0].Content)
	})

	t.Run("missing message is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/chat/"+agentID+"/message",
			gin.H{"session_id": "widget-1"}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown agent is 404", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/chat/no-such-agent/message",
			gin.H{"message": "hello"}, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("deactivated agent is unavailable", func(t *testing.T) {
		inactive := ts.createAgentViaAPI(t, "owner-token", "Paused")
		id := inactive["id"].(string)

		rec := ts.request(t, http.MethodPut, "/api/agents/"+id,
			gin.H{"is_active": false}, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.request(t, http.MethodPost, "/api/chat/"+id+"/message",
			gin.H{"message": "hello"}, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingEndpoints(t *testing.T) {
	ts := newTestServer(t)
	agent := ts.createAgentViaAPI(t, "owner-token", "Alex")
	agentID := agent["id"].(string)

	t.Run("url source is accepted and queued", func(t *testing.T) {
		before := ts.queue.Depth()

		rec := ts.request(t, http.MethodPost, "/api/training/url",
			gin.H{"agent_id": agentID, "url": "https://example.com/catalog"}, "owner-token")
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		var row map[string]any
		decodeData(t, rec, &row)
		assert.Equal(t, "url", row["type"])
		assert.Equal(t, "processing", row["status"])
		assert.Equal(t, before+1, ts.queue.Depth())
	})

	t.Run("non http url is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/training/url",
			gin.H{"agent_id": agentID, "url": "ftp://example.com"}, "owner-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("faq batch is accepted", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/training/faq", gin.H{
			"agent_id": agentID,
			"faqs": []gin.H{
				{"question": "Do you ship?", "answer": "Yes, worldwide."},
			},
		}, "owner-token")
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		var row map[string]any
		decodeData(t, rec, &row)
		assert.Equal(t, "faq", row["type"])
	})

	t.Run("faq with empty answer is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/training/faq", gin.H{
			"agent_id": agentID,
			"faqs":     []gin.H{{"question": "Do you ship?", "answer": " "}},
		}, "owner-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign agent is forbidden", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/training/url",
			gin.H{"agent_id": agentID, "url": "https://example.com"}, "other-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list and delete", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/training/"+agentID+"/data", nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var listing struct {
			Items []map[string]any `json:"items"`
			Stats trainingStats    `json:"stats"`
		}
		decodeData(t, rec, &listing)
		require.NotEmpty(t, listing.Items)
		assert.Equal(t, len(listing.Items), listing.Stats.Total)
		assert.Equal(t, listing.Stats.Total, listing.Stats.Processing, "queue never started, all rows stay processing")

		id := listing.Items[0]["id"].(string)
		del := ts.request(t, http.MethodDelete, "/api/training/"+agentID+"/data?training_data_id="+id, nil, "owner-token")
		require.Equal(t, http.StatusOK, del.Code)

		rec = ts.request(t, http.MethodGet, "/api/training/"+agentID+"/data", nil, "owner-token")
		var after struct {
			Items []map[string]any `json:"items"`
		}
		decodeData(t, rec, &after)
		assert.Len(t, after.Items, len(listing.Items)-1)
	})

	t.Run("delete without id is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodDelete, "/api/training/"+agentID+"/data", nil, "owner-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

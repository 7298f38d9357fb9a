package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderEndpoints(t *testing.T) {
	ts := newTestServer(t)
	agent := ts.createAgentViaAPI(t, "owner-token", "Alex")
	agentID := agent["id"].(string)

	createOrder := func(t *testing.T) map[string]any {
		t.Helper()
		rec := ts.request(t, http.MethodPost, "/api/orders", gin.H{
			"agent_id":      agentID,
			"customer_name": "Jane",
			"items": []gin.H{
				{"product_id": "p1", "product_name": "Widget", "quantity": 2, "unit_price": 9.99},
			},
		}, "owner-token")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var order map[string]any
		decodeData(t, rec, &order)
		return order
	}

	t.Run("create assigns number and pending status", func(t *testing.T) {
		order := createOrder(t)
		assert.Regexp(t, `^ORD-\d{4}-\d{6}$`, order["order_number"])
		assert.Equal(t, "pending", order["status"])
		assert.InDelta(t, 19.98, order["total_amount"], 0.001)
	})

	t.Run("create without items is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/orders",
			gin.H{"agent_id": agentID}, "owner-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status transitions walk the allowed edges", func(t *testing.T) {
		order := createOrder(t)
		id := order["id"].(string)

		rec := ts.request(t, http.MethodPatch, "/api/orders/"+id+"/status",
			gin.H{"status": "confirmed"}, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		// Repeating the transition is no longer an allowed edge.
		rec = ts.request(t, http.MethodPatch, "/api/orders/"+id+"/status",
			gin.H{"status": "confirmed"}, "owner-token")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("foreign owner cannot touch the order", func(t *testing.T) {
		order := createOrder(t)
		id := order["id"].(string)

		rec := ts.request(t, http.MethodGet, "/api/orders/"+id, nil, "other-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = ts.request(t, http.MethodPatch, "/api/orders/"+id+"/status",
			gin.H{"status": "confirmed"}, "other-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("tracking is public and redacted", func(t *testing.T) {
		order := createOrder(t)

		rec := ts.request(t, http.MethodGet, "/api/orders/track/"+order["order_number"].(string), nil, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var tracked map[string]any
		decodeData(t, rec, &tracked)
		assert.Equal(t, order["order_number"], tracked["order_number"])
		assert.Equal(t, "pending", tracked["status"])
		assert.NotContains(t, tracked, "customer_name")
		assert.NotContains(t, tracked, "customer_email")
	})

	t.Run("tracking unknown number is 404", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/orders/track/ORD-2026-999999", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list filters by agent", func(t *testing.T) {
		rec := ts.request(t, http.MethodGet, "/api/orders?agent_id="+agentID, nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var orders []map[string]any
		decodeData(t, rec, &orders)
		assert.NotEmpty(t, orders)
	})
}

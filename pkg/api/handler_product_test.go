package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductEndpoints(t *testing.T) {
	ts := newTestServer(t)
	agent := ts.createAgentViaAPI(t, "owner-token", "Alex")
	agentID := agent["id"].(string)

	createProduct := func(t *testing.T, name string) map[string]any {
		t.Helper()
		rec := ts.request(t, http.MethodPost, "/api/products", gin.H{
			"agent_id": agentID,
			"name":     name,
			"price":    49.99,
			"currency": "EUR",
		}, "owner-token")
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var product map[string]any
		decodeData(t, rec, &product)
		return product
	}

	t.Run("create and list", func(t *testing.T) {
		product := createProduct(t, "Widget")
		assert.Equal(t, "EUR", product["currency"])
		assert.Equal(t, "in_stock", product["stock_status"])

		rec := ts.request(t, http.MethodGet, "/api/products/agent/"+agentID, nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var products []map[string]any
		decodeData(t, rec, &products)
		assert.NotEmpty(t, products)
	})

	t.Run("update is partial", func(t *testing.T) {
		product := createProduct(t, "Gadget")
		id := product["id"].(string)

		rec := ts.request(t, http.MethodPut, "/api/products/"+id,
			gin.H{"price": 59.99}, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		var updated map[string]any
		decodeData(t, rec, &updated)
		assert.InDelta(t, 59.99, updated["price"], 0.001)
		assert.Equal(t, "Gadget", updated["name"])
	})

	t.Run("foreign owner is rejected", func(t *testing.T) {
		rec := ts.request(t, http.MethodPost, "/api/products",
			gin.H{"agent_id": agentID, "name": "Stolen"}, "other-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("image upload records the public URL", func(t *testing.T) {
		product := createProduct(t, "Pictured")

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		require.NoError(t, form.WriteField("product_id", product["id"].(string)))
		part, err := form.CreateFormFile("image", "widget.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not-a-real-png"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/products/upload-image", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer owner-token")
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var updated map[string]any
		decodeData(t, rec, &updated)
		url, _ := updated["image_url"].(string)
		assert.True(t, strings.HasPrefix(url, "/uploads/"), "got %q", url)
		assert.True(t, strings.HasSuffix(url, ".png"))
	})

	t.Run("unsupported image extension is rejected", func(t *testing.T) {
		product := createProduct(t, "Scripted")

		var buf bytes.Buffer
		form := multipart.NewWriter(&buf)
		require.NoError(t, form.WriteField("product_id", product["id"].(string)))
		part, err := form.CreateFormFile("image", "payload.svg")
		require.NoError(t, err)
		_, err = part.Write([]byte("<svg/>"))
		require.NoError(t, err)
		require.NoError(t, form.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/products/upload-image", &buf)
		req.Header.Set("Content-Type", form.FormDataContentType())
		req.Header.Set("Authorization", "Bearer owner-token")
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		product := createProduct(t, "Doomed")
		id := product["id"].(string)

		rec := ts.request(t, http.MethodDelete, "/api/products/"+id, nil, "owner-token")
		require.Equal(t, http.StatusOK, rec.Code)

		rec = ts.request(t, http.MethodPut, "/api/products/"+id, gin.H{"price": 1.0}, "owner-token")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

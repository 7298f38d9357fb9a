package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/merxlab/merx/pkg/auth"
)

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer abc"))
	assert.Empty(t, bearerToken(""))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken("Bearer"))
}

// outageVerifier simulates an unreachable identity provider.
type outageVerifier struct{}

func (outageVerifier) Verify(_ context.Context, _ string) (string, error) {
	return "", errors.New("identity provider unreachable")
}

func runAuthMiddleware(t *testing.T, verifier auth.Verifier, header string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.GET("/probe", authMiddleware(verifier), func(c *gin.Context) {
		c.String(http.StatusOK, callerID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("valid token passes the caller through", func(t *testing.T) {
		rec := runAuthMiddleware(t, fakeVerifier{}, "Bearer owner-token")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "owner-1", rec.Body.String())
	})

	t.Run("missing header is 401", func(t *testing.T) {
		rec := runAuthMiddleware(t, fakeVerifier{}, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token is 401", func(t *testing.T) {
		rec := runAuthMiddleware(t, fakeVerifier{}, "Bearer bogus")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("provider outage is 503, not 401", func(t *testing.T) {
		rec := runAuthMiddleware(t, outageVerifier{}, "Bearer owner-token")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

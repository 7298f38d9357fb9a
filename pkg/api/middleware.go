package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/auth"
)

// ownerIDKey is the gin context key holding the verified caller id.
const ownerIDKey = "owner_id"

// requestLogger logs one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// authMiddleware verifies the bearer token and stores the caller id.
// Provider outages yield 503, not 401: the token was never judged.
func authMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			respondError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		ownerID, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				respondError(c, http.StatusUnauthorized, "invalid or expired token")
			} else {
				slog.Error("Token verification failed", "error", err)
				respondError(c, http.StatusServiceUnavailable, "authentication temporarily unavailable")
			}
			c.Abort()
			return
		}

		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// callerID returns the owner id set by authMiddleware.
func callerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}

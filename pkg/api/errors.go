package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/services"
	"github.com/merxlab/merx/pkg/vector"
)

// respondServiceError maps service layer errors onto HTTP statuses.
// Unrecognized errors are logged and surfaced as opaque 500s.
func respondServiceError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrForbidden):
		respondError(c, http.StatusForbidden, "access denied")
	case errors.Is(err, services.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrInvalidTransition):
		respondError(c, http.StatusConflict, "invalid state transition")
	case errors.Is(err, vector.ErrUnavailable):
		respondError(c, http.StatusServiceUnavailable, "knowledge index unavailable")
	default:
		slog.Error("Request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

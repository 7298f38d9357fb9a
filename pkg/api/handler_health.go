package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/database"
	"github.com/merxlab/merx/pkg/version"
)

type healthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	QueueDepth int                    `json:"queue_depth"`
}

// handleHealth reports liveness plus database and ingestion queue state. A
// failing database turns the whole report unhealthy with a 503.
func (s *Server) handleHealth(c *gin.Context) {
	resp := healthResponse{
		Status:     "healthy",
		Version:    version.Full(),
		QueueDepth: s.deps.Queue.Depth(),
	}

	db, err := s.deps.DB.Health(c.Request.Context())
	if err != nil {
		resp.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp.Database = db
	c.JSON(http.StatusOK, resp)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleAnalyticsDashboard serves the owner dashboard. Optional query
// parameters: agent_id narrows the scope, from/to bound the window.
func (s *Server) handleAnalyticsDashboard(c *gin.Context) {
	window, err := windowQuery(c)
	if err != nil {
		respondBadRequest(c, "invalid time window: "+err.Error())
		return
	}

	overview, err := s.deps.Analytics.Load(c.Request.Context(), callerID(c), c.Query("agent_id"), window)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, overview)
}

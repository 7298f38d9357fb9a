package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// successResponse is the envelope for every 2xx payload.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorResponse is the envelope for every error payload.
type errorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, successResponse{Success: true, Data: data})
}

func respondError(c *gin.Context, status int, detail string) {
	c.JSON(status, errorResponse{Success: false, Detail: detail})
}

func respondBadRequest(c *gin.Context, detail string) {
	respondError(c, http.StatusBadRequest, detail)
}

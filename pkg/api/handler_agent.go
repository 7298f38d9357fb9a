package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/services"
)

type createAgentRequest struct {
	Name               string              `json:"name" binding:"required"`
	CompanyName        string              `json:"company_name" binding:"required"`
	CompanyDescription string              `json:"company_description"`
	Tone               string              `json:"tone"`
	Language           string              `json:"language"`
	GreetingMessage    string              `json:"greeting_message"`
	SalesStrategy      string              `json:"sales_strategy"`
	Products           []models.ProductRef `json:"products"`
}

type updateAgentRequest struct {
	Name               *string              `json:"name"`
	CompanyName        *string              `json:"company_name"`
	CompanyDescription *string              `json:"company_description"`
	Tone               *string              `json:"tone"`
	Language           *string              `json:"language"`
	GreetingMessage    *string              `json:"greeting_message"`
	SalesStrategy      *string              `json:"sales_strategy"`
	Products           *[]models.ProductRef `json:"products"`
	IsActive           *bool                `json:"is_active"`
}

func (s *Server) handleCreateAgent(c *gin.Context) {
	var req createAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	agent, err := s.deps.Agents.Create(c.Request.Context(), callerID(c), services.AgentInput{
		Name:               req.Name,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Tone:               req.Tone,
		Language:           req.Language,
		GreetingMessage:    req.GreetingMessage,
		SalesStrategy:      req.SalesStrategy,
		Products:           req.Products,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusCreated, agent)
}

func (s *Server) handleListAgents(c *gin.Context) {
	agents, err := s.deps.Agents.List(c.Request.Context(), callerID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, paginate(agents, intQuery(c, "limit", 100), offsetQuery(c)))
}

// handleGetAgent is public so the chat widget can load the agent's greeting
// and name without credentials.
func (s *Server) handleGetAgent(c *gin.Context) {
	agent, err := s.deps.Agents.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, agent)
}

func (s *Server) handleUpdateAgent(c *gin.Context) {
	var req updateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	agent, err := s.deps.Agents.Update(c.Request.Context(), c.Param("id"), callerID(c), services.AgentUpdate{
		Name:               req.Name,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Tone:               req.Tone,
		Language:           req.Language,
		GreetingMessage:    req.GreetingMessage,
		SalesStrategy:      req.SalesStrategy,
		Products:           req.Products,
		IsActive:           req.IsActive,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, agent)
}

func (s *Server) handleDeleteAgent(c *gin.Context) {
	if err := s.deps.Agents.Delete(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

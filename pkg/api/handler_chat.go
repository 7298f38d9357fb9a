package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/merxlab/merx/pkg/models"
)

type chatMessageRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

type chatMessageResponse struct {
	SessionID    string `json:"session_id"`
	Reply        string `json:"reply"`
	FallbackUsed bool   `json:"fallback_used,omitempty"`
}

// handleChatMessage is the public widget endpoint. One mutex per
// (agent, session) serializes concurrent turns so history reads and appends
// do not interleave.
func (s *Server) handleChatMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	agentID := c.Param("agent_id")
	agent, err := s.deps.Agents.Get(c.Request.Context(), agentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !agent.IsActive {
		respondError(c, http.StatusNotFound, "agent is not available")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	lock := s.locks.lock(agentID, sessionID)
	lock.Lock()
	defer lock.Unlock()

	conv, err := s.deps.Conversations.GetOrCreate(c.Request.Context(), agentID, sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	result := s.deps.Orchestrator.Turn(c.Request.Context(), agent, conv.Messages, req.Message)

	now := time.Now().UTC()
	turns := []models.ChatMessage{
		{Role: models.RoleUser, Content: req.Message, Timestamp: now},
		{Role: models.RoleAssistant, Content: result.Reply, Timestamp: now},
	}

	if _, err := s.deps.Conversations.AppendTurns(c.Request.Context(), conv.ID, turns, result.LeadDelta); err != nil {
		// The visitor already has their answer; losing one transcript write
		// must not turn into a failed chat turn. Flag it and retry once off
		// the request path.
		slog.Error("Failed to persist chat turn", "conversation_id", conv.ID, "error", err)
		c.Header("x-persistence-degraded", "true")
		go s.retryAppend(agentID, sessionID, conv.ID, turns, result.LeadDelta)
	}

	respondData(c, http.StatusOK, chatMessageResponse{
		SessionID:    sessionID,
		Reply:        result.Reply,
		FallbackUsed: result.FallbackUsed,
	})
}

// retryAppend makes one detached attempt to persist a turn that failed on
// the request path. It retakes the session lock so the append cannot
// interleave with a later turn's read of the transcript.
func (s *Server) retryAppend(agentID, sessionID, conversationID string, turns []models.ChatMessage, leadDelta *models.LeadInfo) {
	time.Sleep(2 * time.Second)

	lock := s.locks.lock(agentID, sessionID)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := s.deps.Conversations.AppendTurns(ctx, conversationID, turns, leadDelta); err != nil {
		slog.Error("Chat turn lost after retry", "conversation_id", conversationID, "error", err)
	}
}

func (s *Server) handleListConversations(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	conversations, err := s.deps.Conversations.List(c.Request.Context(), callerID(c), c.Param("agent_id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, paginate(conversations, limit, offsetQuery(c)))
}

func (s *Server) handleGetConversation(c *gin.Context) {
	conversation, err := s.deps.Conversations.Get(c.Request.Context(), callerID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, conversation)
}

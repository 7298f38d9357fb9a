package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type builderConverseRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type builderTurnResponse struct {
	SessionID  string `json:"session_id"`
	Prompt     string `json:"prompt"`
	Phase      string `json:"phase"`
	IsComplete bool   `json:"is_complete"`
	AgentID    string `json:"agent_id,omitempty"`
}

func (s *Server) handleBuilderStart(c *gin.Context) {
	out := s.deps.Builder.Start(callerID(c))
	respondData(c, http.StatusOK, builderTurnResponse{
		SessionID: out.SessionID,
		Prompt:    out.Prompt,
		Phase:     string(out.Phase),
	})
}

func (s *Server) handleBuilderConverse(c *gin.Context) {
	var req builderConverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	out, err := s.deps.Builder.Converse(c.Request.Context(), req.SessionID, callerID(c), req.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, builderTurnResponse{
		SessionID:  out.SessionID,
		Prompt:     out.Prompt,
		Phase:      string(out.Phase),
		IsComplete: out.IsComplete,
		AgentID:    out.AgentID,
	})
}

// handleBuilderUpload extracts a document's text into the session draft. The
// ingestion job is created later, when the draft materializes into an agent.
func (s *Server) handleBuilderUpload(c *gin.Context) {
	sessionID := c.PostForm("session_id")
	if sessionID == "" {
		respondBadRequest(c, "session_id is required")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "file is required")
		return
	}
	if file.Size > s.deps.Config.Uploads.MaxBytes {
		respondError(c, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	reader, err := file.Open()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	text, err := s.deps.Processor.ExtractPDFText(data, file.Filename)
	if err != nil {
		respondBadRequest(c, "could not extract text from document: "+err.Error())
		return
	}

	if err := s.deps.Builder.AttachDocument(sessionID, callerID(c), file.Filename, text); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"filename": file.Filename, "status": "pending"})
}

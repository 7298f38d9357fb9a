package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/trainingdata"
	"github.com/merxlab/merx/pkg/ingest"
	"github.com/merxlab/merx/pkg/services"
)

type trainURLRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
	URL     string `json:"url" binding:"required"`
}

type trainFAQRequest struct {
	AgentID string       `json:"agent_id" binding:"required"`
	FAQs    []ingest.FAQ `json:"faqs" binding:"required"`
}

// handleTrainPDF accepts a PDF upload, validates that text can be extracted,
// and hands the document to the ingestion workers.
func (s *Server) handleTrainPDF(c *gin.Context) {
	agentID := c.PostForm("agent_id")
	if agentID == "" {
		respondBadRequest(c, "agent_id is required")
		return
	}
	if _, err := s.deps.Agents.GetOwned(c.Request.Context(), agentID, callerID(c)); err != nil {
		respondServiceError(c, err)
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

	// Reject unreadable PDFs before creating a training row. The workers
	// re-run extraction; a second failure there would strand a row in
	// processing until recovery.
	if _, err := s.deps.Processor.ProcessPDF(data, file.Filename); err != nil {
		respondBadRequest(c, "could not extract text from PDF: "+err.Error())
		return
	}

	s.enqueueTraining(c, agentID, services.TrainingTypePDF,
		map[string]interface{}{"filename": file.Filename, "size_bytes": file.Size},
		ingest.Source{Type: ingest.SourcePDF, Filename: file.Filename, PDF: data})
}

func (s *Server) handleTrainURL(c *gin.Context) {
	var req trainURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		respondBadRequest(c, "url must start with http:// or https://")
		return
	}
	if _, err := s.deps.Agents.GetOwned(c.Request.Context(), req.AgentID, callerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	s.enqueueTraining(c, req.AgentID, services.TrainingTypeURL,
		map[string]interface{}{"url": req.URL},
		ingest.Source{Type: ingest.SourceURL, URL: req.URL})
}

func (s *Server) handleTrainFAQ(c *gin.Context) {
	var req trainFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if len(req.FAQs) == 0 {
		respondBadRequest(c, "at least one question/answer pair is required")
		return
	}
	for _, faq := range req.FAQs {
		if strings.TrimSpace(faq.Question) == "" || strings.TrimSpace(faq.Answer) == "" {
			respondBadRequest(c, "every pair needs a question and an answer")
			return
		}
	}
	if _, err := s.deps.Agents.GetOwned(c.Request.Context(), req.AgentID, callerID(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	s.enqueueTraining(c, req.AgentID, services.TrainingTypeFAQ,
		map[string]interface{}{"pairs": len(req.FAQs)},
		ingest.Source{Type: ingest.SourceFAQ, Filename: "faq-upload", FAQs: req.FAQs})
}

// enqueueTraining creates a processing row and submits the job. A rejected
// job fails the row immediately so it never sits in processing with no
// worker attached.
func (s *Server) enqueueTraining(c *gin.Context, agentID, rowType string, metadata map[string]interface{}, source ingest.Source) {
	row, err := s.deps.Training.CreatePending(c.Request.Context(), agentID, rowType, metadata)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	err = s.deps.Queue.Enqueue(ingest.Job{
		TrainingDataID: row.ID,
		AgentID:        agentID,
		Source:         source,
	})
	if err != nil {
		_ = s.deps.Training.MarkFailed(c.Request.Context(), row.ID, err.Error())
		switch {
		case errors.Is(err, ingest.ErrQueueFull):
			respondError(c, http.StatusTooManyRequests, "ingestion queue is full, retry later")
		case errors.Is(err, ingest.ErrShuttingDown):
			respondError(c, http.StatusServiceUnavailable, "server is shutting down")
		default:
			respondServiceError(c, err)
		}
		return
	}

	respondData(c, http.StatusAccepted, row)
}

// trainingStats summarizes an agent's knowledge base for the dashboard.
type trainingStats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Processing   int `json:"processing"`
	Failed       int `json:"failed"`
	VectorChunks int `json:"vector_chunks"`
}

type trainingListResponse struct {
	Items []*ent.TrainingData `json:"items"`
	Stats trainingStats       `json:"stats"`
}

func (s *Server) handleListTraining(c *gin.Context) {
	agentID := c.Param("agent_id")
	rows, err := s.deps.Training.List(c.Request.Context(), callerID(c), agentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	stats := trainingStats{Total: len(rows)}
	for _, row := range rows {
		switch row.Status {
		case trainingdata.StatusCompleted:
			stats.Completed++
		case trainingdata.StatusProcessing:
			stats.Processing++
		case trainingdata.StatusFailed:
			stats.Failed++
		}
	}
	// The chunk count is cosmetic; a momentarily unreachable index must not
	// fail the listing.
	if count, err := s.deps.Vectors.CountByAgent(c.Request.Context(), agentID); err == nil {
		stats.VectorChunks = count
	}

	respondData(c, http.StatusOK, trainingListResponse{
		Items: paginate(rows, intQuery(c, "limit", 100), offsetQuery(c)),
		Stats: stats,
	})
}

func (s *Server) handleDeleteTraining(c *gin.Context) {
	trainingDataID := c.Query("training_data_id")
	if trainingDataID == "" {
		respondBadRequest(c, "training_data_id is required")
		return
	}
	if err := s.deps.Training.Delete(c.Request.Context(), callerID(c), trainingDataID); err != nil {
		respondServiceError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

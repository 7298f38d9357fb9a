package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/trainingdata"
	"github.com/merxlab/merx/pkg/vector"
)

// Training row types, matching the schema enum.
const (
	TrainingTypePDF  = "pdf"
	TrainingTypeURL  = "url"
	TrainingTypeFAQ  = "faq"
	TrainingTypeText = "text"
)

// TrainingService manages training rows and their linked vector entries.
// It also serves as the ingestion pipeline's status store.
type TrainingService struct {
	client  *ent.Client
	vectors VectorIndex
}

// NewTrainingService creates a new TrainingService
func NewTrainingService(client *ent.Client, vectors VectorIndex) *TrainingService {
	return &TrainingService{client: client, vectors: vectors}
}

// CreatePending inserts a new row in status processing. The row id is the
// vector source_id of everything the job will index.
func (s *TrainingService) CreatePending(httpCtx context.Context, agentID, rowType string, metadata map[string]interface{}) (*ent.TrainingData, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	typ := trainingdata.Type(rowType)
	if err := trainingdata.TypeValidator(typ); err != nil {
		return nil, NewValidationError("type", "must be pdf, url, faq or text")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.TrainingData.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetType(typ).
		SetStatus(trainingdata.StatusProcessing)
	if len(metadata) > 0 {
		builder.SetMetadata(metadata)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create training row: %w", err)
	}
	return created, nil
}

// List returns an owned agent's training rows, newest first.
func (s *TrainingService) List(ctx context.Context, ownerID, agentID string) ([]*ent.TrainingData, error) {
	if err := s.checkOwner(ctx, ownerID, agentID); err != nil {
		return nil, err
	}
	rows, err := s.client.TrainingData.Query().
		Where(trainingdata.AgentIDEQ(agentID)).
		Order(ent.Desc(trainingdata.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list training rows: %w", err)
	}
	return rows, nil
}

// Delete removes an owned training row and the vector entries it produced.
func (s *TrainingService) Delete(httpCtx context.Context, ownerID, trainingDataID string) error {
	row, err := s.client.TrainingData.Query().
		Where(trainingdata.IDEQ(trainingDataID)).
		Only(httpCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get training row: %w", err)
	}
	if err := s.checkOwner(httpCtx, ownerID, row.AgentID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.client.TrainingData.DeleteOneID(trainingDataID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete training row: %w", err)
	}

	if err := s.vectors.DeleteByFilter(ctx, vector.Filter{SourceID: trainingDataID}); err != nil {
		return fmt.Errorf("training row deleted but vector cleanup failed: %w", err)
	}
	return nil
}

// MarkCompleted flips a processing row to completed and records the chunk
// count. Rows already out of processing are left untouched.
func (s *TrainingService) MarkCompleted(ctx context.Context, trainingDataID string, chunksCreated int) error {
	return s.finish(ctx, trainingDataID, trainingdata.StatusCompleted, map[string]interface{}{
		"chunks_created": chunksCreated,
	})
}

// MarkFailed flips a processing row to failed and records the reason.
func (s *TrainingService) MarkFailed(ctx context.Context, trainingDataID string, reason string) error {
	return s.finish(ctx, trainingDataID, trainingdata.StatusFailed, map[string]interface{}{
		"error": reason,
	})
}

// finish performs the guarded processing -> terminal transition, merging the
// outcome fields into the row's metadata.
func (s *TrainingService) finish(callerCtx context.Context, trainingDataID string, status trainingdata.Status, outcome map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.TrainingData.Query().
		Where(trainingdata.IDEQ(trainingDataID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load training row: %w", err)
	}
	if row.Status != trainingdata.StatusProcessing {
		return ErrInvalidTransition
	}

	metadata := row.Metadata
	if metadata == nil {
		metadata = make(map[string]interface{}, len(outcome))
	}
	for k, v := range outcome {
		metadata[k] = v
	}

	count, err := s.client.TrainingData.Update().
		Where(
			trainingdata.IDEQ(trainingDataID),
			trainingdata.StatusEQ(trainingdata.StatusProcessing),
		).
		SetStatus(status).
		SetMetadata(metadata).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish training row: %w", err)
	}
	if count == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (s *TrainingService) checkOwner(ctx context.Context, ownerID, agentID string) error {
	found, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		Select(agent.FieldOwnerID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check agent ownership: %w", err)
	}
	if found.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}

package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/vector"
)

// Embedder turns chunk text into vectors. Implemented by llm.Client.
type Embedder interface {
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Index receives the embedded chunks. Implemented by vector.Store.
type Index interface {
	Upsert(ctx context.Context, entries []vector.Entry) error
	DeleteByFilter(ctx context.Context, f vector.Filter) error
}

// StatusStore records the outcome on the training row. Implemented by
// services.TrainingService.
type StatusStore interface {
	MarkCompleted(ctx context.Context, trainingDataID string, chunksCreated int) error
	MarkFailed(ctx context.Context, trainingDataID string, reason string) error
}

// Source is the raw material of one ingestion job. Type selects which of the
// remaining fields is meaningful.
type Source struct {
	Type     string
	Filename string
	URL      string
	Text     string
	FAQs     []FAQ
	PDF      []byte
}

// Job is one unit of ingestion work. The training row already exists with
// status processing when the job is enqueued.
type Job struct {
	TrainingDataID string
	AgentID        string
	Source         Source
}

// Pipeline executes ingestion jobs: process, embed, upsert, record outcome.
type Pipeline struct {
	processor *Processor
	embedder  Embedder
	index     Index
	status    StatusStore
	cfg       *config.IngestConfig
}

// NewPipeline wires the ingestion stages together.
func NewPipeline(processor *Processor, embedder Embedder, index Index, status StatusStore, cfg *config.IngestConfig) *Pipeline {
	return &Pipeline{
		processor: processor,
		embedder:  embedder,
		index:     index,
		status:    status,
		cfg:       cfg,
	}
}

// Run executes one job to completion. Any failure marks the row failed and
// deletes partial vectors already upserted under the row's source filter.
func (p *Pipeline) Run(ctx context.Context, job Job) {
	start := time.Now()

	chunks, err := p.process(ctx, job.Source)
	if err != nil {
		p.fail(ctx, job, fmt.Errorf("process: %w", err))
		return
	}
	if len(chunks) == 0 {
		p.fail(ctx, job, fmt.Errorf("source produced no chunks"))
		return
	}

	if err := p.embedAndUpsert(ctx, job, chunks); err != nil {
		p.fail(ctx, job, err)
		return
	}

	if err := p.status.MarkCompleted(ctx, job.TrainingDataID, len(chunks)); err != nil {
		slog.Error("Failed to mark training row completed",
			"training_data_id", job.TrainingDataID,
			"error", err)
		return
	}

	slog.Info("Ingestion completed",
		"training_data_id", job.TrainingDataID,
		"agent_id", job.AgentID,
		"source_type", job.Source.Type,
		"chunks", len(chunks),
		"duration_ms", time.Since(start).Milliseconds())
}

func (p *Pipeline) process(ctx context.Context, src Source) ([]Chunk, error) {
	switch src.Type {
	case SourcePDF:
		return p.processor.ProcessPDF(src.PDF, src.Filename)
	case SourceURL:
		return p.processor.ProcessURL(ctx, src.URL)
	case SourceFAQ:
		return p.processor.ProcessFAQ(src.FAQs, src.Filename), nil
	case SourceText:
		return p.processor.ProcessText(src.Text, src.Filename), nil
	default:
		return nil, fmt.Errorf("unknown source type %q", src.Type)
	}
}

// embedAndUpsert embeds chunks and writes vectors in batches of at most
// EmbedBatchSize entries.
func (p *Pipeline) embedAndUpsert(ctx context.Context, job Job, chunks []Chunk) error {
	batchSize := p.cfg.EmbedBatchSize
	for start := 0; start < len(chunks); start += batchSize {
		end := start + batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Text
		}

		vectors, err := p.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return fmt.Errorf("embed batch at %d: %w", start, err)
		}

		entries := make([]vector.Entry, len(batch))
		for i, c := range batch {
			entries[i] = vector.Entry{
				// Deterministic per (row, chunk): re-ingesting the same row
				// id overwrites instead of duplicating.
				ID:        fmt.Sprintf("%s_%d", job.TrainingDataID, c.Index),
				Embedding: vectors[i],
				Payload: vector.Payload{
					AgentID:    job.AgentID,
					SourceID:   job.TrainingDataID,
					SourceType: c.SourceType,
					ChunkIndex: c.Index,
					Text:       c.Text,
				},
			}
		}

		if err := p.index.Upsert(ctx, entries); err != nil {
			return fmt.Errorf("upsert batch at %d: %w", start, err)
		}
	}
	return nil
}

// fail records the failure and removes partial vectors. Cleanup uses a fresh
// context so a cancelled job still leaves no orphaned vectors behind.
func (p *Pipeline) fail(ctx context.Context, job Job, cause error) {
	slog.Warn("Ingestion failed",
		"training_data_id", job.TrainingDataID,
		"agent_id", job.AgentID,
		"source_type", job.Source.Type,
		"error", cause)

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()

	if err := p.index.DeleteByFilter(cleanupCtx, vector.Filter{SourceID: job.TrainingDataID}); err != nil {
		slog.Error("Failed to delete partial vectors",
			"training_data_id", job.TrainingDataID,
			"error", err)
	}

	if err := p.status.MarkFailed(cleanupCtx, job.TrainingDataID, cause.Error()); err != nil {
		slog.Error("Failed to mark training row failed",
			"training_data_id", job.TrainingDataID,
			"error", err)
	}
}

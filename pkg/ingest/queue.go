package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/merxlab/merx/pkg/config"
)

var (
	// ErrShuttingDown is returned by Enqueue after Stop has been called.
	ErrShuttingDown = errors.New("ingestion queue is shutting down")

	// ErrDuplicateJob is returned when the training row already has a job
	// queued or running. At most one ingestion runs per training_data id.
	ErrDuplicateJob = errors.New("ingestion already in flight for this training row")

	// ErrQueueFull is returned when the queue has no capacity left.
	ErrQueueFull = errors.New("ingestion queue is full")
)

// Queue is a bounded in-memory job queue with a fixed worker pool. Jobs are
// detached from the HTTP requests that enqueue them; on graceful shutdown the
// queue stops accepting work and drains what it holds.
type Queue struct {
	pipeline *Pipeline
	jobs     chan Job

	workerCount int
	baseCtx     context.Context
	stopOnce    sync.Once
	wg          sync.WaitGroup

	mu       sync.Mutex
	closed   bool
	inflight map[string]struct{}
}

// NewQueue creates the queue. Call Start before enqueueing.
func NewQueue(pipeline *Pipeline, cfg *config.IngestConfig) *Queue {
	return &Queue{
		pipeline:    pipeline,
		jobs:        make(chan Job, cfg.QueueCapacity),
		workerCount: cfg.WorkerCount,
		inflight:    make(map[string]struct{}),
	}
}

// Start spawns the worker goroutines. ctx bounds job execution; it should
// outlive requests (typically the process context).
func (q *Queue) Start(ctx context.Context) {
	q.baseCtx = ctx

	slog.Info("Starting ingestion workers", "worker_count", q.workerCount)
	for i := 0; i < q.workerCount; i++ {
		q.wg.Add(1)
		go func(id int) {
			defer q.wg.Done()
			q.runWorker(id)
		}(i)
	}
}

func (q *Queue) runWorker(id int) {
	// The channel is closed by Stop; ranging drains queued jobs first.
	for job := range q.jobs {
		q.pipeline.Run(q.baseCtx, job)

		q.mu.Lock()
		delete(q.inflight, job.TrainingDataID)
		q.mu.Unlock()
	}
	slog.Debug("Ingestion worker exited", "worker", id)
}

// Enqueue submits a job. It never blocks: a full queue is reported to the
// caller instead of stalling the request handler.
func (q *Queue) Enqueue(job Job) error {
	if job.TrainingDataID == "" || job.AgentID == "" {
		return fmt.Errorf("enqueue: training data id and agent id are required")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrShuttingDown
	}
	if _, dup := q.inflight[job.TrainingDataID]; dup {
		return ErrDuplicateJob
	}

	select {
	case q.jobs <- job:
		q.inflight[job.TrainingDataID] = struct{}{}
		return nil
	default:
		return ErrQueueFull
	}
}

// Depth reports queued-but-unstarted jobs, for health reporting.
func (q *Queue) Depth() int {
	return len(q.jobs)
}

// Stop closes the queue and waits for the workers to drain it. Jobs already
// accepted are finished, not abandoned.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		q.mu.Lock()
		q.closed = true
		q.mu.Unlock()

		close(q.jobs)

		slog.Info("Draining ingestion queue", "queued", len(q.jobs))
		q.wg.Wait()
		slog.Info("Ingestion queue stopped")
	})
}

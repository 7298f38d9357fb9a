package ingest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/config"
)

func newTestQueue(t *testing.T, workers, capacity int) (*Queue, *fakeStatus) {
	t.Helper()

	status := newFakeStatus()
	cfg := &config.IngestConfig{
		WorkerCount:     workers,
		QueueCapacity:   capacity,
		ChunkSize:       100,
		ChunkOverlap:    20,
		EmbedBatchSize:  64,
		URLFetchTimeout: time.Second,
	}
	pipeline := NewPipeline(NewProcessor(cfg), &fakeEmbedder{}, &fakeIndex{}, status, cfg)
	return NewQueue(pipeline, cfg), status
}

func textJob(id string) Job {
	return Job{
		TrainingDataID: id,
		AgentID:        "agent-1",
		Source:         Source{Type: SourceText, Filename: "manual", Text: "knowledge"},
	}
}

func waitForCompleted(t *testing.T, status *fakeStatus, id string) {
	t.Helper()
	require.Eventually(t, func() bool {
		status.mu.Lock()
		defer status.mu.Unlock()
		_, ok := status.completed[id]
		return ok
	}, 2*time.Second, 5*time.Millisecond)
}

func TestQueueRunsJobs(t *testing.T) {
	q, status := newTestQueue(t, 2, 8)
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(textJob("td-1")))
	require.NoError(t, q.Enqueue(textJob("td-2")))

	waitForCompleted(t, status, "td-1")
	waitForCompleted(t, status, "td-2")
}

func TestQueueRejectsDuplicateInFlight(t *testing.T) {
	q, _ := newTestQueue(t, 1, 8)
	// Not started: jobs stay queued, so the duplicate check is deterministic.

	require.NoError(t, q.Enqueue(textJob("td-1")))
	err := q.Enqueue(textJob("td-1"))
	assert.ErrorIs(t, err, ErrDuplicateJob)

	// A different row is still accepted.
	assert.NoError(t, q.Enqueue(textJob("td-2")))
}

func TestQueueRejectsWhenFull(t *testing.T) {
	q, _ := newTestQueue(t, 1, 1)

	require.NoError(t, q.Enqueue(textJob("td-1")))
	err := q.Enqueue(textJob("td-2"))
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestQueueDrainsOnStop(t *testing.T) {
	q, status := newTestQueue(t, 1, 8)

	require.NoError(t, q.Enqueue(textJob("td-1")))
	require.NoError(t, q.Enqueue(textJob("td-2")))
	require.NoError(t, q.Enqueue(textJob("td-3")))

	q.Start(context.Background())
	q.Stop() // must block until queued jobs finish

	status.mu.Lock()
	defer status.mu.Unlock()
	assert.Len(t, status.completed, 3)
}

func TestQueueRejectsAfterStop(t *testing.T) {
	q, _ := newTestQueue(t, 1, 8)
	q.Start(context.Background())
	q.Stop()

	err := q.Enqueue(textJob("td-9"))
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestQueueEnqueueValidation(t *testing.T) {
	q, _ := newTestQueue(t, 1, 8)

	assert.Error(t, q.Enqueue(Job{AgentID: "a"}))
	assert.Error(t, q.Enqueue(Job{TrainingDataID: "td"}))
}

func TestQueueConcurrentEnqueue(t *testing.T) {
	q, status := newTestQueue(t, 4, 64)
	q.Start(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = q.Enqueue(textJob("td-" + string(rune('a'+n))))
		}(i)
	}
	wg.Wait()
	q.Stop()

	status.mu.Lock()
	defer status.mu.Unlock()
	assert.Len(t, status.completed, 16)
}

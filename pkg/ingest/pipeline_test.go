package ingest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/config"
	"github.com/merxlab/merx/pkg/vector"
)

type fakeEmbedder struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, texts)
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

type fakeIndex struct {
	mu       sync.Mutex
	upserted []vector.Entry
	deleted  []vector.Filter
	upsertEr error
}

func (f *fakeIndex) Upsert(_ context.Context, entries []vector.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertEr != nil {
		return f.upsertEr
	}
	f.upserted = append(f.upserted, entries...)
	return nil
}

func (f *fakeIndex) DeleteByFilter(_ context.Context, filter vector.Filter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, filter)
	return nil
}

type fakeStatus struct {
	mu        sync.Mutex
	completed map[string]int
	failed    map[string]string
}

func newFakeStatus() *fakeStatus {
	return &fakeStatus{completed: map[string]int{}, failed: map[string]string{}}
}

func (f *fakeStatus) MarkCompleted(_ context.Context, id string, chunks int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed[id] = chunks
	return nil
}

func (f *fakeStatus) MarkFailed(_ context.Context, id string, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed[id] = reason
	return nil
}

func testPipeline(embedder *fakeEmbedder, index *fakeIndex, status *fakeStatus) *Pipeline {
	cfg := &config.IngestConfig{
		ChunkSize:       100,
		ChunkOverlap:    20,
		EmbedBatchSize:  2,
		URLFetchTimeout: time.Second,
	}
	return NewPipeline(NewProcessor(cfg), embedder, index, status, cfg)
}

func TestPipelineRunSuccess(t *testing.T) {
	embedder := &fakeEmbedder{}
	index := &fakeIndex{}
	status := newFakeStatus()
	p := testPipeline(embedder, index, status)

	p.Run(context.Background(), Job{
		TrainingDataID: "td-1",
		AgentID:        "agent-1",
		Source: Source{
			Type:     SourceFAQ,
			Filename: "faq",
			FAQs: []FAQ{
				{Question: "Q1", Answer: "A1"},
				{Question: "Q2", Answer: "A2"},
				{Question: "Q3", Answer: "A3"},
			},
		},
	})

	require.Len(t, index.upserted, 3)
	for i, e := range index.upserted {
		assert.Equal(t, fmt.Sprintf("td-1_%d", i), e.ID)
		assert.Equal(t, "agent-1", e.Payload.AgentID)
		assert.Equal(t, "td-1", e.Payload.SourceID)
		assert.Equal(t, i, e.Payload.ChunkIndex)
	}

	// Batch size 2: 3 chunks need 2 embed calls.
	assert.Len(t, embedder.calls, 2)

	assert.Equal(t, 3, status.completed["td-1"])
	assert.Empty(t, status.failed)
	assert.Empty(t, index.deleted)
}

func TestPipelineEmbedFailureMarksFailedAndCleansUp(t *testing.T) {
	embedder := &fakeEmbedder{err: fmt.Errorf("provider down")}
	index := &fakeIndex{}
	status := newFakeStatus()
	p := testPipeline(embedder, index, status)

	p.Run(context.Background(), Job{
		TrainingDataID: "td-2",
		AgentID:        "agent-1",
		Source:         Source{Type: SourceText, Filename: "manual", Text: "some knowledge"},
	})

	assert.Contains(t, status.failed["td-2"], "provider down")
	assert.Empty(t, status.completed)

	// Partial vectors are removed by source filter.
	require.Len(t, index.deleted, 1)
	assert.Equal(t, vector.Filter{SourceID: "td-2"}, index.deleted[0])
}

func TestPipelineUpsertFailureMarksFailed(t *testing.T) {
	embedder := &fakeEmbedder{}
	index := &fakeIndex{upsertEr: fmt.Errorf("index offline")}
	status := newFakeStatus()
	p := testPipeline(embedder, index, status)

	p.Run(context.Background(), Job{
		TrainingDataID: "td-3",
		AgentID:        "agent-1",
		Source:         Source{Type: SourceText, Filename: "manual", Text: strings.Repeat("k", 50)},
	})

	assert.Contains(t, status.failed["td-3"], "index offline")
	require.Len(t, index.deleted, 1)
	assert.Equal(t, "td-3", index.deleted[0].SourceID)
}

func TestPipelineUnknownSourceType(t *testing.T) {
	embedder := &fakeEmbedder{}
	index := &fakeIndex{}
	status := newFakeStatus()
	p := testPipeline(embedder, index, status)

	p.Run(context.Background(), Job{
		TrainingDataID: "td-4",
		AgentID:        "agent-1",
		Source:         Source{Type: "carrier-pigeon"},
	})

	assert.Contains(t, status.failed["td-4"], "unknown source type")
}

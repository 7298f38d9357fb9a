package vector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreRejectsBadCollectionName(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		wantErr    bool
	}{
		{"valid", "vector_entries", false},
		{"valid with digits", "vectors_v2", false},
		{"uppercase", "Vectors", true},
		{"leading digit", "2vectors", true},
		{"sql injection", "vectors; DROP TABLE agents", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, !tt.wantErr, identifierPattern.MatchString(tt.collection))
		})
	}
}

func TestVectorLiteral(t *testing.T) {
	assert.Equal(t, "[1,2.5,-0.25]", vectorLiteral([]float32{1, 2.5, -0.25}))
	assert.Equal(t, "[]", vectorLiteral(nil))
}

func TestFilterClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		start     int
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "agent only",
			filter:    Filter{AgentID: "a1"},
			start:     2,
			wantWhere: "agent_id = $2",
			wantArgs:  []any{"a1"},
		},
		{
			name:      "source only",
			filter:    Filter{SourceID: "t1"},
			start:     1,
			wantWhere: "source_id = $1",
			wantArgs:  []any{"t1"},
		},
		{
			name:      "both",
			filter:    Filter{AgentID: "a1", SourceID: "t1"},
			start:     1,
			wantWhere: "agent_id = $1 AND source_id = $2",
			wantArgs:  []any{"a1", "t1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := filterClause(tt.filter, tt.start)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestUpsertRejectsDimensionMismatch(t *testing.T) {
	s := &Store{table: "vector_entries", dim: 3, counts: newCountCache(time.Minute)}

	err := s.Upsert(context.Background(), []Entry{
		{ID: "e1", Embedding: []float32{1, 2}, Payload: Payload{AgentID: "a1"}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearchRequiresFilter(t *testing.T) {
	s := &Store{table: "vector_entries", dim: 3, counts: newCountCache(time.Minute)}

	_, err := s.Search(context.Background(), []float32{1, 2, 3}, 3, Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDeleteRequiresFilter(t *testing.T) {
	s := &Store{table: "vector_entries", dim: 3, counts: newCountCache(time.Minute)}

	err := s.DeleteByFilter(context.Background(), Filter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/pkg/vector"
)

// fakeVectorIndex records delete filters so tests can assert on vector
// cleanup without a pgvector-backed store.
type fakeVectorIndex struct {
	mu      sync.Mutex
	deleted []vector.Filter
	err     error
}

func (f *fakeVectorIndex) DeleteByFilter(_ context.Context, filter vector.Filter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, filter)
	return nil
}

func (f *fakeVectorIndex) deletedFilters() []vector.Filter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]vector.Filter(nil), f.deleted...)
}

// createTestAgent persists a minimal agent for the given owner.
func createTestAgent(t *testing.T, client *ent.Client, ownerID string) *ent.Agent {
	t.Helper()
	service := NewAgentService(client, &fakeVectorIndex{})
	agent, err := service.Create(context.Background(), ownerID, AgentInput{
		Name:        "Alex",
		CompanyName: "Acme",
	})
	require.NoError(t, err)
	return agent
}

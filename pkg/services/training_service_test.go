package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/ent/trainingdata"
	testdb "github.com/merxlab/merx/test/database"
)

func TestTrainingService_CreatePending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTrainingService(client.Client, &fakeVectorIndex{})
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")

	t.Run("creates row in processing", func(t *testing.T) {
		row, err := service.CreatePending(ctx, agent.ID, TrainingTypeURL,
			map[string]interface{}{"url": "https://acme.example"})
		require.NoError(t, err)
		assert.Equal(t, trainingdata.StatusProcessing, row.Status)
		assert.Equal(t, trainingdata.TypeURL, row.Type)
		assert.Equal(t, "https://acme.example", row.Metadata["url"])
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := service.CreatePending(ctx, agent.ID, "spreadsheet", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestTrainingService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTrainingService(client.Client, &fakeVectorIndex{})
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")

	t.Run("processing to completed records chunk count", func(t *testing.T) {
		row, err := service.CreatePending(ctx, agent.ID, TrainingTypeText,
			map[string]interface{}{"filename": "notes.txt"})
		require.NoError(t, err)

		require.NoError(t, service.MarkCompleted(ctx, row.ID, 7))

		reloaded, err := client.TrainingData.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, trainingdata.StatusCompleted, reloaded.Status)
		// Existing metadata survives the merge.
		assert.Equal(t, "notes.txt", reloaded.Metadata["filename"])
		assert.EqualValues(t, 7, reloaded.Metadata["chunks_created"])
	})

	t.Run("processing to failed records reason", func(t *testing.T) {
		row, err := service.CreatePending(ctx, agent.ID, TrainingTypeURL, nil)
		require.NoError(t, err)

		require.NoError(t, service.MarkFailed(ctx, row.ID, "fetch returned 404"))

		reloaded, err := client.TrainingData.Get(ctx, row.ID)
		require.NoError(t, err)
		assert.Equal(t, trainingdata.StatusFailed, reloaded.Status)
		assert.Equal(t, "fetch returned 404", reloaded.Metadata["error"])
	})

	t.Run("terminal rows cannot transition again", func(t *testing.T) {
		row, err := service.CreatePending(ctx, agent.ID, TrainingTypeFAQ, nil)
		require.NoError(t, err)
		require.NoError(t, service.MarkCompleted(ctx, row.ID, 1))

		assert.ErrorIs(t, service.MarkFailed(ctx, row.ID, "late failure"), ErrInvalidTransition)
		assert.ErrorIs(t, service.MarkCompleted(ctx, row.ID, 2), ErrInvalidTransition)
	})

	t.Run("missing row", func(t *testing.T) {
		assert.ErrorIs(t, service.MarkCompleted(ctx, "missing", 1), ErrNotFound)
	})
}

func TestTrainingService_ListAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	vectors := &fakeVectorIndex{}
	service := NewTrainingService(client.Client, vectors)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")
	row, err := service.CreatePending(ctx, agent.ID, TrainingTypePDF,
		map[string]interface{}{"filename": "catalog.pdf"})
	require.NoError(t, err)

	t.Run("list is owner scoped", func(t *testing.T) {
		rows, err := service.List(ctx, "owner-1", agent.ID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		_, err = service.List(ctx, "owner-2", agent.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("delete removes row and its vectors", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, "owner-1", row.ID))

		rows, err := service.List(ctx, "owner-1", agent.ID)
		require.NoError(t, err)
		assert.Empty(t, rows)

		deleted := vectors.deletedFilters()
		require.Len(t, deleted, 1)
		assert.Equal(t, row.ID, deleted[0].SourceID)
	})

	t.Run("foreign owner cannot delete", func(t *testing.T) {
		other, err := service.CreatePending(ctx, agent.ID, TrainingTypeText, nil)
		require.NoError(t, err)
		assert.ErrorIs(t, service.Delete(ctx, "owner-2", other.ID), ErrForbidden)
	})
}

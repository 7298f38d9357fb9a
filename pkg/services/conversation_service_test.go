package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/models"
	testdb "github.com/merxlab/merx/test/database"
)

func TestConversationService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")

	t.Run("creates on first contact", func(t *testing.T) {
		row, err := service.GetOrCreate(ctx, agent.ID, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, agent.ID, row.AgentID)
		assert.Equal(t, "sess-1", row.SessionID)
		assert.Empty(t, row.Messages)
	})

	t.Run("returns the same row for the same session", func(t *testing.T) {
		first, err := service.GetOrCreate(ctx, agent.ID, "sess-2")
		require.NoError(t, err)
		second, err := service.GetOrCreate(ctx, agent.ID, "sess-2")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("distinct sessions get distinct rows", func(t *testing.T) {
		a, err := service.GetOrCreate(ctx, agent.ID, "sess-3")
		require.NoError(t, err)
		b, err := service.GetOrCreate(ctx, agent.ID, "sess-4")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("validates ids", func(t *testing.T) {
		_, err := service.GetOrCreate(ctx, "", "sess-1")
		assert.True(t, IsValidationError(err))
		_, err = service.GetOrCreate(ctx, agent.ID, "")
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_AppendTurns(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")
	row, err := service.GetOrCreate(ctx, agent.ID, "sess-1")
	require.NoError(t, err)

	turn := func(role, content string) models.ChatMessage {
		return models.ChatMessage{Role: role, Content: content, Timestamp: time.Now()}
	}

	t.Run("appends both sides of an exchange", func(t *testing.T) {
		updated, err := service.AppendTurns(ctx, row.ID, []models.ChatMessage{
			turn(models.RoleUser, "hi"),
			turn(models.RoleAssistant, "Welcome!"),
		}, nil)
		require.NoError(t, err)
		require.Len(t, updated.Messages, 2)
		assert.Equal(t, "hi", updated.Messages[0].Content)
		assert.Equal(t, "Welcome!", updated.Messages[1].Content)
	})

	t.Run("lead info merges monotonically", func(t *testing.T) {
		_, err := service.AppendTurns(ctx, row.ID, []models.ChatMessage{
			turn(models.RoleUser, "I'm Jane"),
			turn(models.RoleAssistant, "Hi Jane"),
		}, &models.LeadInfo{Name: "Jane", Email: "jane@example.com"})
		require.NoError(t, err)

		// A later delta with fewer fields must not erase the email.
		updated, err := service.AppendTurns(ctx, row.ID, []models.ChatMessage{
			turn(models.RoleUser, "call me +1-555-1000"),
			turn(models.RoleAssistant, "Noted"),
		}, &models.LeadInfo{Phone: "+1-555-1000"})
		require.NoError(t, err)

		assert.Equal(t, "Jane", updated.LeadInfo.Name)
		assert.Equal(t, "jane@example.com", updated.LeadInfo.Email)
		assert.Equal(t, "+1-555-1000", updated.LeadInfo.Phone)
		assert.Len(t, updated.Messages, 6)
	})

	t.Run("missing conversation", func(t *testing.T) {
		_, err := service.AppendTurns(ctx, "missing", nil, nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestConversationService_OwnerAccess(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewConversationService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")
	row, err := service.GetOrCreate(ctx, agent.ID, "sess-1")
	require.NoError(t, err)

	t.Run("owner reads conversation", func(t *testing.T) {
		got, err := service.Get(ctx, "owner-1", row.ID)
		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID)
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		_, err := service.Get(ctx, "owner-2", row.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = service.List(ctx, "owner-2", agent.ID, 10)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		_, err := service.GetOrCreate(ctx, agent.ID, "sess-2")
		require.NoError(t, err)

		listed, err := service.List(ctx, "owner-1", agent.ID, 10)
		require.NoError(t, err)
		assert.Len(t, listed, 2)
	})
}

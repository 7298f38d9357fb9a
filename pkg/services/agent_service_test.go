package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/pkg/models"
	testdb "github.com/merxlab/merx/test/database"
)

func TestAgentService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client, &fakeVectorIndex{})
	ctx := context.Background()

	t.Run("creates agent with defaults", func(t *testing.T) {
		created, err := service.Create(ctx, "owner-1", AgentInput{
			Name:               "Alex",
			CompanyName:        "Acme",
			CompanyDescription: "We sell widgets.",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "owner-1", created.OwnerID)
		assert.Equal(t, agent.ToneFriendly, created.Tone)
		assert.Equal(t, "en", created.Language)
		assert.True(t, created.IsActive)
		assert.Equal(t, "agent_"+created.ID, created.IndexNamespace,
			"namespace is derived from the id at creation")
	})

	t.Run("accepts configured tone and products", func(t *testing.T) {
		created, err := service.Create(ctx, "owner-1", AgentInput{
			Name:        "Max",
			CompanyName: "Acme",
			Tone:        "professional",
			Products: []models.ProductRef{
				{Name: "Widget Classic"},
				{Spec: &models.ProductSpec{Name: "Widget Pro", Price: 49.99}},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, agent.ToneProfessional, created.Tone)
		require.Len(t, created.Products, 2)
		assert.Equal(t, "Widget Classic", created.Products[0].Name)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-1", AgentInput{CompanyName: "Acme"})
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "owner-1", AgentInput{Name: "Alex"})
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "", AgentInput{Name: "Alex", CompanyName: "Acme"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown tone", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-1", AgentInput{
			Name: "Alex", CompanyName: "Acme", Tone: "sarcastic",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_Ownership(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client, &fakeVectorIndex{})
	ctx := context.Background()

	created := createTestAgent(t, client.Client, "owner-1")

	t.Run("owner reads own agent", func(t *testing.T) {
		got, err := service.GetOwned(ctx, created.ID, "owner-1")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		_, err := service.GetOwned(ctx, created.ID, "owner-2")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing agent is not found", func(t *testing.T) {
		_, err := service.GetOwned(ctx, "missing", "owner-1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("public get ignores ownership", func(t *testing.T) {
		got, err := service.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("list is scoped to owner", func(t *testing.T) {
		mine, err := service.List(ctx, "owner-1")
		require.NoError(t, err)
		assert.NotEmpty(t, mine)

		theirs, err := service.List(ctx, "owner-2")
		require.NoError(t, err)
		assert.Empty(t, theirs)
	})
}

func TestAgentService_Update(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAgentService(client.Client, &fakeVectorIndex{})
	ctx := context.Background()

	created := createTestAgent(t, client.Client, "owner-1")

	t.Run("partial update leaves other fields", func(t *testing.T) {
		greeting := "Welcome to Acme!"
		inactive := false
		updated, err := service.Update(ctx, created.ID, "owner-1", AgentUpdate{
			GreetingMessage: &greeting,
			IsActive:        &inactive,
		})
		require.NoError(t, err)
		assert.Equal(t, greeting, updated.GreetingMessage)
		assert.False(t, updated.IsActive)
		assert.Equal(t, "Alex", updated.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		empty := ""
		_, err := service.Update(ctx, created.ID, "owner-1", AgentUpdate{Name: &empty})
		assert.True(t, IsValidationError(err))
	})

	t.Run("foreign owner cannot update", func(t *testing.T) {
		name := "Hijacked"
		_, err := service.Update(ctx, created.ID, "owner-2", AgentUpdate{Name: &name})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAgentService_DeleteCascades(t *testing.T) {
	client := testdb.NewTestClient(t)
	vectors := &fakeVectorIndex{}
	service := NewAgentService(client.Client, vectors)
	products := NewProductService(client.Client)
	conversations := NewConversationService(client.Client)
	ctx := context.Background()

	created := createTestAgent(t, client.Client, "owner-1")

	_, err := products.Create(ctx, "owner-1", created.ID, ProductInput{Name: "Widget"})
	require.NoError(t, err)
	_, err = conversations.GetOrCreate(ctx, created.ID, "sess-1")
	require.NoError(t, err)

	t.Run("foreign owner cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, service.Delete(ctx, created.ID, "owner-2"), ErrForbidden)
	})

	t.Run("delete removes children and vectors", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, created.ID, "owner-1"))

		_, err := service.Get(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		remaining, err := client.Product.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, remaining)

		deleted := vectors.deletedFilters()
		require.Len(t, deleted, 1)
		assert.Equal(t, created.ID, deleted[0].AgentID)
	})
}

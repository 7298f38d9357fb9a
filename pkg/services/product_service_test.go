package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/ent/product"
	testdb "github.com/merxlab/merx/test/database"
)

func TestProductService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProductService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")

	t.Run("creates product with defaults", func(t *testing.T) {
		created, err := service.Create(ctx, "owner-1", agent.ID, ProductInput{
			Name:  "Widget Pro",
			Price: 49.99,
		})
		require.NoError(t, err)
		assert.Equal(t, agent.ID, created.AgentID)
		assert.Equal(t, "USD", created.Currency)
		assert.Equal(t, product.StockStatusInStock, created.StockStatus)
		assert.True(t, created.IsActive)
	})

	t.Run("accepts full attribute set", func(t *testing.T) {
		created, err := service.Create(ctx, "owner-1", agent.ID, ProductInput{
			Name:           "Widget Max",
			Description:    "the big one",
			Price:          99.5,
			Currency:       "EUR",
			Category:       "widgets",
			Features:       []string{"big", "heavy"},
			Specifications: map[string]string{"weight": "4kg"},
			StockStatus:    "pre_order",
			SKU:            "WMAX-1",
			IsFeatured:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, product.StockStatusPreOrder, created.StockStatus)
		assert.Equal(t, "4kg", created.Specifications["weight"])
		assert.True(t, created.IsFeatured)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-1", agent.ID, ProductInput{Price: 1})
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "owner-1", agent.ID, ProductInput{Name: "X", Price: -1})
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "owner-1", agent.ID, ProductInput{Name: "X", StockStatus: "plenty"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects foreign agent", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-2", agent.ID, ProductInput{Name: "X"})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects missing agent", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-1", "missing", ProductInput{Name: "X"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProductService_UpdateAndImage(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProductService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")
	created, err := service.Create(ctx, "owner-1", agent.ID, ProductInput{Name: "Widget", Price: 10})
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		price := 12.5
		stock := "low_stock"
		updated, err := service.Update(ctx, "owner-1", created.ID, ProductUpdate{
			Price:       &price,
			StockStatus: &stock,
		})
		require.NoError(t, err)
		assert.Equal(t, 12.5, updated.Price)
		assert.Equal(t, product.StockStatusLowStock, updated.StockStatus)
		assert.Equal(t, "Widget", updated.Name)
	})

	t.Run("set image url", func(t *testing.T) {
		updated, err := service.SetImageURL(ctx, "owner-1", created.ID, "/uploads/widget.png")
		require.NoError(t, err)
		assert.Equal(t, "/uploads/widget.png", updated.ImageURL)
	})

	t.Run("foreign owner cannot touch product", func(t *testing.T) {
		price := 1.0
		_, err := service.Update(ctx, "owner-2", created.ID, ProductUpdate{Price: &price})
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = service.Get(ctx, "owner-2", created.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestProductService_ListAndDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProductService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")
	first, err := service.Create(ctx, "owner-1", agent.ID, ProductInput{Name: "A"})
	require.NoError(t, err)
	_, err = service.Create(ctx, "owner-1", agent.ID, ProductInput{Name: "B"})
	require.NoError(t, err)

	listed, err := service.List(ctx, "owner-1", agent.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	require.NoError(t, service.Delete(ctx, "owner-1", first.ID))

	listed, err = service.List(ctx, "owner-1", agent.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "B", listed[0].Name)

	assert.ErrorIs(t, service.Delete(ctx, "owner-1", first.ID), ErrNotFound)
}

package services

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/order"
	"github.com/merxlab/merx/pkg/models"
	testdb "github.com/merxlab/merx/test/database"
)

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{4}-\d{6}$`)

func createTestOrder(t *testing.T, service *OrderService, agentID string) *ent.Order {
	t.Helper()
	created, err := service.Create(context.Background(), "owner-1", agentID, OrderInput{
		CustomerName: "Jane",
		Items: []models.OrderItem{
			{ProductName: "Widget Pro", Quantity: 2, UnitPrice: 49.99},
		},
	})
	require.NoError(t, err)
	return created
}

func TestOrderService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")

	t.Run("assigns number, total and initial history", func(t *testing.T) {
		created, err := service.Create(ctx, "owner-1", agent.ID, OrderInput{
			SessionID:     "sess-1",
			CustomerName:  "Jane",
			CustomerEmail: "jane@example.com",
			Items: []models.OrderItem{
				{ProductName: "Widget Pro", Quantity: 2, UnitPrice: 49.99},
				{ProductName: "Widget Mini", Quantity: 1, UnitPrice: 10},
			},
			Currency: "EUR",
		})
		require.NoError(t, err)
		assert.Regexp(t, orderNumberPattern, created.OrderNumber)
		assert.InDelta(t, 109.98, created.TotalAmount, 0.001)
		assert.Equal(t, order.StatusPending, created.Status)
		require.Len(t, created.StatusHistory, 1)
		assert.Equal(t, "pending", created.StatusHistory[0].Status)
	})

	t.Run("numbers are sequential within the year", func(t *testing.T) {
		first := createTestOrder(t, service, agent.ID)
		second := createTestOrder(t, service, agent.ID)
		assert.Regexp(t, orderNumberPattern, first.OrderNumber)
		assert.Regexp(t, orderNumberPattern, second.OrderNumber)
		assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
		assert.Greater(t, second.OrderNumber, first.OrderNumber)
		assert.Contains(t, first.OrderNumber, fmt.Sprintf("ORD-%d-", time.Now().UTC().Year()))
	})

	t.Run("validates items", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-1", agent.ID, OrderInput{})
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "owner-1", agent.ID, OrderInput{
			Items: []models.OrderItem{{ProductName: "X", Quantity: 0}},
		})
		assert.True(t, IsValidationError(err))

		_, err = service.Create(ctx, "owner-1", agent.ID, OrderInput{
			Items: []models.OrderItem{{ProductName: "X", Quantity: 1, UnitPrice: -5}},
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("foreign agent is forbidden", func(t *testing.T) {
		_, err := service.Create(ctx, "owner-2", agent.ID, OrderInput{
			Items: []models.OrderItem{{ProductName: "X", Quantity: 1, UnitPrice: 1}},
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestOrderService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")

	t.Run("walks the happy path appending history", func(t *testing.T) {
		created := createTestOrder(t, service, agent.ID)

		current := created
		for _, next := range []string{"confirmed", "processing", "packaged", "shipped", "delivered"} {
			updated, err := service.UpdateStatus(ctx, "owner-1", current.ID, next, "")
			require.NoError(t, err, "transition to %s", next)
			current = updated
		}

		require.Len(t, current.StatusHistory, 6)
		for i := 1; i < len(current.StatusHistory); i++ {
			assert.False(t, current.StatusHistory[i].Timestamp.Before(current.StatusHistory[i-1].Timestamp),
				"history timestamps must not decrease")
		}
		assert.Equal(t, order.StatusDelivered, current.Status)
	})

	t.Run("rejects disallowed edges", func(t *testing.T) {
		created := createTestOrder(t, service, agent.ID)

		_, err := service.UpdateStatus(ctx, "owner-1", created.ID, "shipped", "")
		assert.ErrorIs(t, err, ErrInvalidTransition)

		_, err = service.UpdateStatus(ctx, "owner-1", created.ID, "cancelled", "customer gave up")
		require.NoError(t, err)

		_, err = service.UpdateStatus(ctx, "owner-1", created.ID, "confirmed", "")
		assert.ErrorIs(t, err, ErrInvalidTransition, "cancelled is terminal")
	})

	t.Run("stale writer loses the race for an edge", func(t *testing.T) {
		created := createTestOrder(t, service, agent.ID)

		// Two writers both see pending and race for the same edge. The
		// status guard lets exactly one through; the loser must not
		// overwrite the winner's history append.
		errs := make(chan error, 2)
		for i := 0; i < 2; i++ {
			go func() {
				_, err := service.UpdateStatus(ctx, "owner-1", created.ID, "confirmed", "")
				errs <- err
			}()
		}

		var failed int
		for i := 0; i < 2; i++ {
			if err := <-errs; err != nil {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				failed++
			}
		}
		assert.Equal(t, 1, failed, "exactly one writer wins pending -> confirmed")

		reloaded, err := service.Get(ctx, "owner-1", created.ID)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, reloaded.Status)
		require.Len(t, reloaded.StatusHistory, 2, "one history entry per applied transition")
		assert.Equal(t, "confirmed", reloaded.StatusHistory[1].Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		created := createTestOrder(t, service, agent.ID)
		_, err := service.UpdateStatus(ctx, "owner-1", created.ID, "teleported", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("foreign owner cannot update", func(t *testing.T) {
		created := createTestOrder(t, service, agent.ID)
		_, err := service.UpdateStatus(ctx, "owner-2", created.ID, "confirmed", "")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestOrderService_TrackAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewOrderService(client.Client)
	ctx := context.Background()

	agent := createTestAgent(t, client.Client, "owner-1")
	created := createTestOrder(t, service, agent.ID)

	t.Run("track by number needs no owner", func(t *testing.T) {
		got, err := service.TrackByNumber(ctx, created.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("track unknown number", func(t *testing.T) {
		_, err := service.TrackByNumber(ctx, "ORD-1999-000001")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list is owner scoped", func(t *testing.T) {
		listed, err := service.List(ctx, "owner-1", agent.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, listed)

		_, err = service.List(ctx, "owner-2", agent.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

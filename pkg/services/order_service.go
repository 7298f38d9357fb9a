package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/order"
	"github.com/merxlab/merx/pkg/models"
)

// allowedTransitions are the legal status edges. Terminal states have no
// outgoing edges.
var allowedTransitions = map[order.Status][]order.Status{
	order.StatusPending:    {order.StatusConfirmed, order.StatusCancelled},
	order.StatusConfirmed:  {order.StatusProcessing, order.StatusCancelled},
	order.StatusProcessing: {order.StatusPackaged, order.StatusCancelled},
	order.StatusPackaged:   {order.StatusShipped, order.StatusCancelled},
	order.StatusShipped:    {order.StatusDelivered},
	order.StatusDelivered:  {},
	order.StatusCancelled:  {},
}

// OrderService manages orders and their status history.
type OrderService struct {
	client *ent.Client
}

// NewOrderService creates a new OrderService
func NewOrderService(client *ent.Client) *OrderService {
	return &OrderService{client: client}
}

// OrderInput carries the fields accepted at order creation.
type OrderInput struct {
	SessionID       string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	Items           []models.OrderItem
	Currency        string
	Notes           string
}

// Create persists an order against an owned agent. The order number is
// server assigned: a six digit sequence per calendar year; the unique index
// resolves concurrent creations, which retry with the next number.
func (s *OrderService) Create(httpCtx context.Context, ownerID, agentID string, in OrderInput) (*ent.Order, error) {
	if err := s.checkOwner(httpCtx, ownerID, agentID); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, NewValidationError("items", "at least one item is required")
	}
	total := 0.0
	for i, item := range in.Items {
		if item.ProductName == "" {
			return nil, NewValidationError(fmt.Sprintf("items[%d].product_name", i), "required")
		}
		if item.Quantity <= 0 {
			return nil, NewValidationError(fmt.Sprintf("items[%d].quantity", i), "must be positive")
		}
		if item.UnitPrice < 0 {
			return nil, NewValidationError(fmt.Sprintf("items[%d].unit_price", i), "must not be negative")
		}
		total += float64(item.Quantity) * item.UnitPrice
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var created *ent.Order
	for attempt := 0; attempt < 3; attempt++ {
		number, err := s.nextOrderNumber(ctx)
		if err != nil {
			return nil, err
		}

		builder := s.client.Order.Create().
			SetID(uuid.New().String()).
			SetOrderNumber(number).
			SetAgentID(agentID).
			SetItems(in.Items).
			SetTotalAmount(total).
			SetStatus(order.StatusPending).
			SetStatusHistory([]models.StatusChange{{
				Status:    string(order.StatusPending),
				Timestamp: time.Now(),
			}})

		if in.SessionID != "" {
			builder.SetSessionID(in.SessionID)
		}
		if in.CustomerName != "" {
			builder.SetCustomerName(in.CustomerName)
		}
		if in.CustomerEmail != "" {
			builder.SetCustomerEmail(in.CustomerEmail)
		}
		if in.CustomerPhone != "" {
			builder.SetCustomerPhone(in.CustomerPhone)
		}
		if in.ShippingAddress != "" {
			builder.SetShippingAddress(in.ShippingAddress)
		}
		if in.Currency != "" {
			builder.SetCurrency(in.Currency)
		}
		if in.Notes != "" {
			builder.SetNotes(in.Notes)
		}

		created, err = builder.Save(ctx)
		if err == nil {
			return created, nil
		}
		// A constraint error means another writer claimed the number first.
		if !ent.IsConstraintError(err) {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
	}
	return nil, fmt.Errorf("failed to allocate an order number after retries")
}

// nextOrderNumber computes ORD-<year>-<seq+1> from the highest number issued
// this year. Lexicographic max works because the sequence is zero padded.
func (s *OrderService) nextOrderNumber(ctx context.Context) (string, error) {
	prefix := fmt.Sprintf("ORD-%d-", time.Now().UTC().Year())

	last, err := s.client.Order.Query().
		Where(order.OrderNumberHasPrefix(prefix)).
		Order(ent.Desc(order.FieldOrderNumber)).
		Select(order.FieldOrderNumber).
		Strings(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to query last order number: %w", err)
	}

	seq := 0
	if len(last) > 0 {
		parsed, err := strconv.Atoi(strings.TrimPrefix(last[0], prefix))
		if err != nil {
			return "", fmt.Errorf("malformed order number %q: %w", last[0], err)
		}
		seq = parsed
	}
	return fmt.Sprintf("%s%06d", prefix, seq+1), nil
}

// Get retrieves an owned order.
func (s *OrderService) Get(ctx context.Context, ownerID, orderID string) (*ent.Order, error) {
	found, err := s.client.Order.Query().Where(order.IDEQ(orderID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if err := s.checkOwner(ctx, ownerID, found.AgentID); err != nil {
		return nil, err
	}
	return found, nil
}

// List returns an owned agent's orders, newest first.
func (s *OrderService) List(ctx context.Context, ownerID, agentID string) ([]*ent.Order, error) {
	if err := s.checkOwner(ctx, ownerID, agentID); err != nil {
		return nil, err
	}
	orders, err := s.client.Order.Query().
		Where(order.AgentIDEQ(agentID)).
		Order(ent.Desc(order.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// TrackByNumber retrieves an order by its public number. No authentication:
// order numbers are unguessable enough for customer self-service tracking.
func (s *OrderService) TrackByNumber(ctx context.Context, orderNumber string) (*ent.Order, error) {
	found, err := s.client.Order.Query().
		Where(order.OrderNumberEQ(orderNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to track order: %w", err)
	}
	return found, nil
}

// UpdateStatus moves an owned order along an allowed edge and appends the
// change to its history. History timestamps never decrease.
func (s *OrderService) UpdateStatus(httpCtx context.Context, ownerID, orderID, newStatus, note string) (*ent.Order, error) {
	target := order.Status(newStatus)
	if err := order.StatusValidator(target); err != nil {
		return nil, NewValidationError("status", "unknown status")
	}

	row, err := s.Get(httpCtx, ownerID, orderID)
	if err != nil {
		return nil, err
	}

	if !transitionAllowed(row.Status, target) {
		return nil, ErrInvalidTransition
	}

	ts := time.Now()
	if n := len(row.StatusHistory); n > 0 && ts.Before(row.StatusHistory[n-1].Timestamp) {
		ts = row.StatusHistory[n-1].Timestamp
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Guard the write on the status we validated against. A concurrent
	// writer that moved the order first makes this touch zero rows, so
	// history stays append-only with one entry per real transition.
	affected, err := s.client.Order.Update().
		Where(order.IDEQ(orderID), order.StatusEQ(row.Status)).
		SetStatus(target).
		SetStatusHistory(append(row.StatusHistory, models.StatusChange{
			Status:    newStatus,
			Timestamp: ts,
			Note:      note,
		})).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if affected == 0 {
		return nil, ErrInvalidTransition
	}

	updated, err := s.client.Order.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order: %w", err)
	}
	return updated, nil
}

func transitionAllowed(from, to order.Status) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s *OrderService) checkOwner(ctx context.Context, ownerID, agentID string) error {
	found, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		Select(agent.FieldOwnerID).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to check agent ownership: %w", err)
	}
	if found.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}

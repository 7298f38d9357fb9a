package analytics

import (
	"context"
	"fmt"

	"github.com/merxlab/merx/ent"
	entagent "github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/conversation"
	"github.com/merxlab/merx/ent/order"
	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/services"
)

// Service answers dashboard queries for one owner. All queries are
// read-only; an optional agent id narrows the scope to one agent.
type Service struct {
	client *ent.Client
}

// NewService creates the analytics service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Overview is the full dashboard payload.
type Overview struct {
	Funnel      models.Funnel             `json:"funnel"`
	PeakHours   []models.PeakHour         `json:"peak_hours"`
	DailyTrends []models.DailyTrend       `json:"daily_trends"`
	Agents      []models.AgentPerformance `json:"agents"`
}

// Load computes the dashboard for (owner, optional agent, window).
func (s *Service) Load(ctx context.Context, ownerID, agentID string, window models.TimeWindow) (*Overview, error) {
	window = clampWindow(window)

	agents, err := s.ownedAgents(ctx, ownerID, agentID)
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 && agentID != "" {
		return nil, services.ErrNotFound
	}

	agentIDs := make([]string, len(agents))
	for i, a := range agents {
		agentIDs[i] = a.ID
	}

	conversations, err := s.conversations(ctx, agentIDs, window)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders(ctx, agentIDs, window)
	if err != nil {
		return nil, err
	}

	sessionsWithOrder := make(map[string]struct{})
	orderCounts := make(map[string]int)
	for _, o := range orders {
		orderCounts[o.AgentID]++
		if o.SessionID != "" {
			sessionsWithOrder[o.SessionID] = struct{}{}
		}
	}

	return &Overview{
		Funnel:      buildFunnel(conversations, sessionsWithOrder),
		PeakHours:   buildPeakHours(conversations),
		DailyTrends: buildDailyTrends(conversations),
		Agents:      buildAgentPerformance(agents, conversations, orderCounts),
	}, nil
}

// ownedAgents resolves the agent scope: all of the owner's agents, or just
// the named one after an ownership check.
func (s *Service) ownedAgents(ctx context.Context, ownerID, agentID string) ([]*ent.Agent, error) {
	query := s.client.Agent.Query().Where(entagent.OwnerIDEQ(ownerID))
	if agentID != "" {
		query = query.Where(entagent.IDEQ(agentID))
	}
	agents, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agents: %w", err)
	}
	return agents, nil
}

func (s *Service) conversations(ctx context.Context, agentIDs []string, window models.TimeWindow) ([]*ent.Conversation, error) {
	if len(agentIDs) == 0 {
		return nil, nil
	}
	query := s.client.Conversation.Query().
		Where(conversation.AgentIDIn(agentIDs...)).
		Where(conversation.CreatedAtLTE(window.To))
	if !window.From.IsZero() {
		query = query.Where(conversation.CreatedAtGTE(window.From))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}
	return rows, nil
}

func (s *Service) orders(ctx context.Context, agentIDs []string, window models.TimeWindow) ([]*ent.Order, error) {
	if len(agentIDs) == 0 {
		return nil, nil
	}
	query := s.client.Order.Query().
		Where(order.AgentIDIn(agentIDs...)).
		Where(order.CreatedAtLTE(window.To))
	if !window.From.IsZero() {
		query = query.Where(order.CreatedAtGTE(window.From))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return rows, nil
}

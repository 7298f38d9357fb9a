package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/conversation"
	"github.com/merxlab/merx/pkg/models"
)

// ConversationService manages per-session transcripts. One row accumulates
// all turns of an (agent, session) pair; writes are last-writer-wins over the
// whole row, serialized upstream by the chat handler's per-session lock.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// GetOrCreate loads the conversation row for (agent, session), creating it on
// first contact. A concurrent create racing on the unique index is resolved
// by re-reading.
func (s *ConversationService) GetOrCreate(httpCtx context.Context, agentID, sessionID string) (*ent.Conversation, error) {
	if agentID == "" {
		return nil, NewValidationError("agent_id", "required")
	}
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.bySession(ctx, agentID, sessionID)
	if err == nil {
		return existing, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	created, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetSessionID(sessionID).
		SetMessages([]models.ChatMessage{}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return s.bySession(ctx, agentID, sessionID)
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return created, nil
}

// AppendTurns appends the user and assistant turns of one exchange and folds
// the lead delta into the row's lead info.
func (s *ConversationService) AppendTurns(httpCtx context.Context, conversationID string, turns []models.ChatMessage, leadDelta *models.LeadInfo) (*ent.Conversation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}

	builder := row.Update().
		SetMessages(append(row.Messages, turns...))
	if leadDelta != nil {
		builder.SetLeadInfo(row.LeadInfo.Merge(*leadDelta))
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append turns: %w", err)
	}
	return updated, nil
}

// Get retrieves a conversation scoped to the agent's owner.
func (s *ConversationService) Get(ctx context.Context, ownerID, conversationID string) (*ent.Conversation, error) {
	row, err := s.client.Conversation.Query().
		Where(conversation.IDEQ(conversationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	if err := s.checkOwner(ctx, ownerID, row.AgentID); err != nil {
		return nil, err
	}
	return row, nil
}

// List returns an owned agent's conversations, newest first.
func (s *ConversationService) List(ctx context.Context, ownerID, agentID string, limit int) ([]*ent.Conversation, error) {
	if err := s.checkOwner(ctx, ownerID, agentID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.client.Conversation.Query().
		Where(conversation.AgentIDEQ(agentID)).
		Order(ent.Desc(conversation.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return rows, nil
}

func (s *ConversationService) bySession(ctx context.Context, agentID, sessionID string) (*ent.Conversation, error) {
	row, err := s.client.Conversation.Query().
		Where(
			conversation.AgentIDEQ(agentID),
			conversation.SessionIDEQ(sessionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query conversation: %w", err)
	}
	return row, nil
}

func (s *ConversationService) checkOwner(ctx context.Context, ownerID, agentID string) error {
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

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/pkg/models"
	"github.com/merxlab/merx/pkg/vector"
)

// VectorIndex is the slice of the vector store the services need for
// cascade deletes.
type VectorIndex interface {
	DeleteByFilter(ctx context.Context, f vector.Filter) error
}

// AgentService manages agent lifecycle. Deleting an agent removes its
// catalog, conversations, training rows (store cascade) and vector entries.
type AgentService struct {
	client  *ent.Client
	vectors VectorIndex
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client, vectors VectorIndex) *AgentService {
	return &AgentService{client: client, vectors: vectors}
}

// AgentInput carries the fields accepted at agent creation.
type AgentInput struct {
	Name               string
	CompanyName        string
	CompanyDescription string
	Tone               string
	Language           string
	GreetingMessage    string
	SalesStrategy      string
	Products           []models.ProductRef
}

// AgentUpdate carries a partial update; nil fields are left untouched.
type AgentUpdate struct {
	Name               *string
	CompanyName        *string
	CompanyDescription *string
	Tone               *string
	Language           *string
	GreetingMessage    *string
	SalesStrategy      *string
	Products           *[]models.ProductRef
	IsActive           *bool
}

// Create persists a new agent for the owner. The index namespace is derived
// from the id at creation and never reused after deletion; vector entries
// themselves are filtered by agent id.
func (s *AgentService) Create(httpCtx context.Context, ownerID string, in AgentInput) (*ent.Agent, error) {
	if ownerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.CompanyName == "" {
		return nil, NewValidationError("company_name", "required")
	}
	tone := agent.Tone(in.Tone)
	if in.Tone == "" {
		tone = agent.ToneFriendly
	} else if err := agent.ToneValidator(tone); err != nil {
		return nil, NewValidationError("tone", "must be friendly, professional, casual or formal")
	}
	language := in.Language
	if language == "" {
		language = "en"
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := uuid.New().String()
	builder := s.client.Agent.Create().
		SetID(id).
		SetOwnerID(ownerID).
		SetName(in.Name).
		SetCompanyName(in.CompanyName).
		SetTone(tone).
		SetLanguage(language).
		SetIndexNamespace("agent_" + id)

	if in.CompanyDescription != "" {
		builder.SetCompanyDescription(in.CompanyDescription)
	}
	if in.GreetingMessage != "" {
		builder.SetGreetingMessage(in.GreetingMessage)
	}
	if in.SalesStrategy != "" {
		builder.SetSalesStrategy(in.SalesStrategy)
	}
	if len(in.Products) > 0 {
		builder.SetProducts(in.Products)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}
	return created, nil
}

// Get retrieves an agent by id without an ownership check. Public chat uses
// it; callers decide how an inactive agent is surfaced.
func (s *AgentService) Get(ctx context.Context, agentID string) (*ent.Agent, error) {
	found, err := s.client.Agent.Query().Where(agent.IDEQ(agentID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return found, nil
}

// GetOwned retrieves an agent and verifies the caller owns it. A foreign
// agent reads as ErrForbidden, not ErrNotFound, so handlers can 403.
func (s *AgentService) GetOwned(ctx context.Context, agentID, ownerID string) (*ent.Agent, error) {
	found, err := s.Get(ctx, agentID)
	if err != nil {
		return nil, err
	}
	if found.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return found, nil
}

// List returns the owner's agents, newest first.
func (s *AgentService) List(ctx context.Context, ownerID string) ([]*ent.Agent, error) {
	agents, err := s.client.Agent.Query().
		Where(agent.OwnerIDEQ(ownerID)).
		Order(ent.Desc(agent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	return agents, nil
}

// Update applies a partial update to an owned agent.
func (s *AgentService) Update(httpCtx context.Context, agentID, ownerID string, upd AgentUpdate) (*ent.Agent, error) {
	if _, err := s.GetOwned(httpCtx, agentID, ownerID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Agent.UpdateOneID(agentID)
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		builder.SetName(*upd.Name)
	}
	if upd.CompanyName != nil {
		if *upd.CompanyName == "" {
			return nil, NewValidationError("company_name", "must not be empty")
		}
		builder.SetCompanyName(*upd.CompanyName)
	}
	if upd.CompanyDescription != nil {
		builder.SetCompanyDescription(*upd.CompanyDescription)
	}
	if upd.Tone != nil {
		tone := agent.Tone(*upd.Tone)
		if err := agent.ToneValidator(tone); err != nil {
			return nil, NewValidationError("tone", "must be friendly, professional, casual or formal")
		}
		builder.SetTone(tone)
	}
	if upd.Language != nil && *upd.Language != "" {
		builder.SetLanguage(*upd.Language)
	}
	if upd.GreetingMessage != nil {
		builder.SetGreetingMessage(*upd.GreetingMessage)
	}
	if upd.SalesStrategy != nil {
		builder.SetSalesStrategy(*upd.SalesStrategy)
	}
	if upd.Products != nil {
		builder.SetProducts(*upd.Products)
	}
	if upd.IsActive != nil {
		builder.SetIsActive(*upd.IsActive)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return updated, nil
}

// Delete removes an owned agent. The store cascades products, conversations,
// training rows and orders; vector entries under the agent's filter are
// removed afterwards.
func (s *AgentService) Delete(httpCtx context.Context, agentID, ownerID string) error {
	if _, err := s.GetOwned(httpCtx, agentID, ownerID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.client.Agent.DeleteOneID(agentID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	if err := s.vectors.DeleteByFilter(ctx, vector.Filter{AgentID: agentID}); err != nil {
		return fmt.Errorf("agent deleted but vector cleanup failed: %w", err)
	}
	return nil
}

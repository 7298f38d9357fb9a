package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/merxlab/merx/ent"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/product"
)

// ProductService manages catalog items. Every operation is scoped to the
// agent's owner.
type ProductService struct {
	client *ent.Client
}

// NewProductService creates a new ProductService
func NewProductService(client *ent.Client) *ProductService {
	return &ProductService{client: client}
}

// ProductInput carries the fields accepted at product creation.
type ProductInput struct {
	Name                string
	Description         string
	DetailedDescription string
	Price               float64
	Currency            string
	Category            string
	Features            []string
	Specifications      map[string]string
	StockStatus         string
	SKU                 string
	IsFeatured          bool
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Name                *string
	Description         *string
	DetailedDescription *string
	Price               *float64
	Currency            *string
	Category            *string
	Features            *[]string
	Specifications      *map[string]string
	StockStatus         *string
	SKU                 *string
	IsFeatured          *bool
	IsActive            *bool
}

// Create adds a catalog item to an owned agent.
func (s *ProductService) Create(httpCtx context.Context, ownerID, agentID string, in ProductInput) (*ent.Product, error) {
	if err := s.checkAgentOwned(httpCtx, ownerID, agentID); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.Price < 0 {
		return nil, NewValidationError("price", "must not be negative")
	}
	stock := product.StockStatusInStock
	if in.StockStatus != "" {
		stock = product.StockStatus(in.StockStatus)
		if err := product.StockStatusValidator(stock); err != nil {
			return nil, NewValidationError("stock_status", "unknown stock status")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Product.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentID).
		SetName(in.Name).
		SetPrice(in.Price).
		SetStockStatus(stock).
		SetIsFeatured(in.IsFeatured)

	if in.Currency != "" {
		builder.SetCurrency(in.Currency)
	}
	if in.Description != "" {
		builder.SetDescription(in.Description)
	}
	if in.DetailedDescription != "" {
		builder.SetDetailedDescription(in.DetailedDescription)
	}
	if in.Category != "" {
		builder.SetCategory(in.Category)
	}
	if len(in.Features) > 0 {
		builder.SetFeatures(in.Features)
	}
	if len(in.Specifications) > 0 {
		builder.SetSpecifications(in.Specifications)
	}
	if in.SKU != "" {
		builder.SetSku(in.SKU)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return created, nil
}

// Get retrieves an owned product.
func (s *ProductService) Get(ctx context.Context, ownerID, productID string) (*ent.Product, error) {
	found, err := s.client.Product.Query().Where(product.IDEQ(productID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if err := s.checkAgentOwned(ctx, ownerID, found.AgentID); err != nil {
		return nil, err
	}
	return found, nil
}

// List returns an owned agent's catalog, newest first.
func (s *ProductService) List(ctx context.Context, ownerID, agentID string) ([]*ent.Product, error) {
	if err := s.checkAgentOwned(ctx, ownerID, agentID); err != nil {
		return nil, err
	}
	products, err := s.client.Product.Query().
		Where(product.AgentIDEQ(agentID)).
		Order(ent.Desc(product.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Update applies a partial update to an owned product.
func (s *ProductService) Update(httpCtx context.Context, ownerID, productID string, upd ProductUpdate) (*ent.Product, error) {
	if _, err := s.Get(httpCtx, ownerID, productID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Product.UpdateOneID(productID)
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		builder.SetName(*upd.Name)
	}
	if upd.Description != nil {
		builder.SetDescription(*upd.Description)
	}
	if upd.DetailedDescription != nil {
		builder.SetDetailedDescription(*upd.DetailedDescription)
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, NewValidationError("price", "must not be negative")
		}
		builder.SetPrice(*upd.Price)
	}
	if upd.Currency != nil && *upd.Currency != "" {
		builder.SetCurrency(*upd.Currency)
	}
	if upd.Category != nil {
		builder.SetCategory(*upd.Category)
	}
	if upd.Features != nil {
		builder.SetFeatures(*upd.Features)
	}
	if upd.Specifications != nil {
		builder.SetSpecifications(*upd.Specifications)
	}
	if upd.StockStatus != nil {
		stock := product.StockStatus(*upd.StockStatus)
		if err := product.StockStatusValidator(stock); err != nil {
			return nil, NewValidationError("stock_status", "unknown stock status")
		}
		builder.SetStockStatus(stock)
	}
	if upd.SKU != nil {
		builder.SetSku(*upd.SKU)
	}
	if upd.IsFeatured != nil {
		builder.SetIsFeatured(*upd.IsFeatured)
	}
	if upd.IsActive != nil {
		builder.SetIsActive(*upd.IsActive)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return updated, nil
}

// SetImageURL records the stored image location on an owned product.
func (s *ProductService) SetImageURL(httpCtx context.Context, ownerID, productID, url string) (*ent.Product, error) {
	if _, err := s.Get(httpCtx, ownerID, productID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	updated, err := s.client.Product.UpdateOneID(productID).
		SetImageURL(url).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set product image: %w", err)
	}
	return updated, nil
}

// Delete removes an owned product.
func (s *ProductService) Delete(httpCtx context.Context, ownerID, productID string) error {
	if _, err := s.Get(httpCtx, ownerID, productID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Product.DeleteOneID(productID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// checkAgentOwned distinguishes a missing agent from a foreign one.
func (s *ProductService) checkAgentOwned(ctx context.Context, ownerID, agentID string) error {
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

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/conversation"
	"github.com/merxlab/merx/ent/order"
	"github.com/merxlab/merx/ent/product"
	"github.com/merxlab/merx/ent/trainingdata"
	"github.com/merxlab/merx/pkg/models"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *AgentCreate) SetOwnerID(v string) *AgentCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *AgentCreate) SetCompanyName(v string) *AgentCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetCompanyDescription sets the "company_description" field.
func (_c *AgentCreate) SetCompanyDescription(v string) *AgentCreate {
	_c.mutation.SetCompanyDescription(v)
	return _c
}

// SetNillableCompanyDescription sets the "company_description" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCompanyDescription(v *string) *AgentCreate {
	if v != nil {
		_c.SetCompanyDescription(*v)
	}
	return _c
}

// SetTone sets the "tone" field.
func (_c *AgentCreate) SetTone(v agent.Tone) *AgentCreate {
	_c.mutation.SetTone(v)
	return _c
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTone(v *agent.Tone) *AgentCreate {
	if v != nil {
		_c.SetTone(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *AgentCreate) SetLanguage(v string) *AgentCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLanguage(v *string) *AgentCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetGreetingMessage sets the "greeting_message" field.
func (_c *AgentCreate) SetGreetingMessage(v string) *AgentCreate {
	_c.mutation.SetGreetingMessage(v)
	return _c
}

// SetNillableGreetingMessage sets the "greeting_message" field if the given value is not nil.
func (_c *AgentCreate) SetNillableGreetingMessage(v *string) *AgentCreate {
	if v != nil {
		_c.SetGreetingMessage(*v)
	}
	return _c
}

// SetSalesStrategy sets the "sales_strategy" field.
func (_c *AgentCreate) SetSalesStrategy(v string) *AgentCreate {
	_c.mutation.SetSalesStrategy(v)
	return _c
}

// SetNillableSalesStrategy sets the "sales_strategy" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSalesStrategy(v *string) *AgentCreate {
	if v != nil {
		_c.SetSalesStrategy(*v)
	}
	return _c
}

// SetProducts sets the "products" field.
func (_c *AgentCreate) SetProducts(v []models.ProductRef) *AgentCreate {
	_c.mutation.SetProducts(v)
	return _c
}

// SetIndexNamespace sets the "index_namespace" field.
func (_c *AgentCreate) SetIndexNamespace(v string) *AgentCreate {
	_c.mutation.SetIndexNamespace(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AgentCreate) SetIsActive(v bool) *AgentCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AgentCreate) SetNillableIsActive(v *bool) *AgentCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddCatalogIDs adds the "catalog" edge to the Product entity by IDs.
func (_c *AgentCreate) AddCatalogIDs(ids ...string) *AgentCreate {
	_c.mutation.AddCatalogIDs(ids...)
	return _c
}

// AddCatalog adds the "catalog" edges to the Product entity.
func (_c *AgentCreate) AddCatalog(v ...*Product) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCatalogIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_c *AgentCreate) AddConversationIDs(ids ...string) *AgentCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_c *AgentCreate) AddConversations(v ...*Conversation) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// AddTrainingDatumIDs adds the "training_data" edge to the TrainingData entity by IDs.
func (_c *AgentCreate) AddTrainingDatumIDs(ids ...string) *AgentCreate {
	_c.mutation.AddTrainingDatumIDs(ids...)
	return _c
}

// AddTrainingData adds the "training_data" edges to the TrainingData entity.
func (_c *AgentCreate) AddTrainingData(v ...*TrainingData) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTrainingDatumIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_c *AgentCreate) AddOrderIDs(ids ...string) *AgentCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the Order entity.
func (_c *AgentCreate) AddOrders(v ...*Order) *AgentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Tone(); !ok {
		v := agent.DefaultTone
		_c.mutation.SetTone(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := agent.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := agent.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Agent.owner_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.CompanyName(); !ok {
		return &ValidationError{Name: "company_name", err: errors.New(`ent: missing required field "Agent.company_name"`)}
	}
	if _, ok := _c.mutation.Tone(); !ok {
		return &ValidationError{Name: "tone", err: errors.New(`ent: missing required field "Agent.tone"`)}
	}
	if v, ok := _c.mutation.Tone(); ok {
		if err := agent.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "Agent.tone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Agent.language"`)}
	}
	if _, ok := _c.mutation.IndexNamespace(); !ok {
		return &ValidationError{Name: "index_namespace", err: errors.New(`ent: missing required field "Agent.index_namespace"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Agent.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(agent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(agent.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.CompanyDescription(); ok {
		_spec.SetField(agent.FieldCompanyDescription, field.TypeString, value)
		_node.CompanyDescription = value
	}
	if value, ok := _c.mutation.Tone(); ok {
		_spec.SetField(agent.FieldTone, field.TypeEnum, value)
		_node.Tone = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(agent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.GreetingMessage(); ok {
		_spec.SetField(agent.FieldGreetingMessage, field.TypeString, value)
		_node.GreetingMessage = value
	}
	if value, ok := _c.mutation.SalesStrategy(); ok {
		_spec.SetField(agent.FieldSalesStrategy, field.TypeString, value)
		_node.SalesStrategy = value
	}
	if value, ok := _c.mutation.Products(); ok {
		_spec.SetField(agent.FieldProducts, field.TypeJSON, value)
		_node.Products = value
	}
	if value, ok := _c.mutation.IndexNamespace(); ok {
		_spec.SetField(agent.FieldIndexNamespace, field.TypeString, value)
		_node.IndexNamespace = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(agent.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CatalogIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.CatalogTable,
			Columns: []string{agent.CatalogColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.ConversationsTable,
			Columns: []string{agent.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TrainingDataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TrainingDataTable,
			Columns: []string{agent.TrainingDataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trainingdata.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.OrdersTable,
			Columns: []string{agent.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

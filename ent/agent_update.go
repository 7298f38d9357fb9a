// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/merxlab/merx/ent/agent"
	"github.com/merxlab/merx/ent/conversation"
	"github.com/merxlab/merx/ent/order"
	"github.com/merxlab/merx/ent/predicate"
	"github.com/merxlab/merx/ent/product"
	"github.com/merxlab/merx/ent/trainingdata"
	"github.com/merxlab/merx/pkg/models"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentUpdate) SetName(v string) *AgentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *AgentUpdate) SetCompanyName(v string) *AgentUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCompanyName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetCompanyDescription sets the "company_description" field.
func (_u *AgentUpdate) SetCompanyDescription(v string) *AgentUpdate {
	_u.mutation.SetCompanyDescription(v)
	return _u
}

// SetNillableCompanyDescription sets the "company_description" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableCompanyDescription(v *string) *AgentUpdate {
	if v != nil {
		_u.SetCompanyDescription(*v)
	}
	return _u
}

// ClearCompanyDescription clears the value of the "company_description" field.
func (_u *AgentUpdate) ClearCompanyDescription() *AgentUpdate {
	_u.mutation.ClearCompanyDescription()
	return _u
}

// SetTone sets the "tone" field.
func (_u *AgentUpdate) SetTone(v agent.Tone) *AgentUpdate {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTone(v *agent.Tone) *AgentUpdate {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AgentUpdate) SetLanguage(v string) *AgentUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLanguage(v *string) *AgentUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetGreetingMessage sets the "greeting_message" field.
func (_u *AgentUpdate) SetGreetingMessage(v string) *AgentUpdate {
	_u.mutation.SetGreetingMessage(v)
	return _u
}

// SetNillableGreetingMessage sets the "greeting_message" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableGreetingMessage(v *string) *AgentUpdate {
	if v != nil {
		_u.SetGreetingMessage(*v)
	}
	return _u
}

// ClearGreetingMessage clears the value of the "greeting_message" field.
func (_u *AgentUpdate) ClearGreetingMessage() *AgentUpdate {
	_u.mutation.ClearGreetingMessage()
	return _u
}

// SetSalesStrategy sets the "sales_strategy" field.
func (_u *AgentUpdate) SetSalesStrategy(v string) *AgentUpdate {
	_u.mutation.SetSalesStrategy(v)
	return _u
}

// SetNillableSalesStrategy sets the "sales_strategy" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableSalesStrategy(v *string) *AgentUpdate {
	if v != nil {
		_u.SetSalesStrategy(*v)
	}
	return _u
}

// ClearSalesStrategy clears the value of the "sales_strategy" field.
func (_u *AgentUpdate) ClearSalesStrategy() *AgentUpdate {
	_u.mutation.ClearSalesStrategy()
	return _u
}

// SetProducts sets the "products" field.
func (_u *AgentUpdate) SetProducts(v []models.ProductRef) *AgentUpdate {
	_u.mutation.SetProducts(v)
	return _u
}

// AppendProducts appends value to the "products" field.
func (_u *AgentUpdate) AppendProducts(v []models.ProductRef) *AgentUpdate {
	_u.mutation.AppendProducts(v)
	return _u
}

// ClearProducts clears the value of the "products" field.
func (_u *AgentUpdate) ClearProducts() *AgentUpdate {
	_u.mutation.ClearProducts()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentUpdate) SetIsActive(v bool) *AgentUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableIsActive(v *bool) *AgentUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCatalogIDs adds the "catalog" edge to the Product entity by IDs.
func (_u *AgentUpdate) AddCatalogIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddCatalogIDs(ids...)
	return _u
}

// AddCatalog adds the "catalog" edges to the Product entity.
func (_u *AgentUpdate) AddCatalog(v ...*Product) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCatalogIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *AgentUpdate) AddConversationIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *AgentUpdate) AddConversations(v ...*Conversation) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddTrainingDatumIDs adds the "training_data" edge to the TrainingData entity by IDs.
func (_u *AgentUpdate) AddTrainingDatumIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddTrainingDatumIDs(ids...)
	return _u
}

// AddTrainingData adds the "training_data" edges to the TrainingData entity.
func (_u *AgentUpdate) AddTrainingData(v ...*TrainingData) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingDatumIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *AgentUpdate) AddOrderIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *AgentUpdate) AddOrders(v ...*Order) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearCatalog clears all "catalog" edges to the Product entity.
func (_u *AgentUpdate) ClearCatalog() *AgentUpdate {
	_u.mutation.ClearCatalog()
	return _u
}

// RemoveCatalogIDs removes the "catalog" edge to Product entities by IDs.
func (_u *AgentUpdate) RemoveCatalogIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveCatalogIDs(ids...)
	return _u
}

// RemoveCatalog removes "catalog" edges to Product entities.
func (_u *AgentUpdate) RemoveCatalog(v ...*Product) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCatalogIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *AgentUpdate) ClearConversations() *AgentUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *AgentUpdate) RemoveConversationIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *AgentUpdate) RemoveConversations(v ...*Conversation) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearTrainingData clears all "training_data" edges to the TrainingData entity.
func (_u *AgentUpdate) ClearTrainingData() *AgentUpdate {
	_u.mutation.ClearTrainingData()
	return _u
}

// RemoveTrainingDatumIDs removes the "training_data" edge to TrainingData entities by IDs.
func (_u *AgentUpdate) RemoveTrainingDatumIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveTrainingDatumIDs(ids...)
	return _u
}

// RemoveTrainingData removes "training_data" edges to TrainingData entities.
func (_u *AgentUpdate) RemoveTrainingData(v ...*TrainingData) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingDatumIDs(ids...)
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *AgentUpdate) ClearOrders() *AgentUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *AgentUpdate) RemoveOrderIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *AgentUpdate) RemoveOrders(v ...*Order) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.Tone(); ok {
		if err := agent.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "Agent.tone": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(agent.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyDescription(); ok {
		_spec.SetField(agent.FieldCompanyDescription, field.TypeString, value)
	}
	if _u.mutation.CompanyDescriptionCleared() {
		_spec.ClearField(agent.FieldCompanyDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(agent.FieldTone, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(agent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GreetingMessage(); ok {
		_spec.SetField(agent.FieldGreetingMessage, field.TypeString, value)
	}
	if _u.mutation.GreetingMessageCleared() {
		_spec.ClearField(agent.FieldGreetingMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SalesStrategy(); ok {
		_spec.SetField(agent.FieldSalesStrategy, field.TypeString, value)
	}
	if _u.mutation.SalesStrategyCleared() {
		_spec.ClearField(agent.FieldSalesStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.Products(); ok {
		_spec.SetField(agent.FieldProducts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProducts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldProducts, value)
		})
	}
	if _u.mutation.ProductsCleared() {
		_spec.ClearField(agent.FieldProducts, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agent.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CatalogCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCatalogIDs(); len(nodes) > 0 && !_u.mutation.CatalogCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CatalogIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainingDataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingDataIDs(); len(nodes) > 0 && !_u.mutation.TrainingDataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingDataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetName sets the "name" field.
func (_u *AgentUpdateOne) SetName(v string) *AgentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *AgentUpdateOne) SetCompanyName(v string) *AgentUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCompanyName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// SetCompanyDescription sets the "company_description" field.
func (_u *AgentUpdateOne) SetCompanyDescription(v string) *AgentUpdateOne {
	_u.mutation.SetCompanyDescription(v)
	return _u
}

// SetNillableCompanyDescription sets the "company_description" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableCompanyDescription(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetCompanyDescription(*v)
	}
	return _u
}

// ClearCompanyDescription clears the value of the "company_description" field.
func (_u *AgentUpdateOne) ClearCompanyDescription() *AgentUpdateOne {
	_u.mutation.ClearCompanyDescription()
	return _u
}

// SetTone sets the "tone" field.
func (_u *AgentUpdateOne) SetTone(v agent.Tone) *AgentUpdateOne {
	_u.mutation.SetTone(v)
	return _u
}

// SetNillableTone sets the "tone" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTone(v *agent.Tone) *AgentUpdateOne {
	if v != nil {
		_u.SetTone(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AgentUpdateOne) SetLanguage(v string) *AgentUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLanguage(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetGreetingMessage sets the "greeting_message" field.
func (_u *AgentUpdateOne) SetGreetingMessage(v string) *AgentUpdateOne {
	_u.mutation.SetGreetingMessage(v)
	return _u
}

// SetNillableGreetingMessage sets the "greeting_message" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableGreetingMessage(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetGreetingMessage(*v)
	}
	return _u
}

// ClearGreetingMessage clears the value of the "greeting_message" field.
func (_u *AgentUpdateOne) ClearGreetingMessage() *AgentUpdateOne {
	_u.mutation.ClearGreetingMessage()
	return _u
}

// SetSalesStrategy sets the "sales_strategy" field.
func (_u *AgentUpdateOne) SetSalesStrategy(v string) *AgentUpdateOne {
	_u.mutation.SetSalesStrategy(v)
	return _u
}

// SetNillableSalesStrategy sets the "sales_strategy" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableSalesStrategy(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetSalesStrategy(*v)
	}
	return _u
}

// ClearSalesStrategy clears the value of the "sales_strategy" field.
func (_u *AgentUpdateOne) ClearSalesStrategy() *AgentUpdateOne {
	_u.mutation.ClearSalesStrategy()
	return _u
}

// SetProducts sets the "products" field.
func (_u *AgentUpdateOne) SetProducts(v []models.ProductRef) *AgentUpdateOne {
	_u.mutation.SetProducts(v)
	return _u
}

// AppendProducts appends value to the "products" field.
func (_u *AgentUpdateOne) AppendProducts(v []models.ProductRef) *AgentUpdateOne {
	_u.mutation.AppendProducts(v)
	return _u
}

// ClearProducts clears the value of the "products" field.
func (_u *AgentUpdateOne) ClearProducts() *AgentUpdateOne {
	_u.mutation.ClearProducts()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentUpdateOne) SetIsActive(v bool) *AgentUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableIsActive(v *bool) *AgentUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCatalogIDs adds the "catalog" edge to the Product entity by IDs.
func (_u *AgentUpdateOne) AddCatalogIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddCatalogIDs(ids...)
	return _u
}

// AddCatalog adds the "catalog" edges to the Product entity.
func (_u *AgentUpdateOne) AddCatalog(v ...*Product) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCatalogIDs(ids...)
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by IDs.
func (_u *AgentUpdateOne) AddConversationIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the Conversation entity.
func (_u *AgentUpdateOne) AddConversations(v ...*Conversation) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// AddTrainingDatumIDs adds the "training_data" edge to the TrainingData entity by IDs.
func (_u *AgentUpdateOne) AddTrainingDatumIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddTrainingDatumIDs(ids...)
	return _u
}

// AddTrainingData adds the "training_data" edges to the TrainingData entity.
func (_u *AgentUpdateOne) AddTrainingData(v ...*TrainingData) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTrainingDatumIDs(ids...)
}

// AddOrderIDs adds the "orders" edge to the Order entity by IDs.
func (_u *AgentUpdateOne) AddOrderIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the Order entity.
func (_u *AgentUpdateOne) AddOrders(v ...*Order) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearCatalog clears all "catalog" edges to the Product entity.
func (_u *AgentUpdateOne) ClearCatalog() *AgentUpdateOne {
	_u.mutation.ClearCatalog()
	return _u
}

// RemoveCatalogIDs removes the "catalog" edge to Product entities by IDs.
func (_u *AgentUpdateOne) RemoveCatalogIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveCatalogIDs(ids...)
	return _u
}

// RemoveCatalog removes "catalog" edges to Product entities.
func (_u *AgentUpdateOne) RemoveCatalog(v ...*Product) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCatalogIDs(ids...)
}

// ClearConversations clears all "conversations" edges to the Conversation entity.
func (_u *AgentUpdateOne) ClearConversations() *AgentUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to Conversation entities by IDs.
func (_u *AgentUpdateOne) RemoveConversationIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to Conversation entities.
func (_u *AgentUpdateOne) RemoveConversations(v ...*Conversation) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// ClearTrainingData clears all "training_data" edges to the TrainingData entity.
func (_u *AgentUpdateOne) ClearTrainingData() *AgentUpdateOne {
	_u.mutation.ClearTrainingData()
	return _u
}

// RemoveTrainingDatumIDs removes the "training_data" edge to TrainingData entities by IDs.
func (_u *AgentUpdateOne) RemoveTrainingDatumIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveTrainingDatumIDs(ids...)
	return _u
}

// RemoveTrainingData removes "training_data" edges to TrainingData entities.
func (_u *AgentUpdateOne) RemoveTrainingData(v ...*TrainingData) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTrainingDatumIDs(ids...)
}

// ClearOrders clears all "orders" edges to the Order entity.
func (_u *AgentUpdateOne) ClearOrders() *AgentUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to Order entities by IDs.
func (_u *AgentUpdateOne) RemoveOrderIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to Order entities.
func (_u *AgentUpdateOne) RemoveOrders(v ...*Order) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.Tone(); ok {
		if err := agent.ToneValidator(v); err != nil {
			return &ValidationError{Name: "tone", err: fmt.Errorf(`ent: validator failed for field "Agent.tone": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(agent.FieldCompanyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyDescription(); ok {
		_spec.SetField(agent.FieldCompanyDescription, field.TypeString, value)
	}
	if _u.mutation.CompanyDescriptionCleared() {
		_spec.ClearField(agent.FieldCompanyDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Tone(); ok {
		_spec.SetField(agent.FieldTone, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(agent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.GreetingMessage(); ok {
		_spec.SetField(agent.FieldGreetingMessage, field.TypeString, value)
	}
	if _u.mutation.GreetingMessageCleared() {
		_spec.ClearField(agent.FieldGreetingMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SalesStrategy(); ok {
		_spec.SetField(agent.FieldSalesStrategy, field.TypeString, value)
	}
	if _u.mutation.SalesStrategyCleared() {
		_spec.ClearField(agent.FieldSalesStrategy, field.TypeString)
	}
	if value, ok := _u.mutation.Products(); ok {
		_spec.SetField(agent.FieldProducts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedProducts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldProducts, value)
		})
	}
	if _u.mutation.ProductsCleared() {
		_spec.ClearField(agent.FieldProducts, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agent.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CatalogCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCatalogIDs(); len(nodes) > 0 && !_u.mutation.CatalogCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CatalogIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TrainingDataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTrainingDataIDs(); len(nodes) > 0 && !_u.mutation.TrainingDataCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TrainingDataIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

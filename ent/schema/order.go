package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/merxlab/merx/pkg/models"
)

// Order holds the schema definition for the Order entity.
type Order struct {
	ent.Schema
}

// Fields of the Order.
func (Order) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("order_id").
			Unique().
			Immutable(),
		field.String("order_number").
			Unique().
			Immutable().
			Comment("ORD-YYYY-NNNNNN, server assigned"),
		field.String("agent_id").
			Immutable(),
		field.String("session_id").
			Optional().
			Comment("Links the conversation that produced the order"),
		field.String("customer_name").
			Optional(),
		field.String("customer_email").
			Optional(),
		field.String("customer_phone").
			Optional(),
		field.Text("shipping_address").
			Optional(),
		field.JSON("items", []models.OrderItem{}),
		field.Float("total_amount").
			Default(0).
			Min(0),
		field.String("currency").
			Default("USD"),
		field.Enum("status").
			Values("pending", "confirmed", "processing", "packaged", "shipped", "delivered", "cancelled").
			Default("pending"),
		field.JSON("status_history", []models.StatusChange{}).
			Optional().
			Comment("Append-only, timestamps non-decreasing"),
		field.Text("notes").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Order.
func (Order) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("orders").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Order.
func (Order) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("agent_id", "session_id"),
		index.Fields("agent_id", "created_at"),
		index.Fields("status"),
	}
}

// Annotations pins the table name so SQL migrations stay in sync.
func (Order) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "orders"},
	}
}

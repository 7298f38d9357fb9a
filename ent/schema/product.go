package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Product holds the schema definition for the Product entity.
// One catalog item belonging to exactly one agent.
type Product struct {
	ent.Schema
}

// Fields of the Product.
func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("product_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Optional(),
		field.Text("detailed_description").
			Optional(),
		field.Float("price").
			Default(0).
			Min(0),
		field.String("currency").
			Default("USD").
			Comment("ISO-4217 code"),
		field.String("image_url").
			Optional(),
		field.String("category").
			Optional(),
		field.JSON("features", []string{}).
			Optional(),
		field.JSON("specifications", map[string]string{}).
			Optional(),
		field.Enum("stock_status").
			Values("in_stock", "low_stock", "out_of_stock", "pre_order", "discontinued").
			Default("in_stock"),
		field.String("sku").
			Optional(),
		field.Bool("is_featured").
			Default(false),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Product.
func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("catalog").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Product.
func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("agent_id", "is_active"),
		index.Fields("agent_id", "category"),
	}
}

// Annotations pins the table name so SQL migrations stay in sync.
func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

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

// Agent holds the schema definition for the Agent entity.
// A configured conversational sales assistant owned by one tenant.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable().
			Comment("Tenant id from the identity provider"),
		field.String("name"),
		field.String("company_name"),
		field.Text("company_description").
			Optional(),
		field.Enum("tone").
			Values("friendly", "professional", "casual", "formal").
			Default("friendly"),
		field.String("language").
			Default("en").
			Comment("BCP-47 tag"),
		field.Text("greeting_message").
			Optional(),
		field.Text("sales_strategy").
			Optional(),
		field.JSON("products", []models.ProductRef{}).
			Optional().
			Comment("Configured product list; entries are plain names or structured specs"),
		field.String("index_namespace").
			Unique().
			Immutable().
			Comment("Vector index filter key, assigned at creation and never reused"),
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

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("catalog", Product.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("conversations", Conversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("training_data", TrainingData.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("orders", Order.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("owner_id", "created_at"),
		index.Fields("is_active"),
	}
}

// Annotations pins the table name so SQL migrations stay in sync.
func (Agent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agents"},
	}
}

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

// Conversation holds the schema definition for the Conversation entity.
// One row accumulates every turn of a single end-user session with an agent.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("session_id").
			Immutable().
			Comment("Opaque end-user session token"),
		field.JSON("messages", []models.ChatMessage{}).
			Optional().
			Comment("Append-only transcript"),
		field.JSON("lead_info", models.LeadInfo{}).
			Optional().
			Comment("Extracted customer data, merged monotonically"),
		field.String("channel").
			Default("web").
			Comment("web, embed, telegram, ..."),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("conversations").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		// One row per (agent, session)
		index.Fields("agent_id", "session_id").
			Unique(),
		index.Fields("agent_id", "created_at"),
		index.Fields("created_at"),
	}
}

// Annotations pins the table name so SQL migrations stay in sync.
func (Conversation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "conversations"},
	}
}

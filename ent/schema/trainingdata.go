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

// TrainingData holds the schema definition for the TrainingData entity.
// One row per ingestion request; its id doubles as the vector source_id.
type TrainingData struct {
	ent.Schema
}

// Fields of the TrainingData.
func (TrainingData) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("training_data_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Enum("type").
			Values("pdf", "url", "faq", "text"),
		field.Enum("status").
			Values("processing", "completed", "failed").
			Default("processing").
			Comment("Transitions only processing -> completed|failed"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("filename, url, chunks_created, error, ..."),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the TrainingData.
func (TrainingData) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("training_data").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TrainingData.
func (TrainingData) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("agent_id", "status"),
		// Startup recovery scans for rows stuck in processing
		index.Fields("status"),
	}
}

// Annotations pins the table name so SQL migrations stay in sync.
func (TrainingData) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "training_data"},
	}
}

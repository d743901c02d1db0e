package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HumanInputInteraction is the audit record for every human input delivered
// to a paused execution. Persisted separately from the execution row.
type HumanInputInteraction struct {
	ent.Schema
}

// Fields of the HumanInputInteraction.
func (HumanInputInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("agent_id").
			Comment("UserProxy node that received the input"),
		field.String("agent_name"),
		field.Text("input"),
		field.Enum("action").
			Values("submit", "iterate"),
		field.Int("iteration").
			Optional().
			Nillable().
			Comment("Reflection iteration this input belongs to"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the HumanInputInteraction.
func (HumanInputInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("human_inputs").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HumanInputInteraction.
func (HumanInputInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "created_at"),
	}
}

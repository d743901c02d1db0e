package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds the audit record for a single LLM call made on behalf
// of an execution (node prompts, query splitting, delegate matching,
// synthesis).
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("llm_interaction_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("node_id").
			Optional().
			Comment("Node on whose behalf the call was made"),
		field.String("provider"),
		field.String("model"),
		field.String("purpose").
			Comment("node_prompt, query_split, delegate_match, delegation, synthesis"),
		field.Text("prompt"),
		field.Text("response").
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("token_count").
			Optional().
			Nillable(),
		field.Int("response_time_ms").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("llm_interactions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "created_at"),
	}
}

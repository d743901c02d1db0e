package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionMessage holds the schema definition for rendered conversation
// history. Append-only; sequence numbers are strictly monotonic per execution.
type ExecutionMessage struct {
	ent.Schema
}

// Fields of the ExecutionMessage.
func (ExecutionMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("execution_id").
			Immutable(),
		field.String("agent_name"),
		field.String("agent_type").
			Comment("Node type that produced the message"),
		field.Text("content"),
		field.String("message_type").
			Comment("agent_response, human_input, reflection_final, system, error"),
		field.Int("sequence").
			Comment("Execution-scoped order, last_index + 1 at append"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionMessage.
func (ExecutionMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution", WorkflowExecution.Type).
			Ref("messages").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExecutionMessage.
func (ExecutionMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("execution_id", "sequence").
			Unique(),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowExecution holds the schema definition for a single workflow run.
// One row per execution; the row is the only durable shared state the engine
// mutates, always via atomic upsert.
type WorkflowExecution struct {
	ent.Schema
}

// Fields of the WorkflowExecution.
func (WorkflowExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Comment("Owning project (credential scope)"),
		field.JSON("workflow", map[string]interface{}{}).
			Comment("Submitted workflow graph (nodes + edges)"),
		field.Text("input").
			Comment("Initial prompt submitted with the graph"),
		field.Enum("status").
			Values("pending", "running", "awaiting_human_input", "completed", "failed", "stopped").
			Default("pending"),
		field.JSON("executed_nodes", map[string]string{}).
			Optional().
			Comment("node_id -> textual output of each completed node"),
		field.Text("conversation_history").
			Optional().
			Comment("Concatenated transcript consumed by downstream prompts"),
		field.Bool("human_input_required").
			Default(false),
		field.String("awaiting_human_input_agent").
			Optional().
			Nillable(),
		field.String("human_input_agent_id").
			Optional().
			Nillable(),
		field.JSON("human_input_context", map[string]interface{}{}).
			Optional().
			Comment("Inputs shown to the human plus reflection routing state"),
		field.Time("human_input_requested_at").
			Optional().
			Nillable(),
		field.Time("human_input_received_at").
			Optional().
			Nillable(),
		field.JSON("delegate_conversations", map[string]interface{}{}).
			Optional().
			Comment("Structured GCM delegate transcripts for replay"),
		field.Text("final_output").
			Optional().
			Nillable(),
		field.String("result_summary").
			Optional().
			Nillable(),
		field.Int("total_agents_involved").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the execution was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the execution"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Float("duration_seconds").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination and orphan detection"),
	}
}

// Edges of the WorkflowExecution.
func (WorkflowExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", ExecutionMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("human_inputs", HumanInputInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowExecution.
func (WorkflowExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("project_id"),
		index.Fields("status", "created_at"),
		index.Fields("status", "human_input_requested_at"),
		index.Fields("pod_id"),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExecutionMessagesColumns holds the columns for the "execution_messages" table.
	ExecutionMessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "agent_type", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "message_type", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// ExecutionMessagesTable holds the schema information for the "execution_messages" table.
	ExecutionMessagesTable = &schema.Table{
		Name:       "execution_messages",
		Columns:    ExecutionMessagesColumns,
		PrimaryKey: []*schema.Column{ExecutionMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_messages_workflow_executions_messages",
				Columns:    []*schema.Column{ExecutionMessagesColumns[8]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionmessage_execution_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{ExecutionMessagesColumns[8], ExecutionMessagesColumns[5]},
			},
		},
	}
	// HumanInputInteractionsColumns holds the columns for the "human_input_interactions" table.
	HumanInputInteractionsColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "agent_name", Type: field.TypeString},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "action", Type: field.TypeEnum, Enums: []string{"submit", "iterate"}},
		{Name: "iteration", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// HumanInputInteractionsTable holds the schema information for the "human_input_interactions" table.
	HumanInputInteractionsTable = &schema.Table{
		Name:       "human_input_interactions",
		Columns:    HumanInputInteractionsColumns,
		PrimaryKey: []*schema.Column{HumanInputInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "human_input_interactions_workflow_executions_human_inputs",
				Columns:    []*schema.Column{HumanInputInteractionsColumns[7]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "humaninputinteraction_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HumanInputInteractionsColumns[7], HumanInputInteractionsColumns[6]},
			},
		},
	}
	// LlmInteractionsColumns holds the columns for the "llm_interactions" table.
	LlmInteractionsColumns = []*schema.Column{
		{Name: "llm_interaction_id", Type: field.TypeString, Unique: true},
		{Name: "node_id", Type: field.TypeString, Nullable: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "response", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "token_count", Type: field.TypeInt, Nullable: true},
		{Name: "response_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "execution_id", Type: field.TypeString},
	}
	// LlmInteractionsTable holds the schema information for the "llm_interactions" table.
	LlmInteractionsTable = &schema.Table{
		Name:       "llm_interactions",
		Columns:    LlmInteractionsColumns,
		PrimaryKey: []*schema.Column{LlmInteractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "llm_interactions_workflow_executions_llm_interactions",
				Columns:    []*schema.Column{LlmInteractionsColumns[11]},
				RefColumns: []*schema.Column{WorkflowExecutionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "llminteraction_execution_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LlmInteractionsColumns[11], LlmInteractionsColumns[10]},
			},
		},
	}
	// ProjectCredentialsColumns holds the columns for the "project_credentials" table.
	ProjectCredentialsColumns = []*schema.Column{
		{Name: "credential_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "ciphertext", Type: field.TypeBytes},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectCredentialsTable holds the schema information for the "project_credentials" table.
	ProjectCredentialsTable = &schema.Table{
		Name:       "project_credentials",
		Columns:    ProjectCredentialsColumns,
		PrimaryKey: []*schema.Column{ProjectCredentialsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "projectcredential_project_id_provider",
				Unique:  true,
				Columns: []*schema.Column{ProjectCredentialsColumns[1], ProjectCredentialsColumns[2]},
			},
		},
	}
	// WorkflowExecutionsColumns holds the columns for the "workflow_executions" table.
	WorkflowExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "workflow", Type: field.TypeJSON},
		{Name: "input", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "awaiting_human_input", "completed", "failed", "stopped"}, Default: "pending"},
		{Name: "executed_nodes", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "human_input_required", Type: field.TypeBool, Default: false},
		{Name: "awaiting_human_input_agent", Type: field.TypeString, Nullable: true},
		{Name: "human_input_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "human_input_context", Type: field.TypeJSON, Nullable: true},
		{Name: "human_input_requested_at", Type: field.TypeTime, Nullable: true},
		{Name: "human_input_received_at", Type: field.TypeTime, Nullable: true},
		{Name: "delegate_conversations", Type: field.TypeJSON, Nullable: true},
		{Name: "final_output", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_summary", Type: field.TypeString, Nullable: true},
		{Name: "total_agents_involved", Type: field.TypeInt, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "duration_seconds", Type: field.TypeFloat64, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
	}
	// WorkflowExecutionsTable holds the schema information for the "workflow_executions" table.
	WorkflowExecutionsTable = &schema.Table{
		Name:       "workflow_executions",
		Columns:    WorkflowExecutionsColumns,
		PrimaryKey: []*schema.Column{WorkflowExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowexecution_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[4]},
			},
			{
				Name:    "workflowexecution_project_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[1]},
			},
			{
				Name:    "workflowexecution_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[4], WorkflowExecutionsColumns[18]},
			},
			{
				Name:    "workflowexecution_status_human_input_requested_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[4], WorkflowExecutionsColumns[11]},
			},
			{
				Name:    "workflowexecution_pod_id",
				Unique:  false,
				Columns: []*schema.Column{WorkflowExecutionsColumns[22]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExecutionMessagesTable,
		HumanInputInteractionsTable,
		LlmInteractionsTable,
		ProjectCredentialsTable,
		WorkflowExecutionsTable,
	}
)

func init() {
	ExecutionMessagesTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	HumanInputInteractionsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
	LlmInteractionsTable.ForeignKeys[0].RefTable = WorkflowExecutionsTable
}

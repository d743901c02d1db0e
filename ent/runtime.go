// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/projectcredential"
	"github.com/weftworks/weft/ent/schema"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	executionmessageFields := schema.ExecutionMessage{}.Fields()
	_ = executionmessageFields
	// executionmessageDescCreatedAt is the schema descriptor for created_at field.
	executionmessageDescCreatedAt := executionmessageFields[8].Descriptor()
	// executionmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionmessage.DefaultCreatedAt = executionmessageDescCreatedAt.Default.(func() time.Time)
	humaninputinteractionFields := schema.HumanInputInteraction{}.Fields()
	_ = humaninputinteractionFields
	// humaninputinteractionDescCreatedAt is the schema descriptor for created_at field.
	humaninputinteractionDescCreatedAt := humaninputinteractionFields[7].Descriptor()
	// humaninputinteraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	humaninputinteraction.DefaultCreatedAt = humaninputinteractionDescCreatedAt.Default.(func() time.Time)
	llminteractionFields := schema.LLMInteraction{}.Fields()
	_ = llminteractionFields
	// llminteractionDescCreatedAt is the schema descriptor for created_at field.
	llminteractionDescCreatedAt := llminteractionFields[11].Descriptor()
	// llminteraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	llminteraction.DefaultCreatedAt = llminteractionDescCreatedAt.Default.(func() time.Time)
	projectcredentialFields := schema.ProjectCredential{}.Fields()
	_ = projectcredentialFields
	// projectcredentialDescCreatedAt is the schema descriptor for created_at field.
	projectcredentialDescCreatedAt := projectcredentialFields[4].Descriptor()
	// projectcredential.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectcredential.DefaultCreatedAt = projectcredentialDescCreatedAt.Default.(func() time.Time)
	// projectcredentialDescUpdatedAt is the schema descriptor for updated_at field.
	projectcredentialDescUpdatedAt := projectcredentialFields[5].Descriptor()
	// projectcredential.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	projectcredential.DefaultUpdatedAt = projectcredentialDescUpdatedAt.Default.(func() time.Time)
	// projectcredential.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	projectcredential.UpdateDefaultUpdatedAt = projectcredentialDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowexecutionFields := schema.WorkflowExecution{}.Fields()
	_ = workflowexecutionFields
	// workflowexecutionDescHumanInputRequired is the schema descriptor for human_input_required field.
	workflowexecutionDescHumanInputRequired := workflowexecutionFields[7].Descriptor()
	// workflowexecution.DefaultHumanInputRequired holds the default value on creation for the human_input_required field.
	workflowexecution.DefaultHumanInputRequired = workflowexecutionDescHumanInputRequired.Default.(bool)
	// workflowexecutionDescCreatedAt is the schema descriptor for created_at field.
	workflowexecutionDescCreatedAt := workflowexecutionFields[18].Descriptor()
	// workflowexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowexecution.DefaultCreatedAt = workflowexecutionDescCreatedAt.Default.(func() time.Time)
}

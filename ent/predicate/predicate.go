// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExecutionMessage is the predicate function for executionmessage builders.
type ExecutionMessage func(*sql.Selector)

// HumanInputInteraction is the predicate function for humaninputinteraction builders.
type HumanInputInteraction func(*sql.Selector)

// LLMInteraction is the predicate function for llminteraction builders.
type LLMInteraction func(*sql.Selector)

// ProjectCredential is the predicate function for projectcredential builders.
type ProjectCredential func(*sql.Selector)

// WorkflowExecution is the predicate function for workflowexecution builders.
type WorkflowExecution func(*sql.Selector)

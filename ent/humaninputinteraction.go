// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// HumanInputInteraction is the model entity for the HumanInputInteraction schema.
type HumanInputInteraction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExecutionID holds the value of the "execution_id" field.
	ExecutionID string `json:"execution_id,omitempty"`
	// UserProxy node that received the input
	AgentID string `json:"agent_id,omitempty"`
	// AgentName holds the value of the "agent_name" field.
	AgentName string `json:"agent_name,omitempty"`
	// Input holds the value of the "input" field.
	Input string `json:"input,omitempty"`
	// Action holds the value of the "action" field.
	Action humaninputinteraction.Action `json:"action,omitempty"`
	// Reflection iteration this input belongs to
	Iteration *int `json:"iteration,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HumanInputInteractionQuery when eager-loading is set.
	Edges        HumanInputInteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HumanInputInteractionEdges holds the relations/edges for other nodes in the graph.
type HumanInputInteractionEdges struct {
	// Execution holds the value of the execution edge.
	Execution *WorkflowExecution `json:"execution,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionOrErr returns the Execution value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HumanInputInteractionEdges) ExecutionOrErr() (*WorkflowExecution, error) {
	if e.Execution != nil {
		return e.Execution, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: workflowexecution.Label}
	}
	return nil, &NotLoadedError{edge: "execution"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HumanInputInteraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case humaninputinteraction.FieldIteration:
			values[i] = new(sql.NullInt64)
		case humaninputinteraction.FieldID, humaninputinteraction.FieldExecutionID, humaninputinteraction.FieldAgentID, humaninputinteraction.FieldAgentName, humaninputinteraction.FieldInput, humaninputinteraction.FieldAction:
			values[i] = new(sql.NullString)
		case humaninputinteraction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HumanInputInteraction fields.
func (_m *HumanInputInteraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case humaninputinteraction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case humaninputinteraction.FieldExecutionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_id", values[i])
			} else if value.Valid {
				_m.ExecutionID = value.String
			}
		case humaninputinteraction.FieldAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = value.String
			}
		case humaninputinteraction.FieldAgentName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_name", values[i])
			} else if value.Valid {
				_m.AgentName = value.String
			}
		case humaninputinteraction.FieldInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value.Valid {
				_m.Input = value.String
			}
		case humaninputinteraction.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				_m.Action = humaninputinteraction.Action(value.String)
			}
		case humaninputinteraction.FieldIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field iteration", values[i])
			} else if value.Valid {
				_m.Iteration = new(int)
				*_m.Iteration = int(value.Int64)
			}
		case humaninputinteraction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HumanInputInteraction.
// This includes values selected through modifiers, order, etc.
func (_m *HumanInputInteraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecution queries the "execution" edge of the HumanInputInteraction entity.
func (_m *HumanInputInteraction) QueryExecution() *WorkflowExecutionQuery {
	return NewHumanInputInteractionClient(_m.config).QueryExecution(_m)
}

// Update returns a builder for updating this HumanInputInteraction.
// Note that you need to call HumanInputInteraction.Unwrap() before calling this method if this HumanInputInteraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HumanInputInteraction) Update() *HumanInputInteractionUpdateOne {
	return NewHumanInputInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HumanInputInteraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HumanInputInteraction) Unwrap() *HumanInputInteraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HumanInputInteraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HumanInputInteraction) String() string {
	var builder strings.Builder
	builder.WriteString("HumanInputInteraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("execution_id=")
	builder.WriteString(_m.ExecutionID)
	builder.WriteString(", ")
	builder.WriteString("agent_id=")
	builder.WriteString(_m.AgentID)
	builder.WriteString(", ")
	builder.WriteString("agent_name=")
	builder.WriteString(_m.AgentName)
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(_m.Input)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(fmt.Sprintf("%v", _m.Action))
	builder.WriteString(", ")
	if v := _m.Iteration; v != nil {
		builder.WriteString("iteration=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HumanInputInteractions is a parsable slice of HumanInputInteraction.
type HumanInputInteractions []*HumanInputInteraction

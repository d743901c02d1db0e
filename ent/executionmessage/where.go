// Code generated by ent, DO NOT EDIT.

package executionmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldExecutionID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldAgentName, v))
}

// AgentType applies equality check predicate on the "agent_type" field. It's identical to AgentTypeEQ.
func AgentType(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldAgentType, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldContent, v))
}

// MessageType applies equality check predicate on the "message_type" field. It's identical to MessageTypeEQ.
func MessageType(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldMessageType, v))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldSequence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContainsFold(FieldExecutionID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContainsFold(FieldAgentName, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldAgentType, vs...))
}

// AgentTypeGT applies the GT predicate on the "agent_type" field.
func AgentTypeGT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldAgentType, v))
}

// AgentTypeGTE applies the GTE predicate on the "agent_type" field.
func AgentTypeGTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldAgentType, v))
}

// AgentTypeLT applies the LT predicate on the "agent_type" field.
func AgentTypeLT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldAgentType, v))
}

// AgentTypeLTE applies the LTE predicate on the "agent_type" field.
func AgentTypeLTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldAgentType, v))
}

// AgentTypeContains applies the Contains predicate on the "agent_type" field.
func AgentTypeContains(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContains(FieldAgentType, v))
}

// AgentTypeHasPrefix applies the HasPrefix predicate on the "agent_type" field.
func AgentTypeHasPrefix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasPrefix(FieldAgentType, v))
}

// AgentTypeHasSuffix applies the HasSuffix predicate on the "agent_type" field.
func AgentTypeHasSuffix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasSuffix(FieldAgentType, v))
}

// AgentTypeEqualFold applies the EqualFold predicate on the "agent_type" field.
func AgentTypeEqualFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEqualFold(FieldAgentType, v))
}

// AgentTypeContainsFold applies the ContainsFold predicate on the "agent_type" field.
func AgentTypeContainsFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContainsFold(FieldAgentType, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContainsFold(FieldContent, v))
}

// MessageTypeEQ applies the EQ predicate on the "message_type" field.
func MessageTypeEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldMessageType, v))
}

// MessageTypeNEQ applies the NEQ predicate on the "message_type" field.
func MessageTypeNEQ(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldMessageType, v))
}

// MessageTypeIn applies the In predicate on the "message_type" field.
func MessageTypeIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldMessageType, vs...))
}

// MessageTypeNotIn applies the NotIn predicate on the "message_type" field.
func MessageTypeNotIn(vs ...string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldMessageType, vs...))
}

// MessageTypeGT applies the GT predicate on the "message_type" field.
func MessageTypeGT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldMessageType, v))
}

// MessageTypeGTE applies the GTE predicate on the "message_type" field.
func MessageTypeGTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldMessageType, v))
}

// MessageTypeLT applies the LT predicate on the "message_type" field.
func MessageTypeLT(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldMessageType, v))
}

// MessageTypeLTE applies the LTE predicate on the "message_type" field.
func MessageTypeLTE(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldMessageType, v))
}

// MessageTypeContains applies the Contains predicate on the "message_type" field.
func MessageTypeContains(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContains(FieldMessageType, v))
}

// MessageTypeHasPrefix applies the HasPrefix predicate on the "message_type" field.
func MessageTypeHasPrefix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasPrefix(FieldMessageType, v))
}

// MessageTypeHasSuffix applies the HasSuffix predicate on the "message_type" field.
func MessageTypeHasSuffix(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldHasSuffix(FieldMessageType, v))
}

// MessageTypeEqualFold applies the EqualFold predicate on the "message_type" field.
func MessageTypeEqualFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEqualFold(FieldMessageType, v))
}

// MessageTypeContainsFold applies the ContainsFold predicate on the "message_type" field.
func MessageTypeContainsFold(v string) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldContainsFold(FieldMessageType, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldSequence, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.ExecutionMessage {
	return predicate.ExecutionMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionMessage) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionMessage) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionMessage) predicate.ExecutionMessage {
	return predicate.ExecutionMessage(sql.NotPredicates(p))
}

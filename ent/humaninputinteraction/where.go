// Code generated by ent, DO NOT EDIT.

package humaninputinteraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContainsFold(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldExecutionID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldAgentID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldAgentName, v))
}

// Input applies equality check predicate on the "input" field. It's identical to InputEQ.
func Input(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldInput, v))
}

// Iteration applies equality check predicate on the "iteration" field. It's identical to IterationEQ.
func Iteration(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldIteration, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContainsFold(FieldExecutionID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContainsFold(FieldAgentID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContainsFold(FieldAgentName, v))
}

// InputEQ applies the EQ predicate on the "input" field.
func InputEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldInput, v))
}

// InputNEQ applies the NEQ predicate on the "input" field.
func InputNEQ(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldInput, v))
}

// InputIn applies the In predicate on the "input" field.
func InputIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldInput, vs...))
}

// InputNotIn applies the NotIn predicate on the "input" field.
func InputNotIn(vs ...string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldInput, vs...))
}

// InputGT applies the GT predicate on the "input" field.
func InputGT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldInput, v))
}

// InputGTE applies the GTE predicate on the "input" field.
func InputGTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldInput, v))
}

// InputLT applies the LT predicate on the "input" field.
func InputLT(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldInput, v))
}

// InputLTE applies the LTE predicate on the "input" field.
func InputLTE(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldInput, v))
}

// InputContains applies the Contains predicate on the "input" field.
func InputContains(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContains(FieldInput, v))
}

// InputHasPrefix applies the HasPrefix predicate on the "input" field.
func InputHasPrefix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasPrefix(FieldInput, v))
}

// InputHasSuffix applies the HasSuffix predicate on the "input" field.
func InputHasSuffix(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldHasSuffix(FieldInput, v))
}

// InputEqualFold applies the EqualFold predicate on the "input" field.
func InputEqualFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEqualFold(FieldInput, v))
}

// InputContainsFold applies the ContainsFold predicate on the "input" field.
func InputContainsFold(v string) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldContainsFold(FieldInput, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldAction, vs...))
}

// IterationEQ applies the EQ predicate on the "iteration" field.
func IterationEQ(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldIteration, v))
}

// IterationNEQ applies the NEQ predicate on the "iteration" field.
func IterationNEQ(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldIteration, v))
}

// IterationIn applies the In predicate on the "iteration" field.
func IterationIn(vs ...int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldIteration, vs...))
}

// IterationNotIn applies the NotIn predicate on the "iteration" field.
func IterationNotIn(vs ...int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldIteration, vs...))
}

// IterationGT applies the GT predicate on the "iteration" field.
func IterationGT(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldIteration, v))
}

// IterationGTE applies the GTE predicate on the "iteration" field.
func IterationGTE(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldIteration, v))
}

// IterationLT applies the LT predicate on the "iteration" field.
func IterationLT(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldIteration, v))
}

// IterationLTE applies the LTE predicate on the "iteration" field.
func IterationLTE(v int) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldIteration, v))
}

// IterationIsNil applies the IsNil predicate on the "iteration" field.
func IterationIsNil() predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIsNull(FieldIteration))
}

// IterationNotNil applies the NotNil predicate on the "iteration" field.
func IterationNotNil() predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotNull(FieldIteration))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HumanInputInteraction) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HumanInputInteraction) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HumanInputInteraction) predicate.HumanInputInteraction {
	return predicate.HumanInputInteraction(sql.NotPredicates(p))
}

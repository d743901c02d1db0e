// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/projectcredential"
	"github.com/weftworks/weft/ent/workflowexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExecutionMessage      = "ExecutionMessage"
	TypeHumanInputInteraction = "HumanInputInteraction"
	TypeLLMInteraction        = "LLMInteraction"
	TypeProjectCredential     = "ProjectCredential"
	TypeWorkflowExecution     = "WorkflowExecution"
)

// ExecutionMessageMutation represents an operation that mutates the ExecutionMessage nodes in the graph.
type ExecutionMessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_name       *string
	agent_type       *string
	content          *string
	message_type     *string
	sequence         *int
	addsequence      *int
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*ExecutionMessage, error)
	predicates       []predicate.ExecutionMessage
}

var _ ent.Mutation = (*ExecutionMessageMutation)(nil)

// executionmessageOption allows management of the mutation configuration using functional options.
type executionmessageOption func(*ExecutionMessageMutation)

// newExecutionMessageMutation creates new mutation for the ExecutionMessage entity.
func newExecutionMessageMutation(c config, op Op, opts ...executionmessageOption) *ExecutionMessageMutation {
	m := &ExecutionMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionMessageID sets the ID field of the mutation.
func withExecutionMessageID(id string) executionmessageOption {
	return func(m *ExecutionMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionMessage
		)
		m.oldValue = func(ctx context.Context) (*ExecutionMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionMessage sets the old ExecutionMessage of the mutation.
func withExecutionMessage(node *ExecutionMessage) executionmessageOption {
	return func(m *ExecutionMessageMutation) {
		m.oldValue = func(context.Context) (*ExecutionMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionMessage entities.
func (m *ExecutionMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *ExecutionMessageMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *ExecutionMessageMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *ExecutionMessageMutation) ResetExecutionID() {
	m.execution = nil
}

// SetAgentName sets the "agent_name" field.
func (m *ExecutionMessageMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *ExecutionMessageMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *ExecutionMessageMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetAgentType sets the "agent_type" field.
func (m *ExecutionMessageMutation) SetAgentType(s string) {
	m.agent_type = &s
}

// AgentType returns the value of the "agent_type" field in the mutation.
func (m *ExecutionMessageMutation) AgentType() (r string, exists bool) {
	v := m.agent_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentType returns the old "agent_type" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldAgentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentType: %w", err)
	}
	return oldValue.AgentType, nil
}

// ResetAgentType resets all changes to the "agent_type" field.
func (m *ExecutionMessageMutation) ResetAgentType() {
	m.agent_type = nil
}

// SetContent sets the "content" field.
func (m *ExecutionMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ExecutionMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ExecutionMessageMutation) ResetContent() {
	m.content = nil
}

// SetMessageType sets the "message_type" field.
func (m *ExecutionMessageMutation) SetMessageType(s string) {
	m.message_type = &s
}

// MessageType returns the value of the "message_type" field in the mutation.
func (m *ExecutionMessageMutation) MessageType() (r string, exists bool) {
	v := m.message_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageType returns the old "message_type" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldMessageType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageType: %w", err)
	}
	return oldValue.MessageType, nil
}

// ResetMessageType resets all changes to the "message_type" field.
func (m *ExecutionMessageMutation) ResetMessageType() {
	m.message_type = nil
}

// SetSequence sets the "sequence" field.
func (m *ExecutionMessageMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ExecutionMessageMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ExecutionMessageMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ExecutionMessageMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ExecutionMessageMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetMetadata sets the "metadata" field.
func (m *ExecutionMessageMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExecutionMessageMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExecutionMessageMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[executionmessage.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExecutionMessageMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[executionmessage.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExecutionMessageMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, executionmessage.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionMessage entity.
// If the ExecutionMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *ExecutionMessageMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[executionmessage.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *ExecutionMessageMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *ExecutionMessageMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *ExecutionMessageMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the ExecutionMessageMutation builder.
func (m *ExecutionMessageMutation) Where(ps ...predicate.ExecutionMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionMessage).
func (m *ExecutionMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionMessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.execution != nil {
		fields = append(fields, executionmessage.FieldExecutionID)
	}
	if m.agent_name != nil {
		fields = append(fields, executionmessage.FieldAgentName)
	}
	if m.agent_type != nil {
		fields = append(fields, executionmessage.FieldAgentType)
	}
	if m.content != nil {
		fields = append(fields, executionmessage.FieldContent)
	}
	if m.message_type != nil {
		fields = append(fields, executionmessage.FieldMessageType)
	}
	if m.sequence != nil {
		fields = append(fields, executionmessage.FieldSequence)
	}
	if m.metadata != nil {
		fields = append(fields, executionmessage.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, executionmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionmessage.FieldExecutionID:
		return m.ExecutionID()
	case executionmessage.FieldAgentName:
		return m.AgentName()
	case executionmessage.FieldAgentType:
		return m.AgentType()
	case executionmessage.FieldContent:
		return m.Content()
	case executionmessage.FieldMessageType:
		return m.MessageType()
	case executionmessage.FieldSequence:
		return m.Sequence()
	case executionmessage.FieldMetadata:
		return m.Metadata()
	case executionmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionmessage.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case executionmessage.FieldAgentName:
		return m.OldAgentName(ctx)
	case executionmessage.FieldAgentType:
		return m.OldAgentType(ctx)
	case executionmessage.FieldContent:
		return m.OldContent(ctx)
	case executionmessage.FieldMessageType:
		return m.OldMessageType(ctx)
	case executionmessage.FieldSequence:
		return m.OldSequence(ctx)
	case executionmessage.FieldMetadata:
		return m.OldMetadata(ctx)
	case executionmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionmessage.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case executionmessage.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case executionmessage.FieldAgentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentType(v)
		return nil
	case executionmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case executionmessage.FieldMessageType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageType(v)
		return nil
	case executionmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case executionmessage.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case executionmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionMessageMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, executionmessage.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionmessage.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionmessage.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionmessage.FieldMetadata) {
		fields = append(fields, executionmessage.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionMessageMutation) ClearField(name string) error {
	switch name {
	case executionmessage.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ExecutionMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionMessageMutation) ResetField(name string) error {
	switch name {
	case executionmessage.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case executionmessage.FieldAgentName:
		m.ResetAgentName()
		return nil
	case executionmessage.FieldAgentType:
		m.ResetAgentType()
		return nil
	case executionmessage.FieldContent:
		m.ResetContent()
		return nil
	case executionmessage.FieldMessageType:
		m.ResetMessageType()
		return nil
	case executionmessage.FieldSequence:
		m.ResetSequence()
		return nil
	case executionmessage.FieldMetadata:
		m.ResetMetadata()
		return nil
	case executionmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, executionmessage.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionmessage.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, executionmessage.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case executionmessage.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionMessageMutation) ClearEdge(name string) error {
	switch name {
	case executionmessage.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionMessageMutation) ResetEdge(name string) error {
	switch name {
	case executionmessage.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown ExecutionMessage edge %s", name)
}

// HumanInputInteractionMutation represents an operation that mutates the HumanInputInteraction nodes in the graph.
type HumanInputInteractionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_id         *string
	agent_name       *string
	input            *string
	action           *humaninputinteraction.Action
	iteration        *int
	additeration     *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*HumanInputInteraction, error)
	predicates       []predicate.HumanInputInteraction
}

var _ ent.Mutation = (*HumanInputInteractionMutation)(nil)

// humaninputinteractionOption allows management of the mutation configuration using functional options.
type humaninputinteractionOption func(*HumanInputInteractionMutation)

// newHumanInputInteractionMutation creates new mutation for the HumanInputInteraction entity.
func newHumanInputInteractionMutation(c config, op Op, opts ...humaninputinteractionOption) *HumanInputInteractionMutation {
	m := &HumanInputInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeHumanInputInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHumanInputInteractionID sets the ID field of the mutation.
func withHumanInputInteractionID(id string) humaninputinteractionOption {
	return func(m *HumanInputInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *HumanInputInteraction
		)
		m.oldValue = func(ctx context.Context) (*HumanInputInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HumanInputInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHumanInputInteraction sets the old HumanInputInteraction of the mutation.
func withHumanInputInteraction(node *HumanInputInteraction) humaninputinteractionOption {
	return func(m *HumanInputInteractionMutation) {
		m.oldValue = func(context.Context) (*HumanInputInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HumanInputInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HumanInputInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HumanInputInteraction entities.
func (m *HumanInputInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HumanInputInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HumanInputInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HumanInputInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *HumanInputInteractionMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *HumanInputInteractionMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *HumanInputInteractionMutation) ResetExecutionID() {
	m.execution = nil
}

// SetAgentID sets the "agent_id" field.
func (m *HumanInputInteractionMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *HumanInputInteractionMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *HumanInputInteractionMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetAgentName sets the "agent_name" field.
func (m *HumanInputInteractionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *HumanInputInteractionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *HumanInputInteractionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetInput sets the "input" field.
func (m *HumanInputInteractionMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *HumanInputInteractionMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *HumanInputInteractionMutation) ResetInput() {
	m.input = nil
}

// SetAction sets the "action" field.
func (m *HumanInputInteractionMutation) SetAction(h humaninputinteraction.Action) {
	m.action = &h
}

// Action returns the value of the "action" field in the mutation.
func (m *HumanInputInteractionMutation) Action() (r humaninputinteraction.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldAction(ctx context.Context) (v humaninputinteraction.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *HumanInputInteractionMutation) ResetAction() {
	m.action = nil
}

// SetIteration sets the "iteration" field.
func (m *HumanInputInteractionMutation) SetIteration(i int) {
	m.iteration = &i
	m.additeration = nil
}

// Iteration returns the value of the "iteration" field in the mutation.
func (m *HumanInputInteractionMutation) Iteration() (r int, exists bool) {
	v := m.iteration
	if v == nil {
		return
	}
	return *v, true
}

// OldIteration returns the old "iteration" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldIteration(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIteration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIteration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIteration: %w", err)
	}
	return oldValue.Iteration, nil
}

// AddIteration adds i to the "iteration" field.
func (m *HumanInputInteractionMutation) AddIteration(i int) {
	if m.additeration != nil {
		*m.additeration += i
	} else {
		m.additeration = &i
	}
}

// AddedIteration returns the value that was added to the "iteration" field in this mutation.
func (m *HumanInputInteractionMutation) AddedIteration() (r int, exists bool) {
	v := m.additeration
	if v == nil {
		return
	}
	return *v, true
}

// ClearIteration clears the value of the "iteration" field.
func (m *HumanInputInteractionMutation) ClearIteration() {
	m.iteration = nil
	m.additeration = nil
	m.clearedFields[humaninputinteraction.FieldIteration] = struct{}{}
}

// IterationCleared returns if the "iteration" field was cleared in this mutation.
func (m *HumanInputInteractionMutation) IterationCleared() bool {
	_, ok := m.clearedFields[humaninputinteraction.FieldIteration]
	return ok
}

// ResetIteration resets all changes to the "iteration" field.
func (m *HumanInputInteractionMutation) ResetIteration() {
	m.iteration = nil
	m.additeration = nil
	delete(m.clearedFields, humaninputinteraction.FieldIteration)
}

// SetCreatedAt sets the "created_at" field.
func (m *HumanInputInteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HumanInputInteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HumanInputInteraction entity.
// If the HumanInputInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HumanInputInteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HumanInputInteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *HumanInputInteractionMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[humaninputinteraction.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *HumanInputInteractionMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *HumanInputInteractionMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *HumanInputInteractionMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the HumanInputInteractionMutation builder.
func (m *HumanInputInteractionMutation) Where(ps ...predicate.HumanInputInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HumanInputInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HumanInputInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HumanInputInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HumanInputInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HumanInputInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HumanInputInteraction).
func (m *HumanInputInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HumanInputInteractionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.execution != nil {
		fields = append(fields, humaninputinteraction.FieldExecutionID)
	}
	if m.agent_id != nil {
		fields = append(fields, humaninputinteraction.FieldAgentID)
	}
	if m.agent_name != nil {
		fields = append(fields, humaninputinteraction.FieldAgentName)
	}
	if m.input != nil {
		fields = append(fields, humaninputinteraction.FieldInput)
	}
	if m.action != nil {
		fields = append(fields, humaninputinteraction.FieldAction)
	}
	if m.iteration != nil {
		fields = append(fields, humaninputinteraction.FieldIteration)
	}
	if m.created_at != nil {
		fields = append(fields, humaninputinteraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HumanInputInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case humaninputinteraction.FieldExecutionID:
		return m.ExecutionID()
	case humaninputinteraction.FieldAgentID:
		return m.AgentID()
	case humaninputinteraction.FieldAgentName:
		return m.AgentName()
	case humaninputinteraction.FieldInput:
		return m.Input()
	case humaninputinteraction.FieldAction:
		return m.Action()
	case humaninputinteraction.FieldIteration:
		return m.Iteration()
	case humaninputinteraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HumanInputInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case humaninputinteraction.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case humaninputinteraction.FieldAgentID:
		return m.OldAgentID(ctx)
	case humaninputinteraction.FieldAgentName:
		return m.OldAgentName(ctx)
	case humaninputinteraction.FieldInput:
		return m.OldInput(ctx)
	case humaninputinteraction.FieldAction:
		return m.OldAction(ctx)
	case humaninputinteraction.FieldIteration:
		return m.OldIteration(ctx)
	case humaninputinteraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HumanInputInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanInputInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case humaninputinteraction.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case humaninputinteraction.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case humaninputinteraction.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case humaninputinteraction.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case humaninputinteraction.FieldAction:
		v, ok := value.(humaninputinteraction.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case humaninputinteraction.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIteration(v)
		return nil
	case humaninputinteraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HumanInputInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HumanInputInteractionMutation) AddedFields() []string {
	var fields []string
	if m.additeration != nil {
		fields = append(fields, humaninputinteraction.FieldIteration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HumanInputInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case humaninputinteraction.FieldIteration:
		return m.AddedIteration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HumanInputInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case humaninputinteraction.FieldIteration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIteration(v)
		return nil
	}
	return fmt.Errorf("unknown HumanInputInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HumanInputInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(humaninputinteraction.FieldIteration) {
		fields = append(fields, humaninputinteraction.FieldIteration)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HumanInputInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HumanInputInteractionMutation) ClearField(name string) error {
	switch name {
	case humaninputinteraction.FieldIteration:
		m.ClearIteration()
		return nil
	}
	return fmt.Errorf("unknown HumanInputInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HumanInputInteractionMutation) ResetField(name string) error {
	switch name {
	case humaninputinteraction.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case humaninputinteraction.FieldAgentID:
		m.ResetAgentID()
		return nil
	case humaninputinteraction.FieldAgentName:
		m.ResetAgentName()
		return nil
	case humaninputinteraction.FieldInput:
		m.ResetInput()
		return nil
	case humaninputinteraction.FieldAction:
		m.ResetAction()
		return nil
	case humaninputinteraction.FieldIteration:
		m.ResetIteration()
		return nil
	case humaninputinteraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HumanInputInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HumanInputInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, humaninputinteraction.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HumanInputInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case humaninputinteraction.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HumanInputInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HumanInputInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HumanInputInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, humaninputinteraction.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HumanInputInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case humaninputinteraction.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HumanInputInteractionMutation) ClearEdge(name string) error {
	switch name {
	case humaninputinteraction.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown HumanInputInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HumanInputInteractionMutation) ResetEdge(name string) error {
	switch name {
	case humaninputinteraction.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown HumanInputInteraction edge %s", name)
}

// LLMInteractionMutation represents an operation that mutates the LLMInteraction nodes in the graph.
type LLMInteractionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	node_id             *string
	provider            *string
	model               *string
	purpose             *string
	prompt              *string
	response            *string
	error_message       *string
	token_count         *int
	addtoken_count      *int
	response_time_ms    *int
	addresponse_time_ms *int
	created_at          *time.Time
	clearedFields       map[string]struct{}
	execution           *string
	clearedexecution    bool
	done                bool
	oldValue            func(context.Context) (*LLMInteraction, error)
	predicates          []predicate.LLMInteraction
}

var _ ent.Mutation = (*LLMInteractionMutation)(nil)

// llminteractionOption allows management of the mutation configuration using functional options.
type llminteractionOption func(*LLMInteractionMutation)

// newLLMInteractionMutation creates new mutation for the LLMInteraction entity.
func newLLMInteractionMutation(c config, op Op, opts ...llminteractionOption) *LLMInteractionMutation {
	m := &LLMInteractionMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMInteraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMInteractionID sets the ID field of the mutation.
func withLLMInteractionID(id string) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMInteraction
		)
		m.oldValue = func(ctx context.Context) (*LLMInteraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMInteraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMInteraction sets the old LLMInteraction of the mutation.
func withLLMInteraction(node *LLMInteraction) llminteractionOption {
	return func(m *LLMInteractionMutation) {
		m.oldValue = func(context.Context) (*LLMInteraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMInteractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMInteractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LLMInteraction entities.
func (m *LLMInteractionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMInteractionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMInteractionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMInteraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *LLMInteractionMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *LLMInteractionMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *LLMInteractionMutation) ResetExecutionID() {
	m.execution = nil
}

// SetNodeID sets the "node_id" field.
func (m *LLMInteractionMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *LLMInteractionMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ClearNodeID clears the value of the "node_id" field.
func (m *LLMInteractionMutation) ClearNodeID() {
	m.node_id = nil
	m.clearedFields[llminteraction.FieldNodeID] = struct{}{}
}

// NodeIDCleared returns if the "node_id" field was cleared in this mutation.
func (m *LLMInteractionMutation) NodeIDCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldNodeID]
	return ok
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *LLMInteractionMutation) ResetNodeID() {
	m.node_id = nil
	delete(m.clearedFields, llminteraction.FieldNodeID)
}

// SetProvider sets the "provider" field.
func (m *LLMInteractionMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMInteractionMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMInteractionMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMInteractionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMInteractionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMInteractionMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMInteractionMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMInteractionMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMInteractionMutation) ResetPurpose() {
	m.purpose = nil
}

// SetPrompt sets the "prompt" field.
func (m *LLMInteractionMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *LLMInteractionMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *LLMInteractionMutation) ResetPrompt() {
	m.prompt = nil
}

// SetResponse sets the "response" field.
func (m *LLMInteractionMutation) SetResponse(s string) {
	m.response = &s
}

// Response returns the value of the "response" field in the mutation.
func (m *LLMInteractionMutation) Response() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *LLMInteractionMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[llminteraction.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *LLMInteractionMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *LLMInteractionMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, llminteraction.FieldResponse)
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMInteractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMInteractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMInteractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llminteraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMInteractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMInteractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llminteraction.FieldErrorMessage)
}

// SetTokenCount sets the "token_count" field.
func (m *LLMInteractionMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *LLMInteractionMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldTokenCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *LLMInteractionMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *LLMInteractionMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokenCount clears the value of the "token_count" field.
func (m *LLMInteractionMutation) ClearTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	m.clearedFields[llminteraction.FieldTokenCount] = struct{}{}
}

// TokenCountCleared returns if the "token_count" field was cleared in this mutation.
func (m *LLMInteractionMutation) TokenCountCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldTokenCount]
	return ok
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *LLMInteractionMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
	delete(m.clearedFields, llminteraction.FieldTokenCount)
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *LLMInteractionMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *LLMInteractionMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldResponseTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *LLMInteractionMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *LLMInteractionMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseTimeMs clears the value of the "response_time_ms" field.
func (m *LLMInteractionMutation) ClearResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	m.clearedFields[llminteraction.FieldResponseTimeMs] = struct{}{}
}

// ResponseTimeMsCleared returns if the "response_time_ms" field was cleared in this mutation.
func (m *LLMInteractionMutation) ResponseTimeMsCleared() bool {
	_, ok := m.clearedFields[llminteraction.FieldResponseTimeMs]
	return ok
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *LLMInteractionMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
	delete(m.clearedFields, llminteraction.FieldResponseTimeMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMInteractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMInteractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMInteraction entity.
// If the LLMInteraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMInteractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMInteractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *LLMInteractionMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[llminteraction.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *LLMInteractionMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *LLMInteractionMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *LLMInteractionMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the LLMInteractionMutation builder.
func (m *LLMInteractionMutation) Where(ps ...predicate.LLMInteraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMInteractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMInteractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMInteraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMInteractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMInteractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMInteraction).
func (m *LLMInteractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMInteractionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.execution != nil {
		fields = append(fields, llminteraction.FieldExecutionID)
	}
	if m.node_id != nil {
		fields = append(fields, llminteraction.FieldNodeID)
	}
	if m.provider != nil {
		fields = append(fields, llminteraction.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llminteraction.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llminteraction.FieldPurpose)
	}
	if m.prompt != nil {
		fields = append(fields, llminteraction.FieldPrompt)
	}
	if m.response != nil {
		fields = append(fields, llminteraction.FieldResponse)
	}
	if m.error_message != nil {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	if m.token_count != nil {
		fields = append(fields, llminteraction.FieldTokenCount)
	}
	if m.response_time_ms != nil {
		fields = append(fields, llminteraction.FieldResponseTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, llminteraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMInteractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldExecutionID:
		return m.ExecutionID()
	case llminteraction.FieldNodeID:
		return m.NodeID()
	case llminteraction.FieldProvider:
		return m.Provider()
	case llminteraction.FieldModel:
		return m.Model()
	case llminteraction.FieldPurpose:
		return m.Purpose()
	case llminteraction.FieldPrompt:
		return m.Prompt()
	case llminteraction.FieldResponse:
		return m.Response()
	case llminteraction.FieldErrorMessage:
		return m.ErrorMessage()
	case llminteraction.FieldTokenCount:
		return m.TokenCount()
	case llminteraction.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case llminteraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMInteractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llminteraction.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case llminteraction.FieldNodeID:
		return m.OldNodeID(ctx)
	case llminteraction.FieldProvider:
		return m.OldProvider(ctx)
	case llminteraction.FieldModel:
		return m.OldModel(ctx)
	case llminteraction.FieldPurpose:
		return m.OldPurpose(ctx)
	case llminteraction.FieldPrompt:
		return m.OldPrompt(ctx)
	case llminteraction.FieldResponse:
		return m.OldResponse(ctx)
	case llminteraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llminteraction.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case llminteraction.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case llminteraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMInteraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case llminteraction.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case llminteraction.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llminteraction.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llminteraction.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llminteraction.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case llminteraction.FieldResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case llminteraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llminteraction.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case llminteraction.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case llminteraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMInteractionMutation) AddedFields() []string {
	var fields []string
	if m.addtoken_count != nil {
		fields = append(fields, llminteraction.FieldTokenCount)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, llminteraction.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMInteractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llminteraction.FieldTokenCount:
		return m.AddedTokenCount()
	case llminteraction.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMInteractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llminteraction.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	case llminteraction.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMInteractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llminteraction.FieldNodeID) {
		fields = append(fields, llminteraction.FieldNodeID)
	}
	if m.FieldCleared(llminteraction.FieldResponse) {
		fields = append(fields, llminteraction.FieldResponse)
	}
	if m.FieldCleared(llminteraction.FieldErrorMessage) {
		fields = append(fields, llminteraction.FieldErrorMessage)
	}
	if m.FieldCleared(llminteraction.FieldTokenCount) {
		fields = append(fields, llminteraction.FieldTokenCount)
	}
	if m.FieldCleared(llminteraction.FieldResponseTimeMs) {
		fields = append(fields, llminteraction.FieldResponseTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMInteractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ClearField(name string) error {
	switch name {
	case llminteraction.FieldNodeID:
		m.ClearNodeID()
		return nil
	case llminteraction.FieldResponse:
		m.ClearResponse()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llminteraction.FieldTokenCount:
		m.ClearTokenCount()
		return nil
	case llminteraction.FieldResponseTimeMs:
		m.ClearResponseTimeMs()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMInteractionMutation) ResetField(name string) error {
	switch name {
	case llminteraction.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case llminteraction.FieldNodeID:
		m.ResetNodeID()
		return nil
	case llminteraction.FieldProvider:
		m.ResetProvider()
		return nil
	case llminteraction.FieldModel:
		m.ResetModel()
		return nil
	case llminteraction.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llminteraction.FieldPrompt:
		m.ResetPrompt()
		return nil
	case llminteraction.FieldResponse:
		m.ResetResponse()
		return nil
	case llminteraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llminteraction.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case llminteraction.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case llminteraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMInteractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, llminteraction.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMInteractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case llminteraction.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMInteractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMInteractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMInteractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, llminteraction.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMInteractionMutation) EdgeCleared(name string) bool {
	switch name {
	case llminteraction.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMInteractionMutation) ClearEdge(name string) error {
	switch name {
	case llminteraction.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMInteractionMutation) ResetEdge(name string) error {
	switch name {
	case llminteraction.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown LLMInteraction edge %s", name)
}

// ProjectCredentialMutation represents an operation that mutates the ProjectCredential nodes in the graph.
type ProjectCredentialMutation struct {
	config
	op            Op
	typ           string
	id            *string
	project_id    *string
	provider      *string
	ciphertext    *[]byte
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProjectCredential, error)
	predicates    []predicate.ProjectCredential
}

var _ ent.Mutation = (*ProjectCredentialMutation)(nil)

// projectcredentialOption allows management of the mutation configuration using functional options.
type projectcredentialOption func(*ProjectCredentialMutation)

// newProjectCredentialMutation creates new mutation for the ProjectCredential entity.
func newProjectCredentialMutation(c config, op Op, opts ...projectcredentialOption) *ProjectCredentialMutation {
	m := &ProjectCredentialMutation{
		config:        c,
		op:            op,
		typ:           TypeProjectCredential,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectCredentialID sets the ID field of the mutation.
func withProjectCredentialID(id string) projectcredentialOption {
	return func(m *ProjectCredentialMutation) {
		var (
			err   error
			once  sync.Once
			value *ProjectCredential
		)
		m.oldValue = func(ctx context.Context) (*ProjectCredential, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProjectCredential.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProjectCredential sets the old ProjectCredential of the mutation.
func withProjectCredential(node *ProjectCredential) projectcredentialOption {
	return func(m *ProjectCredentialMutation) {
		m.oldValue = func(context.Context) (*ProjectCredential, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectCredentialMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectCredentialMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProjectCredential entities.
func (m *ProjectCredentialMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectCredentialMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectCredentialMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProjectCredential.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *ProjectCredentialMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *ProjectCredentialMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *ProjectCredentialMutation) ResetProjectID() {
	m.project_id = nil
}

// SetProvider sets the "provider" field.
func (m *ProjectCredentialMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProjectCredentialMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProjectCredentialMutation) ResetProvider() {
	m.provider = nil
}

// SetCiphertext sets the "ciphertext" field.
func (m *ProjectCredentialMutation) SetCiphertext(b []byte) {
	m.ciphertext = &b
}

// Ciphertext returns the value of the "ciphertext" field in the mutation.
func (m *ProjectCredentialMutation) Ciphertext() (r []byte, exists bool) {
	v := m.ciphertext
	if v == nil {
		return
	}
	return *v, true
}

// OldCiphertext returns the old "ciphertext" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldCiphertext(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCiphertext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCiphertext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCiphertext: %w", err)
	}
	return oldValue.Ciphertext, nil
}

// ResetCiphertext resets all changes to the "ciphertext" field.
func (m *ProjectCredentialMutation) ResetCiphertext() {
	m.ciphertext = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectCredentialMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectCredentialMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectCredentialMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectCredentialMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectCredentialMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProjectCredential entity.
// If the ProjectCredential object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectCredentialMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectCredentialMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ProjectCredentialMutation builder.
func (m *ProjectCredentialMutation) Where(ps ...predicate.ProjectCredential) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectCredentialMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectCredentialMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProjectCredential, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectCredentialMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectCredentialMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProjectCredential).
func (m *ProjectCredentialMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectCredentialMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.project_id != nil {
		fields = append(fields, projectcredential.FieldProjectID)
	}
	if m.provider != nil {
		fields = append(fields, projectcredential.FieldProvider)
	}
	if m.ciphertext != nil {
		fields = append(fields, projectcredential.FieldCiphertext)
	}
	if m.created_at != nil {
		fields = append(fields, projectcredential.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, projectcredential.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectCredentialMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case projectcredential.FieldProjectID:
		return m.ProjectID()
	case projectcredential.FieldProvider:
		return m.Provider()
	case projectcredential.FieldCiphertext:
		return m.Ciphertext()
	case projectcredential.FieldCreatedAt:
		return m.CreatedAt()
	case projectcredential.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectCredentialMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case projectcredential.FieldProjectID:
		return m.OldProjectID(ctx)
	case projectcredential.FieldProvider:
		return m.OldProvider(ctx)
	case projectcredential.FieldCiphertext:
		return m.OldCiphertext(ctx)
	case projectcredential.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case projectcredential.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProjectCredential field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectCredentialMutation) SetField(name string, value ent.Value) error {
	switch name {
	case projectcredential.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case projectcredential.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case projectcredential.FieldCiphertext:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCiphertext(v)
		return nil
	case projectcredential.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case projectcredential.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProjectCredential field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectCredentialMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectCredentialMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectCredentialMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProjectCredential numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectCredentialMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectCredentialMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectCredentialMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProjectCredential nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectCredentialMutation) ResetField(name string) error {
	switch name {
	case projectcredential.FieldProjectID:
		m.ResetProjectID()
		return nil
	case projectcredential.FieldProvider:
		m.ResetProvider()
		return nil
	case projectcredential.FieldCiphertext:
		m.ResetCiphertext()
		return nil
	case projectcredential.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case projectcredential.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProjectCredential field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectCredentialMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectCredentialMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectCredentialMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectCredentialMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectCredentialMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectCredentialMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectCredentialMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProjectCredential unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectCredentialMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProjectCredential edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	project_id                 *string
	workflow                   *map[string]interface{}
	input                      *string
	status                     *workflowexecution.Status
	executed_nodes             *map[string]string
	conversation_history       *string
	human_input_required       *bool
	awaiting_human_input_agent *string
	human_input_agent_id       *string
	human_input_context        *map[string]interface{}
	human_input_requested_at   *time.Time
	human_input_received_at    *time.Time
	delegate_conversations     *map[string]interface{}
	final_output               *string
	result_summary             *string
	total_agents_involved      *int
	addtotal_agents_involved   *int
	error_message              *string
	created_at                 *time.Time
	started_at                 *time.Time
	completed_at               *time.Time
	duration_seconds           *float64
	addduration_seconds        *float64
	pod_id                     *string
	clearedFields              map[string]struct{}
	messages                   map[string]struct{}
	removedmessages            map[string]struct{}
	clearedmessages            bool
	llm_interactions           map[string]struct{}
	removedllm_interactions    map[string]struct{}
	clearedllm_interactions    bool
	human_inputs               map[string]struct{}
	removedhuman_inputs        map[string]struct{}
	clearedhuman_inputs        bool
	done                       bool
	oldValue                   func(context.Context) (*WorkflowExecution, error)
	predicates                 []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id string) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowExecution entities.
func (m *WorkflowExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *WorkflowExecutionMutation) SetProjectID(s string) {
	m.project_id = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *WorkflowExecutionMutation) ProjectID() (r string, exists bool) {
	v := m.project_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *WorkflowExecutionMutation) ResetProjectID() {
	m.project_id = nil
}

// SetWorkflow sets the "workflow" field.
func (m *WorkflowExecutionMutation) SetWorkflow(value map[string]interface{}) {
	m.workflow = &value
}

// Workflow returns the value of the "workflow" field in the mutation.
func (m *WorkflowExecutionMutation) Workflow() (r map[string]interface{}, exists bool) {
	v := m.workflow
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflow returns the old "workflow" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkflow(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflow: %w", err)
	}
	return oldValue.Workflow, nil
}

// ResetWorkflow resets all changes to the "workflow" field.
func (m *WorkflowExecutionMutation) ResetWorkflow() {
	m.workflow = nil
}

// SetInput sets the "input" field.
func (m *WorkflowExecutionMutation) SetInput(s string) {
	m.input = &s
}

// Input returns the value of the "input" field in the mutation.
func (m *WorkflowExecutionMutation) Input() (r string, exists bool) {
	v := m.input
	if v == nil {
		return
	}
	return *v, true
}

// OldInput returns the old "input" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldInput(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInput: %w", err)
	}
	return oldValue.Input, nil
}

// ResetInput resets all changes to the "input" field.
func (m *WorkflowExecutionMutation) ResetInput() {
	m.input = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(w workflowexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r workflowexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v workflowexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetExecutedNodes sets the "executed_nodes" field.
func (m *WorkflowExecutionMutation) SetExecutedNodes(value map[string]string) {
	m.executed_nodes = &value
}

// ExecutedNodes returns the value of the "executed_nodes" field in the mutation.
func (m *WorkflowExecutionMutation) ExecutedNodes() (r map[string]string, exists bool) {
	v := m.executed_nodes
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedNodes returns the old "executed_nodes" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldExecutedNodes(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedNodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedNodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedNodes: %w", err)
	}
	return oldValue.ExecutedNodes, nil
}

// ClearExecutedNodes clears the value of the "executed_nodes" field.
func (m *WorkflowExecutionMutation) ClearExecutedNodes() {
	m.executed_nodes = nil
	m.clearedFields[workflowexecution.FieldExecutedNodes] = struct{}{}
}

// ExecutedNodesCleared returns if the "executed_nodes" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ExecutedNodesCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldExecutedNodes]
	return ok
}

// ResetExecutedNodes resets all changes to the "executed_nodes" field.
func (m *WorkflowExecutionMutation) ResetExecutedNodes() {
	m.executed_nodes = nil
	delete(m.clearedFields, workflowexecution.FieldExecutedNodes)
}

// SetConversationHistory sets the "conversation_history" field.
func (m *WorkflowExecutionMutation) SetConversationHistory(s string) {
	m.conversation_history = &s
}

// ConversationHistory returns the value of the "conversation_history" field in the mutation.
func (m *WorkflowExecutionMutation) ConversationHistory() (r string, exists bool) {
	v := m.conversation_history
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationHistory returns the old "conversation_history" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldConversationHistory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationHistory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationHistory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationHistory: %w", err)
	}
	return oldValue.ConversationHistory, nil
}

// ClearConversationHistory clears the value of the "conversation_history" field.
func (m *WorkflowExecutionMutation) ClearConversationHistory() {
	m.conversation_history = nil
	m.clearedFields[workflowexecution.FieldConversationHistory] = struct{}{}
}

// ConversationHistoryCleared returns if the "conversation_history" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ConversationHistoryCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldConversationHistory]
	return ok
}

// ResetConversationHistory resets all changes to the "conversation_history" field.
func (m *WorkflowExecutionMutation) ResetConversationHistory() {
	m.conversation_history = nil
	delete(m.clearedFields, workflowexecution.FieldConversationHistory)
}

// SetHumanInputRequired sets the "human_input_required" field.
func (m *WorkflowExecutionMutation) SetHumanInputRequired(b bool) {
	m.human_input_required = &b
}

// HumanInputRequired returns the value of the "human_input_required" field in the mutation.
func (m *WorkflowExecutionMutation) HumanInputRequired() (r bool, exists bool) {
	v := m.human_input_required
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanInputRequired returns the old "human_input_required" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldHumanInputRequired(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanInputRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanInputRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanInputRequired: %w", err)
	}
	return oldValue.HumanInputRequired, nil
}

// ResetHumanInputRequired resets all changes to the "human_input_required" field.
func (m *WorkflowExecutionMutation) ResetHumanInputRequired() {
	m.human_input_required = nil
}

// SetAwaitingHumanInputAgent sets the "awaiting_human_input_agent" field.
func (m *WorkflowExecutionMutation) SetAwaitingHumanInputAgent(s string) {
	m.awaiting_human_input_agent = &s
}

// AwaitingHumanInputAgent returns the value of the "awaiting_human_input_agent" field in the mutation.
func (m *WorkflowExecutionMutation) AwaitingHumanInputAgent() (r string, exists bool) {
	v := m.awaiting_human_input_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAwaitingHumanInputAgent returns the old "awaiting_human_input_agent" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldAwaitingHumanInputAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAwaitingHumanInputAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAwaitingHumanInputAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAwaitingHumanInputAgent: %w", err)
	}
	return oldValue.AwaitingHumanInputAgent, nil
}

// ClearAwaitingHumanInputAgent clears the value of the "awaiting_human_input_agent" field.
func (m *WorkflowExecutionMutation) ClearAwaitingHumanInputAgent() {
	m.awaiting_human_input_agent = nil
	m.clearedFields[workflowexecution.FieldAwaitingHumanInputAgent] = struct{}{}
}

// AwaitingHumanInputAgentCleared returns if the "awaiting_human_input_agent" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) AwaitingHumanInputAgentCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldAwaitingHumanInputAgent]
	return ok
}

// ResetAwaitingHumanInputAgent resets all changes to the "awaiting_human_input_agent" field.
func (m *WorkflowExecutionMutation) ResetAwaitingHumanInputAgent() {
	m.awaiting_human_input_agent = nil
	delete(m.clearedFields, workflowexecution.FieldAwaitingHumanInputAgent)
}

// SetHumanInputAgentID sets the "human_input_agent_id" field.
func (m *WorkflowExecutionMutation) SetHumanInputAgentID(s string) {
	m.human_input_agent_id = &s
}

// HumanInputAgentID returns the value of the "human_input_agent_id" field in the mutation.
func (m *WorkflowExecutionMutation) HumanInputAgentID() (r string, exists bool) {
	v := m.human_input_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanInputAgentID returns the old "human_input_agent_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldHumanInputAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanInputAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanInputAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanInputAgentID: %w", err)
	}
	return oldValue.HumanInputAgentID, nil
}

// ClearHumanInputAgentID clears the value of the "human_input_agent_id" field.
func (m *WorkflowExecutionMutation) ClearHumanInputAgentID() {
	m.human_input_agent_id = nil
	m.clearedFields[workflowexecution.FieldHumanInputAgentID] = struct{}{}
}

// HumanInputAgentIDCleared returns if the "human_input_agent_id" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) HumanInputAgentIDCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldHumanInputAgentID]
	return ok
}

// ResetHumanInputAgentID resets all changes to the "human_input_agent_id" field.
func (m *WorkflowExecutionMutation) ResetHumanInputAgentID() {
	m.human_input_agent_id = nil
	delete(m.clearedFields, workflowexecution.FieldHumanInputAgentID)
}

// SetHumanInputContext sets the "human_input_context" field.
func (m *WorkflowExecutionMutation) SetHumanInputContext(value map[string]interface{}) {
	m.human_input_context = &value
}

// HumanInputContext returns the value of the "human_input_context" field in the mutation.
func (m *WorkflowExecutionMutation) HumanInputContext() (r map[string]interface{}, exists bool) {
	v := m.human_input_context
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanInputContext returns the old "human_input_context" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldHumanInputContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanInputContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanInputContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanInputContext: %w", err)
	}
	return oldValue.HumanInputContext, nil
}

// ClearHumanInputContext clears the value of the "human_input_context" field.
func (m *WorkflowExecutionMutation) ClearHumanInputContext() {
	m.human_input_context = nil
	m.clearedFields[workflowexecution.FieldHumanInputContext] = struct{}{}
}

// HumanInputContextCleared returns if the "human_input_context" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) HumanInputContextCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldHumanInputContext]
	return ok
}

// ResetHumanInputContext resets all changes to the "human_input_context" field.
func (m *WorkflowExecutionMutation) ResetHumanInputContext() {
	m.human_input_context = nil
	delete(m.clearedFields, workflowexecution.FieldHumanInputContext)
}

// SetHumanInputRequestedAt sets the "human_input_requested_at" field.
func (m *WorkflowExecutionMutation) SetHumanInputRequestedAt(t time.Time) {
	m.human_input_requested_at = &t
}

// HumanInputRequestedAt returns the value of the "human_input_requested_at" field in the mutation.
func (m *WorkflowExecutionMutation) HumanInputRequestedAt() (r time.Time, exists bool) {
	v := m.human_input_requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanInputRequestedAt returns the old "human_input_requested_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldHumanInputRequestedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanInputRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanInputRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanInputRequestedAt: %w", err)
	}
	return oldValue.HumanInputRequestedAt, nil
}

// ClearHumanInputRequestedAt clears the value of the "human_input_requested_at" field.
func (m *WorkflowExecutionMutation) ClearHumanInputRequestedAt() {
	m.human_input_requested_at = nil
	m.clearedFields[workflowexecution.FieldHumanInputRequestedAt] = struct{}{}
}

// HumanInputRequestedAtCleared returns if the "human_input_requested_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) HumanInputRequestedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldHumanInputRequestedAt]
	return ok
}

// ResetHumanInputRequestedAt resets all changes to the "human_input_requested_at" field.
func (m *WorkflowExecutionMutation) ResetHumanInputRequestedAt() {
	m.human_input_requested_at = nil
	delete(m.clearedFields, workflowexecution.FieldHumanInputRequestedAt)
}

// SetHumanInputReceivedAt sets the "human_input_received_at" field.
func (m *WorkflowExecutionMutation) SetHumanInputReceivedAt(t time.Time) {
	m.human_input_received_at = &t
}

// HumanInputReceivedAt returns the value of the "human_input_received_at" field in the mutation.
func (m *WorkflowExecutionMutation) HumanInputReceivedAt() (r time.Time, exists bool) {
	v := m.human_input_received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanInputReceivedAt returns the old "human_input_received_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldHumanInputReceivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanInputReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanInputReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanInputReceivedAt: %w", err)
	}
	return oldValue.HumanInputReceivedAt, nil
}

// ClearHumanInputReceivedAt clears the value of the "human_input_received_at" field.
func (m *WorkflowExecutionMutation) ClearHumanInputReceivedAt() {
	m.human_input_received_at = nil
	m.clearedFields[workflowexecution.FieldHumanInputReceivedAt] = struct{}{}
}

// HumanInputReceivedAtCleared returns if the "human_input_received_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) HumanInputReceivedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldHumanInputReceivedAt]
	return ok
}

// ResetHumanInputReceivedAt resets all changes to the "human_input_received_at" field.
func (m *WorkflowExecutionMutation) ResetHumanInputReceivedAt() {
	m.human_input_received_at = nil
	delete(m.clearedFields, workflowexecution.FieldHumanInputReceivedAt)
}

// SetDelegateConversations sets the "delegate_conversations" field.
func (m *WorkflowExecutionMutation) SetDelegateConversations(value map[string]interface{}) {
	m.delegate_conversations = &value
}

// DelegateConversations returns the value of the "delegate_conversations" field in the mutation.
func (m *WorkflowExecutionMutation) DelegateConversations() (r map[string]interface{}, exists bool) {
	v := m.delegate_conversations
	if v == nil {
		return
	}
	return *v, true
}

// OldDelegateConversations returns the old "delegate_conversations" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDelegateConversations(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelegateConversations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelegateConversations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelegateConversations: %w", err)
	}
	return oldValue.DelegateConversations, nil
}

// ClearDelegateConversations clears the value of the "delegate_conversations" field.
func (m *WorkflowExecutionMutation) ClearDelegateConversations() {
	m.delegate_conversations = nil
	m.clearedFields[workflowexecution.FieldDelegateConversations] = struct{}{}
}

// DelegateConversationsCleared returns if the "delegate_conversations" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DelegateConversationsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDelegateConversations]
	return ok
}

// ResetDelegateConversations resets all changes to the "delegate_conversations" field.
func (m *WorkflowExecutionMutation) ResetDelegateConversations() {
	m.delegate_conversations = nil
	delete(m.clearedFields, workflowexecution.FieldDelegateConversations)
}

// SetFinalOutput sets the "final_output" field.
func (m *WorkflowExecutionMutation) SetFinalOutput(s string) {
	m.final_output = &s
}

// FinalOutput returns the value of the "final_output" field in the mutation.
func (m *WorkflowExecutionMutation) FinalOutput() (r string, exists bool) {
	v := m.final_output
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalOutput returns the old "final_output" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldFinalOutput(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalOutput: %w", err)
	}
	return oldValue.FinalOutput, nil
}

// ClearFinalOutput clears the value of the "final_output" field.
func (m *WorkflowExecutionMutation) ClearFinalOutput() {
	m.final_output = nil
	m.clearedFields[workflowexecution.FieldFinalOutput] = struct{}{}
}

// FinalOutputCleared returns if the "final_output" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) FinalOutputCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldFinalOutput]
	return ok
}

// ResetFinalOutput resets all changes to the "final_output" field.
func (m *WorkflowExecutionMutation) ResetFinalOutput() {
	m.final_output = nil
	delete(m.clearedFields, workflowexecution.FieldFinalOutput)
}

// SetResultSummary sets the "result_summary" field.
func (m *WorkflowExecutionMutation) SetResultSummary(s string) {
	m.result_summary = &s
}

// ResultSummary returns the value of the "result_summary" field in the mutation.
func (m *WorkflowExecutionMutation) ResultSummary() (r string, exists bool) {
	v := m.result_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldResultSummary returns the old "result_summary" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldResultSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultSummary: %w", err)
	}
	return oldValue.ResultSummary, nil
}

// ClearResultSummary clears the value of the "result_summary" field.
func (m *WorkflowExecutionMutation) ClearResultSummary() {
	m.result_summary = nil
	m.clearedFields[workflowexecution.FieldResultSummary] = struct{}{}
}

// ResultSummaryCleared returns if the "result_summary" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ResultSummaryCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldResultSummary]
	return ok
}

// ResetResultSummary resets all changes to the "result_summary" field.
func (m *WorkflowExecutionMutation) ResetResultSummary() {
	m.result_summary = nil
	delete(m.clearedFields, workflowexecution.FieldResultSummary)
}

// SetTotalAgentsInvolved sets the "total_agents_involved" field.
func (m *WorkflowExecutionMutation) SetTotalAgentsInvolved(i int) {
	m.total_agents_involved = &i
	m.addtotal_agents_involved = nil
}

// TotalAgentsInvolved returns the value of the "total_agents_involved" field in the mutation.
func (m *WorkflowExecutionMutation) TotalAgentsInvolved() (r int, exists bool) {
	v := m.total_agents_involved
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAgentsInvolved returns the old "total_agents_involved" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldTotalAgentsInvolved(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAgentsInvolved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAgentsInvolved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAgentsInvolved: %w", err)
	}
	return oldValue.TotalAgentsInvolved, nil
}

// AddTotalAgentsInvolved adds i to the "total_agents_involved" field.
func (m *WorkflowExecutionMutation) AddTotalAgentsInvolved(i int) {
	if m.addtotal_agents_involved != nil {
		*m.addtotal_agents_involved += i
	} else {
		m.addtotal_agents_involved = &i
	}
}

// AddedTotalAgentsInvolved returns the value that was added to the "total_agents_involved" field in this mutation.
func (m *WorkflowExecutionMutation) AddedTotalAgentsInvolved() (r int, exists bool) {
	v := m.addtotal_agents_involved
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalAgentsInvolved clears the value of the "total_agents_involved" field.
func (m *WorkflowExecutionMutation) ClearTotalAgentsInvolved() {
	m.total_agents_involved = nil
	m.addtotal_agents_involved = nil
	m.clearedFields[workflowexecution.FieldTotalAgentsInvolved] = struct{}{}
}

// TotalAgentsInvolvedCleared returns if the "total_agents_involved" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) TotalAgentsInvolvedCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldTotalAgentsInvolved]
	return ok
}

// ResetTotalAgentsInvolved resets all changes to the "total_agents_involved" field.
func (m *WorkflowExecutionMutation) ResetTotalAgentsInvolved() {
	m.total_agents_involved = nil
	m.addtotal_agents_involved = nil
	delete(m.clearedFields, workflowexecution.FieldTotalAgentsInvolved)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *WorkflowExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WorkflowExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WorkflowExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[workflowexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WorkflowExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, workflowexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *WorkflowExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *WorkflowExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *WorkflowExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[workflowexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *WorkflowExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, workflowexecution.FieldCompletedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *WorkflowExecutionMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *WorkflowExecutionMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *WorkflowExecutionMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *WorkflowExecutionMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *WorkflowExecutionMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[workflowexecution.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *WorkflowExecutionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, workflowexecution.FieldDurationSeconds)
}

// SetPodID sets the "pod_id" field.
func (m *WorkflowExecutionMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkflowExecutionMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkflowExecutionMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workflowexecution.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkflowExecutionMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workflowexecution.FieldPodID)
}

// AddMessageIDs adds the "messages" edge to the ExecutionMessage entity by ids.
func (m *WorkflowExecutionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ExecutionMessage entity.
func (m *WorkflowExecutionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ExecutionMessage entity was cleared.
func (m *WorkflowExecutionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ExecutionMessage entity by IDs.
func (m *WorkflowExecutionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ExecutionMessage entity.
func (m *WorkflowExecutionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *WorkflowExecutionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddLlmInteractionIDs adds the "llm_interactions" edge to the LLMInteraction entity by ids.
func (m *WorkflowExecutionMutation) AddLlmInteractionIDs(ids ...string) {
	if m.llm_interactions == nil {
		m.llm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		m.llm_interactions[ids[i]] = struct{}{}
	}
}

// ClearLlmInteractions clears the "llm_interactions" edge to the LLMInteraction entity.
func (m *WorkflowExecutionMutation) ClearLlmInteractions() {
	m.clearedllm_interactions = true
}

// LlmInteractionsCleared reports if the "llm_interactions" edge to the LLMInteraction entity was cleared.
func (m *WorkflowExecutionMutation) LlmInteractionsCleared() bool {
	return m.clearedllm_interactions
}

// RemoveLlmInteractionIDs removes the "llm_interactions" edge to the LLMInteraction entity by IDs.
func (m *WorkflowExecutionMutation) RemoveLlmInteractionIDs(ids ...string) {
	if m.removedllm_interactions == nil {
		m.removedllm_interactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.llm_interactions, ids[i])
		m.removedllm_interactions[ids[i]] = struct{}{}
	}
}

// RemovedLlmInteractions returns the removed IDs of the "llm_interactions" edge to the LLMInteraction entity.
func (m *WorkflowExecutionMutation) RemovedLlmInteractionsIDs() (ids []string) {
	for id := range m.removedllm_interactions {
		ids = append(ids, id)
	}
	return
}

// LlmInteractionsIDs returns the "llm_interactions" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) LlmInteractionsIDs() (ids []string) {
	for id := range m.llm_interactions {
		ids = append(ids, id)
	}
	return
}

// ResetLlmInteractions resets all changes to the "llm_interactions" edge.
func (m *WorkflowExecutionMutation) ResetLlmInteractions() {
	m.llm_interactions = nil
	m.clearedllm_interactions = false
	m.removedllm_interactions = nil
}

// AddHumanInputIDs adds the "human_inputs" edge to the HumanInputInteraction entity by ids.
func (m *WorkflowExecutionMutation) AddHumanInputIDs(ids ...string) {
	if m.human_inputs == nil {
		m.human_inputs = make(map[string]struct{})
	}
	for i := range ids {
		m.human_inputs[ids[i]] = struct{}{}
	}
}

// ClearHumanInputs clears the "human_inputs" edge to the HumanInputInteraction entity.
func (m *WorkflowExecutionMutation) ClearHumanInputs() {
	m.clearedhuman_inputs = true
}

// HumanInputsCleared reports if the "human_inputs" edge to the HumanInputInteraction entity was cleared.
func (m *WorkflowExecutionMutation) HumanInputsCleared() bool {
	return m.clearedhuman_inputs
}

// RemoveHumanInputIDs removes the "human_inputs" edge to the HumanInputInteraction entity by IDs.
func (m *WorkflowExecutionMutation) RemoveHumanInputIDs(ids ...string) {
	if m.removedhuman_inputs == nil {
		m.removedhuman_inputs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.human_inputs, ids[i])
		m.removedhuman_inputs[ids[i]] = struct{}{}
	}
}

// RemovedHumanInputs returns the removed IDs of the "human_inputs" edge to the HumanInputInteraction entity.
func (m *WorkflowExecutionMutation) RemovedHumanInputsIDs() (ids []string) {
	for id := range m.removedhuman_inputs {
		ids = append(ids, id)
	}
	return
}

// HumanInputsIDs returns the "human_inputs" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) HumanInputsIDs() (ids []string) {
	for id := range m.human_inputs {
		ids = append(ids, id)
	}
	return
}

// ResetHumanInputs resets all changes to the "human_inputs" edge.
func (m *WorkflowExecutionMutation) ResetHumanInputs() {
	m.human_inputs = nil
	m.clearedhuman_inputs = false
	m.removedhuman_inputs = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 22)
	if m.project_id != nil {
		fields = append(fields, workflowexecution.FieldProjectID)
	}
	if m.workflow != nil {
		fields = append(fields, workflowexecution.FieldWorkflow)
	}
	if m.input != nil {
		fields = append(fields, workflowexecution.FieldInput)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.executed_nodes != nil {
		fields = append(fields, workflowexecution.FieldExecutedNodes)
	}
	if m.conversation_history != nil {
		fields = append(fields, workflowexecution.FieldConversationHistory)
	}
	if m.human_input_required != nil {
		fields = append(fields, workflowexecution.FieldHumanInputRequired)
	}
	if m.awaiting_human_input_agent != nil {
		fields = append(fields, workflowexecution.FieldAwaitingHumanInputAgent)
	}
	if m.human_input_agent_id != nil {
		fields = append(fields, workflowexecution.FieldHumanInputAgentID)
	}
	if m.human_input_context != nil {
		fields = append(fields, workflowexecution.FieldHumanInputContext)
	}
	if m.human_input_requested_at != nil {
		fields = append(fields, workflowexecution.FieldHumanInputRequestedAt)
	}
	if m.human_input_received_at != nil {
		fields = append(fields, workflowexecution.FieldHumanInputReceivedAt)
	}
	if m.delegate_conversations != nil {
		fields = append(fields, workflowexecution.FieldDelegateConversations)
	}
	if m.final_output != nil {
		fields = append(fields, workflowexecution.FieldFinalOutput)
	}
	if m.result_summary != nil {
		fields = append(fields, workflowexecution.FieldResultSummary)
	}
	if m.total_agents_involved != nil {
		fields = append(fields, workflowexecution.FieldTotalAgentsInvolved)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, workflowexecution.FieldDurationSeconds)
	}
	if m.pod_id != nil {
		fields = append(fields, workflowexecution.FieldPodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldProjectID:
		return m.ProjectID()
	case workflowexecution.FieldWorkflow:
		return m.Workflow()
	case workflowexecution.FieldInput:
		return m.Input()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldExecutedNodes:
		return m.ExecutedNodes()
	case workflowexecution.FieldConversationHistory:
		return m.ConversationHistory()
	case workflowexecution.FieldHumanInputRequired:
		return m.HumanInputRequired()
	case workflowexecution.FieldAwaitingHumanInputAgent:
		return m.AwaitingHumanInputAgent()
	case workflowexecution.FieldHumanInputAgentID:
		return m.HumanInputAgentID()
	case workflowexecution.FieldHumanInputContext:
		return m.HumanInputContext()
	case workflowexecution.FieldHumanInputRequestedAt:
		return m.HumanInputRequestedAt()
	case workflowexecution.FieldHumanInputReceivedAt:
		return m.HumanInputReceivedAt()
	case workflowexecution.FieldDelegateConversations:
		return m.DelegateConversations()
	case workflowexecution.FieldFinalOutput:
		return m.FinalOutput()
	case workflowexecution.FieldResultSummary:
		return m.ResultSummary()
	case workflowexecution.FieldTotalAgentsInvolved:
		return m.TotalAgentsInvolved()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	case workflowexecution.FieldStartedAt:
		return m.StartedAt()
	case workflowexecution.FieldCompletedAt:
		return m.CompletedAt()
	case workflowexecution.FieldDurationSeconds:
		return m.DurationSeconds()
	case workflowexecution.FieldPodID:
		return m.PodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldProjectID:
		return m.OldProjectID(ctx)
	case workflowexecution.FieldWorkflow:
		return m.OldWorkflow(ctx)
	case workflowexecution.FieldInput:
		return m.OldInput(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldExecutedNodes:
		return m.OldExecutedNodes(ctx)
	case workflowexecution.FieldConversationHistory:
		return m.OldConversationHistory(ctx)
	case workflowexecution.FieldHumanInputRequired:
		return m.OldHumanInputRequired(ctx)
	case workflowexecution.FieldAwaitingHumanInputAgent:
		return m.OldAwaitingHumanInputAgent(ctx)
	case workflowexecution.FieldHumanInputAgentID:
		return m.OldHumanInputAgentID(ctx)
	case workflowexecution.FieldHumanInputContext:
		return m.OldHumanInputContext(ctx)
	case workflowexecution.FieldHumanInputRequestedAt:
		return m.OldHumanInputRequestedAt(ctx)
	case workflowexecution.FieldHumanInputReceivedAt:
		return m.OldHumanInputReceivedAt(ctx)
	case workflowexecution.FieldDelegateConversations:
		return m.OldDelegateConversations(ctx)
	case workflowexecution.FieldFinalOutput:
		return m.OldFinalOutput(ctx)
	case workflowexecution.FieldResultSummary:
		return m.OldResultSummary(ctx)
	case workflowexecution.FieldTotalAgentsInvolved:
		return m.OldTotalAgentsInvolved(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case workflowexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case workflowexecution.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case workflowexecution.FieldPodID:
		return m.OldPodID(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case workflowexecution.FieldWorkflow:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflow(v)
		return nil
	case workflowexecution.FieldInput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInput(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(workflowexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldExecutedNodes:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedNodes(v)
		return nil
	case workflowexecution.FieldConversationHistory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationHistory(v)
		return nil
	case workflowexecution.FieldHumanInputRequired:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanInputRequired(v)
		return nil
	case workflowexecution.FieldAwaitingHumanInputAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAwaitingHumanInputAgent(v)
		return nil
	case workflowexecution.FieldHumanInputAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanInputAgentID(v)
		return nil
	case workflowexecution.FieldHumanInputContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanInputContext(v)
		return nil
	case workflowexecution.FieldHumanInputRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanInputRequestedAt(v)
		return nil
	case workflowexecution.FieldHumanInputReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanInputReceivedAt(v)
		return nil
	case workflowexecution.FieldDelegateConversations:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelegateConversations(v)
		return nil
	case workflowexecution.FieldFinalOutput:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalOutput(v)
		return nil
	case workflowexecution.FieldResultSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultSummary(v)
		return nil
	case workflowexecution.FieldTotalAgentsInvolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAgentsInvolved(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case workflowexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case workflowexecution.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case workflowexecution.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_agents_involved != nil {
		fields = append(fields, workflowexecution.FieldTotalAgentsInvolved)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, workflowexecution.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldTotalAgentsInvolved:
		return m.AddedTotalAgentsInvolved()
	case workflowexecution.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldTotalAgentsInvolved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAgentsInvolved(v)
		return nil
	case workflowexecution.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldExecutedNodes) {
		fields = append(fields, workflowexecution.FieldExecutedNodes)
	}
	if m.FieldCleared(workflowexecution.FieldConversationHistory) {
		fields = append(fields, workflowexecution.FieldConversationHistory)
	}
	if m.FieldCleared(workflowexecution.FieldAwaitingHumanInputAgent) {
		fields = append(fields, workflowexecution.FieldAwaitingHumanInputAgent)
	}
	if m.FieldCleared(workflowexecution.FieldHumanInputAgentID) {
		fields = append(fields, workflowexecution.FieldHumanInputAgentID)
	}
	if m.FieldCleared(workflowexecution.FieldHumanInputContext) {
		fields = append(fields, workflowexecution.FieldHumanInputContext)
	}
	if m.FieldCleared(workflowexecution.FieldHumanInputRequestedAt) {
		fields = append(fields, workflowexecution.FieldHumanInputRequestedAt)
	}
	if m.FieldCleared(workflowexecution.FieldHumanInputReceivedAt) {
		fields = append(fields, workflowexecution.FieldHumanInputReceivedAt)
	}
	if m.FieldCleared(workflowexecution.FieldDelegateConversations) {
		fields = append(fields, workflowexecution.FieldDelegateConversations)
	}
	if m.FieldCleared(workflowexecution.FieldFinalOutput) {
		fields = append(fields, workflowexecution.FieldFinalOutput)
	}
	if m.FieldCleared(workflowexecution.FieldResultSummary) {
		fields = append(fields, workflowexecution.FieldResultSummary)
	}
	if m.FieldCleared(workflowexecution.FieldTotalAgentsInvolved) {
		fields = append(fields, workflowexecution.FieldTotalAgentsInvolved)
	}
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.FieldCleared(workflowexecution.FieldStartedAt) {
		fields = append(fields, workflowexecution.FieldStartedAt)
	}
	if m.FieldCleared(workflowexecution.FieldCompletedAt) {
		fields = append(fields, workflowexecution.FieldCompletedAt)
	}
	if m.FieldCleared(workflowexecution.FieldDurationSeconds) {
		fields = append(fields, workflowexecution.FieldDurationSeconds)
	}
	if m.FieldCleared(workflowexecution.FieldPodID) {
		fields = append(fields, workflowexecution.FieldPodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldExecutedNodes:
		m.ClearExecutedNodes()
		return nil
	case workflowexecution.FieldConversationHistory:
		m.ClearConversationHistory()
		return nil
	case workflowexecution.FieldAwaitingHumanInputAgent:
		m.ClearAwaitingHumanInputAgent()
		return nil
	case workflowexecution.FieldHumanInputAgentID:
		m.ClearHumanInputAgentID()
		return nil
	case workflowexecution.FieldHumanInputContext:
		m.ClearHumanInputContext()
		return nil
	case workflowexecution.FieldHumanInputRequestedAt:
		m.ClearHumanInputRequestedAt()
		return nil
	case workflowexecution.FieldHumanInputReceivedAt:
		m.ClearHumanInputReceivedAt()
		return nil
	case workflowexecution.FieldDelegateConversations:
		m.ClearDelegateConversations()
		return nil
	case workflowexecution.FieldFinalOutput:
		m.ClearFinalOutput()
		return nil
	case workflowexecution.FieldResultSummary:
		m.ClearResultSummary()
		return nil
	case workflowexecution.FieldTotalAgentsInvolved:
		m.ClearTotalAgentsInvolved()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case workflowexecution.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case workflowexecution.FieldPodID:
		m.ClearPodID()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldProjectID:
		m.ResetProjectID()
		return nil
	case workflowexecution.FieldWorkflow:
		m.ResetWorkflow()
		return nil
	case workflowexecution.FieldInput:
		m.ResetInput()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldExecutedNodes:
		m.ResetExecutedNodes()
		return nil
	case workflowexecution.FieldConversationHistory:
		m.ResetConversationHistory()
		return nil
	case workflowexecution.FieldHumanInputRequired:
		m.ResetHumanInputRequired()
		return nil
	case workflowexecution.FieldAwaitingHumanInputAgent:
		m.ResetAwaitingHumanInputAgent()
		return nil
	case workflowexecution.FieldHumanInputAgentID:
		m.ResetHumanInputAgentID()
		return nil
	case workflowexecution.FieldHumanInputContext:
		m.ResetHumanInputContext()
		return nil
	case workflowexecution.FieldHumanInputRequestedAt:
		m.ResetHumanInputRequestedAt()
		return nil
	case workflowexecution.FieldHumanInputReceivedAt:
		m.ResetHumanInputReceivedAt()
		return nil
	case workflowexecution.FieldDelegateConversations:
		m.ResetDelegateConversations()
		return nil
	case workflowexecution.FieldFinalOutput:
		m.ResetFinalOutput()
		return nil
	case workflowexecution.FieldResultSummary:
		m.ResetResultSummary()
		return nil
	case workflowexecution.FieldTotalAgentsInvolved:
		m.ResetTotalAgentsInvolved()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case workflowexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case workflowexecution.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case workflowexecution.FieldPodID:
		m.ResetPodID()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.messages != nil {
		edges = append(edges, workflowexecution.EdgeMessages)
	}
	if m.llm_interactions != nil {
		edges = append(edges, workflowexecution.EdgeLlmInteractions)
	}
	if m.human_inputs != nil {
		edges = append(edges, workflowexecution.EdgeHumanInputs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.llm_interactions))
		for id := range m.llm_interactions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeHumanInputs:
		ids := make([]ent.Value, 0, len(m.human_inputs))
		for id := range m.human_inputs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, workflowexecution.EdgeMessages)
	}
	if m.removedllm_interactions != nil {
		edges = append(edges, workflowexecution.EdgeLlmInteractions)
	}
	if m.removedhuman_inputs != nil {
		edges = append(edges, workflowexecution.EdgeHumanInputs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeLlmInteractions:
		ids := make([]ent.Value, 0, len(m.removedllm_interactions))
		for id := range m.removedllm_interactions {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeHumanInputs:
		ids := make([]ent.Value, 0, len(m.removedhuman_inputs))
		for id := range m.removedhuman_inputs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedmessages {
		edges = append(edges, workflowexecution.EdgeMessages)
	}
	if m.clearedllm_interactions {
		edges = append(edges, workflowexecution.EdgeLlmInteractions)
	}
	if m.clearedhuman_inputs {
		edges = append(edges, workflowexecution.EdgeHumanInputs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeMessages:
		return m.clearedmessages
	case workflowexecution.EdgeLlmInteractions:
		return m.clearedllm_interactions
	case workflowexecution.EdgeHumanInputs:
		return m.clearedhuman_inputs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeMessages:
		m.ResetMessages()
		return nil
	case workflowexecution.EdgeLlmInteractions:
		m.ResetLlmInteractions()
		return nil
	case workflowexecution.EdgeHumanInputs:
		m.ResetHumanInputs()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/predicate"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// WorkflowExecutionQuery is the builder for querying WorkflowExecution entities.
type WorkflowExecutionQuery struct {
	config
	ctx                 *QueryContext
	order               []workflowexecution.OrderOption
	inters              []Interceptor
	predicates          []predicate.WorkflowExecution
	withMessages        *ExecutionMessageQuery
	withLlmInteractions *LLMInteractionQuery
	withHumanInputs     *HumanInputInteractionQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WorkflowExecutionQuery builder.
func (_q *WorkflowExecutionQuery) Where(ps ...predicate.WorkflowExecution) *WorkflowExecutionQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WorkflowExecutionQuery) Limit(limit int) *WorkflowExecutionQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WorkflowExecutionQuery) Offset(offset int) *WorkflowExecutionQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WorkflowExecutionQuery) Unique(unique bool) *WorkflowExecutionQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WorkflowExecutionQuery) Order(o ...workflowexecution.OrderOption) *WorkflowExecutionQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *WorkflowExecutionQuery) QueryMessages() *ExecutionMessageQuery {
	query := (&ExecutionMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, selector),
			sqlgraph.To(executionmessage.Table, executionmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.MessagesTable, workflowexecution.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLlmInteractions chains the current query on the "llm_interactions" edge.
func (_q *WorkflowExecutionQuery) QueryLlmInteractions() *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, selector),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.LlmInteractionsTable, workflowexecution.LlmInteractionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHumanInputs chains the current query on the "human_inputs" edge.
func (_q *WorkflowExecutionQuery) QueryHumanInputs() *HumanInputInteractionQuery {
	query := (&HumanInputInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, selector),
			sqlgraph.To(humaninputinteraction.Table, humaninputinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.HumanInputsTable, workflowexecution.HumanInputsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WorkflowExecution entity from the query.
// Returns a *NotFoundError when no WorkflowExecution was found.
func (_q *WorkflowExecutionQuery) First(ctx context.Context) (*WorkflowExecution, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{workflowexecution.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) FirstX(ctx context.Context) *WorkflowExecution {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WorkflowExecution ID from the query.
// Returns a *NotFoundError when no WorkflowExecution ID was found.
func (_q *WorkflowExecutionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{workflowexecution.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WorkflowExecution entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WorkflowExecution entity is found.
// Returns a *NotFoundError when no WorkflowExecution entities are found.
func (_q *WorkflowExecutionQuery) Only(ctx context.Context) (*WorkflowExecution, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{workflowexecution.Label}
	default:
		return nil, &NotSingularError{workflowexecution.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) OnlyX(ctx context.Context) *WorkflowExecution {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WorkflowExecution ID in the query.
// Returns a *NotSingularError when more than one WorkflowExecution ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WorkflowExecutionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{workflowexecution.Label}
	default:
		err = &NotSingularError{workflowexecution.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WorkflowExecutions.
func (_q *WorkflowExecutionQuery) All(ctx context.Context) ([]*WorkflowExecution, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WorkflowExecution, *WorkflowExecutionQuery]()
	return withInterceptors[[]*WorkflowExecution](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) AllX(ctx context.Context) []*WorkflowExecution {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WorkflowExecution IDs.
func (_q *WorkflowExecutionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(workflowexecution.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WorkflowExecutionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WorkflowExecutionQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WorkflowExecutionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *WorkflowExecutionQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WorkflowExecutionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WorkflowExecutionQuery) Clone() *WorkflowExecutionQuery {
	if _q == nil {
		return nil
	}
	return &WorkflowExecutionQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]workflowexecution.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.WorkflowExecution{}, _q.predicates...),
		withMessages:        _q.withMessages.Clone(),
		withLlmInteractions: _q.withLlmInteractions.Clone(),
		withHumanInputs:     _q.withHumanInputs.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkflowExecutionQuery) WithMessages(opts ...func(*ExecutionMessageQuery)) *WorkflowExecutionQuery {
	query := (&ExecutionMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithLlmInteractions tells the query-builder to eager-load the nodes that are connected to
// the "llm_interactions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkflowExecutionQuery) WithLlmInteractions(opts ...func(*LLMInteractionQuery)) *WorkflowExecutionQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLlmInteractions = query
	return _q
}

// WithHumanInputs tells the query-builder to eager-load the nodes that are connected to
// the "human_inputs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WorkflowExecutionQuery) WithHumanInputs(opts ...func(*HumanInputInteractionQuery)) *WorkflowExecutionQuery {
	query := (&HumanInputInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHumanInputs = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProjectID string `json:"project_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.WorkflowExecution.Query().
//		GroupBy(workflowexecution.FieldProjectID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *WorkflowExecutionQuery) GroupBy(field string, fields ...string) *WorkflowExecutionGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WorkflowExecutionGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = workflowexecution.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProjectID string `json:"project_id,omitempty"`
//	}
//
//	client.WorkflowExecution.Query().
//		Select(workflowexecution.FieldProjectID).
//		Scan(ctx, &v)
func (_q *WorkflowExecutionQuery) Select(fields ...string) *WorkflowExecutionSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WorkflowExecutionSelect{WorkflowExecutionQuery: _q}
	sbuild.label = workflowexecution.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WorkflowExecutionSelect configured with the given aggregations.
func (_q *WorkflowExecutionQuery) Aggregate(fns ...AggregateFunc) *WorkflowExecutionSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WorkflowExecutionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !workflowexecution.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *WorkflowExecutionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WorkflowExecution, error) {
	var (
		nodes       = []*WorkflowExecution{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withMessages != nil,
			_q.withLlmInteractions != nil,
			_q.withHumanInputs != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WorkflowExecution).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WorkflowExecution{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *WorkflowExecution) { n.Edges.Messages = []*ExecutionMessage{} },
			func(n *WorkflowExecution, e *ExecutionMessage) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLlmInteractions; query != nil {
		if err := _q.loadLlmInteractions(ctx, query, nodes,
			func(n *WorkflowExecution) { n.Edges.LlmInteractions = []*LLMInteraction{} },
			func(n *WorkflowExecution, e *LLMInteraction) {
				n.Edges.LlmInteractions = append(n.Edges.LlmInteractions, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withHumanInputs; query != nil {
		if err := _q.loadHumanInputs(ctx, query, nodes,
			func(n *WorkflowExecution) { n.Edges.HumanInputs = []*HumanInputInteraction{} },
			func(n *WorkflowExecution, e *HumanInputInteraction) {
				n.Edges.HumanInputs = append(n.Edges.HumanInputs, e)
			}); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WorkflowExecutionQuery) loadMessages(ctx context.Context, query *ExecutionMessageQuery, nodes []*WorkflowExecution, init func(*WorkflowExecution), assign func(*WorkflowExecution, *ExecutionMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*WorkflowExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(executionmessage.FieldExecutionID)
	}
	query.Where(predicate.ExecutionMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workflowexecution.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkflowExecutionQuery) loadLlmInteractions(ctx context.Context, query *LLMInteractionQuery, nodes []*WorkflowExecution, init func(*WorkflowExecution), assign func(*WorkflowExecution, *LLMInteraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*WorkflowExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(llminteraction.FieldExecutionID)
	}
	query.Where(predicate.LLMInteraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workflowexecution.LlmInteractionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *WorkflowExecutionQuery) loadHumanInputs(ctx context.Context, query *HumanInputInteractionQuery, nodes []*WorkflowExecution, init func(*WorkflowExecution), assign func(*WorkflowExecution, *HumanInputInteraction)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*WorkflowExecution)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(humaninputinteraction.FieldExecutionID)
	}
	query.Where(predicate.HumanInputInteraction(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(workflowexecution.HumanInputsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WorkflowExecutionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WorkflowExecutionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(workflowexecution.Table, workflowexecution.Columns, sqlgraph.NewFieldSpec(workflowexecution.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowexecution.FieldID)
		for i := range fields {
			if fields[i] != workflowexecution.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *WorkflowExecutionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(workflowexecution.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = workflowexecution.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *WorkflowExecutionQuery) ForUpdate(opts ...sql.LockOption) *WorkflowExecutionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *WorkflowExecutionQuery) ForShare(opts ...sql.LockOption) *WorkflowExecutionQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// WorkflowExecutionGroupBy is the group-by builder for WorkflowExecution entities.
type WorkflowExecutionGroupBy struct {
	selector
	build *WorkflowExecutionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WorkflowExecutionGroupBy) Aggregate(fns ...AggregateFunc) *WorkflowExecutionGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WorkflowExecutionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowExecutionQuery, *WorkflowExecutionGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WorkflowExecutionGroupBy) sqlScan(ctx context.Context, root *WorkflowExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// WorkflowExecutionSelect is the builder for selecting fields of WorkflowExecution entities.
type WorkflowExecutionSelect struct {
	*WorkflowExecutionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WorkflowExecutionSelect) Aggregate(fns ...AggregateFunc) *WorkflowExecutionSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WorkflowExecutionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WorkflowExecutionQuery, *WorkflowExecutionSelect](ctx, _s.WorkflowExecutionQuery, _s, _s.inters, v)
}

func (_s *WorkflowExecutionSelect) sqlScan(ctx context.Context, root *WorkflowExecutionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/weftworks/weft/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/weftworks/weft/ent/executionmessage"
	"github.com/weftworks/weft/ent/humaninputinteraction"
	"github.com/weftworks/weft/ent/llminteraction"
	"github.com/weftworks/weft/ent/projectcredential"
	"github.com/weftworks/weft/ent/workflowexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExecutionMessage is the client for interacting with the ExecutionMessage builders.
	ExecutionMessage *ExecutionMessageClient
	// HumanInputInteraction is the client for interacting with the HumanInputInteraction builders.
	HumanInputInteraction *HumanInputInteractionClient
	// LLMInteraction is the client for interacting with the LLMInteraction builders.
	LLMInteraction *LLMInteractionClient
	// ProjectCredential is the client for interacting with the ProjectCredential builders.
	ProjectCredential *ProjectCredentialClient
	// WorkflowExecution is the client for interacting with the WorkflowExecution builders.
	WorkflowExecution *WorkflowExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExecutionMessage = NewExecutionMessageClient(c.config)
	c.HumanInputInteraction = NewHumanInputInteractionClient(c.config)
	c.LLMInteraction = NewLLMInteractionClient(c.config)
	c.ProjectCredential = NewProjectCredentialClient(c.config)
	c.WorkflowExecution = NewWorkflowExecutionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		ExecutionMessage:      NewExecutionMessageClient(cfg),
		HumanInputInteraction: NewHumanInputInteractionClient(cfg),
		LLMInteraction:        NewLLMInteractionClient(cfg),
		ProjectCredential:     NewProjectCredentialClient(cfg),
		WorkflowExecution:     NewWorkflowExecutionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                   ctx,
		config:                cfg,
		ExecutionMessage:      NewExecutionMessageClient(cfg),
		HumanInputInteraction: NewHumanInputInteractionClient(cfg),
		LLMInteraction:        NewLLMInteractionClient(cfg),
		ProjectCredential:     NewProjectCredentialClient(cfg),
		WorkflowExecution:     NewWorkflowExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExecutionMessage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ExecutionMessage.Use(hooks...)
	c.HumanInputInteraction.Use(hooks...)
	c.LLMInteraction.Use(hooks...)
	c.ProjectCredential.Use(hooks...)
	c.WorkflowExecution.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExecutionMessage.Intercept(interceptors...)
	c.HumanInputInteraction.Intercept(interceptors...)
	c.LLMInteraction.Intercept(interceptors...)
	c.ProjectCredential.Intercept(interceptors...)
	c.WorkflowExecution.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExecutionMessageMutation:
		return c.ExecutionMessage.mutate(ctx, m)
	case *HumanInputInteractionMutation:
		return c.HumanInputInteraction.mutate(ctx, m)
	case *LLMInteractionMutation:
		return c.LLMInteraction.mutate(ctx, m)
	case *ProjectCredentialMutation:
		return c.ProjectCredential.mutate(ctx, m)
	case *WorkflowExecutionMutation:
		return c.WorkflowExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExecutionMessageClient is a client for the ExecutionMessage schema.
type ExecutionMessageClient struct {
	config
}

// NewExecutionMessageClient returns a client for the ExecutionMessage from the given config.
func NewExecutionMessageClient(c config) *ExecutionMessageClient {
	return &ExecutionMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionmessage.Hooks(f(g(h())))`.
func (c *ExecutionMessageClient) Use(hooks ...Hook) {
	c.hooks.ExecutionMessage = append(c.hooks.ExecutionMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionmessage.Intercept(f(g(h())))`.
func (c *ExecutionMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionMessage = append(c.inters.ExecutionMessage, interceptors...)
}

// Create returns a builder for creating a ExecutionMessage entity.
func (c *ExecutionMessageClient) Create() *ExecutionMessageCreate {
	mutation := newExecutionMessageMutation(c.config, OpCreate)
	return &ExecutionMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionMessage entities.
func (c *ExecutionMessageClient) CreateBulk(builders ...*ExecutionMessageCreate) *ExecutionMessageCreateBulk {
	return &ExecutionMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionMessageClient) MapCreateBulk(slice any, setFunc func(*ExecutionMessageCreate, int)) *ExecutionMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionMessageCreateBulk{err: fmt.Errorf("calling to ExecutionMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionMessage.
func (c *ExecutionMessageClient) Update() *ExecutionMessageUpdate {
	mutation := newExecutionMessageMutation(c.config, OpUpdate)
	return &ExecutionMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionMessageClient) UpdateOne(_m *ExecutionMessage) *ExecutionMessageUpdateOne {
	mutation := newExecutionMessageMutation(c.config, OpUpdateOne, withExecutionMessage(_m))
	return &ExecutionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionMessageClient) UpdateOneID(id string) *ExecutionMessageUpdateOne {
	mutation := newExecutionMessageMutation(c.config, OpUpdateOne, withExecutionMessageID(id))
	return &ExecutionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionMessage.
func (c *ExecutionMessageClient) Delete() *ExecutionMessageDelete {
	mutation := newExecutionMessageMutation(c.config, OpDelete)
	return &ExecutionMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionMessageClient) DeleteOne(_m *ExecutionMessage) *ExecutionMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionMessageClient) DeleteOneID(id string) *ExecutionMessageDeleteOne {
	builder := c.Delete().Where(executionmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionMessageDeleteOne{builder}
}

// Query returns a query builder for ExecutionMessage.
func (c *ExecutionMessageClient) Query() *ExecutionMessageQuery {
	return &ExecutionMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionMessage entity by its id.
func (c *ExecutionMessageClient) Get(ctx context.Context, id string) (*ExecutionMessage, error) {
	return c.Query().Where(executionmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionMessageClient) GetX(ctx context.Context, id string) *ExecutionMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a ExecutionMessage.
func (c *ExecutionMessageClient) QueryExecution(_m *ExecutionMessage) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionmessage.Table, executionmessage.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionmessage.ExecutionTable, executionmessage.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionMessageClient) Hooks() []Hook {
	return c.hooks.ExecutionMessage
}

// Interceptors returns the client interceptors.
func (c *ExecutionMessageClient) Interceptors() []Interceptor {
	return c.inters.ExecutionMessage
}

func (c *ExecutionMessageClient) mutate(ctx context.Context, m *ExecutionMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionMessage mutation op: %q", m.Op())
	}
}

// HumanInputInteractionClient is a client for the HumanInputInteraction schema.
type HumanInputInteractionClient struct {
	config
}

// NewHumanInputInteractionClient returns a client for the HumanInputInteraction from the given config.
func NewHumanInputInteractionClient(c config) *HumanInputInteractionClient {
	return &HumanInputInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `humaninputinteraction.Hooks(f(g(h())))`.
func (c *HumanInputInteractionClient) Use(hooks ...Hook) {
	c.hooks.HumanInputInteraction = append(c.hooks.HumanInputInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `humaninputinteraction.Intercept(f(g(h())))`.
func (c *HumanInputInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.HumanInputInteraction = append(c.inters.HumanInputInteraction, interceptors...)
}

// Create returns a builder for creating a HumanInputInteraction entity.
func (c *HumanInputInteractionClient) Create() *HumanInputInteractionCreate {
	mutation := newHumanInputInteractionMutation(c.config, OpCreate)
	return &HumanInputInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HumanInputInteraction entities.
func (c *HumanInputInteractionClient) CreateBulk(builders ...*HumanInputInteractionCreate) *HumanInputInteractionCreateBulk {
	return &HumanInputInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HumanInputInteractionClient) MapCreateBulk(slice any, setFunc func(*HumanInputInteractionCreate, int)) *HumanInputInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HumanInputInteractionCreateBulk{err: fmt.Errorf("calling to HumanInputInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HumanInputInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HumanInputInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HumanInputInteraction.
func (c *HumanInputInteractionClient) Update() *HumanInputInteractionUpdate {
	mutation := newHumanInputInteractionMutation(c.config, OpUpdate)
	return &HumanInputInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HumanInputInteractionClient) UpdateOne(_m *HumanInputInteraction) *HumanInputInteractionUpdateOne {
	mutation := newHumanInputInteractionMutation(c.config, OpUpdateOne, withHumanInputInteraction(_m))
	return &HumanInputInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HumanInputInteractionClient) UpdateOneID(id string) *HumanInputInteractionUpdateOne {
	mutation := newHumanInputInteractionMutation(c.config, OpUpdateOne, withHumanInputInteractionID(id))
	return &HumanInputInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HumanInputInteraction.
func (c *HumanInputInteractionClient) Delete() *HumanInputInteractionDelete {
	mutation := newHumanInputInteractionMutation(c.config, OpDelete)
	return &HumanInputInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HumanInputInteractionClient) DeleteOne(_m *HumanInputInteraction) *HumanInputInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HumanInputInteractionClient) DeleteOneID(id string) *HumanInputInteractionDeleteOne {
	builder := c.Delete().Where(humaninputinteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HumanInputInteractionDeleteOne{builder}
}

// Query returns a query builder for HumanInputInteraction.
func (c *HumanInputInteractionClient) Query() *HumanInputInteractionQuery {
	return &HumanInputInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHumanInputInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a HumanInputInteraction entity by its id.
func (c *HumanInputInteractionClient) Get(ctx context.Context, id string) (*HumanInputInteraction, error) {
	return c.Query().Where(humaninputinteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HumanInputInteractionClient) GetX(ctx context.Context, id string) *HumanInputInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a HumanInputInteraction.
func (c *HumanInputInteractionClient) QueryExecution(_m *HumanInputInteraction) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(humaninputinteraction.Table, humaninputinteraction.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, humaninputinteraction.ExecutionTable, humaninputinteraction.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HumanInputInteractionClient) Hooks() []Hook {
	return c.hooks.HumanInputInteraction
}

// Interceptors returns the client interceptors.
func (c *HumanInputInteractionClient) Interceptors() []Interceptor {
	return c.inters.HumanInputInteraction
}

func (c *HumanInputInteractionClient) mutate(ctx context.Context, m *HumanInputInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HumanInputInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HumanInputInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HumanInputInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HumanInputInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HumanInputInteraction mutation op: %q", m.Op())
	}
}

// LLMInteractionClient is a client for the LLMInteraction schema.
type LLMInteractionClient struct {
	config
}

// NewLLMInteractionClient returns a client for the LLMInteraction from the given config.
func NewLLMInteractionClient(c config) *LLMInteractionClient {
	return &LLMInteractionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llminteraction.Hooks(f(g(h())))`.
func (c *LLMInteractionClient) Use(hooks ...Hook) {
	c.hooks.LLMInteraction = append(c.hooks.LLMInteraction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llminteraction.Intercept(f(g(h())))`.
func (c *LLMInteractionClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMInteraction = append(c.inters.LLMInteraction, interceptors...)
}

// Create returns a builder for creating a LLMInteraction entity.
func (c *LLMInteractionClient) Create() *LLMInteractionCreate {
	mutation := newLLMInteractionMutation(c.config, OpCreate)
	return &LLMInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMInteraction entities.
func (c *LLMInteractionClient) CreateBulk(builders ...*LLMInteractionCreate) *LLMInteractionCreateBulk {
	return &LLMInteractionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMInteractionClient) MapCreateBulk(slice any, setFunc func(*LLMInteractionCreate, int)) *LLMInteractionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMInteractionCreateBulk{err: fmt.Errorf("calling to LLMInteractionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMInteractionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMInteractionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMInteraction.
func (c *LLMInteractionClient) Update() *LLMInteractionUpdate {
	mutation := newLLMInteractionMutation(c.config, OpUpdate)
	return &LLMInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMInteractionClient) UpdateOne(_m *LLMInteraction) *LLMInteractionUpdateOne {
	mutation := newLLMInteractionMutation(c.config, OpUpdateOne, withLLMInteraction(_m))
	return &LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMInteractionClient) UpdateOneID(id string) *LLMInteractionUpdateOne {
	mutation := newLLMInteractionMutation(c.config, OpUpdateOne, withLLMInteractionID(id))
	return &LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMInteraction.
func (c *LLMInteractionClient) Delete() *LLMInteractionDelete {
	mutation := newLLMInteractionMutation(c.config, OpDelete)
	return &LLMInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMInteractionClient) DeleteOne(_m *LLMInteraction) *LLMInteractionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMInteractionClient) DeleteOneID(id string) *LLMInteractionDeleteOne {
	builder := c.Delete().Where(llminteraction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMInteractionDeleteOne{builder}
}

// Query returns a query builder for LLMInteraction.
func (c *LLMInteractionClient) Query() *LLMInteractionQuery {
	return &LLMInteractionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMInteraction},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMInteraction entity by its id.
func (c *LLMInteractionClient) Get(ctx context.Context, id string) (*LLMInteraction, error) {
	return c.Query().Where(llminteraction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMInteractionClient) GetX(ctx context.Context, id string) *LLMInteraction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecution queries the execution edge of a LLMInteraction.
func (c *LLMInteractionClient) QueryExecution(_m *LLMInteraction) *WorkflowExecutionQuery {
	query := (&WorkflowExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(llminteraction.Table, llminteraction.FieldID, id),
			sqlgraph.To(workflowexecution.Table, workflowexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, llminteraction.ExecutionTable, llminteraction.ExecutionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LLMInteractionClient) Hooks() []Hook {
	return c.hooks.LLMInteraction
}

// Interceptors returns the client interceptors.
func (c *LLMInteractionClient) Interceptors() []Interceptor {
	return c.inters.LLMInteraction
}

func (c *LLMInteractionClient) mutate(ctx context.Context, m *LLMInteractionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMInteractionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMInteractionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMInteractionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMInteractionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMInteraction mutation op: %q", m.Op())
	}
}

// ProjectCredentialClient is a client for the ProjectCredential schema.
type ProjectCredentialClient struct {
	config
}

// NewProjectCredentialClient returns a client for the ProjectCredential from the given config.
func NewProjectCredentialClient(c config) *ProjectCredentialClient {
	return &ProjectCredentialClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectcredential.Hooks(f(g(h())))`.
func (c *ProjectCredentialClient) Use(hooks ...Hook) {
	c.hooks.ProjectCredential = append(c.hooks.ProjectCredential, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectcredential.Intercept(f(g(h())))`.
func (c *ProjectCredentialClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectCredential = append(c.inters.ProjectCredential, interceptors...)
}

// Create returns a builder for creating a ProjectCredential entity.
func (c *ProjectCredentialClient) Create() *ProjectCredentialCreate {
	mutation := newProjectCredentialMutation(c.config, OpCreate)
	return &ProjectCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectCredential entities.
func (c *ProjectCredentialClient) CreateBulk(builders ...*ProjectCredentialCreate) *ProjectCredentialCreateBulk {
	return &ProjectCredentialCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectCredentialClient) MapCreateBulk(slice any, setFunc func(*ProjectCredentialCreate, int)) *ProjectCredentialCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCredentialCreateBulk{err: fmt.Errorf("calling to ProjectCredentialClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCredentialCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCredentialCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectCredential.
func (c *ProjectCredentialClient) Update() *ProjectCredentialUpdate {
	mutation := newProjectCredentialMutation(c.config, OpUpdate)
	return &ProjectCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectCredentialClient) UpdateOne(_m *ProjectCredential) *ProjectCredentialUpdateOne {
	mutation := newProjectCredentialMutation(c.config, OpUpdateOne, withProjectCredential(_m))
	return &ProjectCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectCredentialClient) UpdateOneID(id string) *ProjectCredentialUpdateOne {
	mutation := newProjectCredentialMutation(c.config, OpUpdateOne, withProjectCredentialID(id))
	return &ProjectCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectCredential.
func (c *ProjectCredentialClient) Delete() *ProjectCredentialDelete {
	mutation := newProjectCredentialMutation(c.config, OpDelete)
	return &ProjectCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectCredentialClient) DeleteOne(_m *ProjectCredential) *ProjectCredentialDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectCredentialClient) DeleteOneID(id string) *ProjectCredentialDeleteOne {
	builder := c.Delete().Where(projectcredential.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectCredentialDeleteOne{builder}
}

// Query returns a query builder for ProjectCredential.
func (c *ProjectCredentialClient) Query() *ProjectCredentialQuery {
	return &ProjectCredentialQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectCredential},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectCredential entity by its id.
func (c *ProjectCredentialClient) Get(ctx context.Context, id string) (*ProjectCredential, error) {
	return c.Query().Where(projectcredential.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectCredentialClient) GetX(ctx context.Context, id string) *ProjectCredential {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectCredentialClient) Hooks() []Hook {
	return c.hooks.ProjectCredential
}

// Interceptors returns the client interceptors.
func (c *ProjectCredentialClient) Interceptors() []Interceptor {
	return c.inters.ProjectCredential
}

func (c *ProjectCredentialClient) mutate(ctx context.Context, m *ProjectCredentialMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCredentialCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectCredentialUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectCredentialUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectCredentialDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectCredential mutation op: %q", m.Op())
	}
}

// WorkflowExecutionClient is a client for the WorkflowExecution schema.
type WorkflowExecutionClient struct {
	config
}

// NewWorkflowExecutionClient returns a client for the WorkflowExecution from the given config.
func NewWorkflowExecutionClient(c config) *WorkflowExecutionClient {
	return &WorkflowExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowexecution.Hooks(f(g(h())))`.
func (c *WorkflowExecutionClient) Use(hooks ...Hook) {
	c.hooks.WorkflowExecution = append(c.hooks.WorkflowExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowexecution.Intercept(f(g(h())))`.
func (c *WorkflowExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowExecution = append(c.inters.WorkflowExecution, interceptors...)
}

// Create returns a builder for creating a WorkflowExecution entity.
func (c *WorkflowExecutionClient) Create() *WorkflowExecutionCreate {
	mutation := newWorkflowExecutionMutation(c.config, OpCreate)
	return &WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowExecution entities.
func (c *WorkflowExecutionClient) CreateBulk(builders ...*WorkflowExecutionCreate) *WorkflowExecutionCreateBulk {
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowExecutionClient) MapCreateBulk(slice any, setFunc func(*WorkflowExecutionCreate, int)) *WorkflowExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowExecutionCreateBulk{err: fmt.Errorf("calling to WorkflowExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Update() *WorkflowExecutionUpdate {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdate)
	return &WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowExecutionClient) UpdateOne(_m *WorkflowExecution) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecution(_m))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowExecutionClient) UpdateOneID(id string) *WorkflowExecutionUpdateOne {
	mutation := newWorkflowExecutionMutation(c.config, OpUpdateOne, withWorkflowExecutionID(id))
	return &WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Delete() *WorkflowExecutionDelete {
	mutation := newWorkflowExecutionMutation(c.config, OpDelete)
	return &WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowExecutionClient) DeleteOne(_m *WorkflowExecution) *WorkflowExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowExecutionClient) DeleteOneID(id string) *WorkflowExecutionDeleteOne {
	builder := c.Delete().Where(workflowexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowExecutionDeleteOne{builder}
}

// Query returns a query builder for WorkflowExecution.
func (c *WorkflowExecutionClient) Query() *WorkflowExecutionQuery {
	return &WorkflowExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowExecution entity by its id.
func (c *WorkflowExecutionClient) Get(ctx context.Context, id string) (*WorkflowExecution, error) {
	return c.Query().Where(workflowexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowExecutionClient) GetX(ctx context.Context, id string) *WorkflowExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMessages queries the messages edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryMessages(_m *WorkflowExecution) *ExecutionMessageQuery {
	query := (&ExecutionMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(executionmessage.Table, executionmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.MessagesTable, workflowexecution.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLlmInteractions queries the llm_interactions edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryLlmInteractions(_m *WorkflowExecution) *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.LlmInteractionsTable, workflowexecution.LlmInteractionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHumanInputs queries the human_inputs edge of a WorkflowExecution.
func (c *WorkflowExecutionClient) QueryHumanInputs(_m *WorkflowExecution) *HumanInputInteractionQuery {
	query := (&HumanInputInteractionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowexecution.Table, workflowexecution.FieldID, id),
			sqlgraph.To(humaninputinteraction.Table, humaninputinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflowexecution.HumanInputsTable, workflowexecution.HumanInputsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowExecutionClient) Hooks() []Hook {
	return c.hooks.WorkflowExecution
}

// Interceptors returns the client interceptors.
func (c *WorkflowExecutionClient) Interceptors() []Interceptor {
	return c.inters.WorkflowExecution
}

func (c *WorkflowExecutionClient) mutate(ctx context.Context, m *WorkflowExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExecutionMessage, HumanInputInteraction, LLMInteraction, ProjectCredential,
		WorkflowExecution []ent.Hook
	}
	inters struct {
		ExecutionMessage, HumanInputInteraction, LLMInteraction, ProjectCredential,
		WorkflowExecution []ent.Interceptor
	}
)

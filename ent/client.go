// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/yclin/fabtrainer/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/yclin/fabtrainer/ent/evaluationevent"
	"github.com/yclin/fabtrainer/ent/interactionevent"
	"github.com/yclin/fabtrainer/ent/statssnapshot"
	"github.com/yclin/fabtrainer/ent/trainingstate"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EvaluationEvent is the client for interacting with the EvaluationEvent builders.
	EvaluationEvent *EvaluationEventClient
	// InteractionEvent is the client for interacting with the InteractionEvent builders.
	InteractionEvent *InteractionEventClient
	// StatsSnapshot is the client for interacting with the StatsSnapshot builders.
	StatsSnapshot *StatsSnapshotClient
	// TrainingState is the client for interacting with the TrainingState builders.
	TrainingState *TrainingStateClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EvaluationEvent = NewEvaluationEventClient(c.config)
	c.InteractionEvent = NewInteractionEventClient(c.config)
	c.StatsSnapshot = NewStatsSnapshotClient(c.config)
	c.TrainingState = NewTrainingStateClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		EvaluationEvent:  NewEvaluationEventClient(cfg),
		InteractionEvent: NewInteractionEventClient(cfg),
		StatsSnapshot:    NewStatsSnapshotClient(cfg),
		TrainingState:    NewTrainingStateClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		EvaluationEvent:  NewEvaluationEventClient(cfg),
		InteractionEvent: NewInteractionEventClient(cfg),
		StatsSnapshot:    NewStatsSnapshotClient(cfg),
		TrainingState:    NewTrainingStateClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EvaluationEvent.
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
	c.EvaluationEvent.Use(hooks...)
	c.InteractionEvent.Use(hooks...)
	c.StatsSnapshot.Use(hooks...)
	c.TrainingState.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.EvaluationEvent.Intercept(interceptors...)
	c.InteractionEvent.Intercept(interceptors...)
	c.StatsSnapshot.Intercept(interceptors...)
	c.TrainingState.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvaluationEventMutation:
		return c.EvaluationEvent.mutate(ctx, m)
	case *InteractionEventMutation:
		return c.InteractionEvent.mutate(ctx, m)
	case *StatsSnapshotMutation:
		return c.StatsSnapshot.mutate(ctx, m)
	case *TrainingStateMutation:
		return c.TrainingState.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvaluationEventClient is a client for the EvaluationEvent schema.
type EvaluationEventClient struct {
	config
}

// NewEvaluationEventClient returns a client for the EvaluationEvent from the given config.
func NewEvaluationEventClient(c config) *EvaluationEventClient {
	return &EvaluationEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationevent.Hooks(f(g(h())))`.
func (c *EvaluationEventClient) Use(hooks ...Hook) {
	c.hooks.EvaluationEvent = append(c.hooks.EvaluationEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationevent.Intercept(f(g(h())))`.
func (c *EvaluationEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationEvent = append(c.inters.EvaluationEvent, interceptors...)
}

// Create returns a builder for creating a EvaluationEvent entity.
func (c *EvaluationEventClient) Create() *EvaluationEventCreate {
	mutation := newEvaluationEventMutation(c.config, OpCreate)
	return &EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationEvent entities.
func (c *EvaluationEventClient) CreateBulk(builders ...*EvaluationEventCreate) *EvaluationEventCreateBulk {
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationEventClient) MapCreateBulk(slice any, setFunc func(*EvaluationEventCreate, int)) *EvaluationEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationEventCreateBulk{err: fmt.Errorf("calling to EvaluationEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationEvent.
func (c *EvaluationEventClient) Update() *EvaluationEventUpdate {
	mutation := newEvaluationEventMutation(c.config, OpUpdate)
	return &EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationEventClient) UpdateOne(_m *EvaluationEvent) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEvent(_m))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationEventClient) UpdateOneID(id int) *EvaluationEventUpdateOne {
	mutation := newEvaluationEventMutation(c.config, OpUpdateOne, withEvaluationEventID(id))
	return &EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationEvent.
func (c *EvaluationEventClient) Delete() *EvaluationEventDelete {
	mutation := newEvaluationEventMutation(c.config, OpDelete)
	return &EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationEventClient) DeleteOne(_m *EvaluationEvent) *EvaluationEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationEventClient) DeleteOneID(id int) *EvaluationEventDeleteOne {
	builder := c.Delete().Where(evaluationevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationEventDeleteOne{builder}
}

// Query returns a query builder for EvaluationEvent.
func (c *EvaluationEventClient) Query() *EvaluationEventQuery {
	return &EvaluationEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationEvent entity by its id.
func (c *EvaluationEventClient) Get(ctx context.Context, id int) (*EvaluationEvent, error) {
	return c.Query().Where(evaluationevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationEventClient) GetX(ctx context.Context, id int) *EvaluationEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvaluationEventClient) Hooks() []Hook {
	return c.hooks.EvaluationEvent
}

// Interceptors returns the client interceptors.
func (c *EvaluationEventClient) Interceptors() []Interceptor {
	return c.inters.EvaluationEvent
}

func (c *EvaluationEventClient) mutate(ctx context.Context, m *EvaluationEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationEvent mutation op: %q", m.Op())
	}
}

// InteractionEventClient is a client for the InteractionEvent schema.
type InteractionEventClient struct {
	config
}

// NewInteractionEventClient returns a client for the InteractionEvent from the given config.
func NewInteractionEventClient(c config) *InteractionEventClient {
	return &InteractionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interactionevent.Hooks(f(g(h())))`.
func (c *InteractionEventClient) Use(hooks ...Hook) {
	c.hooks.InteractionEvent = append(c.hooks.InteractionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interactionevent.Intercept(f(g(h())))`.
func (c *InteractionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InteractionEvent = append(c.inters.InteractionEvent, interceptors...)
}

// Create returns a builder for creating a InteractionEvent entity.
func (c *InteractionEventClient) Create() *InteractionEventCreate {
	mutation := newInteractionEventMutation(c.config, OpCreate)
	return &InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InteractionEvent entities.
func (c *InteractionEventClient) CreateBulk(builders ...*InteractionEventCreate) *InteractionEventCreateBulk {
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionEventClient) MapCreateBulk(slice any, setFunc func(*InteractionEventCreate, int)) *InteractionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionEventCreateBulk{err: fmt.Errorf("calling to InteractionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InteractionEvent.
func (c *InteractionEventClient) Update() *InteractionEventUpdate {
	mutation := newInteractionEventMutation(c.config, OpUpdate)
	return &InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionEventClient) UpdateOne(_m *InteractionEvent) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEvent(_m))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionEventClient) UpdateOneID(id int) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEventID(id))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InteractionEvent.
func (c *InteractionEventClient) Delete() *InteractionEventDelete {
	mutation := newInteractionEventMutation(c.config, OpDelete)
	return &InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionEventClient) DeleteOne(_m *InteractionEvent) *InteractionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionEventClient) DeleteOneID(id int) *InteractionEventDeleteOne {
	builder := c.Delete().Where(interactionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionEventDeleteOne{builder}
}

// Query returns a query builder for InteractionEvent.
func (c *InteractionEventClient) Query() *InteractionEventQuery {
	return &InteractionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteractionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InteractionEvent entity by its id.
func (c *InteractionEventClient) Get(ctx context.Context, id int) (*InteractionEvent, error) {
	return c.Query().Where(interactionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionEventClient) GetX(ctx context.Context, id int) *InteractionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InteractionEventClient) Hooks() []Hook {
	return c.hooks.InteractionEvent
}

// Interceptors returns the client interceptors.
func (c *InteractionEventClient) Interceptors() []Interceptor {
	return c.inters.InteractionEvent
}

func (c *InteractionEventClient) mutate(ctx context.Context, m *InteractionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InteractionEvent mutation op: %q", m.Op())
	}
}

// StatsSnapshotClient is a client for the StatsSnapshot schema.
type StatsSnapshotClient struct {
	config
}

// NewStatsSnapshotClient returns a client for the StatsSnapshot from the given config.
func NewStatsSnapshotClient(c config) *StatsSnapshotClient {
	return &StatsSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statssnapshot.Hooks(f(g(h())))`.
func (c *StatsSnapshotClient) Use(hooks ...Hook) {
	c.hooks.StatsSnapshot = append(c.hooks.StatsSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statssnapshot.Intercept(f(g(h())))`.
func (c *StatsSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.StatsSnapshot = append(c.inters.StatsSnapshot, interceptors...)
}

// Create returns a builder for creating a StatsSnapshot entity.
func (c *StatsSnapshotClient) Create() *StatsSnapshotCreate {
	mutation := newStatsSnapshotMutation(c.config, OpCreate)
	return &StatsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StatsSnapshot entities.
func (c *StatsSnapshotClient) CreateBulk(builders ...*StatsSnapshotCreate) *StatsSnapshotCreateBulk {
	return &StatsSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StatsSnapshotClient) MapCreateBulk(slice any, setFunc func(*StatsSnapshotCreate, int)) *StatsSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StatsSnapshotCreateBulk{err: fmt.Errorf("calling to StatsSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StatsSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StatsSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StatsSnapshot.
func (c *StatsSnapshotClient) Update() *StatsSnapshotUpdate {
	mutation := newStatsSnapshotMutation(c.config, OpUpdate)
	return &StatsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StatsSnapshotClient) UpdateOne(_m *StatsSnapshot) *StatsSnapshotUpdateOne {
	mutation := newStatsSnapshotMutation(c.config, OpUpdateOne, withStatsSnapshot(_m))
	return &StatsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StatsSnapshotClient) UpdateOneID(id int) *StatsSnapshotUpdateOne {
	mutation := newStatsSnapshotMutation(c.config, OpUpdateOne, withStatsSnapshotID(id))
	return &StatsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StatsSnapshot.
func (c *StatsSnapshotClient) Delete() *StatsSnapshotDelete {
	mutation := newStatsSnapshotMutation(c.config, OpDelete)
	return &StatsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StatsSnapshotClient) DeleteOne(_m *StatsSnapshot) *StatsSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StatsSnapshotClient) DeleteOneID(id int) *StatsSnapshotDeleteOne {
	builder := c.Delete().Where(statssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StatsSnapshotDeleteOne{builder}
}

// Query returns a query builder for StatsSnapshot.
func (c *StatsSnapshotClient) Query() *StatsSnapshotQuery {
	return &StatsSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStatsSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a StatsSnapshot entity by its id.
func (c *StatsSnapshotClient) Get(ctx context.Context, id int) (*StatsSnapshot, error) {
	return c.Query().Where(statssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StatsSnapshotClient) GetX(ctx context.Context, id int) *StatsSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StatsSnapshotClient) Hooks() []Hook {
	return c.hooks.StatsSnapshot
}

// Interceptors returns the client interceptors.
func (c *StatsSnapshotClient) Interceptors() []Interceptor {
	return c.inters.StatsSnapshot
}

func (c *StatsSnapshotClient) mutate(ctx context.Context, m *StatsSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StatsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StatsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StatsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StatsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StatsSnapshot mutation op: %q", m.Op())
	}
}

// TrainingStateClient is a client for the TrainingState schema.
type TrainingStateClient struct {
	config
}

// NewTrainingStateClient returns a client for the TrainingState from the given config.
func NewTrainingStateClient(c config) *TrainingStateClient {
	return &TrainingStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trainingstate.Hooks(f(g(h())))`.
func (c *TrainingStateClient) Use(hooks ...Hook) {
	c.hooks.TrainingState = append(c.hooks.TrainingState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trainingstate.Intercept(f(g(h())))`.
func (c *TrainingStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrainingState = append(c.inters.TrainingState, interceptors...)
}

// Create returns a builder for creating a TrainingState entity.
func (c *TrainingStateClient) Create() *TrainingStateCreate {
	mutation := newTrainingStateMutation(c.config, OpCreate)
	return &TrainingStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrainingState entities.
func (c *TrainingStateClient) CreateBulk(builders ...*TrainingStateCreate) *TrainingStateCreateBulk {
	return &TrainingStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrainingStateClient) MapCreateBulk(slice any, setFunc func(*TrainingStateCreate, int)) *TrainingStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrainingStateCreateBulk{err: fmt.Errorf("calling to TrainingStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrainingStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrainingStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrainingState.
func (c *TrainingStateClient) Update() *TrainingStateUpdate {
	mutation := newTrainingStateMutation(c.config, OpUpdate)
	return &TrainingStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrainingStateClient) UpdateOne(_m *TrainingState) *TrainingStateUpdateOne {
	mutation := newTrainingStateMutation(c.config, OpUpdateOne, withTrainingState(_m))
	return &TrainingStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrainingStateClient) UpdateOneID(id int) *TrainingStateUpdateOne {
	mutation := newTrainingStateMutation(c.config, OpUpdateOne, withTrainingStateID(id))
	return &TrainingStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrainingState.
func (c *TrainingStateClient) Delete() *TrainingStateDelete {
	mutation := newTrainingStateMutation(c.config, OpDelete)
	return &TrainingStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrainingStateClient) DeleteOne(_m *TrainingState) *TrainingStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrainingStateClient) DeleteOneID(id int) *TrainingStateDeleteOne {
	builder := c.Delete().Where(trainingstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrainingStateDeleteOne{builder}
}

// Query returns a query builder for TrainingState.
func (c *TrainingStateClient) Query() *TrainingStateQuery {
	return &TrainingStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrainingState},
		inters: c.Interceptors(),
	}
}

// Get returns a TrainingState entity by its id.
func (c *TrainingStateClient) Get(ctx context.Context, id int) (*TrainingState, error) {
	return c.Query().Where(trainingstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrainingStateClient) GetX(ctx context.Context, id int) *TrainingState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrainingStateClient) Hooks() []Hook {
	return c.hooks.TrainingState
}

// Interceptors returns the client interceptors.
func (c *TrainingStateClient) Interceptors() []Interceptor {
	return c.inters.TrainingState
}

func (c *TrainingStateClient) mutate(ctx context.Context, m *TrainingStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrainingStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrainingStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrainingStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrainingStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrainingState mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EvaluationEvent, InteractionEvent, StatsSnapshot, TrainingState []ent.Hook
	}
	inters struct {
		EvaluationEvent, InteractionEvent, StatsSnapshot,
		TrainingState []ent.Interceptor
	}
)

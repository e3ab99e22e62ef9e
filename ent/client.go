// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cubeai/bubix/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/account"
	"github.com/cubeai/bubix/ent/activityrecord"
	"github.com/cubeai/bubix/ent/childprofile"
	"github.com/cubeai/bubix/ent/llmrequestevent"
	"github.com/cubeai/bubix/ent/parentpreferences"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
	"github.com/cubeai/bubix/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Account is the client for interacting with the Account builders.
	Account *AccountClient
	// ActivityRecord is the client for interacting with the ActivityRecord builders.
	ActivityRecord *ActivityRecordClient
	// ChildProfile is the client for interacting with the ChildProfile builders.
	ChildProfile *ChildProfileClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// ParentPreferences is the client for interacting with the ParentPreferences builders.
	ParentPreferences *ParentPreferencesClient
	// ParentPromptRecord is the client for interacting with the ParentPromptRecord builders.
	ParentPromptRecord *ParentPromptRecordClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Account = NewAccountClient(c.config)
	c.ActivityRecord = NewActivityRecordClient(c.config)
	c.ChildProfile = NewChildProfileClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.ParentPreferences = NewParentPreferencesClient(c.config)
	c.ParentPromptRecord = NewParentPromptRecordClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		Account:            NewAccountClient(cfg),
		ActivityRecord:     NewActivityRecordClient(cfg),
		ChildProfile:       NewChildProfileClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		ParentPreferences:  NewParentPreferencesClient(cfg),
		ParentPromptRecord: NewParentPromptRecordClient(cfg),
		UserProfile:        NewUserProfileClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		Account:            NewAccountClient(cfg),
		ActivityRecord:     NewActivityRecordClient(cfg),
		ChildProfile:       NewChildProfileClient(cfg),
		LLMRequestEvent:    NewLLMRequestEventClient(cfg),
		ParentPreferences:  NewParentPreferencesClient(cfg),
		ParentPromptRecord: NewParentPromptRecordClient(cfg),
		UserProfile:        NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Account.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.Account, c.ActivityRecord, c.ChildProfile, c.LLMRequestEvent,
		c.ParentPreferences, c.ParentPromptRecord, c.UserProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Account, c.ActivityRecord, c.ChildProfile, c.LLMRequestEvent,
		c.ParentPreferences, c.ParentPromptRecord, c.UserProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AccountMutation:
		return c.Account.mutate(ctx, m)
	case *ActivityRecordMutation:
		return c.ActivityRecord.mutate(ctx, m)
	case *ChildProfileMutation:
		return c.ChildProfile.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *ParentPreferencesMutation:
		return c.ParentPreferences.mutate(ctx, m)
	case *ParentPromptRecordMutation:
		return c.ParentPromptRecord.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AccountClient is a client for the Account schema.
type AccountClient struct {
	config
}

// NewAccountClient returns a client for the Account from the given config.
func NewAccountClient(c config) *AccountClient {
	return &AccountClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `account.Hooks(f(g(h())))`.
func (c *AccountClient) Use(hooks ...Hook) {
	c.hooks.Account = append(c.hooks.Account, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `account.Intercept(f(g(h())))`.
func (c *AccountClient) Intercept(interceptors ...Interceptor) {
	c.inters.Account = append(c.inters.Account, interceptors...)
}

// Create returns a builder for creating a Account entity.
func (c *AccountClient) Create() *AccountCreate {
	mutation := newAccountMutation(c.config, OpCreate)
	return &AccountCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Account entities.
func (c *AccountClient) CreateBulk(builders ...*AccountCreate) *AccountCreateBulk {
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccountClient) MapCreateBulk(slice any, setFunc func(*AccountCreate, int)) *AccountCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccountCreateBulk{err: fmt.Errorf("calling to AccountClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccountCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccountCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Account.
func (c *AccountClient) Update() *AccountUpdate {
	mutation := newAccountMutation(c.config, OpUpdate)
	return &AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccountClient) UpdateOne(_m *Account) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccount(_m))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccountClient) UpdateOneID(id string) *AccountUpdateOne {
	mutation := newAccountMutation(c.config, OpUpdateOne, withAccountID(id))
	return &AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Account.
func (c *AccountClient) Delete() *AccountDelete {
	mutation := newAccountMutation(c.config, OpDelete)
	return &AccountDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccountClient) DeleteOne(_m *Account) *AccountDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccountClient) DeleteOneID(id string) *AccountDeleteOne {
	builder := c.Delete().Where(account.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccountDeleteOne{builder}
}

// Query returns a query builder for Account.
func (c *AccountClient) Query() *AccountQuery {
	return &AccountQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccount},
		inters: c.Interceptors(),
	}
}

// Get returns a Account entity by its id.
func (c *AccountClient) Get(ctx context.Context, id string) (*Account, error) {
	return c.Query().Where(account.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccountClient) GetX(ctx context.Context, id string) *Account {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AccountClient) Hooks() []Hook {
	return c.hooks.Account
}

// Interceptors returns the client interceptors.
func (c *AccountClient) Interceptors() []Interceptor {
	return c.inters.Account
}

func (c *AccountClient) mutate(ctx context.Context, m *AccountMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccountCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccountUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccountUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccountDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Account mutation op: %q", m.Op())
	}
}

// ActivityRecordClient is a client for the ActivityRecord schema.
type ActivityRecordClient struct {
	config
}

// NewActivityRecordClient returns a client for the ActivityRecord from the given config.
func NewActivityRecordClient(c config) *ActivityRecordClient {
	return &ActivityRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityrecord.Hooks(f(g(h())))`.
func (c *ActivityRecordClient) Use(hooks ...Hook) {
	c.hooks.ActivityRecord = append(c.hooks.ActivityRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityrecord.Intercept(f(g(h())))`.
func (c *ActivityRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityRecord = append(c.inters.ActivityRecord, interceptors...)
}

// Create returns a builder for creating a ActivityRecord entity.
func (c *ActivityRecordClient) Create() *ActivityRecordCreate {
	mutation := newActivityRecordMutation(c.config, OpCreate)
	return &ActivityRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityRecord entities.
func (c *ActivityRecordClient) CreateBulk(builders ...*ActivityRecordCreate) *ActivityRecordCreateBulk {
	return &ActivityRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityRecordClient) MapCreateBulk(slice any, setFunc func(*ActivityRecordCreate, int)) *ActivityRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityRecordCreateBulk{err: fmt.Errorf("calling to ActivityRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityRecord.
func (c *ActivityRecordClient) Update() *ActivityRecordUpdate {
	mutation := newActivityRecordMutation(c.config, OpUpdate)
	return &ActivityRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityRecordClient) UpdateOne(_m *ActivityRecord) *ActivityRecordUpdateOne {
	mutation := newActivityRecordMutation(c.config, OpUpdateOne, withActivityRecord(_m))
	return &ActivityRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityRecordClient) UpdateOneID(id int) *ActivityRecordUpdateOne {
	mutation := newActivityRecordMutation(c.config, OpUpdateOne, withActivityRecordID(id))
	return &ActivityRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityRecord.
func (c *ActivityRecordClient) Delete() *ActivityRecordDelete {
	mutation := newActivityRecordMutation(c.config, OpDelete)
	return &ActivityRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityRecordClient) DeleteOne(_m *ActivityRecord) *ActivityRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityRecordClient) DeleteOneID(id int) *ActivityRecordDeleteOne {
	builder := c.Delete().Where(activityrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityRecordDeleteOne{builder}
}

// Query returns a query builder for ActivityRecord.
func (c *ActivityRecordClient) Query() *ActivityRecordQuery {
	return &ActivityRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityRecord entity by its id.
func (c *ActivityRecordClient) Get(ctx context.Context, id int) (*ActivityRecord, error) {
	return c.Query().Where(activityrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityRecordClient) GetX(ctx context.Context, id int) *ActivityRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityRecordClient) Hooks() []Hook {
	return c.hooks.ActivityRecord
}

// Interceptors returns the client interceptors.
func (c *ActivityRecordClient) Interceptors() []Interceptor {
	return c.inters.ActivityRecord
}

func (c *ActivityRecordClient) mutate(ctx context.Context, m *ActivityRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityRecord mutation op: %q", m.Op())
	}
}

// ChildProfileClient is a client for the ChildProfile schema.
type ChildProfileClient struct {
	config
}

// NewChildProfileClient returns a client for the ChildProfile from the given config.
func NewChildProfileClient(c config) *ChildProfileClient {
	return &ChildProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `childprofile.Hooks(f(g(h())))`.
func (c *ChildProfileClient) Use(hooks ...Hook) {
	c.hooks.ChildProfile = append(c.hooks.ChildProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `childprofile.Intercept(f(g(h())))`.
func (c *ChildProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChildProfile = append(c.inters.ChildProfile, interceptors...)
}

// Create returns a builder for creating a ChildProfile entity.
func (c *ChildProfileClient) Create() *ChildProfileCreate {
	mutation := newChildProfileMutation(c.config, OpCreate)
	return &ChildProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChildProfile entities.
func (c *ChildProfileClient) CreateBulk(builders ...*ChildProfileCreate) *ChildProfileCreateBulk {
	return &ChildProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChildProfileClient) MapCreateBulk(slice any, setFunc func(*ChildProfileCreate, int)) *ChildProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChildProfileCreateBulk{err: fmt.Errorf("calling to ChildProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChildProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChildProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChildProfile.
func (c *ChildProfileClient) Update() *ChildProfileUpdate {
	mutation := newChildProfileMutation(c.config, OpUpdate)
	return &ChildProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChildProfileClient) UpdateOne(_m *ChildProfile) *ChildProfileUpdateOne {
	mutation := newChildProfileMutation(c.config, OpUpdateOne, withChildProfile(_m))
	return &ChildProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChildProfileClient) UpdateOneID(id int) *ChildProfileUpdateOne {
	mutation := newChildProfileMutation(c.config, OpUpdateOne, withChildProfileID(id))
	return &ChildProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChildProfile.
func (c *ChildProfileClient) Delete() *ChildProfileDelete {
	mutation := newChildProfileMutation(c.config, OpDelete)
	return &ChildProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChildProfileClient) DeleteOne(_m *ChildProfile) *ChildProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChildProfileClient) DeleteOneID(id int) *ChildProfileDeleteOne {
	builder := c.Delete().Where(childprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChildProfileDeleteOne{builder}
}

// Query returns a query builder for ChildProfile.
func (c *ChildProfileClient) Query() *ChildProfileQuery {
	return &ChildProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChildProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a ChildProfile entity by its id.
func (c *ChildProfileClient) Get(ctx context.Context, id int) (*ChildProfile, error) {
	return c.Query().Where(childprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChildProfileClient) GetX(ctx context.Context, id int) *ChildProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChildProfileClient) Hooks() []Hook {
	return c.hooks.ChildProfile
}

// Interceptors returns the client interceptors.
func (c *ChildProfileClient) Interceptors() []Interceptor {
	return c.inters.ChildProfile
}

func (c *ChildProfileClient) mutate(ctx context.Context, m *ChildProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChildProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChildProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChildProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChildProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChildProfile mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// ParentPreferencesClient is a client for the ParentPreferences schema.
type ParentPreferencesClient struct {
	config
}

// NewParentPreferencesClient returns a client for the ParentPreferences from the given config.
func NewParentPreferencesClient(c config) *ParentPreferencesClient {
	return &ParentPreferencesClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parentpreferences.Hooks(f(g(h())))`.
func (c *ParentPreferencesClient) Use(hooks ...Hook) {
	c.hooks.ParentPreferences = append(c.hooks.ParentPreferences, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parentpreferences.Intercept(f(g(h())))`.
func (c *ParentPreferencesClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParentPreferences = append(c.inters.ParentPreferences, interceptors...)
}

// Create returns a builder for creating a ParentPreferences entity.
func (c *ParentPreferencesClient) Create() *ParentPreferencesCreate {
	mutation := newParentPreferencesMutation(c.config, OpCreate)
	return &ParentPreferencesCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParentPreferences entities.
func (c *ParentPreferencesClient) CreateBulk(builders ...*ParentPreferencesCreate) *ParentPreferencesCreateBulk {
	return &ParentPreferencesCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParentPreferencesClient) MapCreateBulk(slice any, setFunc func(*ParentPreferencesCreate, int)) *ParentPreferencesCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParentPreferencesCreateBulk{err: fmt.Errorf("calling to ParentPreferencesClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParentPreferencesCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParentPreferencesCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParentPreferences.
func (c *ParentPreferencesClient) Update() *ParentPreferencesUpdate {
	mutation := newParentPreferencesMutation(c.config, OpUpdate)
	return &ParentPreferencesUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParentPreferencesClient) UpdateOne(_m *ParentPreferences) *ParentPreferencesUpdateOne {
	mutation := newParentPreferencesMutation(c.config, OpUpdateOne, withParentPreferences(_m))
	return &ParentPreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParentPreferencesClient) UpdateOneID(id int) *ParentPreferencesUpdateOne {
	mutation := newParentPreferencesMutation(c.config, OpUpdateOne, withParentPreferencesID(id))
	return &ParentPreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParentPreferences.
func (c *ParentPreferencesClient) Delete() *ParentPreferencesDelete {
	mutation := newParentPreferencesMutation(c.config, OpDelete)
	return &ParentPreferencesDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParentPreferencesClient) DeleteOne(_m *ParentPreferences) *ParentPreferencesDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParentPreferencesClient) DeleteOneID(id int) *ParentPreferencesDeleteOne {
	builder := c.Delete().Where(parentpreferences.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParentPreferencesDeleteOne{builder}
}

// Query returns a query builder for ParentPreferences.
func (c *ParentPreferencesClient) Query() *ParentPreferencesQuery {
	return &ParentPreferencesQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParentPreferences},
		inters: c.Interceptors(),
	}
}

// Get returns a ParentPreferences entity by its id.
func (c *ParentPreferencesClient) Get(ctx context.Context, id int) (*ParentPreferences, error) {
	return c.Query().Where(parentpreferences.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParentPreferencesClient) GetX(ctx context.Context, id int) *ParentPreferences {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParentPreferencesClient) Hooks() []Hook {
	return c.hooks.ParentPreferences
}

// Interceptors returns the client interceptors.
func (c *ParentPreferencesClient) Interceptors() []Interceptor {
	return c.inters.ParentPreferences
}

func (c *ParentPreferencesClient) mutate(ctx context.Context, m *ParentPreferencesMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParentPreferencesCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParentPreferencesUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParentPreferencesUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParentPreferencesDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParentPreferences mutation op: %q", m.Op())
	}
}

// ParentPromptRecordClient is a client for the ParentPromptRecord schema.
type ParentPromptRecordClient struct {
	config
}

// NewParentPromptRecordClient returns a client for the ParentPromptRecord from the given config.
func NewParentPromptRecordClient(c config) *ParentPromptRecordClient {
	return &ParentPromptRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parentpromptrecord.Hooks(f(g(h())))`.
func (c *ParentPromptRecordClient) Use(hooks ...Hook) {
	c.hooks.ParentPromptRecord = append(c.hooks.ParentPromptRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parentpromptrecord.Intercept(f(g(h())))`.
func (c *ParentPromptRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParentPromptRecord = append(c.inters.ParentPromptRecord, interceptors...)
}

// Create returns a builder for creating a ParentPromptRecord entity.
func (c *ParentPromptRecordClient) Create() *ParentPromptRecordCreate {
	mutation := newParentPromptRecordMutation(c.config, OpCreate)
	return &ParentPromptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParentPromptRecord entities.
func (c *ParentPromptRecordClient) CreateBulk(builders ...*ParentPromptRecordCreate) *ParentPromptRecordCreateBulk {
	return &ParentPromptRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParentPromptRecordClient) MapCreateBulk(slice any, setFunc func(*ParentPromptRecordCreate, int)) *ParentPromptRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParentPromptRecordCreateBulk{err: fmt.Errorf("calling to ParentPromptRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParentPromptRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParentPromptRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParentPromptRecord.
func (c *ParentPromptRecordClient) Update() *ParentPromptRecordUpdate {
	mutation := newParentPromptRecordMutation(c.config, OpUpdate)
	return &ParentPromptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParentPromptRecordClient) UpdateOne(_m *ParentPromptRecord) *ParentPromptRecordUpdateOne {
	mutation := newParentPromptRecordMutation(c.config, OpUpdateOne, withParentPromptRecord(_m))
	return &ParentPromptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParentPromptRecordClient) UpdateOneID(id int) *ParentPromptRecordUpdateOne {
	mutation := newParentPromptRecordMutation(c.config, OpUpdateOne, withParentPromptRecordID(id))
	return &ParentPromptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParentPromptRecord.
func (c *ParentPromptRecordClient) Delete() *ParentPromptRecordDelete {
	mutation := newParentPromptRecordMutation(c.config, OpDelete)
	return &ParentPromptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParentPromptRecordClient) DeleteOne(_m *ParentPromptRecord) *ParentPromptRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParentPromptRecordClient) DeleteOneID(id int) *ParentPromptRecordDeleteOne {
	builder := c.Delete().Where(parentpromptrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParentPromptRecordDeleteOne{builder}
}

// Query returns a query builder for ParentPromptRecord.
func (c *ParentPromptRecordClient) Query() *ParentPromptRecordQuery {
	return &ParentPromptRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParentPromptRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ParentPromptRecord entity by its id.
func (c *ParentPromptRecordClient) Get(ctx context.Context, id int) (*ParentPromptRecord, error) {
	return c.Query().Where(parentpromptrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParentPromptRecordClient) GetX(ctx context.Context, id int) *ParentPromptRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParentPromptRecordClient) Hooks() []Hook {
	return c.hooks.ParentPromptRecord
}

// Interceptors returns the client interceptors.
func (c *ParentPromptRecordClient) Interceptors() []Interceptor {
	return c.inters.ParentPromptRecord
}

func (c *ParentPromptRecordClient) mutate(ctx context.Context, m *ParentPromptRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParentPromptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParentPromptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParentPromptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParentPromptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParentPromptRecord mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id string) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id string) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id string) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id string) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Account, ActivityRecord, ChildProfile, LLMRequestEvent, ParentPreferences,
		ParentPromptRecord, UserProfile []ent.Hook
	}
	inters struct {
		Account, ActivityRecord, ChildProfile, LLMRequestEvent, ParentPreferences,
		ParentPromptRecord, UserProfile []ent.Interceptor
	}
)

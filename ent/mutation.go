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
	"github.com/cubeai/bubix/ent/account"
	"github.com/cubeai/bubix/ent/activityrecord"
	"github.com/cubeai/bubix/ent/childprofile"
	"github.com/cubeai/bubix/ent/llmrequestevent"
	"github.com/cubeai/bubix/ent/parentpreferences"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
	"github.com/cubeai/bubix/ent/predicate"
	"github.com/cubeai/bubix/ent/userprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount            = "Account"
	TypeActivityRecord     = "ActivityRecord"
	TypeChildProfile       = "ChildProfile"
	TypeLLMRequestEvent    = "LLMRequestEvent"
	TypeParentPreferences  = "ParentPreferences"
	TypeParentPromptRecord = "ParentPromptRecord"
	TypeUserProfile        = "UserProfile"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                Op
	typ               string
	id                *string
	email             *string
	subscription_type *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Account, error)
	predicates        []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
}

// SetSubscriptionType sets the "subscription_type" field.
func (m *AccountMutation) SetSubscriptionType(s string) {
	m.subscription_type = &s
}

// SubscriptionType returns the value of the "subscription_type" field in the mutation.
func (m *AccountMutation) SubscriptionType() (r string, exists bool) {
	v := m.subscription_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionType returns the old "subscription_type" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldSubscriptionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionType: %w", err)
	}
	return oldValue.SubscriptionType, nil
}

// ResetSubscriptionType resets all changes to the "subscription_type" field.
func (m *AccountMutation) ResetSubscriptionType() {
	m.subscription_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.subscription_type != nil {
		fields = append(fields, account.FieldSubscriptionType)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldEmail:
		return m.Email()
	case account.FieldSubscriptionType:
		return m.SubscriptionType()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldSubscriptionType:
		return m.OldSubscriptionType(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldSubscriptionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionType(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldSubscriptionType:
		m.ResetSubscriptionType()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// ActivityRecordMutation represents an operation that mutates the ActivityRecord nodes in the graph.
type ActivityRecordMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *string
	domain         *string
	node_key       *string
	score          *int
	addscore       *int
	attempts       *int
	addattempts    *int
	duration_ms    *int64
	addduration_ms *int64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ActivityRecord, error)
	predicates     []predicate.ActivityRecord
}

var _ ent.Mutation = (*ActivityRecordMutation)(nil)

// activityrecordOption allows management of the mutation configuration using functional options.
type activityrecordOption func(*ActivityRecordMutation)

// newActivityRecordMutation creates new mutation for the ActivityRecord entity.
func newActivityRecordMutation(c config, op Op, opts ...activityrecordOption) *ActivityRecordMutation {
	m := &ActivityRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityRecordID sets the ID field of the mutation.
func withActivityRecordID(id int) activityrecordOption {
	return func(m *ActivityRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityRecord
		)
		m.oldValue = func(ctx context.Context) (*ActivityRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityRecord sets the old ActivityRecord of the mutation.
func withActivityRecord(node *ActivityRecord) activityrecordOption {
	return func(m *ActivityRecordMutation) {
		m.oldValue = func(context.Context) (*ActivityRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ActivityRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ActivityRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ActivityRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetDomain sets the "domain" field.
func (m *ActivityRecordMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *ActivityRecordMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *ActivityRecordMutation) ResetDomain() {
	m.domain = nil
}

// SetNodeKey sets the "node_key" field.
func (m *ActivityRecordMutation) SetNodeKey(s string) {
	m.node_key = &s
}

// NodeKey returns the value of the "node_key" field in the mutation.
func (m *ActivityRecordMutation) NodeKey() (r string, exists bool) {
	v := m.node_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeKey returns the old "node_key" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldNodeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeKey: %w", err)
	}
	return oldValue.NodeKey, nil
}

// ResetNodeKey resets all changes to the "node_key" field.
func (m *ActivityRecordMutation) ResetNodeKey() {
	m.node_key = nil
}

// SetScore sets the "score" field.
func (m *ActivityRecordMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ActivityRecordMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ActivityRecordMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ActivityRecordMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ActivityRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetAttempts sets the "attempts" field.
func (m *ActivityRecordMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ActivityRecordMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ActivityRecordMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ActivityRecordMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ActivityRecordMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ActivityRecordMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ActivityRecordMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ActivityRecordMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ActivityRecordMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ActivityRecordMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ActivityRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActivityRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActivityRecord entity.
// If the ActivityRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ActivityRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ActivityRecordMutation builder.
func (m *ActivityRecordMutation) Where(ps ...predicate.ActivityRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityRecord).
func (m *ActivityRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, activityrecord.FieldUserID)
	}
	if m.domain != nil {
		fields = append(fields, activityrecord.FieldDomain)
	}
	if m.node_key != nil {
		fields = append(fields, activityrecord.FieldNodeKey)
	}
	if m.score != nil {
		fields = append(fields, activityrecord.FieldScore)
	}
	if m.attempts != nil {
		fields = append(fields, activityrecord.FieldAttempts)
	}
	if m.duration_ms != nil {
		fields = append(fields, activityrecord.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, activityrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activityrecord.FieldUserID:
		return m.UserID()
	case activityrecord.FieldDomain:
		return m.Domain()
	case activityrecord.FieldNodeKey:
		return m.NodeKey()
	case activityrecord.FieldScore:
		return m.Score()
	case activityrecord.FieldAttempts:
		return m.Attempts()
	case activityrecord.FieldDurationMs:
		return m.DurationMs()
	case activityrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activityrecord.FieldUserID:
		return m.OldUserID(ctx)
	case activityrecord.FieldDomain:
		return m.OldDomain(ctx)
	case activityrecord.FieldNodeKey:
		return m.OldNodeKey(ctx)
	case activityrecord.FieldScore:
		return m.OldScore(ctx)
	case activityrecord.FieldAttempts:
		return m.OldAttempts(ctx)
	case activityrecord.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case activityrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activityrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case activityrecord.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case activityrecord.FieldNodeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeKey(v)
		return nil
	case activityrecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case activityrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case activityrecord.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case activityrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, activityrecord.FieldScore)
	}
	if m.addattempts != nil {
		fields = append(fields, activityrecord.FieldAttempts)
	}
	if m.addduration_ms != nil {
		fields = append(fields, activityrecord.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activityrecord.FieldScore:
		return m.AddedScore()
	case activityrecord.FieldAttempts:
		return m.AddedAttempts()
	case activityrecord.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activityrecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case activityrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case activityrecord.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ActivityRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityRecordMutation) ResetField(name string) error {
	switch name {
	case activityrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case activityrecord.FieldDomain:
		m.ResetDomain()
		return nil
	case activityrecord.FieldNodeKey:
		m.ResetNodeKey()
		return nil
	case activityrecord.FieldScore:
		m.ResetScore()
		return nil
	case activityrecord.FieldAttempts:
		m.ResetAttempts()
		return nil
	case activityrecord.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case activityrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActivityRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityRecord edge %s", name)
}

// ChildProfileMutation represents an operation that mutates the ChildProfile nodes in the graph.
type ChildProfileMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	child_id                 *string
	learning_goals           *[]string
	appendlearning_goals     []string
	preferred_subjects       *[]string
	appendpreferred_subjects []string
	learning_style           *string
	difficulty               *string
	interests                *[]string
	appendinterests          []string
	special_needs            *[]string
	appendspecial_needs      []string
	custom_notes             *string
	parent_wishes            *string
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ChildProfile, error)
	predicates               []predicate.ChildProfile
}

var _ ent.Mutation = (*ChildProfileMutation)(nil)

// childprofileOption allows management of the mutation configuration using functional options.
type childprofileOption func(*ChildProfileMutation)

// newChildProfileMutation creates new mutation for the ChildProfile entity.
func newChildProfileMutation(c config, op Op, opts ...childprofileOption) *ChildProfileMutation {
	m := &ChildProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeChildProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChildProfileID sets the ID field of the mutation.
func withChildProfileID(id int) childprofileOption {
	return func(m *ChildProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *ChildProfile
		)
		m.oldValue = func(ctx context.Context) (*ChildProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChildProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChildProfile sets the old ChildProfile of the mutation.
func withChildProfile(node *ChildProfile) childprofileOption {
	return func(m *ChildProfileMutation) {
		m.oldValue = func(context.Context) (*ChildProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChildProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChildProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChildProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChildProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChildProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChildID sets the "child_id" field.
func (m *ChildProfileMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *ChildProfileMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *ChildProfileMutation) ResetChildID() {
	m.child_id = nil
}

// SetLearningGoals sets the "learning_goals" field.
func (m *ChildProfileMutation) SetLearningGoals(s []string) {
	m.learning_goals = &s
	m.appendlearning_goals = nil
}

// LearningGoals returns the value of the "learning_goals" field in the mutation.
func (m *ChildProfileMutation) LearningGoals() (r []string, exists bool) {
	v := m.learning_goals
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningGoals returns the old "learning_goals" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldLearningGoals(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningGoals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningGoals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningGoals: %w", err)
	}
	return oldValue.LearningGoals, nil
}

// AppendLearningGoals adds s to the "learning_goals" field.
func (m *ChildProfileMutation) AppendLearningGoals(s []string) {
	m.appendlearning_goals = append(m.appendlearning_goals, s...)
}

// AppendedLearningGoals returns the list of values that were appended to the "learning_goals" field in this mutation.
func (m *ChildProfileMutation) AppendedLearningGoals() ([]string, bool) {
	if len(m.appendlearning_goals) == 0 {
		return nil, false
	}
	return m.appendlearning_goals, true
}

// ClearLearningGoals clears the value of the "learning_goals" field.
func (m *ChildProfileMutation) ClearLearningGoals() {
	m.learning_goals = nil
	m.appendlearning_goals = nil
	m.clearedFields[childprofile.FieldLearningGoals] = struct{}{}
}

// LearningGoalsCleared returns if the "learning_goals" field was cleared in this mutation.
func (m *ChildProfileMutation) LearningGoalsCleared() bool {
	_, ok := m.clearedFields[childprofile.FieldLearningGoals]
	return ok
}

// ResetLearningGoals resets all changes to the "learning_goals" field.
func (m *ChildProfileMutation) ResetLearningGoals() {
	m.learning_goals = nil
	m.appendlearning_goals = nil
	delete(m.clearedFields, childprofile.FieldLearningGoals)
}

// SetPreferredSubjects sets the "preferred_subjects" field.
func (m *ChildProfileMutation) SetPreferredSubjects(s []string) {
	m.preferred_subjects = &s
	m.appendpreferred_subjects = nil
}

// PreferredSubjects returns the value of the "preferred_subjects" field in the mutation.
func (m *ChildProfileMutation) PreferredSubjects() (r []string, exists bool) {
	v := m.preferred_subjects
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredSubjects returns the old "preferred_subjects" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldPreferredSubjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredSubjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredSubjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredSubjects: %w", err)
	}
	return oldValue.PreferredSubjects, nil
}

// AppendPreferredSubjects adds s to the "preferred_subjects" field.
func (m *ChildProfileMutation) AppendPreferredSubjects(s []string) {
	m.appendpreferred_subjects = append(m.appendpreferred_subjects, s...)
}

// AppendedPreferredSubjects returns the list of values that were appended to the "preferred_subjects" field in this mutation.
func (m *ChildProfileMutation) AppendedPreferredSubjects() ([]string, bool) {
	if len(m.appendpreferred_subjects) == 0 {
		return nil, false
	}
	return m.appendpreferred_subjects, true
}

// ClearPreferredSubjects clears the value of the "preferred_subjects" field.
func (m *ChildProfileMutation) ClearPreferredSubjects() {
	m.preferred_subjects = nil
	m.appendpreferred_subjects = nil
	m.clearedFields[childprofile.FieldPreferredSubjects] = struct{}{}
}

// PreferredSubjectsCleared returns if the "preferred_subjects" field was cleared in this mutation.
func (m *ChildProfileMutation) PreferredSubjectsCleared() bool {
	_, ok := m.clearedFields[childprofile.FieldPreferredSubjects]
	return ok
}

// ResetPreferredSubjects resets all changes to the "preferred_subjects" field.
func (m *ChildProfileMutation) ResetPreferredSubjects() {
	m.preferred_subjects = nil
	m.appendpreferred_subjects = nil
	delete(m.clearedFields, childprofile.FieldPreferredSubjects)
}

// SetLearningStyle sets the "learning_style" field.
func (m *ChildProfileMutation) SetLearningStyle(s string) {
	m.learning_style = &s
}

// LearningStyle returns the value of the "learning_style" field in the mutation.
func (m *ChildProfileMutation) LearningStyle() (r string, exists bool) {
	v := m.learning_style
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStyle returns the old "learning_style" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldLearningStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStyle: %w", err)
	}
	return oldValue.LearningStyle, nil
}

// ResetLearningStyle resets all changes to the "learning_style" field.
func (m *ChildProfileMutation) ResetLearningStyle() {
	m.learning_style = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ChildProfileMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ChildProfileMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ChildProfileMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetInterests sets the "interests" field.
func (m *ChildProfileMutation) SetInterests(s []string) {
	m.interests = &s
	m.appendinterests = nil
}

// Interests returns the value of the "interests" field in the mutation.
func (m *ChildProfileMutation) Interests() (r []string, exists bool) {
	v := m.interests
	if v == nil {
		return
	}
	return *v, true
}

// OldInterests returns the old "interests" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldInterests(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInterests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInterests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInterests: %w", err)
	}
	return oldValue.Interests, nil
}

// AppendInterests adds s to the "interests" field.
func (m *ChildProfileMutation) AppendInterests(s []string) {
	m.appendinterests = append(m.appendinterests, s...)
}

// AppendedInterests returns the list of values that were appended to the "interests" field in this mutation.
func (m *ChildProfileMutation) AppendedInterests() ([]string, bool) {
	if len(m.appendinterests) == 0 {
		return nil, false
	}
	return m.appendinterests, true
}

// ClearInterests clears the value of the "interests" field.
func (m *ChildProfileMutation) ClearInterests() {
	m.interests = nil
	m.appendinterests = nil
	m.clearedFields[childprofile.FieldInterests] = struct{}{}
}

// InterestsCleared returns if the "interests" field was cleared in this mutation.
func (m *ChildProfileMutation) InterestsCleared() bool {
	_, ok := m.clearedFields[childprofile.FieldInterests]
	return ok
}

// ResetInterests resets all changes to the "interests" field.
func (m *ChildProfileMutation) ResetInterests() {
	m.interests = nil
	m.appendinterests = nil
	delete(m.clearedFields, childprofile.FieldInterests)
}

// SetSpecialNeeds sets the "special_needs" field.
func (m *ChildProfileMutation) SetSpecialNeeds(s []string) {
	m.special_needs = &s
	m.appendspecial_needs = nil
}

// SpecialNeeds returns the value of the "special_needs" field in the mutation.
func (m *ChildProfileMutation) SpecialNeeds() (r []string, exists bool) {
	v := m.special_needs
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialNeeds returns the old "special_needs" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldSpecialNeeds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialNeeds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialNeeds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialNeeds: %w", err)
	}
	return oldValue.SpecialNeeds, nil
}

// AppendSpecialNeeds adds s to the "special_needs" field.
func (m *ChildProfileMutation) AppendSpecialNeeds(s []string) {
	m.appendspecial_needs = append(m.appendspecial_needs, s...)
}

// AppendedSpecialNeeds returns the list of values that were appended to the "special_needs" field in this mutation.
func (m *ChildProfileMutation) AppendedSpecialNeeds() ([]string, bool) {
	if len(m.appendspecial_needs) == 0 {
		return nil, false
	}
	return m.appendspecial_needs, true
}

// ClearSpecialNeeds clears the value of the "special_needs" field.
func (m *ChildProfileMutation) ClearSpecialNeeds() {
	m.special_needs = nil
	m.appendspecial_needs = nil
	m.clearedFields[childprofile.FieldSpecialNeeds] = struct{}{}
}

// SpecialNeedsCleared returns if the "special_needs" field was cleared in this mutation.
func (m *ChildProfileMutation) SpecialNeedsCleared() bool {
	_, ok := m.clearedFields[childprofile.FieldSpecialNeeds]
	return ok
}

// ResetSpecialNeeds resets all changes to the "special_needs" field.
func (m *ChildProfileMutation) ResetSpecialNeeds() {
	m.special_needs = nil
	m.appendspecial_needs = nil
	delete(m.clearedFields, childprofile.FieldSpecialNeeds)
}

// SetCustomNotes sets the "custom_notes" field.
func (m *ChildProfileMutation) SetCustomNotes(s string) {
	m.custom_notes = &s
}

// CustomNotes returns the value of the "custom_notes" field in the mutation.
func (m *ChildProfileMutation) CustomNotes() (r string, exists bool) {
	v := m.custom_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomNotes returns the old "custom_notes" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldCustomNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomNotes: %w", err)
	}
	return oldValue.CustomNotes, nil
}

// ResetCustomNotes resets all changes to the "custom_notes" field.
func (m *ChildProfileMutation) ResetCustomNotes() {
	m.custom_notes = nil
}

// SetParentWishes sets the "parent_wishes" field.
func (m *ChildProfileMutation) SetParentWishes(s string) {
	m.parent_wishes = &s
}

// ParentWishes returns the value of the "parent_wishes" field in the mutation.
func (m *ChildProfileMutation) ParentWishes() (r string, exists bool) {
	v := m.parent_wishes
	if v == nil {
		return
	}
	return *v, true
}

// OldParentWishes returns the old "parent_wishes" field's value of the ChildProfile entity.
// If the ChildProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChildProfileMutation) OldParentWishes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentWishes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentWishes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentWishes: %w", err)
	}
	return oldValue.ParentWishes, nil
}

// ResetParentWishes resets all changes to the "parent_wishes" field.
func (m *ChildProfileMutation) ResetParentWishes() {
	m.parent_wishes = nil
}

// Where appends a list predicates to the ChildProfileMutation builder.
func (m *ChildProfileMutation) Where(ps ...predicate.ChildProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChildProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChildProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChildProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChildProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChildProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChildProfile).
func (m *ChildProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChildProfileMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.child_id != nil {
		fields = append(fields, childprofile.FieldChildID)
	}
	if m.learning_goals != nil {
		fields = append(fields, childprofile.FieldLearningGoals)
	}
	if m.preferred_subjects != nil {
		fields = append(fields, childprofile.FieldPreferredSubjects)
	}
	if m.learning_style != nil {
		fields = append(fields, childprofile.FieldLearningStyle)
	}
	if m.difficulty != nil {
		fields = append(fields, childprofile.FieldDifficulty)
	}
	if m.interests != nil {
		fields = append(fields, childprofile.FieldInterests)
	}
	if m.special_needs != nil {
		fields = append(fields, childprofile.FieldSpecialNeeds)
	}
	if m.custom_notes != nil {
		fields = append(fields, childprofile.FieldCustomNotes)
	}
	if m.parent_wishes != nil {
		fields = append(fields, childprofile.FieldParentWishes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChildProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case childprofile.FieldChildID:
		return m.ChildID()
	case childprofile.FieldLearningGoals:
		return m.LearningGoals()
	case childprofile.FieldPreferredSubjects:
		return m.PreferredSubjects()
	case childprofile.FieldLearningStyle:
		return m.LearningStyle()
	case childprofile.FieldDifficulty:
		return m.Difficulty()
	case childprofile.FieldInterests:
		return m.Interests()
	case childprofile.FieldSpecialNeeds:
		return m.SpecialNeeds()
	case childprofile.FieldCustomNotes:
		return m.CustomNotes()
	case childprofile.FieldParentWishes:
		return m.ParentWishes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChildProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case childprofile.FieldChildID:
		return m.OldChildID(ctx)
	case childprofile.FieldLearningGoals:
		return m.OldLearningGoals(ctx)
	case childprofile.FieldPreferredSubjects:
		return m.OldPreferredSubjects(ctx)
	case childprofile.FieldLearningStyle:
		return m.OldLearningStyle(ctx)
	case childprofile.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case childprofile.FieldInterests:
		return m.OldInterests(ctx)
	case childprofile.FieldSpecialNeeds:
		return m.OldSpecialNeeds(ctx)
	case childprofile.FieldCustomNotes:
		return m.OldCustomNotes(ctx)
	case childprofile.FieldParentWishes:
		return m.OldParentWishes(ctx)
	}
	return nil, fmt.Errorf("unknown ChildProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChildProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case childprofile.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case childprofile.FieldLearningGoals:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningGoals(v)
		return nil
	case childprofile.FieldPreferredSubjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredSubjects(v)
		return nil
	case childprofile.FieldLearningStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStyle(v)
		return nil
	case childprofile.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case childprofile.FieldInterests:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInterests(v)
		return nil
	case childprofile.FieldSpecialNeeds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialNeeds(v)
		return nil
	case childprofile.FieldCustomNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomNotes(v)
		return nil
	case childprofile.FieldParentWishes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentWishes(v)
		return nil
	}
	return fmt.Errorf("unknown ChildProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChildProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChildProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChildProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChildProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChildProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(childprofile.FieldLearningGoals) {
		fields = append(fields, childprofile.FieldLearningGoals)
	}
	if m.FieldCleared(childprofile.FieldPreferredSubjects) {
		fields = append(fields, childprofile.FieldPreferredSubjects)
	}
	if m.FieldCleared(childprofile.FieldInterests) {
		fields = append(fields, childprofile.FieldInterests)
	}
	if m.FieldCleared(childprofile.FieldSpecialNeeds) {
		fields = append(fields, childprofile.FieldSpecialNeeds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChildProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChildProfileMutation) ClearField(name string) error {
	switch name {
	case childprofile.FieldLearningGoals:
		m.ClearLearningGoals()
		return nil
	case childprofile.FieldPreferredSubjects:
		m.ClearPreferredSubjects()
		return nil
	case childprofile.FieldInterests:
		m.ClearInterests()
		return nil
	case childprofile.FieldSpecialNeeds:
		m.ClearSpecialNeeds()
		return nil
	}
	return fmt.Errorf("unknown ChildProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChildProfileMutation) ResetField(name string) error {
	switch name {
	case childprofile.FieldChildID:
		m.ResetChildID()
		return nil
	case childprofile.FieldLearningGoals:
		m.ResetLearningGoals()
		return nil
	case childprofile.FieldPreferredSubjects:
		m.ResetPreferredSubjects()
		return nil
	case childprofile.FieldLearningStyle:
		m.ResetLearningStyle()
		return nil
	case childprofile.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case childprofile.FieldInterests:
		m.ResetInterests()
		return nil
	case childprofile.FieldSpecialNeeds:
		m.ResetSpecialNeeds()
		return nil
	case childprofile.FieldCustomNotes:
		m.ResetCustomNotes()
		return nil
	case childprofile.FieldParentWishes:
		m.ResetParentWishes()
		return nil
	}
	return fmt.Errorf("unknown ChildProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChildProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChildProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChildProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChildProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChildProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChildProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChildProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChildProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChildProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChildProfile edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
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
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// ParentPreferencesMutation represents an operation that mutates the ParentPreferences nodes in the graph.
type ParentPreferencesMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	parent_id                *string
	child_strengths          *[]string
	appendchild_strengths    []string
	focus_areas              *[]string
	appendfocus_areas        []string
	learning_goals           *[]string
	appendlearning_goals     []string
	concerns                 *[]string
	appendconcerns           []string
	learning_style           *string
	motivation_factors       *[]string
	appendmotivation_factors []string
	study_duration           *int
	addstudy_duration        *int
	break_frequency          *int
	addbreak_frequency       *int
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ParentPreferences, error)
	predicates               []predicate.ParentPreferences
}

var _ ent.Mutation = (*ParentPreferencesMutation)(nil)

// parentpreferencesOption allows management of the mutation configuration using functional options.
type parentpreferencesOption func(*ParentPreferencesMutation)

// newParentPreferencesMutation creates new mutation for the ParentPreferences entity.
func newParentPreferencesMutation(c config, op Op, opts ...parentpreferencesOption) *ParentPreferencesMutation {
	m := &ParentPreferencesMutation{
		config:        c,
		op:            op,
		typ:           TypeParentPreferences,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParentPreferencesID sets the ID field of the mutation.
func withParentPreferencesID(id int) parentpreferencesOption {
	return func(m *ParentPreferencesMutation) {
		var (
			err   error
			once  sync.Once
			value *ParentPreferences
		)
		m.oldValue = func(ctx context.Context) (*ParentPreferences, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParentPreferences.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParentPreferences sets the old ParentPreferences of the mutation.
func withParentPreferences(node *ParentPreferences) parentpreferencesOption {
	return func(m *ParentPreferencesMutation) {
		m.oldValue = func(context.Context) (*ParentPreferences, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParentPreferencesMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParentPreferencesMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParentPreferencesMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParentPreferencesMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParentPreferences.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentID sets the "parent_id" field.
func (m *ParentPreferencesMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *ParentPreferencesMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *ParentPreferencesMutation) ResetParentID() {
	m.parent_id = nil
}

// SetChildStrengths sets the "child_strengths" field.
func (m *ParentPreferencesMutation) SetChildStrengths(s []string) {
	m.child_strengths = &s
	m.appendchild_strengths = nil
}

// ChildStrengths returns the value of the "child_strengths" field in the mutation.
func (m *ParentPreferencesMutation) ChildStrengths() (r []string, exists bool) {
	v := m.child_strengths
	if v == nil {
		return
	}
	return *v, true
}

// OldChildStrengths returns the old "child_strengths" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldChildStrengths(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildStrengths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildStrengths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildStrengths: %w", err)
	}
	return oldValue.ChildStrengths, nil
}

// AppendChildStrengths adds s to the "child_strengths" field.
func (m *ParentPreferencesMutation) AppendChildStrengths(s []string) {
	m.appendchild_strengths = append(m.appendchild_strengths, s...)
}

// AppendedChildStrengths returns the list of values that were appended to the "child_strengths" field in this mutation.
func (m *ParentPreferencesMutation) AppendedChildStrengths() ([]string, bool) {
	if len(m.appendchild_strengths) == 0 {
		return nil, false
	}
	return m.appendchild_strengths, true
}

// ClearChildStrengths clears the value of the "child_strengths" field.
func (m *ParentPreferencesMutation) ClearChildStrengths() {
	m.child_strengths = nil
	m.appendchild_strengths = nil
	m.clearedFields[parentpreferences.FieldChildStrengths] = struct{}{}
}

// ChildStrengthsCleared returns if the "child_strengths" field was cleared in this mutation.
func (m *ParentPreferencesMutation) ChildStrengthsCleared() bool {
	_, ok := m.clearedFields[parentpreferences.FieldChildStrengths]
	return ok
}

// ResetChildStrengths resets all changes to the "child_strengths" field.
func (m *ParentPreferencesMutation) ResetChildStrengths() {
	m.child_strengths = nil
	m.appendchild_strengths = nil
	delete(m.clearedFields, parentpreferences.FieldChildStrengths)
}

// SetFocusAreas sets the "focus_areas" field.
func (m *ParentPreferencesMutation) SetFocusAreas(s []string) {
	m.focus_areas = &s
	m.appendfocus_areas = nil
}

// FocusAreas returns the value of the "focus_areas" field in the mutation.
func (m *ParentPreferencesMutation) FocusAreas() (r []string, exists bool) {
	v := m.focus_areas
	if v == nil {
		return
	}
	return *v, true
}

// OldFocusAreas returns the old "focus_areas" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldFocusAreas(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFocusAreas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFocusAreas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFocusAreas: %w", err)
	}
	return oldValue.FocusAreas, nil
}

// AppendFocusAreas adds s to the "focus_areas" field.
func (m *ParentPreferencesMutation) AppendFocusAreas(s []string) {
	m.appendfocus_areas = append(m.appendfocus_areas, s...)
}

// AppendedFocusAreas returns the list of values that were appended to the "focus_areas" field in this mutation.
func (m *ParentPreferencesMutation) AppendedFocusAreas() ([]string, bool) {
	if len(m.appendfocus_areas) == 0 {
		return nil, false
	}
	return m.appendfocus_areas, true
}

// ClearFocusAreas clears the value of the "focus_areas" field.
func (m *ParentPreferencesMutation) ClearFocusAreas() {
	m.focus_areas = nil
	m.appendfocus_areas = nil
	m.clearedFields[parentpreferences.FieldFocusAreas] = struct{}{}
}

// FocusAreasCleared returns if the "focus_areas" field was cleared in this mutation.
func (m *ParentPreferencesMutation) FocusAreasCleared() bool {
	_, ok := m.clearedFields[parentpreferences.FieldFocusAreas]
	return ok
}

// ResetFocusAreas resets all changes to the "focus_areas" field.
func (m *ParentPreferencesMutation) ResetFocusAreas() {
	m.focus_areas = nil
	m.appendfocus_areas = nil
	delete(m.clearedFields, parentpreferences.FieldFocusAreas)
}

// SetLearningGoals sets the "learning_goals" field.
func (m *ParentPreferencesMutation) SetLearningGoals(s []string) {
	m.learning_goals = &s
	m.appendlearning_goals = nil
}

// LearningGoals returns the value of the "learning_goals" field in the mutation.
func (m *ParentPreferencesMutation) LearningGoals() (r []string, exists bool) {
	v := m.learning_goals
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningGoals returns the old "learning_goals" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldLearningGoals(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningGoals is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningGoals requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningGoals: %w", err)
	}
	return oldValue.LearningGoals, nil
}

// AppendLearningGoals adds s to the "learning_goals" field.
func (m *ParentPreferencesMutation) AppendLearningGoals(s []string) {
	m.appendlearning_goals = append(m.appendlearning_goals, s...)
}

// AppendedLearningGoals returns the list of values that were appended to the "learning_goals" field in this mutation.
func (m *ParentPreferencesMutation) AppendedLearningGoals() ([]string, bool) {
	if len(m.appendlearning_goals) == 0 {
		return nil, false
	}
	return m.appendlearning_goals, true
}

// ClearLearningGoals clears the value of the "learning_goals" field.
func (m *ParentPreferencesMutation) ClearLearningGoals() {
	m.learning_goals = nil
	m.appendlearning_goals = nil
	m.clearedFields[parentpreferences.FieldLearningGoals] = struct{}{}
}

// LearningGoalsCleared returns if the "learning_goals" field was cleared in this mutation.
func (m *ParentPreferencesMutation) LearningGoalsCleared() bool {
	_, ok := m.clearedFields[parentpreferences.FieldLearningGoals]
	return ok
}

// ResetLearningGoals resets all changes to the "learning_goals" field.
func (m *ParentPreferencesMutation) ResetLearningGoals() {
	m.learning_goals = nil
	m.appendlearning_goals = nil
	delete(m.clearedFields, parentpreferences.FieldLearningGoals)
}

// SetConcerns sets the "concerns" field.
func (m *ParentPreferencesMutation) SetConcerns(s []string) {
	m.concerns = &s
	m.appendconcerns = nil
}

// Concerns returns the value of the "concerns" field in the mutation.
func (m *ParentPreferencesMutation) Concerns() (r []string, exists bool) {
	v := m.concerns
	if v == nil {
		return
	}
	return *v, true
}

// OldConcerns returns the old "concerns" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldConcerns(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConcerns is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConcerns requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConcerns: %w", err)
	}
	return oldValue.Concerns, nil
}

// AppendConcerns adds s to the "concerns" field.
func (m *ParentPreferencesMutation) AppendConcerns(s []string) {
	m.appendconcerns = append(m.appendconcerns, s...)
}

// AppendedConcerns returns the list of values that were appended to the "concerns" field in this mutation.
func (m *ParentPreferencesMutation) AppendedConcerns() ([]string, bool) {
	if len(m.appendconcerns) == 0 {
		return nil, false
	}
	return m.appendconcerns, true
}

// ClearConcerns clears the value of the "concerns" field.
func (m *ParentPreferencesMutation) ClearConcerns() {
	m.concerns = nil
	m.appendconcerns = nil
	m.clearedFields[parentpreferences.FieldConcerns] = struct{}{}
}

// ConcernsCleared returns if the "concerns" field was cleared in this mutation.
func (m *ParentPreferencesMutation) ConcernsCleared() bool {
	_, ok := m.clearedFields[parentpreferences.FieldConcerns]
	return ok
}

// ResetConcerns resets all changes to the "concerns" field.
func (m *ParentPreferencesMutation) ResetConcerns() {
	m.concerns = nil
	m.appendconcerns = nil
	delete(m.clearedFields, parentpreferences.FieldConcerns)
}

// SetLearningStyle sets the "learning_style" field.
func (m *ParentPreferencesMutation) SetLearningStyle(s string) {
	m.learning_style = &s
}

// LearningStyle returns the value of the "learning_style" field in the mutation.
func (m *ParentPreferencesMutation) LearningStyle() (r string, exists bool) {
	v := m.learning_style
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStyle returns the old "learning_style" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldLearningStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStyle: %w", err)
	}
	return oldValue.LearningStyle, nil
}

// ResetLearningStyle resets all changes to the "learning_style" field.
func (m *ParentPreferencesMutation) ResetLearningStyle() {
	m.learning_style = nil
}

// SetMotivationFactors sets the "motivation_factors" field.
func (m *ParentPreferencesMutation) SetMotivationFactors(s []string) {
	m.motivation_factors = &s
	m.appendmotivation_factors = nil
}

// MotivationFactors returns the value of the "motivation_factors" field in the mutation.
func (m *ParentPreferencesMutation) MotivationFactors() (r []string, exists bool) {
	v := m.motivation_factors
	if v == nil {
		return
	}
	return *v, true
}

// OldMotivationFactors returns the old "motivation_factors" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldMotivationFactors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMotivationFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMotivationFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMotivationFactors: %w", err)
	}
	return oldValue.MotivationFactors, nil
}

// AppendMotivationFactors adds s to the "motivation_factors" field.
func (m *ParentPreferencesMutation) AppendMotivationFactors(s []string) {
	m.appendmotivation_factors = append(m.appendmotivation_factors, s...)
}

// AppendedMotivationFactors returns the list of values that were appended to the "motivation_factors" field in this mutation.
func (m *ParentPreferencesMutation) AppendedMotivationFactors() ([]string, bool) {
	if len(m.appendmotivation_factors) == 0 {
		return nil, false
	}
	return m.appendmotivation_factors, true
}

// ClearMotivationFactors clears the value of the "motivation_factors" field.
func (m *ParentPreferencesMutation) ClearMotivationFactors() {
	m.motivation_factors = nil
	m.appendmotivation_factors = nil
	m.clearedFields[parentpreferences.FieldMotivationFactors] = struct{}{}
}

// MotivationFactorsCleared returns if the "motivation_factors" field was cleared in this mutation.
func (m *ParentPreferencesMutation) MotivationFactorsCleared() bool {
	_, ok := m.clearedFields[parentpreferences.FieldMotivationFactors]
	return ok
}

// ResetMotivationFactors resets all changes to the "motivation_factors" field.
func (m *ParentPreferencesMutation) ResetMotivationFactors() {
	m.motivation_factors = nil
	m.appendmotivation_factors = nil
	delete(m.clearedFields, parentpreferences.FieldMotivationFactors)
}

// SetStudyDuration sets the "study_duration" field.
func (m *ParentPreferencesMutation) SetStudyDuration(i int) {
	m.study_duration = &i
	m.addstudy_duration = nil
}

// StudyDuration returns the value of the "study_duration" field in the mutation.
func (m *ParentPreferencesMutation) StudyDuration() (r int, exists bool) {
	v := m.study_duration
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyDuration returns the old "study_duration" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldStudyDuration(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyDuration: %w", err)
	}
	return oldValue.StudyDuration, nil
}

// AddStudyDuration adds i to the "study_duration" field.
func (m *ParentPreferencesMutation) AddStudyDuration(i int) {
	if m.addstudy_duration != nil {
		*m.addstudy_duration += i
	} else {
		m.addstudy_duration = &i
	}
}

// AddedStudyDuration returns the value that was added to the "study_duration" field in this mutation.
func (m *ParentPreferencesMutation) AddedStudyDuration() (r int, exists bool) {
	v := m.addstudy_duration
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyDuration resets all changes to the "study_duration" field.
func (m *ParentPreferencesMutation) ResetStudyDuration() {
	m.study_duration = nil
	m.addstudy_duration = nil
}

// SetBreakFrequency sets the "break_frequency" field.
func (m *ParentPreferencesMutation) SetBreakFrequency(i int) {
	m.break_frequency = &i
	m.addbreak_frequency = nil
}

// BreakFrequency returns the value of the "break_frequency" field in the mutation.
func (m *ParentPreferencesMutation) BreakFrequency() (r int, exists bool) {
	v := m.break_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldBreakFrequency returns the old "break_frequency" field's value of the ParentPreferences entity.
// If the ParentPreferences object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPreferencesMutation) OldBreakFrequency(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBreakFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBreakFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBreakFrequency: %w", err)
	}
	return oldValue.BreakFrequency, nil
}

// AddBreakFrequency adds i to the "break_frequency" field.
func (m *ParentPreferencesMutation) AddBreakFrequency(i int) {
	if m.addbreak_frequency != nil {
		*m.addbreak_frequency += i
	} else {
		m.addbreak_frequency = &i
	}
}

// AddedBreakFrequency returns the value that was added to the "break_frequency" field in this mutation.
func (m *ParentPreferencesMutation) AddedBreakFrequency() (r int, exists bool) {
	v := m.addbreak_frequency
	if v == nil {
		return
	}
	return *v, true
}

// ResetBreakFrequency resets all changes to the "break_frequency" field.
func (m *ParentPreferencesMutation) ResetBreakFrequency() {
	m.break_frequency = nil
	m.addbreak_frequency = nil
}

// Where appends a list predicates to the ParentPreferencesMutation builder.
func (m *ParentPreferencesMutation) Where(ps ...predicate.ParentPreferences) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParentPreferencesMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParentPreferencesMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParentPreferences, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParentPreferencesMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParentPreferencesMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParentPreferences).
func (m *ParentPreferencesMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParentPreferencesMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.parent_id != nil {
		fields = append(fields, parentpreferences.FieldParentID)
	}
	if m.child_strengths != nil {
		fields = append(fields, parentpreferences.FieldChildStrengths)
	}
	if m.focus_areas != nil {
		fields = append(fields, parentpreferences.FieldFocusAreas)
	}
	if m.learning_goals != nil {
		fields = append(fields, parentpreferences.FieldLearningGoals)
	}
	if m.concerns != nil {
		fields = append(fields, parentpreferences.FieldConcerns)
	}
	if m.learning_style != nil {
		fields = append(fields, parentpreferences.FieldLearningStyle)
	}
	if m.motivation_factors != nil {
		fields = append(fields, parentpreferences.FieldMotivationFactors)
	}
	if m.study_duration != nil {
		fields = append(fields, parentpreferences.FieldStudyDuration)
	}
	if m.break_frequency != nil {
		fields = append(fields, parentpreferences.FieldBreakFrequency)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParentPreferencesMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parentpreferences.FieldParentID:
		return m.ParentID()
	case parentpreferences.FieldChildStrengths:
		return m.ChildStrengths()
	case parentpreferences.FieldFocusAreas:
		return m.FocusAreas()
	case parentpreferences.FieldLearningGoals:
		return m.LearningGoals()
	case parentpreferences.FieldConcerns:
		return m.Concerns()
	case parentpreferences.FieldLearningStyle:
		return m.LearningStyle()
	case parentpreferences.FieldMotivationFactors:
		return m.MotivationFactors()
	case parentpreferences.FieldStudyDuration:
		return m.StudyDuration()
	case parentpreferences.FieldBreakFrequency:
		return m.BreakFrequency()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParentPreferencesMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parentpreferences.FieldParentID:
		return m.OldParentID(ctx)
	case parentpreferences.FieldChildStrengths:
		return m.OldChildStrengths(ctx)
	case parentpreferences.FieldFocusAreas:
		return m.OldFocusAreas(ctx)
	case parentpreferences.FieldLearningGoals:
		return m.OldLearningGoals(ctx)
	case parentpreferences.FieldConcerns:
		return m.OldConcerns(ctx)
	case parentpreferences.FieldLearningStyle:
		return m.OldLearningStyle(ctx)
	case parentpreferences.FieldMotivationFactors:
		return m.OldMotivationFactors(ctx)
	case parentpreferences.FieldStudyDuration:
		return m.OldStudyDuration(ctx)
	case parentpreferences.FieldBreakFrequency:
		return m.OldBreakFrequency(ctx)
	}
	return nil, fmt.Errorf("unknown ParentPreferences field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParentPreferencesMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parentpreferences.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case parentpreferences.FieldChildStrengths:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildStrengths(v)
		return nil
	case parentpreferences.FieldFocusAreas:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFocusAreas(v)
		return nil
	case parentpreferences.FieldLearningGoals:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningGoals(v)
		return nil
	case parentpreferences.FieldConcerns:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConcerns(v)
		return nil
	case parentpreferences.FieldLearningStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStyle(v)
		return nil
	case parentpreferences.FieldMotivationFactors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMotivationFactors(v)
		return nil
	case parentpreferences.FieldStudyDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyDuration(v)
		return nil
	case parentpreferences.FieldBreakFrequency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBreakFrequency(v)
		return nil
	}
	return fmt.Errorf("unknown ParentPreferences field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParentPreferencesMutation) AddedFields() []string {
	var fields []string
	if m.addstudy_duration != nil {
		fields = append(fields, parentpreferences.FieldStudyDuration)
	}
	if m.addbreak_frequency != nil {
		fields = append(fields, parentpreferences.FieldBreakFrequency)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParentPreferencesMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parentpreferences.FieldStudyDuration:
		return m.AddedStudyDuration()
	case parentpreferences.FieldBreakFrequency:
		return m.AddedBreakFrequency()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParentPreferencesMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parentpreferences.FieldStudyDuration:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyDuration(v)
		return nil
	case parentpreferences.FieldBreakFrequency:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBreakFrequency(v)
		return nil
	}
	return fmt.Errorf("unknown ParentPreferences numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParentPreferencesMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parentpreferences.FieldChildStrengths) {
		fields = append(fields, parentpreferences.FieldChildStrengths)
	}
	if m.FieldCleared(parentpreferences.FieldFocusAreas) {
		fields = append(fields, parentpreferences.FieldFocusAreas)
	}
	if m.FieldCleared(parentpreferences.FieldLearningGoals) {
		fields = append(fields, parentpreferences.FieldLearningGoals)
	}
	if m.FieldCleared(parentpreferences.FieldConcerns) {
		fields = append(fields, parentpreferences.FieldConcerns)
	}
	if m.FieldCleared(parentpreferences.FieldMotivationFactors) {
		fields = append(fields, parentpreferences.FieldMotivationFactors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParentPreferencesMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParentPreferencesMutation) ClearField(name string) error {
	switch name {
	case parentpreferences.FieldChildStrengths:
		m.ClearChildStrengths()
		return nil
	case parentpreferences.FieldFocusAreas:
		m.ClearFocusAreas()
		return nil
	case parentpreferences.FieldLearningGoals:
		m.ClearLearningGoals()
		return nil
	case parentpreferences.FieldConcerns:
		m.ClearConcerns()
		return nil
	case parentpreferences.FieldMotivationFactors:
		m.ClearMotivationFactors()
		return nil
	}
	return fmt.Errorf("unknown ParentPreferences nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParentPreferencesMutation) ResetField(name string) error {
	switch name {
	case parentpreferences.FieldParentID:
		m.ResetParentID()
		return nil
	case parentpreferences.FieldChildStrengths:
		m.ResetChildStrengths()
		return nil
	case parentpreferences.FieldFocusAreas:
		m.ResetFocusAreas()
		return nil
	case parentpreferences.FieldLearningGoals:
		m.ResetLearningGoals()
		return nil
	case parentpreferences.FieldConcerns:
		m.ResetConcerns()
		return nil
	case parentpreferences.FieldLearningStyle:
		m.ResetLearningStyle()
		return nil
	case parentpreferences.FieldMotivationFactors:
		m.ResetMotivationFactors()
		return nil
	case parentpreferences.FieldStudyDuration:
		m.ResetStudyDuration()
		return nil
	case parentpreferences.FieldBreakFrequency:
		m.ResetBreakFrequency()
		return nil
	}
	return fmt.Errorf("unknown ParentPreferences field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParentPreferencesMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParentPreferencesMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParentPreferencesMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParentPreferencesMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParentPreferencesMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParentPreferencesMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParentPreferencesMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ParentPreferences unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParentPreferencesMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ParentPreferences edge %s", name)
}

// ParentPromptRecordMutation represents an operation that mutates the ParentPromptRecord nodes in the graph.
type ParentPromptRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	parent_id     *string
	child_id      *string
	account_id    *string
	content       *string
	ai_response   *string
	prompt_type   *string
	status        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ParentPromptRecord, error)
	predicates    []predicate.ParentPromptRecord
}

var _ ent.Mutation = (*ParentPromptRecordMutation)(nil)

// parentpromptrecordOption allows management of the mutation configuration using functional options.
type parentpromptrecordOption func(*ParentPromptRecordMutation)

// newParentPromptRecordMutation creates new mutation for the ParentPromptRecord entity.
func newParentPromptRecordMutation(c config, op Op, opts ...parentpromptrecordOption) *ParentPromptRecordMutation {
	m := &ParentPromptRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeParentPromptRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParentPromptRecordID sets the ID field of the mutation.
func withParentPromptRecordID(id int) parentpromptrecordOption {
	return func(m *ParentPromptRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ParentPromptRecord
		)
		m.oldValue = func(ctx context.Context) (*ParentPromptRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParentPromptRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParentPromptRecord sets the old ParentPromptRecord of the mutation.
func withParentPromptRecord(node *ParentPromptRecord) parentpromptrecordOption {
	return func(m *ParentPromptRecordMutation) {
		m.oldValue = func(context.Context) (*ParentPromptRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParentPromptRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParentPromptRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParentPromptRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParentPromptRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParentPromptRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ParentPromptRecordMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ParentPromptRecordMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *ParentPromptRecordMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ParentPromptRecordMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ParentPromptRecordMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ParentPromptRecordMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ParentPromptRecordMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ParentPromptRecordMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetParentID sets the "parent_id" field.
func (m *ParentPromptRecordMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *ParentPromptRecordMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldParentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *ParentPromptRecordMutation) ResetParentID() {
	m.parent_id = nil
}

// SetChildID sets the "child_id" field.
func (m *ParentPromptRecordMutation) SetChildID(s string) {
	m.child_id = &s
}

// ChildID returns the value of the "child_id" field in the mutation.
func (m *ParentPromptRecordMutation) ChildID() (r string, exists bool) {
	v := m.child_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChildID returns the old "child_id" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldChildID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildID: %w", err)
	}
	return oldValue.ChildID, nil
}

// ResetChildID resets all changes to the "child_id" field.
func (m *ParentPromptRecordMutation) ResetChildID() {
	m.child_id = nil
}

// SetAccountID sets the "account_id" field.
func (m *ParentPromptRecordMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ParentPromptRecordMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ParentPromptRecordMutation) ResetAccountID() {
	m.account_id = nil
}

// SetContent sets the "content" field.
func (m *ParentPromptRecordMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ParentPromptRecordMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *ParentPromptRecordMutation) ResetContent() {
	m.content = nil
}

// SetAiResponse sets the "ai_response" field.
func (m *ParentPromptRecordMutation) SetAiResponse(s string) {
	m.ai_response = &s
}

// AiResponse returns the value of the "ai_response" field in the mutation.
func (m *ParentPromptRecordMutation) AiResponse() (r string, exists bool) {
	v := m.ai_response
	if v == nil {
		return
	}
	return *v, true
}

// OldAiResponse returns the old "ai_response" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldAiResponse(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAiResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAiResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAiResponse: %w", err)
	}
	return oldValue.AiResponse, nil
}

// ResetAiResponse resets all changes to the "ai_response" field.
func (m *ParentPromptRecordMutation) ResetAiResponse() {
	m.ai_response = nil
}

// SetPromptType sets the "prompt_type" field.
func (m *ParentPromptRecordMutation) SetPromptType(s string) {
	m.prompt_type = &s
}

// PromptType returns the value of the "prompt_type" field in the mutation.
func (m *ParentPromptRecordMutation) PromptType() (r string, exists bool) {
	v := m.prompt_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptType returns the old "prompt_type" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldPromptType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptType: %w", err)
	}
	return oldValue.PromptType, nil
}

// ResetPromptType resets all changes to the "prompt_type" field.
func (m *ParentPromptRecordMutation) ResetPromptType() {
	m.prompt_type = nil
}

// SetStatus sets the "status" field.
func (m *ParentPromptRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ParentPromptRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ParentPromptRecord entity.
// If the ParentPromptRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParentPromptRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ParentPromptRecordMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the ParentPromptRecordMutation builder.
func (m *ParentPromptRecordMutation) Where(ps ...predicate.ParentPromptRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParentPromptRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParentPromptRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParentPromptRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParentPromptRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParentPromptRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParentPromptRecord).
func (m *ParentPromptRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParentPromptRecordMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, parentpromptrecord.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, parentpromptrecord.FieldTimestamp)
	}
	if m.parent_id != nil {
		fields = append(fields, parentpromptrecord.FieldParentID)
	}
	if m.child_id != nil {
		fields = append(fields, parentpromptrecord.FieldChildID)
	}
	if m.account_id != nil {
		fields = append(fields, parentpromptrecord.FieldAccountID)
	}
	if m.content != nil {
		fields = append(fields, parentpromptrecord.FieldContent)
	}
	if m.ai_response != nil {
		fields = append(fields, parentpromptrecord.FieldAiResponse)
	}
	if m.prompt_type != nil {
		fields = append(fields, parentpromptrecord.FieldPromptType)
	}
	if m.status != nil {
		fields = append(fields, parentpromptrecord.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParentPromptRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parentpromptrecord.FieldSequence:
		return m.Sequence()
	case parentpromptrecord.FieldTimestamp:
		return m.Timestamp()
	case parentpromptrecord.FieldParentID:
		return m.ParentID()
	case parentpromptrecord.FieldChildID:
		return m.ChildID()
	case parentpromptrecord.FieldAccountID:
		return m.AccountID()
	case parentpromptrecord.FieldContent:
		return m.Content()
	case parentpromptrecord.FieldAiResponse:
		return m.AiResponse()
	case parentpromptrecord.FieldPromptType:
		return m.PromptType()
	case parentpromptrecord.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParentPromptRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parentpromptrecord.FieldSequence:
		return m.OldSequence(ctx)
	case parentpromptrecord.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case parentpromptrecord.FieldParentID:
		return m.OldParentID(ctx)
	case parentpromptrecord.FieldChildID:
		return m.OldChildID(ctx)
	case parentpromptrecord.FieldAccountID:
		return m.OldAccountID(ctx)
	case parentpromptrecord.FieldContent:
		return m.OldContent(ctx)
	case parentpromptrecord.FieldAiResponse:
		return m.OldAiResponse(ctx)
	case parentpromptrecord.FieldPromptType:
		return m.OldPromptType(ctx)
	case parentpromptrecord.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown ParentPromptRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParentPromptRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parentpromptrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case parentpromptrecord.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case parentpromptrecord.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case parentpromptrecord.FieldChildID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildID(v)
		return nil
	case parentpromptrecord.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case parentpromptrecord.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case parentpromptrecord.FieldAiResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAiResponse(v)
		return nil
	case parentpromptrecord.FieldPromptType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptType(v)
		return nil
	case parentpromptrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown ParentPromptRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParentPromptRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, parentpromptrecord.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParentPromptRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parentpromptrecord.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParentPromptRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parentpromptrecord.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ParentPromptRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParentPromptRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParentPromptRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParentPromptRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ParentPromptRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParentPromptRecordMutation) ResetField(name string) error {
	switch name {
	case parentpromptrecord.FieldSequence:
		m.ResetSequence()
		return nil
	case parentpromptrecord.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case parentpromptrecord.FieldParentID:
		m.ResetParentID()
		return nil
	case parentpromptrecord.FieldChildID:
		m.ResetChildID()
		return nil
	case parentpromptrecord.FieldAccountID:
		m.ResetAccountID()
		return nil
	case parentpromptrecord.FieldContent:
		m.ResetContent()
		return nil
	case parentpromptrecord.FieldAiResponse:
		m.ResetAiResponse()
		return nil
	case parentpromptrecord.FieldPromptType:
		m.ResetPromptType()
		return nil
	case parentpromptrecord.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown ParentPromptRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParentPromptRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParentPromptRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParentPromptRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParentPromptRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParentPromptRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParentPromptRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParentPromptRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ParentPromptRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParentPromptRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ParentPromptRecord edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op            Op
	typ           string
	id            *string
	account_id    *string
	first_name    *string
	last_name     *string
	gender        *string
	user_type     *userprofile.UserType
	age           *int
	addage        *int
	last_login_at *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserProfile, error)
	predicates    []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id string) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *UserProfileMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *UserProfileMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *UserProfileMutation) ResetAccountID() {
	m.account_id = nil
}

// SetFirstName sets the "first_name" field.
func (m *UserProfileMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserProfileMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserProfileMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *UserProfileMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserProfileMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserProfileMutation) ResetLastName() {
	m.last_name = nil
}

// SetGender sets the "gender" field.
func (m *UserProfileMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *UserProfileMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *UserProfileMutation) ResetGender() {
	m.gender = nil
}

// SetUserType sets the "user_type" field.
func (m *UserProfileMutation) SetUserType(ut userprofile.UserType) {
	m.user_type = &ut
}

// UserType returns the value of the "user_type" field in the mutation.
func (m *UserProfileMutation) UserType() (r userprofile.UserType, exists bool) {
	v := m.user_type
	if v == nil {
		return
	}
	return *v, true
}

// OldUserType returns the old "user_type" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUserType(ctx context.Context) (v userprofile.UserType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserType: %w", err)
	}
	return oldValue.UserType, nil
}

// ResetUserType resets all changes to the "user_type" field.
func (m *UserProfileMutation) ResetUserType() {
	m.user_type = nil
}

// SetAge sets the "age" field.
func (m *UserProfileMutation) SetAge(i int) {
	m.age = &i
	m.addage = nil
}

// Age returns the value of the "age" field in the mutation.
func (m *UserProfileMutation) Age() (r int, exists bool) {
	v := m.age
	if v == nil {
		return
	}
	return *v, true
}

// OldAge returns the old "age" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAge(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAge: %w", err)
	}
	return oldValue.Age, nil
}

// AddAge adds i to the "age" field.
func (m *UserProfileMutation) AddAge(i int) {
	if m.addage != nil {
		*m.addage += i
	} else {
		m.addage = &i
	}
}

// AddedAge returns the value that was added to the "age" field in this mutation.
func (m *UserProfileMutation) AddedAge() (r int, exists bool) {
	v := m.addage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAge clears the value of the "age" field.
func (m *UserProfileMutation) ClearAge() {
	m.age = nil
	m.addage = nil
	m.clearedFields[userprofile.FieldAge] = struct{}{}
}

// AgeCleared returns if the "age" field was cleared in this mutation.
func (m *UserProfileMutation) AgeCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldAge]
	return ok
}

// ResetAge resets all changes to the "age" field.
func (m *UserProfileMutation) ResetAge() {
	m.age = nil
	m.addage = nil
	delete(m.clearedFields, userprofile.FieldAge)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserProfileMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserProfileMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserProfileMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[userprofile.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserProfileMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserProfileMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, userprofile.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.account_id != nil {
		fields = append(fields, userprofile.FieldAccountID)
	}
	if m.first_name != nil {
		fields = append(fields, userprofile.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, userprofile.FieldLastName)
	}
	if m.gender != nil {
		fields = append(fields, userprofile.FieldGender)
	}
	if m.user_type != nil {
		fields = append(fields, userprofile.FieldUserType)
	}
	if m.age != nil {
		fields = append(fields, userprofile.FieldAge)
	}
	if m.last_login_at != nil {
		fields = append(fields, userprofile.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, userprofile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldAccountID:
		return m.AccountID()
	case userprofile.FieldFirstName:
		return m.FirstName()
	case userprofile.FieldLastName:
		return m.LastName()
	case userprofile.FieldGender:
		return m.Gender()
	case userprofile.FieldUserType:
		return m.UserType()
	case userprofile.FieldAge:
		return m.Age()
	case userprofile.FieldLastLoginAt:
		return m.LastLoginAt()
	case userprofile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldAccountID:
		return m.OldAccountID(ctx)
	case userprofile.FieldFirstName:
		return m.OldFirstName(ctx)
	case userprofile.FieldLastName:
		return m.OldLastName(ctx)
	case userprofile.FieldGender:
		return m.OldGender(ctx)
	case userprofile.FieldUserType:
		return m.OldUserType(ctx)
	case userprofile.FieldAge:
		return m.OldAge(ctx)
	case userprofile.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case userprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case userprofile.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case userprofile.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case userprofile.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case userprofile.FieldUserType:
		v, ok := value.(userprofile.UserType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserType(v)
		return nil
	case userprofile.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAge(v)
		return nil
	case userprofile.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case userprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	var fields []string
	if m.addage != nil {
		fields = append(fields, userprofile.FieldAge)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldAge:
		return m.AddedAge()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldAge:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAge(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldAge) {
		fields = append(fields, userprofile.FieldAge)
	}
	if m.FieldCleared(userprofile.FieldLastLoginAt) {
		fields = append(fields, userprofile.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldAge:
		m.ClearAge()
		return nil
	case userprofile.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldAccountID:
		m.ResetAccountID()
		return nil
	case userprofile.FieldFirstName:
		m.ResetFirstName()
		return nil
	case userprofile.FieldLastName:
		m.ResetLastName()
		return nil
	case userprofile.FieldGender:
		m.ResetGender()
		return nil
	case userprofile.FieldUserType:
		m.ResetUserType()
		return nil
	case userprofile.FieldAge:
		m.ResetAge()
		return nil
	case userprofile.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case userprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProfile edge %s", name)
}

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
	"github.com/claimkit/nexusgrade/ent/analysisrecord"
	"github.com/claimkit/nexusgrade/ent/assessorevent"
	"github.com/claimkit/nexusgrade/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisRecord = "AnalysisRecord"
	TypeAssessorEvent  = "AssessorEvent"
)

// AnalysisRecordMutation represents an operation that mutates the AnalysisRecord nodes in the graph.
type AnalysisRecordMutation struct {
	config
	op              Op
	typ             string
	id              *int
	run_id          *string
	fingerprint     *string
	ruleset_version *string
	engine_version  *string
	aggregate       *int
	addaggregate    *int
	category        *string
	assessor_model  *string
	assessor_ref    *string
	record          *map[string]interface{}
	letter_zstd     *[]byte
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*AnalysisRecord, error)
	predicates      []predicate.AnalysisRecord
}

var _ ent.Mutation = (*AnalysisRecordMutation)(nil)

// analysisrecordOption allows management of the mutation configuration using functional options.
type analysisrecordOption func(*AnalysisRecordMutation)

// newAnalysisRecordMutation creates new mutation for the AnalysisRecord entity.
func newAnalysisRecordMutation(c config, op Op, opts ...analysisrecordOption) *AnalysisRecordMutation {
	m := &AnalysisRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisRecordID sets the ID field of the mutation.
func withAnalysisRecordID(id int) analysisrecordOption {
	return func(m *AnalysisRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisRecord
		)
		m.oldValue = func(ctx context.Context) (*AnalysisRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisRecord sets the old AnalysisRecord of the mutation.
func withAnalysisRecord(node *AnalysisRecord) analysisrecordOption {
	return func(m *AnalysisRecordMutation) {
		m.oldValue = func(context.Context) (*AnalysisRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AnalysisRecordMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AnalysisRecordMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AnalysisRecordMutation) ResetRunID() {
	m.run_id = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *AnalysisRecordMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *AnalysisRecordMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *AnalysisRecordMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetRulesetVersion sets the "ruleset_version" field.
func (m *AnalysisRecordMutation) SetRulesetVersion(s string) {
	m.ruleset_version = &s
}

// RulesetVersion returns the value of the "ruleset_version" field in the mutation.
func (m *AnalysisRecordMutation) RulesetVersion() (r string, exists bool) {
	v := m.ruleset_version
	if v == nil {
		return
	}
	return *v, true
}

// OldRulesetVersion returns the old "ruleset_version" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldRulesetVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRulesetVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRulesetVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRulesetVersion: %w", err)
	}
	return oldValue.RulesetVersion, nil
}

// ResetRulesetVersion resets all changes to the "ruleset_version" field.
func (m *AnalysisRecordMutation) ResetRulesetVersion() {
	m.ruleset_version = nil
}

// SetEngineVersion sets the "engine_version" field.
func (m *AnalysisRecordMutation) SetEngineVersion(s string) {
	m.engine_version = &s
}

// EngineVersion returns the value of the "engine_version" field in the mutation.
func (m *AnalysisRecordMutation) EngineVersion() (r string, exists bool) {
	v := m.engine_version
	if v == nil {
		return
	}
	return *v, true
}

// OldEngineVersion returns the old "engine_version" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldEngineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngineVersion: %w", err)
	}
	return oldValue.EngineVersion, nil
}

// ResetEngineVersion resets all changes to the "engine_version" field.
func (m *AnalysisRecordMutation) ResetEngineVersion() {
	m.engine_version = nil
}

// SetAggregate sets the "aggregate" field.
func (m *AnalysisRecordMutation) SetAggregate(i int) {
	m.aggregate = &i
	m.addaggregate = nil
}

// Aggregate returns the value of the "aggregate" field in the mutation.
func (m *AnalysisRecordMutation) Aggregate() (r int, exists bool) {
	v := m.aggregate
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregate returns the old "aggregate" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldAggregate(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregate: %w", err)
	}
	return oldValue.Aggregate, nil
}

// AddAggregate adds i to the "aggregate" field.
func (m *AnalysisRecordMutation) AddAggregate(i int) {
	if m.addaggregate != nil {
		*m.addaggregate += i
	} else {
		m.addaggregate = &i
	}
}

// AddedAggregate returns the value that was added to the "aggregate" field in this mutation.
func (m *AnalysisRecordMutation) AddedAggregate() (r int, exists bool) {
	v := m.addaggregate
	if v == nil {
		return
	}
	return *v, true
}

// ResetAggregate resets all changes to the "aggregate" field.
func (m *AnalysisRecordMutation) ResetAggregate() {
	m.aggregate = nil
	m.addaggregate = nil
}

// SetCategory sets the "category" field.
func (m *AnalysisRecordMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *AnalysisRecordMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AnalysisRecordMutation) ResetCategory() {
	m.category = nil
}

// SetAssessorModel sets the "assessor_model" field.
func (m *AnalysisRecordMutation) SetAssessorModel(s string) {
	m.assessor_model = &s
}

// AssessorModel returns the value of the "assessor_model" field in the mutation.
func (m *AnalysisRecordMutation) AssessorModel() (r string, exists bool) {
	v := m.assessor_model
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessorModel returns the old "assessor_model" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldAssessorModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessorModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessorModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessorModel: %w", err)
	}
	return oldValue.AssessorModel, nil
}

// ResetAssessorModel resets all changes to the "assessor_model" field.
func (m *AnalysisRecordMutation) ResetAssessorModel() {
	m.assessor_model = nil
}

// SetAssessorRef sets the "assessor_ref" field.
func (m *AnalysisRecordMutation) SetAssessorRef(s string) {
	m.assessor_ref = &s
}

// AssessorRef returns the value of the "assessor_ref" field in the mutation.
func (m *AnalysisRecordMutation) AssessorRef() (r string, exists bool) {
	v := m.assessor_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessorRef returns the old "assessor_ref" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldAssessorRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessorRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessorRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessorRef: %w", err)
	}
	return oldValue.AssessorRef, nil
}

// ResetAssessorRef resets all changes to the "assessor_ref" field.
func (m *AnalysisRecordMutation) ResetAssessorRef() {
	m.assessor_ref = nil
}

// SetRecord sets the "record" field.
func (m *AnalysisRecordMutation) SetRecord(value map[string]interface{}) {
	m.record = &value
}

// Record returns the value of the "record" field in the mutation.
func (m *AnalysisRecordMutation) Record() (r map[string]interface{}, exists bool) {
	v := m.record
	if v == nil {
		return
	}
	return *v, true
}

// OldRecord returns the old "record" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldRecord(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecord is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecord requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecord: %w", err)
	}
	return oldValue.Record, nil
}

// ResetRecord resets all changes to the "record" field.
func (m *AnalysisRecordMutation) ResetRecord() {
	m.record = nil
}

// SetLetterZstd sets the "letter_zstd" field.
func (m *AnalysisRecordMutation) SetLetterZstd(b []byte) {
	m.letter_zstd = &b
}

// LetterZstd returns the value of the "letter_zstd" field in the mutation.
func (m *AnalysisRecordMutation) LetterZstd() (r []byte, exists bool) {
	v := m.letter_zstd
	if v == nil {
		return
	}
	return *v, true
}

// OldLetterZstd returns the old "letter_zstd" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldLetterZstd(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLetterZstd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLetterZstd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLetterZstd: %w", err)
	}
	return oldValue.LetterZstd, nil
}

// ResetLetterZstd resets all changes to the "letter_zstd" field.
func (m *AnalysisRecordMutation) ResetLetterZstd() {
	m.letter_zstd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisRecord entity.
// If the AnalysisRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AnalysisRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnalysisRecordMutation builder.
func (m *AnalysisRecordMutation) Where(ps ...predicate.AnalysisRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisRecord).
func (m *AnalysisRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.run_id != nil {
		fields = append(fields, analysisrecord.FieldRunID)
	}
	if m.fingerprint != nil {
		fields = append(fields, analysisrecord.FieldFingerprint)
	}
	if m.ruleset_version != nil {
		fields = append(fields, analysisrecord.FieldRulesetVersion)
	}
	if m.engine_version != nil {
		fields = append(fields, analysisrecord.FieldEngineVersion)
	}
	if m.aggregate != nil {
		fields = append(fields, analysisrecord.FieldAggregate)
	}
	if m.category != nil {
		fields = append(fields, analysisrecord.FieldCategory)
	}
	if m.assessor_model != nil {
		fields = append(fields, analysisrecord.FieldAssessorModel)
	}
	if m.assessor_ref != nil {
		fields = append(fields, analysisrecord.FieldAssessorRef)
	}
	if m.record != nil {
		fields = append(fields, analysisrecord.FieldRecord)
	}
	if m.letter_zstd != nil {
		fields = append(fields, analysisrecord.FieldLetterZstd)
	}
	if m.created_at != nil {
		fields = append(fields, analysisrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisrecord.FieldRunID:
		return m.RunID()
	case analysisrecord.FieldFingerprint:
		return m.Fingerprint()
	case analysisrecord.FieldRulesetVersion:
		return m.RulesetVersion()
	case analysisrecord.FieldEngineVersion:
		return m.EngineVersion()
	case analysisrecord.FieldAggregate:
		return m.Aggregate()
	case analysisrecord.FieldCategory:
		return m.Category()
	case analysisrecord.FieldAssessorModel:
		return m.AssessorModel()
	case analysisrecord.FieldAssessorRef:
		return m.AssessorRef()
	case analysisrecord.FieldRecord:
		return m.Record()
	case analysisrecord.FieldLetterZstd:
		return m.LetterZstd()
	case analysisrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisrecord.FieldRunID:
		return m.OldRunID(ctx)
	case analysisrecord.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case analysisrecord.FieldRulesetVersion:
		return m.OldRulesetVersion(ctx)
	case analysisrecord.FieldEngineVersion:
		return m.OldEngineVersion(ctx)
	case analysisrecord.FieldAggregate:
		return m.OldAggregate(ctx)
	case analysisrecord.FieldCategory:
		return m.OldCategory(ctx)
	case analysisrecord.FieldAssessorModel:
		return m.OldAssessorModel(ctx)
	case analysisrecord.FieldAssessorRef:
		return m.OldAssessorRef(ctx)
	case analysisrecord.FieldRecord:
		return m.OldRecord(ctx)
	case analysisrecord.FieldLetterZstd:
		return m.OldLetterZstd(ctx)
	case analysisrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisrecord.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case analysisrecord.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case analysisrecord.FieldRulesetVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRulesetVersion(v)
		return nil
	case analysisrecord.FieldEngineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngineVersion(v)
		return nil
	case analysisrecord.FieldAggregate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregate(v)
		return nil
	case analysisrecord.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case analysisrecord.FieldAssessorModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessorModel(v)
		return nil
	case analysisrecord.FieldAssessorRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessorRef(v)
		return nil
	case analysisrecord.FieldRecord:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecord(v)
		return nil
	case analysisrecord.FieldLetterZstd:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLetterZstd(v)
		return nil
	case analysisrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisRecordMutation) AddedFields() []string {
	var fields []string
	if m.addaggregate != nil {
		fields = append(fields, analysisrecord.FieldAggregate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisrecord.FieldAggregate:
		return m.AddedAggregate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisrecord.FieldAggregate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAggregate(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnalysisRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisRecordMutation) ResetField(name string) error {
	switch name {
	case analysisrecord.FieldRunID:
		m.ResetRunID()
		return nil
	case analysisrecord.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case analysisrecord.FieldRulesetVersion:
		m.ResetRulesetVersion()
		return nil
	case analysisrecord.FieldEngineVersion:
		m.ResetEngineVersion()
		return nil
	case analysisrecord.FieldAggregate:
		m.ResetAggregate()
		return nil
	case analysisrecord.FieldCategory:
		m.ResetCategory()
		return nil
	case analysisrecord.FieldAssessorModel:
		m.ResetAssessorModel()
		return nil
	case analysisrecord.FieldAssessorRef:
		m.ResetAssessorRef()
		return nil
	case analysisrecord.FieldRecord:
		m.ResetRecord()
		return nil
	case analysisrecord.FieldLetterZstd:
		m.ResetLetterZstd()
		return nil
	case analysisrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisRecord edge %s", name)
}

// AssessorEventMutation represents an operation that mutates the AssessorEvent nodes in the graph.
type AssessorEventMutation struct {
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
	run_id           *string
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
	oldValue         func(context.Context) (*AssessorEvent, error)
	predicates       []predicate.AssessorEvent
}

var _ ent.Mutation = (*AssessorEventMutation)(nil)

// assessoreventOption allows management of the mutation configuration using functional options.
type assessoreventOption func(*AssessorEventMutation)

// newAssessorEventMutation creates new mutation for the AssessorEvent entity.
func newAssessorEventMutation(c config, op Op, opts ...assessoreventOption) *AssessorEventMutation {
	m := &AssessorEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessorEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessorEventID sets the ID field of the mutation.
func withAssessorEventID(id int) assessoreventOption {
	return func(m *AssessorEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessorEvent
		)
		m.oldValue = func(ctx context.Context) (*AssessorEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessorEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessorEvent sets the old AssessorEvent of the mutation.
func withAssessorEvent(node *AssessorEvent) assessoreventOption {
	return func(m *AssessorEventMutation) {
		m.oldValue = func(context.Context) (*AssessorEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessorEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessorEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessorEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessorEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessorEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessorEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessorEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *AssessorEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessorEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessorEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessorEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessorEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *AssessorEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *AssessorEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AssessorEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldProvider(ctx context.Context) (v string, err error) {
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
func (m *AssessorEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *AssessorEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AssessorEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldModel(ctx context.Context) (v string, err error) {
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
func (m *AssessorEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *AssessorEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *AssessorEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
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
func (m *AssessorEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetRunID sets the "run_id" field.
func (m *AssessorEventMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AssessorEventMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AssessorEventMutation) ResetRunID() {
	m.run_id = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AssessorEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AssessorEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
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
func (m *AssessorEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AssessorEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AssessorEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AssessorEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AssessorEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
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
func (m *AssessorEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AssessorEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AssessorEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AssessorEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AssessorEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
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
func (m *AssessorEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AssessorEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AssessorEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *AssessorEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *AssessorEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
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
func (m *AssessorEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AssessorEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AssessorEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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
func (m *AssessorEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *AssessorEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *AssessorEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
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
func (m *AssessorEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *AssessorEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *AssessorEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the AssessorEvent entity.
// If the AssessorEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessorEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
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
func (m *AssessorEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the AssessorEventMutation builder.
func (m *AssessorEventMutation) Where(ps ...predicate.AssessorEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessorEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessorEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessorEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessorEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessorEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessorEvent).
func (m *AssessorEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessorEventMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.sequence != nil {
		fields = append(fields, assessorevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessorevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, assessorevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, assessorevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, assessorevent.FieldPurpose)
	}
	if m.run_id != nil {
		fields = append(fields, assessorevent.FieldRunID)
	}
	if m.input_tokens != nil {
		fields = append(fields, assessorevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, assessorevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, assessorevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, assessorevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, assessorevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, assessorevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, assessorevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessorEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessorevent.FieldSequence:
		return m.Sequence()
	case assessorevent.FieldTimestamp:
		return m.Timestamp()
	case assessorevent.FieldProvider:
		return m.Provider()
	case assessorevent.FieldModel:
		return m.Model()
	case assessorevent.FieldPurpose:
		return m.Purpose()
	case assessorevent.FieldRunID:
		return m.RunID()
	case assessorevent.FieldInputTokens:
		return m.InputTokens()
	case assessorevent.FieldOutputTokens:
		return m.OutputTokens()
	case assessorevent.FieldLatencyMs:
		return m.LatencyMs()
	case assessorevent.FieldSuccess:
		return m.Success()
	case assessorevent.FieldErrorMessage:
		return m.ErrorMessage()
	case assessorevent.FieldRequestBody:
		return m.RequestBody()
	case assessorevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessorEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessorevent.FieldSequence:
		return m.OldSequence(ctx)
	case assessorevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessorevent.FieldProvider:
		return m.OldProvider(ctx)
	case assessorevent.FieldModel:
		return m.OldModel(ctx)
	case assessorevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case assessorevent.FieldRunID:
		return m.OldRunID(ctx)
	case assessorevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case assessorevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case assessorevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case assessorevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case assessorevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case assessorevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case assessorevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown AssessorEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessorEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessorevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessorevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessorevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case assessorevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case assessorevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case assessorevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case assessorevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case assessorevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case assessorevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case assessorevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case assessorevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case assessorevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case assessorevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown AssessorEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessorEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessorevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, assessorevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, assessorevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, assessorevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessorEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessorevent.FieldSequence:
		return m.AddedSequence()
	case assessorevent.FieldInputTokens:
		return m.AddedInputTokens()
	case assessorevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case assessorevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessorEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessorevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessorevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case assessorevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case assessorevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown AssessorEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessorEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessorEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessorEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AssessorEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessorEventMutation) ResetField(name string) error {
	switch name {
	case assessorevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assessorevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessorevent.FieldProvider:
		m.ResetProvider()
		return nil
	case assessorevent.FieldModel:
		m.ResetModel()
		return nil
	case assessorevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case assessorevent.FieldRunID:
		m.ResetRunID()
		return nil
	case assessorevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case assessorevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case assessorevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case assessorevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case assessorevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case assessorevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case assessorevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown AssessorEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessorEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessorEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessorEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessorEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessorEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessorEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessorEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessorEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessorEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessorEvent edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/claimkit/nexusgrade/ent/analysisrecord"
	"github.com/claimkit/nexusgrade/ent/predicate"
)

// AnalysisRecordUpdate is the builder for updating AnalysisRecord entities.
type AnalysisRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisRecordMutation
}

// Where appends a list predicates to the AnalysisRecordUpdate builder.
func (_u *AnalysisRecordUpdate) Where(ps ...predicate.AnalysisRecord) *AnalysisRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnalysisRecordUpdate) SetFingerprint(v string) *AnalysisRecordUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableFingerprint(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *AnalysisRecordUpdate) SetRulesetVersion(v string) *AnalysisRecordUpdate {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableRulesetVersion(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *AnalysisRecordUpdate) SetEngineVersion(v string) *AnalysisRecordUpdate {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableEngineVersion(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetAggregate sets the "aggregate" field.
func (_u *AnalysisRecordUpdate) SetAggregate(v int) *AnalysisRecordUpdate {
	_u.mutation.ResetAggregate()
	_u.mutation.SetAggregate(v)
	return _u
}

// SetNillableAggregate sets the "aggregate" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableAggregate(v *int) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetAggregate(*v)
	}
	return _u
}

// AddAggregate adds value to the "aggregate" field.
func (_u *AnalysisRecordUpdate) AddAggregate(v int) *AnalysisRecordUpdate {
	_u.mutation.AddAggregate(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *AnalysisRecordUpdate) SetCategory(v string) *AnalysisRecordUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableCategory(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAssessorModel sets the "assessor_model" field.
func (_u *AnalysisRecordUpdate) SetAssessorModel(v string) *AnalysisRecordUpdate {
	_u.mutation.SetAssessorModel(v)
	return _u
}

// SetNillableAssessorModel sets the "assessor_model" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableAssessorModel(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetAssessorModel(*v)
	}
	return _u
}

// SetAssessorRef sets the "assessor_ref" field.
func (_u *AnalysisRecordUpdate) SetAssessorRef(v string) *AnalysisRecordUpdate {
	_u.mutation.SetAssessorRef(v)
	return _u
}

// SetNillableAssessorRef sets the "assessor_ref" field if the given value is not nil.
func (_u *AnalysisRecordUpdate) SetNillableAssessorRef(v *string) *AnalysisRecordUpdate {
	if v != nil {
		_u.SetAssessorRef(*v)
	}
	return _u
}

// SetRecord sets the "record" field.
func (_u *AnalysisRecordUpdate) SetRecord(v map[string]interface{}) *AnalysisRecordUpdate {
	_u.mutation.SetRecord(v)
	return _u
}

// SetLetterZstd sets the "letter_zstd" field.
func (_u *AnalysisRecordUpdate) SetLetterZstd(v []byte) *AnalysisRecordUpdate {
	_u.mutation.SetLetterZstd(v)
	return _u
}

// Mutation returns the AnalysisRecordMutation object of the builder.
func (_u *AnalysisRecordUpdate) Mutation() *AnalysisRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRecordUpdate) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := analysisrecord.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrecord.Table, analysisrecord.Columns, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(analysisrecord.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(analysisrecord.FieldRulesetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(analysisrecord.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aggregate(); ok {
		_spec.SetField(analysisrecord.FieldAggregate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAggregate(); ok {
		_spec.AddField(analysisrecord.FieldAggregate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(analysisrecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessorModel(); ok {
		_spec.SetField(analysisrecord.FieldAssessorModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessorRef(); ok {
		_spec.SetField(analysisrecord.FieldAssessorRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Record(); ok {
		_spec.SetField(analysisrecord.FieldRecord, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LetterZstd(); ok {
		_spec.SetField(analysisrecord.FieldLetterZstd, field.TypeBytes, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisRecordUpdateOne is the builder for updating a single AnalysisRecord entity.
type AnalysisRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisRecordMutation
}

// SetFingerprint sets the "fingerprint" field.
func (_u *AnalysisRecordUpdateOne) SetFingerprint(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableFingerprint(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_u *AnalysisRecordUpdateOne) SetRulesetVersion(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetRulesetVersion(v)
	return _u
}

// SetNillableRulesetVersion sets the "ruleset_version" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableRulesetVersion(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetRulesetVersion(*v)
	}
	return _u
}

// SetEngineVersion sets the "engine_version" field.
func (_u *AnalysisRecordUpdateOne) SetEngineVersion(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetEngineVersion(v)
	return _u
}

// SetNillableEngineVersion sets the "engine_version" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableEngineVersion(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetEngineVersion(*v)
	}
	return _u
}

// SetAggregate sets the "aggregate" field.
func (_u *AnalysisRecordUpdateOne) SetAggregate(v int) *AnalysisRecordUpdateOne {
	_u.mutation.ResetAggregate()
	_u.mutation.SetAggregate(v)
	return _u
}

// SetNillableAggregate sets the "aggregate" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableAggregate(v *int) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetAggregate(*v)
	}
	return _u
}

// AddAggregate adds value to the "aggregate" field.
func (_u *AnalysisRecordUpdateOne) AddAggregate(v int) *AnalysisRecordUpdateOne {
	_u.mutation.AddAggregate(v)
	return _u
}

// SetCategory sets the "category" field.
func (_u *AnalysisRecordUpdateOne) SetCategory(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableCategory(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAssessorModel sets the "assessor_model" field.
func (_u *AnalysisRecordUpdateOne) SetAssessorModel(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetAssessorModel(v)
	return _u
}

// SetNillableAssessorModel sets the "assessor_model" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableAssessorModel(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetAssessorModel(*v)
	}
	return _u
}

// SetAssessorRef sets the "assessor_ref" field.
func (_u *AnalysisRecordUpdateOne) SetAssessorRef(v string) *AnalysisRecordUpdateOne {
	_u.mutation.SetAssessorRef(v)
	return _u
}

// SetNillableAssessorRef sets the "assessor_ref" field if the given value is not nil.
func (_u *AnalysisRecordUpdateOne) SetNillableAssessorRef(v *string) *AnalysisRecordUpdateOne {
	if v != nil {
		_u.SetAssessorRef(*v)
	}
	return _u
}

// SetRecord sets the "record" field.
func (_u *AnalysisRecordUpdateOne) SetRecord(v map[string]interface{}) *AnalysisRecordUpdateOne {
	_u.mutation.SetRecord(v)
	return _u
}

// SetLetterZstd sets the "letter_zstd" field.
func (_u *AnalysisRecordUpdateOne) SetLetterZstd(v []byte) *AnalysisRecordUpdateOne {
	_u.mutation.SetLetterZstd(v)
	return _u
}

// Mutation returns the AnalysisRecordMutation object of the builder.
func (_u *AnalysisRecordUpdateOne) Mutation() *AnalysisRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisRecordUpdate builder.
func (_u *AnalysisRecordUpdateOne) Where(ps ...predicate.AnalysisRecord) *AnalysisRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisRecordUpdateOne) Select(field string, fields ...string) *AnalysisRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisRecord entity.
func (_u *AnalysisRecordUpdateOne) Save(ctx context.Context) (*AnalysisRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisRecordUpdateOne) SaveX(ctx context.Context) *AnalysisRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Fingerprint(); ok {
		if err := analysisrecord.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.fingerprint": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisrecord.Table, analysisrecord.Columns, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisrecord.FieldID)
		for _, f := range fields {
			if !analysisrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(analysisrecord.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.RulesetVersion(); ok {
		_spec.SetField(analysisrecord.FieldRulesetVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.EngineVersion(); ok {
		_spec.SetField(analysisrecord.FieldEngineVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Aggregate(); ok {
		_spec.SetField(analysisrecord.FieldAggregate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAggregate(); ok {
		_spec.AddField(analysisrecord.FieldAggregate, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(analysisrecord.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessorModel(); ok {
		_spec.SetField(analysisrecord.FieldAssessorModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessorRef(); ok {
		_spec.SetField(analysisrecord.FieldAssessorRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Record(); ok {
		_spec.SetField(analysisrecord.FieldRecord, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LetterZstd(); ok {
		_spec.SetField(analysisrecord.FieldLetterZstd, field.TypeBytes, value)
	}
	_node = &AnalysisRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

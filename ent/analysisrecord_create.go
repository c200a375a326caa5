// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/claimkit/nexusgrade/ent/analysisrecord"
)

// AnalysisRecordCreate is the builder for creating a AnalysisRecord entity.
type AnalysisRecordCreate struct {
	config
	mutation *AnalysisRecordMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AnalysisRecordCreate) SetRunID(v string) *AnalysisRecordCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *AnalysisRecordCreate) SetFingerprint(v string) *AnalysisRecordCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetRulesetVersion sets the "ruleset_version" field.
func (_c *AnalysisRecordCreate) SetRulesetVersion(v string) *AnalysisRecordCreate {
	_c.mutation.SetRulesetVersion(v)
	return _c
}

// SetEngineVersion sets the "engine_version" field.
func (_c *AnalysisRecordCreate) SetEngineVersion(v string) *AnalysisRecordCreate {
	_c.mutation.SetEngineVersion(v)
	return _c
}

// SetAggregate sets the "aggregate" field.
func (_c *AnalysisRecordCreate) SetAggregate(v int) *AnalysisRecordCreate {
	_c.mutation.SetAggregate(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *AnalysisRecordCreate) SetCategory(v string) *AnalysisRecordCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetAssessorModel sets the "assessor_model" field.
func (_c *AnalysisRecordCreate) SetAssessorModel(v string) *AnalysisRecordCreate {
	_c.mutation.SetAssessorModel(v)
	return _c
}

// SetNillableAssessorModel sets the "assessor_model" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableAssessorModel(v *string) *AnalysisRecordCreate {
	if v != nil {
		_c.SetAssessorModel(*v)
	}
	return _c
}

// SetAssessorRef sets the "assessor_ref" field.
func (_c *AnalysisRecordCreate) SetAssessorRef(v string) *AnalysisRecordCreate {
	_c.mutation.SetAssessorRef(v)
	return _c
}

// SetNillableAssessorRef sets the "assessor_ref" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableAssessorRef(v *string) *AnalysisRecordCreate {
	if v != nil {
		_c.SetAssessorRef(*v)
	}
	return _c
}

// SetRecord sets the "record" field.
func (_c *AnalysisRecordCreate) SetRecord(v map[string]interface{}) *AnalysisRecordCreate {
	_c.mutation.SetRecord(v)
	return _c
}

// SetLetterZstd sets the "letter_zstd" field.
func (_c *AnalysisRecordCreate) SetLetterZstd(v []byte) *AnalysisRecordCreate {
	_c.mutation.SetLetterZstd(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisRecordCreate) SetCreatedAt(v time.Time) *AnalysisRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisRecordCreate) SetNillableCreatedAt(v *time.Time) *AnalysisRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the AnalysisRecordMutation object of the builder.
func (_c *AnalysisRecordCreate) Mutation() *AnalysisRecordMutation {
	return _c.mutation
}

// Save creates the AnalysisRecord in the database.
func (_c *AnalysisRecordCreate) Save(ctx context.Context) (*AnalysisRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisRecordCreate) SaveX(ctx context.Context) *AnalysisRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisRecordCreate) defaults() {
	if _, ok := _c.mutation.AssessorModel(); !ok {
		v := analysisrecord.DefaultAssessorModel
		_c.mutation.SetAssessorModel(v)
	}
	if _, ok := _c.mutation.AssessorRef(); !ok {
		v := analysisrecord.DefaultAssessorRef
		_c.mutation.SetAssessorRef(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisRecordCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AnalysisRecord.run_id"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "AnalysisRecord.fingerprint"`)}
	}
	if v, ok := _c.mutation.Fingerprint(); ok {
		if err := analysisrecord.FingerprintValidator(v); err != nil {
			return &ValidationError{Name: "fingerprint", err: fmt.Errorf(`ent: validator failed for field "AnalysisRecord.fingerprint": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RulesetVersion(); !ok {
		return &ValidationError{Name: "ruleset_version", err: errors.New(`ent: missing required field "AnalysisRecord.ruleset_version"`)}
	}
	if _, ok := _c.mutation.EngineVersion(); !ok {
		return &ValidationError{Name: "engine_version", err: errors.New(`ent: missing required field "AnalysisRecord.engine_version"`)}
	}
	if _, ok := _c.mutation.Aggregate(); !ok {
		return &ValidationError{Name: "aggregate", err: errors.New(`ent: missing required field "AnalysisRecord.aggregate"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "AnalysisRecord.category"`)}
	}
	if _, ok := _c.mutation.AssessorModel(); !ok {
		return &ValidationError{Name: "assessor_model", err: errors.New(`ent: missing required field "AnalysisRecord.assessor_model"`)}
	}
	if _, ok := _c.mutation.AssessorRef(); !ok {
		return &ValidationError{Name: "assessor_ref", err: errors.New(`ent: missing required field "AnalysisRecord.assessor_ref"`)}
	}
	if _, ok := _c.mutation.Record(); !ok {
		return &ValidationError{Name: "record", err: errors.New(`ent: missing required field "AnalysisRecord.record"`)}
	}
	if _, ok := _c.mutation.LetterZstd(); !ok {
		return &ValidationError{Name: "letter_zstd", err: errors.New(`ent: missing required field "AnalysisRecord.letter_zstd"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisRecord.created_at"`)}
	}
	return nil
}

func (_c *AnalysisRecordCreate) sqlSave(ctx context.Context) (*AnalysisRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisRecordCreate) createSpec() (*AnalysisRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisrecord.Table, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(analysisrecord.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(analysisrecord.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.RulesetVersion(); ok {
		_spec.SetField(analysisrecord.FieldRulesetVersion, field.TypeString, value)
		_node.RulesetVersion = value
	}
	if value, ok := _c.mutation.EngineVersion(); ok {
		_spec.SetField(analysisrecord.FieldEngineVersion, field.TypeString, value)
		_node.EngineVersion = value
	}
	if value, ok := _c.mutation.Aggregate(); ok {
		_spec.SetField(analysisrecord.FieldAggregate, field.TypeInt, value)
		_node.Aggregate = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(analysisrecord.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.AssessorModel(); ok {
		_spec.SetField(analysisrecord.FieldAssessorModel, field.TypeString, value)
		_node.AssessorModel = value
	}
	if value, ok := _c.mutation.AssessorRef(); ok {
		_spec.SetField(analysisrecord.FieldAssessorRef, field.TypeString, value)
		_node.AssessorRef = value
	}
	if value, ok := _c.mutation.Record(); ok {
		_spec.SetField(analysisrecord.FieldRecord, field.TypeJSON, value)
		_node.Record = value
	}
	if value, ok := _c.mutation.LetterZstd(); ok {
		_spec.SetField(analysisrecord.FieldLetterZstd, field.TypeBytes, value)
		_node.LetterZstd = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AnalysisRecordCreateBulk is the builder for creating many AnalysisRecord entities in bulk.
type AnalysisRecordCreateBulk struct {
	config
	err      error
	builders []*AnalysisRecordCreate
}

// Save creates the AnalysisRecord entities in the database.
func (_c *AnalysisRecordCreateBulk) Save(ctx context.Context) ([]*AnalysisRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisRecordCreateBulk) SaveX(ctx context.Context) []*AnalysisRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

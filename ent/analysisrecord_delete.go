// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/claimkit/nexusgrade/ent/analysisrecord"
	"github.com/claimkit/nexusgrade/ent/predicate"
)

// AnalysisRecordDelete is the builder for deleting a AnalysisRecord entity.
type AnalysisRecordDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisRecordMutation
}

// Where appends a list predicates to the AnalysisRecordDelete builder.
func (_d *AnalysisRecordDelete) Where(ps ...predicate.AnalysisRecord) *AnalysisRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisrecord.Table, sqlgraph.NewFieldSpec(analysisrecord.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisRecordDeleteOne is the builder for deleting a single AnalysisRecord entity.
type AnalysisRecordDeleteOne struct {
	_d *AnalysisRecordDelete
}

// Where appends a list predicates to the AnalysisRecordDelete builder.
func (_d *AnalysisRecordDeleteOne) Where(ps ...predicate.AnalysisRecord) *AnalysisRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

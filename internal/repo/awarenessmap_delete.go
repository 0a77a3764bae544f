// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// AwarenessMapDelete is the builder for deleting a AwarenessMap entity.
type AwarenessMapDelete struct {
	config
	hooks    []Hook
	mutation *AwarenessMapMutation
}

// Where appends a list predicates to the AwarenessMapDelete builder.
func (_d *AwarenessMapDelete) Where(ps ...predicate.AwarenessMap) *AwarenessMapDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AwarenessMapDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AwarenessMapDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AwarenessMapDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(awarenessmap.Table, sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID))
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

// AwarenessMapDeleteOne is the builder for deleting a single AwarenessMap entity.
type AwarenessMapDeleteOne struct {
	_d *AwarenessMapDelete
}

// Where appends a list predicates to the AwarenessMapDelete builder.
func (_d *AwarenessMapDeleteOne) Where(ps ...predicate.AwarenessMap) *AwarenessMapDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AwarenessMapDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{awarenessmap.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AwarenessMapDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

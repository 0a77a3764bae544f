// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MechanicalCompoundDelete is the builder for deleting a MechanicalCompound entity.
type MechanicalCompoundDelete struct {
	config
	hooks    []Hook
	mutation *MechanicalCompoundMutation
}

// Where appends a list predicates to the MechanicalCompoundDelete builder.
func (_d *MechanicalCompoundDelete) Where(ps ...predicate.MechanicalCompound) *MechanicalCompoundDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MechanicalCompoundDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MechanicalCompoundDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MechanicalCompoundDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mechanicalcompound.Table, sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID))
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

// MechanicalCompoundDeleteOne is the builder for deleting a single MechanicalCompound entity.
type MechanicalCompoundDeleteOne struct {
	_d *MechanicalCompoundDelete
}

// Where appends a list predicates to the MechanicalCompoundDelete builder.
func (_d *MechanicalCompoundDeleteOne) Where(ps ...predicate.MechanicalCompound) *MechanicalCompoundDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MechanicalCompoundDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mechanicalcompound.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MechanicalCompoundDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

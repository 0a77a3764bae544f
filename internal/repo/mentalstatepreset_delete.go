// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MentalStatePresetDelete is the builder for deleting a MentalStatePreset entity.
type MentalStatePresetDelete struct {
	config
	hooks    []Hook
	mutation *MentalStatePresetMutation
}

// Where appends a list predicates to the MentalStatePresetDelete builder.
func (_d *MentalStatePresetDelete) Where(ps ...predicate.MentalStatePreset) *MentalStatePresetDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MentalStatePresetDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MentalStatePresetDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MentalStatePresetDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mentalstatepreset.Table, sqlgraph.NewFieldSpec(mentalstatepreset.FieldID, field.TypeUUID))
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

// MentalStatePresetDeleteOne is the builder for deleting a single MentalStatePreset entity.
type MentalStatePresetDeleteOne struct {
	_d *MentalStatePresetDelete
}

// Where appends a list predicates to the MentalStatePresetDelete builder.
func (_d *MentalStatePresetDeleteOne) Where(ps ...predicate.MentalStatePreset) *MentalStatePresetDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MentalStatePresetDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mentalstatepreset.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MentalStatePresetDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

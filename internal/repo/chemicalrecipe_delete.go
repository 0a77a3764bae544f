// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ChemicalRecipeDelete is the builder for deleting a ChemicalRecipe entity.
type ChemicalRecipeDelete struct {
	config
	hooks    []Hook
	mutation *ChemicalRecipeMutation
}

// Where appends a list predicates to the ChemicalRecipeDelete builder.
func (_d *ChemicalRecipeDelete) Where(ps ...predicate.ChemicalRecipe) *ChemicalRecipeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChemicalRecipeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChemicalRecipeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChemicalRecipeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chemicalrecipe.Table, sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID))
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

// ChemicalRecipeDeleteOne is the builder for deleting a single ChemicalRecipe entity.
type ChemicalRecipeDeleteOne struct {
	_d *ChemicalRecipeDelete
}

// Where appends a list predicates to the ChemicalRecipeDelete builder.
func (_d *ChemicalRecipeDeleteOne) Where(ps ...predicate.ChemicalRecipe) *ChemicalRecipeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChemicalRecipeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chemicalrecipe.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChemicalRecipeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

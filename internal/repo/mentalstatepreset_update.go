// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MentalStatePresetUpdate is the builder for updating MentalStatePreset entities.
type MentalStatePresetUpdate struct {
	config
	hooks    []Hook
	mutation *MentalStatePresetMutation
}

// Where appends a list predicates to the MentalStatePresetUpdate builder.
func (_u *MentalStatePresetUpdate) Where(ps ...predicate.MentalStatePreset) *MentalStatePresetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentalStatePresetUpdate) SetUpdatedAt(v time.Time) *MentalStatePresetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MentalStatePresetUpdate) SetLevel(v int) *MentalStatePresetUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MentalStatePresetUpdate) SetNillableLevel(v *int) *MentalStatePresetUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MentalStatePresetUpdate) AddLevel(v int) *MentalStatePresetUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalStatePresetUpdate) SetDescription(v string) *MentalStatePresetUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalStatePresetUpdate) SetNillableDescription(v *string) *MentalStatePresetUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the MentalStatePresetMutation object of the builder.
func (_u *MentalStatePresetUpdate) Mutation() *MentalStatePresetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentalStatePresetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalStatePresetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentalStatePresetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalStatePresetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalStatePresetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentalstatepreset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalStatePresetUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := mentalstatepreset.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`repo: validator failed for field "MentalStatePreset.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := mentalstatepreset.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "MentalStatePreset.description": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalStatePresetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalstatepreset.Table, mentalstatepreset.Columns, sqlgraph.NewFieldSpec(mentalstatepreset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalstatepreset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(mentalstatepreset.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(mentalstatepreset.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalstatepreset.FieldDescription, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalstatepreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentalStatePresetUpdateOne is the builder for updating a single MentalStatePreset entity.
type MentalStatePresetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentalStatePresetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentalStatePresetUpdateOne) SetUpdatedAt(v time.Time) *MentalStatePresetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MentalStatePresetUpdateOne) SetLevel(v int) *MentalStatePresetUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MentalStatePresetUpdateOne) SetNillableLevel(v *int) *MentalStatePresetUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MentalStatePresetUpdateOne) AddLevel(v int) *MentalStatePresetUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalStatePresetUpdateOne) SetDescription(v string) *MentalStatePresetUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalStatePresetUpdateOne) SetNillableDescription(v *string) *MentalStatePresetUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// Mutation returns the MentalStatePresetMutation object of the builder.
func (_u *MentalStatePresetUpdateOne) Mutation() *MentalStatePresetMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentalStatePresetUpdate builder.
func (_u *MentalStatePresetUpdateOne) Where(ps ...predicate.MentalStatePreset) *MentalStatePresetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentalStatePresetUpdateOne) Select(field string, fields ...string) *MentalStatePresetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentalStatePreset entity.
func (_u *MentalStatePresetUpdateOne) Save(ctx context.Context) (*MentalStatePreset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalStatePresetUpdateOne) SaveX(ctx context.Context) *MentalStatePreset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentalStatePresetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalStatePresetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalStatePresetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentalstatepreset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalStatePresetUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := mentalstatepreset.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`repo: validator failed for field "MentalStatePreset.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Description(); ok {
		if err := mentalstatepreset.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "MentalStatePreset.description": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalStatePresetUpdateOne) sqlSave(ctx context.Context) (_node *MentalStatePreset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalstatepreset.Table, mentalstatepreset.Columns, sqlgraph.NewFieldSpec(mentalstatepreset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MentalStatePreset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentalstatepreset.FieldID)
		for _, f := range fields {
			if !mentalstatepreset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != mentalstatepreset.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalstatepreset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(mentalstatepreset.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(mentalstatepreset.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalstatepreset.FieldDescription, field.TypeString, value)
	}
	_node = &MentalStatePreset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalstatepreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

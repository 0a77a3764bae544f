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
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MentalStateUpdate is the builder for updating MentalState entities.
type MentalStateUpdate struct {
	config
	hooks    []Hook
	mutation *MentalStateMutation
}

// Where appends a list predicates to the MentalStateUpdate builder.
func (_u *MentalStateUpdate) Where(ps ...predicate.MentalState) *MentalStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentalStateUpdate) SetUpdatedAt(v time.Time) *MentalStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MentalStateUpdate) SetLevel(v int) *MentalStateUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MentalStateUpdate) SetNillableLevel(v *int) *MentalStateUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MentalStateUpdate) AddLevel(v int) *MentalStateUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalStateUpdate) SetDescription(v string) *MentalStateUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalStateUpdate) SetNillableDescription(v *string) *MentalStateUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MentalStateUpdate) ClearDescription() *MentalStateUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatientID sets the "patient" edge to the Patient entity by ID.
func (_u *MentalStateUpdate) SetPatientID(id uuid.UUID) *MentalStateUpdate {
	_u.mutation.SetPatientID(id)
	return _u
}

// SetNillablePatientID sets the "patient" edge to the Patient entity by ID if the given value is not nil.
func (_u *MentalStateUpdate) SetNillablePatientID(id *uuid.UUID) *MentalStateUpdate {
	if id != nil {
		_u = _u.SetPatientID(*id)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *MentalStateUpdate) SetPatient(v *Patient) *MentalStateUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the MentalStateMutation object of the builder.
func (_u *MentalStateUpdate) Mutation() *MentalStateMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *MentalStateUpdate) ClearPatient() *MentalStateUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentalStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentalStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentalstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalStateUpdate) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := mentalstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`repo: validator failed for field "MentalState.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalstate.Table, mentalstate.Columns, sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(mentalstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(mentalstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalstate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(mentalstate.FieldDescription, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mentalstate.PatientTable,
			Columns: []string{mentalstate.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mentalstate.PatientTable,
			Columns: []string{mentalstate.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentalStateUpdateOne is the builder for updating a single MentalState entity.
type MentalStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentalStateMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MentalStateUpdateOne) SetUpdatedAt(v time.Time) *MentalStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *MentalStateUpdateOne) SetLevel(v int) *MentalStateUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MentalStateUpdateOne) SetNillableLevel(v *int) *MentalStateUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MentalStateUpdateOne) AddLevel(v int) *MentalStateUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalStateUpdateOne) SetDescription(v string) *MentalStateUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalStateUpdateOne) SetNillableDescription(v *string) *MentalStateUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MentalStateUpdateOne) ClearDescription() *MentalStateUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatientID sets the "patient" edge to the Patient entity by ID.
func (_u *MentalStateUpdateOne) SetPatientID(id uuid.UUID) *MentalStateUpdateOne {
	_u.mutation.SetPatientID(id)
	return _u
}

// SetNillablePatientID sets the "patient" edge to the Patient entity by ID if the given value is not nil.
func (_u *MentalStateUpdateOne) SetNillablePatientID(id *uuid.UUID) *MentalStateUpdateOne {
	if id != nil {
		_u = _u.SetPatientID(*id)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *MentalStateUpdateOne) SetPatient(v *Patient) *MentalStateUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the MentalStateMutation object of the builder.
func (_u *MentalStateUpdateOne) Mutation() *MentalStateMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *MentalStateUpdateOne) ClearPatient() *MentalStateUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the MentalStateUpdate builder.
func (_u *MentalStateUpdateOne) Where(ps ...predicate.MentalState) *MentalStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentalStateUpdateOne) Select(field string, fields ...string) *MentalStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentalState entity.
func (_u *MentalStateUpdateOne) Save(ctx context.Context) (*MentalState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalStateUpdateOne) SaveX(ctx context.Context) *MentalState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentalStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mentalstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalStateUpdateOne) check() error {
	if v, ok := _u.mutation.Level(); ok {
		if err := mentalstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`repo: validator failed for field "MentalState.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalStateUpdateOne) sqlSave(ctx context.Context) (_node *MentalState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalstate.Table, mentalstate.Columns, sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MentalState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentalstate.FieldID)
		for _, f := range fields {
			if !mentalstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != mentalstate.FieldID {
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
		_spec.SetField(mentalstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(mentalstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(mentalstate.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalstate.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(mentalstate.FieldDescription, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mentalstate.PatientTable,
			Columns: []string{mentalstate.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mentalstate.PatientTable,
			Columns: []string{mentalstate.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MentalState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// MechanicalCompoundUpdate is the builder for updating MechanicalCompound entities.
type MechanicalCompoundUpdate struct {
	config
	hooks    []Hook
	mutation *MechanicalCompoundMutation
}

// Where appends a list predicates to the MechanicalCompoundUpdate builder.
func (_u *MechanicalCompoundUpdate) Where(ps ...predicate.MechanicalCompound) *MechanicalCompoundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MechanicalCompoundUpdate) SetUpdatedAt(v time.Time) *MechanicalCompoundUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *MechanicalCompoundUpdate) SetOwnerID(v uuid.UUID) *MechanicalCompoundUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableOwnerID(v *uuid.UUID) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (_u *MechanicalCompoundUpdate) SetAuthorPatientID(v uuid.UUID) *MechanicalCompoundUpdate {
	_u.mutation.SetAuthorPatientID(v)
	return _u
}

// SetNillableAuthorPatientID sets the "author_patient_id" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableAuthorPatientID(v *uuid.UUID) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetAuthorPatientID(*v)
	}
	return _u
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (_u *MechanicalCompoundUpdate) ClearAuthorPatientID() *MechanicalCompoundUpdate {
	_u.mutation.ClearAuthorPatientID()
	return _u
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (_u *MechanicalCompoundUpdate) SetAuthorDoctorID(v uuid.UUID) *MechanicalCompoundUpdate {
	_u.mutation.SetAuthorDoctorID(v)
	return _u
}

// SetNillableAuthorDoctorID sets the "author_doctor_id" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableAuthorDoctorID(v *uuid.UUID) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetAuthorDoctorID(*v)
	}
	return _u
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (_u *MechanicalCompoundUpdate) ClearAuthorDoctorID() *MechanicalCompoundUpdate {
	_u.mutation.ClearAuthorDoctorID()
	return _u
}

// SetProperty1 sets the "property_1" field.
func (_u *MechanicalCompoundUpdate) SetProperty1(v string) *MechanicalCompoundUpdate {
	_u.mutation.SetProperty1(v)
	return _u
}

// SetNillableProperty1 sets the "property_1" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableProperty1(v *string) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetProperty1(*v)
	}
	return _u
}

// SetProperty2 sets the "property_2" field.
func (_u *MechanicalCompoundUpdate) SetProperty2(v string) *MechanicalCompoundUpdate {
	_u.mutation.SetProperty2(v)
	return _u
}

// SetNillableProperty2 sets the "property_2" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableProperty2(v *string) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetProperty2(*v)
	}
	return _u
}

// SetProperty3 sets the "property_3" field.
func (_u *MechanicalCompoundUpdate) SetProperty3(v string) *MechanicalCompoundUpdate {
	_u.mutation.SetProperty3(v)
	return _u
}

// SetNillableProperty3 sets the "property_3" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableProperty3(v *string) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetProperty3(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *MechanicalCompoundUpdate) SetDuration(v time.Duration) *MechanicalCompoundUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableDuration(v *time.Duration) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *MechanicalCompoundUpdate) AddDuration(v time.Duration) *MechanicalCompoundUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetExtraProperty sets the "extra_property" field.
func (_u *MechanicalCompoundUpdate) SetExtraProperty(v string) *MechanicalCompoundUpdate {
	_u.mutation.SetExtraProperty(v)
	return _u
}

// SetNillableExtraProperty sets the "extra_property" field if the given value is not nil.
func (_u *MechanicalCompoundUpdate) SetNillableExtraProperty(v *string) *MechanicalCompoundUpdate {
	if v != nil {
		_u.SetExtraProperty(*v)
	}
	return _u
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (_u *MechanicalCompoundUpdate) ClearExtraProperty() *MechanicalCompoundUpdate {
	_u.mutation.ClearExtraProperty()
	return _u
}

// SetOwner sets the "owner" edge to the Patient entity.
func (_u *MechanicalCompoundUpdate) SetOwner(v *Patient) *MechanicalCompoundUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetAuthorPatient sets the "author_patient" edge to the Patient entity.
func (_u *MechanicalCompoundUpdate) SetAuthorPatient(v *Patient) *MechanicalCompoundUpdate {
	return _u.SetAuthorPatientID(v.ID)
}

// SetAuthorDoctor sets the "author_doctor" edge to the Doctor entity.
func (_u *MechanicalCompoundUpdate) SetAuthorDoctor(v *Doctor) *MechanicalCompoundUpdate {
	return _u.SetAuthorDoctorID(v.ID)
}

// Mutation returns the MechanicalCompoundMutation object of the builder.
func (_u *MechanicalCompoundUpdate) Mutation() *MechanicalCompoundMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Patient entity.
func (_u *MechanicalCompoundUpdate) ClearOwner() *MechanicalCompoundUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearAuthorPatient clears the "author_patient" edge to the Patient entity.
func (_u *MechanicalCompoundUpdate) ClearAuthorPatient() *MechanicalCompoundUpdate {
	_u.mutation.ClearAuthorPatient()
	return _u
}

// ClearAuthorDoctor clears the "author_doctor" edge to the Doctor entity.
func (_u *MechanicalCompoundUpdate) ClearAuthorDoctor() *MechanicalCompoundUpdate {
	_u.mutation.ClearAuthorDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MechanicalCompoundUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MechanicalCompoundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MechanicalCompoundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MechanicalCompoundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MechanicalCompoundUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mechanicalcompound.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MechanicalCompoundUpdate) check() error {
	if v, ok := _u.mutation.Property1(); ok {
		if err := mechanicalcompound.Property1Validator(v); err != nil {
			return &ValidationError{Name: "property_1", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property2(); ok {
		if err := mechanicalcompound.Property2Validator(v); err != nil {
			return &ValidationError{Name: "property_2", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property3(); ok {
		if err := mechanicalcompound.Property3Validator(v); err != nil {
			return &ValidationError{Name: "property_3", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := mechanicalcompound.DurationValidator(int64(v)); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtraProperty(); ok {
		if err := mechanicalcompound.ExtraPropertyValidator(v); err != nil {
			return &ValidationError{Name: "extra_property", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.extra_property": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MechanicalCompound.owner"`)
	}
	return nil
}

func (_u *MechanicalCompoundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mechanicalcompound.Table, mechanicalcompound.Columns, sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mechanicalcompound.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty1, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property2(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty2, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property3(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty3, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(mechanicalcompound.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(mechanicalcompound.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExtraProperty(); ok {
		_spec.SetField(mechanicalcompound.FieldExtraProperty, field.TypeString, value)
	}
	if _u.mutation.ExtraPropertyCleared() {
		_spec.ClearField(mechanicalcompound.FieldExtraProperty, field.TypeString)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.OwnerTable,
			Columns: []string{mechanicalcompound.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.OwnerTable,
			Columns: []string{mechanicalcompound.OwnerColumn},
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
	if _u.mutation.AuthorPatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorPatientTable,
			Columns: []string{mechanicalcompound.AuthorPatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorPatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorPatientTable,
			Columns: []string{mechanicalcompound.AuthorPatientColumn},
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
	if _u.mutation.AuthorDoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorDoctorTable,
			Columns: []string{mechanicalcompound.AuthorDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorDoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorDoctorTable,
			Columns: []string{mechanicalcompound.AuthorDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mechanicalcompound.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MechanicalCompoundUpdateOne is the builder for updating a single MechanicalCompound entity.
type MechanicalCompoundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MechanicalCompoundMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MechanicalCompoundUpdateOne) SetUpdatedAt(v time.Time) *MechanicalCompoundUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *MechanicalCompoundUpdateOne) SetOwnerID(v uuid.UUID) *MechanicalCompoundUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableOwnerID(v *uuid.UUID) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (_u *MechanicalCompoundUpdateOne) SetAuthorPatientID(v uuid.UUID) *MechanicalCompoundUpdateOne {
	_u.mutation.SetAuthorPatientID(v)
	return _u
}

// SetNillableAuthorPatientID sets the "author_patient_id" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableAuthorPatientID(v *uuid.UUID) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetAuthorPatientID(*v)
	}
	return _u
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (_u *MechanicalCompoundUpdateOne) ClearAuthorPatientID() *MechanicalCompoundUpdateOne {
	_u.mutation.ClearAuthorPatientID()
	return _u
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (_u *MechanicalCompoundUpdateOne) SetAuthorDoctorID(v uuid.UUID) *MechanicalCompoundUpdateOne {
	_u.mutation.SetAuthorDoctorID(v)
	return _u
}

// SetNillableAuthorDoctorID sets the "author_doctor_id" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableAuthorDoctorID(v *uuid.UUID) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetAuthorDoctorID(*v)
	}
	return _u
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (_u *MechanicalCompoundUpdateOne) ClearAuthorDoctorID() *MechanicalCompoundUpdateOne {
	_u.mutation.ClearAuthorDoctorID()
	return _u
}

// SetProperty1 sets the "property_1" field.
func (_u *MechanicalCompoundUpdateOne) SetProperty1(v string) *MechanicalCompoundUpdateOne {
	_u.mutation.SetProperty1(v)
	return _u
}

// SetNillableProperty1 sets the "property_1" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableProperty1(v *string) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetProperty1(*v)
	}
	return _u
}

// SetProperty2 sets the "property_2" field.
func (_u *MechanicalCompoundUpdateOne) SetProperty2(v string) *MechanicalCompoundUpdateOne {
	_u.mutation.SetProperty2(v)
	return _u
}

// SetNillableProperty2 sets the "property_2" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableProperty2(v *string) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetProperty2(*v)
	}
	return _u
}

// SetProperty3 sets the "property_3" field.
func (_u *MechanicalCompoundUpdateOne) SetProperty3(v string) *MechanicalCompoundUpdateOne {
	_u.mutation.SetProperty3(v)
	return _u
}

// SetNillableProperty3 sets the "property_3" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableProperty3(v *string) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetProperty3(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *MechanicalCompoundUpdateOne) SetDuration(v time.Duration) *MechanicalCompoundUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableDuration(v *time.Duration) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *MechanicalCompoundUpdateOne) AddDuration(v time.Duration) *MechanicalCompoundUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetExtraProperty sets the "extra_property" field.
func (_u *MechanicalCompoundUpdateOne) SetExtraProperty(v string) *MechanicalCompoundUpdateOne {
	_u.mutation.SetExtraProperty(v)
	return _u
}

// SetNillableExtraProperty sets the "extra_property" field if the given value is not nil.
func (_u *MechanicalCompoundUpdateOne) SetNillableExtraProperty(v *string) *MechanicalCompoundUpdateOne {
	if v != nil {
		_u.SetExtraProperty(*v)
	}
	return _u
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (_u *MechanicalCompoundUpdateOne) ClearExtraProperty() *MechanicalCompoundUpdateOne {
	_u.mutation.ClearExtraProperty()
	return _u
}

// SetOwner sets the "owner" edge to the Patient entity.
func (_u *MechanicalCompoundUpdateOne) SetOwner(v *Patient) *MechanicalCompoundUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetAuthorPatient sets the "author_patient" edge to the Patient entity.
func (_u *MechanicalCompoundUpdateOne) SetAuthorPatient(v *Patient) *MechanicalCompoundUpdateOne {
	return _u.SetAuthorPatientID(v.ID)
}

// SetAuthorDoctor sets the "author_doctor" edge to the Doctor entity.
func (_u *MechanicalCompoundUpdateOne) SetAuthorDoctor(v *Doctor) *MechanicalCompoundUpdateOne {
	return _u.SetAuthorDoctorID(v.ID)
}

// Mutation returns the MechanicalCompoundMutation object of the builder.
func (_u *MechanicalCompoundUpdateOne) Mutation() *MechanicalCompoundMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Patient entity.
func (_u *MechanicalCompoundUpdateOne) ClearOwner() *MechanicalCompoundUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearAuthorPatient clears the "author_patient" edge to the Patient entity.
func (_u *MechanicalCompoundUpdateOne) ClearAuthorPatient() *MechanicalCompoundUpdateOne {
	_u.mutation.ClearAuthorPatient()
	return _u
}

// ClearAuthorDoctor clears the "author_doctor" edge to the Doctor entity.
func (_u *MechanicalCompoundUpdateOne) ClearAuthorDoctor() *MechanicalCompoundUpdateOne {
	_u.mutation.ClearAuthorDoctor()
	return _u
}

// Where appends a list predicates to the MechanicalCompoundUpdate builder.
func (_u *MechanicalCompoundUpdateOne) Where(ps ...predicate.MechanicalCompound) *MechanicalCompoundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MechanicalCompoundUpdateOne) Select(field string, fields ...string) *MechanicalCompoundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MechanicalCompound entity.
func (_u *MechanicalCompoundUpdateOne) Save(ctx context.Context) (*MechanicalCompound, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MechanicalCompoundUpdateOne) SaveX(ctx context.Context) *MechanicalCompound {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MechanicalCompoundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MechanicalCompoundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MechanicalCompoundUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mechanicalcompound.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MechanicalCompoundUpdateOne) check() error {
	if v, ok := _u.mutation.Property1(); ok {
		if err := mechanicalcompound.Property1Validator(v); err != nil {
			return &ValidationError{Name: "property_1", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property2(); ok {
		if err := mechanicalcompound.Property2Validator(v); err != nil {
			return &ValidationError{Name: "property_2", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property3(); ok {
		if err := mechanicalcompound.Property3Validator(v); err != nil {
			return &ValidationError{Name: "property_3", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := mechanicalcompound.DurationValidator(int64(v)); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtraProperty(); ok {
		if err := mechanicalcompound.ExtraPropertyValidator(v); err != nil {
			return &ValidationError{Name: "extra_property", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.extra_property": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "MechanicalCompound.owner"`)
	}
	return nil
}

func (_u *MechanicalCompoundUpdateOne) sqlSave(ctx context.Context) (_node *MechanicalCompound, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mechanicalcompound.Table, mechanicalcompound.Columns, sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "MechanicalCompound.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mechanicalcompound.FieldID)
		for _, f := range fields {
			if !mechanicalcompound.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != mechanicalcompound.FieldID {
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
		_spec.SetField(mechanicalcompound.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty1, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property2(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty2, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property3(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty3, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(mechanicalcompound.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(mechanicalcompound.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExtraProperty(); ok {
		_spec.SetField(mechanicalcompound.FieldExtraProperty, field.TypeString, value)
	}
	if _u.mutation.ExtraPropertyCleared() {
		_spec.ClearField(mechanicalcompound.FieldExtraProperty, field.TypeString)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.OwnerTable,
			Columns: []string{mechanicalcompound.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.OwnerTable,
			Columns: []string{mechanicalcompound.OwnerColumn},
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
	if _u.mutation.AuthorPatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorPatientTable,
			Columns: []string{mechanicalcompound.AuthorPatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorPatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorPatientTable,
			Columns: []string{mechanicalcompound.AuthorPatientColumn},
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
	if _u.mutation.AuthorDoctorCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorDoctorTable,
			Columns: []string{mechanicalcompound.AuthorDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthorDoctorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mechanicalcompound.AuthorDoctorTable,
			Columns: []string{mechanicalcompound.AuthorDoctorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MechanicalCompound{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mechanicalcompound.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

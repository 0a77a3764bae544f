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
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ChemicalRecipeUpdate is the builder for updating ChemicalRecipe entities.
type ChemicalRecipeUpdate struct {
	config
	hooks    []Hook
	mutation *ChemicalRecipeMutation
}

// Where appends a list predicates to the ChemicalRecipeUpdate builder.
func (_u *ChemicalRecipeUpdate) Where(ps ...predicate.ChemicalRecipe) *ChemicalRecipeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChemicalRecipeUpdate) SetUpdatedAt(v time.Time) *ChemicalRecipeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ChemicalRecipeUpdate) SetOwnerID(v uuid.UUID) *ChemicalRecipeUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableOwnerID(v *uuid.UUID) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (_u *ChemicalRecipeUpdate) SetAuthorPatientID(v uuid.UUID) *ChemicalRecipeUpdate {
	_u.mutation.SetAuthorPatientID(v)
	return _u
}

// SetNillableAuthorPatientID sets the "author_patient_id" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableAuthorPatientID(v *uuid.UUID) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetAuthorPatientID(*v)
	}
	return _u
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (_u *ChemicalRecipeUpdate) ClearAuthorPatientID() *ChemicalRecipeUpdate {
	_u.mutation.ClearAuthorPatientID()
	return _u
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (_u *ChemicalRecipeUpdate) SetAuthorDoctorID(v uuid.UUID) *ChemicalRecipeUpdate {
	_u.mutation.SetAuthorDoctorID(v)
	return _u
}

// SetNillableAuthorDoctorID sets the "author_doctor_id" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableAuthorDoctorID(v *uuid.UUID) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetAuthorDoctorID(*v)
	}
	return _u
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (_u *ChemicalRecipeUpdate) ClearAuthorDoctorID() *ChemicalRecipeUpdate {
	_u.mutation.ClearAuthorDoctorID()
	return _u
}

// SetProperty1 sets the "property_1" field.
func (_u *ChemicalRecipeUpdate) SetProperty1(v string) *ChemicalRecipeUpdate {
	_u.mutation.SetProperty1(v)
	return _u
}

// SetNillableProperty1 sets the "property_1" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableProperty1(v *string) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetProperty1(*v)
	}
	return _u
}

// SetProperty2 sets the "property_2" field.
func (_u *ChemicalRecipeUpdate) SetProperty2(v string) *ChemicalRecipeUpdate {
	_u.mutation.SetProperty2(v)
	return _u
}

// SetNillableProperty2 sets the "property_2" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableProperty2(v *string) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetProperty2(*v)
	}
	return _u
}

// SetProperty3 sets the "property_3" field.
func (_u *ChemicalRecipeUpdate) SetProperty3(v string) *ChemicalRecipeUpdate {
	_u.mutation.SetProperty3(v)
	return _u
}

// SetNillableProperty3 sets the "property_3" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableProperty3(v *string) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetProperty3(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *ChemicalRecipeUpdate) SetDuration(v time.Duration) *ChemicalRecipeUpdate {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableDuration(v *time.Duration) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *ChemicalRecipeUpdate) AddDuration(v time.Duration) *ChemicalRecipeUpdate {
	_u.mutation.AddDuration(v)
	return _u
}

// SetExtraProperty sets the "extra_property" field.
func (_u *ChemicalRecipeUpdate) SetExtraProperty(v string) *ChemicalRecipeUpdate {
	_u.mutation.SetExtraProperty(v)
	return _u
}

// SetNillableExtraProperty sets the "extra_property" field if the given value is not nil.
func (_u *ChemicalRecipeUpdate) SetNillableExtraProperty(v *string) *ChemicalRecipeUpdate {
	if v != nil {
		_u.SetExtraProperty(*v)
	}
	return _u
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (_u *ChemicalRecipeUpdate) ClearExtraProperty() *ChemicalRecipeUpdate {
	_u.mutation.ClearExtraProperty()
	return _u
}

// SetOwner sets the "owner" edge to the Patient entity.
func (_u *ChemicalRecipeUpdate) SetOwner(v *Patient) *ChemicalRecipeUpdate {
	return _u.SetOwnerID(v.ID)
}

// SetAuthorPatient sets the "author_patient" edge to the Patient entity.
func (_u *ChemicalRecipeUpdate) SetAuthorPatient(v *Patient) *ChemicalRecipeUpdate {
	return _u.SetAuthorPatientID(v.ID)
}

// SetAuthorDoctor sets the "author_doctor" edge to the Doctor entity.
func (_u *ChemicalRecipeUpdate) SetAuthorDoctor(v *Doctor) *ChemicalRecipeUpdate {
	return _u.SetAuthorDoctorID(v.ID)
}

// Mutation returns the ChemicalRecipeMutation object of the builder.
func (_u *ChemicalRecipeUpdate) Mutation() *ChemicalRecipeMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Patient entity.
func (_u *ChemicalRecipeUpdate) ClearOwner() *ChemicalRecipeUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// ClearAuthorPatient clears the "author_patient" edge to the Patient entity.
func (_u *ChemicalRecipeUpdate) ClearAuthorPatient() *ChemicalRecipeUpdate {
	_u.mutation.ClearAuthorPatient()
	return _u
}

// ClearAuthorDoctor clears the "author_doctor" edge to the Doctor entity.
func (_u *ChemicalRecipeUpdate) ClearAuthorDoctor() *ChemicalRecipeUpdate {
	_u.mutation.ClearAuthorDoctor()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChemicalRecipeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChemicalRecipeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChemicalRecipeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChemicalRecipeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChemicalRecipeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chemicalrecipe.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChemicalRecipeUpdate) check() error {
	if v, ok := _u.mutation.Property1(); ok {
		if err := chemicalrecipe.Property1Validator(v); err != nil {
			return &ValidationError{Name: "property_1", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property2(); ok {
		if err := chemicalrecipe.Property2Validator(v); err != nil {
			return &ValidationError{Name: "property_2", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property3(); ok {
		if err := chemicalrecipe.Property3Validator(v); err != nil {
			return &ValidationError{Name: "property_3", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := chemicalrecipe.DurationValidator(int64(v)); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtraProperty(); ok {
		if err := chemicalrecipe.ExtraPropertyValidator(v); err != nil {
			return &ValidationError{Name: "extra_property", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.extra_property": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ChemicalRecipe.owner"`)
	}
	return nil
}

func (_u *ChemicalRecipeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chemicalrecipe.Table, chemicalrecipe.Columns, sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chemicalrecipe.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty1, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property2(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty2, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property3(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty3, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(chemicalrecipe.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(chemicalrecipe.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExtraProperty(); ok {
		_spec.SetField(chemicalrecipe.FieldExtraProperty, field.TypeString, value)
	}
	if _u.mutation.ExtraPropertyCleared() {
		_spec.ClearField(chemicalrecipe.FieldExtraProperty, field.TypeString)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chemicalrecipe.OwnerTable,
			Columns: []string{chemicalrecipe.OwnerColumn},
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
			Table:   chemicalrecipe.OwnerTable,
			Columns: []string{chemicalrecipe.OwnerColumn},
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
			Table:   chemicalrecipe.AuthorPatientTable,
			Columns: []string{chemicalrecipe.AuthorPatientColumn},
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
			Table:   chemicalrecipe.AuthorPatientTable,
			Columns: []string{chemicalrecipe.AuthorPatientColumn},
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
			Table:   chemicalrecipe.AuthorDoctorTable,
			Columns: []string{chemicalrecipe.AuthorDoctorColumn},
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
			Table:   chemicalrecipe.AuthorDoctorTable,
			Columns: []string{chemicalrecipe.AuthorDoctorColumn},
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
			err = &NotFoundError{chemicalrecipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChemicalRecipeUpdateOne is the builder for updating a single ChemicalRecipe entity.
type ChemicalRecipeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChemicalRecipeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChemicalRecipeUpdateOne) SetUpdatedAt(v time.Time) *ChemicalRecipeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *ChemicalRecipeUpdateOne) SetOwnerID(v uuid.UUID) *ChemicalRecipeUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableOwnerID(v *uuid.UUID) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (_u *ChemicalRecipeUpdateOne) SetAuthorPatientID(v uuid.UUID) *ChemicalRecipeUpdateOne {
	_u.mutation.SetAuthorPatientID(v)
	return _u
}

// SetNillableAuthorPatientID sets the "author_patient_id" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableAuthorPatientID(v *uuid.UUID) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetAuthorPatientID(*v)
	}
	return _u
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (_u *ChemicalRecipeUpdateOne) ClearAuthorPatientID() *ChemicalRecipeUpdateOne {
	_u.mutation.ClearAuthorPatientID()
	return _u
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (_u *ChemicalRecipeUpdateOne) SetAuthorDoctorID(v uuid.UUID) *ChemicalRecipeUpdateOne {
	_u.mutation.SetAuthorDoctorID(v)
	return _u
}

// SetNillableAuthorDoctorID sets the "author_doctor_id" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableAuthorDoctorID(v *uuid.UUID) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetAuthorDoctorID(*v)
	}
	return _u
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (_u *ChemicalRecipeUpdateOne) ClearAuthorDoctorID() *ChemicalRecipeUpdateOne {
	_u.mutation.ClearAuthorDoctorID()
	return _u
}

// SetProperty1 sets the "property_1" field.
func (_u *ChemicalRecipeUpdateOne) SetProperty1(v string) *ChemicalRecipeUpdateOne {
	_u.mutation.SetProperty1(v)
	return _u
}

// SetNillableProperty1 sets the "property_1" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableProperty1(v *string) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetProperty1(*v)
	}
	return _u
}

// SetProperty2 sets the "property_2" field.
func (_u *ChemicalRecipeUpdateOne) SetProperty2(v string) *ChemicalRecipeUpdateOne {
	_u.mutation.SetProperty2(v)
	return _u
}

// SetNillableProperty2 sets the "property_2" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableProperty2(v *string) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetProperty2(*v)
	}
	return _u
}

// SetProperty3 sets the "property_3" field.
func (_u *ChemicalRecipeUpdateOne) SetProperty3(v string) *ChemicalRecipeUpdateOne {
	_u.mutation.SetProperty3(v)
	return _u
}

// SetNillableProperty3 sets the "property_3" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableProperty3(v *string) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetProperty3(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *ChemicalRecipeUpdateOne) SetDuration(v time.Duration) *ChemicalRecipeUpdateOne {
	_u.mutation.ResetDuration()
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableDuration(v *time.Duration) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// AddDuration adds value to the "duration" field.
func (_u *ChemicalRecipeUpdateOne) AddDuration(v time.Duration) *ChemicalRecipeUpdateOne {
	_u.mutation.AddDuration(v)
	return _u
}

// SetExtraProperty sets the "extra_property" field.
func (_u *ChemicalRecipeUpdateOne) SetExtraProperty(v string) *ChemicalRecipeUpdateOne {
	_u.mutation.SetExtraProperty(v)
	return _u
}

// SetNillableExtraProperty sets the "extra_property" field if the given value is not nil.
func (_u *ChemicalRecipeUpdateOne) SetNillableExtraProperty(v *string) *ChemicalRecipeUpdateOne {
	if v != nil {
		_u.SetExtraProperty(*v)
	}
	return _u
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (_u *ChemicalRecipeUpdateOne) ClearExtraProperty() *ChemicalRecipeUpdateOne {
	_u.mutation.ClearExtraProperty()
	return _u
}

// SetOwner sets the "owner" edge to the Patient entity.
func (_u *ChemicalRecipeUpdateOne) SetOwner(v *Patient) *ChemicalRecipeUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// SetAuthorPatient sets the "author_patient" edge to the Patient entity.
func (_u *ChemicalRecipeUpdateOne) SetAuthorPatient(v *Patient) *ChemicalRecipeUpdateOne {
	return _u.SetAuthorPatientID(v.ID)
}

// SetAuthorDoctor sets the "author_doctor" edge to the Doctor entity.
func (_u *ChemicalRecipeUpdateOne) SetAuthorDoctor(v *Doctor) *ChemicalRecipeUpdateOne {
	return _u.SetAuthorDoctorID(v.ID)
}

// Mutation returns the ChemicalRecipeMutation object of the builder.
func (_u *ChemicalRecipeUpdateOne) Mutation() *ChemicalRecipeMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the Patient entity.
func (_u *ChemicalRecipeUpdateOne) ClearOwner() *ChemicalRecipeUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// ClearAuthorPatient clears the "author_patient" edge to the Patient entity.
func (_u *ChemicalRecipeUpdateOne) ClearAuthorPatient() *ChemicalRecipeUpdateOne {
	_u.mutation.ClearAuthorPatient()
	return _u
}

// ClearAuthorDoctor clears the "author_doctor" edge to the Doctor entity.
func (_u *ChemicalRecipeUpdateOne) ClearAuthorDoctor() *ChemicalRecipeUpdateOne {
	_u.mutation.ClearAuthorDoctor()
	return _u
}

// Where appends a list predicates to the ChemicalRecipeUpdate builder.
func (_u *ChemicalRecipeUpdateOne) Where(ps ...predicate.ChemicalRecipe) *ChemicalRecipeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChemicalRecipeUpdateOne) Select(field string, fields ...string) *ChemicalRecipeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChemicalRecipe entity.
func (_u *ChemicalRecipeUpdateOne) Save(ctx context.Context) (*ChemicalRecipe, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChemicalRecipeUpdateOne) SaveX(ctx context.Context) *ChemicalRecipe {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChemicalRecipeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChemicalRecipeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChemicalRecipeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chemicalrecipe.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChemicalRecipeUpdateOne) check() error {
	if v, ok := _u.mutation.Property1(); ok {
		if err := chemicalrecipe.Property1Validator(v); err != nil {
			return &ValidationError{Name: "property_1", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property2(); ok {
		if err := chemicalrecipe.Property2Validator(v); err != nil {
			return &ValidationError{Name: "property_2", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Property3(); ok {
		if err := chemicalrecipe.Property3Validator(v); err != nil {
			return &ValidationError{Name: "property_3", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Duration(); ok {
		if err := chemicalrecipe.DurationValidator(int64(v)); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.duration": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExtraProperty(); ok {
		if err := chemicalrecipe.ExtraPropertyValidator(v); err != nil {
			return &ValidationError{Name: "extra_property", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.extra_property": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "ChemicalRecipe.owner"`)
	}
	return nil
}

func (_u *ChemicalRecipeUpdateOne) sqlSave(ctx context.Context) (_node *ChemicalRecipe, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chemicalrecipe.Table, chemicalrecipe.Columns, sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ChemicalRecipe.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chemicalrecipe.FieldID)
		for _, f := range fields {
			if !chemicalrecipe.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != chemicalrecipe.FieldID {
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
		_spec.SetField(chemicalrecipe.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty1, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property2(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty2, field.TypeString, value)
	}
	if value, ok := _u.mutation.Property3(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty3, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(chemicalrecipe.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDuration(); ok {
		_spec.AddField(chemicalrecipe.FieldDuration, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExtraProperty(); ok {
		_spec.SetField(chemicalrecipe.FieldExtraProperty, field.TypeString, value)
	}
	if _u.mutation.ExtraPropertyCleared() {
		_spec.ClearField(chemicalrecipe.FieldExtraProperty, field.TypeString)
	}
	if _u.mutation.OwnerCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chemicalrecipe.OwnerTable,
			Columns: []string{chemicalrecipe.OwnerColumn},
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
			Table:   chemicalrecipe.OwnerTable,
			Columns: []string{chemicalrecipe.OwnerColumn},
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
			Table:   chemicalrecipe.AuthorPatientTable,
			Columns: []string{chemicalrecipe.AuthorPatientColumn},
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
			Table:   chemicalrecipe.AuthorPatientTable,
			Columns: []string{chemicalrecipe.AuthorPatientColumn},
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
			Table:   chemicalrecipe.AuthorDoctorTable,
			Columns: []string{chemicalrecipe.AuthorDoctorColumn},
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
			Table:   chemicalrecipe.AuthorDoctorTable,
			Columns: []string{chemicalrecipe.AuthorDoctorColumn},
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
	_node = &ChemicalRecipe{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chemicalrecipe.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// ChemicalRecipeCreate is the builder for creating a ChemicalRecipe entity.
type ChemicalRecipeCreate struct {
	config
	mutation *ChemicalRecipeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChemicalRecipeCreate) SetCreatedAt(v time.Time) *ChemicalRecipeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChemicalRecipeCreate) SetNillableCreatedAt(v *time.Time) *ChemicalRecipeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChemicalRecipeCreate) SetUpdatedAt(v time.Time) *ChemicalRecipeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChemicalRecipeCreate) SetNillableUpdatedAt(v *time.Time) *ChemicalRecipeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *ChemicalRecipeCreate) SetOwnerID(v uuid.UUID) *ChemicalRecipeCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (_c *ChemicalRecipeCreate) SetAuthorPatientID(v uuid.UUID) *ChemicalRecipeCreate {
	_c.mutation.SetAuthorPatientID(v)
	return _c
}

// SetNillableAuthorPatientID sets the "author_patient_id" field if the given value is not nil.
func (_c *ChemicalRecipeCreate) SetNillableAuthorPatientID(v *uuid.UUID) *ChemicalRecipeCreate {
	if v != nil {
		_c.SetAuthorPatientID(*v)
	}
	return _c
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (_c *ChemicalRecipeCreate) SetAuthorDoctorID(v uuid.UUID) *ChemicalRecipeCreate {
	_c.mutation.SetAuthorDoctorID(v)
	return _c
}

// SetNillableAuthorDoctorID sets the "author_doctor_id" field if the given value is not nil.
func (_c *ChemicalRecipeCreate) SetNillableAuthorDoctorID(v *uuid.UUID) *ChemicalRecipeCreate {
	if v != nil {
		_c.SetAuthorDoctorID(*v)
	}
	return _c
}

// SetProperty1 sets the "property_1" field.
func (_c *ChemicalRecipeCreate) SetProperty1(v string) *ChemicalRecipeCreate {
	_c.mutation.SetProperty1(v)
	return _c
}

// SetProperty2 sets the "property_2" field.
func (_c *ChemicalRecipeCreate) SetProperty2(v string) *ChemicalRecipeCreate {
	_c.mutation.SetProperty2(v)
	return _c
}

// SetProperty3 sets the "property_3" field.
func (_c *ChemicalRecipeCreate) SetProperty3(v string) *ChemicalRecipeCreate {
	_c.mutation.SetProperty3(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *ChemicalRecipeCreate) SetDuration(v time.Duration) *ChemicalRecipeCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetExtraProperty sets the "extra_property" field.
func (_c *ChemicalRecipeCreate) SetExtraProperty(v string) *ChemicalRecipeCreate {
	_c.mutation.SetExtraProperty(v)
	return _c
}

// SetNillableExtraProperty sets the "extra_property" field if the given value is not nil.
func (_c *ChemicalRecipeCreate) SetNillableExtraProperty(v *string) *ChemicalRecipeCreate {
	if v != nil {
		_c.SetExtraProperty(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChemicalRecipeCreate) SetID(v uuid.UUID) *ChemicalRecipeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChemicalRecipeCreate) SetNillableID(v *uuid.UUID) *ChemicalRecipeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the Patient entity.
func (_c *ChemicalRecipeCreate) SetOwner(v *Patient) *ChemicalRecipeCreate {
	return _c.SetOwnerID(v.ID)
}

// SetAuthorPatient sets the "author_patient" edge to the Patient entity.
func (_c *ChemicalRecipeCreate) SetAuthorPatient(v *Patient) *ChemicalRecipeCreate {
	return _c.SetAuthorPatientID(v.ID)
}

// SetAuthorDoctor sets the "author_doctor" edge to the Doctor entity.
func (_c *ChemicalRecipeCreate) SetAuthorDoctor(v *Doctor) *ChemicalRecipeCreate {
	return _c.SetAuthorDoctorID(v.ID)
}

// Mutation returns the ChemicalRecipeMutation object of the builder.
func (_c *ChemicalRecipeCreate) Mutation() *ChemicalRecipeMutation {
	return _c.mutation
}

// Save creates the ChemicalRecipe in the database.
func (_c *ChemicalRecipeCreate) Save(ctx context.Context) (*ChemicalRecipe, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChemicalRecipeCreate) SaveX(ctx context.Context) *ChemicalRecipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChemicalRecipeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChemicalRecipeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChemicalRecipeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chemicalrecipe.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chemicalrecipe.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExtraProperty(); !ok {
		v := chemicalrecipe.DefaultExtraProperty
		_c.mutation.SetExtraProperty(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := chemicalrecipe.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChemicalRecipeCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ChemicalRecipe.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ChemicalRecipe.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`repo: missing required field "ChemicalRecipe.owner_id"`)}
	}
	if _, ok := _c.mutation.Property1(); !ok {
		return &ValidationError{Name: "property_1", err: errors.New(`repo: missing required field "ChemicalRecipe.property_1"`)}
	}
	if v, ok := _c.mutation.Property1(); ok {
		if err := chemicalrecipe.Property1Validator(v); err != nil {
			return &ValidationError{Name: "property_1", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_1": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Property2(); !ok {
		return &ValidationError{Name: "property_2", err: errors.New(`repo: missing required field "ChemicalRecipe.property_2"`)}
	}
	if v, ok := _c.mutation.Property2(); ok {
		if err := chemicalrecipe.Property2Validator(v); err != nil {
			return &ValidationError{Name: "property_2", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_2": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Property3(); !ok {
		return &ValidationError{Name: "property_3", err: errors.New(`repo: missing required field "ChemicalRecipe.property_3"`)}
	}
	if v, ok := _c.mutation.Property3(); ok {
		if err := chemicalrecipe.Property3Validator(v); err != nil {
			return &ValidationError{Name: "property_3", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.property_3": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`repo: missing required field "ChemicalRecipe.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := chemicalrecipe.DurationValidator(int64(v)); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.duration": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExtraProperty(); ok {
		if err := chemicalrecipe.ExtraPropertyValidator(v); err != nil {
			return &ValidationError{Name: "extra_property", err: fmt.Errorf(`repo: validator failed for field "ChemicalRecipe.extra_property": %w`, err)}
		}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`repo: missing required edge "ChemicalRecipe.owner"`)}
	}
	return nil
}

func (_c *ChemicalRecipeCreate) sqlSave(ctx context.Context) (*ChemicalRecipe, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChemicalRecipeCreate) createSpec() (*ChemicalRecipe, *sqlgraph.CreateSpec) {
	var (
		_node = &ChemicalRecipe{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chemicalrecipe.Table, sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chemicalrecipe.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chemicalrecipe.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Property1(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty1, field.TypeString, value)
		_node.Property1 = value
	}
	if value, ok := _c.mutation.Property2(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty2, field.TypeString, value)
		_node.Property2 = value
	}
	if value, ok := _c.mutation.Property3(); ok {
		_spec.SetField(chemicalrecipe.FieldProperty3, field.TypeString, value)
		_node.Property3 = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(chemicalrecipe.FieldDuration, field.TypeInt64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.ExtraProperty(); ok {
		_spec.SetField(chemicalrecipe.FieldExtraProperty, field.TypeString, value)
		_node.ExtraProperty = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorPatientIDs(); len(nodes) > 0 {
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
		_node.AuthorPatientID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorDoctorIDs(); len(nodes) > 0 {
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
		_node.AuthorDoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChemicalRecipe.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChemicalRecipeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ChemicalRecipeCreate) OnConflict(opts ...sql.ConflictOption) *ChemicalRecipeUpsertOne {
	_c.conflict = opts
	return &ChemicalRecipeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChemicalRecipe.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChemicalRecipeCreate) OnConflictColumns(columns ...string) *ChemicalRecipeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChemicalRecipeUpsertOne{
		create: _c,
	}
}

type (
	// ChemicalRecipeUpsertOne is the builder for "upsert"-ing
	//  one ChemicalRecipe node.
	ChemicalRecipeUpsertOne struct {
		create *ChemicalRecipeCreate
	}

	// ChemicalRecipeUpsert is the "OnConflict" setter.
	ChemicalRecipeUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *ChemicalRecipeUpsert) SetUpdatedAt(v time.Time) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateUpdatedAt() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *ChemicalRecipeUpsert) SetOwnerID(v uuid.UUID) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateOwnerID() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldOwnerID)
	return u
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (u *ChemicalRecipeUpsert) SetAuthorPatientID(v uuid.UUID) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldAuthorPatientID, v)
	return u
}

// UpdateAuthorPatientID sets the "author_patient_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateAuthorPatientID() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldAuthorPatientID)
	return u
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (u *ChemicalRecipeUpsert) ClearAuthorPatientID() *ChemicalRecipeUpsert {
	u.SetNull(chemicalrecipe.FieldAuthorPatientID)
	return u
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (u *ChemicalRecipeUpsert) SetAuthorDoctorID(v uuid.UUID) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldAuthorDoctorID, v)
	return u
}

// UpdateAuthorDoctorID sets the "author_doctor_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateAuthorDoctorID() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldAuthorDoctorID)
	return u
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (u *ChemicalRecipeUpsert) ClearAuthorDoctorID() *ChemicalRecipeUpsert {
	u.SetNull(chemicalrecipe.FieldAuthorDoctorID)
	return u
}

// SetProperty1 sets the "property_1" field.
func (u *ChemicalRecipeUpsert) SetProperty1(v string) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldProperty1, v)
	return u
}

// UpdateProperty1 sets the "property_1" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateProperty1() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldProperty1)
	return u
}

// SetProperty2 sets the "property_2" field.
func (u *ChemicalRecipeUpsert) SetProperty2(v string) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldProperty2, v)
	return u
}

// UpdateProperty2 sets the "property_2" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateProperty2() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldProperty2)
	return u
}

// SetProperty3 sets the "property_3" field.
func (u *ChemicalRecipeUpsert) SetProperty3(v string) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldProperty3, v)
	return u
}

// UpdateProperty3 sets the "property_3" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateProperty3() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldProperty3)
	return u
}

// SetDuration sets the "duration" field.
func (u *ChemicalRecipeUpsert) SetDuration(v time.Duration) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateDuration() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *ChemicalRecipeUpsert) AddDuration(v time.Duration) *ChemicalRecipeUpsert {
	u.Add(chemicalrecipe.FieldDuration, v)
	return u
}

// SetExtraProperty sets the "extra_property" field.
func (u *ChemicalRecipeUpsert) SetExtraProperty(v string) *ChemicalRecipeUpsert {
	u.Set(chemicalrecipe.FieldExtraProperty, v)
	return u
}

// UpdateExtraProperty sets the "extra_property" field to the value that was provided on create.
func (u *ChemicalRecipeUpsert) UpdateExtraProperty() *ChemicalRecipeUpsert {
	u.SetExcluded(chemicalrecipe.FieldExtraProperty)
	return u
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (u *ChemicalRecipeUpsert) ClearExtraProperty() *ChemicalRecipeUpsert {
	u.SetNull(chemicalrecipe.FieldExtraProperty)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChemicalRecipe.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chemicalrecipe.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChemicalRecipeUpsertOne) UpdateNewValues() *ChemicalRecipeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chemicalrecipe.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chemicalrecipe.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChemicalRecipe.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChemicalRecipeUpsertOne) Ignore() *ChemicalRecipeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChemicalRecipeUpsertOne) DoNothing() *ChemicalRecipeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChemicalRecipeCreate.OnConflict
// documentation for more info.
func (u *ChemicalRecipeUpsertOne) Update(set func(*ChemicalRecipeUpsert)) *ChemicalRecipeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChemicalRecipeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChemicalRecipeUpsertOne) SetUpdatedAt(v time.Time) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateUpdatedAt() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *ChemicalRecipeUpsertOne) SetOwnerID(v uuid.UUID) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateOwnerID() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateOwnerID()
	})
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (u *ChemicalRecipeUpsertOne) SetAuthorPatientID(v uuid.UUID) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetAuthorPatientID(v)
	})
}

// UpdateAuthorPatientID sets the "author_patient_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateAuthorPatientID() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateAuthorPatientID()
	})
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (u *ChemicalRecipeUpsertOne) ClearAuthorPatientID() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.ClearAuthorPatientID()
	})
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (u *ChemicalRecipeUpsertOne) SetAuthorDoctorID(v uuid.UUID) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetAuthorDoctorID(v)
	})
}

// UpdateAuthorDoctorID sets the "author_doctor_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateAuthorDoctorID() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateAuthorDoctorID()
	})
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (u *ChemicalRecipeUpsertOne) ClearAuthorDoctorID() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.ClearAuthorDoctorID()
	})
}

// SetProperty1 sets the "property_1" field.
func (u *ChemicalRecipeUpsertOne) SetProperty1(v string) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetProperty1(v)
	})
}

// UpdateProperty1 sets the "property_1" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateProperty1() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateProperty1()
	})
}

// SetProperty2 sets the "property_2" field.
func (u *ChemicalRecipeUpsertOne) SetProperty2(v string) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetProperty2(v)
	})
}

// UpdateProperty2 sets the "property_2" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateProperty2() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateProperty2()
	})
}

// SetProperty3 sets the "property_3" field.
func (u *ChemicalRecipeUpsertOne) SetProperty3(v string) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetProperty3(v)
	})
}

// UpdateProperty3 sets the "property_3" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateProperty3() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateProperty3()
	})
}

// SetDuration sets the "duration" field.
func (u *ChemicalRecipeUpsertOne) SetDuration(v time.Duration) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *ChemicalRecipeUpsertOne) AddDuration(v time.Duration) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateDuration() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateDuration()
	})
}

// SetExtraProperty sets the "extra_property" field.
func (u *ChemicalRecipeUpsertOne) SetExtraProperty(v string) *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetExtraProperty(v)
	})
}

// UpdateExtraProperty sets the "extra_property" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertOne) UpdateExtraProperty() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateExtraProperty()
	})
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (u *ChemicalRecipeUpsertOne) ClearExtraProperty() *ChemicalRecipeUpsertOne {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.ClearExtraProperty()
	})
}

// Exec executes the query.
func (u *ChemicalRecipeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ChemicalRecipeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChemicalRecipeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChemicalRecipeUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ChemicalRecipeUpsertOne.ID is not supported by MySQL driver. Use ChemicalRecipeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChemicalRecipeUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChemicalRecipeCreateBulk is the builder for creating many ChemicalRecipe entities in bulk.
type ChemicalRecipeCreateBulk struct {
	config
	err      error
	builders []*ChemicalRecipeCreate
	conflict []sql.ConflictOption
}

// Save creates the ChemicalRecipe entities in the database.
func (_c *ChemicalRecipeCreateBulk) Save(ctx context.Context) ([]*ChemicalRecipe, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChemicalRecipe, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChemicalRecipeMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ChemicalRecipeCreateBulk) SaveX(ctx context.Context) []*ChemicalRecipe {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChemicalRecipeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChemicalRecipeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChemicalRecipe.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChemicalRecipeUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *ChemicalRecipeCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChemicalRecipeUpsertBulk {
	_c.conflict = opts
	return &ChemicalRecipeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChemicalRecipe.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChemicalRecipeCreateBulk) OnConflictColumns(columns ...string) *ChemicalRecipeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChemicalRecipeUpsertBulk{
		create: _c,
	}
}

// ChemicalRecipeUpsertBulk is the builder for "upsert"-ing
// a bulk of ChemicalRecipe nodes.
type ChemicalRecipeUpsertBulk struct {
	create *ChemicalRecipeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChemicalRecipe.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chemicalrecipe.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChemicalRecipeUpsertBulk) UpdateNewValues() *ChemicalRecipeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chemicalrecipe.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chemicalrecipe.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChemicalRecipe.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChemicalRecipeUpsertBulk) Ignore() *ChemicalRecipeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChemicalRecipeUpsertBulk) DoNothing() *ChemicalRecipeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChemicalRecipeCreateBulk.OnConflict
// documentation for more info.
func (u *ChemicalRecipeUpsertBulk) Update(set func(*ChemicalRecipeUpsert)) *ChemicalRecipeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChemicalRecipeUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChemicalRecipeUpsertBulk) SetUpdatedAt(v time.Time) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateUpdatedAt() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *ChemicalRecipeUpsertBulk) SetOwnerID(v uuid.UUID) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateOwnerID() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateOwnerID()
	})
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (u *ChemicalRecipeUpsertBulk) SetAuthorPatientID(v uuid.UUID) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetAuthorPatientID(v)
	})
}

// UpdateAuthorPatientID sets the "author_patient_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateAuthorPatientID() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateAuthorPatientID()
	})
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (u *ChemicalRecipeUpsertBulk) ClearAuthorPatientID() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.ClearAuthorPatientID()
	})
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (u *ChemicalRecipeUpsertBulk) SetAuthorDoctorID(v uuid.UUID) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetAuthorDoctorID(v)
	})
}

// UpdateAuthorDoctorID sets the "author_doctor_id" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateAuthorDoctorID() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateAuthorDoctorID()
	})
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (u *ChemicalRecipeUpsertBulk) ClearAuthorDoctorID() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.ClearAuthorDoctorID()
	})
}

// SetProperty1 sets the "property_1" field.
func (u *ChemicalRecipeUpsertBulk) SetProperty1(v string) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetProperty1(v)
	})
}

// UpdateProperty1 sets the "property_1" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateProperty1() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateProperty1()
	})
}

// SetProperty2 sets the "property_2" field.
func (u *ChemicalRecipeUpsertBulk) SetProperty2(v string) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetProperty2(v)
	})
}

// UpdateProperty2 sets the "property_2" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateProperty2() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateProperty2()
	})
}

// SetProperty3 sets the "property_3" field.
func (u *ChemicalRecipeUpsertBulk) SetProperty3(v string) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetProperty3(v)
	})
}

// UpdateProperty3 sets the "property_3" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateProperty3() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateProperty3()
	})
}

// SetDuration sets the "duration" field.
func (u *ChemicalRecipeUpsertBulk) SetDuration(v time.Duration) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *ChemicalRecipeUpsertBulk) AddDuration(v time.Duration) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateDuration() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateDuration()
	})
}

// SetExtraProperty sets the "extra_property" field.
func (u *ChemicalRecipeUpsertBulk) SetExtraProperty(v string) *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.SetExtraProperty(v)
	})
}

// UpdateExtraProperty sets the "extra_property" field to the value that was provided on create.
func (u *ChemicalRecipeUpsertBulk) UpdateExtraProperty() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.UpdateExtraProperty()
	})
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (u *ChemicalRecipeUpsertBulk) ClearExtraProperty() *ChemicalRecipeUpsertBulk {
	return u.Update(func(s *ChemicalRecipeUpsert) {
		s.ClearExtraProperty()
	})
}

// Exec executes the query.
func (u *ChemicalRecipeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ChemicalRecipeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ChemicalRecipeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChemicalRecipeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// MechanicalCompoundCreate is the builder for creating a MechanicalCompound entity.
type MechanicalCompoundCreate struct {
	config
	mutation *MechanicalCompoundMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MechanicalCompoundCreate) SetCreatedAt(v time.Time) *MechanicalCompoundCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MechanicalCompoundCreate) SetNillableCreatedAt(v *time.Time) *MechanicalCompoundCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MechanicalCompoundCreate) SetUpdatedAt(v time.Time) *MechanicalCompoundCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MechanicalCompoundCreate) SetNillableUpdatedAt(v *time.Time) *MechanicalCompoundCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *MechanicalCompoundCreate) SetOwnerID(v uuid.UUID) *MechanicalCompoundCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (_c *MechanicalCompoundCreate) SetAuthorPatientID(v uuid.UUID) *MechanicalCompoundCreate {
	_c.mutation.SetAuthorPatientID(v)
	return _c
}

// SetNillableAuthorPatientID sets the "author_patient_id" field if the given value is not nil.
func (_c *MechanicalCompoundCreate) SetNillableAuthorPatientID(v *uuid.UUID) *MechanicalCompoundCreate {
	if v != nil {
		_c.SetAuthorPatientID(*v)
	}
	return _c
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (_c *MechanicalCompoundCreate) SetAuthorDoctorID(v uuid.UUID) *MechanicalCompoundCreate {
	_c.mutation.SetAuthorDoctorID(v)
	return _c
}

// SetNillableAuthorDoctorID sets the "author_doctor_id" field if the given value is not nil.
func (_c *MechanicalCompoundCreate) SetNillableAuthorDoctorID(v *uuid.UUID) *MechanicalCompoundCreate {
	if v != nil {
		_c.SetAuthorDoctorID(*v)
	}
	return _c
}

// SetProperty1 sets the "property_1" field.
func (_c *MechanicalCompoundCreate) SetProperty1(v string) *MechanicalCompoundCreate {
	_c.mutation.SetProperty1(v)
	return _c
}

// SetProperty2 sets the "property_2" field.
func (_c *MechanicalCompoundCreate) SetProperty2(v string) *MechanicalCompoundCreate {
	_c.mutation.SetProperty2(v)
	return _c
}

// SetProperty3 sets the "property_3" field.
func (_c *MechanicalCompoundCreate) SetProperty3(v string) *MechanicalCompoundCreate {
	_c.mutation.SetProperty3(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *MechanicalCompoundCreate) SetDuration(v time.Duration) *MechanicalCompoundCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetExtraProperty sets the "extra_property" field.
func (_c *MechanicalCompoundCreate) SetExtraProperty(v string) *MechanicalCompoundCreate {
	_c.mutation.SetExtraProperty(v)
	return _c
}

// SetNillableExtraProperty sets the "extra_property" field if the given value is not nil.
func (_c *MechanicalCompoundCreate) SetNillableExtraProperty(v *string) *MechanicalCompoundCreate {
	if v != nil {
		_c.SetExtraProperty(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MechanicalCompoundCreate) SetID(v uuid.UUID) *MechanicalCompoundCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MechanicalCompoundCreate) SetNillableID(v *uuid.UUID) *MechanicalCompoundCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOwner sets the "owner" edge to the Patient entity.
func (_c *MechanicalCompoundCreate) SetOwner(v *Patient) *MechanicalCompoundCreate {
	return _c.SetOwnerID(v.ID)
}

// SetAuthorPatient sets the "author_patient" edge to the Patient entity.
func (_c *MechanicalCompoundCreate) SetAuthorPatient(v *Patient) *MechanicalCompoundCreate {
	return _c.SetAuthorPatientID(v.ID)
}

// SetAuthorDoctor sets the "author_doctor" edge to the Doctor entity.
func (_c *MechanicalCompoundCreate) SetAuthorDoctor(v *Doctor) *MechanicalCompoundCreate {
	return _c.SetAuthorDoctorID(v.ID)
}

// Mutation returns the MechanicalCompoundMutation object of the builder.
func (_c *MechanicalCompoundCreate) Mutation() *MechanicalCompoundMutation {
	return _c.mutation
}

// Save creates the MechanicalCompound in the database.
func (_c *MechanicalCompoundCreate) Save(ctx context.Context) (*MechanicalCompound, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MechanicalCompoundCreate) SaveX(ctx context.Context) *MechanicalCompound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MechanicalCompoundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MechanicalCompoundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MechanicalCompoundCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mechanicalcompound.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mechanicalcompound.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ExtraProperty(); !ok {
		v := mechanicalcompound.DefaultExtraProperty
		_c.mutation.SetExtraProperty(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mechanicalcompound.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MechanicalCompoundCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MechanicalCompound.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MechanicalCompound.updated_at"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`repo: missing required field "MechanicalCompound.owner_id"`)}
	}
	if _, ok := _c.mutation.Property1(); !ok {
		return &ValidationError{Name: "property_1", err: errors.New(`repo: missing required field "MechanicalCompound.property_1"`)}
	}
	if v, ok := _c.mutation.Property1(); ok {
		if err := mechanicalcompound.Property1Validator(v); err != nil {
			return &ValidationError{Name: "property_1", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_1": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Property2(); !ok {
		return &ValidationError{Name: "property_2", err: errors.New(`repo: missing required field "MechanicalCompound.property_2"`)}
	}
	if v, ok := _c.mutation.Property2(); ok {
		if err := mechanicalcompound.Property2Validator(v); err != nil {
			return &ValidationError{Name: "property_2", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_2": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Property3(); !ok {
		return &ValidationError{Name: "property_3", err: errors.New(`repo: missing required field "MechanicalCompound.property_3"`)}
	}
	if v, ok := _c.mutation.Property3(); ok {
		if err := mechanicalcompound.Property3Validator(v); err != nil {
			return &ValidationError{Name: "property_3", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.property_3": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`repo: missing required field "MechanicalCompound.duration"`)}
	}
	if v, ok := _c.mutation.Duration(); ok {
		if err := mechanicalcompound.DurationValidator(int64(v)); err != nil {
			return &ValidationError{Name: "duration", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.duration": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExtraProperty(); ok {
		if err := mechanicalcompound.ExtraPropertyValidator(v); err != nil {
			return &ValidationError{Name: "extra_property", err: fmt.Errorf(`repo: validator failed for field "MechanicalCompound.extra_property": %w`, err)}
		}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`repo: missing required edge "MechanicalCompound.owner"`)}
	}
	return nil
}

func (_c *MechanicalCompoundCreate) sqlSave(ctx context.Context) (*MechanicalCompound, error) {
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

func (_c *MechanicalCompoundCreate) createSpec() (*MechanicalCompound, *sqlgraph.CreateSpec) {
	var (
		_node = &MechanicalCompound{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mechanicalcompound.Table, sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mechanicalcompound.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mechanicalcompound.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Property1(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty1, field.TypeString, value)
		_node.Property1 = value
	}
	if value, ok := _c.mutation.Property2(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty2, field.TypeString, value)
		_node.Property2 = value
	}
	if value, ok := _c.mutation.Property3(); ok {
		_spec.SetField(mechanicalcompound.FieldProperty3, field.TypeString, value)
		_node.Property3 = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(mechanicalcompound.FieldDuration, field.TypeInt64, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.ExtraProperty(); ok {
		_spec.SetField(mechanicalcompound.FieldExtraProperty, field.TypeString, value)
		_node.ExtraProperty = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_node.OwnerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorPatientIDs(); len(nodes) > 0 {
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
		_node.AuthorPatientID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthorDoctorIDs(); len(nodes) > 0 {
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
		_node.AuthorDoctorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MechanicalCompound.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MechanicalCompoundUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MechanicalCompoundCreate) OnConflict(opts ...sql.ConflictOption) *MechanicalCompoundUpsertOne {
	_c.conflict = opts
	return &MechanicalCompoundUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MechanicalCompound.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MechanicalCompoundCreate) OnConflictColumns(columns ...string) *MechanicalCompoundUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MechanicalCompoundUpsertOne{
		create: _c,
	}
}

type (
	// MechanicalCompoundUpsertOne is the builder for "upsert"-ing
	//  one MechanicalCompound node.
	MechanicalCompoundUpsertOne struct {
		create *MechanicalCompoundCreate
	}

	// MechanicalCompoundUpsert is the "OnConflict" setter.
	MechanicalCompoundUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MechanicalCompoundUpsert) SetUpdatedAt(v time.Time) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateUpdatedAt() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldUpdatedAt)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *MechanicalCompoundUpsert) SetOwnerID(v uuid.UUID) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateOwnerID() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldOwnerID)
	return u
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (u *MechanicalCompoundUpsert) SetAuthorPatientID(v uuid.UUID) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldAuthorPatientID, v)
	return u
}

// UpdateAuthorPatientID sets the "author_patient_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateAuthorPatientID() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldAuthorPatientID)
	return u
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (u *MechanicalCompoundUpsert) ClearAuthorPatientID() *MechanicalCompoundUpsert {
	u.SetNull(mechanicalcompound.FieldAuthorPatientID)
	return u
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (u *MechanicalCompoundUpsert) SetAuthorDoctorID(v uuid.UUID) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldAuthorDoctorID, v)
	return u
}

// UpdateAuthorDoctorID sets the "author_doctor_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateAuthorDoctorID() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldAuthorDoctorID)
	return u
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (u *MechanicalCompoundUpsert) ClearAuthorDoctorID() *MechanicalCompoundUpsert {
	u.SetNull(mechanicalcompound.FieldAuthorDoctorID)
	return u
}

// SetProperty1 sets the "property_1" field.
func (u *MechanicalCompoundUpsert) SetProperty1(v string) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldProperty1, v)
	return u
}

// UpdateProperty1 sets the "property_1" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateProperty1() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldProperty1)
	return u
}

// SetProperty2 sets the "property_2" field.
func (u *MechanicalCompoundUpsert) SetProperty2(v string) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldProperty2, v)
	return u
}

// UpdateProperty2 sets the "property_2" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateProperty2() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldProperty2)
	return u
}

// SetProperty3 sets the "property_3" field.
func (u *MechanicalCompoundUpsert) SetProperty3(v string) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldProperty3, v)
	return u
}

// UpdateProperty3 sets the "property_3" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateProperty3() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldProperty3)
	return u
}

// SetDuration sets the "duration" field.
func (u *MechanicalCompoundUpsert) SetDuration(v time.Duration) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldDuration, v)
	return u
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateDuration() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldDuration)
	return u
}

// AddDuration adds v to the "duration" field.
func (u *MechanicalCompoundUpsert) AddDuration(v time.Duration) *MechanicalCompoundUpsert {
	u.Add(mechanicalcompound.FieldDuration, v)
	return u
}

// SetExtraProperty sets the "extra_property" field.
func (u *MechanicalCompoundUpsert) SetExtraProperty(v string) *MechanicalCompoundUpsert {
	u.Set(mechanicalcompound.FieldExtraProperty, v)
	return u
}

// UpdateExtraProperty sets the "extra_property" field to the value that was provided on create.
func (u *MechanicalCompoundUpsert) UpdateExtraProperty() *MechanicalCompoundUpsert {
	u.SetExcluded(mechanicalcompound.FieldExtraProperty)
	return u
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (u *MechanicalCompoundUpsert) ClearExtraProperty() *MechanicalCompoundUpsert {
	u.SetNull(mechanicalcompound.FieldExtraProperty)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MechanicalCompound.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mechanicalcompound.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MechanicalCompoundUpsertOne) UpdateNewValues() *MechanicalCompoundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mechanicalcompound.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mechanicalcompound.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MechanicalCompound.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MechanicalCompoundUpsertOne) Ignore() *MechanicalCompoundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MechanicalCompoundUpsertOne) DoNothing() *MechanicalCompoundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MechanicalCompoundCreate.OnConflict
// documentation for more info.
func (u *MechanicalCompoundUpsertOne) Update(set func(*MechanicalCompoundUpsert)) *MechanicalCompoundUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MechanicalCompoundUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MechanicalCompoundUpsertOne) SetUpdatedAt(v time.Time) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateUpdatedAt() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *MechanicalCompoundUpsertOne) SetOwnerID(v uuid.UUID) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateOwnerID() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateOwnerID()
	})
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (u *MechanicalCompoundUpsertOne) SetAuthorPatientID(v uuid.UUID) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetAuthorPatientID(v)
	})
}

// UpdateAuthorPatientID sets the "author_patient_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateAuthorPatientID() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateAuthorPatientID()
	})
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (u *MechanicalCompoundUpsertOne) ClearAuthorPatientID() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.ClearAuthorPatientID()
	})
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (u *MechanicalCompoundUpsertOne) SetAuthorDoctorID(v uuid.UUID) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetAuthorDoctorID(v)
	})
}

// UpdateAuthorDoctorID sets the "author_doctor_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateAuthorDoctorID() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateAuthorDoctorID()
	})
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (u *MechanicalCompoundUpsertOne) ClearAuthorDoctorID() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.ClearAuthorDoctorID()
	})
}

// SetProperty1 sets the "property_1" field.
func (u *MechanicalCompoundUpsertOne) SetProperty1(v string) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetProperty1(v)
	})
}

// UpdateProperty1 sets the "property_1" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateProperty1() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateProperty1()
	})
}

// SetProperty2 sets the "property_2" field.
func (u *MechanicalCompoundUpsertOne) SetProperty2(v string) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetProperty2(v)
	})
}

// UpdateProperty2 sets the "property_2" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateProperty2() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateProperty2()
	})
}

// SetProperty3 sets the "property_3" field.
func (u *MechanicalCompoundUpsertOne) SetProperty3(v string) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetProperty3(v)
	})
}

// UpdateProperty3 sets the "property_3" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateProperty3() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateProperty3()
	})
}

// SetDuration sets the "duration" field.
func (u *MechanicalCompoundUpsertOne) SetDuration(v time.Duration) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *MechanicalCompoundUpsertOne) AddDuration(v time.Duration) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateDuration() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateDuration()
	})
}

// SetExtraProperty sets the "extra_property" field.
func (u *MechanicalCompoundUpsertOne) SetExtraProperty(v string) *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetExtraProperty(v)
	})
}

// UpdateExtraProperty sets the "extra_property" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertOne) UpdateExtraProperty() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateExtraProperty()
	})
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (u *MechanicalCompoundUpsertOne) ClearExtraProperty() *MechanicalCompoundUpsertOne {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.ClearExtraProperty()
	})
}

// Exec executes the query.
func (u *MechanicalCompoundUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MechanicalCompoundCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MechanicalCompoundUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MechanicalCompoundUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MechanicalCompoundUpsertOne.ID is not supported by MySQL driver. Use MechanicalCompoundUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MechanicalCompoundUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MechanicalCompoundCreateBulk is the builder for creating many MechanicalCompound entities in bulk.
type MechanicalCompoundCreateBulk struct {
	config
	err      error
	builders []*MechanicalCompoundCreate
	conflict []sql.ConflictOption
}

// Save creates the MechanicalCompound entities in the database.
func (_c *MechanicalCompoundCreateBulk) Save(ctx context.Context) ([]*MechanicalCompound, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MechanicalCompound, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MechanicalCompoundMutation)
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
func (_c *MechanicalCompoundCreateBulk) SaveX(ctx context.Context) []*MechanicalCompound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MechanicalCompoundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MechanicalCompoundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MechanicalCompound.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MechanicalCompoundUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MechanicalCompoundCreateBulk) OnConflict(opts ...sql.ConflictOption) *MechanicalCompoundUpsertBulk {
	_c.conflict = opts
	return &MechanicalCompoundUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MechanicalCompound.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MechanicalCompoundCreateBulk) OnConflictColumns(columns ...string) *MechanicalCompoundUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MechanicalCompoundUpsertBulk{
		create: _c,
	}
}

// MechanicalCompoundUpsertBulk is the builder for "upsert"-ing
// a bulk of MechanicalCompound nodes.
type MechanicalCompoundUpsertBulk struct {
	create *MechanicalCompoundCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MechanicalCompound.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mechanicalcompound.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MechanicalCompoundUpsertBulk) UpdateNewValues() *MechanicalCompoundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mechanicalcompound.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mechanicalcompound.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MechanicalCompound.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MechanicalCompoundUpsertBulk) Ignore() *MechanicalCompoundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MechanicalCompoundUpsertBulk) DoNothing() *MechanicalCompoundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MechanicalCompoundCreateBulk.OnConflict
// documentation for more info.
func (u *MechanicalCompoundUpsertBulk) Update(set func(*MechanicalCompoundUpsert)) *MechanicalCompoundUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MechanicalCompoundUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MechanicalCompoundUpsertBulk) SetUpdatedAt(v time.Time) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateUpdatedAt() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *MechanicalCompoundUpsertBulk) SetOwnerID(v uuid.UUID) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateOwnerID() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateOwnerID()
	})
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (u *MechanicalCompoundUpsertBulk) SetAuthorPatientID(v uuid.UUID) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetAuthorPatientID(v)
	})
}

// UpdateAuthorPatientID sets the "author_patient_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateAuthorPatientID() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateAuthorPatientID()
	})
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (u *MechanicalCompoundUpsertBulk) ClearAuthorPatientID() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.ClearAuthorPatientID()
	})
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (u *MechanicalCompoundUpsertBulk) SetAuthorDoctorID(v uuid.UUID) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetAuthorDoctorID(v)
	})
}

// UpdateAuthorDoctorID sets the "author_doctor_id" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateAuthorDoctorID() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateAuthorDoctorID()
	})
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (u *MechanicalCompoundUpsertBulk) ClearAuthorDoctorID() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.ClearAuthorDoctorID()
	})
}

// SetProperty1 sets the "property_1" field.
func (u *MechanicalCompoundUpsertBulk) SetProperty1(v string) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetProperty1(v)
	})
}

// UpdateProperty1 sets the "property_1" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateProperty1() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateProperty1()
	})
}

// SetProperty2 sets the "property_2" field.
func (u *MechanicalCompoundUpsertBulk) SetProperty2(v string) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetProperty2(v)
	})
}

// UpdateProperty2 sets the "property_2" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateProperty2() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateProperty2()
	})
}

// SetProperty3 sets the "property_3" field.
func (u *MechanicalCompoundUpsertBulk) SetProperty3(v string) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetProperty3(v)
	})
}

// UpdateProperty3 sets the "property_3" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateProperty3() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateProperty3()
	})
}

// SetDuration sets the "duration" field.
func (u *MechanicalCompoundUpsertBulk) SetDuration(v time.Duration) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetDuration(v)
	})
}

// AddDuration adds v to the "duration" field.
func (u *MechanicalCompoundUpsertBulk) AddDuration(v time.Duration) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.AddDuration(v)
	})
}

// UpdateDuration sets the "duration" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateDuration() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateDuration()
	})
}

// SetExtraProperty sets the "extra_property" field.
func (u *MechanicalCompoundUpsertBulk) SetExtraProperty(v string) *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.SetExtraProperty(v)
	})
}

// UpdateExtraProperty sets the "extra_property" field to the value that was provided on create.
func (u *MechanicalCompoundUpsertBulk) UpdateExtraProperty() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.UpdateExtraProperty()
	})
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (u *MechanicalCompoundUpsertBulk) ClearExtraProperty() *MechanicalCompoundUpsertBulk {
	return u.Update(func(s *MechanicalCompoundUpsert) {
		s.ClearExtraProperty()
	})
}

// Exec executes the query.
func (u *MechanicalCompoundUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MechanicalCompoundCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MechanicalCompoundCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MechanicalCompoundUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

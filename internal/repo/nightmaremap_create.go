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
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// NightmareMapCreate is the builder for creating a NightmareMap entity.
type NightmareMapCreate struct {
	config
	mutation *NightmareMapMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *NightmareMapCreate) SetCreatedAt(v time.Time) *NightmareMapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableCreatedAt(v *time.Time) *NightmareMapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NightmareMapCreate) SetUpdatedAt(v time.Time) *NightmareMapCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableUpdatedAt(v *time.Time) *NightmareMapCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *NightmareMapCreate) SetPatientID(v uuid.UUID) *NightmareMapCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetProperty1Condition sets the "property_1_condition" field.
func (_c *NightmareMapCreate) SetProperty1Condition(v string) *NightmareMapCreate {
	_c.mutation.SetProperty1Condition(v)
	return _c
}

// SetNillableProperty1Condition sets the "property_1_condition" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty1Condition(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty1Condition(*v)
	}
	return _c
}

// SetProperty1Description sets the "property_1_description" field.
func (_c *NightmareMapCreate) SetProperty1Description(v string) *NightmareMapCreate {
	_c.mutation.SetProperty1Description(v)
	return _c
}

// SetNillableProperty1Description sets the "property_1_description" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty1Description(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty1Description(*v)
	}
	return _c
}

// SetProperty2Condition sets the "property_2_condition" field.
func (_c *NightmareMapCreate) SetProperty2Condition(v string) *NightmareMapCreate {
	_c.mutation.SetProperty2Condition(v)
	return _c
}

// SetNillableProperty2Condition sets the "property_2_condition" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty2Condition(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty2Condition(*v)
	}
	return _c
}

// SetProperty2Description sets the "property_2_description" field.
func (_c *NightmareMapCreate) SetProperty2Description(v string) *NightmareMapCreate {
	_c.mutation.SetProperty2Description(v)
	return _c
}

// SetNillableProperty2Description sets the "property_2_description" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty2Description(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty2Description(*v)
	}
	return _c
}

// SetProperty3Condition sets the "property_3_condition" field.
func (_c *NightmareMapCreate) SetProperty3Condition(v string) *NightmareMapCreate {
	_c.mutation.SetProperty3Condition(v)
	return _c
}

// SetNillableProperty3Condition sets the "property_3_condition" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty3Condition(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty3Condition(*v)
	}
	return _c
}

// SetProperty3Description sets the "property_3_description" field.
func (_c *NightmareMapCreate) SetProperty3Description(v string) *NightmareMapCreate {
	_c.mutation.SetProperty3Description(v)
	return _c
}

// SetNillableProperty3Description sets the "property_3_description" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty3Description(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty3Description(*v)
	}
	return _c
}

// SetProperty4Condition sets the "property_4_condition" field.
func (_c *NightmareMapCreate) SetProperty4Condition(v string) *NightmareMapCreate {
	_c.mutation.SetProperty4Condition(v)
	return _c
}

// SetNillableProperty4Condition sets the "property_4_condition" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty4Condition(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty4Condition(*v)
	}
	return _c
}

// SetProperty4Description sets the "property_4_description" field.
func (_c *NightmareMapCreate) SetProperty4Description(v string) *NightmareMapCreate {
	_c.mutation.SetProperty4Description(v)
	return _c
}

// SetNillableProperty4Description sets the "property_4_description" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableProperty4Description(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetProperty4Description(*v)
	}
	return _c
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (_c *NightmareMapCreate) SetExtraProperty1Description(v string) *NightmareMapCreate {
	_c.mutation.SetExtraProperty1Description(v)
	return _c
}

// SetNillableExtraProperty1Description sets the "extra_property_1_description" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableExtraProperty1Description(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetExtraProperty1Description(*v)
	}
	return _c
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (_c *NightmareMapCreate) SetExtraProperty2Description(v string) *NightmareMapCreate {
	_c.mutation.SetExtraProperty2Description(v)
	return _c
}

// SetNillableExtraProperty2Description sets the "extra_property_2_description" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableExtraProperty2Description(v *string) *NightmareMapCreate {
	if v != nil {
		_c.SetExtraProperty2Description(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NightmareMapCreate) SetID(v uuid.UUID) *NightmareMapCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NightmareMapCreate) SetNillableID(v *uuid.UUID) *NightmareMapCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *NightmareMapCreate) SetPatient(v *Patient) *NightmareMapCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the NightmareMapMutation object of the builder.
func (_c *NightmareMapCreate) Mutation() *NightmareMapMutation {
	return _c.mutation
}

// Save creates the NightmareMap in the database.
func (_c *NightmareMapCreate) Save(ctx context.Context) (*NightmareMap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NightmareMapCreate) SaveX(ctx context.Context) *NightmareMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NightmareMapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NightmareMapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NightmareMapCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := nightmaremap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := nightmaremap.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Property1Condition(); !ok {
		v := nightmaremap.DefaultProperty1Condition
		_c.mutation.SetProperty1Condition(v)
	}
	if _, ok := _c.mutation.Property1Description(); !ok {
		v := nightmaremap.DefaultProperty1Description
		_c.mutation.SetProperty1Description(v)
	}
	if _, ok := _c.mutation.Property2Condition(); !ok {
		v := nightmaremap.DefaultProperty2Condition
		_c.mutation.SetProperty2Condition(v)
	}
	if _, ok := _c.mutation.Property2Description(); !ok {
		v := nightmaremap.DefaultProperty2Description
		_c.mutation.SetProperty2Description(v)
	}
	if _, ok := _c.mutation.Property3Condition(); !ok {
		v := nightmaremap.DefaultProperty3Condition
		_c.mutation.SetProperty3Condition(v)
	}
	if _, ok := _c.mutation.Property3Description(); !ok {
		v := nightmaremap.DefaultProperty3Description
		_c.mutation.SetProperty3Description(v)
	}
	if _, ok := _c.mutation.Property4Condition(); !ok {
		v := nightmaremap.DefaultProperty4Condition
		_c.mutation.SetProperty4Condition(v)
	}
	if _, ok := _c.mutation.Property4Description(); !ok {
		v := nightmaremap.DefaultProperty4Description
		_c.mutation.SetProperty4Description(v)
	}
	if _, ok := _c.mutation.ExtraProperty1Description(); !ok {
		v := nightmaremap.DefaultExtraProperty1Description
		_c.mutation.SetExtraProperty1Description(v)
	}
	if _, ok := _c.mutation.ExtraProperty2Description(); !ok {
		v := nightmaremap.DefaultExtraProperty2Description
		_c.mutation.SetExtraProperty2Description(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := nightmaremap.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NightmareMapCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "NightmareMap.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "NightmareMap.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "NightmareMap.patient_id"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "NightmareMap.patient"`)}
	}
	return nil
}

func (_c *NightmareMapCreate) sqlSave(ctx context.Context) (*NightmareMap, error) {
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

func (_c *NightmareMapCreate) createSpec() (*NightmareMap, *sqlgraph.CreateSpec) {
	var (
		_node = &NightmareMap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(nightmaremap.Table, sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(nightmaremap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(nightmaremap.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Property1Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty1Condition, field.TypeString, value)
		_node.Property1Condition = value
	}
	if value, ok := _c.mutation.Property1Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty1Description, field.TypeString, value)
		_node.Property1Description = value
	}
	if value, ok := _c.mutation.Property2Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty2Condition, field.TypeString, value)
		_node.Property2Condition = value
	}
	if value, ok := _c.mutation.Property2Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty2Description, field.TypeString, value)
		_node.Property2Description = value
	}
	if value, ok := _c.mutation.Property3Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty3Condition, field.TypeString, value)
		_node.Property3Condition = value
	}
	if value, ok := _c.mutation.Property3Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty3Description, field.TypeString, value)
		_node.Property3Description = value
	}
	if value, ok := _c.mutation.Property4Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty4Condition, field.TypeString, value)
		_node.Property4Condition = value
	}
	if value, ok := _c.mutation.Property4Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty4Description, field.TypeString, value)
		_node.Property4Description = value
	}
	if value, ok := _c.mutation.ExtraProperty1Description(); ok {
		_spec.SetField(nightmaremap.FieldExtraProperty1Description, field.TypeString, value)
		_node.ExtraProperty1Description = value
	}
	if value, ok := _c.mutation.ExtraProperty2Description(); ok {
		_spec.SetField(nightmaremap.FieldExtraProperty2Description, field.TypeString, value)
		_node.ExtraProperty2Description = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   nightmaremap.PatientTable,
			Columns: []string{nightmaremap.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NightmareMap.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NightmareMapUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NightmareMapCreate) OnConflict(opts ...sql.ConflictOption) *NightmareMapUpsertOne {
	_c.conflict = opts
	return &NightmareMapUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NightmareMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NightmareMapCreate) OnConflictColumns(columns ...string) *NightmareMapUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NightmareMapUpsertOne{
		create: _c,
	}
}

type (
	// NightmareMapUpsertOne is the builder for "upsert"-ing
	//  one NightmareMap node.
	NightmareMapUpsertOne struct {
		create *NightmareMapCreate
	}

	// NightmareMapUpsert is the "OnConflict" setter.
	NightmareMapUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *NightmareMapUpsert) SetUpdatedAt(v time.Time) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateUpdatedAt() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *NightmareMapUpsert) SetPatientID(v uuid.UUID) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdatePatientID() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldPatientID)
	return u
}

// SetProperty1Condition sets the "property_1_condition" field.
func (u *NightmareMapUpsert) SetProperty1Condition(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty1Condition, v)
	return u
}

// UpdateProperty1Condition sets the "property_1_condition" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty1Condition() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty1Condition)
	return u
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (u *NightmareMapUpsert) ClearProperty1Condition() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty1Condition)
	return u
}

// SetProperty1Description sets the "property_1_description" field.
func (u *NightmareMapUpsert) SetProperty1Description(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty1Description, v)
	return u
}

// UpdateProperty1Description sets the "property_1_description" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty1Description() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty1Description)
	return u
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (u *NightmareMapUpsert) ClearProperty1Description() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty1Description)
	return u
}

// SetProperty2Condition sets the "property_2_condition" field.
func (u *NightmareMapUpsert) SetProperty2Condition(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty2Condition, v)
	return u
}

// UpdateProperty2Condition sets the "property_2_condition" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty2Condition() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty2Condition)
	return u
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (u *NightmareMapUpsert) ClearProperty2Condition() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty2Condition)
	return u
}

// SetProperty2Description sets the "property_2_description" field.
func (u *NightmareMapUpsert) SetProperty2Description(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty2Description, v)
	return u
}

// UpdateProperty2Description sets the "property_2_description" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty2Description() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty2Description)
	return u
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (u *NightmareMapUpsert) ClearProperty2Description() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty2Description)
	return u
}

// SetProperty3Condition sets the "property_3_condition" field.
func (u *NightmareMapUpsert) SetProperty3Condition(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty3Condition, v)
	return u
}

// UpdateProperty3Condition sets the "property_3_condition" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty3Condition() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty3Condition)
	return u
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (u *NightmareMapUpsert) ClearProperty3Condition() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty3Condition)
	return u
}

// SetProperty3Description sets the "property_3_description" field.
func (u *NightmareMapUpsert) SetProperty3Description(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty3Description, v)
	return u
}

// UpdateProperty3Description sets the "property_3_description" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty3Description() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty3Description)
	return u
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (u *NightmareMapUpsert) ClearProperty3Description() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty3Description)
	return u
}

// SetProperty4Condition sets the "property_4_condition" field.
func (u *NightmareMapUpsert) SetProperty4Condition(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty4Condition, v)
	return u
}

// UpdateProperty4Condition sets the "property_4_condition" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty4Condition() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty4Condition)
	return u
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (u *NightmareMapUpsert) ClearProperty4Condition() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty4Condition)
	return u
}

// SetProperty4Description sets the "property_4_description" field.
func (u *NightmareMapUpsert) SetProperty4Description(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldProperty4Description, v)
	return u
}

// UpdateProperty4Description sets the "property_4_description" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateProperty4Description() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldProperty4Description)
	return u
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (u *NightmareMapUpsert) ClearProperty4Description() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldProperty4Description)
	return u
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (u *NightmareMapUpsert) SetExtraProperty1Description(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldExtraProperty1Description, v)
	return u
}

// UpdateExtraProperty1Description sets the "extra_property_1_description" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateExtraProperty1Description() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldExtraProperty1Description)
	return u
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (u *NightmareMapUpsert) ClearExtraProperty1Description() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldExtraProperty1Description)
	return u
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (u *NightmareMapUpsert) SetExtraProperty2Description(v string) *NightmareMapUpsert {
	u.Set(nightmaremap.FieldExtraProperty2Description, v)
	return u
}

// UpdateExtraProperty2Description sets the "extra_property_2_description" field to the value that was provided on create.
func (u *NightmareMapUpsert) UpdateExtraProperty2Description() *NightmareMapUpsert {
	u.SetExcluded(nightmaremap.FieldExtraProperty2Description)
	return u
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (u *NightmareMapUpsert) ClearExtraProperty2Description() *NightmareMapUpsert {
	u.SetNull(nightmaremap.FieldExtraProperty2Description)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.NightmareMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(nightmaremap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NightmareMapUpsertOne) UpdateNewValues() *NightmareMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(nightmaremap.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(nightmaremap.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NightmareMap.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *NightmareMapUpsertOne) Ignore() *NightmareMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NightmareMapUpsertOne) DoNothing() *NightmareMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NightmareMapCreate.OnConflict
// documentation for more info.
func (u *NightmareMapUpsertOne) Update(set func(*NightmareMapUpsert)) *NightmareMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NightmareMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NightmareMapUpsertOne) SetUpdatedAt(v time.Time) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateUpdatedAt() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *NightmareMapUpsertOne) SetPatientID(v uuid.UUID) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdatePatientID() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdatePatientID()
	})
}

// SetProperty1Condition sets the "property_1_condition" field.
func (u *NightmareMapUpsertOne) SetProperty1Condition(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty1Condition(v)
	})
}

// UpdateProperty1Condition sets the "property_1_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty1Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty1Condition()
	})
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (u *NightmareMapUpsertOne) ClearProperty1Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty1Condition()
	})
}

// SetProperty1Description sets the "property_1_description" field.
func (u *NightmareMapUpsertOne) SetProperty1Description(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty1Description(v)
	})
}

// UpdateProperty1Description sets the "property_1_description" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty1Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty1Description()
	})
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (u *NightmareMapUpsertOne) ClearProperty1Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty1Description()
	})
}

// SetProperty2Condition sets the "property_2_condition" field.
func (u *NightmareMapUpsertOne) SetProperty2Condition(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty2Condition(v)
	})
}

// UpdateProperty2Condition sets the "property_2_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty2Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty2Condition()
	})
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (u *NightmareMapUpsertOne) ClearProperty2Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty2Condition()
	})
}

// SetProperty2Description sets the "property_2_description" field.
func (u *NightmareMapUpsertOne) SetProperty2Description(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty2Description(v)
	})
}

// UpdateProperty2Description sets the "property_2_description" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty2Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty2Description()
	})
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (u *NightmareMapUpsertOne) ClearProperty2Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty2Description()
	})
}

// SetProperty3Condition sets the "property_3_condition" field.
func (u *NightmareMapUpsertOne) SetProperty3Condition(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty3Condition(v)
	})
}

// UpdateProperty3Condition sets the "property_3_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty3Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty3Condition()
	})
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (u *NightmareMapUpsertOne) ClearProperty3Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty3Condition()
	})
}

// SetProperty3Description sets the "property_3_description" field.
func (u *NightmareMapUpsertOne) SetProperty3Description(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty3Description(v)
	})
}

// UpdateProperty3Description sets the "property_3_description" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty3Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty3Description()
	})
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (u *NightmareMapUpsertOne) ClearProperty3Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty3Description()
	})
}

// SetProperty4Condition sets the "property_4_condition" field.
func (u *NightmareMapUpsertOne) SetProperty4Condition(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty4Condition(v)
	})
}

// UpdateProperty4Condition sets the "property_4_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty4Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty4Condition()
	})
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (u *NightmareMapUpsertOne) ClearProperty4Condition() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty4Condition()
	})
}

// SetProperty4Description sets the "property_4_description" field.
func (u *NightmareMapUpsertOne) SetProperty4Description(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty4Description(v)
	})
}

// UpdateProperty4Description sets the "property_4_description" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateProperty4Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty4Description()
	})
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (u *NightmareMapUpsertOne) ClearProperty4Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty4Description()
	})
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (u *NightmareMapUpsertOne) SetExtraProperty1Description(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetExtraProperty1Description(v)
	})
}

// UpdateExtraProperty1Description sets the "extra_property_1_description" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateExtraProperty1Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateExtraProperty1Description()
	})
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (u *NightmareMapUpsertOne) ClearExtraProperty1Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearExtraProperty1Description()
	})
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (u *NightmareMapUpsertOne) SetExtraProperty2Description(v string) *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetExtraProperty2Description(v)
	})
}

// UpdateExtraProperty2Description sets the "extra_property_2_description" field to the value that was provided on create.
func (u *NightmareMapUpsertOne) UpdateExtraProperty2Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateExtraProperty2Description()
	})
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (u *NightmareMapUpsertOne) ClearExtraProperty2Description() *NightmareMapUpsertOne {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearExtraProperty2Description()
	})
}

// Exec executes the query.
func (u *NightmareMapUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NightmareMapCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NightmareMapUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *NightmareMapUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: NightmareMapUpsertOne.ID is not supported by MySQL driver. Use NightmareMapUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *NightmareMapUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// NightmareMapCreateBulk is the builder for creating many NightmareMap entities in bulk.
type NightmareMapCreateBulk struct {
	config
	err      error
	builders []*NightmareMapCreate
	conflict []sql.ConflictOption
}

// Save creates the NightmareMap entities in the database.
func (_c *NightmareMapCreateBulk) Save(ctx context.Context) ([]*NightmareMap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NightmareMap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NightmareMapMutation)
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
func (_c *NightmareMapCreateBulk) SaveX(ctx context.Context) []*NightmareMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NightmareMapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NightmareMapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.NightmareMap.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.NightmareMapUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *NightmareMapCreateBulk) OnConflict(opts ...sql.ConflictOption) *NightmareMapUpsertBulk {
	_c.conflict = opts
	return &NightmareMapUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.NightmareMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *NightmareMapCreateBulk) OnConflictColumns(columns ...string) *NightmareMapUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &NightmareMapUpsertBulk{
		create: _c,
	}
}

// NightmareMapUpsertBulk is the builder for "upsert"-ing
// a bulk of NightmareMap nodes.
type NightmareMapUpsertBulk struct {
	create *NightmareMapCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.NightmareMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(nightmaremap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *NightmareMapUpsertBulk) UpdateNewValues() *NightmareMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(nightmaremap.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(nightmaremap.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.NightmareMap.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *NightmareMapUpsertBulk) Ignore() *NightmareMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *NightmareMapUpsertBulk) DoNothing() *NightmareMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the NightmareMapCreateBulk.OnConflict
// documentation for more info.
func (u *NightmareMapUpsertBulk) Update(set func(*NightmareMapUpsert)) *NightmareMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&NightmareMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *NightmareMapUpsertBulk) SetUpdatedAt(v time.Time) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateUpdatedAt() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *NightmareMapUpsertBulk) SetPatientID(v uuid.UUID) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdatePatientID() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdatePatientID()
	})
}

// SetProperty1Condition sets the "property_1_condition" field.
func (u *NightmareMapUpsertBulk) SetProperty1Condition(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty1Condition(v)
	})
}

// UpdateProperty1Condition sets the "property_1_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty1Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty1Condition()
	})
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (u *NightmareMapUpsertBulk) ClearProperty1Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty1Condition()
	})
}

// SetProperty1Description sets the "property_1_description" field.
func (u *NightmareMapUpsertBulk) SetProperty1Description(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty1Description(v)
	})
}

// UpdateProperty1Description sets the "property_1_description" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty1Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty1Description()
	})
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (u *NightmareMapUpsertBulk) ClearProperty1Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty1Description()
	})
}

// SetProperty2Condition sets the "property_2_condition" field.
func (u *NightmareMapUpsertBulk) SetProperty2Condition(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty2Condition(v)
	})
}

// UpdateProperty2Condition sets the "property_2_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty2Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty2Condition()
	})
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (u *NightmareMapUpsertBulk) ClearProperty2Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty2Condition()
	})
}

// SetProperty2Description sets the "property_2_description" field.
func (u *NightmareMapUpsertBulk) SetProperty2Description(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty2Description(v)
	})
}

// UpdateProperty2Description sets the "property_2_description" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty2Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty2Description()
	})
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (u *NightmareMapUpsertBulk) ClearProperty2Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty2Description()
	})
}

// SetProperty3Condition sets the "property_3_condition" field.
func (u *NightmareMapUpsertBulk) SetProperty3Condition(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty3Condition(v)
	})
}

// UpdateProperty3Condition sets the "property_3_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty3Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty3Condition()
	})
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (u *NightmareMapUpsertBulk) ClearProperty3Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty3Condition()
	})
}

// SetProperty3Description sets the "property_3_description" field.
func (u *NightmareMapUpsertBulk) SetProperty3Description(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty3Description(v)
	})
}

// UpdateProperty3Description sets the "property_3_description" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty3Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty3Description()
	})
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (u *NightmareMapUpsertBulk) ClearProperty3Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty3Description()
	})
}

// SetProperty4Condition sets the "property_4_condition" field.
func (u *NightmareMapUpsertBulk) SetProperty4Condition(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty4Condition(v)
	})
}

// UpdateProperty4Condition sets the "property_4_condition" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty4Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty4Condition()
	})
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (u *NightmareMapUpsertBulk) ClearProperty4Condition() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty4Condition()
	})
}

// SetProperty4Description sets the "property_4_description" field.
func (u *NightmareMapUpsertBulk) SetProperty4Description(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetProperty4Description(v)
	})
}

// UpdateProperty4Description sets the "property_4_description" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateProperty4Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateProperty4Description()
	})
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (u *NightmareMapUpsertBulk) ClearProperty4Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearProperty4Description()
	})
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (u *NightmareMapUpsertBulk) SetExtraProperty1Description(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetExtraProperty1Description(v)
	})
}

// UpdateExtraProperty1Description sets the "extra_property_1_description" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateExtraProperty1Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateExtraProperty1Description()
	})
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (u *NightmareMapUpsertBulk) ClearExtraProperty1Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearExtraProperty1Description()
	})
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (u *NightmareMapUpsertBulk) SetExtraProperty2Description(v string) *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.SetExtraProperty2Description(v)
	})
}

// UpdateExtraProperty2Description sets the "extra_property_2_description" field to the value that was provided on create.
func (u *NightmareMapUpsertBulk) UpdateExtraProperty2Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.UpdateExtraProperty2Description()
	})
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (u *NightmareMapUpsertBulk) ClearExtraProperty2Description() *NightmareMapUpsertBulk {
	return u.Update(func(s *NightmareMapUpsert) {
		s.ClearExtraProperty2Description()
	})
}

// Exec executes the query.
func (u *NightmareMapUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the NightmareMapCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for NightmareMapCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *NightmareMapUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

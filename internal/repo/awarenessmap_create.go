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
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// AwarenessMapCreate is the builder for creating a AwarenessMap entity.
type AwarenessMapCreate struct {
	config
	mutation *AwarenessMapMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AwarenessMapCreate) SetCreatedAt(v time.Time) *AwarenessMapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableCreatedAt(v *time.Time) *AwarenessMapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AwarenessMapCreate) SetUpdatedAt(v time.Time) *AwarenessMapCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableUpdatedAt(v *time.Time) *AwarenessMapCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *AwarenessMapCreate) SetPatientID(v uuid.UUID) *AwarenessMapCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetProperty1Condition sets the "property_1_condition" field.
func (_c *AwarenessMapCreate) SetProperty1Condition(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty1Condition(v)
	return _c
}

// SetNillableProperty1Condition sets the "property_1_condition" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty1Condition(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty1Condition(*v)
	}
	return _c
}

// SetProperty1Description sets the "property_1_description" field.
func (_c *AwarenessMapCreate) SetProperty1Description(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty1Description(v)
	return _c
}

// SetNillableProperty1Description sets the "property_1_description" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty1Description(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty1Description(*v)
	}
	return _c
}

// SetProperty2Condition sets the "property_2_condition" field.
func (_c *AwarenessMapCreate) SetProperty2Condition(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty2Condition(v)
	return _c
}

// SetNillableProperty2Condition sets the "property_2_condition" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty2Condition(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty2Condition(*v)
	}
	return _c
}

// SetProperty2Description sets the "property_2_description" field.
func (_c *AwarenessMapCreate) SetProperty2Description(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty2Description(v)
	return _c
}

// SetNillableProperty2Description sets the "property_2_description" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty2Description(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty2Description(*v)
	}
	return _c
}

// SetProperty3Condition sets the "property_3_condition" field.
func (_c *AwarenessMapCreate) SetProperty3Condition(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty3Condition(v)
	return _c
}

// SetNillableProperty3Condition sets the "property_3_condition" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty3Condition(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty3Condition(*v)
	}
	return _c
}

// SetProperty3Description sets the "property_3_description" field.
func (_c *AwarenessMapCreate) SetProperty3Description(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty3Description(v)
	return _c
}

// SetNillableProperty3Description sets the "property_3_description" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty3Description(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty3Description(*v)
	}
	return _c
}

// SetProperty4Condition sets the "property_4_condition" field.
func (_c *AwarenessMapCreate) SetProperty4Condition(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty4Condition(v)
	return _c
}

// SetNillableProperty4Condition sets the "property_4_condition" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty4Condition(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty4Condition(*v)
	}
	return _c
}

// SetProperty4Description sets the "property_4_description" field.
func (_c *AwarenessMapCreate) SetProperty4Description(v string) *AwarenessMapCreate {
	_c.mutation.SetProperty4Description(v)
	return _c
}

// SetNillableProperty4Description sets the "property_4_description" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableProperty4Description(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetProperty4Description(*v)
	}
	return _c
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (_c *AwarenessMapCreate) SetExtraProperty1Description(v string) *AwarenessMapCreate {
	_c.mutation.SetExtraProperty1Description(v)
	return _c
}

// SetNillableExtraProperty1Description sets the "extra_property_1_description" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableExtraProperty1Description(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetExtraProperty1Description(*v)
	}
	return _c
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (_c *AwarenessMapCreate) SetExtraProperty2Description(v string) *AwarenessMapCreate {
	_c.mutation.SetExtraProperty2Description(v)
	return _c
}

// SetNillableExtraProperty2Description sets the "extra_property_2_description" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableExtraProperty2Description(v *string) *AwarenessMapCreate {
	if v != nil {
		_c.SetExtraProperty2Description(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AwarenessMapCreate) SetID(v uuid.UUID) *AwarenessMapCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AwarenessMapCreate) SetNillableID(v *uuid.UUID) *AwarenessMapCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *AwarenessMapCreate) SetPatient(v *Patient) *AwarenessMapCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the AwarenessMapMutation object of the builder.
func (_c *AwarenessMapCreate) Mutation() *AwarenessMapMutation {
	return _c.mutation
}

// Save creates the AwarenessMap in the database.
func (_c *AwarenessMapCreate) Save(ctx context.Context) (*AwarenessMap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AwarenessMapCreate) SaveX(ctx context.Context) *AwarenessMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwarenessMapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwarenessMapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AwarenessMapCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := awarenessmap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := awarenessmap.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Property1Condition(); !ok {
		v := awarenessmap.DefaultProperty1Condition
		_c.mutation.SetProperty1Condition(v)
	}
	if _, ok := _c.mutation.Property1Description(); !ok {
		v := awarenessmap.DefaultProperty1Description
		_c.mutation.SetProperty1Description(v)
	}
	if _, ok := _c.mutation.Property2Condition(); !ok {
		v := awarenessmap.DefaultProperty2Condition
		_c.mutation.SetProperty2Condition(v)
	}
	if _, ok := _c.mutation.Property2Description(); !ok {
		v := awarenessmap.DefaultProperty2Description
		_c.mutation.SetProperty2Description(v)
	}
	if _, ok := _c.mutation.Property3Condition(); !ok {
		v := awarenessmap.DefaultProperty3Condition
		_c.mutation.SetProperty3Condition(v)
	}
	if _, ok := _c.mutation.Property3Description(); !ok {
		v := awarenessmap.DefaultProperty3Description
		_c.mutation.SetProperty3Description(v)
	}
	if _, ok := _c.mutation.Property4Condition(); !ok {
		v := awarenessmap.DefaultProperty4Condition
		_c.mutation.SetProperty4Condition(v)
	}
	if _, ok := _c.mutation.Property4Description(); !ok {
		v := awarenessmap.DefaultProperty4Description
		_c.mutation.SetProperty4Description(v)
	}
	if _, ok := _c.mutation.ExtraProperty1Description(); !ok {
		v := awarenessmap.DefaultExtraProperty1Description
		_c.mutation.SetExtraProperty1Description(v)
	}
	if _, ok := _c.mutation.ExtraProperty2Description(); !ok {
		v := awarenessmap.DefaultExtraProperty2Description
		_c.mutation.SetExtraProperty2Description(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := awarenessmap.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AwarenessMapCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "AwarenessMap.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "AwarenessMap.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "AwarenessMap.patient_id"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "AwarenessMap.patient"`)}
	}
	return nil
}

func (_c *AwarenessMapCreate) sqlSave(ctx context.Context) (*AwarenessMap, error) {
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

func (_c *AwarenessMapCreate) createSpec() (*AwarenessMap, *sqlgraph.CreateSpec) {
	var (
		_node = &AwarenessMap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(awarenessmap.Table, sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(awarenessmap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(awarenessmap.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Property1Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty1Condition, field.TypeString, value)
		_node.Property1Condition = value
	}
	if value, ok := _c.mutation.Property1Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty1Description, field.TypeString, value)
		_node.Property1Description = value
	}
	if value, ok := _c.mutation.Property2Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty2Condition, field.TypeString, value)
		_node.Property2Condition = value
	}
	if value, ok := _c.mutation.Property2Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty2Description, field.TypeString, value)
		_node.Property2Description = value
	}
	if value, ok := _c.mutation.Property3Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty3Condition, field.TypeString, value)
		_node.Property3Condition = value
	}
	if value, ok := _c.mutation.Property3Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty3Description, field.TypeString, value)
		_node.Property3Description = value
	}
	if value, ok := _c.mutation.Property4Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty4Condition, field.TypeString, value)
		_node.Property4Condition = value
	}
	if value, ok := _c.mutation.Property4Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty4Description, field.TypeString, value)
		_node.Property4Description = value
	}
	if value, ok := _c.mutation.ExtraProperty1Description(); ok {
		_spec.SetField(awarenessmap.FieldExtraProperty1Description, field.TypeString, value)
		_node.ExtraProperty1Description = value
	}
	if value, ok := _c.mutation.ExtraProperty2Description(); ok {
		_spec.SetField(awarenessmap.FieldExtraProperty2Description, field.TypeString, value)
		_node.ExtraProperty2Description = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   awarenessmap.PatientTable,
			Columns: []string{awarenessmap.PatientColumn},
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
//	client.AwarenessMap.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AwarenessMapUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AwarenessMapCreate) OnConflict(opts ...sql.ConflictOption) *AwarenessMapUpsertOne {
	_c.conflict = opts
	return &AwarenessMapUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AwarenessMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AwarenessMapCreate) OnConflictColumns(columns ...string) *AwarenessMapUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AwarenessMapUpsertOne{
		create: _c,
	}
}

type (
	// AwarenessMapUpsertOne is the builder for "upsert"-ing
	//  one AwarenessMap node.
	AwarenessMapUpsertOne struct {
		create *AwarenessMapCreate
	}

	// AwarenessMapUpsert is the "OnConflict" setter.
	AwarenessMapUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AwarenessMapUpsert) SetUpdatedAt(v time.Time) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateUpdatedAt() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *AwarenessMapUpsert) SetPatientID(v uuid.UUID) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdatePatientID() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldPatientID)
	return u
}

// SetProperty1Condition sets the "property_1_condition" field.
func (u *AwarenessMapUpsert) SetProperty1Condition(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty1Condition, v)
	return u
}

// UpdateProperty1Condition sets the "property_1_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty1Condition() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty1Condition)
	return u
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (u *AwarenessMapUpsert) ClearProperty1Condition() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty1Condition)
	return u
}

// SetProperty1Description sets the "property_1_description" field.
func (u *AwarenessMapUpsert) SetProperty1Description(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty1Description, v)
	return u
}

// UpdateProperty1Description sets the "property_1_description" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty1Description() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty1Description)
	return u
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (u *AwarenessMapUpsert) ClearProperty1Description() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty1Description)
	return u
}

// SetProperty2Condition sets the "property_2_condition" field.
func (u *AwarenessMapUpsert) SetProperty2Condition(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty2Condition, v)
	return u
}

// UpdateProperty2Condition sets the "property_2_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty2Condition() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty2Condition)
	return u
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (u *AwarenessMapUpsert) ClearProperty2Condition() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty2Condition)
	return u
}

// SetProperty2Description sets the "property_2_description" field.
func (u *AwarenessMapUpsert) SetProperty2Description(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty2Description, v)
	return u
}

// UpdateProperty2Description sets the "property_2_description" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty2Description() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty2Description)
	return u
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (u *AwarenessMapUpsert) ClearProperty2Description() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty2Description)
	return u
}

// SetProperty3Condition sets the "property_3_condition" field.
func (u *AwarenessMapUpsert) SetProperty3Condition(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty3Condition, v)
	return u
}

// UpdateProperty3Condition sets the "property_3_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty3Condition() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty3Condition)
	return u
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (u *AwarenessMapUpsert) ClearProperty3Condition() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty3Condition)
	return u
}

// SetProperty3Description sets the "property_3_description" field.
func (u *AwarenessMapUpsert) SetProperty3Description(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty3Description, v)
	return u
}

// UpdateProperty3Description sets the "property_3_description" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty3Description() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty3Description)
	return u
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (u *AwarenessMapUpsert) ClearProperty3Description() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty3Description)
	return u
}

// SetProperty4Condition sets the "property_4_condition" field.
func (u *AwarenessMapUpsert) SetProperty4Condition(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty4Condition, v)
	return u
}

// UpdateProperty4Condition sets the "property_4_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty4Condition() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty4Condition)
	return u
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (u *AwarenessMapUpsert) ClearProperty4Condition() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty4Condition)
	return u
}

// SetProperty4Description sets the "property_4_description" field.
func (u *AwarenessMapUpsert) SetProperty4Description(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldProperty4Description, v)
	return u
}

// UpdateProperty4Description sets the "property_4_description" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateProperty4Description() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldProperty4Description)
	return u
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (u *AwarenessMapUpsert) ClearProperty4Description() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldProperty4Description)
	return u
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (u *AwarenessMapUpsert) SetExtraProperty1Description(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldExtraProperty1Description, v)
	return u
}

// UpdateExtraProperty1Description sets the "extra_property_1_description" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateExtraProperty1Description() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldExtraProperty1Description)
	return u
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (u *AwarenessMapUpsert) ClearExtraProperty1Description() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldExtraProperty1Description)
	return u
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (u *AwarenessMapUpsert) SetExtraProperty2Description(v string) *AwarenessMapUpsert {
	u.Set(awarenessmap.FieldExtraProperty2Description, v)
	return u
}

// UpdateExtraProperty2Description sets the "extra_property_2_description" field to the value that was provided on create.
func (u *AwarenessMapUpsert) UpdateExtraProperty2Description() *AwarenessMapUpsert {
	u.SetExcluded(awarenessmap.FieldExtraProperty2Description)
	return u
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (u *AwarenessMapUpsert) ClearExtraProperty2Description() *AwarenessMapUpsert {
	u.SetNull(awarenessmap.FieldExtraProperty2Description)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AwarenessMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(awarenessmap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AwarenessMapUpsertOne) UpdateNewValues() *AwarenessMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(awarenessmap.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(awarenessmap.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AwarenessMap.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AwarenessMapUpsertOne) Ignore() *AwarenessMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AwarenessMapUpsertOne) DoNothing() *AwarenessMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AwarenessMapCreate.OnConflict
// documentation for more info.
func (u *AwarenessMapUpsertOne) Update(set func(*AwarenessMapUpsert)) *AwarenessMapUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AwarenessMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AwarenessMapUpsertOne) SetUpdatedAt(v time.Time) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateUpdatedAt() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AwarenessMapUpsertOne) SetPatientID(v uuid.UUID) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdatePatientID() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdatePatientID()
	})
}

// SetProperty1Condition sets the "property_1_condition" field.
func (u *AwarenessMapUpsertOne) SetProperty1Condition(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty1Condition(v)
	})
}

// UpdateProperty1Condition sets the "property_1_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty1Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty1Condition()
	})
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (u *AwarenessMapUpsertOne) ClearProperty1Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty1Condition()
	})
}

// SetProperty1Description sets the "property_1_description" field.
func (u *AwarenessMapUpsertOne) SetProperty1Description(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty1Description(v)
	})
}

// UpdateProperty1Description sets the "property_1_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty1Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty1Description()
	})
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (u *AwarenessMapUpsertOne) ClearProperty1Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty1Description()
	})
}

// SetProperty2Condition sets the "property_2_condition" field.
func (u *AwarenessMapUpsertOne) SetProperty2Condition(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty2Condition(v)
	})
}

// UpdateProperty2Condition sets the "property_2_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty2Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty2Condition()
	})
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (u *AwarenessMapUpsertOne) ClearProperty2Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty2Condition()
	})
}

// SetProperty2Description sets the "property_2_description" field.
func (u *AwarenessMapUpsertOne) SetProperty2Description(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty2Description(v)
	})
}

// UpdateProperty2Description sets the "property_2_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty2Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty2Description()
	})
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (u *AwarenessMapUpsertOne) ClearProperty2Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty2Description()
	})
}

// SetProperty3Condition sets the "property_3_condition" field.
func (u *AwarenessMapUpsertOne) SetProperty3Condition(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty3Condition(v)
	})
}

// UpdateProperty3Condition sets the "property_3_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty3Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty3Condition()
	})
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (u *AwarenessMapUpsertOne) ClearProperty3Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty3Condition()
	})
}

// SetProperty3Description sets the "property_3_description" field.
func (u *AwarenessMapUpsertOne) SetProperty3Description(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty3Description(v)
	})
}

// UpdateProperty3Description sets the "property_3_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty3Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty3Description()
	})
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (u *AwarenessMapUpsertOne) ClearProperty3Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty3Description()
	})
}

// SetProperty4Condition sets the "property_4_condition" field.
func (u *AwarenessMapUpsertOne) SetProperty4Condition(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty4Condition(v)
	})
}

// UpdateProperty4Condition sets the "property_4_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty4Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty4Condition()
	})
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (u *AwarenessMapUpsertOne) ClearProperty4Condition() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty4Condition()
	})
}

// SetProperty4Description sets the "property_4_description" field.
func (u *AwarenessMapUpsertOne) SetProperty4Description(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty4Description(v)
	})
}

// UpdateProperty4Description sets the "property_4_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateProperty4Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty4Description()
	})
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (u *AwarenessMapUpsertOne) ClearProperty4Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty4Description()
	})
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (u *AwarenessMapUpsertOne) SetExtraProperty1Description(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetExtraProperty1Description(v)
	})
}

// UpdateExtraProperty1Description sets the "extra_property_1_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateExtraProperty1Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateExtraProperty1Description()
	})
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (u *AwarenessMapUpsertOne) ClearExtraProperty1Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearExtraProperty1Description()
	})
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (u *AwarenessMapUpsertOne) SetExtraProperty2Description(v string) *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetExtraProperty2Description(v)
	})
}

// UpdateExtraProperty2Description sets the "extra_property_2_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertOne) UpdateExtraProperty2Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateExtraProperty2Description()
	})
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (u *AwarenessMapUpsertOne) ClearExtraProperty2Description() *AwarenessMapUpsertOne {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearExtraProperty2Description()
	})
}

// Exec executes the query.
func (u *AwarenessMapUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AwarenessMapCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AwarenessMapUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AwarenessMapUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AwarenessMapUpsertOne.ID is not supported by MySQL driver. Use AwarenessMapUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AwarenessMapUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AwarenessMapCreateBulk is the builder for creating many AwarenessMap entities in bulk.
type AwarenessMapCreateBulk struct {
	config
	err      error
	builders []*AwarenessMapCreate
	conflict []sql.ConflictOption
}

// Save creates the AwarenessMap entities in the database.
func (_c *AwarenessMapCreateBulk) Save(ctx context.Context) ([]*AwarenessMap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AwarenessMap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AwarenessMapMutation)
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
func (_c *AwarenessMapCreateBulk) SaveX(ctx context.Context) []*AwarenessMap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwarenessMapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwarenessMapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AwarenessMap.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AwarenessMapUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AwarenessMapCreateBulk) OnConflict(opts ...sql.ConflictOption) *AwarenessMapUpsertBulk {
	_c.conflict = opts
	return &AwarenessMapUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AwarenessMap.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AwarenessMapCreateBulk) OnConflictColumns(columns ...string) *AwarenessMapUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AwarenessMapUpsertBulk{
		create: _c,
	}
}

// AwarenessMapUpsertBulk is the builder for "upsert"-ing
// a bulk of AwarenessMap nodes.
type AwarenessMapUpsertBulk struct {
	create *AwarenessMapCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AwarenessMap.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(awarenessmap.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AwarenessMapUpsertBulk) UpdateNewValues() *AwarenessMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(awarenessmap.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(awarenessmap.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AwarenessMap.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AwarenessMapUpsertBulk) Ignore() *AwarenessMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AwarenessMapUpsertBulk) DoNothing() *AwarenessMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AwarenessMapCreateBulk.OnConflict
// documentation for more info.
func (u *AwarenessMapUpsertBulk) Update(set func(*AwarenessMapUpsert)) *AwarenessMapUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AwarenessMapUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AwarenessMapUpsertBulk) SetUpdatedAt(v time.Time) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateUpdatedAt() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *AwarenessMapUpsertBulk) SetPatientID(v uuid.UUID) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdatePatientID() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdatePatientID()
	})
}

// SetProperty1Condition sets the "property_1_condition" field.
func (u *AwarenessMapUpsertBulk) SetProperty1Condition(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty1Condition(v)
	})
}

// UpdateProperty1Condition sets the "property_1_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty1Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty1Condition()
	})
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (u *AwarenessMapUpsertBulk) ClearProperty1Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty1Condition()
	})
}

// SetProperty1Description sets the "property_1_description" field.
func (u *AwarenessMapUpsertBulk) SetProperty1Description(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty1Description(v)
	})
}

// UpdateProperty1Description sets the "property_1_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty1Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty1Description()
	})
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (u *AwarenessMapUpsertBulk) ClearProperty1Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty1Description()
	})
}

// SetProperty2Condition sets the "property_2_condition" field.
func (u *AwarenessMapUpsertBulk) SetProperty2Condition(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty2Condition(v)
	})
}

// UpdateProperty2Condition sets the "property_2_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty2Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty2Condition()
	})
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (u *AwarenessMapUpsertBulk) ClearProperty2Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty2Condition()
	})
}

// SetProperty2Description sets the "property_2_description" field.
func (u *AwarenessMapUpsertBulk) SetProperty2Description(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty2Description(v)
	})
}

// UpdateProperty2Description sets the "property_2_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty2Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty2Description()
	})
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (u *AwarenessMapUpsertBulk) ClearProperty2Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty2Description()
	})
}

// SetProperty3Condition sets the "property_3_condition" field.
func (u *AwarenessMapUpsertBulk) SetProperty3Condition(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty3Condition(v)
	})
}

// UpdateProperty3Condition sets the "property_3_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty3Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty3Condition()
	})
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (u *AwarenessMapUpsertBulk) ClearProperty3Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty3Condition()
	})
}

// SetProperty3Description sets the "property_3_description" field.
func (u *AwarenessMapUpsertBulk) SetProperty3Description(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty3Description(v)
	})
}

// UpdateProperty3Description sets the "property_3_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty3Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty3Description()
	})
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (u *AwarenessMapUpsertBulk) ClearProperty3Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty3Description()
	})
}

// SetProperty4Condition sets the "property_4_condition" field.
func (u *AwarenessMapUpsertBulk) SetProperty4Condition(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty4Condition(v)
	})
}

// UpdateProperty4Condition sets the "property_4_condition" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty4Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty4Condition()
	})
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (u *AwarenessMapUpsertBulk) ClearProperty4Condition() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty4Condition()
	})
}

// SetProperty4Description sets the "property_4_description" field.
func (u *AwarenessMapUpsertBulk) SetProperty4Description(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetProperty4Description(v)
	})
}

// UpdateProperty4Description sets the "property_4_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateProperty4Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateProperty4Description()
	})
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (u *AwarenessMapUpsertBulk) ClearProperty4Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearProperty4Description()
	})
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (u *AwarenessMapUpsertBulk) SetExtraProperty1Description(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetExtraProperty1Description(v)
	})
}

// UpdateExtraProperty1Description sets the "extra_property_1_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateExtraProperty1Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateExtraProperty1Description()
	})
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (u *AwarenessMapUpsertBulk) ClearExtraProperty1Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearExtraProperty1Description()
	})
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (u *AwarenessMapUpsertBulk) SetExtraProperty2Description(v string) *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.SetExtraProperty2Description(v)
	})
}

// UpdateExtraProperty2Description sets the "extra_property_2_description" field to the value that was provided on create.
func (u *AwarenessMapUpsertBulk) UpdateExtraProperty2Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.UpdateExtraProperty2Description()
	})
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (u *AwarenessMapUpsertBulk) ClearExtraProperty2Description() *AwarenessMapUpsertBulk {
	return u.Update(func(s *AwarenessMapUpsert) {
		s.ClearExtraProperty2Description()
	})
}

// Exec executes the query.
func (u *AwarenessMapUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AwarenessMapCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AwarenessMapCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AwarenessMapUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

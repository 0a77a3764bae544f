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
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// AwarenessMapUpdate is the builder for updating AwarenessMap entities.
type AwarenessMapUpdate struct {
	config
	hooks    []Hook
	mutation *AwarenessMapMutation
}

// Where appends a list predicates to the AwarenessMapUpdate builder.
func (_u *AwarenessMapUpdate) Where(ps ...predicate.AwarenessMap) *AwarenessMapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AwarenessMapUpdate) SetUpdatedAt(v time.Time) *AwarenessMapUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AwarenessMapUpdate) SetPatientID(v uuid.UUID) *AwarenessMapUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillablePatientID(v *uuid.UUID) *AwarenessMapUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProperty1Condition sets the "property_1_condition" field.
func (_u *AwarenessMapUpdate) SetProperty1Condition(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty1Condition(v)
	return _u
}

// SetNillableProperty1Condition sets the "property_1_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty1Condition(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty1Condition(*v)
	}
	return _u
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (_u *AwarenessMapUpdate) ClearProperty1Condition() *AwarenessMapUpdate {
	_u.mutation.ClearProperty1Condition()
	return _u
}

// SetProperty1Description sets the "property_1_description" field.
func (_u *AwarenessMapUpdate) SetProperty1Description(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty1Description(v)
	return _u
}

// SetNillableProperty1Description sets the "property_1_description" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty1Description(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty1Description(*v)
	}
	return _u
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (_u *AwarenessMapUpdate) ClearProperty1Description() *AwarenessMapUpdate {
	_u.mutation.ClearProperty1Description()
	return _u
}

// SetProperty2Condition sets the "property_2_condition" field.
func (_u *AwarenessMapUpdate) SetProperty2Condition(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty2Condition(v)
	return _u
}

// SetNillableProperty2Condition sets the "property_2_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty2Condition(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty2Condition(*v)
	}
	return _u
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (_u *AwarenessMapUpdate) ClearProperty2Condition() *AwarenessMapUpdate {
	_u.mutation.ClearProperty2Condition()
	return _u
}

// SetProperty2Description sets the "property_2_description" field.
func (_u *AwarenessMapUpdate) SetProperty2Description(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty2Description(v)
	return _u
}

// SetNillableProperty2Description sets the "property_2_description" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty2Description(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty2Description(*v)
	}
	return _u
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (_u *AwarenessMapUpdate) ClearProperty2Description() *AwarenessMapUpdate {
	_u.mutation.ClearProperty2Description()
	return _u
}

// SetProperty3Condition sets the "property_3_condition" field.
func (_u *AwarenessMapUpdate) SetProperty3Condition(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty3Condition(v)
	return _u
}

// SetNillableProperty3Condition sets the "property_3_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty3Condition(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty3Condition(*v)
	}
	return _u
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (_u *AwarenessMapUpdate) ClearProperty3Condition() *AwarenessMapUpdate {
	_u.mutation.ClearProperty3Condition()
	return _u
}

// SetProperty3Description sets the "property_3_description" field.
func (_u *AwarenessMapUpdate) SetProperty3Description(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty3Description(v)
	return _u
}

// SetNillableProperty3Description sets the "property_3_description" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty3Description(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty3Description(*v)
	}
	return _u
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (_u *AwarenessMapUpdate) ClearProperty3Description() *AwarenessMapUpdate {
	_u.mutation.ClearProperty3Description()
	return _u
}

// SetProperty4Condition sets the "property_4_condition" field.
func (_u *AwarenessMapUpdate) SetProperty4Condition(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty4Condition(v)
	return _u
}

// SetNillableProperty4Condition sets the "property_4_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty4Condition(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty4Condition(*v)
	}
	return _u
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (_u *AwarenessMapUpdate) ClearProperty4Condition() *AwarenessMapUpdate {
	_u.mutation.ClearProperty4Condition()
	return _u
}

// SetProperty4Description sets the "property_4_description" field.
func (_u *AwarenessMapUpdate) SetProperty4Description(v string) *AwarenessMapUpdate {
	_u.mutation.SetProperty4Description(v)
	return _u
}

// SetNillableProperty4Description sets the "property_4_description" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableProperty4Description(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetProperty4Description(*v)
	}
	return _u
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (_u *AwarenessMapUpdate) ClearProperty4Description() *AwarenessMapUpdate {
	_u.mutation.ClearProperty4Description()
	return _u
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (_u *AwarenessMapUpdate) SetExtraProperty1Description(v string) *AwarenessMapUpdate {
	_u.mutation.SetExtraProperty1Description(v)
	return _u
}

// SetNillableExtraProperty1Description sets the "extra_property_1_description" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableExtraProperty1Description(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetExtraProperty1Description(*v)
	}
	return _u
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (_u *AwarenessMapUpdate) ClearExtraProperty1Description() *AwarenessMapUpdate {
	_u.mutation.ClearExtraProperty1Description()
	return _u
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (_u *AwarenessMapUpdate) SetExtraProperty2Description(v string) *AwarenessMapUpdate {
	_u.mutation.SetExtraProperty2Description(v)
	return _u
}

// SetNillableExtraProperty2Description sets the "extra_property_2_description" field if the given value is not nil.
func (_u *AwarenessMapUpdate) SetNillableExtraProperty2Description(v *string) *AwarenessMapUpdate {
	if v != nil {
		_u.SetExtraProperty2Description(*v)
	}
	return _u
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (_u *AwarenessMapUpdate) ClearExtraProperty2Description() *AwarenessMapUpdate {
	_u.mutation.ClearExtraProperty2Description()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AwarenessMapUpdate) SetPatient(v *Patient) *AwarenessMapUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the AwarenessMapMutation object of the builder.
func (_u *AwarenessMapUpdate) Mutation() *AwarenessMapMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AwarenessMapUpdate) ClearPatient() *AwarenessMapUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AwarenessMapUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwarenessMapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AwarenessMapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwarenessMapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AwarenessMapUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := awarenessmap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwarenessMapUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AwarenessMap.patient"`)
	}
	return nil
}

func (_u *AwarenessMapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(awarenessmap.Table, awarenessmap.Columns, sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(awarenessmap.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty1Condition, field.TypeString, value)
	}
	if _u.mutation.Property1ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty1Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property1Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty1Description, field.TypeString, value)
	}
	if _u.mutation.Property1DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty2Condition, field.TypeString, value)
	}
	if _u.mutation.Property2ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty2Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty2Description, field.TypeString, value)
	}
	if _u.mutation.Property2DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty2Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty3Condition, field.TypeString, value)
	}
	if _u.mutation.Property3ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty3Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty3Description, field.TypeString, value)
	}
	if _u.mutation.Property3DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty3Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty4Condition, field.TypeString, value)
	}
	if _u.mutation.Property4ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty4Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty4Description, field.TypeString, value)
	}
	if _u.mutation.Property4DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty4Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty1Description(); ok {
		_spec.SetField(awarenessmap.FieldExtraProperty1Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty1DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldExtraProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty2Description(); ok {
		_spec.SetField(awarenessmap.FieldExtraProperty2Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty2DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldExtraProperty2Description, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{awarenessmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AwarenessMapUpdateOne is the builder for updating a single AwarenessMap entity.
type AwarenessMapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AwarenessMapMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AwarenessMapUpdateOne) SetUpdatedAt(v time.Time) *AwarenessMapUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AwarenessMapUpdateOne) SetPatientID(v uuid.UUID) *AwarenessMapUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillablePatientID(v *uuid.UUID) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProperty1Condition sets the "property_1_condition" field.
func (_u *AwarenessMapUpdateOne) SetProperty1Condition(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty1Condition(v)
	return _u
}

// SetNillableProperty1Condition sets the "property_1_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty1Condition(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty1Condition(*v)
	}
	return _u
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (_u *AwarenessMapUpdateOne) ClearProperty1Condition() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty1Condition()
	return _u
}

// SetProperty1Description sets the "property_1_description" field.
func (_u *AwarenessMapUpdateOne) SetProperty1Description(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty1Description(v)
	return _u
}

// SetNillableProperty1Description sets the "property_1_description" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty1Description(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty1Description(*v)
	}
	return _u
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (_u *AwarenessMapUpdateOne) ClearProperty1Description() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty1Description()
	return _u
}

// SetProperty2Condition sets the "property_2_condition" field.
func (_u *AwarenessMapUpdateOne) SetProperty2Condition(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty2Condition(v)
	return _u
}

// SetNillableProperty2Condition sets the "property_2_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty2Condition(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty2Condition(*v)
	}
	return _u
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (_u *AwarenessMapUpdateOne) ClearProperty2Condition() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty2Condition()
	return _u
}

// SetProperty2Description sets the "property_2_description" field.
func (_u *AwarenessMapUpdateOne) SetProperty2Description(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty2Description(v)
	return _u
}

// SetNillableProperty2Description sets the "property_2_description" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty2Description(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty2Description(*v)
	}
	return _u
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (_u *AwarenessMapUpdateOne) ClearProperty2Description() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty2Description()
	return _u
}

// SetProperty3Condition sets the "property_3_condition" field.
func (_u *AwarenessMapUpdateOne) SetProperty3Condition(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty3Condition(v)
	return _u
}

// SetNillableProperty3Condition sets the "property_3_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty3Condition(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty3Condition(*v)
	}
	return _u
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (_u *AwarenessMapUpdateOne) ClearProperty3Condition() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty3Condition()
	return _u
}

// SetProperty3Description sets the "property_3_description" field.
func (_u *AwarenessMapUpdateOne) SetProperty3Description(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty3Description(v)
	return _u
}

// SetNillableProperty3Description sets the "property_3_description" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty3Description(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty3Description(*v)
	}
	return _u
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (_u *AwarenessMapUpdateOne) ClearProperty3Description() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty3Description()
	return _u
}

// SetProperty4Condition sets the "property_4_condition" field.
func (_u *AwarenessMapUpdateOne) SetProperty4Condition(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty4Condition(v)
	return _u
}

// SetNillableProperty4Condition sets the "property_4_condition" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty4Condition(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty4Condition(*v)
	}
	return _u
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (_u *AwarenessMapUpdateOne) ClearProperty4Condition() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty4Condition()
	return _u
}

// SetProperty4Description sets the "property_4_description" field.
func (_u *AwarenessMapUpdateOne) SetProperty4Description(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetProperty4Description(v)
	return _u
}

// SetNillableProperty4Description sets the "property_4_description" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableProperty4Description(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetProperty4Description(*v)
	}
	return _u
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (_u *AwarenessMapUpdateOne) ClearProperty4Description() *AwarenessMapUpdateOne {
	_u.mutation.ClearProperty4Description()
	return _u
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (_u *AwarenessMapUpdateOne) SetExtraProperty1Description(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetExtraProperty1Description(v)
	return _u
}

// SetNillableExtraProperty1Description sets the "extra_property_1_description" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableExtraProperty1Description(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetExtraProperty1Description(*v)
	}
	return _u
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (_u *AwarenessMapUpdateOne) ClearExtraProperty1Description() *AwarenessMapUpdateOne {
	_u.mutation.ClearExtraProperty1Description()
	return _u
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (_u *AwarenessMapUpdateOne) SetExtraProperty2Description(v string) *AwarenessMapUpdateOne {
	_u.mutation.SetExtraProperty2Description(v)
	return _u
}

// SetNillableExtraProperty2Description sets the "extra_property_2_description" field if the given value is not nil.
func (_u *AwarenessMapUpdateOne) SetNillableExtraProperty2Description(v *string) *AwarenessMapUpdateOne {
	if v != nil {
		_u.SetExtraProperty2Description(*v)
	}
	return _u
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (_u *AwarenessMapUpdateOne) ClearExtraProperty2Description() *AwarenessMapUpdateOne {
	_u.mutation.ClearExtraProperty2Description()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *AwarenessMapUpdateOne) SetPatient(v *Patient) *AwarenessMapUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the AwarenessMapMutation object of the builder.
func (_u *AwarenessMapUpdateOne) Mutation() *AwarenessMapMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *AwarenessMapUpdateOne) ClearPatient() *AwarenessMapUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the AwarenessMapUpdate builder.
func (_u *AwarenessMapUpdateOne) Where(ps ...predicate.AwarenessMap) *AwarenessMapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AwarenessMapUpdateOne) Select(field string, fields ...string) *AwarenessMapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AwarenessMap entity.
func (_u *AwarenessMapUpdateOne) Save(ctx context.Context) (*AwarenessMap, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwarenessMapUpdateOne) SaveX(ctx context.Context) *AwarenessMap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AwarenessMapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwarenessMapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AwarenessMapUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := awarenessmap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwarenessMapUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "AwarenessMap.patient"`)
	}
	return nil
}

func (_u *AwarenessMapUpdateOne) sqlSave(ctx context.Context) (_node *AwarenessMap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(awarenessmap.Table, awarenessmap.Columns, sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "AwarenessMap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, awarenessmap.FieldID)
		for _, f := range fields {
			if !awarenessmap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != awarenessmap.FieldID {
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
		_spec.SetField(awarenessmap.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty1Condition, field.TypeString, value)
	}
	if _u.mutation.Property1ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty1Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property1Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty1Description, field.TypeString, value)
	}
	if _u.mutation.Property1DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty2Condition, field.TypeString, value)
	}
	if _u.mutation.Property2ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty2Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty2Description, field.TypeString, value)
	}
	if _u.mutation.Property2DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty2Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty3Condition, field.TypeString, value)
	}
	if _u.mutation.Property3ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty3Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty3Description, field.TypeString, value)
	}
	if _u.mutation.Property3DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty3Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Condition(); ok {
		_spec.SetField(awarenessmap.FieldProperty4Condition, field.TypeString, value)
	}
	if _u.mutation.Property4ConditionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty4Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Description(); ok {
		_spec.SetField(awarenessmap.FieldProperty4Description, field.TypeString, value)
	}
	if _u.mutation.Property4DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldProperty4Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty1Description(); ok {
		_spec.SetField(awarenessmap.FieldExtraProperty1Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty1DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldExtraProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty2Description(); ok {
		_spec.SetField(awarenessmap.FieldExtraProperty2Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty2DescriptionCleared() {
		_spec.ClearField(awarenessmap.FieldExtraProperty2Description, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AwarenessMap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{awarenessmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

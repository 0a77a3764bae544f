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
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// NightmareMapUpdate is the builder for updating NightmareMap entities.
type NightmareMapUpdate struct {
	config
	hooks    []Hook
	mutation *NightmareMapMutation
}

// Where appends a list predicates to the NightmareMapUpdate builder.
func (_u *NightmareMapUpdate) Where(ps ...predicate.NightmareMap) *NightmareMapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NightmareMapUpdate) SetUpdatedAt(v time.Time) *NightmareMapUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *NightmareMapUpdate) SetPatientID(v uuid.UUID) *NightmareMapUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillablePatientID(v *uuid.UUID) *NightmareMapUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProperty1Condition sets the "property_1_condition" field.
func (_u *NightmareMapUpdate) SetProperty1Condition(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty1Condition(v)
	return _u
}

// SetNillableProperty1Condition sets the "property_1_condition" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty1Condition(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty1Condition(*v)
	}
	return _u
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (_u *NightmareMapUpdate) ClearProperty1Condition() *NightmareMapUpdate {
	_u.mutation.ClearProperty1Condition()
	return _u
}

// SetProperty1Description sets the "property_1_description" field.
func (_u *NightmareMapUpdate) SetProperty1Description(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty1Description(v)
	return _u
}

// SetNillableProperty1Description sets the "property_1_description" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty1Description(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty1Description(*v)
	}
	return _u
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (_u *NightmareMapUpdate) ClearProperty1Description() *NightmareMapUpdate {
	_u.mutation.ClearProperty1Description()
	return _u
}

// SetProperty2Condition sets the "property_2_condition" field.
func (_u *NightmareMapUpdate) SetProperty2Condition(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty2Condition(v)
	return _u
}

// SetNillableProperty2Condition sets the "property_2_condition" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty2Condition(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty2Condition(*v)
	}
	return _u
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (_u *NightmareMapUpdate) ClearProperty2Condition() *NightmareMapUpdate {
	_u.mutation.ClearProperty2Condition()
	return _u
}

// SetProperty2Description sets the "property_2_description" field.
func (_u *NightmareMapUpdate) SetProperty2Description(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty2Description(v)
	return _u
}

// SetNillableProperty2Description sets the "property_2_description" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty2Description(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty2Description(*v)
	}
	return _u
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (_u *NightmareMapUpdate) ClearProperty2Description() *NightmareMapUpdate {
	_u.mutation.ClearProperty2Description()
	return _u
}

// SetProperty3Condition sets the "property_3_condition" field.
func (_u *NightmareMapUpdate) SetProperty3Condition(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty3Condition(v)
	return _u
}

// SetNillableProperty3Condition sets the "property_3_condition" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty3Condition(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty3Condition(*v)
	}
	return _u
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (_u *NightmareMapUpdate) ClearProperty3Condition() *NightmareMapUpdate {
	_u.mutation.ClearProperty3Condition()
	return _u
}

// SetProperty3Description sets the "property_3_description" field.
func (_u *NightmareMapUpdate) SetProperty3Description(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty3Description(v)
	return _u
}

// SetNillableProperty3Description sets the "property_3_description" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty3Description(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty3Description(*v)
	}
	return _u
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (_u *NightmareMapUpdate) ClearProperty3Description() *NightmareMapUpdate {
	_u.mutation.ClearProperty3Description()
	return _u
}

// SetProperty4Condition sets the "property_4_condition" field.
func (_u *NightmareMapUpdate) SetProperty4Condition(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty4Condition(v)
	return _u
}

// SetNillableProperty4Condition sets the "property_4_condition" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty4Condition(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty4Condition(*v)
	}
	return _u
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (_u *NightmareMapUpdate) ClearProperty4Condition() *NightmareMapUpdate {
	_u.mutation.ClearProperty4Condition()
	return _u
}

// SetProperty4Description sets the "property_4_description" field.
func (_u *NightmareMapUpdate) SetProperty4Description(v string) *NightmareMapUpdate {
	_u.mutation.SetProperty4Description(v)
	return _u
}

// SetNillableProperty4Description sets the "property_4_description" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableProperty4Description(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetProperty4Description(*v)
	}
	return _u
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (_u *NightmareMapUpdate) ClearProperty4Description() *NightmareMapUpdate {
	_u.mutation.ClearProperty4Description()
	return _u
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (_u *NightmareMapUpdate) SetExtraProperty1Description(v string) *NightmareMapUpdate {
	_u.mutation.SetExtraProperty1Description(v)
	return _u
}

// SetNillableExtraProperty1Description sets the "extra_property_1_description" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableExtraProperty1Description(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetExtraProperty1Description(*v)
	}
	return _u
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (_u *NightmareMapUpdate) ClearExtraProperty1Description() *NightmareMapUpdate {
	_u.mutation.ClearExtraProperty1Description()
	return _u
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (_u *NightmareMapUpdate) SetExtraProperty2Description(v string) *NightmareMapUpdate {
	_u.mutation.SetExtraProperty2Description(v)
	return _u
}

// SetNillableExtraProperty2Description sets the "extra_property_2_description" field if the given value is not nil.
func (_u *NightmareMapUpdate) SetNillableExtraProperty2Description(v *string) *NightmareMapUpdate {
	if v != nil {
		_u.SetExtraProperty2Description(*v)
	}
	return _u
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (_u *NightmareMapUpdate) ClearExtraProperty2Description() *NightmareMapUpdate {
	_u.mutation.ClearExtraProperty2Description()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *NightmareMapUpdate) SetPatient(v *Patient) *NightmareMapUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the NightmareMapMutation object of the builder.
func (_u *NightmareMapUpdate) Mutation() *NightmareMapMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *NightmareMapUpdate) ClearPatient() *NightmareMapUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NightmareMapUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NightmareMapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NightmareMapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NightmareMapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NightmareMapUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nightmaremap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NightmareMapUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "NightmareMap.patient"`)
	}
	return nil
}

func (_u *NightmareMapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nightmaremap.Table, nightmaremap.Columns, sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(nightmaremap.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty1Condition, field.TypeString, value)
	}
	if _u.mutation.Property1ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty1Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property1Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty1Description, field.TypeString, value)
	}
	if _u.mutation.Property1DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty2Condition, field.TypeString, value)
	}
	if _u.mutation.Property2ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty2Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty2Description, field.TypeString, value)
	}
	if _u.mutation.Property2DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty2Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty3Condition, field.TypeString, value)
	}
	if _u.mutation.Property3ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty3Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty3Description, field.TypeString, value)
	}
	if _u.mutation.Property3DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty3Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty4Condition, field.TypeString, value)
	}
	if _u.mutation.Property4ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty4Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty4Description, field.TypeString, value)
	}
	if _u.mutation.Property4DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty4Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty1Description(); ok {
		_spec.SetField(nightmaremap.FieldExtraProperty1Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty1DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldExtraProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty2Description(); ok {
		_spec.SetField(nightmaremap.FieldExtraProperty2Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty2DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldExtraProperty2Description, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nightmaremap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NightmareMapUpdateOne is the builder for updating a single NightmareMap entity.
type NightmareMapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NightmareMapMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NightmareMapUpdateOne) SetUpdatedAt(v time.Time) *NightmareMapUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *NightmareMapUpdateOne) SetPatientID(v uuid.UUID) *NightmareMapUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillablePatientID(v *uuid.UUID) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetProperty1Condition sets the "property_1_condition" field.
func (_u *NightmareMapUpdateOne) SetProperty1Condition(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty1Condition(v)
	return _u
}

// SetNillableProperty1Condition sets the "property_1_condition" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty1Condition(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty1Condition(*v)
	}
	return _u
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (_u *NightmareMapUpdateOne) ClearProperty1Condition() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty1Condition()
	return _u
}

// SetProperty1Description sets the "property_1_description" field.
func (_u *NightmareMapUpdateOne) SetProperty1Description(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty1Description(v)
	return _u
}

// SetNillableProperty1Description sets the "property_1_description" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty1Description(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty1Description(*v)
	}
	return _u
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (_u *NightmareMapUpdateOne) ClearProperty1Description() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty1Description()
	return _u
}

// SetProperty2Condition sets the "property_2_condition" field.
func (_u *NightmareMapUpdateOne) SetProperty2Condition(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty2Condition(v)
	return _u
}

// SetNillableProperty2Condition sets the "property_2_condition" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty2Condition(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty2Condition(*v)
	}
	return _u
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (_u *NightmareMapUpdateOne) ClearProperty2Condition() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty2Condition()
	return _u
}

// SetProperty2Description sets the "property_2_description" field.
func (_u *NightmareMapUpdateOne) SetProperty2Description(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty2Description(v)
	return _u
}

// SetNillableProperty2Description sets the "property_2_description" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty2Description(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty2Description(*v)
	}
	return _u
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (_u *NightmareMapUpdateOne) ClearProperty2Description() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty2Description()
	return _u
}

// SetProperty3Condition sets the "property_3_condition" field.
func (_u *NightmareMapUpdateOne) SetProperty3Condition(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty3Condition(v)
	return _u
}

// SetNillableProperty3Condition sets the "property_3_condition" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty3Condition(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty3Condition(*v)
	}
	return _u
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (_u *NightmareMapUpdateOne) ClearProperty3Condition() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty3Condition()
	return _u
}

// SetProperty3Description sets the "property_3_description" field.
func (_u *NightmareMapUpdateOne) SetProperty3Description(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty3Description(v)
	return _u
}

// SetNillableProperty3Description sets the "property_3_description" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty3Description(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty3Description(*v)
	}
	return _u
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (_u *NightmareMapUpdateOne) ClearProperty3Description() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty3Description()
	return _u
}

// SetProperty4Condition sets the "property_4_condition" field.
func (_u *NightmareMapUpdateOne) SetProperty4Condition(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty4Condition(v)
	return _u
}

// SetNillableProperty4Condition sets the "property_4_condition" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty4Condition(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty4Condition(*v)
	}
	return _u
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (_u *NightmareMapUpdateOne) ClearProperty4Condition() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty4Condition()
	return _u
}

// SetProperty4Description sets the "property_4_description" field.
func (_u *NightmareMapUpdateOne) SetProperty4Description(v string) *NightmareMapUpdateOne {
	_u.mutation.SetProperty4Description(v)
	return _u
}

// SetNillableProperty4Description sets the "property_4_description" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableProperty4Description(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetProperty4Description(*v)
	}
	return _u
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (_u *NightmareMapUpdateOne) ClearProperty4Description() *NightmareMapUpdateOne {
	_u.mutation.ClearProperty4Description()
	return _u
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (_u *NightmareMapUpdateOne) SetExtraProperty1Description(v string) *NightmareMapUpdateOne {
	_u.mutation.SetExtraProperty1Description(v)
	return _u
}

// SetNillableExtraProperty1Description sets the "extra_property_1_description" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableExtraProperty1Description(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetExtraProperty1Description(*v)
	}
	return _u
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (_u *NightmareMapUpdateOne) ClearExtraProperty1Description() *NightmareMapUpdateOne {
	_u.mutation.ClearExtraProperty1Description()
	return _u
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (_u *NightmareMapUpdateOne) SetExtraProperty2Description(v string) *NightmareMapUpdateOne {
	_u.mutation.SetExtraProperty2Description(v)
	return _u
}

// SetNillableExtraProperty2Description sets the "extra_property_2_description" field if the given value is not nil.
func (_u *NightmareMapUpdateOne) SetNillableExtraProperty2Description(v *string) *NightmareMapUpdateOne {
	if v != nil {
		_u.SetExtraProperty2Description(*v)
	}
	return _u
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (_u *NightmareMapUpdateOne) ClearExtraProperty2Description() *NightmareMapUpdateOne {
	_u.mutation.ClearExtraProperty2Description()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *NightmareMapUpdateOne) SetPatient(v *Patient) *NightmareMapUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the NightmareMapMutation object of the builder.
func (_u *NightmareMapUpdateOne) Mutation() *NightmareMapMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *NightmareMapUpdateOne) ClearPatient() *NightmareMapUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the NightmareMapUpdate builder.
func (_u *NightmareMapUpdateOne) Where(ps ...predicate.NightmareMap) *NightmareMapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NightmareMapUpdateOne) Select(field string, fields ...string) *NightmareMapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NightmareMap entity.
func (_u *NightmareMapUpdateOne) Save(ctx context.Context) (*NightmareMap, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NightmareMapUpdateOne) SaveX(ctx context.Context) *NightmareMap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NightmareMapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NightmareMapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NightmareMapUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := nightmaremap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NightmareMapUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "NightmareMap.patient"`)
	}
	return nil
}

func (_u *NightmareMapUpdateOne) sqlSave(ctx context.Context) (_node *NightmareMap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(nightmaremap.Table, nightmaremap.Columns, sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "NightmareMap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, nightmaremap.FieldID)
		for _, f := range fields {
			if !nightmaremap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != nightmaremap.FieldID {
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
		_spec.SetField(nightmaremap.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Property1Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty1Condition, field.TypeString, value)
	}
	if _u.mutation.Property1ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty1Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property1Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty1Description, field.TypeString, value)
	}
	if _u.mutation.Property1DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty2Condition, field.TypeString, value)
	}
	if _u.mutation.Property2ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty2Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property2Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty2Description, field.TypeString, value)
	}
	if _u.mutation.Property2DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty2Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty3Condition, field.TypeString, value)
	}
	if _u.mutation.Property3ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty3Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property3Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty3Description, field.TypeString, value)
	}
	if _u.mutation.Property3DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty3Description, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Condition(); ok {
		_spec.SetField(nightmaremap.FieldProperty4Condition, field.TypeString, value)
	}
	if _u.mutation.Property4ConditionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty4Condition, field.TypeString)
	}
	if value, ok := _u.mutation.Property4Description(); ok {
		_spec.SetField(nightmaremap.FieldProperty4Description, field.TypeString, value)
	}
	if _u.mutation.Property4DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldProperty4Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty1Description(); ok {
		_spec.SetField(nightmaremap.FieldExtraProperty1Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty1DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldExtraProperty1Description, field.TypeString)
	}
	if value, ok := _u.mutation.ExtraProperty2Description(); ok {
		_spec.SetField(nightmaremap.FieldExtraProperty2Description, field.TypeString, value)
	}
	if _u.mutation.ExtraProperty2DescriptionCleared() {
		_spec.ClearField(nightmaremap.FieldExtraProperty2Description, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &NightmareMap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{nightmaremap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package awarenessmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldPatientID, v))
}

// Property1Condition applies equality check predicate on the "property_1_condition" field. It's identical to Property1ConditionEQ.
func Property1Condition(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty1Condition, v))
}

// Property1Description applies equality check predicate on the "property_1_description" field. It's identical to Property1DescriptionEQ.
func Property1Description(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty1Description, v))
}

// Property2Condition applies equality check predicate on the "property_2_condition" field. It's identical to Property2ConditionEQ.
func Property2Condition(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty2Condition, v))
}

// Property2Description applies equality check predicate on the "property_2_description" field. It's identical to Property2DescriptionEQ.
func Property2Description(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty2Description, v))
}

// Property3Condition applies equality check predicate on the "property_3_condition" field. It's identical to Property3ConditionEQ.
func Property3Condition(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty3Condition, v))
}

// Property3Description applies equality check predicate on the "property_3_description" field. It's identical to Property3DescriptionEQ.
func Property3Description(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty3Description, v))
}

// Property4Condition applies equality check predicate on the "property_4_condition" field. It's identical to Property4ConditionEQ.
func Property4Condition(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty4Condition, v))
}

// Property4Description applies equality check predicate on the "property_4_description" field. It's identical to Property4DescriptionEQ.
func Property4Description(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty4Description, v))
}

// ExtraProperty1Description applies equality check predicate on the "extra_property_1_description" field. It's identical to ExtraProperty1DescriptionEQ.
func ExtraProperty1Description(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldExtraProperty1Description, v))
}

// ExtraProperty2Description applies equality check predicate on the "extra_property_2_description" field. It's identical to ExtraProperty2DescriptionEQ.
func ExtraProperty2Description(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldExtraProperty2Description, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldPatientID, vs...))
}

// Property1ConditionEQ applies the EQ predicate on the "property_1_condition" field.
func Property1ConditionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty1Condition, v))
}

// Property1ConditionNEQ applies the NEQ predicate on the "property_1_condition" field.
func Property1ConditionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty1Condition, v))
}

// Property1ConditionIn applies the In predicate on the "property_1_condition" field.
func Property1ConditionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty1Condition, vs...))
}

// Property1ConditionNotIn applies the NotIn predicate on the "property_1_condition" field.
func Property1ConditionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty1Condition, vs...))
}

// Property1ConditionGT applies the GT predicate on the "property_1_condition" field.
func Property1ConditionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty1Condition, v))
}

// Property1ConditionGTE applies the GTE predicate on the "property_1_condition" field.
func Property1ConditionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty1Condition, v))
}

// Property1ConditionLT applies the LT predicate on the "property_1_condition" field.
func Property1ConditionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty1Condition, v))
}

// Property1ConditionLTE applies the LTE predicate on the "property_1_condition" field.
func Property1ConditionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty1Condition, v))
}

// Property1ConditionContains applies the Contains predicate on the "property_1_condition" field.
func Property1ConditionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty1Condition, v))
}

// Property1ConditionHasPrefix applies the HasPrefix predicate on the "property_1_condition" field.
func Property1ConditionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty1Condition, v))
}

// Property1ConditionHasSuffix applies the HasSuffix predicate on the "property_1_condition" field.
func Property1ConditionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty1Condition, v))
}

// Property1ConditionIsNil applies the IsNil predicate on the "property_1_condition" field.
func Property1ConditionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty1Condition))
}

// Property1ConditionNotNil applies the NotNil predicate on the "property_1_condition" field.
func Property1ConditionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty1Condition))
}

// Property1ConditionEqualFold applies the EqualFold predicate on the "property_1_condition" field.
func Property1ConditionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty1Condition, v))
}

// Property1ConditionContainsFold applies the ContainsFold predicate on the "property_1_condition" field.
func Property1ConditionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty1Condition, v))
}

// Property1DescriptionEQ applies the EQ predicate on the "property_1_description" field.
func Property1DescriptionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty1Description, v))
}

// Property1DescriptionNEQ applies the NEQ predicate on the "property_1_description" field.
func Property1DescriptionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty1Description, v))
}

// Property1DescriptionIn applies the In predicate on the "property_1_description" field.
func Property1DescriptionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty1Description, vs...))
}

// Property1DescriptionNotIn applies the NotIn predicate on the "property_1_description" field.
func Property1DescriptionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty1Description, vs...))
}

// Property1DescriptionGT applies the GT predicate on the "property_1_description" field.
func Property1DescriptionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty1Description, v))
}

// Property1DescriptionGTE applies the GTE predicate on the "property_1_description" field.
func Property1DescriptionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty1Description, v))
}

// Property1DescriptionLT applies the LT predicate on the "property_1_description" field.
func Property1DescriptionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty1Description, v))
}

// Property1DescriptionLTE applies the LTE predicate on the "property_1_description" field.
func Property1DescriptionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty1Description, v))
}

// Property1DescriptionContains applies the Contains predicate on the "property_1_description" field.
func Property1DescriptionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty1Description, v))
}

// Property1DescriptionHasPrefix applies the HasPrefix predicate on the "property_1_description" field.
func Property1DescriptionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty1Description, v))
}

// Property1DescriptionHasSuffix applies the HasSuffix predicate on the "property_1_description" field.
func Property1DescriptionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty1Description, v))
}

// Property1DescriptionIsNil applies the IsNil predicate on the "property_1_description" field.
func Property1DescriptionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty1Description))
}

// Property1DescriptionNotNil applies the NotNil predicate on the "property_1_description" field.
func Property1DescriptionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty1Description))
}

// Property1DescriptionEqualFold applies the EqualFold predicate on the "property_1_description" field.
func Property1DescriptionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty1Description, v))
}

// Property1DescriptionContainsFold applies the ContainsFold predicate on the "property_1_description" field.
func Property1DescriptionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty1Description, v))
}

// Property2ConditionEQ applies the EQ predicate on the "property_2_condition" field.
func Property2ConditionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty2Condition, v))
}

// Property2ConditionNEQ applies the NEQ predicate on the "property_2_condition" field.
func Property2ConditionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty2Condition, v))
}

// Property2ConditionIn applies the In predicate on the "property_2_condition" field.
func Property2ConditionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty2Condition, vs...))
}

// Property2ConditionNotIn applies the NotIn predicate on the "property_2_condition" field.
func Property2ConditionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty2Condition, vs...))
}

// Property2ConditionGT applies the GT predicate on the "property_2_condition" field.
func Property2ConditionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty2Condition, v))
}

// Property2ConditionGTE applies the GTE predicate on the "property_2_condition" field.
func Property2ConditionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty2Condition, v))
}

// Property2ConditionLT applies the LT predicate on the "property_2_condition" field.
func Property2ConditionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty2Condition, v))
}

// Property2ConditionLTE applies the LTE predicate on the "property_2_condition" field.
func Property2ConditionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty2Condition, v))
}

// Property2ConditionContains applies the Contains predicate on the "property_2_condition" field.
func Property2ConditionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty2Condition, v))
}

// Property2ConditionHasPrefix applies the HasPrefix predicate on the "property_2_condition" field.
func Property2ConditionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty2Condition, v))
}

// Property2ConditionHasSuffix applies the HasSuffix predicate on the "property_2_condition" field.
func Property2ConditionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty2Condition, v))
}

// Property2ConditionIsNil applies the IsNil predicate on the "property_2_condition" field.
func Property2ConditionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty2Condition))
}

// Property2ConditionNotNil applies the NotNil predicate on the "property_2_condition" field.
func Property2ConditionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty2Condition))
}

// Property2ConditionEqualFold applies the EqualFold predicate on the "property_2_condition" field.
func Property2ConditionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty2Condition, v))
}

// Property2ConditionContainsFold applies the ContainsFold predicate on the "property_2_condition" field.
func Property2ConditionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty2Condition, v))
}

// Property2DescriptionEQ applies the EQ predicate on the "property_2_description" field.
func Property2DescriptionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty2Description, v))
}

// Property2DescriptionNEQ applies the NEQ predicate on the "property_2_description" field.
func Property2DescriptionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty2Description, v))
}

// Property2DescriptionIn applies the In predicate on the "property_2_description" field.
func Property2DescriptionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty2Description, vs...))
}

// Property2DescriptionNotIn applies the NotIn predicate on the "property_2_description" field.
func Property2DescriptionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty2Description, vs...))
}

// Property2DescriptionGT applies the GT predicate on the "property_2_description" field.
func Property2DescriptionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty2Description, v))
}

// Property2DescriptionGTE applies the GTE predicate on the "property_2_description" field.
func Property2DescriptionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty2Description, v))
}

// Property2DescriptionLT applies the LT predicate on the "property_2_description" field.
func Property2DescriptionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty2Description, v))
}

// Property2DescriptionLTE applies the LTE predicate on the "property_2_description" field.
func Property2DescriptionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty2Description, v))
}

// Property2DescriptionContains applies the Contains predicate on the "property_2_description" field.
func Property2DescriptionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty2Description, v))
}

// Property2DescriptionHasPrefix applies the HasPrefix predicate on the "property_2_description" field.
func Property2DescriptionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty2Description, v))
}

// Property2DescriptionHasSuffix applies the HasSuffix predicate on the "property_2_description" field.
func Property2DescriptionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty2Description, v))
}

// Property2DescriptionIsNil applies the IsNil predicate on the "property_2_description" field.
func Property2DescriptionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty2Description))
}

// Property2DescriptionNotNil applies the NotNil predicate on the "property_2_description" field.
func Property2DescriptionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty2Description))
}

// Property2DescriptionEqualFold applies the EqualFold predicate on the "property_2_description" field.
func Property2DescriptionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty2Description, v))
}

// Property2DescriptionContainsFold applies the ContainsFold predicate on the "property_2_description" field.
func Property2DescriptionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty2Description, v))
}

// Property3ConditionEQ applies the EQ predicate on the "property_3_condition" field.
func Property3ConditionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty3Condition, v))
}

// Property3ConditionNEQ applies the NEQ predicate on the "property_3_condition" field.
func Property3ConditionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty3Condition, v))
}

// Property3ConditionIn applies the In predicate on the "property_3_condition" field.
func Property3ConditionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty3Condition, vs...))
}

// Property3ConditionNotIn applies the NotIn predicate on the "property_3_condition" field.
func Property3ConditionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty3Condition, vs...))
}

// Property3ConditionGT applies the GT predicate on the "property_3_condition" field.
func Property3ConditionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty3Condition, v))
}

// Property3ConditionGTE applies the GTE predicate on the "property_3_condition" field.
func Property3ConditionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty3Condition, v))
}

// Property3ConditionLT applies the LT predicate on the "property_3_condition" field.
func Property3ConditionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty3Condition, v))
}

// Property3ConditionLTE applies the LTE predicate on the "property_3_condition" field.
func Property3ConditionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty3Condition, v))
}

// Property3ConditionContains applies the Contains predicate on the "property_3_condition" field.
func Property3ConditionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty3Condition, v))
}

// Property3ConditionHasPrefix applies the HasPrefix predicate on the "property_3_condition" field.
func Property3ConditionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty3Condition, v))
}

// Property3ConditionHasSuffix applies the HasSuffix predicate on the "property_3_condition" field.
func Property3ConditionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty3Condition, v))
}

// Property3ConditionIsNil applies the IsNil predicate on the "property_3_condition" field.
func Property3ConditionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty3Condition))
}

// Property3ConditionNotNil applies the NotNil predicate on the "property_3_condition" field.
func Property3ConditionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty3Condition))
}

// Property3ConditionEqualFold applies the EqualFold predicate on the "property_3_condition" field.
func Property3ConditionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty3Condition, v))
}

// Property3ConditionContainsFold applies the ContainsFold predicate on the "property_3_condition" field.
func Property3ConditionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty3Condition, v))
}

// Property3DescriptionEQ applies the EQ predicate on the "property_3_description" field.
func Property3DescriptionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty3Description, v))
}

// Property3DescriptionNEQ applies the NEQ predicate on the "property_3_description" field.
func Property3DescriptionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty3Description, v))
}

// Property3DescriptionIn applies the In predicate on the "property_3_description" field.
func Property3DescriptionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty3Description, vs...))
}

// Property3DescriptionNotIn applies the NotIn predicate on the "property_3_description" field.
func Property3DescriptionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty3Description, vs...))
}

// Property3DescriptionGT applies the GT predicate on the "property_3_description" field.
func Property3DescriptionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty3Description, v))
}

// Property3DescriptionGTE applies the GTE predicate on the "property_3_description" field.
func Property3DescriptionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty3Description, v))
}

// Property3DescriptionLT applies the LT predicate on the "property_3_description" field.
func Property3DescriptionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty3Description, v))
}

// Property3DescriptionLTE applies the LTE predicate on the "property_3_description" field.
func Property3DescriptionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty3Description, v))
}

// Property3DescriptionContains applies the Contains predicate on the "property_3_description" field.
func Property3DescriptionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty3Description, v))
}

// Property3DescriptionHasPrefix applies the HasPrefix predicate on the "property_3_description" field.
func Property3DescriptionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty3Description, v))
}

// Property3DescriptionHasSuffix applies the HasSuffix predicate on the "property_3_description" field.
func Property3DescriptionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty3Description, v))
}

// Property3DescriptionIsNil applies the IsNil predicate on the "property_3_description" field.
func Property3DescriptionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty3Description))
}

// Property3DescriptionNotNil applies the NotNil predicate on the "property_3_description" field.
func Property3DescriptionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty3Description))
}

// Property3DescriptionEqualFold applies the EqualFold predicate on the "property_3_description" field.
func Property3DescriptionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty3Description, v))
}

// Property3DescriptionContainsFold applies the ContainsFold predicate on the "property_3_description" field.
func Property3DescriptionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty3Description, v))
}

// Property4ConditionEQ applies the EQ predicate on the "property_4_condition" field.
func Property4ConditionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty4Condition, v))
}

// Property4ConditionNEQ applies the NEQ predicate on the "property_4_condition" field.
func Property4ConditionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty4Condition, v))
}

// Property4ConditionIn applies the In predicate on the "property_4_condition" field.
func Property4ConditionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty4Condition, vs...))
}

// Property4ConditionNotIn applies the NotIn predicate on the "property_4_condition" field.
func Property4ConditionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty4Condition, vs...))
}

// Property4ConditionGT applies the GT predicate on the "property_4_condition" field.
func Property4ConditionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty4Condition, v))
}

// Property4ConditionGTE applies the GTE predicate on the "property_4_condition" field.
func Property4ConditionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty4Condition, v))
}

// Property4ConditionLT applies the LT predicate on the "property_4_condition" field.
func Property4ConditionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty4Condition, v))
}

// Property4ConditionLTE applies the LTE predicate on the "property_4_condition" field.
func Property4ConditionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty4Condition, v))
}

// Property4ConditionContains applies the Contains predicate on the "property_4_condition" field.
func Property4ConditionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty4Condition, v))
}

// Property4ConditionHasPrefix applies the HasPrefix predicate on the "property_4_condition" field.
func Property4ConditionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty4Condition, v))
}

// Property4ConditionHasSuffix applies the HasSuffix predicate on the "property_4_condition" field.
func Property4ConditionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty4Condition, v))
}

// Property4ConditionIsNil applies the IsNil predicate on the "property_4_condition" field.
func Property4ConditionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty4Condition))
}

// Property4ConditionNotNil applies the NotNil predicate on the "property_4_condition" field.
func Property4ConditionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty4Condition))
}

// Property4ConditionEqualFold applies the EqualFold predicate on the "property_4_condition" field.
func Property4ConditionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty4Condition, v))
}

// Property4ConditionContainsFold applies the ContainsFold predicate on the "property_4_condition" field.
func Property4ConditionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty4Condition, v))
}

// Property4DescriptionEQ applies the EQ predicate on the "property_4_description" field.
func Property4DescriptionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldProperty4Description, v))
}

// Property4DescriptionNEQ applies the NEQ predicate on the "property_4_description" field.
func Property4DescriptionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldProperty4Description, v))
}

// Property4DescriptionIn applies the In predicate on the "property_4_description" field.
func Property4DescriptionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldProperty4Description, vs...))
}

// Property4DescriptionNotIn applies the NotIn predicate on the "property_4_description" field.
func Property4DescriptionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldProperty4Description, vs...))
}

// Property4DescriptionGT applies the GT predicate on the "property_4_description" field.
func Property4DescriptionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldProperty4Description, v))
}

// Property4DescriptionGTE applies the GTE predicate on the "property_4_description" field.
func Property4DescriptionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldProperty4Description, v))
}

// Property4DescriptionLT applies the LT predicate on the "property_4_description" field.
func Property4DescriptionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldProperty4Description, v))
}

// Property4DescriptionLTE applies the LTE predicate on the "property_4_description" field.
func Property4DescriptionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldProperty4Description, v))
}

// Property4DescriptionContains applies the Contains predicate on the "property_4_description" field.
func Property4DescriptionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldProperty4Description, v))
}

// Property4DescriptionHasPrefix applies the HasPrefix predicate on the "property_4_description" field.
func Property4DescriptionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldProperty4Description, v))
}

// Property4DescriptionHasSuffix applies the HasSuffix predicate on the "property_4_description" field.
func Property4DescriptionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldProperty4Description, v))
}

// Property4DescriptionIsNil applies the IsNil predicate on the "property_4_description" field.
func Property4DescriptionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldProperty4Description))
}

// Property4DescriptionNotNil applies the NotNil predicate on the "property_4_description" field.
func Property4DescriptionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldProperty4Description))
}

// Property4DescriptionEqualFold applies the EqualFold predicate on the "property_4_description" field.
func Property4DescriptionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldProperty4Description, v))
}

// Property4DescriptionContainsFold applies the ContainsFold predicate on the "property_4_description" field.
func Property4DescriptionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldProperty4Description, v))
}

// ExtraProperty1DescriptionEQ applies the EQ predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionNEQ applies the NEQ predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionIn applies the In predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldExtraProperty1Description, vs...))
}

// ExtraProperty1DescriptionNotIn applies the NotIn predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldExtraProperty1Description, vs...))
}

// ExtraProperty1DescriptionGT applies the GT predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionGTE applies the GTE predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionLT applies the LT predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionLTE applies the LTE predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionContains applies the Contains predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionHasPrefix applies the HasPrefix predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionHasSuffix applies the HasSuffix predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionIsNil applies the IsNil predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldExtraProperty1Description))
}

// ExtraProperty1DescriptionNotNil applies the NotNil predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldExtraProperty1Description))
}

// ExtraProperty1DescriptionEqualFold applies the EqualFold predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldExtraProperty1Description, v))
}

// ExtraProperty1DescriptionContainsFold applies the ContainsFold predicate on the "extra_property_1_description" field.
func ExtraProperty1DescriptionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldExtraProperty1Description, v))
}

// ExtraProperty2DescriptionEQ applies the EQ predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEQ(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionNEQ applies the NEQ predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionNEQ(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNEQ(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionIn applies the In predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIn(FieldExtraProperty2Description, vs...))
}

// ExtraProperty2DescriptionNotIn applies the NotIn predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionNotIn(vs ...string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotIn(FieldExtraProperty2Description, vs...))
}

// ExtraProperty2DescriptionGT applies the GT predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionGT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGT(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionGTE applies the GTE predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionGTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldGTE(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionLT applies the LT predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionLT(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLT(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionLTE applies the LTE predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionLTE(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldLTE(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionContains applies the Contains predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionContains(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContains(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionHasPrefix applies the HasPrefix predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionHasPrefix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasPrefix(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionHasSuffix applies the HasSuffix predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionHasSuffix(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldHasSuffix(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionIsNil applies the IsNil predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionIsNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldIsNull(FieldExtraProperty2Description))
}

// ExtraProperty2DescriptionNotNil applies the NotNil predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionNotNil() predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldNotNull(FieldExtraProperty2Description))
}

// ExtraProperty2DescriptionEqualFold applies the EqualFold predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionEqualFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldEqualFold(FieldExtraProperty2Description, v))
}

// ExtraProperty2DescriptionContainsFold applies the ContainsFold predicate on the "extra_property_2_description" field.
func ExtraProperty2DescriptionContainsFold(v string) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.FieldContainsFold(FieldExtraProperty2Description, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.AwarenessMap {
	return predicate.AwarenessMap(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.AwarenessMap {
	return predicate.AwarenessMap(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AwarenessMap) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AwarenessMap) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AwarenessMap) predicate.AwarenessMap {
	return predicate.AwarenessMap(sql.NotPredicates(p))
}

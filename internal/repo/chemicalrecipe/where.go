// Code generated by ent, DO NOT EDIT.

package chemicalrecipe

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldOwnerID, v))
}

// AuthorPatientID applies equality check predicate on the "author_patient_id" field. It's identical to AuthorPatientIDEQ.
func AuthorPatientID(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldAuthorPatientID, v))
}

// AuthorDoctorID applies equality check predicate on the "author_doctor_id" field. It's identical to AuthorDoctorIDEQ.
func AuthorDoctorID(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldAuthorDoctorID, v))
}

// Property1 applies equality check predicate on the "property_1" field. It's identical to Property1EQ.
func Property1(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldProperty1, v))
}

// Property2 applies equality check predicate on the "property_2" field. It's identical to Property2EQ.
func Property2(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldProperty2, v))
}

// Property3 applies equality check predicate on the "property_3" field. It's identical to Property3EQ.
func Property3(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldProperty3, v))
}

// Duration applies equality check predicate on the "duration" field. It's identical to DurationEQ.
func Duration(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldDuration, vc))
}

// ExtraProperty applies equality check predicate on the "extra_property" field. It's identical to ExtraPropertyEQ.
func ExtraProperty(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldExtraProperty, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldOwnerID, vs...))
}

// AuthorPatientIDEQ applies the EQ predicate on the "author_patient_id" field.
func AuthorPatientIDEQ(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldAuthorPatientID, v))
}

// AuthorPatientIDNEQ applies the NEQ predicate on the "author_patient_id" field.
func AuthorPatientIDNEQ(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldAuthorPatientID, v))
}

// AuthorPatientIDIn applies the In predicate on the "author_patient_id" field.
func AuthorPatientIDIn(vs ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldAuthorPatientID, vs...))
}

// AuthorPatientIDNotIn applies the NotIn predicate on the "author_patient_id" field.
func AuthorPatientIDNotIn(vs ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldAuthorPatientID, vs...))
}

// AuthorPatientIDIsNil applies the IsNil predicate on the "author_patient_id" field.
func AuthorPatientIDIsNil() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIsNull(FieldAuthorPatientID))
}

// AuthorPatientIDNotNil applies the NotNil predicate on the "author_patient_id" field.
func AuthorPatientIDNotNil() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotNull(FieldAuthorPatientID))
}

// AuthorDoctorIDEQ applies the EQ predicate on the "author_doctor_id" field.
func AuthorDoctorIDEQ(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldAuthorDoctorID, v))
}

// AuthorDoctorIDNEQ applies the NEQ predicate on the "author_doctor_id" field.
func AuthorDoctorIDNEQ(v uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldAuthorDoctorID, v))
}

// AuthorDoctorIDIn applies the In predicate on the "author_doctor_id" field.
func AuthorDoctorIDIn(vs ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldAuthorDoctorID, vs...))
}

// AuthorDoctorIDNotIn applies the NotIn predicate on the "author_doctor_id" field.
func AuthorDoctorIDNotIn(vs ...uuid.UUID) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldAuthorDoctorID, vs...))
}

// AuthorDoctorIDIsNil applies the IsNil predicate on the "author_doctor_id" field.
func AuthorDoctorIDIsNil() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIsNull(FieldAuthorDoctorID))
}

// AuthorDoctorIDNotNil applies the NotNil predicate on the "author_doctor_id" field.
func AuthorDoctorIDNotNil() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotNull(FieldAuthorDoctorID))
}

// Property1EQ applies the EQ predicate on the "property_1" field.
func Property1EQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldProperty1, v))
}

// Property1NEQ applies the NEQ predicate on the "property_1" field.
func Property1NEQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldProperty1, v))
}

// Property1In applies the In predicate on the "property_1" field.
func Property1In(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldProperty1, vs...))
}

// Property1NotIn applies the NotIn predicate on the "property_1" field.
func Property1NotIn(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldProperty1, vs...))
}

// Property1GT applies the GT predicate on the "property_1" field.
func Property1GT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldProperty1, v))
}

// Property1GTE applies the GTE predicate on the "property_1" field.
func Property1GTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldProperty1, v))
}

// Property1LT applies the LT predicate on the "property_1" field.
func Property1LT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldProperty1, v))
}

// Property1LTE applies the LTE predicate on the "property_1" field.
func Property1LTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldProperty1, v))
}

// Property1Contains applies the Contains predicate on the "property_1" field.
func Property1Contains(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContains(FieldProperty1, v))
}

// Property1HasPrefix applies the HasPrefix predicate on the "property_1" field.
func Property1HasPrefix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasPrefix(FieldProperty1, v))
}

// Property1HasSuffix applies the HasSuffix predicate on the "property_1" field.
func Property1HasSuffix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasSuffix(FieldProperty1, v))
}

// Property1EqualFold applies the EqualFold predicate on the "property_1" field.
func Property1EqualFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEqualFold(FieldProperty1, v))
}

// Property1ContainsFold applies the ContainsFold predicate on the "property_1" field.
func Property1ContainsFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContainsFold(FieldProperty1, v))
}

// Property2EQ applies the EQ predicate on the "property_2" field.
func Property2EQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldProperty2, v))
}

// Property2NEQ applies the NEQ predicate on the "property_2" field.
func Property2NEQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldProperty2, v))
}

// Property2In applies the In predicate on the "property_2" field.
func Property2In(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldProperty2, vs...))
}

// Property2NotIn applies the NotIn predicate on the "property_2" field.
func Property2NotIn(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldProperty2, vs...))
}

// Property2GT applies the GT predicate on the "property_2" field.
func Property2GT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldProperty2, v))
}

// Property2GTE applies the GTE predicate on the "property_2" field.
func Property2GTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldProperty2, v))
}

// Property2LT applies the LT predicate on the "property_2" field.
func Property2LT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldProperty2, v))
}

// Property2LTE applies the LTE predicate on the "property_2" field.
func Property2LTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldProperty2, v))
}

// Property2Contains applies the Contains predicate on the "property_2" field.
func Property2Contains(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContains(FieldProperty2, v))
}

// Property2HasPrefix applies the HasPrefix predicate on the "property_2" field.
func Property2HasPrefix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasPrefix(FieldProperty2, v))
}

// Property2HasSuffix applies the HasSuffix predicate on the "property_2" field.
func Property2HasSuffix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasSuffix(FieldProperty2, v))
}

// Property2EqualFold applies the EqualFold predicate on the "property_2" field.
func Property2EqualFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEqualFold(FieldProperty2, v))
}

// Property2ContainsFold applies the ContainsFold predicate on the "property_2" field.
func Property2ContainsFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContainsFold(FieldProperty2, v))
}

// Property3EQ applies the EQ predicate on the "property_3" field.
func Property3EQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldProperty3, v))
}

// Property3NEQ applies the NEQ predicate on the "property_3" field.
func Property3NEQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldProperty3, v))
}

// Property3In applies the In predicate on the "property_3" field.
func Property3In(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldProperty3, vs...))
}

// Property3NotIn applies the NotIn predicate on the "property_3" field.
func Property3NotIn(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldProperty3, vs...))
}

// Property3GT applies the GT predicate on the "property_3" field.
func Property3GT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldProperty3, v))
}

// Property3GTE applies the GTE predicate on the "property_3" field.
func Property3GTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldProperty3, v))
}

// Property3LT applies the LT predicate on the "property_3" field.
func Property3LT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldProperty3, v))
}

// Property3LTE applies the LTE predicate on the "property_3" field.
func Property3LTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldProperty3, v))
}

// Property3Contains applies the Contains predicate on the "property_3" field.
func Property3Contains(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContains(FieldProperty3, v))
}

// Property3HasPrefix applies the HasPrefix predicate on the "property_3" field.
func Property3HasPrefix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasPrefix(FieldProperty3, v))
}

// Property3HasSuffix applies the HasSuffix predicate on the "property_3" field.
func Property3HasSuffix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasSuffix(FieldProperty3, v))
}

// Property3EqualFold applies the EqualFold predicate on the "property_3" field.
func Property3EqualFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEqualFold(FieldProperty3, v))
}

// Property3ContainsFold applies the ContainsFold predicate on the "property_3" field.
func Property3ContainsFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContainsFold(FieldProperty3, v))
}

// DurationEQ applies the EQ predicate on the "duration" field.
func DurationEQ(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldDuration, vc))
}

// DurationNEQ applies the NEQ predicate on the "duration" field.
func DurationNEQ(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldDuration, vc))
}

// DurationIn applies the In predicate on the "duration" field.
func DurationIn(vs ...time.Duration) predicate.ChemicalRecipe {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int64(vs[i])
	}
	return predicate.ChemicalRecipe(sql.FieldIn(FieldDuration, v...))
}

// DurationNotIn applies the NotIn predicate on the "duration" field.
func DurationNotIn(vs ...time.Duration) predicate.ChemicalRecipe {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int64(vs[i])
	}
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldDuration, v...))
}

// DurationGT applies the GT predicate on the "duration" field.
func DurationGT(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldGT(FieldDuration, vc))
}

// DurationGTE applies the GTE predicate on the "duration" field.
func DurationGTE(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldDuration, vc))
}

// DurationLT applies the LT predicate on the "duration" field.
func DurationLT(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldLT(FieldDuration, vc))
}

// DurationLTE applies the LTE predicate on the "duration" field.
func DurationLTE(v time.Duration) predicate.ChemicalRecipe {
	vc := int64(v)
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldDuration, vc))
}

// ExtraPropertyEQ applies the EQ predicate on the "extra_property" field.
func ExtraPropertyEQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEQ(FieldExtraProperty, v))
}

// ExtraPropertyNEQ applies the NEQ predicate on the "extra_property" field.
func ExtraPropertyNEQ(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNEQ(FieldExtraProperty, v))
}

// ExtraPropertyIn applies the In predicate on the "extra_property" field.
func ExtraPropertyIn(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIn(FieldExtraProperty, vs...))
}

// ExtraPropertyNotIn applies the NotIn predicate on the "extra_property" field.
func ExtraPropertyNotIn(vs ...string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotIn(FieldExtraProperty, vs...))
}

// ExtraPropertyGT applies the GT predicate on the "extra_property" field.
func ExtraPropertyGT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGT(FieldExtraProperty, v))
}

// ExtraPropertyGTE applies the GTE predicate on the "extra_property" field.
func ExtraPropertyGTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldGTE(FieldExtraProperty, v))
}

// ExtraPropertyLT applies the LT predicate on the "extra_property" field.
func ExtraPropertyLT(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLT(FieldExtraProperty, v))
}

// ExtraPropertyLTE applies the LTE predicate on the "extra_property" field.
func ExtraPropertyLTE(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldLTE(FieldExtraProperty, v))
}

// ExtraPropertyContains applies the Contains predicate on the "extra_property" field.
func ExtraPropertyContains(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContains(FieldExtraProperty, v))
}

// ExtraPropertyHasPrefix applies the HasPrefix predicate on the "extra_property" field.
func ExtraPropertyHasPrefix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasPrefix(FieldExtraProperty, v))
}

// ExtraPropertyHasSuffix applies the HasSuffix predicate on the "extra_property" field.
func ExtraPropertyHasSuffix(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldHasSuffix(FieldExtraProperty, v))
}

// ExtraPropertyIsNil applies the IsNil predicate on the "extra_property" field.
func ExtraPropertyIsNil() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldIsNull(FieldExtraProperty))
}

// ExtraPropertyNotNil applies the NotNil predicate on the "extra_property" field.
func ExtraPropertyNotNil() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldNotNull(FieldExtraProperty))
}

// ExtraPropertyEqualFold applies the EqualFold predicate on the "extra_property" field.
func ExtraPropertyEqualFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldEqualFold(FieldExtraProperty, v))
}

// ExtraPropertyContainsFold applies the ContainsFold predicate on the "extra_property" field.
func ExtraPropertyContainsFold(v string) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.FieldContainsFold(FieldExtraProperty, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.Patient) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthorPatient applies the HasEdge predicate on the "author_patient" edge.
func HasAuthorPatient() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorPatientTable, AuthorPatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorPatientWith applies the HasEdge predicate on the "author_patient" edge with a given conditions (other predicates).
func HasAuthorPatientWith(preds ...predicate.Patient) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(func(s *sql.Selector) {
		step := newAuthorPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthorDoctor applies the HasEdge predicate on the "author_doctor" edge.
func HasAuthorDoctor() predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuthorDoctorTable, AuthorDoctorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthorDoctorWith applies the HasEdge predicate on the "author_doctor" edge with a given conditions (other predicates).
func HasAuthorDoctorWith(preds ...predicate.Doctor) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(func(s *sql.Selector) {
		step := newAuthorDoctorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChemicalRecipe) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChemicalRecipe) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChemicalRecipe) predicate.ChemicalRecipe {
	return predicate.ChemicalRecipe(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package awarenessmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the awarenessmap type in the database.
	Label = "awareness_map"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldProperty1Condition holds the string denoting the property_1_condition field in the database.
	FieldProperty1Condition = "property_1_condition"
	// FieldProperty1Description holds the string denoting the property_1_description field in the database.
	FieldProperty1Description = "property_1_description"
	// FieldProperty2Condition holds the string denoting the property_2_condition field in the database.
	FieldProperty2Condition = "property_2_condition"
	// FieldProperty2Description holds the string denoting the property_2_description field in the database.
	FieldProperty2Description = "property_2_description"
	// FieldProperty3Condition holds the string denoting the property_3_condition field in the database.
	FieldProperty3Condition = "property_3_condition"
	// FieldProperty3Description holds the string denoting the property_3_description field in the database.
	FieldProperty3Description = "property_3_description"
	// FieldProperty4Condition holds the string denoting the property_4_condition field in the database.
	FieldProperty4Condition = "property_4_condition"
	// FieldProperty4Description holds the string denoting the property_4_description field in the database.
	FieldProperty4Description = "property_4_description"
	// FieldExtraProperty1Description holds the string denoting the extra_property_1_description field in the database.
	FieldExtraProperty1Description = "extra_property_1_description"
	// FieldExtraProperty2Description holds the string denoting the extra_property_2_description field in the database.
	FieldExtraProperty2Description = "extra_property_2_description"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// Table holds the table name of the awarenessmap in the database.
	Table = "awareness_maps"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "awareness_maps"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
)

// Columns holds all SQL columns for awarenessmap fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldPatientID,
	FieldProperty1Condition,
	FieldProperty1Description,
	FieldProperty2Condition,
	FieldProperty2Description,
	FieldProperty3Condition,
	FieldProperty3Description,
	FieldProperty4Condition,
	FieldProperty4Description,
	FieldExtraProperty1Description,
	FieldExtraProperty2Description,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultProperty1Condition holds the default value on creation for the "property_1_condition" field.
	DefaultProperty1Condition string
	// DefaultProperty1Description holds the default value on creation for the "property_1_description" field.
	DefaultProperty1Description string
	// DefaultProperty2Condition holds the default value on creation for the "property_2_condition" field.
	DefaultProperty2Condition string
	// DefaultProperty2Description holds the default value on creation for the "property_2_description" field.
	DefaultProperty2Description string
	// DefaultProperty3Condition holds the default value on creation for the "property_3_condition" field.
	DefaultProperty3Condition string
	// DefaultProperty3Description holds the default value on creation for the "property_3_description" field.
	DefaultProperty3Description string
	// DefaultProperty4Condition holds the default value on creation for the "property_4_condition" field.
	DefaultProperty4Condition string
	// DefaultProperty4Description holds the default value on creation for the "property_4_description" field.
	DefaultProperty4Description string
	// DefaultExtraProperty1Description holds the default value on creation for the "extra_property_1_description" field.
	DefaultExtraProperty1Description string
	// DefaultExtraProperty2Description holds the default value on creation for the "extra_property_2_description" field.
	DefaultExtraProperty2Description string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the AwarenessMap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByProperty1Condition orders the results by the property_1_condition field.
func ByProperty1Condition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty1Condition, opts...).ToFunc()
}

// ByProperty1Description orders the results by the property_1_description field.
func ByProperty1Description(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty1Description, opts...).ToFunc()
}

// ByProperty2Condition orders the results by the property_2_condition field.
func ByProperty2Condition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty2Condition, opts...).ToFunc()
}

// ByProperty2Description orders the results by the property_2_description field.
func ByProperty2Description(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty2Description, opts...).ToFunc()
}

// ByProperty3Condition orders the results by the property_3_condition field.
func ByProperty3Condition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty3Condition, opts...).ToFunc()
}

// ByProperty3Description orders the results by the property_3_description field.
func ByProperty3Description(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty3Description, opts...).ToFunc()
}

// ByProperty4Condition orders the results by the property_4_condition field.
func ByProperty4Condition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty4Condition, opts...).ToFunc()
}

// ByProperty4Description orders the results by the property_4_description field.
func ByProperty4Description(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty4Description, opts...).ToFunc()
}

// ByExtraProperty1Description orders the results by the extra_property_1_description field.
func ByExtraProperty1Description(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtraProperty1Description, opts...).ToFunc()
}

// ByExtraProperty2Description orders the results by the extra_property_2_description field.
func ByExtraProperty2Description(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtraProperty2Description, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, PatientTable, PatientColumn),
	)
}

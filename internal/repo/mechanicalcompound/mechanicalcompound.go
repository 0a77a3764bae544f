// Code generated by ent, DO NOT EDIT.

package mechanicalcompound

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mechanicalcompound type in the database.
	Label = "mechanical_compound"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldAuthorPatientID holds the string denoting the author_patient_id field in the database.
	FieldAuthorPatientID = "author_patient_id"
	// FieldAuthorDoctorID holds the string denoting the author_doctor_id field in the database.
	FieldAuthorDoctorID = "author_doctor_id"
	// FieldProperty1 holds the string denoting the property_1 field in the database.
	FieldProperty1 = "property_1"
	// FieldProperty2 holds the string denoting the property_2 field in the database.
	FieldProperty2 = "property_2"
	// FieldProperty3 holds the string denoting the property_3 field in the database.
	FieldProperty3 = "property_3"
	// FieldDuration holds the string denoting the duration field in the database.
	FieldDuration = "duration"
	// FieldExtraProperty holds the string denoting the extra_property field in the database.
	FieldExtraProperty = "extra_property"
	// EdgeOwner holds the string denoting the owner edge name in mutations.
	EdgeOwner = "owner"
	// EdgeAuthorPatient holds the string denoting the author_patient edge name in mutations.
	EdgeAuthorPatient = "author_patient"
	// EdgeAuthorDoctor holds the string denoting the author_doctor edge name in mutations.
	EdgeAuthorDoctor = "author_doctor"
	// Table holds the table name of the mechanicalcompound in the database.
	Table = "mechanical_compounds"
	// OwnerTable is the table that holds the owner relation/edge.
	OwnerTable = "mechanical_compounds"
	// OwnerInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	OwnerInverseTable = "patients"
	// OwnerColumn is the table column denoting the owner relation/edge.
	OwnerColumn = "owner_id"
	// AuthorPatientTable is the table that holds the author_patient relation/edge.
	AuthorPatientTable = "mechanical_compounds"
	// AuthorPatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	AuthorPatientInverseTable = "patients"
	// AuthorPatientColumn is the table column denoting the author_patient relation/edge.
	AuthorPatientColumn = "author_patient_id"
	// AuthorDoctorTable is the table that holds the author_doctor relation/edge.
	AuthorDoctorTable = "mechanical_compounds"
	// AuthorDoctorInverseTable is the table name for the Doctor entity.
	// It exists in this package in order to avoid circular dependency with the "doctor" package.
	AuthorDoctorInverseTable = "doctors"
	// AuthorDoctorColumn is the table column denoting the author_doctor relation/edge.
	AuthorDoctorColumn = "author_doctor_id"
)

// Columns holds all SQL columns for mechanicalcompound fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldOwnerID,
	FieldAuthorPatientID,
	FieldAuthorDoctorID,
	FieldProperty1,
	FieldProperty2,
	FieldProperty3,
	FieldDuration,
	FieldExtraProperty,
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
	// Property1Validator is a validator for the "property_1" field. It is called by the builders before save.
	Property1Validator func(string) error
	// Property2Validator is a validator for the "property_2" field. It is called by the builders before save.
	Property2Validator func(string) error
	// Property3Validator is a validator for the "property_3" field. It is called by the builders before save.
	Property3Validator func(string) error
	// DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	DurationValidator func(int64) error
	// DefaultExtraProperty holds the default value on creation for the "extra_property" field.
	DefaultExtraProperty string
	// ExtraPropertyValidator is a validator for the "extra_property" field. It is called by the builders before save.
	ExtraPropertyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MechanicalCompound queries.
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

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByAuthorPatientID orders the results by the author_patient_id field.
func ByAuthorPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorPatientID, opts...).ToFunc()
}

// ByAuthorDoctorID orders the results by the author_doctor_id field.
func ByAuthorDoctorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorDoctorID, opts...).ToFunc()
}

// ByProperty1 orders the results by the property_1 field.
func ByProperty1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty1, opts...).ToFunc()
}

// ByProperty2 orders the results by the property_2 field.
func ByProperty2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty2, opts...).ToFunc()
}

// ByProperty3 orders the results by the property_3 field.
func ByProperty3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProperty3, opts...).ToFunc()
}

// ByDuration orders the results by the duration field.
func ByDuration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuration, opts...).ToFunc()
}

// ByExtraProperty orders the results by the extra_property field.
func ByExtraProperty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtraProperty, opts...).ToFunc()
}

// ByOwnerField orders the results by owner field.
func ByOwnerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOwnerStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuthorPatientField orders the results by author_patient field.
func ByAuthorPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuthorDoctorField orders the results by author_doctor field.
func ByAuthorDoctorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthorDoctorStep(), sql.OrderByField(field, opts...))
	}
}
func newOwnerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OwnerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
	)
}
func newAuthorPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorPatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorPatientTable, AuthorPatientColumn),
	)
}
func newAuthorDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthorDoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuthorDoctorTable, AuthorDoctorColumn),
	)
}

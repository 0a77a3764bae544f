// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the doctor type in the database.
	Label = "doctor"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldNickname holds the string denoting the nickname field in the database.
	FieldNickname = "nickname"
	// FieldTelegram holds the string denoting the telegram field in the database.
	FieldTelegram = "telegram"
	// FieldAvatarKey holds the string denoting the avatar_key field in the database.
	FieldAvatarKey = "avatar_key"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeAuthoredChemicalRecipes holds the string denoting the authored_chemical_recipes edge name in mutations.
	EdgeAuthoredChemicalRecipes = "authored_chemical_recipes"
	// EdgeAuthoredMechanicalCompounds holds the string denoting the authored_mechanical_compounds edge name in mutations.
	EdgeAuthoredMechanicalCompounds = "authored_mechanical_compounds"
	// Table holds the table name of the doctor in the database.
	Table = "doctors"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "doctors"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// AuthoredChemicalRecipesTable is the table that holds the authored_chemical_recipes relation/edge.
	AuthoredChemicalRecipesTable = "chemical_recipes"
	// AuthoredChemicalRecipesInverseTable is the table name for the ChemicalRecipe entity.
	// It exists in this package in order to avoid circular dependency with the "chemicalrecipe" package.
	AuthoredChemicalRecipesInverseTable = "chemical_recipes"
	// AuthoredChemicalRecipesColumn is the table column denoting the authored_chemical_recipes relation/edge.
	AuthoredChemicalRecipesColumn = "author_doctor_id"
	// AuthoredMechanicalCompoundsTable is the table that holds the authored_mechanical_compounds relation/edge.
	AuthoredMechanicalCompoundsTable = "mechanical_compounds"
	// AuthoredMechanicalCompoundsInverseTable is the table name for the MechanicalCompound entity.
	// It exists in this package in order to avoid circular dependency with the "mechanicalcompound" package.
	AuthoredMechanicalCompoundsInverseTable = "mechanical_compounds"
	// AuthoredMechanicalCompoundsColumn is the table column denoting the authored_mechanical_compounds relation/edge.
	AuthoredMechanicalCompoundsColumn = "author_doctor_id"
)

// Columns holds all SQL columns for doctor fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldFullName,
	FieldNickname,
	FieldTelegram,
	FieldAvatarKey,
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
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	NicknameValidator func(string) error
	// TelegramValidator is a validator for the "telegram" field. It is called by the builders before save.
	TelegramValidator func(string) error
	// AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	AvatarKeyValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Doctor queries.
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

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByNickname orders the results by the nickname field.
func ByNickname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNickname, opts...).ToFunc()
}

// ByTelegram orders the results by the telegram field.
func ByTelegram(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelegram, opts...).ToFunc()
}

// ByAvatarKey orders the results by the avatar_key field.
func ByAvatarKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvatarKey, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByAuthoredChemicalRecipesCount orders the results by authored_chemical_recipes count.
func ByAuthoredChemicalRecipesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuthoredChemicalRecipesStep(), opts...)
	}
}

// ByAuthoredChemicalRecipes orders the results by authored_chemical_recipes terms.
func ByAuthoredChemicalRecipes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthoredChemicalRecipesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAuthoredMechanicalCompoundsCount orders the results by authored_mechanical_compounds count.
func ByAuthoredMechanicalCompoundsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAuthoredMechanicalCompoundsStep(), opts...)
	}
}

// ByAuthoredMechanicalCompounds orders the results by authored_mechanical_compounds terms.
func ByAuthoredMechanicalCompounds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuthoredMechanicalCompoundsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
func newAuthoredChemicalRecipesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthoredChemicalRecipesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuthoredChemicalRecipesTable, AuthoredChemicalRecipesColumn),
	)
}
func newAuthoredMechanicalCompoundsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuthoredMechanicalCompoundsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AuthoredMechanicalCompoundsTable, AuthoredMechanicalCompoundsColumn),
	)
}

// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldMentalStateID holds the string denoting the mental_state_id field in the database.
	FieldMentalStateID = "mental_state_id"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldNickname holds the string denoting the nickname field in the database.
	FieldNickname = "nickname"
	// FieldTelegram holds the string denoting the telegram field in the database.
	FieldTelegram = "telegram"
	// FieldAvatarKey holds the string denoting the avatar_key field in the database.
	FieldAvatarKey = "avatar_key"
	// FieldChemistryLevel holds the string denoting the chemistry_level field in the database.
	FieldChemistryLevel = "chemistry_level"
	// FieldMechanicsLevel holds the string denoting the mechanics_level field in the database.
	FieldMechanicsLevel = "mechanics_level"
	// FieldSocialSkillsLevel holds the string denoting the social_skills_level field in the database.
	FieldSocialSkillsLevel = "social_skills_level"
	// FieldPhysicalSkillsLevel holds the string denoting the physical_skills_level field in the database.
	FieldPhysicalSkillsLevel = "physical_skills_level"
	// FieldBonusLevel holds the string denoting the bonus_level field in the database.
	FieldBonusLevel = "bonus_level"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeMentalState holds the string denoting the mental_state edge name in mutations.
	EdgeMentalState = "mental_state"
	// EdgeAwarenessMap holds the string denoting the awareness_map edge name in mutations.
	EdgeAwarenessMap = "awareness_map"
	// EdgeNightmareMap holds the string denoting the nightmare_map edge name in mutations.
	EdgeNightmareMap = "nightmare_map"
	// EdgeChemicalRecipes holds the string denoting the chemical_recipes edge name in mutations.
	EdgeChemicalRecipes = "chemical_recipes"
	// EdgeMechanicalCompounds holds the string denoting the mechanical_compounds edge name in mutations.
	EdgeMechanicalCompounds = "mechanical_compounds"
	// EdgeAuthoredChemicalRecipes holds the string denoting the authored_chemical_recipes edge name in mutations.
	EdgeAuthoredChemicalRecipes = "authored_chemical_recipes"
	// EdgeAuthoredMechanicalCompounds holds the string denoting the authored_mechanical_compounds edge name in mutations.
	EdgeAuthoredMechanicalCompounds = "authored_mechanical_compounds"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "patients"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// MentalStateTable is the table that holds the mental_state relation/edge.
	MentalStateTable = "patients"
	// MentalStateInverseTable is the table name for the MentalState entity.
	// It exists in this package in order to avoid circular dependency with the "mentalstate" package.
	MentalStateInverseTable = "mental_states"
	// MentalStateColumn is the table column denoting the mental_state relation/edge.
	MentalStateColumn = "mental_state_id"
	// AwarenessMapTable is the table that holds the awareness_map relation/edge.
	AwarenessMapTable = "awareness_maps"
	// AwarenessMapInverseTable is the table name for the AwarenessMap entity.
	// It exists in this package in order to avoid circular dependency with the "awarenessmap" package.
	AwarenessMapInverseTable = "awareness_maps"
	// AwarenessMapColumn is the table column denoting the awareness_map relation/edge.
	AwarenessMapColumn = "patient_id"
	// NightmareMapTable is the table that holds the nightmare_map relation/edge.
	NightmareMapTable = "nightmare_maps"
	// NightmareMapInverseTable is the table name for the NightmareMap entity.
	// It exists in this package in order to avoid circular dependency with the "nightmaremap" package.
	NightmareMapInverseTable = "nightmare_maps"
	// NightmareMapColumn is the table column denoting the nightmare_map relation/edge.
	NightmareMapColumn = "patient_id"
	// ChemicalRecipesTable is the table that holds the chemical_recipes relation/edge.
	ChemicalRecipesTable = "chemical_recipes"
	// ChemicalRecipesInverseTable is the table name for the ChemicalRecipe entity.
	// It exists in this package in order to avoid circular dependency with the "chemicalrecipe" package.
	ChemicalRecipesInverseTable = "chemical_recipes"
	// ChemicalRecipesColumn is the table column denoting the chemical_recipes relation/edge.
	ChemicalRecipesColumn = "owner_id"
	// MechanicalCompoundsTable is the table that holds the mechanical_compounds relation/edge.
	MechanicalCompoundsTable = "mechanical_compounds"
	// MechanicalCompoundsInverseTable is the table name for the MechanicalCompound entity.
	// It exists in this package in order to avoid circular dependency with the "mechanicalcompound" package.
	MechanicalCompoundsInverseTable = "mechanical_compounds"
	// MechanicalCompoundsColumn is the table column denoting the mechanical_compounds relation/edge.
	MechanicalCompoundsColumn = "owner_id"
	// AuthoredChemicalRecipesTable is the table that holds the authored_chemical_recipes relation/edge.
	AuthoredChemicalRecipesTable = "chemical_recipes"
	// AuthoredChemicalRecipesInverseTable is the table name for the ChemicalRecipe entity.
	// It exists in this package in order to avoid circular dependency with the "chemicalrecipe" package.
	AuthoredChemicalRecipesInverseTable = "chemical_recipes"
	// AuthoredChemicalRecipesColumn is the table column denoting the authored_chemical_recipes relation/edge.
	AuthoredChemicalRecipesColumn = "author_patient_id"
	// AuthoredMechanicalCompoundsTable is the table that holds the authored_mechanical_compounds relation/edge.
	AuthoredMechanicalCompoundsTable = "mechanical_compounds"
	// AuthoredMechanicalCompoundsInverseTable is the table name for the MechanicalCompound entity.
	// It exists in this package in order to avoid circular dependency with the "mechanicalcompound" package.
	AuthoredMechanicalCompoundsInverseTable = "mechanical_compounds"
	// AuthoredMechanicalCompoundsColumn is the table column denoting the authored_mechanical_compounds relation/edge.
	AuthoredMechanicalCompoundsColumn = "author_patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldMentalStateID,
	FieldFullName,
	FieldNickname,
	FieldTelegram,
	FieldAvatarKey,
	FieldChemistryLevel,
	FieldMechanicsLevel,
	FieldSocialSkillsLevel,
	FieldPhysicalSkillsLevel,
	FieldBonusLevel,
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
	// DefaultChemistryLevel holds the default value on creation for the "chemistry_level" field.
	DefaultChemistryLevel int
	// ChemistryLevelValidator is a validator for the "chemistry_level" field. It is called by the builders before save.
	ChemistryLevelValidator func(int) error
	// DefaultMechanicsLevel holds the default value on creation for the "mechanics_level" field.
	DefaultMechanicsLevel int
	// MechanicsLevelValidator is a validator for the "mechanics_level" field. It is called by the builders before save.
	MechanicsLevelValidator func(int) error
	// DefaultSocialSkillsLevel holds the default value on creation for the "social_skills_level" field.
	DefaultSocialSkillsLevel int
	// SocialSkillsLevelValidator is a validator for the "social_skills_level" field. It is called by the builders before save.
	SocialSkillsLevelValidator func(int) error
	// DefaultPhysicalSkillsLevel holds the default value on creation for the "physical_skills_level" field.
	DefaultPhysicalSkillsLevel int
	// PhysicalSkillsLevelValidator is a validator for the "physical_skills_level" field. It is called by the builders before save.
	PhysicalSkillsLevelValidator func(int) error
	// DefaultBonusLevel holds the default value on creation for the "bonus_level" field.
	DefaultBonusLevel string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Patient queries.
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

// ByMentalStateID orders the results by the mental_state_id field.
func ByMentalStateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMentalStateID, opts...).ToFunc()
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

// ByChemistryLevel orders the results by the chemistry_level field.
func ByChemistryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChemistryLevel, opts...).ToFunc()
}

// ByMechanicsLevel orders the results by the mechanics_level field.
func ByMechanicsLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMechanicsLevel, opts...).ToFunc()
}

// BySocialSkillsLevel orders the results by the social_skills_level field.
func BySocialSkillsLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSocialSkillsLevel, opts...).ToFunc()
}

// ByPhysicalSkillsLevel orders the results by the physical_skills_level field.
func ByPhysicalSkillsLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhysicalSkillsLevel, opts...).ToFunc()
}

// ByBonusLevel orders the results by the bonus_level field.
func ByBonusLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonusLevel, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByMentalStateField orders the results by mental_state field.
func ByMentalStateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMentalStateStep(), sql.OrderByField(field, opts...))
	}
}

// ByAwarenessMapField orders the results by awareness_map field.
func ByAwarenessMapField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAwarenessMapStep(), sql.OrderByField(field, opts...))
	}
}

// ByNightmareMapField orders the results by nightmare_map field.
func ByNightmareMapField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNightmareMapStep(), sql.OrderByField(field, opts...))
	}
}

// ByChemicalRecipesCount orders the results by chemical_recipes count.
func ByChemicalRecipesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChemicalRecipesStep(), opts...)
	}
}

// ByChemicalRecipes orders the results by chemical_recipes terms.
func ByChemicalRecipes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChemicalRecipesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMechanicalCompoundsCount orders the results by mechanical_compounds count.
func ByMechanicalCompoundsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMechanicalCompoundsStep(), opts...)
	}
}

// ByMechanicalCompounds orders the results by mechanical_compounds terms.
func ByMechanicalCompounds(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMechanicalCompoundsStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newMentalStateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MentalStateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, MentalStateTable, MentalStateColumn),
	)
}
func newAwarenessMapStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AwarenessMapInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, AwarenessMapTable, AwarenessMapColumn),
	)
}
func newNightmareMapStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NightmareMapInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, NightmareMapTable, NightmareMapColumn),
	)
}
func newChemicalRecipesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChemicalRecipesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChemicalRecipesTable, ChemicalRecipesColumn),
	)
}
func newMechanicalCompoundsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MechanicalCompoundsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MechanicalCompoundsTable, MechanicalCompoundsColumn),
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

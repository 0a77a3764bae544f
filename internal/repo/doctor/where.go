// Code generated by ent, DO NOT EDIT.

package doctor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUserID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldFullName, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldNickname, v))
}

// Telegram applies equality check predicate on the "telegram" field. It's identical to TelegramEQ.
func Telegram(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTelegram, v))
}

// AvatarKey applies equality check predicate on the "avatar_key" field. It's identical to AvatarKeyEQ.
func AvatarKey(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldAvatarKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldUserID))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldFullName, v))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldNickname, v))
}

// TelegramEQ applies the EQ predicate on the "telegram" field.
func TelegramEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldTelegram, v))
}

// TelegramNEQ applies the NEQ predicate on the "telegram" field.
func TelegramNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldTelegram, v))
}

// TelegramIn applies the In predicate on the "telegram" field.
func TelegramIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldTelegram, vs...))
}

// TelegramNotIn applies the NotIn predicate on the "telegram" field.
func TelegramNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldTelegram, vs...))
}

// TelegramGT applies the GT predicate on the "telegram" field.
func TelegramGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldTelegram, v))
}

// TelegramGTE applies the GTE predicate on the "telegram" field.
func TelegramGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldTelegram, v))
}

// TelegramLT applies the LT predicate on the "telegram" field.
func TelegramLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldTelegram, v))
}

// TelegramLTE applies the LTE predicate on the "telegram" field.
func TelegramLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldTelegram, v))
}

// TelegramContains applies the Contains predicate on the "telegram" field.
func TelegramContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldTelegram, v))
}

// TelegramHasPrefix applies the HasPrefix predicate on the "telegram" field.
func TelegramHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldTelegram, v))
}

// TelegramHasSuffix applies the HasSuffix predicate on the "telegram" field.
func TelegramHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldTelegram, v))
}

// TelegramIsNil applies the IsNil predicate on the "telegram" field.
func TelegramIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldTelegram))
}

// TelegramNotNil applies the NotNil predicate on the "telegram" field.
func TelegramNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldTelegram))
}

// TelegramEqualFold applies the EqualFold predicate on the "telegram" field.
func TelegramEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldTelegram, v))
}

// TelegramContainsFold applies the ContainsFold predicate on the "telegram" field.
func TelegramContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldTelegram, v))
}

// AvatarKeyEQ applies the EQ predicate on the "avatar_key" field.
func AvatarKeyEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEQ(FieldAvatarKey, v))
}

// AvatarKeyNEQ applies the NEQ predicate on the "avatar_key" field.
func AvatarKeyNEQ(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNEQ(FieldAvatarKey, v))
}

// AvatarKeyIn applies the In predicate on the "avatar_key" field.
func AvatarKeyIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldIn(FieldAvatarKey, vs...))
}

// AvatarKeyNotIn applies the NotIn predicate on the "avatar_key" field.
func AvatarKeyNotIn(vs ...string) predicate.Doctor {
	return predicate.Doctor(sql.FieldNotIn(FieldAvatarKey, vs...))
}

// AvatarKeyGT applies the GT predicate on the "avatar_key" field.
func AvatarKeyGT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGT(FieldAvatarKey, v))
}

// AvatarKeyGTE applies the GTE predicate on the "avatar_key" field.
func AvatarKeyGTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldGTE(FieldAvatarKey, v))
}

// AvatarKeyLT applies the LT predicate on the "avatar_key" field.
func AvatarKeyLT(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLT(FieldAvatarKey, v))
}

// AvatarKeyLTE applies the LTE predicate on the "avatar_key" field.
func AvatarKeyLTE(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldLTE(FieldAvatarKey, v))
}

// AvatarKeyContains applies the Contains predicate on the "avatar_key" field.
func AvatarKeyContains(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContains(FieldAvatarKey, v))
}

// AvatarKeyHasPrefix applies the HasPrefix predicate on the "avatar_key" field.
func AvatarKeyHasPrefix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasPrefix(FieldAvatarKey, v))
}

// AvatarKeyHasSuffix applies the HasSuffix predicate on the "avatar_key" field.
func AvatarKeyHasSuffix(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldHasSuffix(FieldAvatarKey, v))
}

// AvatarKeyIsNil applies the IsNil predicate on the "avatar_key" field.
func AvatarKeyIsNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldIsNull(FieldAvatarKey))
}

// AvatarKeyNotNil applies the NotNil predicate on the "avatar_key" field.
func AvatarKeyNotNil() predicate.Doctor {
	return predicate.Doctor(sql.FieldNotNull(FieldAvatarKey))
}

// AvatarKeyEqualFold applies the EqualFold predicate on the "avatar_key" field.
func AvatarKeyEqualFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldEqualFold(FieldAvatarKey, v))
}

// AvatarKeyContainsFold applies the ContainsFold predicate on the "avatar_key" field.
func AvatarKeyContainsFold(v string) predicate.Doctor {
	return predicate.Doctor(sql.FieldContainsFold(FieldAvatarKey, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthoredChemicalRecipes applies the HasEdge predicate on the "authored_chemical_recipes" edge.
func HasAuthoredChemicalRecipes() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuthoredChemicalRecipesTable, AuthoredChemicalRecipesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthoredChemicalRecipesWith applies the HasEdge predicate on the "authored_chemical_recipes" edge with a given conditions (other predicates).
func HasAuthoredChemicalRecipesWith(preds ...predicate.ChemicalRecipe) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newAuthoredChemicalRecipesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthoredMechanicalCompounds applies the HasEdge predicate on the "authored_mechanical_compounds" edge.
func HasAuthoredMechanicalCompounds() predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuthoredMechanicalCompoundsTable, AuthoredMechanicalCompoundsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthoredMechanicalCompoundsWith applies the HasEdge predicate on the "authored_mechanical_compounds" edge with a given conditions (other predicates).
func HasAuthoredMechanicalCompoundsWith(preds ...predicate.MechanicalCompound) predicate.Doctor {
	return predicate.Doctor(func(s *sql.Selector) {
		step := newAuthoredMechanicalCompoundsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Doctor) predicate.Doctor {
	return predicate.Doctor(sql.NotPredicates(p))
}

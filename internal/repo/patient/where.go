// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// MentalStateID applies equality check predicate on the "mental_state_id" field. It's identical to MentalStateIDEQ.
func MentalStateID(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMentalStateID, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFullName, v))
}

// Nickname applies equality check predicate on the "nickname" field. It's identical to NicknameEQ.
func Nickname(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNickname, v))
}

// Telegram applies equality check predicate on the "telegram" field. It's identical to TelegramEQ.
func Telegram(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTelegram, v))
}

// AvatarKey applies equality check predicate on the "avatar_key" field. It's identical to AvatarKeyEQ.
func AvatarKey(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAvatarKey, v))
}

// ChemistryLevel applies equality check predicate on the "chemistry_level" field. It's identical to ChemistryLevelEQ.
func ChemistryLevel(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldChemistryLevel, v))
}

// MechanicsLevel applies equality check predicate on the "mechanics_level" field. It's identical to MechanicsLevelEQ.
func MechanicsLevel(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMechanicsLevel, v))
}

// SocialSkillsLevel applies equality check predicate on the "social_skills_level" field. It's identical to SocialSkillsLevelEQ.
func SocialSkillsLevel(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSocialSkillsLevel, v))
}

// PhysicalSkillsLevel applies equality check predicate on the "physical_skills_level" field. It's identical to PhysicalSkillsLevelEQ.
func PhysicalSkillsLevel(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhysicalSkillsLevel, v))
}

// BonusLevel applies equality check predicate on the "bonus_level" field. It's identical to BonusLevelEQ.
func BonusLevel(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBonusLevel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldUserID))
}

// MentalStateIDEQ applies the EQ predicate on the "mental_state_id" field.
func MentalStateIDEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMentalStateID, v))
}

// MentalStateIDNEQ applies the NEQ predicate on the "mental_state_id" field.
func MentalStateIDNEQ(v uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMentalStateID, v))
}

// MentalStateIDIn applies the In predicate on the "mental_state_id" field.
func MentalStateIDIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMentalStateID, vs...))
}

// MentalStateIDNotIn applies the NotIn predicate on the "mental_state_id" field.
func MentalStateIDNotIn(vs ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMentalStateID, vs...))
}

// MentalStateIDIsNil applies the IsNil predicate on the "mental_state_id" field.
func MentalStateIDIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMentalStateID))
}

// MentalStateIDNotNil applies the NotNil predicate on the "mental_state_id" field.
func MentalStateIDNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMentalStateID))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFullName, v))
}

// NicknameEQ applies the EQ predicate on the "nickname" field.
func NicknameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldNickname, v))
}

// NicknameNEQ applies the NEQ predicate on the "nickname" field.
func NicknameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldNickname, v))
}

// NicknameIn applies the In predicate on the "nickname" field.
func NicknameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldNickname, vs...))
}

// NicknameNotIn applies the NotIn predicate on the "nickname" field.
func NicknameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldNickname, vs...))
}

// NicknameGT applies the GT predicate on the "nickname" field.
func NicknameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldNickname, v))
}

// NicknameGTE applies the GTE predicate on the "nickname" field.
func NicknameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldNickname, v))
}

// NicknameLT applies the LT predicate on the "nickname" field.
func NicknameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldNickname, v))
}

// NicknameLTE applies the LTE predicate on the "nickname" field.
func NicknameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldNickname, v))
}

// NicknameContains applies the Contains predicate on the "nickname" field.
func NicknameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldNickname, v))
}

// NicknameHasPrefix applies the HasPrefix predicate on the "nickname" field.
func NicknameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldNickname, v))
}

// NicknameHasSuffix applies the HasSuffix predicate on the "nickname" field.
func NicknameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldNickname, v))
}

// NicknameEqualFold applies the EqualFold predicate on the "nickname" field.
func NicknameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldNickname, v))
}

// NicknameContainsFold applies the ContainsFold predicate on the "nickname" field.
func NicknameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldNickname, v))
}

// TelegramEQ applies the EQ predicate on the "telegram" field.
func TelegramEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldTelegram, v))
}

// TelegramNEQ applies the NEQ predicate on the "telegram" field.
func TelegramNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldTelegram, v))
}

// TelegramIn applies the In predicate on the "telegram" field.
func TelegramIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldTelegram, vs...))
}

// TelegramNotIn applies the NotIn predicate on the "telegram" field.
func TelegramNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldTelegram, vs...))
}

// TelegramGT applies the GT predicate on the "telegram" field.
func TelegramGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldTelegram, v))
}

// TelegramGTE applies the GTE predicate on the "telegram" field.
func TelegramGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldTelegram, v))
}

// TelegramLT applies the LT predicate on the "telegram" field.
func TelegramLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldTelegram, v))
}

// TelegramLTE applies the LTE predicate on the "telegram" field.
func TelegramLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldTelegram, v))
}

// TelegramContains applies the Contains predicate on the "telegram" field.
func TelegramContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldTelegram, v))
}

// TelegramHasPrefix applies the HasPrefix predicate on the "telegram" field.
func TelegramHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldTelegram, v))
}

// TelegramHasSuffix applies the HasSuffix predicate on the "telegram" field.
func TelegramHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldTelegram, v))
}

// TelegramIsNil applies the IsNil predicate on the "telegram" field.
func TelegramIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldTelegram))
}

// TelegramNotNil applies the NotNil predicate on the "telegram" field.
func TelegramNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldTelegram))
}

// TelegramEqualFold applies the EqualFold predicate on the "telegram" field.
func TelegramEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldTelegram, v))
}

// TelegramContainsFold applies the ContainsFold predicate on the "telegram" field.
func TelegramContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldTelegram, v))
}

// AvatarKeyEQ applies the EQ predicate on the "avatar_key" field.
func AvatarKeyEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldAvatarKey, v))
}

// AvatarKeyNEQ applies the NEQ predicate on the "avatar_key" field.
func AvatarKeyNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldAvatarKey, v))
}

// AvatarKeyIn applies the In predicate on the "avatar_key" field.
func AvatarKeyIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldAvatarKey, vs...))
}

// AvatarKeyNotIn applies the NotIn predicate on the "avatar_key" field.
func AvatarKeyNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldAvatarKey, vs...))
}

// AvatarKeyGT applies the GT predicate on the "avatar_key" field.
func AvatarKeyGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldAvatarKey, v))
}

// AvatarKeyGTE applies the GTE predicate on the "avatar_key" field.
func AvatarKeyGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldAvatarKey, v))
}

// AvatarKeyLT applies the LT predicate on the "avatar_key" field.
func AvatarKeyLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldAvatarKey, v))
}

// AvatarKeyLTE applies the LTE predicate on the "avatar_key" field.
func AvatarKeyLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldAvatarKey, v))
}

// AvatarKeyContains applies the Contains predicate on the "avatar_key" field.
func AvatarKeyContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldAvatarKey, v))
}

// AvatarKeyHasPrefix applies the HasPrefix predicate on the "avatar_key" field.
func AvatarKeyHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldAvatarKey, v))
}

// AvatarKeyHasSuffix applies the HasSuffix predicate on the "avatar_key" field.
func AvatarKeyHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldAvatarKey, v))
}

// AvatarKeyIsNil applies the IsNil predicate on the "avatar_key" field.
func AvatarKeyIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAvatarKey))
}

// AvatarKeyNotNil applies the NotNil predicate on the "avatar_key" field.
func AvatarKeyNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAvatarKey))
}

// AvatarKeyEqualFold applies the EqualFold predicate on the "avatar_key" field.
func AvatarKeyEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldAvatarKey, v))
}

// AvatarKeyContainsFold applies the ContainsFold predicate on the "avatar_key" field.
func AvatarKeyContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldAvatarKey, v))
}

// ChemistryLevelEQ applies the EQ predicate on the "chemistry_level" field.
func ChemistryLevelEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldChemistryLevel, v))
}

// ChemistryLevelNEQ applies the NEQ predicate on the "chemistry_level" field.
func ChemistryLevelNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldChemistryLevel, v))
}

// ChemistryLevelIn applies the In predicate on the "chemistry_level" field.
func ChemistryLevelIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldChemistryLevel, vs...))
}

// ChemistryLevelNotIn applies the NotIn predicate on the "chemistry_level" field.
func ChemistryLevelNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldChemistryLevel, vs...))
}

// ChemistryLevelGT applies the GT predicate on the "chemistry_level" field.
func ChemistryLevelGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldChemistryLevel, v))
}

// ChemistryLevelGTE applies the GTE predicate on the "chemistry_level" field.
func ChemistryLevelGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldChemistryLevel, v))
}

// ChemistryLevelLT applies the LT predicate on the "chemistry_level" field.
func ChemistryLevelLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldChemistryLevel, v))
}

// ChemistryLevelLTE applies the LTE predicate on the "chemistry_level" field.
func ChemistryLevelLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldChemistryLevel, v))
}

// MechanicsLevelEQ applies the EQ predicate on the "mechanics_level" field.
func MechanicsLevelEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMechanicsLevel, v))
}

// MechanicsLevelNEQ applies the NEQ predicate on the "mechanics_level" field.
func MechanicsLevelNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMechanicsLevel, v))
}

// MechanicsLevelIn applies the In predicate on the "mechanics_level" field.
func MechanicsLevelIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMechanicsLevel, vs...))
}

// MechanicsLevelNotIn applies the NotIn predicate on the "mechanics_level" field.
func MechanicsLevelNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMechanicsLevel, vs...))
}

// MechanicsLevelGT applies the GT predicate on the "mechanics_level" field.
func MechanicsLevelGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMechanicsLevel, v))
}

// MechanicsLevelGTE applies the GTE predicate on the "mechanics_level" field.
func MechanicsLevelGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMechanicsLevel, v))
}

// MechanicsLevelLT applies the LT predicate on the "mechanics_level" field.
func MechanicsLevelLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMechanicsLevel, v))
}

// MechanicsLevelLTE applies the LTE predicate on the "mechanics_level" field.
func MechanicsLevelLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMechanicsLevel, v))
}

// SocialSkillsLevelEQ applies the EQ predicate on the "social_skills_level" field.
func SocialSkillsLevelEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSocialSkillsLevel, v))
}

// SocialSkillsLevelNEQ applies the NEQ predicate on the "social_skills_level" field.
func SocialSkillsLevelNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldSocialSkillsLevel, v))
}

// SocialSkillsLevelIn applies the In predicate on the "social_skills_level" field.
func SocialSkillsLevelIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldSocialSkillsLevel, vs...))
}

// SocialSkillsLevelNotIn applies the NotIn predicate on the "social_skills_level" field.
func SocialSkillsLevelNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldSocialSkillsLevel, vs...))
}

// SocialSkillsLevelGT applies the GT predicate on the "social_skills_level" field.
func SocialSkillsLevelGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldSocialSkillsLevel, v))
}

// SocialSkillsLevelGTE applies the GTE predicate on the "social_skills_level" field.
func SocialSkillsLevelGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldSocialSkillsLevel, v))
}

// SocialSkillsLevelLT applies the LT predicate on the "social_skills_level" field.
func SocialSkillsLevelLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldSocialSkillsLevel, v))
}

// SocialSkillsLevelLTE applies the LTE predicate on the "social_skills_level" field.
func SocialSkillsLevelLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldSocialSkillsLevel, v))
}

// PhysicalSkillsLevelEQ applies the EQ predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhysicalSkillsLevel, v))
}

// PhysicalSkillsLevelNEQ applies the NEQ predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelNEQ(v int) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPhysicalSkillsLevel, v))
}

// PhysicalSkillsLevelIn applies the In predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPhysicalSkillsLevel, vs...))
}

// PhysicalSkillsLevelNotIn applies the NotIn predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelNotIn(vs ...int) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPhysicalSkillsLevel, vs...))
}

// PhysicalSkillsLevelGT applies the GT predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelGT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPhysicalSkillsLevel, v))
}

// PhysicalSkillsLevelGTE applies the GTE predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelGTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPhysicalSkillsLevel, v))
}

// PhysicalSkillsLevelLT applies the LT predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelLT(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPhysicalSkillsLevel, v))
}

// PhysicalSkillsLevelLTE applies the LTE predicate on the "physical_skills_level" field.
func PhysicalSkillsLevelLTE(v int) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPhysicalSkillsLevel, v))
}

// BonusLevelEQ applies the EQ predicate on the "bonus_level" field.
func BonusLevelEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBonusLevel, v))
}

// BonusLevelNEQ applies the NEQ predicate on the "bonus_level" field.
func BonusLevelNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBonusLevel, v))
}

// BonusLevelIn applies the In predicate on the "bonus_level" field.
func BonusLevelIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBonusLevel, vs...))
}

// BonusLevelNotIn applies the NotIn predicate on the "bonus_level" field.
func BonusLevelNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBonusLevel, vs...))
}

// BonusLevelGT applies the GT predicate on the "bonus_level" field.
func BonusLevelGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBonusLevel, v))
}

// BonusLevelGTE applies the GTE predicate on the "bonus_level" field.
func BonusLevelGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBonusLevel, v))
}

// BonusLevelLT applies the LT predicate on the "bonus_level" field.
func BonusLevelLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBonusLevel, v))
}

// BonusLevelLTE applies the LTE predicate on the "bonus_level" field.
func BonusLevelLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBonusLevel, v))
}

// BonusLevelContains applies the Contains predicate on the "bonus_level" field.
func BonusLevelContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldBonusLevel, v))
}

// BonusLevelHasPrefix applies the HasPrefix predicate on the "bonus_level" field.
func BonusLevelHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldBonusLevel, v))
}

// BonusLevelHasSuffix applies the HasSuffix predicate on the "bonus_level" field.
func BonusLevelHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldBonusLevel, v))
}

// BonusLevelIsNil applies the IsNil predicate on the "bonus_level" field.
func BonusLevelIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldBonusLevel))
}

// BonusLevelNotNil applies the NotNil predicate on the "bonus_level" field.
func BonusLevelNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldBonusLevel))
}

// BonusLevelEqualFold applies the EqualFold predicate on the "bonus_level" field.
func BonusLevelEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldBonusLevel, v))
}

// BonusLevelContainsFold applies the ContainsFold predicate on the "bonus_level" field.
func BonusLevelContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldBonusLevel, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMentalState applies the HasEdge predicate on the "mental_state" edge.
func HasMentalState() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, MentalStateTable, MentalStateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMentalStateWith applies the HasEdge predicate on the "mental_state" edge with a given conditions (other predicates).
func HasMentalStateWith(preds ...predicate.MentalState) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newMentalStateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAwarenessMap applies the HasEdge predicate on the "awareness_map" edge.
func HasAwarenessMap() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AwarenessMapTable, AwarenessMapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAwarenessMapWith applies the HasEdge predicate on the "awareness_map" edge with a given conditions (other predicates).
func HasAwarenessMapWith(preds ...predicate.AwarenessMap) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAwarenessMapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNightmareMap applies the HasEdge predicate on the "nightmare_map" edge.
func HasNightmareMap() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, NightmareMapTable, NightmareMapColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNightmareMapWith applies the HasEdge predicate on the "nightmare_map" edge with a given conditions (other predicates).
func HasNightmareMapWith(preds ...predicate.NightmareMap) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newNightmareMapStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChemicalRecipes applies the HasEdge predicate on the "chemical_recipes" edge.
func HasChemicalRecipes() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChemicalRecipesTable, ChemicalRecipesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChemicalRecipesWith applies the HasEdge predicate on the "chemical_recipes" edge with a given conditions (other predicates).
func HasChemicalRecipesWith(preds ...predicate.ChemicalRecipe) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newChemicalRecipesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMechanicalCompounds applies the HasEdge predicate on the "mechanical_compounds" edge.
func HasMechanicalCompounds() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MechanicalCompoundsTable, MechanicalCompoundsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMechanicalCompoundsWith applies the HasEdge predicate on the "mechanical_compounds" edge with a given conditions (other predicates).
func HasMechanicalCompoundsWith(preds ...predicate.MechanicalCompound) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newMechanicalCompoundsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthoredChemicalRecipes applies the HasEdge predicate on the "authored_chemical_recipes" edge.
func HasAuthoredChemicalRecipes() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuthoredChemicalRecipesTable, AuthoredChemicalRecipesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthoredChemicalRecipesWith applies the HasEdge predicate on the "authored_chemical_recipes" edge with a given conditions (other predicates).
func HasAuthoredChemicalRecipesWith(preds ...predicate.ChemicalRecipe) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAuthoredChemicalRecipesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAuthoredMechanicalCompounds applies the HasEdge predicate on the "authored_mechanical_compounds" edge.
func HasAuthoredMechanicalCompounds() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuthoredMechanicalCompoundsTable, AuthoredMechanicalCompoundsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuthoredMechanicalCompoundsWith applies the HasEdge predicate on the "authored_mechanical_compounds" edge with a given conditions (other predicates).
func HasAuthoredMechanicalCompoundsWith(preds ...predicate.MechanicalCompound) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAuthoredMechanicalCompoundsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}

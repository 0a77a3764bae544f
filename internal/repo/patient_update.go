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
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdate) SetUserID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableUserID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PatientUpdate) ClearUserID() *PatientUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetMentalStateID sets the "mental_state_id" field.
func (_u *PatientUpdate) SetMentalStateID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetMentalStateID(v)
	return _u
}

// SetNillableMentalStateID sets the "mental_state_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMentalStateID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetMentalStateID(*v)
	}
	return _u
}

// ClearMentalStateID clears the value of the "mental_state_id" field.
func (_u *PatientUpdate) ClearMentalStateID() *PatientUpdate {
	_u.mutation.ClearMentalStateID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PatientUpdate) SetFullName(v string) *PatientUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFullName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *PatientUpdate) SetNickname(v string) *PatientUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableNickname(v *string) *PatientUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetTelegram sets the "telegram" field.
func (_u *PatientUpdate) SetTelegram(v string) *PatientUpdate {
	_u.mutation.SetTelegram(v)
	return _u
}

// SetNillableTelegram sets the "telegram" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableTelegram(v *string) *PatientUpdate {
	if v != nil {
		_u.SetTelegram(*v)
	}
	return _u
}

// ClearTelegram clears the value of the "telegram" field.
func (_u *PatientUpdate) ClearTelegram() *PatientUpdate {
	_u.mutation.ClearTelegram()
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *PatientUpdate) SetAvatarKey(v string) *PatientUpdate {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableAvatarKey(v *string) *PatientUpdate {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *PatientUpdate) ClearAvatarKey() *PatientUpdate {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetChemistryLevel sets the "chemistry_level" field.
func (_u *PatientUpdate) SetChemistryLevel(v int) *PatientUpdate {
	_u.mutation.ResetChemistryLevel()
	_u.mutation.SetChemistryLevel(v)
	return _u
}

// SetNillableChemistryLevel sets the "chemistry_level" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableChemistryLevel(v *int) *PatientUpdate {
	if v != nil {
		_u.SetChemistryLevel(*v)
	}
	return _u
}

// AddChemistryLevel adds value to the "chemistry_level" field.
func (_u *PatientUpdate) AddChemistryLevel(v int) *PatientUpdate {
	_u.mutation.AddChemistryLevel(v)
	return _u
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (_u *PatientUpdate) SetMechanicsLevel(v int) *PatientUpdate {
	_u.mutation.ResetMechanicsLevel()
	_u.mutation.SetMechanicsLevel(v)
	return _u
}

// SetNillableMechanicsLevel sets the "mechanics_level" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMechanicsLevel(v *int) *PatientUpdate {
	if v != nil {
		_u.SetMechanicsLevel(*v)
	}
	return _u
}

// AddMechanicsLevel adds value to the "mechanics_level" field.
func (_u *PatientUpdate) AddMechanicsLevel(v int) *PatientUpdate {
	_u.mutation.AddMechanicsLevel(v)
	return _u
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (_u *PatientUpdate) SetSocialSkillsLevel(v int) *PatientUpdate {
	_u.mutation.ResetSocialSkillsLevel()
	_u.mutation.SetSocialSkillsLevel(v)
	return _u
}

// SetNillableSocialSkillsLevel sets the "social_skills_level" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSocialSkillsLevel(v *int) *PatientUpdate {
	if v != nil {
		_u.SetSocialSkillsLevel(*v)
	}
	return _u
}

// AddSocialSkillsLevel adds value to the "social_skills_level" field.
func (_u *PatientUpdate) AddSocialSkillsLevel(v int) *PatientUpdate {
	_u.mutation.AddSocialSkillsLevel(v)
	return _u
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (_u *PatientUpdate) SetPhysicalSkillsLevel(v int) *PatientUpdate {
	_u.mutation.ResetPhysicalSkillsLevel()
	_u.mutation.SetPhysicalSkillsLevel(v)
	return _u
}

// SetNillablePhysicalSkillsLevel sets the "physical_skills_level" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhysicalSkillsLevel(v *int) *PatientUpdate {
	if v != nil {
		_u.SetPhysicalSkillsLevel(*v)
	}
	return _u
}

// AddPhysicalSkillsLevel adds value to the "physical_skills_level" field.
func (_u *PatientUpdate) AddPhysicalSkillsLevel(v int) *PatientUpdate {
	_u.mutation.AddPhysicalSkillsLevel(v)
	return _u
}

// SetBonusLevel sets the "bonus_level" field.
func (_u *PatientUpdate) SetBonusLevel(v string) *PatientUpdate {
	_u.mutation.SetBonusLevel(v)
	return _u
}

// SetNillableBonusLevel sets the "bonus_level" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBonusLevel(v *string) *PatientUpdate {
	if v != nil {
		_u.SetBonusLevel(*v)
	}
	return _u
}

// ClearBonusLevel clears the value of the "bonus_level" field.
func (_u *PatientUpdate) ClearBonusLevel() *PatientUpdate {
	_u.mutation.ClearBonusLevel()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdate) SetUser(v *User) *PatientUpdate {
	return _u.SetUserID(v.ID)
}

// SetMentalState sets the "mental_state" edge to the MentalState entity.
func (_u *PatientUpdate) SetMentalState(v *MentalState) *PatientUpdate {
	return _u.SetMentalStateID(v.ID)
}

// SetAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by ID.
func (_u *PatientUpdate) SetAwarenessMapID(id uuid.UUID) *PatientUpdate {
	_u.mutation.SetAwarenessMapID(id)
	return _u
}

// SetNillableAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by ID if the given value is not nil.
func (_u *PatientUpdate) SetNillableAwarenessMapID(id *uuid.UUID) *PatientUpdate {
	if id != nil {
		_u = _u.SetAwarenessMapID(*id)
	}
	return _u
}

// SetAwarenessMap sets the "awareness_map" edge to the AwarenessMap entity.
func (_u *PatientUpdate) SetAwarenessMap(v *AwarenessMap) *PatientUpdate {
	return _u.SetAwarenessMapID(v.ID)
}

// SetNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by ID.
func (_u *PatientUpdate) SetNightmareMapID(id uuid.UUID) *PatientUpdate {
	_u.mutation.SetNightmareMapID(id)
	return _u
}

// SetNillableNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by ID if the given value is not nil.
func (_u *PatientUpdate) SetNillableNightmareMapID(id *uuid.UUID) *PatientUpdate {
	if id != nil {
		_u = _u.SetNightmareMapID(*id)
	}
	return _u
}

// SetNightmareMap sets the "nightmare_map" edge to the NightmareMap entity.
func (_u *PatientUpdate) SetNightmareMap(v *NightmareMap) *PatientUpdate {
	return _u.SetNightmareMapID(v.ID)
}

// AddChemicalRecipeIDs adds the "chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_u *PatientUpdate) AddChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddChemicalRecipeIDs(ids...)
	return _u
}

// AddChemicalRecipes adds the "chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdate) AddChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChemicalRecipeIDs(ids...)
}

// AddMechanicalCompoundIDs adds the "mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_u *PatientUpdate) AddMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddMechanicalCompoundIDs(ids...)
	return _u
}

// AddMechanicalCompounds adds the "mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdate) AddMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMechanicalCompoundIDs(ids...)
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_u *PatientUpdate) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// AddAuthoredChemicalRecipes adds the "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdate) AddAuthoredChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredChemicalRecipeIDs(ids...)
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_u *PatientUpdate) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// AddAuthoredMechanicalCompounds adds the "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdate) AddAuthoredMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredMechanicalCompoundIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdate) ClearUser() *PatientUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearMentalState clears the "mental_state" edge to the MentalState entity.
func (_u *PatientUpdate) ClearMentalState() *PatientUpdate {
	_u.mutation.ClearMentalState()
	return _u
}

// ClearAwarenessMap clears the "awareness_map" edge to the AwarenessMap entity.
func (_u *PatientUpdate) ClearAwarenessMap() *PatientUpdate {
	_u.mutation.ClearAwarenessMap()
	return _u
}

// ClearNightmareMap clears the "nightmare_map" edge to the NightmareMap entity.
func (_u *PatientUpdate) ClearNightmareMap() *PatientUpdate {
	_u.mutation.ClearNightmareMap()
	return _u
}

// ClearChemicalRecipes clears all "chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdate) ClearChemicalRecipes() *PatientUpdate {
	_u.mutation.ClearChemicalRecipes()
	return _u
}

// RemoveChemicalRecipeIDs removes the "chemical_recipes" edge to ChemicalRecipe entities by IDs.
func (_u *PatientUpdate) RemoveChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveChemicalRecipeIDs(ids...)
	return _u
}

// RemoveChemicalRecipes removes "chemical_recipes" edges to ChemicalRecipe entities.
func (_u *PatientUpdate) RemoveChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChemicalRecipeIDs(ids...)
}

// ClearMechanicalCompounds clears all "mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdate) ClearMechanicalCompounds() *PatientUpdate {
	_u.mutation.ClearMechanicalCompounds()
	return _u
}

// RemoveMechanicalCompoundIDs removes the "mechanical_compounds" edge to MechanicalCompound entities by IDs.
func (_u *PatientUpdate) RemoveMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveMechanicalCompoundIDs(ids...)
	return _u
}

// RemoveMechanicalCompounds removes "mechanical_compounds" edges to MechanicalCompound entities.
func (_u *PatientUpdate) RemoveMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMechanicalCompoundIDs(ids...)
}

// ClearAuthoredChemicalRecipes clears all "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdate) ClearAuthoredChemicalRecipes() *PatientUpdate {
	_u.mutation.ClearAuthoredChemicalRecipes()
	return _u
}

// RemoveAuthoredChemicalRecipeIDs removes the "authored_chemical_recipes" edge to ChemicalRecipe entities by IDs.
func (_u *PatientUpdate) RemoveAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// RemoveAuthoredChemicalRecipes removes "authored_chemical_recipes" edges to ChemicalRecipe entities.
func (_u *PatientUpdate) RemoveAuthoredChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredChemicalRecipeIDs(ids...)
}

// ClearAuthoredMechanicalCompounds clears all "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdate) ClearAuthoredMechanicalCompounds() *PatientUpdate {
	_u.mutation.ClearAuthoredMechanicalCompounds()
	return _u
}

// RemoveAuthoredMechanicalCompoundIDs removes the "authored_mechanical_compounds" edge to MechanicalCompound entities by IDs.
func (_u *PatientUpdate) RemoveAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// RemoveAuthoredMechanicalCompounds removes "authored_mechanical_compounds" edges to MechanicalCompound entities.
func (_u *PatientUpdate) RemoveAuthoredMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredMechanicalCompoundIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := patient.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Patient.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nickname(); ok {
		if err := patient.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`repo: validator failed for field "Patient.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telegram(); ok {
		if err := patient.TelegramValidator(v); err != nil {
			return &ValidationError{Name: "telegram", err: fmt.Errorf(`repo: validator failed for field "Patient.telegram": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := patient.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Patient.avatar_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChemistryLevel(); ok {
		if err := patient.ChemistryLevelValidator(v); err != nil {
			return &ValidationError{Name: "chemistry_level", err: fmt.Errorf(`repo: validator failed for field "Patient.chemistry_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MechanicsLevel(); ok {
		if err := patient.MechanicsLevelValidator(v); err != nil {
			return &ValidationError{Name: "mechanics_level", err: fmt.Errorf(`repo: validator failed for field "Patient.mechanics_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SocialSkillsLevel(); ok {
		if err := patient.SocialSkillsLevelValidator(v); err != nil {
			return &ValidationError{Name: "social_skills_level", err: fmt.Errorf(`repo: validator failed for field "Patient.social_skills_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhysicalSkillsLevel(); ok {
		if err := patient.PhysicalSkillsLevelValidator(v); err != nil {
			return &ValidationError{Name: "physical_skills_level", err: fmt.Errorf(`repo: validator failed for field "Patient.physical_skills_level": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(patient.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(patient.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telegram(); ok {
		_spec.SetField(patient.FieldTelegram, field.TypeString, value)
	}
	if _u.mutation.TelegramCleared() {
		_spec.ClearField(patient.FieldTelegram, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(patient.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(patient.FieldAvatarKey, field.TypeString)
	}
	if value, ok := _u.mutation.ChemistryLevel(); ok {
		_spec.SetField(patient.FieldChemistryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChemistryLevel(); ok {
		_spec.AddField(patient.FieldChemistryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MechanicsLevel(); ok {
		_spec.SetField(patient.FieldMechanicsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMechanicsLevel(); ok {
		_spec.AddField(patient.FieldMechanicsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SocialSkillsLevel(); ok {
		_spec.SetField(patient.FieldSocialSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSocialSkillsLevel(); ok {
		_spec.AddField(patient.FieldSocialSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhysicalSkillsLevel(); ok {
		_spec.SetField(patient.FieldPhysicalSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhysicalSkillsLevel(); ok {
		_spec.AddField(patient.FieldPhysicalSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusLevel(); ok {
		_spec.SetField(patient.FieldBonusLevel, field.TypeString, value)
	}
	if _u.mutation.BonusLevelCleared() {
		_spec.ClearField(patient.FieldBonusLevel, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentalStateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.MentalStateTable,
			Columns: []string{patient.MentalStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentalStateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.MentalStateTable,
			Columns: []string{patient.MentalStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AwarenessMapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.AwarenessMapTable,
			Columns: []string{patient.AwarenessMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AwarenessMapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.AwarenessMapTable,
			Columns: []string{patient.AwarenessMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NightmareMapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.NightmareMapTable,
			Columns: []string{patient.NightmareMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NightmareMapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.NightmareMapTable,
			Columns: []string{patient.NightmareMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ChemicalRecipesTable,
			Columns: []string{patient.ChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChemicalRecipesIDs(); len(nodes) > 0 && !_u.mutation.ChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ChemicalRecipesTable,
			Columns: []string{patient.ChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChemicalRecipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ChemicalRecipesTable,
			Columns: []string{patient.ChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MechanicalCompoundsTable,
			Columns: []string{patient.MechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMechanicalCompoundsIDs(); len(nodes) > 0 && !_u.mutation.MechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MechanicalCompoundsTable,
			Columns: []string{patient.MechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MechanicalCompoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MechanicalCompoundsTable,
			Columns: []string{patient.MechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthoredChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredChemicalRecipesTable,
			Columns: []string{patient.AuthoredChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredChemicalRecipesIDs(); len(nodes) > 0 && !_u.mutation.AuthoredChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredChemicalRecipesTable,
			Columns: []string{patient.AuthoredChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredChemicalRecipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredChemicalRecipesTable,
			Columns: []string{patient.AuthoredChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthoredMechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredMechanicalCompoundsTable,
			Columns: []string{patient.AuthoredMechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredMechanicalCompoundsIDs(); len(nodes) > 0 && !_u.mutation.AuthoredMechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredMechanicalCompoundsTable,
			Columns: []string{patient.AuthoredMechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredMechanicalCompoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredMechanicalCompoundsTable,
			Columns: []string{patient.AuthoredMechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdateOne) SetUserID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *PatientUpdateOne) ClearUserID() *PatientUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetMentalStateID sets the "mental_state_id" field.
func (_u *PatientUpdateOne) SetMentalStateID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetMentalStateID(v)
	return _u
}

// SetNillableMentalStateID sets the "mental_state_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMentalStateID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetMentalStateID(*v)
	}
	return _u
}

// ClearMentalStateID clears the value of the "mental_state_id" field.
func (_u *PatientUpdateOne) ClearMentalStateID() *PatientUpdateOne {
	_u.mutation.ClearMentalStateID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *PatientUpdateOne) SetFullName(v string) *PatientUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFullName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *PatientUpdateOne) SetNickname(v string) *PatientUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNickname(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetTelegram sets the "telegram" field.
func (_u *PatientUpdateOne) SetTelegram(v string) *PatientUpdateOne {
	_u.mutation.SetTelegram(v)
	return _u
}

// SetNillableTelegram sets the "telegram" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableTelegram(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetTelegram(*v)
	}
	return _u
}

// ClearTelegram clears the value of the "telegram" field.
func (_u *PatientUpdateOne) ClearTelegram() *PatientUpdateOne {
	_u.mutation.ClearTelegram()
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *PatientUpdateOne) SetAvatarKey(v string) *PatientUpdateOne {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAvatarKey(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *PatientUpdateOne) ClearAvatarKey() *PatientUpdateOne {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetChemistryLevel sets the "chemistry_level" field.
func (_u *PatientUpdateOne) SetChemistryLevel(v int) *PatientUpdateOne {
	_u.mutation.ResetChemistryLevel()
	_u.mutation.SetChemistryLevel(v)
	return _u
}

// SetNillableChemistryLevel sets the "chemistry_level" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableChemistryLevel(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetChemistryLevel(*v)
	}
	return _u
}

// AddChemistryLevel adds value to the "chemistry_level" field.
func (_u *PatientUpdateOne) AddChemistryLevel(v int) *PatientUpdateOne {
	_u.mutation.AddChemistryLevel(v)
	return _u
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (_u *PatientUpdateOne) SetMechanicsLevel(v int) *PatientUpdateOne {
	_u.mutation.ResetMechanicsLevel()
	_u.mutation.SetMechanicsLevel(v)
	return _u
}

// SetNillableMechanicsLevel sets the "mechanics_level" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMechanicsLevel(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetMechanicsLevel(*v)
	}
	return _u
}

// AddMechanicsLevel adds value to the "mechanics_level" field.
func (_u *PatientUpdateOne) AddMechanicsLevel(v int) *PatientUpdateOne {
	_u.mutation.AddMechanicsLevel(v)
	return _u
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (_u *PatientUpdateOne) SetSocialSkillsLevel(v int) *PatientUpdateOne {
	_u.mutation.ResetSocialSkillsLevel()
	_u.mutation.SetSocialSkillsLevel(v)
	return _u
}

// SetNillableSocialSkillsLevel sets the "social_skills_level" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSocialSkillsLevel(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetSocialSkillsLevel(*v)
	}
	return _u
}

// AddSocialSkillsLevel adds value to the "social_skills_level" field.
func (_u *PatientUpdateOne) AddSocialSkillsLevel(v int) *PatientUpdateOne {
	_u.mutation.AddSocialSkillsLevel(v)
	return _u
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (_u *PatientUpdateOne) SetPhysicalSkillsLevel(v int) *PatientUpdateOne {
	_u.mutation.ResetPhysicalSkillsLevel()
	_u.mutation.SetPhysicalSkillsLevel(v)
	return _u
}

// SetNillablePhysicalSkillsLevel sets the "physical_skills_level" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhysicalSkillsLevel(v *int) *PatientUpdateOne {
	if v != nil {
		_u.SetPhysicalSkillsLevel(*v)
	}
	return _u
}

// AddPhysicalSkillsLevel adds value to the "physical_skills_level" field.
func (_u *PatientUpdateOne) AddPhysicalSkillsLevel(v int) *PatientUpdateOne {
	_u.mutation.AddPhysicalSkillsLevel(v)
	return _u
}

// SetBonusLevel sets the "bonus_level" field.
func (_u *PatientUpdateOne) SetBonusLevel(v string) *PatientUpdateOne {
	_u.mutation.SetBonusLevel(v)
	return _u
}

// SetNillableBonusLevel sets the "bonus_level" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBonusLevel(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetBonusLevel(*v)
	}
	return _u
}

// ClearBonusLevel clears the value of the "bonus_level" field.
func (_u *PatientUpdateOne) ClearBonusLevel() *PatientUpdateOne {
	_u.mutation.ClearBonusLevel()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdateOne) SetUser(v *User) *PatientUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetMentalState sets the "mental_state" edge to the MentalState entity.
func (_u *PatientUpdateOne) SetMentalState(v *MentalState) *PatientUpdateOne {
	return _u.SetMentalStateID(v.ID)
}

// SetAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by ID.
func (_u *PatientUpdateOne) SetAwarenessMapID(id uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetAwarenessMapID(id)
	return _u
}

// SetNillableAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by ID if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableAwarenessMapID(id *uuid.UUID) *PatientUpdateOne {
	if id != nil {
		_u = _u.SetAwarenessMapID(*id)
	}
	return _u
}

// SetAwarenessMap sets the "awareness_map" edge to the AwarenessMap entity.
func (_u *PatientUpdateOne) SetAwarenessMap(v *AwarenessMap) *PatientUpdateOne {
	return _u.SetAwarenessMapID(v.ID)
}

// SetNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by ID.
func (_u *PatientUpdateOne) SetNightmareMapID(id uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetNightmareMapID(id)
	return _u
}

// SetNillableNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by ID if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableNightmareMapID(id *uuid.UUID) *PatientUpdateOne {
	if id != nil {
		_u = _u.SetNightmareMapID(*id)
	}
	return _u
}

// SetNightmareMap sets the "nightmare_map" edge to the NightmareMap entity.
func (_u *PatientUpdateOne) SetNightmareMap(v *NightmareMap) *PatientUpdateOne {
	return _u.SetNightmareMapID(v.ID)
}

// AddChemicalRecipeIDs adds the "chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_u *PatientUpdateOne) AddChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddChemicalRecipeIDs(ids...)
	return _u
}

// AddChemicalRecipes adds the "chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdateOne) AddChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChemicalRecipeIDs(ids...)
}

// AddMechanicalCompoundIDs adds the "mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_u *PatientUpdateOne) AddMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddMechanicalCompoundIDs(ids...)
	return _u
}

// AddMechanicalCompounds adds the "mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdateOne) AddMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMechanicalCompoundIDs(ids...)
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_u *PatientUpdateOne) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// AddAuthoredChemicalRecipes adds the "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdateOne) AddAuthoredChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredChemicalRecipeIDs(ids...)
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_u *PatientUpdateOne) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// AddAuthoredMechanicalCompounds adds the "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdateOne) AddAuthoredMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredMechanicalCompoundIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdateOne) ClearUser() *PatientUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearMentalState clears the "mental_state" edge to the MentalState entity.
func (_u *PatientUpdateOne) ClearMentalState() *PatientUpdateOne {
	_u.mutation.ClearMentalState()
	return _u
}

// ClearAwarenessMap clears the "awareness_map" edge to the AwarenessMap entity.
func (_u *PatientUpdateOne) ClearAwarenessMap() *PatientUpdateOne {
	_u.mutation.ClearAwarenessMap()
	return _u
}

// ClearNightmareMap clears the "nightmare_map" edge to the NightmareMap entity.
func (_u *PatientUpdateOne) ClearNightmareMap() *PatientUpdateOne {
	_u.mutation.ClearNightmareMap()
	return _u
}

// ClearChemicalRecipes clears all "chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdateOne) ClearChemicalRecipes() *PatientUpdateOne {
	_u.mutation.ClearChemicalRecipes()
	return _u
}

// RemoveChemicalRecipeIDs removes the "chemical_recipes" edge to ChemicalRecipe entities by IDs.
func (_u *PatientUpdateOne) RemoveChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveChemicalRecipeIDs(ids...)
	return _u
}

// RemoveChemicalRecipes removes "chemical_recipes" edges to ChemicalRecipe entities.
func (_u *PatientUpdateOne) RemoveChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChemicalRecipeIDs(ids...)
}

// ClearMechanicalCompounds clears all "mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdateOne) ClearMechanicalCompounds() *PatientUpdateOne {
	_u.mutation.ClearMechanicalCompounds()
	return _u
}

// RemoveMechanicalCompoundIDs removes the "mechanical_compounds" edge to MechanicalCompound entities by IDs.
func (_u *PatientUpdateOne) RemoveMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveMechanicalCompoundIDs(ids...)
	return _u
}

// RemoveMechanicalCompounds removes "mechanical_compounds" edges to MechanicalCompound entities.
func (_u *PatientUpdateOne) RemoveMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMechanicalCompoundIDs(ids...)
}

// ClearAuthoredChemicalRecipes clears all "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *PatientUpdateOne) ClearAuthoredChemicalRecipes() *PatientUpdateOne {
	_u.mutation.ClearAuthoredChemicalRecipes()
	return _u
}

// RemoveAuthoredChemicalRecipeIDs removes the "authored_chemical_recipes" edge to ChemicalRecipe entities by IDs.
func (_u *PatientUpdateOne) RemoveAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// RemoveAuthoredChemicalRecipes removes "authored_chemical_recipes" edges to ChemicalRecipe entities.
func (_u *PatientUpdateOne) RemoveAuthoredChemicalRecipes(v ...*ChemicalRecipe) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredChemicalRecipeIDs(ids...)
}

// ClearAuthoredMechanicalCompounds clears all "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *PatientUpdateOne) ClearAuthoredMechanicalCompounds() *PatientUpdateOne {
	_u.mutation.ClearAuthoredMechanicalCompounds()
	return _u
}

// RemoveAuthoredMechanicalCompoundIDs removes the "authored_mechanical_compounds" edge to MechanicalCompound entities by IDs.
func (_u *PatientUpdateOne) RemoveAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// RemoveAuthoredMechanicalCompounds removes "authored_mechanical_compounds" edges to MechanicalCompound entities.
func (_u *PatientUpdateOne) RemoveAuthoredMechanicalCompounds(v ...*MechanicalCompound) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredMechanicalCompoundIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := patient.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Patient.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nickname(); ok {
		if err := patient.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`repo: validator failed for field "Patient.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telegram(); ok {
		if err := patient.TelegramValidator(v); err != nil {
			return &ValidationError{Name: "telegram", err: fmt.Errorf(`repo: validator failed for field "Patient.telegram": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := patient.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Patient.avatar_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChemistryLevel(); ok {
		if err := patient.ChemistryLevelValidator(v); err != nil {
			return &ValidationError{Name: "chemistry_level", err: fmt.Errorf(`repo: validator failed for field "Patient.chemistry_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MechanicsLevel(); ok {
		if err := patient.MechanicsLevelValidator(v); err != nil {
			return &ValidationError{Name: "mechanics_level", err: fmt.Errorf(`repo: validator failed for field "Patient.mechanics_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SocialSkillsLevel(); ok {
		if err := patient.SocialSkillsLevelValidator(v); err != nil {
			return &ValidationError{Name: "social_skills_level", err: fmt.Errorf(`repo: validator failed for field "Patient.social_skills_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PhysicalSkillsLevel(); ok {
		if err := patient.PhysicalSkillsLevelValidator(v); err != nil {
			return &ValidationError{Name: "physical_skills_level", err: fmt.Errorf(`repo: validator failed for field "Patient.physical_skills_level": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(patient.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(patient.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telegram(); ok {
		_spec.SetField(patient.FieldTelegram, field.TypeString, value)
	}
	if _u.mutation.TelegramCleared() {
		_spec.ClearField(patient.FieldTelegram, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(patient.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(patient.FieldAvatarKey, field.TypeString)
	}
	if value, ok := _u.mutation.ChemistryLevel(); ok {
		_spec.SetField(patient.FieldChemistryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChemistryLevel(); ok {
		_spec.AddField(patient.FieldChemistryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MechanicsLevel(); ok {
		_spec.SetField(patient.FieldMechanicsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMechanicsLevel(); ok {
		_spec.AddField(patient.FieldMechanicsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SocialSkillsLevel(); ok {
		_spec.SetField(patient.FieldSocialSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSocialSkillsLevel(); ok {
		_spec.AddField(patient.FieldSocialSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhysicalSkillsLevel(); ok {
		_spec.SetField(patient.FieldPhysicalSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPhysicalSkillsLevel(); ok {
		_spec.AddField(patient.FieldPhysicalSkillsLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusLevel(); ok {
		_spec.SetField(patient.FieldBonusLevel, field.TypeString, value)
	}
	if _u.mutation.BonusLevelCleared() {
		_spec.ClearField(patient.FieldBonusLevel, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MentalStateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.MentalStateTable,
			Columns: []string{patient.MentalStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MentalStateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.MentalStateTable,
			Columns: []string{patient.MentalStateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AwarenessMapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.AwarenessMapTable,
			Columns: []string{patient.AwarenessMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AwarenessMapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.AwarenessMapTable,
			Columns: []string{patient.AwarenessMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(awarenessmap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.NightmareMapCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.NightmareMapTable,
			Columns: []string{patient.NightmareMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NightmareMapIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   patient.NightmareMapTable,
			Columns: []string{patient.NightmareMapColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(nightmaremap.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ChemicalRecipesTable,
			Columns: []string{patient.ChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChemicalRecipesIDs(); len(nodes) > 0 && !_u.mutation.ChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ChemicalRecipesTable,
			Columns: []string{patient.ChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChemicalRecipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.ChemicalRecipesTable,
			Columns: []string{patient.ChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MechanicalCompoundsTable,
			Columns: []string{patient.MechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMechanicalCompoundsIDs(); len(nodes) > 0 && !_u.mutation.MechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MechanicalCompoundsTable,
			Columns: []string{patient.MechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MechanicalCompoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.MechanicalCompoundsTable,
			Columns: []string{patient.MechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthoredChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredChemicalRecipesTable,
			Columns: []string{patient.AuthoredChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredChemicalRecipesIDs(); len(nodes) > 0 && !_u.mutation.AuthoredChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredChemicalRecipesTable,
			Columns: []string{patient.AuthoredChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredChemicalRecipesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredChemicalRecipesTable,
			Columns: []string{patient.AuthoredChemicalRecipesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chemicalrecipe.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AuthoredMechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredMechanicalCompoundsTable,
			Columns: []string{patient.AuthoredMechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuthoredMechanicalCompoundsIDs(); len(nodes) > 0 && !_u.mutation.AuthoredMechanicalCompoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredMechanicalCompoundsTable,
			Columns: []string{patient.AuthoredMechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuthoredMechanicalCompoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AuthoredMechanicalCompoundsTable,
			Columns: []string{patient.AuthoredMechanicalCompoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(mechanicalcompound.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

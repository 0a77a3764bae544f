// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
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
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PatientCreate) SetUserID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUserID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetMentalStateID sets the "mental_state_id" field.
func (_c *PatientCreate) SetMentalStateID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetMentalStateID(v)
	return _c
}

// SetNillableMentalStateID sets the "mental_state_id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMentalStateID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetMentalStateID(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *PatientCreate) SetFullName(v string) *PatientCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNickname sets the "nickname" field.
func (_c *PatientCreate) SetNickname(v string) *PatientCreate {
	_c.mutation.SetNickname(v)
	return _c
}

// SetTelegram sets the "telegram" field.
func (_c *PatientCreate) SetTelegram(v string) *PatientCreate {
	_c.mutation.SetTelegram(v)
	return _c
}

// SetNillableTelegram sets the "telegram" field if the given value is not nil.
func (_c *PatientCreate) SetNillableTelegram(v *string) *PatientCreate {
	if v != nil {
		_c.SetTelegram(*v)
	}
	return _c
}

// SetAvatarKey sets the "avatar_key" field.
func (_c *PatientCreate) SetAvatarKey(v string) *PatientCreate {
	_c.mutation.SetAvatarKey(v)
	return _c
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_c *PatientCreate) SetNillableAvatarKey(v *string) *PatientCreate {
	if v != nil {
		_c.SetAvatarKey(*v)
	}
	return _c
}

// SetChemistryLevel sets the "chemistry_level" field.
func (_c *PatientCreate) SetChemistryLevel(v int) *PatientCreate {
	_c.mutation.SetChemistryLevel(v)
	return _c
}

// SetNillableChemistryLevel sets the "chemistry_level" field if the given value is not nil.
func (_c *PatientCreate) SetNillableChemistryLevel(v *int) *PatientCreate {
	if v != nil {
		_c.SetChemistryLevel(*v)
	}
	return _c
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (_c *PatientCreate) SetMechanicsLevel(v int) *PatientCreate {
	_c.mutation.SetMechanicsLevel(v)
	return _c
}

// SetNillableMechanicsLevel sets the "mechanics_level" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMechanicsLevel(v *int) *PatientCreate {
	if v != nil {
		_c.SetMechanicsLevel(*v)
	}
	return _c
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (_c *PatientCreate) SetSocialSkillsLevel(v int) *PatientCreate {
	_c.mutation.SetSocialSkillsLevel(v)
	return _c
}

// SetNillableSocialSkillsLevel sets the "social_skills_level" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSocialSkillsLevel(v *int) *PatientCreate {
	if v != nil {
		_c.SetSocialSkillsLevel(*v)
	}
	return _c
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (_c *PatientCreate) SetPhysicalSkillsLevel(v int) *PatientCreate {
	_c.mutation.SetPhysicalSkillsLevel(v)
	return _c
}

// SetNillablePhysicalSkillsLevel sets the "physical_skills_level" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePhysicalSkillsLevel(v *int) *PatientCreate {
	if v != nil {
		_c.SetPhysicalSkillsLevel(*v)
	}
	return _c
}

// SetBonusLevel sets the "bonus_level" field.
func (_c *PatientCreate) SetBonusLevel(v string) *PatientCreate {
	_c.mutation.SetBonusLevel(v)
	return _c
}

// SetNillableBonusLevel sets the "bonus_level" field if the given value is not nil.
func (_c *PatientCreate) SetNillableBonusLevel(v *string) *PatientCreate {
	if v != nil {
		_c.SetBonusLevel(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *PatientCreate) SetUser(v *User) *PatientCreate {
	return _c.SetUserID(v.ID)
}

// SetMentalState sets the "mental_state" edge to the MentalState entity.
func (_c *PatientCreate) SetMentalState(v *MentalState) *PatientCreate {
	return _c.SetMentalStateID(v.ID)
}

// SetAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by ID.
func (_c *PatientCreate) SetAwarenessMapID(id uuid.UUID) *PatientCreate {
	_c.mutation.SetAwarenessMapID(id)
	return _c
}

// SetNillableAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by ID if the given value is not nil.
func (_c *PatientCreate) SetNillableAwarenessMapID(id *uuid.UUID) *PatientCreate {
	if id != nil {
		_c = _c.SetAwarenessMapID(*id)
	}
	return _c
}

// SetAwarenessMap sets the "awareness_map" edge to the AwarenessMap entity.
func (_c *PatientCreate) SetAwarenessMap(v *AwarenessMap) *PatientCreate {
	return _c.SetAwarenessMapID(v.ID)
}

// SetNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by ID.
func (_c *PatientCreate) SetNightmareMapID(id uuid.UUID) *PatientCreate {
	_c.mutation.SetNightmareMapID(id)
	return _c
}

// SetNillableNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by ID if the given value is not nil.
func (_c *PatientCreate) SetNillableNightmareMapID(id *uuid.UUID) *PatientCreate {
	if id != nil {
		_c = _c.SetNightmareMapID(*id)
	}
	return _c
}

// SetNightmareMap sets the "nightmare_map" edge to the NightmareMap entity.
func (_c *PatientCreate) SetNightmareMap(v *NightmareMap) *PatientCreate {
	return _c.SetNightmareMapID(v.ID)
}

// AddChemicalRecipeIDs adds the "chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_c *PatientCreate) AddChemicalRecipeIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddChemicalRecipeIDs(ids...)
	return _c
}

// AddChemicalRecipes adds the "chemical_recipes" edges to the ChemicalRecipe entity.
func (_c *PatientCreate) AddChemicalRecipes(v ...*ChemicalRecipe) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChemicalRecipeIDs(ids...)
}

// AddMechanicalCompoundIDs adds the "mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_c *PatientCreate) AddMechanicalCompoundIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddMechanicalCompoundIDs(ids...)
	return _c
}

// AddMechanicalCompounds adds the "mechanical_compounds" edges to the MechanicalCompound entity.
func (_c *PatientCreate) AddMechanicalCompounds(v ...*MechanicalCompound) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMechanicalCompoundIDs(ids...)
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_c *PatientCreate) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddAuthoredChemicalRecipeIDs(ids...)
	return _c
}

// AddAuthoredChemicalRecipes adds the "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_c *PatientCreate) AddAuthoredChemicalRecipes(v ...*ChemicalRecipe) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthoredChemicalRecipeIDs(ids...)
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_c *PatientCreate) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddAuthoredMechanicalCompoundIDs(ids...)
	return _c
}

// AddAuthoredMechanicalCompounds adds the "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_c *PatientCreate) AddAuthoredMechanicalCompounds(v ...*MechanicalCompound) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthoredMechanicalCompoundIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ChemistryLevel(); !ok {
		v := patient.DefaultChemistryLevel
		_c.mutation.SetChemistryLevel(v)
	}
	if _, ok := _c.mutation.MechanicsLevel(); !ok {
		v := patient.DefaultMechanicsLevel
		_c.mutation.SetMechanicsLevel(v)
	}
	if _, ok := _c.mutation.SocialSkillsLevel(); !ok {
		v := patient.DefaultSocialSkillsLevel
		_c.mutation.SetSocialSkillsLevel(v)
	}
	if _, ok := _c.mutation.PhysicalSkillsLevel(); !ok {
		v := patient.DefaultPhysicalSkillsLevel
		_c.mutation.SetPhysicalSkillsLevel(v)
	}
	if _, ok := _c.mutation.BonusLevel(); !ok {
		v := patient.DefaultBonusLevel
		_c.mutation.SetBonusLevel(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Patient.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := patient.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Patient.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Nickname(); !ok {
		return &ValidationError{Name: "nickname", err: errors.New(`repo: missing required field "Patient.nickname"`)}
	}
	if v, ok := _c.mutation.Nickname(); ok {
		if err := patient.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`repo: validator failed for field "Patient.nickname": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Telegram(); ok {
		if err := patient.TelegramValidator(v); err != nil {
			return &ValidationError{Name: "telegram", err: fmt.Errorf(`repo: validator failed for field "Patient.telegram": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AvatarKey(); ok {
		if err := patient.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Patient.avatar_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChemistryLevel(); !ok {
		return &ValidationError{Name: "chemistry_level", err: errors.New(`repo: missing required field "Patient.chemistry_level"`)}
	}
	if v, ok := _c.mutation.ChemistryLevel(); ok {
		if err := patient.ChemistryLevelValidator(v); err != nil {
			return &ValidationError{Name: "chemistry_level", err: fmt.Errorf(`repo: validator failed for field "Patient.chemistry_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MechanicsLevel(); !ok {
		return &ValidationError{Name: "mechanics_level", err: errors.New(`repo: missing required field "Patient.mechanics_level"`)}
	}
	if v, ok := _c.mutation.MechanicsLevel(); ok {
		if err := patient.MechanicsLevelValidator(v); err != nil {
			return &ValidationError{Name: "mechanics_level", err: fmt.Errorf(`repo: validator failed for field "Patient.mechanics_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SocialSkillsLevel(); !ok {
		return &ValidationError{Name: "social_skills_level", err: errors.New(`repo: missing required field "Patient.social_skills_level"`)}
	}
	if v, ok := _c.mutation.SocialSkillsLevel(); ok {
		if err := patient.SocialSkillsLevelValidator(v); err != nil {
			return &ValidationError{Name: "social_skills_level", err: fmt.Errorf(`repo: validator failed for field "Patient.social_skills_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PhysicalSkillsLevel(); !ok {
		return &ValidationError{Name: "physical_skills_level", err: errors.New(`repo: missing required field "Patient.physical_skills_level"`)}
	}
	if v, ok := _c.mutation.PhysicalSkillsLevel(); ok {
		if err := patient.PhysicalSkillsLevelValidator(v); err != nil {
			return &ValidationError{Name: "physical_skills_level", err: fmt.Errorf(`repo: validator failed for field "Patient.physical_skills_level": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(patient.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Nickname(); ok {
		_spec.SetField(patient.FieldNickname, field.TypeString, value)
		_node.Nickname = value
	}
	if value, ok := _c.mutation.Telegram(); ok {
		_spec.SetField(patient.FieldTelegram, field.TypeString, value)
		_node.Telegram = value
	}
	if value, ok := _c.mutation.AvatarKey(); ok {
		_spec.SetField(patient.FieldAvatarKey, field.TypeString, value)
		_node.AvatarKey = value
	}
	if value, ok := _c.mutation.ChemistryLevel(); ok {
		_spec.SetField(patient.FieldChemistryLevel, field.TypeInt, value)
		_node.ChemistryLevel = value
	}
	if value, ok := _c.mutation.MechanicsLevel(); ok {
		_spec.SetField(patient.FieldMechanicsLevel, field.TypeInt, value)
		_node.MechanicsLevel = value
	}
	if value, ok := _c.mutation.SocialSkillsLevel(); ok {
		_spec.SetField(patient.FieldSocialSkillsLevel, field.TypeInt, value)
		_node.SocialSkillsLevel = value
	}
	if value, ok := _c.mutation.PhysicalSkillsLevel(); ok {
		_spec.SetField(patient.FieldPhysicalSkillsLevel, field.TypeInt, value)
		_node.PhysicalSkillsLevel = value
	}
	if value, ok := _c.mutation.BonusLevel(); ok {
		_spec.SetField(patient.FieldBonusLevel, field.TypeString, value)
		_node.BonusLevel = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MentalStateIDs(); len(nodes) > 0 {
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
		_node.MentalStateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AwarenessMapIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.NightmareMapIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChemicalRecipesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MechanicalCompoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthoredChemicalRecipesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthoredMechanicalCompoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreate) OnConflict(opts ...sql.ConflictOption) *PatientUpsertOne {
	_c.conflict = opts
	return &PatientUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreate) OnConflictColumns(columns ...string) *PatientUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertOne{
		create: _c,
	}
}

type (
	// PatientUpsertOne is the builder for "upsert"-ing
	//  one Patient node.
	PatientUpsertOne struct {
		create *PatientCreate
	}

	// PatientUpsert is the "OnConflict" setter.
	PatientUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsert) SetUpdatedAt(v time.Time) *PatientUpsert {
	u.Set(patient.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUpdatedAt() *PatientUpsert {
	u.SetExcluded(patient.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsert) SetUserID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateUserID() *PatientUpsert {
	u.SetExcluded(patient.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *PatientUpsert) ClearUserID() *PatientUpsert {
	u.SetNull(patient.FieldUserID)
	return u
}

// SetMentalStateID sets the "mental_state_id" field.
func (u *PatientUpsert) SetMentalStateID(v uuid.UUID) *PatientUpsert {
	u.Set(patient.FieldMentalStateID, v)
	return u
}

// UpdateMentalStateID sets the "mental_state_id" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMentalStateID() *PatientUpsert {
	u.SetExcluded(patient.FieldMentalStateID)
	return u
}

// ClearMentalStateID clears the value of the "mental_state_id" field.
func (u *PatientUpsert) ClearMentalStateID() *PatientUpsert {
	u.SetNull(patient.FieldMentalStateID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *PatientUpsert) SetFullName(v string) *PatientUpsert {
	u.Set(patient.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *PatientUpsert) UpdateFullName() *PatientUpsert {
	u.SetExcluded(patient.FieldFullName)
	return u
}

// SetNickname sets the "nickname" field.
func (u *PatientUpsert) SetNickname(v string) *PatientUpsert {
	u.Set(patient.FieldNickname, v)
	return u
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *PatientUpsert) UpdateNickname() *PatientUpsert {
	u.SetExcluded(patient.FieldNickname)
	return u
}

// SetTelegram sets the "telegram" field.
func (u *PatientUpsert) SetTelegram(v string) *PatientUpsert {
	u.Set(patient.FieldTelegram, v)
	return u
}

// UpdateTelegram sets the "telegram" field to the value that was provided on create.
func (u *PatientUpsert) UpdateTelegram() *PatientUpsert {
	u.SetExcluded(patient.FieldTelegram)
	return u
}

// ClearTelegram clears the value of the "telegram" field.
func (u *PatientUpsert) ClearTelegram() *PatientUpsert {
	u.SetNull(patient.FieldTelegram)
	return u
}

// SetAvatarKey sets the "avatar_key" field.
func (u *PatientUpsert) SetAvatarKey(v string) *PatientUpsert {
	u.Set(patient.FieldAvatarKey, v)
	return u
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *PatientUpsert) UpdateAvatarKey() *PatientUpsert {
	u.SetExcluded(patient.FieldAvatarKey)
	return u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *PatientUpsert) ClearAvatarKey() *PatientUpsert {
	u.SetNull(patient.FieldAvatarKey)
	return u
}

// SetChemistryLevel sets the "chemistry_level" field.
func (u *PatientUpsert) SetChemistryLevel(v int) *PatientUpsert {
	u.Set(patient.FieldChemistryLevel, v)
	return u
}

// UpdateChemistryLevel sets the "chemistry_level" field to the value that was provided on create.
func (u *PatientUpsert) UpdateChemistryLevel() *PatientUpsert {
	u.SetExcluded(patient.FieldChemistryLevel)
	return u
}

// AddChemistryLevel adds v to the "chemistry_level" field.
func (u *PatientUpsert) AddChemistryLevel(v int) *PatientUpsert {
	u.Add(patient.FieldChemistryLevel, v)
	return u
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (u *PatientUpsert) SetMechanicsLevel(v int) *PatientUpsert {
	u.Set(patient.FieldMechanicsLevel, v)
	return u
}

// UpdateMechanicsLevel sets the "mechanics_level" field to the value that was provided on create.
func (u *PatientUpsert) UpdateMechanicsLevel() *PatientUpsert {
	u.SetExcluded(patient.FieldMechanicsLevel)
	return u
}

// AddMechanicsLevel adds v to the "mechanics_level" field.
func (u *PatientUpsert) AddMechanicsLevel(v int) *PatientUpsert {
	u.Add(patient.FieldMechanicsLevel, v)
	return u
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (u *PatientUpsert) SetSocialSkillsLevel(v int) *PatientUpsert {
	u.Set(patient.FieldSocialSkillsLevel, v)
	return u
}

// UpdateSocialSkillsLevel sets the "social_skills_level" field to the value that was provided on create.
func (u *PatientUpsert) UpdateSocialSkillsLevel() *PatientUpsert {
	u.SetExcluded(patient.FieldSocialSkillsLevel)
	return u
}

// AddSocialSkillsLevel adds v to the "social_skills_level" field.
func (u *PatientUpsert) AddSocialSkillsLevel(v int) *PatientUpsert {
	u.Add(patient.FieldSocialSkillsLevel, v)
	return u
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (u *PatientUpsert) SetPhysicalSkillsLevel(v int) *PatientUpsert {
	u.Set(patient.FieldPhysicalSkillsLevel, v)
	return u
}

// UpdatePhysicalSkillsLevel sets the "physical_skills_level" field to the value that was provided on create.
func (u *PatientUpsert) UpdatePhysicalSkillsLevel() *PatientUpsert {
	u.SetExcluded(patient.FieldPhysicalSkillsLevel)
	return u
}

// AddPhysicalSkillsLevel adds v to the "physical_skills_level" field.
func (u *PatientUpsert) AddPhysicalSkillsLevel(v int) *PatientUpsert {
	u.Add(patient.FieldPhysicalSkillsLevel, v)
	return u
}

// SetBonusLevel sets the "bonus_level" field.
func (u *PatientUpsert) SetBonusLevel(v string) *PatientUpsert {
	u.Set(patient.FieldBonusLevel, v)
	return u
}

// UpdateBonusLevel sets the "bonus_level" field to the value that was provided on create.
func (u *PatientUpsert) UpdateBonusLevel() *PatientUpsert {
	u.SetExcluded(patient.FieldBonusLevel)
	return u
}

// ClearBonusLevel clears the value of the "bonus_level" field.
func (u *PatientUpsert) ClearBonusLevel() *PatientUpsert {
	u.SetNull(patient.FieldBonusLevel)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertOne) UpdateNewValues() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patient.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patient.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientUpsertOne) Ignore() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertOne) DoNothing() *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreate.OnConflict
// documentation for more info.
func (u *PatientUpsertOne) Update(set func(*PatientUpsert)) *PatientUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertOne) SetUpdatedAt(v time.Time) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUpdatedAt() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertOne) SetUserID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *PatientUpsertOne) ClearUserID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearUserID()
	})
}

// SetMentalStateID sets the "mental_state_id" field.
func (u *PatientUpsertOne) SetMentalStateID(v uuid.UUID) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMentalStateID(v)
	})
}

// UpdateMentalStateID sets the "mental_state_id" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMentalStateID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMentalStateID()
	})
}

// ClearMentalStateID clears the value of the "mental_state_id" field.
func (u *PatientUpsertOne) ClearMentalStateID() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMentalStateID()
	})
}

// SetFullName sets the "full_name" field.
func (u *PatientUpsertOne) SetFullName(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateFullName() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFullName()
	})
}

// SetNickname sets the "nickname" field.
func (u *PatientUpsertOne) SetNickname(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetNickname(v)
	})
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateNickname() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNickname()
	})
}

// SetTelegram sets the "telegram" field.
func (u *PatientUpsertOne) SetTelegram(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetTelegram(v)
	})
}

// UpdateTelegram sets the "telegram" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateTelegram() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateTelegram()
	})
}

// ClearTelegram clears the value of the "telegram" field.
func (u *PatientUpsertOne) ClearTelegram() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearTelegram()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *PatientUpsertOne) SetAvatarKey(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateAvatarKey() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *PatientUpsertOne) ClearAvatarKey() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAvatarKey()
	})
}

// SetChemistryLevel sets the "chemistry_level" field.
func (u *PatientUpsertOne) SetChemistryLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetChemistryLevel(v)
	})
}

// AddChemistryLevel adds v to the "chemistry_level" field.
func (u *PatientUpsertOne) AddChemistryLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddChemistryLevel(v)
	})
}

// UpdateChemistryLevel sets the "chemistry_level" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateChemistryLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChemistryLevel()
	})
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (u *PatientUpsertOne) SetMechanicsLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetMechanicsLevel(v)
	})
}

// AddMechanicsLevel adds v to the "mechanics_level" field.
func (u *PatientUpsertOne) AddMechanicsLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddMechanicsLevel(v)
	})
}

// UpdateMechanicsLevel sets the "mechanics_level" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateMechanicsLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMechanicsLevel()
	})
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (u *PatientUpsertOne) SetSocialSkillsLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetSocialSkillsLevel(v)
	})
}

// AddSocialSkillsLevel adds v to the "social_skills_level" field.
func (u *PatientUpsertOne) AddSocialSkillsLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddSocialSkillsLevel(v)
	})
}

// UpdateSocialSkillsLevel sets the "social_skills_level" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateSocialSkillsLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSocialSkillsLevel()
	})
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (u *PatientUpsertOne) SetPhysicalSkillsLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhysicalSkillsLevel(v)
	})
}

// AddPhysicalSkillsLevel adds v to the "physical_skills_level" field.
func (u *PatientUpsertOne) AddPhysicalSkillsLevel(v int) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.AddPhysicalSkillsLevel(v)
	})
}

// UpdatePhysicalSkillsLevel sets the "physical_skills_level" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdatePhysicalSkillsLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhysicalSkillsLevel()
	})
}

// SetBonusLevel sets the "bonus_level" field.
func (u *PatientUpsertOne) SetBonusLevel(v string) *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.SetBonusLevel(v)
	})
}

// UpdateBonusLevel sets the "bonus_level" field to the value that was provided on create.
func (u *PatientUpsertOne) UpdateBonusLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBonusLevel()
	})
}

// ClearBonusLevel clears the value of the "bonus_level" field.
func (u *PatientUpsertOne) ClearBonusLevel() *PatientUpsertOne {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBonusLevel()
	})
}

// Exec executes the query.
func (u *PatientUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientUpsertOne.ID is not supported by MySQL driver. Use PatientUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
	conflict []sql.ConflictOption
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Patient.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientUpsertBulk {
	_c.conflict = opts
	return &PatientUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientCreateBulk) OnConflictColumns(columns ...string) *PatientUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientUpsertBulk{
		create: _c,
	}
}

// PatientUpsertBulk is the builder for "upsert"-ing
// a bulk of Patient nodes.
type PatientUpsertBulk struct {
	create *PatientCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patient.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientUpsertBulk) UpdateNewValues() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patient.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patient.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Patient.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientUpsertBulk) Ignore() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientUpsertBulk) DoNothing() *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientCreateBulk.OnConflict
// documentation for more info.
func (u *PatientUpsertBulk) Update(set func(*PatientUpsert)) *PatientUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientUpsertBulk) SetUpdatedAt(v time.Time) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUpdatedAt() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *PatientUpsertBulk) SetUserID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *PatientUpsertBulk) ClearUserID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearUserID()
	})
}

// SetMentalStateID sets the "mental_state_id" field.
func (u *PatientUpsertBulk) SetMentalStateID(v uuid.UUID) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMentalStateID(v)
	})
}

// UpdateMentalStateID sets the "mental_state_id" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMentalStateID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMentalStateID()
	})
}

// ClearMentalStateID clears the value of the "mental_state_id" field.
func (u *PatientUpsertBulk) ClearMentalStateID() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearMentalStateID()
	})
}

// SetFullName sets the "full_name" field.
func (u *PatientUpsertBulk) SetFullName(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateFullName() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateFullName()
	})
}

// SetNickname sets the "nickname" field.
func (u *PatientUpsertBulk) SetNickname(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetNickname(v)
	})
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateNickname() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateNickname()
	})
}

// SetTelegram sets the "telegram" field.
func (u *PatientUpsertBulk) SetTelegram(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetTelegram(v)
	})
}

// UpdateTelegram sets the "telegram" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateTelegram() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateTelegram()
	})
}

// ClearTelegram clears the value of the "telegram" field.
func (u *PatientUpsertBulk) ClearTelegram() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearTelegram()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *PatientUpsertBulk) SetAvatarKey(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateAvatarKey() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *PatientUpsertBulk) ClearAvatarKey() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearAvatarKey()
	})
}

// SetChemistryLevel sets the "chemistry_level" field.
func (u *PatientUpsertBulk) SetChemistryLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetChemistryLevel(v)
	})
}

// AddChemistryLevel adds v to the "chemistry_level" field.
func (u *PatientUpsertBulk) AddChemistryLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddChemistryLevel(v)
	})
}

// UpdateChemistryLevel sets the "chemistry_level" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateChemistryLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateChemistryLevel()
	})
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (u *PatientUpsertBulk) SetMechanicsLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetMechanicsLevel(v)
	})
}

// AddMechanicsLevel adds v to the "mechanics_level" field.
func (u *PatientUpsertBulk) AddMechanicsLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddMechanicsLevel(v)
	})
}

// UpdateMechanicsLevel sets the "mechanics_level" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateMechanicsLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateMechanicsLevel()
	})
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (u *PatientUpsertBulk) SetSocialSkillsLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetSocialSkillsLevel(v)
	})
}

// AddSocialSkillsLevel adds v to the "social_skills_level" field.
func (u *PatientUpsertBulk) AddSocialSkillsLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddSocialSkillsLevel(v)
	})
}

// UpdateSocialSkillsLevel sets the "social_skills_level" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateSocialSkillsLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateSocialSkillsLevel()
	})
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (u *PatientUpsertBulk) SetPhysicalSkillsLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetPhysicalSkillsLevel(v)
	})
}

// AddPhysicalSkillsLevel adds v to the "physical_skills_level" field.
func (u *PatientUpsertBulk) AddPhysicalSkillsLevel(v int) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.AddPhysicalSkillsLevel(v)
	})
}

// UpdatePhysicalSkillsLevel sets the "physical_skills_level" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdatePhysicalSkillsLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdatePhysicalSkillsLevel()
	})
}

// SetBonusLevel sets the "bonus_level" field.
func (u *PatientUpsertBulk) SetBonusLevel(v string) *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.SetBonusLevel(v)
	})
}

// UpdateBonusLevel sets the "bonus_level" field to the value that was provided on create.
func (u *PatientUpsertBulk) UpdateBonusLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.UpdateBonusLevel()
	})
}

// ClearBonusLevel clears the value of the "bonus_level" field.
func (u *PatientUpsertBulk) ClearBonusLevel() *PatientUpsertBulk {
	return u.Update(func(s *PatientUpsert) {
		s.ClearBonusLevel()
	})
}

// Exec executes the query.
func (u *PatientUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

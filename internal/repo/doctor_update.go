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
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdate) ClearUserID() *DoctorUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *DoctorUpdate) SetFullName(v string) *DoctorUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableFullName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *DoctorUpdate) SetNickname(v string) *DoctorUpdate {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableNickname(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetTelegram sets the "telegram" field.
func (_u *DoctorUpdate) SetTelegram(v string) *DoctorUpdate {
	_u.mutation.SetTelegram(v)
	return _u
}

// SetNillableTelegram sets the "telegram" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableTelegram(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetTelegram(*v)
	}
	return _u
}

// ClearTelegram clears the value of the "telegram" field.
func (_u *DoctorUpdate) ClearTelegram() *DoctorUpdate {
	_u.mutation.ClearTelegram()
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *DoctorUpdate) SetAvatarKey(v string) *DoctorUpdate {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableAvatarKey(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *DoctorUpdate) ClearAvatarKey() *DoctorUpdate {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DoctorUpdate) SetUser(v *User) *DoctorUpdate {
	return _u.SetUserID(v.ID)
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_u *DoctorUpdate) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// AddAuthoredChemicalRecipes adds the "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *DoctorUpdate) AddAuthoredChemicalRecipes(v ...*ChemicalRecipe) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredChemicalRecipeIDs(ids...)
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_u *DoctorUpdate) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.AddAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// AddAuthoredMechanicalCompounds adds the "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *DoctorUpdate) AddAuthoredMechanicalCompounds(v ...*MechanicalCompound) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredMechanicalCompoundIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DoctorUpdate) ClearUser() *DoctorUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearAuthoredChemicalRecipes clears all "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *DoctorUpdate) ClearAuthoredChemicalRecipes() *DoctorUpdate {
	_u.mutation.ClearAuthoredChemicalRecipes()
	return _u
}

// RemoveAuthoredChemicalRecipeIDs removes the "authored_chemical_recipes" edge to ChemicalRecipe entities by IDs.
func (_u *DoctorUpdate) RemoveAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// RemoveAuthoredChemicalRecipes removes "authored_chemical_recipes" edges to ChemicalRecipe entities.
func (_u *DoctorUpdate) RemoveAuthoredChemicalRecipes(v ...*ChemicalRecipe) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredChemicalRecipeIDs(ids...)
}

// ClearAuthoredMechanicalCompounds clears all "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *DoctorUpdate) ClearAuthoredMechanicalCompounds() *DoctorUpdate {
	_u.mutation.ClearAuthoredMechanicalCompounds()
	return _u
}

// RemoveAuthoredMechanicalCompoundIDs removes the "authored_mechanical_compounds" edge to MechanicalCompound entities by IDs.
func (_u *DoctorUpdate) RemoveAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *DoctorUpdate {
	_u.mutation.RemoveAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// RemoveAuthoredMechanicalCompounds removes "authored_mechanical_compounds" edges to MechanicalCompound entities.
func (_u *DoctorUpdate) RemoveAuthoredMechanicalCompounds(v ...*MechanicalCompound) *DoctorUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredMechanicalCompoundIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := doctor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nickname(); ok {
		if err := doctor.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`repo: validator failed for field "Doctor.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telegram(); ok {
		if err := doctor.TelegramValidator(v); err != nil {
			return &ValidationError{Name: "telegram", err: fmt.Errorf(`repo: validator failed for field "Doctor.telegram": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := doctor.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Doctor.avatar_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(doctor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(doctor.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telegram(); ok {
		_spec.SetField(doctor.FieldTelegram, field.TypeString, value)
	}
	if _u.mutation.TelegramCleared() {
		_spec.ClearField(doctor.FieldTelegram, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(doctor.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(doctor.FieldAvatarKey, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
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
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
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
	if _u.mutation.AuthoredChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AuthoredChemicalRecipesTable,
			Columns: []string{doctor.AuthoredChemicalRecipesColumn},
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
			Table:   doctor.AuthoredChemicalRecipesTable,
			Columns: []string{doctor.AuthoredChemicalRecipesColumn},
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
			Table:   doctor.AuthoredChemicalRecipesTable,
			Columns: []string{doctor.AuthoredChemicalRecipesColumn},
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
			Table:   doctor.AuthoredMechanicalCompoundsTable,
			Columns: []string{doctor.AuthoredMechanicalCompoundsColumn},
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
			Table:   doctor.AuthoredMechanicalCompoundsTable,
			Columns: []string{doctor.AuthoredMechanicalCompoundsColumn},
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
			Table:   doctor.AuthoredMechanicalCompoundsTable,
			Columns: []string{doctor.AuthoredMechanicalCompoundsColumn},
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
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdateOne) ClearUserID() *DoctorUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *DoctorUpdateOne) SetFullName(v string) *DoctorUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableFullName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetNickname sets the "nickname" field.
func (_u *DoctorUpdateOne) SetNickname(v string) *DoctorUpdateOne {
	_u.mutation.SetNickname(v)
	return _u
}

// SetNillableNickname sets the "nickname" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableNickname(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetNickname(*v)
	}
	return _u
}

// SetTelegram sets the "telegram" field.
func (_u *DoctorUpdateOne) SetTelegram(v string) *DoctorUpdateOne {
	_u.mutation.SetTelegram(v)
	return _u
}

// SetNillableTelegram sets the "telegram" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableTelegram(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetTelegram(*v)
	}
	return _u
}

// ClearTelegram clears the value of the "telegram" field.
func (_u *DoctorUpdateOne) ClearTelegram() *DoctorUpdateOne {
	_u.mutation.ClearTelegram()
	return _u
}

// SetAvatarKey sets the "avatar_key" field.
func (_u *DoctorUpdateOne) SetAvatarKey(v string) *DoctorUpdateOne {
	_u.mutation.SetAvatarKey(v)
	return _u
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableAvatarKey(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetAvatarKey(*v)
	}
	return _u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (_u *DoctorUpdateOne) ClearAvatarKey() *DoctorUpdateOne {
	_u.mutation.ClearAvatarKey()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DoctorUpdateOne) SetUser(v *User) *DoctorUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_u *DoctorUpdateOne) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// AddAuthoredChemicalRecipes adds the "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *DoctorUpdateOne) AddAuthoredChemicalRecipes(v ...*ChemicalRecipe) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredChemicalRecipeIDs(ids...)
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_u *DoctorUpdateOne) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.AddAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// AddAuthoredMechanicalCompounds adds the "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *DoctorUpdateOne) AddAuthoredMechanicalCompounds(v ...*MechanicalCompound) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuthoredMechanicalCompoundIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DoctorUpdateOne) ClearUser() *DoctorUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearAuthoredChemicalRecipes clears all "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_u *DoctorUpdateOne) ClearAuthoredChemicalRecipes() *DoctorUpdateOne {
	_u.mutation.ClearAuthoredChemicalRecipes()
	return _u
}

// RemoveAuthoredChemicalRecipeIDs removes the "authored_chemical_recipes" edge to ChemicalRecipe entities by IDs.
func (_u *DoctorUpdateOne) RemoveAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveAuthoredChemicalRecipeIDs(ids...)
	return _u
}

// RemoveAuthoredChemicalRecipes removes "authored_chemical_recipes" edges to ChemicalRecipe entities.
func (_u *DoctorUpdateOne) RemoveAuthoredChemicalRecipes(v ...*ChemicalRecipe) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredChemicalRecipeIDs(ids...)
}

// ClearAuthoredMechanicalCompounds clears all "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_u *DoctorUpdateOne) ClearAuthoredMechanicalCompounds() *DoctorUpdateOne {
	_u.mutation.ClearAuthoredMechanicalCompounds()
	return _u
}

// RemoveAuthoredMechanicalCompoundIDs removes the "authored_mechanical_compounds" edge to MechanicalCompound entities by IDs.
func (_u *DoctorUpdateOne) RemoveAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *DoctorUpdateOne {
	_u.mutation.RemoveAuthoredMechanicalCompoundIDs(ids...)
	return _u
}

// RemoveAuthoredMechanicalCompounds removes "authored_mechanical_compounds" edges to MechanicalCompound entities.
func (_u *DoctorUpdateOne) RemoveAuthoredMechanicalCompounds(v ...*MechanicalCompound) *DoctorUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuthoredMechanicalCompoundIDs(ids...)
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := doctor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Nickname(); ok {
		if err := doctor.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`repo: validator failed for field "Doctor.nickname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telegram(); ok {
		if err := doctor.TelegramValidator(v); err != nil {
			return &ValidationError{Name: "telegram", err: fmt.Errorf(`repo: validator failed for field "Doctor.telegram": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AvatarKey(); ok {
		if err := doctor.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Doctor.avatar_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(doctor.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Nickname(); ok {
		_spec.SetField(doctor.FieldNickname, field.TypeString, value)
	}
	if value, ok := _u.mutation.Telegram(); ok {
		_spec.SetField(doctor.FieldTelegram, field.TypeString, value)
	}
	if _u.mutation.TelegramCleared() {
		_spec.ClearField(doctor.FieldTelegram, field.TypeString)
	}
	if value, ok := _u.mutation.AvatarKey(); ok {
		_spec.SetField(doctor.FieldAvatarKey, field.TypeString, value)
	}
	if _u.mutation.AvatarKeyCleared() {
		_spec.ClearField(doctor.FieldAvatarKey, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
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
			Table:   doctor.UserTable,
			Columns: []string{doctor.UserColumn},
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
	if _u.mutation.AuthoredChemicalRecipesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   doctor.AuthoredChemicalRecipesTable,
			Columns: []string{doctor.AuthoredChemicalRecipesColumn},
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
			Table:   doctor.AuthoredChemicalRecipesTable,
			Columns: []string{doctor.AuthoredChemicalRecipesColumn},
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
			Table:   doctor.AuthoredChemicalRecipesTable,
			Columns: []string{doctor.AuthoredChemicalRecipesColumn},
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
			Table:   doctor.AuthoredMechanicalCompoundsTable,
			Columns: []string{doctor.AuthoredMechanicalCompoundsColumn},
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
			Table:   doctor.AuthoredMechanicalCompoundsTable,
			Columns: []string{doctor.AuthoredMechanicalCompoundsColumn},
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
			Table:   doctor.AuthoredMechanicalCompoundsTable,
			Columns: []string{doctor.AuthoredMechanicalCompoundsColumn},
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
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

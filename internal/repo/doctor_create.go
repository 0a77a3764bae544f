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
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorCreate) SetUserID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUserID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *DoctorCreate) SetFullName(v string) *DoctorCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNickname sets the "nickname" field.
func (_c *DoctorCreate) SetNickname(v string) *DoctorCreate {
	_c.mutation.SetNickname(v)
	return _c
}

// SetTelegram sets the "telegram" field.
func (_c *DoctorCreate) SetTelegram(v string) *DoctorCreate {
	_c.mutation.SetTelegram(v)
	return _c
}

// SetNillableTelegram sets the "telegram" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableTelegram(v *string) *DoctorCreate {
	if v != nil {
		_c.SetTelegram(*v)
	}
	return _c
}

// SetAvatarKey sets the "avatar_key" field.
func (_c *DoctorCreate) SetAvatarKey(v string) *DoctorCreate {
	_c.mutation.SetAvatarKey(v)
	return _c
}

// SetNillableAvatarKey sets the "avatar_key" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableAvatarKey(v *string) *DoctorCreate {
	if v != nil {
		_c.SetAvatarKey(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DoctorCreate) SetUser(v *User) *DoctorCreate {
	return _c.SetUserID(v.ID)
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (_c *DoctorCreate) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddAuthoredChemicalRecipeIDs(ids...)
	return _c
}

// AddAuthoredChemicalRecipes adds the "authored_chemical_recipes" edges to the ChemicalRecipe entity.
func (_c *DoctorCreate) AddAuthoredChemicalRecipes(v ...*ChemicalRecipe) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthoredChemicalRecipeIDs(ids...)
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (_c *DoctorCreate) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) *DoctorCreate {
	_c.mutation.AddAuthoredMechanicalCompoundIDs(ids...)
	return _c
}

// AddAuthoredMechanicalCompounds adds the "authored_mechanical_compounds" edges to the MechanicalCompound entity.
func (_c *DoctorCreate) AddAuthoredMechanicalCompounds(v ...*MechanicalCompound) *DoctorCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuthoredMechanicalCompoundIDs(ids...)
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Doctor.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := doctor.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Nickname(); !ok {
		return &ValidationError{Name: "nickname", err: errors.New(`repo: missing required field "Doctor.nickname"`)}
	}
	if v, ok := _c.mutation.Nickname(); ok {
		if err := doctor.NicknameValidator(v); err != nil {
			return &ValidationError{Name: "nickname", err: fmt.Errorf(`repo: validator failed for field "Doctor.nickname": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Telegram(); ok {
		if err := doctor.TelegramValidator(v); err != nil {
			return &ValidationError{Name: "telegram", err: fmt.Errorf(`repo: validator failed for field "Doctor.telegram": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AvatarKey(); ok {
		if err := doctor.AvatarKeyValidator(v); err != nil {
			return &ValidationError{Name: "avatar_key", err: fmt.Errorf(`repo: validator failed for field "Doctor.avatar_key": %w`, err)}
		}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
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

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(doctor.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Nickname(); ok {
		_spec.SetField(doctor.FieldNickname, field.TypeString, value)
		_node.Nickname = value
	}
	if value, ok := _c.mutation.Telegram(); ok {
		_spec.SetField(doctor.FieldTelegram, field.TypeString, value)
		_node.Telegram = value
	}
	if value, ok := _c.mutation.AvatarKey(); ok {
		_spec.SetField(doctor.FieldAvatarKey, field.TypeString, value)
		_node.AvatarKey = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthoredChemicalRecipesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AuthoredMechanicalCompoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertOne {
	_c.conflict = opts
	return &DoctorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreate) OnConflictColumns(columns ...string) *DoctorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertOne{
		create: _c,
	}
}

type (
	// DoctorUpsertOne is the builder for "upsert"-ing
	//  one Doctor node.
	DoctorUpsertOne struct {
		create *DoctorCreate
	}

	// DoctorUpsert is the "OnConflict" setter.
	DoctorUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsert) SetUpdatedAt(v time.Time) *DoctorUpsert {
	u.Set(doctor.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUpdatedAt() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsert) SetUserID(v uuid.UUID) *DoctorUpsert {
	u.Set(doctor.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateUserID() *DoctorUpsert {
	u.SetExcluded(doctor.FieldUserID)
	return u
}

// ClearUserID clears the value of the "user_id" field.
func (u *DoctorUpsert) ClearUserID() *DoctorUpsert {
	u.SetNull(doctor.FieldUserID)
	return u
}

// SetFullName sets the "full_name" field.
func (u *DoctorUpsert) SetFullName(v string) *DoctorUpsert {
	u.Set(doctor.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateFullName() *DoctorUpsert {
	u.SetExcluded(doctor.FieldFullName)
	return u
}

// SetNickname sets the "nickname" field.
func (u *DoctorUpsert) SetNickname(v string) *DoctorUpsert {
	u.Set(doctor.FieldNickname, v)
	return u
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateNickname() *DoctorUpsert {
	u.SetExcluded(doctor.FieldNickname)
	return u
}

// SetTelegram sets the "telegram" field.
func (u *DoctorUpsert) SetTelegram(v string) *DoctorUpsert {
	u.Set(doctor.FieldTelegram, v)
	return u
}

// UpdateTelegram sets the "telegram" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateTelegram() *DoctorUpsert {
	u.SetExcluded(doctor.FieldTelegram)
	return u
}

// ClearTelegram clears the value of the "telegram" field.
func (u *DoctorUpsert) ClearTelegram() *DoctorUpsert {
	u.SetNull(doctor.FieldTelegram)
	return u
}

// SetAvatarKey sets the "avatar_key" field.
func (u *DoctorUpsert) SetAvatarKey(v string) *DoctorUpsert {
	u.Set(doctor.FieldAvatarKey, v)
	return u
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *DoctorUpsert) UpdateAvatarKey() *DoctorUpsert {
	u.SetExcluded(doctor.FieldAvatarKey)
	return u
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *DoctorUpsert) ClearAvatarKey() *DoctorUpsert {
	u.SetNull(doctor.FieldAvatarKey)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertOne) UpdateNewValues() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(doctor.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(doctor.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DoctorUpsertOne) Ignore() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertOne) DoNothing() *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreate.OnConflict
// documentation for more info.
func (u *DoctorUpsertOne) Update(set func(*DoctorUpsert)) *DoctorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertOne) SetUpdatedAt(v time.Time) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUpdatedAt() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertOne) SetUserID(v uuid.UUID) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateUserID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *DoctorUpsertOne) ClearUserID() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *DoctorUpsertOne) SetFullName(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateFullName() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateFullName()
	})
}

// SetNickname sets the "nickname" field.
func (u *DoctorUpsertOne) SetNickname(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetNickname(v)
	})
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateNickname() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateNickname()
	})
}

// SetTelegram sets the "telegram" field.
func (u *DoctorUpsertOne) SetTelegram(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTelegram(v)
	})
}

// UpdateTelegram sets the "telegram" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateTelegram() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTelegram()
	})
}

// ClearTelegram clears the value of the "telegram" field.
func (u *DoctorUpsertOne) ClearTelegram() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearTelegram()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *DoctorUpsertOne) SetAvatarKey(v string) *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *DoctorUpsertOne) UpdateAvatarKey() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *DoctorUpsertOne) ClearAvatarKey() *DoctorUpsertOne {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearAvatarKey()
	})
}

// Exec executes the query.
func (u *DoctorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DoctorUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DoctorUpsertOne.ID is not supported by MySQL driver. Use DoctorUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DoctorUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
	conflict []sql.ConflictOption
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
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
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Doctor.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DoctorUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflict(opts ...sql.ConflictOption) *DoctorUpsertBulk {
	_c.conflict = opts
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DoctorCreateBulk) OnConflictColumns(columns ...string) *DoctorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DoctorUpsertBulk{
		create: _c,
	}
}

// DoctorUpsertBulk is the builder for "upsert"-ing
// a bulk of Doctor nodes.
type DoctorUpsertBulk struct {
	create *DoctorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(doctor.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DoctorUpsertBulk) UpdateNewValues() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(doctor.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(doctor.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Doctor.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DoctorUpsertBulk) Ignore() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DoctorUpsertBulk) DoNothing() *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DoctorCreateBulk.OnConflict
// documentation for more info.
func (u *DoctorUpsertBulk) Update(set func(*DoctorUpsert)) *DoctorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DoctorUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DoctorUpsertBulk) SetUpdatedAt(v time.Time) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUpdatedAt() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *DoctorUpsertBulk) SetUserID(v uuid.UUID) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateUserID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateUserID()
	})
}

// ClearUserID clears the value of the "user_id" field.
func (u *DoctorUpsertBulk) ClearUserID() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearUserID()
	})
}

// SetFullName sets the "full_name" field.
func (u *DoctorUpsertBulk) SetFullName(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateFullName() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateFullName()
	})
}

// SetNickname sets the "nickname" field.
func (u *DoctorUpsertBulk) SetNickname(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetNickname(v)
	})
}

// UpdateNickname sets the "nickname" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateNickname() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateNickname()
	})
}

// SetTelegram sets the "telegram" field.
func (u *DoctorUpsertBulk) SetTelegram(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetTelegram(v)
	})
}

// UpdateTelegram sets the "telegram" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateTelegram() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateTelegram()
	})
}

// ClearTelegram clears the value of the "telegram" field.
func (u *DoctorUpsertBulk) ClearTelegram() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearTelegram()
	})
}

// SetAvatarKey sets the "avatar_key" field.
func (u *DoctorUpsertBulk) SetAvatarKey(v string) *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.SetAvatarKey(v)
	})
}

// UpdateAvatarKey sets the "avatar_key" field to the value that was provided on create.
func (u *DoctorUpsertBulk) UpdateAvatarKey() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.UpdateAvatarKey()
	})
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (u *DoctorUpsertBulk) ClearAvatarKey() *DoctorUpsertBulk {
	return u.Update(func(s *DoctorUpsert) {
		s.ClearAvatarKey()
	})
}

// Exec executes the query.
func (u *DoctorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DoctorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DoctorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DoctorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

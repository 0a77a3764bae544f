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
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
)

// MentalStatePresetCreate is the builder for creating a MentalStatePreset entity.
type MentalStatePresetCreate struct {
	config
	mutation *MentalStatePresetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MentalStatePresetCreate) SetCreatedAt(v time.Time) *MentalStatePresetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MentalStatePresetCreate) SetNillableCreatedAt(v *time.Time) *MentalStatePresetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MentalStatePresetCreate) SetUpdatedAt(v time.Time) *MentalStatePresetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MentalStatePresetCreate) SetNillableUpdatedAt(v *time.Time) *MentalStatePresetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *MentalStatePresetCreate) SetLevel(v int) *MentalStatePresetCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MentalStatePresetCreate) SetDescription(v string) *MentalStatePresetCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetID sets the "id" field.
func (_c *MentalStatePresetCreate) SetID(v uuid.UUID) *MentalStatePresetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MentalStatePresetCreate) SetNillableID(v *uuid.UUID) *MentalStatePresetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MentalStatePresetMutation object of the builder.
func (_c *MentalStatePresetCreate) Mutation() *MentalStatePresetMutation {
	return _c.mutation
}

// Save creates the MentalStatePreset in the database.
func (_c *MentalStatePresetCreate) Save(ctx context.Context) (*MentalStatePreset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentalStatePresetCreate) SaveX(ctx context.Context) *MentalStatePreset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalStatePresetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalStatePresetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentalStatePresetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mentalstatepreset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mentalstatepreset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mentalstatepreset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentalStatePresetCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MentalStatePreset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MentalStatePreset.updated_at"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`repo: missing required field "MentalStatePreset.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := mentalstatepreset.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`repo: validator failed for field "MentalStatePreset.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`repo: missing required field "MentalStatePreset.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := mentalstatepreset.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`repo: validator failed for field "MentalStatePreset.description": %w`, err)}
		}
	}
	return nil
}

func (_c *MentalStatePresetCreate) sqlSave(ctx context.Context) (*MentalStatePreset, error) {
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

func (_c *MentalStatePresetCreate) createSpec() (*MentalStatePreset, *sqlgraph.CreateSpec) {
	var (
		_node = &MentalStatePreset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentalstatepreset.Table, sqlgraph.NewFieldSpec(mentalstatepreset.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mentalstatepreset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalstatepreset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(mentalstatepreset.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mentalstatepreset.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MentalStatePreset.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MentalStatePresetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MentalStatePresetCreate) OnConflict(opts ...sql.ConflictOption) *MentalStatePresetUpsertOne {
	_c.conflict = opts
	return &MentalStatePresetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MentalStatePreset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MentalStatePresetCreate) OnConflictColumns(columns ...string) *MentalStatePresetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MentalStatePresetUpsertOne{
		create: _c,
	}
}

type (
	// MentalStatePresetUpsertOne is the builder for "upsert"-ing
	//  one MentalStatePreset node.
	MentalStatePresetUpsertOne struct {
		create *MentalStatePresetCreate
	}

	// MentalStatePresetUpsert is the "OnConflict" setter.
	MentalStatePresetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MentalStatePresetUpsert) SetUpdatedAt(v time.Time) *MentalStatePresetUpsert {
	u.Set(mentalstatepreset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MentalStatePresetUpsert) UpdateUpdatedAt() *MentalStatePresetUpsert {
	u.SetExcluded(mentalstatepreset.FieldUpdatedAt)
	return u
}

// SetLevel sets the "level" field.
func (u *MentalStatePresetUpsert) SetLevel(v int) *MentalStatePresetUpsert {
	u.Set(mentalstatepreset.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *MentalStatePresetUpsert) UpdateLevel() *MentalStatePresetUpsert {
	u.SetExcluded(mentalstatepreset.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *MentalStatePresetUpsert) AddLevel(v int) *MentalStatePresetUpsert {
	u.Add(mentalstatepreset.FieldLevel, v)
	return u
}

// SetDescription sets the "description" field.
func (u *MentalStatePresetUpsert) SetDescription(v string) *MentalStatePresetUpsert {
	u.Set(mentalstatepreset.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MentalStatePresetUpsert) UpdateDescription() *MentalStatePresetUpsert {
	u.SetExcluded(mentalstatepreset.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MentalStatePreset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mentalstatepreset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MentalStatePresetUpsertOne) UpdateNewValues() *MentalStatePresetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mentalstatepreset.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mentalstatepreset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MentalStatePreset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MentalStatePresetUpsertOne) Ignore() *MentalStatePresetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MentalStatePresetUpsertOne) DoNothing() *MentalStatePresetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MentalStatePresetCreate.OnConflict
// documentation for more info.
func (u *MentalStatePresetUpsertOne) Update(set func(*MentalStatePresetUpsert)) *MentalStatePresetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MentalStatePresetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MentalStatePresetUpsertOne) SetUpdatedAt(v time.Time) *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MentalStatePresetUpsertOne) UpdateUpdatedAt() *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLevel sets the "level" field.
func (u *MentalStatePresetUpsertOne) SetLevel(v int) *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *MentalStatePresetUpsertOne) AddLevel(v int) *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *MentalStatePresetUpsertOne) UpdateLevel() *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.UpdateLevel()
	})
}

// SetDescription sets the "description" field.
func (u *MentalStatePresetUpsertOne) SetDescription(v string) *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MentalStatePresetUpsertOne) UpdateDescription() *MentalStatePresetUpsertOne {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *MentalStatePresetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MentalStatePresetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MentalStatePresetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MentalStatePresetUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MentalStatePresetUpsertOne.ID is not supported by MySQL driver. Use MentalStatePresetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MentalStatePresetUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MentalStatePresetCreateBulk is the builder for creating many MentalStatePreset entities in bulk.
type MentalStatePresetCreateBulk struct {
	config
	err      error
	builders []*MentalStatePresetCreate
	conflict []sql.ConflictOption
}

// Save creates the MentalStatePreset entities in the database.
func (_c *MentalStatePresetCreateBulk) Save(ctx context.Context) ([]*MentalStatePreset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MentalStatePreset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentalStatePresetMutation)
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
func (_c *MentalStatePresetCreateBulk) SaveX(ctx context.Context) []*MentalStatePreset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalStatePresetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalStatePresetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MentalStatePreset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MentalStatePresetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MentalStatePresetCreateBulk) OnConflict(opts ...sql.ConflictOption) *MentalStatePresetUpsertBulk {
	_c.conflict = opts
	return &MentalStatePresetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MentalStatePreset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MentalStatePresetCreateBulk) OnConflictColumns(columns ...string) *MentalStatePresetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MentalStatePresetUpsertBulk{
		create: _c,
	}
}

// MentalStatePresetUpsertBulk is the builder for "upsert"-ing
// a bulk of MentalStatePreset nodes.
type MentalStatePresetUpsertBulk struct {
	create *MentalStatePresetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MentalStatePreset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mentalstatepreset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MentalStatePresetUpsertBulk) UpdateNewValues() *MentalStatePresetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mentalstatepreset.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mentalstatepreset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MentalStatePreset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MentalStatePresetUpsertBulk) Ignore() *MentalStatePresetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MentalStatePresetUpsertBulk) DoNothing() *MentalStatePresetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MentalStatePresetCreateBulk.OnConflict
// documentation for more info.
func (u *MentalStatePresetUpsertBulk) Update(set func(*MentalStatePresetUpsert)) *MentalStatePresetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MentalStatePresetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MentalStatePresetUpsertBulk) SetUpdatedAt(v time.Time) *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MentalStatePresetUpsertBulk) UpdateUpdatedAt() *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLevel sets the "level" field.
func (u *MentalStatePresetUpsertBulk) SetLevel(v int) *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *MentalStatePresetUpsertBulk) AddLevel(v int) *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *MentalStatePresetUpsertBulk) UpdateLevel() *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.UpdateLevel()
	})
}

// SetDescription sets the "description" field.
func (u *MentalStatePresetUpsertBulk) SetDescription(v string) *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MentalStatePresetUpsertBulk) UpdateDescription() *MentalStatePresetUpsertBulk {
	return u.Update(func(s *MentalStatePresetUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *MentalStatePresetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MentalStatePresetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MentalStatePresetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MentalStatePresetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

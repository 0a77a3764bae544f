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
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// MentalStateCreate is the builder for creating a MentalState entity.
type MentalStateCreate struct {
	config
	mutation *MentalStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MentalStateCreate) SetCreatedAt(v time.Time) *MentalStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MentalStateCreate) SetNillableCreatedAt(v *time.Time) *MentalStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MentalStateCreate) SetUpdatedAt(v time.Time) *MentalStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MentalStateCreate) SetNillableUpdatedAt(v *time.Time) *MentalStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *MentalStateCreate) SetLevel(v int) *MentalStateCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *MentalStateCreate) SetNillableLevel(v *int) *MentalStateCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *MentalStateCreate) SetDescription(v string) *MentalStateCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MentalStateCreate) SetNillableDescription(v *string) *MentalStateCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MentalStateCreate) SetID(v uuid.UUID) *MentalStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MentalStateCreate) SetNillableID(v *uuid.UUID) *MentalStateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatientID sets the "patient" edge to the Patient entity by ID.
func (_c *MentalStateCreate) SetPatientID(id uuid.UUID) *MentalStateCreate {
	_c.mutation.SetPatientID(id)
	return _c
}

// SetNillablePatientID sets the "patient" edge to the Patient entity by ID if the given value is not nil.
func (_c *MentalStateCreate) SetNillablePatientID(id *uuid.UUID) *MentalStateCreate {
	if id != nil {
		_c = _c.SetPatientID(*id)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *MentalStateCreate) SetPatient(v *Patient) *MentalStateCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the MentalStateMutation object of the builder.
func (_c *MentalStateCreate) Mutation() *MentalStateMutation {
	return _c.mutation
}

// Save creates the MentalState in the database.
func (_c *MentalStateCreate) Save(ctx context.Context) (*MentalState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentalStateCreate) SaveX(ctx context.Context) *MentalState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentalStateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mentalstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mentalstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := mentalstate.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.Description(); !ok {
		v := mentalstate.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mentalstate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentalStateCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "MentalState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "MentalState.updated_at"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`repo: missing required field "MentalState.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := mentalstate.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`repo: validator failed for field "MentalState.level": %w`, err)}
		}
	}
	return nil
}

func (_c *MentalStateCreate) sqlSave(ctx context.Context) (*MentalState, error) {
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

func (_c *MentalStateCreate) createSpec() (*MentalState, *sqlgraph.CreateSpec) {
	var (
		_node = &MentalState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentalstate.Table, sqlgraph.NewFieldSpec(mentalstate.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mentalstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mentalstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(mentalstate.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mentalstate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   mentalstate.PatientTable,
			Columns: []string{mentalstate.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
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
//	client.MentalState.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MentalStateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MentalStateCreate) OnConflict(opts ...sql.ConflictOption) *MentalStateUpsertOne {
	_c.conflict = opts
	return &MentalStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MentalState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MentalStateCreate) OnConflictColumns(columns ...string) *MentalStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MentalStateUpsertOne{
		create: _c,
	}
}

type (
	// MentalStateUpsertOne is the builder for "upsert"-ing
	//  one MentalState node.
	MentalStateUpsertOne struct {
		create *MentalStateCreate
	}

	// MentalStateUpsert is the "OnConflict" setter.
	MentalStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MentalStateUpsert) SetUpdatedAt(v time.Time) *MentalStateUpsert {
	u.Set(mentalstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MentalStateUpsert) UpdateUpdatedAt() *MentalStateUpsert {
	u.SetExcluded(mentalstate.FieldUpdatedAt)
	return u
}

// SetLevel sets the "level" field.
func (u *MentalStateUpsert) SetLevel(v int) *MentalStateUpsert {
	u.Set(mentalstate.FieldLevel, v)
	return u
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *MentalStateUpsert) UpdateLevel() *MentalStateUpsert {
	u.SetExcluded(mentalstate.FieldLevel)
	return u
}

// AddLevel adds v to the "level" field.
func (u *MentalStateUpsert) AddLevel(v int) *MentalStateUpsert {
	u.Add(mentalstate.FieldLevel, v)
	return u
}

// SetDescription sets the "description" field.
func (u *MentalStateUpsert) SetDescription(v string) *MentalStateUpsert {
	u.Set(mentalstate.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MentalStateUpsert) UpdateDescription() *MentalStateUpsert {
	u.SetExcluded(mentalstate.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *MentalStateUpsert) ClearDescription() *MentalStateUpsert {
	u.SetNull(mentalstate.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MentalState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mentalstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MentalStateUpsertOne) UpdateNewValues() *MentalStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mentalstate.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(mentalstate.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MentalState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MentalStateUpsertOne) Ignore() *MentalStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MentalStateUpsertOne) DoNothing() *MentalStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MentalStateCreate.OnConflict
// documentation for more info.
func (u *MentalStateUpsertOne) Update(set func(*MentalStateUpsert)) *MentalStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MentalStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MentalStateUpsertOne) SetUpdatedAt(v time.Time) *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MentalStateUpsertOne) UpdateUpdatedAt() *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLevel sets the "level" field.
func (u *MentalStateUpsertOne) SetLevel(v int) *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *MentalStateUpsertOne) AddLevel(v int) *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *MentalStateUpsertOne) UpdateLevel() *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.UpdateLevel()
	})
}

// SetDescription sets the "description" field.
func (u *MentalStateUpsertOne) SetDescription(v string) *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MentalStateUpsertOne) UpdateDescription() *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MentalStateUpsertOne) ClearDescription() *MentalStateUpsertOne {
	return u.Update(func(s *MentalStateUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *MentalStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MentalStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MentalStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MentalStateUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MentalStateUpsertOne.ID is not supported by MySQL driver. Use MentalStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MentalStateUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MentalStateCreateBulk is the builder for creating many MentalState entities in bulk.
type MentalStateCreateBulk struct {
	config
	err      error
	builders []*MentalStateCreate
	conflict []sql.ConflictOption
}

// Save creates the MentalState entities in the database.
func (_c *MentalStateCreateBulk) Save(ctx context.Context) ([]*MentalState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MentalState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentalStateMutation)
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
func (_c *MentalStateCreateBulk) SaveX(ctx context.Context) []*MentalState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MentalState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MentalStateUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MentalStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *MentalStateUpsertBulk {
	_c.conflict = opts
	return &MentalStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MentalState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MentalStateCreateBulk) OnConflictColumns(columns ...string) *MentalStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MentalStateUpsertBulk{
		create: _c,
	}
}

// MentalStateUpsertBulk is the builder for "upsert"-ing
// a bulk of MentalState nodes.
type MentalStateUpsertBulk struct {
	create *MentalStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MentalState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mentalstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MentalStateUpsertBulk) UpdateNewValues() *MentalStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mentalstate.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(mentalstate.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MentalState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MentalStateUpsertBulk) Ignore() *MentalStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MentalStateUpsertBulk) DoNothing() *MentalStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MentalStateCreateBulk.OnConflict
// documentation for more info.
func (u *MentalStateUpsertBulk) Update(set func(*MentalStateUpsert)) *MentalStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MentalStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MentalStateUpsertBulk) SetUpdatedAt(v time.Time) *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MentalStateUpsertBulk) UpdateUpdatedAt() *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetLevel sets the "level" field.
func (u *MentalStateUpsertBulk) SetLevel(v int) *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.SetLevel(v)
	})
}

// AddLevel adds v to the "level" field.
func (u *MentalStateUpsertBulk) AddLevel(v int) *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.AddLevel(v)
	})
}

// UpdateLevel sets the "level" field to the value that was provided on create.
func (u *MentalStateUpsertBulk) UpdateLevel() *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.UpdateLevel()
	})
}

// SetDescription sets the "description" field.
func (u *MentalStateUpsertBulk) SetDescription(v string) *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MentalStateUpsertBulk) UpdateDescription() *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MentalStateUpsertBulk) ClearDescription() *MentalStateUpsertBulk {
	return u.Update(func(s *MentalStateUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *MentalStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MentalStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MentalStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MentalStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

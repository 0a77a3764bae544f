// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/predicate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
	"github.com/mobiusclinic/clinica_backend/internal/repo/usersession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAwarenessMap       = "AwarenessMap"
	TypeChemicalRecipe     = "ChemicalRecipe"
	TypeDoctor             = "Doctor"
	TypeMechanicalCompound = "MechanicalCompound"
	TypeMentalState        = "MentalState"
	TypeMentalStatePreset  = "MentalStatePreset"
	TypeNightmareMap       = "NightmareMap"
	TypePatient            = "Patient"
	TypeUser               = "User"
	TypeUserSession        = "UserSession"
)

// AwarenessMapMutation represents an operation that mutates the AwarenessMap nodes in the graph.
type AwarenessMapMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	property_1_condition         *string
	property_1_description       *string
	property_2_condition         *string
	property_2_description       *string
	property_3_condition         *string
	property_3_description       *string
	property_4_condition         *string
	property_4_description       *string
	extra_property_1_description *string
	extra_property_2_description *string
	clearedFields                map[string]struct{}
	patient                      *uuid.UUID
	clearedpatient               bool
	done                         bool
	oldValue                     func(context.Context) (*AwarenessMap, error)
	predicates                   []predicate.AwarenessMap
}

var _ ent.Mutation = (*AwarenessMapMutation)(nil)

// awarenessmapOption allows management of the mutation configuration using functional options.
type awarenessmapOption func(*AwarenessMapMutation)

// newAwarenessMapMutation creates new mutation for the AwarenessMap entity.
func newAwarenessMapMutation(c config, op Op, opts ...awarenessmapOption) *AwarenessMapMutation {
	m := &AwarenessMapMutation{
		config:        c,
		op:            op,
		typ:           TypeAwarenessMap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAwarenessMapID sets the ID field of the mutation.
func withAwarenessMapID(id uuid.UUID) awarenessmapOption {
	return func(m *AwarenessMapMutation) {
		var (
			err   error
			once  sync.Once
			value *AwarenessMap
		)
		m.oldValue = func(ctx context.Context) (*AwarenessMap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AwarenessMap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAwarenessMap sets the old AwarenessMap of the mutation.
func withAwarenessMap(node *AwarenessMap) awarenessmapOption {
	return func(m *AwarenessMapMutation) {
		m.oldValue = func(context.Context) (*AwarenessMap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AwarenessMapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AwarenessMapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AwarenessMap entities.
func (m *AwarenessMapMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AwarenessMapMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AwarenessMapMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AwarenessMap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AwarenessMapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AwarenessMapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AwarenessMapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AwarenessMapMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AwarenessMapMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AwarenessMapMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *AwarenessMapMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *AwarenessMapMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *AwarenessMapMutation) ResetPatientID() {
	m.patient = nil
}

// SetProperty1Condition sets the "property_1_condition" field.
func (m *AwarenessMapMutation) SetProperty1Condition(s string) {
	m.property_1_condition = &s
}

// Property1Condition returns the value of the "property_1_condition" field in the mutation.
func (m *AwarenessMapMutation) Property1Condition() (r string, exists bool) {
	v := m.property_1_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty1Condition returns the old "property_1_condition" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty1Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty1Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty1Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty1Condition: %w", err)
	}
	return oldValue.Property1Condition, nil
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (m *AwarenessMapMutation) ClearProperty1Condition() {
	m.property_1_condition = nil
	m.clearedFields[awarenessmap.FieldProperty1Condition] = struct{}{}
}

// Property1ConditionCleared returns if the "property_1_condition" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property1ConditionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty1Condition]
	return ok
}

// ResetProperty1Condition resets all changes to the "property_1_condition" field.
func (m *AwarenessMapMutation) ResetProperty1Condition() {
	m.property_1_condition = nil
	delete(m.clearedFields, awarenessmap.FieldProperty1Condition)
}

// SetProperty1Description sets the "property_1_description" field.
func (m *AwarenessMapMutation) SetProperty1Description(s string) {
	m.property_1_description = &s
}

// Property1Description returns the value of the "property_1_description" field in the mutation.
func (m *AwarenessMapMutation) Property1Description() (r string, exists bool) {
	v := m.property_1_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty1Description returns the old "property_1_description" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty1Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty1Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty1Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty1Description: %w", err)
	}
	return oldValue.Property1Description, nil
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (m *AwarenessMapMutation) ClearProperty1Description() {
	m.property_1_description = nil
	m.clearedFields[awarenessmap.FieldProperty1Description] = struct{}{}
}

// Property1DescriptionCleared returns if the "property_1_description" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property1DescriptionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty1Description]
	return ok
}

// ResetProperty1Description resets all changes to the "property_1_description" field.
func (m *AwarenessMapMutation) ResetProperty1Description() {
	m.property_1_description = nil
	delete(m.clearedFields, awarenessmap.FieldProperty1Description)
}

// SetProperty2Condition sets the "property_2_condition" field.
func (m *AwarenessMapMutation) SetProperty2Condition(s string) {
	m.property_2_condition = &s
}

// Property2Condition returns the value of the "property_2_condition" field in the mutation.
func (m *AwarenessMapMutation) Property2Condition() (r string, exists bool) {
	v := m.property_2_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty2Condition returns the old "property_2_condition" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty2Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty2Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty2Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty2Condition: %w", err)
	}
	return oldValue.Property2Condition, nil
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (m *AwarenessMapMutation) ClearProperty2Condition() {
	m.property_2_condition = nil
	m.clearedFields[awarenessmap.FieldProperty2Condition] = struct{}{}
}

// Property2ConditionCleared returns if the "property_2_condition" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property2ConditionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty2Condition]
	return ok
}

// ResetProperty2Condition resets all changes to the "property_2_condition" field.
func (m *AwarenessMapMutation) ResetProperty2Condition() {
	m.property_2_condition = nil
	delete(m.clearedFields, awarenessmap.FieldProperty2Condition)
}

// SetProperty2Description sets the "property_2_description" field.
func (m *AwarenessMapMutation) SetProperty2Description(s string) {
	m.property_2_description = &s
}

// Property2Description returns the value of the "property_2_description" field in the mutation.
func (m *AwarenessMapMutation) Property2Description() (r string, exists bool) {
	v := m.property_2_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty2Description returns the old "property_2_description" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty2Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty2Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty2Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty2Description: %w", err)
	}
	return oldValue.Property2Description, nil
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (m *AwarenessMapMutation) ClearProperty2Description() {
	m.property_2_description = nil
	m.clearedFields[awarenessmap.FieldProperty2Description] = struct{}{}
}

// Property2DescriptionCleared returns if the "property_2_description" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property2DescriptionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty2Description]
	return ok
}

// ResetProperty2Description resets all changes to the "property_2_description" field.
func (m *AwarenessMapMutation) ResetProperty2Description() {
	m.property_2_description = nil
	delete(m.clearedFields, awarenessmap.FieldProperty2Description)
}

// SetProperty3Condition sets the "property_3_condition" field.
func (m *AwarenessMapMutation) SetProperty3Condition(s string) {
	m.property_3_condition = &s
}

// Property3Condition returns the value of the "property_3_condition" field in the mutation.
func (m *AwarenessMapMutation) Property3Condition() (r string, exists bool) {
	v := m.property_3_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty3Condition returns the old "property_3_condition" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty3Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty3Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty3Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty3Condition: %w", err)
	}
	return oldValue.Property3Condition, nil
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (m *AwarenessMapMutation) ClearProperty3Condition() {
	m.property_3_condition = nil
	m.clearedFields[awarenessmap.FieldProperty3Condition] = struct{}{}
}

// Property3ConditionCleared returns if the "property_3_condition" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property3ConditionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty3Condition]
	return ok
}

// ResetProperty3Condition resets all changes to the "property_3_condition" field.
func (m *AwarenessMapMutation) ResetProperty3Condition() {
	m.property_3_condition = nil
	delete(m.clearedFields, awarenessmap.FieldProperty3Condition)
}

// SetProperty3Description sets the "property_3_description" field.
func (m *AwarenessMapMutation) SetProperty3Description(s string) {
	m.property_3_description = &s
}

// Property3Description returns the value of the "property_3_description" field in the mutation.
func (m *AwarenessMapMutation) Property3Description() (r string, exists bool) {
	v := m.property_3_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty3Description returns the old "property_3_description" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty3Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty3Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty3Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty3Description: %w", err)
	}
	return oldValue.Property3Description, nil
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (m *AwarenessMapMutation) ClearProperty3Description() {
	m.property_3_description = nil
	m.clearedFields[awarenessmap.FieldProperty3Description] = struct{}{}
}

// Property3DescriptionCleared returns if the "property_3_description" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property3DescriptionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty3Description]
	return ok
}

// ResetProperty3Description resets all changes to the "property_3_description" field.
func (m *AwarenessMapMutation) ResetProperty3Description() {
	m.property_3_description = nil
	delete(m.clearedFields, awarenessmap.FieldProperty3Description)
}

// SetProperty4Condition sets the "property_4_condition" field.
func (m *AwarenessMapMutation) SetProperty4Condition(s string) {
	m.property_4_condition = &s
}

// Property4Condition returns the value of the "property_4_condition" field in the mutation.
func (m *AwarenessMapMutation) Property4Condition() (r string, exists bool) {
	v := m.property_4_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty4Condition returns the old "property_4_condition" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty4Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty4Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty4Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty4Condition: %w", err)
	}
	return oldValue.Property4Condition, nil
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (m *AwarenessMapMutation) ClearProperty4Condition() {
	m.property_4_condition = nil
	m.clearedFields[awarenessmap.FieldProperty4Condition] = struct{}{}
}

// Property4ConditionCleared returns if the "property_4_condition" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property4ConditionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty4Condition]
	return ok
}

// ResetProperty4Condition resets all changes to the "property_4_condition" field.
func (m *AwarenessMapMutation) ResetProperty4Condition() {
	m.property_4_condition = nil
	delete(m.clearedFields, awarenessmap.FieldProperty4Condition)
}

// SetProperty4Description sets the "property_4_description" field.
func (m *AwarenessMapMutation) SetProperty4Description(s string) {
	m.property_4_description = &s
}

// Property4Description returns the value of the "property_4_description" field in the mutation.
func (m *AwarenessMapMutation) Property4Description() (r string, exists bool) {
	v := m.property_4_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty4Description returns the old "property_4_description" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldProperty4Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty4Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty4Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty4Description: %w", err)
	}
	return oldValue.Property4Description, nil
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (m *AwarenessMapMutation) ClearProperty4Description() {
	m.property_4_description = nil
	m.clearedFields[awarenessmap.FieldProperty4Description] = struct{}{}
}

// Property4DescriptionCleared returns if the "property_4_description" field was cleared in this mutation.
func (m *AwarenessMapMutation) Property4DescriptionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldProperty4Description]
	return ok
}

// ResetProperty4Description resets all changes to the "property_4_description" field.
func (m *AwarenessMapMutation) ResetProperty4Description() {
	m.property_4_description = nil
	delete(m.clearedFields, awarenessmap.FieldProperty4Description)
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (m *AwarenessMapMutation) SetExtraProperty1Description(s string) {
	m.extra_property_1_description = &s
}

// ExtraProperty1Description returns the value of the "extra_property_1_description" field in the mutation.
func (m *AwarenessMapMutation) ExtraProperty1Description() (r string, exists bool) {
	v := m.extra_property_1_description
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraProperty1Description returns the old "extra_property_1_description" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldExtraProperty1Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraProperty1Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraProperty1Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraProperty1Description: %w", err)
	}
	return oldValue.ExtraProperty1Description, nil
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (m *AwarenessMapMutation) ClearExtraProperty1Description() {
	m.extra_property_1_description = nil
	m.clearedFields[awarenessmap.FieldExtraProperty1Description] = struct{}{}
}

// ExtraProperty1DescriptionCleared returns if the "extra_property_1_description" field was cleared in this mutation.
func (m *AwarenessMapMutation) ExtraProperty1DescriptionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldExtraProperty1Description]
	return ok
}

// ResetExtraProperty1Description resets all changes to the "extra_property_1_description" field.
func (m *AwarenessMapMutation) ResetExtraProperty1Description() {
	m.extra_property_1_description = nil
	delete(m.clearedFields, awarenessmap.FieldExtraProperty1Description)
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (m *AwarenessMapMutation) SetExtraProperty2Description(s string) {
	m.extra_property_2_description = &s
}

// ExtraProperty2Description returns the value of the "extra_property_2_description" field in the mutation.
func (m *AwarenessMapMutation) ExtraProperty2Description() (r string, exists bool) {
	v := m.extra_property_2_description
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraProperty2Description returns the old "extra_property_2_description" field's value of the AwarenessMap entity.
// If the AwarenessMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AwarenessMapMutation) OldExtraProperty2Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraProperty2Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraProperty2Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraProperty2Description: %w", err)
	}
	return oldValue.ExtraProperty2Description, nil
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (m *AwarenessMapMutation) ClearExtraProperty2Description() {
	m.extra_property_2_description = nil
	m.clearedFields[awarenessmap.FieldExtraProperty2Description] = struct{}{}
}

// ExtraProperty2DescriptionCleared returns if the "extra_property_2_description" field was cleared in this mutation.
func (m *AwarenessMapMutation) ExtraProperty2DescriptionCleared() bool {
	_, ok := m.clearedFields[awarenessmap.FieldExtraProperty2Description]
	return ok
}

// ResetExtraProperty2Description resets all changes to the "extra_property_2_description" field.
func (m *AwarenessMapMutation) ResetExtraProperty2Description() {
	m.extra_property_2_description = nil
	delete(m.clearedFields, awarenessmap.FieldExtraProperty2Description)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *AwarenessMapMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[awarenessmap.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *AwarenessMapMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *AwarenessMapMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *AwarenessMapMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the AwarenessMapMutation builder.
func (m *AwarenessMapMutation) Where(ps ...predicate.AwarenessMap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AwarenessMapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AwarenessMapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AwarenessMap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AwarenessMapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AwarenessMapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AwarenessMap).
func (m *AwarenessMapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AwarenessMapMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, awarenessmap.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, awarenessmap.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, awarenessmap.FieldPatientID)
	}
	if m.property_1_condition != nil {
		fields = append(fields, awarenessmap.FieldProperty1Condition)
	}
	if m.property_1_description != nil {
		fields = append(fields, awarenessmap.FieldProperty1Description)
	}
	if m.property_2_condition != nil {
		fields = append(fields, awarenessmap.FieldProperty2Condition)
	}
	if m.property_2_description != nil {
		fields = append(fields, awarenessmap.FieldProperty2Description)
	}
	if m.property_3_condition != nil {
		fields = append(fields, awarenessmap.FieldProperty3Condition)
	}
	if m.property_3_description != nil {
		fields = append(fields, awarenessmap.FieldProperty3Description)
	}
	if m.property_4_condition != nil {
		fields = append(fields, awarenessmap.FieldProperty4Condition)
	}
	if m.property_4_description != nil {
		fields = append(fields, awarenessmap.FieldProperty4Description)
	}
	if m.extra_property_1_description != nil {
		fields = append(fields, awarenessmap.FieldExtraProperty1Description)
	}
	if m.extra_property_2_description != nil {
		fields = append(fields, awarenessmap.FieldExtraProperty2Description)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AwarenessMapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case awarenessmap.FieldCreatedAt:
		return m.CreatedAt()
	case awarenessmap.FieldUpdatedAt:
		return m.UpdatedAt()
	case awarenessmap.FieldPatientID:
		return m.PatientID()
	case awarenessmap.FieldProperty1Condition:
		return m.Property1Condition()
	case awarenessmap.FieldProperty1Description:
		return m.Property1Description()
	case awarenessmap.FieldProperty2Condition:
		return m.Property2Condition()
	case awarenessmap.FieldProperty2Description:
		return m.Property2Description()
	case awarenessmap.FieldProperty3Condition:
		return m.Property3Condition()
	case awarenessmap.FieldProperty3Description:
		return m.Property3Description()
	case awarenessmap.FieldProperty4Condition:
		return m.Property4Condition()
	case awarenessmap.FieldProperty4Description:
		return m.Property4Description()
	case awarenessmap.FieldExtraProperty1Description:
		return m.ExtraProperty1Description()
	case awarenessmap.FieldExtraProperty2Description:
		return m.ExtraProperty2Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AwarenessMapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case awarenessmap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case awarenessmap.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case awarenessmap.FieldPatientID:
		return m.OldPatientID(ctx)
	case awarenessmap.FieldProperty1Condition:
		return m.OldProperty1Condition(ctx)
	case awarenessmap.FieldProperty1Description:
		return m.OldProperty1Description(ctx)
	case awarenessmap.FieldProperty2Condition:
		return m.OldProperty2Condition(ctx)
	case awarenessmap.FieldProperty2Description:
		return m.OldProperty2Description(ctx)
	case awarenessmap.FieldProperty3Condition:
		return m.OldProperty3Condition(ctx)
	case awarenessmap.FieldProperty3Description:
		return m.OldProperty3Description(ctx)
	case awarenessmap.FieldProperty4Condition:
		return m.OldProperty4Condition(ctx)
	case awarenessmap.FieldProperty4Description:
		return m.OldProperty4Description(ctx)
	case awarenessmap.FieldExtraProperty1Description:
		return m.OldExtraProperty1Description(ctx)
	case awarenessmap.FieldExtraProperty2Description:
		return m.OldExtraProperty2Description(ctx)
	}
	return nil, fmt.Errorf("unknown AwarenessMap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AwarenessMapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case awarenessmap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case awarenessmap.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case awarenessmap.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case awarenessmap.FieldProperty1Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty1Condition(v)
		return nil
	case awarenessmap.FieldProperty1Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty1Description(v)
		return nil
	case awarenessmap.FieldProperty2Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty2Condition(v)
		return nil
	case awarenessmap.FieldProperty2Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty2Description(v)
		return nil
	case awarenessmap.FieldProperty3Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty3Condition(v)
		return nil
	case awarenessmap.FieldProperty3Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty3Description(v)
		return nil
	case awarenessmap.FieldProperty4Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty4Condition(v)
		return nil
	case awarenessmap.FieldProperty4Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty4Description(v)
		return nil
	case awarenessmap.FieldExtraProperty1Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraProperty1Description(v)
		return nil
	case awarenessmap.FieldExtraProperty2Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraProperty2Description(v)
		return nil
	}
	return fmt.Errorf("unknown AwarenessMap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AwarenessMapMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AwarenessMapMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AwarenessMapMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AwarenessMap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AwarenessMapMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(awarenessmap.FieldProperty1Condition) {
		fields = append(fields, awarenessmap.FieldProperty1Condition)
	}
	if m.FieldCleared(awarenessmap.FieldProperty1Description) {
		fields = append(fields, awarenessmap.FieldProperty1Description)
	}
	if m.FieldCleared(awarenessmap.FieldProperty2Condition) {
		fields = append(fields, awarenessmap.FieldProperty2Condition)
	}
	if m.FieldCleared(awarenessmap.FieldProperty2Description) {
		fields = append(fields, awarenessmap.FieldProperty2Description)
	}
	if m.FieldCleared(awarenessmap.FieldProperty3Condition) {
		fields = append(fields, awarenessmap.FieldProperty3Condition)
	}
	if m.FieldCleared(awarenessmap.FieldProperty3Description) {
		fields = append(fields, awarenessmap.FieldProperty3Description)
	}
	if m.FieldCleared(awarenessmap.FieldProperty4Condition) {
		fields = append(fields, awarenessmap.FieldProperty4Condition)
	}
	if m.FieldCleared(awarenessmap.FieldProperty4Description) {
		fields = append(fields, awarenessmap.FieldProperty4Description)
	}
	if m.FieldCleared(awarenessmap.FieldExtraProperty1Description) {
		fields = append(fields, awarenessmap.FieldExtraProperty1Description)
	}
	if m.FieldCleared(awarenessmap.FieldExtraProperty2Description) {
		fields = append(fields, awarenessmap.FieldExtraProperty2Description)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AwarenessMapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AwarenessMapMutation) ClearField(name string) error {
	switch name {
	case awarenessmap.FieldProperty1Condition:
		m.ClearProperty1Condition()
		return nil
	case awarenessmap.FieldProperty1Description:
		m.ClearProperty1Description()
		return nil
	case awarenessmap.FieldProperty2Condition:
		m.ClearProperty2Condition()
		return nil
	case awarenessmap.FieldProperty2Description:
		m.ClearProperty2Description()
		return nil
	case awarenessmap.FieldProperty3Condition:
		m.ClearProperty3Condition()
		return nil
	case awarenessmap.FieldProperty3Description:
		m.ClearProperty3Description()
		return nil
	case awarenessmap.FieldProperty4Condition:
		m.ClearProperty4Condition()
		return nil
	case awarenessmap.FieldProperty4Description:
		m.ClearProperty4Description()
		return nil
	case awarenessmap.FieldExtraProperty1Description:
		m.ClearExtraProperty1Description()
		return nil
	case awarenessmap.FieldExtraProperty2Description:
		m.ClearExtraProperty2Description()
		return nil
	}
	return fmt.Errorf("unknown AwarenessMap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AwarenessMapMutation) ResetField(name string) error {
	switch name {
	case awarenessmap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case awarenessmap.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case awarenessmap.FieldPatientID:
		m.ResetPatientID()
		return nil
	case awarenessmap.FieldProperty1Condition:
		m.ResetProperty1Condition()
		return nil
	case awarenessmap.FieldProperty1Description:
		m.ResetProperty1Description()
		return nil
	case awarenessmap.FieldProperty2Condition:
		m.ResetProperty2Condition()
		return nil
	case awarenessmap.FieldProperty2Description:
		m.ResetProperty2Description()
		return nil
	case awarenessmap.FieldProperty3Condition:
		m.ResetProperty3Condition()
		return nil
	case awarenessmap.FieldProperty3Description:
		m.ResetProperty3Description()
		return nil
	case awarenessmap.FieldProperty4Condition:
		m.ResetProperty4Condition()
		return nil
	case awarenessmap.FieldProperty4Description:
		m.ResetProperty4Description()
		return nil
	case awarenessmap.FieldExtraProperty1Description:
		m.ResetExtraProperty1Description()
		return nil
	case awarenessmap.FieldExtraProperty2Description:
		m.ResetExtraProperty2Description()
		return nil
	}
	return fmt.Errorf("unknown AwarenessMap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AwarenessMapMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, awarenessmap.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AwarenessMapMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case awarenessmap.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AwarenessMapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AwarenessMapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AwarenessMapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, awarenessmap.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AwarenessMapMutation) EdgeCleared(name string) bool {
	switch name {
	case awarenessmap.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AwarenessMapMutation) ClearEdge(name string) error {
	switch name {
	case awarenessmap.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown AwarenessMap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AwarenessMapMutation) ResetEdge(name string) error {
	switch name {
	case awarenessmap.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown AwarenessMap edge %s", name)
}

// ChemicalRecipeMutation represents an operation that mutates the ChemicalRecipe nodes in the graph.
type ChemicalRecipeMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	property_1            *string
	property_2            *string
	property_3            *string
	duration              *time.Duration
	addduration           *time.Duration
	extra_property        *string
	clearedFields         map[string]struct{}
	owner                 *uuid.UUID
	clearedowner          bool
	author_patient        *uuid.UUID
	clearedauthor_patient bool
	author_doctor         *uuid.UUID
	clearedauthor_doctor  bool
	done                  bool
	oldValue              func(context.Context) (*ChemicalRecipe, error)
	predicates            []predicate.ChemicalRecipe
}

var _ ent.Mutation = (*ChemicalRecipeMutation)(nil)

// chemicalrecipeOption allows management of the mutation configuration using functional options.
type chemicalrecipeOption func(*ChemicalRecipeMutation)

// newChemicalRecipeMutation creates new mutation for the ChemicalRecipe entity.
func newChemicalRecipeMutation(c config, op Op, opts ...chemicalrecipeOption) *ChemicalRecipeMutation {
	m := &ChemicalRecipeMutation{
		config:        c,
		op:            op,
		typ:           TypeChemicalRecipe,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChemicalRecipeID sets the ID field of the mutation.
func withChemicalRecipeID(id uuid.UUID) chemicalrecipeOption {
	return func(m *ChemicalRecipeMutation) {
		var (
			err   error
			once  sync.Once
			value *ChemicalRecipe
		)
		m.oldValue = func(ctx context.Context) (*ChemicalRecipe, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChemicalRecipe.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChemicalRecipe sets the old ChemicalRecipe of the mutation.
func withChemicalRecipe(node *ChemicalRecipe) chemicalrecipeOption {
	return func(m *ChemicalRecipeMutation) {
		m.oldValue = func(context.Context) (*ChemicalRecipe, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChemicalRecipeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChemicalRecipeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChemicalRecipe entities.
func (m *ChemicalRecipeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChemicalRecipeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChemicalRecipeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChemicalRecipe.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ChemicalRecipeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChemicalRecipeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChemicalRecipeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChemicalRecipeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChemicalRecipeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChemicalRecipeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *ChemicalRecipeMutation) SetOwnerID(u uuid.UUID) {
	m.owner = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ChemicalRecipeMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ChemicalRecipeMutation) ResetOwnerID() {
	m.owner = nil
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (m *ChemicalRecipeMutation) SetAuthorPatientID(u uuid.UUID) {
	m.author_patient = &u
}

// AuthorPatientID returns the value of the "author_patient_id" field in the mutation.
func (m *ChemicalRecipeMutation) AuthorPatientID() (r uuid.UUID, exists bool) {
	v := m.author_patient
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorPatientID returns the old "author_patient_id" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldAuthorPatientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorPatientID: %w", err)
	}
	return oldValue.AuthorPatientID, nil
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (m *ChemicalRecipeMutation) ClearAuthorPatientID() {
	m.author_patient = nil
	m.clearedFields[chemicalrecipe.FieldAuthorPatientID] = struct{}{}
}

// AuthorPatientIDCleared returns if the "author_patient_id" field was cleared in this mutation.
func (m *ChemicalRecipeMutation) AuthorPatientIDCleared() bool {
	_, ok := m.clearedFields[chemicalrecipe.FieldAuthorPatientID]
	return ok
}

// ResetAuthorPatientID resets all changes to the "author_patient_id" field.
func (m *ChemicalRecipeMutation) ResetAuthorPatientID() {
	m.author_patient = nil
	delete(m.clearedFields, chemicalrecipe.FieldAuthorPatientID)
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (m *ChemicalRecipeMutation) SetAuthorDoctorID(u uuid.UUID) {
	m.author_doctor = &u
}

// AuthorDoctorID returns the value of the "author_doctor_id" field in the mutation.
func (m *ChemicalRecipeMutation) AuthorDoctorID() (r uuid.UUID, exists bool) {
	v := m.author_doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorDoctorID returns the old "author_doctor_id" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldAuthorDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorDoctorID: %w", err)
	}
	return oldValue.AuthorDoctorID, nil
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (m *ChemicalRecipeMutation) ClearAuthorDoctorID() {
	m.author_doctor = nil
	m.clearedFields[chemicalrecipe.FieldAuthorDoctorID] = struct{}{}
}

// AuthorDoctorIDCleared returns if the "author_doctor_id" field was cleared in this mutation.
func (m *ChemicalRecipeMutation) AuthorDoctorIDCleared() bool {
	_, ok := m.clearedFields[chemicalrecipe.FieldAuthorDoctorID]
	return ok
}

// ResetAuthorDoctorID resets all changes to the "author_doctor_id" field.
func (m *ChemicalRecipeMutation) ResetAuthorDoctorID() {
	m.author_doctor = nil
	delete(m.clearedFields, chemicalrecipe.FieldAuthorDoctorID)
}

// SetProperty1 sets the "property_1" field.
func (m *ChemicalRecipeMutation) SetProperty1(s string) {
	m.property_1 = &s
}

// Property1 returns the value of the "property_1" field in the mutation.
func (m *ChemicalRecipeMutation) Property1() (r string, exists bool) {
	v := m.property_1
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty1 returns the old "property_1" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldProperty1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty1: %w", err)
	}
	return oldValue.Property1, nil
}

// ResetProperty1 resets all changes to the "property_1" field.
func (m *ChemicalRecipeMutation) ResetProperty1() {
	m.property_1 = nil
}

// SetProperty2 sets the "property_2" field.
func (m *ChemicalRecipeMutation) SetProperty2(s string) {
	m.property_2 = &s
}

// Property2 returns the value of the "property_2" field in the mutation.
func (m *ChemicalRecipeMutation) Property2() (r string, exists bool) {
	v := m.property_2
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty2 returns the old "property_2" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldProperty2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty2: %w", err)
	}
	return oldValue.Property2, nil
}

// ResetProperty2 resets all changes to the "property_2" field.
func (m *ChemicalRecipeMutation) ResetProperty2() {
	m.property_2 = nil
}

// SetProperty3 sets the "property_3" field.
func (m *ChemicalRecipeMutation) SetProperty3(s string) {
	m.property_3 = &s
}

// Property3 returns the value of the "property_3" field in the mutation.
func (m *ChemicalRecipeMutation) Property3() (r string, exists bool) {
	v := m.property_3
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty3 returns the old "property_3" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldProperty3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty3: %w", err)
	}
	return oldValue.Property3, nil
}

// ResetProperty3 resets all changes to the "property_3" field.
func (m *ChemicalRecipeMutation) ResetProperty3() {
	m.property_3 = nil
}

// SetDuration sets the "duration" field.
func (m *ChemicalRecipeMutation) SetDuration(t time.Duration) {
	m.duration = &t
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *ChemicalRecipeMutation) Duration() (r time.Duration, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldDuration(ctx context.Context) (v time.Duration, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds t to the "duration" field.
func (m *ChemicalRecipeMutation) AddDuration(t time.Duration) {
	if m.addduration != nil {
		*m.addduration += t
	} else {
		m.addduration = &t
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *ChemicalRecipeMutation) AddedDuration() (r time.Duration, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *ChemicalRecipeMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetExtraProperty sets the "extra_property" field.
func (m *ChemicalRecipeMutation) SetExtraProperty(s string) {
	m.extra_property = &s
}

// ExtraProperty returns the value of the "extra_property" field in the mutation.
func (m *ChemicalRecipeMutation) ExtraProperty() (r string, exists bool) {
	v := m.extra_property
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraProperty returns the old "extra_property" field's value of the ChemicalRecipe entity.
// If the ChemicalRecipe object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChemicalRecipeMutation) OldExtraProperty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraProperty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraProperty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraProperty: %w", err)
	}
	return oldValue.ExtraProperty, nil
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (m *ChemicalRecipeMutation) ClearExtraProperty() {
	m.extra_property = nil
	m.clearedFields[chemicalrecipe.FieldExtraProperty] = struct{}{}
}

// ExtraPropertyCleared returns if the "extra_property" field was cleared in this mutation.
func (m *ChemicalRecipeMutation) ExtraPropertyCleared() bool {
	_, ok := m.clearedFields[chemicalrecipe.FieldExtraProperty]
	return ok
}

// ResetExtraProperty resets all changes to the "extra_property" field.
func (m *ChemicalRecipeMutation) ResetExtraProperty() {
	m.extra_property = nil
	delete(m.clearedFields, chemicalrecipe.FieldExtraProperty)
}

// ClearOwner clears the "owner" edge to the Patient entity.
func (m *ChemicalRecipeMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[chemicalrecipe.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the Patient entity was cleared.
func (m *ChemicalRecipeMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *ChemicalRecipeMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *ChemicalRecipeMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// ClearAuthorPatient clears the "author_patient" edge to the Patient entity.
func (m *ChemicalRecipeMutation) ClearAuthorPatient() {
	m.clearedauthor_patient = true
	m.clearedFields[chemicalrecipe.FieldAuthorPatientID] = struct{}{}
}

// AuthorPatientCleared reports if the "author_patient" edge to the Patient entity was cleared.
func (m *ChemicalRecipeMutation) AuthorPatientCleared() bool {
	return m.AuthorPatientIDCleared() || m.clearedauthor_patient
}

// AuthorPatientIDs returns the "author_patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorPatientID instead. It exists only for internal usage by the builders.
func (m *ChemicalRecipeMutation) AuthorPatientIDs() (ids []uuid.UUID) {
	if id := m.author_patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthorPatient resets all changes to the "author_patient" edge.
func (m *ChemicalRecipeMutation) ResetAuthorPatient() {
	m.author_patient = nil
	m.clearedauthor_patient = false
}

// ClearAuthorDoctor clears the "author_doctor" edge to the Doctor entity.
func (m *ChemicalRecipeMutation) ClearAuthorDoctor() {
	m.clearedauthor_doctor = true
	m.clearedFields[chemicalrecipe.FieldAuthorDoctorID] = struct{}{}
}

// AuthorDoctorCleared reports if the "author_doctor" edge to the Doctor entity was cleared.
func (m *ChemicalRecipeMutation) AuthorDoctorCleared() bool {
	return m.AuthorDoctorIDCleared() || m.clearedauthor_doctor
}

// AuthorDoctorIDs returns the "author_doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorDoctorID instead. It exists only for internal usage by the builders.
func (m *ChemicalRecipeMutation) AuthorDoctorIDs() (ids []uuid.UUID) {
	if id := m.author_doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthorDoctor resets all changes to the "author_doctor" edge.
func (m *ChemicalRecipeMutation) ResetAuthorDoctor() {
	m.author_doctor = nil
	m.clearedauthor_doctor = false
}

// Where appends a list predicates to the ChemicalRecipeMutation builder.
func (m *ChemicalRecipeMutation) Where(ps ...predicate.ChemicalRecipe) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChemicalRecipeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChemicalRecipeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChemicalRecipe, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChemicalRecipeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChemicalRecipeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChemicalRecipe).
func (m *ChemicalRecipeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChemicalRecipeMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, chemicalrecipe.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chemicalrecipe.FieldUpdatedAt)
	}
	if m.owner != nil {
		fields = append(fields, chemicalrecipe.FieldOwnerID)
	}
	if m.author_patient != nil {
		fields = append(fields, chemicalrecipe.FieldAuthorPatientID)
	}
	if m.author_doctor != nil {
		fields = append(fields, chemicalrecipe.FieldAuthorDoctorID)
	}
	if m.property_1 != nil {
		fields = append(fields, chemicalrecipe.FieldProperty1)
	}
	if m.property_2 != nil {
		fields = append(fields, chemicalrecipe.FieldProperty2)
	}
	if m.property_3 != nil {
		fields = append(fields, chemicalrecipe.FieldProperty3)
	}
	if m.duration != nil {
		fields = append(fields, chemicalrecipe.FieldDuration)
	}
	if m.extra_property != nil {
		fields = append(fields, chemicalrecipe.FieldExtraProperty)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChemicalRecipeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chemicalrecipe.FieldCreatedAt:
		return m.CreatedAt()
	case chemicalrecipe.FieldUpdatedAt:
		return m.UpdatedAt()
	case chemicalrecipe.FieldOwnerID:
		return m.OwnerID()
	case chemicalrecipe.FieldAuthorPatientID:
		return m.AuthorPatientID()
	case chemicalrecipe.FieldAuthorDoctorID:
		return m.AuthorDoctorID()
	case chemicalrecipe.FieldProperty1:
		return m.Property1()
	case chemicalrecipe.FieldProperty2:
		return m.Property2()
	case chemicalrecipe.FieldProperty3:
		return m.Property3()
	case chemicalrecipe.FieldDuration:
		return m.Duration()
	case chemicalrecipe.FieldExtraProperty:
		return m.ExtraProperty()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChemicalRecipeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chemicalrecipe.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chemicalrecipe.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case chemicalrecipe.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case chemicalrecipe.FieldAuthorPatientID:
		return m.OldAuthorPatientID(ctx)
	case chemicalrecipe.FieldAuthorDoctorID:
		return m.OldAuthorDoctorID(ctx)
	case chemicalrecipe.FieldProperty1:
		return m.OldProperty1(ctx)
	case chemicalrecipe.FieldProperty2:
		return m.OldProperty2(ctx)
	case chemicalrecipe.FieldProperty3:
		return m.OldProperty3(ctx)
	case chemicalrecipe.FieldDuration:
		return m.OldDuration(ctx)
	case chemicalrecipe.FieldExtraProperty:
		return m.OldExtraProperty(ctx)
	}
	return nil, fmt.Errorf("unknown ChemicalRecipe field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChemicalRecipeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chemicalrecipe.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chemicalrecipe.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case chemicalrecipe.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case chemicalrecipe.FieldAuthorPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorPatientID(v)
		return nil
	case chemicalrecipe.FieldAuthorDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorDoctorID(v)
		return nil
	case chemicalrecipe.FieldProperty1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty1(v)
		return nil
	case chemicalrecipe.FieldProperty2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty2(v)
		return nil
	case chemicalrecipe.FieldProperty3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty3(v)
		return nil
	case chemicalrecipe.FieldDuration:
		v, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case chemicalrecipe.FieldExtraProperty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraProperty(v)
		return nil
	}
	return fmt.Errorf("unknown ChemicalRecipe field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChemicalRecipeMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, chemicalrecipe.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChemicalRecipeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chemicalrecipe.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChemicalRecipeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chemicalrecipe.FieldDuration:
		v, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown ChemicalRecipe numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChemicalRecipeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chemicalrecipe.FieldAuthorPatientID) {
		fields = append(fields, chemicalrecipe.FieldAuthorPatientID)
	}
	if m.FieldCleared(chemicalrecipe.FieldAuthorDoctorID) {
		fields = append(fields, chemicalrecipe.FieldAuthorDoctorID)
	}
	if m.FieldCleared(chemicalrecipe.FieldExtraProperty) {
		fields = append(fields, chemicalrecipe.FieldExtraProperty)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChemicalRecipeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChemicalRecipeMutation) ClearField(name string) error {
	switch name {
	case chemicalrecipe.FieldAuthorPatientID:
		m.ClearAuthorPatientID()
		return nil
	case chemicalrecipe.FieldAuthorDoctorID:
		m.ClearAuthorDoctorID()
		return nil
	case chemicalrecipe.FieldExtraProperty:
		m.ClearExtraProperty()
		return nil
	}
	return fmt.Errorf("unknown ChemicalRecipe nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChemicalRecipeMutation) ResetField(name string) error {
	switch name {
	case chemicalrecipe.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chemicalrecipe.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case chemicalrecipe.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case chemicalrecipe.FieldAuthorPatientID:
		m.ResetAuthorPatientID()
		return nil
	case chemicalrecipe.FieldAuthorDoctorID:
		m.ResetAuthorDoctorID()
		return nil
	case chemicalrecipe.FieldProperty1:
		m.ResetProperty1()
		return nil
	case chemicalrecipe.FieldProperty2:
		m.ResetProperty2()
		return nil
	case chemicalrecipe.FieldProperty3:
		m.ResetProperty3()
		return nil
	case chemicalrecipe.FieldDuration:
		m.ResetDuration()
		return nil
	case chemicalrecipe.FieldExtraProperty:
		m.ResetExtraProperty()
		return nil
	}
	return fmt.Errorf("unknown ChemicalRecipe field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChemicalRecipeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, chemicalrecipe.EdgeOwner)
	}
	if m.author_patient != nil {
		edges = append(edges, chemicalrecipe.EdgeAuthorPatient)
	}
	if m.author_doctor != nil {
		edges = append(edges, chemicalrecipe.EdgeAuthorDoctor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChemicalRecipeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chemicalrecipe.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case chemicalrecipe.EdgeAuthorPatient:
		if id := m.author_patient; id != nil {
			return []ent.Value{*id}
		}
	case chemicalrecipe.EdgeAuthorDoctor:
		if id := m.author_doctor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChemicalRecipeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChemicalRecipeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChemicalRecipeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, chemicalrecipe.EdgeOwner)
	}
	if m.clearedauthor_patient {
		edges = append(edges, chemicalrecipe.EdgeAuthorPatient)
	}
	if m.clearedauthor_doctor {
		edges = append(edges, chemicalrecipe.EdgeAuthorDoctor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChemicalRecipeMutation) EdgeCleared(name string) bool {
	switch name {
	case chemicalrecipe.EdgeOwner:
		return m.clearedowner
	case chemicalrecipe.EdgeAuthorPatient:
		return m.clearedauthor_patient
	case chemicalrecipe.EdgeAuthorDoctor:
		return m.clearedauthor_doctor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChemicalRecipeMutation) ClearEdge(name string) error {
	switch name {
	case chemicalrecipe.EdgeOwner:
		m.ClearOwner()
		return nil
	case chemicalrecipe.EdgeAuthorPatient:
		m.ClearAuthorPatient()
		return nil
	case chemicalrecipe.EdgeAuthorDoctor:
		m.ClearAuthorDoctor()
		return nil
	}
	return fmt.Errorf("unknown ChemicalRecipe unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChemicalRecipeMutation) ResetEdge(name string) error {
	switch name {
	case chemicalrecipe.EdgeOwner:
		m.ResetOwner()
		return nil
	case chemicalrecipe.EdgeAuthorPatient:
		m.ResetAuthorPatient()
		return nil
	case chemicalrecipe.EdgeAuthorDoctor:
		m.ResetAuthorDoctor()
		return nil
	}
	return fmt.Errorf("unknown ChemicalRecipe edge %s", name)
}

// DoctorMutation represents an operation that mutates the Doctor nodes in the graph.
type DoctorMutation struct {
	config
	op                                   Op
	typ                                  string
	id                                   *uuid.UUID
	created_at                           *time.Time
	updated_at                           *time.Time
	full_name                            *string
	nickname                             *string
	telegram                             *string
	avatar_key                           *string
	clearedFields                        map[string]struct{}
	user                                 *uuid.UUID
	cleareduser                          bool
	authored_chemical_recipes            map[uuid.UUID]struct{}
	removedauthored_chemical_recipes     map[uuid.UUID]struct{}
	clearedauthored_chemical_recipes     bool
	authored_mechanical_compounds        map[uuid.UUID]struct{}
	removedauthored_mechanical_compounds map[uuid.UUID]struct{}
	clearedauthored_mechanical_compounds bool
	done                                 bool
	oldValue                             func(context.Context) (*Doctor, error)
	predicates                           []predicate.Doctor
}

var _ ent.Mutation = (*DoctorMutation)(nil)

// doctorOption allows management of the mutation configuration using functional options.
type doctorOption func(*DoctorMutation)

// newDoctorMutation creates new mutation for the Doctor entity.
func newDoctorMutation(c config, op Op, opts ...doctorOption) *DoctorMutation {
	m := &DoctorMutation{
		config:        c,
		op:            op,
		typ:           TypeDoctor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDoctorID sets the ID field of the mutation.
func withDoctorID(id uuid.UUID) doctorOption {
	return func(m *DoctorMutation) {
		var (
			err   error
			once  sync.Once
			value *Doctor
		)
		m.oldValue = func(ctx context.Context) (*Doctor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Doctor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDoctor sets the old Doctor of the mutation.
func withDoctor(node *Doctor) doctorOption {
	return func(m *DoctorMutation) {
		m.oldValue = func(context.Context) (*Doctor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DoctorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DoctorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Doctor entities.
func (m *DoctorMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DoctorMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DoctorMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Doctor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DoctorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DoctorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DoctorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DoctorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DoctorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DoctorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *DoctorMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DoctorMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *DoctorMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[doctor.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *DoctorMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[doctor.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DoctorMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, doctor.FieldUserID)
}

// SetFullName sets the "full_name" field.
func (m *DoctorMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *DoctorMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *DoctorMutation) ResetFullName() {
	m.full_name = nil
}

// SetNickname sets the "nickname" field.
func (m *DoctorMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *DoctorMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ResetNickname resets all changes to the "nickname" field.
func (m *DoctorMutation) ResetNickname() {
	m.nickname = nil
}

// SetTelegram sets the "telegram" field.
func (m *DoctorMutation) SetTelegram(s string) {
	m.telegram = &s
}

// Telegram returns the value of the "telegram" field in the mutation.
func (m *DoctorMutation) Telegram() (r string, exists bool) {
	v := m.telegram
	if v == nil {
		return
	}
	return *v, true
}

// OldTelegram returns the old "telegram" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldTelegram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelegram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelegram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelegram: %w", err)
	}
	return oldValue.Telegram, nil
}

// ClearTelegram clears the value of the "telegram" field.
func (m *DoctorMutation) ClearTelegram() {
	m.telegram = nil
	m.clearedFields[doctor.FieldTelegram] = struct{}{}
}

// TelegramCleared returns if the "telegram" field was cleared in this mutation.
func (m *DoctorMutation) TelegramCleared() bool {
	_, ok := m.clearedFields[doctor.FieldTelegram]
	return ok
}

// ResetTelegram resets all changes to the "telegram" field.
func (m *DoctorMutation) ResetTelegram() {
	m.telegram = nil
	delete(m.clearedFields, doctor.FieldTelegram)
}

// SetAvatarKey sets the "avatar_key" field.
func (m *DoctorMutation) SetAvatarKey(s string) {
	m.avatar_key = &s
}

// AvatarKey returns the value of the "avatar_key" field in the mutation.
func (m *DoctorMutation) AvatarKey() (r string, exists bool) {
	v := m.avatar_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarKey returns the old "avatar_key" field's value of the Doctor entity.
// If the Doctor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DoctorMutation) OldAvatarKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarKey: %w", err)
	}
	return oldValue.AvatarKey, nil
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (m *DoctorMutation) ClearAvatarKey() {
	m.avatar_key = nil
	m.clearedFields[doctor.FieldAvatarKey] = struct{}{}
}

// AvatarKeyCleared returns if the "avatar_key" field was cleared in this mutation.
func (m *DoctorMutation) AvatarKeyCleared() bool {
	_, ok := m.clearedFields[doctor.FieldAvatarKey]
	return ok
}

// ResetAvatarKey resets all changes to the "avatar_key" field.
func (m *DoctorMutation) ResetAvatarKey() {
	m.avatar_key = nil
	delete(m.clearedFields, doctor.FieldAvatarKey)
}

// ClearUser clears the "user" edge to the User entity.
func (m *DoctorMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[doctor.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DoctorMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DoctorMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DoctorMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by ids.
func (m *DoctorMutation) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) {
	if m.authored_chemical_recipes == nil {
		m.authored_chemical_recipes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.authored_chemical_recipes[ids[i]] = struct{}{}
	}
}

// ClearAuthoredChemicalRecipes clears the "authored_chemical_recipes" edge to the ChemicalRecipe entity.
func (m *DoctorMutation) ClearAuthoredChemicalRecipes() {
	m.clearedauthored_chemical_recipes = true
}

// AuthoredChemicalRecipesCleared reports if the "authored_chemical_recipes" edge to the ChemicalRecipe entity was cleared.
func (m *DoctorMutation) AuthoredChemicalRecipesCleared() bool {
	return m.clearedauthored_chemical_recipes
}

// RemoveAuthoredChemicalRecipeIDs removes the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (m *DoctorMutation) RemoveAuthoredChemicalRecipeIDs(ids ...uuid.UUID) {
	if m.removedauthored_chemical_recipes == nil {
		m.removedauthored_chemical_recipes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.authored_chemical_recipes, ids[i])
		m.removedauthored_chemical_recipes[ids[i]] = struct{}{}
	}
}

// RemovedAuthoredChemicalRecipes returns the removed IDs of the "authored_chemical_recipes" edge to the ChemicalRecipe entity.
func (m *DoctorMutation) RemovedAuthoredChemicalRecipesIDs() (ids []uuid.UUID) {
	for id := range m.removedauthored_chemical_recipes {
		ids = append(ids, id)
	}
	return
}

// AuthoredChemicalRecipesIDs returns the "authored_chemical_recipes" edge IDs in the mutation.
func (m *DoctorMutation) AuthoredChemicalRecipesIDs() (ids []uuid.UUID) {
	for id := range m.authored_chemical_recipes {
		ids = append(ids, id)
	}
	return
}

// ResetAuthoredChemicalRecipes resets all changes to the "authored_chemical_recipes" edge.
func (m *DoctorMutation) ResetAuthoredChemicalRecipes() {
	m.authored_chemical_recipes = nil
	m.clearedauthored_chemical_recipes = false
	m.removedauthored_chemical_recipes = nil
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by ids.
func (m *DoctorMutation) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) {
	if m.authored_mechanical_compounds == nil {
		m.authored_mechanical_compounds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.authored_mechanical_compounds[ids[i]] = struct{}{}
	}
}

// ClearAuthoredMechanicalCompounds clears the "authored_mechanical_compounds" edge to the MechanicalCompound entity.
func (m *DoctorMutation) ClearAuthoredMechanicalCompounds() {
	m.clearedauthored_mechanical_compounds = true
}

// AuthoredMechanicalCompoundsCleared reports if the "authored_mechanical_compounds" edge to the MechanicalCompound entity was cleared.
func (m *DoctorMutation) AuthoredMechanicalCompoundsCleared() bool {
	return m.clearedauthored_mechanical_compounds
}

// RemoveAuthoredMechanicalCompoundIDs removes the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (m *DoctorMutation) RemoveAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) {
	if m.removedauthored_mechanical_compounds == nil {
		m.removedauthored_mechanical_compounds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.authored_mechanical_compounds, ids[i])
		m.removedauthored_mechanical_compounds[ids[i]] = struct{}{}
	}
}

// RemovedAuthoredMechanicalCompounds returns the removed IDs of the "authored_mechanical_compounds" edge to the MechanicalCompound entity.
func (m *DoctorMutation) RemovedAuthoredMechanicalCompoundsIDs() (ids []uuid.UUID) {
	for id := range m.removedauthored_mechanical_compounds {
		ids = append(ids, id)
	}
	return
}

// AuthoredMechanicalCompoundsIDs returns the "authored_mechanical_compounds" edge IDs in the mutation.
func (m *DoctorMutation) AuthoredMechanicalCompoundsIDs() (ids []uuid.UUID) {
	for id := range m.authored_mechanical_compounds {
		ids = append(ids, id)
	}
	return
}

// ResetAuthoredMechanicalCompounds resets all changes to the "authored_mechanical_compounds" edge.
func (m *DoctorMutation) ResetAuthoredMechanicalCompounds() {
	m.authored_mechanical_compounds = nil
	m.clearedauthored_mechanical_compounds = false
	m.removedauthored_mechanical_compounds = nil
}

// Where appends a list predicates to the DoctorMutation builder.
func (m *DoctorMutation) Where(ps ...predicate.Doctor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DoctorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DoctorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Doctor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DoctorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DoctorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Doctor).
func (m *DoctorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DoctorMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, doctor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, doctor.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, doctor.FieldUserID)
	}
	if m.full_name != nil {
		fields = append(fields, doctor.FieldFullName)
	}
	if m.nickname != nil {
		fields = append(fields, doctor.FieldNickname)
	}
	if m.telegram != nil {
		fields = append(fields, doctor.FieldTelegram)
	}
	if m.avatar_key != nil {
		fields = append(fields, doctor.FieldAvatarKey)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DoctorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.CreatedAt()
	case doctor.FieldUpdatedAt:
		return m.UpdatedAt()
	case doctor.FieldUserID:
		return m.UserID()
	case doctor.FieldFullName:
		return m.FullName()
	case doctor.FieldNickname:
		return m.Nickname()
	case doctor.FieldTelegram:
		return m.Telegram()
	case doctor.FieldAvatarKey:
		return m.AvatarKey()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DoctorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case doctor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case doctor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case doctor.FieldUserID:
		return m.OldUserID(ctx)
	case doctor.FieldFullName:
		return m.OldFullName(ctx)
	case doctor.FieldNickname:
		return m.OldNickname(ctx)
	case doctor.FieldTelegram:
		return m.OldTelegram(ctx)
	case doctor.FieldAvatarKey:
		return m.OldAvatarKey(ctx)
	}
	return nil, fmt.Errorf("unknown Doctor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case doctor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case doctor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case doctor.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case doctor.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case doctor.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case doctor.FieldTelegram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelegram(v)
		return nil
	case doctor.FieldAvatarKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarKey(v)
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DoctorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DoctorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DoctorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Doctor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DoctorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(doctor.FieldUserID) {
		fields = append(fields, doctor.FieldUserID)
	}
	if m.FieldCleared(doctor.FieldTelegram) {
		fields = append(fields, doctor.FieldTelegram)
	}
	if m.FieldCleared(doctor.FieldAvatarKey) {
		fields = append(fields, doctor.FieldAvatarKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DoctorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DoctorMutation) ClearField(name string) error {
	switch name {
	case doctor.FieldUserID:
		m.ClearUserID()
		return nil
	case doctor.FieldTelegram:
		m.ClearTelegram()
		return nil
	case doctor.FieldAvatarKey:
		m.ClearAvatarKey()
		return nil
	}
	return fmt.Errorf("unknown Doctor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DoctorMutation) ResetField(name string) error {
	switch name {
	case doctor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case doctor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case doctor.FieldUserID:
		m.ResetUserID()
		return nil
	case doctor.FieldFullName:
		m.ResetFullName()
		return nil
	case doctor.FieldNickname:
		m.ResetNickname()
		return nil
	case doctor.FieldTelegram:
		m.ResetTelegram()
		return nil
	case doctor.FieldAvatarKey:
		m.ResetAvatarKey()
		return nil
	}
	return fmt.Errorf("unknown Doctor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DoctorMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, doctor.EdgeUser)
	}
	if m.authored_chemical_recipes != nil {
		edges = append(edges, doctor.EdgeAuthoredChemicalRecipes)
	}
	if m.authored_mechanical_compounds != nil {
		edges = append(edges, doctor.EdgeAuthoredMechanicalCompounds)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DoctorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case doctor.EdgeAuthoredChemicalRecipes:
		ids := make([]ent.Value, 0, len(m.authored_chemical_recipes))
		for id := range m.authored_chemical_recipes {
			ids = append(ids, id)
		}
		return ids
	case doctor.EdgeAuthoredMechanicalCompounds:
		ids := make([]ent.Value, 0, len(m.authored_mechanical_compounds))
		for id := range m.authored_mechanical_compounds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DoctorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedauthored_chemical_recipes != nil {
		edges = append(edges, doctor.EdgeAuthoredChemicalRecipes)
	}
	if m.removedauthored_mechanical_compounds != nil {
		edges = append(edges, doctor.EdgeAuthoredMechanicalCompounds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DoctorMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case doctor.EdgeAuthoredChemicalRecipes:
		ids := make([]ent.Value, 0, len(m.removedauthored_chemical_recipes))
		for id := range m.removedauthored_chemical_recipes {
			ids = append(ids, id)
		}
		return ids
	case doctor.EdgeAuthoredMechanicalCompounds:
		ids := make([]ent.Value, 0, len(m.removedauthored_mechanical_compounds))
		for id := range m.removedauthored_mechanical_compounds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DoctorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, doctor.EdgeUser)
	}
	if m.clearedauthored_chemical_recipes {
		edges = append(edges, doctor.EdgeAuthoredChemicalRecipes)
	}
	if m.clearedauthored_mechanical_compounds {
		edges = append(edges, doctor.EdgeAuthoredMechanicalCompounds)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DoctorMutation) EdgeCleared(name string) bool {
	switch name {
	case doctor.EdgeUser:
		return m.cleareduser
	case doctor.EdgeAuthoredChemicalRecipes:
		return m.clearedauthored_chemical_recipes
	case doctor.EdgeAuthoredMechanicalCompounds:
		return m.clearedauthored_mechanical_compounds
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DoctorMutation) ClearEdge(name string) error {
	switch name {
	case doctor.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Doctor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DoctorMutation) ResetEdge(name string) error {
	switch name {
	case doctor.EdgeUser:
		m.ResetUser()
		return nil
	case doctor.EdgeAuthoredChemicalRecipes:
		m.ResetAuthoredChemicalRecipes()
		return nil
	case doctor.EdgeAuthoredMechanicalCompounds:
		m.ResetAuthoredMechanicalCompounds()
		return nil
	}
	return fmt.Errorf("unknown Doctor edge %s", name)
}

// MechanicalCompoundMutation represents an operation that mutates the MechanicalCompound nodes in the graph.
type MechanicalCompoundMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	property_1            *string
	property_2            *string
	property_3            *string
	duration              *time.Duration
	addduration           *time.Duration
	extra_property        *string
	clearedFields         map[string]struct{}
	owner                 *uuid.UUID
	clearedowner          bool
	author_patient        *uuid.UUID
	clearedauthor_patient bool
	author_doctor         *uuid.UUID
	clearedauthor_doctor  bool
	done                  bool
	oldValue              func(context.Context) (*MechanicalCompound, error)
	predicates            []predicate.MechanicalCompound
}

var _ ent.Mutation = (*MechanicalCompoundMutation)(nil)

// mechanicalcompoundOption allows management of the mutation configuration using functional options.
type mechanicalcompoundOption func(*MechanicalCompoundMutation)

// newMechanicalCompoundMutation creates new mutation for the MechanicalCompound entity.
func newMechanicalCompoundMutation(c config, op Op, opts ...mechanicalcompoundOption) *MechanicalCompoundMutation {
	m := &MechanicalCompoundMutation{
		config:        c,
		op:            op,
		typ:           TypeMechanicalCompound,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMechanicalCompoundID sets the ID field of the mutation.
func withMechanicalCompoundID(id uuid.UUID) mechanicalcompoundOption {
	return func(m *MechanicalCompoundMutation) {
		var (
			err   error
			once  sync.Once
			value *MechanicalCompound
		)
		m.oldValue = func(ctx context.Context) (*MechanicalCompound, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MechanicalCompound.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMechanicalCompound sets the old MechanicalCompound of the mutation.
func withMechanicalCompound(node *MechanicalCompound) mechanicalcompoundOption {
	return func(m *MechanicalCompoundMutation) {
		m.oldValue = func(context.Context) (*MechanicalCompound, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MechanicalCompoundMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MechanicalCompoundMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MechanicalCompound entities.
func (m *MechanicalCompoundMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MechanicalCompoundMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MechanicalCompoundMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MechanicalCompound.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MechanicalCompoundMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MechanicalCompoundMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MechanicalCompoundMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MechanicalCompoundMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MechanicalCompoundMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MechanicalCompoundMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *MechanicalCompoundMutation) SetOwnerID(u uuid.UUID) {
	m.owner = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *MechanicalCompoundMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *MechanicalCompoundMutation) ResetOwnerID() {
	m.owner = nil
}

// SetAuthorPatientID sets the "author_patient_id" field.
func (m *MechanicalCompoundMutation) SetAuthorPatientID(u uuid.UUID) {
	m.author_patient = &u
}

// AuthorPatientID returns the value of the "author_patient_id" field in the mutation.
func (m *MechanicalCompoundMutation) AuthorPatientID() (r uuid.UUID, exists bool) {
	v := m.author_patient
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorPatientID returns the old "author_patient_id" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldAuthorPatientID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorPatientID: %w", err)
	}
	return oldValue.AuthorPatientID, nil
}

// ClearAuthorPatientID clears the value of the "author_patient_id" field.
func (m *MechanicalCompoundMutation) ClearAuthorPatientID() {
	m.author_patient = nil
	m.clearedFields[mechanicalcompound.FieldAuthorPatientID] = struct{}{}
}

// AuthorPatientIDCleared returns if the "author_patient_id" field was cleared in this mutation.
func (m *MechanicalCompoundMutation) AuthorPatientIDCleared() bool {
	_, ok := m.clearedFields[mechanicalcompound.FieldAuthorPatientID]
	return ok
}

// ResetAuthorPatientID resets all changes to the "author_patient_id" field.
func (m *MechanicalCompoundMutation) ResetAuthorPatientID() {
	m.author_patient = nil
	delete(m.clearedFields, mechanicalcompound.FieldAuthorPatientID)
}

// SetAuthorDoctorID sets the "author_doctor_id" field.
func (m *MechanicalCompoundMutation) SetAuthorDoctorID(u uuid.UUID) {
	m.author_doctor = &u
}

// AuthorDoctorID returns the value of the "author_doctor_id" field in the mutation.
func (m *MechanicalCompoundMutation) AuthorDoctorID() (r uuid.UUID, exists bool) {
	v := m.author_doctor
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorDoctorID returns the old "author_doctor_id" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldAuthorDoctorID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorDoctorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorDoctorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorDoctorID: %w", err)
	}
	return oldValue.AuthorDoctorID, nil
}

// ClearAuthorDoctorID clears the value of the "author_doctor_id" field.
func (m *MechanicalCompoundMutation) ClearAuthorDoctorID() {
	m.author_doctor = nil
	m.clearedFields[mechanicalcompound.FieldAuthorDoctorID] = struct{}{}
}

// AuthorDoctorIDCleared returns if the "author_doctor_id" field was cleared in this mutation.
func (m *MechanicalCompoundMutation) AuthorDoctorIDCleared() bool {
	_, ok := m.clearedFields[mechanicalcompound.FieldAuthorDoctorID]
	return ok
}

// ResetAuthorDoctorID resets all changes to the "author_doctor_id" field.
func (m *MechanicalCompoundMutation) ResetAuthorDoctorID() {
	m.author_doctor = nil
	delete(m.clearedFields, mechanicalcompound.FieldAuthorDoctorID)
}

// SetProperty1 sets the "property_1" field.
func (m *MechanicalCompoundMutation) SetProperty1(s string) {
	m.property_1 = &s
}

// Property1 returns the value of the "property_1" field in the mutation.
func (m *MechanicalCompoundMutation) Property1() (r string, exists bool) {
	v := m.property_1
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty1 returns the old "property_1" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldProperty1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty1: %w", err)
	}
	return oldValue.Property1, nil
}

// ResetProperty1 resets all changes to the "property_1" field.
func (m *MechanicalCompoundMutation) ResetProperty1() {
	m.property_1 = nil
}

// SetProperty2 sets the "property_2" field.
func (m *MechanicalCompoundMutation) SetProperty2(s string) {
	m.property_2 = &s
}

// Property2 returns the value of the "property_2" field in the mutation.
func (m *MechanicalCompoundMutation) Property2() (r string, exists bool) {
	v := m.property_2
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty2 returns the old "property_2" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldProperty2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty2: %w", err)
	}
	return oldValue.Property2, nil
}

// ResetProperty2 resets all changes to the "property_2" field.
func (m *MechanicalCompoundMutation) ResetProperty2() {
	m.property_2 = nil
}

// SetProperty3 sets the "property_3" field.
func (m *MechanicalCompoundMutation) SetProperty3(s string) {
	m.property_3 = &s
}

// Property3 returns the value of the "property_3" field in the mutation.
func (m *MechanicalCompoundMutation) Property3() (r string, exists bool) {
	v := m.property_3
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty3 returns the old "property_3" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldProperty3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty3: %w", err)
	}
	return oldValue.Property3, nil
}

// ResetProperty3 resets all changes to the "property_3" field.
func (m *MechanicalCompoundMutation) ResetProperty3() {
	m.property_3 = nil
}

// SetDuration sets the "duration" field.
func (m *MechanicalCompoundMutation) SetDuration(t time.Duration) {
	m.duration = &t
	m.addduration = nil
}

// Duration returns the value of the "duration" field in the mutation.
func (m *MechanicalCompoundMutation) Duration() (r time.Duration, exists bool) {
	v := m.duration
	if v == nil {
		return
	}
	return *v, true
}

// OldDuration returns the old "duration" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldDuration(ctx context.Context) (v time.Duration, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuration: %w", err)
	}
	return oldValue.Duration, nil
}

// AddDuration adds t to the "duration" field.
func (m *MechanicalCompoundMutation) AddDuration(t time.Duration) {
	if m.addduration != nil {
		*m.addduration += t
	} else {
		m.addduration = &t
	}
}

// AddedDuration returns the value that was added to the "duration" field in this mutation.
func (m *MechanicalCompoundMutation) AddedDuration() (r time.Duration, exists bool) {
	v := m.addduration
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuration resets all changes to the "duration" field.
func (m *MechanicalCompoundMutation) ResetDuration() {
	m.duration = nil
	m.addduration = nil
}

// SetExtraProperty sets the "extra_property" field.
func (m *MechanicalCompoundMutation) SetExtraProperty(s string) {
	m.extra_property = &s
}

// ExtraProperty returns the value of the "extra_property" field in the mutation.
func (m *MechanicalCompoundMutation) ExtraProperty() (r string, exists bool) {
	v := m.extra_property
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraProperty returns the old "extra_property" field's value of the MechanicalCompound entity.
// If the MechanicalCompound object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MechanicalCompoundMutation) OldExtraProperty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraProperty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraProperty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraProperty: %w", err)
	}
	return oldValue.ExtraProperty, nil
}

// ClearExtraProperty clears the value of the "extra_property" field.
func (m *MechanicalCompoundMutation) ClearExtraProperty() {
	m.extra_property = nil
	m.clearedFields[mechanicalcompound.FieldExtraProperty] = struct{}{}
}

// ExtraPropertyCleared returns if the "extra_property" field was cleared in this mutation.
func (m *MechanicalCompoundMutation) ExtraPropertyCleared() bool {
	_, ok := m.clearedFields[mechanicalcompound.FieldExtraProperty]
	return ok
}

// ResetExtraProperty resets all changes to the "extra_property" field.
func (m *MechanicalCompoundMutation) ResetExtraProperty() {
	m.extra_property = nil
	delete(m.clearedFields, mechanicalcompound.FieldExtraProperty)
}

// ClearOwner clears the "owner" edge to the Patient entity.
func (m *MechanicalCompoundMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[mechanicalcompound.FieldOwnerID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the Patient entity was cleared.
func (m *MechanicalCompoundMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *MechanicalCompoundMutation) OwnerIDs() (ids []uuid.UUID) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *MechanicalCompoundMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// ClearAuthorPatient clears the "author_patient" edge to the Patient entity.
func (m *MechanicalCompoundMutation) ClearAuthorPatient() {
	m.clearedauthor_patient = true
	m.clearedFields[mechanicalcompound.FieldAuthorPatientID] = struct{}{}
}

// AuthorPatientCleared reports if the "author_patient" edge to the Patient entity was cleared.
func (m *MechanicalCompoundMutation) AuthorPatientCleared() bool {
	return m.AuthorPatientIDCleared() || m.clearedauthor_patient
}

// AuthorPatientIDs returns the "author_patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorPatientID instead. It exists only for internal usage by the builders.
func (m *MechanicalCompoundMutation) AuthorPatientIDs() (ids []uuid.UUID) {
	if id := m.author_patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthorPatient resets all changes to the "author_patient" edge.
func (m *MechanicalCompoundMutation) ResetAuthorPatient() {
	m.author_patient = nil
	m.clearedauthor_patient = false
}

// ClearAuthorDoctor clears the "author_doctor" edge to the Doctor entity.
func (m *MechanicalCompoundMutation) ClearAuthorDoctor() {
	m.clearedauthor_doctor = true
	m.clearedFields[mechanicalcompound.FieldAuthorDoctorID] = struct{}{}
}

// AuthorDoctorCleared reports if the "author_doctor" edge to the Doctor entity was cleared.
func (m *MechanicalCompoundMutation) AuthorDoctorCleared() bool {
	return m.AuthorDoctorIDCleared() || m.clearedauthor_doctor
}

// AuthorDoctorIDs returns the "author_doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuthorDoctorID instead. It exists only for internal usage by the builders.
func (m *MechanicalCompoundMutation) AuthorDoctorIDs() (ids []uuid.UUID) {
	if id := m.author_doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAuthorDoctor resets all changes to the "author_doctor" edge.
func (m *MechanicalCompoundMutation) ResetAuthorDoctor() {
	m.author_doctor = nil
	m.clearedauthor_doctor = false
}

// Where appends a list predicates to the MechanicalCompoundMutation builder.
func (m *MechanicalCompoundMutation) Where(ps ...predicate.MechanicalCompound) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MechanicalCompoundMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MechanicalCompoundMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MechanicalCompound, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MechanicalCompoundMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MechanicalCompoundMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MechanicalCompound).
func (m *MechanicalCompoundMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MechanicalCompoundMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, mechanicalcompound.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mechanicalcompound.FieldUpdatedAt)
	}
	if m.owner != nil {
		fields = append(fields, mechanicalcompound.FieldOwnerID)
	}
	if m.author_patient != nil {
		fields = append(fields, mechanicalcompound.FieldAuthorPatientID)
	}
	if m.author_doctor != nil {
		fields = append(fields, mechanicalcompound.FieldAuthorDoctorID)
	}
	if m.property_1 != nil {
		fields = append(fields, mechanicalcompound.FieldProperty1)
	}
	if m.property_2 != nil {
		fields = append(fields, mechanicalcompound.FieldProperty2)
	}
	if m.property_3 != nil {
		fields = append(fields, mechanicalcompound.FieldProperty3)
	}
	if m.duration != nil {
		fields = append(fields, mechanicalcompound.FieldDuration)
	}
	if m.extra_property != nil {
		fields = append(fields, mechanicalcompound.FieldExtraProperty)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MechanicalCompoundMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mechanicalcompound.FieldCreatedAt:
		return m.CreatedAt()
	case mechanicalcompound.FieldUpdatedAt:
		return m.UpdatedAt()
	case mechanicalcompound.FieldOwnerID:
		return m.OwnerID()
	case mechanicalcompound.FieldAuthorPatientID:
		return m.AuthorPatientID()
	case mechanicalcompound.FieldAuthorDoctorID:
		return m.AuthorDoctorID()
	case mechanicalcompound.FieldProperty1:
		return m.Property1()
	case mechanicalcompound.FieldProperty2:
		return m.Property2()
	case mechanicalcompound.FieldProperty3:
		return m.Property3()
	case mechanicalcompound.FieldDuration:
		return m.Duration()
	case mechanicalcompound.FieldExtraProperty:
		return m.ExtraProperty()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MechanicalCompoundMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mechanicalcompound.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mechanicalcompound.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mechanicalcompound.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case mechanicalcompound.FieldAuthorPatientID:
		return m.OldAuthorPatientID(ctx)
	case mechanicalcompound.FieldAuthorDoctorID:
		return m.OldAuthorDoctorID(ctx)
	case mechanicalcompound.FieldProperty1:
		return m.OldProperty1(ctx)
	case mechanicalcompound.FieldProperty2:
		return m.OldProperty2(ctx)
	case mechanicalcompound.FieldProperty3:
		return m.OldProperty3(ctx)
	case mechanicalcompound.FieldDuration:
		return m.OldDuration(ctx)
	case mechanicalcompound.FieldExtraProperty:
		return m.OldExtraProperty(ctx)
	}
	return nil, fmt.Errorf("unknown MechanicalCompound field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MechanicalCompoundMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mechanicalcompound.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mechanicalcompound.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mechanicalcompound.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case mechanicalcompound.FieldAuthorPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorPatientID(v)
		return nil
	case mechanicalcompound.FieldAuthorDoctorID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorDoctorID(v)
		return nil
	case mechanicalcompound.FieldProperty1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty1(v)
		return nil
	case mechanicalcompound.FieldProperty2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty2(v)
		return nil
	case mechanicalcompound.FieldProperty3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty3(v)
		return nil
	case mechanicalcompound.FieldDuration:
		v, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuration(v)
		return nil
	case mechanicalcompound.FieldExtraProperty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraProperty(v)
		return nil
	}
	return fmt.Errorf("unknown MechanicalCompound field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MechanicalCompoundMutation) AddedFields() []string {
	var fields []string
	if m.addduration != nil {
		fields = append(fields, mechanicalcompound.FieldDuration)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MechanicalCompoundMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mechanicalcompound.FieldDuration:
		return m.AddedDuration()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MechanicalCompoundMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mechanicalcompound.FieldDuration:
		v, ok := value.(time.Duration)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuration(v)
		return nil
	}
	return fmt.Errorf("unknown MechanicalCompound numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MechanicalCompoundMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mechanicalcompound.FieldAuthorPatientID) {
		fields = append(fields, mechanicalcompound.FieldAuthorPatientID)
	}
	if m.FieldCleared(mechanicalcompound.FieldAuthorDoctorID) {
		fields = append(fields, mechanicalcompound.FieldAuthorDoctorID)
	}
	if m.FieldCleared(mechanicalcompound.FieldExtraProperty) {
		fields = append(fields, mechanicalcompound.FieldExtraProperty)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MechanicalCompoundMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MechanicalCompoundMutation) ClearField(name string) error {
	switch name {
	case mechanicalcompound.FieldAuthorPatientID:
		m.ClearAuthorPatientID()
		return nil
	case mechanicalcompound.FieldAuthorDoctorID:
		m.ClearAuthorDoctorID()
		return nil
	case mechanicalcompound.FieldExtraProperty:
		m.ClearExtraProperty()
		return nil
	}
	return fmt.Errorf("unknown MechanicalCompound nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MechanicalCompoundMutation) ResetField(name string) error {
	switch name {
	case mechanicalcompound.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mechanicalcompound.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mechanicalcompound.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case mechanicalcompound.FieldAuthorPatientID:
		m.ResetAuthorPatientID()
		return nil
	case mechanicalcompound.FieldAuthorDoctorID:
		m.ResetAuthorDoctorID()
		return nil
	case mechanicalcompound.FieldProperty1:
		m.ResetProperty1()
		return nil
	case mechanicalcompound.FieldProperty2:
		m.ResetProperty2()
		return nil
	case mechanicalcompound.FieldProperty3:
		m.ResetProperty3()
		return nil
	case mechanicalcompound.FieldDuration:
		m.ResetDuration()
		return nil
	case mechanicalcompound.FieldExtraProperty:
		m.ResetExtraProperty()
		return nil
	}
	return fmt.Errorf("unknown MechanicalCompound field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MechanicalCompoundMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.owner != nil {
		edges = append(edges, mechanicalcompound.EdgeOwner)
	}
	if m.author_patient != nil {
		edges = append(edges, mechanicalcompound.EdgeAuthorPatient)
	}
	if m.author_doctor != nil {
		edges = append(edges, mechanicalcompound.EdgeAuthorDoctor)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MechanicalCompoundMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mechanicalcompound.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	case mechanicalcompound.EdgeAuthorPatient:
		if id := m.author_patient; id != nil {
			return []ent.Value{*id}
		}
	case mechanicalcompound.EdgeAuthorDoctor:
		if id := m.author_doctor; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MechanicalCompoundMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MechanicalCompoundMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MechanicalCompoundMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedowner {
		edges = append(edges, mechanicalcompound.EdgeOwner)
	}
	if m.clearedauthor_patient {
		edges = append(edges, mechanicalcompound.EdgeAuthorPatient)
	}
	if m.clearedauthor_doctor {
		edges = append(edges, mechanicalcompound.EdgeAuthorDoctor)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MechanicalCompoundMutation) EdgeCleared(name string) bool {
	switch name {
	case mechanicalcompound.EdgeOwner:
		return m.clearedowner
	case mechanicalcompound.EdgeAuthorPatient:
		return m.clearedauthor_patient
	case mechanicalcompound.EdgeAuthorDoctor:
		return m.clearedauthor_doctor
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MechanicalCompoundMutation) ClearEdge(name string) error {
	switch name {
	case mechanicalcompound.EdgeOwner:
		m.ClearOwner()
		return nil
	case mechanicalcompound.EdgeAuthorPatient:
		m.ClearAuthorPatient()
		return nil
	case mechanicalcompound.EdgeAuthorDoctor:
		m.ClearAuthorDoctor()
		return nil
	}
	return fmt.Errorf("unknown MechanicalCompound unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MechanicalCompoundMutation) ResetEdge(name string) error {
	switch name {
	case mechanicalcompound.EdgeOwner:
		m.ResetOwner()
		return nil
	case mechanicalcompound.EdgeAuthorPatient:
		m.ResetAuthorPatient()
		return nil
	case mechanicalcompound.EdgeAuthorDoctor:
		m.ResetAuthorDoctor()
		return nil
	}
	return fmt.Errorf("unknown MechanicalCompound edge %s", name)
}

// MentalStateMutation represents an operation that mutates the MentalState nodes in the graph.
type MentalStateMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	created_at     *time.Time
	updated_at     *time.Time
	level          *int
	addlevel       *int
	description    *string
	clearedFields  map[string]struct{}
	patient        *uuid.UUID
	clearedpatient bool
	done           bool
	oldValue       func(context.Context) (*MentalState, error)
	predicates     []predicate.MentalState
}

var _ ent.Mutation = (*MentalStateMutation)(nil)

// mentalstateOption allows management of the mutation configuration using functional options.
type mentalstateOption func(*MentalStateMutation)

// newMentalStateMutation creates new mutation for the MentalState entity.
func newMentalStateMutation(c config, op Op, opts ...mentalstateOption) *MentalStateMutation {
	m := &MentalStateMutation{
		config:        c,
		op:            op,
		typ:           TypeMentalState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMentalStateID sets the ID field of the mutation.
func withMentalStateID(id uuid.UUID) mentalstateOption {
	return func(m *MentalStateMutation) {
		var (
			err   error
			once  sync.Once
			value *MentalState
		)
		m.oldValue = func(ctx context.Context) (*MentalState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MentalState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMentalState sets the old MentalState of the mutation.
func withMentalState(node *MentalState) mentalstateOption {
	return func(m *MentalStateMutation) {
		m.oldValue = func(context.Context) (*MentalState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MentalStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MentalStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MentalState entities.
func (m *MentalStateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MentalStateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MentalStateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MentalState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MentalStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MentalStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MentalState entity.
// If the MentalState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MentalStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MentalStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MentalStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MentalState entity.
// If the MentalState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MentalStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLevel sets the "level" field.
func (m *MentalStateMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *MentalStateMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the MentalState entity.
// If the MentalState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStateMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *MentalStateMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *MentalStateMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *MentalStateMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetDescription sets the "description" field.
func (m *MentalStateMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MentalStateMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MentalState entity.
// If the MentalState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStateMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MentalStateMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[mentalstate.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MentalStateMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[mentalstate.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MentalStateMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, mentalstate.FieldDescription)
}

// SetPatientID sets the "patient" edge to the Patient entity by id.
func (m *MentalStateMutation) SetPatientID(id uuid.UUID) {
	m.patient = &id
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *MentalStateMutation) ClearPatient() {
	m.clearedpatient = true
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *MentalStateMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientID returns the "patient" edge ID in the mutation.
func (m *MentalStateMutation) PatientID() (id uuid.UUID, exists bool) {
	if m.patient != nil {
		return *m.patient, true
	}
	return
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *MentalStateMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *MentalStateMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the MentalStateMutation builder.
func (m *MentalStateMutation) Where(ps ...predicate.MentalState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MentalStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MentalStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MentalState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MentalStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MentalStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MentalState).
func (m *MentalStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MentalStateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, mentalstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mentalstate.FieldUpdatedAt)
	}
	if m.level != nil {
		fields = append(fields, mentalstate.FieldLevel)
	}
	if m.description != nil {
		fields = append(fields, mentalstate.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MentalStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mentalstate.FieldCreatedAt:
		return m.CreatedAt()
	case mentalstate.FieldUpdatedAt:
		return m.UpdatedAt()
	case mentalstate.FieldLevel:
		return m.Level()
	case mentalstate.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MentalStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mentalstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mentalstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mentalstate.FieldLevel:
		return m.OldLevel(ctx)
	case mentalstate.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown MentalState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mentalstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mentalstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mentalstate.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case mentalstate.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown MentalState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MentalStateMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, mentalstate.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MentalStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mentalstate.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mentalstate.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown MentalState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MentalStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mentalstate.FieldDescription) {
		fields = append(fields, mentalstate.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MentalStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MentalStateMutation) ClearField(name string) error {
	switch name {
	case mentalstate.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown MentalState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MentalStateMutation) ResetField(name string) error {
	switch name {
	case mentalstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mentalstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mentalstate.FieldLevel:
		m.ResetLevel()
		return nil
	case mentalstate.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown MentalState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MentalStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, mentalstate.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MentalStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mentalstate.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MentalStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MentalStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MentalStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, mentalstate.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MentalStateMutation) EdgeCleared(name string) bool {
	switch name {
	case mentalstate.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MentalStateMutation) ClearEdge(name string) error {
	switch name {
	case mentalstate.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown MentalState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MentalStateMutation) ResetEdge(name string) error {
	switch name {
	case mentalstate.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown MentalState edge %s", name)
}

// MentalStatePresetMutation represents an operation that mutates the MentalStatePreset nodes in the graph.
type MentalStatePresetMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	level         *int
	addlevel      *int
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MentalStatePreset, error)
	predicates    []predicate.MentalStatePreset
}

var _ ent.Mutation = (*MentalStatePresetMutation)(nil)

// mentalstatepresetOption allows management of the mutation configuration using functional options.
type mentalstatepresetOption func(*MentalStatePresetMutation)

// newMentalStatePresetMutation creates new mutation for the MentalStatePreset entity.
func newMentalStatePresetMutation(c config, op Op, opts ...mentalstatepresetOption) *MentalStatePresetMutation {
	m := &MentalStatePresetMutation{
		config:        c,
		op:            op,
		typ:           TypeMentalStatePreset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMentalStatePresetID sets the ID field of the mutation.
func withMentalStatePresetID(id uuid.UUID) mentalstatepresetOption {
	return func(m *MentalStatePresetMutation) {
		var (
			err   error
			once  sync.Once
			value *MentalStatePreset
		)
		m.oldValue = func(ctx context.Context) (*MentalStatePreset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MentalStatePreset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMentalStatePreset sets the old MentalStatePreset of the mutation.
func withMentalStatePreset(node *MentalStatePreset) mentalstatepresetOption {
	return func(m *MentalStatePresetMutation) {
		m.oldValue = func(context.Context) (*MentalStatePreset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MentalStatePresetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MentalStatePresetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MentalStatePreset entities.
func (m *MentalStatePresetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MentalStatePresetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MentalStatePresetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MentalStatePreset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MentalStatePresetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MentalStatePresetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MentalStatePreset entity.
// If the MentalStatePreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStatePresetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MentalStatePresetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MentalStatePresetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MentalStatePresetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MentalStatePreset entity.
// If the MentalStatePreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStatePresetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MentalStatePresetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLevel sets the "level" field.
func (m *MentalStatePresetMutation) SetLevel(i int) {
	m.level = &i
	m.addlevel = nil
}

// Level returns the value of the "level" field in the mutation.
func (m *MentalStatePresetMutation) Level() (r int, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the MentalStatePreset entity.
// If the MentalStatePreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStatePresetMutation) OldLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// AddLevel adds i to the "level" field.
func (m *MentalStatePresetMutation) AddLevel(i int) {
	if m.addlevel != nil {
		*m.addlevel += i
	} else {
		m.addlevel = &i
	}
}

// AddedLevel returns the value that was added to the "level" field in this mutation.
func (m *MentalStatePresetMutation) AddedLevel() (r int, exists bool) {
	v := m.addlevel
	if v == nil {
		return
	}
	return *v, true
}

// ResetLevel resets all changes to the "level" field.
func (m *MentalStatePresetMutation) ResetLevel() {
	m.level = nil
	m.addlevel = nil
}

// SetDescription sets the "description" field.
func (m *MentalStatePresetMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MentalStatePresetMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the MentalStatePreset entity.
// If the MentalStatePreset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MentalStatePresetMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *MentalStatePresetMutation) ResetDescription() {
	m.description = nil
}

// Where appends a list predicates to the MentalStatePresetMutation builder.
func (m *MentalStatePresetMutation) Where(ps ...predicate.MentalStatePreset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MentalStatePresetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MentalStatePresetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MentalStatePreset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MentalStatePresetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MentalStatePresetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MentalStatePreset).
func (m *MentalStatePresetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MentalStatePresetMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, mentalstatepreset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mentalstatepreset.FieldUpdatedAt)
	}
	if m.level != nil {
		fields = append(fields, mentalstatepreset.FieldLevel)
	}
	if m.description != nil {
		fields = append(fields, mentalstatepreset.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MentalStatePresetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mentalstatepreset.FieldCreatedAt:
		return m.CreatedAt()
	case mentalstatepreset.FieldUpdatedAt:
		return m.UpdatedAt()
	case mentalstatepreset.FieldLevel:
		return m.Level()
	case mentalstatepreset.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MentalStatePresetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mentalstatepreset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mentalstatepreset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mentalstatepreset.FieldLevel:
		return m.OldLevel(ctx)
	case mentalstatepreset.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown MentalStatePreset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalStatePresetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mentalstatepreset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mentalstatepreset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mentalstatepreset.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case mentalstatepreset.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown MentalStatePreset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MentalStatePresetMutation) AddedFields() []string {
	var fields []string
	if m.addlevel != nil {
		fields = append(fields, mentalstatepreset.FieldLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MentalStatePresetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mentalstatepreset.FieldLevel:
		return m.AddedLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MentalStatePresetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mentalstatepreset.FieldLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLevel(v)
		return nil
	}
	return fmt.Errorf("unknown MentalStatePreset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MentalStatePresetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MentalStatePresetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MentalStatePresetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MentalStatePreset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MentalStatePresetMutation) ResetField(name string) error {
	switch name {
	case mentalstatepreset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mentalstatepreset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mentalstatepreset.FieldLevel:
		m.ResetLevel()
		return nil
	case mentalstatepreset.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown MentalStatePreset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MentalStatePresetMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MentalStatePresetMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MentalStatePresetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MentalStatePresetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MentalStatePresetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MentalStatePresetMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MentalStatePresetMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MentalStatePreset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MentalStatePresetMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MentalStatePreset edge %s", name)
}

// NightmareMapMutation represents an operation that mutates the NightmareMap nodes in the graph.
type NightmareMapMutation struct {
	config
	op                           Op
	typ                          string
	id                           *uuid.UUID
	created_at                   *time.Time
	updated_at                   *time.Time
	property_1_condition         *string
	property_1_description       *string
	property_2_condition         *string
	property_2_description       *string
	property_3_condition         *string
	property_3_description       *string
	property_4_condition         *string
	property_4_description       *string
	extra_property_1_description *string
	extra_property_2_description *string
	clearedFields                map[string]struct{}
	patient                      *uuid.UUID
	clearedpatient               bool
	done                         bool
	oldValue                     func(context.Context) (*NightmareMap, error)
	predicates                   []predicate.NightmareMap
}

var _ ent.Mutation = (*NightmareMapMutation)(nil)

// nightmaremapOption allows management of the mutation configuration using functional options.
type nightmaremapOption func(*NightmareMapMutation)

// newNightmareMapMutation creates new mutation for the NightmareMap entity.
func newNightmareMapMutation(c config, op Op, opts ...nightmaremapOption) *NightmareMapMutation {
	m := &NightmareMapMutation{
		config:        c,
		op:            op,
		typ:           TypeNightmareMap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNightmareMapID sets the ID field of the mutation.
func withNightmareMapID(id uuid.UUID) nightmaremapOption {
	return func(m *NightmareMapMutation) {
		var (
			err   error
			once  sync.Once
			value *NightmareMap
		)
		m.oldValue = func(ctx context.Context) (*NightmareMap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().NightmareMap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNightmareMap sets the old NightmareMap of the mutation.
func withNightmareMap(node *NightmareMap) nightmaremapOption {
	return func(m *NightmareMapMutation) {
		m.oldValue = func(context.Context) (*NightmareMap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NightmareMapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NightmareMapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of NightmareMap entities.
func (m *NightmareMapMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NightmareMapMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NightmareMapMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().NightmareMap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NightmareMapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NightmareMapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NightmareMapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *NightmareMapMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *NightmareMapMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *NightmareMapMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPatientID sets the "patient_id" field.
func (m *NightmareMapMutation) SetPatientID(u uuid.UUID) {
	m.patient = &u
}

// PatientID returns the value of the "patient_id" field in the mutation.
func (m *NightmareMapMutation) PatientID() (r uuid.UUID, exists bool) {
	v := m.patient
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientID returns the old "patient_id" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldPatientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientID: %w", err)
	}
	return oldValue.PatientID, nil
}

// ResetPatientID resets all changes to the "patient_id" field.
func (m *NightmareMapMutation) ResetPatientID() {
	m.patient = nil
}

// SetProperty1Condition sets the "property_1_condition" field.
func (m *NightmareMapMutation) SetProperty1Condition(s string) {
	m.property_1_condition = &s
}

// Property1Condition returns the value of the "property_1_condition" field in the mutation.
func (m *NightmareMapMutation) Property1Condition() (r string, exists bool) {
	v := m.property_1_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty1Condition returns the old "property_1_condition" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty1Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty1Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty1Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty1Condition: %w", err)
	}
	return oldValue.Property1Condition, nil
}

// ClearProperty1Condition clears the value of the "property_1_condition" field.
func (m *NightmareMapMutation) ClearProperty1Condition() {
	m.property_1_condition = nil
	m.clearedFields[nightmaremap.FieldProperty1Condition] = struct{}{}
}

// Property1ConditionCleared returns if the "property_1_condition" field was cleared in this mutation.
func (m *NightmareMapMutation) Property1ConditionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty1Condition]
	return ok
}

// ResetProperty1Condition resets all changes to the "property_1_condition" field.
func (m *NightmareMapMutation) ResetProperty1Condition() {
	m.property_1_condition = nil
	delete(m.clearedFields, nightmaremap.FieldProperty1Condition)
}

// SetProperty1Description sets the "property_1_description" field.
func (m *NightmareMapMutation) SetProperty1Description(s string) {
	m.property_1_description = &s
}

// Property1Description returns the value of the "property_1_description" field in the mutation.
func (m *NightmareMapMutation) Property1Description() (r string, exists bool) {
	v := m.property_1_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty1Description returns the old "property_1_description" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty1Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty1Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty1Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty1Description: %w", err)
	}
	return oldValue.Property1Description, nil
}

// ClearProperty1Description clears the value of the "property_1_description" field.
func (m *NightmareMapMutation) ClearProperty1Description() {
	m.property_1_description = nil
	m.clearedFields[nightmaremap.FieldProperty1Description] = struct{}{}
}

// Property1DescriptionCleared returns if the "property_1_description" field was cleared in this mutation.
func (m *NightmareMapMutation) Property1DescriptionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty1Description]
	return ok
}

// ResetProperty1Description resets all changes to the "property_1_description" field.
func (m *NightmareMapMutation) ResetProperty1Description() {
	m.property_1_description = nil
	delete(m.clearedFields, nightmaremap.FieldProperty1Description)
}

// SetProperty2Condition sets the "property_2_condition" field.
func (m *NightmareMapMutation) SetProperty2Condition(s string) {
	m.property_2_condition = &s
}

// Property2Condition returns the value of the "property_2_condition" field in the mutation.
func (m *NightmareMapMutation) Property2Condition() (r string, exists bool) {
	v := m.property_2_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty2Condition returns the old "property_2_condition" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty2Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty2Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty2Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty2Condition: %w", err)
	}
	return oldValue.Property2Condition, nil
}

// ClearProperty2Condition clears the value of the "property_2_condition" field.
func (m *NightmareMapMutation) ClearProperty2Condition() {
	m.property_2_condition = nil
	m.clearedFields[nightmaremap.FieldProperty2Condition] = struct{}{}
}

// Property2ConditionCleared returns if the "property_2_condition" field was cleared in this mutation.
func (m *NightmareMapMutation) Property2ConditionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty2Condition]
	return ok
}

// ResetProperty2Condition resets all changes to the "property_2_condition" field.
func (m *NightmareMapMutation) ResetProperty2Condition() {
	m.property_2_condition = nil
	delete(m.clearedFields, nightmaremap.FieldProperty2Condition)
}

// SetProperty2Description sets the "property_2_description" field.
func (m *NightmareMapMutation) SetProperty2Description(s string) {
	m.property_2_description = &s
}

// Property2Description returns the value of the "property_2_description" field in the mutation.
func (m *NightmareMapMutation) Property2Description() (r string, exists bool) {
	v := m.property_2_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty2Description returns the old "property_2_description" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty2Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty2Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty2Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty2Description: %w", err)
	}
	return oldValue.Property2Description, nil
}

// ClearProperty2Description clears the value of the "property_2_description" field.
func (m *NightmareMapMutation) ClearProperty2Description() {
	m.property_2_description = nil
	m.clearedFields[nightmaremap.FieldProperty2Description] = struct{}{}
}

// Property2DescriptionCleared returns if the "property_2_description" field was cleared in this mutation.
func (m *NightmareMapMutation) Property2DescriptionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty2Description]
	return ok
}

// ResetProperty2Description resets all changes to the "property_2_description" field.
func (m *NightmareMapMutation) ResetProperty2Description() {
	m.property_2_description = nil
	delete(m.clearedFields, nightmaremap.FieldProperty2Description)
}

// SetProperty3Condition sets the "property_3_condition" field.
func (m *NightmareMapMutation) SetProperty3Condition(s string) {
	m.property_3_condition = &s
}

// Property3Condition returns the value of the "property_3_condition" field in the mutation.
func (m *NightmareMapMutation) Property3Condition() (r string, exists bool) {
	v := m.property_3_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty3Condition returns the old "property_3_condition" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty3Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty3Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty3Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty3Condition: %w", err)
	}
	return oldValue.Property3Condition, nil
}

// ClearProperty3Condition clears the value of the "property_3_condition" field.
func (m *NightmareMapMutation) ClearProperty3Condition() {
	m.property_3_condition = nil
	m.clearedFields[nightmaremap.FieldProperty3Condition] = struct{}{}
}

// Property3ConditionCleared returns if the "property_3_condition" field was cleared in this mutation.
func (m *NightmareMapMutation) Property3ConditionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty3Condition]
	return ok
}

// ResetProperty3Condition resets all changes to the "property_3_condition" field.
func (m *NightmareMapMutation) ResetProperty3Condition() {
	m.property_3_condition = nil
	delete(m.clearedFields, nightmaremap.FieldProperty3Condition)
}

// SetProperty3Description sets the "property_3_description" field.
func (m *NightmareMapMutation) SetProperty3Description(s string) {
	m.property_3_description = &s
}

// Property3Description returns the value of the "property_3_description" field in the mutation.
func (m *NightmareMapMutation) Property3Description() (r string, exists bool) {
	v := m.property_3_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty3Description returns the old "property_3_description" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty3Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty3Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty3Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty3Description: %w", err)
	}
	return oldValue.Property3Description, nil
}

// ClearProperty3Description clears the value of the "property_3_description" field.
func (m *NightmareMapMutation) ClearProperty3Description() {
	m.property_3_description = nil
	m.clearedFields[nightmaremap.FieldProperty3Description] = struct{}{}
}

// Property3DescriptionCleared returns if the "property_3_description" field was cleared in this mutation.
func (m *NightmareMapMutation) Property3DescriptionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty3Description]
	return ok
}

// ResetProperty3Description resets all changes to the "property_3_description" field.
func (m *NightmareMapMutation) ResetProperty3Description() {
	m.property_3_description = nil
	delete(m.clearedFields, nightmaremap.FieldProperty3Description)
}

// SetProperty4Condition sets the "property_4_condition" field.
func (m *NightmareMapMutation) SetProperty4Condition(s string) {
	m.property_4_condition = &s
}

// Property4Condition returns the value of the "property_4_condition" field in the mutation.
func (m *NightmareMapMutation) Property4Condition() (r string, exists bool) {
	v := m.property_4_condition
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty4Condition returns the old "property_4_condition" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty4Condition(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty4Condition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty4Condition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty4Condition: %w", err)
	}
	return oldValue.Property4Condition, nil
}

// ClearProperty4Condition clears the value of the "property_4_condition" field.
func (m *NightmareMapMutation) ClearProperty4Condition() {
	m.property_4_condition = nil
	m.clearedFields[nightmaremap.FieldProperty4Condition] = struct{}{}
}

// Property4ConditionCleared returns if the "property_4_condition" field was cleared in this mutation.
func (m *NightmareMapMutation) Property4ConditionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty4Condition]
	return ok
}

// ResetProperty4Condition resets all changes to the "property_4_condition" field.
func (m *NightmareMapMutation) ResetProperty4Condition() {
	m.property_4_condition = nil
	delete(m.clearedFields, nightmaremap.FieldProperty4Condition)
}

// SetProperty4Description sets the "property_4_description" field.
func (m *NightmareMapMutation) SetProperty4Description(s string) {
	m.property_4_description = &s
}

// Property4Description returns the value of the "property_4_description" field in the mutation.
func (m *NightmareMapMutation) Property4Description() (r string, exists bool) {
	v := m.property_4_description
	if v == nil {
		return
	}
	return *v, true
}

// OldProperty4Description returns the old "property_4_description" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldProperty4Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProperty4Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProperty4Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProperty4Description: %w", err)
	}
	return oldValue.Property4Description, nil
}

// ClearProperty4Description clears the value of the "property_4_description" field.
func (m *NightmareMapMutation) ClearProperty4Description() {
	m.property_4_description = nil
	m.clearedFields[nightmaremap.FieldProperty4Description] = struct{}{}
}

// Property4DescriptionCleared returns if the "property_4_description" field was cleared in this mutation.
func (m *NightmareMapMutation) Property4DescriptionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldProperty4Description]
	return ok
}

// ResetProperty4Description resets all changes to the "property_4_description" field.
func (m *NightmareMapMutation) ResetProperty4Description() {
	m.property_4_description = nil
	delete(m.clearedFields, nightmaremap.FieldProperty4Description)
}

// SetExtraProperty1Description sets the "extra_property_1_description" field.
func (m *NightmareMapMutation) SetExtraProperty1Description(s string) {
	m.extra_property_1_description = &s
}

// ExtraProperty1Description returns the value of the "extra_property_1_description" field in the mutation.
func (m *NightmareMapMutation) ExtraProperty1Description() (r string, exists bool) {
	v := m.extra_property_1_description
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraProperty1Description returns the old "extra_property_1_description" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldExtraProperty1Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraProperty1Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraProperty1Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraProperty1Description: %w", err)
	}
	return oldValue.ExtraProperty1Description, nil
}

// ClearExtraProperty1Description clears the value of the "extra_property_1_description" field.
func (m *NightmareMapMutation) ClearExtraProperty1Description() {
	m.extra_property_1_description = nil
	m.clearedFields[nightmaremap.FieldExtraProperty1Description] = struct{}{}
}

// ExtraProperty1DescriptionCleared returns if the "extra_property_1_description" field was cleared in this mutation.
func (m *NightmareMapMutation) ExtraProperty1DescriptionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldExtraProperty1Description]
	return ok
}

// ResetExtraProperty1Description resets all changes to the "extra_property_1_description" field.
func (m *NightmareMapMutation) ResetExtraProperty1Description() {
	m.extra_property_1_description = nil
	delete(m.clearedFields, nightmaremap.FieldExtraProperty1Description)
}

// SetExtraProperty2Description sets the "extra_property_2_description" field.
func (m *NightmareMapMutation) SetExtraProperty2Description(s string) {
	m.extra_property_2_description = &s
}

// ExtraProperty2Description returns the value of the "extra_property_2_description" field in the mutation.
func (m *NightmareMapMutation) ExtraProperty2Description() (r string, exists bool) {
	v := m.extra_property_2_description
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraProperty2Description returns the old "extra_property_2_description" field's value of the NightmareMap entity.
// If the NightmareMap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NightmareMapMutation) OldExtraProperty2Description(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraProperty2Description is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraProperty2Description requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraProperty2Description: %w", err)
	}
	return oldValue.ExtraProperty2Description, nil
}

// ClearExtraProperty2Description clears the value of the "extra_property_2_description" field.
func (m *NightmareMapMutation) ClearExtraProperty2Description() {
	m.extra_property_2_description = nil
	m.clearedFields[nightmaremap.FieldExtraProperty2Description] = struct{}{}
}

// ExtraProperty2DescriptionCleared returns if the "extra_property_2_description" field was cleared in this mutation.
func (m *NightmareMapMutation) ExtraProperty2DescriptionCleared() bool {
	_, ok := m.clearedFields[nightmaremap.FieldExtraProperty2Description]
	return ok
}

// ResetExtraProperty2Description resets all changes to the "extra_property_2_description" field.
func (m *NightmareMapMutation) ResetExtraProperty2Description() {
	m.extra_property_2_description = nil
	delete(m.clearedFields, nightmaremap.FieldExtraProperty2Description)
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *NightmareMapMutation) ClearPatient() {
	m.clearedpatient = true
	m.clearedFields[nightmaremap.FieldPatientID] = struct{}{}
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *NightmareMapMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *NightmareMapMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *NightmareMapMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// Where appends a list predicates to the NightmareMapMutation builder.
func (m *NightmareMapMutation) Where(ps ...predicate.NightmareMap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NightmareMapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NightmareMapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.NightmareMap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NightmareMapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NightmareMapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (NightmareMap).
func (m *NightmareMapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NightmareMapMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, nightmaremap.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, nightmaremap.FieldUpdatedAt)
	}
	if m.patient != nil {
		fields = append(fields, nightmaremap.FieldPatientID)
	}
	if m.property_1_condition != nil {
		fields = append(fields, nightmaremap.FieldProperty1Condition)
	}
	if m.property_1_description != nil {
		fields = append(fields, nightmaremap.FieldProperty1Description)
	}
	if m.property_2_condition != nil {
		fields = append(fields, nightmaremap.FieldProperty2Condition)
	}
	if m.property_2_description != nil {
		fields = append(fields, nightmaremap.FieldProperty2Description)
	}
	if m.property_3_condition != nil {
		fields = append(fields, nightmaremap.FieldProperty3Condition)
	}
	if m.property_3_description != nil {
		fields = append(fields, nightmaremap.FieldProperty3Description)
	}
	if m.property_4_condition != nil {
		fields = append(fields, nightmaremap.FieldProperty4Condition)
	}
	if m.property_4_description != nil {
		fields = append(fields, nightmaremap.FieldProperty4Description)
	}
	if m.extra_property_1_description != nil {
		fields = append(fields, nightmaremap.FieldExtraProperty1Description)
	}
	if m.extra_property_2_description != nil {
		fields = append(fields, nightmaremap.FieldExtraProperty2Description)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NightmareMapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case nightmaremap.FieldCreatedAt:
		return m.CreatedAt()
	case nightmaremap.FieldUpdatedAt:
		return m.UpdatedAt()
	case nightmaremap.FieldPatientID:
		return m.PatientID()
	case nightmaremap.FieldProperty1Condition:
		return m.Property1Condition()
	case nightmaremap.FieldProperty1Description:
		return m.Property1Description()
	case nightmaremap.FieldProperty2Condition:
		return m.Property2Condition()
	case nightmaremap.FieldProperty2Description:
		return m.Property2Description()
	case nightmaremap.FieldProperty3Condition:
		return m.Property3Condition()
	case nightmaremap.FieldProperty3Description:
		return m.Property3Description()
	case nightmaremap.FieldProperty4Condition:
		return m.Property4Condition()
	case nightmaremap.FieldProperty4Description:
		return m.Property4Description()
	case nightmaremap.FieldExtraProperty1Description:
		return m.ExtraProperty1Description()
	case nightmaremap.FieldExtraProperty2Description:
		return m.ExtraProperty2Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NightmareMapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case nightmaremap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case nightmaremap.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case nightmaremap.FieldPatientID:
		return m.OldPatientID(ctx)
	case nightmaremap.FieldProperty1Condition:
		return m.OldProperty1Condition(ctx)
	case nightmaremap.FieldProperty1Description:
		return m.OldProperty1Description(ctx)
	case nightmaremap.FieldProperty2Condition:
		return m.OldProperty2Condition(ctx)
	case nightmaremap.FieldProperty2Description:
		return m.OldProperty2Description(ctx)
	case nightmaremap.FieldProperty3Condition:
		return m.OldProperty3Condition(ctx)
	case nightmaremap.FieldProperty3Description:
		return m.OldProperty3Description(ctx)
	case nightmaremap.FieldProperty4Condition:
		return m.OldProperty4Condition(ctx)
	case nightmaremap.FieldProperty4Description:
		return m.OldProperty4Description(ctx)
	case nightmaremap.FieldExtraProperty1Description:
		return m.OldExtraProperty1Description(ctx)
	case nightmaremap.FieldExtraProperty2Description:
		return m.OldExtraProperty2Description(ctx)
	}
	return nil, fmt.Errorf("unknown NightmareMap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NightmareMapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case nightmaremap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case nightmaremap.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case nightmaremap.FieldPatientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientID(v)
		return nil
	case nightmaremap.FieldProperty1Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty1Condition(v)
		return nil
	case nightmaremap.FieldProperty1Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty1Description(v)
		return nil
	case nightmaremap.FieldProperty2Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty2Condition(v)
		return nil
	case nightmaremap.FieldProperty2Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty2Description(v)
		return nil
	case nightmaremap.FieldProperty3Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty3Condition(v)
		return nil
	case nightmaremap.FieldProperty3Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty3Description(v)
		return nil
	case nightmaremap.FieldProperty4Condition:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty4Condition(v)
		return nil
	case nightmaremap.FieldProperty4Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProperty4Description(v)
		return nil
	case nightmaremap.FieldExtraProperty1Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraProperty1Description(v)
		return nil
	case nightmaremap.FieldExtraProperty2Description:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraProperty2Description(v)
		return nil
	}
	return fmt.Errorf("unknown NightmareMap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NightmareMapMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NightmareMapMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NightmareMapMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown NightmareMap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NightmareMapMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(nightmaremap.FieldProperty1Condition) {
		fields = append(fields, nightmaremap.FieldProperty1Condition)
	}
	if m.FieldCleared(nightmaremap.FieldProperty1Description) {
		fields = append(fields, nightmaremap.FieldProperty1Description)
	}
	if m.FieldCleared(nightmaremap.FieldProperty2Condition) {
		fields = append(fields, nightmaremap.FieldProperty2Condition)
	}
	if m.FieldCleared(nightmaremap.FieldProperty2Description) {
		fields = append(fields, nightmaremap.FieldProperty2Description)
	}
	if m.FieldCleared(nightmaremap.FieldProperty3Condition) {
		fields = append(fields, nightmaremap.FieldProperty3Condition)
	}
	if m.FieldCleared(nightmaremap.FieldProperty3Description) {
		fields = append(fields, nightmaremap.FieldProperty3Description)
	}
	if m.FieldCleared(nightmaremap.FieldProperty4Condition) {
		fields = append(fields, nightmaremap.FieldProperty4Condition)
	}
	if m.FieldCleared(nightmaremap.FieldProperty4Description) {
		fields = append(fields, nightmaremap.FieldProperty4Description)
	}
	if m.FieldCleared(nightmaremap.FieldExtraProperty1Description) {
		fields = append(fields, nightmaremap.FieldExtraProperty1Description)
	}
	if m.FieldCleared(nightmaremap.FieldExtraProperty2Description) {
		fields = append(fields, nightmaremap.FieldExtraProperty2Description)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NightmareMapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NightmareMapMutation) ClearField(name string) error {
	switch name {
	case nightmaremap.FieldProperty1Condition:
		m.ClearProperty1Condition()
		return nil
	case nightmaremap.FieldProperty1Description:
		m.ClearProperty1Description()
		return nil
	case nightmaremap.FieldProperty2Condition:
		m.ClearProperty2Condition()
		return nil
	case nightmaremap.FieldProperty2Description:
		m.ClearProperty2Description()
		return nil
	case nightmaremap.FieldProperty3Condition:
		m.ClearProperty3Condition()
		return nil
	case nightmaremap.FieldProperty3Description:
		m.ClearProperty3Description()
		return nil
	case nightmaremap.FieldProperty4Condition:
		m.ClearProperty4Condition()
		return nil
	case nightmaremap.FieldProperty4Description:
		m.ClearProperty4Description()
		return nil
	case nightmaremap.FieldExtraProperty1Description:
		m.ClearExtraProperty1Description()
		return nil
	case nightmaremap.FieldExtraProperty2Description:
		m.ClearExtraProperty2Description()
		return nil
	}
	return fmt.Errorf("unknown NightmareMap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NightmareMapMutation) ResetField(name string) error {
	switch name {
	case nightmaremap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case nightmaremap.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case nightmaremap.FieldPatientID:
		m.ResetPatientID()
		return nil
	case nightmaremap.FieldProperty1Condition:
		m.ResetProperty1Condition()
		return nil
	case nightmaremap.FieldProperty1Description:
		m.ResetProperty1Description()
		return nil
	case nightmaremap.FieldProperty2Condition:
		m.ResetProperty2Condition()
		return nil
	case nightmaremap.FieldProperty2Description:
		m.ResetProperty2Description()
		return nil
	case nightmaremap.FieldProperty3Condition:
		m.ResetProperty3Condition()
		return nil
	case nightmaremap.FieldProperty3Description:
		m.ResetProperty3Description()
		return nil
	case nightmaremap.FieldProperty4Condition:
		m.ResetProperty4Condition()
		return nil
	case nightmaremap.FieldProperty4Description:
		m.ResetProperty4Description()
		return nil
	case nightmaremap.FieldExtraProperty1Description:
		m.ResetExtraProperty1Description()
		return nil
	case nightmaremap.FieldExtraProperty2Description:
		m.ResetExtraProperty2Description()
		return nil
	}
	return fmt.Errorf("unknown NightmareMap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NightmareMapMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.patient != nil {
		edges = append(edges, nightmaremap.EdgePatient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NightmareMapMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case nightmaremap.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NightmareMapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NightmareMapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NightmareMapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpatient {
		edges = append(edges, nightmaremap.EdgePatient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NightmareMapMutation) EdgeCleared(name string) bool {
	switch name {
	case nightmaremap.EdgePatient:
		return m.clearedpatient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NightmareMapMutation) ClearEdge(name string) error {
	switch name {
	case nightmaremap.EdgePatient:
		m.ClearPatient()
		return nil
	}
	return fmt.Errorf("unknown NightmareMap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NightmareMapMutation) ResetEdge(name string) error {
	switch name {
	case nightmaremap.EdgePatient:
		m.ResetPatient()
		return nil
	}
	return fmt.Errorf("unknown NightmareMap edge %s", name)
}

// PatientMutation represents an operation that mutates the Patient nodes in the graph.
type PatientMutation struct {
	config
	op                                   Op
	typ                                  string
	id                                   *uuid.UUID
	created_at                           *time.Time
	updated_at                           *time.Time
	full_name                            *string
	nickname                             *string
	telegram                             *string
	avatar_key                           *string
	chemistry_level                      *int
	addchemistry_level                   *int
	mechanics_level                      *int
	addmechanics_level                   *int
	social_skills_level                  *int
	addsocial_skills_level               *int
	physical_skills_level                *int
	addphysical_skills_level             *int
	bonus_level                          *string
	clearedFields                        map[string]struct{}
	user                                 *uuid.UUID
	cleareduser                          bool
	mental_state                         *uuid.UUID
	clearedmental_state                  bool
	awareness_map                        *uuid.UUID
	clearedawareness_map                 bool
	nightmare_map                        *uuid.UUID
	clearednightmare_map                 bool
	chemical_recipes                     map[uuid.UUID]struct{}
	removedchemical_recipes              map[uuid.UUID]struct{}
	clearedchemical_recipes              bool
	mechanical_compounds                 map[uuid.UUID]struct{}
	removedmechanical_compounds          map[uuid.UUID]struct{}
	clearedmechanical_compounds          bool
	authored_chemical_recipes            map[uuid.UUID]struct{}
	removedauthored_chemical_recipes     map[uuid.UUID]struct{}
	clearedauthored_chemical_recipes     bool
	authored_mechanical_compounds        map[uuid.UUID]struct{}
	removedauthored_mechanical_compounds map[uuid.UUID]struct{}
	clearedauthored_mechanical_compounds bool
	done                                 bool
	oldValue                             func(context.Context) (*Patient, error)
	predicates                           []predicate.Patient
}

var _ ent.Mutation = (*PatientMutation)(nil)

// patientOption allows management of the mutation configuration using functional options.
type patientOption func(*PatientMutation)

// newPatientMutation creates new mutation for the Patient entity.
func newPatientMutation(c config, op Op, opts ...patientOption) *PatientMutation {
	m := &PatientMutation{
		config:        c,
		op:            op,
		typ:           TypePatient,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPatientID sets the ID field of the mutation.
func withPatientID(id uuid.UUID) patientOption {
	return func(m *PatientMutation) {
		var (
			err   error
			once  sync.Once
			value *Patient
		)
		m.oldValue = func(ctx context.Context) (*Patient, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Patient.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPatient sets the old Patient of the mutation.
func withPatient(node *Patient) patientOption {
	return func(m *PatientMutation) {
		m.oldValue = func(context.Context) (*Patient, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PatientMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PatientMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Patient entities.
func (m *PatientMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PatientMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PatientMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Patient.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PatientMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PatientMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PatientMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PatientMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PatientMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PatientMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *PatientMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PatientMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *PatientMutation) ClearUserID() {
	m.user = nil
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *PatientMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[patient.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PatientMutation) ResetUserID() {
	m.user = nil
	delete(m.clearedFields, patient.FieldUserID)
}

// SetMentalStateID sets the "mental_state_id" field.
func (m *PatientMutation) SetMentalStateID(u uuid.UUID) {
	m.mental_state = &u
}

// MentalStateID returns the value of the "mental_state_id" field in the mutation.
func (m *PatientMutation) MentalStateID() (r uuid.UUID, exists bool) {
	v := m.mental_state
	if v == nil {
		return
	}
	return *v, true
}

// OldMentalStateID returns the old "mental_state_id" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMentalStateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMentalStateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMentalStateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMentalStateID: %w", err)
	}
	return oldValue.MentalStateID, nil
}

// ClearMentalStateID clears the value of the "mental_state_id" field.
func (m *PatientMutation) ClearMentalStateID() {
	m.mental_state = nil
	m.clearedFields[patient.FieldMentalStateID] = struct{}{}
}

// MentalStateIDCleared returns if the "mental_state_id" field was cleared in this mutation.
func (m *PatientMutation) MentalStateIDCleared() bool {
	_, ok := m.clearedFields[patient.FieldMentalStateID]
	return ok
}

// ResetMentalStateID resets all changes to the "mental_state_id" field.
func (m *PatientMutation) ResetMentalStateID() {
	m.mental_state = nil
	delete(m.clearedFields, patient.FieldMentalStateID)
}

// SetFullName sets the "full_name" field.
func (m *PatientMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *PatientMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *PatientMutation) ResetFullName() {
	m.full_name = nil
}

// SetNickname sets the "nickname" field.
func (m *PatientMutation) SetNickname(s string) {
	m.nickname = &s
}

// Nickname returns the value of the "nickname" field in the mutation.
func (m *PatientMutation) Nickname() (r string, exists bool) {
	v := m.nickname
	if v == nil {
		return
	}
	return *v, true
}

// OldNickname returns the old "nickname" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldNickname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNickname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNickname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNickname: %w", err)
	}
	return oldValue.Nickname, nil
}

// ResetNickname resets all changes to the "nickname" field.
func (m *PatientMutation) ResetNickname() {
	m.nickname = nil
}

// SetTelegram sets the "telegram" field.
func (m *PatientMutation) SetTelegram(s string) {
	m.telegram = &s
}

// Telegram returns the value of the "telegram" field in the mutation.
func (m *PatientMutation) Telegram() (r string, exists bool) {
	v := m.telegram
	if v == nil {
		return
	}
	return *v, true
}

// OldTelegram returns the old "telegram" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldTelegram(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelegram is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelegram requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelegram: %w", err)
	}
	return oldValue.Telegram, nil
}

// ClearTelegram clears the value of the "telegram" field.
func (m *PatientMutation) ClearTelegram() {
	m.telegram = nil
	m.clearedFields[patient.FieldTelegram] = struct{}{}
}

// TelegramCleared returns if the "telegram" field was cleared in this mutation.
func (m *PatientMutation) TelegramCleared() bool {
	_, ok := m.clearedFields[patient.FieldTelegram]
	return ok
}

// ResetTelegram resets all changes to the "telegram" field.
func (m *PatientMutation) ResetTelegram() {
	m.telegram = nil
	delete(m.clearedFields, patient.FieldTelegram)
}

// SetAvatarKey sets the "avatar_key" field.
func (m *PatientMutation) SetAvatarKey(s string) {
	m.avatar_key = &s
}

// AvatarKey returns the value of the "avatar_key" field in the mutation.
func (m *PatientMutation) AvatarKey() (r string, exists bool) {
	v := m.avatar_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarKey returns the old "avatar_key" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldAvatarKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarKey: %w", err)
	}
	return oldValue.AvatarKey, nil
}

// ClearAvatarKey clears the value of the "avatar_key" field.
func (m *PatientMutation) ClearAvatarKey() {
	m.avatar_key = nil
	m.clearedFields[patient.FieldAvatarKey] = struct{}{}
}

// AvatarKeyCleared returns if the "avatar_key" field was cleared in this mutation.
func (m *PatientMutation) AvatarKeyCleared() bool {
	_, ok := m.clearedFields[patient.FieldAvatarKey]
	return ok
}

// ResetAvatarKey resets all changes to the "avatar_key" field.
func (m *PatientMutation) ResetAvatarKey() {
	m.avatar_key = nil
	delete(m.clearedFields, patient.FieldAvatarKey)
}

// SetChemistryLevel sets the "chemistry_level" field.
func (m *PatientMutation) SetChemistryLevel(i int) {
	m.chemistry_level = &i
	m.addchemistry_level = nil
}

// ChemistryLevel returns the value of the "chemistry_level" field in the mutation.
func (m *PatientMutation) ChemistryLevel() (r int, exists bool) {
	v := m.chemistry_level
	if v == nil {
		return
	}
	return *v, true
}

// OldChemistryLevel returns the old "chemistry_level" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldChemistryLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChemistryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChemistryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChemistryLevel: %w", err)
	}
	return oldValue.ChemistryLevel, nil
}

// AddChemistryLevel adds i to the "chemistry_level" field.
func (m *PatientMutation) AddChemistryLevel(i int) {
	if m.addchemistry_level != nil {
		*m.addchemistry_level += i
	} else {
		m.addchemistry_level = &i
	}
}

// AddedChemistryLevel returns the value that was added to the "chemistry_level" field in this mutation.
func (m *PatientMutation) AddedChemistryLevel() (r int, exists bool) {
	v := m.addchemistry_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetChemistryLevel resets all changes to the "chemistry_level" field.
func (m *PatientMutation) ResetChemistryLevel() {
	m.chemistry_level = nil
	m.addchemistry_level = nil
}

// SetMechanicsLevel sets the "mechanics_level" field.
func (m *PatientMutation) SetMechanicsLevel(i int) {
	m.mechanics_level = &i
	m.addmechanics_level = nil
}

// MechanicsLevel returns the value of the "mechanics_level" field in the mutation.
func (m *PatientMutation) MechanicsLevel() (r int, exists bool) {
	v := m.mechanics_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMechanicsLevel returns the old "mechanics_level" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldMechanicsLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMechanicsLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMechanicsLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMechanicsLevel: %w", err)
	}
	return oldValue.MechanicsLevel, nil
}

// AddMechanicsLevel adds i to the "mechanics_level" field.
func (m *PatientMutation) AddMechanicsLevel(i int) {
	if m.addmechanics_level != nil {
		*m.addmechanics_level += i
	} else {
		m.addmechanics_level = &i
	}
}

// AddedMechanicsLevel returns the value that was added to the "mechanics_level" field in this mutation.
func (m *PatientMutation) AddedMechanicsLevel() (r int, exists bool) {
	v := m.addmechanics_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMechanicsLevel resets all changes to the "mechanics_level" field.
func (m *PatientMutation) ResetMechanicsLevel() {
	m.mechanics_level = nil
	m.addmechanics_level = nil
}

// SetSocialSkillsLevel sets the "social_skills_level" field.
func (m *PatientMutation) SetSocialSkillsLevel(i int) {
	m.social_skills_level = &i
	m.addsocial_skills_level = nil
}

// SocialSkillsLevel returns the value of the "social_skills_level" field in the mutation.
func (m *PatientMutation) SocialSkillsLevel() (r int, exists bool) {
	v := m.social_skills_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSocialSkillsLevel returns the old "social_skills_level" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldSocialSkillsLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSocialSkillsLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSocialSkillsLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSocialSkillsLevel: %w", err)
	}
	return oldValue.SocialSkillsLevel, nil
}

// AddSocialSkillsLevel adds i to the "social_skills_level" field.
func (m *PatientMutation) AddSocialSkillsLevel(i int) {
	if m.addsocial_skills_level != nil {
		*m.addsocial_skills_level += i
	} else {
		m.addsocial_skills_level = &i
	}
}

// AddedSocialSkillsLevel returns the value that was added to the "social_skills_level" field in this mutation.
func (m *PatientMutation) AddedSocialSkillsLevel() (r int, exists bool) {
	v := m.addsocial_skills_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetSocialSkillsLevel resets all changes to the "social_skills_level" field.
func (m *PatientMutation) ResetSocialSkillsLevel() {
	m.social_skills_level = nil
	m.addsocial_skills_level = nil
}

// SetPhysicalSkillsLevel sets the "physical_skills_level" field.
func (m *PatientMutation) SetPhysicalSkillsLevel(i int) {
	m.physical_skills_level = &i
	m.addphysical_skills_level = nil
}

// PhysicalSkillsLevel returns the value of the "physical_skills_level" field in the mutation.
func (m *PatientMutation) PhysicalSkillsLevel() (r int, exists bool) {
	v := m.physical_skills_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPhysicalSkillsLevel returns the old "physical_skills_level" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldPhysicalSkillsLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhysicalSkillsLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhysicalSkillsLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhysicalSkillsLevel: %w", err)
	}
	return oldValue.PhysicalSkillsLevel, nil
}

// AddPhysicalSkillsLevel adds i to the "physical_skills_level" field.
func (m *PatientMutation) AddPhysicalSkillsLevel(i int) {
	if m.addphysical_skills_level != nil {
		*m.addphysical_skills_level += i
	} else {
		m.addphysical_skills_level = &i
	}
}

// AddedPhysicalSkillsLevel returns the value that was added to the "physical_skills_level" field in this mutation.
func (m *PatientMutation) AddedPhysicalSkillsLevel() (r int, exists bool) {
	v := m.addphysical_skills_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhysicalSkillsLevel resets all changes to the "physical_skills_level" field.
func (m *PatientMutation) ResetPhysicalSkillsLevel() {
	m.physical_skills_level = nil
	m.addphysical_skills_level = nil
}

// SetBonusLevel sets the "bonus_level" field.
func (m *PatientMutation) SetBonusLevel(s string) {
	m.bonus_level = &s
}

// BonusLevel returns the value of the "bonus_level" field in the mutation.
func (m *PatientMutation) BonusLevel() (r string, exists bool) {
	v := m.bonus_level
	if v == nil {
		return
	}
	return *v, true
}

// OldBonusLevel returns the old "bonus_level" field's value of the Patient entity.
// If the Patient object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PatientMutation) OldBonusLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBonusLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBonusLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBonusLevel: %w", err)
	}
	return oldValue.BonusLevel, nil
}

// ClearBonusLevel clears the value of the "bonus_level" field.
func (m *PatientMutation) ClearBonusLevel() {
	m.bonus_level = nil
	m.clearedFields[patient.FieldBonusLevel] = struct{}{}
}

// BonusLevelCleared returns if the "bonus_level" field was cleared in this mutation.
func (m *PatientMutation) BonusLevelCleared() bool {
	_, ok := m.clearedFields[patient.FieldBonusLevel]
	return ok
}

// ResetBonusLevel resets all changes to the "bonus_level" field.
func (m *PatientMutation) ResetBonusLevel() {
	m.bonus_level = nil
	delete(m.clearedFields, patient.FieldBonusLevel)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PatientMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[patient.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PatientMutation) UserCleared() bool {
	return m.UserIDCleared() || m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PatientMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearMentalState clears the "mental_state" edge to the MentalState entity.
func (m *PatientMutation) ClearMentalState() {
	m.clearedmental_state = true
	m.clearedFields[patient.FieldMentalStateID] = struct{}{}
}

// MentalStateCleared reports if the "mental_state" edge to the MentalState entity was cleared.
func (m *PatientMutation) MentalStateCleared() bool {
	return m.MentalStateIDCleared() || m.clearedmental_state
}

// MentalStateIDs returns the "mental_state" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MentalStateID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) MentalStateIDs() (ids []uuid.UUID) {
	if id := m.mental_state; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMentalState resets all changes to the "mental_state" edge.
func (m *PatientMutation) ResetMentalState() {
	m.mental_state = nil
	m.clearedmental_state = false
}

// SetAwarenessMapID sets the "awareness_map" edge to the AwarenessMap entity by id.
func (m *PatientMutation) SetAwarenessMapID(id uuid.UUID) {
	m.awareness_map = &id
}

// ClearAwarenessMap clears the "awareness_map" edge to the AwarenessMap entity.
func (m *PatientMutation) ClearAwarenessMap() {
	m.clearedawareness_map = true
}

// AwarenessMapCleared reports if the "awareness_map" edge to the AwarenessMap entity was cleared.
func (m *PatientMutation) AwarenessMapCleared() bool {
	return m.clearedawareness_map
}

// AwarenessMapID returns the "awareness_map" edge ID in the mutation.
func (m *PatientMutation) AwarenessMapID() (id uuid.UUID, exists bool) {
	if m.awareness_map != nil {
		return *m.awareness_map, true
	}
	return
}

// AwarenessMapIDs returns the "awareness_map" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AwarenessMapID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) AwarenessMapIDs() (ids []uuid.UUID) {
	if id := m.awareness_map; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAwarenessMap resets all changes to the "awareness_map" edge.
func (m *PatientMutation) ResetAwarenessMap() {
	m.awareness_map = nil
	m.clearedawareness_map = false
}

// SetNightmareMapID sets the "nightmare_map" edge to the NightmareMap entity by id.
func (m *PatientMutation) SetNightmareMapID(id uuid.UUID) {
	m.nightmare_map = &id
}

// ClearNightmareMap clears the "nightmare_map" edge to the NightmareMap entity.
func (m *PatientMutation) ClearNightmareMap() {
	m.clearednightmare_map = true
}

// NightmareMapCleared reports if the "nightmare_map" edge to the NightmareMap entity was cleared.
func (m *PatientMutation) NightmareMapCleared() bool {
	return m.clearednightmare_map
}

// NightmareMapID returns the "nightmare_map" edge ID in the mutation.
func (m *PatientMutation) NightmareMapID() (id uuid.UUID, exists bool) {
	if m.nightmare_map != nil {
		return *m.nightmare_map, true
	}
	return
}

// NightmareMapIDs returns the "nightmare_map" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// NightmareMapID instead. It exists only for internal usage by the builders.
func (m *PatientMutation) NightmareMapIDs() (ids []uuid.UUID) {
	if id := m.nightmare_map; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetNightmareMap resets all changes to the "nightmare_map" edge.
func (m *PatientMutation) ResetNightmareMap() {
	m.nightmare_map = nil
	m.clearednightmare_map = false
}

// AddChemicalRecipeIDs adds the "chemical_recipes" edge to the ChemicalRecipe entity by ids.
func (m *PatientMutation) AddChemicalRecipeIDs(ids ...uuid.UUID) {
	if m.chemical_recipes == nil {
		m.chemical_recipes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.chemical_recipes[ids[i]] = struct{}{}
	}
}

// ClearChemicalRecipes clears the "chemical_recipes" edge to the ChemicalRecipe entity.
func (m *PatientMutation) ClearChemicalRecipes() {
	m.clearedchemical_recipes = true
}

// ChemicalRecipesCleared reports if the "chemical_recipes" edge to the ChemicalRecipe entity was cleared.
func (m *PatientMutation) ChemicalRecipesCleared() bool {
	return m.clearedchemical_recipes
}

// RemoveChemicalRecipeIDs removes the "chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (m *PatientMutation) RemoveChemicalRecipeIDs(ids ...uuid.UUID) {
	if m.removedchemical_recipes == nil {
		m.removedchemical_recipes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.chemical_recipes, ids[i])
		m.removedchemical_recipes[ids[i]] = struct{}{}
	}
}

// RemovedChemicalRecipes returns the removed IDs of the "chemical_recipes" edge to the ChemicalRecipe entity.
func (m *PatientMutation) RemovedChemicalRecipesIDs() (ids []uuid.UUID) {
	for id := range m.removedchemical_recipes {
		ids = append(ids, id)
	}
	return
}

// ChemicalRecipesIDs returns the "chemical_recipes" edge IDs in the mutation.
func (m *PatientMutation) ChemicalRecipesIDs() (ids []uuid.UUID) {
	for id := range m.chemical_recipes {
		ids = append(ids, id)
	}
	return
}

// ResetChemicalRecipes resets all changes to the "chemical_recipes" edge.
func (m *PatientMutation) ResetChemicalRecipes() {
	m.chemical_recipes = nil
	m.clearedchemical_recipes = false
	m.removedchemical_recipes = nil
}

// AddMechanicalCompoundIDs adds the "mechanical_compounds" edge to the MechanicalCompound entity by ids.
func (m *PatientMutation) AddMechanicalCompoundIDs(ids ...uuid.UUID) {
	if m.mechanical_compounds == nil {
		m.mechanical_compounds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.mechanical_compounds[ids[i]] = struct{}{}
	}
}

// ClearMechanicalCompounds clears the "mechanical_compounds" edge to the MechanicalCompound entity.
func (m *PatientMutation) ClearMechanicalCompounds() {
	m.clearedmechanical_compounds = true
}

// MechanicalCompoundsCleared reports if the "mechanical_compounds" edge to the MechanicalCompound entity was cleared.
func (m *PatientMutation) MechanicalCompoundsCleared() bool {
	return m.clearedmechanical_compounds
}

// RemoveMechanicalCompoundIDs removes the "mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (m *PatientMutation) RemoveMechanicalCompoundIDs(ids ...uuid.UUID) {
	if m.removedmechanical_compounds == nil {
		m.removedmechanical_compounds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.mechanical_compounds, ids[i])
		m.removedmechanical_compounds[ids[i]] = struct{}{}
	}
}

// RemovedMechanicalCompounds returns the removed IDs of the "mechanical_compounds" edge to the MechanicalCompound entity.
func (m *PatientMutation) RemovedMechanicalCompoundsIDs() (ids []uuid.UUID) {
	for id := range m.removedmechanical_compounds {
		ids = append(ids, id)
	}
	return
}

// MechanicalCompoundsIDs returns the "mechanical_compounds" edge IDs in the mutation.
func (m *PatientMutation) MechanicalCompoundsIDs() (ids []uuid.UUID) {
	for id := range m.mechanical_compounds {
		ids = append(ids, id)
	}
	return
}

// ResetMechanicalCompounds resets all changes to the "mechanical_compounds" edge.
func (m *PatientMutation) ResetMechanicalCompounds() {
	m.mechanical_compounds = nil
	m.clearedmechanical_compounds = false
	m.removedmechanical_compounds = nil
}

// AddAuthoredChemicalRecipeIDs adds the "authored_chemical_recipes" edge to the ChemicalRecipe entity by ids.
func (m *PatientMutation) AddAuthoredChemicalRecipeIDs(ids ...uuid.UUID) {
	if m.authored_chemical_recipes == nil {
		m.authored_chemical_recipes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.authored_chemical_recipes[ids[i]] = struct{}{}
	}
}

// ClearAuthoredChemicalRecipes clears the "authored_chemical_recipes" edge to the ChemicalRecipe entity.
func (m *PatientMutation) ClearAuthoredChemicalRecipes() {
	m.clearedauthored_chemical_recipes = true
}

// AuthoredChemicalRecipesCleared reports if the "authored_chemical_recipes" edge to the ChemicalRecipe entity was cleared.
func (m *PatientMutation) AuthoredChemicalRecipesCleared() bool {
	return m.clearedauthored_chemical_recipes
}

// RemoveAuthoredChemicalRecipeIDs removes the "authored_chemical_recipes" edge to the ChemicalRecipe entity by IDs.
func (m *PatientMutation) RemoveAuthoredChemicalRecipeIDs(ids ...uuid.UUID) {
	if m.removedauthored_chemical_recipes == nil {
		m.removedauthored_chemical_recipes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.authored_chemical_recipes, ids[i])
		m.removedauthored_chemical_recipes[ids[i]] = struct{}{}
	}
}

// RemovedAuthoredChemicalRecipes returns the removed IDs of the "authored_chemical_recipes" edge to the ChemicalRecipe entity.
func (m *PatientMutation) RemovedAuthoredChemicalRecipesIDs() (ids []uuid.UUID) {
	for id := range m.removedauthored_chemical_recipes {
		ids = append(ids, id)
	}
	return
}

// AuthoredChemicalRecipesIDs returns the "authored_chemical_recipes" edge IDs in the mutation.
func (m *PatientMutation) AuthoredChemicalRecipesIDs() (ids []uuid.UUID) {
	for id := range m.authored_chemical_recipes {
		ids = append(ids, id)
	}
	return
}

// ResetAuthoredChemicalRecipes resets all changes to the "authored_chemical_recipes" edge.
func (m *PatientMutation) ResetAuthoredChemicalRecipes() {
	m.authored_chemical_recipes = nil
	m.clearedauthored_chemical_recipes = false
	m.removedauthored_chemical_recipes = nil
}

// AddAuthoredMechanicalCompoundIDs adds the "authored_mechanical_compounds" edge to the MechanicalCompound entity by ids.
func (m *PatientMutation) AddAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) {
	if m.authored_mechanical_compounds == nil {
		m.authored_mechanical_compounds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.authored_mechanical_compounds[ids[i]] = struct{}{}
	}
}

// ClearAuthoredMechanicalCompounds clears the "authored_mechanical_compounds" edge to the MechanicalCompound entity.
func (m *PatientMutation) ClearAuthoredMechanicalCompounds() {
	m.clearedauthored_mechanical_compounds = true
}

// AuthoredMechanicalCompoundsCleared reports if the "authored_mechanical_compounds" edge to the MechanicalCompound entity was cleared.
func (m *PatientMutation) AuthoredMechanicalCompoundsCleared() bool {
	return m.clearedauthored_mechanical_compounds
}

// RemoveAuthoredMechanicalCompoundIDs removes the "authored_mechanical_compounds" edge to the MechanicalCompound entity by IDs.
func (m *PatientMutation) RemoveAuthoredMechanicalCompoundIDs(ids ...uuid.UUID) {
	if m.removedauthored_mechanical_compounds == nil {
		m.removedauthored_mechanical_compounds = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.authored_mechanical_compounds, ids[i])
		m.removedauthored_mechanical_compounds[ids[i]] = struct{}{}
	}
}

// RemovedAuthoredMechanicalCompounds returns the removed IDs of the "authored_mechanical_compounds" edge to the MechanicalCompound entity.
func (m *PatientMutation) RemovedAuthoredMechanicalCompoundsIDs() (ids []uuid.UUID) {
	for id := range m.removedauthored_mechanical_compounds {
		ids = append(ids, id)
	}
	return
}

// AuthoredMechanicalCompoundsIDs returns the "authored_mechanical_compounds" edge IDs in the mutation.
func (m *PatientMutation) AuthoredMechanicalCompoundsIDs() (ids []uuid.UUID) {
	for id := range m.authored_mechanical_compounds {
		ids = append(ids, id)
	}
	return
}

// ResetAuthoredMechanicalCompounds resets all changes to the "authored_mechanical_compounds" edge.
func (m *PatientMutation) ResetAuthoredMechanicalCompounds() {
	m.authored_mechanical_compounds = nil
	m.clearedauthored_mechanical_compounds = false
	m.removedauthored_mechanical_compounds = nil
}

// Where appends a list predicates to the PatientMutation builder.
func (m *PatientMutation) Where(ps ...predicate.Patient) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PatientMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PatientMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Patient, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PatientMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PatientMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Patient).
func (m *PatientMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PatientMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.created_at != nil {
		fields = append(fields, patient.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, patient.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, patient.FieldUserID)
	}
	if m.mental_state != nil {
		fields = append(fields, patient.FieldMentalStateID)
	}
	if m.full_name != nil {
		fields = append(fields, patient.FieldFullName)
	}
	if m.nickname != nil {
		fields = append(fields, patient.FieldNickname)
	}
	if m.telegram != nil {
		fields = append(fields, patient.FieldTelegram)
	}
	if m.avatar_key != nil {
		fields = append(fields, patient.FieldAvatarKey)
	}
	if m.chemistry_level != nil {
		fields = append(fields, patient.FieldChemistryLevel)
	}
	if m.mechanics_level != nil {
		fields = append(fields, patient.FieldMechanicsLevel)
	}
	if m.social_skills_level != nil {
		fields = append(fields, patient.FieldSocialSkillsLevel)
	}
	if m.physical_skills_level != nil {
		fields = append(fields, patient.FieldPhysicalSkillsLevel)
	}
	if m.bonus_level != nil {
		fields = append(fields, patient.FieldBonusLevel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PatientMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldCreatedAt:
		return m.CreatedAt()
	case patient.FieldUpdatedAt:
		return m.UpdatedAt()
	case patient.FieldUserID:
		return m.UserID()
	case patient.FieldMentalStateID:
		return m.MentalStateID()
	case patient.FieldFullName:
		return m.FullName()
	case patient.FieldNickname:
		return m.Nickname()
	case patient.FieldTelegram:
		return m.Telegram()
	case patient.FieldAvatarKey:
		return m.AvatarKey()
	case patient.FieldChemistryLevel:
		return m.ChemistryLevel()
	case patient.FieldMechanicsLevel:
		return m.MechanicsLevel()
	case patient.FieldSocialSkillsLevel:
		return m.SocialSkillsLevel()
	case patient.FieldPhysicalSkillsLevel:
		return m.PhysicalSkillsLevel()
	case patient.FieldBonusLevel:
		return m.BonusLevel()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PatientMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case patient.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case patient.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case patient.FieldUserID:
		return m.OldUserID(ctx)
	case patient.FieldMentalStateID:
		return m.OldMentalStateID(ctx)
	case patient.FieldFullName:
		return m.OldFullName(ctx)
	case patient.FieldNickname:
		return m.OldNickname(ctx)
	case patient.FieldTelegram:
		return m.OldTelegram(ctx)
	case patient.FieldAvatarKey:
		return m.OldAvatarKey(ctx)
	case patient.FieldChemistryLevel:
		return m.OldChemistryLevel(ctx)
	case patient.FieldMechanicsLevel:
		return m.OldMechanicsLevel(ctx)
	case patient.FieldSocialSkillsLevel:
		return m.OldSocialSkillsLevel(ctx)
	case patient.FieldPhysicalSkillsLevel:
		return m.OldPhysicalSkillsLevel(ctx)
	case patient.FieldBonusLevel:
		return m.OldBonusLevel(ctx)
	}
	return nil, fmt.Errorf("unknown Patient field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) SetField(name string, value ent.Value) error {
	switch name {
	case patient.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case patient.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case patient.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case patient.FieldMentalStateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMentalStateID(v)
		return nil
	case patient.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case patient.FieldNickname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNickname(v)
		return nil
	case patient.FieldTelegram:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelegram(v)
		return nil
	case patient.FieldAvatarKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarKey(v)
		return nil
	case patient.FieldChemistryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChemistryLevel(v)
		return nil
	case patient.FieldMechanicsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMechanicsLevel(v)
		return nil
	case patient.FieldSocialSkillsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSocialSkillsLevel(v)
		return nil
	case patient.FieldPhysicalSkillsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhysicalSkillsLevel(v)
		return nil
	case patient.FieldBonusLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBonusLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PatientMutation) AddedFields() []string {
	var fields []string
	if m.addchemistry_level != nil {
		fields = append(fields, patient.FieldChemistryLevel)
	}
	if m.addmechanics_level != nil {
		fields = append(fields, patient.FieldMechanicsLevel)
	}
	if m.addsocial_skills_level != nil {
		fields = append(fields, patient.FieldSocialSkillsLevel)
	}
	if m.addphysical_skills_level != nil {
		fields = append(fields, patient.FieldPhysicalSkillsLevel)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PatientMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case patient.FieldChemistryLevel:
		return m.AddedChemistryLevel()
	case patient.FieldMechanicsLevel:
		return m.AddedMechanicsLevel()
	case patient.FieldSocialSkillsLevel:
		return m.AddedSocialSkillsLevel()
	case patient.FieldPhysicalSkillsLevel:
		return m.AddedPhysicalSkillsLevel()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PatientMutation) AddField(name string, value ent.Value) error {
	switch name {
	case patient.FieldChemistryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChemistryLevel(v)
		return nil
	case patient.FieldMechanicsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMechanicsLevel(v)
		return nil
	case patient.FieldSocialSkillsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSocialSkillsLevel(v)
		return nil
	case patient.FieldPhysicalSkillsLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhysicalSkillsLevel(v)
		return nil
	}
	return fmt.Errorf("unknown Patient numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PatientMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(patient.FieldUserID) {
		fields = append(fields, patient.FieldUserID)
	}
	if m.FieldCleared(patient.FieldMentalStateID) {
		fields = append(fields, patient.FieldMentalStateID)
	}
	if m.FieldCleared(patient.FieldTelegram) {
		fields = append(fields, patient.FieldTelegram)
	}
	if m.FieldCleared(patient.FieldAvatarKey) {
		fields = append(fields, patient.FieldAvatarKey)
	}
	if m.FieldCleared(patient.FieldBonusLevel) {
		fields = append(fields, patient.FieldBonusLevel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PatientMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PatientMutation) ClearField(name string) error {
	switch name {
	case patient.FieldUserID:
		m.ClearUserID()
		return nil
	case patient.FieldMentalStateID:
		m.ClearMentalStateID()
		return nil
	case patient.FieldTelegram:
		m.ClearTelegram()
		return nil
	case patient.FieldAvatarKey:
		m.ClearAvatarKey()
		return nil
	case patient.FieldBonusLevel:
		m.ClearBonusLevel()
		return nil
	}
	return fmt.Errorf("unknown Patient nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PatientMutation) ResetField(name string) error {
	switch name {
	case patient.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case patient.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case patient.FieldUserID:
		m.ResetUserID()
		return nil
	case patient.FieldMentalStateID:
		m.ResetMentalStateID()
		return nil
	case patient.FieldFullName:
		m.ResetFullName()
		return nil
	case patient.FieldNickname:
		m.ResetNickname()
		return nil
	case patient.FieldTelegram:
		m.ResetTelegram()
		return nil
	case patient.FieldAvatarKey:
		m.ResetAvatarKey()
		return nil
	case patient.FieldChemistryLevel:
		m.ResetChemistryLevel()
		return nil
	case patient.FieldMechanicsLevel:
		m.ResetMechanicsLevel()
		return nil
	case patient.FieldSocialSkillsLevel:
		m.ResetSocialSkillsLevel()
		return nil
	case patient.FieldPhysicalSkillsLevel:
		m.ResetPhysicalSkillsLevel()
		return nil
	case patient.FieldBonusLevel:
		m.ResetBonusLevel()
		return nil
	}
	return fmt.Errorf("unknown Patient field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PatientMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.user != nil {
		edges = append(edges, patient.EdgeUser)
	}
	if m.mental_state != nil {
		edges = append(edges, patient.EdgeMentalState)
	}
	if m.awareness_map != nil {
		edges = append(edges, patient.EdgeAwarenessMap)
	}
	if m.nightmare_map != nil {
		edges = append(edges, patient.EdgeNightmareMap)
	}
	if m.chemical_recipes != nil {
		edges = append(edges, patient.EdgeChemicalRecipes)
	}
	if m.mechanical_compounds != nil {
		edges = append(edges, patient.EdgeMechanicalCompounds)
	}
	if m.authored_chemical_recipes != nil {
		edges = append(edges, patient.EdgeAuthoredChemicalRecipes)
	}
	if m.authored_mechanical_compounds != nil {
		edges = append(edges, patient.EdgeAuthoredMechanicalCompounds)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PatientMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeMentalState:
		if id := m.mental_state; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeAwarenessMap:
		if id := m.awareness_map; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeNightmareMap:
		if id := m.nightmare_map; id != nil {
			return []ent.Value{*id}
		}
	case patient.EdgeChemicalRecipes:
		ids := make([]ent.Value, 0, len(m.chemical_recipes))
		for id := range m.chemical_recipes {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMechanicalCompounds:
		ids := make([]ent.Value, 0, len(m.mechanical_compounds))
		for id := range m.mechanical_compounds {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeAuthoredChemicalRecipes:
		ids := make([]ent.Value, 0, len(m.authored_chemical_recipes))
		for id := range m.authored_chemical_recipes {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeAuthoredMechanicalCompounds:
		ids := make([]ent.Value, 0, len(m.authored_mechanical_compounds))
		for id := range m.authored_mechanical_compounds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PatientMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedchemical_recipes != nil {
		edges = append(edges, patient.EdgeChemicalRecipes)
	}
	if m.removedmechanical_compounds != nil {
		edges = append(edges, patient.EdgeMechanicalCompounds)
	}
	if m.removedauthored_chemical_recipes != nil {
		edges = append(edges, patient.EdgeAuthoredChemicalRecipes)
	}
	if m.removedauthored_mechanical_compounds != nil {
		edges = append(edges, patient.EdgeAuthoredMechanicalCompounds)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PatientMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case patient.EdgeChemicalRecipes:
		ids := make([]ent.Value, 0, len(m.removedchemical_recipes))
		for id := range m.removedchemical_recipes {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeMechanicalCompounds:
		ids := make([]ent.Value, 0, len(m.removedmechanical_compounds))
		for id := range m.removedmechanical_compounds {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeAuthoredChemicalRecipes:
		ids := make([]ent.Value, 0, len(m.removedauthored_chemical_recipes))
		for id := range m.removedauthored_chemical_recipes {
			ids = append(ids, id)
		}
		return ids
	case patient.EdgeAuthoredMechanicalCompounds:
		ids := make([]ent.Value, 0, len(m.removedauthored_mechanical_compounds))
		for id := range m.removedauthored_mechanical_compounds {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PatientMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.cleareduser {
		edges = append(edges, patient.EdgeUser)
	}
	if m.clearedmental_state {
		edges = append(edges, patient.EdgeMentalState)
	}
	if m.clearedawareness_map {
		edges = append(edges, patient.EdgeAwarenessMap)
	}
	if m.clearednightmare_map {
		edges = append(edges, patient.EdgeNightmareMap)
	}
	if m.clearedchemical_recipes {
		edges = append(edges, patient.EdgeChemicalRecipes)
	}
	if m.clearedmechanical_compounds {
		edges = append(edges, patient.EdgeMechanicalCompounds)
	}
	if m.clearedauthored_chemical_recipes {
		edges = append(edges, patient.EdgeAuthoredChemicalRecipes)
	}
	if m.clearedauthored_mechanical_compounds {
		edges = append(edges, patient.EdgeAuthoredMechanicalCompounds)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PatientMutation) EdgeCleared(name string) bool {
	switch name {
	case patient.EdgeUser:
		return m.cleareduser
	case patient.EdgeMentalState:
		return m.clearedmental_state
	case patient.EdgeAwarenessMap:
		return m.clearedawareness_map
	case patient.EdgeNightmareMap:
		return m.clearednightmare_map
	case patient.EdgeChemicalRecipes:
		return m.clearedchemical_recipes
	case patient.EdgeMechanicalCompounds:
		return m.clearedmechanical_compounds
	case patient.EdgeAuthoredChemicalRecipes:
		return m.clearedauthored_chemical_recipes
	case patient.EdgeAuthoredMechanicalCompounds:
		return m.clearedauthored_mechanical_compounds
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PatientMutation) ClearEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ClearUser()
		return nil
	case patient.EdgeMentalState:
		m.ClearMentalState()
		return nil
	case patient.EdgeAwarenessMap:
		m.ClearAwarenessMap()
		return nil
	case patient.EdgeNightmareMap:
		m.ClearNightmareMap()
		return nil
	}
	return fmt.Errorf("unknown Patient unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PatientMutation) ResetEdge(name string) error {
	switch name {
	case patient.EdgeUser:
		m.ResetUser()
		return nil
	case patient.EdgeMentalState:
		m.ResetMentalState()
		return nil
	case patient.EdgeAwarenessMap:
		m.ResetAwarenessMap()
		return nil
	case patient.EdgeNightmareMap:
		m.ResetNightmareMap()
		return nil
	case patient.EdgeChemicalRecipes:
		m.ResetChemicalRecipes()
		return nil
	case patient.EdgeMechanicalCompounds:
		m.ResetMechanicalCompounds()
		return nil
	case patient.EdgeAuthoredChemicalRecipes:
		m.ResetAuthoredChemicalRecipes()
		return nil
	case patient.EdgeAuthoredMechanicalCompounds:
		m.ResetAuthoredMechanicalCompounds()
		return nil
	}
	return fmt.Errorf("unknown Patient edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	username        *string
	password_hash   *string
	is_active       *bool
	last_login_at   *time.Time
	clearedFields   map[string]struct{}
	patient         *uuid.UUID
	clearedpatient  bool
	doctor          *uuid.UUID
	cleareddoctor   bool
	sessions        map[uuid.UUID]struct{}
	removedsessions map[uuid.UUID]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*User, error)
	predicates      []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetPatientID sets the "patient" edge to the Patient entity by id.
func (m *UserMutation) SetPatientID(id uuid.UUID) {
	m.patient = &id
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (m *UserMutation) ClearPatient() {
	m.clearedpatient = true
}

// PatientCleared reports if the "patient" edge to the Patient entity was cleared.
func (m *UserMutation) PatientCleared() bool {
	return m.clearedpatient
}

// PatientID returns the "patient" edge ID in the mutation.
func (m *UserMutation) PatientID() (id uuid.UUID, exists bool) {
	if m.patient != nil {
		return *m.patient, true
	}
	return
}

// PatientIDs returns the "patient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PatientID instead. It exists only for internal usage by the builders.
func (m *UserMutation) PatientIDs() (ids []uuid.UUID) {
	if id := m.patient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPatient resets all changes to the "patient" edge.
func (m *UserMutation) ResetPatient() {
	m.patient = nil
	m.clearedpatient = false
}

// SetDoctorID sets the "doctor" edge to the Doctor entity by id.
func (m *UserMutation) SetDoctorID(id uuid.UUID) {
	m.doctor = &id
}

// ClearDoctor clears the "doctor" edge to the Doctor entity.
func (m *UserMutation) ClearDoctor() {
	m.cleareddoctor = true
}

// DoctorCleared reports if the "doctor" edge to the Doctor entity was cleared.
func (m *UserMutation) DoctorCleared() bool {
	return m.cleareddoctor
}

// DoctorID returns the "doctor" edge ID in the mutation.
func (m *UserMutation) DoctorID() (id uuid.UUID, exists bool) {
	if m.doctor != nil {
		return *m.doctor, true
	}
	return
}

// DoctorIDs returns the "doctor" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DoctorID instead. It exists only for internal usage by the builders.
func (m *UserMutation) DoctorIDs() (ids []uuid.UUID) {
	if id := m.doctor; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDoctor resets all changes to the "doctor" edge.
func (m *UserMutation) ResetDoctor() {
	m.doctor = nil
	m.cleareddoctor = false
}

// AddSessionIDs adds the "sessions" edge to the UserSession entity by ids.
func (m *UserMutation) AddSessionIDs(ids ...uuid.UUID) {
	if m.sessions == nil {
		m.sessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the UserSession entity.
func (m *UserMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the UserSession entity was cleared.
func (m *UserMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the UserSession entity by IDs.
func (m *UserMutation) RemoveSessionIDs(ids ...uuid.UUID) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the UserSession entity.
func (m *UserMutation) RemovedSessionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *UserMutation) SessionsIDs() (ids []uuid.UUID) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *UserMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.patient != nil {
		edges = append(edges, user.EdgePatient)
	}
	if m.doctor != nil {
		edges = append(edges, user.EdgeDoctor)
	}
	if m.sessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePatient:
		if id := m.patient; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeDoctor:
		if id := m.doctor; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsessions != nil {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedpatient {
		edges = append(edges, user.EdgePatient)
	}
	if m.cleareddoctor {
		edges = append(edges, user.EdgeDoctor)
	}
	if m.clearedsessions {
		edges = append(edges, user.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePatient:
		return m.clearedpatient
	case user.EdgeDoctor:
		return m.cleareddoctor
	case user.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgePatient:
		m.ClearPatient()
		return nil
	case user.EdgeDoctor:
		m.ClearDoctor()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePatient:
		m.ResetPatient()
		return nil
	case user.EdgeDoctor:
		m.ResetDoctor()
		return nil
	case user.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}

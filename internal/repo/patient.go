// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id, at most one patient profile per user
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FK → mental_states.id
	MentalStateID uuid.UUID `json:"mental_state_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Kept in sync with the linked user's username
	Nickname string `json:"nickname,omitempty"`
	// Telegram holds the value of the "telegram" field.
	Telegram string `json:"telegram,omitempty"`
	// Object-store key of the avatar image
	AvatarKey string `json:"avatar_key,omitempty"`
	// ChemistryLevel holds the value of the "chemistry_level" field.
	ChemistryLevel int `json:"chemistry_level,omitempty"`
	// MechanicsLevel holds the value of the "mechanics_level" field.
	MechanicsLevel int `json:"mechanics_level,omitempty"`
	// SocialSkillsLevel holds the value of the "social_skills_level" field.
	SocialSkillsLevel int `json:"social_skills_level,omitempty"`
	// PhysicalSkillsLevel holds the value of the "physical_skills_level" field.
	PhysicalSkillsLevel int `json:"physical_skills_level,omitempty"`
	// Free-form description of off-scale abilities
	BonusLevel string `json:"bonus_level,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// MentalState holds the value of the mental_state edge.
	MentalState *MentalState `json:"mental_state,omitempty"`
	// AwarenessMap holds the value of the awareness_map edge.
	AwarenessMap *AwarenessMap `json:"awareness_map,omitempty"`
	// NightmareMap holds the value of the nightmare_map edge.
	NightmareMap *NightmareMap `json:"nightmare_map,omitempty"`
	// ChemicalRecipes holds the value of the chemical_recipes edge.
	ChemicalRecipes []*ChemicalRecipe `json:"chemical_recipes,omitempty"`
	// MechanicalCompounds holds the value of the mechanical_compounds edge.
	MechanicalCompounds []*MechanicalCompound `json:"mechanical_compounds,omitempty"`
	// AuthoredChemicalRecipes holds the value of the authored_chemical_recipes edge.
	AuthoredChemicalRecipes []*ChemicalRecipe `json:"authored_chemical_recipes,omitempty"`
	// AuthoredMechanicalCompounds holds the value of the authored_mechanical_compounds edge.
	AuthoredMechanicalCompounds []*MechanicalCompound `json:"authored_mechanical_compounds,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// MentalStateOrErr returns the MentalState value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) MentalStateOrErr() (*MentalState, error) {
	if e.MentalState != nil {
		return e.MentalState, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: mentalstate.Label}
	}
	return nil, &NotLoadedError{edge: "mental_state"}
}

// AwarenessMapOrErr returns the AwarenessMap value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) AwarenessMapOrErr() (*AwarenessMap, error) {
	if e.AwarenessMap != nil {
		return e.AwarenessMap, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: awarenessmap.Label}
	}
	return nil, &NotLoadedError{edge: "awareness_map"}
}

// NightmareMapOrErr returns the NightmareMap value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) NightmareMapOrErr() (*NightmareMap, error) {
	if e.NightmareMap != nil {
		return e.NightmareMap, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: nightmaremap.Label}
	}
	return nil, &NotLoadedError{edge: "nightmare_map"}
}

// ChemicalRecipesOrErr returns the ChemicalRecipes value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ChemicalRecipesOrErr() ([]*ChemicalRecipe, error) {
	if e.loadedTypes[4] {
		return e.ChemicalRecipes, nil
	}
	return nil, &NotLoadedError{edge: "chemical_recipes"}
}

// MechanicalCompoundsOrErr returns the MechanicalCompounds value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) MechanicalCompoundsOrErr() ([]*MechanicalCompound, error) {
	if e.loadedTypes[5] {
		return e.MechanicalCompounds, nil
	}
	return nil, &NotLoadedError{edge: "mechanical_compounds"}
}

// AuthoredChemicalRecipesOrErr returns the AuthoredChemicalRecipes value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AuthoredChemicalRecipesOrErr() ([]*ChemicalRecipe, error) {
	if e.loadedTypes[6] {
		return e.AuthoredChemicalRecipes, nil
	}
	return nil, &NotLoadedError{edge: "authored_chemical_recipes"}
}

// AuthoredMechanicalCompoundsOrErr returns the AuthoredMechanicalCompounds value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AuthoredMechanicalCompoundsOrErr() ([]*MechanicalCompound, error) {
	if e.loadedTypes[7] {
		return e.AuthoredMechanicalCompounds, nil
	}
	return nil, &NotLoadedError{edge: "authored_mechanical_compounds"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldChemistryLevel, patient.FieldMechanicsLevel, patient.FieldSocialSkillsLevel, patient.FieldPhysicalSkillsLevel:
			values[i] = new(sql.NullInt64)
		case patient.FieldFullName, patient.FieldNickname, patient.FieldTelegram, patient.FieldAvatarKey, patient.FieldBonusLevel:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID, patient.FieldMentalStateID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldMentalStateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field mental_state_id", values[i])
			} else if value != nil {
				_m.MentalStateID = *value
			}
		case patient.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case patient.FieldNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nickname", values[i])
			} else if value.Valid {
				_m.Nickname = value.String
			}
		case patient.FieldTelegram:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telegram", values[i])
			} else if value.Valid {
				_m.Telegram = value.String
			}
		case patient.FieldAvatarKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_key", values[i])
			} else if value.Valid {
				_m.AvatarKey = value.String
			}
		case patient.FieldChemistryLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chemistry_level", values[i])
			} else if value.Valid {
				_m.ChemistryLevel = int(value.Int64)
			}
		case patient.FieldMechanicsLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mechanics_level", values[i])
			} else if value.Valid {
				_m.MechanicsLevel = int(value.Int64)
			}
		case patient.FieldSocialSkillsLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field social_skills_level", values[i])
			} else if value.Valid {
				_m.SocialSkillsLevel = int(value.Int64)
			}
		case patient.FieldPhysicalSkillsLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field physical_skills_level", values[i])
			} else if value.Valid {
				_m.PhysicalSkillsLevel = int(value.Int64)
			}
		case patient.FieldBonusLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_level", values[i])
			} else if value.Valid {
				_m.BonusLevel = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryMentalState queries the "mental_state" edge of the Patient entity.
func (_m *Patient) QueryMentalState() *MentalStateQuery {
	return NewPatientClient(_m.config).QueryMentalState(_m)
}

// QueryAwarenessMap queries the "awareness_map" edge of the Patient entity.
func (_m *Patient) QueryAwarenessMap() *AwarenessMapQuery {
	return NewPatientClient(_m.config).QueryAwarenessMap(_m)
}

// QueryNightmareMap queries the "nightmare_map" edge of the Patient entity.
func (_m *Patient) QueryNightmareMap() *NightmareMapQuery {
	return NewPatientClient(_m.config).QueryNightmareMap(_m)
}

// QueryChemicalRecipes queries the "chemical_recipes" edge of the Patient entity.
func (_m *Patient) QueryChemicalRecipes() *ChemicalRecipeQuery {
	return NewPatientClient(_m.config).QueryChemicalRecipes(_m)
}

// QueryMechanicalCompounds queries the "mechanical_compounds" edge of the Patient entity.
func (_m *Patient) QueryMechanicalCompounds() *MechanicalCompoundQuery {
	return NewPatientClient(_m.config).QueryMechanicalCompounds(_m)
}

// QueryAuthoredChemicalRecipes queries the "authored_chemical_recipes" edge of the Patient entity.
func (_m *Patient) QueryAuthoredChemicalRecipes() *ChemicalRecipeQuery {
	return NewPatientClient(_m.config).QueryAuthoredChemicalRecipes(_m)
}

// QueryAuthoredMechanicalCompounds queries the "authored_mechanical_compounds" edge of the Patient entity.
func (_m *Patient) QueryAuthoredMechanicalCompounds() *MechanicalCompoundQuery {
	return NewPatientClient(_m.config).QueryAuthoredMechanicalCompounds(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("mental_state_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.MentalStateID))
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("nickname=")
	builder.WriteString(_m.Nickname)
	builder.WriteString(", ")
	builder.WriteString("telegram=")
	builder.WriteString(_m.Telegram)
	builder.WriteString(", ")
	builder.WriteString("avatar_key=")
	builder.WriteString(_m.AvatarKey)
	builder.WriteString(", ")
	builder.WriteString("chemistry_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChemistryLevel))
	builder.WriteString(", ")
	builder.WriteString("mechanics_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MechanicsLevel))
	builder.WriteString(", ")
	builder.WriteString("social_skills_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.SocialSkillsLevel))
	builder.WriteString(", ")
	builder.WriteString("physical_skills_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhysicalSkillsLevel))
	builder.WriteString(", ")
	builder.WriteString("bonus_level=")
	builder.WriteString(_m.BonusLevel)
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient

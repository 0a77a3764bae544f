// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
)

// Doctor is the model entity for the Doctor schema.
type Doctor struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id, at most one doctor profile per user
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Kept in sync with the linked user's username
	Nickname string `json:"nickname,omitempty"`
	// Telegram holds the value of the "telegram" field.
	Telegram string `json:"telegram,omitempty"`
	// AvatarKey holds the value of the "avatar_key" field.
	AvatarKey string `json:"avatar_key,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DoctorQuery when eager-loading is set.
	Edges        DoctorEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DoctorEdges holds the relations/edges for other nodes in the graph.
type DoctorEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// AuthoredChemicalRecipes holds the value of the authored_chemical_recipes edge.
	AuthoredChemicalRecipes []*ChemicalRecipe `json:"authored_chemical_recipes,omitempty"`
	// AuthoredMechanicalCompounds holds the value of the authored_mechanical_compounds edge.
	AuthoredMechanicalCompounds []*MechanicalCompound `json:"authored_mechanical_compounds,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DoctorEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AuthoredChemicalRecipesOrErr returns the AuthoredChemicalRecipes value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) AuthoredChemicalRecipesOrErr() ([]*ChemicalRecipe, error) {
	if e.loadedTypes[1] {
		return e.AuthoredChemicalRecipes, nil
	}
	return nil, &NotLoadedError{edge: "authored_chemical_recipes"}
}

// AuthoredMechanicalCompoundsOrErr returns the AuthoredMechanicalCompounds value or an error if the edge
// was not loaded in eager-loading.
func (e DoctorEdges) AuthoredMechanicalCompoundsOrErr() ([]*MechanicalCompound, error) {
	if e.loadedTypes[2] {
		return e.AuthoredMechanicalCompounds, nil
	}
	return nil, &NotLoadedError{edge: "authored_mechanical_compounds"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Doctor) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case doctor.FieldFullName, doctor.FieldNickname, doctor.FieldTelegram, doctor.FieldAvatarKey:
			values[i] = new(sql.NullString)
		case doctor.FieldCreatedAt, doctor.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case doctor.FieldID, doctor.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Doctor fields.
func (_m *Doctor) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case doctor.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case doctor.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case doctor.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case doctor.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case doctor.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case doctor.FieldNickname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nickname", values[i])
			} else if value.Valid {
				_m.Nickname = value.String
			}
		case doctor.FieldTelegram:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telegram", values[i])
			} else if value.Valid {
				_m.Telegram = value.String
			}
		case doctor.FieldAvatarKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field avatar_key", values[i])
			} else if value.Valid {
				_m.AvatarKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Doctor.
// This includes values selected through modifiers, order, etc.
func (_m *Doctor) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Doctor entity.
func (_m *Doctor) QueryUser() *UserQuery {
	return NewDoctorClient(_m.config).QueryUser(_m)
}

// QueryAuthoredChemicalRecipes queries the "authored_chemical_recipes" edge of the Doctor entity.
func (_m *Doctor) QueryAuthoredChemicalRecipes() *ChemicalRecipeQuery {
	return NewDoctorClient(_m.config).QueryAuthoredChemicalRecipes(_m)
}

// QueryAuthoredMechanicalCompounds queries the "authored_mechanical_compounds" edge of the Doctor entity.
func (_m *Doctor) QueryAuthoredMechanicalCompounds() *MechanicalCompoundQuery {
	return NewDoctorClient(_m.config).QueryAuthoredMechanicalCompounds(_m)
}

// Update returns a builder for updating this Doctor.
// Note that you need to call Doctor.Unwrap() before calling this method if this Doctor
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Doctor) Update() *DoctorUpdateOne {
	return NewDoctorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Doctor entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Doctor) Unwrap() *Doctor {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Doctor is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Doctor) String() string {
	var builder strings.Builder
	builder.WriteString("Doctor(")
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
	builder.WriteByte(')')
	return builder.String()
}

// Doctors is a parsable slice of Doctor.
type Doctors []*Doctor

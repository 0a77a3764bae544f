// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// ChemicalRecipe is the model entity for the ChemicalRecipe schema.
type ChemicalRecipe struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id, the patient whose ledger this is
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// FK → patients.id, set iff a patient authored the entry
	AuthorPatientID *uuid.UUID `json:"author_patient_id,omitempty"`
	// FK → doctors.id, set iff a doctor authored the entry
	AuthorDoctorID *uuid.UUID `json:"author_doctor_id,omitempty"`
	// Property1 holds the value of the "property_1" field.
	Property1 string `json:"property_1,omitempty"`
	// Property2 holds the value of the "property_2" field.
	Property2 string `json:"property_2,omitempty"`
	// Property3 holds the value of the "property_3" field.
	Property3 string `json:"property_3,omitempty"`
	// How long the effect lasts, stored as nanoseconds
	Duration time.Duration `json:"duration,omitempty"`
	// ExtraProperty holds the value of the "extra_property" field.
	ExtraProperty string `json:"extra_property,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChemicalRecipeQuery when eager-loading is set.
	Edges        ChemicalRecipeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChemicalRecipeEdges holds the relations/edges for other nodes in the graph.
type ChemicalRecipeEdges struct {
	// Owner holds the value of the owner edge.
	Owner *Patient `json:"owner,omitempty"`
	// AuthorPatient holds the value of the author_patient edge.
	AuthorPatient *Patient `json:"author_patient,omitempty"`
	// AuthorDoctor holds the value of the author_doctor edge.
	AuthorDoctor *Doctor `json:"author_doctor,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChemicalRecipeEdges) OwnerOrErr() (*Patient, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// AuthorPatientOrErr returns the AuthorPatient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChemicalRecipeEdges) AuthorPatientOrErr() (*Patient, error) {
	if e.AuthorPatient != nil {
		return e.AuthorPatient, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "author_patient"}
}

// AuthorDoctorOrErr returns the AuthorDoctor value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChemicalRecipeEdges) AuthorDoctorOrErr() (*Doctor, error) {
	if e.AuthorDoctor != nil {
		return e.AuthorDoctor, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: doctor.Label}
	}
	return nil, &NotLoadedError{edge: "author_doctor"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChemicalRecipe) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chemicalrecipe.FieldAuthorPatientID, chemicalrecipe.FieldAuthorDoctorID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case chemicalrecipe.FieldDuration:
			values[i] = new(sql.NullInt64)
		case chemicalrecipe.FieldProperty1, chemicalrecipe.FieldProperty2, chemicalrecipe.FieldProperty3, chemicalrecipe.FieldExtraProperty:
			values[i] = new(sql.NullString)
		case chemicalrecipe.FieldCreatedAt, chemicalrecipe.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case chemicalrecipe.FieldID, chemicalrecipe.FieldOwnerID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChemicalRecipe fields.
func (_m *ChemicalRecipe) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chemicalrecipe.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case chemicalrecipe.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chemicalrecipe.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case chemicalrecipe.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case chemicalrecipe.FieldAuthorPatientID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field author_patient_id", values[i])
			} else if value.Valid {
				_m.AuthorPatientID = new(uuid.UUID)
				*_m.AuthorPatientID = *value.S.(*uuid.UUID)
			}
		case chemicalrecipe.FieldAuthorDoctorID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field author_doctor_id", values[i])
			} else if value.Valid {
				_m.AuthorDoctorID = new(uuid.UUID)
				*_m.AuthorDoctorID = *value.S.(*uuid.UUID)
			}
		case chemicalrecipe.FieldProperty1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_1", values[i])
			} else if value.Valid {
				_m.Property1 = value.String
			}
		case chemicalrecipe.FieldProperty2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_2", values[i])
			} else if value.Valid {
				_m.Property2 = value.String
			}
		case chemicalrecipe.FieldProperty3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_3", values[i])
			} else if value.Valid {
				_m.Property3 = value.String
			}
		case chemicalrecipe.FieldDuration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = time.Duration(value.Int64)
			}
		case chemicalrecipe.FieldExtraProperty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extra_property", values[i])
			} else if value.Valid {
				_m.ExtraProperty = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChemicalRecipe.
// This includes values selected through modifiers, order, etc.
func (_m *ChemicalRecipe) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the ChemicalRecipe entity.
func (_m *ChemicalRecipe) QueryOwner() *PatientQuery {
	return NewChemicalRecipeClient(_m.config).QueryOwner(_m)
}

// QueryAuthorPatient queries the "author_patient" edge of the ChemicalRecipe entity.
func (_m *ChemicalRecipe) QueryAuthorPatient() *PatientQuery {
	return NewChemicalRecipeClient(_m.config).QueryAuthorPatient(_m)
}

// QueryAuthorDoctor queries the "author_doctor" edge of the ChemicalRecipe entity.
func (_m *ChemicalRecipe) QueryAuthorDoctor() *DoctorQuery {
	return NewChemicalRecipeClient(_m.config).QueryAuthorDoctor(_m)
}

// Update returns a builder for updating this ChemicalRecipe.
// Note that you need to call ChemicalRecipe.Unwrap() before calling this method if this ChemicalRecipe
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChemicalRecipe) Update() *ChemicalRecipeUpdateOne {
	return NewChemicalRecipeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChemicalRecipe entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChemicalRecipe) Unwrap() *ChemicalRecipe {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: ChemicalRecipe is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChemicalRecipe) String() string {
	var builder strings.Builder
	builder.WriteString("ChemicalRecipe(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	if v := _m.AuthorPatientID; v != nil {
		builder.WriteString("author_patient_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AuthorDoctorID; v != nil {
		builder.WriteString("author_doctor_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("property_1=")
	builder.WriteString(_m.Property1)
	builder.WriteString(", ")
	builder.WriteString("property_2=")
	builder.WriteString(_m.Property2)
	builder.WriteString(", ")
	builder.WriteString("property_3=")
	builder.WriteString(_m.Property3)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Duration))
	builder.WriteString(", ")
	builder.WriteString("extra_property=")
	builder.WriteString(_m.ExtraProperty)
	builder.WriteByte(')')
	return builder.String()
}

// ChemicalRecipes is a parsable slice of ChemicalRecipe.
type ChemicalRecipes []*ChemicalRecipe

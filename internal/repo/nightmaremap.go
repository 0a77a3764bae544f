// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
)

// NightmareMap is the model entity for the NightmareMap schema.
type NightmareMap struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → patients.id, exactly one record per patient
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Property1Condition holds the value of the "property_1_condition" field.
	Property1Condition string `json:"property_1_condition,omitempty"`
	// Property1Description holds the value of the "property_1_description" field.
	Property1Description string `json:"property_1_description,omitempty"`
	// Property2Condition holds the value of the "property_2_condition" field.
	Property2Condition string `json:"property_2_condition,omitempty"`
	// Property2Description holds the value of the "property_2_description" field.
	Property2Description string `json:"property_2_description,omitempty"`
	// Property3Condition holds the value of the "property_3_condition" field.
	Property3Condition string `json:"property_3_condition,omitempty"`
	// Property3Description holds the value of the "property_3_description" field.
	Property3Description string `json:"property_3_description,omitempty"`
	// Property4Condition holds the value of the "property_4_condition" field.
	Property4Condition string `json:"property_4_condition,omitempty"`
	// Property4Description holds the value of the "property_4_description" field.
	Property4Description string `json:"property_4_description,omitempty"`
	// ExtraProperty1Description holds the value of the "extra_property_1_description" field.
	ExtraProperty1Description string `json:"extra_property_1_description,omitempty"`
	// ExtraProperty2Description holds the value of the "extra_property_2_description" field.
	ExtraProperty2Description string `json:"extra_property_2_description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the NightmareMapQuery when eager-loading is set.
	Edges        NightmareMapEdges `json:"edges"`
	selectValues sql.SelectValues
}

// NightmareMapEdges holds the relations/edges for other nodes in the graph.
type NightmareMapEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e NightmareMapEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*NightmareMap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case nightmaremap.FieldProperty1Condition, nightmaremap.FieldProperty1Description, nightmaremap.FieldProperty2Condition, nightmaremap.FieldProperty2Description, nightmaremap.FieldProperty3Condition, nightmaremap.FieldProperty3Description, nightmaremap.FieldProperty4Condition, nightmaremap.FieldProperty4Description, nightmaremap.FieldExtraProperty1Description, nightmaremap.FieldExtraProperty2Description:
			values[i] = new(sql.NullString)
		case nightmaremap.FieldCreatedAt, nightmaremap.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case nightmaremap.FieldID, nightmaremap.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the NightmareMap fields.
func (_m *NightmareMap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case nightmaremap.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case nightmaremap.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case nightmaremap.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case nightmaremap.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case nightmaremap.FieldProperty1Condition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_1_condition", values[i])
			} else if value.Valid {
				_m.Property1Condition = value.String
			}
		case nightmaremap.FieldProperty1Description:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_1_description", values[i])
			} else if value.Valid {
				_m.Property1Description = value.String
			}
		case nightmaremap.FieldProperty2Condition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_2_condition", values[i])
			} else if value.Valid {
				_m.Property2Condition = value.String
			}
		case nightmaremap.FieldProperty2Description:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_2_description", values[i])
			} else if value.Valid {
				_m.Property2Description = value.String
			}
		case nightmaremap.FieldProperty3Condition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_3_condition", values[i])
			} else if value.Valid {
				_m.Property3Condition = value.String
			}
		case nightmaremap.FieldProperty3Description:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_3_description", values[i])
			} else if value.Valid {
				_m.Property3Description = value.String
			}
		case nightmaremap.FieldProperty4Condition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_4_condition", values[i])
			} else if value.Valid {
				_m.Property4Condition = value.String
			}
		case nightmaremap.FieldProperty4Description:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field property_4_description", values[i])
			} else if value.Valid {
				_m.Property4Description = value.String
			}
		case nightmaremap.FieldExtraProperty1Description:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extra_property_1_description", values[i])
			} else if value.Valid {
				_m.ExtraProperty1Description = value.String
			}
		case nightmaremap.FieldExtraProperty2Description:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extra_property_2_description", values[i])
			} else if value.Valid {
				_m.ExtraProperty2Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the NightmareMap.
// This includes values selected through modifiers, order, etc.
func (_m *NightmareMap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the NightmareMap entity.
func (_m *NightmareMap) QueryPatient() *PatientQuery {
	return NewNightmareMapClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this NightmareMap.
// Note that you need to call NightmareMap.Unwrap() before calling this method if this NightmareMap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *NightmareMap) Update() *NightmareMapUpdateOne {
	return NewNightmareMapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the NightmareMap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *NightmareMap) Unwrap() *NightmareMap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: NightmareMap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *NightmareMap) String() string {
	var builder strings.Builder
	builder.WriteString("NightmareMap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("property_1_condition=")
	builder.WriteString(_m.Property1Condition)
	builder.WriteString(", ")
	builder.WriteString("property_1_description=")
	builder.WriteString(_m.Property1Description)
	builder.WriteString(", ")
	builder.WriteString("property_2_condition=")
	builder.WriteString(_m.Property2Condition)
	builder.WriteString(", ")
	builder.WriteString("property_2_description=")
	builder.WriteString(_m.Property2Description)
	builder.WriteString(", ")
	builder.WriteString("property_3_condition=")
	builder.WriteString(_m.Property3Condition)
	builder.WriteString(", ")
	builder.WriteString("property_3_description=")
	builder.WriteString(_m.Property3Description)
	builder.WriteString(", ")
	builder.WriteString("property_4_condition=")
	builder.WriteString(_m.Property4Condition)
	builder.WriteString(", ")
	builder.WriteString("property_4_description=")
	builder.WriteString(_m.Property4Description)
	builder.WriteString(", ")
	builder.WriteString("extra_property_1_description=")
	builder.WriteString(_m.ExtraProperty1Description)
	builder.WriteString(", ")
	builder.WriteString("extra_property_2_description=")
	builder.WriteString(_m.ExtraProperty2Description)
	builder.WriteByte(')')
	return builder.String()
}

// NightmareMaps is a parsable slice of NightmareMap.
type NightmareMaps []*NightmareMap

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// AwarenessMap is the per-patient awareness worksheet: four numbered
// properties, each with a condition and a description, plus two free-form
// extras. One row per patient. NightmareMap shares the same shape; the two
// are distinct tables on purpose so they can drift independently.
type AwarenessMap struct {
	ent.Schema
}

func (AwarenessMap) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (AwarenessMap) Fields() []ent.Field {
	return mapRecordFields()
}

func (AwarenessMap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("awareness_map").
			Unique().
			Required().
			Field("patient_id"),
	}
}

// mapRecordFields is the shared field set of the two map worksheets.
func mapRecordFields() []ent.Field {
	fields := []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Unique().
			Comment("FK → patients.id, exactly one record per patient"),
	}

	for _, name := range []string{
		"property_1_condition", "property_1_description",
		"property_2_condition", "property_2_description",
		"property_3_condition", "property_3_description",
		"property_4_condition", "property_4_description",
		"extra_property_1_description", "extra_property_2_description",
	} {
		fields = append(fields, field.Text(name).Optional().Default(""))
	}

	return fields
}

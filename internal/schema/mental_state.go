package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// MentalState is one patient's current position on the scale. The
// description normally mirrors the preset for the level but can be
// overridden by a doctor.
type MentalState struct {
	ent.Schema
}

func (MentalState) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MentalState) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level").
			Default(0).
			Range(-3, 3),

		field.Text("description").
			Optional().
			Default(""),
	}
}

func (MentalState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patient", Patient.Type).
			Unique(),
	}
}

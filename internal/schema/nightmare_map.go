package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
)

// NightmareMap is the per-patient nightmare worksheet. Same shape as
// AwarenessMap; see mapRecordFields.
type NightmareMap struct {
	ent.Schema
}

func (NightmareMap) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (NightmareMap) Fields() []ent.Field {
	return mapRecordFields()
}

func (NightmareMap) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("nightmare_map").
			Unique().
			Required().
			Field("patient_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// MentalStatePreset is the canonical description for one point of the
// mental-state scale. Seeded by `clinica system seed`; one row per level.
type MentalStatePreset struct {
	ent.Schema
}

func (MentalStatePreset) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MentalStatePreset) Fields() []ent.Field {
	return []ent.Field{
		field.Int("level").
			Unique().
			Range(-3, 3),

		field.Text("description").
			NotEmpty(),
	}
}

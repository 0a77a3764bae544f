package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is the in-game patient record. The user link is optional so a
// doctor can file records for characters that never log in themselves.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Unique().
			Comment("FK → users.id, at most one patient profile per user"),

		field.UUID("mental_state_id", uuid.UUID{}).
			Optional().
			Unique().
			Comment("FK → mental_states.id"),

		field.String("full_name").
			NotEmpty().
			MaxLen(255),

		field.String("nickname").
			Unique().
			NotEmpty().
			MaxLen(150).
			Comment("Kept in sync with the linked user's username"),

		field.String("telegram").
			Optional().
			MaxLen(255),

		field.String("avatar_key").
			Optional().
			MaxLen(512).
			Comment("Object-store key of the avatar image"),

		// Skill levels, 1 is novice and 3 is master.
		field.Int("chemistry_level").
			Default(1).
			Range(1, 3),

		field.Int("mechanics_level").
			Default(1).
			Range(1, 3),

		field.Int("social_skills_level").
			Default(1).
			Range(1, 3),

		field.Int("physical_skills_level").
			Default(1).
			Range(1, 3),

		field.Text("bonus_level").
			Optional().
			Default("").
			Comment("Free-form description of off-scale abilities"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("patient").
			Unique().
			Field("user_id"),
		edge.From("mental_state", MentalState.Type).
			Ref("patient").
			Unique().
			Field("mental_state_id"),
		edge.To("awareness_map", AwarenessMap.Type).
			Unique(),
		edge.To("nightmare_map", NightmareMap.Type).
			Unique(),
		edge.To("chemical_recipes", ChemicalRecipe.Type),
		edge.To("mechanical_compounds", MechanicalCompound.Type),
		edge.To("authored_chemical_recipes", ChemicalRecipe.Type),
		edge.To("authored_mechanical_compounds", MechanicalCompound.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("full_name"),
	}
}

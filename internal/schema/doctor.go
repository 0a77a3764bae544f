package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

// Doctor is the staff profile. Write access over patient records comes from
// the doctor role in the authorization layer, not from the row itself.
type Doctor struct {
	ent.Schema
}

func (Doctor) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Doctor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Optional().
			Unique().
			Comment("FK → users.id, at most one doctor profile per user"),

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
			MaxLen(512),
	}
}

func (Doctor) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("doctor").
			Unique().
			Field("user_id"),
		edge.To("authored_chemical_recipes", ChemicalRecipe.Type),
		edge.To("authored_mechanical_compounds", MechanicalCompound.Type),
	}
}

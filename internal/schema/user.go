package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User is the auth principal. The username is the patient/doctor nickname;
// the two share one namespace so a login name always resolves to a single
// profile.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			NotEmpty().
			MaxLen(150),

		field.String("password_hash").
			Sensitive(),

		field.Bool("is_active").
			Default(true),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// A user carries at most one profile of each kind. Registration
		// creates exactly one.
		edge.To("patient", Patient.Type).
			Unique(),
		edge.To("doctor", Doctor.Type).
			Unique(),
		edge.To("sessions", UserSession.Type),
	}
}

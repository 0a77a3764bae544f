package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ChemicalRecipe is one entry in a patient's chemistry ledger. The owner is
// always a patient; the author is either that patient (or another one) or a
// doctor, never both and never neither. The service validates this before
// writing, the CHECK constraint is the storage-level backstop.
type ChemicalRecipe struct {
	ent.Schema
}

func (ChemicalRecipe) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ChemicalRecipe) Fields() []ent.Field {
	return compoundFields()
}

func (ChemicalRecipe) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Patient.Type).
			Ref("chemical_recipes").
			Unique().
			Required().
			Field("owner_id"),
		edge.From("author_patient", Patient.Type).
			Ref("authored_chemical_recipes").
			Unique().
			Field("author_patient_id"),
		edge.From("author_doctor", Doctor.Type).
			Ref("authored_chemical_recipes").
			Unique().
			Field("author_doctor_id"),
	}
}

func (ChemicalRecipe) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
	}
}

func (ChemicalRecipe) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Checks(map[string]string{
			"chemical_recipe_one_author": "((author_patient_id IS NULL) <> (author_doctor_id IS NULL))",
		}),
	}
}

// compoundFields is the shared field set of the two authored ledgers.
func compoundFields() []ent.Field {
	return []ent.Field{
		field.UUID("owner_id", uuid.UUID{}).
			Comment("FK → patients.id, the patient whose ledger this is"),

		field.UUID("author_patient_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → patients.id, set iff a patient authored the entry"),

		field.UUID("author_doctor_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → doctors.id, set iff a doctor authored the entry"),

		field.String("property_1").
			NotEmpty().
			MaxLen(255),

		field.String("property_2").
			NotEmpty().
			MaxLen(255),

		field.String("property_3").
			NotEmpty().
			MaxLen(255),

		field.Int64("duration").
			GoType(time.Duration(0)).
			NonNegative().
			Comment("How long the effect lasts, stored as nanoseconds"),

		field.String("extra_property").
			Optional().
			Default("").
			MaxLen(255),
	}
}

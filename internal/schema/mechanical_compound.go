package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/index"
)

// MechanicalCompound is one entry in a patient's mechanics ledger. Same
// shape and author rules as ChemicalRecipe; see compoundFields.
type MechanicalCompound struct {
	ent.Schema
}

func (MechanicalCompound) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (MechanicalCompound) Fields() []ent.Field {
	return compoundFields()
}

func (MechanicalCompound) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Patient.Type).
			Ref("mechanical_compounds").
			Unique().
			Required().
			Field("owner_id"),
		edge.From("author_patient", Patient.Type).
			Ref("authored_mechanical_compounds").
			Unique().
			Field("author_patient_id"),
		edge.From("author_doctor", Doctor.Type).
			Ref("authored_mechanical_compounds").
			Unique().
			Field("author_doctor_id"),
	}
}

func (MechanicalCompound) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "created_at"),
	}
}

func (MechanicalCompound) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Checks(map[string]string{
			"mechanical_compound_one_author": "((author_patient_id IS NULL) <> (author_doctor_id IS NULL))",
		}),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AwarenessMapsColumns holds the columns for the "awareness_maps" table.
	AwarenessMapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "property_1_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_1_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_2_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_2_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_3_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_3_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_4_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_4_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "extra_property_1_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "extra_property_2_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
	}
	// AwarenessMapsTable holds the schema information for the "awareness_maps" table.
	AwarenessMapsTable = &schema.Table{
		Name:       "awareness_maps",
		Columns:    AwarenessMapsColumns,
		PrimaryKey: []*schema.Column{AwarenessMapsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "awareness_maps_patients_awareness_map",
				Columns:    []*schema.Column{AwarenessMapsColumns[13]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ChemicalRecipesColumns holds the columns for the "chemical_recipes" table.
	ChemicalRecipesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "property_1", Type: field.TypeString, Size: 255},
		{Name: "property_2", Type: field.TypeString, Size: 255},
		{Name: "property_3", Type: field.TypeString, Size: 255},
		{Name: "duration", Type: field.TypeInt64},
		{Name: "extra_property", Type: field.TypeString, Nullable: true, Size: 255, Default: ""},
		{Name: "author_doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "author_patient_id", Type: field.TypeUUID, Nullable: true},
	}
	// ChemicalRecipesTable holds the schema information for the "chemical_recipes" table.
	ChemicalRecipesTable = &schema.Table{
		Name:       "chemical_recipes",
		Columns:    ChemicalRecipesColumns,
		PrimaryKey: []*schema.Column{ChemicalRecipesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chemical_recipes_doctors_authored_chemical_recipes",
				Columns:    []*schema.Column{ChemicalRecipesColumns[8]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "chemical_recipes_patients_chemical_recipes",
				Columns:    []*schema.Column{ChemicalRecipesColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "chemical_recipes_patients_authored_chemical_recipes",
				Columns:    []*schema.Column{ChemicalRecipesColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chemicalrecipe_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChemicalRecipesColumns[9], ChemicalRecipesColumns[1]},
			},
		},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "telegram", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "avatar_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "user_id", Type: field.TypeUUID, Unique: true, Nullable: true},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctors_users_doctor",
				Columns:    []*schema.Column{DoctorsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// MechanicalCompoundsColumns holds the columns for the "mechanical_compounds" table.
	MechanicalCompoundsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "property_1", Type: field.TypeString, Size: 255},
		{Name: "property_2", Type: field.TypeString, Size: 255},
		{Name: "property_3", Type: field.TypeString, Size: 255},
		{Name: "duration", Type: field.TypeInt64},
		{Name: "extra_property", Type: field.TypeString, Nullable: true, Size: 255, Default: ""},
		{Name: "author_doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "author_patient_id", Type: field.TypeUUID, Nullable: true},
	}
	// MechanicalCompoundsTable holds the schema information for the "mechanical_compounds" table.
	MechanicalCompoundsTable = &schema.Table{
		Name:       "mechanical_compounds",
		Columns:    MechanicalCompoundsColumns,
		PrimaryKey: []*schema.Column{MechanicalCompoundsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "mechanical_compounds_doctors_authored_mechanical_compounds",
				Columns:    []*schema.Column{MechanicalCompoundsColumns[8]},
				RefColumns: []*schema.Column{DoctorsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "mechanical_compounds_patients_mechanical_compounds",
				Columns:    []*schema.Column{MechanicalCompoundsColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "mechanical_compounds_patients_authored_mechanical_compounds",
				Columns:    []*schema.Column{MechanicalCompoundsColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "mechanicalcompound_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MechanicalCompoundsColumns[9], MechanicalCompoundsColumns[1]},
			},
		},
	}
	// MentalStatesColumns holds the columns for the "mental_states" table.
	MentalStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "level", Type: field.TypeInt, Default: 0},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
	}
	// MentalStatesTable holds the schema information for the "mental_states" table.
	MentalStatesTable = &schema.Table{
		Name:       "mental_states",
		Columns:    MentalStatesColumns,
		PrimaryKey: []*schema.Column{MentalStatesColumns[0]},
	}
	// MentalStatePresetsColumns holds the columns for the "mental_state_presets" table.
	MentalStatePresetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "level", Type: field.TypeInt, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
	}
	// MentalStatePresetsTable holds the schema information for the "mental_state_presets" table.
	MentalStatePresetsTable = &schema.Table{
		Name:       "mental_state_presets",
		Columns:    MentalStatePresetsColumns,
		PrimaryKey: []*schema.Column{MentalStatePresetsColumns[0]},
	}
	// NightmareMapsColumns holds the columns for the "nightmare_maps" table.
	NightmareMapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "property_1_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_1_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_2_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_2_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_3_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_3_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_4_condition", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "property_4_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "extra_property_1_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "extra_property_2_description", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
	}
	// NightmareMapsTable holds the schema information for the "nightmare_maps" table.
	NightmareMapsTable = &schema.Table{
		Name:       "nightmare_maps",
		Columns:    NightmareMapsColumns,
		PrimaryKey: []*schema.Column{NightmareMapsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nightmare_maps_patients_nightmare_map",
				Columns:    []*schema.Column{NightmareMapsColumns[13]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "nickname", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "telegram", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "avatar_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "chemistry_level", Type: field.TypeInt, Default: 1},
		{Name: "mechanics_level", Type: field.TypeInt, Default: 1},
		{Name: "social_skills_level", Type: field.TypeInt, Default: 1},
		{Name: "physical_skills_level", Type: field.TypeInt, Default: 1},
		{Name: "bonus_level", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "mental_state_id", Type: field.TypeUUID, Unique: true, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID, Unique: true, Nullable: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_mental_states_patient",
				Columns:    []*schema.Column{PatientsColumns[12]},
				RefColumns: []*schema.Column{MentalStatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "patients_users_patient",
				Columns:    []*schema.Column{PatientsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_full_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_sessions",
				Columns:    []*schema.Column{UserSessionsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[9]},
			},
			{
				Name:    "usersession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AwarenessMapsTable,
		ChemicalRecipesTable,
		DoctorsTable,
		MechanicalCompoundsTable,
		MentalStatesTable,
		MentalStatePresetsTable,
		NightmareMapsTable,
		PatientsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	AwarenessMapsTable.ForeignKeys[0].RefTable = PatientsTable
	ChemicalRecipesTable.ForeignKeys[0].RefTable = DoctorsTable
	ChemicalRecipesTable.ForeignKeys[1].RefTable = PatientsTable
	ChemicalRecipesTable.ForeignKeys[2].RefTable = PatientsTable
	ChemicalRecipesTable.Annotation = &entsql.Annotation{}
	ChemicalRecipesTable.Annotation.Checks = map[string]string{
		"chemical_recipe_one_author": "((author_patient_id IS NULL) <> (author_doctor_id IS NULL))",
	}
	DoctorsTable.ForeignKeys[0].RefTable = UsersTable
	MechanicalCompoundsTable.ForeignKeys[0].RefTable = DoctorsTable
	MechanicalCompoundsTable.ForeignKeys[1].RefTable = PatientsTable
	MechanicalCompoundsTable.ForeignKeys[2].RefTable = PatientsTable
	MechanicalCompoundsTable.Annotation = &entsql.Annotation{}
	MechanicalCompoundsTable.Annotation.Checks = map[string]string{
		"mechanical_compound_one_author": "((author_patient_id IS NULL) <> (author_doctor_id IS NULL))",
	}
	NightmareMapsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = MentalStatesTable
	PatientsTable.ForeignKeys[1].RefTable = UsersTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}

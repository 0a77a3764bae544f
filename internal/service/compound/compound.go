package compound

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	entchemical "github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	entmechanical "github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
)

// Kind selects which authored ledger an operation targets.
type Kind string

const (
	KindChemical   Kind = "chemical"
	KindMechanical Kind = "mechanical"
)

var (
	ErrUnknownKind      = errors.New("unknown compound kind")
	ErrMissingProperty  = errors.New("property_1, property_2 and property_3 are required")
	ErrNegativeDuration = errors.New("duration must not be negative")
	ErrNoAuthor         = errors.New("an author is required")
)

// Entry is the kind-neutral view of one ledger row. The *Name fields are
// filled from eager-loaded edges and may be empty on rows fetched without
// them.
type Entry struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	AuthorPatientID *uuid.UUID
	AuthorDoctorID  *uuid.UUID

	Property1     string
	Property2     string
	Property3     string
	Duration      time.Duration
	ExtraProperty string

	CreatedAt time.Time

	OwnerName         string
	AuthorPatientName string
	AuthorDoctorName  string
}

// CreateInput carries the author-independent fields of a new entry.
type CreateInput struct {
	Property1     string
	Property2     string
	Property3     string
	Duration      time.Duration
	ExtraProperty string
}

type Service interface {
	// CreateForPatient files an entry in the patient's own ledger; the
	// patient is both owner and author.
	CreateForPatient(ctx context.Context, kind Kind, p *repo.Patient, in CreateInput) (*Entry, error)

	// CreateForDoctor files an entry in owner's ledger authored by the
	// doctor.
	CreateForDoctor(ctx context.Context, kind Kind, d *repo.Doctor, owner *repo.Patient, in CreateInput) (*Entry, error)

	// ListForPatient returns the patient's ledger, newest first.
	ListForPatient(ctx context.Context, kind Kind, p *repo.Patient) ([]*Entry, error)

	// ListAll returns every entry, newest first, with owners loaded.
	ListAll(ctx context.Context, kind Kind) ([]*Entry, error)
}

type compoundService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &compoundService{db: db}
}

func validateInput(in CreateInput) error {
	if strings.TrimSpace(in.Property1) == "" ||
		strings.TrimSpace(in.Property2) == "" ||
		strings.TrimSpace(in.Property3) == "" {
		return ErrMissingProperty
	}
	if in.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func (s *compoundService) CreateForPatient(ctx context.Context, kind Kind, p *repo.Patient, in CreateInput) (*Entry, error) {
	if p == nil {
		return nil, ErrNoAuthor
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	e, err := s.create(ctx, kind, p.ID, &p.ID, nil, in)
	if err != nil {
		return nil, err
	}
	e.AuthorPatientName = p.FullName
	return e, nil
}

func (s *compoundService) CreateForDoctor(ctx context.Context, kind Kind, d *repo.Doctor, owner *repo.Patient, in CreateInput) (*Entry, error) {
	if d == nil {
		return nil, ErrNoAuthor
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	e, err := s.create(ctx, kind, owner.ID, nil, &d.ID, in)
	if err != nil {
		return nil, err
	}
	e.AuthorDoctorName = d.FullName
	e.OwnerName = owner.FullName
	return e, nil
}

func (s *compoundService) ListForPatient(ctx context.Context, kind Kind, p *repo.Patient) ([]*Entry, error) {
	switch kind {
	case KindChemical:
		rows, err := s.db.ChemicalRecipe.Query().
			Where(entchemical.OwnerID(p.ID)).
			WithAuthorPatient().
			WithAuthorDoctor().
			Order(entchemical.ByCreatedAt(sql.OrderDesc())).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list chemical recipes: %w", err)
		}
		return chemicalEntries(rows), nil
	case KindMechanical:
		rows, err := s.db.MechanicalCompound.Query().
			Where(entmechanical.OwnerID(p.ID)).
			WithAuthorPatient().
			WithAuthorDoctor().
			Order(entmechanical.ByCreatedAt(sql.OrderDesc())).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list mechanical compounds: %w", err)
		}
		return mechanicalEntries(rows), nil
	default:
		return nil, ErrUnknownKind
	}
}

func (s *compoundService) ListAll(ctx context.Context, kind Kind) ([]*Entry, error) {
	switch kind {
	case KindChemical:
		rows, err := s.db.ChemicalRecipe.Query().
			WithOwner().
			WithAuthorPatient().
			WithAuthorDoctor().
			Order(entchemical.ByCreatedAt(sql.OrderDesc())).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list all chemical recipes: %w", err)
		}
		return chemicalEntries(rows), nil
	case KindMechanical:
		rows, err := s.db.MechanicalCompound.Query().
			WithOwner().
			WithAuthorPatient().
			WithAuthorDoctor().
			Order(entmechanical.ByCreatedAt(sql.OrderDesc())).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list all mechanical compounds: %w", err)
		}
		return mechanicalEntries(rows), nil
	default:
		return nil, ErrUnknownKind
	}
}

// create persists one entry. Callers pass exactly one author; the CHECK
// constraint rejects anything else that slips through.
func (s *compoundService) create(ctx context.Context, kind Kind, ownerID uuid.UUID, authorPatientID, authorDoctorID *uuid.UUID, in CreateInput) (*Entry, error) {
	if (authorPatientID == nil) == (authorDoctorID == nil) {
		return nil, ErrNoAuthor
	}

	switch kind {
	case KindChemical:
		q := s.db.ChemicalRecipe.Create().
			SetOwnerID(ownerID).
			SetProperty1(in.Property1).
			SetProperty2(in.Property2).
			SetProperty3(in.Property3).
			SetDuration(in.Duration).
			SetExtraProperty(in.ExtraProperty).
			SetNillableAuthorPatientID(authorPatientID).
			SetNillableAuthorDoctorID(authorDoctorID)
		row, err := q.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create chemical recipe: %w", err)
		}
		return chemicalEntry(row), nil
	case KindMechanical:
		q := s.db.MechanicalCompound.Create().
			SetOwnerID(ownerID).
			SetProperty1(in.Property1).
			SetProperty2(in.Property2).
			SetProperty3(in.Property3).
			SetDuration(in.Duration).
			SetExtraProperty(in.ExtraProperty).
			SetNillableAuthorPatientID(authorPatientID).
			SetNillableAuthorDoctorID(authorDoctorID)
		row, err := q.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create mechanical compound: %w", err)
		}
		return mechanicalEntry(row), nil
	default:
		return nil, ErrUnknownKind
	}
}

// AuthorDisplay renders the author line of one entry. It never fails; rows
// predating an author (or whose author was deleted) render as unset.
func AuthorDisplay(e *Entry) string {
	switch {
	case e.AuthorPatientID != nil:
		return "Пациент: " + e.AuthorPatientName
	case e.AuthorDoctorID != nil:
		return "Врач: " + e.AuthorDoctorName
	default:
		return "Автор не указан"
	}
}

func chemicalEntries(rows []*repo.ChemicalRecipe) []*Entry {
	out := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, chemicalEntry(row))
	}
	return out
}

func chemicalEntry(row *repo.ChemicalRecipe) *Entry {
	e := &Entry{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		AuthorPatientID: row.AuthorPatientID,
		AuthorDoctorID:  row.AuthorDoctorID,
		Property1:       row.Property1,
		Property2:       row.Property2,
		Property3:       row.Property3,
		Duration:        row.Duration,
		ExtraProperty:   row.ExtraProperty,
		CreatedAt:       row.CreatedAt,
	}
	if row.Edges.Owner != nil {
		e.OwnerName = row.Edges.Owner.FullName
	}
	if row.Edges.AuthorPatient != nil {
		e.AuthorPatientName = row.Edges.AuthorPatient.FullName
	}
	if row.Edges.AuthorDoctor != nil {
		e.AuthorDoctorName = row.Edges.AuthorDoctor.FullName
	}
	return e
}

func mechanicalEntries(rows []*repo.MechanicalCompound) []*Entry {
	out := make([]*Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, mechanicalEntry(row))
	}
	return out
}

func mechanicalEntry(row *repo.MechanicalCompound) *Entry {
	e := &Entry{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		AuthorPatientID: row.AuthorPatientID,
		AuthorDoctorID:  row.AuthorDoctorID,
		Property1:       row.Property1,
		Property2:       row.Property2,
		Property3:       row.Property3,
		Duration:        row.Duration,
		ExtraProperty:   row.ExtraProperty,
		CreatedAt:       row.CreatedAt,
	}
	if row.Edges.Owner != nil {
		e.OwnerName = row.Edges.Owner.FullName
	}
	if row.Edges.AuthorPatient != nil {
		e.AuthorPatientName = row.Edges.AuthorPatient.FullName
	}
	if row.Edges.AuthorDoctor != nil {
		e.AuthorDoctorName = row.Edges.AuthorDoctor.FullName
	}
	return e
}

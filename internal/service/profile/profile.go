package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	entdoctor "github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	entpatient "github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/service/mentalstate"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// UpdateProfileRequest is the self-service profile edit, shared by
// patients and doctors. A nil AvatarKey leaves the stored key untouched.
type UpdateProfileRequest struct {
	FullName  string
	Nickname  string
	Telegram  string
	AvatarKey *string
}

// DoctorPatientUpdate is the doctor-side patient edit, which additionally
// covers the four skill levels and the free-form bonus level.
type DoctorPatientUpdate struct {
	FullName            string
	Nickname            string
	Telegram            string
	ChemistryLevel      int
	MechanicsLevel      int
	SocialSkillsLevel   int
	PhysicalSkillsLevel int
	BonusLevel          string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	GetPatient(ctx context.Context, id uuid.UUID) (*repo.Patient, error)
	GetPatientByUser(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)
	GetDoctorByUser(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error)
	ListPatients(ctx context.Context) ([]*repo.Patient, error)

	UpdatePatientProfile(ctx context.Context, p *repo.Patient, req UpdateProfileRequest) (*repo.Patient, error)
	UpdateDoctorProfile(ctx context.Context, d *repo.Doctor, req UpdateProfileRequest) (*repo.Doctor, error)
	UpdatePatientByDoctor(ctx context.Context, p *repo.Patient, req DoctorPatientUpdate) (*repo.Patient, error)
	UpdateMentalDescription(ctx context.Context, p *repo.Patient, description string) (*repo.MentalState, error)
}

type profileService struct {
	db     *repo.Client
	mental mentalstate.Service
}

func New(db *repo.Client, mental mentalstate.Service) Service {
	return &profileService{db: db, mental: mental}
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func (s *profileService) GetPatient(ctx context.Context, id uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *profileService) GetPatientByUser(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient by user: %w", err)
	}
	return p, nil
}

func (s *profileService) GetDoctorByUser(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().
		Where(entdoctor.UserID(userID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor by user: %w", err)
	}
	return d, nil
}

func (s *profileService) ListPatients(ctx context.Context) ([]*repo.Patient, error) {
	rows, err := s.db.Patient.Query().
		Order(entpatient.ByFullName()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return rows, nil
}

// ---------------------------------------------------------------------------
// Updates
// ---------------------------------------------------------------------------

func (s *profileService) UpdatePatientProfile(ctx context.Context, p *repo.Patient, req UpdateProfileRequest) (out *repo.Patient, err error) {
	if err := validateNames(req.FullName, req.Nickname); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.Patient.UpdateOne(p).
		SetFullName(req.FullName).
		SetNickname(req.Nickname).
		SetTelegram(req.Telegram)
	if req.AvatarKey != nil {
		upd = upd.SetAvatarKey(*req.AvatarKey)
	}

	out, err = upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNicknameTaken
		}
		return nil, fmt.Errorf("update patient: %w", err)
	}

	// The nickname doubles as the login name; keep the user row in sync.
	if err = s.syncUsername(ctx, tx, p.UserID, req.Nickname); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (s *profileService) UpdateDoctorProfile(ctx context.Context, d *repo.Doctor, req UpdateProfileRequest) (out *repo.Doctor, err error) {
	if err := validateNames(req.FullName, req.Nickname); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	upd := tx.Doctor.UpdateOne(d).
		SetFullName(req.FullName).
		SetNickname(req.Nickname).
		SetTelegram(req.Telegram)
	if req.AvatarKey != nil {
		upd = upd.SetAvatarKey(*req.AvatarKey)
	}

	out, err = upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNicknameTaken
		}
		return nil, fmt.Errorf("update doctor: %w", err)
	}

	if err = s.syncUsername(ctx, tx, d.UserID, req.Nickname); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (s *profileService) UpdatePatientByDoctor(ctx context.Context, p *repo.Patient, req DoctorPatientUpdate) (out *repo.Patient, err error) {
	if err := validateNames(req.FullName, req.Nickname); err != nil {
		return nil, err
	}
	if err := validateSkillLevels(req); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	out, err = tx.Patient.UpdateOne(p).
		SetFullName(req.FullName).
		SetNickname(req.Nickname).
		SetTelegram(req.Telegram).
		SetChemistryLevel(req.ChemistryLevel).
		SetMechanicsLevel(req.MechanicsLevel).
		SetSocialSkillsLevel(req.SocialSkillsLevel).
		SetPhysicalSkillsLevel(req.PhysicalSkillsLevel).
		SetBonusLevel(req.BonusLevel).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNicknameTaken
		}
		return nil, fmt.Errorf("update patient by doctor: %w", err)
	}

	if err = s.syncUsername(ctx, tx, p.UserID, req.Nickname); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (s *profileService) UpdateMentalDescription(ctx context.Context, p *repo.Patient, description string) (*repo.MentalState, error) {
	ms, err := s.mental.GetOrCreate(ctx, p)
	if err != nil {
		return nil, err
	}
	return s.mental.UpdateDescription(ctx, ms, description)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateNames(fullName, nickname string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrEmptyFullName
	}
	if strings.TrimSpace(nickname) == "" {
		return ErrEmptyNickname
	}
	return nil
}

func validateSkillLevels(req DoctorPatientUpdate) error {
	for _, lvl := range []int{
		req.ChemistryLevel,
		req.MechanicsLevel,
		req.SocialSkillsLevel,
		req.PhysicalSkillsLevel,
	} {
		if lvl < 1 || lvl > 3 {
			return ErrInvalidSkillLevel
		}
	}
	return nil
}

// syncUsername renames the linked user when the nickname changed. Profiles
// without a user account are left alone.
func (s *profileService) syncUsername(ctx context.Context, tx *repo.Tx, userID uuid.UUID, nickname string) error {
	if userID == uuid.Nil {
		return nil
	}

	u, err := tx.User.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u.Username == nickname {
		return nil
	}

	_, err = tx.User.UpdateOne(u).
		SetUsername(nickname).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return ErrNicknameTaken
		}
		return fmt.Errorf("sync username: %w", err)
	}
	return nil
}

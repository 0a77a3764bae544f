package mentalstate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	entpatient "github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/service/preset"
)

// Service manages the per-patient mental state. Every read path goes
// through GetOrCreate so a patient always has a state once anyone looks.
type Service interface {
	// GetOrCreate returns the patient's state, creating it at level 0 on
	// first access. On reads the stored description is re-synced from the
	// preset for the current level when one exists.
	GetOrCreate(ctx context.Context, p *repo.Patient) (*repo.MentalState, error)

	// ChangeLevel shifts the level by delta, clamped to the scale bounds.
	// A shift that clamps back to the current level is a no-op.
	ChangeLevel(ctx context.Context, ms *repo.MentalState, delta int) (*repo.MentalState, error)

	// UpdateDescription overrides the description directly (doctor flow).
	UpdateDescription(ctx context.Context, ms *repo.MentalState, description string) (*repo.MentalState, error)
}

type mentalStateService struct {
	db      *repo.Client
	presets preset.Service
}

func New(db *repo.Client, presets preset.Service) Service {
	return &mentalStateService{db: db, presets: presets}
}

// presetDescription looks up the stock description for a level. A missing
// preset yields the empty string; any other lookup failure is a real error.
func (s *mentalStateService) presetDescription(ctx context.Context, level int) (string, error) {
	pr, err := s.presets.GetByLevel(ctx, level)
	if err != nil {
		if errors.Is(err, preset.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get preset for level %d: %w", level, err)
	}
	return pr.Description, nil
}

// clampLevel bounds a level to the scale.
func clampLevel(level int) int {
	if level < preset.MinLevel {
		return preset.MinLevel
	}
	if level > preset.MaxLevel {
		return preset.MaxLevel
	}
	return level
}

func (s *mentalStateService) GetOrCreate(ctx context.Context, p *repo.Patient) (*repo.MentalState, error) {
	if p.MentalStateID != uuid.Nil {
		ms, err := s.db.MentalState.Get(ctx, p.MentalStateID)
		if err != nil {
			return nil, fmt.Errorf("get mental state: %w", err)
		}
		return s.syncDescription(ctx, ms)
	}

	// First access: create at the neutral level, with the stock
	// description when the vocabulary has one.
	desc, err := s.presetDescription(ctx, 0)
	if err != nil {
		return nil, err
	}

	ms, err := s.db.MentalState.Create().
		SetLevel(0).
		SetDescription(desc).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create mental state: %w", err)
	}

	// Link only if still unlinked; a concurrent first access may have won.
	n, err := s.db.Patient.Update().
		Where(entpatient.ID(p.ID), entpatient.MentalStateIDIsNil()).
		SetMentalStateID(ms.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("link mental state: %w", err)
	}
	if n == 0 {
		// Lost the race: drop the orphan and use the winner's state.
		if derr := s.db.MentalState.DeleteOne(ms).Exec(ctx); derr != nil {
			slog.Warn("failed to delete orphan mental state", "id", ms.ID, "error", derr)
		}
		fresh, err := s.db.Patient.Get(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("refetch patient: %w", err)
		}
		if fresh.MentalStateID == uuid.Nil {
			return nil, fmt.Errorf("mental state link lost for patient %s", p.ID)
		}
		ms, err = s.db.MentalState.Get(ctx, fresh.MentalStateID)
		if err != nil {
			return nil, fmt.Errorf("get mental state: %w", err)
		}
	}

	return ms, nil
}

func (s *mentalStateService) ChangeLevel(ctx context.Context, ms *repo.MentalState, delta int) (*repo.MentalState, error) {
	newLevel := clampLevel(ms.Level + delta)
	if newLevel == ms.Level {
		return ms, nil
	}

	upd := s.db.MentalState.UpdateOne(ms).SetLevel(newLevel)

	// Pull the description for the new level from the vocabulary. Without
	// a preset only the level moves and the old text stays; the next read
	// re-syncs it once the vocabulary catches up.
	pr, err := s.presets.GetByLevel(ctx, newLevel)
	switch {
	case err == nil:
		upd = upd.SetDescription(pr.Description)
	case errors.Is(err, preset.ErrNotFound):
	default:
		return nil, fmt.Errorf("get preset for level %d: %w", newLevel, err)
	}

	out, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("change mental state level: %w", err)
	}
	return out, nil
}

func (s *mentalStateService) UpdateDescription(ctx context.Context, ms *repo.MentalState, description string) (*repo.MentalState, error) {
	out, err := s.db.MentalState.UpdateOne(ms).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update mental state description: %w", err)
	}
	return out, nil
}

// syncDescription overwrites a stored description that drifted from the
// preset of the current level. No preset, no touch.
func (s *mentalStateService) syncDescription(ctx context.Context, ms *repo.MentalState) (*repo.MentalState, error) {
	pr, err := s.presets.GetByLevel(ctx, ms.Level)
	if err != nil {
		if errors.Is(err, preset.ErrNotFound) {
			return ms, nil
		}
		return nil, fmt.Errorf("get preset for level %d: %w", ms.Level, err)
	}
	if ms.Description == pr.Description {
		return ms, nil
	}

	out, err := s.db.MentalState.UpdateOne(ms).
		SetDescription(pr.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("sync mental state description: %w", err)
	}
	return out, nil
}

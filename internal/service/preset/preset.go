package preset

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	entpreset "github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
)

var (
	ErrNotFound     = errors.New("no preset for this level")
	ErrInvalidLevel = errors.New("level must be between -3 and 3")
)

// Scale bounds of the mental-state level.
const (
	MinLevel = -3
	MaxLevel = 3
)

// Service is the read side of the level vocabulary. Writes happen only
// through Seed (CLI) so the vocabulary stays a curated reference table.
type Service interface {
	List(ctx context.Context) ([]*repo.MentalStatePreset, error)
	GetByLevel(ctx context.Context, level int) (*repo.MentalStatePreset, error)
	Seed(ctx context.Context) (int, error)
}

type presetService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &presetService{db: db}
}

func (s *presetService) List(ctx context.Context) ([]*repo.MentalStatePreset, error) {
	rows, err := s.db.MentalStatePreset.Query().
		Order(entpreset.ByLevel()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	return rows, nil
}

func (s *presetService) GetByLevel(ctx context.Context, level int) (*repo.MentalStatePreset, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, ErrInvalidLevel
	}
	row, err := s.db.MentalStatePreset.Query().
		Where(entpreset.Level(level)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get preset by level: %w", err)
	}
	return row, nil
}

// defaultVocabulary is the stock description per scale point. Seed inserts
// missing levels and leaves existing rows untouched, so operators can
// re-run it safely after editing descriptions.
var defaultVocabulary = map[int]string{
	-3: "Критическое состояние: связь с реальностью потеряна, нужен постоянный присмотр",
	-2: "Тяжёлое состояние: частые срывы, контакт затруднён",
	-1: "Неустойчивое состояние: повышенная тревожность, возможны срывы",
	0:  "Стабильное состояние",
	1:  "Хорошее состояние: ясность мышления и уверенность",
	2:  "Приподнятое состояние: высокая активность и мотивация",
	3:  "Отличное состояние: полный самоконтроль",
}

func (s *presetService) Seed(ctx context.Context) (int, error) {
	created := 0
	for level := MinLevel; level <= MaxLevel; level++ {
		desc, ok := defaultVocabulary[level]
		if !ok {
			continue
		}

		exists, err := s.db.MentalStatePreset.Query().
			Where(entpreset.Level(level)).
			Exist(ctx)
		if err != nil {
			return created, fmt.Errorf("check preset level %d: %w", level, err)
		}
		if exists {
			continue
		}

		_, err = s.db.MentalStatePreset.Create().
			SetLevel(level).
			SetDescription(desc).
			Save(ctx)
		if err != nil {
			// Concurrent seed runs race on the unique level; losing is fine.
			if repo.IsConstraintError(err) {
				continue
			}
			return created, fmt.Errorf("create preset level %d: %w", level, err)
		}
		created++
	}
	return created, nil
}

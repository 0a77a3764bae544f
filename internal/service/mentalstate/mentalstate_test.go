package mentalstate

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/repo/enttest"
	"github.com/mobiusclinic/clinica_backend/internal/service/preset"
)

func TestClampLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected int
	}{
		{"in range negative", -2, -2},
		{"in range positive", 2, 2},
		{"zero", 0, 0},
		{"lower bound", -3, -3},
		{"upper bound", 3, 3},
		{"below lower bound", -4, -3},
		{"far below lower bound", -100, -3},
		{"above upper bound", 4, 3},
		{"far above upper bound", 100, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampLevel(tt.level); got != tt.expected {
				t.Errorf("clampLevel(%d) = %d, want %d", tt.level, got, tt.expected)
			}
		})
	}
}

// stubPresets swaps in a canned vocabulary lookup.
type stubPresets struct {
	byLevel func(ctx context.Context, level int) (*repo.MentalStatePreset, error)
}

func (s *stubPresets) List(ctx context.Context) ([]*repo.MentalStatePreset, error) { return nil, nil }
func (s *stubPresets) Seed(ctx context.Context) (int, error)                       { return 0, nil }

func (s *stubPresets) GetByLevel(ctx context.Context, level int) (*repo.MentalStatePreset, error) {
	return s.byLevel(ctx, level)
}

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestChangeLevelPropagatesPresetError(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	lookupErr := errors.New("preset lookup failed")
	svc := New(client, &stubPresets{
		byLevel: func(context.Context, int) (*repo.MentalStatePreset, error) {
			return nil, lookupErr
		},
	})

	ms := client.MentalState.Create().
		SetLevel(0).
		SetDescription("спокойно").
		SaveX(ctx)

	if _, err := svc.ChangeLevel(ctx, ms, 1); !errors.Is(err, lookupErr) {
		t.Fatalf("ChangeLevel() error = %v, want wrapped lookup error", err)
	}

	// The failed lookup must leave the stored state untouched.
	stored := client.MentalState.GetX(ctx, ms.ID)
	if stored.Level != 0 || stored.Description != "спокойно" {
		t.Errorf("state changed despite lookup failure: level=%d description=%q",
			stored.Level, stored.Description)
	}
}

func TestChangeLevelWithoutPreset(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	svc := New(client, &stubPresets{
		byLevel: func(context.Context, int) (*repo.MentalStatePreset, error) {
			return nil, preset.ErrNotFound
		},
	})

	ms := client.MentalState.Create().
		SetLevel(0).
		SetDescription("спокойно").
		SaveX(ctx)

	out, err := svc.ChangeLevel(ctx, ms, 1)
	if err != nil {
		t.Fatalf("ChangeLevel() error: %v", err)
	}
	if out.Level != 1 {
		t.Errorf("level = %d, want 1", out.Level)
	}
	if out.Description != "спокойно" {
		t.Errorf("description = %q, want the previous text kept", out.Description)
	}
}

func TestGetOrCreatePropagatesPresetError(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	lookupErr := errors.New("preset lookup failed")
	svc := New(client, &stubPresets{
		byLevel: func(context.Context, int) (*repo.MentalStatePreset, error) {
			return nil, lookupErr
		},
	})

	ms := client.MentalState.Create().SetLevel(0).SaveX(ctx)
	p := client.Patient.Create().
		SetFullName("Полина Сергеевна").
		SetNickname("polina").
		SetMentalStateID(ms.ID).
		SaveX(ctx)

	if _, err := svc.GetOrCreate(ctx, p); !errors.Is(err, lookupErr) {
		t.Fatalf("GetOrCreate() error = %v, want wrapped lookup error", err)
	}
}

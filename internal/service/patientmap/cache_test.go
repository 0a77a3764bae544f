package patientmap

import (
	"context"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mobiusclinic/clinica_backend/internal/repo"
	"github.com/mobiusclinic/clinica_backend/internal/repo/enttest"
	"github.com/mobiusclinic/clinica_backend/pkg/cache"
)

// recordingStore wraps the in-memory store and records every deleted key.
type recordingStore struct {
	cache.Store

	mu      sync.Mutex
	deleted []string
}

func (s *recordingStore) Delete(ctx context.Context, key string) {
	s.mu.Lock()
	s.deleted = append(s.deleted, key)
	s.mu.Unlock()
	s.Store.Delete(ctx, key)
}

func (s *recordingStore) deletedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deleted...)
}

func newTestEnv(t *testing.T) (*repo.Client, *recordingStore, Service) {
	t.Helper()

	store := &recordingStore{Store: cache.NewMemory()}
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	client.Use(CacheInvalidationHook(store))
	t.Cleanup(func() { client.Close() })

	return client, store, New(client, store, time.Minute)
}

func newTestPatient(t *testing.T, client *repo.Client) *repo.Patient {
	t.Helper()
	return client.Patient.Create().
		SetFullName("Полина Сергеевна").
		SetNickname("polina").
		SaveX(context.Background())
}

func TestUpdateRefreshesPayload(t *testing.T) {
	client, _, svc := newTestEnv(t)
	p := newTestPatient(t, client)
	ctx := context.Background()

	// Warm the cache with the empty worksheet.
	initial, err := svc.GetPayload(ctx, KindAwareness, p)
	if err != nil {
		t.Fatalf("GetPayload() error: %v", err)
	}
	if initial.Props[1].Condition != "" {
		t.Fatalf("fresh worksheet has condition %q, want empty", initial.Props[1].Condition)
	}

	rec, err := svc.GetOrCreate(ctx, KindAwareness, p)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}

	_, changed, err := svc.Update(ctx, KindAwareness, rec, map[string]string{
		"property_2_condition": "устойчиво",
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !changed {
		t.Fatal("Update() reported no change for a changed field")
	}

	after, err := svc.GetPayload(ctx, KindAwareness, p)
	if err != nil {
		t.Fatalf("GetPayload() after update error: %v", err)
	}
	if after.Props[1].Condition != "устойчиво" {
		t.Errorf("payload condition = %q after update, want %q", after.Props[1].Condition, "устойчиво")
	}
}

func TestDirectSaveInvalidatesPayload(t *testing.T) {
	client, store, svc := newTestEnv(t)
	p := newTestPatient(t, client)
	ctx := context.Background()

	rec, err := svc.GetOrCreate(ctx, KindAwareness, p)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if _, err := svc.GetPayload(ctx, KindAwareness, p); err != nil {
		t.Fatalf("GetPayload() error: %v", err)
	}

	// Write through the ent client directly, bypassing the service layer.
	client.AwarenessMap.UpdateOneID(rec.ID).
		SetProperty2Condition("нестабильно").
		SaveX(ctx)

	key := payloadKey(KindAwareness, p.ID)
	found := false
	for _, k := range store.deletedKeys() {
		if k == key {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("direct save did not invalidate %q; deletions: %v", key, store.deletedKeys())
	}

	after, err := svc.GetPayload(ctx, KindAwareness, p)
	if err != nil {
		t.Fatalf("GetPayload() after direct save error: %v", err)
	}
	if after.Props[1].Condition != "нестабильно" {
		t.Errorf("payload condition = %q after direct save, want %q", after.Props[1].Condition, "нестабильно")
	}
}

func TestNoOpUpdateKeepsCache(t *testing.T) {
	client, store, svc := newTestEnv(t)
	p := newTestPatient(t, client)
	ctx := context.Background()

	rec, err := svc.GetOrCreate(ctx, KindNightmare, p)
	if err != nil {
		t.Fatalf("GetOrCreate() error: %v", err)
	}
	if _, err := svc.GetPayload(ctx, KindNightmare, p); err != nil {
		t.Fatalf("GetPayload() error: %v", err)
	}

	before := len(store.deletedKeys())
	_, changed, err := svc.Update(ctx, KindNightmare, rec, map[string]string{})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if changed {
		t.Error("Update() reported a change for identical values")
	}
	if got := len(store.deletedKeys()); got != before {
		t.Errorf("no-op update triggered %d extra deletions", got-before)
	}
}

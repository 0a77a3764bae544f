package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok := m.Get(ctx, "missing"); ok {
		t.Error("Get() on empty store should miss")
	}

	m.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := m.Get(ctx, "k")
	if !ok {
		t.Fatal("Get() after Set() should hit")
	}
	if string(got) != "v" {
		t.Errorf("Get() = %q, want %q", got, "v")
	}
}

func TestMemoryDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	m.Set(ctx, "k", []byte("v"), time.Minute)
	m.Delete(ctx, "k")

	if _, ok := m.Get(ctx, "k"); ok {
		t.Error("Get() after Delete() should miss")
	}

	// deleting a missing key is a no-op
	m.Delete(ctx, "never-set")
}

func TestMemoryTTLExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	m.now = func() time.Time { return current }

	m.Set(ctx, "k", []byte("v"), 5*time.Minute)

	current = base.Add(4 * time.Minute)
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Error("entry expired before its TTL")
	}

	current = base.Add(6 * time.Minute)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Error("entry survived past its TTL")
	}
}

func TestMemoryZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	m.now = func() time.Time { return current }

	m.Set(ctx, "k", []byte("v"), 0)

	current = base.Add(24 * time.Hour)
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Error("zero-TTL entry should not expire")
	}
}

package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "clinica",
		Audience:   "clinica-api",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(userID, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("claims.Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("claims.UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("claims.SessionID = %v, want %v", claims.SessionID, sessionID)
	}
	if claims.IsExpired() {
		t.Error("freshly issued token should not be expired")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	for _, tok := range []string{"", "not-a-token", "v4.local.garbage"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("Verify(%q) should fail", tok)
		}
	}
}

func TestVerifyRejectsOtherKey(t *testing.T) {
	m1 := newTestManager(t)
	m2 := newTestManager(t)

	tok, err := m1.IssueAccess(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := m2.Verify(tok); err == nil {
		t.Error("Verify() with a different symmetric key should fail")
	}
}

func TestRefreshTokenType(t *testing.T) {
	m := newTestManager(t)

	tok, err := m.IssueRefresh(uuid.New(), nil)
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("claims.Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.SessionID != nil {
		t.Errorf("claims.SessionID = %v, want nil", claims.SessionID)
	}
}

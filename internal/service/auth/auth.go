package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mobiusclinic/clinica_backend/config"
	"github.com/mobiusclinic/clinica_backend/internal/repo"
	entpreset "github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	entuser "github.com/mobiusclinic/clinica_backend/internal/repo/user"
	entsession "github.com/mobiusclinic/clinica_backend/internal/repo/usersession"
	"github.com/mobiusclinic/clinica_backend/pkg/authorize"
	pasetotoken "github.com/mobiusclinic/clinica_backend/pkg/paseto"
	"github.com/mobiusclinic/clinica_backend/pkg/password"
)

const defaultMinPasswordLength = 8

// Role is the profile kind requested at registration.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Nickname string
	Password string
	FullName string
	Role     Role
	Telegram string
}

type LoginRequest struct {
	Nickname string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// RegisterResult reports what the registration transaction created.
type RegisterResult struct {
	User      *repo.User
	PatientID *uuid.UUID
	DoctorID  *uuid.UUID
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	auth   authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	auth authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		auth:   auth,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

// Register creates the user plus exactly one profile in one transaction. A
// patient also gets a mental state and both worksheets so the first login
// never hits a half-provisioned account.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (res *RegisterResult, err error) {
	req.Nickname = strings.TrimSpace(req.Nickname)
	req.FullName = strings.TrimSpace(req.FullName)

	if req.Nickname == "" {
		return nil, ErrEmptyNickname
	}
	if req.FullName == "" {
		return nil, ErrEmptyFullName
	}
	if req.Role != RolePatient && req.Role != RoleDoctor {
		return nil, ErrUnknownRole
	}

	minLen := s.cfg.Authentication.MinPasswordLength
	if minLen <= 0 {
		minLen = defaultMinPasswordLength
	}
	if len(req.Password) < minLen {
		return nil, ErrPasswordTooShort
	}

	// Pre-check for a friendly error; the unique constraint is the real
	// guarantee under concurrency.
	exists, err := s.db.User.Query().
		Where(entuser.Username(req.Nickname), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check nickname: %w", err)
	}
	if exists {
		return nil, ErrNicknameTaken
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
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

	u, err := tx.User.Create().
		SetUsername(req.Nickname).
		SetPasswordHash(passHash).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrNicknameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	res = &RegisterResult{User: u}

	switch req.Role {
	case RolePatient:
		pid, perr := s.provisionPatient(ctx, tx, u.ID, req)
		if perr != nil {
			err = perr
			return nil, err
		}
		res.PatientID = &pid
	case RoleDoctor:
		d, derr := tx.Doctor.Create().
			SetUserID(u.ID).
			SetFullName(req.FullName).
			SetNickname(req.Nickname).
			SetTelegram(req.Telegram).
			Save(ctx)
		if derr != nil {
			if repo.IsConstraintError(derr) {
				err = ErrNicknameTaken
				return nil, err
			}
			err = fmt.Errorf("create doctor: %w", derr)
			return nil, err
		}
		res.DoctorID = &d.ID
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	// Role grants live outside the transaction; a missing policy backend
	// must not undo the account. The grant can be repaired later.
	switch req.Role {
	case RolePatient:
		if aerr := authorize.AssignPatientRole(ctx, s.auth, u.ID.String()); aerr != nil {
			slog.Warn("assign patient role failed", "user_id", u.ID, "error", aerr)
		}
	case RoleDoctor:
		if aerr := authorize.AssignDoctorRole(ctx, s.auth, u.ID.String()); aerr != nil {
			slog.Warn("assign doctor role failed", "user_id", u.ID, "error", aerr)
		}
	}

	return res, nil
}

// provisionPatient creates the patient row and its dependent records.
func (s *authService) provisionPatient(ctx context.Context, tx *repo.Tx, userID uuid.UUID, req RegisterRequest) (uuid.UUID, error) {
	// Stock description for the neutral level, when seeded.
	desc := ""
	if pr, err := tx.MentalStatePreset.Query().
		Where(entpreset.Level(0)).
		Only(ctx); err == nil {
		desc = pr.Description
	}

	ms, err := tx.MentalState.Create().
		SetLevel(0).
		SetDescription(desc).
		Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create mental state: %w", err)
	}

	p, err := tx.Patient.Create().
		SetUserID(userID).
		SetFullName(req.FullName).
		SetNickname(req.Nickname).
		SetTelegram(req.Telegram).
		SetMentalStateID(ms.ID).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return uuid.Nil, ErrNicknameTaken
		}
		return uuid.Nil, fmt.Errorf("create patient: %w", err)
	}

	if _, err := tx.AwarenessMap.Create().SetPatientID(p.ID).Save(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("create awareness map: %w", err)
	}
	if _, err := tx.NightmareMap.Create().SetPatientID(p.ID).Save(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("create nightmare map: %w", err)
	}

	return p.ID, nil
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Nickname = strings.TrimSpace(req.Nickname)
	if req.Nickname == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Username(req.Nickname), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Same error as a bad password; don't leak which nicknames exist.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best-effort; a failed timestamp write must not block the login.
	if _, err := s.db.User.UpdateOne(u).SetLastLoginAt(time.Now()).Save(ctx); err != nil {
		slog.Warn("update last_login_at failed", "user_id", u.ID, "error", err)
	}

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	s.rdb.Expire(ctx, sessionKey, s.sessionTTL())

	// Issue new access token only (refresh token stays the same until logout)
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired — not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in the audit table (best-effort; not the critical path)
	if _, err := s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String()), entsession.RevokedAtIsNil()).
		SetRevokedAt(time.Now()).
		Save(ctx); err != nil {
		slog.Warn("mark session revoked failed", "session_id", sessionID, "error", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sessionTTL() time.Duration {
	hours := s.cfg.Authentication.SessionTTLHours
	if hours <= 0 {
		hours = 24 * 30
	}
	return time.Duration(hours) * time.Hour
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())
	sessionTTL := s.sessionTTL()

	// Store in Redis
	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	// Issue tokens
	access, err := s.paseto.IssueAccess(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	refreshHash := sha256Hex(refresh)
	if _, err := s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(refreshHash).
		SetExpiresAt(time.Now().Add(sessionTTL)).
		Save(ctx); err != nil {
		slog.Warn("persist session audit failed", "user_id", u.ID, "error", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.paseto.AccessTTL().Seconds()),
	}, nil
}

func sha256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

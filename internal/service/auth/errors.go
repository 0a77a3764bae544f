package auth

import "errors"

var (
	ErrNicknameTaken      = errors.New("nickname is already taken")
	ErrUnknownRole        = errors.New("role must be patient or doctor")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrEmptyNickname      = errors.New("nickname is required")
	ErrEmptyFullName      = errors.New("full name is required")
	ErrInvalidCredentials = errors.New("nickname or password is incorrect")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrSessionNotFound    = errors.New("session not found or expired")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

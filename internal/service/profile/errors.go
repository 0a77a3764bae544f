package profile

import "errors"

var (
	ErrPatientNotFound   = errors.New("patient not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrNicknameTaken     = errors.New("nickname is already taken")
	ErrEmptyFullName     = errors.New("full name is required")
	ErrEmptyNickname     = errors.New("nickname is required")
	ErrInvalidSkillLevel = errors.New("skill levels must be between 1 and 3")
)

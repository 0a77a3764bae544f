package profile

import "testing"

func TestValidateNames(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		nickname string
		wantErr  error
	}{
		{"both present", "Иван Иванов", "ivan", nil},
		{"empty full name", "", "ivan", ErrEmptyFullName},
		{"whitespace full name", "   ", "ivan", ErrEmptyFullName},
		{"empty nickname", "Иван Иванов", "", ErrEmptyNickname},
		{"whitespace nickname", "Иван Иванов", "\t", ErrEmptyNickname},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateNames(tt.fullName, tt.nickname); err != tt.wantErr {
				t.Errorf("validateNames(%q, %q) = %v, want %v", tt.fullName, tt.nickname, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSkillLevels(t *testing.T) {
	base := DoctorPatientUpdate{
		ChemistryLevel:      1,
		MechanicsLevel:      2,
		SocialSkillsLevel:   3,
		PhysicalSkillsLevel: 1,
	}

	tests := []struct {
		name    string
		mutate  func(r *DoctorPatientUpdate)
		wantErr error
	}{
		{"all in range", func(r *DoctorPatientUpdate) {}, nil},
		{"chemistry zero", func(r *DoctorPatientUpdate) { r.ChemistryLevel = 0 }, ErrInvalidSkillLevel},
		{"mechanics too high", func(r *DoctorPatientUpdate) { r.MechanicsLevel = 4 }, ErrInvalidSkillLevel},
		{"social negative", func(r *DoctorPatientUpdate) { r.SocialSkillsLevel = -1 }, ErrInvalidSkillLevel},
		{"physical too high", func(r *DoctorPatientUpdate) { r.PhysicalSkillsLevel = 10 }, ErrInvalidSkillLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			if err := validateSkillLevels(req); err != tt.wantErr {
				t.Errorf("validateSkillLevels() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

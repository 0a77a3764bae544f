package compound

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestValidateInput(t *testing.T) {
	valid := CreateInput{
		Property1: "alpha",
		Property2: "beta",
		Property3: "gamma",
		Duration:  30 * time.Minute,
	}

	tests := []struct {
		name    string
		mutate  func(in *CreateInput)
		wantErr error
	}{
		{"valid", func(in *CreateInput) {}, nil},
		{"zero duration is fine", func(in *CreateInput) { in.Duration = 0 }, nil},
		{"missing property_1", func(in *CreateInput) { in.Property1 = "" }, ErrMissingProperty},
		{"whitespace property_2", func(in *CreateInput) { in.Property2 = "   " }, ErrMissingProperty},
		{"missing property_3", func(in *CreateInput) { in.Property3 = "" }, ErrMissingProperty},
		{"negative duration", func(in *CreateInput) { in.Duration = -time.Second }, ErrNegativeDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			if err := validateInput(in); err != tt.wantErr {
				t.Errorf("validateInput() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorDisplay(t *testing.T) {
	pid := uuid.Must(uuid.NewV7())
	did := uuid.Must(uuid.NewV7())

	tests := []struct {
		name  string
		entry *Entry
		want  string
	}{
		{
			name:  "patient author",
			entry: &Entry{AuthorPatientID: &pid, AuthorPatientName: "Иван Грозный"},
			want:  "Пациент: Иван Грозный",
		},
		{
			name:  "doctor author",
			entry: &Entry{AuthorDoctorID: &did, AuthorDoctorName: "Анна Королёва"},
			want:  "Врач: Анна Королёва",
		},
		{
			name:  "no author",
			entry: &Entry{},
			want:  "Автор не указан",
		},
		{
			name:  "patient wins when both set on a legacy row",
			entry: &Entry{AuthorPatientID: &pid, AuthorPatientName: "P", AuthorDoctorID: &did, AuthorDoctorName: "D"},
			want:  "Пациент: P",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AuthorDisplay(tt.entry); got != tt.want {
				t.Errorf("AuthorDisplay() = %q, want %q", got, tt.want)
			}
		})
	}
}

package patientmap

import (
	"testing"

	"github.com/google/uuid"
)

func fullFields() map[string]string {
	return map[string]string{
		"property_1_condition":         "stable",
		"property_1_description":       "first",
		"property_2_condition":         "",
		"property_2_description":       "second",
		"property_3_condition":         "fragile",
		"property_3_description":       "",
		"property_4_condition":         "",
		"property_4_description":       "",
		"extra_property_1_description": "extra one",
		"extra_property_2_description": "",
	}
}

func TestBuildPayload(t *testing.T) {
	p := buildPayload(fullFields())

	if len(p.Props) != 4 {
		t.Fatalf("expected 4 props, got %d", len(p.Props))
	}
	for i, prop := range p.Props {
		if prop.Num != i+1 {
			t.Errorf("prop %d has num %d", i, prop.Num)
		}
	}
	if p.Props[0].Condition != "stable" || p.Props[0].Description != "first" {
		t.Errorf("prop 1 = %+v", p.Props[0])
	}
	if p.Props[1].Condition != "" || p.Props[1].Description != "second" {
		t.Errorf("prop 2 = %+v", p.Props[1])
	}
	if p.Extras.Extra1 != "extra one" {
		t.Errorf("extra1 = %q", p.Extras.Extra1)
	}
	if p.Extras.Extra2 != "" {
		t.Errorf("extra2 = %q", p.Extras.Extra2)
	}
}

func TestBuildPayloadEmptyFields(t *testing.T) {
	p := buildPayload(map[string]string{})

	if len(p.Props) != 4 {
		t.Fatalf("expected 4 props, got %d", len(p.Props))
	}
	for _, prop := range p.Props {
		if prop.Condition != "" || prop.Description != "" {
			t.Errorf("prop %d not empty: %+v", prop.Num, prop)
		}
	}
}

func TestDiffFields(t *testing.T) {
	tests := []struct {
		name     string
		current  map[string]string
		incoming map[string]string
		want     map[string]string
	}{
		{
			name:     "no changes",
			current:  map[string]string{"property_1_condition": ""},
			incoming: map[string]string{},
			want:     map[string]string{},
		},
		{
			name:     "single change",
			current:  map[string]string{"property_1_condition": "old"},
			incoming: map[string]string{"property_1_condition": "new"},
			want:     map[string]string{"property_1_condition": "new"},
		},
		{
			name:    "missing incoming field clears stored value",
			current: map[string]string{"property_2_description": "kept text"},
			incoming: map[string]string{
				"property_1_condition": "",
			},
			want: map[string]string{"property_2_description": ""},
		},
		{
			name:     "unknown fields ignored",
			current:  map[string]string{},
			incoming: map[string]string{"not_a_field": "x", "id": "boom"},
			want:     map[string]string{},
		},
		{
			name:    "same value not reported",
			current: map[string]string{"extra_property_1_description": "same"},
			incoming: map[string]string{
				"extra_property_1_description": "same",
				"extra_property_2_description": "added",
			},
			want: map[string]string{"extra_property_2_description": "added"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffFields(tt.current, tt.incoming)
			if len(got) != len(tt.want) {
				t.Fatalf("diffFields() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("diffFields()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestPayloadKey(t *testing.T) {
	pid := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	if got := payloadKey(KindAwareness, pid); got != "awareness:payload:550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("awareness key = %q", got)
	}
	if got := payloadKey(KindNightmare, pid); got != "nightmare:payload:550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("nightmare key = %q", got)
	}
}

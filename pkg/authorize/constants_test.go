package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"clinic domain", DomainClinic, true},
		{"wildcard domain", WildcardDomain, true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"clinic with suffix", Domain("clinic:main"), false},
		{"case mismatch", Domain("Clinic"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	expected := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage,
	}

	for _, a := range expected {
		if _, ok := KnownActions[a]; !ok {
			t.Errorf("action %q missing from KnownActions", a)
		}
	}

	if _, ok := KnownActions[WildcardAction]; ok {
		t.Error("wildcard action must not be accepted from requests")
	}
}

func TestKnownResources(t *testing.T) {
	expected := []Resource{
		ResourceUser, ResourceAuthSession,
		ResourcePatient, ResourceDoctor,
		ResourceMentalState, ResourceMap, ResourceCompound, ResourcePreset,
	}

	for _, r := range expected {
		if _, ok := KnownResources[r]; !ok {
			t.Errorf("resource %q missing from KnownResources", r)
		}
	}

	if _, ok := KnownResources[WildcardResource]; ok {
		t.Error("wildcard resource must not be accepted from requests")
	}
}

package rubric

import "testing"

func TestComponents(t *testing.T) {
	components := Components()
	if len(components) != 4 {
		t.Errorf("expected 4 components, got %d", len(components))
	}
	if components[0] != MedicalOpinion || components[3] != ProfessionalFormat {
		t.Errorf("unexpected order: %v", components)
	}
}

func TestComponent_Valid(t *testing.T) {
	for _, c := range Components() {
		if !c.Valid() {
			t.Errorf("Component(%q).Valid() = false, want true", c)
		}
	}
	if Component("legibility").Valid() {
		t.Error("Component(\"legibility\").Valid() = true, want false")
	}
}

func TestComponent_DisplayName(t *testing.T) {
	tests := []struct {
		component Component
		want      string
	}{
		{MedicalOpinion, "Medical Opinion"},
		{ServiceConnection, "Service Connection"},
		{MedicalRationale, "Medical Rationale"},
		{ProfessionalFormat, "Professional Format"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		got := tt.component.DisplayName()
		if got != tt.want {
			t.Errorf("Component(%q).DisplayName() = %q, want %q", tt.component, got, tt.want)
		}
	}
}

func TestStrengths(t *testing.T) {
	strengths := Strengths()
	if len(strengths) != 3 {
		t.Errorf("expected 3 strength tiers, got %d", len(strengths))
	}
	if strengths[0] != StrengthAbsent || strengths[2] != StrengthStrong {
		t.Errorf("unexpected order: %v", strengths)
	}
}

func TestStrength_Rank(t *testing.T) {
	tests := []struct {
		strength Strength
		want     int
	}{
		{StrengthAbsent, 0},
		{StrengthWeak, 1},
		{StrengthStrong, 2},
		{"unknown", 0},
	}

	for _, tt := range tests {
		got := tt.strength.Rank()
		if got != tt.want {
			t.Errorf("Strength(%q).Rank() = %d, want %d", tt.strength, got, tt.want)
		}
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		a, b Strength
		want Strength
	}{
		{StrengthAbsent, StrengthAbsent, StrengthAbsent},
		{StrengthAbsent, StrengthWeak, StrengthWeak},
		{StrengthWeak, StrengthAbsent, StrengthWeak},
		{StrengthStrong, StrengthWeak, StrengthStrong},
		{StrengthWeak, StrengthStrong, StrengthStrong},
	}

	for _, tt := range tests {
		got := Max(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("Max(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

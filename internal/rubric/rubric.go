// Package rubric defines the shared scoring vocabulary: the four
// rubric components of a nexus letter, the textual evidence strength
// tiers, and the point bounds every scorer must respect.
package rubric

// Component identifies one of the four scored dimensions of a letter.
type Component string

const (
	MedicalOpinion     Component = "medical_opinion"
	ServiceConnection  Component = "service_connection"
	MedicalRationale   Component = "medical_rationale"
	ProfessionalFormat Component = "professional_format"
)

// Components returns all components in canonical report order.
func Components() []Component {
	return []Component{MedicalOpinion, ServiceConnection, MedicalRationale, ProfessionalFormat}
}

// Valid reports whether c is one of the four known components.
func (c Component) Valid() bool {
	switch c {
	case MedicalOpinion, ServiceConnection, MedicalRationale, ProfessionalFormat:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the component.
func (c Component) DisplayName() string {
	switch c {
	case MedicalOpinion:
		return "Medical Opinion"
	case ServiceConnection:
		return "Service Connection"
	case MedicalRationale:
		return "Medical Rationale"
	case ProfessionalFormat:
		return "Professional Format"
	default:
		return string(c)
	}
}

// Strength is the textual evidence tier assigned to a component by the
// feature extractor. Stronger tiers dominate: a single strong signal
// outranks any number of weak ones.
type Strength string

const (
	StrengthAbsent Strength = "absent"
	StrengthWeak   Strength = "weak"
	StrengthStrong Strength = "strong"
)

// Strengths returns all strength tiers from lowest to highest.
func Strengths() []Strength {
	return []Strength{StrengthAbsent, StrengthWeak, StrengthStrong}
}

// Valid reports whether s is a known strength tier.
func (s Strength) Valid() bool {
	switch s {
	case StrengthAbsent, StrengthWeak, StrengthStrong:
		return true
	}
	return false
}

// Rank returns the ordering of the tier: absent < weak < strong.
func (s Strength) Rank() int {
	switch s {
	case StrengthStrong:
		return 2
	case StrengthWeak:
		return 1
	default:
		return 0
	}
}

// Max returns the stronger of two tiers.
func Max(a, b Strength) Strength {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Point bounds. Each component is worth up to ComponentMax points and
// the aggregate is the plain sum over the four components.
const (
	ComponentMin = 0
	ComponentMax = 25
	AggregateMin = 0
	AggregateMax = 100
)

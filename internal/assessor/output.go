package assessor

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/claimkit/nexusgrade/internal/rubric"
)

// ComponentAssessment is the assessor's judgment for one rubric component.
type ComponentAssessment struct {
	// Valid reports whether a usable judgment could be extracted for
	// this component. Invalid judgments are ignored by the scorer.
	Valid bool

	// Present is the assessor's call on whether the component's
	// substance appears in the letter.
	Present bool

	// Confidence is how certain the assessor is of the Present call,
	// in [0,1]. It is not a quality grade.
	Confidence float64
}

// Output is the parsed assessor response for one letter.
type Output struct {
	// Components holds per-component judgments. Only components with a
	// valid judgment are guaranteed to be in the map.
	Components map[rubric.Component]ComponentAssessment

	// Strengths and Weaknesses are the assessor's free-form notes.
	// They inform feedback wording, never scores.
	Strengths  []string
	Weaknesses []string

	// Model is the model that produced this output, when known.
	Model string

	// Raw is the unmodified provider payload, kept so records can
	// carry a content hash of exactly what the assessor said.
	Raw json.RawMessage
}

// For returns the judgment for a component. ok is false when the
// assessor produced nothing usable for it, in which case the scorer
// falls back to textual evidence alone.
func (o *Output) For(c rubric.Component) (ComponentAssessment, bool) {
	if o == nil {
		return ComponentAssessment{}, false
	}
	ca, ok := o.Components[c]
	if !ok || !ca.Valid {
		return ComponentAssessment{}, false
	}
	return ca, true
}

// Ref returns the sha256 hex digest of the raw payload, or "" when
// there is no payload. Stored on records to pin which assessor output
// a score was computed from.
func (o *Output) Ref() string {
	if o == nil || len(o.Raw) == 0 {
		return ""
	}
	sum := sha256.Sum256(o.Raw)
	return hex.EncodeToString(sum[:])
}

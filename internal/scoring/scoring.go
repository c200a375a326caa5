// Package scoring turns extracted textual signals and an optional
// assessor judgment into integer component scores and the aggregate.
//
// The textual evidence tier selects the band; the assessor's judgment
// only positions the score inside it. A score can therefore never cross
// a band boundary on the assessor's say-so, and a missing or degraded
// assessor degrades to a conservative position near the bottom of the
// band rather than failing the analysis.
package scoring

import (
	"fmt"
	"math"

	"github.com/claimkit/nexusgrade/internal/assessor"
	"github.com/claimkit/nexusgrade/internal/extract"
	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
)

// fallbackEndorsement positions a score in the lower quarter of its band
// when the assessor has no usable judgment for the component. Under the
// default bands this yields 20/10/2 for strong/weak/absent evidence.
const fallbackEndorsement = 0.25

// ComponentScore is the scored result for one rubric component.
type ComponentScore struct {
	Component rubric.Component `json:"component"`
	Value     int              `json:"value"`
	Strength  rubric.Strength  `json:"strength"`
	Evidence  []extract.Hit    `json:"evidence,omitempty"`

	// AssessorUsed reports whether an assessor judgment positioned this
	// score, as opposed to the textual-evidence fallback.
	AssessorUsed bool `json:"assessor_used"`
}

// InvariantError reports a violated scoring contract. It indicates a
// bug, not bad input.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "scoring invariant violated: " + e.Msg
}

// Scorer computes component scores against a ruleset's band table.
type Scorer struct {
	bands ruleset.Bands
}

// New creates a Scorer for the given rule pack.
func New(rs *ruleset.RuleSet) *Scorer {
	return &Scorer{bands: rs.Bands}
}

// Score computes all component scores in canonical rubric order.
// out may be nil; every component then takes the textual fallback.
func (s *Scorer) Score(signals extract.Signals, out *assessor.Output) []ComponentScore {
	scores := make([]ComponentScore, 0, len(rubric.Components()))
	for _, c := range rubric.Components() {
		sig, ok := signals[c]
		if !ok {
			sig = extract.Signal{Component: c, Strength: rubric.StrengthAbsent}
		}
		scores = append(scores, s.scoreOne(sig, out))
	}
	return scores
}

func (s *Scorer) scoreOne(sig extract.Signal, out *assessor.Output) ComponentScore {
	band := s.bands.For(sig.Strength)

	endorsement := fallbackEndorsement
	used := false
	if ca, ok := out.For(sig.Component); ok {
		used = true
		if ca.Present {
			endorsement = 0.5 + ca.Confidence/2
		} else {
			endorsement = 0.5 - ca.Confidence/2
		}
	}

	value := band.Floor + int(math.Round(float64(band.Span())*endorsement))

	return ComponentScore{
		Component:    sig.Component,
		Value:        value,
		Strength:     sig.Strength,
		Evidence:     sig.Hits,
		AssessorUsed: used,
	}
}

// Aggregate sums component scores into the 0-100 aggregate. The sum is
// the whole story: no weighting, no normalization. Returns an
// InvariantError when the slice does not hold exactly one in-range
// score per rubric component.
func Aggregate(scores []ComponentScore) (int, error) {
	if len(scores) != len(rubric.Components()) {
		return 0, &InvariantError{Msg: fmt.Sprintf("expected %d component scores, got %d", len(rubric.Components()), len(scores))}
	}

	seen := make(map[rubric.Component]bool, len(scores))
	total := 0
	for _, cs := range scores {
		if !cs.Component.Valid() {
			return 0, &InvariantError{Msg: fmt.Sprintf("unknown component %q", cs.Component)}
		}
		if seen[cs.Component] {
			return 0, &InvariantError{Msg: fmt.Sprintf("duplicate component %s", cs.Component)}
		}
		seen[cs.Component] = true

		if cs.Value < rubric.ComponentMin || cs.Value > rubric.ComponentMax {
			return 0, &InvariantError{Msg: fmt.Sprintf("component %s score %d outside [%d,%d]", cs.Component, cs.Value, rubric.ComponentMin, rubric.ComponentMax)}
		}
		total += cs.Value
	}

	return total, nil
}

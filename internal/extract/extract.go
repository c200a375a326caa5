// Package extract runs the rule pack's textual patterns over
// normalized letter text and reduces the matches to one signal per
// rubric component. It is a pure function of its inputs: no network,
// no clock, no shared state.
package extract

import (
	"regexp"

	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Hit records a single rule match, kept for audit and feedback.
type Hit struct {
	RuleID   string          `json:"rule_id"`
	Strength rubric.Strength `json:"strength"`
	Excerpt  string          `json:"excerpt"`
	Note     string          `json:"note,omitempty"`
}

// Signal is the extractor's verdict for one component. The strength is
// the maximum tier over all hits; multiple hits never compound beyond
// the strongest one. No hits at all is the absent signal, which is a
// deficiency marker consumed by feedback generation, not an error.
type Signal struct {
	Component rubric.Component `json:"component"`
	Strength  rubric.Strength  `json:"strength"`
	Hits      []Hit            `json:"hits,omitempty"`
}

// Signals holds one Signal per rubric component, always all four.
type Signals map[rubric.Component]Signal

// Extractor evaluates a compiled rule pack against letter text.
type Extractor struct {
	rules *ruleset.RuleSet
}

// New returns an Extractor over the given rule pack.
func New(rs *ruleset.RuleSet) *Extractor {
	return &Extractor{rules: rs}
}

// Extract evaluates every rule against text and folds the hits into
// per-component signals. Hits keep the rule pack's document order, so
// identical input always produces an identical result. Whitespace runs
// are collapsed before matching, so a phrase broken across lines by
// wrapping or OCR still matches its pattern.
func (e *Extractor) Extract(text string) Signals {
	text = whitespaceRun.ReplaceAllString(text, " ")

	signals := make(Signals, len(rubric.Components()))
	for _, c := range rubric.Components() {
		signals[c] = Signal{Component: c, Strength: rubric.StrengthAbsent}
	}

	for _, r := range e.rules.Rules {
		excerpt, ok := r.Match(text)
		if !ok {
			continue
		}
		sig := signals[r.Component]
		sig.Strength = rubric.Max(sig.Strength, r.Strength)
		sig.Hits = append(sig.Hits, Hit{
			RuleID:   r.ID,
			Strength: r.Strength,
			Excerpt:  excerpt,
			Note:     r.Note,
		})
		signals[r.Component] = sig
	}

	return signals
}

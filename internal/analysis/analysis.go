// Package analysis runs the scoring pipeline end to end for one letter
// and assembles the result into a Record.
package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/claimkit/nexusgrade/internal/assessor"
	"github.com/claimkit/nexusgrade/internal/extract"
	"github.com/claimkit/nexusgrade/internal/letter"
	"github.com/claimkit/nexusgrade/internal/recommend"
	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
	"github.com/claimkit/nexusgrade/internal/scoring"
)

// EngineVersion identifies the scoring engine revision stamped on every
// record. Bump it when scoring semantics change, so stored records can
// be told apart from reanalyses.
const EngineVersion = "0.1.0"

// Record is the complete result of one analysis. It carries no
// timestamps and no generated identifiers, only content: analyzing the
// same letter with the same rule pack and the same assessor output
// yields a byte-identical record. Run metadata lives in the store, not
// here.
type Record struct {
	Fingerprint    string                   `json:"fingerprint"`
	RulesetVersion string                   `json:"ruleset_version"`
	EngineVersion  string                   `json:"engine_version"`
	Components     []scoring.ComponentScore `json:"components"`
	Aggregate      int                      `json:"aggregate"`
	Category       recommend.Category       `json:"category"`
	Suggestions    []recommend.Suggestion   `json:"suggestions"`
	AssessorModel  string                   `json:"assessor_model,omitempty"`
	AssessorRef    string                   `json:"assessor_ref,omitempty"`

	// Degraded lists the conditions under which this analysis ran with
	// less than full assessor input. Empty for a clean run.
	Degraded []string `json:"degraded,omitempty"`
}

// AsMap renders the record as a generic JSON map, the shape the store
// persists.
func (r *Record) AsMap() (map[string]any, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return m, nil
}

// Analyzer is the single entry point for scoring letters.
type Analyzer struct {
	// Limits bound raw letter text accepted by AnalyzeText. Defaults to
	// letter.DefaultLimits; zero values disable the bounds.
	Limits letter.Limits

	rs        *ruleset.RuleSet
	extractor *extract.Extractor
	scorer    *scoring.Scorer
}

// New creates an Analyzer over the given rule pack.
func New(rs *ruleset.RuleSet) *Analyzer {
	return &Analyzer{
		Limits:    letter.DefaultLimits(),
		rs:        rs,
		extractor: extract.New(rs),
		scorer:    scoring.New(rs),
	}
}

// AnalyzeText validates and normalizes raw letter text, then analyzes
// it. Validation failures surface the letter sentinel errors unchanged.
func (a *Analyzer) AnalyzeText(raw string, out *assessor.Output) (*Record, error) {
	let, err := letter.New(raw, a.Limits)
	if err != nil {
		return nil, err
	}
	return a.Analyze(let, out)
}

// Analyze scores a prepared letter. out may be nil when no assessor ran;
// every component then takes its textual-evidence fallback and the
// record says so in Degraded.
func (a *Analyzer) Analyze(let letter.Letter, out *assessor.Output) (*Record, error) {
	signals := a.extractor.Extract(let.Text)
	scores := a.scorer.Score(signals, out)

	aggregate, err := scoring.Aggregate(scores)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Fingerprint:    let.Fingerprint,
		RulesetVersion: a.rs.Version,
		EngineVersion:  EngineVersion,
		Components:     scores,
		Aggregate:      aggregate,
		Category:       recommend.Categorize(aggregate),
		Suggestions:    recommend.Suggest(scores, a.rs.Feedback),
		Degraded:       degradedConditions(out),
	}
	if out != nil {
		rec.AssessorModel = out.Model
		rec.AssessorRef = out.Ref()
	}

	return rec, nil
}

// degradedConditions describes what assessor input was missing, in
// canonical component order so records stay deterministic.
func degradedConditions(out *assessor.Output) []string {
	if out == nil {
		return []string{"no assessor output; components scored on textual evidence alone"}
	}

	var conditions []string
	for _, c := range rubric.Components() {
		if _, ok := out.For(c); !ok {
			conditions = append(conditions, fmt.Sprintf("no usable assessor judgment for %s", c))
		}
	}
	return conditions
}

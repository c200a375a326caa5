// Package ruleset loads and validates versioned rule packs: the
// textual patterns the feature extractor runs, the point bands each
// strength tier maps to, and the feedback template text keyed by
// component deficiency. Packs are YAML documents; a default pack is
// embedded in the binary and can be overridden from disk.
package ruleset

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/claimkit/nexusgrade/internal/rubric"
)

// excerptLimit caps rule-hit evidence carried into scores and records.
const excerptLimit = 80

type document struct {
	Version  string                  `yaml:"version"`
	Bands    map[string]bandDoc      `yaml:"bands"`
	Rules    []ruleDoc               `yaml:"rules"`
	Feedback map[string]templatesDoc `yaml:"feedback"`
}

type bandDoc struct {
	Floor   int `yaml:"floor"`
	Ceiling int `yaml:"ceiling"`
}

type ruleDoc struct {
	ID        string `yaml:"id"`
	Component string `yaml:"component"`
	Strength  string `yaml:"strength"`
	Pattern   string `yaml:"pattern"` // regex, compiled case-insensitive
	Note      string `yaml:"note"`
}

type templatesDoc struct {
	Missing string `yaml:"missing"`
	Weak    string `yaml:"weak"`
	Strong  string `yaml:"strong"`
}

// Band is the inclusive point range a strength tier scores within.
type Band struct {
	Floor   int
	Ceiling int
}

// Span returns the width of the band in points.
func (b Band) Span() int { return b.Ceiling - b.Floor }

// Bands maps each strength tier to its point band.
type Bands map[rubric.Strength]Band

// For returns the band for a strength tier.
func (b Bands) For(s rubric.Strength) Band { return b[s] }

// Templates holds the feedback text for one component, keyed by the
// deficiency level the recommendation engine selects on.
type Templates struct {
	Missing string
	Weak    string
	Strong  string
}

// Feedback maps each component to its feedback templates.
type Feedback map[rubric.Component]Templates

// For returns the templates for a component.
func (f Feedback) For(c rubric.Component) Templates { return f[c] }

// Rule is one compiled textual pattern.
type Rule struct {
	ID        string
	Component rubric.Component
	Strength  rubric.Strength
	Pattern   string
	Note      string

	re *regexp.Regexp
}

// Match reports whether the rule's pattern occurs in text, returning
// the first matching excerpt (trimmed for evidence display).
func (r Rule) Match(text string) (string, bool) {
	m := r.re.FindString(text)
	if m == "" {
		return "", false
	}
	return excerpt(m), true
}

// RuleSet is a validated, compiled rule pack.
type RuleSet struct {
	Version  string
	Bands    Bands
	Rules    []Rule
	Feedback Feedback
}

// Load reads and parses a rule pack from disk.
func Load(path string) (*RuleSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	rs, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("rule pack %s: %w", path, err)
	}
	return rs, nil
}

// Parse unmarshals, validates, and compiles a YAML rule pack.
func Parse(data []byte) (*RuleSet, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("version %q is not valid semver (want e.g. v1.0.0)", doc.Version)
	}

	bands, err := buildBands(doc.Bands)
	if err != nil {
		return nil, err
	}

	rules, err := compileRules(doc.Rules)
	if err != nil {
		return nil, err
	}

	feedback, err := buildFeedback(doc.Feedback)
	if err != nil {
		return nil, err
	}

	return &RuleSet{
		Version:  doc.Version,
		Bands:    bands,
		Rules:    rules,
		Feedback: feedback,
	}, nil
}

func buildBands(docs map[string]bandDoc) (Bands, error) {
	bands := make(Bands, len(rubric.Strengths()))
	for _, s := range rubric.Strengths() {
		d, ok := docs[string(s)]
		if !ok {
			return nil, fmt.Errorf("bands: missing tier %q", s)
		}
		if d.Floor < rubric.ComponentMin || d.Ceiling > rubric.ComponentMax || d.Floor > d.Ceiling {
			return nil, fmt.Errorf("bands: tier %q range [%d,%d] outside [%d,%d]",
				s, d.Floor, d.Ceiling, rubric.ComponentMin, rubric.ComponentMax)
		}
		bands[s] = Band{Floor: d.Floor, Ceiling: d.Ceiling}
	}
	for k := range docs {
		if !rubric.Strength(k).Valid() {
			return nil, fmt.Errorf("bands: unknown tier %q", k)
		}
	}
	// Tiers must ascend without overlap so a score always identifies
	// its tier.
	tiers := rubric.Strengths()
	for i := 1; i < len(tiers); i++ {
		lo, hi := bands[tiers[i-1]], bands[tiers[i]]
		if lo.Ceiling >= hi.Floor {
			return nil, fmt.Errorf("bands: tier %q [%d,%d] overlaps tier %q [%d,%d]",
				tiers[i-1], lo.Floor, lo.Ceiling, tiers[i], hi.Floor, hi.Ceiling)
		}
	}
	return bands, nil
}

func compileRules(docs []ruleDoc) ([]Rule, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("rules: pack contains no rules")
	}
	seen := make(map[string]bool, len(docs))
	rules := make([]Rule, 0, len(docs))
	for _, d := range docs {
		if d.ID == "" {
			return nil, fmt.Errorf("rules: rule with empty id")
		}
		if seen[d.ID] {
			return nil, fmt.Errorf("rules: duplicate id %q", d.ID)
		}
		seen[d.ID] = true

		c := rubric.Component(d.Component)
		if !c.Valid() {
			return nil, fmt.Errorf("rule %q: unknown component %q", d.ID, d.Component)
		}
		s := rubric.Strength(d.Strength)
		if !s.Valid() || s == rubric.StrengthAbsent {
			return nil, fmt.Errorf("rule %q: strength must be weak or strong, got %q", d.ID, d.Strength)
		}
		if d.Pattern == "" {
			return nil, fmt.Errorf("rule %q: empty pattern", d.ID)
		}
		re, err := regexp.Compile("(?i)" + d.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %q: compile pattern: %w", d.ID, err)
		}
		rules = append(rules, Rule{
			ID:        d.ID,
			Component: c,
			Strength:  s,
			Pattern:   d.Pattern,
			Note:      d.Note,
			re:        re,
		})
	}
	return rules, nil
}

func buildFeedback(docs map[string]templatesDoc) (Feedback, error) {
	fb := make(Feedback, len(rubric.Components()))
	for _, c := range rubric.Components() {
		d, ok := docs[string(c)]
		if !ok {
			return nil, fmt.Errorf("feedback: missing component %q", c)
		}
		if d.Missing == "" || d.Weak == "" || d.Strong == "" {
			return nil, fmt.Errorf("feedback: component %q must define missing, weak, and strong text", c)
		}
		fb[c] = Templates{Missing: d.Missing, Weak: d.Weak, Strong: d.Strong}
	}
	for k := range docs {
		if !rubric.Component(k).Valid() {
			return nil, fmt.Errorf("feedback: unknown component %q", k)
		}
	}
	return fb, nil
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= excerptLimit {
		return s
	}
	return string(runes[:excerptLimit]) + "..."
}

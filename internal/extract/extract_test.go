package extract

import (
	"reflect"
	"testing"

	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
)

const testPack = `
version: v0.0.1
bands:
  absent: {floor: 0, ceiling: 7}
  weak: {floor: 8, ceiling: 17}
  strong: {floor: 18, ceiling: 25}
rules:
  - id: MO-STRONG
    component: medical_opinion
    strength: strong
    pattern: 'at least as likely as not'
  - id: MO-WEAK
    component: medical_opinion
    strength: weak
    pattern: 'my opinion'
  - id: SC-WEAK
    component: service_connection
    strength: weak
    pattern: 'active duty'
feedback:
  medical_opinion: {missing: m, weak: w, strong: s}
  service_connection: {missing: m, weak: w, strong: s}
  medical_rationale: {missing: m, weak: w, strong: s}
  professional_format: {missing: m, weak: w, strong: s}
`

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	rs, err := ruleset.Parse([]byte(testPack))
	if err != nil {
		t.Fatalf("parse test pack: %v", err)
	}
	return New(rs)
}

func TestExtractCoversAllComponents(t *testing.T) {
	e := testExtractor(t)
	signals := e.Extract("nothing relevant here")

	if len(signals) != 4 {
		t.Fatalf("got %d signals, want 4", len(signals))
	}
	for _, c := range rubric.Components() {
		sig, ok := signals[c]
		if !ok {
			t.Errorf("missing signal for component %s", c)
			continue
		}
		if sig.Strength != rubric.StrengthAbsent {
			t.Errorf("component %s strength = %s, want absent", c, sig.Strength)
		}
		if len(sig.Hits) != 0 {
			t.Errorf("component %s has %d hits, want 0", c, len(sig.Hits))
		}
	}
}

func TestExtractStrongestTierWins(t *testing.T) {
	e := testExtractor(t)
	text := "In my opinion it is at least as likely as not that the condition is service related."
	signals := e.Extract(text)

	mo := signals[rubric.MedicalOpinion]
	if mo.Strength != rubric.StrengthStrong {
		t.Errorf("medical opinion strength = %s, want strong", mo.Strength)
	}
	if len(mo.Hits) != 2 {
		t.Fatalf("medical opinion hits = %d, want 2", len(mo.Hits))
	}
	// Pack order, not match position, orders hits.
	if mo.Hits[0].RuleID != "MO-STRONG" || mo.Hits[1].RuleID != "MO-WEAK" {
		t.Errorf("hit order = %s, %s; want MO-STRONG, MO-WEAK", mo.Hits[0].RuleID, mo.Hits[1].RuleID)
	}
}

func TestExtractWeakOnly(t *testing.T) {
	e := testExtractor(t)
	signals := e.Extract("He injured his knee on active duty.")

	sc := signals[rubric.ServiceConnection]
	if sc.Strength != rubric.StrengthWeak {
		t.Errorf("service connection strength = %s, want weak", sc.Strength)
	}
	if len(sc.Hits) != 1 || sc.Hits[0].RuleID != "SC-WEAK" {
		t.Errorf("unexpected hits: %+v", sc.Hits)
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	e := testExtractor(t)
	signals := e.Extract("IT IS AT LEAST AS LIKELY AS NOT.")

	if got := signals[rubric.MedicalOpinion].Strength; got != rubric.StrengthStrong {
		t.Errorf("strength = %s, want strong", got)
	}
}

func TestExtractToleratesLineBreaks(t *testing.T) {
	e := testExtractor(t)
	signals := e.Extract("the condition is at least as\nlikely   as not related to his\n\nactive  duty")

	if got := signals[rubric.MedicalOpinion].Strength; got != rubric.StrengthStrong {
		t.Errorf("medical opinion strength = %s, want strong", got)
	}
	if got := signals[rubric.ServiceConnection].Strength; got != rubric.StrengthWeak {
		t.Errorf("service connection strength = %s, want weak", got)
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := testExtractor(t)
	text := "In my opinion, at least as likely as not, during active duty."

	a := e.Extract(text)
	b := e.Extract(text)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated extraction differs:\n%+v\n%+v", a, b)
	}
}

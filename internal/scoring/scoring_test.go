package scoring

import (
	"errors"
	"testing"

	"github.com/claimkit/nexusgrade/internal/assessor"
	"github.com/claimkit/nexusgrade/internal/extract"
	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
)

func testScorer(t *testing.T) *Scorer {
	t.Helper()
	return New(ruleset.Default())
}

func signalsWith(strengths map[rubric.Component]rubric.Strength) extract.Signals {
	sigs := make(extract.Signals, len(rubric.Components()))
	for _, c := range rubric.Components() {
		s, ok := strengths[c]
		if !ok {
			s = rubric.StrengthAbsent
		}
		sigs[c] = extract.Signal{Component: c, Strength: s}
	}
	return sigs
}

func outputWith(judgments map[rubric.Component]assessor.ComponentAssessment) *assessor.Output {
	out := &assessor.Output{Components: make(map[rubric.Component]assessor.ComponentAssessment)}
	for c, ca := range judgments {
		ca.Valid = true
		out.Components[c] = ca
	}
	return out
}

func scoreFor(t *testing.T, scores []ComponentScore, c rubric.Component) ComponentScore {
	t.Helper()
	for _, cs := range scores {
		if cs.Component == c {
			return cs
		}
	}
	t.Fatalf("no score for component %s", c)
	return ComponentScore{}
}

func TestScore_BandAndNudge(t *testing.T) {
	tests := []struct {
		name      string
		strength  rubric.Strength
		judgment  *assessor.ComponentAssessment
		wantValue int
	}{
		{"strong evidence, confident endorsement", rubric.StrengthStrong, &assessor.ComponentAssessment{Present: true, Confidence: 1.0}, 25},
		{"strong evidence, confident contradiction", rubric.StrengthStrong, &assessor.ComponentAssessment{Present: false, Confidence: 1.0}, 18},
		{"strong evidence, uncertain endorsement", rubric.StrengthStrong, &assessor.ComponentAssessment{Present: true, Confidence: 0.0}, 22},
		{"strong evidence, no judgment", rubric.StrengthStrong, nil, 20},
		{"weak evidence, confident endorsement", rubric.StrengthWeak, &assessor.ComponentAssessment{Present: true, Confidence: 1.0}, 17},
		{"weak evidence, no judgment", rubric.StrengthWeak, nil, 10},
		{"absent evidence, no judgment", rubric.StrengthAbsent, nil, 2},
		{"absent evidence, mild contradiction", rubric.StrengthAbsent, &assessor.ComponentAssessment{Present: false, Confidence: 0.2}, 3},
		{"absent evidence, confident contradiction", rubric.StrengthAbsent, &assessor.ComponentAssessment{Present: false, Confidence: 1.0}, 0},
	}

	s := testScorer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sigs := signalsWith(map[rubric.Component]rubric.Strength{rubric.MedicalOpinion: tt.strength})

			var out *assessor.Output
			if tt.judgment != nil {
				out = outputWith(map[rubric.Component]assessor.ComponentAssessment{rubric.MedicalOpinion: *tt.judgment})
			}

			scores := s.Score(sigs, out)
			got := scoreFor(t, scores, rubric.MedicalOpinion)

			if got.Value != tt.wantValue {
				t.Errorf("value = %d, want %d", got.Value, tt.wantValue)
			}
			if got.Strength != tt.strength {
				t.Errorf("strength = %q, want %q", got.Strength, tt.strength)
			}
			if got.AssessorUsed != (tt.judgment != nil) {
				t.Errorf("assessor_used = %v, want %v", got.AssessorUsed, tt.judgment != nil)
			}
		})
	}
}

func TestScore_NeverLeavesBand(t *testing.T) {
	s := testScorer(t)
	rs := ruleset.Default()

	for _, strength := range rubric.Strengths() {
		band := rs.Bands.For(strength)
		sigs := signalsWith(map[rubric.Component]rubric.Strength{rubric.MedicalRationale: strength})

		for _, present := range []bool{true, false} {
			for c := 0.0; c <= 1.0; c += 0.05 {
				out := outputWith(map[rubric.Component]assessor.ComponentAssessment{
					rubric.MedicalRationale: {Present: present, Confidence: c},
				})
				got := scoreFor(t, s.Score(sigs, out), rubric.MedicalRationale)
				if got.Value < band.Floor || got.Value > band.Ceiling {
					t.Fatalf("strength %s present=%v confidence=%.2f: value %d escaped band [%d,%d]",
						strength, present, c, got.Value, band.Floor, band.Ceiling)
				}
			}
		}
	}
}

func TestScore_CanonicalOrder(t *testing.T) {
	s := testScorer(t)
	scores := s.Score(signalsWith(nil), nil)

	want := rubric.Components()
	if len(scores) != len(want) {
		t.Fatalf("expected %d scores, got %d", len(want), len(scores))
	}
	for i, cs := range scores {
		if cs.Component != want[i] {
			t.Errorf("position %d: component = %s, want %s", i, cs.Component, want[i])
		}
	}
}

func TestScore_NilOutputFallsBack(t *testing.T) {
	s := testScorer(t)
	sigs := signalsWith(map[rubric.Component]rubric.Strength{
		rubric.MedicalOpinion:     rubric.StrengthStrong,
		rubric.ServiceConnection:  rubric.StrengthWeak,
		rubric.MedicalRationale:   rubric.StrengthAbsent,
		rubric.ProfessionalFormat: rubric.StrengthStrong,
	})

	scores := s.Score(sigs, nil)

	want := map[rubric.Component]int{
		rubric.MedicalOpinion:     20,
		rubric.ServiceConnection:  10,
		rubric.MedicalRationale:   2,
		rubric.ProfessionalFormat: 20,
	}
	for c, wantValue := range want {
		got := scoreFor(t, scores, c)
		if got.Value != wantValue {
			t.Errorf("%s = %d, want %d", c, got.Value, wantValue)
		}
		if got.AssessorUsed {
			t.Errorf("%s: assessor_used should be false without an output", c)
		}
	}
}

func TestScore_EvidenceCarriedThrough(t *testing.T) {
	s := testScorer(t)
	hit := extract.Hit{RuleID: "MO-OPINION-STATEMENT", Strength: rubric.StrengthWeak, Excerpt: "it is my opinion"}
	sigs := signalsWith(map[rubric.Component]rubric.Strength{rubric.MedicalOpinion: rubric.StrengthStrong})
	sig := sigs[rubric.MedicalOpinion]
	sig.Hits = []extract.Hit{hit}
	sigs[rubric.MedicalOpinion] = sig

	got := scoreFor(t, s.Score(sigs, nil), rubric.MedicalOpinion)
	if len(got.Evidence) != 1 || got.Evidence[0].RuleID != "MO-OPINION-STATEMENT" {
		t.Errorf("evidence = %+v, want the extractor hit carried through", got.Evidence)
	}
}

func TestAggregate_Sums(t *testing.T) {
	scores := []ComponentScore{
		{Component: rubric.MedicalOpinion, Value: 25},
		{Component: rubric.ServiceConnection, Value: 25},
		{Component: rubric.MedicalRationale, Value: 17},
		{Component: rubric.ProfessionalFormat, Value: 3},
	}

	got, err := Aggregate(scores)
	if err != nil {
		t.Fatalf("Aggregate failed: %v", err)
	}
	if got != 70 {
		t.Errorf("aggregate = %d, want 70", got)
	}
}

func TestAggregate_Invariants(t *testing.T) {
	valid := func() []ComponentScore {
		return []ComponentScore{
			{Component: rubric.MedicalOpinion, Value: 10},
			{Component: rubric.ServiceConnection, Value: 10},
			{Component: rubric.MedicalRationale, Value: 10},
			{Component: rubric.ProfessionalFormat, Value: 10},
		}
	}

	tests := []struct {
		name   string
		mutate func([]ComponentScore) []ComponentScore
	}{
		{"missing component", func(s []ComponentScore) []ComponentScore { return s[:3] }},
		{"duplicate component", func(s []ComponentScore) []ComponentScore {
			s[1].Component = rubric.MedicalOpinion
			return s
		}},
		{"unknown component", func(s []ComponentScore) []ComponentScore {
			s[0].Component = "penmanship"
			return s
		}},
		{"value above max", func(s []ComponentScore) []ComponentScore {
			s[2].Value = 26
			return s
		}},
		{"negative value", func(s []ComponentScore) []ComponentScore {
			s[3].Value = -1
			return s
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.mutate(valid()))
			if err == nil {
				t.Fatal("expected an invariant error")
			}
			var inv *InvariantError
			if !errors.As(err, &inv) {
				t.Fatalf("expected InvariantError, got %T", err)
			}
		})
	}
}

func TestAggregate_FullRange(t *testing.T) {
	maxed := []ComponentScore{
		{Component: rubric.MedicalOpinion, Value: 25},
		{Component: rubric.ServiceConnection, Value: 25},
		{Component: rubric.MedicalRationale, Value: 25},
		{Component: rubric.ProfessionalFormat, Value: 25},
	}
	if got, _ := Aggregate(maxed); got != 100 {
		t.Errorf("max aggregate = %d, want 100", got)
	}

	zeroed := []ComponentScore{
		{Component: rubric.MedicalOpinion},
		{Component: rubric.ServiceConnection},
		{Component: rubric.MedicalRationale},
		{Component: rubric.ProfessionalFormat},
	}
	if got, _ := Aggregate(zeroed); got != 0 {
		t.Errorf("min aggregate = %d, want 0", got)
	}
}

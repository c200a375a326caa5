package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/claimkit/nexusgrade/internal/assessor"
	"github.com/claimkit/nexusgrade/internal/letter"
	"github.com/claimkit/nexusgrade/internal/recommend"
	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
)

const strongLetter = `To Whom It May Concern:

I am writing regarding the veteran's claim for service connection for chronic lumbar strain. I am board-certified in orthopedic surgery and have treated the veteran since 2019. I have completed a review of the service treatment records and the claims file.

It is my professional opinion that the veteran's chronic lumbar strain is at least as likely as not the result of the parachute landing injury incurred during active duty in 2011. The mechanism of injury is well documented: axial compression of the lumbar spine during parachute landings, an association reported in peer-reviewed studies. Symptoms began in service and have persisted since separation. I considered alternative causes, including post-service trauma, and ruled out each of them.

Sincerely,

Jane Roe, M.D.
Board-Certified, Orthopedic Surgery`

const weakLetter = `Dear Rating Officer:

I have been treating this patient for ongoing back pain for the past two years. The back pain may be related to an injury from their deployment. Symptoms began around 2015 and have continued intermittently since then. Please contact my office with any questions.

Sincerely,

J. Smith`

// boundaryLetter is built to score exactly 70 with boundaryAssessment:
// strong opinion and nexus language, only a symptom timeline for
// rationale, and no professional formatting at all.
const boundaryLetter = `I am writing in support of the veteran's claim. In my professional opinion, the veteran's tinnitus is at least as likely as not caused by acoustic trauma incurred during active duty. Symptoms began in service and have persisted to the present day. The veteran remains under my care for this condition.`

const fullEndorsement = `{
	"medical_opinion":     {"present": true, "confidence": 0.9},
	"service_connection":  {"present": true, "confidence": 0.9},
	"medical_rationale":   {"present": true, "confidence": 0.9},
	"professional_format": {"present": true, "confidence": 0.9},
	"strengths": ["calibrated opinion", "explicit nexus"],
	"weaknesses": []
}`

const boundaryAssessment = `{
	"medical_opinion":     {"present": true,  "confidence": 1.0},
	"service_connection":  {"present": true,  "confidence": 1.0},
	"medical_rationale":   {"present": true,  "confidence": 1.0},
	"professional_format": {"present": false, "confidence": 0.2},
	"strengths": [],
	"weaknesses": ["no credentials or signature"]
}`

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	return New(ruleset.Default())
}

func parsedOutput(t *testing.T, payload string) *assessor.Output {
	t.Helper()
	out, problems := assessor.ParseOutput([]byte(payload))
	if len(problems) != 0 {
		t.Fatalf("test payload should parse cleanly, got problems: %v", problems)
	}
	out.Model = "mock"
	return out
}

func TestAnalyze_StrongLetter(t *testing.T) {
	a := testAnalyzer(t)
	out := parsedOutput(t, fullEndorsement)

	rec, err := a.AnalyzeText(strongLetter, out)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if rec.Category != recommend.AutoApprove {
		t.Errorf("category = %q, want %q (aggregate %d)", rec.Category, recommend.AutoApprove, rec.Aggregate)
	}
	if rec.Aggregate < 85 {
		t.Errorf("aggregate = %d, want >= 85", rec.Aggregate)
	}
	for _, cs := range rec.Components {
		if cs.Strength != rubric.StrengthStrong {
			t.Errorf("%s: strength = %q, want strong", cs.Component, cs.Strength)
		}
		if len(cs.Evidence) == 0 {
			t.Errorf("%s: expected textual evidence", cs.Component)
		}
	}
	if len(rec.Degraded) != 0 {
		t.Errorf("degraded = %v, want none", rec.Degraded)
	}
	if rec.AssessorModel != "mock" || rec.AssessorRef == "" {
		t.Error("assessor provenance missing from record")
	}
}

func TestAnalyze_WeakLetter(t *testing.T) {
	a := testAnalyzer(t)

	// Even a maximally endorsing assessor cannot lift weak textual
	// evidence past the revision threshold.
	generous, _ := assessor.ParseOutput([]byte(`{
		"medical_opinion":     {"present": true, "confidence": 1.0},
		"service_connection":  {"present": true, "confidence": 1.0},
		"medical_rationale":   {"present": true, "confidence": 1.0},
		"professional_format": {"present": true, "confidence": 1.0},
		"strengths": [], "weaknesses": []
	}`))

	for _, out := range []*assessor.Output{nil, generous} {
		rec, err := a.AnalyzeText(weakLetter, out)
		if err != nil {
			t.Fatalf("AnalyzeText failed: %v", err)
		}
		if rec.Category != recommend.RevisionRequired {
			t.Errorf("category = %q, want %q (aggregate %d)", rec.Category, recommend.RevisionRequired, rec.Aggregate)
		}
		if rec.Aggregate > 69 {
			t.Errorf("aggregate = %d, want <= 69", rec.Aggregate)
		}
	}
}

func TestAnalyze_BoundaryAttorneyReview(t *testing.T) {
	a := testAnalyzer(t)
	out := parsedOutput(t, boundaryAssessment)

	rec, err := a.AnalyzeText(boundaryLetter, out)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if rec.Aggregate != 70 {
		t.Fatalf("aggregate = %d, want exactly 70", rec.Aggregate)
	}
	if rec.Category != recommend.AttorneyReview {
		t.Errorf("category = %q, want %q", rec.Category, recommend.AttorneyReview)
	}

	want := map[rubric.Component]int{
		rubric.MedicalOpinion:     25,
		rubric.ServiceConnection:  25,
		rubric.MedicalRationale:   17,
		rubric.ProfessionalFormat: 3,
	}
	for _, cs := range rec.Components {
		if cs.Value != want[cs.Component] {
			t.Errorf("%s = %d, want %d", cs.Component, cs.Value, want[cs.Component])
		}
	}
}

func TestAnalyze_FallbackWithoutAssessor(t *testing.T) {
	a := testAnalyzer(t)

	rec, err := a.AnalyzeText(strongLetter, nil)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	// Four strong components at the textual fallback position.
	if rec.Aggregate != 80 {
		t.Errorf("aggregate = %d, want 80", rec.Aggregate)
	}
	if rec.Category != recommend.AttorneyReview {
		t.Errorf("category = %q, want %q", rec.Category, recommend.AttorneyReview)
	}
	for _, cs := range rec.Components {
		if cs.AssessorUsed {
			t.Errorf("%s: assessor_used should be false", cs.Component)
		}
	}
	if len(rec.Degraded) != 1 {
		t.Errorf("degraded = %v, want exactly one condition", rec.Degraded)
	}
	if rec.AssessorModel != "" || rec.AssessorRef != "" {
		t.Error("record should carry no assessor provenance")
	}
}

func TestAnalyze_PartialAssessorOutput(t *testing.T) {
	a := testAnalyzer(t)

	partial, _ := assessor.ParseOutput([]byte(`{
		"medical_opinion": {"present": true, "confidence": 0.9},
		"strengths": [], "weaknesses": []
	}`))

	rec, err := a.AnalyzeText(strongLetter, partial)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if len(rec.Degraded) != 3 {
		t.Fatalf("degraded = %v, want three conditions", rec.Degraded)
	}
	for _, cs := range rec.Components {
		wantUsed := cs.Component == rubric.MedicalOpinion
		if cs.AssessorUsed != wantUsed {
			t.Errorf("%s: assessor_used = %v, want %v", cs.Component, cs.AssessorUsed, wantUsed)
		}
	}
}

func TestAnalyze_AggregateIsComponentSum(t *testing.T) {
	a := testAnalyzer(t)

	for _, tc := range []struct {
		name    string
		text    string
		payload string
	}{
		{"strong", strongLetter, fullEndorsement},
		{"weak no assessor", weakLetter, ""},
		{"boundary", boundaryLetter, boundaryAssessment},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out *assessor.Output
			if tc.payload != "" {
				out = parsedOutput(t, tc.payload)
			}
			rec, err := a.AnalyzeText(tc.text, out)
			if err != nil {
				t.Fatalf("AnalyzeText failed: %v", err)
			}
			sum := 0
			for _, cs := range rec.Components {
				sum += cs.Value
			}
			if sum != rec.Aggregate {
				t.Errorf("component sum %d != aggregate %d", sum, rec.Aggregate)
			}
		})
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := testAnalyzer(t)

	run := func() []byte {
		out := parsedOutput(t, fullEndorsement)
		rec, err := a.AnalyzeText(strongLetter, out)
		if err != nil {
			t.Fatalf("AnalyzeText failed: %v", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		return data
	}

	first := run()
	second := run()
	if !bytes.Equal(first, second) {
		t.Errorf("same inputs produced different records:\n%s\n%s", first, second)
	}
}

func TestAnalyze_SuggestionsWorstFirst(t *testing.T) {
	a := testAnalyzer(t)
	out := parsedOutput(t, boundaryAssessment)

	rec, err := a.AnalyzeText(boundaryLetter, out)
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if len(rec.Suggestions) != len(rubric.Components()) {
		t.Fatalf("expected one suggestion per component, got %d", len(rec.Suggestions))
	}
	for i := 1; i < len(rec.Suggestions); i++ {
		if rec.Suggestions[i].Score < rec.Suggestions[i-1].Score {
			t.Fatalf("suggestions not in ascending score order: %+v", rec.Suggestions)
		}
	}
	if rec.Suggestions[0].Component != rubric.ProfessionalFormat {
		t.Errorf("worst suggestion = %s, want professional_format", rec.Suggestions[0].Component)
	}
	if rec.Suggestions[0].Kind != recommend.KindMissing {
		t.Errorf("worst suggestion kind = %q, want missing", rec.Suggestions[0].Kind)
	}
}

func TestAnalyzeText_InvalidInput(t *testing.T) {
	a := testAnalyzer(t)

	if _, err := a.AnalyzeText("", nil); !errors.Is(err, letter.ErrEmpty) {
		t.Errorf("empty text: err = %v, want ErrEmpty", err)
	}
	if _, err := a.AnalyzeText("too short", nil); !errors.Is(err, letter.ErrTooShort) {
		t.Errorf("short text: err = %v, want ErrTooShort", err)
	}
}

func TestRecord_AsMap(t *testing.T) {
	a := testAnalyzer(t)
	rec, err := a.AnalyzeText(strongLetter, parsedOutput(t, fullEndorsement))
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	m, err := rec.AsMap()
	if err != nil {
		t.Fatalf("AsMap failed: %v", err)
	}
	if m["fingerprint"] != rec.Fingerprint {
		t.Error("fingerprint not carried into map")
	}
	if m["category"] != string(rec.Category) {
		t.Error("category not carried into map")
	}
	if _, ok := m["components"].([]any); !ok {
		t.Error("components not carried into map")
	}
}

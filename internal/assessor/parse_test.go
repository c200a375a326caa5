package assessor

import (
	"testing"

	"github.com/claimkit/nexusgrade/internal/rubric"
)

const validPayload = `{
	"medical_opinion":     {"present": true,  "confidence": 0.95},
	"service_connection":  {"present": true,  "confidence": 0.9},
	"medical_rationale":   {"present": false, "confidence": 0.7},
	"professional_format": {"present": true,  "confidence": 0.85},
	"strengths":  ["clear probability statement", "cites service records"],
	"weaknesses": ["no causal mechanism discussed"]
}`

func TestParseOutput_ValidPayload(t *testing.T) {
	out, problems := ParseOutput([]byte(validPayload))

	if len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}

	for _, c := range rubric.Components() {
		if _, ok := out.For(c); !ok {
			t.Errorf("component %s: expected valid judgment", c)
		}
	}

	mo, _ := out.For(rubric.MedicalOpinion)
	if !mo.Present || mo.Confidence != 0.95 {
		t.Errorf("medical_opinion = %+v, want present with confidence 0.95", mo)
	}
	mr, _ := out.For(rubric.MedicalRationale)
	if mr.Present {
		t.Error("medical_rationale should be judged absent")
	}

	if len(out.Strengths) != 2 || len(out.Weaknesses) != 1 {
		t.Errorf("notes = %d strengths / %d weaknesses, want 2/1", len(out.Strengths), len(out.Weaknesses))
	}
	if out.Ref() == "" {
		t.Error("expected non-empty ref for a non-empty payload")
	}
}

func TestParseOutput_EmptyPayload(t *testing.T) {
	out, problems := ParseOutput(nil)

	if out == nil {
		t.Fatal("output must never be nil")
	}
	if len(problems) == 0 {
		t.Error("expected a problem for the empty payload")
	}
	for _, c := range rubric.Components() {
		if _, ok := out.For(c); ok {
			t.Errorf("component %s: expected no judgment", c)
		}
	}
	if out.Ref() != "" {
		t.Errorf("ref = %q, want empty for empty payload", out.Ref())
	}
}

func TestParseOutput_NotJSON(t *testing.T) {
	out, problems := ParseOutput([]byte("the model wrote prose instead"))

	if out == nil {
		t.Fatal("output must never be nil")
	}
	if len(problems) == 0 {
		t.Error("expected problems for a non-JSON payload")
	}
	if len(out.Components) != 0 {
		t.Errorf("expected no judgments, got %d", len(out.Components))
	}
}

func TestParseOutput_SalvagesPartialPayload(t *testing.T) {
	// service_connection has an out-of-range confidence, medical_rationale
	// is missing entirely, strengths mixes types. The two sound judgments
	// must survive.
	payload := `{
		"medical_opinion":     {"present": true, "confidence": 0.9},
		"service_connection":  {"present": true, "confidence": 3.5},
		"professional_format": {"present": false, "confidence": 0.6},
		"strengths":  ["signed by physician", 42, {"not": "a string"}],
		"weaknesses": []
	}`

	out, problems := ParseOutput([]byte(payload))

	if len(problems) == 0 {
		t.Fatal("expected problems for the degraded payload")
	}

	if _, ok := out.For(rubric.MedicalOpinion); !ok {
		t.Error("medical_opinion judgment should survive salvage")
	}
	if _, ok := out.For(rubric.ProfessionalFormat); !ok {
		t.Error("professional_format judgment should survive salvage")
	}
	if _, ok := out.For(rubric.ServiceConnection); ok {
		t.Error("service_connection judgment should be rejected (confidence out of range)")
	}
	if _, ok := out.For(rubric.MedicalRationale); ok {
		t.Error("medical_rationale judgment should be absent")
	}

	if len(out.Strengths) != 1 || out.Strengths[0] != "signed by physician" {
		t.Errorf("strengths = %v, want only the string element", out.Strengths)
	}
}

func TestParseOutput_PresentNotBoolean(t *testing.T) {
	payload := `{
		"medical_opinion": {"present": "yes", "confidence": 0.9}
	}`

	out, problems := ParseOutput([]byte(payload))

	if _, ok := out.For(rubric.MedicalOpinion); ok {
		t.Error("non-boolean present should invalidate the judgment")
	}
	if len(problems) == 0 {
		t.Error("expected problems")
	}
}

func TestOutput_RefIsStable(t *testing.T) {
	out1, _ := ParseOutput([]byte(validPayload))
	out2, _ := ParseOutput([]byte(validPayload))

	if out1.Ref() != out2.Ref() {
		t.Errorf("same payload produced different refs: %q vs %q", out1.Ref(), out2.Ref())
	}

	other, _ := ParseOutput([]byte(`{"medical_opinion":{"present":false,"confidence":0.5}}`))
	if other.Ref() == out1.Ref() {
		t.Error("different payloads produced the same ref")
	}
}

func TestOutput_ForOnNil(t *testing.T) {
	var out *Output
	if _, ok := out.For(rubric.MedicalOpinion); ok {
		t.Error("nil output must report no judgment")
	}
	if out.Ref() != "" {
		t.Error("nil output must have an empty ref")
	}
}

package assessor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/claimkit/nexusgrade/internal/llm"
	"github.com/claimkit/nexusgrade/internal/rubric"
)

func TestLLM_Assess(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validPayload)},
	)
	a := NewLLM(mock, DefaultConfig())

	out, err := a.Assess(context.Background(), "Letter text under review.")
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}

	for _, c := range rubric.Components() {
		if _, ok := out.For(c); !ok {
			t.Errorf("component %s: expected valid judgment", c)
		}
	}
	if out.Model != "mock" {
		t.Errorf("model = %q, want mock", out.Model)
	}
	if out.Ref() == "" {
		t.Error("expected non-empty assessor ref")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.System == "" {
		t.Error("request should carry the system prompt")
	}
	if req.Schema != AssessmentSchema {
		t.Error("request should carry the assessment schema")
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Letter text under review.") {
		t.Error("user message should contain the letter text")
	}
}

func TestLLM_AssessProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // Empty queue → ErrProviderUnavailable
	a := NewLLM(mock, DefaultConfig())

	_, err := a.Assess(context.Background(), "some letter")
	if err == nil {
		t.Error("expected error from empty mock provider")
	}
}

func TestLLM_AssessDegradedResponse(t *testing.T) {
	// A response that fails schema validation but still carries one
	// usable judgment comes back as a partial output, not an error.
	partial := json.RawMessage(`{"medical_opinion":{"present":true,"confidence":0.8}}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: partial})
	a := NewLLM(mock, DefaultConfig())

	out, err := a.Assess(context.Background(), "some letter")
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	if _, ok := out.For(rubric.MedicalOpinion); !ok {
		t.Error("expected the usable judgment to survive")
	}
	if _, ok := out.For(rubric.ServiceConnection); ok {
		t.Error("expected no judgment for the missing component")
	}
}

func TestBuildAssessMessage(t *testing.T) {
	msg, err := buildAssessMessage("Dear Rating Officer, it is my opinion...")
	if err != nil {
		t.Fatalf("buildAssessMessage failed: %v", err)
	}
	if !strings.Contains(msg, "Dear Rating Officer, it is my opinion...") {
		t.Error("message should contain the letter text")
	}
}

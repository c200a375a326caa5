// Package assessor obtains a structured second opinion on a nexus
// letter from a language model. The assessor judges, per rubric
// component, whether the component's substance is present and how
// confident it is in that call. Its output nudges scores within the
// band the textual evidence selected; it never picks the band.
package assessor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/claimkit/nexusgrade/internal/llm"
)

// Assessor produces a judgment of a letter. Implementations include the
// live LLM-backed assessor and replayed saved outputs.
type Assessor interface {
	Assess(ctx context.Context, letterText string) (*Output, error)
}

// Config holds configuration for the LLM assessor.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Temperature stays at zero;
// the assessment should be as repeatable as the provider allows.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.0,
	}
}

// LLM is the provider-backed Assessor.
type LLM struct {
	provider llm.Provider
	cfg      Config
}

// NewLLM creates an LLM-backed assessor.
func NewLLM(provider llm.Provider, cfg Config) *LLM {
	return &LLM{provider: provider, cfg: cfg}
}

// Assess sends the letter to the provider and parses the structured
// response. Provider failures are returned as errors; a degraded but
// parseable response is returned as a partial Output with the problems
// logged.
func (a *LLM) Assess(ctx context.Context, letterText string) (*Output, error) {
	ctx = llm.WithPurpose(ctx, "letter-assessment")

	userMsg, err := buildAssessMessage(letterText)
	if err != nil {
		return nil, fmt.Errorf("build assessment prompt: %w", err)
	}

	req := llm.Request{
		System: assessSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      AssessmentSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("letter assessment failed: %w", err)
	}

	out, problems := ParseOutput(resp.Content)
	out.Model = resp.Model
	for _, p := range problems {
		slog.Warn("degraded assessor output", "model", resp.Model, "problem", p)
	}

	return out, nil
}

const assessSystemPrompt = `You are an experienced reviewer of medical nexus letters written in support of VA disability claims. Judge the letter against four components: medical opinion (a clear opinion with a calibrated probability statement), service connection (an explicit link between the condition and a service event or exposure), medical rationale (clinical reasoning explaining the causal mechanism), and professional format (credentials, signature, letter structure).

Instructions:
- For each component, decide only whether its substance is PRESENT in the letter.
- Confidence (0.0-1.0) reflects how certain you are of the present/absent call, not how good the letter is.
- Judge each component independently. A letter can have a strong opinion and no rationale.
- List concrete strengths and weaknesses as short phrases. Do not restate the component judgments.`

var assessUserTemplate = template.Must(template.New("assess").Parse(`Nexus letter to assess:

---
{{.LetterText}}
---

Return your judgment for all four components.`))

func buildAssessMessage(letterText string) (string, error) {
	var buf bytes.Buffer
	data := struct{ LetterText string }{LetterText: letterText}
	if err := assessUserTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

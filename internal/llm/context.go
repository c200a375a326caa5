package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	runKey     contextKey = "llm_run"
)

// WithPurpose returns a context carrying the purpose label for LLM
// request logging (e.g. "letter-assessment").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context, or "unknown"
// if none was set.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok && p != "" {
		return p
	}
	return "unknown"
}

// WithRun returns a context carrying the analysis run id so logged
// assessor events can be joined back to their analysis record.
func WithRun(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runKey, runID)
}

// RunFrom extracts the analysis run id from the context, or "" if none
// was set.
func RunFrom(ctx context.Context) string {
	if id, ok := ctx.Value(runKey).(string); ok {
		return id
	}
	return ""
}

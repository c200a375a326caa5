package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessorEvent records every assessor API call for cost tracking,
// debugging, and replay.
type AssessorEvent struct {
	ent.Schema
}

func (AssessorEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessorEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("Provider name: anthropic, openai, gemini, openrouter"),
		field.String("model").
			Comment("Actual model ID that served the request"),
		field.String("purpose").
			Comment("Caller-provided label, e.g. letter-assessment"),
		field.String("run_id").
			Default("").
			Comment("Analysis run the call belongs to, empty for ad hoc calls"),
		field.Int("input_tokens").
			Default(0).
			Comment("Tokens in the request"),
		field.Int("output_tokens").
			Default(0).
			Comment("Tokens in the response"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether the request succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Text("request_body").
			Default("").
			Comment("Serialized prompt and schema sent to the provider"),
		field.Text("response_body").
			Default("").
			Comment("Raw JSON payload the provider returned"),
	}
}

func (AssessorEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("run_id"),
		index.Fields("success"),
	}
}

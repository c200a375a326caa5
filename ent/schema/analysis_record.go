package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisRecord stores one completed letter analysis: the scoring
// outcome columns queried directly, the full engine record as JSON,
// and the compressed letter text the analysis ran over.
type AnalysisRecord struct {
	ent.Schema
}

func (AnalysisRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Unique().
			Immutable().
			Comment("UUID identifying this analysis run"),
		field.String("fingerprint").
			NotEmpty().
			Comment("SHA-256 of the normalized letter text"),
		field.String("ruleset_version").
			Comment("Semver of the rule pack used"),
		field.String("engine_version").
			Comment("Engine version that produced the record"),
		field.Int("aggregate").
			Comment("Aggregate score 0-100"),
		field.String("category").
			Comment("Recommendation category"),
		field.String("assessor_model").
			Default("").
			Comment("Model that produced the assessor output, empty when none"),
		field.String("assessor_ref").
			Default("").
			Comment("SHA-256 of the raw assessor payload, empty when none"),
		field.JSON("record", map[string]any{}).
			Comment("Full analysis record as produced by the engine"),
		field.Bytes("letter_zstd").
			Comment("zstd-compressed normalized letter text"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time the record was saved"),
	}
}

func (AnalysisRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("fingerprint"),
		index.Fields("category"),
		index.Fields("created_at"),
	}
}

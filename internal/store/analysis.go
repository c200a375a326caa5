package store

import (
	"context"
	"fmt"

	"github.com/claimkit/nexusgrade/ent"
	"github.com/claimkit/nexusgrade/ent/analysisrecord"
)

// minFingerprintPrefix guards Find against degenerate lookups: a very
// short prefix matches essentially everything.
const minFingerprintPrefix = 4

// analysisRepo implements AnalysisRepo using the ent client.
type analysisRepo struct {
	client *ent.Client
}

func (r *analysisRepo) Save(ctx context.Context, a *Analysis) error {
	if a.RunID == "" {
		return fmt.Errorf("save analysis: empty run ID")
	}
	if a.Fingerprint == "" {
		return fmt.Errorf("save analysis: empty fingerprint")
	}

	_, err := r.client.AnalysisRecord.Create().
		SetRunID(a.RunID).
		SetFingerprint(a.Fingerprint).
		SetRulesetVersion(a.RulesetVersion).
		SetEngineVersion(a.EngineVersion).
		SetAggregate(a.Aggregate).
		SetCategory(a.Category).
		SetAssessorModel(a.AssessorModel).
		SetAssessorRef(a.AssessorRef).
		SetRecord(a.Record).
		SetLetterZstd(compressText(a.LetterText)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

func (r *analysisRepo) Find(ctx context.Context, prefix string) (*Analysis, error) {
	if len(prefix) < minFingerprintPrefix {
		return nil, fmt.Errorf("find analysis: fingerprint prefix %q is shorter than %d characters", prefix, minFingerprintPrefix)
	}

	row, err := r.client.AnalysisRecord.Query().
		Where(analysisrecord.FingerprintHasPrefix(prefix)).
		Order(ent.Desc(analysisrecord.FieldCreatedAt), ent.Desc(analysisrecord.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find analysis: %w", err)
	}

	a := entAnalysisToAnalysis(row)
	a.Record = row.Record

	text, err := decompressText(row.LetterZstd)
	if err != nil {
		return nil, fmt.Errorf("decompress letter text: %w", err)
	}
	a.LetterText = text

	return a, nil
}

func (r *analysisRepo) List(ctx context.Context, opts ListOpts) ([]*Analysis, error) {
	q := r.client.AnalysisRecord.Query()

	if opts.Category != "" {
		q = q.Where(analysisrecord.CategoryEQ(opts.Category))
	}

	q = q.Order(ent.Desc(analysisrecord.FieldCreatedAt), ent.Desc(analysisrecord.FieldID))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}

	out := make([]*Analysis, len(rows))
	for i, row := range rows {
		out[i] = entAnalysisToAnalysis(row)
	}
	return out, nil
}

// entAnalysisToAnalysis converts the typed columns; Record and
// LetterText are filled in only by single-record reads.
func entAnalysisToAnalysis(row *ent.AnalysisRecord) *Analysis {
	return &Analysis{
		ID:             row.ID,
		RunID:          row.RunID,
		Fingerprint:    row.Fingerprint,
		RulesetVersion: row.RulesetVersion,
		EngineVersion:  row.EngineVersion,
		Aggregate:      row.Aggregate,
		Category:       row.Category,
		AssessorModel:  row.AssessorModel,
		AssessorRef:    row.AssessorRef,
		CreatedAt:      row.CreatedAt,
	}
}

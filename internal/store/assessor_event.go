package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/claimkit/nexusgrade/ent"
	"github.com/claimkit/nexusgrade/ent/assessorevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAssessorRequest(ctx context.Context, data AssessorEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssessorEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetRunID(data.RunID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save assessor event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAssessorEvents(ctx context.Context, opts QueryOpts) ([]*AssessorEvent, error) {
	q := r.client.AssessorEvent.Query()

	if opts.After > 0 {
		q = q.Where(assessorevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(assessorevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(assessorevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(assessorevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(assessorevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessor events: %w", err)
	}

	events := make([]*AssessorEvent, len(rows))
	for i, e := range rows {
		events[i] = entEventToEvent(e)
	}
	return events, nil
}

func (r *eventRepo) GetAssessorEvent(ctx context.Context, id int) (*AssessorEvent, error) {
	e, err := r.client.AssessorEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assessor event: %w", err)
	}
	return entEventToEvent(e), nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"count"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.AssessorEvent.Query().
		GroupBy(assessorevent.FieldPurpose).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(assessorevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(assessorevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(assessorevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	out := make([]PurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"count"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}

	err := r.client.AssessorEvent.Query().
		GroupBy(assessorevent.FieldModel).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(assessorevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(assessorevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	out := make([]ModelUsage, len(rows))
	for i, row := range rows {
		out[i] = ModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func entEventToEvent(e *ent.AssessorEvent) *AssessorEvent {
	return &AssessorEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		AssessorEventData: AssessorEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			RunID:        e.RunID,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}

package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ListOpts configures analysis listings.
type ListOpts struct {
	Limit    int    // max results (0 = unlimited)
	Category string // filter by recommendation category
}

// Analysis is the persisted form of one completed letter analysis.
// Record holds the full engine output as a JSON map; LetterText is the
// normalized letter body, stored zstd-compressed and only populated on
// single-record reads.
type Analysis struct {
	ID             int
	RunID          string
	Fingerprint    string
	RulesetVersion string
	EngineVersion  string
	Aggregate      int
	Category       string
	AssessorModel  string
	AssessorRef    string
	Record         map[string]any
	LetterText     string
	CreatedAt      time.Time
}

// AnalysisRepo manages persisted analyses.
type AnalysisRepo interface {
	// Save stores a completed analysis. RunID and Fingerprint must be
	// set; CreatedAt is assigned by the database.
	Save(ctx context.Context, a *Analysis) error

	// Find returns the newest analysis whose fingerprint starts with
	// prefix, including the full record and decompressed letter text.
	// The prefix must be at least four characters; returns nil if no
	// analysis matches.
	Find(ctx context.Context, prefix string) (*Analysis, error)

	// List returns analysis summaries, newest first. Summaries omit
	// Record and LetterText.
	List(ctx context.Context, opts ListOpts) ([]*Analysis, error)
}

// AssessorEventData captures one assessor API call.
type AssessorEventData struct {
	Provider     string
	Model        string
	Purpose      string
	RunID        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AssessorEvent is a persisted assessor call with its audit ordering.
type AssessorEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AssessorEventData
}

// PurposeUsage aggregates assessor usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates assessor usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to the assessor audit
// trail.
type EventRepo interface {
	// AppendAssessorRequest records an assessor API call event.
	AppendAssessorRequest(ctx context.Context, data AssessorEventData) error

	// QueryAssessorEvents returns events matching opts, newest first.
	QueryAssessorEvents(ctx context.Context, opts QueryOpts) ([]*AssessorEvent, error)

	// GetAssessorEvent returns one event by ID, or nil if not found.
	GetAssessorEvent(ctx context.Context, id int) (*AssessorEvent, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// UsageByModel aggregates token usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsage, error)
}

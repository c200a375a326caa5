package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func testAnalysis(n int) *Analysis {
	return &Analysis{
		RunID:          fmt.Sprintf("run-%d", n),
		Fingerprint:    fmt.Sprintf("%064d", n),
		RulesetVersion: "v1.0.0",
		EngineVersion:  "0.1.0",
		Aggregate:      80,
		Category:       "attorney_review",
		AssessorModel:  "mock",
		AssessorRef:    "",
		Record:         map[string]any{"category": "attorney_review"},
		LetterText:     "It is my opinion that the condition is at least as likely as not service-connected.",
	}
}

func TestAnalysisSaveAndFind(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	want := testAnalysis(1)
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Find(ctx, want.Fingerprint)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatal("expected analysis, got nil")
	}
	if got.RunID != want.RunID {
		t.Errorf("run ID = %q, want %q", got.RunID, want.RunID)
	}
	if got.Aggregate != 80 {
		t.Errorf("aggregate = %d, want 80", got.Aggregate)
	}
	if got.Category != "attorney_review" {
		t.Errorf("category = %q, want attorney_review", got.Category)
	}
	if got.LetterText != want.LetterText {
		t.Errorf("letter text = %q, want %q", got.LetterText, want.LetterText)
	}
	if got.Record["category"] != "attorney_review" {
		t.Errorf("record category = %v, want attorney_review", got.Record["category"])
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestAnalysisFindByPrefix(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	a := testAnalysis(7)
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Find(ctx, a.Fingerprint[:12])
	if err != nil {
		t.Fatalf("find by prefix: %v", err)
	}
	if got == nil || got.Fingerprint != a.Fingerprint {
		t.Fatalf("prefix lookup failed, got %+v", got)
	}
}

func TestAnalysisFindMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.AnalysisRepo().Find(context.Background(), "ffffffff")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing fingerprint, got %+v", got)
	}
}

func TestAnalysisFindRejectsShortPrefix(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.AnalysisRepo().Find(context.Background(), "abc"); err == nil {
		t.Fatal("expected error for a prefix under four characters")
	}
}

func TestAnalysisSaveRejectsIncomplete(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	a := testAnalysis(2)
	a.RunID = ""
	if err := repo.Save(ctx, a); err == nil || !strings.Contains(err.Error(), "empty run ID") {
		t.Errorf("save without run ID: err = %v", err)
	}

	a = testAnalysis(3)
	a.Fingerprint = ""
	if err := repo.Save(ctx, a); err == nil || !strings.Contains(err.Error(), "empty fingerprint") {
		t.Errorf("save without fingerprint: err = %v", err)
	}
}

func TestAnalysisListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if err := repo.Save(ctx, testAnalysis(i)); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx, ListOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d analyses, want 3", len(list))
	}
	if list[0].RunID != "run-3" || list[2].RunID != "run-1" {
		t.Errorf("order = %s..%s, want run-3..run-1", list[0].RunID, list[2].RunID)
	}

	// Summaries carry columns only.
	if list[0].Record != nil || list[0].LetterText != "" {
		t.Error("list summaries should omit record and letter text")
	}
}

func TestAnalysisListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisRepo()
	ctx := context.Background()

	a := testAnalysis(1)
	a.Category = "auto_approve"
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, testAnalysis(2)); err != nil {
		t.Fatalf("save: %v", err)
	}

	list, err := repo.List(ctx, ListOpts{Category: "auto_approve"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Category != "auto_approve" {
		t.Fatalf("category filter returned %+v", list)
	}

	list, err = repo.List(ctx, ListOpts{Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("limit 1 returned %d rows", len(list))
	}
}

func TestAppendAndQueryAssessorEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.AppendAssessorRequest(ctx, AssessorEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5-20251001",
			Purpose:      "letter-assessment",
			RunID:        fmt.Sprintf("run-%d", i),
			InputTokens:  100 * i,
			OutputTokens: 10 * i,
			LatencyMs:    int64(50 * i),
			Success:      true,
			RequestBody:  "[system]\nassess the letter",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryAssessorEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first.
	if events[0].Sequence != 3 || events[2].Sequence != 1 {
		t.Errorf("sequence order = %d..%d, want 3..1", events[0].Sequence, events[2].Sequence)
	}
	if events[0].RunID != "run-3" {
		t.Errorf("run ID = %q, want run-3", events[0].RunID)
	}

	limited, err := repo.QueryAssessorEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("limit 2 returned %d events", len(limited))
	}

	after, err := repo.QueryAssessorEvents(ctx, QueryOpts{After: 2})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].Sequence != 3 {
		t.Fatalf("after=2 returned %+v", after)
	}
}

func TestGetAssessorEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssessorRequest(ctx, AssessorEventData{
		Provider: "mock",
		Model:    "mock",
		Purpose:  "letter-assessment",
		Success:  false,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryAssessorEvents(ctx, QueryOpts{})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	e, err := repo.GetAssessorEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil || e.Provider != "mock" {
		t.Fatalf("get returned %+v", e)
	}

	missing, err := repo.GetAssessorEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	calls := []AssessorEventData{
		{Provider: "anthropic", Model: "model-a", Purpose: "letter-assessment", InputTokens: 100, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "model-a", Purpose: "letter-assessment", InputTokens: 300, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "model-b", Purpose: "smoke-test", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for i, data := range calls {
		if err := repo.AppendAssessorRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// Sorted by purpose name.
	la := byPurpose[0]
	if la.Purpose != "letter-assessment" {
		t.Fatalf("first purpose = %q, want letter-assessment", la.Purpose)
	}
	if la.Calls != 2 || la.InputTokens != 400 || la.OutputTokens != 60 {
		t.Errorf("letter-assessment usage = %+v", la)
	}
	if la.AvgLatencyMs != 200 {
		t.Errorf("avg latency = %d, want 200", la.AvgLatencyMs)
	}

	byModel, err := repo.UsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
	if byModel[0].Model != "model-a" || byModel[0].Calls != 2 || byModel[0].InputTokens != 400 {
		t.Errorf("model-a usage = %+v", byModel[0])
	}
}

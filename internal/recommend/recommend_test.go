package recommend

import (
	"testing"

	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
	"github.com/claimkit/nexusgrade/internal/scoring"
)

func TestCategorize_Thresholds(t *testing.T) {
	tests := []struct {
		aggregate int
		want      Category
	}{
		{100, AutoApprove},
		{85, AutoApprove},
		{84, AttorneyReview},
		{70, AttorneyReview},
		{69, RevisionRequired},
		{0, RevisionRequired},
	}

	for _, tt := range tests {
		if got := Categorize(tt.aggregate); got != tt.want {
			t.Errorf("Categorize(%d) = %q, want %q", tt.aggregate, got, tt.want)
		}
	}
}

func TestCategorize_CoversFullRange(t *testing.T) {
	for agg := 0; agg <= 100; agg++ {
		got := Categorize(agg)
		var want Category
		switch {
		case agg >= 85:
			want = AutoApprove
		case agg >= 70:
			want = AttorneyReview
		default:
			want = RevisionRequired
		}
		if got != want {
			t.Fatalf("Categorize(%d) = %q, want %q", agg, got, want)
		}
		if !got.Valid() {
			t.Fatalf("Categorize(%d) returned invalid category %q", agg, got)
		}
	}
}

func TestCategory_DisplayName(t *testing.T) {
	if AutoApprove.DisplayName() != "Auto-Approve" {
		t.Errorf("got %q", AutoApprove.DisplayName())
	}
	if AttorneyReview.DisplayName() != "Attorney Review" {
		t.Errorf("got %q", AttorneyReview.DisplayName())
	}
	if RevisionRequired.DisplayName() != "Revision Required" {
		t.Errorf("got %q", RevisionRequired.DisplayName())
	}
}

func testScores(values map[rubric.Component]int, strengths map[rubric.Component]rubric.Strength) []scoring.ComponentScore {
	scores := make([]scoring.ComponentScore, 0, len(rubric.Components()))
	for _, c := range rubric.Components() {
		s, ok := strengths[c]
		if !ok {
			s = rubric.StrengthStrong
		}
		scores = append(scores, scoring.ComponentScore{
			Component: c,
			Value:     values[c],
			Strength:  s,
		})
	}
	return scores
}

func TestSuggest_WorstFirst(t *testing.T) {
	scores := testScores(
		map[rubric.Component]int{
			rubric.MedicalOpinion:     25,
			rubric.ServiceConnection:  3,
			rubric.MedicalRationale:   17,
			rubric.ProfessionalFormat: 10,
		},
		map[rubric.Component]rubric.Strength{
			rubric.ServiceConnection:  rubric.StrengthAbsent,
			rubric.MedicalRationale:   rubric.StrengthWeak,
			rubric.ProfessionalFormat: rubric.StrengthWeak,
		},
	)

	items := Suggest(scores, ruleset.Default().Feedback)

	wantOrder := []rubric.Component{
		rubric.ServiceConnection,
		rubric.ProfessionalFormat,
		rubric.MedicalRationale,
		rubric.MedicalOpinion,
	}
	if len(items) != len(wantOrder) {
		t.Fatalf("expected %d items, got %d", len(wantOrder), len(items))
	}
	for i, want := range wantOrder {
		if items[i].Component != want {
			t.Errorf("position %d: component = %s, want %s", i, items[i].Component, want)
		}
	}

	if items[0].Kind != KindMissing {
		t.Errorf("worst item kind = %q, want %q", items[0].Kind, KindMissing)
	}
	if items[1].Kind != KindWeak || items[2].Kind != KindWeak {
		t.Error("mid items should be weak improvement items")
	}
	if items[3].Kind != KindAffirmation {
		t.Errorf("best item kind = %q, want %q", items[3].Kind, KindAffirmation)
	}
}

func TestSuggest_TiesKeepCanonicalOrder(t *testing.T) {
	scores := testScores(
		map[rubric.Component]int{
			rubric.MedicalOpinion:     10,
			rubric.ServiceConnection:  10,
			rubric.MedicalRationale:   10,
			rubric.ProfessionalFormat: 10,
		},
		map[rubric.Component]rubric.Strength{
			rubric.MedicalOpinion:     rubric.StrengthWeak,
			rubric.ServiceConnection:  rubric.StrengthWeak,
			rubric.MedicalRationale:   rubric.StrengthWeak,
			rubric.ProfessionalFormat: rubric.StrengthWeak,
		},
	)

	items := Suggest(scores, ruleset.Default().Feedback)

	for i, want := range rubric.Components() {
		if items[i].Component != want {
			t.Errorf("position %d: component = %s, want %s", i, items[i].Component, want)
		}
	}
}

func TestSuggest_AffirmationThreshold(t *testing.T) {
	scores := testScores(
		map[rubric.Component]int{
			rubric.MedicalOpinion:     20,
			rubric.ServiceConnection:  19,
			rubric.MedicalRationale:   25,
			rubric.ProfessionalFormat: 0,
		},
		map[rubric.Component]rubric.Strength{
			rubric.ServiceConnection:  rubric.StrengthStrong,
			rubric.ProfessionalFormat: rubric.StrengthAbsent,
		},
	)

	items := Suggest(scores, ruleset.Default().Feedback)

	kinds := make(map[rubric.Component]Kind, len(items))
	for _, it := range items {
		kinds[it.Component] = it.Kind
	}

	if kinds[rubric.MedicalOpinion] != KindAffirmation {
		t.Errorf("score 20 should affirm, got %q", kinds[rubric.MedicalOpinion])
	}
	if kinds[rubric.ServiceConnection] != KindWeak {
		t.Errorf("score 19 with evidence should be weak, got %q", kinds[rubric.ServiceConnection])
	}
	if kinds[rubric.ProfessionalFormat] != KindMissing {
		t.Errorf("score 0 without evidence should be missing, got %q", kinds[rubric.ProfessionalFormat])
	}
}

func TestSuggest_TextComesFromPack(t *testing.T) {
	fb := ruleset.Default().Feedback
	scores := testScores(
		map[rubric.Component]int{
			rubric.MedicalOpinion:     2,
			rubric.ServiceConnection:  25,
			rubric.MedicalRationale:   10,
			rubric.ProfessionalFormat: 25,
		},
		map[rubric.Component]rubric.Strength{
			rubric.MedicalOpinion:   rubric.StrengthAbsent,
			rubric.MedicalRationale: rubric.StrengthWeak,
		},
	)

	items := Suggest(scores, fb)

	for _, it := range items {
		tpl := fb.For(it.Component)
		var want string
		switch it.Kind {
		case KindMissing:
			want = tpl.Missing
		case KindWeak:
			want = tpl.Weak
		case KindAffirmation:
			want = tpl.Strong
		}
		if it.Text != want {
			t.Errorf("%s: text not drawn from the %s template", it.Component, it.Kind)
		}
		if it.Text == "" {
			t.Errorf("%s: empty suggestion text", it.Component)
		}
	}
}

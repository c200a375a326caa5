// Package recommend maps aggregate scores to a disposition and builds
// the component feedback list that accompanies every analysis.
package recommend

import (
	"sort"

	"github.com/claimkit/nexusgrade/internal/rubric"
	"github.com/claimkit/nexusgrade/internal/ruleset"
	"github.com/claimkit/nexusgrade/internal/scoring"
)

// Category is the disposition of an analyzed letter.
type Category string

const (
	AutoApprove      Category = "auto_approve"
	AttorneyReview   Category = "attorney_review"
	RevisionRequired Category = "revision_required"
)

// Category floors are inclusive: an aggregate of exactly 85
// auto-approves, exactly 70 goes to attorney review.
const (
	autoApproveFloor    = 85
	attorneyReviewFloor = 70
)

// Categorize maps a 0-100 aggregate to its disposition.
func Categorize(aggregate int) Category {
	switch {
	case aggregate >= autoApproveFloor:
		return AutoApprove
	case aggregate >= attorneyReviewFloor:
		return AttorneyReview
	default:
		return RevisionRequired
	}
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	switch c {
	case AutoApprove:
		return "Auto-Approve"
	case AttorneyReview:
		return "Attorney Review"
	case RevisionRequired:
		return "Revision Required"
	default:
		return string(c)
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case AutoApprove, AttorneyReview, RevisionRequired:
		return true
	}
	return false
}

// Kind classifies a suggestion item.
type Kind string

const (
	// KindMissing flags a component with no textual evidence at all.
	KindMissing Kind = "missing"
	// KindWeak flags a component that is present but underdeveloped.
	KindWeak Kind = "weak"
	// KindAffirmation acknowledges a component that already scores well.
	KindAffirmation Kind = "affirmation"
)

// affirmationThreshold is the component score at which feedback switches
// from an improvement item to an affirmation.
const affirmationThreshold = 20

// Suggestion is one feedback item tied to a component.
type Suggestion struct {
	Component rubric.Component `json:"component"`
	Score     int              `json:"score"`
	Kind      Kind             `json:"kind"`
	Text      string           `json:"text"`
}

// Suggest builds the feedback list for a set of component scores, worst
// score first so the most impactful fix leads. Ties keep canonical
// rubric order. Every component yields exactly one item: an improvement
// item below the affirmation threshold (keyed on whether any textual
// evidence was found), an affirmation at or above it.
func Suggest(scores []scoring.ComponentScore, fb ruleset.Feedback) []Suggestion {
	byComponent := make(map[rubric.Component]scoring.ComponentScore, len(scores))
	for _, cs := range scores {
		byComponent[cs.Component] = cs
	}

	items := make([]Suggestion, 0, len(rubric.Components()))
	for _, c := range rubric.Components() {
		cs, ok := byComponent[c]
		if !ok {
			continue
		}
		items = append(items, suggestionFor(cs, fb.For(c)))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score < items[j].Score
	})

	return items
}

func suggestionFor(cs scoring.ComponentScore, tpl ruleset.Templates) Suggestion {
	s := Suggestion{
		Component: cs.Component,
		Score:     cs.Value,
	}

	switch {
	case cs.Value >= affirmationThreshold:
		s.Kind = KindAffirmation
		s.Text = tpl.Strong
	case cs.Strength == rubric.StrengthAbsent:
		s.Kind = KindMissing
		s.Text = tpl.Missing
	default:
		s.Kind = KindWeak
		s.Text = tpl.Weak
	}

	return s
}

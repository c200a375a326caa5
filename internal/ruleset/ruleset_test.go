package ruleset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimkit/nexusgrade/internal/rubric"
)

const testDoc = `
version: v0.1.0
bands:
  absent: {floor: 0, ceiling: 7}
  weak: {floor: 8, ceiling: 17}
  strong: {floor: 18, ceiling: 25}
rules:
  - id: T-ONE
    component: medical_opinion
    strength: strong
    pattern: 'at least as likely as not'
    note: test rule
feedback:
  medical_opinion: {missing: m, weak: w, strong: s}
  service_connection: {missing: m, weak: w, strong: s}
  medical_rationale: {missing: m, weak: w, strong: s}
  professional_format: {missing: m, weak: w, strong: s}
`

func TestParseValidDoc(t *testing.T) {
	rs, err := Parse([]byte(testDoc))
	require.NoError(t, err)

	assert.Equal(t, "v0.1.0", rs.Version)
	assert.Len(t, rs.Rules, 1)
	assert.Equal(t, Band{Floor: 18, Ceiling: 25}, rs.Bands.For(rubric.StrengthStrong))
	assert.Equal(t, "w", rs.Feedback.For(rubric.MedicalOpinion).Weak)
}

func TestParseRejectsInvalidDocs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "bad version",
			mutate:  func(d string) string { return strings.Replace(d, "v0.1.0", "1.0", 1) },
			wantErr: "not valid semver",
		},
		{
			name:    "missing band tier",
			mutate:  func(d string) string { return strings.Replace(d, "  weak: {floor: 8, ceiling: 17}\n", "", 1) },
			wantErr: `missing tier "weak"`,
		},
		{
			name:    "band above component max",
			mutate:  func(d string) string { return strings.Replace(d, "ceiling: 25", "ceiling: 26", 1) },
			wantErr: "outside [0,25]",
		},
		{
			name:    "overlapping bands",
			mutate:  func(d string) string { return strings.Replace(d, "floor: 18", "floor: 17", 1) },
			wantErr: "overlaps",
		},
		{
			name:    "unknown component",
			mutate:  func(d string) string { return strings.Replace(d, "component: medical_opinion", "component: bedside_manner", 1) },
			wantErr: "unknown component",
		},
		{
			name:    "absent rule strength",
			mutate:  func(d string) string { return strings.Replace(d, "strength: strong", "strength: absent", 1) },
			wantErr: "strength must be weak or strong",
		},
		{
			name:    "bad pattern",
			mutate:  func(d string) string { return strings.Replace(d, "at least as likely as not", "([unclosed", 1) },
			wantErr: "compile pattern",
		},
		{
			name: "duplicate rule id",
			mutate: func(d string) string {
				dup := `  - id: T-ONE
    component: medical_opinion
    strength: weak
    pattern: 'opinion'
`
				return strings.Replace(d, "feedback:", dup+"feedback:", 1)
			},
			wantErr: "duplicate id",
		},
		{
			name:    "incomplete feedback",
			mutate:  func(d string) string { return strings.Replace(d, "  medical_rationale: {missing: m, weak: w, strong: s}\n", "", 1) },
			wantErr: `missing component "medical_rationale"`,
		},
		{
			name:    "empty feedback text",
			mutate:  func(d string) string { return strings.Replace(d, "{missing: m, weak: w, strong: s}", "{missing: m, weak: w, strong: ''}", 1) },
			wantErr: "must define missing, weak, and strong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(testDoc)))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRuleMatch(t *testing.T) {
	rs, err := Parse([]byte(testDoc))
	require.NoError(t, err)
	rule := rs.Rules[0]

	got, ok := rule.Match("It is AT LEAST AS LIKELY AS NOT that the condition began in service.")
	require.True(t, ok)
	assert.Equal(t, "AT LEAST AS LIKELY AS NOT", got)

	_, ok = rule.Match("The condition may be related to service.")
	assert.False(t, ok)
}

func TestMatchExcerptTrimmed(t *testing.T) {
	doc := strings.Replace(testDoc, "'at least as likely as not'", "'likely.*service'", 1)
	rs, err := Parse([]byte(doc))
	require.NoError(t, err)

	text := "likely " + strings.Repeat("x", 200) + " service"
	got, ok := rs.Rules[0].Match(text)
	require.True(t, ok)
	assert.Len(t, got, excerptLimit+len("..."))
}

func TestDefaultPack(t *testing.T) {
	rs := Default()
	require.NotNil(t, rs)

	perComponent := make(map[rubric.Component]int)
	for _, r := range rs.Rules {
		perComponent[r.Component]++
	}
	for _, c := range rubric.Components() {
		assert.GreaterOrEqual(t, perComponent[c], 2, "component %s needs rules", c)
		tpl := rs.Feedback.For(c)
		assert.NotEmpty(t, tpl.Missing)
		assert.NotEmpty(t, tpl.Weak)
		assert.NotEmpty(t, tpl.Strong)
	}

	assert.Equal(t, Band{Floor: 0, Ceiling: 7}, rs.Bands.For(rubric.StrengthAbsent))
	assert.Equal(t, Band{Floor: 8, Ceiling: 17}, rs.Bands.For(rubric.StrengthWeak))
	assert.Equal(t, Band{Floor: 18, Ceiling: 25}, rs.Bands.For(rubric.StrengthStrong))
}

func TestDefaultPackRecognizesCanonicalLanguage(t *testing.T) {
	tests := []struct {
		text   string
		ruleID string
	}{
		{"it is at least as likely as not that", "MO-CALIBRATED-PROBABILITY"},
		{"more likely than not caused", "MO-CALIBRATED-PROBABILITY"},
		{"in my professional opinion", "MO-OPINION-STATEMENT"},
		{"was caused by his military service", "SC-EXPLICIT-NEXUS"},
		{"this condition is service-connected", "SC-SERVICE-CONNECTED-TERM"},
		{"documented in service treatment records", "SC-RECORDS-REFERENCED"},
		{"consistent with the known pathophysiology", "MR-MECHANISM"},
		{"after ruling out other causes", "MR-ALTERNATIVES-RULED-OUT"},
		{"supported by peer-reviewed studies", "MR-LITERATURE-CITED"},
		{"Jane Roe, M.D.", "PF-CREDENTIALS"},
		{"I am a board-certified orthopedic surgeon", "PF-BOARD-CERTIFIED"},
		{"Sincerely,", "PF-SIGNATURE-BLOCK"},
	}

	rs := Default()
	byID := make(map[string]Rule, len(rs.Rules))
	for _, r := range rs.Rules {
		byID[r.ID] = r
	}

	for _, tt := range tests {
		t.Run(tt.ruleID+"/"+tt.text, func(t *testing.T) {
			rule, ok := byID[tt.ruleID]
			require.True(t, ok, "rule %s not in default pack", tt.ruleID)
			_, matched := rule.Match(tt.text)
			assert.True(t, matched, "rule %s should match %q", tt.ruleID, tt.text)
		})
	}
}

func TestDefaultPackCredentialsIgnoreOrdinaryWords(t *testing.T) {
	// Undotted credential acronyms are matched case-sensitively so that
	// everyday words do not register as author credentials.
	var cred Rule
	for _, r := range Default().Rules {
		if r.ID == "PF-CREDENTIALS" {
			cred = r
		}
	}
	require.NotEmpty(t, cred.ID)

	for _, text := range []string{
		"we do not have those records",
		"please do keep in mind",
		"the patient can np longer walk", // typo, still not a credential
	} {
		_, matched := cred.Match(text)
		assert.False(t, matched, "PF-CREDENTIALS should not match %q", text)
	}

	for _, text := range []string{
		"John Smith, MD",
		"Jane Roe, D.O.",
		"signed, A. Park, PsyD",
	} {
		_, matched := cred.Match(text)
		assert.True(t, matched, "PF-CREDENTIALS should match %q", text)
	}
}

package letter

import (
	"errors"
	"strings"
	"testing"
)

func testLimits() Limits {
	return Limits{MinChars: 20, MaxChars: 200}
}

func TestNewNormalizesAndFingerprints(t *testing.T) {
	raw := "\uFEFFDear Review Board,\r\nIt is my opinion that...\r\n"
	l, err := New(raw, testLimits())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	want := "Dear Review Board,\nIt is my opinion that..."
	if l.Text != want {
		t.Errorf("normalized text = %q, want %q", l.Text, want)
	}
	if l.Chars != len([]rune(want)) {
		t.Errorf("chars = %d, want %d", l.Chars, len([]rune(want)))
	}
	if len(l.Fingerprint) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(l.Fingerprint))
	}
}

func TestNewStableFingerprint(t *testing.T) {
	// CRLF and LF variants of the same letter must collapse to one
	// fingerprint.
	crlf := "It is at least as likely as not\r\nthat this condition began in service."
	lf := "It is at least as likely as not\nthat this condition began in service."

	a, err := New(crlf, testLimits())
	if err != nil {
		t.Fatalf("New(crlf) error: %v", err)
	}
	b, err := New(lf, testLimits())
	if err != nil {
		t.Fatalf("New(lf) error: %v", err)
	}
	if a.Fingerprint != b.Fingerprint {
		t.Errorf("fingerprints differ: %s vs %s", a.Fingerprint, b.Fingerprint)
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"empty", "", ErrEmpty},
		{"whitespace only", "   \n\t  \r\n ", ErrEmpty},
		{"below minimum", "Too short.", ErrTooShort},
		{"above maximum", strings.Repeat("x", 201), ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.raw, testLimits())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New(%q) error = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestNewZeroLimitsDisableBounds(t *testing.T) {
	l, err := New("short", Limits{})
	if err != nil {
		t.Fatalf("New with zero limits returned error: %v", err)
	}
	if l.Chars != 5 {
		t.Errorf("chars = %d, want 5", l.Chars)
	}
}

func TestFingerprintMatchesNormalizedText(t *testing.T) {
	l, err := New("A perfectly ordinary nexus letter body for testing.", testLimits())
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := Fingerprint(l.Text); got != l.Fingerprint {
		t.Errorf("Fingerprint(Text) = %s, want %s", got, l.Fingerprint)
	}
}

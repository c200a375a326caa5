// Package letter ingests nexus-letter text into an immutable value
// carrying the normalized body, a stable content fingerprint, and the
// character count used for input validation.
package letter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation sentinels. All three mean the input was rejected before
// any scoring work began.
var (
	ErrEmpty    = errors.New("letter text is empty")
	ErrTooShort = errors.New("letter text too short for analysis")
	ErrTooLong  = errors.New("letter text exceeds maximum length")
)

// Limits bounds acceptable letter length in characters (runes),
// measured after normalization.
type Limits struct {
	MinChars int
	MaxChars int
}

// DefaultLimits covers the realistic range of a nexus letter: anything
// under ~100 characters cannot contain an opinion plus rationale, and
// 50k characters is well past the longest multi-page letter.
func DefaultLimits() Limits {
	return Limits{MinChars: 100, MaxChars: 50000}
}

// Letter is an immutable ingested letter. Construct with New; the
// fields are never mutated afterwards.
type Letter struct {
	// Text is the normalized body: BOM stripped, line endings
	// unified to \n, outer whitespace trimmed.
	Text string
	// Fingerprint is the lowercase hex SHA-256 of Text. Identical
	// normalized text always yields an identical fingerprint.
	Fingerprint string
	// Chars is the rune count of Text.
	Chars int
}

// New normalizes raw text and validates it against lim.
func New(raw string, lim Limits) (Letter, error) {
	text := Normalize(raw)
	n := utf8.RuneCountInString(text)

	switch {
	case n == 0:
		return Letter{}, ErrEmpty
	case lim.MinChars > 0 && n < lim.MinChars:
		return Letter{}, fmt.Errorf("%w: %d characters, need at least %d", ErrTooShort, n, lim.MinChars)
	case lim.MaxChars > 0 && n > lim.MaxChars:
		return Letter{}, fmt.Errorf("%w: %d characters, limit is %d", ErrTooLong, n, lim.MaxChars)
	}

	return Letter{
		Text:        text,
		Fingerprint: Fingerprint(text),
		Chars:       n,
	}, nil
}

// Normalize strips a UTF-8 BOM, unifies CRLF and bare CR line endings
// to LF, and trims leading and trailing whitespace.
func Normalize(raw string) string {
	s := strings.TrimPrefix(raw, "\uFEFF")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.TrimSpace(s)
}

// Fingerprint returns the lowercase hex SHA-256 of text.
func Fingerprint(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

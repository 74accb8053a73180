// Package dateutil turns user-facing date patterns such as "MMMM DD, YYYY"
// into Go layouts and resolves "auto" date values against a clock.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a malformed date pattern or auto value.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxPatternLength bounds the size of a date pattern.
const MaxPatternLength = 50

// BrandBookPattern is the date pattern printed on brand book covers.
const BrandBookPattern = "MMMM DD, YYYY"

// tokens are tried longest first.
var tokens = [...]struct{ pattern, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named patterns accepted wherever a pattern is.
var Presets = map[string]string{
	"iso":  "YYYY-MM-DD",
	"long": BrandBookPattern,
	"year": "YYYY",
}

// Layout converts a date pattern to a Go time layout.
// Text inside brackets is copied literally: "[Q]Q" keeps the first Q.
func Layout(pattern string) (string, error) {
	if preset, ok := Presets[strings.ToLower(pattern)]; ok {
		pattern = preset
	}
	if pattern == "" {
		return "", fmt.Errorf("%w: empty pattern", ErrInvalidDateFormat)
	}
	if len(pattern) > MaxPatternLength {
		return "", fmt.Errorf("%w: pattern exceeds %d characters", ErrInvalidDateFormat, MaxPatternLength)
	}

	var b strings.Builder
	rest := pattern
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket in %q", ErrInvalidDateFormat, pattern)
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		rest = writeToken(&b, rest)
	}
	return b.String(), nil
}

// writeToken consumes one token or literal byte from s.
func writeToken(b *strings.Builder, s string) string {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.pattern) {
			b.WriteString(tok.layout)
			return s[len(tok.pattern):]
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// Format renders t with a date pattern.
func Format(t time.Time, pattern string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Resolve expands "auto" (ISO date) and "auto:PATTERN" against t.
// Any other value is returned unchanged.
func Resolve(value string, t time.Time) (string, error) {
	head, pattern, hasPattern := strings.Cut(value, ":")
	if !strings.EqualFold(head, "auto") {
		return value, nil
	}
	if !hasPattern {
		return Format(t, Presets["iso"])
	}
	if pattern == "" {
		return "", fmt.Errorf("%w: missing pattern after %q", ErrInvalidDateFormat, "auto:")
	}
	return Format(t, pattern)
}

package brandkit

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// hexColorPattern matches 3- or 6-digit hex colors. The trailing word boundary
// keeps "#FFFFFF" from also registering as "#FFF".
var hexColorPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{3}){1,2}\b`)

// fontFamilyPattern captures a font-family declaration up to its semicolon.
var fontFamilyPattern = regexp.MustCompile(`font-family\s*:\s*([^;]+);`)

// SampleStylesheet is a small page used to demonstrate extraction.
const SampleStylesheet = `<html>
<style>
    body { font-family: 'Roboto', sans-serif; color: #333; background: #FFF; }
    h1 { color: #ff0000; font-family: "Helvetica Neue"; }
    .accent { color: #f00; border: 1px solid #00FF00; }
</style>
</html>
`

// ColorObservation is a canonical color and how often it appeared.
type ColorObservation struct {
	Hex   string `json:"hex"`
	Count int    `json:"count"`
}

// FontObservation is a primary font family and how often it was declared.
type FontObservation struct {
	Family string `json:"family"`
	Count  int    `json:"count"`
}

// ExtractionResult holds colors and fonts ranked by descending count.
// Equal counts keep the order in which the values first appeared.
type ExtractionResult struct {
	Colors []ColorObservation `json:"colors"`
	Fonts  []FontObservation  `json:"fonts"`
}

// ExtractStyles scans content for hex colors and font-family declarations.
// Zero matches yields empty (non-nil) slices.
func ExtractStyles(content string) ExtractionResult {
	colors := newTally()
	for _, loc := range hexColorPattern.FindAllStringIndex(content, -1) {
		if startsWithWordRune(content[loc[1]:]) {
			continue
		}
		colors.add(NormalizeHex(content[loc[0]:loc[1]]))
	}

	fonts := newTally()
	for _, m := range fontFamilyPattern.FindAllStringSubmatch(content, -1) {
		if family := PrimaryFont(m[1]); family != "" {
			fonts.add(family)
		}
	}

	result := ExtractionResult{
		Colors: make([]ColorObservation, 0, len(colors.order)),
		Fonts:  make([]FontObservation, 0, len(fonts.order)),
	}
	for _, e := range colors.ranked() {
		result.Colors = append(result.Colors, ColorObservation{Hex: e.key, Count: e.count})
	}
	for _, e := range fonts.ranked() {
		result.Fonts = append(result.Fonts, FontObservation{Family: e.key, Count: e.count})
	}
	return result
}

// startsWithWordRune reports whether s begins with a letter, number, or
// underscore in any script. Go's \b only knows ASCII word characters, so
// "#abcé" would otherwise count as a color.
func startsWithWordRune(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// NormalizeHex returns the canonical uppercase #RRGGBB form of a hex color.
// Three-digit shorthand is expanded by doubling each digit. Values that are
// neither 3 nor 6 digits are only uppercased.
func NormalizeHex(code string) string {
	digits := strings.TrimPrefix(code, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + strings.ToUpper(digits)
}

// PrimaryFont returns the first family of a comma-separated font stack with
// surrounding whitespace and quotes removed. Returns "" for an empty entry.
func PrimaryFont(stack string) string {
	primary, _, _ := strings.Cut(stack, ",")
	primary = strings.TrimSpace(primary)
	primary = strings.Trim(primary, "'")
	return strings.Trim(primary, `"`)
}

// Ranked returns a copy of r with both sequences re-sorted by descending
// count. Ranking an already ranked result returns an equal result.
func (r ExtractionResult) Ranked() ExtractionResult {
	out := ExtractionResult{
		Colors: slices.Clone(r.Colors),
		Fonts:  slices.Clone(r.Fonts),
	}
	slices.SortStableFunc(out.Colors, func(a, b ColorObservation) int { return b.Count - a.Count })
	slices.SortStableFunc(out.Fonts, func(a, b FontObservation) int { return b.Count - a.Count })
	return out
}

// tally counts keys while remembering first-seen order.
type tally struct {
	order  []string
	counts map[string]int
}

type tallyEntry struct {
	key   string
	count int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// ranked returns entries by descending count, ties in first-seen order.
func (t *tally) ranked() []tallyEntry {
	entries := make([]tallyEntry, len(t.order))
	for i, key := range t.order {
		entries[i] = tallyEntry{key: key, count: t.counts[key]}
	}
	slices.SortStableFunc(entries, func(a, b tallyEntry) int { return b.count - a.count })
	return entries
}

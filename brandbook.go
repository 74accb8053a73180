package brandkit

import (
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Brand book slot fallbacks for pages with few styles.
const (
	FallbackPrimary     = "#000000"
	FallbackSecondary   = "#333333"
	FallbackAccent      = "#666666"
	FallbackHeadingFont = "Arial"
	FallbackBodyFont    = "sans-serif"
)

// DefaultBrandBookDir is the base output directory for brand books.
const DefaultBrandBookDir = "brandbook"

// DomainName returns the host of rawURL without a leading "www.". A string
// with no host, such as "example.com/about", is used as-is.
func DomainName(rawURL string) string {
	domain := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		domain = u.Host
		if domain == "" {
			domain = u.Path
		}
	}
	return strings.TrimPrefix(domain, "www.")
}

// ProjectName capitalizes a domain: first letter upper, the rest lower.
func ProjectName(domain string) string {
	lower := cases.Lower(language.Und).String(domain)
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return cases.Upper(language.Und).String(string(r)) + lower[size:]
}

// BrandBookPaths returns the HTML and PDF paths for domain under baseDir:
// {baseDir}/{domain}/BrandBook_{domain}.html and .pdf.
func BrandBookPaths(baseDir, domain string) (htmlPath, pdfPath string) {
	safe := pathSafe(domain)
	dir := filepath.Join(baseDir, safe)
	stem := "BrandBook_" + safe
	return filepath.Join(dir, stem+".html"), filepath.Join(dir, stem+".pdf")
}

// pathSafe keeps a domain within one path element.
func pathSafe(s string) string {
	s = strings.NewReplacer("/", "_", "\\", "_", ":", "_").Replace(s)
	if s == "" || s == "." || s == ".." {
		return "_"
	}
	return s
}

// brandBookView is the data the brand book template sees.
type brandBookView struct {
	ProjectName string
	Domain      string
	URL         string
	Date        string

	Primary     string
	Secondary   string
	Accent      string
	HeadingFont string
	BodyFont    string

	Palette []ColorObservation
	Fonts   []FontObservation
	Tone    Tone
	Meta    PageMeta
}

// fillSlots picks the three brand colors and two fonts from ranked styles.
func (v *brandBookView) fillSlots(styles ExtractionResult) {
	colors := []string{FallbackPrimary, FallbackSecondary, FallbackAccent}
	for i := range colors {
		if i < len(styles.Colors) {
			colors[i] = styles.Colors[i].Hex
		}
	}
	v.Primary, v.Secondary, v.Accent = colors[0], colors[1], colors[2]

	v.HeadingFont, v.BodyFont = FallbackHeadingFont, FallbackBodyFont
	switch n := len(styles.Fonts); {
	case n > 1:
		v.HeadingFont, v.BodyFont = styles.Fonts[0].Family, styles.Fonts[1].Family
	case n == 1:
		v.HeadingFont, v.BodyFont = styles.Fonts[0].Family, styles.Fonts[0].Family
	}

	v.Palette = styles.Colors
	v.Fonts = styles.Fonts
}

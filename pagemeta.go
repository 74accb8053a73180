package brandkit

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var exactHexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// PageMeta is descriptive metadata declared by an HTML page.
// Every field is optional.
type PageMeta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ThemeColor  string `json:"theme_color,omitempty"`
}

// ExtractPageMeta reads the title, description, and theme color of an HTML
// document. Open Graph values are used when the plain ones are missing.
// Content that is not HTML yields an empty PageMeta.
func ExtractPageMeta(html string) PageMeta {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PageMeta{}
	}

	meta := func(selectors ...string) string {
		for _, sel := range selectors {
			if v, ok := doc.Find(sel).First().Attr("content"); ok {
				if v = strings.TrimSpace(v); v != "" {
					return v
				}
			}
		}
		return ""
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())
	if title == "" {
		title = meta(`meta[property="og:title"]`)
	}

	pm := PageMeta{
		Title:       strings.Join(strings.Fields(title), " "),
		Description: meta(`meta[name="description"]`, `meta[property="og:description"]`),
		ThemeColor:  meta(`meta[name="theme-color"]`),
	}
	if exactHexColor.MatchString(pm.ThemeColor) {
		pm.ThemeColor = NormalizeHex(pm.ThemeColor)
	}
	return pm
}

package brandkit

import "fmt"

// Tone describes a brand's voice.
type Tone struct {
	Primary string      `json:"primary"`
	Intro   string      `json:"intro"`
	Traits  []ToneTrait `json:"traits"`
}

// ToneTrait is one named quality of the voice.
type ToneTrait struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// AnalyzeTone returns the standard voice guidance for url. It does not
// inspect the page; every brand book starts from the same baseline.
func AnalyzeTone(url string) Tone {
	return Tone{
		Primary: "Professional & Trustworthy",
		Intro: fmt.Sprintf("These brand guidelines for %s ensure consistency across all visual and textual communications. "+
			"Our voice is clear, helpful, and modern.", url),
		Traits: []ToneTrait{
			{Name: "Clear", Desc: "We communicate complex ideas simply and directly."},
			{Name: "Helpful", Desc: "We are empathetic and always ready to assist our users."},
			{Name: "Modern", Desc: "We use forward-thinking design and language."},
		},
	}
}

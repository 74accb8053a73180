package brandkit

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-brandkit/internal/mdsection"
)

// Teaser field defaults, used whenever a probe does not match.
const (
	DefaultProjectName = "Startup Concept"
	DefaultProblem     = "Market lacks effective solution."
	DefaultSolution    = "AI-powered solution."
	DefaultTAM         = "$10B"
	DefaultSAM         = "$1B"
	DefaultSOM         = "$100M"
	DefaultVerdict     = "Decision Pending"
	DefaultGrantScore  = "N/A"
	DefaultLTV         = "1.5M"
	DefaultCAC         = "100k"
	DefaultRatio       = "N/A"

	// Without an Executive Summary section there is nothing to describe.
	UndefinedProblem  = "Undefined problem."
	UndefinedSolution = "Undefined solution."

	LTVLabel        = "LTV (RUB)"
	CACLabel        = "CAC (RUB)"
	EfficiencyLabel = "Efficiency"
)

// Chart bar heights used when no market estimate was found.
const (
	DefaultTAMNum = 100
	DefaultSAMNum = 50
	DefaultSOMNum = 10
)

// TeaserFields are the values a teaser is rendered from.
type TeaserFields struct {
	ProjectName  string   `json:"project_name"`
	Problem      string   `json:"problem"`
	Solution     string   `json:"solution"`
	TAMVal       string   `json:"tam_val"`
	SAMVal       string   `json:"sam_val"`
	SOMVal       string   `json:"som_val"`
	TAMNum       int      `json:"tam_num"`
	SAMNum       int      `json:"sam_num"`
	SOMNum       int      `json:"som_num"`
	Verdict      string   `json:"verdict"`
	GrantScore   string   `json:"grant_score"`
	Metric1Val   string   `json:"metric_1_val"`
	Metric1Label string   `json:"metric_1_label"`
	Metric2Val   string   `json:"metric_2_val"`
	Metric2Label string   `json:"metric_2_label"`
	Metric3Val   string   `json:"metric_3_val"`
	Metric3Label string   `json:"metric_3_label"`
	Risks        []string `json:"risks"`
}

// Map returns the fields as a flat name to string mapping. Risks are joined
// with "; ".
func (f TeaserFields) Map() map[string]string {
	return map[string]string{
		"project_name":   f.ProjectName,
		"problem":        f.Problem,
		"solution":       f.Solution,
		"tam_val":        f.TAMVal,
		"sam_val":        f.SAMVal,
		"som_val":        f.SOMVal,
		"tam_num":        strconv.Itoa(f.TAMNum),
		"sam_num":        strconv.Itoa(f.SAMNum),
		"som_num":        strconv.Itoa(f.SOMNum),
		"verdict":        f.Verdict,
		"grant_score":    f.GrantScore,
		"metric_1_val":   f.Metric1Val,
		"metric_1_label": f.Metric1Label,
		"metric_2_val":   f.Metric2Val,
		"metric_2_label": f.Metric2Label,
		"metric_3_val":   f.Metric3Val,
		"metric_3_label": f.Metric3Label,
		"risks":          strings.Join(f.Risks, "; "),
	}
}

// Section titles.
var (
	titlePattern   = regexp.MustCompile(`^Startup Analysis:\s*(.*)$`)
	summaryPattern = regexp.MustCompile(`(?i)executive summary`)
	verdictPattern = regexp.MustCompile(`(?i)verdict`)
	riskPattern    = regexp.MustCompile(`(?i)risk`)
)

// Probes. Each one runs on its own and falls back to its default.
var (
	conceptLabel = regexp.MustCompile(`(?s)\*\*Concept:\*\*(.*?)(?:\*\*|$)`)
	valueLabel   = regexp.MustCompile(`(?s)\*\*Value.*?:\*\*(.*?)(?:\*\*|$)`)

	tamEstimate = regexp.MustCompile(`(?i)TAM.*?Estimate:.*?(~?\$?[\d.]+.*)`)
	samEstimate = regexp.MustCompile(`(?i)SAM.*?Estimate:.*?(~?\$?[\d.]+.*)`)
	somEstimate = regexp.MustCompile(`(?i)SOM.*?Estimate:.*?(~?\$?[\d.]+.*)`)

	// "**Recommendation: GO**" and "**Recommendation:** GO".
	recommendationInline = regexp.MustCompile(`(?is)\*\*Recommendation:\s*(.*?)\*\*`)
	recommendationAfter  = regexp.MustCompile(`(?i)\*\*Recommendation:\*\*\s*(.+)`)

	noveltyScore = regexp.MustCompile(`(?i)Novelty.*?\|\s*\*\*(.*?)\*\*`)
	ltvValue     = regexp.MustCompile(`LTV \(Lifetime Value\): (.*?) RUB`)
	cacValue     = regexp.MustCompile(`CAC \(Customer Acquisition Cost\): (.*?) RUB`)
)

// ExtractTeaserFields reads a markdown startup analysis. It never fails:
// every field that cannot be found gets its default.
func ExtractTeaserFields(markdown string) TeaserFields {
	doc := mdsection.Parse(markdown)

	f := TeaserFields{
		ProjectName:  projectName(doc),
		Verdict:      verdict(doc),
		GrantScore:   probe(noveltyScore, markdown, DefaultGrantScore),
		Metric1Val:   probe(ltvValue, markdown, DefaultLTV),
		Metric1Label: LTVLabel,
		Metric2Val:   probe(cacValue, markdown, DefaultCAC),
		Metric2Label: CACLabel,
		Metric3Label: EfficiencyLabel,
		Risks:        risks(doc),
	}
	f.Problem, f.Solution = summary(doc)
	f.Metric3Val = EfficiencyRatio(f.Metric1Val, f.Metric2Val)

	var found [3]bool
	f.TAMVal, found[0] = estimate(tamEstimate, markdown, DefaultTAM)
	f.SAMVal, found[1] = estimate(samEstimate, markdown, DefaultSAM)
	f.SOMVal, found[2] = estimate(somEstimate, markdown, DefaultSOM)
	f.TAMNum, f.SAMNum, f.SOMNum = DefaultTAMNum, DefaultSAMNum, DefaultSOMNum
	if found[0] || found[1] || found[2] {
		f.TAMNum, f.SAMNum, f.SOMNum = marketBars(f.TAMVal, f.SAMVal, f.SOMVal)
	}
	return f
}

// probe returns the trimmed first group of pattern in text, or def.
func probe(pattern *regexp.Regexp, text, def string) string {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return def
	}
	if v := strings.TrimSpace(m[1]); v != "" {
		return v
	}
	return def
}

func projectName(doc mdsection.Document) string {
	s, ok := doc.FindLevel(1, titlePattern)
	if !ok {
		return DefaultProjectName
	}
	name := strings.Trim(titlePattern.FindStringSubmatch(s.Title)[1], `"`)
	if name == "" {
		return DefaultProjectName
	}
	return name
}

// summary returns problem and solution. The value proposition stands in
// for the problem statement.
func summary(doc mdsection.Document) (problem, solution string) {
	s, ok := doc.Find(summaryPattern)
	if !ok {
		return UndefinedProblem, UndefinedSolution
	}
	return probe(valueLabel, s.Body, DefaultProblem), probe(conceptLabel, s.Body, DefaultSolution)
}

func estimate(pattern *regexp.Regexp, text, def string) (string, bool) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return def, false
	}
	v := strings.Trim(m[1], "* \r")
	if v == "" {
		return def, false
	}
	return v, true
}

func verdict(doc mdsection.Document) string {
	s, ok := doc.Find(verdictPattern)
	if !ok {
		return DefaultVerdict
	}
	if v := probe(recommendationInline, s.Body, ""); v != "" {
		return v
	}
	return probe(recommendationAfter, s.Body, DefaultVerdict)
}

func risks(doc mdsection.Document) []string {
	s, ok := doc.Find(riskPattern)
	if !ok || len(s.Items) == 0 {
		return []string{}
	}
	return s.Items
}

// amountPattern reads "~$1.5M", "100k", "2,500 thousand", "$10 billion".
var amountPattern = regexp.MustCompile(
	`^\s*~?\s*[$€£₽]?\s*(\d[\d,]*(?:\.\d+)?|\.\d+)\s*(?i:(thousand|million|billion|trillion|bn|mm|[kmbt])\b)?`)

var amountScale = map[string]float64{
	"":         1,
	"k":        1e3,
	"thousand": 1e3,
	"m":        1e6,
	"mm":       1e6,
	"million":  1e6,
	"b":        1e9,
	"bn":       1e9,
	"billion":  1e9,
	"t":        1e12,
	"trillion": 1e12,
}

// ParseAmount reads a money amount with an optional k/M/B/T suffix.
func ParseAmount(s string) (float64, bool) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return n * amountScale[strings.ToLower(m[2])], true
}

// EfficiencyRatio returns ltv/cac as "N:1", with one decimal when N is not
// whole. It returns DefaultRatio when either amount cannot be read, cac
// is zero, or the ratio does not fit an int64.
func EfficiencyRatio(ltv, cac string) string {
	l, okL := ParseAmount(ltv)
	c, okC := ParseAmount(cac)
	if !okL || !okC || c == 0 {
		return DefaultRatio
	}
	r := l / c
	if math.IsInf(r, 0) || math.IsNaN(r) || math.Abs(r) >= math.MaxInt64 {
		return DefaultRatio
	}
	if whole := math.Round(r); math.Abs(r-whole) < 0.05 {
		return fmt.Sprintf("%d:1", int64(whole))
	}
	return fmt.Sprintf("%.1f:1", r)
}

// marketBars scales the three estimates to bar heights with TAM at 100.
// Unreadable estimates keep their default height; readable non-zero ones
// are at least 1 so the bar stays visible.
func marketBars(tam, sam, som string) (int, int, int) {
	total, ok := ParseAmount(tam)
	if !ok || total <= 0 {
		return DefaultTAMNum, DefaultSAMNum, DefaultSOMNum
	}
	scale := func(v string, def int) int {
		n, ok := ParseAmount(v)
		if !ok {
			return def
		}
		h := int(math.Round(n / total * 100))
		switch {
		case h > 100:
			return 100
		case h < 1 && n > 0:
			return 1
		case h < 0:
			return 0
		}
		return h
	}
	return 100, scale(sam, DefaultSAMNum), scale(som, DefaultSOMNum)
}

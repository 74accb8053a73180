// Package brandkit extracts style and business metadata from web pages and
// markdown analyses, and renders them into brand book and teaser documents.
//
// # Quick Start
//
// Extract the dominant colors and fonts of any text:
//
//	result := brandkit.ExtractStyles(`body { color: #333; font-family: "Inter", sans-serif; }`)
//	fmt.Println(result.Colors[0].Hex) // #333333
//
// Resolve a source first when it may be a URL or a file path:
//
//	raw, err := brandkit.ResolveSource(ctx, "https://example.com", brandkit.NewHTTPFetcher())
//	if err != nil {
//	    log.Fatal(err) // errors.Is(err, brandkit.ErrFetch)
//	}
//	result := brandkit.ExtractStyles(raw.Text)
//
// Sources are interpreted in priority order: a URL (http or https scheme) is
// fetched, an existing file is read, and anything else is treated as literal
// text. A missing file is therefore never an error.
//
// # Teaser Fields
//
// ExtractTeaserFields reads a markdown startup analysis and returns a fixed
// set of fields. Every field has a default, so extraction never fails:
//
//	fields := brandkit.ExtractTeaserFields(markdown)
//	fmt.Println(fields.Verdict) // "Decision Pending" when no verdict section exists
//
// # Documents
//
// Generator renders brand books and teasers to HTML and, when a browser is
// available, to PDF:
//
//	gen, err := brandkit.NewGenerator(brandkit.WithTimeout(time.Minute))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := gen.BrandBook(ctx, brandkit.BrandBookInput{URL: "https://example.com"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.HTMLPath, res.PDF.State)
//
// PDF export is optional. When Chrome cannot be found the result reports
// ExportSkipped and the HTML document is still written.
//
// # Browser Requirements
//
// PDF generation uses headless Chrome through go-rod. Set ROD_BROWSER_BIN to
// use a specific binary and ROD_NO_SANDBOX=1 in containers and CI.
package brandkit

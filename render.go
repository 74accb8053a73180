package brandkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/alnah/go-brandkit/internal/assets"
	"github.com/alnah/go-brandkit/internal/pipeline"
)

// TeaserCover is the fixed text printed on every teaser, around the fields
// read from the analysis.
type TeaserCover struct {
	Tagline    string
	Stage      string
	Date       string
	AskAmount  string
	AskPurpose string
}

// DefaultTeaserCover returns the cover text used when none is configured.
func DefaultTeaserCover() TeaserCover {
	return TeaserCover{
		Tagline:    "Innovative Solution for a Growing Market",
		Stage:      "Pre-Seed / Idea",
		Date:       "2026",
		AskAmount:  "4M RUB",
		AskPurpose: "MVP Development (FSIE Start-1)",
	}
}

// teaserView is the data the teaser template sees.
type teaserView struct {
	TeaserFields
	TeaserCover

	ProblemHTML  template.HTML
	SolutionHTML template.HTML
}

// templateRenderer executes named templates from a loader.
type templateRenderer struct {
	loader    assets.Loader
	fragments pipeline.FragmentRenderer
}

// render executes the template called name with data.
func (r *templateRenderer) render(name string, data any) (string, error) {
	src, err := r.loader.LoadTemplate(name)
	if err != nil {
		switch {
		case errors.Is(err, assets.ErrTemplateNotFound):
			return "", fmt.Errorf("%w: %w", ErrTemplateNotFound, err)
		case errors.Is(err, assets.ErrInvalidAssetName),
			errors.Is(err, assets.ErrPathTraversal),
			errors.Is(err, assets.ErrInvalidBasePath):
			return "", fmt.Errorf("%w: %w", ErrInvalidAssetPath, err)
		}
		return "", fmt.Errorf("%w: %w", ErrTemplateRender, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %w", ErrTemplateRender, name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: executing %s: %w", ErrTemplateRender, name, err)
	}
	return buf.String(), nil
}

// fragment renders a short markdown text to trusted HTML.
func (r *templateRenderer) fragment(ctx context.Context, markdown string) (template.HTML, error) {
	html, err := r.fragments.Fragment(ctx, markdown)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTemplateRender, err)
	}
	// #nosec G203 -- goldmark output with raw HTML disabled
	return template.HTML(html), nil
}

// renderBrandBook produces the brand book document.
func (r *templateRenderer) renderBrandBook(v brandBookView) (string, error) {
	return r.render(assets.BrandBookTemplate, v)
}

// renderTeaser produces the teaser document.
func (r *templateRenderer) renderTeaser(ctx context.Context, fields TeaserFields, cover TeaserCover) (string, error) {
	problem, err := r.fragment(ctx, fields.Problem)
	if err != nil {
		return "", err
	}
	solution, err := r.fragment(ctx, fields.Solution)
	if err != nil {
		return "", err
	}
	return r.render(assets.TeaserTemplate, teaserView{
		TeaserFields: fields,
		TeaserCover:  cover,
		ProblemHTML:  problem,
		SolutionHTML: solution,
	})
}

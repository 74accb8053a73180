// Package assets provides the HTML templates used to render brand books and
// teasers.
//
// Templates are embedded at compile time. A directory of overrides can be
// layered on top with NewResolver: a template found there wins, and missing
// ones fall back to the embedded copy.
//
//	{basePath}/
//	└── templates/
//	    ├── brandbook.html
//	    └── teaser.html
//
// Template names are validated, and filesystem lookups resolve symlinks and
// must stay inside basePath.
package assets

// Built-in template names.
const (
	BrandBookTemplate = "brandbook"
	TeaserTemplate    = "teaser"
)

// Loader loads HTML templates by name, without the .html extension.
type Loader interface {
	// LoadTemplate returns ErrTemplateNotFound when the template does not
	// exist and ErrInvalidAssetName when the name is unsafe.
	LoadTemplate(name string) (string, error)
}

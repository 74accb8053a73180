package assets

import "errors"

// Resolver tries a custom directory first and falls back to the embedded
// templates when the custom one has no such template.
type Resolver struct {
	custom   Loader // nil when no base path is configured
	embedded Loader
}

// NewResolver creates a Resolver. An empty customBasePath means embedded only.
func NewResolver(customBasePath string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if customBasePath == "" {
		return r, nil
	}
	fsLoader, err := NewFilesystemLoader(customBasePath)
	if err != nil {
		return nil, err
	}
	r.custom = fsLoader
	return r, nil
}

// LoadTemplate loads name from the custom directory, then the embedded set.
// Validation and read errors from the custom directory are not masked.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}
	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}
	return r.embedded.LoadTemplate(name)
}

// HasCustomLoader reports whether a custom directory is layered on top.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)

// Package pipeline converts markdown prose into HTML fragments for the
// report templates.
//
// Fragments are produced by goldmark with GFM extensions and chroma
// highlighting. Raw HTML in the markdown is dropped, so fragments are safe
// to embed in html/template output as template.HTML.
package pipeline

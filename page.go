package md2tmpl

import (
	"path/filepath"
	"strings"
)

// File name suffixes around a page's prefix.
const (
	templateSuffix = ".template.html"
	renderedSuffix = ".rendered.html"
	fragmentSuffix = ".md"
)

// Page is one logical page: a base template plus ordered Markdown fragments,
// all under Dir and named after Prefix.
type Page struct {
	Dir       string
	Prefix    string
	Fragments []string // Block names, in output order
}

// TemplatePath returns {Dir}/{Prefix}.template.html.
func (p Page) TemplatePath() string {
	return filepath.Join(p.Dir, p.Prefix+templateSuffix)
}

// FragmentPath returns {Dir}/{Prefix}.{name}.md.
func (p Page) FragmentPath(name string) string {
	return filepath.Join(p.Dir, p.Prefix+"."+name+fragmentSuffix)
}

// RenderedPath returns {Dir}/{Prefix}.rendered.html.
func (p Page) RenderedPath() string {
	return filepath.Join(p.Dir, p.Prefix+renderedSuffix)
}

// IsInputFile reports whether path names a page input (fragment or base
// template) rather than a rendered output.
func IsInputFile(path string) bool {
	base := filepath.Base(path)
	if strings.HasSuffix(base, renderedSuffix) {
		return false
	}
	return strings.HasSuffix(base, fragmentSuffix) || strings.HasSuffix(base, templateSuffix)
}

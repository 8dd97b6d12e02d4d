package md2tmpl

import (
	"errors"

	"github.com/alnah/go-md2tmpl/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrReadTemplate  = errors.New("failed to read base template")
	ErrReadFragment  = errors.New("failed to read markdown fragment")
	ErrWriteRendered = errors.New("failed to write rendered template")
	ErrFragmentCount = errors.New("fragment contents do not match fragment names")

	// ErrHTMLConversion indicates the Markdown renderer failed.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)

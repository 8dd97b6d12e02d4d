package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkOption configures a GoldmarkConverter.
type GoldmarkOption func(*goldmarkConfig)

type goldmarkConfig struct {
	highlight      bool
	highlightStyle string
}

// WithHighlighting enables syntax highlighting of fenced code blocks.
// Output uses CSS classes; style selects the chroma style name and may be
// empty for the library default.
func WithHighlighting(style string) GoldmarkOption {
	return func(c *goldmarkConfig) {
		c.highlight = true
		c.highlightStyle = style
	}
}

// GoldmarkConverter renders CommonMark to an HTML fragment using goldmark.
// No dialect extensions are enabled.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

var _ HTMLConverter = (*GoldmarkConverter)(nil)

// NewGoldmarkConverter creates a CommonMark GoldmarkConverter with slugged
// heading anchors.
func NewGoldmarkConverter(opts ...GoldmarkOption) *GoldmarkConverter {
	var cfg goldmarkConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var extensions []goldmark.Extender
	if cfg.highlight {
		hlOpts := []highlighting.Option{
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // CSS classes so the host stylesheet controls colors
			),
		}
		if cfg.highlightStyle != "" {
			hlOpts = append(hlOpts, highlighting.WithStyle(cfg.highlightStyle))
		}
		extensions = append(extensions, highlighting.NewHighlighting(hlOpts...))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(headingAnchors{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			// Required: link placeholders are raw HTML and must not be omitted.
			html.WithUnsafe(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Goldmark has no context support, so ctx is only checked before converting;
// a render in progress runs to completion on the caller's goroutine.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	pc := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	if err := c.md.Convert([]byte(content), &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}

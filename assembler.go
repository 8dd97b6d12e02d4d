package md2tmpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2tmpl/internal/pipeline"
)

// Default element names.
const (
	DefaultBlockElement = "ng-template"
	DefaultLinkElement  = pipeline.DefaultLinkElement
)

// Renderer turns one Markdown fragment into HTML.
type Renderer interface {
	Render(ctx context.Context, markdown string) (string, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*pipeline.Pipeline)(nil)

// Option configures an Assembler.
type Option func(*assemblerConfig)

type assemblerConfig struct {
	blockElement   string
	linkElement    string
	highlight      bool
	highlightStyle string
	renderer       Renderer
}

// WithBlockElement sets the element wrapping each named block.
// Blocks are emitted as <element #name>...</element>.
func WithBlockElement(name string) Option {
	return func(c *assemblerConfig) {
		if name != "" {
			c.blockElement = name
		}
	}
}

// WithLinkElement sets the placeholder element Markdown links become.
func WithLinkElement(name string) Option {
	return func(c *assemblerConfig) {
		if name != "" {
			c.linkElement = name
		}
	}
}

// WithHighlighting enables syntax highlighting of fenced code blocks with
// CSS classes. style is a chroma style name, or empty for the default.
func WithHighlighting(style string) Option {
	return func(c *assemblerConfig) {
		c.highlight = true
		c.highlightStyle = style
	}
}

// WithRenderer replaces the Markdown rendering pipeline. Link and
// highlighting options are ignored when set.
func WithRenderer(r Renderer) Option {
	return func(c *assemblerConfig) {
		c.renderer = r
	}
}

// Assembler builds a page's combined template: one named block per fragment,
// in order, followed by the base template.
type Assembler struct {
	renderer     Renderer
	blockElement string
}

// NewAssembler creates an Assembler backed by the CommonMark pipeline.
func NewAssembler(opts ...Option) *Assembler {
	cfg := assemblerConfig{
		blockElement: DefaultBlockElement,
		linkElement:  DefaultLinkElement,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	renderer := cfg.renderer
	if renderer == nil {
		var goldmarkOpts []pipeline.GoldmarkOption
		if cfg.highlight {
			goldmarkOpts = append(goldmarkOpts, pipeline.WithHighlighting(cfg.highlightStyle))
		}
		renderer = pipeline.NewPipeline(cfg.linkElement, goldmarkOpts...)
	}

	return &Assembler{
		renderer:     renderer,
		blockElement: cfg.blockElement,
	}
}

// RenderFragment renders a single Markdown fragment to HTML.
func (a *Assembler) RenderFragment(ctx context.Context, markdown string) (string, error) {
	return a.renderer.Render(ctx, markdown)
}

// Assemble renders fragments[i] as the block named page.Fragments[i] and
// appends baseTemplate verbatim. Output depends only on its inputs.
func (a *Assembler) Assemble(ctx context.Context, page Page, fragments []string, baseTemplate string) (string, error) {
	if len(fragments) != len(page.Fragments) {
		return "", fmt.Errorf("%w: %d names, %d contents", ErrFragmentCount, len(page.Fragments), len(fragments))
	}

	var b strings.Builder
	for i, name := range page.Fragments {
		html, err := a.renderer.Render(ctx, fragments[i])
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", page.FragmentPath(name), err)
		}
		a.writeBlock(&b, name, html)
	}
	b.WriteString(baseTemplate)

	return b.String(), nil
}

// AssemblePage reads the base template and every fragment through r, then
// assembles them. The first read error aborts.
func (a *Assembler) AssemblePage(ctx context.Context, page Page, r TextReader) (string, error) {
	templatePath := page.TemplatePath()
	baseTemplate, err := r.ReadText(templatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReadTemplate, templatePath, err)
	}

	fragments := make([]string, 0, len(page.Fragments))
	for _, name := range page.Fragments {
		fragmentPath := page.FragmentPath(name)
		content, err := r.ReadText(fragmentPath)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrReadFragment, fragmentPath, err)
		}
		fragments = append(fragments, content)
	}

	return a.Assemble(ctx, page, fragments, baseTemplate)
}

// writeBlock writes <element #name>\nHTML\n</element>\n\n.
func (a *Assembler) writeBlock(b *strings.Builder, name, html string) {
	b.WriteString("<" + a.blockElement + " #" + name + ">\n")
	b.WriteString(strings.TrimSpace(html))
	b.WriteString("\n</" + a.blockElement + ">\n\n")
}

package pipeline

import "context"

// Pipeline renders one Markdown fragment to final HTML.
type Pipeline struct {
	preprocessor  MarkdownPreprocessor
	htmlConverter HTMLConverter
}

// NewPipeline creates a Pipeline. linkElement names the placeholder element
// for rewritten links (empty = DefaultLinkElement).
func NewPipeline(linkElement string, opts ...GoldmarkOption) *Pipeline {
	return &Pipeline{
		preprocessor:  &LinkRewriter{Element: linkElement},
		htmlConverter: NewGoldmarkConverter(opts...),
	}
}

// Render rewrites links, renders CommonMark, then strips passthrough markers.
// The order is load-bearing: links must become raw HTML before Goldmark
// parses blocks, and the markers only exist to survive that parse.
func (p *Pipeline) Render(ctx context.Context, markdown string) (string, error) {
	content := p.preprocessor.PreprocessMarkdown(markdown)

	rendered, err := p.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return "", err
	}

	return StripPassthrough(rendered), nil
}

package pipeline

import (
	"regexp"
	"strings"
)

// DefaultLinkElement is the element links are rewritten into. The host
// template layer provides a component with this name that renders the link.
const DefaultLinkElement = "app-generated-link"

// Marker tags wrap generated placeholders so Goldmark passes them through as
// raw HTML. StripPassthrough removes them after rendering.
const (
	markerOpen  = "<html>"
	markerClose = "</html>"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Markdown link [text](href). Lazy so several links on one line and a
	// link inside parentheses, "([text](href))", match separately.
	linkPattern = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// LinkRewriter rewrites Markdown links into placeholder elements.
type LinkRewriter struct {
	// Element is the placeholder element name. Empty means DefaultLinkElement.
	Element string
}

var _ MarkdownPreprocessor = (*LinkRewriter)(nil)

// PreprocessMarkdown normalizes line endings, then rewrites links.
func (r *LinkRewriter) PreprocessMarkdown(content string) string {
	content = normalizeLineEndings(content)
	return rewriteLinks(content, r.element())
}

func (r *LinkRewriter) element() string {
	if r == nil || r.Element == "" {
		return DefaultLinkElement
	}
	return r.Element
}

// RewriteLinks replaces every [text](href) with
// <html><app-generated-link linkHREF="href">text</app-generated-link></html>.
//
// Double quotes in the link text are encoded as &quot;. The href is embedded
// verbatim: it may be a template expression rather than a URL.
// Text without links is returned unchanged.
func RewriteLinks(content string) string {
	return rewriteLinks(content, DefaultLinkElement)
}

func rewriteLinks(content, element string) string {
	return linkPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := linkPattern.FindStringSubmatch(match)
		linkText := strings.ReplaceAll(groups[1], `"`, "&quot;")
		linkHref := groups[2]

		var b strings.Builder
		b.Grow(len(match) + 2*len(element) + 40)
		b.WriteString(markerOpen)
		b.WriteString("<" + element + ` linkHREF="` + linkHref + `">`)
		b.WriteString(linkText)
		b.WriteString("</" + element + ">")
		b.WriteString(markerClose)
		return b.String()
	})
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

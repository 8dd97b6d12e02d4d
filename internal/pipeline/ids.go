package pipeline

import (
	"bytes"
	"strconv"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// headingIDs implements parser.IDs with Slugify.
// Repeated slugs within one document get a numeric suffix (title, title-1,
// title-2). A fresh instance is used per render, so nothing leaks between
// fragments.
type headingIDs struct {
	seen map[string]struct{}
}

var _ parser.IDs = (*headingIDs)(nil)

func newHeadingIDs() *headingIDs {
	return &headingIDs{seen: make(map[string]struct{})}
}

// Generate returns a unique anchor id for value.
func (ids *headingIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	slug := Slugify(string(value))
	unique := slug
	for i := 1; ids.has(unique); i++ {
		unique = slug + "-" + strconv.Itoa(i)
	}
	ids.seen[unique] = struct{}{}
	return []byte(unique)
}

// Put reserves an id that was set explicitly.
func (ids *headingIDs) Put(value []byte) {
	ids.seen[string(value)] = struct{}{}
}

func (ids *headingIDs) has(id string) bool {
	_, ok := ids.seen[id]
	return ok
}

// headingAnchors assigns an id attribute to every heading.
//
// Goldmark's built-in auto heading ids slug the raw source line, which would
// include the placeholder markup of rewritten links. This transformer slugs
// the heading's text content only, skipping raw HTML.
type headingAnchors struct{}

var _ parser.ASTTransformer = headingAnchors{}

// Transform implements parser.ASTTransformer.
func (headingAnchors) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	ids := pc.IDs()

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if _, exists := heading.AttributeString("id"); !exists {
			heading.SetAttributeString("id", ids.Generate(headingText(heading, source), ast.KindHeading))
		}
		return ast.WalkSkipChildren, nil
	})
}

// headingText collects the text content of a heading, ignoring raw HTML.
// Entity and numeric references and backslash escapes are decoded, so
// "Q&amp;A" contributes "Q&A". Code span text is taken verbatim.
func headingText(heading *ast.Heading, source []byte) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			value := node.Segment.Value(source)
			if !node.IsRaw() {
				value = util.UnescapePunctuations(util.ResolveNumericReferences(util.ResolveEntityNames(value)))
			}
			buf.Write(value)
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}

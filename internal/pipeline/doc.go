// Package pipeline implements the Markdown-to-HTML rendering pipeline used to
// build named template blocks.
//
// A fragment goes through three stages, in this order:
//   - Link rewriting: [text](href) becomes a placeholder element wrapped in an
//     <html> marker, so the href may hold template interpolations that are not
//     URLs (e.g. {{ linkHref }}).
//   - CommonMark rendering via Goldmark, with heading anchors generated by
//     Slugify.
//   - Marker stripping: the <html> marker only exists so Goldmark emits the
//     placeholder as raw HTML; it is removed from the rendered output.
//
// Rewriting must run on raw Markdown before block parsing, and stripping must
// run after rendering. Pipeline.Render enforces that order.
package pipeline

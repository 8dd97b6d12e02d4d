package pipeline

import (
	"regexp"
	"strings"
)

var (
	// Anything outside [a-z0-9] becomes a hyphen
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]`)

	// Runs of hyphens collapse into one
	hyphenRuns = regexp.MustCompile(`-+`)

	// Slugs starting with a digit are not valid ids
	leadingDigit = regexp.MustCompile(`^([0-9])`)
)

// Slugify converts heading text into an anchor id.
//
// The text is trimmed and lowercased, every character outside [a-z0-9] is
// replaced by a hyphen, hyphen runs are collapsed, and a single trailing
// hyphen is dropped. Leading hyphens are kept: existing anchors depend on it.
// A slug starting with a digit gets an "id-" prefix.
//
// Slugify is idempotent: Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	slug := strings.TrimSpace(text)
	slug = strings.ToLower(slug)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.TrimSuffix(slug, "-")
	slug = leadingDigit.ReplaceAllString(slug, "id-$1")
	return slug
}

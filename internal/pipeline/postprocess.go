package pipeline

import "regexp"

// markerTags matches the passthrough marker's opening and closing tags.
var markerTags = regexp.MustCompile(`<html>|</html>`)

// StripPassthrough removes every <html> and </html> marker tag from rendered
// HTML, keeping the content between them. Nothing else is altered.
func StripPassthrough(html string) string {
	return markerTags.ReplaceAllString(html, "")
}

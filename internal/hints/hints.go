// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, the user config location.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/pages.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-md2tmpl") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingInput returns hints for a page input file that does not exist.
// Fragment files follow {prefix}.{name}.md, templates {prefix}.template.html.
func ForMissingInput(path string) string {
	base := filepath.Base(path)
	if strings.HasSuffix(base, ".template.html") {
		return format("each page needs a base template named {prefix}.template.html next to its fragments")
	}
	if strings.HasSuffix(base, ".md") {
		return format("check the page's fragment names; files are read as {prefix}.{fragment}.md")
	}
	return ""
}

// ForOutputDirectory returns hints for rendered output write errors.
func ForOutputDirectory() string {
	return format("check the page directory exists and is writable")
}

// ForWatch returns hints for file watcher setup errors.
func ForWatch() string {
	return format("on Linux, raise fs.inotify.max_user_watches or run without --watch")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

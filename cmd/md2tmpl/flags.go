package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags describe one ad-hoc page given on the command line.
type pageFlags struct {
	dir       string
	prefix    string
	fragments []string
}

// isSet reports whether any page flag was given.
func (p pageFlags) isSet() bool {
	return p.dir != "" || p.prefix != "" || len(p.fragments) > 0
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common         commonFlags
	page           pageFlags
	highlight      bool
	highlightStyle string
	linkElement    string
	blockElement   string
	watch          bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addPageFlags adds ad-hoc page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVar(&f.dir, "dir", "", "page directory (default: current directory)")
	fs.StringVar(&f.prefix, "prefix", "", "page file prefix")
	fs.StringSliceVarP(&f.fragments, "fragment", "f", nil, "fragment name, repeatable, in output order")
}

// parseRenderFlags parses render command flags. Usage and parse errors are
// written to w. Returns the flags and remaining positional arguments.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	f := &renderFlags{}

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	fs.BoolVar(&f.highlight, "highlight", false, "syntax highlight fenced code blocks")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for highlighting")
	fs.StringVar(&f.linkElement, "link-element", "", "element replacing Markdown links")
	fs.StringVar(&f.blockElement, "block-element", "", "element wrapping each fragment")
	fs.BoolVarP(&f.watch, "watch", "w", false, "re-render when inputs change")

	fs.SetOutput(w)
	fs.Usage = func() { printRenderUsage(w) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}

	return f, fs.Args(), nil
}

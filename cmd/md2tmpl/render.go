package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	md2tmpl "github.com/alnah/go-md2tmpl"
	"github.com/alnah/go-md2tmpl/internal/config"
	"github.com/alnah/go-md2tmpl/internal/hints"
	"github.com/alnah/go-md2tmpl/internal/watch"
)

// ErrWatch indicates the file watcher could not be started.
var ErrWatch = errors.New("watch failed")

// defaultConfigName is searched when neither a config nor an ad-hoc page is given.
const defaultConfigName = "md2tmpl"

// runRender renders every configured page, then keeps watching with --watch.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: %s", ErrUnexpectedArgs, strings.Join(positional, " "))
	}

	log := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug().Msgf(format, args...)
	}))

	if !flags.common.quiet && env.Environ != nil {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	pages := toPages(cfg.Pages)
	if len(pages) == 0 {
		log.Warn().Msg("no pages configured, nothing to render")
		return nil
	}

	notices := env.Stdout
	if flags.common.quiet {
		notices = io.Discard
	}
	driver := md2tmpl.NewDriver(newAssembler(cfg.Render),
		md2tmpl.WithFileSystem(env.FS),
		md2tmpl.WithNotices(notices),
		md2tmpl.WithLogger(log),
	)

	err = driver.Run(ctx, pages)
	if !flags.watch {
		return err
	}
	if err != nil {
		reportError(env.Stderr, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Watching %d page(s) for changes (Ctrl+C to stop)\n", len(pages))
	}
	return watchPages(ctx, driver, pages, env.Stderr, log)
}

// resolveConfig loads the config file, then layers env vars and flags on top.
// Priority: CLI flags > config file > env vars > defaults.
// Ad-hoc page flags without an explicit config skip the default config lookup.
func resolveConfig(flags *renderFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig(env.Getenv)

	name := flags.common.config
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" && !flags.page.isSet() {
		name = defaultConfigName
	}

	cfg := &config.Config{}
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies CLI flags to config (CLI wins). An ad-hoc page is
// appended after the configured pages.
func mergeFlags(flags *renderFlags, cfg *config.Config) {
	if flags.highlight {
		cfg.Render.Highlight = true
	}
	if flags.highlightStyle != "" {
		cfg.Render.HighlightStyle = flags.highlightStyle
	}
	if flags.linkElement != "" {
		cfg.Render.LinkElement = flags.linkElement
	}
	if flags.blockElement != "" {
		cfg.Render.BlockElement = flags.blockElement
	}

	if flags.page.isSet() {
		dir := flags.page.dir
		if dir == "" {
			dir = "."
		}
		cfg.Pages = append(cfg.Pages, config.PageConfig{
			Dir:       dir,
			Prefix:    flags.page.prefix,
			Fragments: flags.page.fragments,
		})
	}
}

// toPages converts validated page configs to library pages.
func toPages(configs []config.PageConfig) []md2tmpl.Page {
	pages := make([]md2tmpl.Page, 0, len(configs))
	for _, pc := range configs {
		pages = append(pages, md2tmpl.Page{
			Dir:       pc.Dir,
			Prefix:    pc.Prefix,
			Fragments: pc.Fragments,
		})
	}
	return pages
}

// newAssembler builds an assembler from render options. Empty element
// names keep md2tmpl.DefaultLinkElement and md2tmpl.DefaultBlockElement.
func newAssembler(rc config.RenderConfig) *md2tmpl.Assembler {
	opts := []md2tmpl.Option{
		md2tmpl.WithLinkElement(rc.LinkElement),
		md2tmpl.WithBlockElement(rc.BlockElement),
	}
	if rc.Highlight {
		opts = append(opts, md2tmpl.WithHighlighting(rc.HighlightStyle))
	}
	return md2tmpl.NewAssembler(opts...)
}

// watchPages re-runs the whole batch after input changes until ctx is done.
// Failed runs are reported and watching continues.
func watchPages(ctx context.Context, driver *md2tmpl.Driver, pages []md2tmpl.Page, stderr io.Writer, log zerolog.Logger) error {
	dirs := make([]string, 0, len(pages))
	for _, p := range pages {
		dirs = append(dirs, p.Dir)
	}

	w := watch.New(dirs, md2tmpl.IsInputFile, watch.WithLogger(log))
	err := w.Run(ctx, func(ctx context.Context) {
		if err := driver.Run(ctx, pages); err != nil && ctx.Err() == nil {
			reportError(stderr, err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatch, err)
	}
	return nil
}

// reportError prints err with an actionable hint when one applies.
func reportError(w io.Writer, err error) {
	fmt.Fprintln(w, "error:", err.Error()+hintFor(err))
}

// hintFor returns a formatted hint for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		return hints.ForConfigNotFound(notFound.Tried)
	}

	if errors.Is(err, md2tmpl.ErrWriteRendered) {
		return hints.ForOutputDirectory()
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && errors.Is(err, fs.ErrNotExist) &&
		(errors.Is(err, md2tmpl.ErrReadTemplate) || errors.Is(err, md2tmpl.ErrReadFragment)) {
		return hints.ForMissingInput(pathErr.Path)
	}

	if errors.Is(err, ErrWatch) {
		return hints.ForWatch()
	}

	return ""
}

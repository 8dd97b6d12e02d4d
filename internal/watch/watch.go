// Package watch re-runs a build when page input files change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce coalesces bursts of events (editors often write twice).
const DefaultDebounce = 100 * time.Millisecond

// ErrNoDirectories indicates there is nothing to watch.
var ErrNoDirectories = errors.New("no directories to watch")

// Watcher watches a set of directories and triggers on matching files.
type Watcher struct {
	dirs     []string
	match    func(path string) bool
	debounce time.Duration
	log      zerolog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a change triggers.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watcher diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// New creates a Watcher for dirs. Only events whose path satisfies match
// trigger a change. Duplicate directories are watched once.
func New(dirs []string, match func(path string) bool, opts ...Option) *Watcher {
	w := &Watcher{
		dirs:     uniqueDirs(dirs),
		match:    match,
		debounce: DefaultDebounce,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run blocks until ctx is done, calling onChange after each debounced burst
// of matching writes or creates. Calls are sequential: a change that arrives
// while onChange runs triggers one more call afterwards.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context)) error {
	if len(w.dirs) == 0 {
		return ErrNoDirectories
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		w.log.Debug().Str("dir", dir).Msg("watching")
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.match(event.Name) {
				continue
			}
			w.log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			timer.Reset(w.debounce)

		case <-timer.C:
			onChange(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

// uniqueDirs cleans and de-duplicates directories, sorted for stable logs.
func uniqueDirs(dirs []string) []string {
	seen := make(map[string]struct{}, len(dirs))
	out := make([]string, 0, len(dirs))
	for _, d := range dirs {
		clean := filepath.Clean(d)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	sort.Strings(out)
	return out
}

package md2tmpl

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithFileSystem sets the file I/O used to read inputs and write outputs.
func WithFileSystem(fs FileSystem) DriverOption {
	return func(d *Driver) {
		d.fs = fs
	}
}

// WithNotices sets where "Rendered <path>" lines are written.
func WithNotices(w io.Writer) DriverOption {
	return func(d *Driver) {
		d.notices = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log zerolog.Logger) DriverOption {
	return func(d *Driver) {
		d.log = log
	}
}

// Driver renders a list of pages one at a time, in order.
type Driver struct {
	assembler *Assembler
	fs        FileSystem
	notices   io.Writer
	log       zerolog.Logger
}

// NewDriver creates a Driver writing to the local disk with no notices.
func NewDriver(assembler *Assembler, opts ...DriverOption) *Driver {
	d := &Driver{
		assembler: assembler,
		fs:        OSFileSystem{},
		notices:   io.Discard,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run renders every page in order. The first failure stops the run: the
// failing page's output is not written and later pages are not touched.
// Errors wrap the underlying file system error.
func (d *Driver) Run(ctx context.Context, pages []Page) error {
	start := time.Now()

	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := d.RenderPage(ctx, page); err != nil {
			return err
		}
	}

	d.log.Debug().Int("pages", len(pages)).Dur("elapsed", time.Since(start)).Msg("run complete")
	return nil
}

// RenderPage assembles one page, writes its rendered template and prints a
// notice. It returns the output path.
func (d *Driver) RenderPage(ctx context.Context, page Page) (string, error) {
	start := time.Now()

	combined, err := d.assembler.AssemblePage(ctx, page, d.fs)
	if err != nil {
		return "", err
	}

	outputPath := page.RenderedPath()
	if err := d.fs.WriteText(outputPath, combined); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteRendered, outputPath, err)
	}

	fmt.Fprintf(d.notices, "Rendered %s\n", outputPath)
	d.log.Debug().
		Str("page", page.Prefix).
		Int("fragments", len(page.Fragments)).
		Dur("elapsed", time.Since(start)).
		Msg("page rendered")

	return outputPath, nil
}

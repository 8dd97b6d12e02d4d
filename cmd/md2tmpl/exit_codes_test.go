package main

// Notes:
// - exitCodeFor: we test sentinel errors from the library, config and CLI,
//   plus wrapped errors to verify the errors.Is() chain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	md2tmpl "github.com/alnah/go-md2tmpl"
	"github.com/alnah/go-md2tmpl/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"html conversion", md2tmpl.ErrHTMLConversion, ExitGeneral},

		{"config not found", &config.NotFoundError{Tried: []string{"x.yaml"}}, ExitUsage},
		{"config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid page", config.ErrInvalidPage, ExitUsage},
		{"invalid fragment", config.ErrInvalidFragment, ExitUsage},
		{"invalid element", config.ErrInvalidElement, ExitUsage},
		{"missing page field", config.ErrMissingPageField, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"invalid flags", fmt.Errorf("%w: bad", ErrInvalidFlags), ExitUsage},
		{"unexpected args", ErrUnexpectedArgs, ExitUsage},

		{"not exist", fs.ErrNotExist, ExitIO},
		{"permission", fs.ErrPermission, ExitIO},
		{"read template", fmt.Errorf("%w: t.html: %w", md2tmpl.ErrReadTemplate, fs.ErrNotExist), ExitIO},
		{"read fragment", md2tmpl.ErrReadFragment, ExitIO},
		{"write rendered", fmt.Errorf("%w: out: %w", md2tmpl.ErrWriteRendered, errors.New("disk full")), ExitIO},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_BelowReserved(t *testing.T) {
	t.Parallel()

	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}

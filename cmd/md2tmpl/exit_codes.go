package main

import (
	"errors"
	"os"

	md2tmpl "github.com/alnah/go-md2tmpl"
	"github.com/alnah/go-md2tmpl/internal/config"
)

// Exit codes for the md2tmpl CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every page rendered
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Input not found, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidPage) ||
		errors.Is(err, config.ErrInvalidFragment) ||
		errors.Is(err, config.ErrInvalidElement) ||
		errors.Is(err, config.ErrMissingPageField) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnexpectedArgs) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2tmpl.ErrReadTemplate) ||
		errors.Is(err, md2tmpl.ErrReadFragment) ||
		errors.Is(err, md2tmpl.ErrWriteRendered) {
		return ExitIO
	}

	return ExitGeneral
}

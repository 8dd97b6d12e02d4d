// Package decode wraps YAML and TOML parsing to isolate the external
// dependencies. Callers pick a format by file extension and never import the
// underlying libraries.
package decode

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxInputSize limits input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData           = errors.New("decode: nil or empty data")
	ErrNilDestination    = errors.New("decode: nil destination pointer")
	ErrInputTooLarge     = errors.New("decode: input exceeds maximum size")
	ErrUnsupportedFormat = errors.New("decode: unsupported format")
)

// Format identifies a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Extensions lists recognized config file extensions in lookup order.
var Extensions = []string{".yaml", ".yml", ".toml"}

// FormatFor returns the format implied by a file path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Strict decodes data in the given format, rejecting unknown fields.
func Strict(format Format, data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	switch format {
	case FormatYAML:
		return yamlStrict(data, v)
	case FormatTOML:
		return tomlStrict(data, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

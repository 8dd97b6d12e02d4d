package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alnah/go-md2tmpl/internal/decode"
	"github.com/alnah/go-md2tmpl/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrFieldTooLong     = errors.New("field exceeds maximum length")
	ErrInvalidPage      = errors.New("invalid page")
	ErrInvalidFragment  = errors.New("invalid fragment name")
	ErrInvalidElement   = errors.New("invalid element name")
	ErrMissingPageField = errors.New("missing page field")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxPrefixLength   = 255  // File name component
	MaxFragmentLength = 100  // Template reference name
	MaxElementLength  = 100  // Custom element tag name
	MaxStyleLength    = 50   // Chroma style name
)

var (
	// Fragment names become template reference variables (#name).
	fragmentNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// HTML tag name, hyphens allowed for custom elements.
	elementNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)
)

// Config holds the page list and rendering options.
type Config struct {
	Render RenderConfig `yaml:"render" toml:"render"`
	Pages  []PageConfig `yaml:"pages" toml:"pages"`
}

// RenderConfig defines rendering options shared by every page.
type RenderConfig struct {
	Highlight      bool   `yaml:"highlight" toml:"highlight"`           // Syntax highlight fenced code (default: false)
	HighlightStyle string `yaml:"highlightStyle" toml:"highlightStyle"` // Chroma style name (empty = library default)
	LinkElement    string `yaml:"linkElement" toml:"linkElement"`       // Placeholder for links (empty = library default)
	BlockElement   string `yaml:"blockElement" toml:"blockElement"`     // Named block wrapper (empty = library default)
}

// PageConfig describes one page: {Dir}/{Prefix}.{fragment}.md for each
// fragment, {Dir}/{Prefix}.template.html as the base template.
type PageConfig struct {
	Dir       string   `yaml:"dir" toml:"dir"`
	Prefix    string   `yaml:"prefix" toml:"prefix"`
	Fragments []string `yaml:"fragments" toml:"fragments"`
}

// Validate checks pages and render options.
// Called automatically by LoadConfig, but available for callers who build a
// Config from flags.
func (c *Config) Validate() error {
	if err := validateElement("render.linkElement", c.Render.LinkElement); err != nil {
		return err
	}
	if err := validateElement("render.blockElement", c.Render.BlockElement); err != nil {
		return err
	}
	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}

	for i, page := range c.Pages {
		if err := page.validate(fmt.Sprintf("pages[%d]", i)); err != nil {
			return err
		}
	}

	return nil
}

func (p PageConfig) validate(field string) error {
	if p.Dir == "" {
		return fmt.Errorf("%w: %s.dir", ErrMissingPageField, field)
	}
	if p.Prefix == "" {
		return fmt.Errorf("%w: %s.prefix", ErrMissingPageField, field)
	}
	if err := validateFieldLength(field+".dir", p.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength(field+".prefix", p.Prefix, MaxPrefixLength); err != nil {
		return err
	}
	if strings.ContainsAny(p.Prefix, "/\\\x00") {
		return fmt.Errorf("%w: %s.prefix %q contains a path separator", ErrInvalidPage, field, p.Prefix)
	}

	for j, name := range p.Fragments {
		fragField := fmt.Sprintf("%s.fragments[%d]", field, j)
		if err := validateFieldLength(fragField, name, MaxFragmentLength); err != nil {
			return err
		}
		if !fragmentNamePattern.MatchString(name) {
			return fmt.Errorf("%w: %s %q (letters, digits and underscores, not starting with a digit)", ErrInvalidFragment, fragField, name)
		}
		if name == "template" || name == "rendered" {
			return fmt.Errorf("%w: %s %q collides with the page's template or output file", ErrInvalidFragment, fragField, name)
		}
	}

	return nil
}

// validateElement checks an optional element name. Empty means default.
func validateElement(field, name string) error {
	if name == "" {
		return nil
	}
	if err := validateFieldLength(field, name, MaxElementLength); err != nil {
		return err
	}
	if !elementNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %s %q", ErrInvalidElement, field, name)
	}
	if strings.EqualFold(name, "html") {
		return fmt.Errorf("%w: %s cannot be \"html\" (reserved for passthrough markers)", ErrInvalidElement, field)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// NotFoundError reports every location searched for a config name.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// The format follows the file extension (.yaml, .yml, .toml).
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || hasConfigExtension(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	format, err := decode.FormatFor(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decode.Strict(format, data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func hasConfigExtension(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, known := range decode.Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml, .toml
// Tries locations in order: current directory, ~/.config/go-md2tmpl/
func resolveConfigPath(name string) (string, error) {
	triedPaths := make([]string, 0, len(decode.Extensions)*2) // 2 locations

	// Try current directory first
	for _, ext := range decode.Extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range decode.Extensions {
			userPath := filepath.Join(userConfigDir, "go-md2tmpl", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Tried: triedPaths}
}

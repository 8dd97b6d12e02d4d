package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2tmpl/internal/config"
)

const envPrefix = "MD2TMPL_"

// knownEnvVars lists every supported MD2TMPL_* variable.
var knownEnvVars = map[string]bool{
	"MD2TMPL_CONFIG":          true,
	"MD2TMPL_HIGHLIGHT":       true,
	"MD2TMPL_HIGHLIGHT_STYLE": true,
}

// envConfig holds values read from MD2TMPL_* variables.
type envConfig struct {
	ConfigPath     string
	Highlight      bool
	HighlightStyle string
}

// loadEnvConfig reads MD2TMPL_* variables. Unparseable booleans are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("MD2TMPL_CONFIG"),
		HighlightStyle: getenv("MD2TMPL_HIGHLIGHT_STYLE"),
	}

	if v := getenv("MD2TMPL_HIGHLIGHT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Highlight = b
		}
	}

	return cfg
}

// warnUnknownEnvVars warns about unrecognized MD2TMPL_* variables,
// catching typos like MD2TMPL_CONFG.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment values the config file left unset.
// Priority: CLI flags > config file > env vars > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Highlight && !cfg.Render.Highlight {
		cfg.Render.Highlight = true
	}
	if env.HighlightStyle != "" && cfg.Render.HighlightStyle == "" {
		cfg.Render.HighlightStyle = env.HighlightStyle
	}
}

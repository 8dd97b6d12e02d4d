package main

import (
	"io"
	"os"

	md2tmpl "github.com/alnah/go-md2tmpl"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	FS     md2tmpl.FileSystem
	Getenv func(key string) string
	// Environ lists KEY=value pairs, used to spot misspelled variables.
	Environ func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		FS:      md2tmpl.OSFileSystem{},
		Getenv:  os.Getenv,
		Environ: os.Environ,
	}
}

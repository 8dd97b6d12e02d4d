package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
)

func main() {
	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches args[1:] to a command and returns the process exit code.
// Flags without a command run the default render command.
func runMain(ctx context.Context, args []string, env *Environment) int {
	command, rest := splitCommand(args)

	var err error
	switch command {
	case "render":
		err = runRender(ctx, rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2tmpl %s\n", Version)
	case "help":
		runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, command)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		reportError(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// splitCommand separates the command name from its arguments.
// An empty argument list or a leading flag selects "render".
func splitCommand(args []string) (string, []string) {
	if len(args) < 2 {
		return "render", nil
	}
	first := args[1]
	if isCommand(first) {
		return first, args[2:]
	}
	if first == "-h" || first == "--help" {
		return "help", nil
	}
	if len(first) > 0 && first[0] == '-' {
		return "render", args[1:]
	}
	return first, args[2:]
}

// isCommand reports whether arg names a known command.
func isCommand(arg string) bool {
	switch arg {
	case "render", "version", "help":
		return true
	}
	return false
}

package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tmpl [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render Markdown fragments into page templates (default)")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2tmpl help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2tmpl render [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render each page's {prefix}.{fragment}.md files into named blocks,")
	fmt.Fprintln(w, "prepend them to {prefix}.template.html and write {prefix}.rendered.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pages:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path (default: md2tmpl)")
	fmt.Fprintln(w, "      --dir <path>            Ad-hoc page directory")
	fmt.Fprintln(w, "      --prefix <s>            Ad-hoc page file prefix")
	fmt.Fprintln(w, "  -f, --fragment <name>       Ad-hoc fragment name (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --highlight             Syntax highlight fenced code")
	fmt.Fprintln(w, "      --highlight-style <s>   Chroma style name")
	fmt.Fprintln(w, "      --link-element <s>      Link placeholder element (default: app-generated-link)")
	fmt.Fprintln(w, "      --block-element <s>     Block wrapper element (default: ng-template)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -w, --watch                 Re-render when inputs change")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show debug logs and timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2TMPL_CONFIG              Config path when --config is not given")
	fmt.Fprintln(w, "  MD2TMPL_HIGHLIGHT           Enable highlighting (true/false)")
	fmt.Fprintln(w, "  MD2TMPL_HIGHLIGHT_STYLE     Chroma style name")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2tmpl version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2tmpl help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}

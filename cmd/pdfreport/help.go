package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-pdfreport/internal/dateutil"
	"github.com/alnah/go-pdfreport/internal/reports"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfreport <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, c := range getCommands() {
		fmt.Fprintf(w, "  %-10s %s\n", c.Name, c.Desc)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pdfreport help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfreport generate <report> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a bundled report to <output-dir>/<file name>.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintf(w, "  report    One of: %s\n", strings.Join(reports.Names(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output-dir <path>   Output directory (default: ~/.openclaw/workspace/output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --html-only           Write the HTML rendition only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --backend <s>         Backend: native, chrome (default: native)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Render timeout, e.g. 30s, 2m")
	fmt.Fprintf(w, "      --locale <s>          Month names: %s (default: %s)\n", strings.Join(dateutil.SupportedLocales(), ", "), dateutil.DefaultLocale)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Footer:")
	fmt.Fprintln(w, "      --page-numbers        Show page numbers")
	fmt.Fprintln(w, "      --footer-text <s>     Footer text, or \"auto:FORMAT\" for the date")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets: iso, european, us, long, report")
	fmt.Fprintln(w, "      --doc-id <s>          Document ID (\"auto\" = generated UUID)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PDFREPORT_CONFIG, PDFREPORT_OUTPUT_DIR, PDFREPORT_BACKEND,")
	fmt.Fprintln(w, "  PDFREPORT_TIMEOUT, PDFREPORT_LOCALE (flags win over environment)")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	w := env.Stdout
	switch args[0] {
	case "generate":
		printGenerateUsage(w)
	case "list":
		fmt.Fprintln(w, "Usage: pdfreport list")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "List bundled reports with their output file names.")
	case "verify":
		fmt.Fprintln(w, "Usage: pdfreport verify <file.pdf>")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check the PDF signature, parse the file and print version, pages and size.")
	case "doctor":
		fmt.Fprintln(w, "Usage: pdfreport doctor [-c <name>] [--json]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Check configuration, Chrome, container/CI settings, output directory,")
		fmt.Fprintln(w, "styles and font coverage. Exits 1 when a check fails.")
	case "config":
		fmt.Fprintln(w, "Usage: pdfreport config [-c <name>]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Print the configuration generate would use, as YAML.")
		fmt.Fprintln(w, "Config names are searched in ./ then ~/.config/go-pdfreport/.")
	case "completion":
		printCompletionUsage(w)
	case "version":
		fmt.Fprintln(w, "Usage: pdfreport version")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show version information.")
	case "help":
		fmt.Fprintln(w, "Usage: pdfreport help [command]")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

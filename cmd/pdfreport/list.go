package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/alnah/go-pdfreport/internal/reports"
)

// runListCmd prints one line per bundled report: name, output file, description.
func runListCmd(args []string, env *Environment) int {
	if len(args) > 0 {
		fmt.Fprintf(env.Stderr, "error: %v: list takes no arguments\n", ErrUsage)
		return ExitUsage
	}

	tw := tabwriter.NewWriter(env.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range reports.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.FileName, r.Description)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitGeneral
	}
	return ExitSuccess
}

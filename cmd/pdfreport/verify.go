package main

import (
	"errors"
	"fmt"

	"github.com/alnah/go-pdfreport/internal/hints"
	"github.com/alnah/go-pdfreport/internal/inspect"
)

// runVerifyCmd checks that a file is a readable PDF and prints its summary.
func runVerifyCmd(args []string, env *Environment) int {
	if len(args) != 1 {
		fmt.Fprintln(env.Stderr, "Usage: pdfreport verify <file.pdf>")
		return ExitUsage
	}

	info, err := inspect.File(args[0])
	if err != nil {
		hint := ""
		if errors.Is(err, inspect.ErrNotPDF) || errors.Is(err, inspect.ErrUnreadable) {
			hint = hints.ForInvalidPDF()
		}
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hint)
		return exitCodeFor(err)
	}

	fmt.Fprintln(env.Stdout, info.String())
	if info.Sample != "" {
		fmt.Fprintf(env.Stdout, "  %s\n", info.Sample)
	}
	return ExitSuccess
}

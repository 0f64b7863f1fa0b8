package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdfreport/internal/yamlutil"
)

// runConfigCmd prints the effective configuration (defaults, file, then
// environment) as YAML.
func runConfigCmd(args []string, env *Environment) int {
	name, err := parseConfigFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{"config"}, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	cfg, err := loadConfig(name, env, newLogger(env.Stderr, false, false))
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, name, env))
		return exitCodeFor(err)
	}

	out, err := yamlutil.Encode(cfg)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitGeneral
	}
	if _, err := io.WriteString(env.Stdout, string(out)); err != nil {
		return ExitGeneral
	}
	return ExitSuccess
}

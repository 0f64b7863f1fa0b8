package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// footerFlags holds footer-related flags.
type footerFlags struct {
	pageNumbers bool
	text        string
	documentID  string
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	outputDir string
	backend   string
	timeout   string
	locale    string
	footer    footerFlags
	htmlOnly  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addFooterFlags adds footer flags to a FlagSet.
func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.BoolVar(&f.pageNumbers, "page-numbers", false, "show page numbers in footer")
	fs.StringVar(&f.text, "footer-text", "", "footer text (\"auto:FORMAT\" = generation date)")
	fs.StringVar(&f.documentID, "doc-id", "", "document ID in footer (\"auto\" = generated UUID)")
}

// newGenerateFlagSet registers the generate flags into f.
// Completion reads the same FlagSet, so flags are declared only here.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory")
	fs.StringVar(&f.backend, "backend", "", "PDF backend: native, chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.locale, "locale", "", "locale for month names: fr, en, de, es")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write the HTML rendition only, skip PDF")

	addCommonFlags(fs, &f.common)
	addFooterFlags(fs, &f.footer)
	return fs
}

// parseGenerateFlags parses generate command flags and returns positional args.
// -h/--help yields flag.ErrHelp; any other parse failure wraps ErrUsage.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs := newGenerateFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return f, fs.Args(), nil
}

func newDoctorFlagSet(jsonOutput *bool, configName *string) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.BoolVar(jsonOutput, "json", false, "machine-readable output")
	fs.StringVarP(configName, "config", "c", "", "config file name or path")
	return fs
}

// parseDoctorFlags parses doctor command flags.
func parseDoctorFlags(args []string) (jsonOutput bool, configName string, err error) {
	fs := newDoctorFlagSet(&jsonOutput, &configName)
	if err := parseNoArgs(fs, args); err != nil {
		return false, "", err
	}
	return jsonOutput, configName, nil
}

func newConfigFlagSet(configName *string) *flag.FlagSet {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVarP(configName, "config", "c", "", "config file name or path")
	return fs
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string) (configName string, err error) {
	fs := newConfigFlagSet(&configName)
	if err := parseNoArgs(fs, args); err != nil {
		return "", err
	}
	return configName, nil
}

// parseNoArgs parses a FlagSet that takes no positional argument.
func parseNoArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}

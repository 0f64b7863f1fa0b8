package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdfreport"
	"github.com/alnah/go-pdfreport/internal/dateutil"
	"github.com/alnah/go-pdfreport/internal/reports"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// supportedShells lists shells in the order help prints them.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // free text, nothing to complete
	flagBool
	flagEnum // has predefined values
	flagFile // file matching FileGlob
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string
	FileGlob string
}

// argDef describes what the positional argument of a command completes to.
// A zero argDef means the command takes no argument.
type argDef struct {
	Name     string
	Values   []string
	FileGlob string
}

// commandDef describes a command for completion and the usage listing.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Arg   argDef
}

// completionMeta holds completion hints for flags.
// Flag names, types, and descriptions come from the FlagSets.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta maps flag names to their completion metadata.
func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		"backend":    {Values: []string{string(pdfreport.BackendNative), string(pdfreport.BackendChrome)}},
		"locale":     {Values: dateutil.SupportedLocales()},
		"config":     {FileGlob: "*.y*ml"},
		"output-dir": {IsDir: true},
	}
}

// extractFlags lists the flags of fs, enriched with completion metadata.
// VisitAll walks flags in lexicographical order.
func extractFlags(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}
		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry, in the order usage lists it.
func getCommands() []commandDef {
	var (
		jsonOutput bool
		doctorCfg  string
		configCfg  string
	)

	names := []string{"generate", "list", "verify", "doctor", "config", "completion", "version", "help"}
	shells := make([]string, len(supportedShells))
	for i, s := range supportedShells {
		shells[i] = string(s)
	}

	return []commandDef{
		{
			Name:  "generate",
			Desc:  "Write a bundled report to PDF",
			Flags: extractFlags(newGenerateFlagSet(&generateFlags{})),
			Arg:   argDef{Name: "report", Values: reports.Names()},
		},
		{Name: "list", Desc: "List bundled reports"},
		{
			Name: "verify",
			Desc: "Check that a file is a readable PDF",
			Arg:  argDef{Name: "file", FileGlob: "*.pdf"},
		},
		{
			Name:  "doctor",
			Desc:  "Check system configuration",
			Flags: extractFlags(newDoctorFlagSet(&jsonOutput, &doctorCfg)),
		},
		{
			Name:  "config",
			Desc:  "Print the effective configuration",
			Flags: extractFlags(newConfigFlagSet(&configCfg)),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Arg:  argDef{Name: "shell", Values: shells},
		},
		{Name: "version", Desc: "Show version information"},
		{
			Name: "help",
			Desc: "Show help for a command",
			Arg:  argDef{Name: "command", Values: names},
		},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// runCompletionCmd handles the completion command.
func runCompletionCmd(args []string, env *Environment) int {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return ExitSuccess
	}
	if len(args) > 1 {
		fmt.Fprintf(env.Stderr, "error: %v: completion takes one shell name\n", ErrUsage)
		return ExitUsage
	}

	if err := GenerateCompletion(env.Stdout, Shell(args[0])); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfreport completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(pdfreport completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(pdfreport completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    pdfreport completion fish > ~/.config/fish/completions/pdfreport.fish")
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(cmds []commandDef) string {
	var b strings.Builder

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}

	b.WriteString("# bash completion for pdfreport\n")
	b.WriteString("_pdfreport_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(names, " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${cmd}\" in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && c.Arg.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		if len(c.Flags) > 0 {
			writeBashFlagValues(&b, c.Flags)
			b.WriteString("            if [[ \"${cur}\" == -* ]]; then\n")
			fmt.Fprintf(&b, "                COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(bashFlagWords(c.Flags), " "))
			b.WriteString("                return\n")
			b.WriteString("            fi\n")
		}
		switch {
		case len(c.Arg.Values) > 0:
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(c.Arg.Values, " "))
		case c.Arg.FileGlob != "":
			fmt.Fprintf(&b, "            COMPREPLY=($(compgen -f -X '!%s' -- \"${cur}\"))\n", c.Arg.FileGlob)
		}
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -o filenames -F _pdfreport_completions pdfreport\n")

	return b.String()
}

// writeBashFlagValues completes the value of the flag just typed, if it takes one.
func writeBashFlagValues(b *strings.Builder, flags []flagDef) {
	b.WriteString("            case \"${prev}\" in\n")
	for _, f := range flags {
		if f.Type == flagBool {
			continue
		}
		fmt.Fprintf(b, "                %s)\n", strings.Join(flagSpellings(f), "|"))
		switch f.Type {
		case flagEnum:
			fmt.Fprintf(b, "                    COMPREPLY=($(compgen -W %q -- \"${cur}\"))\n", strings.Join(f.Values, " "))
		case flagFile:
			fmt.Fprintf(b, "                    COMPREPLY=($(compgen -f -X '!%s' -- \"${cur}\"))\n", f.FileGlob)
		case flagDir:
			b.WriteString("                    COMPREPLY=($(compgen -d -- \"${cur}\"))\n")
		}
		b.WriteString("                    return\n")
		b.WriteString("                    ;;\n")
	}
	b.WriteString("            esac\n")
}

func bashFlagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, flagSpellings(f)...)
	}
	return words
}

// flagSpellings returns "-s" (if any) and "--long".
func flagSpellings(f flagDef) []string {
	if f.Short != "" {
		return []string{"-" + f.Short, "--" + f.Long}
	}
	return []string{"--" + f.Long}
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("#compdef pdfreport\n\n")
	b.WriteString("_pdfreport() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=${words[2]}\n")
	b.WriteString("    (( CURRENT-- ))\n")
	b.WriteString("    shift words\n\n")
	b.WriteString("    case $cmd in\n")
	for _, c := range cmds {
		if len(c.Flags) == 0 && c.Arg.Name == "" {
			continue
		}
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		b.WriteString("            _arguments")
		for _, f := range c.Flags {
			fmt.Fprintf(&b, " \\\n                %s", zshFlagSpec(f))
		}
		switch {
		case len(c.Arg.Values) > 0:
			fmt.Fprintf(&b, " \\\n                '1:%s:(%s)'", c.Arg.Name, strings.Join(c.Arg.Values, " "))
		case c.Arg.FileGlob != "":
			fmt.Fprintf(&b, " \\\n                '1:%s:_files -g \"%s\"'", c.Arg.Name, c.Arg.FileGlob)
		}
		b.WriteString("\n            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _pdfreport pdfreport\n")

	return b.String()
}

// zshFlagSpec renders one _arguments spec, e.g. '--backend[PDF backend]:backend:(native chrome)'.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"

	var action string
	switch f.Type {
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":" + f.Long + ":_files -g \"" + f.FileGlob + "\""
	case flagDir:
		action = ":" + f.Long + ":_files -/"
	case flagString:
		action = ":" + f.Long + ": "
	}

	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshEscape escapes characters that end a quoted _arguments spec or description.
func zshEscape(s string) string {
	r := strings.NewReplacer(`'`, `'\''`, `[`, `\[`, `]`, `\]`, `:`, `\:`)
	return r.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishScript(cmds []commandDef) string {
	var b strings.Builder

	b.WriteString("# fish completion for pdfreport\n\n")
	b.WriteString("function __fish_pdfreport_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_pdfreport_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c pdfreport -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c pdfreport -n __fish_pdfreport_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_pdfreport_using_command %s'", c.Name)
		for _, f := range c.Flags {
			b.WriteString("complete -c pdfreport " + cond)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -l %s", f.Long)
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			case flagString:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Desc))
		}
		switch {
		case len(c.Arg.Values) > 0:
			fmt.Fprintf(&b, "complete -c pdfreport %s -a '%s'\n", cond, strings.Join(c.Arg.Values, " "))
		case c.Arg.FileGlob != "":
			fmt.Fprintf(&b, "complete -c pdfreport %s -k -a '(__fish_complete_suffix %s)'\n", cond, strings.TrimPrefix(c.Arg.FileGlob, "*"))
		}
	}

	return b.String()
}

func fishEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

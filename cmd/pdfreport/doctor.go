package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-pdfreport"
	"github.com/alnah/go-pdfreport/internal/assets"
	"github.com/alnah/go-pdfreport/internal/config"
	"github.com/alnah/go-pdfreport/internal/fileutil"
	"github.com/alnah/go-pdfreport/internal/hints"
	"github.com/alnah/go-pdfreport/internal/pipeline"
	"github.com/alnah/go-pdfreport/internal/reports"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Chrome   chromeInfo `json:"chrome"`
	Env      envInfo    `json:"environment"`
	Config   configInfo `json:"config"`
	System   systemInfo `json:"system"`
	Assets   assetInfo  `json:"assets"`
	Fonts    fontInfo   `json:"fonts"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// configInfo describes the effective configuration source.
type configInfo struct {
	Source  string `json:"source"` // file path, or "defaults"
	Backend string `json:"backend"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable      bool   `json:"temp_writable"`
	OutputDir         string `json:"output_dir"`
	OutputDirWritable bool   `json:"output_dir_writable"`
	OutputDirExists   bool   `json:"output_dir_exists"`
}

// assetInfo holds style resolution results (chrome backend).
type assetInfo struct {
	BasePath   string `json:"base_path,omitempty"`
	Custom     bool   `json:"custom"`
	Style      string `json:"style"`
	StyleFound bool   `json:"style_found"`
	Origin     string `json:"origin,omitempty"` // "custom" or "embedded"
}

// fontInfo lists report characters the embedded fonts cannot draw.
type fontInfo struct {
	Checked int      `json:"reports_checked"`
	Missing []string `json:"missing,omitempty"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput, configName, err := parseDoctorFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{"doctor"}, env)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(env, configName)

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment, configName string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  env.getenv("ROD_NO_SANDBOX"),
			BrowserBin: env.getenv("ROD_BROWSER_BIN"),
		},
	}

	cfg := checkConfig(result, env, configName)
	checkChrome(result)
	checkEnvironment(result, env)
	checkSystem(result, cfg)
	checkAssets(result, cfg)
	checkFonts(result, env)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkChrome detects Chrome/Chromium. Chrome is optional: the native
// backend needs no browser, so a missing one is only a warning.
func checkChrome(result *doctorResult) {
	chromePath := result.Env.BrowserBin

	if chromePath == "" {
		var found bool
		chromePath, found = launcher.LookPath()
		if !found {
			result.Warnings = append(result.Warnings,
				"Chrome/Chromium not found: only --backend native is available. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}

	if _, err := os.Stat(chromePath); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Chrome not found at %s", chromePath))
		return
	}

	result.Chrome.Found = true
	result.Chrome.Path = chromePath

	cmd := exec.Command(chromePath, "--version") // #nosec G204 -- path from launcher or ROD_BROWSER_BIN
	out, err := cmd.Output()
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get Chrome version: %v", err))
	}

	result.Chrome.Sandbox = result.Env.NoSandbox != "1"
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	rt := hints.Detect(env.getenv)
	result.Env.Container, result.Env.ContainerHint = rt.Container, rt.ContainerSignal
	result.Env.CI = rt.CI

	if rt.NeedsNoSandbox() {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1 for --backend chrome")
	}
}

// checkConfig loads the configuration the way generate does and records
// problems instead of failing. It falls back to the defaults.
func checkConfig(result *doctorResult, env *Environment, name string) *config.Config {
	if name == "" {
		name = env.getenv(config.EnvConfig)
	}

	cfg := config.DefaultConfig()
	result.Config.Source = "defaults"
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Config: %v", err))
		} else {
			cfg = loaded
			result.Config.Source = name
		}
	}

	warnings, err := cfg.ApplyEnv(env.environ())
	result.Warnings = append(result.Warnings, warnings...)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Environment: %v", err))
	}
	result.Config.Backend = cfg.Render.Backend
	return cfg
}

// checkSystem verifies the temp and output directories are writable.
func checkSystem(result *doctorResult, cfg *config.Config) {
	tmpDir := os.TempDir()
	if err := checkWritable(tmpDir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		result.System.TempWritable = true
	}

	dir, err := cfg.OutputDir()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory: %v", err))
		return
	}
	result.System.OutputDir = dir

	// generate creates missing directories, so check the closest existing ancestor.
	existing := dir
	for {
		info, statErr := os.Stat(existing)
		if statErr == nil {
			if !info.IsDir() {
				result.Errors = append(result.Errors,
					fmt.Sprintf("Output directory path is blocked by a file: %s", existing))
				return
			}
			break
		}
		parent := filepath.Dir(existing)
		if parent == existing {
			break
		}
		existing = parent
	}
	result.System.OutputDirExists = existing == dir

	if err := checkWritable(existing); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", existing))
		return
	}
	result.System.OutputDirWritable = true
}

// checkAssets resolves the configured style through the same loaders the
// chrome backend uses. A missing style is an error only for that backend.
func checkAssets(result *doctorResult, cfg *config.Config) {
	result.Assets.BasePath = cfg.Assets.BasePath
	styles, err := assets.NewStyles(cfg.Assets.BasePath)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Assets: %v", err))
		return
	}
	result.Assets.Custom = styles.HasOverrides()

	style := cfg.Render.Style
	switch {
	case style == "":
		style = assets.DefaultStyleName
	case fileutil.IsCSS(style):
		result.Assets.Style, result.Assets.StyleFound = "inline CSS", true
		return
	case fileutil.IsFilePath(style):
		result.Assets.Style = style
		result.Assets.StyleFound = fileutil.FileExists(style)
		if !result.Assets.StyleFound {
			addBackendProblem(result, cfg, fmt.Sprintf("Style file not found: %s", style))
		}
		return
	}

	result.Assets.Style = style
	resolved, err := styles.Resolve(style)
	if err != nil {
		addBackendProblem(result, cfg, fmt.Sprintf("Style %q: %v", style, err))
		return
	}
	result.Assets.StyleFound = true
	result.Assets.Origin = string(resolved.Origin)
}

// addBackendProblem records msg as an error when the chrome backend is
// configured, a warning otherwise.
func addBackendProblem(result *doctorResult, cfg *config.Config, msg string) {
	if strings.EqualFold(cfg.Render.Backend, string(pdfreport.BackendChrome)) {
		result.Errors = append(result.Errors, msg)
		return
	}
	result.Warnings = append(result.Warnings, msg)
}

// checkWritable creates and removes a file in dir.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".pdfreport-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

// checkFonts reports characters of the bundled reports that the embedded
// fonts cannot draw. The native backend substitutes or drops them.
func checkFonts(result *doctorResult, env *Environment) {
	var b strings.Builder
	for _, r := range reports.All() {
		doc, err := r.Build(reports.Params{Now: env.now()})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Report %s: %v", r.Name, err))
			continue
		}
		writeDocumentText(&b, doc)
		result.Fonts.Checked++
	}

	missing, err := pdfreport.MissingGlyphs(b.String())
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Fonts: %v", err))
		return
	}
	for _, r := range missing {
		result.Fonts.Missing = append(result.Fonts.Missing, fmt.Sprintf("%c (U+%04X)", r, r))
	}
	if len(missing) > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d character(s) not covered by the embedded fonts; the native backend substitutes them", len(missing)))
	}
}

// writeDocumentText appends every text run of doc to b.
func writeDocumentText(b *strings.Builder, doc *pdfreport.Document) {
	for _, blk := range doc.Blocks {
		switch v := blk.(type) {
		case *pdfreport.Heading:
			b.WriteString(v.Text)
		case *pdfreport.Paragraph:
			b.WriteString(pipeline.PlainText(pipeline.ParseRuns(v.Text)))
		case *pdfreport.Table:
			for _, row := range v.Rows {
				for _, c := range row {
					if c.Paragraph != nil {
						b.WriteString(pipeline.PlainText(pipeline.ParseRuns(c.Paragraph.Text)))
					} else {
						b.WriteString(c.Text)
					}
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "pdfreport doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium (--backend chrome)")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [WARN] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Configuration")
	fmt.Fprintf(w, "  [OK] Source: %s\n", r.Config.Source)
	fmt.Fprintf(w, "  [OK] Backend: %s\n", r.Config.Backend)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	switch {
	case r.System.OutputDirWritable && r.System.OutputDirExists:
		fmt.Fprintf(w, "  [OK] Output directory: %s\n", r.System.OutputDir)
	case r.System.OutputDirWritable:
		fmt.Fprintf(w, "  [OK] Output directory: %s (created on first run)\n", r.System.OutputDir)
	default:
		fmt.Fprintf(w, "  [ERROR] Output directory: %s not writable\n", r.System.OutputDir)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Styles (--backend chrome)")
	if r.Assets.Custom {
		fmt.Fprintf(w, "  [OK] Custom assets: %s\n", r.Assets.BasePath)
	}
	if r.Assets.StyleFound {
		if r.Assets.Origin != "" {
			fmt.Fprintf(w, "  [OK] Style: %s (%s)\n", r.Assets.Style, r.Assets.Origin)
		} else {
			fmt.Fprintf(w, "  [OK] Style: %s\n", r.Assets.Style)
		}
	} else {
		fmt.Fprintf(w, "  [WARN] Style: %s not found\n", r.Assets.Style)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Fonts")
	if len(r.Fonts.Missing) == 0 {
		fmt.Fprintf(w, "  [OK] %d report(s) fully covered\n", r.Fonts.Checked)
	} else {
		fmt.Fprintf(w, "  [WARN] Missing: %s\n", strings.Join(r.Fonts.Missing, ", "))
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to generate")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

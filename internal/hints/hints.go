// Package hints appends actionable advice to CLI error messages. Every hint
// is rendered as "\n  hint: <text>" so it lines up under "error: ...".
package hints

import (
	"path/filepath"
	"strings"

	"github.com/alnah/go-pdfreport/internal/config"
	"github.com/alnah/go-pdfreport/internal/fileutil"
)

// dockerEnvFile is created by Docker in every container.
const dockerEnvFile = "/.dockerenv"

// ciVars are set by common CI runners.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// Runtime is what the Chrome backend advice depends on.
type Runtime struct {
	Container       bool
	ContainerSignal string // which signal matched, e.g. "/.dockerenv"
	CI              bool
	NoSandbox       bool   // ROD_NO_SANDBOX=1
	BrowserBin      string // ROD_BROWSER_BIN
}

// Detect inspects the environment through getenv and the filesystem.
func Detect(getenv func(string) string) Runtime {
	return detect(getenv, fileutil.FileExists)
}

func detect(getenv func(string) string, exists func(string) bool) Runtime {
	rt := Runtime{
		NoSandbox:  getenv("ROD_NO_SANDBOX") == "1",
		BrowserBin: getenv("ROD_BROWSER_BIN"),
	}

	// PDFREPORT_CONTAINER=1 wins over every other signal.
	switch {
	case getenv(config.EnvContainer) == "1":
		rt.Container, rt.ContainerSignal = true, config.EnvContainer+"=1"
	case exists(dockerEnvFile):
		rt.Container, rt.ContainerSignal = true, dockerEnvFile
	case getenv("container") != "": // podman, systemd-nspawn
		rt.Container, rt.ContainerSignal = true, "container="+getenv("container")
	case getenv("KUBERNETES_SERVICE_HOST") != "":
		rt.Container, rt.ContainerSignal = true, "KUBERNETES_SERVICE_HOST"
	}

	for _, v := range ciVars {
		if getenv(v) != "" {
			rt.CI = true
			break
		}
	}
	return rt
}

// NeedsNoSandbox reports whether Chrome will likely refuse to start with
// its sandbox enabled.
func (rt Runtime) NeedsNoSandbox() bool {
	return (rt.Container || rt.CI) && !rt.NoSandbox
}

// ForBrowserConnect advises on Chrome launch failures.
func ForBrowserConnect(rt Runtime) string {
	var advice []string
	if rt.NeedsNoSandbox() {
		advice = append(advice, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if rt.BrowserBin == "" {
		advice = append(advice, "set ROD_BROWSER_BIN to use custom Chrome, or --backend native")
	}
	return format(strings.Join(advice, "; "))
}

// ForTimeout suggests a longer render timeout.
func ForTimeout() string {
	return format("for slow browser starts, use --timeout flag")
}

// ForConfigNotFound points at --config, or the per-user config file when
// searchedPaths include one.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	userDir := string(filepath.Separator) + config.AppName + string(filepath.Separator)
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory suggests another output directory.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or pass --output-dir")
}

// ForStyleNotFound lists the embedded styles.
func ForStyleNotFound(available []string) string {
	return list("available styles: ", available, "")
}

// ForUnknownReport lists the report names that generate accepts.
func ForUnknownReport(available []string) string {
	return list("available reports: ", available, " (see 'list')")
}

// ForInvalidPDF is shown when verify rejects a file.
func ForInvalidPDF() string {
	return format("the file does not start with %PDF-; regenerate it with 'generate'")
}

func list(prefix string, items []string, suffix string) string {
	if len(items) == 0 {
		return ""
	}
	return format(prefix + strings.Join(items, ", ") + suffix)
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"

	"github.com/alnah/go-md2note/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// GOOS is the target operating system, replaceable in tests.
var GOOS = runtime.GOOS

// inCI reports whether a common CI environment variable is set.
func inCI() bool {
	return os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != "" ||
		os.Getenv("JENKINS_URL") != ""
}

// ForBrowserOpen returns hints for a preview or editor page that could not
// be opened in a browser.
func ForBrowserOpen() string {
	var hints []string

	if inCI() || IsInContainer() {
		hints = append(hints, "no desktop browser here; open the printed path manually")
	}

	if os.Getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to choose the browser")
	}

	return formatHints(hints)
}

// ForClipboard returns hints for clipboard write failures.
func ForClipboard() string {
	var hints []string

	if IsInContainer() {
		hints = append(hints, "use --output - to print the result instead")
	}
	if GOOS == "linux" {
		hints = append(hints, "install xclip, xsel or wl-clipboard")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2note/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Suggest the first user config location
	for _, p := range searchedPaths {
		if strings.Contains(p, "go-md2note") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidSetting returns hints for settings rejected in strict mode.
func ForInvalidSetting() string {
	return format("run 'md2note settings' to see the effective values; without --strict unknown values fall back to plain text")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

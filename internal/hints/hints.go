// Package hints appends actionable suggestions to CLI error messages.
// Each hint renders as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-brandkit/internal/fileutil"
)

// InContainer reports whether the process runs inside Docker.
// It is a variable so tests can stub it.
var InContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// InCI reports whether a common CI environment variable is set.
func InCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowser returns hints for PDF export failures caused by Chrome.
func ForBrowser() string {
	var parts []string
	if (InCI() || InContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to a Chrome binary")
	}
	parts = append(parts, "or pass --no-pdf to keep only the HTML")
	return render(parts...)
}

// ForFetch returns a hint for a source that could not be fetched.
func ForFetch(source string) string {
	if fileutil.IsURL(source) {
		return render("check the URL is reachable, or save the page and pass the file path")
	}
	return render("check the file is readable")
}

// ForInputNotFound returns a hint for a missing markdown analysis file.
func ForInputNotFound() string {
	return render("pass the path to an existing .md analysis file")
}

// ForConfigNotFound suggests --config or the first XDG location searched.
func ForConfigNotFound(searched []string) string {
	hint := "use --config /path/to/brandkit.yaml"
	for _, p := range searched {
		if strings.Contains(p, ".config") {
			hint += " or create " + p
			break
		}
	}
	return render(hint)
}

// ForOutputDirectory returns a hint for output write errors.
func ForOutputDirectory() string {
	return render("check the output directory is writable, or use --output")
}

func render(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	return "\n  hint: " + strings.Join(parts, "; ")
}

// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"slices"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-certgen/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), ".config/go-certgen") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForMissingColumn lists the header found in the spreadsheet and, when a
// header differs from a required column only by case or surrounding spaces,
// points at it: column names must match exactly.
func ForMissingColumn(missing, found []string) string {
	var hints []string
	for _, want := range missing {
		for _, got := range found {
			if got != want && strings.EqualFold(strings.TrimSpace(got), want) {
				hints = append(hints, "rename column "+quote(got)+" to "+quote(want))
				break
			}
		}
	}
	if len(found) > 0 {
		sorted := slices.Clone(found)
		slices.Sort(sorted)
		hints = append(hints, "found columns: "+strings.Join(sorted, ", "))
	}
	return formatHints(hints)
}

// ForInputNotFound returns hints for a missing participants or template file.
func ForInputNotFound(envVar string) string {
	return format("set the path in the config file or with " + envVar)
}

// ForUnsupportedInput lists accepted spreadsheet extensions.
func ForUnsupportedInput() string {
	return format("supported formats: .xlsx, .xlsm, .xltx, .xltm, .csv")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

func quote(s string) string {
	return "\"" + s + "\""
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

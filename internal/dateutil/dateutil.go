// Package dateutil composes certificate dates from spreadsheet fragments and
// resolves "auto" date values against a clock.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat matches the "25 Mar 22" style printed on certificates.
const DefaultDateFormat = "D MMM YY"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"certificate": DefaultDateFormat,
	"iso":         "YYYY-MM-DD",
	"european":    "DD/MM/YYYY",
	"long":        "D MMMM YYYY",
}

// Compose joins day, month and year fragments into "day month year".
// Fragments are cleaned with Fragment first; ok is false when any of them
// is empty after cleaning.
func Compose(day, month, year string) (date string, ok bool) {
	d, m, y := Fragment(day), Fragment(month), Fragment(year)
	if d == "" || m == "" || y == "" {
		return "", false
	}
	return d + " " + m + " " + y, true
}

// Fragment trims a spreadsheet cell and drops the ".0" suffix that numeric
// cells pick up when a sheet is exported through a float column ("23.0").
func Fragment(cell string) string {
	s := strings.TrimSpace(cell)
	if whole, ok := strings.CutSuffix(s, ".0"); ok && whole != "" && isDigits(whole) {
		return whole
	}
	return s
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Day] preserves "Day" literally.
// Any non-token characters outside brackets are preserved as literals.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" -> t in DefaultDateFormat
//   - "auto:FORMAT" -> t in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" -> t in a named preset (certificate, iso, european, long)
//   - any other value -> returned unchanged
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	formatPart := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		// Preserve original case for format tokens.
		formatPart = value[len("auto:"):]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
			formatPart = preset
		}
	default:
		return value, nil
	}

	goFmt, err := ParseDateFormat(formatPart)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}

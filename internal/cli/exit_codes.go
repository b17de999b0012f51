package cli

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-certgen"
	"github.com/alnah/go-certgen/internal/config"
	"github.com/alnah/go-certgen/internal/dateutil"
)

// Exit codes for the certgen commands.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess     = 0   // Every record written
	ExitGeneral     = 1   // General/unexpected error
	ExitUsage       = 2   // Invalid flags or config
	ExitInput       = 3   // Participants or template unusable
	ExitPartial     = 4   // At least one record failed
	ExitInterrupted = 130 // SIGINT/SIGTERM
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}

	// Input errors (exit 3)
	if errors.Is(err, certgen.ErrFileNotFound) ||
		errors.Is(err, certgen.ErrMissingColumn) ||
		errors.Is(err, certgen.ErrUnsupportedInput) ||
		errors.Is(err, certgen.ErrReadInput) ||
		errors.Is(err, certgen.ErrSheetNotFound) ||
		errors.Is(err, certgen.ErrTemplateDecode) ||
		errors.Is(err, os.ErrNotExist) {
		return ExitInput
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, certgen.ErrInvalidLayout) ||
		errors.Is(err, certgen.ErrFontLoad) {
		return ExitUsage
	}

	return ExitGeneral
}

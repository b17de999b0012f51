package certgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for library operations.
var (
	// Fatal: returned before any certificate is written.
	ErrFileNotFound     = errors.New("file not found")
	ErrMissingColumn    = errors.New("required column missing")
	ErrUnsupportedInput = errors.New("unsupported input format")
	ErrReadInput        = errors.New("failed to read participants")
	ErrSheetNotFound    = errors.New("sheet not found")
	ErrTemplateDecode   = errors.New("failed to decode template image")
	ErrFontLoad         = errors.New("failed to load font")
	ErrInvalidLayout    = errors.New("invalid layout")

	// Per record: the record is skipped and the batch continues.
	ErrEmptyName = errors.New("participant name is empty")
	ErrRender    = errors.New("certificate rendering failed")
	ErrWrite     = errors.New("failed to write certificate")
)

// MissingColumnError reports the required columns absent from a header row.
// It matches ErrMissingColumn with errors.Is.
type MissingColumnError struct {
	Missing []string
	Found   []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingColumn, strings.Join(e.Missing, ", "))
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

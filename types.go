package certgen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/alnah/go-certgen/internal/dateutil"
)

// Mode selects which columns are read and what is drawn.
type Mode int

const (
	// ModeSimple draws the name only and writes a PNG.
	ModeSimple Mode = iota
	// ModeFull draws the name and the start and end dates.
	ModeFull
)

// Spreadsheet column names. Matching is exact and case-sensitive.
const (
	ColumnName       = "Name"
	ColumnStartDay   = "from"
	ColumnStartMonth = "s_month"
	ColumnStartYear  = "s_year"
	ColumnEndDay     = "to"
	ColumnEndMonth   = "e_month"
	ColumnEndYear    = "e_year"
)

func (m Mode) String() string {
	switch m {
	case ModeSimple:
		return "simple"
	case ModeFull:
		return "full"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// RequiredColumns returns the header columns LoadRecords requires for m.
func (m Mode) RequiredColumns() []string {
	if m == ModeFull {
		return []string{
			ColumnName,
			ColumnStartDay, ColumnStartMonth, ColumnStartYear,
			ColumnEndDay, ColumnEndMonth, ColumnEndYear,
		}
	}
	return []string{ColumnName}
}

// Record is one participant row.
type Record struct {
	Row  int // 1-based spreadsheet row; the header is row 1
	Name string

	StartDay   string
	StartMonth string
	StartYear  string
	EndDay     string
	EndMonth   string
	EndYear    string
}

// StartDate returns "day month year" for the start fragments.
// ok is false when a fragment is missing.
func (r Record) StartDate() (date string, ok bool) {
	return dateutil.Compose(r.StartDay, r.StartMonth, r.StartYear)
}

// EndDate returns "day month year" for the end fragments.
// ok is false when a fragment is missing.
func (r Record) EndDate() (date string, ok bool) {
	return dateutil.Compose(r.EndDay, r.EndMonth, r.EndYear)
}

// SkippedRow is a spreadsheet row that produced no record.
type SkippedRow struct {
	Row    int
	Reason string
}

// RecordSet is the ordered result of reading a participants file.
type RecordSet struct {
	Records []Record
	Skipped []SkippedRow
}

// Len returns the number of data rows read, skipped rows included.
func (s *RecordSet) Len() int {
	return len(s.Records) + len(s.Skipped)
}

// Color is an opaque RGB text colour.
type Color struct {
	R, G, B uint8
}

// NewColor builds a Color from three 0..255 components.
func NewColor(components []int) (Color, error) {
	if len(components) != 3 {
		return Color{}, fmt.Errorf("%w: color needs 3 components, got %d", ErrInvalidLayout, len(components))
	}
	for i, c := range components {
		if c < 0 || c > 255 {
			return Color{}, fmt.Errorf("%w: color component %d out of range: %d", ErrInvalidLayout, i, c)
		}
	}
	return Color{R: uint8(components[0]), G: uint8(components[1]), B: uint8(components[2])}, nil
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Artifact is one rendered certificate and where it was written.
type Artifact struct {
	Image   image.Image
	PNGPath string
	PDFPath string // Empty when no PDF was written
}

// RecordError is a per-record failure recorded by Generator.Run.
type RecordError struct {
	Row  int
	Name string
	Err  error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
}

func (e RecordError) Unwrap() error {
	return e.Err
}

// Summary tallies a batch run.
type Summary struct {
	RunID     string
	Total     int // Data rows read, skipped rows included
	Succeeded int
	Failed    int
	Skipped   int
	Written   []string // Output files in write order
	Failures  []RecordError
}

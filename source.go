package certgen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alnah/go-certgen/internal/dateutil"
	"github.com/alnah/go-certgen/internal/fileutil"
)

// Reasons recorded in SkippedRow.
const (
	ReasonEmptyName = "empty name"
	ReasonBlankRow  = "blank row"
)

// utf8BOM prefixes CSV files saved by spreadsheet applications.
const utf8BOM = "\ufeff"

// SourceOption configures LoadRecords.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	sheet string
}

// WithSheet reads the named worksheet instead of the first one.
// Ignored for CSV input.
func WithSheet(name string) SourceOption {
	return func(c *sourceConfig) {
		c.sheet = name
	}
}

// LoadRecords reads participants from an Excel workbook or a CSV file.
// The first row is the header and must contain mode's required columns.
// Rows without a name are reported in RecordSet.Skipped.
func LoadRecords(path string, mode Mode, opts ...SourceOption) (*RecordSet, error) {
	cfg := sourceConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: participants %s", ErrFileNotFound, path)
	}

	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		rows, err = readWorkbook(path, cfg.sheet)
	case ".csv":
		rows, err = readCSV(path)
	default:
		return nil, fmt.Errorf("%w: %q (want .xlsx, .xlsm, .xltx, .xltm or .csv)", ErrUnsupportedInput, ext)
	}
	if err != nil {
		return nil, err
	}

	return parseRows(rows, mode)
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no worksheets", ErrSheetNotFound, path)
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("%w: %q in %s (have %s)",
			ErrSheetNotFound, sheet, path, strings.Join(sheets, ", "))
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path) // #nosec G304 -- participants path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}
	defer func() { _ = file.Close() }()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

// parseRows maps data rows onto records using the header in rows[0].
func parseRows(rows [][]string, mode Mode) (*RecordSet, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, dup := index[col]; !dup {
			index[col] = i
		}
	}

	var missing []string
	for _, col := range mode.RequiredColumns() {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Missing: missing, Found: append([]string(nil), header...)}
	}

	set := &RecordSet{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		cell := func(col string) string {
			idx, ok := index[col]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		if isBlank(row) {
			set.Skipped = append(set.Skipped, SkippedRow{Row: rowNum, Reason: ReasonBlankRow})
			continue
		}

		name := strings.TrimSpace(cell(ColumnName))
		if name == "" {
			set.Skipped = append(set.Skipped, SkippedRow{Row: rowNum, Reason: ReasonEmptyName})
			continue
		}

		rec := Record{Row: rowNum, Name: name}
		if mode == ModeFull {
			rec.StartDay = dateutil.Fragment(cell(ColumnStartDay))
			rec.StartMonth = dateutil.Fragment(cell(ColumnStartMonth))
			rec.StartYear = dateutil.Fragment(cell(ColumnStartYear))
			rec.EndDay = dateutil.Fragment(cell(ColumnEndDay))
			rec.EndMonth = dateutil.Fragment(cell(ColumnEndMonth))
			rec.EndYear = dateutil.Fragment(cell(ColumnEndYear))
		}
		set.Records = append(set.Records, rec)
	}
	return set, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

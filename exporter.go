package certgen

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"

	"github.com/alnah/go-certgen/internal/fileutil"
)

// DefaultOutputDir is used when WithOutputDir is not given.
const DefaultOutputDir = "generated_certificates"

// pointsPerPixel sizes PDF pages so the image prints at 96 DPI.
const pointsPerPixel = 72.0 / 96.0

const pdfCreator = "go-certgen"

// Exporter writes rendered certificates to disk.
type Exporter struct {
	dir       string
	prefix    string
	pdf       bool
	titleCase bool
	author    string
	now       func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithOutputDir sets the directory certificates are written to.
func WithOutputDir(dir string) ExporterOption {
	return func(e *Exporter) {
		e.dir = dir
	}
}

// WithPrefix names files "{prefix}_{name}" instead of "{name}".
func WithPrefix(prefix string) ExporterOption {
	return func(e *Exporter) {
		e.prefix = prefix
	}
}

// WithPDF also writes a single-page PDF next to each PNG.
func WithPDF(enabled bool) ExporterOption {
	return func(e *Exporter) {
		e.pdf = enabled
	}
}

// WithFileTitleCase title-cases the participant name used in file names.
func WithFileTitleCase(enabled bool) ExporterOption {
	return func(e *Exporter) {
		e.titleCase = enabled
	}
}

// WithAuthor sets the PDF author metadata.
func WithAuthor(author string) ExporterOption {
	return func(e *Exporter) {
		e.author = author
	}
}

// WithClock replaces time.Now for PDF creation dates.
func WithClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an Exporter writing PNG files to DefaultOutputDir.
func NewExporter(opts ...ExporterOption) *Exporter {
	e := &Exporter{
		dir:       DefaultOutputDir,
		titleCase: true,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Prepare creates the output directory if it does not exist.
func (e *Exporter) Prepare() error {
	if err := fileutil.EnsureDir(e.dir); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Paths returns the PNG and PDF paths for rec. pdfPath is empty when PDF
// output is disabled.
func (e *Exporter) Paths(rec Record) (pngPath, pdfPath string) {
	base := fileutil.SanitizeFileName(DisplayName(rec.Name, e.titleCase))
	if e.prefix != "" {
		base = e.prefix + "_" + base
	}
	pngPath = filepath.Join(e.dir, base+".png")
	if e.pdf {
		pdfPath = filepath.Join(e.dir, base+".pdf")
	}
	return pngPath, pdfPath
}

// Export encodes img and writes it under the names derived from rec.
// Existing files are overwritten.
func (e *Exporter) Export(img image.Image, rec Record) (Artifact, error) {
	pngPath, pdfPath := e.Paths(rec)
	art := Artifact{Image: img, PNGPath: pngPath, PDFPath: pdfPath}

	if err := e.Prepare(); err != nil {
		return art, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return art, fmt.Errorf("%w: encoding PNG: %v", ErrWrite, err)
	}

	// Build the PDF before touching disk so a failed record leaves no files.
	var pdfData []byte
	if pdfPath != "" {
		data, err := e.buildPDF(buf.Bytes(), img.Bounds().Size(), DisplayName(rec.Name, e.titleCase))
		if err != nil {
			return art, fmt.Errorf("%w: building PDF: %v", ErrWrite, err)
		}
		pdfData = data
	}

	if err := fileutil.WriteFile(pngPath, buf.Bytes()); err != nil {
		return art, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if pdfPath == "" {
		return art, nil
	}
	if err := fileutil.WriteFile(pdfPath, pdfData); err != nil {
		if rmErr := os.Remove(pngPath); rmErr != nil && !os.IsNotExist(rmErr) {
			err = errors.Join(err, rmErr)
		}
		return art, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return art, nil
}

// buildPDF places the PNG edge to edge on a page of the same size.
func (e *Exporter) buildPDF(pngData []byte, px image.Point, title string) ([]byte, error) {
	w := float64(px.X) * pointsPerPixel
	h := float64(px.Y) * pointsPerPixel

	// gofpdf expects portrait dimensions and swaps them for "L".
	orientation := "P"
	size := gofpdf.SizeType{Wd: w, Ht: h}
	if w > h {
		orientation = "L"
		size = gofpdf.SizeType{Wd: h, Ht: w}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator(pdfCreator, true)
	if e.author != "" {
		pdf.SetAuthor(e.author, true)
	}
	pdf.SetCreationDate(e.now())
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate", opts, bytes.NewReader(pngData))
	pdf.ImageOptions("certificate", 0, 0, w, h, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

package certgen

import (
	"bytes"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

// ---------------------------------------------------------------------------
// TestExporter_Paths - Output Naming
// ---------------------------------------------------------------------------

func TestExporter_Paths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []ExporterOption
		rec     Record
		wantPNG string
		wantPDF string
	}{
		{
			name:    "simple",
			opts:    []ExporterOption{WithOutputDir("out")},
			rec:     Record{Name: "John Doe"},
			wantPNG: filepath.Join("out", "John Doe.png"),
		},
		{
			name:    "full with prefix and pdf",
			opts:    []ExporterOption{WithOutputDir("out"), WithPrefix("Internship_Completion_Certificate"), WithPDF(true)},
			rec:     Record{Name: "Jane Smith"},
			wantPNG: filepath.Join("out", "Internship_Completion_Certificate_Jane Smith.png"),
			wantPDF: filepath.Join("out", "Internship_Completion_Certificate_Jane Smith.pdf"),
		},
		{
			name:    "name is title-cased and trimmed",
			opts:    []ExporterOption{WithOutputDir("out")},
			rec:     Record{Name: "  jane smith "},
			wantPNG: filepath.Join("out", "Jane Smith.png"),
		},
		{
			name:    "title case disabled",
			opts:    []ExporterOption{WithOutputDir("out"), WithFileTitleCase(false)},
			rec:     Record{Name: "jane smith"},
			wantPNG: filepath.Join("out", "jane smith.png"),
		},
		{
			name:    "separators cannot escape the directory",
			opts:    []ExporterOption{WithOutputDir("out")},
			rec:     Record{Name: "../etc/passwd"},
			wantPNG: filepath.Join("out", ".._Etc_Passwd.png"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			png, pdf := NewExporter(tt.opts...).Paths(tt.rec)
			if png != tt.wantPNG {
				t.Errorf("png = %q, want %q", png, tt.wantPNG)
			}
			if pdf != tt.wantPDF {
				t.Errorf("pdf = %q, want %q", pdf, tt.wantPDF)
			}
		})
	}
}

func TestNewExporter_Defaults(t *testing.T) {
	t.Parallel()

	e := NewExporter()
	if e.Dir() != DefaultOutputDir {
		t.Errorf("Dir() = %q, want %q", e.Dir(), DefaultOutputDir)
	}
	if _, pdf := e.Paths(Record{Name: "Ada"}); pdf != "" {
		t.Errorf("pdf path = %q, want none by default", pdf)
	}
}

// ---------------------------------------------------------------------------
// TestExporter_Export - Writing PNG and PDF Files
// ---------------------------------------------------------------------------

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("png only", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "out")
		e := NewExporter(WithOutputDir(dir))

		art, err := e.Export(newTestTemplate(64, 32).img, Record{Name: "John Doe"})
		if err != nil {
			t.Fatalf("Export() error: %v", err)
		}
		if art.PDFPath != "" {
			t.Errorf("PDFPath = %q, want empty", art.PDFPath)
		}

		got, err := imaging.Open(art.PNGPath)
		if err != nil {
			t.Fatalf("reading PNG: %v", err)
		}
		if got.Bounds().Size() != image.Pt(64, 32) {
			t.Errorf("PNG size = %v, want 64x32", got.Bounds().Size())
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("output dir not created: %v", err)
		}
	})

	t.Run("png and pdf", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		e := NewExporter(
			WithOutputDir(dir),
			WithPrefix("Internship_Completion_Certificate"),
			WithPDF(true),
			WithAuthor("Training Office"),
			WithClock(func() time.Time { return fixed }),
		)

		art, err := e.Export(newTestTemplate(200, 100).img, Record{Name: "Jane Smith"})
		if err != nil {
			t.Fatalf("Export() error: %v", err)
		}

		data, err := os.ReadFile(art.PDFPath)
		if err != nil {
			t.Fatalf("reading PDF: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF-")) {
			t.Errorf("PDF header = %q", data[:min(8, len(data))])
		}
		if filepath.Base(art.PDFPath) != "Internship_Completion_Certificate_Jane Smith.pdf" {
			t.Errorf("PDFPath = %q", art.PDFPath)
		}
		if info, err := os.Stat(art.PNGPath); err != nil || info.Size() == 0 {
			t.Errorf("PNG missing or empty: %v", err)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		e := NewExporter(WithOutputDir(dir))
		if _, err := e.Export(newTestTemplate(10, 10).img, Record{Name: "Ada"}); err != nil {
			t.Fatal(err)
		}
		art, err := e.Export(newTestTemplate(20, 20).img, Record{Name: "Ada"})
		if err != nil {
			t.Fatal(err)
		}
		got, err := imaging.Open(art.PNGPath)
		if err != nil {
			t.Fatal(err)
		}
		if got.Bounds().Dx() != 20 {
			t.Errorf("width = %d, want 20 (last write wins)", got.Bounds().Dx())
		}
	})

	t.Run("failed pdf write leaves no png", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		e := NewExporter(WithOutputDir(dir), WithPDF(true))
		rec := Record{Name: "Bob"}
		pngPath, pdfPath := e.Paths(rec)
		// A non-empty directory at the PDF path makes the final rename fail.
		if err := os.MkdirAll(filepath.Join(pdfPath, "occupied"), 0o750); err != nil {
			t.Fatal(err)
		}

		_, err := e.Export(newTestTemplate(10, 10).img, rec)
		if !errors.Is(err, ErrWrite) {
			t.Fatalf("Export() error = %v, want ErrWrite", err)
		}
		if _, err := os.Stat(pngPath); !os.IsNotExist(err) {
			t.Errorf("PNG left behind after PDF failure: stat error = %v", err)
		}
	})

	t.Run("output path is a file", func(t *testing.T) {
		t.Parallel()
		blocker := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(blocker, nil, 0o600); err != nil {
			t.Fatal(err)
		}
		e := NewExporter(WithOutputDir(blocker))
		_, err := e.Export(newTestTemplate(10, 10).img, Record{Name: "Ada"})
		if !errors.Is(err, ErrWrite) {
			t.Errorf("Export() error = %v, want ErrWrite", err)
		}
	})
}

func TestExporter_buildPDF(t *testing.T) {
	t.Parallel()

	var png bytes.Buffer
	if err := imaging.Encode(&png, newTestTemplate(300, 600).img, imaging.PNG); err != nil {
		t.Fatal(err)
	}

	e := NewExporter(WithClock(func() time.Time { return time.Unix(0, 0) }))
	data, err := e.buildPDF(png.Bytes(), image.Pt(300, 600), "Portrait")
	if err != nil {
		t.Fatalf("buildPDF() error: %v", err)
	}
	// 300x600 px at 96 DPI is 225x450 pt.
	if !bytes.Contains(data, []byte("/MediaBox [0 0 225.00 450.00]")) {
		t.Error("page size does not match image size at 96 DPI")
	}
}

package certgen

import (
	"encoding/csv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// newTestTemplate returns a plain white w x h template.
func newTestTemplate(w, h int) *Template {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return NewTemplate(img)
}

// writeTestTemplate writes a plain white PNG and returns its path.
func writeTestTemplate(t *testing.T, dir string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, "template.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, newTestTemplate(w, h).img); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeWorkbook saves rows to Sheet1 of a new workbook.
func writeWorkbook(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

// writeCSV saves rows as a CSV file.
func writeCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
}

// newTestRenderer builds a renderer with small fonts for small templates.
func newTestRenderer(t *testing.T, mode Mode) *Renderer {
	t.Helper()
	layout := DefaultLayout(mode)
	layout.NameSize = 24
	layout.DateSize = 12
	layout.Name = Offset{X: 0, Y: -20}
	layout.StartDate = Offset{X: -80, Y: 30}
	layout.EndDate = Offset{X: 80, Y: 30}
	r, err := NewRenderer(layout, FontSource{Bold: true})
	if err != nil {
		t.Fatalf("NewRenderer() error: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

// countChanged returns how many pixels differ between a and b.
func countChanged(a, b image.Image) int {
	n := 0
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r1, g1, b1, a1 := a.At(x, y).RGBA()
			r2, g2, b2, a2 := b.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				n++
			}
		}
	}
	return n
}

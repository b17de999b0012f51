package certgen

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Renderer draws participant text onto templates.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	layout   Layout
	nameFace font.Face
	dateFace font.Face
}

// textLine is one string placed on the certificate.
type textLine struct {
	text   string
	face   font.Face
	offset Offset
}

// NewRenderer validates layout and prepares font faces.
// Call Close when done.
func NewRenderer(layout Layout, fonts FontSource) (*Renderer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	parsed, err := fonts.parse()
	if err != nil {
		return nil, err
	}

	r := &Renderer{layout: layout}
	if r.nameFace, err = newFace(parsed, layout.NameSize); err != nil {
		return nil, err
	}
	if layout.Mode == ModeFull {
		if r.dateFace, err = newFace(parsed, layout.DateSize); err != nil {
			_ = r.nameFace.Close()
			return nil, err
		}
	}
	return r, nil
}

// Layout returns the layout the renderer was built with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Close releases the font faces.
func (r *Renderer) Close() error {
	var errs []error
	if r.nameFace != nil {
		errs = append(errs, r.nameFace.Close())
	}
	if r.dateFace != nil {
		errs = append(errs, r.dateFace.Close())
	}
	return errors.Join(errs...)
}

// Render returns a copy of the template with rec's text drawn on it.
// The template is not modified.
func (r *Renderer) Render(tmpl *Template, rec Record) (img *image.RGBA, err error) {
	defer func() {
		if p := recover(); p != nil {
			img = nil
			err = fmt.Errorf("%w: %v", ErrRender, p)
		}
	}()

	if strings.TrimSpace(rec.Name) == "" {
		return nil, fmt.Errorf("%w: row %d", ErrEmptyName, rec.Row)
	}
	if tmpl == nil || tmpl.img == nil {
		return nil, fmt.Errorf("%w: no template", ErrRender)
	}

	dc := gg.NewContextForImage(tmpl.img)
	dc.SetColor(r.layout.Color)
	size := image.Pt(dc.Width(), dc.Height())

	for _, line := range r.lines(rec) {
		dc.SetFontFace(line.face)
		w, h := dc.MeasureString(line.text)
		x, y := Anchor(size, w, h, line.offset)
		dc.DrawString(line.text, x, y)
	}

	return toRGBA(dc.Image()), nil
}

func (r *Renderer) lines(rec Record) []textLine {
	lines := []textLine{{
		text:   DisplayName(rec.Name, r.layout.TitleCase),
		face:   r.nameFace,
		offset: r.layout.Name,
	}}
	if r.layout.Mode != ModeFull {
		return lines
	}

	start, ok := rec.StartDate()
	if !ok {
		start = r.layout.FallbackDate
	}
	end, ok := rec.EndDate()
	if !ok {
		end = r.layout.FallbackDate
	}
	return append(lines,
		textLine{text: start, face: r.dateFace, offset: r.layout.StartDate},
		textLine{text: end, face: r.dateFace, offset: r.layout.EndDate},
	)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}

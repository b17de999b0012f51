package certgen

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default text styling.
const (
	DefaultNameSize     = 120.0
	DefaultDateSize     = 48.0
	DefaultFallbackDate = "Date Not Available"
)

// DefaultColor is the orange-red used on the stock templates.
var DefaultColor = Color{R: 253, G: 102, B: 68}

// Offset displaces text from the centred position, in pixels.
// Positive X moves right, positive Y moves down.
type Offset struct {
	X, Y int
}

// Layout describes what is drawn on a template and where.
type Layout struct {
	Mode      Mode
	Color     Color
	NameSize  float64
	DateSize  float64
	Name      Offset
	StartDate Offset // Full mode only
	EndDate   Offset // Full mode only

	// TitleCase converts "jane SMITH" to "Jane Smith" before drawing
	// and before building file names.
	TitleCase bool

	// FallbackDate is drawn in place of a date with a missing fragment.
	FallbackDate string
}

// DefaultLayout returns the stock layout for mode.
func DefaultLayout(mode Mode) Layout {
	l := Layout{
		Mode:         mode,
		Color:        DefaultColor,
		NameSize:     DefaultNameSize,
		DateSize:     DefaultDateSize,
		Name:         Offset{X: 7, Y: -78},
		TitleCase:    true,
		FallbackDate: DefaultFallbackDate,
	}
	if mode == ModeFull {
		l.Name = Offset{X: 100, Y: -78}
		l.StartDate = Offset{X: 130, Y: 80}
		l.EndDate = Offset{X: 535, Y: 80}
	}
	return l
}

// Validate reports whether l can be rendered.
func (l Layout) Validate() error {
	if l.Mode != ModeSimple && l.Mode != ModeFull {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidLayout, int(l.Mode))
	}
	if l.NameSize <= 0 {
		return fmt.Errorf("%w: name size must be positive, got %.2f", ErrInvalidLayout, l.NameSize)
	}
	if l.Mode == ModeFull && l.DateSize <= 0 {
		return fmt.Errorf("%w: date size must be positive, got %.2f", ErrInvalidLayout, l.DateSize)
	}
	return nil
}

// Anchor returns the baseline origin for text of the given size centred on
// a canvas of the given size and then displaced by off.
// Values may fall outside the canvas.
func Anchor(canvas image.Point, textW, textH float64, off Offset) (x, y float64) {
	x = math.Trunc((float64(canvas.X)-textW)/2) + float64(off.X)
	y = math.Trunc((float64(canvas.Y)+textH)/2) + float64(off.Y)
	return x, y
}

// DisplayName returns the trimmed name, title-cased when titleCase is set.
func DisplayName(name string, titleCase bool) string {
	name = strings.TrimSpace(name)
	if titleCase {
		return cases.Title(language.English).String(name)
	}
	return name
}

package certgen

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource selects the typeface used for all certificate text.
// An empty Path uses the embedded Go font, bold or regular.
type FontSource struct {
	Path string
	Bold bool
}

// fontDPI makes face sizes equal to pixel heights.
const fontDPI = 72

func (s FontSource) parse() (*opentype.Font, error) {
	data := goregular.TTF
	if s.Bold {
		data = gobold.TTF
	}

	if s.Path != "" {
		custom, err := os.ReadFile(s.Path) // #nosec G304 -- font path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		data = custom
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrFontLoad, s.describe(), err)
	}
	return parsed, nil
}

func (s FontSource) describe() string {
	switch {
	case s.Path != "":
		return s.Path
	case s.Bold:
		return "Go Bold"
	default:
		return "Go Regular"
	}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: face at %.1fpx: %v", ErrFontLoad, size, err)
	}
	return face, nil
}

package certgen

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/alnah/go-certgen/internal/fileutil"
)

// Template is a decoded certificate background. It is never drawn on;
// every render works on a copy.
type Template struct {
	path string
	img  image.Image
}

// LoadTemplate decodes the image at path, honouring EXIF orientation.
func LoadTemplate(path string) (*Template, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: template %s", ErrFileNotFound, path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateDecode, path, err)
	}

	return &Template{path: path, img: img}, nil
}

// NewTemplate wraps an already decoded image.
func NewTemplate(img image.Image) *Template {
	return &Template{img: img}
}

// Path returns the file the template was loaded from, or "" for NewTemplate.
func (t *Template) Path() string {
	return t.path
}

// Size returns the template dimensions in pixels.
func (t *Template) Size() image.Point {
	return t.img.Bounds().Size()
}

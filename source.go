package colorlut

import (
	"fmt"
	"image"
)

// Source is a 3D LUT flattened into a 2D strip: Dim slices of Dim×Dim
// texels laid side by side, giving a Side×Dim image.
//
// Pixels are stored row-major from the bottom row up, which is the order
// texture assets conventionally use. Convert flips the green axis back.
type Source struct {
	name   string
	width  int
	height int
	pix    []RGBA
}

// NewSource creates a source from raw pixels stored bottom-to-top.
// The pixel slice is used directly, not copied.
func NewSource(name string, width, height int, pix []RGBA) (*Source, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("colorlut: invalid source size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("colorlut: source %q has %d pixels, want %d", name, len(pix), width*height)
	}
	return &Source{name: name, width: width, height: height, pix: pix}, nil
}

// SourceFromImage creates a source from a decoded image. Go images are
// stored top-to-bottom, so rows are reversed.
func SourceFromImage(name string, img image.Image) *Source {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]RGBA, w*h)
	for y := 0; y < h; y++ {
		row := (h - 1 - y) * w
		for x := 0; x < w; x++ {
			pix[row+x] = FromColor(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return &Source{name: name, width: w, height: h, pix: pix}
}

// Name returns the identity the source was loaded from, usually a path.
func (s *Source) Name() string {
	return s.name
}

// Width returns the strip width in pixels.
func (s *Source) Width() int {
	return s.width
}

// Height returns the strip height in pixels.
func (s *Source) Height() int {
	return s.height
}

// Pixels returns the bottom-to-top pixel array.
func (s *Source) Pixels() []RGBA {
	return s.pix
}

// ValidateSource reports whether src can be packed. The height must equal
// the square root of the width, and it must be exactly Dim: a 256×16 strip
// is the only layout accepted.
func ValidateSource(src *Source) bool {
	if src == nil {
		return false
	}
	h := src.height
	if h*h != src.width {
		return false
	}
	// other resolutions are not supported
	return h == Dim
}

package colorlut

import (
	"fmt"
	"math"
	"reflect"

	icolor "github.com/gogpu/colorlut/internal/color"
)

// SoftwareBackend grades CPU frames by running the lookup shader on the
// CPU: bilinear filtering with clamp-to-edge addressing on the packed
// table, one sample per pixel.
//
// It accepts any Frame implementing CPUFrame, typically *Pixmap.
type SoftwareBackend struct{}

// NewSoftwareBackend creates a new CPU-based backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name implements Backend.
func (b *SoftwareBackend) Name() string {
	return "software"
}

// NewMaterial implements Backend. The software material cannot fail.
func (b *SoftwareBackend) NewMaterial() (Material, error) {
	return &softwareMaterial{}, nil
}

// Copy implements Backend.
func (b *SoftwareBackend) Copy(src, dst Frame) error {
	s, d, err := cpuFrames(src, dst)
	if err != nil {
		return err
	}
	sp, dp := s.Pixels(), d.Pixels()
	if samePixels(sp, dp) {
		return nil
	}
	rowBytes := s.Width() * 4
	for y := 0; y < s.Height(); y++ {
		copy(dp[y*d.Stride():y*d.Stride()+rowBytes], sp[y*s.Stride():y*s.Stride()+rowBytes])
	}
	return nil
}

// softwareMaterial is the CPU rendition of the grading shader.
type softwareMaterial struct {
	released bool
}

// Blit implements Material.
func (m *softwareMaterial) Blit(src, dst Frame, table *Table, params Params, cs ColorSpace) error {
	if m.released {
		return ErrMaterialReleased
	}
	if table == nil || table.Released() {
		return ErrTableReleased
	}
	s, d, err := cpuFrames(src, dst)
	if err != nil {
		return err
	}

	linear := cs == ColorSpaceLinear
	w, h := s.Width(), s.Height()
	sp, dp := s.Pixels(), d.Pixels()
	for y := 0; y < h; y++ {
		so := y * s.Stride()
		do := y * d.Stride()
		for x := 0; x < w; x++ {
			i := so + x*4
			c := fromF32(icolor.U8ToF32(icolor.ColorU8{R: sp[i+0], G: sp[i+1], B: sp[i+2], A: sp[i+3]}))
			out := gradePixel(c, table, params, linear)

			o := do + x*4
			dp[o+0] = uint8(clamp255(out.R*255 + 0.5))
			dp[o+1] = uint8(clamp255(out.G*255 + 0.5))
			dp[o+2] = uint8(clamp255(out.B*255 + 0.5))
			dp[o+3] = uint8(clamp255(out.A*255 + 0.5))
		}
	}
	return nil
}

// Release implements Material.
func (m *softwareMaterial) Release() {
	m.released = true
}

// gradePixel runs the lookup shader for one color.
func gradePixel(c RGBA, table *Table, params Params, linear bool) RGBA {
	if linear {
		c = fromF32(icolor.LinearToSRGBColor(c.f32()))
	}
	u, v := LookupUV(c, params)
	out := sampleBilinear(table, u, v)
	out.A = c.A
	if linear {
		out = fromF32(icolor.SRGBToLinearColor(out.f32()))
	}
	return out
}

// sampleBilinear samples the table at UV (u, v) with linear filtering and
// clamp-to-edge addressing, using texel-center conventions.
func sampleBilinear(t *Table, u, v float64) RGBA {
	tx := u*Side - 0.5
	ty := v*Side - 0.5
	x0 := math.Floor(tx)
	y0 := math.Floor(ty)
	fx := tx - x0
	fy := ty - y0
	ix, iy := int(x0), int(y0)

	top := t.At(ix, iy).Lerp(t.At(ix+1, iy), fx)
	bottom := t.At(ix, iy+1).Lerp(t.At(ix+1, iy+1), fx)
	return top.Lerp(bottom, fy)
}

// cpuFrames checks that src and dst are CPU frames of equal size.
func cpuFrames(src, dst Frame) (CPUFrame, CPUFrame, error) {
	s, ok := src.(CPUFrame)
	if !ok || isNilFrame(s) {
		return nil, nil, fmt.Errorf("software backend: source %T: %w", src, ErrUnsupportedFrame)
	}
	d, ok := dst.(CPUFrame)
	if !ok || isNilFrame(d) {
		return nil, nil, fmt.Errorf("software backend: destination %T: %w", dst, ErrUnsupportedFrame)
	}
	if s.Width() != d.Width() || s.Height() != d.Height() {
		return nil, nil, fmt.Errorf("software backend: %dx%d -> %dx%d: %w",
			s.Width(), s.Height(), d.Width(), d.Height(), ErrFrameMismatch)
	}
	return s, d, nil
}

// isNilFrame reports whether f holds a nil pointer, such as (*Pixmap)(nil).
func isNilFrame(f Frame) bool {
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// samePixels reports whether a and b share their backing storage. Frames
// are compared by their pixels, not by value: a frame type need not be
// comparable.
func samePixels(a, b []byte) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

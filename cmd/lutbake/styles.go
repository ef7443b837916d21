package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/colorlut"
)

// style maps an ungraded color to its graded counterpart.
type style func(c colorful.Color) colorful.Color

var (
	warmTint = colorful.Color{R: 1.0, G: 0.62, B: 0.25}
	coolTint = colorful.Color{R: 0.25, G: 0.55, B: 1.0}
)

var styles = map[string]style{
	"identity": func(c colorful.Color) colorful.Color { return c },
	"sepia":    sepia,
	"warm":     func(c colorful.Color) colorful.Color { return c.BlendLab(warmTint, 0.2).Clamped() },
	"cool":     func(c colorful.Color) colorful.Color { return c.BlendLab(coolTint, 0.2).Clamped() },
	"mono":     mono,
}

func styleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupStyle(name string) (style, error) {
	s, ok := styles[name]
	if !ok {
		return nil, fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(styleNames(), ", "))
	}
	return s, nil
}

func sepia(c colorful.Color) colorful.Color {
	return colorful.Color{
		R: 0.393*c.R + 0.769*c.G + 0.189*c.B,
		G: 0.349*c.R + 0.686*c.G + 0.168*c.B,
		B: 0.272*c.R + 0.534*c.G + 0.131*c.B,
	}.Clamped()
}

// mono keeps CIE lightness and drops chroma.
func mono(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	return colorful.Lab(l, 0, 0).Clamped()
}

// generateStrip renders a Side×Dim strip graded by s. Slice k holds blue
// k/(Dim-1); inside a slice red grows left to right and green grows down
// the image, so SourceFromImage puts green 0 on table row 0.
func generateStrip(s style) *colorlut.Pixmap {
	const last = colorlut.Dim - 1
	pm := colorlut.NewPixmap(colorlut.Side, colorlut.Dim)
	for y := 0; y < colorlut.Dim; y++ {
		for k := 0; k < colorlut.Dim; k++ {
			for x := 0; x < colorlut.Dim; x++ {
				in := colorful.Color{
					R: float64(x) / last,
					G: float64(y) / last,
					B: float64(k) / last,
				}
				out := s(in)
				pm.SetPixel(k*colorlut.Dim+x, y, colorlut.RGB(out.R, out.G, out.B))
			}
		}
	}
	return pm
}

package colorlut

import "math"

// BuildIdentity returns a table that maps every color to itself: red and
// green follow the texel position inside a tile, blue follows the tile
// index j*Dim+i.
func BuildIdentity() *Table {
	t := newTable("")

	for i := 0; i < Dim; i++ {
		for j := 0; j < Dim; j++ {
			b := float64(sliceIndex(i, j)) / (Dim*Dim - 1)
			for x := 0; x < Dim; x++ {
				for y := 0; y < Dim; y++ {
					t.set(x, y, i, j, RGBA{
						R: float64(x) / (Dim - 1),
						G: float64(y) / (Dim - 1),
						B: b,
						A: 1,
					})
				}
			}
		}
	}
	Logger().Debug("colorlut: built identity table", "id", t.ID())
	return t
}

// Convert packs a 256×16 source strip into a new table.
//
// The blue axis is resampled in software: tile (i, j) reads the source at
// the continuous slice b = (i + j*Dim) / Dim and blends the two nearest
// slices linearly. Hardware filtering on the packed table then only has to
// cover red and green.
//
// A nil source yields *MissingInputError, a source with the wrong shape
// *ValidationError. Neither produces a table.
func Convert(src *Source) (*Table, error) {
	if src == nil {
		Logger().Error("colorlut: couldn't color correct with 2D LUT texture, effect will be disabled")
		return nil, &MissingInputError{}
	}
	if !ValidateSource(src) {
		err := &ValidationError{Name: src.name, Width: src.width, Height: src.height}
		Logger().Warn("colorlut: source LUT cannot be used as a 3D LUT",
			"name", src.name, "width", src.width, "height", src.height)
		return nil, err
	}

	dim := src.height
	c := src.pix
	t := newTable(src.name)

	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			b := float64(i+j*dim) / float64(dim)
			b0 := int(math.Floor(b))
			b1 := min(b0+1, dim-1)
			f := b - float64(b0)

			for x := 0; x < dim; x++ {
				for y := 0; y < dim; y++ {
					index := x + (dim-y-1)*dim*dim
					col1 := c[index+b0*dim]
					col2 := c[index+b1*dim]
					t.set(x, y, i, j, col1.Lerp(col2, f))
				}
			}
		}
	}

	Logger().Debug("colorlut: converted source LUT", "name", src.name, "id", t.ID())
	return t, nil
}

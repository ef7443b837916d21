package colorlut

// Packed table geometry. Only a 16-step cube is supported: the shader
// constants assume it.
const (
	// Dim is the grid resolution of the LUT cube along each axis.
	Dim = 16

	// Side is the width and height of the packed table in texels.
	Side = Dim * Dim

	// Samples is the number of texels in the packed table.
	Samples = Side * Side
)

// ToPixel maps the logical LUT coordinate (x, y, i, j) to its texel in the
// packed table. x and y are the red and green inputs, (i, j) selects the
// tile holding blue slice i + j*Dim.
func ToPixel(x, y, i, j int) (px, py int) {
	return x + i*Dim, y + j*Dim
}

// ToSample is the inverse of ToPixel.
func ToSample(px, py int) (x, y, i, j int) {
	return px % Dim, py % Dim, px / Dim, py / Dim
}

// sliceIndex returns the blue slice stored in tile (i, j).
func sliceIndex(i, j int) int {
	return j*Dim + i
}

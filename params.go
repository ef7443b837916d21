package colorlut

import (
	"encoding/binary"
	"math"
)

// UniformSize is the byte size of the shader uniform block:
// _ScaleRG, _Dim, _Offset (f32 each) plus one f32 of padding.
const UniformSize = 16

// Params are the sampling constants the shader uses to map an input color
// to texel coordinates in the packed table. They are recomputed from the
// table side every frame.
type Params struct {
	ScaleRG float32 // _ScaleRG: span of one tile in UV units, edge to edge of its texel centers
	Dim     float32 // _Dim: tiles per row, sqrt(side)
	Offset  float32 // _Offset: half a texel in UV units
}

// ParamsForSide derives the sampling constants for a packed table of the
// given side length.
func ParamsForSide(side int) Params {
	s := float64(side)
	dim := math.Sqrt(s)
	return Params{
		ScaleRG: float32((dim - 1) / s),
		Dim:     float32(dim),
		Offset:  float32(1 / (2 * s)),
	}
}

// Uniform encodes the parameters in the layout of the LutParams struct in
// the WGSL shader.
func (p Params) Uniform() []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(p.ScaleRG))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(p.Dim))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(p.Offset))
	return buf
}

// LookupUV returns the packed-table UV at which the shader samples the
// gamma-encoded color c. Blue selects the nearest of the Dim² slices, red
// and green address a texel center inside that slice's tile.
func LookupUV(c RGBA, p Params) (u, v float64) {
	dim := float64(p.Dim)
	slices := dim * dim
	n := math.Floor(clamp01(c.B)*(slices-1) + 0.5)
	i := math.Mod(n, dim)
	j := math.Floor(n / dim)

	scale := float64(p.ScaleRG)
	off := float64(p.Offset)
	u = clamp01(c.R)*scale + off + i/dim
	v = clamp01(c.G)*scale + off + j/dim
	return u, v
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package colorlut

import (
	"sync/atomic"

	icolor "github.com/gogpu/colorlut/internal/color"
)

// tableIDs hands out table generation numbers. Zero is never used.
var tableIDs atomic.Uint64

// Table is the packed 2D encoding of a Dim³ color cube: a Side×Side grid of
// Dim×Dim tiles, one tile per blue slice. Texel ToPixel(x, y, i, j) holds
// color(x, y, i, j).
//
// A Table is owned by exactly one holder. Release drops its pixel storage;
// using a released table returns ErrTableReleased.
type Table struct {
	id      uint64
	basedOn string
	pix     []RGBA

	released atomic.Bool
}

func newTable(basedOn string) *Table {
	return &Table{
		id:      tableIDs.Add(1),
		basedOn: basedOn,
		pix:     make([]RGBA, Samples),
	}
}

// ID returns a process-unique generation number for this table.
func (t *Table) ID() uint64 {
	return t.id
}

// BasedOn returns the name of the source the table was converted from.
// It is empty for identity tables. The name is informational: it appears in
// logs and diagnostics, while the Colorizer tracks its source by pointer.
func (t *Table) BasedOn() string {
	return t.basedOn
}

// Side returns the width and height of the table in texels.
func (t *Table) Side() int {
	return Side
}

// At returns the texel at (px, py). Coordinates outside the table are
// clamped to the nearest edge. Released tables return Transparent.
func (t *Table) At(px, py int) RGBA {
	if t.released.Load() {
		return Transparent
	}
	px = clampIndex(px, Side-1)
	py = clampIndex(py, Side-1)
	return t.pix[py*Side+px]
}

// Sample returns color(x, y, i, j).
func (t *Table) Sample(x, y, i, j int) RGBA {
	return t.At(ToPixel(x, y, i, j))
}

// set stores color(x, y, i, j).
func (t *Table) set(x, y, i, j int, c RGBA) {
	px, py := ToPixel(x, y, i, j)
	t.pix[py*Side+px] = c
}

// Pixels returns the texels in row-major order, top row first.
func (t *Table) Pixels() ([]RGBA, error) {
	if t.released.Load() {
		return nil, ErrTableReleased
	}
	return t.pix, nil
}

// RGBA8 encodes the table as 8-bit RGBA, the layout uploaded to the GPU.
func (t *Table) RGBA8() ([]byte, error) {
	if t.released.Load() {
		return nil, ErrTableReleased
	}
	out := make([]byte, Samples*4)
	for k, c := range t.pix {
		u := icolor.F32ToU8(c.f32())
		out[k*4+0] = u.R
		out[k*4+1] = u.G
		out[k*4+2] = u.B
		out[k*4+3] = u.A
	}
	return out, nil
}

// Pixmap renders the table into an 8-bit pixmap, for saving or inspection.
func (t *Table) Pixmap() (*Pixmap, error) {
	data, err := t.RGBA8()
	if err != nil {
		return nil, err
	}
	pm := NewPixmap(Side, Side)
	copy(pm.data, data)
	return pm, nil
}

// Release frees the table storage. It is safe to call more than once.
func (t *Table) Release() {
	if t == nil || t.released.Swap(true) {
		return
	}
	t.pix = nil
}

// Released reports whether Release was called.
func (t *Table) Released() bool {
	return t.released.Load()
}

func clampIndex(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

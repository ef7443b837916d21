package colorlut

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParamsForSide(t *testing.T) {
	got := ParamsForSide(Side)
	want := Params{ScaleRG: 15.0 / 256, Dim: 16, Offset: 1.0 / 512}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParamsForSide(256) mismatch (-want +got):\n%s", diff)
	}
}

func TestParamsUniform(t *testing.T) {
	p := ParamsForSide(Side)
	buf := p.Uniform()
	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if read(0) != p.ScaleRG || read(4) != p.Dim || read(8) != p.Offset || read(12) != 0 {
		t.Errorf("uniform = [%v %v %v %v], want [%v %v %v 0]",
			read(0), read(4), read(8), read(12), p.ScaleRG, p.Dim, p.Offset)
	}
}

func TestLookupUV(t *testing.T) {
	p := ParamsForSide(Side)
	approx := cmpopts.EquateApprox(0, 1e-6)

	tests := []struct {
		name string
		c    RGBA
		u, v float64
	}{
		{"black hits first texel center", RGBA{0, 0, 0, 1}, 0.5 / 256, 0.5 / 256},
		{"white hits last texel center", RGBA{1, 1, 1, 1}, 255.5 / 256, 255.5 / 256},
		{"blue 17 selects tile (1,1)", RGBA{0, 0, 17.0 / 255, 1}, 16.5 / 256, 16.5 / 256},
		{"out of range is clamped", RGBA{2, -1, 0, 1}, 15.5 / 256, 0.5 / 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := LookupUV(tt.c, p)
			if diff := cmp.Diff([2]float64{tt.u, tt.v}, [2]float64{u, v}, approx); diff != "" {
				t.Errorf("LookupUV mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

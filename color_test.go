package colorlut

import (
	"image/color"
	"testing"
)

var (
	black = RGB(0, 0, 0)
	white = RGB(1, 1, 1)
	red   = RGB(1, 0, 0)
	blue  = RGB(0, 0, 1)
)

func TestRGBAColor(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", black, color.NRGBA{0, 0, 0, 255}},
		{"half red", RGBA{0.5, 0, 0, 1}, color.NRGBA{128, 0, 0, 255}},
		{"straight alpha", RGBA{1, 1, 1, 0.5}, color.NRGBA{255, 255, 255, 128}},
		{"clamped", RGBA{2, -1, 0, 1}, color.NRGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColorStraightAlpha(t *testing.T) {
	got := FromColor(color.NRGBA{255, 0, 0, 0})
	if got.R != 1 || got.A != 0 {
		t.Errorf("FromColor kept premultiplied values: %+v", got)
	}
}

func TestLerpExactEndpoints(t *testing.T) {
	a := RGBA{0.1, 0.2, 0.3, 0.4}
	for _, f := range []float64{0, 0.25, 0.5, 0.999} {
		if got := a.Lerp(a, f); got != a {
			t.Errorf("Lerp(a, a, %v) = %+v, want %+v", f, got, a)
		}
	}
	if got := black.Lerp(white, 0.5); got != (RGBA{0.5, 0.5, 0.5, 1}) {
		t.Errorf("Lerp(black, white, 0.5) = %+v", got)
	}
}

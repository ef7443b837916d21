package color

import (
	"math"
	"testing"
)

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
		{"below range", -0.5, 0},
		{"above range", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLinearToSRGB(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0, 0},
		{"white", 1, 1},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
		{"above range", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Every 8-bit sRGB level must survive a trip through linear space.
func TestRoundTripU8Levels(t *testing.T) {
	for v := 0; v < 256; v++ {
		s := float32(v) / 255
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(float64(got-s)) > 0.5/255 {
			t.Errorf("level %d: round trip = %v, want %v", v, got, s)
		}
	}
}

func TestColorConversionKeepsAlpha(t *testing.T) {
	c := ColorF32{R: 0.5, G: 0.25, B: 0.75, A: 0.3}
	if got := SRGBToLinearColor(c).A; got != c.A {
		t.Errorf("SRGBToLinearColor alpha = %v, want %v", got, c.A)
	}
	if got := LinearToSRGBColor(c).A; got != c.A {
		t.Errorf("LinearToSRGBColor alpha = %v, want %v", got, c.A)
	}
}

func TestF32ToU8(t *testing.T) {
	tests := []struct {
		name string
		in   ColorF32
		want ColorU8
	}{
		{"zero", ColorF32{}, ColorU8{}},
		{"one", ColorF32{1, 1, 1, 1}, ColorU8{255, 255, 255, 255}},
		{"half rounds up", ColorF32{0.5, 0.5, 0.5, 0.5}, ColorU8{128, 128, 128, 128}},
		{"clamped", ColorF32{-1, 2, 0, 1}, ColorU8{0, 255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := F32ToU8(tt.in); got != tt.want {
				t.Errorf("F32ToU8(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestU8RoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := ColorU8{uint8(v), uint8(255 - v), uint8(v / 2), 255}
		if got := F32ToU8(U8ToF32(c)); got != c {
			t.Fatalf("round trip %v = %v", c, got)
		}
	}
}

func floatNear(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) < epsilon
}

package color

import "math"

// SRGBToLinear decodes one gamma-encoded sRGB component.
// Inputs outside [0,1] are clamped first, matching saturate() in the shader.
func SRGBToLinear(s float32) float32 {
	s = clamp01(s)
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB encodes one linear component with the sRGB curve.
// Inputs outside [0,1] are clamped first.
func LinearToSRGB(l float32) float32 {
	l = clamp01(l)
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// SRGBToLinearColor decodes the RGB components of c. Alpha is unchanged.
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B), A: c.A}
}

// LinearToSRGBColor encodes the RGB components of c. Alpha is unchanged.
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B), A: c.A}
}

// U8ToF32 maps each 8-bit component to [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// F32ToU8 quantizes each component to 8 bits, rounding to nearest.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: quantize(c.A)}
}

func quantize(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

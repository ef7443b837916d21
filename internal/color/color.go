// Package color holds the transfer functions and pixel formats shared by the
// colorlut backends.
package color

// ColorF32 is a color with float32 components in [0,1]. Whether RGB is
// gamma-encoded or linear depends on the caller; alpha is always linear.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is the 8-bit quantization of ColorF32, the texel format of
// uploaded tables.
type ColorU8 struct {
	R, G, B, A uint8
}

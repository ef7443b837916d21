//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
)

// Embedded color grading shader source.
//
//go:embed shaders/colorlut.wgsl
var colorLUTShaderSource string

// Fragment entry points, indexed by colorlut.ColorSpace.Variant().
var fragmentEntryPoints = [2]string{"fs_gamma", "fs_linear"}

// ShaderSource returns the WGSL source of the color grading shader.
func ShaderSource() string {
	return colorLUTShaderSource
}

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}

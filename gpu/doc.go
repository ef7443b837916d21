//go:build !nogpu

// Package gpu runs the color grading pass on the GPU through wgpu/hal.
//
// Frames are *Target values: RGBA8 textures the pass samples from or
// renders into. The grading shader is WGSL compiled to SPIR-V with naga
// when the material is created; a compile or pipeline failure surfaces as
// *colorlut.ResourceUnavailableError, which makes the Colorizer fall back
// to copying frames through.
//
// Usage:
//
//	gpu.Register(device, queue) // "gpu" now outranks "software"
//	c := colorlut.NewColorizer(colorlut.WithSource(src))
//
//	in, _ := gpu.NewTarget(device, w, h)
//	out, _ := gpu.NewTarget(device, w, h)
//	_ = in.Upload(queue, frame)
//	_ = c.Render(in, out)
package gpu

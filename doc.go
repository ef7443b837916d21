// Package colorlut provides color grading through a 2D strip lookup table
// packed into a texture the GPU can filter.
//
// # Overview
//
// A color grading LUT is authored as a 256×16 strip: sixteen 16×16 tiles
// side by side, one per blue level, red along x and green along y. The
// package repacks such a strip into a 256×256 table (a 16×16 grid of
// tiles) and grades every frame through it with a fragment shader.
//
// # Quick Start
//
//	import "github.com/gogpu/colorlut"
//
//	img, _ := colorlut.LoadImage("grade.png")
//	src := colorlut.SourceFromImage("grade", img)
//
//	c := colorlut.NewColorizer(colorlut.WithSource(src))
//	defer c.Destroy()
//
//	out := colorlut.NewPixmap(frame.Width(), frame.Height())
//	if err := c.Render(frame, out); err != nil {
//		log.Fatal(err)
//	}
//
// # Failure Handling
//
// The effect never drops a frame. When the source LUT is missing or has the
// wrong shape, or the shader material cannot be created, the frame is
// copied through unchanged and the problem is logged (see SetLogger).
// Render returns an error only when even that copy is impossible.
//
// # Backends
//
// Backends are registered by name and picked by priority: "gpu" (package
// colorlut/gpu, registered explicitly with a HAL device) before
// "software", the CPU implementation that is always available.
//
// # Coordinate System
//
// Packed tables and frames use image coordinates: origin at the top-left,
// y increasing downward. Source strips are stored bottom row first, see
// SourceFromImage.
package colorlut

package colorlut

import (
	"slices"

	"github.com/gogpu/gpucontext"
)

// Frame is a frame buffer handed to the color grading pass. Frames are
// allocated by the host; backends type-assert to the concrete frame kinds
// they can read and write.
type Frame interface {
	// Width returns the frame width in pixels.
	Width() int

	// Height returns the frame height in pixels.
	Height() int
}

// CPUFrame is a Frame with direct pixel access (straight RGBA, 4 bytes per
// pixel, rows top to bottom).
type CPUFrame interface {
	Frame

	// Pixels returns the pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	Stride() int
}

// ColorSpace is the active display color space of the host. It selects the
// shader variant; it is observed, not owned, by the Colorizer.
type ColorSpace uint8

const (
	// ColorSpaceGamma renders with the gamma shader variant.
	ColorSpaceGamma ColorSpace = iota

	// ColorSpaceLinear renders with the linear shader variant, which
	// gamma-encodes before the lookup and decodes afterwards.
	ColorSpaceLinear
)

// String returns the color space name.
func (cs ColorSpace) String() string {
	if cs == ColorSpaceLinear {
		return "linear"
	}
	return "gamma"
}

// Variant is the index of the shader variant for a color space:
// 0 for gamma, 1 for linear.
func (cs ColorSpace) Variant() int {
	if cs == ColorSpaceLinear {
		return 1
	}
	return 0
}

// Material is a compiled color grading shader bound to a backend.
type Material interface {
	// Blit writes src graded through table into dst, using the variant for cs.
	Blit(src, dst Frame, table *Table, params Params, cs ColorSpace) error

	// Release frees the material's resources. Safe to call more than once.
	Release()
}

// Backend executes the grading pass on one family of frames.
type Backend interface {
	// Name identifies the backend ("software", "gpu").
	Name() string

	// NewMaterial creates the shader material. A failure makes the effect
	// unavailable for the session.
	NewMaterial() (Material, error)

	// Copy copies src into dst unchanged. It works without a material.
	Copy(src, dst Frame) error
}

// backends holds the registered backend factories, best first.
var backends = gpucontext.NewRegistry[Backend](gpucontext.WithPriority("gpu", "software"))

func init() {
	RegisterBackend("software", func() Backend { return NewSoftwareBackend() })
}

// RegisterBackend registers a backend factory under name. Registering a
// name again replaces the previous factory.
func RegisterBackend(name string, factory func() Backend) {
	backends.Register(name, factory)
}

// UnregisterBackend removes a backend factory.
func UnregisterBackend(name string) {
	backends.Unregister(name)
}

// BestBackend returns a new instance of the highest-priority registered
// backend, or nil if none is registered.
func BestBackend() Backend {
	return backends.Best()
}

// BestBackendName returns the name BestBackend would pick.
func BestBackendName() string {
	return backends.BestName()
}

// AvailableBackends lists the registered backend names in sorted order.
func AvailableBackends() []string {
	names := backends.Available()
	slices.Sort(names)
	return names
}

package colorlut

import (
	"errors"
	"fmt"
)

var (
	// ErrTableReleased is returned when a released table is used.
	ErrTableReleased = errors.New("colorlut: table has been released")

	// ErrMaterialReleased is returned when a released material is used.
	ErrMaterialReleased = errors.New("colorlut: material has been released")

	// ErrFrameMismatch is returned when source and destination frames differ in size.
	ErrFrameMismatch = errors.New("colorlut: source and destination frame sizes differ")

	// ErrUnsupportedFrame is returned when a backend cannot access a frame.
	ErrUnsupportedFrame = errors.New("colorlut: frame type not supported by backend")

	// ErrNoBackend is returned when no backend is registered or configured.
	ErrNoBackend = errors.New("colorlut: no backend available")
)

// ValidationError reports a source LUT whose shape cannot be packed.
// The effect keeps running without color correction.
type ValidationError struct {
	Name          string
	Width, Height int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("colorlut: the given 2D texture %q (%dx%d) cannot be used as a 3D LUT (want %dx%d)",
		e.Name, e.Width, e.Height, Side, Dim)
}

// MissingInputError reports a conversion requested without any source LUT.
// It usually means the effect is misconfigured.
type MissingInputError struct{}

func (e *MissingInputError) Error() string {
	return "colorlut: couldn't color correct with 2D LUT texture, no source given"
}

// ResourceUnavailableError reports that the shader material could not be
// created. The Colorizer disables itself for the rest of the session.
type ResourceUnavailableError struct {
	Backend string
	Err     error
}

func (e *ResourceUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("colorlut: %s backend: material unavailable", e.Backend)
	}
	return fmt.Sprintf("colorlut: %s backend: material unavailable: %v", e.Backend, e.Err)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return e.Err
}

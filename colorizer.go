package colorlut

import (
	"errors"
	"fmt"
)

// State is the lifecycle state of a Colorizer.
type State uint8

const (
	// StateNoResources means no material is available. Frames are copied
	// through unchanged.
	StateNoResources State = iota

	// StateNoTable means the material is ready but no packed table is held.
	// The next Render builds one.
	StateNoTable

	// StateReady means material and table are ready.
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNoTable:
		return "no-table"
	case StateReady:
		return "ready"
	default:
		return "no-resources"
	}
}

// Colorizer is the per-frame color grading effect. It owns the packed
// table and the shader material, and grades every frame handed to Render
// through the table.
//
// Failures never stop the frame: whenever the table or the material is not
// available the source frame is copied to the destination unchanged.
//
// A Colorizer is not safe for concurrent use; it is driven by the host's
// frame loop.
type Colorizer struct {
	backend    Backend
	material   Material
	disabled   bool
	err        error
	source     *Source
	colorSpace ColorSpace
	table      tableSlot
}

// NewColorizer creates a color grading effect.
//
// Example:
//
//	c := colorlut.NewColorizer(colorlut.WithSource(src))
//	defer c.Destroy()
//	if err := c.Render(frame, out); err != nil {
//		log.Fatal(err)
//	}
func NewColorizer(opts ...Option) *Colorizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	b := o.backend
	if b == nil {
		b = BestBackend()
	}
	return &Colorizer{
		backend:    b,
		source:     o.source,
		colorSpace: o.colorSpace,
	}
}

// Backend returns the backend the effect renders with, or nil.
func (c *Colorizer) Backend() Backend {
	return c.backend
}

// Render grades src into dst using the current color space.
func (c *Colorizer) Render(src, dst Frame) error {
	return c.RenderWithColorSpace(src, dst, c.colorSpace)
}

// RenderWithColorSpace grades src into dst using the shader variant for cs.
// It returns an error only when the frame cannot even be copied through.
func (c *Colorizer) RenderWithColorSpace(src, dst Frame, cs ColorSpace) error {
	if !c.checkResources() {
		return c.passThrough(src, dst)
	}

	t, ok := c.table.load()
	if !ok {
		var err error
		t, err = c.buildTable()
		if err != nil {
			// Convert already warned about the source.
			Logger().Debug("colorlut: color correction skipped", "error", err)
			return c.passThrough(src, dst)
		}
		c.table.replace(t)
		Logger().Debug("colorlut: packed table ready", "id", t.ID(), "based_on", t.BasedOn())
	}

	params := ParamsForSide(t.Side())
	if err := c.material.Blit(src, dst, t, params, cs); err != nil {
		Logger().Warn("colorlut: grading pass failed",
			"backend", c.backend.Name(),
			"colorspace", cs.String(),
			"error", err)
		return c.passThrough(src, dst)
	}
	return nil
}

// checkResources makes sure the material exists. A failed creation
// disables the effect for the rest of the session.
func (c *Colorizer) checkResources() bool {
	if c.disabled {
		return false
	}
	if c.material != nil {
		return true
	}
	if c.backend == nil {
		c.disable(&ResourceUnavailableError{Backend: "none", Err: ErrNoBackend})
		return false
	}

	m, err := c.backend.NewMaterial()
	if err == nil && m == nil {
		err = errors.New("backend returned no material")
	}
	if err != nil {
		var rerr *ResourceUnavailableError
		if !errors.As(err, &rerr) {
			rerr = &ResourceUnavailableError{Backend: c.backend.Name(), Err: err}
		}
		c.disable(rerr)
		return false
	}
	c.material = m
	return true
}

func (c *Colorizer) disable(err error) {
	c.disabled = true
	c.err = err
	Logger().Warn("colorlut: effect disabled", "error", err)
}

// buildTable packs the configured source, or the identity table when no
// source is set.
func (c *Colorizer) buildTable() (*Table, error) {
	if c.source == nil {
		return BuildIdentity(), nil
	}
	return Convert(c.source)
}

func (c *Colorizer) passThrough(src, dst Frame) error {
	if c.backend == nil {
		return ErrNoBackend
	}
	if err := c.backend.Copy(src, dst); err != nil {
		return fmt.Errorf("colorlut: pass-through: %w", err)
	}
	return nil
}

// Source returns the configured source LUT, or nil.
func (c *Colorizer) Source() *Source {
	return c.source
}

// SetSource changes the source LUT. Sources are identified by pointer: a
// different *Source regenerates the packed table on the next Render even
// when it carries the same name, so a reloaded asset takes effect.
func (c *Colorizer) SetSource(src *Source) {
	if src == c.source {
		return
	}
	c.source = src
	c.table.clear()
}

// ColorSpace returns the current host color space.
func (c *Colorizer) ColorSpace() ColorSpace {
	return c.colorSpace
}

// SetColorSpace updates the host color space used by Render.
func (c *Colorizer) SetColorSpace(cs ColorSpace) {
	c.colorSpace = cs
}

// Invalidate drops the packed table so the next Render rebuilds it.
func (c *Colorizer) Invalidate() {
	c.table.clear()
}

// Table returns the current packed table.
func (c *Colorizer) Table() (*Table, bool) {
	return c.table.load()
}

// Params returns the sampling parameters of the current packed table.
func (c *Colorizer) Params() (Params, bool) {
	t, ok := c.table.load()
	if !ok {
		return Params{}, false
	}
	return ParamsForSide(t.Side()), true
}

// State reports the lifecycle state.
func (c *Colorizer) State() State {
	if c.disabled || c.material == nil {
		return StateNoResources
	}
	if _, ok := c.table.load(); !ok {
		return StateNoTable
	}
	return StateReady
}

// Disabled reports whether the effect turned itself off because its
// material could not be created.
func (c *Colorizer) Disabled() bool {
	return c.disabled
}

// Err returns the error that disabled the effect, or nil.
func (c *Colorizer) Err() error {
	return c.err
}

// Disable releases the material. The next Render recreates it unless the
// effect was disabled permanently. Safe to call more than once.
func (c *Colorizer) Disable() {
	if c.material != nil {
		c.material.Release()
		c.material = nil
	}
}

// Destroy releases the material and the packed table. Safe to call more
// than once.
func (c *Colorizer) Destroy() {
	c.Disable()
	c.table.clear()
}

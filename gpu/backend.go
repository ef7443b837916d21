//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/colorlut"
	"github.com/gogpu/wgpu/hal"
)

// Name is the registry name of the GPU backend.
const Name = "gpu"

// Backend runs the grading pass on a HAL device. It implements
// colorlut.Backend for *Target frames.
type Backend struct {
	device hal.Device
	queue  hal.Queue
}

// NewBackend creates a backend on the given device and queue. No GPU
// objects are created until NewMaterial.
func NewBackend(device hal.Device, queue hal.Queue) *Backend {
	return &Backend{device: device, queue: queue}
}

// Register makes the GPU backend on device the preferred colorlut backend.
func Register(device hal.Device, queue hal.Queue) {
	colorlut.RegisterBackend(Name, func() colorlut.Backend {
		return NewBackend(device, queue)
	})
	colorlut.Logger().Info("gpu: backend registered")
}

// Name implements colorlut.Backend.
func (b *Backend) Name() string {
	return Name
}

// NewMaterial compiles the grading shader and builds both pipeline
// variants. Failures are reported as *colorlut.ResourceUnavailableError.
func (b *Backend) NewMaterial() (colorlut.Material, error) {
	if b.device == nil || b.queue == nil {
		return nil, &colorlut.ResourceUnavailableError{Backend: Name, Err: errNoDevice}
	}
	m, err := newMaterial(b.device, b.queue)
	if err != nil {
		return nil, &colorlut.ResourceUnavailableError{Backend: Name, Err: err}
	}
	colorlut.Logger().Info("gpu: material created")
	return m, nil
}

// Copy implements colorlut.Backend with a texture-to-texture copy.
func (b *Backend) Copy(src, dst colorlut.Frame) error {
	s, d, err := targets(src, dst)
	if err != nil {
		return err
	}
	if s == d {
		return nil
	}
	return submit(b.device, b.queue, "colorlut_copy", func(enc hal.CommandEncoder) {
		enc.CopyTextureToTexture(s.texture, d.texture, []hal.TextureCopy{{
			SrcBase: hal.ImageCopyTexture{Texture: s.texture},
			DstBase: hal.ImageCopyTexture{Texture: d.texture},
			Size:    hal.Extent3D{Width: uint32(s.width), Height: uint32(s.height), DepthOrArrayLayers: 1},
		}})
	})
}

// targets checks that src and dst are GPU targets of equal size.
func targets(src, dst colorlut.Frame) (*Target, *Target, error) {
	s, ok := src.(*Target)
	if !ok || s == nil {
		return nil, nil, fmt.Errorf("gpu backend: source %T: %w", src, colorlut.ErrUnsupportedFrame)
	}
	d, ok := dst.(*Target)
	if !ok || d == nil {
		return nil, nil, fmt.Errorf("gpu backend: destination %T: %w", dst, colorlut.ErrUnsupportedFrame)
	}
	if s.width != d.width || s.height != d.height {
		return nil, nil, fmt.Errorf("gpu backend: %dx%d -> %dx%d: %w",
			s.width, s.height, d.width, d.height, colorlut.ErrFrameMismatch)
	}
	return s, d, nil
}

// submit records commands, submits them and waits for the device to go
// idle, so resources used by the pass may be replaced right after.
func submit(device hal.Device, queue hal.Queue, label string, record func(hal.CommandEncoder)) error {
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(label); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	record(encoder)

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	if _, err := queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for GPU: %w", err)
	}
	return nil
}

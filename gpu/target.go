//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/colorlut"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// targetFormat is the texel format of frames and of the packed table.
const targetFormat = gputypes.TextureFormatRGBA8Unorm

// targetUsage lets a target be sampled, rendered into and copied.
const targetUsage = gputypes.TextureUsageTextureBinding |
	gputypes.TextureUsageRenderAttachment |
	gputypes.TextureUsageCopySrc |
	gputypes.TextureUsageCopyDst

// ErrInvalidTargetSize is returned for targets with a non-positive size.
var ErrInvalidTargetSize = errors.New("gpu: invalid target size")

// Target is a GPU frame. It implements colorlut.Frame.
type Target struct {
	device  hal.Device // nil for wrapped targets
	texture hal.Texture
	view    hal.TextureView
	width   int
	height  int
}

// NewTarget allocates an RGBA8 texture usable as source or destination of
// the grading pass.
func NewTarget(device hal.Device, width, height int) (*Target, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTargetSize, width, height)
	}
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "colorlut_target",
		Size:          hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage:         targetUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("create target texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "colorlut_target_view",
		Format:        targetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, fmt.Errorf("create target view: %w", err)
	}
	return &Target{device: device, texture: tex, view: view, width: width, height: height}, nil
}

// WrapTarget wraps a texture owned by the host, typically the frame
// buffer of a render graph. The texture must be RGBA8 and carry the
// usages the pass needs. Destroy does not free wrapped textures.
func WrapTarget(texture hal.Texture, view hal.TextureView, width, height int) *Target {
	return &Target{texture: texture, view: view, width: width, height: height}
}

// Width implements colorlut.Frame.
func (t *Target) Width() int { return t.width }

// Height implements colorlut.Frame.
func (t *Target) Height() int { return t.height }

// Texture returns the underlying texture.
func (t *Target) Texture() hal.Texture { return t.texture }

// View returns the texture view the pass renders into.
func (t *Target) View() hal.TextureView { return t.view }

// Upload writes the pixels of a CPU frame of the same size into the target.
func (t *Target) Upload(queue hal.Queue, frame colorlut.CPUFrame) error {
	if frame.Width() != t.width || frame.Height() != t.height {
		return fmt.Errorf("gpu: upload %dx%d into %dx%d: %w",
			frame.Width(), frame.Height(), t.width, t.height, colorlut.ErrFrameMismatch)
	}
	return writeTexture(queue, t.texture, frame.Pixels(), t.width, t.height, frame.Stride())
}

// Destroy frees the texture of a target created by NewTarget. It is safe
// to call more than once.
func (t *Target) Destroy() {
	if t.device == nil {
		return
	}
	if t.view != nil {
		t.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		t.device.DestroyTexture(t.texture)
		t.texture = nil
	}
}

// writeTexture uploads tightly or loosely packed RGBA8 rows.
func writeTexture(queue hal.Queue, tex hal.Texture, data []byte, width, height, stride int) error {
	err := queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, Aspect: gputypes.TextureAspectAll},
		data,
		&hal.ImageDataLayout{BytesPerRow: uint32(stride), RowsPerImage: uint32(height)},
		&hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("write texture: %w", err)
	}
	return nil
}

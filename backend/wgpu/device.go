// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vroverlay/internal/logging"
	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/vr"
)

// RowPitchAlignment is the row alignment of staging buffers.
const RowPitchAlignment = 256

var (
	// ErrNoHAL is returned when a provider does not expose HAL types.
	ErrNoHAL = errors.New("wgpu: provider does not expose HAL device and queue")

	// ErrForeignTexture is returned when a texture from another device is
	// passed to Map.
	ErrForeignTexture = errors.New("wgpu: texture not created by this device")

	// ErrReleased is returned when mapping a released texture.
	ErrReleased = errors.New("wgpu: texture released")
)

// Device is a texture.Device backed by a HAL device and queue.
type Device struct {
	create  func(desc *hal.TextureDescriptor) (hal.Texture, error)
	destroy func(tex hal.Texture)
	write   func(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error

	texType vr.TextureType
}

// New wraps device and queue. texType tags native handles for the
// compositor and must match the HAL backend (for example Vulkan).
func New(device hal.Device, queue hal.Queue, texType vr.TextureType) *Device {
	return &Device{
		create: func(desc *hal.TextureDescriptor) (hal.Texture, error) {
			return device.CreateTexture(desc)
		},
		destroy: func(tex hal.Texture) {
			device.DestroyTexture(tex)
		},
		write: func(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
			return queue.WriteTexture(dst, data, layout, size)
		},
		texType: texType,
	}
}

// FromProvider borrows the HAL device and queue of a host application.
// The provider must implement HalDevice() any and HalQueue() any returning
// hal.Device and hal.Queue.
func FromProvider(provider gpucontext.DeviceProvider, texType vr.TextureType) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHAL)
	}
	logging.Logger().Debug("wgpu: using provider device", "surfaceFormat", provider.SurfaceFormat())
	return New(device, queue, texType), nil
}

// CreateTexture implements texture.Device.
func (d *Device) CreateTexture(desc *texture.Descriptor) (texture.Texture, error) {
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("wgpu: invalid texture size %dx%d", desc.Size.Width, desc.Size.Height)
	}

	tex, err := d.create(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              desc.Size.Width,
			Height:             desc.Size.Height,
			DepthOrArrayLayers: max(desc.Size.DepthOrArrayLayers, 1),
		},
		MipLevelCount: max(desc.MipLevelCount, 1),
		SampleCount:   max(desc.SampleCount, 1),
		Dimension:     desc.Dimension,
		Format:        desc.Format,
		Usage:         desc.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture: %w", err)
	}

	pitch := alignUp(int(desc.Size.Width)*4, RowPitchAlignment)
	return &Texture{
		dev:     d,
		hal:     tex,
		width:   desc.Size.Width,
		height:  desc.Size.Height,
		pitch:   pitch,
		staging: make([]byte, pitch*int(desc.Size.Height)),
	}, nil
}

// Map implements texture.Device. The staging buffer keeps its previous
// contents; callers overwrite every row.
func (d *Device) Map(t texture.Texture) (texture.Mapping, error) {
	tex, err := d.own(t)
	if err != nil {
		return texture.Mapping{}, err
	}
	return texture.Mapping{Data: tex.staging, RowPitch: tex.pitch}, nil
}

// Unmap implements texture.Device by uploading the staging buffer.
func (d *Device) Unmap(t texture.Texture) error {
	tex, err := d.own(t)
	if err != nil {
		return err
	}
	err = d.write(
		&hal.ImageCopyTexture{
			Texture:  tex.hal,
			MipLevel: 0,
		},
		tex.staging,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(tex.pitch),
			RowsPerImage: tex.height,
		},
		&hal.Extent3D{Width: tex.width, Height: tex.height, DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("wgpu: write texture: %w", err)
	}
	return nil
}

// TextureType implements texture.Device.
func (d *Device) TextureType() vr.TextureType {
	return d.texType
}

func (d *Device) own(t texture.Texture) (*Texture, error) {
	tex, ok := t.(*Texture)
	if !ok || tex.dev != d {
		return nil, ErrForeignTexture
	}
	if tex.hal == nil {
		return nil, ErrReleased
	}
	return tex, nil
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// Texture is a HAL texture with its CPU staging buffer.
type Texture struct {
	dev     *Device
	hal     hal.Texture
	width   uint32
	height  uint32
	pitch   int
	staging []byte
}

// Width implements texture.Texture.
func (t *Texture) Width() uint32 { return t.width }

// Height implements texture.Texture.
func (t *Texture) Height() uint32 { return t.height }

// NativeHandle implements texture.Texture.
func (t *Texture) NativeHandle() uintptr {
	if t.hal == nil {
		return 0
	}
	return t.hal.NativeHandle()
}

// HAL returns the underlying HAL texture, or nil after Release.
func (t *Texture) HAL() hal.Texture { return t.hal }

// Release implements texture.Texture.
func (t *Texture) Release() {
	if t.hal == nil {
		return
	}
	t.dev.destroy(t.hal)
	t.hal = nil
	t.staging = nil
}

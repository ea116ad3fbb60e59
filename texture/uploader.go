// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package texture

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/gogpu/vroverlay/internal/logging"
	"github.com/gogpu/vroverlay/vr"
)

// Upload errors.
var (
	// ErrBufferSizeMismatch is returned when the pixel buffer length is not
	// width*height*4.
	ErrBufferSizeMismatch = errors.New("vroverlay: buffer size mismatch")

	// ErrDimensionOverflow is returned when width or height is negative,
	// does not fit in 32 bits, or width*height*4 overflows.
	ErrDimensionOverflow = errors.New("vroverlay: dimension overflow")

	// ErrGPUResource is returned when a texture cannot be allocated, mapped
	// or written.
	ErrGPUResource = errors.New("vroverlay: GPU resource error")

	// ErrCompositorRejectedTexture is returned when the compositor refuses
	// the imported texture.
	ErrCompositorRejectedTexture = errors.New("vroverlay: compositor rejected texture")
)

// ExpectedSize returns width*height*4, the byte length of a tight 4-byte
// per pixel buffer, or ErrDimensionOverflow.
func ExpectedSize(width, height int) (int, error) {
	if width < 0 || height < 0 || uint64(width) > math.MaxUint32 || uint64(height) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, width, height)
	}
	hi, lo := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 || lo > math.MaxInt/bytesPerPixel {
		return 0, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, width, height)
	}
	return int(lo) * bytesPerPixel, nil
}

// Uploader owns one writable device texture sized to the last uploaded
// frame and submits it to the compositor.
//
// All overlays updated through one Uploader share its texture: uploading
// to a second overlay overwrites what the first one shows.
type Uploader struct {
	device Device
	submit Submitter

	tex    Texture
	width  uint32
	height uint32

	allocations int
}

// NewUploader creates an Uploader with an empty cache.
func NewUploader(device Device, submit Submitter) *Uploader {
	return &Uploader{device: device, submit: submit}
}

// Update converts pixels (BGRA, width*height*4 bytes) into the cached
// texture and submits it to the compositor for overlay h.
//
// Preconditions are checked before any GPU call and leave the cache
// untouched. A zero width or height clears the cache and returns nil.
// An allocation failure returns ErrGPUResource and leaves the cache empty.
// A mapping failure returns ErrGPUResource with the texture still cached.
// A rejected import returns ErrCompositorRejectedTexture and also keeps the
// texture cached.
func (u *Uploader) Update(h vr.OverlayHandle, pixels []byte, width, height int) error {
	size, err := ExpectedSize(width, height)
	if err != nil {
		return err
	}
	if len(pixels) != size {
		return fmt.Errorf("%w: expected %d bytes (%dx%dx4), got %d bytes",
			ErrBufferSizeMismatch, size, width, height, len(pixels))
	}
	if width == 0 || height == 0 {
		u.Release()
		return nil
	}

	w, hgt := uint32(width), uint32(height)
	if err := u.ensure(w, hgt); err != nil {
		return err
	}

	if err := u.write(pixels, width, height); err != nil {
		return err
	}

	native := &vr.Texture{
		Handle:     u.tex.NativeHandle(),
		Type:       u.device.TextureType(),
		ColorSpace: vr.ColorSpaceAuto,
	}
	if err := u.submit.SetTexture(h, native); err != nil {
		return fmt.Errorf("%w: %w", ErrCompositorRejectedTexture, vr.Wrap("SetOverlayTexture", err))
	}
	return nil
}

// ensure makes the cached texture match width x height.
func (u *Uploader) ensure(width, height uint32) error {
	if u.tex != nil && u.width == width && u.height == height {
		return nil
	}
	u.Release()

	desc := UploadDescriptor(width, height)
	tex, err := u.device.CreateTexture(&desc)
	if err != nil {
		return fmt.Errorf("%w: create %dx%d texture: %w", ErrGPUResource, width, height, err)
	}
	if tex == nil {
		return fmt.Errorf("%w: create %dx%d texture: device returned nil", ErrGPUResource, width, height)
	}

	u.tex = tex
	u.width = width
	u.height = height
	u.allocations++
	logging.Logger().Debug("vroverlay: upload texture allocated", "width", width, "height", height)
	return nil
}

// write maps the cached texture and copies pixels into it. The texture
// stays cached on failure.
func (u *Uploader) write(pixels []byte, width, height int) error {
	m, err := u.device.Map(u.tex)
	if err != nil {
		return fmt.Errorf("%w: map texture: %w", ErrGPUResource, err)
	}

	rowBytes := width * bytesPerPixel
	if m.RowPitch < rowBytes || len(m.Data) < m.RowPitch*(height-1)+rowBytes {
		_ = u.device.Unmap(u.tex)
		return fmt.Errorf("%w: mapping too small (pitch %d, %d bytes) for %dx%d",
			ErrGPUResource, m.RowPitch, len(m.Data), width, height)
	}

	SwapRedBlue(m.Data, m.RowPitch, pixels, rowBytes, width, height)
	if err := u.device.Unmap(u.tex); err != nil {
		return fmt.Errorf("%w: unmap texture: %w", ErrGPUResource, err)
	}
	return nil
}

// Release frees the cached texture, if any, and empties the cache.
func (u *Uploader) Release() {
	if u.tex != nil {
		u.tex.Release()
	}
	u.tex = nil
	u.width = 0
	u.height = 0
}

// Dims returns the cached texture size, or zeros when the cache is empty.
func (u *Uploader) Dims() (width, height uint32) {
	return u.width, u.height
}

// Texture returns the cached texture, or nil.
func (u *Uploader) Texture() Texture {
	return u.tex
}

// Allocations returns how many textures this Uploader has created.
func (u *Uploader) Allocations() int {
	return u.allocations
}

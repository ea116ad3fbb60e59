// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"fmt"

	"github.com/gogpu/vroverlay/internal/resolve"
	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/vr"
)

// SetTextureFromFile makes the runtime load the overlay's content from an
// image file. The runtime decodes the file; path should be absolute.
func (s *Session) SetTextureFromFile(h Handle, path string) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	if err := resolve.CheckString("texture path", path); err != nil {
		return err
	}
	return vr.Wrap("SetOverlayFromFile", s.overlay.SetFromFile(nh, path))
}

// SetTextureFromRaw hands a width*height*4 byte buffer to the runtime,
// which copies it. Bytes are passed through unchanged.
//
// The raw path is slow for large or frequently changing content; prefer
// SetTextureFromGPU for per-frame updates.
func (s *Session) SetTextureFromRaw(h Handle, pixels []byte, width, height int) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	size, err := texture.ExpectedSize(width, height)
	if err != nil {
		return err
	}
	if len(pixels) != size {
		return fmt.Errorf("%w: expected %d bytes (%dx%dx4), got %d bytes",
			ErrBufferSizeMismatch, size, width, height, len(pixels))
	}
	return vr.Wrap("SetOverlayRaw",
		s.overlay.SetRaw(nh, pixels, uint32(width), uint32(height), 4))
}

// SetTextureFromGPU uploads a width*height*4 BGRA buffer into the session's
// GPU texture as RGBA and submits it to the compositor for overlay h.
//
// The session owns a single texture shared by all overlays: uploading to
// one overlay replaces the content the compositor reads for any other
// overlay previously given the texture. The texture is reused while the
// frame size is unchanged. A zero width or height releases it.
//
// Errors: ErrGPUUnavailable without a device, ErrBufferSizeMismatch or
// ErrDimensionOverflow for inconsistent input (no GPU work is done),
// ErrGPUResource when allocation or mapping fails and
// ErrCompositorRejectedTexture when the compositor refuses the texture.
// Every failure leaves the session ready for the next frame.
func (s *Session) SetTextureFromGPU(h Handle, pixels []byte, width, height int) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	if s.uploader == nil {
		return ErrGPUUnavailable
	}
	return s.uploader.Update(nh, pixels, width, height)
}

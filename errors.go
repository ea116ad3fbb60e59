// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"errors"
	"fmt"

	"github.com/gogpu/vroverlay/internal/lifecycle"
	"github.com/gogpu/vroverlay/internal/resolve"
	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/tracking"
	"github.com/gogpu/vroverlay/vr"
)

// Errors returned by Session operations. Use errors.Is to test for them;
// native status codes are carried by *NativeError.
var (
	// ErrDeviceNotFound is returned by New when no headset is present.
	ErrDeviceNotFound = lifecycle.ErrDeviceNotFound

	// ErrRuntimeInitFailed is returned by New when the runtime refuses to
	// initialize.
	ErrRuntimeInitFailed = lifecycle.ErrRuntimeInitFailed

	// ErrInterfaceUnavailable is returned when a runtime capability is
	// missing: fatal to New for the overlay capability, reported by the
	// affected methods for the system and input capabilities.
	ErrInterfaceUnavailable = resolve.ErrInterfaceUnavailable

	// ErrInvalidConfiguration is returned for version identifiers, keys,
	// names or paths containing a NUL byte, and for invalid action setup.
	ErrInvalidConfiguration = resolve.ErrInvalidConfiguration

	// ErrInvalidDeviceIndex is returned for device indices outside
	// [0, vr.MaxTrackedDeviceCount).
	ErrInvalidDeviceIndex = tracking.ErrInvalidDeviceIndex

	// ErrInvalidOverlayHandle is returned for negative handles.
	ErrInvalidOverlayHandle = errors.New("vroverlay: invalid overlay handle")

	// ErrBufferSizeMismatch is returned when a pixel buffer length is not
	// width*height*4.
	ErrBufferSizeMismatch = texture.ErrBufferSizeMismatch

	// ErrDimensionOverflow is returned when width or height is negative,
	// does not fit in 32 bits, or the buffer size overflows.
	ErrDimensionOverflow = texture.ErrDimensionOverflow

	// ErrGPUResource is returned when the shared texture cannot be
	// allocated, mapped or written.
	ErrGPUResource = texture.ErrGPUResource

	// ErrCompositorRejectedTexture is returned when the compositor refuses
	// a submitted texture.
	ErrCompositorRejectedTexture = texture.ErrCompositorRejectedTexture

	// ErrGPUUnavailable is returned by SetTextureFromGPU when the session
	// has no GPU device. It matches ErrGPUResource.
	ErrGPUUnavailable = fmt.Errorf("%w: no GPU device configured", ErrGPUResource)

	// ErrClosed is returned by every method of a closed Session.
	ErrClosed = errors.New("vroverlay: session closed")
)

// NativeError reports a runtime call that returned a failure status.
type NativeError = vr.NativeError

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"fmt"
	"math"

	"github.com/gogpu/vroverlay/internal/resolve"
	"github.com/gogpu/vroverlay/vr"
)

// Handle identifies an overlay. Valid handles are non-negative.
type Handle int64

// Matrix4 is a row-major 4x4 transform.
type Matrix4 = vr.Matrix4

// TransformType reports how an overlay is positioned.
type TransformType = vr.TransformType

// native validates h for a runtime call.
func (s *Session) native(h Handle) (vr.OverlayHandle, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	if h < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOverlayHandle, h)
	}
	return vr.OverlayHandle(h), nil
}

// CreateOverlay creates a hidden overlay. key must be unique within the
// runtime; name is shown to the user.
func (s *Session) CreateOverlay(key, name string) (Handle, error) {
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	if err := resolve.CheckString("overlay key", key); err != nil {
		return 0, err
	}
	if err := resolve.CheckString("overlay name", name); err != nil {
		return 0, err
	}

	h, err := s.overlay.CreateOverlay(key, name)
	if err != nil {
		return 0, vr.Wrap("CreateOverlay", err)
	}
	if uint64(h) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: runtime returned %d", ErrInvalidOverlayHandle, uint64(h))
	}
	return Handle(h), nil
}

// DestroyOverlay removes an overlay from the runtime.
func (s *Session) DestroyOverlay(h Handle) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	return vr.Wrap("DestroyOverlay", s.overlay.DestroyOverlay(nh))
}

// Show makes an overlay visible.
func (s *Session) Show(h Handle) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	return vr.Wrap("ShowOverlay", s.overlay.ShowOverlay(nh))
}

// Hide makes an overlay invisible.
func (s *Session) Hide(h Handle) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	return vr.Wrap("HideOverlay", s.overlay.HideOverlay(nh))
}

// SetWidth sets the overlay's width in meters. Its height follows the
// aspect ratio of its content.
func (s *Session) SetWidth(h Handle, meters float64) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	return vr.Wrap("SetOverlayWidthInMeters", s.overlay.SetWidthInMeters(nh, float32(meters)))
}

// SetTextureBounds selects the part of the content shown, in UV
// coordinates. Swapping min and max flips an axis.
func (s *Session) SetTextureBounds(h Handle, uMin, vMin, uMax, vMax float64) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	bounds := vr.TextureBounds{
		UMin: float32(uMin),
		VMin: float32(vMin),
		UMax: float32(uMax),
		VMax: float32(vMax),
	}
	return vr.Wrap("SetOverlayTextureBounds", s.overlay.SetTextureBounds(nh, bounds))
}

// SetTransformRelativeToHMD attaches the overlay to the headset, facing
// the user, distance meters straight ahead.
func (s *Session) SetTransformRelativeToHMD(h Handle, distance float64) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	m := vr.Identity34()
	m[2][3] = -float32(distance)
	return vr.Wrap("SetOverlayTransformTrackedDeviceRelative",
		s.overlay.SetTransformDeviceRelative(nh, vr.HMDDeviceIndex, m))
}

// AbsoluteTransform returns the overlay's transform in the tracking
// universe. It fails for overlays not positioned absolutely.
func (s *Session) AbsoluteTransform(h Handle) (Matrix4, error) {
	nh, err := s.native(h)
	if err != nil {
		return Matrix4{}, err
	}
	_, m, err := s.overlay.TransformAbsolute(nh)
	if err != nil {
		return Matrix4{}, vr.Wrap("GetOverlayTransformAbsolute", err)
	}
	return m.Matrix4(), nil
}

// SetAbsoluteTransform positions the overlay in the standing tracking
// universe. The bottom row of m is ignored.
func (s *Session) SetAbsoluteTransform(h Handle, m Matrix4) error {
	nh, err := s.native(h)
	if err != nil {
		return err
	}
	return vr.Wrap("SetOverlayTransformAbsolute",
		s.overlay.SetTransformAbsolute(nh, vr.TrackingUniverseStanding, m.Matrix34()))
}

// TransformType returns how the overlay is currently positioned.
func (s *Session) TransformType(h Handle) (TransformType, error) {
	nh, err := s.native(h)
	if err != nil {
		return vr.TransformInvalid, err
	}
	t, err := s.overlay.TransformType(nh)
	if err != nil {
		return vr.TransformInvalid, vr.Wrap("GetOverlayTransformType", err)
	}
	return t, nil
}

// RelativeTransform returns the device an overlay is attached to and its
// transform relative to that device.
func (s *Session) RelativeTransform(h Handle) (device uint32, m Matrix4, err error) {
	nh, err := s.native(h)
	if err != nil {
		return 0, Matrix4{}, err
	}
	device, rel, err := s.overlay.TransformDeviceRelative(nh)
	if err != nil {
		return 0, Matrix4{}, vr.Wrap("GetOverlayTransformTrackedDeviceRelative", err)
	}
	return device, rel.Matrix4(), nil
}

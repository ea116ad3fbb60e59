// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tracking reads tracked device poses and legacy controller state.
package tracking

import (
	"errors"
	"fmt"

	"github.com/gogpu/vroverlay/internal/logging"
	"github.com/gogpu/vroverlay/vr"
)

// ErrInvalidDeviceIndex is returned for device indices outside
// [0, vr.MaxTrackedDeviceCount).
var ErrInvalidDeviceIndex = errors.New("vroverlay: invalid device index")

// ControllerState is a snapshot of one controller's buttons and axes.
// Axis values are in [-1, 1] (trigger in [0, 1]).
type ControllerState struct {
	TriggerPressed bool
	TriggerValue   float64

	GripPressed bool

	TouchpadPressed bool
	TouchpadX       float64
	TouchpadY       float64

	JoystickPressed bool
	JoystickX       float64
	JoystickY       float64
}

// Reader queries a system capability. It keeps a pose buffer between calls
// and is not safe for concurrent use.
type Reader struct {
	sys   vr.SystemAPI
	poses []vr.TrackedDevicePose
}

// NewReader creates a Reader over sys.
func NewReader(sys vr.SystemAPI) *Reader {
	return &Reader{sys: sys}
}

// CheckIndex returns ErrInvalidDeviceIndex for out-of-range indices.
func CheckIndex(index uint32) error {
	if index >= vr.MaxTrackedDeviceCount {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidDeviceIndex, index, vr.MaxTrackedDeviceCount-1)
	}
	return nil
}

// ControllerIDs returns the ascending slot indices classified as
// controllers.
func (r *Reader) ControllerIDs() []uint32 {
	var ids []uint32
	for i := range uint32(vr.MaxTrackedDeviceCount) {
		if r.sys.TrackedDeviceClass(i) == vr.DeviceClassController {
			ids = append(ids, i)
		}
	}
	return ids
}

// ControllerPose returns the standing-universe pose of device index as a
// row-major 4x4 matrix. ok is false when the device has no valid,
// connected pose.
func (r *Reader) ControllerPose(index uint32) (m vr.Matrix4, ok bool, err error) {
	if err := CheckIndex(index); err != nil {
		return vr.Matrix4{}, false, err
	}
	if r.poses == nil {
		r.poses = make([]vr.TrackedDevicePose, vr.MaxTrackedDeviceCount)
	}

	r.sys.DeviceToAbsoluteTrackingPose(vr.TrackingUniverseStanding, 0, r.poses)
	pose := r.poses[index]
	if !pose.PoseIsValid || !pose.DeviceIsConnected {
		logging.Logger().Debug("vroverlay: no pose", "device", index,
			"valid", pose.PoseIsValid, "connected", pose.DeviceIsConnected)
		return vr.Matrix4{}, false, nil
	}
	return pose.DeviceToAbsoluteTracking.Matrix4(), true, nil
}

// LegacyState reads the button/axis state of device index through the
// legacy polling call. A device with no state yields the zero snapshot.
func (r *Reader) LegacyState(index uint32) (ControllerState, error) {
	if err := CheckIndex(index); err != nil {
		return ControllerState{}, err
	}

	var raw vr.ControllerState
	if !r.sys.ControllerState(index, &raw) {
		return ControllerState{}, nil
	}
	return FromRaw(&raw), nil
}

// FromRaw decodes a raw legacy controller state.
func FromRaw(raw *vr.ControllerState) ControllerState {
	pressed := func(bit uint64) bool { return raw.ButtonPressed&bit != 0 }
	touchpad := raw.Axis[vr.AxisTouchpad]
	joystick := raw.Axis[vr.AxisJoystick]
	return ControllerState{
		TriggerPressed:  pressed(vr.ButtonTrigger),
		TriggerValue:    float64(raw.Axis[vr.AxisTrigger].X),
		GripPressed:     pressed(vr.ButtonGrip),
		TouchpadPressed: pressed(vr.ButtonTouchpad),
		TouchpadX:       float64(touchpad.X),
		TouchpadY:       float64(touchpad.Y),
		JoystickPressed: pressed(vr.ButtonJoystick),
		JoystickX:       float64(joystick.X),
		JoystickY:       float64(joystick.Y),
	}
}

// Role returns the hand role of device index, or vr.ControllerRoleInvalid
// when the system capability cannot report roles.
func (r *Reader) Role(index uint32) vr.ControllerRole {
	rr, ok := r.sys.(vr.RoleReporter)
	if !ok || index >= vr.MaxTrackedDeviceCount {
		return vr.ControllerRoleInvalid
	}
	return rr.ControllerRoleForTrackedDeviceIndex(index)
}

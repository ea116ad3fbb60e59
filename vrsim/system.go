// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrsim

import (
	"sync"

	"github.com/gogpu/vroverlay/vr"
)

// PoseQuery records one DeviceToAbsoluteTrackingPose call.
type PoseQuery struct {
	Origin           vr.TrackingUniverseOrigin
	PredictedSeconds float32
	Count            int
}

// System is a simulated vr.SystemAPI and vr.RoleReporter with
// vr.MaxTrackedDeviceCount device slots.
type System struct {
	mu sync.Mutex

	classes [vr.MaxTrackedDeviceCount]vr.DeviceClass
	poses   [vr.MaxTrackedDeviceCount]vr.TrackedDevicePose
	roles   [vr.MaxTrackedDeviceCount]vr.ControllerRole
	states  map[uint32]vr.ControllerState

	poseQueries []PoseQuery
}

// NewSystem creates a System with a connected headset at vr.HMDDeviceIndex
// posed at the origin.
func NewSystem() *System {
	s := &System{states: make(map[uint32]vr.ControllerState)}
	s.classes[vr.HMDDeviceIndex] = vr.DeviceClassHMD
	s.poses[vr.HMDDeviceIndex] = ValidPose(vr.Identity34())
	return s
}

// ValidPose returns a connected, valid pose at m.
func ValidPose(m vr.Matrix34) vr.TrackedDevicePose {
	return vr.TrackedDevicePose{
		DeviceToAbsoluteTracking: m,
		TrackingResult:           200,
		PoseIsValid:              true,
		DeviceIsConnected:        true,
	}
}

// AddController puts a controller with the given role and a valid pose at
// m into slot index.
func (s *System) AddController(index uint32, role vr.ControllerRole, m vr.Matrix34) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[index] = vr.DeviceClassController
	s.roles[index] = role
	s.poses[index] = ValidPose(m)
}

// SetDeviceClass sets the class of slot index.
func (s *System) SetDeviceClass(index uint32, class vr.DeviceClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes[index] = class
}

// SetPose sets the pose reported for slot index.
func (s *System) SetPose(index uint32, pose vr.TrackedDevicePose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poses[index] = pose
}

// SetRole sets the hand role of slot index.
func (s *System) SetRole(index uint32, role vr.ControllerRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[index] = role
}

// SetControllerState sets the legacy state of slot index.
func (s *System) SetControllerState(index uint32, state vr.ControllerState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[index] = state
}

// ClearControllerState makes ControllerState report failure for index.
func (s *System) ClearControllerState(index uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, index)
}

// PoseQueries returns the recorded pose queries.
func (s *System) PoseQueries() []PoseQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]PoseQuery(nil), s.poseQueries...)
}

// TrackedDeviceClass implements vr.SystemAPI.
func (s *System) TrackedDeviceClass(index uint32) vr.DeviceClass {
	if index >= vr.MaxTrackedDeviceCount {
		return vr.DeviceClassInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.classes[index]
}

// DeviceToAbsoluteTrackingPose implements vr.SystemAPI.
func (s *System) DeviceToAbsoluteTrackingPose(origin vr.TrackingUniverseOrigin, predictedSeconds float32, poses []vr.TrackedDevicePose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poseQueries = append(s.poseQueries, PoseQuery{
		Origin:           origin,
		PredictedSeconds: predictedSeconds,
		Count:            len(poses),
	})
	copy(poses, s.poses[:])
}

// ControllerState implements vr.SystemAPI.
func (s *System) ControllerState(index uint32, state *vr.ControllerState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[index]
	if !ok {
		return false
	}
	*state = st
	return true
}

// ControllerRoleForTrackedDeviceIndex implements vr.RoleReporter.
func (s *System) ControllerRoleForTrackedDeviceIndex(index uint32) vr.ControllerRole {
	if index >= vr.MaxTrackedDeviceCount {
		return vr.ControllerRoleInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roles[index]
}

// pose returns the pose of slot index.
func (s *System) pose(index uint32) (vr.TrackedDevicePose, bool) {
	if index >= vr.MaxTrackedDeviceCount {
		return vr.TrackedDevicePose{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poses[index], true
}

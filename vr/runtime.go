// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vr

// Token is the value returned by a successful runtime initialize.
type Token uintptr

// ApplicationType tells the runtime what kind of client is connecting.
type ApplicationType int32

// Application types understood by the runtime.
const (
	ApplicationOther    ApplicationType = 0
	ApplicationScene    ApplicationType = 1
	ApplicationOverlay  ApplicationType = 2
	ApplicationUtility  ApplicationType = 4
	ApplicationSettings ApplicationType = 9
)

// Runtime is the process-level entry point of the tracking/compositor runtime.
//
// Init and Shutdown are not reference counted by the runtime itself; callers
// must pair them. GenericInterface returns a capability (for example an
// OverlayAPI) for the given version identifier, or a non-nil error.
type Runtime interface {
	IsHMDPresent() bool
	Init(app ApplicationType) (Token, error)
	Shutdown()
	GenericInterface(version string) (any, error)
}

// OverlayAPI is the overlay capability of the runtime.
//
// Every method returning error returns nil on success or an OverlayError.
type OverlayAPI interface {
	CreateOverlay(key, name string) (OverlayHandle, error)
	DestroyOverlay(h OverlayHandle) error
	ShowOverlay(h OverlayHandle) error
	HideOverlay(h OverlayHandle) error
	SetWidthInMeters(h OverlayHandle, meters float32) error
	SetTextureBounds(h OverlayHandle, bounds TextureBounds) error
	SetTransformDeviceRelative(h OverlayHandle, device uint32, m Matrix34) error
	SetTransformAbsolute(h OverlayHandle, origin TrackingUniverseOrigin, m Matrix34) error
	TransformAbsolute(h OverlayHandle) (TrackingUniverseOrigin, Matrix34, error)
	TransformDeviceRelative(h OverlayHandle) (uint32, Matrix34, error)
	TransformType(h OverlayHandle) (TransformType, error)
	ComputeIntersection(h OverlayHandle, params IntersectionParams) (IntersectionResults, bool)
	SetFromFile(h OverlayHandle, path string) error
	SetRaw(h OverlayHandle, pixels []byte, width, height, bytesPerPixel uint32) error
	SetTexture(h OverlayHandle, tex *Texture) error
}

// SystemAPI is the tracking/system capability of the runtime.
type SystemAPI interface {
	TrackedDeviceClass(index uint32) DeviceClass

	// DeviceToAbsoluteTrackingPose fills poses (one entry per device slot,
	// up to len(poses)) in the given tracking universe.
	DeviceToAbsoluteTrackingPose(origin TrackingUniverseOrigin, predictedSeconds float32, poses []TrackedDevicePose)

	// ControllerState reads the legacy button/axis state of one device.
	// It reports false when the device has no state to report.
	ControllerState(index uint32, state *ControllerState) bool
}

// RoleReporter is implemented by system capabilities that can tell which
// hand a controller is assigned to. It is optional.
type RoleReporter interface {
	ControllerRoleForTrackedDeviceIndex(index uint32) ControllerRole
}

// InputAPI is the action-based input capability of the runtime.
//
// Every method returning error returns nil on success or an InputError.
type InputAPI interface {
	SetActionManifestPath(path string) error
	ActionSetHandle(name string) (ActionSetHandle, error)
	ActionHandle(name string) (ActionHandle, error)
	InputSourceHandle(path string) (InputValueHandle, error)
	UpdateActionState(sets []ActiveActionSet) error
	DigitalActionData(action ActionHandle, restrictToDevice InputValueHandle) (DigitalActionData, error)
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vr

// MaxTrackedDeviceCount is the fixed number of tracked device slots.
const MaxTrackedDeviceCount = 64

// HMDDeviceIndex is the slot of the head-mounted display.
const HMDDeviceIndex uint32 = 0

// OverlayHandle identifies an overlay owned by the runtime.
type OverlayHandle uint64

// InvalidOverlayHandle is never returned for a live overlay.
const InvalidOverlayHandle OverlayHandle = 0

// TrackingUniverseOrigin selects the space poses are reported in.
type TrackingUniverseOrigin int32

// Tracking universes.
const (
	TrackingUniverseSeated             TrackingUniverseOrigin = 0
	TrackingUniverseStanding           TrackingUniverseOrigin = 1
	TrackingUniverseRawAndUncalibrated TrackingUniverseOrigin = 2
)

// DeviceClass is the kind of hardware occupying a device slot.
type DeviceClass int32

// Device classes.
const (
	DeviceClassInvalid         DeviceClass = 0
	DeviceClassHMD             DeviceClass = 1
	DeviceClassController      DeviceClass = 2
	DeviceClassGenericTracker  DeviceClass = 3
	DeviceClassTrackingRef     DeviceClass = 4
	DeviceClassDisplayRedirect DeviceClass = 5
)

// ControllerRole is the hand a controller is assigned to.
type ControllerRole int32

// Controller roles.
const (
	ControllerRoleInvalid   ControllerRole = 0
	ControllerRoleLeftHand  ControllerRole = 1
	ControllerRoleRightHand ControllerRole = 2
	ControllerRoleOptOut    ControllerRole = 3
	ControllerRoleTreadmill ControllerRole = 4
	ControllerRoleStylus    ControllerRole = 5
)

// String returns the role name.
func (r ControllerRole) String() string {
	switch r {
	case ControllerRoleLeftHand:
		return "left"
	case ControllerRoleRightHand:
		return "right"
	case ControllerRoleOptOut:
		return "opt-out"
	case ControllerRoleTreadmill:
		return "treadmill"
	case ControllerRoleStylus:
		return "stylus"
	default:
		return "invalid"
	}
}

// TransformType reports how an overlay is currently positioned.
type TransformType int32

// Overlay transform types.
const (
	TransformInvalid               TransformType = -1
	TransformAbsolute              TransformType = 0
	TransformTrackedDeviceRelative TransformType = 1
	TransformSystemOverlay         TransformType = 2
	TransformTrackedComponent      TransformType = 3
	TransformCursor                TransformType = 4
	TransformDashboardTab          TransformType = 5
	TransformDashboardThumb        TransformType = 6
	TransformMountable             TransformType = 7
	TransformProjection            TransformType = 8
)

// TextureType tags the graphics API a native texture handle belongs to.
type TextureType int32

// Texture types.
const (
	TextureTypeInvalid   TextureType = -1
	TextureTypeDirectX   TextureType = 0
	TextureTypeOpenGL    TextureType = 1
	TextureTypeVulkan    TextureType = 2
	TextureTypeIOSurface TextureType = 3
	TextureTypeDirectX12 TextureType = 4
	TextureTypeDXGIShare TextureType = 5
	TextureTypeMetal     TextureType = 6
)

// String returns the graphics API name.
func (t TextureType) String() string {
	switch t {
	case TextureTypeDirectX:
		return "DirectX"
	case TextureTypeOpenGL:
		return "OpenGL"
	case TextureTypeVulkan:
		return "Vulkan"
	case TextureTypeIOSurface:
		return "IOSurface"
	case TextureTypeDirectX12:
		return "DirectX12"
	case TextureTypeDXGIShare:
		return "DXGISharedHandle"
	case TextureTypeMetal:
		return "Metal"
	default:
		return "Invalid"
	}
}

// ColorSpace of a submitted texture.
type ColorSpace int32

// Color spaces.
const (
	ColorSpaceAuto   ColorSpace = 0
	ColorSpaceGamma  ColorSpace = 1
	ColorSpaceLinear ColorSpace = 2
)

// Texture is a native GPU texture handed to the compositor.
type Texture struct {
	Handle     uintptr
	Type       TextureType
	ColorSpace ColorSpace
}

// TextureBounds selects the part of a texture shown on an overlay, in UV.
type TextureBounds struct {
	UMin, VMin float32
	UMax, VMax float32
}

// TrackedDevicePose is the pose of one device slot.
type TrackedDevicePose struct {
	DeviceToAbsoluteTracking Matrix34
	Velocity                 [3]float32
	AngularVelocity          [3]float32
	TrackingResult           int32
	PoseIsValid              bool
	DeviceIsConnected        bool
}

// ControllerAxis is one analog axis pair.
type ControllerAxis struct {
	X, Y float32
}

// ControllerAxisCount is the number of axis pairs in a ControllerState.
const ControllerAxisCount = 5

// ControllerState is the raw legacy controller state of one device.
type ControllerState struct {
	PacketNum     uint32
	ButtonPressed uint64
	ButtonTouched uint64
	Axis          [ControllerAxisCount]ControllerAxis
}

// Legacy button bits within ControllerState.ButtonPressed.
const (
	ButtonGrip     uint64 = 1 << 2
	ButtonTouchpad uint64 = 1 << 32
	ButtonTrigger  uint64 = 1 << 33
	ButtonJoystick uint64 = 1 << 34
)

// Legacy axis slots within ControllerState.Axis.
const (
	AxisTouchpad = 0
	AxisTrigger  = 1
	AxisJoystick = 2
)

// IntersectionParams describes a ray cast against an overlay.
type IntersectionParams struct {
	Source    [3]float32
	Direction [3]float32
	Origin    TrackingUniverseOrigin
}

// IntersectionResults is the hit reported by the runtime.
type IntersectionResults struct {
	Point    [3]float32
	Normal   [3]float32
	UV       [2]float32
	Distance float32
}

// Action system handles. Zero is the invalid value for each.
type (
	ActionSetHandle  uint64
	ActionHandle     uint64
	InputValueHandle uint64
)

// Invalid action system handles.
const (
	InvalidActionSetHandle  ActionSetHandle  = 0
	InvalidActionHandle     ActionHandle     = 0
	InvalidInputValueHandle InputValueHandle = 0
)

// ActiveActionSet selects an action set to refresh in UpdateActionState.
type ActiveActionSet struct {
	ActionSet          ActionSetHandle
	RestrictedToDevice InputValueHandle
	SecondaryActionSet ActionSetHandle
	Priority           int32
}

// DigitalActionData is the state of a boolean action.
type DigitalActionData struct {
	Active       bool
	ActiveOrigin InputValueHandle
	State        bool
	Changed      bool
	UpdateTime   float32
}

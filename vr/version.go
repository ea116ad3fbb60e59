// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vr

// Environment variables overriding the interface version identifiers.
const (
	OverlayVersionEnv = "OPENVR_IVR_OVERLAY_VERSION"
	SystemVersionEnv  = "OPENVR_IVR_SYSTEM_VERSION"
	InputVersionEnv   = "OPENVR_IVR_INPUT_VERSION"
)

// Default interface version identifiers.
const (
	DefaultOverlayVersion = "FnTable:IVROverlay_028"
	DefaultSystemVersion  = "FnTable:IVRSystem_023"
	DefaultInputVersion   = "FnTable:IVRInput_010"
)

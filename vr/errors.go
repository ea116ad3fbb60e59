// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vr

import "fmt"

// InitError is a runtime initialization or interface lookup status.
type InitError int32

// Initialization statuses used by this module. Other values are reported
// numerically.
const (
	InitErrorNone                  InitError = 0
	InitErrorUnknown               InitError = 1
	InitErrorInitInterfaceNotFound InitError = 105
	InitErrorInitHmdNotFound       InitError = 108
	InitErrorInitNotInitialized    InitError = 109
	InitErrorInitPathRegistry      InitError = 110
	InitErrorDriverNotFound        InitError = 200
	InitErrorIPCServerInitFailed   InitError = 300
)

func (e InitError) Error() string {
	switch e {
	case InitErrorNone:
		return "none"
	case InitErrorUnknown:
		return "unknown"
	case InitErrorInitInterfaceNotFound:
		return "interface not found"
	case InitErrorInitHmdNotFound:
		return "hmd not found"
	case InitErrorInitNotInitialized:
		return "not initialized"
	case InitErrorInitPathRegistry:
		return "path registry not found"
	case InitErrorDriverNotFound:
		return "driver not found"
	case InitErrorIPCServerInitFailed:
		return "ipc server init failed"
	default:
		return fmt.Sprintf("init error %d", int32(e))
	}
}

// OverlayError is an overlay operation status.
type OverlayError int32

// Overlay statuses.
const (
	OverlayErrorNone                 OverlayError = 0
	OverlayErrorUnknownOverlay       OverlayError = 10
	OverlayErrorInvalidHandle        OverlayError = 11
	OverlayErrorPermissionDenied     OverlayError = 12
	OverlayErrorOverlayLimitExceeded OverlayError = 13
	OverlayErrorWrongVisibilityType  OverlayError = 14
	OverlayErrorKeyTooLong           OverlayError = 15
	OverlayErrorNameTooLong          OverlayError = 16
	OverlayErrorKeyInUse             OverlayError = 17
	OverlayErrorWrongTransformType   OverlayError = 18
	OverlayErrorInvalidTrackedDevice OverlayError = 19
	OverlayErrorInvalidParameter     OverlayError = 20
	OverlayErrorRequestFailed        OverlayError = 23
	OverlayErrorInvalidTexture       OverlayError = 24
	OverlayErrorUnableToLoadFile     OverlayError = 25
	OverlayErrorTextureInUse         OverlayError = 31
	OverlayErrorInvalidTextureSize   OverlayError = 34
)

func (e OverlayError) Error() string {
	switch e {
	case OverlayErrorNone:
		return "none"
	case OverlayErrorUnknownOverlay:
		return "unknown overlay"
	case OverlayErrorInvalidHandle:
		return "invalid handle"
	case OverlayErrorPermissionDenied:
		return "permission denied"
	case OverlayErrorOverlayLimitExceeded:
		return "overlay limit exceeded"
	case OverlayErrorWrongVisibilityType:
		return "wrong visibility type"
	case OverlayErrorKeyTooLong:
		return "key too long"
	case OverlayErrorNameTooLong:
		return "name too long"
	case OverlayErrorKeyInUse:
		return "key in use"
	case OverlayErrorWrongTransformType:
		return "wrong transform type"
	case OverlayErrorInvalidTrackedDevice:
		return "invalid tracked device"
	case OverlayErrorInvalidParameter:
		return "invalid parameter"
	case OverlayErrorRequestFailed:
		return "request failed"
	case OverlayErrorInvalidTexture:
		return "invalid texture"
	case OverlayErrorUnableToLoadFile:
		return "unable to load file"
	case OverlayErrorTextureInUse:
		return "texture in use"
	case OverlayErrorInvalidTextureSize:
		return "invalid texture size"
	default:
		return fmt.Sprintf("overlay error %d", int32(e))
	}
}

// InputError is an action system status.
type InputError int32

// Input statuses.
const (
	InputErrorNone                     InputError = 0
	InputErrorNameNotFound             InputError = 1
	InputErrorWrongType                InputError = 2
	InputErrorInvalidHandle            InputError = 3
	InputErrorInvalidParam             InputError = 4
	InputErrorNoSteam                  InputError = 5
	InputErrorMaxCapacityReached       InputError = 6
	InputErrorIPCError                 InputError = 7
	InputErrorNoActiveActionSet        InputError = 8
	InputErrorInvalidDevice            InputError = 9
	InputErrorMismatchedActionManifest InputError = 14
	InputErrorMissingSkeletonData      InputError = 15
	InputErrorInvalidBoneIndex         InputError = 16
)

func (e InputError) Error() string {
	switch e {
	case InputErrorNone:
		return "none"
	case InputErrorNameNotFound:
		return "name not found"
	case InputErrorWrongType:
		return "wrong type"
	case InputErrorInvalidHandle:
		return "invalid handle"
	case InputErrorInvalidParam:
		return "invalid param"
	case InputErrorNoSteam:
		return "no steam"
	case InputErrorMaxCapacityReached:
		return "max capacity reached"
	case InputErrorIPCError:
		return "ipc error"
	case InputErrorNoActiveActionSet:
		return "no active action set"
	case InputErrorInvalidDevice:
		return "invalid device"
	case InputErrorMismatchedActionManifest:
		return "mismatched action manifest"
	case InputErrorMissingSkeletonData:
		return "missing skeleton data"
	case InputErrorInvalidBoneIndex:
		return "invalid bone index"
	default:
		return fmt.Sprintf("input error %d", int32(e))
	}
}

// NativeError reports a runtime call that returned a status other than
// success. Code is usually an InitError, OverlayError or InputError.
type NativeError struct {
	Op   string
	Code error
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("vr: %s failed: %v", e.Op, e.Code)
}

// Unwrap returns the native status code.
func (e *NativeError) Unwrap() error { return e.Code }

// Wrap returns a *NativeError for op, or nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &NativeError{Op: op, Code: err}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vr

import (
	"errors"
	"testing"
)

func TestMatrix34ToMatrix4(t *testing.T) {
	m := Matrix34{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	got := m.Matrix4()
	want := Matrix4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		0, 0, 0, 1,
	}
	if got != want {
		t.Errorf("Matrix4() = %v, want %v", got, want)
	}
	if back := got.Matrix34(); back != m {
		t.Errorf("Matrix34() = %v, want %v", back, m)
	}
}

func TestIdentity(t *testing.T) {
	if got := Identity34().Matrix4(); got != Identity4() {
		t.Errorf("Identity34().Matrix4() = %v, want identity", got)
	}
}

func TestTranslationAndForward(t *testing.T) {
	m := Identity4()
	m[3], m[7], m[11] = 0.5, 1.5, -2

	if got := m.Translation(); got != [3]float64{0.5, 1.5, -2} {
		t.Errorf("Translation() = %v", got)
	}
	if got := m.Forward(); got != [3]float64{0, 0, -1} {
		t.Errorf("Forward() = %v, want [0 0 -1]", got)
	}
}

func TestNativeError(t *testing.T) {
	if Wrap("ShowOverlay", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}

	err := Wrap("ShowOverlay", OverlayErrorInvalidHandle)
	if err.Error() != "vr: ShowOverlay failed: invalid handle" {
		t.Errorf("Error() = %q", err.Error())
	}

	var code OverlayError
	if !errors.As(err, &code) || code != OverlayErrorInvalidHandle {
		t.Errorf("errors.As code = %v, want %v", code, OverlayErrorInvalidHandle)
	}

	var ne *NativeError
	if !errors.As(err, &ne) || ne.Op != "ShowOverlay" {
		t.Errorf("errors.As NativeError op = %v", ne)
	}
}

func TestErrorCodeStrings(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{InitErrorInitHmdNotFound, "hmd not found"},
		{InitError(4242), "init error 4242"},
		{OverlayErrorKeyInUse, "key in use"},
		{OverlayError(99), "overlay error 99"},
		{InputErrorNoActiveActionSet, "no active action set"},
		{InputErrorMissingSkeletonData, "missing skeleton data"},
		{InputErrorInvalidBoneIndex, "invalid bone index"},
		{InputError(77), "input error 77"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%#v.Error() = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resolve

import (
	"errors"
	"testing"

	"github.com/gogpu/vroverlay/vr"
	"github.com/gogpu/vroverlay/vrsim"
)

func TestVersion_Default(t *testing.T) {
	t.Setenv(vr.OverlayVersionEnv, "")
	got, err := Version(vr.OverlayVersionEnv, vr.DefaultOverlayVersion)
	if err != nil {
		t.Fatal(err)
	}
	if got != vr.DefaultOverlayVersion {
		t.Errorf("Version = %q, want %q", got, vr.DefaultOverlayVersion)
	}
}

func TestVersion_Override(t *testing.T) {
	t.Setenv(vr.SystemVersionEnv, "FnTable:IVRSystem_022")
	got, err := Version(vr.SystemVersionEnv, vr.DefaultSystemVersion)
	if err != nil {
		t.Fatal(err)
	}
	if got != "FnTable:IVRSystem_022" {
		t.Errorf("Version = %q, want override", got)
	}
}

func TestCheckString(t *testing.T) {
	if err := CheckString("key", "overlay.key"); err != nil {
		t.Errorf("CheckString(plain) = %v, want nil", err)
	}
	if err := CheckString("key", "bad\x00key"); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("CheckString(NUL) = %v, want ErrInvalidConfiguration", err)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(vr.OverlayVersionEnv, "")
	t.Setenv(vr.SystemVersionEnv, "")
	t.Setenv(vr.InputVersionEnv, "FnTable:IVRInput_007")

	v, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := Versions{
		Overlay: vr.DefaultOverlayVersion,
		System:  vr.DefaultSystemVersion,
		Input:   "FnTable:IVRInput_007",
	}
	if v != want {
		t.Errorf("FromEnv = %+v, want %+v", v, want)
	}
}

func initialized(t *testing.T, opts ...vrsim.Option) *vrsim.Runtime {
	t.Helper()
	rt := vrsim.New(opts...)
	if _, err := rt.Init(vr.ApplicationOverlay); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(rt.Shutdown)
	return rt
}

func TestLookup_Success(t *testing.T) {
	rt := initialized(t)

	o, err := Overlay(rt, vr.DefaultOverlayVersion)
	if err != nil || o == nil {
		t.Fatalf("Overlay = %v, %v", o, err)
	}
	if _, err := System(rt, vr.DefaultSystemVersion); err != nil {
		t.Errorf("System: %v", err)
	}
	if _, err := Input(rt, vr.DefaultInputVersion); err != nil {
		t.Errorf("Input: %v", err)
	}
}

func TestLookup_Missing(t *testing.T) {
	rt := initialized(t, vrsim.WithoutInterface(vrsim.InterfaceOverlay))

	_, err := Overlay(rt, vr.DefaultOverlayVersion)
	if !errors.Is(err, ErrInterfaceUnavailable) {
		t.Fatalf("err = %v, want ErrInterfaceUnavailable", err)
	}
	var native *vr.NativeError
	if !errors.As(err, &native) || !errors.Is(err, vr.InitErrorInitInterfaceNotFound) {
		t.Errorf("err = %v, want wrapped native interface-not-found", err)
	}
}

func TestLookup_WrongType(t *testing.T) {
	rt := initialized(t, vrsim.WithCapability(vrsim.InterfaceSystem, 42))

	if _, err := System(rt, vr.DefaultSystemVersion); !errors.Is(err, ErrInterfaceUnavailable) {
		t.Errorf("err = %v, want ErrInterfaceUnavailable", err)
	}
}

func TestLookup_NULVersion(t *testing.T) {
	rt := initialized(t)

	_, err := Overlay(rt, "FnTable:IVROverlay\x00")
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
	if n := len(rt.Lookups()); n != 0 {
		t.Errorf("runtime saw %d lookups, want 0", n)
	}
}

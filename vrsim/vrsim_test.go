// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrsim

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/vr"
)

var (
	_ vr.Runtime      = (*Runtime)(nil)
	_ vr.OverlayAPI   = (*Overlay)(nil)
	_ vr.SystemAPI    = (*System)(nil)
	_ vr.RoleReporter = (*System)(nil)
	_ vr.InputAPI     = (*Input)(nil)
	_ texture.Device  = (*Device)(nil)
	_ texture.Texture = (*Texture)(nil)
)

func TestRuntime_LookupRequiresInit(t *testing.T) {
	rt := New()
	if _, err := rt.GenericInterface(vr.DefaultOverlayVersion); !errors.Is(err, vr.InitErrorInitNotInitialized) {
		t.Fatalf("lookup before Init err = %v, want not initialized", err)
	}
	if _, err := rt.Init(vr.ApplicationOverlay); err != nil {
		t.Fatalf("Init: %v", err)
	}
	v, err := rt.GenericInterface(vr.DefaultOverlayVersion)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if v != rt.Overlay() {
		t.Errorf("lookup returned %T, want runtime overlay", v)
	}
	rt.Shutdown()
	if rt.Active() {
		t.Error("Active after Shutdown")
	}
	if rt.InitCalls() != 1 || rt.ShutdownCalls() != 1 {
		t.Errorf("calls init=%d shutdown=%d, want 1/1", rt.InitCalls(), rt.ShutdownCalls())
	}
}

func TestRuntime_Overrides(t *testing.T) {
	rt := New(WithoutInterface(InterfaceSystem), WithCapability(InterfaceInput, "not an input"))
	if _, err := rt.Init(vr.ApplicationOverlay); err != nil {
		t.Fatal(err)
	}
	if _, err := rt.GenericInterface(vr.DefaultSystemVersion); !errors.Is(err, vr.InitErrorInitInterfaceNotFound) {
		t.Errorf("system lookup err = %v, want interface not found", err)
	}
	v, err := rt.GenericInterface(vr.DefaultInputVersion)
	if err != nil || v != "not an input" {
		t.Errorf("input lookup = %v, %v, want override", v, err)
	}
	if _, err := rt.GenericInterface("FnTable:IVRChaperone_004"); err == nil {
		t.Error("unknown interface lookup succeeded")
	}
}

func TestDevice_PitchAndMisalignment(t *testing.T) {
	d := NewDevice()
	d.SetMisalignment(1)
	desc := texture.UploadDescriptor(10, 3)
	tex, err := d.CreateTexture(&desc)
	if err != nil {
		t.Fatal(err)
	}
	m, err := d.Map(tex)
	if err != nil {
		t.Fatal(err)
	}
	if m.RowPitch != DefaultRowPitchAlignment {
		t.Errorf("RowPitch = %d, want %d", m.RowPitch, DefaultRowPitchAlignment)
	}
	if len(m.Data) != m.RowPitch*3 {
		t.Errorf("len(Data) = %d, want %d", len(m.Data), m.RowPitch*3)
	}
	if _, err := d.Map(tex); err == nil {
		t.Error("second Map succeeded while mapped")
	}
	m.Data[m.RowPitch] = 7 // row 1, pixel 0, byte 0
	if err := d.Unmap(tex); err != nil {
		t.Fatalf("Unmap() error = %v", err)
	}
	if err := d.Unmap(tex); err == nil {
		t.Error("second Unmap succeeded while unmapped")
	}

	px, w, h, ok := d.Pixels(tex.NativeHandle())
	if !ok || w != 10 || h != 3 {
		t.Fatalf("Pixels = %dx%d ok=%v, want 10x3", w, h, ok)
	}
	if px[10*4] != 7 {
		t.Errorf("packed row 1 byte 0 = %d, want 7", px[10*4])
	}

	tex.Release()
	tex.Release()
	if d.Live() != 0 || d.Released() != 1 {
		t.Errorf("live=%d released=%d, want 0/1", d.Live(), d.Released())
	}
	if _, err := d.Map(tex); err == nil {
		t.Error("Map after Release succeeded")
	}
}

func TestDevice_FailureInjection(t *testing.T) {
	d := NewDevice()
	boom := errors.New("boom")
	d.FailCreate(boom)
	desc := texture.UploadDescriptor(1, 1)
	if _, err := d.CreateTexture(&desc); !errors.Is(err, boom) {
		t.Errorf("CreateTexture err = %v, want boom", err)
	}
	d.FailCreate(nil)
	tex, err := d.CreateTexture(&desc)
	if err != nil {
		t.Fatal(err)
	}
	d.FailMap(boom)
	if _, err := d.Map(tex); !errors.Is(err, boom) {
		t.Errorf("Map err = %v, want boom", err)
	}
	d.FailMap(nil)

	d.FailUnmap(boom)
	if _, err := d.Map(tex); err != nil {
		t.Fatal(err)
	}
	if err := d.Unmap(tex); !errors.Is(err, boom) {
		t.Errorf("Unmap err = %v, want boom", err)
	}
	if _, err := d.Map(tex); err != nil {
		t.Errorf("Map after failed Unmap err = %v, want texture unmapped", err)
	}
}

func TestOverlay_Lifecycle(t *testing.T) {
	rt := New()
	o := rt.Overlay()

	h, err := o.CreateOverlay("key", "name")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.CreateOverlay("key", "other"); !errors.Is(err, vr.OverlayErrorKeyInUse) {
		t.Errorf("duplicate key err = %v, want key in use", err)
	}
	if err := o.ShowOverlay(h); err != nil {
		t.Fatal(err)
	}
	if st, _ := o.State(h); !st.Visible {
		t.Error("overlay not visible after ShowOverlay")
	}
	if err := o.ShowOverlay(h + 100); !errors.Is(err, vr.OverlayErrorInvalidHandle) {
		t.Errorf("unknown handle err = %v, want invalid handle", err)
	}

	o.Fail("HideOverlay", vr.OverlayErrorRequestFailed)
	if err := o.HideOverlay(h); !errors.Is(err, vr.OverlayErrorRequestFailed) {
		t.Errorf("injected err = %v", err)
	}
	o.Fail("HideOverlay", vr.OverlayErrorNone)
	if err := o.HideOverlay(h); err != nil {
		t.Errorf("HideOverlay after clearing failure: %v", err)
	}

	if err := o.DestroyOverlay(h); err != nil {
		t.Fatal(err)
	}
	if _, err := o.CreateOverlay("key", "again"); err != nil {
		t.Errorf("key not freed by DestroyOverlay: %v", err)
	}
}

func TestOverlay_TransformTypes(t *testing.T) {
	o := New().Overlay()
	h, _ := o.CreateOverlay("k", "n")

	if _, _, err := o.TransformDeviceRelative(h); !errors.Is(err, vr.OverlayErrorWrongTransformType) {
		t.Errorf("relative on absolute overlay err = %v", err)
	}
	m := vr.Identity34()
	m[2][3] = -2
	if err := o.SetTransformDeviceRelative(h, vr.HMDDeviceIndex, m); err != nil {
		t.Fatal(err)
	}
	tt, _ := o.TransformType(h)
	if tt != vr.TransformTrackedDeviceRelative {
		t.Errorf("TransformType = %v, want relative", tt)
	}
	dev, got, err := o.TransformDeviceRelative(h)
	if err != nil || dev != 0 || got != m {
		t.Errorf("TransformDeviceRelative = %d, %v, %v", dev, got, err)
	}
	if err := o.SetTransformDeviceRelative(h, 64, m); !errors.Is(err, vr.OverlayErrorInvalidTrackedDevice) {
		t.Errorf("device 64 err = %v", err)
	}
}

func TestOverlay_Intersection(t *testing.T) {
	rt := New()
	o := rt.Overlay()
	h, _ := o.CreateOverlay("k", "n")

	m := vr.Identity34()
	m[2][3] = -2 // 2 m in front of the origin, facing +Z
	if err := o.SetTransformAbsolute(h, vr.TrackingUniverseStanding, m); err != nil {
		t.Fatal(err)
	}
	_ = o.SetWidthInMeters(h, 2)

	res, ok := o.ComputeIntersection(h, vr.IntersectionParams{
		Source:    [3]float32{0.5, 0, 0},
		Direction: [3]float32{0, 0, -1},
	})
	if !ok {
		t.Fatal("ray straight ahead missed")
	}
	if math.Abs(float64(res.Distance)-2) > 1e-6 {
		t.Errorf("Distance = %v, want 2", res.Distance)
	}
	if math.Abs(float64(res.UV[0])-0.75) > 1e-6 || math.Abs(float64(res.UV[1])-0.5) > 1e-6 {
		t.Errorf("UV = %v, want [0.75 0.5]", res.UV)
	}

	if _, ok := o.ComputeIntersection(h, vr.IntersectionParams{Direction: [3]float32{0, 0, 1}}); ok {
		t.Error("ray pointing away hit")
	}
	if _, ok := o.ComputeIntersection(h, vr.IntersectionParams{
		Source:    [3]float32{5, 0, 0},
		Direction: [3]float32{0, 0, -1},
	}); ok {
		t.Error("ray beside the overlay hit")
	}

	// Relative to a headset moved 1 m up.
	hmd := vr.Identity34()
	hmd[1][3] = 1
	rt.System().SetPose(vr.HMDDeviceIndex, ValidPose(hmd))
	_ = o.SetTransformDeviceRelative(h, vr.HMDDeviceIndex, m)
	res, ok = o.ComputeIntersection(h, vr.IntersectionParams{
		Source:    [3]float32{0, 1, 0},
		Direction: [3]float32{0, 0, -1},
	})
	if !ok || math.Abs(float64(res.Point[1])-1) > 1e-6 {
		t.Errorf("relative intersection = %+v, %v, want hit at y=1", res, ok)
	}
}

func TestOverlay_SetFromFileAndRaw(t *testing.T) {
	o := New().Overlay()
	h, _ := o.CreateOverlay("k", "n")

	if err := o.SetFromFile(h, filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, vr.OverlayErrorUnableToLoadFile) {
		t.Errorf("missing file err = %v", err)
	}
	path := filepath.Join(t.TempDir(), "image.png")
	if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := o.SetFromFile(h, path); err != nil {
		t.Errorf("SetFromFile: %v", err)
	}

	if err := o.SetRaw(h, make([]byte, 7), 2, 1, 4); !errors.Is(err, vr.OverlayErrorInvalidParameter) {
		t.Errorf("short raw buffer err = %v", err)
	}
	if err := o.SetRaw(h, make([]byte, 8), 2, 1, 4); err != nil {
		t.Errorf("SetRaw: %v", err)
	}
	st, _ := o.State(h)
	if st.FilePath != "" || st.Width != 2 || st.BytesPerPixel != 4 {
		t.Errorf("state after SetRaw = %+v", st)
	}
}

func TestSystem_PoseQuery(t *testing.T) {
	s := NewSystem()
	s.AddController(3, vr.ControllerRoleLeftHand, vr.Identity34())

	poses := make([]vr.TrackedDevicePose, vr.MaxTrackedDeviceCount)
	s.DeviceToAbsoluteTrackingPose(vr.TrackingUniverseStanding, 0, poses)
	if !poses[3].PoseIsValid || !poses[0].PoseIsValid {
		t.Error("controller or headset pose not valid")
	}
	if poses[4].PoseIsValid {
		t.Error("empty slot reported a valid pose")
	}
	q := s.PoseQueries()
	if len(q) != 1 || q[0].Origin != vr.TrackingUniverseStanding || q[0].Count != vr.MaxTrackedDeviceCount {
		t.Errorf("PoseQueries = %+v", q)
	}
	if got := s.ControllerRoleForTrackedDeviceIndex(3); got != vr.ControllerRoleLeftHand {
		t.Errorf("role = %v, want left", got)
	}
	var st vr.ControllerState
	if s.ControllerState(3, &st) {
		t.Error("ControllerState reported data that was never set")
	}
}

func TestInput_Handles(t *testing.T) {
	in := NewInput()
	a, err := in.ActionHandle("/actions/overlay/in/trigger")
	if err != nil || a == vr.InvalidActionHandle {
		t.Fatalf("ActionHandle = %d, %v", a, err)
	}
	again, _ := in.ActionHandle("/actions/overlay/in/trigger")
	if again != a {
		t.Errorf("handle not stable: %d then %d", a, again)
	}
	if _, err := in.InputSourceHandle("/actions/wrong"); !errors.Is(err, vr.InputErrorNameNotFound) {
		t.Errorf("bad source err = %v", err)
	}

	src, _ := in.InputSourceHandle("/user/hand/left")
	in.SetDigital("/actions/overlay/in/trigger", "/user/hand/left", vr.DigitalActionData{Active: true, State: true})
	d, err := in.DigitalActionData(a, src)
	if err != nil || !d.Active || !d.State {
		t.Errorf("DigitalActionData = %+v, %v", d, err)
	}
	d, _ = in.DigitalActionData(a, vr.InvalidInputValueHandle)
	if d.Active {
		t.Error("unset wildcard data reported active")
	}
	if err := in.UpdateActionState(nil); !errors.Is(err, vr.InputErrorNoActiveActionSet) {
		t.Errorf("empty update err = %v", err)
	}
}

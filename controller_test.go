// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/vroverlay"
	"github.com/gogpu/vroverlay/input"
	"github.com/gogpu/vroverlay/vr"
	"github.com/gogpu/vroverlay/vrsim"
)

func translated(x, y, z float32) vr.Matrix34 {
	m := vr.Identity34()
	m[0][3], m[1][3], m[2][3] = x, y, z
	return m
}

func TestControllers_IDsAndPoses(t *testing.T) {
	rt := vrsim.New()
	rt.System().AddController(4, vr.ControllerRoleRightHand, translated(0.3, 1.1, -0.4))
	rt.System().AddController(2, vr.ControllerRoleLeftHand, translated(-0.3, 1.1, -0.4))
	s := newSession(t, rt)

	ids, err := s.ControllerIDs()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(ids, []uint32{2, 4}) {
		t.Errorf("ControllerIDs = %v, want [2 4]", ids)
	}

	m, ok, err := s.ControllerPose(4)
	if err != nil || !ok {
		t.Fatalf("ControllerPose(4) = ok %v, err %v", ok, err)
	}
	if got := m.Translation(); got[0] != float64(float32(0.3)) || got[2] != float64(float32(-0.4)) {
		t.Errorf("translation = %v, want (0.3, 1.1, -0.4)", got)
	}

	q := rt.System().PoseQueries()
	if len(q) == 0 || q[len(q)-1].Origin != vr.TrackingUniverseStanding || q[len(q)-1].PredictedSeconds != 0 {
		t.Errorf("pose queries = %+v, want standing universe with no prediction", q)
	}
}

func TestControllers_PoseMissingIsNotAnError(t *testing.T) {
	rt := vrsim.New()
	s := newSession(t, rt)

	_, ok, err := s.ControllerPose(7)
	if err != nil {
		t.Fatalf("ControllerPose(untracked) error = %v", err)
	}
	if ok {
		t.Error("ControllerPose(untracked) ok = true, want false")
	}

	if _, _, err := s.ControllerPose(vr.MaxTrackedDeviceCount); !errors.Is(err, vroverlay.ErrInvalidDeviceIndex) {
		t.Errorf("ControllerPose(64) error = %v, want ErrInvalidDeviceIndex", err)
	}
}

func TestControllers_LegacyState(t *testing.T) {
	rt := vrsim.New()
	rt.System().AddController(1, vr.ControllerRoleLeftHand, vr.Identity34())
	raw := vr.ControllerState{ButtonPressed: vr.ButtonTrigger | vr.ButtonTouchpad}
	raw.Axis[vr.AxisTrigger] = vr.ControllerAxis{X: 0.75}
	raw.Axis[vr.AxisTouchpad] = vr.ControllerAxis{X: -0.5, Y: 0.25}
	rt.System().SetControllerState(1, raw)
	s := newSession(t, rt)

	got, err := s.ControllerState(1)
	if err != nil {
		t.Fatal(err)
	}
	want := vroverlay.ControllerState{
		TriggerPressed:  true,
		TriggerValue:    0.75,
		TouchpadPressed: true,
		TouchpadX:       -0.5,
		TouchpadY:       0.25,
	}
	if got != want {
		t.Errorf("ControllerState = %+v, want %+v", got, want)
	}

	empty, err := s.ControllerState(9)
	if err != nil || empty != (vroverlay.ControllerState{}) {
		t.Errorf("ControllerState(no state) = %+v, %v, want zero state", empty, err)
	}
}

func TestControllers_ActionsOverrideLegacy(t *testing.T) {
	rt := vrsim.New()
	rt.System().AddController(1, vr.ControllerRoleRightHand, vr.Identity34())
	rt.System().SetControllerState(1, vr.ControllerState{ButtonPressed: vr.ButtonTrigger})
	rt.Input().SetDigital(input.DefaultTriggerAction, input.DefaultRightHand,
		vr.DigitalActionData{Active: true, State: false})
	rt.Input().SetDigital(input.DefaultGripAction, "",
		vr.DigitalActionData{Active: true, State: true})

	s := newSession(t, rt, vroverlay.WithActions(vroverlay.ActionConfig{ManifestPath: "/opt/app/actions.json"}))
	if !s.ActionsConfigured() {
		t.Fatal("ActionsConfigured = false after WithActions")
	}
	if got := rt.Input().Manifest(); got != "/opt/app/actions.json" {
		t.Errorf("manifest = %q, want /opt/app/actions.json", got)
	}

	got, err := s.ControllerState(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.TriggerPressed {
		t.Error("TriggerPressed = true, want action state false to win")
	}
	if !got.GripPressed {
		t.Error("GripPressed = false, want unrestricted action state true")
	}
}

func TestControllers_ConfigureActionsTwice(t *testing.T) {
	rt := vrsim.New()
	s := newSession(t, rt)

	if err := s.ConfigureActions(vroverlay.ActionConfig{}); err != nil {
		t.Fatalf("first ConfigureActions() error = %v", err)
	}
	if err := s.ConfigureActions(vroverlay.ActionConfig{}); !errors.Is(err, vroverlay.ErrInvalidConfiguration) {
		t.Errorf("second ConfigureActions() error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestControllers_ConfigureActionsRejectsNUL(t *testing.T) {
	rt := vrsim.New()
	s := newSession(t, rt)

	err := s.ConfigureActions(vroverlay.ActionConfig{TriggerAction: "/actions/x\x00"})
	if !errors.Is(err, vroverlay.ErrInvalidConfiguration) {
		t.Errorf("ConfigureActions(NUL) error = %v, want ErrInvalidConfiguration", err)
	}
	if s.ActionsConfigured() {
		t.Error("ActionsConfigured = true after failure")
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"errors"
	"testing"

	"github.com/gogpu/vroverlay/tracking"
	"github.com/gogpu/vroverlay/vr"
	"github.com/gogpu/vroverlay/vrsim"
)

var legacy = tracking.ControllerState{
	TriggerPressed:  false,
	TriggerValue:    0.4,
	GripPressed:     true,
	TouchpadX:       0.1,
	TouchpadY:       -0.2,
	JoystickPressed: true,
	JoystickX:       0.5,
}

func configured(t *testing.T) (*Cache, *vrsim.Input) {
	t.Helper()
	in := vrsim.NewInput()
	c, err := Configure(in, Config{ManifestPath: "/opt/app/actions.json"})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return c, in
}

func TestConfigure_Defaults(t *testing.T) {
	c, in := configured(t)
	if in.Manifest() != "/opt/app/actions.json" {
		t.Errorf("manifest = %q", in.Manifest())
	}
	if got := uint64(c.ActionSet()); got != in.Handle(DefaultActionSet) {
		t.Errorf("action set handle = %d, want %d", got, in.Handle(DefaultActionSet))
	}
	if uint64(c.left) != in.Handle(DefaultLeftHand) || uint64(c.right) != in.Handle(DefaultRightHand) {
		t.Error("hand sources not resolved from default paths")
	}
}

func TestConfigure_Failure(t *testing.T) {
	in := vrsim.NewInput()
	in.Fail("ActionHandle", vr.InputErrorNameNotFound)

	c, err := Configure(in, Config{})
	if c != nil {
		t.Error("Configure returned a cache on failure")
	}
	var native *vr.NativeError
	if !errors.As(err, &native) || native.Op != "GetActionHandle" {
		t.Errorf("err = %v, want GetActionHandle native error", err)
	}
	if !errors.Is(err, vr.InputErrorNameNotFound) {
		t.Errorf("err = %v, want name not found code", err)
	}
}

func TestConfigure_BadPath(t *testing.T) {
	if _, err := Configure(vrsim.NewInput(), Config{LeftHand: "left"}); err == nil {
		t.Error("Configure accepted a source path the runtime rejects")
	}
}

func TestReconcile_NilCacheIsLegacy(t *testing.T) {
	var c *Cache
	if got := c.Reconcile(legacy, 1, vr.ControllerRoleLeftHand); got != legacy {
		t.Errorf("Reconcile = %+v, want legacy %+v", got, legacy)
	}
}

func TestReconcile_OverridesPressedOnly(t *testing.T) {
	c, in := configured(t)
	in.SetDigital(DefaultTriggerAction, DefaultLeftHand, vr.DigitalActionData{Active: true, State: true})
	in.SetDigital(DefaultGripAction, DefaultLeftHand, vr.DigitalActionData{Active: true, State: false})

	got := c.Reconcile(legacy, 1, vr.ControllerRoleLeftHand)

	want := legacy
	want.TriggerPressed = true
	want.GripPressed = false
	if got != want {
		t.Errorf("Reconcile = %+v, want %+v", got, want)
	}
	if n := len(in.Queries()); n != 2 {
		t.Errorf("digital queries = %d, want 2 (no wildcard once both resolved)", n)
	}
	if u := in.Updates(); len(u) != 1 || u[0].ActionSet != c.ActionSet() {
		t.Errorf("UpdateActionState sets = %+v", u)
	}
}

func TestReconcile_WildcardFallback(t *testing.T) {
	c, in := configured(t)
	in.SetDigital(DefaultTriggerAction, DefaultRightHand, vr.DigitalActionData{Active: true, State: true})
	in.SetDigital(DefaultGripAction, "", vr.DigitalActionData{Active: true, State: false})

	got := c.Reconcile(legacy, 2, vr.ControllerRoleRightHand)
	if !got.TriggerPressed || got.GripPressed {
		t.Errorf("Reconcile = %+v, want trigger from right hand and grip from wildcard", got)
	}

	queries := in.Queries()
	last := queries[len(queries)-1]
	if last.Action != vr.ActionHandle(in.Handle(DefaultGripAction)) || last.Source != vr.InvalidInputValueHandle {
		t.Errorf("last query = %+v, want grip against wildcard", last)
	}
}

func TestReconcile_NoRoleUsesWildcard(t *testing.T) {
	c, in := configured(t)
	in.SetDigital(DefaultTriggerAction, "", vr.DigitalActionData{Active: true, State: true})
	in.SetDigital(DefaultGripAction, "", vr.DigitalActionData{Active: true, State: true})

	got := c.Reconcile(legacy, 3, vr.ControllerRoleInvalid)
	if !got.TriggerPressed || !got.GripPressed {
		t.Errorf("Reconcile = %+v, want both pressed", got)
	}
	for _, q := range in.Queries() {
		if q.Source != vr.InvalidInputValueHandle {
			t.Errorf("query against source %d, want wildcard only", q.Source)
		}
	}
}

func TestReconcile_InactiveKeepsLegacy(t *testing.T) {
	c, in := configured(t)
	in.SetDigital(DefaultTriggerAction, DefaultLeftHand, vr.DigitalActionData{Active: false, State: true})

	if got := c.Reconcile(legacy, 1, vr.ControllerRoleLeftHand); got != legacy {
		t.Errorf("Reconcile = %+v, want legacy", got)
	}
}

func TestReconcile_UpdateFailureKeepsLegacy(t *testing.T) {
	c, in := configured(t)
	in.SetDigital(DefaultTriggerAction, "", vr.DigitalActionData{Active: true, State: true})
	in.Fail("UpdateActionState", vr.InputErrorNoActiveActionSet)

	if got := c.Reconcile(legacy, 1, vr.ControllerRoleLeftHand); got != legacy {
		t.Errorf("Reconcile = %+v, want legacy", got)
	}
	if n := len(in.Queries()); n != 0 {
		t.Errorf("digital queries = %d after failed refresh, want 0", n)
	}
}

func TestReconcile_QueryFailureKeepsLegacy(t *testing.T) {
	c, in := configured(t)
	in.Fail("DigitalActionData", vr.InputErrorInvalidDevice)

	if got := c.Reconcile(legacy, 1, vr.ControllerRoleRightHand); got != legacy {
		t.Errorf("Reconcile = %+v, want legacy", got)
	}
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input reconciles legacy controller polling with the action-based
// input system.
//
// Legacy polling always works but reports raw button bits. When an action
// manifest has been configured, the trigger and grip actions bound in it
// take precedence for the pressed flags; everything else (axes, touchpad,
// joystick) still comes from the legacy snapshot.
package input

import (
	"fmt"

	"github.com/gogpu/vroverlay/internal/logging"
	"github.com/gogpu/vroverlay/tracking"
	"github.com/gogpu/vroverlay/vr"
)

// Default action and source paths.
const (
	DefaultActionSet     = "/actions/overlay"
	DefaultTriggerAction = "/actions/overlay/in/trigger"
	DefaultGripAction    = "/actions/overlay/in/grip"
	DefaultLeftHand      = "/user/hand/left"
	DefaultRightHand     = "/user/hand/right"
)

// Config names the action manifest and the paths inside it.
// Empty fields take the defaults.
type Config struct {
	ManifestPath  string
	ActionSet     string
	TriggerAction string
	GripAction    string
	LeftHand      string
	RightHand     string
}

func (c Config) withDefaults() Config {
	set := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	set(&c.ActionSet, DefaultActionSet)
	set(&c.TriggerAction, DefaultTriggerAction)
	set(&c.GripAction, DefaultGripAction)
	set(&c.LeftHand, DefaultLeftHand)
	set(&c.RightHand, DefaultRightHand)
	return c
}

// Cache holds the resolved action system handles. It is immutable once
// returned by Configure.
type Cache struct {
	api vr.InputAPI

	actionSet vr.ActionSetHandle
	trigger   vr.ActionHandle
	grip      vr.ActionHandle
	left      vr.InputValueHandle
	right     vr.InputValueHandle
}

// Configure loads the action manifest and resolves every handle Reconcile
// needs. On any failure no Cache is returned.
func Configure(api vr.InputAPI, cfg Config) (*Cache, error) {
	cfg = cfg.withDefaults()

	if cfg.ManifestPath != "" {
		if err := api.SetActionManifestPath(cfg.ManifestPath); err != nil {
			return nil, vr.Wrap("SetActionManifestPath", err)
		}
	}

	c := &Cache{api: api}
	var err error
	if c.actionSet, err = api.ActionSetHandle(cfg.ActionSet); err != nil {
		return nil, fmt.Errorf("action set %s: %w", cfg.ActionSet, vr.Wrap("GetActionSetHandle", err))
	}
	if c.trigger, err = api.ActionHandle(cfg.TriggerAction); err != nil {
		return nil, fmt.Errorf("action %s: %w", cfg.TriggerAction, vr.Wrap("GetActionHandle", err))
	}
	if c.grip, err = api.ActionHandle(cfg.GripAction); err != nil {
		return nil, fmt.Errorf("action %s: %w", cfg.GripAction, vr.Wrap("GetActionHandle", err))
	}
	if c.left, err = api.InputSourceHandle(cfg.LeftHand); err != nil {
		return nil, fmt.Errorf("source %s: %w", cfg.LeftHand, vr.Wrap("GetInputSourceHandle", err))
	}
	if c.right, err = api.InputSourceHandle(cfg.RightHand); err != nil {
		return nil, fmt.Errorf("source %s: %w", cfg.RightHand, vr.Wrap("GetInputSourceHandle", err))
	}
	return c, nil
}

// ActionSet returns the resolved action set handle.
func (c *Cache) ActionSet() vr.ActionSetHandle { return c.actionSet }

// Reconcile overrides the trigger and grip pressed flags of base with the
// action system's view of them.
//
// The action set is refreshed first; if that fails base is returned
// unchanged. For a left or right hand role the matching hand source is
// queried before the unrestricted source; the first active result for an
// action wins, and querying stops once both actions are resolved. An
// action that yields no active result keeps its legacy flag.
func (c *Cache) Reconcile(base tracking.ControllerState, index uint32, role vr.ControllerRole) tracking.ControllerState {
	if c == nil {
		return base
	}

	active := []vr.ActiveActionSet{{ActionSet: c.actionSet}}
	if err := c.api.UpdateActionState(active); err != nil {
		logging.Logger().Warn("vroverlay: action state refresh failed", "device", index, "err", err)
		return base
	}

	sources := make([]vr.InputValueHandle, 0, 2)
	if preferred := c.source(role); preferred != vr.InvalidInputValueHandle {
		sources = append(sources, preferred)
	}
	sources = append(sources, vr.InvalidInputValueHandle)

	out := base
	var haveTrigger, haveGrip bool
	for _, src := range sources {
		if !haveTrigger {
			if d, ok := c.digital(c.trigger, src); ok {
				out.TriggerPressed = d.State
				haveTrigger = true
			}
		}
		if !haveGrip {
			if d, ok := c.digital(c.grip, src); ok {
				out.GripPressed = d.State
				haveGrip = true
			}
		}
		if haveTrigger && haveGrip {
			break
		}
	}
	return out
}

func (c *Cache) source(role vr.ControllerRole) vr.InputValueHandle {
	switch role {
	case vr.ControllerRoleLeftHand:
		return c.left
	case vr.ControllerRoleRightHand:
		return c.right
	default:
		return vr.InvalidInputValueHandle
	}
}

// digital returns the data for action from src when the query succeeds
// and the action is active.
func (c *Cache) digital(action vr.ActionHandle, src vr.InputValueHandle) (vr.DigitalActionData, bool) {
	d, err := c.api.DigitalActionData(action, src)
	if err != nil || !d.Active {
		return vr.DigitalActionData{}, false
	}
	return d, true
}

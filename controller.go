// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"fmt"

	"github.com/gogpu/vroverlay/input"
	"github.com/gogpu/vroverlay/internal/resolve"
	"github.com/gogpu/vroverlay/tracking"
)

// ControllerState is a snapshot of one controller's buttons and axes.
type ControllerState = tracking.ControllerState

// ControllerIDs returns the device indices of connected controllers in
// ascending order.
func (s *Session) ControllerIDs() ([]uint32, error) {
	if err := s.requireSystem(); err != nil {
		return nil, err
	}
	return s.tracker.ControllerIDs(), nil
}

// ControllerPose returns the pose of device index in the standing
// universe. ok is false, with a nil error, when the device is not
// currently tracked.
func (s *Session) ControllerPose(index uint32) (m Matrix4, ok bool, err error) {
	if err := s.requireSystem(); err != nil {
		return Matrix4{}, false, err
	}
	return s.tracker.ControllerPose(index)
}

// ControllerState returns the button and axis state of device index.
// A device with nothing to report yields the zero state. When actions are
// configured, active trigger and grip actions override the legacy pressed
// flags.
func (s *Session) ControllerState(index uint32) (ControllerState, error) {
	if err := s.requireSystem(); err != nil {
		return ControllerState{}, err
	}
	state, err := s.tracker.LegacyState(index)
	if err != nil {
		return ControllerState{}, err
	}
	if s.actions == nil {
		return state, nil
	}
	return s.actions.Reconcile(state, index, s.tracker.Role(index)), nil
}

// ConfigureActions loads an action manifest and enables action-based
// trigger and grip input. It can succeed once per session.
func (s *Session) ConfigureActions(cfg ActionConfig) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.input == nil {
		return fmt.Errorf("%w: input", ErrInterfaceUnavailable)
	}
	if s.actions != nil {
		return fmt.Errorf("%w: actions already configured", ErrInvalidConfiguration)
	}
	for _, f := range []struct{ name, value string }{
		{"manifest path", cfg.ManifestPath},
		{"action set", cfg.ActionSet},
		{"trigger action", cfg.TriggerAction},
		{"grip action", cfg.GripAction},
		{"left hand source", cfg.LeftHand},
		{"right hand source", cfg.RightHand},
	} {
		if err := resolve.CheckString(f.name, f.value); err != nil {
			return err
		}
	}

	cache, err := input.Configure(s.input, cfg)
	if err != nil {
		return err
	}
	s.actions = cache
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"fmt"

	"github.com/gogpu/vroverlay/input"
	"github.com/gogpu/vroverlay/internal/lifecycle"
	"github.com/gogpu/vroverlay/internal/logging"
	"github.com/gogpu/vroverlay/internal/resolve"
	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/tracking"
	"github.com/gogpu/vroverlay/vr"
)

// Session is a connection to the overlay runtime.
//
// The overlay capability is fixed for the session's lifetime. The system
// capability (poses, controllers) and the input capability (actions) are
// optional; without them the affected methods return
// ErrInterfaceUnavailable and everything else keeps working.
//
// A Session is not safe for concurrent use, except that Close may race
// with New and Close of other sessions.
type Session struct {
	lc *lifecycle.Manager

	overlay vr.OverlayAPI
	system  vr.SystemAPI
	input   vr.InputAPI

	token       vr.Token
	initialized bool

	tracker  *tracking.Reader
	actions  *input.Cache
	uploader *texture.Uploader

	closed bool
}

// New connects to the runtime configured with WithRuntime.
//
// The first session in the process for a runtime initializes it as an
// overlay application. New fails with ErrDeviceNotFound when no headset is
// present, ErrRuntimeInitFailed when initialization fails,
// ErrInterfaceUnavailable when the overlay capability cannot be resolved
// and ErrInvalidConfiguration for a malformed interface version.
func New(opts ...Option) (*Session, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.runtime == nil {
		return nil, fmt.Errorf("%w: no runtime configured", ErrDeviceNotFound)
	}

	versions, err := o.interfaceVersions()
	if err != nil {
		return nil, err
	}

	s := &Session{}
	s.lc, s.token, s.initialized, err = lifecycle.Join(o.runtime, func() error {
		return s.bind(o.runtime, versions)
	})
	if err != nil {
		return nil, err
	}

	if s.system != nil {
		s.tracker = tracking.NewReader(s.system)
	}
	if o.device != nil {
		s.uploader = texture.NewUploader(o.device, s.overlay)
	}

	if o.actions != nil {
		if err := s.ConfigureActions(*o.actions); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

// bind resolves the session's capabilities. Only the overlay capability is
// mandatory.
func (s *Session) bind(rt vr.Runtime, v InterfaceVersions) error {
	overlay, err := resolve.Overlay(rt, v.Overlay)
	if err != nil {
		return err
	}
	s.overlay = overlay

	if sys, err := resolve.System(rt, v.System); err != nil {
		logging.Logger().Warn("vroverlay: system interface unavailable, poses and controllers disabled", "err", err)
	} else {
		s.system = sys
	}

	if in, err := resolve.Input(rt, v.Input); err != nil {
		logging.Logger().Warn("vroverlay: input interface unavailable, action input disabled", "err", err)
	} else {
		s.input = in
	}
	return nil
}

// Close releases the session's GPU texture and its share of the runtime.
// The runtime shuts down when the last session closes. Overlays created
// by the session are left to the runtime. Calling Close again is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.uploader != nil {
		s.uploader.Release()
	}
	s.lc.Release()
	return nil
}

// Initialized reports whether this session performed the runtime
// initialize, and the token it returned.
func (s *Session) Initialized() (vr.Token, bool) {
	return s.token, s.initialized
}

// HasSystem reports whether poses and controller state are available.
func (s *Session) HasSystem() bool { return s.system != nil }

// HasInput reports whether the action input system is available.
func (s *Session) HasInput() bool { return s.input != nil }

// ActionsConfigured reports whether ConfigureActions has succeeded.
func (s *Session) ActionsConfigured() bool { return s.actions != nil }

// TextureDims returns the size of the cached GPU texture, or zeros when
// there is none.
func (s *Session) TextureDims() (width, height uint32) {
	if s.uploader == nil {
		return 0, 0
	}
	return s.uploader.Dims()
}

func (s *Session) checkOpen() error {
	if s.closed {
		return ErrClosed
	}
	return nil
}

func (s *Session) requireSystem() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.system == nil {
		return fmt.Errorf("%w: system", ErrInterfaceUnavailable)
	}
	return nil
}

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"github.com/gogpu/vroverlay/input"
	"github.com/gogpu/vroverlay/internal/resolve"
	"github.com/gogpu/vroverlay/texture"
	"github.com/gogpu/vroverlay/vr"
)

// InterfaceVersions names the runtime interface versions a session
// resolves. Empty fields fall back to the environment overrides
// (OPENVR_IVR_OVERLAY_VERSION, OPENVR_IVR_SYSTEM_VERSION,
// OPENVR_IVR_INPUT_VERSION) and then to the built-in defaults.
type InterfaceVersions = resolve.Versions

// ActionConfig names an action manifest and the action and source paths
// inside it. Empty fields take the defaults of package input.
type ActionConfig = input.Config

// Option configures a Session during creation.
//
// Example:
//
//	s, err := vroverlay.New(
//		vroverlay.WithRuntime(rt),
//		vroverlay.WithDevice(dev),
//	)
type Option func(*options)

type options struct {
	runtime  vr.Runtime
	device   texture.Device
	versions InterfaceVersions
	actions  *ActionConfig
}

// WithRuntime sets the runtime the session connects to. It is required.
// Sessions sharing a runtime share its initialization.
func WithRuntime(rt vr.Runtime) Option {
	return func(o *options) {
		o.runtime = rt
	}
}

// WithDevice sets the GPU device used by SetTextureFromGPU. Without it the
// GPU texture path returns ErrGPUUnavailable; the file and raw paths still
// work.
func WithDevice(d texture.Device) Option {
	return func(o *options) {
		o.device = d
	}
}

// WithInterfaceVersions overrides interface versions for this session.
func WithInterfaceVersions(v InterfaceVersions) Option {
	return func(o *options) {
		o.versions = v
	}
}

// WithActions configures action-based input during New, as if
// ConfigureActions had been called. New fails if configuration fails.
func WithActions(cfg ActionConfig) Option {
	return func(o *options) {
		o.actions = &cfg
	}
}

// interfaceVersions merges explicit overrides with the environment and
// rejects any version the runtime could not accept.
func (o *options) interfaceVersions() (InterfaceVersions, error) {
	env, err := resolve.FromEnv()
	if err != nil {
		return InterfaceVersions{}, err
	}
	v := o.versions
	if v.Overlay == "" {
		v.Overlay = env.Overlay
	}
	if v.System == "" {
		v.System = env.System
	}
	if v.Input == "" {
		v.Input = env.Input
	}
	for _, f := range []struct{ name, value string }{
		{"overlay interface version", v.Overlay},
		{"system interface version", v.System},
		{"input interface version", v.Input},
	} {
		if err := resolve.CheckString(f.name, f.value); err != nil {
			return InterfaceVersions{}, err
		}
	}
	return v, nil
}

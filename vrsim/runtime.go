// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vrsim

import (
	"strings"
	"sync"

	"github.com/gogpu/vroverlay/vr"
)

// Interface name fragments matched against version identifiers.
const (
	InterfaceOverlay = "IVROverlay"
	InterfaceSystem  = "IVRSystem"
	InterfaceInput   = "IVRInput"
)

// Runtime is a simulated vr.Runtime.
type Runtime struct {
	mu sync.Mutex

	hmd     bool
	initErr error
	active  bool

	initCalls     int
	shutdownCalls int
	lookups       []string

	overrides map[string]any

	overlay *Overlay
	system  *System
	input   *Input
	device  *Device
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithoutHMD makes IsHMDPresent report false.
func WithoutHMD() Option {
	return func(r *Runtime) {
		r.hmd = false
	}
}

// WithInitError makes Init fail with err.
func WithInitError(err error) Option {
	return func(r *Runtime) {
		r.initErr = err
	}
}

// WithoutInterface makes lookups of versions containing fragment fail with
// vr.InitErrorInitInterfaceNotFound.
func WithoutInterface(fragment string) Option {
	return WithCapability(fragment, nil)
}

// WithCapability makes lookups of versions containing fragment return v
// instead of the built-in capability. A nil v makes the lookup fail.
func WithCapability(fragment string, v any) Option {
	return func(r *Runtime) {
		r.overrides[fragment] = v
	}
}

// WithDevice replaces the runtime's software GPU device. The overlay
// capability reads submitted textures from it.
func WithDevice(d *Device) Option {
	return func(r *Runtime) {
		r.device = d
	}
}

// New creates a Runtime with a present HMD, one headset at slot 0 and no
// controllers.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		hmd:       true,
		overrides: make(map[string]any),
		device:    NewDevice(),
		system:    NewSystem(),
		input:     NewInput(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.overlay = newOverlay(r.device, r.system)
	return r
}

// IsHMDPresent implements vr.Runtime.
func (r *Runtime) IsHMDPresent() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hmd
}

// Init implements vr.Runtime.
func (r *Runtime) Init(app vr.ApplicationType) (vr.Token, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.initCalls++
	if r.initErr != nil {
		return 0, r.initErr
	}
	if !r.hmd {
		return 0, vr.InitErrorInitHmdNotFound
	}
	r.active = true
	return vr.Token(r.initCalls), nil
}

// Shutdown implements vr.Runtime.
func (r *Runtime) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shutdownCalls++
	r.active = false
}

// GenericInterface implements vr.Runtime.
func (r *Runtime) GenericInterface(version string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lookups = append(r.lookups, version)
	if !r.active {
		return nil, vr.InitErrorInitNotInitialized
	}
	for fragment, v := range r.overrides {
		if strings.Contains(version, fragment) {
			if v == nil {
				return nil, vr.InitErrorInitInterfaceNotFound
			}
			return v, nil
		}
	}
	switch {
	case strings.Contains(version, InterfaceOverlay):
		return r.overlay, nil
	case strings.Contains(version, InterfaceSystem):
		return r.system, nil
	case strings.Contains(version, InterfaceInput):
		return r.input, nil
	}
	return nil, vr.InitErrorInitInterfaceNotFound
}

// SetHMDPresent changes what IsHMDPresent reports.
func (r *Runtime) SetHMDPresent(present bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hmd = present
}

// Active reports whether the runtime is initialized.
func (r *Runtime) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// InitCalls returns how many times Init has been called.
func (r *Runtime) InitCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.initCalls
}

// ShutdownCalls returns how many times Shutdown has been called.
func (r *Runtime) ShutdownCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shutdownCalls
}

// Lookups returns the version identifiers passed to GenericInterface.
func (r *Runtime) Lookups() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lookups...)
}

// Overlay returns the overlay capability.
func (r *Runtime) Overlay() *Overlay { return r.overlay }

// System returns the system capability.
func (r *Runtime) System() *System { return r.system }

// Input returns the action input capability.
func (r *Runtime) Input() *Input { return r.input }

// Device returns the software GPU device.
func (r *Runtime) Device() *Device { return r.device }

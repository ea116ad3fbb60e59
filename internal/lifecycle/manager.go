// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package lifecycle reference counts runtime initialization across sessions.
//
// The runtime must be initialized exactly once while any session exists and
// shut down exactly once when the last session goes away, whatever order
// sessions are created and closed in.
package lifecycle

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/gogpu/vroverlay/internal/logging"
	"github.com/gogpu/vroverlay/vr"
)

var (
	// ErrDeviceNotFound is returned when no head-mounted display is present.
	ErrDeviceNotFound = errors.New("vroverlay: device not found")

	// ErrRuntimeInitFailed is returned when runtime initialization fails.
	ErrRuntimeInitFailed = errors.New("vroverlay: runtime init failed")

	// errRetired is returned by Acquire on a Manager dropped from the
	// registry after its last Release.
	errRetired = errors.New("lifecycle: manager retired")
)

// Manager counts the sessions sharing one runtime.
type Manager struct {
	mu    sync.Mutex
	rt    vr.Runtime
	count int

	registered bool // held in the registry by For
	retired    bool // removed from the registry; For hands out a new one
}

// NewManager creates a Manager for rt with no sessions.
func NewManager(rt vr.Runtime) *Manager {
	return &Manager{rt: rt}
}

// Acquire registers a new session.
//
// When no session exists the runtime is initialized first. bind then runs
// with the lock held, so it may resolve capabilities without racing another
// session's initialize or shutdown. If bind fails the count is unchanged and,
// when this call performed the initialize, the runtime is shut down again.
//
// initialized reports whether this call performed the initialize; token is
// only meaningful in that case.
func (m *Manager) Acquire(bind func() error) (token vr.Token, initialized bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.retired {
		return 0, false, errRetired
	}
	if !m.rt.IsHMDPresent() {
		return 0, false, ErrDeviceNotFound
	}

	if m.count == 0 {
		token, err = m.rt.Init(vr.ApplicationOverlay)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %w", ErrRuntimeInitFailed, vr.Wrap("VR_Init", err))
		}
		initialized = true
		logging.Logger().Info("vroverlay: runtime initialized")
	}

	if bind != nil {
		if err := bind(); err != nil {
			if initialized {
				m.rt.Shutdown()
				logging.Logger().Info("vroverlay: runtime shut down after failed bind")
			}
			return 0, false, err
		}
	}

	m.count++
	return token, initialized, nil
}

// Release unregisters a session, shutting the runtime down when it was the
// last one. A Manager obtained from For is then dropped from the registry.
// Calling Release more times than Acquire succeeded panics.
func (m *Manager) Release() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.count == 0 {
		panic("lifecycle: Release without matching Acquire")
	}
	m.count--
	if m.count == 0 {
		m.rt.Shutdown()
		logging.Logger().Info("vroverlay: runtime shut down")
		if m.registered {
			unregister(m)
			m.retired = true
		}
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

var (
	registryMu sync.Mutex
	registry   = make(map[vr.Runtime]*Manager)
)

// For returns the process-wide Manager of rt, creating it on first use.
// The entry lives until its last session is released. rt must be a
// comparable value, such as a pointer; other runtimes are rejected with
// ErrRuntimeInitFailed.
func For(rt vr.Runtime) (*Manager, error) {
	if rt == nil {
		return nil, fmt.Errorf("%w: nil runtime", ErrRuntimeInitFailed)
	}
	if !reflect.ValueOf(rt).Comparable() {
		return nil, fmt.Errorf("%w: runtime of type %T is not comparable", ErrRuntimeInitFailed, rt)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	m, ok := registry[rt]
	if !ok {
		m = NewManager(rt)
		m.registered = true
		registry[rt] = m
	}
	return m, nil
}

// Join acquires a session on the registered Manager of rt. See For and
// Acquire.
func Join(rt vr.Runtime, bind func() error) (m *Manager, token vr.Token, initialized bool, err error) {
	for {
		m, err = For(rt)
		if err != nil {
			return nil, 0, false, err
		}
		token, initialized, err = m.Acquire(bind)
		if !errors.Is(err, errRetired) {
			return m, token, initialized, err
		}
	}
}

// unregister drops m from the registry. Called with m.mu held.
func unregister(m *Manager) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registry[m.rt] == m {
		delete(registry, m.rt)
	}
}

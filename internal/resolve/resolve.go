// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package resolve looks up typed runtime capabilities by interface version.
package resolve

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gogpu/vroverlay/vr"
)

var (
	// ErrInterfaceUnavailable is returned when the runtime has no capability
	// for the requested version, or returns one of the wrong type.
	ErrInterfaceUnavailable = errors.New("vroverlay: interface unavailable")

	// ErrInvalidConfiguration is returned for version strings the runtime
	// cannot accept.
	ErrInvalidConfiguration = errors.New("vroverlay: invalid configuration")
)

// Versions holds the interface version identifiers for one session.
type Versions struct {
	Overlay string
	System  string
	Input   string
}

// FromEnv reads the version identifiers from the environment, falling back
// to the defaults for unset or empty variables.
func FromEnv() (Versions, error) {
	var v Versions
	var err error
	if v.Overlay, err = Version(vr.OverlayVersionEnv, vr.DefaultOverlayVersion); err != nil {
		return Versions{}, err
	}
	if v.System, err = Version(vr.SystemVersionEnv, vr.DefaultSystemVersion); err != nil {
		return Versions{}, err
	}
	if v.Input, err = Version(vr.InputVersionEnv, vr.DefaultInputVersion); err != nil {
		return Versions{}, err
	}
	return v, nil
}

// Version returns the value of envKey, or def when it is unset or empty.
func Version(envKey, def string) (string, error) {
	value := def
	if s, ok := os.LookupEnv(envKey); ok && s != "" {
		value = s
	}
	if err := CheckString(envKey, value); err != nil {
		return "", err
	}
	return value, nil
}

// CheckString rejects strings with an embedded NUL, which cannot cross into
// the runtime's C string encoding.
func CheckString(name, s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %s contains a null byte", ErrInvalidConfiguration, name)
	}
	return nil
}

// Overlay resolves the mandatory overlay capability.
func Overlay(rt vr.Runtime, version string) (vr.OverlayAPI, error) {
	return lookup[vr.OverlayAPI](rt, version)
}

// System resolves the system capability.
func System(rt vr.Runtime, version string) (vr.SystemAPI, error) {
	return lookup[vr.SystemAPI](rt, version)
}

// Input resolves the action input capability.
func Input(rt vr.Runtime, version string) (vr.InputAPI, error) {
	return lookup[vr.InputAPI](rt, version)
}

func lookup[T any](rt vr.Runtime, version string) (T, error) {
	var zero T
	if err := CheckString("interface version", version); err != nil {
		return zero, err
	}

	raw, err := rt.GenericInterface(version)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrInterfaceUnavailable, version, vr.Wrap("VR_GetGenericInterface", err))
	}
	if raw == nil {
		return zero, fmt.Errorf("%w: %s: runtime returned nil", ErrInterfaceUnavailable, version)
	}
	api, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s: unexpected capability %T", ErrInterfaceUnavailable, version, raw)
	}
	return api, nil
}

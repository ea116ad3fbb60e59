// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vr defines the narrow capability contracts vroverlay needs from a
// tracking/compositor runtime.
//
// The runtime is reached through a handful of interfaces, one per
// capability the session actually calls:
//
//   - [Runtime]: hardware presence, initialize/shutdown, interface lookup
//   - [OverlayAPI]: overlay creation, placement and texture submission
//   - [SystemAPI]: tracked device classes, poses and legacy controller state
//   - [InputAPI]: the optional action-based input system
//
// A binding to a concrete native runtime implements these interfaces outside
// this module. Package [github.com/gogpu/vroverlay/vrsim] provides an
// in-process implementation used for tests and headless development.
//
// Status codes returned by the runtime are modeled as small integer types
// ([InitError], [OverlayError], [InputError]) that implement error, so they
// can be wrapped in a [NativeError] and inspected with errors.As.
package vr

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vrsim provides an in-process overlay runtime and a software GPU
// device.
//
// A [Runtime] implements vr.Runtime and hands out an [Overlay], a [System]
// and an [Input] capability that keep their state in memory. A [Device]
// implements texture.Device over plain byte slices with a configurable row
// pitch and base misalignment, so the upload pipeline can be exercised
// without a headset or a GPU:
//
//	rt := vrsim.New()
//	s, err := vroverlay.New(
//		vroverlay.WithRuntime(rt),
//		vroverlay.WithDevice(rt.Device()),
//	)
//
// Every capability counts the calls made to it and accepts injected
// failures. All types are safe for concurrent use.
package vrsim

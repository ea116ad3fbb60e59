// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package vroverlay manages overlays on a head-mounted display compositor.
//
// # Overview
//
// A [Session] connects to the tracking/compositor runtime, creates 2D
// overlay planes anchored in tracked space, pushes pixel content into them
// every frame and reads controller poses and button state. The runtime is
// initialized when the first session in the process is created and shut
// down when the last one is closed.
//
// # Quick Start
//
//	rt := vrsim.New() // or a native vr.Runtime binding
//	s, err := vroverlay.New(
//		vroverlay.WithRuntime(rt),
//		vroverlay.WithDevice(rt.Device()),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//
//	h, _ := s.CreateOverlay("com.example.hud", "HUD")
//	_ = s.SetWidth(h, 1.5)
//	_ = s.SetTransformRelativeToHMD(h, 2)
//	_ = s.Show(h)
//
//	// Every frame: a width*height*4 BGRA buffer.
//	_ = s.SetTextureFromGPU(h, frame, width, height)
//
// # Texture paths
//
// Content can be set from an image file on disk ([Session.SetTextureFromFile]),
// from a raw buffer copied by the runtime ([Session.SetTextureFromRaw]) or
// through a GPU texture the compositor imports by handle
// ([Session.SetTextureFromGPU]). The GPU path converts BGRA to RGBA while
// copying and reuses one device texture while the frame size is stable.
//
// # Controllers
//
// [Session.ControllerState] decodes legacy per-button polling. After
// [Session.ConfigureActions] the trigger and grip flags come from the action
// input system instead, falling back to legacy values whenever the action
// system has nothing active to report.
//
// # Concurrency
//
// New and Close may be called from any goroutine. All other Session methods
// must be called from one goroutine at a time; a Session is not safe for
// concurrent use.
//
// # Logging
//
// vroverlay is silent by default. Call [SetLogger] to receive diagnostics.
package vroverlay

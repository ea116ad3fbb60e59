// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package texture uploads CPU pixel buffers into a GPU texture that the
// compositor imports by native handle.
//
// An [Uploader] owns exactly one device texture. Each [Uploader.Update]
// reuses it while the frame size is unchanged and reallocates it when the
// size changes. Source pixels are BGRA; the texture is RGBA8, so every row
// is copied with red and blue swapped (see [SwapRedBlue]).
//
// Uploader is NOT safe for concurrent use. It is meant to be driven from the
// thread that owns the session.
package texture

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vroverlay

import (
	"log/slog"

	"github.com/gogpu/vroverlay/internal/logging"
)

// SetLogger configures the logger for vroverlay and all its sub-packages.
// By default, vroverlay produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use. Pass nil to disable logging
// (restore default silent behavior).
//
// Log levels used by vroverlay:
//   - [slog.LevelDebug]: texture reallocation, missing poses
//   - [slog.LevelInfo]: runtime initialize and shutdown
//   - [slog.LevelWarn]: optional capabilities missing, action refresh failures
//
// Example:
//
//	vroverlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by vroverlay.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}

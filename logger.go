package cairo

import (
	"log/slog"

	"github.com/gogpu/cairo/backend"
)

// SetLogger configures the logger for cairo and its backends.
// By default, cairo produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by cairo:
//   - [slog.LevelDebug]: backend selection, stream surface lifecycle
//   - [slog.LevelWarn]: unreleased handles collected, sink write failures
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	cairo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	backend.SetLogger(l)
}

// Logger returns the current logger used by cairo.
func Logger() *slog.Logger {
	return backend.Logger()
}

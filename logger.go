package citador

import (
	"log/slog"

	"github.com/citador/citador/internal/logging"
)

// SetLogger configures the logger for citador and all its sub-packages.
// By default, citador produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by citador:
//   - [slog.LevelDebug]: emoji missing from the atlas, rendered image sizes
//   - [slog.LevelInfo]: atlas loaded
//   - [slog.LevelWarn]: glyphs drawn as a placeholder box
//
// Example:
//
//	citador.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by citador.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}

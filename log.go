package skin

import (
	"log/slog"
	"os"
)

// skinLogLevel controls the log level for widget and scene logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var skinLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		skinLogLevel.Set(slog.LevelDebug)
	} else {
		skinLogLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return skinLogLevel.Level() <= slog.LevelDebug
}

// sceneLogger is the logger for focus and dispatch debugging.
var sceneLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: skinLogLevel})).With("component", "scene")

// widgetLogger is the logger for widget state changes and skin lookups.
var widgetLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: skinLogLevel})).With("component", "widget")

package main

import (
	"log/slog"
	"os"

	"github.com/tony-format/yamline/debug"
)

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level:       logLevel(),
	ReplaceAttr: dropTimeAndInfo,
}))

func logLevel() slog.Level {
	if debug.Lines() || debug.Classify() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// dropTimeAndInfo keeps log lines short: no timestamp, and no level for
// informational messages.
func dropTimeAndInfo(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.LevelKey:
		if a.Value.String() == slog.LevelInfo.String() {
			return slog.Attr{}
		}
	}
	return a
}

package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the console's structured logger. Level is a slog level
// name ("debug", "info", "warn", "error"); Format is "text" or "json".
type Logger struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"text"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// SlogLevel parses Level. Unknown names yield slog.LevelInfo.
func (c Logger) SlogLevel() slog.Level {
	var level slog.Level
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Handler builds the slog handler that writes to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.AddSource}
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

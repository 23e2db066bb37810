package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/khata/internal/config"
)

// New builds the process logger from the log settings: JSON when the format
// is "json", text otherwise.
func New(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level(cfg.Log.Level)}

	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func level(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}

	return l
}

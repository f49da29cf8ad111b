// Package obs provides the ambient structured logger shared by the CLI
// and pipeline glue. It follows the shape of the teacher's
// pkg/config.LoggingConfig (level/format/output), mapped onto
// log/slog's handler choice instead of a hand-rolled formatter.
package obs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config mirrors the fields of the teacher's LoggingConfig that matter
// for handler selection; MaxSize/MaxBackups/MaxAge (file rotation) are
// the CLI's concern, not the logger's, and are not modeled here.
type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	OutputFile string `yaml:"output_file,omitempty"`
}

// DefaultConfig returns an info-level, text-formatted, stderr logger.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "text"}
}

// New builds a *slog.Logger from Config. Format "json" selects
// slog.JSONHandler; anything else (including the empty string) selects
// slog.TextHandler, matching the teacher's permissive string-typed
// Format field.
func New(cfg Config) (*slog.Logger, error) {
	var out io.Writer = os.Stderr
	if cfg.OutputFile != "" {
		f, err := os.OpenFile(cfg.OutputFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
	}

	opts := &slog.HandlerOptions{Level: levelFromString(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler), nil
}

func levelFromString(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/schemargs/pkg/diag"
)

// New creates a configured application logger.
// A nil writer means Stderr, keeping Stdout free for parsed output.
// It standardizes common keys (e.g., "error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn", "error" (case-insensitive) to a
// slog level. "off" and "silent" return a level above every record.
func ParseLevel(s string) (slog.Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "off", "silent", "none":
		return slog.LevelError + 4, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// Reporter logs each diagnostic as one WARN record.
func Reporter(logger *slog.Logger) diag.Reporter {
	if logger == nil {
		return diag.Discard
	}
	return diag.ReporterFunc(func(d diag.Diagnostic) {
		attrs := []any{"stage", string(d.Stage), "code", string(d.Code)}
		if d.Flag != "" {
			attrs = append(attrs, "flag", d.Flag)
		}
		if d.Input != "" {
			attrs = append(attrs, "input", d.Input)
		}
		logger.Warn(d.Message, attrs...)
	})
}

// Package logs sets up the simulator's slog logger. Output goes to stderr or,
// when a directory is configured, to a rotating event.log in that directory.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"rent_a_car/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel maps the config level names onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// SetupLogger returns a JSON logger for o. The returned closer releases the
// log file and is a no-op for stderr.
func SetupLogger(o config.Log, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(o.Level)
	if err != nil {
		return nil, nil, err
	}
	handlerOpts := slog.HandlerOptions{Level: level}

	var writer io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if writer == nil {
		writer = os.Stderr
	}
	if o.Path != "" {
		logFile := &lumberjack.Logger{
			Filename:   filepath.Join(o.Path, "event.log"),
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		writer = logFile
		closer = logFile
	}

	return slog.New(slog.NewJSONHandler(writer, &handlerOpts)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// EventLogger turns contract event lines into structured records.
type EventLogger struct {
	Logger *slog.Logger
}

// Log splits "ci|by:x|admin:y" into kind=ci plus one attribute per field.
func (e EventLogger) Log(msg string) {
	parts := strings.Split(msg, "|")
	attrs := make([]any, 0, 2*len(parts))
	attrs = append(attrs, "kind", parts[0])
	for _, p := range parts[1:] {
		k, v, ok := strings.Cut(p, ":")
		if !ok {
			attrs = append(attrs, "field", p)
			continue
		}
		attrs = append(attrs, k, v)
	}
	e.Logger.Info("contract event", attrs...)
}

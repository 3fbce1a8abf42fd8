package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	levelVar   slog.LevelVar
	baseLogger *slog.Logger
)

func init() {
	levelVar.Set(slog.LevelWarn)
	baseLogger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar}))
}

// SetOutput redirects all log output. Standard output must never be
// used since it carries the result document.
func SetOutput(w io.Writer) {
	baseLogger = newLogger(w)
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "info":
		levelVar.Set(slog.LevelInfo)
	case "", "warn", "warning":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	default:
		return fmt.Errorf("Unknown log level %q", level)
	}
	return nil
}

func Debugf(format string, v ...any) {
	baseLogger.Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	baseLogger.Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	baseLogger.Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	baseLogger.Error(fmt.Sprintf(format, v...))
}

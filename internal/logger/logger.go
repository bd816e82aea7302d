package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type runIDKey struct{}

type implLogger struct {
	entry *logrus.Entry
}

// New creates a Logger writing to stdout.
// format is "json" or "text"; anything else falls back to text.
func New(level, format string) Logger {
	return NewWithOutput(os.Stdout, level, format)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(w io.Writer, level, format string) Logger {
	base := logrus.New()
	base.SetOutput(w)
	base.SetLevel(parseLevel(level))

	if strings.ToLower(format) == "json" {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	return &implLogger{entry: logrus.NewEntry(base)}
}

// parseLevel maps a config level to logrus, defaulting to info.
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithRunID stores a run id in ctx; every log line issued with that ctx carries it.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID returns the run id stored by WithRunID, or "".
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func (l *implLogger) withContext(ctx context.Context) *logrus.Entry {
	if id := RunID(ctx); id != "" {
		return l.entry.WithField("run_id", id)
	}
	return l.entry
}

func (l *implLogger) With(key string, value interface{}) Logger {
	return &implLogger{entry: l.entry.WithField(key, value)}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.withContext(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.withContext(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.withContext(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.withContext(ctx).Errorf(msg, args...)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...interface{}) {}
func (nopLogger) Info(context.Context, string, ...interface{})  {}
func (nopLogger) Warn(context.Context, string, ...interface{})  {}
func (nopLogger) Error(context.Context, string, ...interface{}) {}
func (n nopLogger) With(string, interface{}) Logger             { return n }

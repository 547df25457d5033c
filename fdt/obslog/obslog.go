// Package obslog provides the structured logging wrapper the fdt parser
// uses around Init/Teardown and error paths. Query operations never log,
// since queries are pure reads that must stay synchronization-free.
package obslog

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Logger gates output on Verbose/Quiet the way the teacher's app.Context
// gated println calls, but writes through log/slog instead.
type Logger struct {
	handler slog.Handler
	Verbose bool
	Quiet   bool
}

// New returns a Logger writing to os.Stderr. The handler passes debug
// records through, so whether they appear is decided by Verbose alone.
func New() *Logger {
	return &Logger{handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})}
}

// Discard returns a Logger that drops all output; the zero value of
// *Logger also behaves this way, so Discard exists only for readability
// at call sites.
func Discard() *Logger {
	return nil
}

// Session starts a new parse-session correlation scope, returning a UUID
// identifying this Init call in subsequent log lines.
func (l *Logger) Session() string {
	return uuid.NewString()
}

func (l *Logger) log(level slog.Level, session, msg string, args ...any) {
	if l == nil || l.Quiet {
		return
	}
	if level == slog.LevelDebug && !l.Verbose {
		return
	}
	logger := slog.New(l.handler)
	if session != "" {
		args = append([]any{"session", session}, args...)
	}
	logger.Log(context.Background(), level, msg, args...)
}

// Debug logs init/teardown progress detail (header fields, pre-scan
// counts, final node/property counts). Gated on Verbose.
func (l *Logger) Debug(session, msg string, args ...any) {
	l.log(slog.LevelDebug, session, msg, args...)
}

// Error logs a parse failure. Not gated on Verbose, but honors Quiet.
func (l *Logger) Error(session, msg string, args ...any) {
	l.log(slog.LevelError, session, msg, args...)
}

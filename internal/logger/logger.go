// Package logger writes structured logs to a rotated file and a colored
// console stream.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// DefaultMaxSize is the size in megabytes before the log file rotates
	DefaultMaxSize = 2
	// DefaultMaxBackups is the number of rotated files kept
	DefaultMaxBackups = 3
	// DefaultMaxAge is the number of days rotated files are kept
	DefaultMaxAge = 28

	// FileName is the log file name inside the log directory
	FileName = "vkbd.log"
)

// Interface is the logging surface the rest of the program depends on.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Close()
	Path() string
}

// Options configures a Logger.
type Options struct {
	Verbose    bool
	Dir        string // empty means the user cache directory
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Console    io.Writer // defaults to stderr
}

// PathFor returns the log file path the options resolve to.
func PathFor(opts Options) string {
	dir := opts.Dir
	if dir == "" {
		cache, err := os.UserCacheDir()
		if err != nil {
			cache = os.TempDir()
		}
		dir = filepath.Join(cache, "vkeyboard")
	}
	return filepath.Join(dir, FileName)
}

// Logger fans records out to the rotating file and the console.
type Logger struct {
	file    *slog.Logger
	console *slog.Logger
	rotator *lumberjack.Logger
	path    string
}

// New creates the log directory and returns a Logger writing into it.
func New(opts Options) (*Logger, error) {
	if opts.MaxSize == 0 {
		opts.MaxSize = DefaultMaxSize
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = DefaultMaxBackups
	}
	if opts.MaxAge == 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if opts.Console == nil {
		opts.Console = os.Stderr
	}

	path := PathFor(opts)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   opts.Compress,
	}

	return &Logger{
		file: slog.New(slog.NewTextHandler(rotator, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})),
		console: slog.New(&ConsoleHandler{writer: opts.Console, verbose: opts.Verbose}),
		rotator: rotator,
		path:    path,
	}, nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() {
	if l.rotator == nil {
		return
	}
	if err := l.rotator.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: failed to close log file: %v\n", err)
	}
}

// Path returns the log file path.
func (l *Logger) Path() string { return l.path }

func (l *Logger) Debug(msg string, args ...any) {
	l.file.Debug(msg, args...)
	l.console.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.file.Info(msg, args...)
	l.console.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.file.Warn(msg, args...)
	l.console.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.file.Error(msg, args...)
	l.console.Error(msg, args...)
}

// ConsoleHandler prints short colored lines without timestamps. Debug
// records are dropped unless verbose is set.
type ConsoleHandler struct {
	writer  io.Writer
	verbose bool
}

// NewConsoleHandler returns a handler writing to w.
func NewConsoleHandler(w io.Writer, verbose bool) *ConsoleHandler {
	return &ConsoleHandler{writer: w, verbose: verbose}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.verbose || level > slog.LevelDebug
}

func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var prefix string
	var c *color.Color

	switch {
	case r.Level >= slog.LevelError:
		prefix, c = "ERROR: ", color.New(color.FgRed)
	case r.Level >= slog.LevelWarn:
		prefix, c = "WARNING: ", color.New(color.FgYellow)
	case r.Level < slog.LevelInfo:
		prefix, c = "VERBOSE: ", color.New(color.FgCyan)
	}

	msg := r.Message
	if r.NumAttrs() > 0 {
		attrs := make([]string, 0, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			attrs = append(attrs, fmt.Sprintf("%s=%v", a.Key, a.Value))
			return true
		})
		msg = msg + " " + strings.Join(attrs, " ")
	}

	// console write errors are not worth surfacing
	if c != nil {
		_, _ = c.Fprintf(h.writer, "%s%s\n", prefix, msg)
		return nil
	}
	_, _ = fmt.Fprintf(h.writer, "%s\n", msg)
	return nil
}

func (h *ConsoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *ConsoleHandler) WithGroup(_ string) slog.Handler { return h }

// Nop discards everything. Useful for tests and headless commands.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
func (Nop) Close()               {}
func (Nop) Path() string         { return "" }

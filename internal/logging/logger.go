package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/domainlens-cli/internal/config"
	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with key/value convenience methods.
type Logger struct {
	zl     zerolog.Logger
	fields map[string]interface{}
	closer io.Closer
}

// Options configures a logger built by New.
type Options struct {
	Level  string // debug|info|warn|error; unparsable values fall back to warn
	Format string // console|json
	Output string // stderr|stdout|<file path>
}

var global = Nop()

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), fields: map[string]interface{}{}}
}

// New creates a logger from options.
func New(opt Options) (*Logger, error) {
	level, err := zerolog.ParseLevel(opt.Level)
	if err != nil || opt.Level == "" {
		level = zerolog.WarnLevel
	}

	var (
		out    io.Writer
		closer io.Closer
	)
	switch opt.Output {
	case "stderr", "":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		if err := os.MkdirAll(filepath.Dir(opt.Output), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(opt.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	}
	if opt.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	l := NewWithWriter(out, level)
	l.closer = closer
	return l, nil
}

// NewFromConfig creates a logger from the log_* keys of the global config.
func NewFromConfig(c config.Global) (*Logger, error) {
	return New(Options{Level: c.LogLevel, Format: c.LogFormat, Output: c.LogOutput})
}

// Close releases the log file opened by New, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// NewWithWriter creates a logger writing JSON lines to w.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl, fields: map[string]interface{}{}}
}

// SetGlobal replaces the package-level logger.
func SetGlobal(l *Logger) {
	if l == nil {
		l = Nop()
	}
	global = l
}

// Global returns the package-level logger.
func Global() *Logger { return global }

// With returns a child logger carrying additional key/value fields.
// The child does not own the parent's log file.
func (l *Logger) With(fields ...interface{}) *Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields)/2)
	for k, v := range l.fields {
		merged[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		if k, ok := fields[i].(string); ok {
			merged[k] = fields[i+1]
		}
	}
	return &Logger{zl: l.zl, fields: merged}
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.emit(l.zl.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.emit(l.zl.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.emit(l.zl.Warn(), msg, fields) }

func (l *Logger) emit(e *zerolog.Event, msg string, fields []interface{}) {
	if e == nil {
		return
	}
	for k, v := range l.fields {
		e.Interface(k, v)
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if err, isErr := fields[i+1].(error); isErr {
			e.Str(key, err.Error())
			continue
		}
		e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}

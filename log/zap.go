package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap logger so packages only import this package for logging.
type Logger struct {
	*zap.Logger
}

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Stringer = zap.Stringer
)

// ErrorField returns the field used to attach an error to a log entry.
func ErrorField(err error) Field {
	return zap.Error(err)
}

var defaultLogger = &Logger{zap.NewNop()}

// Default returns the process wide logger. It is a no-op logger until
// ResetDefault is called.
func Default() *Logger {
	return defaultLogger
}

// ResetDefault replaces the process wide logger.
func ResetDefault(l *Logger) {
	defaultLogger = l
}

// Named returns a child logger with the given name segment.
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.Logger.Named(name)}
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{l.Logger.With(fields...)}
}

// New creates a logger for the given level (zap level names) and format
// ("text" or "json"). Output goes to stderr unless paths are given.
func New(level, format string, paths ...string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "text", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	if len(paths) > 0 {
		cfg.OutputPaths = paths
		cfg.ErrorOutputPaths = paths
	}

	z, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return &Logger{z}, nil
}

// NewFromCore is used by tests to plug in an observer core.
func NewFromCore(core zapcore.Core) *Logger {
	return &Logger{zap.New(core)}
}

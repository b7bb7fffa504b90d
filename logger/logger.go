package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

const formatPretty = "pretty"

// Logger wraps zerolog.Logger with the name of the component that logs.
type Logger struct {
	logger    zerolog.Logger
	component string
}

// New creates a logger writing to the output named in cfg.
func New(cfg *Config, component string) *Logger {
	return NewWithWriter(cfg, component, outputWriter(cfg.Output))
}

// NewWithWriter creates a logger writing to w. Format and level come from
// cfg; an unknown level falls back to info.
func NewWithWriter(cfg *Config, component string, w io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if f := strings.ToLower(cfg.Format); f == "console" || f == formatPretty {
		zl = newConsoleLogger(cfg, component, w)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(level)

	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}
	if component != "" {
		zl = zl.With().Str(FieldComponent, component).Logger()
	}
	return &Logger{logger: zl, component: component}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// Component returns the component name the logger is tagged with.
func (l *Logger) Component() string { return l.component }

// WithContext returns a logger enriched with the trace and span IDs of the
// OpenTelemetry span carried by ctx, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	zl := l.logger.With().
		Str(FieldTraceID, sc.TraceID().String()).
		Str(FieldSpanID, sc.SpanID().String()).
		Logger()
	return &Logger{logger: zl, component: l.component}
}

// WithComponent returns a logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{
		logger:    l.logger.With().Str(FieldComponent, name).Logger(),
		component: name,
	}
}

// WithFields returns a logger with additional fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	zc := l.logger.With()
	for k, v := range fields {
		zc = zc.Interface(k, v)
	}
	return &Logger{logger: zc.Logger(), component: l.component}
}

// WithError returns a logger with an error field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		logger:    l.logger.With().Err(err).Logger(),
		component: l.component,
	}
}

// GetLogger returns the underlying zerolog.Logger.
func (l *Logger) GetLogger() zerolog.Logger {
	return l.logger
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return level >= l.logger.GetLevel() && level >= zerolog.GlobalLevel()
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	write(l.logger.Debug(), msg, fields)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	write(l.logger.Info(), msg, fields)
}

func (l *Logger) Warn(msg string, fields ...map[string]any) {
	write(l.logger.Warn(), msg, fields)
}

func (l *Logger) Error(msg string, fields ...map[string]any) {
	write(l.logger.Error(), msg, fields)
}

// --- Global logger ---

var globalLogger atomic.Pointer[Logger]

// Init replaces the global logger with one built from cfg.
func Init(cfg Config) {
	cfg.ApplyDefaults()
	SetGlobalLogger(New(&cfg, ""))
}

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) { globalLogger.Store(l) }

// GetGlobalLogger returns the global logger, creating the default one if
// needed.
func GetGlobalLogger() *Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	cfg := Config{}
	cfg.ApplyDefaults()
	globalLogger.CompareAndSwap(nil, New(&cfg, ""))
	return globalLogger.Load()
}

func Debug(msg string, fields ...map[string]any) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...map[string]any) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...map[string]any) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...map[string]any) {
	GetGlobalLogger().Error(msg, fields...)
}

// WithContext returns a context-enriched logger from the global logger.
func WithContext(ctx context.Context) *Logger {
	return GetGlobalLogger().WithContext(ctx)
}

// --- internal helpers ---

func write(event *zerolog.Event, msg string, fields []map[string]any) {
	for _, fm := range fields {
		for k, v := range fm {
			event.Interface(k, v)
		}
	}
	event.Msg(msg)
}

func outputWriter(output string) io.Writer {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}

var levelTags = map[string]struct{ tag, color string }{
	"TRACE": {"[TRC]", "\033[37m"},
	"DEBUG": {"[DBG]", "\033[36m"},
	"INFO":  {"[INF]", "\033[32m"},
	"WARN":  {"[WRN]", "\033[33m"},
	"ERROR": {"[ERR]", "\033[31m"},
}

func newConsoleLogger(cfg *Config, component string, w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    cfg.NoColor,
		FormatLevel: func(i any) string {
			lvl := strings.ToUpper(fmt.Sprintf("%s", i))
			t, ok := levelTags[lvl]
			if !ok {
				return fmt.Sprintf("[%s]", lvl)
			}
			if cfg.NoColor {
				return t.tag
			}
			return t.color + t.tag + "\033[0m"
		},
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i any) string {
			return fmt.Sprintf("%s:", i)
		},
	})
}

// Package log wraps logrus with the small structured-logging surface the
// rest of the application uses: a package-level logger configured once at
// startup, field helpers, and error-aware entries that pull kind/path/position
// metadata out of our error types.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"themed/internal/errors"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured logging key/value pair
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger together with an optional log file
type Logger struct {
	l    *logrus.Logger
	file *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput directs log output to the given writer
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.l.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON output
func WithJSON() Option {
	return func(l *Logger) {
		l.l.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile mirrors log output to the given file in addition to stdout
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", path, err)
			return
		}
		l.file = f
		l.l.SetOutput(io.MultiWriter(os.Stdout, f))
	}
}

// NewLogger creates a logger writing text to stdout unless options say otherwise
func NewLogger(opts ...Option) *Logger {
	ll := logrus.New()
	ll.SetOutput(os.Stdout)
	// Debug calls are gated by the package debug flag, not the logrus level.
	ll.SetLevel(logrus.DebugLevel)
	ll.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		DisableColors:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	ll.AddHook(callerHook{})

	l := &Logger{l: ll}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// SetDebug toggles debug logging globally
func SetDebug(debug bool) {
	isDebug = debug
}

// Info logs a message, formatting it when arguments are given
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		logger.l.Info(format)
		return
	}
	logger.l.Infof(format, args...)
}

// Debug logs a message when debug logging is enabled
func Debug(format string, args ...interface{}) {
	if !isDebug {
		return
	}
	if len(args) == 0 {
		logger.l.Debug(format)
		return
	}
	logger.l.Debugf(format, args...)
}

// Debugf logs a formatted message when debug logging is enabled
func Debugf(format string, args ...interface{}) {
	if !isDebug {
		return
	}
	logger.l.Debugf(format, args...)
}

// Warn logs a warning message, formatting it when arguments are given
func Warn(format string, args ...interface{}) {
	if len(args) == 0 {
		logger.l.Warn(format)
		return
	}
	logger.l.Warnf(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.l.Warnf(format, args...)
}

// Error logs an error message, formatting it when arguments are given
func Error(format string, args ...interface{}) {
	if len(args) == 0 {
		logger.l.Error(format)
		return
	}
	logger.l.Errorf(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.l.Errorf(format, args...)
}

// LogWithFields returns an entry on the package logger carrying the given fields
func LogWithFields(fields ...Field) *Entry {
	return &Entry{e: logger.l.WithFields(toLogrus(fields))}
}

// LogWithError returns an entry carrying the error plus any metadata our
// error types expose (kind, file path, config param, parse position, theme).
func LogWithError(err error) *Entry {
	if err == nil {
		return LogWithFields(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error())}

	var appErr *errors.ApplicationError
	if errors.As(err, &appErr) {
		fields = append(fields, F("error_kind", int(appErr.Kind())))
	}
	var fileErr *errors.FileError
	if errors.As(err, &fileErr) {
		fields = append(fields, F("error_kind", int(fileErr.Kind())), F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) {
		fields = append(fields, F("error_kind", int(configErr.Kind())), F("param", configErr.Param()))
	}
	var parseErr *errors.ParseError
	if errors.As(err, &parseErr) {
		fields = append(fields,
			F("error_kind", int(parseErr.Kind())),
			F("source", parseErr.Source()),
			F("line", parseErr.Line()),
			F("col", parseErr.Col()))
	}
	var themeErr *errors.ThemeError
	if errors.As(err, &themeErr) {
		fields = append(fields, F("error_kind", int(themeErr.Kind())), F("theme", themeErr.ThemeName()))
	}

	return LogWithFields(fields...)
}

// LogError logs an error with a message in one call
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

// Info logs a message on this logger
func (l *Logger) Info(args ...interface{}) {
	l.l.Info(args...)
}

// Infof logs a formatted message on this logger
func (l *Logger) Infof(format string, args ...interface{}) {
	l.l.Infof(format, args...)
}

// Debug logs a message on this logger when debug logging is enabled
func (l *Logger) Debug(args ...interface{}) {
	if !isDebug {
		return
	}
	l.l.Debug(args...)
}

// Debugf logs a formatted message on this logger when debug logging is enabled
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !isDebug {
		return
	}
	l.l.Debugf(format, args...)
}

// Warn logs a warning on this logger
func (l *Logger) Warn(args ...interface{}) {
	l.l.Warn(args...)
}

// Warnf logs a formatted warning on this logger
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.l.Warnf(format, args...)
}

// Error logs an error on this logger
func (l *Logger) Error(args ...interface{}) {
	l.l.Error(args...)
}

// Errorf logs a formatted error on this logger
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.l.Errorf(format, args...)
}

// With returns an entry on this logger carrying the given fields
func (l *Logger) With(fields ...Field) *Entry {
	return &Entry{e: l.l.WithFields(toLogrus(fields))}
}

// WithContext returns an entry carrying the given context
func (l *Logger) WithContext(ctx context.Context) *Entry {
	return &Entry{e: l.l.WithContext(ctx)}
}

// Entry is a logrus entry with our Field helpers attached
type Entry struct {
	e *logrus.Entry
}

// With returns a new entry with additional fields
func (en *Entry) With(fields ...Field) *Entry {
	return &Entry{e: en.e.WithFields(toLogrus(fields))}
}

// Info logs the entry at info level
func (en *Entry) Info(args ...interface{}) {
	en.e.Info(args...)
}

// Infof logs the entry at info level with formatting
func (en *Entry) Infof(format string, args ...interface{}) {
	en.e.Infof(format, args...)
}

// Debug logs the entry at debug level when debug logging is enabled
func (en *Entry) Debug(args ...interface{}) {
	if !isDebug {
		return
	}
	en.e.Debug(args...)
}

// Debugf logs the entry at debug level with formatting when debug logging is enabled
func (en *Entry) Debugf(format string, args ...interface{}) {
	if !isDebug {
		return
	}
	en.e.Debugf(format, args...)
}

// Warn logs the entry at warn level
func (en *Entry) Warn(args ...interface{}) {
	en.e.Warn(args...)
}

// Warnf logs the entry at warn level with formatting
func (en *Entry) Warnf(format string, args ...interface{}) {
	en.e.Warnf(format, args...)
}

// Error logs the entry at error level
func (en *Entry) Error(args ...interface{}) {
	en.e.Error(args...)
}

// Errorf logs the entry at error level with formatting
func (en *Entry) Errorf(format string, args ...interface{}) {
	en.e.Errorf(format, args...)
}

func toLogrus(fields []Field) logrus.Fields {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return lf
}

// callerHook attaches the file:line of the logging call site. logrus's own
// caller reporting would point at the wrappers in this file instead.
type callerHook struct{}

// Levels implements logrus.Hook
func (callerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook
func (callerHook) Fire(e *logrus.Entry) error {
	for i := 4; i < 24; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if strings.Contains(file, "sirupsen/logrus") {
			continue
		}
		if strings.HasSuffix(file, "internal/log/logger.go") {
			continue
		}
		e.Data["caller"] = fmt.Sprintf("%s:%d", filepath.Base(file), line)
		break
	}
	return nil
}

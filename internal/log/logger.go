// Package log is a thin leveled logger over logrus. The TUI owns the
// terminal, so output normally goes to a file configured at startup.
package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var (
	level  atomic.Uint32
	logger = NewLogger()
)

func init() {
	level.Store(uint32(logrus.InfoLevel))
}

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*logrus.Logger)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

type Logger struct {
	entry *logrus.Entry
}

func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(lineFormatter{})
	// Filtering happens in enabled so SetDebug reaches loggers created earlier.
	base.SetLevel(logrus.TraceLevel)
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// SetDebug toggles debug output for every logger.
func SetDebug(debug bool) {
	if debug {
		level.Store(uint32(logrus.DebugLevel))
		return
	}
	level.Store(uint32(logrus.InfoLevel))
}

// SetLevel sets the minimum level by name (debug, info, warn, error).
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	level.Store(uint32(lvl))
	return nil
}

// SetOutput redirects the package-level logger.
func SetOutput(w io.Writer) {
	logger.entry.Logger.SetOutput(w)
}

func enabled(lvl logrus.Level) bool {
	return lvl <= logrus.Level(level.Load())
}

// With returns a child logger carrying fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) log(lvl logrus.Level, msg string) {
	if !enabled(lvl) {
		return
	}
	l.entry.Log(lvl, msg)
}

func (l *Logger) Debug(msg string)                          { l.log(logrus.DebugLevel, msg) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.log(logrus.DebugLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Info(msg string)                           { l.log(logrus.InfoLevel, msg) }
func (l *Logger) Infof(format string, args ...interface{})  { l.log(logrus.InfoLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Warn(msg string)                           { l.log(logrus.WarnLevel, msg) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.log(logrus.WarnLevel, fmt.Sprintf(format, args...)) }
func (l *Logger) Error(msg string)                          { l.log(logrus.ErrorLevel, msg) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.log(logrus.ErrorLevel, fmt.Sprintf(format, args...)) }

// LogWithFields returns the package-level logger with fields attached.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if len(args) == 0 {
		logger.Debug(msg)
		return
	}
	logger.Debugf(msg+": %v", args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Error logs an error message with arguments
func Error(msg string, args ...interface{}) {
	if len(args) == 0 {
		logger.Error(msg)
		return
	}
	logger.Errorf(msg+": %v", args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warn logs a warning message with arguments
func Warn(msg string, args ...interface{}) {
	if len(args) == 0 {
		logger.Warn(msg)
		return
	}
	logger.Warnf(msg+": %v", args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// lineFormatter renders "[time] LEVEL: message key=value ...".
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	name := strings.ToUpper(e.Level.String())
	if e.Level == logrus.WarnLevel {
		name = "WARN"
	}
	fmt.Fprintf(&b, "[%s] %s: %s", e.Time.Format("2006-01-02 15:04:05"), name, e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// Package debug provides the logging and timing capabilities injected into
// an audio effect instance. Nothing here may be called from the audio path.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging capability handed to an instance at construction.
// It is a value dependency, not a process-wide singleton, so tests can
// substitute a capturing logger.
type Logger struct {
	mu          sync.Mutex
	output      io.Writer
	level       LogLevel
	prefix      string
	includeTime bool
}

// New creates a logger writing to output with the given prefix.
func New(output io.Writer, prefix string) *Logger {
	return &Logger{
		output:      output,
		prefix:      prefix,
		level:       LogLevelInfo,
		includeTime: true,
	}
}

// NewStderr creates a logger writing to standard error.
func NewStderr(prefix string) *Logger {
	return New(os.Stderr, prefix)
}

// Discard creates a logger that drops everything.
func Discard() *Logger {
	l := New(io.Discard, "")
	l.level = LogLevelOff
	return l
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput sets the output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	var sb strings.Builder
	if l.includeTime {
		sb.WriteString(time.Now().Format("2006-01-02 15:04:05.000 "))
	}
	sb.WriteString(fmt.Sprintf("[%s] ", level.String()))
	if l.prefix != "" {
		sb.WriteString(fmt.Sprintf("[%s] ", l.prefix))
	}

	msg := fmt.Sprintf(format, args...)
	sb.WriteString(msg)
	if !strings.HasSuffix(msg, "\n") {
		sb.WriteString("\n")
	}

	l.output.Write([]byte(sb.String()))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

// Capture is a logger backed by an in-memory buffer, for tests that assert
// on diagnostics.
type Capture struct {
	*Logger

	mu  sync.Mutex
	buf strings.Builder
}

// NewCapture creates a capturing logger at debug level.
func NewCapture() *Capture {
	c := &Capture{}
	c.Logger = New(&captureWriter{c: c}, "")
	c.Logger.includeTime = false
	c.Logger.SetLevel(LogLevelDebug)
	return c
}

// String returns everything logged so far.
func (c *Capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Contains reports whether the captured log contains s.
func (c *Capture) Contains(s string) bool {
	return strings.Contains(c.String(), s)
}

type captureWriter struct {
	c *Capture
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.c.mu.Lock()
	defer w.c.mu.Unlock()
	return w.c.buf.Write(p)
}

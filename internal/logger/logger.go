package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level represents the logging level
type Level = logrus.Level

const (
	TRACE = logrus.TraceLevel
	DEBUG = logrus.DebugLevel
	INFO  = logrus.InfoLevel
	WARN  = logrus.WarnLevel
	ERROR = logrus.ErrorLevel
)

// Component represents the logging component
type Component string

const (
	ComponentApp        Component = "app"
	ComponentClient     Component = "client"
	ComponentFetch      Component = "fetch"
	ComponentFormat     Component = "format"
	ComponentCipher     Component = "cipher"
	ComponentDownloader Component = "downloader"
)

// Components lists every known component.
var Components = []Component{
	ComponentApp,
	ComponentClient,
	ComponentFetch,
	ComponentFormat,
	ComponentCipher,
	ComponentDownloader,
}

// Format represents the log output format
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatColor
)

// Config holds logger configuration
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer
	Components map[Component]bool
	ShowCaller bool
	Timestamp  bool
}

// DefaultConfig returns default logger configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  INFO,
		Format: FormatText,
		Output: os.Stderr,
		Components: map[Component]bool{
			ComponentApp:        true,
			ComponentClient:     false,
			ComponentFetch:      false,
			ComponentFormat:     true,
			ComponentCipher:     false,
			ComponentDownloader: false,
		},
		ShowCaller: false,
		Timestamp:  false,
	}
}

// Logger routes component log entries to a logrus backend.
type Logger struct {
	config *Config
	base   *logrus.Logger
	mu     sync.RWMutex
}

// New creates a new logger instance
func New(config *Config) *Logger {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Output == nil {
		config.Output = os.Stderr
	}
	if config.Components == nil {
		config.Components = make(map[Component]bool)
	}
	l := &Logger{config: config, base: logrus.New()}
	l.base.SetLevel(config.Level)
	l.base.SetOutput(config.Output)
	l.base.SetReportCaller(config.ShowCaller)
	l.base.SetFormatter(newFormatter(config.Format, config.Timestamp))
	return l
}

func newFormatter(format Format, timestamp bool) logrus.Formatter {
	switch format {
	case FormatJSON:
		return &logrus.JSONFormatter{DisableTimestamp: !timestamp}
	case FormatColor:
		return &logrus.TextFormatter{ForceColors: true, DisableTimestamp: !timestamp, FullTimestamp: timestamp}
	default:
		return &logrus.TextFormatter{DisableColors: true, DisableTimestamp: !timestamp, FullTimestamp: timestamp}
	}
}

// WithComponent creates a new logger instance for a specific component
func (l *Logger) WithComponent(component Component) *ComponentLogger {
	return &ComponentLogger{
		logger:    l,
		component: component,
	}
}

// SetLevel changes the logging level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Level = level
	l.base.SetLevel(level)
}

// SetFormat changes the log format
func (l *Logger) SetFormat(format Format) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Format = format
	l.base.SetFormatter(newFormatter(format, l.config.Timestamp))
}

// SetOutput changes the log output
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Output = w
	l.base.SetOutput(w)
}

// EnableComponent enables logging for a specific component
func (l *Logger) EnableComponent(component Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Components[component] = true
}

// DisableComponent disables logging for a specific component
func (l *Logger) DisableComponent(component Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.config.Components[component] = false
}

func (l *Logger) enabled(component Component) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config.Components[component]
}

// ComponentLogger provides component-specific logging. A nil *ComponentLogger discards everything.
type ComponentLogger struct {
	logger    *Logger
	component Component
	fields    logrus.Fields
}

// With returns a copy of the component logger that attaches fields to every entry.
func (cl *ComponentLogger) With(fields map[string]interface{}) *ComponentLogger {
	if cl == nil {
		return nil
	}
	merged := make(logrus.Fields, len(cl.fields)+len(fields))
	for k, v := range cl.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &ComponentLogger{logger: cl.logger, component: cl.component, fields: merged}
}

// Trace logs a trace message
func (cl *ComponentLogger) Trace(message string, fields ...map[string]interface{}) {
	cl.log(TRACE, message, fields...)
}

// Debug logs a debug message
func (cl *ComponentLogger) Debug(message string, fields ...map[string]interface{}) {
	cl.log(DEBUG, message, fields...)
}

// Info logs an info message
func (cl *ComponentLogger) Info(message string, fields ...map[string]interface{}) {
	cl.log(INFO, message, fields...)
}

// Warn logs a warning message
func (cl *ComponentLogger) Warn(message string, fields ...map[string]interface{}) {
	cl.log(WARN, message, fields...)
}

// Error logs an error message
func (cl *ComponentLogger) Error(message string, fields ...map[string]interface{}) {
	cl.log(ERROR, message, fields...)
}

func (cl *ComponentLogger) log(level Level, message string, fields ...map[string]interface{}) {
	if cl == nil {
		return
	}
	l := cl.logger
	if l == nil {
		l = globalLogger
	}
	if !l.enabled(cl.component) {
		return
	}
	entry := l.base.WithField("component", string(cl.component))
	if len(cl.fields) > 0 {
		entry = entry.WithFields(cl.fields)
	}
	if len(fields) > 0 && fields[0] != nil {
		entry = entry.WithFields(fields[0])
	}
	entry.Log(level, message)
}

// Global logger instance
var globalLogger = New(DefaultConfig())

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() *Logger {
	return globalLogger
}

// WithComponent returns a component logger bound to whatever the global logger
// is at the time each entry is written.
func WithComponent(component Component) *ComponentLogger {
	return &ComponentLogger{component: component}
}

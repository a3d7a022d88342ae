// Package s4log provides a simple logging abstraction for the mapfile and
// mapcache packages.
//
// By default a no-op logger discards all output. Callers who want output
// call SetLogger with their preferred implementation; NewZerologAdapter is
// provided for github.com/rs/zerolog, but any type implementing Logger
// works.
package s4log

import "sync"

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// F creates a Field with the given key and value.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger is the logging interface used by mapfile/mapcache.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

var (
	globalLogger Logger = &noopLogger{}
	mu           sync.RWMutex
)

// SetLogger sets the global logger. Pass nil to disable logging.
// Safe to call from multiple goroutines.
func SetLogger(l Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		globalLogger = &noopLogger{}
	} else {
		globalLogger = l
	}
}

// GetLogger returns the current global logger.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func Debug(msg string, fields ...Field) { GetLogger().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { GetLogger().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { GetLogger().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { GetLogger().Error(msg, fields...) }

type noopLogger struct{}

func (*noopLogger) Debug(string, ...Field) {}
func (*noopLogger) Info(string, ...Field)  {}
func (*noopLogger) Warn(string, ...Field)  {}
func (*noopLogger) Error(string, ...Field) {}

// Noop returns a Logger that discards everything.
func Noop() Logger {
	return &noopLogger{}
}

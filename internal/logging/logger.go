// Package logging is a small structured logging facade over zap. Callers pass
// a message plus a Fields map; output is one JSON object per line.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Fields map[string]interface{}

var (
	mu     sync.RWMutex
	logger = newLogger(zapcore.InfoLevel)
	// exit is replaced in tests.
	exit = os.Exit
)

func newLogger(level zapcore.Level) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "msg"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(os.Stdout), level)
	return zap.New(core)
}

// Init sets the minimum level from a name such as "debug", "info" or
// "error". Unknown names fall back to info.
func Init(level string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	SetLogger(newLogger(lvl))
}

// SetLogger replaces the underlying logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Sync flushes buffered output.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func toZap(fields Fields, err error) []zap.Field {
	out := make([]zap.Field, 0, len(fields)+1)
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	if err != nil {
		out = append(out, zap.Error(err))
	}
	return out
}

// Debug logs a debug message with optional fields.
func Debug(msg string, fields Fields) {
	current().Debug(msg, toZap(fields, nil)...)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	current().Info(msg, toZap(fields, nil)...)
}

// Warn logs a warning with optional fields.
func Warn(msg string, fields Fields) {
	current().Warn(msg, toZap(fields, nil)...)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	current().Error(msg, toZap(fields, err)...)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	l := current()
	l.Error(msg, toZap(fields, err)...)
	_ = l.Sync()
	exit(1)
}

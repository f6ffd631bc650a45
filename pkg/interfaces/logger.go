package interfaces

import "context"

// Logger is the leveled logging contract used throughout the build pipeline.
// The method set matches github.com/goliatone/go-logger, so hosts already on
// that package can supply their loggers directly.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers. Implementations may scope children
// per module or return one shared instance for every name.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for binding persistent structured
// fields. Supporting loggers return a child with the fields applied to every
// entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}

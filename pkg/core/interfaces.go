package core

// Logger interface for render progress and diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}

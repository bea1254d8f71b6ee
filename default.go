// FILE: logplus/default.go
package logplus

import "time"

// Global instance for package-level functions. Applications that want
// isolated or testable logging should hold their own Handler instead.
var defaultHandler = NewHandler()

// Default returns the process-wide handler instance.
func Default() *Handler {
	return defaultHandler
}

// Init starts the default handler.
func Init() error {
	return defaultHandler.Init()
}

// Shutdown gracefully stops the default handler, draining pending
// records.
func Shutdown() error {
	return defaultHandler.Shutdown()
}

// ApplyConfig applies a configuration to the default handler.
func ApplyConfig(cfg *Config) error {
	return defaultHandler.ApplyConfig(cfg)
}

// ApplyOverride applies key=value overrides to the default handler.
func ApplyOverride(overrides ...string) error {
	return defaultHandler.ApplyOverride(overrides...)
}

// SetLevel sets the default handler's level threshold.
func SetLevel(level int64) error {
	return defaultHandler.SetLevel(level)
}

// SetConsoleOutput enables or disables the default handler's console
// sink.
func SetConsoleOutput(enabled bool) error {
	return defaultHandler.SetConsoleOutput(enabled)
}

// SetFileOutput enables or disables the default handler's file sink.
func SetFileOutput(enabled bool) error {
	return defaultHandler.SetFileOutput(enabled)
}

// SetLogFile sets the default handler's log file from a full path.
func SetLogFile(path string) error {
	return defaultHandler.SetLogFile(path)
}

// SetFlushInterval sets the default handler's flush interval.
func SetFlushInterval(d time.Duration) error {
	return defaultHandler.SetFlushInterval(d)
}

// SetBufferThreshold sets the default handler's eager wake-up
// threshold.
func SetBufferThreshold(n int) error {
	return defaultHandler.SetBufferThreshold(n)
}

// Debug logs a message at debug level.
func Debug(args ...any) error {
	return defaultHandler.emit(LevelDebug, args)
}

// Info logs a message at info level.
func Info(args ...any) error {
	return defaultHandler.emit(LevelInfo, args)
}

// Warn logs a message at warning level.
func Warn(args ...any) error {
	return defaultHandler.emit(LevelWarn, args)
}

// Error logs a message at error level.
func Error(args ...any) error {
	return defaultHandler.emit(LevelError, args)
}

// Debugf logs a printf-style message at debug level.
func Debugf(format string, args ...any) error {
	return defaultHandler.emitf(LevelDebug, format, args)
}

// Infof logs a printf-style message at info level.
func Infof(format string, args ...any) error {
	return defaultHandler.emitf(LevelInfo, format, args)
}

// Warnf logs a printf-style message at warning level.
func Warnf(format string, args ...any) error {
	return defaultHandler.emitf(LevelWarn, format, args)
}

// Errorf logs a printf-style message at error level.
func Errorf(format string, args ...any) error {
	return defaultHandler.emitf(LevelError, format, args)
}

// LevelEnabled reports whether the default handler emits records at
// level.
func LevelEnabled(level int64) bool {
	return defaultHandler.LevelEnabled(level)
}

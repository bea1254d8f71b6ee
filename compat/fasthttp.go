// FILE: logplus/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/gallonchoi/logplus"
)

// FastHTTPAdapter wraps a logplus.Handler to implement fasthttp's
// Logger interface.
type FastHTTPAdapter struct {
	handler       *logplus.Handler
	defaultLevel  int64
	levelDetector func(string) int64 // detects log level from message content
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(h *logplus.Handler, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		handler:       h,
		defaultLevel:  logplus.LevelInfo,
		levelDetector: DetectLogLevel,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls.
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from
// message content.
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface.
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case logplus.LevelDebug:
		_ = a.handler.Debug("fasthttp:", msg)
	case logplus.LevelWarn:
		_ = a.handler.Warn("fasthttp:", msg)
	case logplus.LevelError:
		_ = a.handler.Error("fasthttp:", msg)
	default:
		_ = a.handler.Info("fasthttp:", msg)
	}
}

// DetectLogLevel attempts to detect log level from message content.
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return logplus.LevelError
	}

	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return logplus.LevelWarn
	}

	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return logplus.LevelDebug
	}

	return logplus.LevelInfo
}

// FILE: logplus/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/gallonchoi/logplus"
)

// GnetAdapter wraps a logplus.Handler to implement gnet's
// logging.Logger interface.
type GnetAdapter struct {
	handler      *logplus.Handler
	fatalHandler func(msg string) // customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter.
func NewGnetAdapter(h *logplus.Handler, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		handler: h,
		fatalHandler: func(msg string) {
			os.Exit(1) // default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting.
func (a *GnetAdapter) Debugf(format string, args ...any) {
	_ = a.handler.Debugf("gnet: "+format, args...)
}

// Infof logs at info level with printf-style formatting.
func (a *GnetAdapter) Infof(format string, args ...any) {
	_ = a.handler.Infof("gnet: "+format, args...)
}

// Warnf logs at warn level with printf-style formatting.
func (a *GnetAdapter) Warnf(format string, args ...any) {
	_ = a.handler.Warnf("gnet: "+format, args...)
}

// Errorf logs at error level with printf-style formatting.
func (a *GnetAdapter) Errorf(format string, args ...any) {
	_ = a.handler.Errorf("gnet: "+format, args...)
}

// Fatalf logs at error level and triggers the fatal handler. The
// handler is shut down first so the message is on disk before exit.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_ = a.handler.Errorf("gnet: %s", msg)
	_ = a.handler.Shutdown()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

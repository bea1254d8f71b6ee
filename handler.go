// FILE: logplus/handler.go
package logplus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Errors returned for caller bugs. Environment failures (directory
// creation, file open) are wrapped dynamically instead.
var (
	// ErrNotStarted is returned when logging before Init.
	ErrNotStarted = errors.New("logplus: handler not initialized, call Init first")
	// ErrRunning is returned when mutating configuration after Init.
	ErrRunning = errors.New("logplus: configuration change not permitted while running")
	// ErrShutdown is returned when using a handler after Shutdown.
	ErrShutdown = errors.New("logplus: handler is shut down")
)

// Handler is an asynchronous logging engine. Producers render and
// enqueue records; a dedicated worker goroutine batches them and
// writes to the enabled sinks without blocking callers on I/O.
//
// Any number of independently configured handlers may coexist; each
// owns its worker, buffers and locks. A process-wide default instance
// lives in default.go.
type Handler struct {
	currentConfig atomic.Value // stores *Config; frozen at Init
	state         State
	initMu        sync.Mutex // serializes Init, Shutdown and setters

	// Buffer pair. Exactly one slice is the intake at any instant; the
	// worker exchanges the slice headers under mu, an O(1) swap that
	// transfers ownership of the queued entries without copying them.
	mu     sync.Mutex
	intake []renderedEntry
	drain  []renderedEntry

	wake  chan struct{} // eager wake-up, capacity 1
	ready chan struct{} // closed by the worker's first iteration
	done  chan struct{} // closed when the worker returns

	file    *fileSink
	console io.Writer
}

// NewHandler creates a handler with default settings. Configure it
// with the setters or ApplyConfig, then call Init.
func NewHandler() *Handler {
	h := &Handler{
		wake:  make(chan struct{}, 1),
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
	h.currentConfig.Store(DefaultConfig())
	h.state.Stamp.Store("")
	return h
}

// Init freezes the configuration, prepares the enabled sinks and
// spawns the worker goroutine. Not idempotent: a second call returns
// ErrRunning. Must complete before any Log call.
func (h *Handler) Init() error {
	h.initMu.Lock()
	defer h.initMu.Unlock()

	if h.state.ShutdownCalled.Load() {
		return ErrShutdown
	}
	if h.state.Running.Load() {
		return ErrRunning
	}

	cfg := h.getConfig().Clone()
	if err := cfg.validate(); err != nil {
		return err
	}

	if cfg.EnableFile {
		sink, err := openFileSink(cfg)
		if err != nil {
			return err
		}
		h.file = sink
	}
	h.console = consoleWriter(cfg)

	h.intake = make([]renderedEntry, 0, cfg.BufferThreshold)
	h.drain = make([]renderedEntry, 0, cfg.BufferThreshold)

	// Fresh timestamp before the first record can be rendered.
	h.refreshStamp(cfg)

	// Publish the frozen configuration, then go live. The worker and
	// the producers read it lock-free from here on.
	h.currentConfig.Store(cfg)
	h.state.Running.Store(true)

	go h.run(cfg)

	return nil
}

// Log submits one fully-rendered message with its call-site metadata.
// Records below the configured threshold are rejected before any lock
// or allocation. Returns ErrNotStarted before Init and ErrShutdown
// once shutdown has begun; both are caller bugs, never silent drops.
func (h *Handler) Log(level int64, message, file, function string, line int) error {
	cfg := h.getConfig()
	if level < cfg.Level {
		return nil
	}

	if !h.state.Running.Load() {
		return ErrNotStarted
	}
	if h.state.ShutdownCalled.Load() {
		return ErrShutdown
	}

	// Render outside the lock so producers do not serialize on
	// formatting work.
	entry := render(record{
		level:    level,
		message:  message,
		file:     file,
		function: function,
		line:     line,
		stamp:    h.currentStamp(),
	})

	h.mu.Lock()
	if h.state.StopRequested.Load() {
		// The worker may already have made its exit decision; anything
		// appended past this point could be lost.
		h.mu.Unlock()
		return ErrShutdown
	}
	h.intake = append(h.intake, entry)
	notify := int64(len(h.intake)) >= cfg.BufferThreshold
	h.mu.Unlock()

	if notify {
		h.notify()
	}
	return nil
}

// Debug logs a message at debug level.
func (h *Handler) Debug(args ...any) error {
	return h.emit(LevelDebug, args)
}

// Info logs a message at info level.
func (h *Handler) Info(args ...any) error {
	return h.emit(LevelInfo, args)
}

// Warn logs a message at warning level.
func (h *Handler) Warn(args ...any) error {
	return h.emit(LevelWarn, args)
}

// Error logs a message at error level.
func (h *Handler) Error(args ...any) error {
	return h.emit(LevelError, args)
}

// Debugf logs a printf-style message at debug level.
func (h *Handler) Debugf(format string, args ...any) error {
	return h.emitf(LevelDebug, format, args)
}

// Infof logs a printf-style message at info level.
func (h *Handler) Infof(format string, args ...any) error {
	return h.emitf(LevelInfo, format, args)
}

// Warnf logs a printf-style message at warning level.
func (h *Handler) Warnf(format string, args ...any) error {
	return h.emitf(LevelWarn, format, args)
}

// Errorf logs a printf-style message at error level.
func (h *Handler) Errorf(format string, args ...any) error {
	return h.emitf(LevelError, format, args)
}

// emit builds the message and call-site metadata for the leveled
// methods. The level check runs before any formatting so a filtered
// call costs a single atomic load.
func (h *Handler) emit(level int64, args []any) error {
	if level < h.getConfig().Level {
		return nil
	}
	file, function, line := callSite(2)
	return h.Log(level, renderMessage(args), file, function, line)
}

func (h *Handler) emitf(level int64, format string, args []any) error {
	if level < h.getConfig().Level {
		return nil
	}
	file, function, line := callSite(2)
	return h.Log(level, fmt.Sprintf(format, args...), file, function, line)
}

// LevelEnabled reports whether records at level pass the configured
// threshold.
func (h *Handler) LevelEnabled(level int64) bool {
	return level >= h.getConfig().Level
}

// Shutdown requests termination and blocks until the worker has
// drained every record accepted before the request, then closes the
// file sink. Cooperative only: the worker, not the requester, decides
// when it is safe to stop. Safe to call more than once.
func (h *Handler) Shutdown() error {
	if !h.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	h.initMu.Lock()
	defer h.initMu.Unlock()

	if !h.state.Running.Load() {
		return nil // never started, no worker to join
	}

	// Never request shutdown from a worker that has not signaled
	// readiness; racing a thread that never started can hang.
	<-h.ready

	// Setting the stop flag under the buffer lock orders it against
	// producer appends: an append that did not observe the flag is
	// guaranteed to land before the worker's exit decision.
	h.mu.Lock()
	h.state.StopRequested.Store(true)
	h.mu.Unlock()
	h.notify()

	<-h.done

	var finalErr error
	if h.file != nil {
		finalErr = h.file.close()
		h.file = nil
	}
	return finalErr
}

// ApplyConfig replaces the pending configuration. Rejected once the
// handler is running.
func (h *Handler) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	h.initMu.Lock()
	defer h.initMu.Unlock()

	if err := h.mutable(); err != nil {
		return err
	}
	h.currentConfig.Store(cfg.Clone())
	return nil
}

// GetConfig returns a copy of the current configuration.
func (h *Handler) GetConfig() *Config {
	return h.getConfig().Clone()
}

// SetLevel sets the log level threshold.
func (h *Handler) SetLevel(level int64) error {
	return h.updateConfig(func(cfg *Config) {
		cfg.Level = level
	})
}

// SetConsoleOutput enables or disables the console sink.
func (h *Handler) SetConsoleOutput(enabled bool) error {
	return h.updateConfig(func(cfg *Config) {
		cfg.EnableConsole = enabled
	})
}

// SetFileOutput enables or disables the file sink. Disabling closes an
// open stream immediately, under the same lock as the configuration
// change, so the worker can never observe a half-closed stream.
func (h *Handler) SetFileOutput(enabled bool) error {
	h.initMu.Lock()
	defer h.initMu.Unlock()

	if err := h.mutable(); err != nil {
		return err
	}

	var closeErr error
	if !enabled && h.file != nil {
		closeErr = h.file.close()
		h.file = nil
	}

	cfg := h.getConfig().Clone()
	cfg.EnableFile = enabled
	h.currentConfig.Store(cfg)
	return closeErr
}

// SetLogFile sets the log file from a full path, splitting it into
// directory, name and extension, and enables the file sink.
func (h *Handler) SetLogFile(path string) error {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	ext = strings.TrimPrefix(ext, ".")

	if strings.TrimSpace(name) == "" {
		return fmtErrorf("log file path '%s' has no file name", path)
	}

	return h.updateConfig(func(cfg *Config) {
		cfg.Directory = filepath.Clean(dir)
		cfg.Name = name
		cfg.Extension = ext
		cfg.EnableFile = true
	})
}

// SetFlushInterval sets the maximum time the worker waits without new
// data before waking to flush.
func (h *Handler) SetFlushInterval(d time.Duration) error {
	if d <= 0 {
		return fmtErrorf("flush interval must be positive: %v", d)
	}
	return h.updateConfig(func(cfg *Config) {
		cfg.FlushIntervalMs = d.Milliseconds()
	})
}

// SetBufferThreshold sets the intake size that triggers an eager
// worker wake-up.
func (h *Handler) SetBufferThreshold(n int) error {
	if n <= 0 {
		return fmtErrorf("buffer threshold must be positive: %d", n)
	}
	return h.updateConfig(func(cfg *Config) {
		cfg.BufferThreshold = int64(n)
	})
}

// updateConfig applies one mutation to a clone of the pending
// configuration, rejecting the change once the handler is live.
func (h *Handler) updateConfig(mutate func(*Config)) error {
	h.initMu.Lock()
	defer h.initMu.Unlock()

	if err := h.mutable(); err != nil {
		return err
	}

	cfg := h.getConfig().Clone()
	mutate(cfg)
	h.currentConfig.Store(cfg)
	return nil
}

// mutable reports whether configuration changes are currently allowed.
// Callers hold initMu.
func (h *Handler) mutable() error {
	if h.state.ShutdownCalled.Load() {
		return ErrShutdown
	}
	if h.state.Running.Load() {
		return ErrRunning
	}
	return nil
}

// getConfig returns the current configuration (thread-safe).
func (h *Handler) getConfig() *Config {
	return h.currentConfig.Load().(*Config)
}

// currentStamp returns the cached drain-cycle timestamp.
func (h *Handler) currentStamp() string {
	s, _ := h.state.Stamp.Load().(string)
	return s
}

// internalLog writes internal diagnostics to stderr, if enabled.
func (h *Handler) internalLog(format string, args ...any) {
	if !h.getConfig().InternalErrorsToStderr {
		return
	}
	if !strings.HasPrefix(format, "logplus: ") {
		format = "logplus: " + format
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

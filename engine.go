// FILE: logplus/engine.go
package logplus

import (
	"io"
	"time"
)

// run is the engine loop, one goroutine per handler. It waits for new
// intake bounded by the flush interval, exchanges the buffer pair
// under the lock, drains the batch to the sinks with no lock held,
// flushes the file sink once per cycle, and repeats until shutdown has
// been requested and the intake is empty.
//
// Configuration is read without locking throughout: it was frozen and
// published before the goroutine started.
func (h *Handler) run(cfg *Config) {
	defer close(h.done)

	ticker := time.NewTicker(cfg.flushInterval())
	defer ticker.Stop()

	// Readiness: the shutdown path waits for this before it may
	// request termination.
	close(h.ready)

	for {
		h.mu.Lock()
		for len(h.intake) == 0 && !h.state.StopRequested.Load() {
			h.mu.Unlock()
			// The timed wait. A wake-up means either the intake
			// reached the eager threshold or the flush interval
			// elapsed; emptiness is re-checked either way.
			select {
			case <-h.wake:
			case <-ticker.C:
			}
			h.mu.Lock()
		}
		stopping := h.state.StopRequested.Load()
		h.intake, h.drain = h.drain[:0], h.intake
		h.mu.Unlock()

		if stopping && len(h.drain) == 0 {
			// Nothing left that was accepted before the request; the
			// worker decides this is the safe point to terminate.
			h.flushSinks(cfg)
			return
		}

		// Timestamps reflect wall-clock drain time, coarse by at most
		// one cycle. Accepted approximation, not per-record stamping.
		h.refreshStamp(cfg)

		for i := range h.drain {
			h.dispatch(cfg, &h.drain[i])
		}
		h.flushSinks(cfg)
	}
}

// notify wakes the worker if it is waiting. Non-blocking; a pending
// wake-up already covers this notification.
func (h *Handler) notify() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

// dispatch writes one entry to the enabled sinks, in insertion order.
// A failed write is reported and the record skipped; the worker never
// crashes on sink errors.
func (h *Handler) dispatch(cfg *Config, e *renderedEntry) {
	if cfg.EnableConsole {
		if _, err := io.WriteString(h.console, e.console); err != nil {
			h.reportWriteError("console", err)
		}
	}
	if cfg.EnableFile {
		if err := h.file.write(e.file); err != nil {
			h.reportWriteError("file", err)
		}
	}
	h.state.RecordsWritten.Add(1)
}

// flushSinks flushes the buffered file stream, once per drain cycle.
func (h *Handler) flushSinks(cfg *Config) {
	if !cfg.EnableFile || h.file == nil {
		return
	}
	if err := h.file.flush(); err != nil {
		h.reportWriteError("file flush", err)
	}
}

// reportWriteError counts a sink failure and surfaces the first one to
// stderr.
func (h *Handler) reportWriteError(sink string, err error) {
	h.state.WriteFailures.Add(1)
	if h.state.FailureLogged.CompareAndSwap(false, true) {
		h.internalLog("%s sink write failed: %v\n", sink, err)
	}
}

// refreshStamp updates the cached human-readable timestamp used by
// subsequent rendering.
func (h *Handler) refreshStamp(cfg *Config) {
	h.state.Stamp.Store(time.Now().Format(cfg.TimestampFormat))
}

// FILE: logplus/state.go
package logplus

import (
	"sync/atomic"
)

// State encapsulates the runtime state of the handler.
// Transition order is strict: not started -> running -> stop requested
// -> terminated (done channel closed); there is no restart.
type State struct {
	Running        atomic.Bool // Init completed, configuration frozen
	ShutdownCalled atomic.Bool // Shutdown entered at least once
	StopRequested  atomic.Bool // worker asked to terminate once drained

	// Cached formatted timestamp, refreshed once per drain cycle.
	// Stores string; read lock-free by producers at render time.
	Stamp atomic.Value

	RecordsWritten atomic.Uint64 // entries dispatched to at least one sink
	WriteFailures  atomic.Uint64 // failed file sink writes
	FailureLogged  atomic.Bool   // first write failure reported to stderr
}

// Stats reports engine counters, usable while running.
type Stats struct {
	RecordsWritten uint64
	WriteFailures  uint64
}

// Stats returns a snapshot of the engine counters.
func (h *Handler) Stats() Stats {
	return Stats{
		RecordsWritten: h.state.RecordsWritten.Load(),
		WriteFailures:  h.state.WriteFailures.Load(),
	}
}

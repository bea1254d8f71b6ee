// Package logplus provides an in-process asynchronous logging engine.
// Callers submit leveled records from any goroutine; a dedicated
// worker batches them through a double buffer and writes them to the
// console and file sinks without blocking callers on I/O.
//
// Features:
//   - Double-buffered producer/consumer engine with O(1) buffer swap
//   - Timed flush policy plus eager wake-up on intake threshold
//   - Console sink with per-level ANSI colors, buffered file sink
//   - Fixed human-readable line layout with oversize truncation
//   - Configuration frozen at Init, mutators rejected while running
//   - Cooperative shutdown that never drops an accepted record
//   - TOML configuration loading and a fluent builder
//   - Process-wide default instance plus independent handler values
package logplus

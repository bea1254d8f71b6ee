// FILE: logplus/constant.go
package logplus

// Log level constants. Threshold filtering is inclusive-above:
// a handler at LevelWarn emits Warn and Error records only.
const (
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
)

// ANSI color prefixes for console output. The file variant never
// carries these.
const (
	colorBlue   = "\x1b[34m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorRed    = "\x1b[31m"
)

// maxRenderedBytes caps a single rendered line, newline included.
// Oversize lines are truncated, never rejected; the trailing newline
// is always preserved so a reader never sees a torn record.
const maxRenderedBytes = 300

// FILE: logplus/record.go
package logplus

// record captures one log call before rendering. Immutable once built;
// producers create it inside Log and never touch it again.
type record struct {
	level    int64
	message  string
	file     string
	function string
	line     int
	stamp    string // formatted wall-clock snapshot, coarse per drain cycle
}

// renderedEntry is the sink-specific text derived once from a record.
// It is owned by whichever buffer currently holds it; the buffer swap
// transfers ownership to the worker without copying entry contents.
type renderedEntry struct {
	console string // color-prefixed line
	file    string // plain line
}

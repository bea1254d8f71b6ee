// FILE: logplus/format.go
package logplus

import (
	"strconv"
)

// render turns one record into its sink-specific forms. Pure function
// of its inputs: the timestamp is supplied by the caller, no shared
// state is read, so concurrent producers render without serializing.
//
// Layout: <LEVEL> -> [<file>::<func>::<line>] <timestamp> >> <message>\n
// The console form carries the level color prefix; the file form never
// does.
func render(r record) renderedEntry {
	buf := make([]byte, 0, 128)

	buf = append(buf, levelToString(r.level)...)
	buf = append(buf, " -> ["...)
	buf = append(buf, r.file...)
	buf = append(buf, "::"...)
	buf = append(buf, r.function...)
	buf = append(buf, "::"...)
	buf = strconv.AppendInt(buf, int64(r.line), 10)
	buf = append(buf, "] "...)
	buf = append(buf, r.stamp...)
	buf = append(buf, " >> "...)
	buf = append(buf, r.message...)

	// Truncate oversize lines, keeping room for the newline.
	if len(buf) > maxRenderedBytes-1 {
		buf = buf[:maxRenderedBytes-1]
	}
	buf = append(buf, '\n')

	plain := string(buf)
	return renderedEntry{
		console: levelColor(r.level) + plain,
		file:    plain,
	}
}

// levelToString converts a level constant to its output tag.
func levelToString(level int64) string {
	switch level {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "LEVEL(" + strconv.FormatInt(level, 10) + ")"
	}
}

// levelColor maps a level to its console escape prefix.
func levelColor(level int64) string {
	switch level {
	case LevelDebug:
		return colorBlue
	case LevelInfo:
		return colorGreen
	case LevelWarn:
		return colorYellow
	case LevelError:
		return colorRed
	default:
		return ""
	}
}

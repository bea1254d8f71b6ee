// FILE: logplus/utility.go
package logplus

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// fmtErrorf wrapper, keeps package errors uniformly prefixed.
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "logplus: ") {
		format = "logplus: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// Level converts a level string to its numeric constant.
func Level(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use debug, info, warn, error)", levelStr)
	}
}

// callSite resolves the caller's file name, function name and line for
// the leveled front-end methods. skip follows the runtime.Caller
// convention: 0 is callSite itself.
func callSite(skip int) (file, function string, line int) {
	pc, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "???", "???", 0
	}
	file = filepath.Base(path)

	function = "???"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
			name = name[idx+1:]
		}
		function = name
	}
	return file, function, line
}

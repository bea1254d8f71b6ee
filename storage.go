// FILE: logplus/storage.go
package logplus

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// fileSink is the buffered append-mode file target. Owned by the
// worker after Init; only Shutdown and SetFileOutput touch it from
// the outside, and both hold initMu while doing so.
type fileSink struct {
	f *os.File
	w *bufio.Writer
}

// openFileSink prepares the log directory and opens the target file
// for append. Any failure here is fatal to initialization; the engine
// must not silently degrade to console-only output.
func openFileSink(cfg *Config) (*fileSink, error) {
	if err := ensureLogDir(cfg.Directory); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(cfg.filePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmtErrorf("failed to open log file '%s': %w", cfg.filePath(), err)
	}

	return &fileSink{f: f, w: bufio.NewWriter(f)}, nil
}

// ensureLogDir creates the log directory, one path segment at a time.
// Each segment is checked before creation; a pre-existing entry that
// is not a directory is a fatal configuration error.
func ensureLogDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}

	dir = filepath.Clean(dir)
	segments := strings.Split(dir, string(filepath.Separator))

	var current string
	for i, segment := range segments {
		if i == 0 {
			current = segment
			if current == "" { // absolute path
				current = string(filepath.Separator)
				continue
			}
		} else {
			current = filepath.Join(current, segment)
		}

		info, err := os.Stat(current)
		if err != nil {
			if !os.IsNotExist(err) {
				return fmtErrorf("failed to stat log path segment '%s': %w", current, err)
			}
			if err := os.Mkdir(current, 0755); err != nil {
				return fmtErrorf("failed to create log directory '%s': %w", current, err)
			}
			continue
		}
		if !info.IsDir() {
			return fmtErrorf("log path segment '%s' exists and is not a directory", current)
		}
	}

	return nil
}

// write appends one rendered line to the buffered stream.
func (s *fileSink) write(line string) error {
	_, err := s.w.WriteString(line)
	return err
}

// flush drains the buffered writer to the file. Called once per drain
// cycle, not per entry.
func (s *fileSink) flush() error {
	return s.w.Flush()
}

// close flushes, syncs and closes the underlying file.
func (s *fileSink) close() error {
	var finalErr error
	if err := s.w.Flush(); err != nil {
		finalErr = fmtErrorf("failed to flush log file '%s': %w", s.f.Name(), err)
	}
	if err := s.f.Sync(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to sync log file '%s': %w", s.f.Name(), err))
	}
	if err := s.f.Close(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s': %w", s.f.Name(), err))
	}
	return finalErr
}

// consoleWriter resolves the configured console target.
func consoleWriter(cfg *Config) io.Writer {
	if cfg.ConsoleTarget == "stderr" {
		return os.Stderr
	}
	return os.Stdout
}

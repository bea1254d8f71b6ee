// FILE: logplus/engine_test.go
package logplus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForLines polls the log file until it holds at least n lines or
// the deadline expires.
func waitForLines(t *testing.T, dir string, n int, deadline time.Duration) []string {
	t.Helper()
	path := filepath.Join(dir, "test.log")

	var lines []string
	end := time.Now().Add(deadline)
	for time.Now().Before(end) {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
			if len(lines) >= n {
				return lines
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return lines
}

func TestEagerWakeupOnThreshold(t *testing.T) {
	tmpDir := t.TempDir()

	h := NewHandler()
	cfg := DefaultConfig()
	cfg.Level = LevelDebug
	cfg.EnableConsole = false
	cfg.Directory = tmpDir
	cfg.Name = "test"
	cfg.FlushIntervalMs = 60000 // effectively never on its own
	cfg.BufferThreshold = 10
	require.NoError(t, h.ApplyConfig(cfg))
	require.NoError(t, h.Init())
	defer h.Shutdown()

	for i := 0; i < 10; i++ {
		require.NoError(t, h.Info("burst", i))
	}

	// The threshold notification must get the batch on disk long
	// before the flush interval could.
	lines := waitForLines(t, tmpDir, 10, 2*time.Second)
	assert.Len(t, lines, 10)
}

func TestTimedFlushWithoutThreshold(t *testing.T) {
	tmpDir := t.TempDir()

	h := NewHandler()
	cfg := DefaultConfig()
	cfg.Level = LevelDebug
	cfg.EnableConsole = false
	cfg.Directory = tmpDir
	cfg.Name = "test"
	cfg.FlushIntervalMs = 20
	cfg.BufferThreshold = 1000 // never reached
	require.NoError(t, h.ApplyConfig(cfg))
	require.NoError(t, h.Init())
	defer h.Shutdown()

	require.NoError(t, h.Info("lonely record"))

	// A single record below the threshold still reaches the sink
	// within one flush interval, flushed and readable.
	lines := waitForLines(t, tmpDir, 1, time.Second)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "lonely record")
}

func TestDispatchOrder(t *testing.T) {
	h, tmpDir := createTestHandler(t)

	const n = 200
	for i := 0; i < n; i++ {
		require.NoError(t, h.Info("seq", i))
	}
	require.NoError(t, h.Shutdown())

	lines := readLines(t, tmpDir)
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Contains(t, line, fmt.Sprintf(">> seq %d", i))
	}
}

func TestNoDuplicateDispatch(t *testing.T) {
	h, tmpDir := createTestHandler(t)

	const n = 50
	for i := 0; i < n; i++ {
		require.NoError(t, h.Info("once", i))
	}
	require.NoError(t, h.Shutdown())

	lines := readLines(t, tmpDir)
	require.Len(t, lines, n)

	seen := make(map[string]bool, n)
	for _, line := range lines {
		idx := strings.Index(line, ">> ")
		require.GreaterOrEqual(t, idx, 0)
		msg := line[idx:]
		assert.False(t, seen[msg], "record delivered twice: %s", msg)
		seen[msg] = true
	}
}

func TestStampRefreshedPerCycle(t *testing.T) {
	tmpDir := t.TempDir()

	h := NewHandler()
	cfg := DefaultConfig()
	cfg.Level = LevelDebug
	cfg.EnableConsole = false
	cfg.Directory = tmpDir
	cfg.Name = "test"
	cfg.TimestampFormat = "15:04:05.000"
	cfg.FlushIntervalMs = 10
	require.NoError(t, h.ApplyConfig(cfg))
	require.NoError(t, h.Init())

	require.NoError(t, h.Info("first"))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, h.Info("second"))
	require.NoError(t, h.Shutdown())

	lines := readLines(t, tmpDir)
	require.Len(t, lines, 2)

	// Both stamps use the configured layout; the second cycle's stamp
	// was refreshed by the worker, not frozen at Init.
	stamp := func(line string) string {
		start := strings.Index(line, "] ") + 2
		return line[start : start+len("15:04:05.000")]
	}
	s1, s2 := stamp(lines[0]), stamp(lines[1])
	assert.NotEqual(t, s1, s2)
}

func TestConsoleOnlyEngine(t *testing.T) {
	h := NewHandler()
	cfg := DefaultConfig()
	cfg.EnableFile = false
	cfg.EnableConsole = true
	cfg.FlushIntervalMs = 10
	require.NoError(t, h.ApplyConfig(cfg))
	require.NoError(t, h.Init())

	// No file sink configured; dispatch and shutdown must not touch
	// a nil stream.
	require.NoError(t, h.Info("console only"))
	require.NoError(t, h.Shutdown())
	assert.Equal(t, uint64(1), h.Stats().RecordsWritten)
}

// FILE: logplus/default_test.go
package logplus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The package-level handler can be started and shut down exactly once
// per process, so the whole lifecycle lives in one test.
func TestDefaultHandlerLifecycle(t *testing.T) {
	tmpDir := t.TempDir()

	require.Same(t, defaultHandler, Default())

	// Configure before starting.
	require.NoError(t, SetConsoleOutput(false))
	require.NoError(t, SetLogFile(filepath.Join(tmpDir, "default.log")))
	require.NoError(t, SetLevel(LevelDebug))
	require.NoError(t, SetFlushInterval(10*time.Millisecond))
	require.NoError(t, SetBufferThreshold(5))
	require.NoError(t, ApplyOverride("timestamp_format="+time.RFC3339))

	require.NoError(t, Init())

	assert.True(t, LevelEnabled(LevelDebug))
	assert.True(t, LevelEnabled(LevelError))

	// Setters are frozen while running.
	assert.ErrorIs(t, SetLevel(LevelWarn), ErrRunning)
	assert.ErrorIs(t, SetFileOutput(false), ErrRunning)
	assert.ErrorIs(t, ApplyConfig(DefaultConfig()), ErrRunning)

	require.NoError(t, Debug("debug", 1))
	require.NoError(t, Info("info", 2))
	require.NoError(t, Warn("warn", 3))
	require.NoError(t, Error("error", 4))
	require.NoError(t, Infof("formatted %d/%d", 5, 6))

	require.NoError(t, Shutdown())

	data, err := os.ReadFile(filepath.Join(tmpDir, "default.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 5)

	// Call sites point here, not at the forwarding functions.
	for _, line := range lines {
		assert.Contains(t, line, "default_test.go::TestDefaultHandlerLifecycle::")
	}
	assert.Contains(t, lines[0], ">> debug 1")
	assert.Contains(t, lines[4], ">> formatted 5/6")

	// Dead after shutdown.
	assert.ErrorIs(t, Info("late"), ErrShutdown)
	assert.ErrorIs(t, Init(), ErrShutdown)
}

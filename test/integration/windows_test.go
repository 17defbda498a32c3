//go:build integration && windows

package integration

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/teams"
	"github.com/Norgate-AV/kta/internal/windows"
)

// TestIntegration_SnapshotContainsSelf checks the Toolhelp32 snapshot against the test binary
func TestIntegration_SnapshotContainsSelf(t *testing.T) {
	client := windows.NewClient(logger.NewNoOpLogger())

	processes, err := client.Process.Snapshot()
	require.NoError(t, err)

	self := uint32(os.Getpid())
	exe := filepath.Base(os.Args[0])

	found := false
	for _, p := range processes {
		if p.Pid == self {
			found = true
			assert.True(t, strings.EqualFold(p.ExeName, exe), "expected %s, got %s", exe, p.ExeName)
			assert.NotZero(t, p.ParentPid)
		}
	}

	assert.True(t, found, "current process should appear in the snapshot")
}

// TestIntegration_TopLevelWindows checks enumeration only returns visible, unowned windows
func TestIntegration_TopLevelWindows(t *testing.T) {
	client := windows.NewClient(logger.NewNoOpLogger())

	for _, w := range client.Window.TopLevelWindows() {
		assert.NotZero(t, w.Hwnd)
		assert.NotZero(t, w.Pid)
	}
}

// TestIntegration_SingleInstance checks the named mutex rejects a second owner
func TestIntegration_SingleInstance(t *testing.T) {
	name := `Local\kta-integration-test`

	release, err := windows.AcquireSingleInstance(name)
	require.NoError(t, err)
	defer release()

	_, err = windows.AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, windows.ErrAlreadyRunning))
}

// TestIntegration_ExecutionState sets and resets the awake state on this thread
func TestIntegration_ExecutionState(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	client := windows.NewClient(logger.NewNoOpLogger())

	prev := client.Power.SetExecutionState(windows.ES_CONTINUOUS | windows.ES_SYSTEM_REQUIRED)
	assert.NotZero(t, prev)

	prev = client.Power.SetExecutionState(windows.ES_CONTINUOUS)
	assert.NotZero(t, prev&windows.ES_SYSTEM_REQUIRED)
}

// TestIntegration_LocateTeams exercises the locator against a real desktop
func TestIntegration_LocateTeams(t *testing.T) {
	log := logger.NewNoOpLogger()
	client := windows.NewClient(log)

	target, err := teams.NewClient(log, client.Process, client.Window).Locate(teams.DefaultProcessNames)
	if errors.Is(err, teams.ErrNotRunning) {
		t.Skip("Teams is not running")
	}

	require.NoError(t, err)
	assert.NotEmpty(t, target.Pids)
	t.Logf("Found %s with %d processes, window %d", target.Name, len(target.Pids), target.Hwnd)
}

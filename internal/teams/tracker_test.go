package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/testutil"
)

func TestTracker_CachedWindow(t *testing.T) {
	t.Parallel()

	proc := testutil.NewMockProcessManager()
	client := NewClient(logger.NewNoOpLogger(), proc, testutil.NewMockWindowManager())
	tracker := NewTracker(logger.NewNoOpLogger(), client, DefaultProcessNames, &Target{Name: "Teams", Pids: []uint32{1}, Hwnd: 77})

	assert.Equal(t, uintptr(77), tracker.Window())
}

func TestTracker_ResolvesLaunchedWindow(t *testing.T) {
	t.Parallel()

	proc := testutil.NewMockProcessManager().WithProcess(10, 1, "ms-teams.exe")
	win := testutil.NewMockWindowManager()
	client := NewClient(logger.NewNoOpLogger(), proc, win)
	tracker := NewTracker(logger.NewNoOpLogger(), client, DefaultProcessNames, &Target{Name: "ms-teams", Pids: []uint32{10}})

	assert.Zero(t, tracker.Window())

	proc.WithProcess(11, 10, "ms-teams.exe")
	win.WithWindow(900, 11, "Microsoft Teams")

	assert.Equal(t, uintptr(900), tracker.Window())
	assert.Equal(t, []uint32{10, 11}, tracker.Target().Pids)
}

func TestTracker_TargetIsCopy(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(logger.NewNoOpLogger(), nil, nil, &Target{Pids: []uint32{1}})

	cp := tracker.Target()
	cp.Pids[0] = 99
	assert.Equal(t, uint32(1), tracker.Target().Pids[0])
}

func TestTracker_Track(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(logger.NewNoOpLogger(), nil, nil, nil)
	assert.Nil(t, tracker.Target())

	tracker.Track(&Target{Name: "Teams", Hwnd: 5})
	assert.Equal(t, uintptr(5), tracker.Window())
}

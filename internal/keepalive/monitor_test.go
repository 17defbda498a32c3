package keepalive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/kta/internal/keyboard"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/testutil"
	"github.com/Norgate-AV/kta/internal/windows"
)

type fixedWindow uintptr

func (w fixedWindow) Window() uintptr { return uintptr(w) }

func newTestMonitor(hwnd uintptr) (*Monitor, *testutil.MockKeyboardInjector, *testutil.MockPowerManager) {
	kb := testutil.NewMockKeyboardInjector()
	power := testutil.NewMockPowerManager()
	m := NewMonitor(logger.NewNoOpLogger(), fixedWindow(hwnd), kb, power, Key{VK: keyboard.VK_F15})

	return m, kb, power
}

func TestTick_IdleDoesNothing(t *testing.T) {
	t.Parallel()

	m, kb, power := newTestMonitor(42)
	m.Tick()

	assert.Zero(t, kb.SentCount())
	assert.Empty(t, power.Calls())
}

func TestTick_SendsKeyAndKeepsAwake(t *testing.T) {
	t.Parallel()

	m, kb, power := newTestMonitor(42)
	m.Start()
	m.Tick()
	m.Tick()

	assert.Equal(t, []testutil.SentKey{
		{Hwnd: 42, Key: keyboard.VK_F15},
		{Hwnd: 42, Key: keyboard.VK_F15},
	}, kb.Sent)
	assert.Equal(t, []uint32{AwakeState, AwakeState}, power.Calls())
}

func TestTick_ZeroWindowSkipsKey(t *testing.T) {
	t.Parallel()

	m, kb, power := newTestMonitor(0)
	m.Start()
	m.Tick()

	assert.Zero(t, kb.SentCount())
	assert.Equal(t, []uint32{AwakeState}, power.Calls())
}

func TestTick_PowerFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	m, _, power := newTestMonitor(42)
	power.WithResult(0)
	m.Start()

	assert.NotPanics(t, m.Tick)
	assert.Len(t, power.Calls(), 1, "no retry")
	assert.True(t, m.Monitoring())
}

func TestStop_NeverStarted(t *testing.T) {
	t.Parallel()

	m, _, power := newTestMonitor(42)

	assert.False(t, m.Stop())
	assert.Empty(t, power.Calls())
}

func TestStop_ResetsExecutionState(t *testing.T) {
	t.Parallel()

	m, _, power := newTestMonitor(42)
	m.Start()

	assert.True(t, m.Stop())
	assert.False(t, m.Monitoring())
	assert.Equal(t, []uint32{windows.ES_CONTINUOUS}, power.Calls())

	assert.False(t, m.Stop(), "second stop is a no-op")
	assert.Len(t, power.Calls(), 1)
}

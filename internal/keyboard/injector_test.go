package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/kta/internal/focus"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/testutil"
)

func newTestInjector(win *testutil.MockWindowManager, input *testutil.MockInputInjector) *Injector {
	log := logger.NewNoOpLogger()
	return NewInjector(log, focus.NewFocuser(log, win), input)
}

func TestSendKey_SubmitsOneBatch(t *testing.T) {
	t.Parallel()

	win := testutil.NewMockWindowManager().WithThreads(200, 100)
	input := testutil.NewMockInputInjector()

	assert.True(t, newTestInjector(win, input).SendKey(42, VK_F15))
	assert.Len(t, input.Batches, 1)
	assert.Len(t, input.Batches[0], 2)
	assert.Equal(t, 1, win.Detaches())
}

func TestSendKey_FocusFailureSendsNothing(t *testing.T) {
	t.Parallel()

	win := testutil.NewMockWindowManager().WithThreads(200, 100).WithAttachResult(false)
	input := testutil.NewMockInputInjector()

	assert.False(t, newTestInjector(win, input).SendKey(42, VK_F15))
	assert.Empty(t, input.Batches)
	assert.Equal(t, 1, win.Detaches())
}

func TestSendKey_RejectedBatch(t *testing.T) {
	t.Parallel()

	win := testutil.NewMockWindowManager()
	input := testutil.NewMockInputInjector().WithReject(true)

	assert.False(t, newTestInjector(win, input).SendKey(42, VK_F15, VK_SHIFT))
	assert.Len(t, input.Batches[0], 4)
}

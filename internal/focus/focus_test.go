package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/testutil"
	"github.com/Norgate-AV/kta/internal/windows"
)

func TestActivate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		showCmd  uint32
		ok       bool
		wantShow int
	}{
		{"minimized shows normal", windows.SW_SHOWMINIMIZED, true, windows.SW_SHOWNORMAL},
		{"normal shows default", windows.SW_SHOWNORMAL, true, windows.SW_SHOWDEFAULT},
		{"placement failure shows default", windows.SW_SHOWMINIMIZED, false, windows.SW_SHOWDEFAULT},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			win := testutil.NewMockWindowManager().WithPlacement(tt.showCmd, tt.ok)
			f := NewFocuser(logger.NewNoOpLogger(), win)

			assert.True(t, f.Activate(42))
			assert.Equal(t, []int{tt.wantShow}, win.ShowCalls)
			assert.Equal(t, "SetForeground", win.Calls[len(win.Calls)-1])
		})
	}
}

func TestRestore(t *testing.T) {
	t.Parallel()

	t.Run("sets async restore placement", func(t *testing.T) {
		t.Parallel()

		win := testutil.NewMockWindowManager().WithPlacement(windows.SW_SHOWMINIMIZED, true)
		f := NewFocuser(logger.NewNoOpLogger(), win)

		assert.True(t, f.Restore(42))
		if assert.Len(t, win.SetPlacements, 1) {
			assert.Equal(t, uint32(windows.WPF_ASYNCWINDOWPLACEMENT), win.SetPlacements[0].Flags)
			assert.Equal(t, uint32(windows.SW_RESTORE), win.SetPlacements[0].ShowCmd)
		}
	})

	t.Run("get placement failure", func(t *testing.T) {
		t.Parallel()

		win := testutil.NewMockWindowManager().WithPlacement(0, false)
		f := NewFocuser(logger.NewNoOpLogger(), win)

		assert.False(t, f.Restore(42))
		assert.Empty(t, win.SetPlacements)
	})

	t.Run("set placement failure", func(t *testing.T) {
		t.Parallel()

		win := testutil.NewMockWindowManager().WithSetPlacementResult(false)
		f := NewFocuser(logger.NewNoOpLogger(), win)

		assert.False(t, f.Restore(42))
	})
}

func TestFocusForInput_DetachesExactlyOnce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(*testutil.MockWindowManager)
		want  bool
	}{
		{"success", func(*testutil.MockWindowManager) {}, true},
		{"attach fails", func(m *testutil.MockWindowManager) { m.WithAttachResult(false) }, false},
		{"restore fails", func(m *testutil.MockWindowManager) { m.WithIconic(true).WithSetPlacementResult(false) }, false},
		{"bring to top fails", func(m *testutil.MockWindowManager) { m.WithBringToTopResult(false) }, false},
		{"set focus fails", func(m *testutil.MockWindowManager) { m.WithFocusResult(0) }, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			win := testutil.NewMockWindowManager().WithThreads(200, 100)
			tt.setup(win)
			f := NewFocuser(logger.NewNoOpLogger(), win)

			assert.Equal(t, tt.want, f.FocusForInput(42))
			assert.Equal(t, 1, win.Detaches())
			assert.Equal(t, "AttachThreadInput(false)", win.Calls[len(win.Calls)-1])

			last := win.AttachCalls[len(win.AttachCalls)-1]
			assert.Equal(t, testutil.AttachCall{From: 100, To: 200, Attach: false}, last)
		})
	}
}

func TestFocusForInput_RestoresIconicRoot(t *testing.T) {
	t.Parallel()

	win := testutil.NewMockWindowManager().WithThreads(200, 100).WithIconic(true)
	f := NewFocuser(logger.NewNoOpLogger(), win)

	assert.True(t, f.FocusForInput(42))
	assert.Equal(t, []string{
		"AttachThreadInput(true)",
		"GetAncestor(2)",
		"IsIconic",
		"GetPlacement",
		"SetPlacement",
		"BringToTop",
		"SetFocus",
		"AttachThreadInput(false)",
	}, win.Calls)
}

func TestFocusForInput_SameThread(t *testing.T) {
	t.Parallel()

	// SetFocus result is ignored on the same thread
	win := testutil.NewMockWindowManager().WithThreads(100, 100).WithFocusResult(0)
	f := NewFocuser(logger.NewNoOpLogger(), win)

	assert.True(t, f.FocusForInput(42))
	assert.Empty(t, win.AttachCalls)
	assert.Equal(t, []string{"SetFocus"}, win.Calls)
}

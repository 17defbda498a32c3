// Package focus brings a target window forward and gives it keyboard focus.
package focus

import (
	"log/slog"

	"github.com/Norgate-AV/kta/internal/interfaces"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/windows"
)

// Focuser activates windows and prepares them to receive input
type Focuser struct {
	log logger.LoggerInterface
	win interfaces.WindowManager
}

func NewFocuser(log logger.LoggerInterface, win interfaces.WindowManager) *Focuser {
	return &Focuser{log: log, win: win}
}

// Activate shows the window in its normal state if it is minimized, otherwise in
// its default state, then makes it the foreground window
func (f *Focuser) Activate(hwnd uintptr) bool {
	placement, ok := f.win.GetPlacement(hwnd)
	if ok && placement.IsMinimized() {
		f.win.ShowWindow(hwnd, windows.SW_SHOWNORMAL)
	} else {
		f.win.ShowWindow(hwnd, windows.SW_SHOWDEFAULT)
	}

	result := f.win.SetForeground(hwnd)
	f.log.Debug("Window activated",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Bool("foreground", result))

	return result
}

// Restore un-minimizes a window without waiting for its thread to respond
func (f *Focuser) Restore(hwnd uintptr) bool {
	placement, ok := f.win.GetPlacement(hwnd)
	if !ok {
		return false
	}

	placement.Flags = windows.WPF_ASYNCWINDOWPLACEMENT
	placement.ShowCmd = windows.SW_RESTORE

	return f.win.SetPlacement(hwnd, placement)
}

// FocusForInput gives hwnd keyboard focus. When the window belongs to another
// thread the input queues are attached for the duration of the call and the
// detach always runs once an attach was attempted.
func (f *Focuser) FocusForInput(hwnd uintptr) bool {
	target := f.win.WindowThreadID(hwnd)
	current := f.win.CurrentThreadID()

	if target == current {
		f.win.SetFocus(hwnd)
		return true
	}

	defer f.win.AttachThreadInput(current, target, false)

	f.log.Debug("Attaching thread input",
		slog.Uint64("current", uint64(current)),
		slog.Uint64("target", uint64(target)))

	if !f.win.AttachThreadInput(current, target, true) {
		return false
	}

	root := f.win.GetAncestor(hwnd, windows.GA_ROOT)
	if f.win.IsIconic(root) && !f.Restore(root) {
		f.log.Debug("Could not restore root window", slog.Uint64("root", uint64(root)))
		return false
	}

	if !f.win.BringToTop(root) {
		return false
	}

	return f.win.SetFocus(hwnd) != 0
}

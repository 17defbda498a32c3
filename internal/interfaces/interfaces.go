package interfaces

import (
	"github.com/Norgate-AV/kta/internal/windows"
)

// WindowManager handles window placement, focus and enumeration
type WindowManager interface {
	GetPlacement(hwnd uintptr) (windows.Placement, bool)
	SetPlacement(hwnd uintptr, p windows.Placement) bool
	ShowWindow(hwnd uintptr, cmd int) bool
	SetForeground(hwnd uintptr) bool
	GetAncestor(hwnd uintptr, flags uint32) uintptr
	IsIconic(hwnd uintptr) bool
	BringToTop(hwnd uintptr) bool
	SetFocus(hwnd uintptr) uintptr
	WindowThreadID(hwnd uintptr) uint32
	CurrentThreadID() uint32
	AttachThreadInput(from, to uint32, attach bool) bool
	TopLevelWindows() []windows.WindowInfo
}

// InputInjector submits synthetic keyboard events
type InputInjector interface {
	SendInput(events []windows.KeyEvent) uint32
}

// KeyboardInjector sends a key press to a specific window
type KeyboardInjector interface {
	SendKey(hwnd uintptr, key uint16, modifiers ...uint16) bool
}

// PowerManager controls the thread execution state
type PowerManager interface {
	SetExecutionState(flags uint32) uint32
}

// ProcessManager handles process discovery, termination and launch
type ProcessManager interface {
	Snapshot() ([]windows.ProcessInfo, error)
	Terminate(pid uint32) error
	Launch(file string) error
}

// Display is the user-visible surface
type Display interface {
	SetStatus(text string)
	ShowMessage(text, caption string)
	SetCountdown(text string)
	HideCountdown()
}

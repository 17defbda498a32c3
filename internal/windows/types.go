package windows

import "unsafe"

// ShowWindow commands
const (
	SW_SHOWNORMAL    = 1
	SW_SHOWMINIMIZED = 2
	SW_RESTORE       = 9
	SW_SHOWDEFAULT   = 10
)

const (
	GA_PARENT    = 1
	GA_ROOT      = 2
	GA_ROOTOWNER = 3

	GW_OWNER = 4

	WPF_SETMINPOSITION       = 0x0001
	WPF_RESTORETOMAXIMIZED   = 0x0002
	WPF_ASYNCWINDOWPLACEMENT = 0x0004
)

const (
	INPUT_KEYBOARD = 1

	KEYEVENTF_EXTENDEDKEY = 0x0001
	KEYEVENTF_KEYUP       = 0x0002
)

// Execution state flags for SetThreadExecutionState
const (
	ES_SYSTEM_REQUIRED  = 0x00000001
	ES_DISPLAY_REQUIRED = 0x00000002
	ES_CONTINUOUS       = 0x80000000
)

// Console control events delivered to a SetConsoleCtrlHandler routine
const (
	CTRL_C_EVENT        = 0
	CTRL_BREAK_EVENT    = 1
	CTRL_CLOSE_EVENT    = 2
	CTRL_LOGOFF_EVENT   = 5
	CTRL_SHUTDOWN_EVENT = 6
)

type POINT struct {
	X int32
	Y int32
}

type RECT struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// WINDOWPLACEMENT mirrors the Win32 structure of the same name (44 bytes)
type WINDOWPLACEMENT struct {
	Length           uint32
	Flags            uint32
	ShowCmd          uint32
	PtMinPosition    POINT
	PtMaxPosition    POINT
	RcNormalPosition RECT
}

type KEYBDINPUT struct {
	WVk         uint16
	WScan       uint16
	DwFlags     uint32
	Time        uint32
	DwExtraInfo uintptr
}

// INPUT is the keyboard arm of the Win32 INPUT union. The tail padding brings it
// up to the size of the largest member (MOUSEINPUT): 40 bytes on 64-bit, 28 on 32-bit.
type INPUT struct {
	Type uint32
	Ki   KEYBDINPUT
	_    [8]byte
}

// Placement is the show state and positions of a top-level window
type Placement struct {
	Flags          uint32
	ShowCmd        uint32
	MinPosition    POINT
	MaxPosition    POINT
	NormalPosition RECT
}

// IsMinimized reports whether the placement describes a minimized window
func (p Placement) IsMinimized() bool {
	return p.ShowCmd == SW_SHOWMINIMIZED
}

// KeyEvent is a single synthetic keyboard event
type KeyEvent struct {
	VK    uint16
	Flags uint32
}

// IsKeyUp reports whether the event releases its key
func (e KeyEvent) IsKeyUp() bool {
	return e.Flags&KEYEVENTF_KEYUP != 0
}

// IsExtended reports whether the event carries the extended-key flag
func (e KeyEvent) IsExtended() bool {
	return e.Flags&KEYEVENTF_EXTENDEDKEY != 0
}

// ProcessInfo describes one entry of a process snapshot
type ProcessInfo struct {
	Pid       uint32
	ParentPid uint32
	ExeName   string
}

// WindowInfo describes a visible, unowned top-level window
type WindowInfo struct {
	Hwnd  uintptr
	Title string
	Pid   uint32
}

func toWindowPlacement(p Placement) WINDOWPLACEMENT {
	wp := WINDOWPLACEMENT{
		Flags:            p.Flags,
		ShowCmd:          p.ShowCmd,
		PtMinPosition:    p.MinPosition,
		PtMaxPosition:    p.MaxPosition,
		RcNormalPosition: p.NormalPosition,
	}
	wp.Length = uint32(unsafe.Sizeof(wp))

	return wp
}

func fromWindowPlacement(wp WINDOWPLACEMENT) Placement {
	return Placement{
		Flags:          wp.Flags,
		ShowCmd:        wp.ShowCmd,
		MinPosition:    wp.PtMinPosition,
		MaxPosition:    wp.PtMaxPosition,
		NormalPosition: wp.RcNormalPosition,
	}
}

func toInputs(events []KeyEvent) []INPUT {
	inputs := make([]INPUT, len(events))

	for i, ev := range events {
		inputs[i] = INPUT{
			Type: INPUT_KEYBOARD,
			Ki: KEYBDINPUT{
				WVk:     ev.VK,
				DwFlags: ev.Flags,
			},
		}
	}

	return inputs
}

// GetCtrlTypeName returns a readable name for a console control event
func GetCtrlTypeName(ctrlType uint32) string {
	switch ctrlType {
	case CTRL_C_EVENT:
		return "CTRL_C_EVENT"
	case CTRL_BREAK_EVENT:
		return "CTRL_BREAK_EVENT"
	case CTRL_CLOSE_EVENT:
		return "CTRL_CLOSE_EVENT"
	case CTRL_LOGOFF_EVENT:
		return "CTRL_LOGOFF_EVENT"
	case CTRL_SHUTDOWN_EVENT:
		return "CTRL_SHUTDOWN_EVENT"
	default:
		return "UNKNOWN"
	}
}

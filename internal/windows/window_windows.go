//go:build windows

package windows

import (
	"log/slog"
	"sync"
	"unsafe"

	xwindows "golang.org/x/sys/windows"

	"github.com/Norgate-AV/kta/internal/logger"
)

// RealWindowManager wraps the user32 window calls used to locate and focus a window
type RealWindowManager struct {
	log logger.LoggerInterface
}

func NewRealWindowManager(log logger.LoggerInterface) *RealWindowManager {
	return &RealWindowManager{log: log}
}

// GetPlacement reads the show state and positions of a window
func (w *RealWindowManager) GetPlacement(hwnd uintptr) (Placement, bool) {
	wp := toWindowPlacement(Placement{})

	ret, _, err := procGetWindowPlacement.Call(hwnd, uintptr(unsafe.Pointer(&wp)))
	if ret == 0 {
		w.log.Debug("GetWindowPlacement failed",
			slog.Uint64("hwnd", uint64(hwnd)),
			slog.Any("error", err))

		return Placement{}, false
	}

	return fromWindowPlacement(wp), true
}

// SetPlacement applies a placement to a window
func (w *RealWindowManager) SetPlacement(hwnd uintptr, p Placement) bool {
	wp := toWindowPlacement(p)

	ret, _, err := procSetWindowPlacement.Call(hwnd, uintptr(unsafe.Pointer(&wp)))
	if ret == 0 {
		w.log.Debug("SetWindowPlacement failed",
			slog.Uint64("hwnd", uint64(hwnd)),
			slog.Any("error", err))

		return false
	}

	return true
}

// ShowWindow returns true if the window was previously visible
func (w *RealWindowManager) ShowWindow(hwnd uintptr, cmd int) bool {
	ret, _, _ := procShowWindow.Call(hwnd, uintptr(cmd))
	w.log.Debug("ShowWindow", slog.Int("cmd", cmd), slog.Uint64("ret", uint64(ret)))

	return ret != 0
}

func (w *RealWindowManager) SetForeground(hwnd uintptr) bool {
	ret, _, err := procSetForegroundWindow.Call(hwnd)
	if ret == 0 {
		w.log.Debug("SetForegroundWindow failed", slog.Any("error", err))
		return false
	}

	return true
}

func (w *RealWindowManager) GetAncestor(hwnd uintptr, flags uint32) uintptr {
	ret, _, _ := procGetAncestor.Call(hwnd, uintptr(flags))
	return ret
}

func (w *RealWindowManager) IsIconic(hwnd uintptr) bool {
	ret, _, _ := procIsIconic.Call(hwnd)
	return ret != 0
}

func (w *RealWindowManager) BringToTop(hwnd uintptr) bool {
	ret, _, err := procBringWindowToTop.Call(hwnd)
	if ret == 0 {
		w.log.Debug("BringWindowToTop failed", slog.Any("error", err))
		return false
	}

	return true
}

// SetFocus returns the previously focused window, or 0 on failure
func (w *RealWindowManager) SetFocus(hwnd uintptr) uintptr {
	ret, _, err := procSetFocus.Call(hwnd)
	if ret == 0 {
		w.log.Debug("SetFocus failed", slog.Any("error", err))
	}

	return ret
}

// WindowThreadID returns the id of the thread that created the window
func (w *RealWindowManager) WindowThreadID(hwnd uintptr) uint32 {
	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, 0)
	return uint32(ret)
}

func (w *RealWindowManager) CurrentThreadID() uint32 {
	return xwindows.GetCurrentThreadId()
}

func (w *RealWindowManager) AttachThreadInput(from, to uint32, attach bool) bool {
	var flag uintptr
	if attach {
		flag = 1
	}

	ret, _, err := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
	if ret == 0 {
		w.log.Debug("AttachThreadInput failed",
			slog.Uint64("from", uint64(from)),
			slog.Uint64("to", uint64(to)),
			slog.Bool("attach", attach),
			slog.Any("error", err))

		return false
	}

	return true
}

var (
	enumMutex   sync.Mutex
	enumResults []WindowInfo

	// Callbacks are a limited resource, so one is created for the life of the process
	enumCallback = xwindows.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		visible, _, _ := procIsWindowVisible.Call(hwnd)
		if visible == 0 {
			return 1
		}

		owner, _, _ := procGetWindow.Call(hwnd, GW_OWNER)
		if owner != 0 {
			return 1
		}

		var pid uint32
		_, _, _ = procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))

		buf := make([]uint16, 256)
		_, _, _ = procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))

		enumResults = append(enumResults, WindowInfo{
			Hwnd:  hwnd,
			Title: xwindows.UTF16ToString(buf),
			Pid:   pid,
		})

		return 1
	})
)

// TopLevelWindows enumerates visible, unowned top-level windows in z-order
func (w *RealWindowManager) TopLevelWindows() []WindowInfo {
	enumMutex.Lock()
	defer enumMutex.Unlock()

	enumResults = nil
	_, _, _ = procEnumWindows.Call(enumCallback, 0)

	result := make([]WindowInfo, len(enumResults))
	copy(result, enumResults)

	w.log.Debug("Enumerated top-level windows", slog.Int("count", len(result)))

	return result
}

//go:build windows

package windows

import (
	"sync"

	xwindows "golang.org/x/sys/windows"
)

var (
	ctrlMutex   sync.Mutex
	ctrlHandler func(ctrlType uint32) bool
	ctrlOnce    sync.Once
	ctrlThunk   uintptr
)

// SetConsoleCtrlHandler installs fn as the process console control handler.
// fn runs on a system thread and the process may be ended as soon as it returns
// from a close, logoff or shutdown event. Passing nil removes the handler.
func SetConsoleCtrlHandler(fn func(ctrlType uint32) bool) error {
	ctrlOnce.Do(func() {
		ctrlThunk = xwindows.NewCallback(func(ctrlType uintptr) uintptr {
			ctrlMutex.Lock()
			handler := ctrlHandler
			ctrlMutex.Unlock()

			if handler != nil && handler(uint32(ctrlType)) {
				return 1
			}

			return 0
		})
	})

	ctrlMutex.Lock()
	ctrlHandler = fn
	ctrlMutex.Unlock()

	var add uintptr
	if fn != nil {
		add = 1
	}

	ret, _, err := procSetConsoleCtrlHandler.Call(ctrlThunk, add)
	if ret == 0 {
		return err
	}

	return nil
}

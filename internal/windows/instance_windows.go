//go:build windows

package windows

import (
	"errors"
	"fmt"

	xwindows "golang.org/x/sys/windows"
)

// AcquireSingleInstance creates the named mutex that marks this process as the
// running instance. ErrAlreadyRunning is returned when another process owns it.
func AcquireSingleInstance(name string) (func(), error) {
	namePtr, err := xwindows.UTF16PtrFromString(name)
	if err != nil {
		return nil, err
	}

	handle, err := xwindows.CreateMutex(nil, true, namePtr)
	if errors.Is(err, xwindows.ERROR_ALREADY_EXISTS) {
		if handle != 0 {
			_ = xwindows.CloseHandle(handle)
		}

		return nil, ErrAlreadyRunning
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create instance mutex: %w", err)
	}

	return func() {
		_ = xwindows.ReleaseMutex(handle)
		_ = xwindows.CloseHandle(handle)
	}, nil
}

// IsElevated checks if the current process is running with administrator privileges
func IsElevated() bool {
	return xwindows.GetCurrentProcessToken().IsElevated()
}

//go:build windows

package windows

import (
	xwindows "golang.org/x/sys/windows"
)

var (
	user32                       = xwindows.NewLazySystemDLL("user32.dll")
	procGetWindowPlacement       = user32.NewProc("GetWindowPlacement")
	procSetWindowPlacement       = user32.NewProc("SetWindowPlacement")
	procShowWindow               = user32.NewProc("ShowWindow")
	procSetForegroundWindow      = user32.NewProc("SetForegroundWindow")
	procGetAncestor              = user32.NewProc("GetAncestor")
	procIsIconic                 = user32.NewProc("IsIconic")
	procBringWindowToTop         = user32.NewProc("BringWindowToTop")
	procSetFocus                 = user32.NewProc("SetFocus")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procAttachThreadInput        = user32.NewProc("AttachThreadInput")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindow                = user32.NewProc("GetWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procSendInput                = user32.NewProc("SendInput")

	kernel32                    = xwindows.NewLazySystemDLL("kernel32.dll")
	procSetThreadExecutionState = kernel32.NewProc("SetThreadExecutionState")
	procSetConsoleCtrlHandler   = kernel32.NewProc("SetConsoleCtrlHandler")
)

//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"unsafe"

	xwindows "golang.org/x/sys/windows"

	"github.com/Norgate-AV/kta/internal/logger"
)

type RealProcessManager struct {
	log logger.LoggerInterface
}

func NewRealProcessManager(log logger.LoggerInterface) *RealProcessManager {
	return &RealProcessManager{log: log}
}

// Snapshot lists every running process
func (p *RealProcessManager) Snapshot() ([]ProcessInfo, error) {
	snapshot, err := xwindows.CreateToolhelp32Snapshot(xwindows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create process snapshot: %w", err)
	}
	defer func() { _ = xwindows.CloseHandle(snapshot) }()

	var entry xwindows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	if err := xwindows.Process32First(snapshot, &entry); err != nil {
		return nil, fmt.Errorf("failed to read first process: %w", err)
	}

	var processes []ProcessInfo
	for {
		processes = append(processes, ProcessInfo{
			Pid:       entry.ProcessID,
			ParentPid: entry.ParentProcessID,
			ExeName:   xwindows.UTF16ToString(entry.ExeFile[:]),
		})

		if err := xwindows.Process32Next(snapshot, &entry); err != nil {
			break
		}
	}

	p.log.Debug("Process snapshot taken", slog.Int("count", len(processes)))

	return processes, nil
}

// Terminate forcibly ends a single process
func (p *RealProcessManager) Terminate(pid uint32) error {
	handle, err := xwindows.OpenProcess(xwindows.PROCESS_TERMINATE, false, pid)
	if err != nil {
		return fmt.Errorf("failed to open process %d: %w", pid, err)
	}
	defer func() { _ = xwindows.CloseHandle(handle) }()

	if err := xwindows.TerminateProcess(handle, 1); err != nil {
		return fmt.Errorf("failed to terminate process %d: %w", pid, err)
	}

	p.log.Debug("Process terminated", slog.Uint64("pid", uint64(pid)))

	return nil
}

// Launch starts a program through the shell with a normal window
func (p *RealProcessManager) Launch(file string) error {
	verb, err := xwindows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}

	target, err := xwindows.UTF16PtrFromString(file)
	if err != nil {
		return err
	}

	if err := xwindows.ShellExecute(0, verb, target, nil, nil, SW_SHOWNORMAL); err != nil {
		return fmt.Errorf("ShellExecute failed for %s: %w", file, err)
	}

	p.log.Debug("Launched", slog.String("file", file))

	return nil
}

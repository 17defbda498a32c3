//go:build !windows

package windows

import (
	"errors"

	"github.com/Norgate-AV/kta/internal/logger"
)

// ErrUnsupported is returned by OS services on platforms other than Windows
var ErrUnsupported = errors.New("not supported on this platform")

type RealWindowManager struct{}

func NewRealWindowManager(_ logger.LoggerInterface) *RealWindowManager {
	return &RealWindowManager{}
}

func (w *RealWindowManager) GetPlacement(uintptr) (Placement, bool)      { return Placement{}, false }
func (w *RealWindowManager) SetPlacement(uintptr, Placement) bool        { return false }
func (w *RealWindowManager) ShowWindow(uintptr, int) bool                { return false }
func (w *RealWindowManager) SetForeground(uintptr) bool                  { return false }
func (w *RealWindowManager) GetAncestor(uintptr, uint32) uintptr         { return 0 }
func (w *RealWindowManager) IsIconic(uintptr) bool                       { return false }
func (w *RealWindowManager) BringToTop(uintptr) bool                     { return false }
func (w *RealWindowManager) SetFocus(uintptr) uintptr                    { return 0 }
func (w *RealWindowManager) WindowThreadID(uintptr) uint32               { return 0 }
func (w *RealWindowManager) CurrentThreadID() uint32                     { return 0 }
func (w *RealWindowManager) AttachThreadInput(uint32, uint32, bool) bool { return false }
func (w *RealWindowManager) TopLevelWindows() []WindowInfo               { return nil }

type RealInputInjector struct{}

func NewRealInputInjector(_ logger.LoggerInterface) *RealInputInjector {
	return &RealInputInjector{}
}

func (i *RealInputInjector) SendInput([]KeyEvent) uint32 { return 0 }

type RealPowerManager struct{}

func NewRealPowerManager(_ logger.LoggerInterface) *RealPowerManager {
	return &RealPowerManager{}
}

func (p *RealPowerManager) SetExecutionState(uint32) uint32 { return 0 }

type RealProcessManager struct{}

func NewRealProcessManager(_ logger.LoggerInterface) *RealProcessManager {
	return &RealProcessManager{}
}

func (p *RealProcessManager) Snapshot() ([]ProcessInfo, error) { return nil, ErrUnsupported }
func (p *RealProcessManager) Terminate(uint32) error           { return ErrUnsupported }
func (p *RealProcessManager) Launch(string) error              { return ErrUnsupported }

func AcquireSingleInstance(string) (func(), error) {
	return func() {}, nil
}

func IsElevated() bool {
	return false
}

func SetConsoleCtrlHandler(func(ctrlType uint32) bool) error {
	return nil
}

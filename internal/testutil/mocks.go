package testutil

import (
	"fmt"
	"sync"

	"github.com/Norgate-AV/kta/internal/windows"
)

// MockWindowManager records all calls for verification
type MockWindowManager struct {
	Calls       []string
	AttachCalls []AttachCall
	ShowCalls   []int

	Placement        windows.Placement
	PlacementOK      bool
	SetPlacementOK   bool
	SetPlacements    []windows.Placement
	ForegroundResult bool
	Ancestor         uintptr
	Iconic           bool
	BringToTopResult bool
	FocusResult      uintptr
	WindowThread     uint32
	CurrentThread    uint32
	AttachResult     bool
	Windows          []windows.WindowInfo
}

type AttachCall struct {
	From   uint32
	To     uint32
	Attach bool
}

func NewMockWindowManager() *MockWindowManager {
	return &MockWindowManager{
		Calls:            []string{},
		AttachCalls:      []AttachCall{},
		ShowCalls:        []int{},
		Placement:        windows.Placement{ShowCmd: windows.SW_SHOWNORMAL},
		PlacementOK:      true,
		SetPlacementOK:   true,
		ForegroundResult: true,
		BringToTopResult: true,
		FocusResult:      1,
		WindowThread:     100,
		CurrentThread:    100,
		AttachResult:     true,
	}
}

func (m *MockWindowManager) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

func (m *MockWindowManager) GetPlacement(hwnd uintptr) (windows.Placement, bool) {
	m.record("GetPlacement")
	return m.Placement, m.PlacementOK
}

func (m *MockWindowManager) SetPlacement(hwnd uintptr, p windows.Placement) bool {
	m.record("SetPlacement")
	m.SetPlacements = append(m.SetPlacements, p)
	return m.SetPlacementOK
}

func (m *MockWindowManager) ShowWindow(hwnd uintptr, cmd int) bool {
	m.record("ShowWindow(%d)", cmd)
	m.ShowCalls = append(m.ShowCalls, cmd)
	return true
}

func (m *MockWindowManager) SetForeground(hwnd uintptr) bool {
	m.record("SetForeground")
	return m.ForegroundResult
}

func (m *MockWindowManager) GetAncestor(hwnd uintptr, flags uint32) uintptr {
	m.record("GetAncestor(%d)", flags)
	if m.Ancestor == 0 {
		return hwnd
	}

	return m.Ancestor
}

func (m *MockWindowManager) IsIconic(hwnd uintptr) bool {
	m.record("IsIconic")
	return m.Iconic
}

func (m *MockWindowManager) BringToTop(hwnd uintptr) bool {
	m.record("BringToTop")
	return m.BringToTopResult
}

func (m *MockWindowManager) SetFocus(hwnd uintptr) uintptr {
	m.record("SetFocus")
	return m.FocusResult
}

func (m *MockWindowManager) WindowThreadID(hwnd uintptr) uint32 {
	return m.WindowThread
}

func (m *MockWindowManager) CurrentThreadID() uint32 {
	return m.CurrentThread
}

func (m *MockWindowManager) AttachThreadInput(from, to uint32, attach bool) bool {
	m.record("AttachThreadInput(%t)", attach)
	m.AttachCalls = append(m.AttachCalls, AttachCall{From: from, To: to, Attach: attach})

	if !attach {
		return true
	}

	return m.AttachResult
}

func (m *MockWindowManager) TopLevelWindows() []windows.WindowInfo {
	return m.Windows
}

// Detaches counts the AttachThreadInput calls that detached
func (m *MockWindowManager) Detaches() int {
	count := 0
	for _, c := range m.AttachCalls {
		if !c.Attach {
			count++
		}
	}

	return count
}

// Helper methods for fluent configuration
func (m *MockWindowManager) WithPlacement(showCmd uint32, ok bool) *MockWindowManager {
	m.Placement = windows.Placement{ShowCmd: showCmd}
	m.PlacementOK = ok
	return m
}

func (m *MockWindowManager) WithSetPlacementResult(ok bool) *MockWindowManager {
	m.SetPlacementOK = ok
	return m
}

func (m *MockWindowManager) WithThreads(window, current uint32) *MockWindowManager {
	m.WindowThread = window
	m.CurrentThread = current
	return m
}

func (m *MockWindowManager) WithAttachResult(ok bool) *MockWindowManager {
	m.AttachResult = ok
	return m
}

func (m *MockWindowManager) WithIconic(iconic bool) *MockWindowManager {
	m.Iconic = iconic
	return m
}

func (m *MockWindowManager) WithBringToTopResult(ok bool) *MockWindowManager {
	m.BringToTopResult = ok
	return m
}

func (m *MockWindowManager) WithFocusResult(prev uintptr) *MockWindowManager {
	m.FocusResult = prev
	return m
}

func (m *MockWindowManager) WithWindow(hwnd uintptr, pid uint32, title string) *MockWindowManager {
	m.Windows = append(m.Windows, windows.WindowInfo{Hwnd: hwnd, Pid: pid, Title: title})
	return m
}

// MockInputInjector captures submitted event batches
type MockInputInjector struct {
	Batches [][]windows.KeyEvent
	Reject  bool
}

func NewMockInputInjector() *MockInputInjector {
	return &MockInputInjector{Batches: [][]windows.KeyEvent{}}
}

func (m *MockInputInjector) SendInput(events []windows.KeyEvent) uint32 {
	m.Batches = append(m.Batches, events)
	if m.Reject {
		return 0
	}

	return uint32(len(events))
}

func (m *MockInputInjector) WithReject(reject bool) *MockInputInjector {
	m.Reject = reject
	return m
}

// MockKeyboardInjector records every key sent
type MockKeyboardInjector struct {
	mu     sync.Mutex
	Sent   []SentKey
	Result bool
}

type SentKey struct {
	Hwnd      uintptr
	Key       uint16
	Modifiers []uint16
}

func NewMockKeyboardInjector() *MockKeyboardInjector {
	return &MockKeyboardInjector{Result: true}
}

func (m *MockKeyboardInjector) SendKey(hwnd uintptr, key uint16, modifiers ...uint16) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Sent = append(m.Sent, SentKey{Hwnd: hwnd, Key: key, Modifiers: modifiers})
	return m.Result
}

func (m *MockKeyboardInjector) WithResult(result bool) *MockKeyboardInjector {
	m.Result = result
	return m
}

// SentCount returns how many keys were sent
func (m *MockKeyboardInjector) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Sent)
}

// MockPowerManager records execution state changes
type MockPowerManager struct {
	mu     sync.Mutex
	States []uint32
	Result uint32
}

func NewMockPowerManager() *MockPowerManager {
	return &MockPowerManager{States: []uint32{}, Result: windows.ES_CONTINUOUS}
}

func (m *MockPowerManager) SetExecutionState(flags uint32) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.States = append(m.States, flags)
	return m.Result
}

func (m *MockPowerManager) WithResult(result uint32) *MockPowerManager {
	m.Result = result
	return m
}

// Calls returns a copy of the recorded states
func (m *MockPowerManager) Calls() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]uint32(nil), m.States...)
}

// MockProcessManager serves a fixed process table
type MockProcessManager struct {
	mu           sync.Mutex
	Processes    []windows.ProcessInfo
	SnapshotErr  error
	Terminated   []uint32
	TerminateErr map[uint32]error
	Launched     []string
	LaunchErr    error
}

func NewMockProcessManager() *MockProcessManager {
	return &MockProcessManager{
		Processes:    []windows.ProcessInfo{},
		Terminated:   []uint32{},
		TerminateErr: make(map[uint32]error),
		Launched:     []string{},
	}
}

func (m *MockProcessManager) Snapshot() ([]windows.ProcessInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SnapshotErr != nil {
		return nil, m.SnapshotErr
	}

	return append([]windows.ProcessInfo(nil), m.Processes...), nil
}

func (m *MockProcessManager) Terminate(pid uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Terminated = append(m.Terminated, pid)
	return m.TerminateErr[pid]
}

func (m *MockProcessManager) Launch(file string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Launched = append(m.Launched, file)
	return m.LaunchErr
}

func (m *MockProcessManager) WithProcess(pid, parent uint32, exe string) *MockProcessManager {
	m.Processes = append(m.Processes, windows.ProcessInfo{Pid: pid, ParentPid: parent, ExeName: exe})
	return m
}

func (m *MockProcessManager) WithSnapshotError(err error) *MockProcessManager {
	m.SnapshotErr = err
	return m
}

func (m *MockProcessManager) WithTerminateError(pid uint32, err error) *MockProcessManager {
	m.TerminateErr[pid] = err
	return m
}

func (m *MockProcessManager) WithLaunchError(err error) *MockProcessManager {
	m.LaunchErr = err
	return m
}

// TerminatedPids returns a copy of the terminated pids
func (m *MockProcessManager) TerminatedPids() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]uint32(nil), m.Terminated...)
}

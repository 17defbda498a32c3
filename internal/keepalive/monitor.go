// Package keepalive periodically nudges the tracked window and holds the
// system awake while monitoring.
package keepalive

import (
	"log/slog"
	"sync"

	"github.com/Norgate-AV/kta/internal/interfaces"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/windows"
)

// AwakeState keeps the system and display on until reset
const AwakeState = windows.ES_CONTINUOUS | windows.ES_SYSTEM_REQUIRED | windows.ES_DISPLAY_REQUIRED

// WindowSource resolves the window that receives the keep-alive key
type WindowSource interface {
	Window() uintptr
}

// Key is a key press with optional modifiers
type Key struct {
	VK        uint16
	Modifiers []uint16
}

// Monitor is the keep-alive state machine. It is Idle until Start and returns to
// Idle on Stop.
type Monitor struct {
	log      logger.LoggerInterface
	source   WindowSource
	keyboard interfaces.KeyboardInjector
	power    interfaces.PowerManager
	key      Key

	mu         sync.Mutex
	monitoring bool
}

func NewMonitor(
	log logger.LoggerInterface,
	source WindowSource,
	keyboard interfaces.KeyboardInjector,
	power interfaces.PowerManager,
	key Key,
) *Monitor {
	return &Monitor{
		log:      log,
		source:   source,
		keyboard: keyboard,
		power:    power,
		key:      key,
	}
}

func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.monitoring = true
	m.log.Debug("Keep-alive monitoring started")
}

// Monitoring reports whether the monitor is started
func (m *Monitor) Monitoring() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.monitoring
}

// Tick sends the keep-alive key and reasserts the awake state. It must run on
// the thread that owns the execution state.
func (m *Monitor) Tick() {
	if !m.Monitoring() {
		return
	}

	hwnd := m.source.Window()
	if hwnd == 0 {
		m.log.Warn("Teams window not found, skipping key press")
	} else if !m.keyboard.SendKey(hwnd, m.key.VK, m.key.Modifiers...) {
		m.log.Debug("Key press was not delivered", slog.Uint64("hwnd", uint64(hwnd)))
	}

	if m.power.SetExecutionState(AwakeState) == 0 {
		m.log.Warn("SetThreadExecutionState failed")
	}
}

// Stop returns to Idle and releases the awake state. It reports false and makes
// no OS call when monitoring was never started.
func (m *Monitor) Stop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.monitoring {
		return false
	}

	m.monitoring = false

	if m.power.SetExecutionState(windows.ES_CONTINUOUS) == 0 {
		m.log.Warn("Failed to reset execution state")
	}

	m.log.Debug("Keep-alive monitoring stopped")

	return true
}

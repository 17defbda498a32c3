// Package keyboard builds and submits synthetic key presses.
package keyboard

import (
	"log/slog"

	"github.com/Norgate-AV/kta/internal/interfaces"
	"github.com/Norgate-AV/kta/internal/logger"
)

// Focuser is the part of focus.Focuser the injector needs
type Focuser interface {
	FocusForInput(hwnd uintptr) bool
}

// Injector sends key presses to a window after giving it focus
type Injector struct {
	log   logger.LoggerInterface
	focus Focuser
	input interfaces.InputInjector
}

func NewInjector(log logger.LoggerInterface, focus Focuser, input interfaces.InputInjector) *Injector {
	return &Injector{log: log, focus: focus, input: input}
}

// SendKey focuses hwnd and submits one press of key, wrapped in the modifiers
func (k *Injector) SendKey(hwnd uintptr, key uint16, modifiers ...uint16) bool {
	if !k.focus.FocusForInput(hwnd) {
		k.log.Debug("Could not focus window for input", slog.Uint64("hwnd", uint64(hwnd)))
		return false
	}

	events := BuildEvents(key, modifiers)
	accepted := k.input.SendInput(events)

	k.log.Debug("Key sent",
		slog.Uint64("hwnd", uint64(hwnd)),
		slog.Uint64("vk", uint64(key)),
		slog.Int("events", len(events)),
		slog.Uint64("accepted", uint64(accepted)))

	return accepted > 0
}

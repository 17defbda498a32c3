package keyboard

import (
	"github.com/Norgate-AV/kta/internal/windows"
)

// IsExtendedKey reports whether vk lives on the extended part of the keyboard
func IsExtendedKey(vk uint16) bool {
	switch vk {
	case VK_UP, VK_DOWN, VK_LEFT, VK_RIGHT,
		VK_HOME, VK_END, VK_PRIOR, VK_NEXT,
		VK_INSERT, VK_DELETE:
		return true
	default:
		return false
	}
}

// BuildEvents returns the batch for one key press: modifiers down, key down,
// key up, modifiers up
func BuildEvents(key uint16, modifiers []uint16) []windows.KeyEvent {
	events := make([]windows.KeyEvent, 0, 2+2*len(modifiers))

	for _, m := range modifiers {
		events = append(events, windows.KeyEvent{VK: m})
	}

	var flags uint32
	if IsExtendedKey(key) {
		flags = windows.KEYEVENTF_EXTENDEDKEY
	}

	events = append(events,
		windows.KeyEvent{VK: key, Flags: flags},
		windows.KeyEvent{VK: key, Flags: flags | windows.KEYEVENTF_KEYUP},
	)

	for _, m := range modifiers {
		events = append(events, windows.KeyEvent{VK: m, Flags: windows.KEYEVENTF_KEYUP})
	}

	return events
}

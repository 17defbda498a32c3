package keyboard

import (
	"fmt"
	"sort"
	"strings"
)

// Virtual-key codes
const (
	VK_SHIFT   uint16 = 0x10
	VK_CONTROL uint16 = 0x11
	VK_MENU    uint16 = 0x12
	VK_LWIN    uint16 = 0x5B

	VK_SPACE  uint16 = 0x20
	VK_PRIOR  uint16 = 0x21
	VK_NEXT   uint16 = 0x22
	VK_END    uint16 = 0x23
	VK_HOME   uint16 = 0x24
	VK_LEFT   uint16 = 0x25
	VK_UP     uint16 = 0x26
	VK_RIGHT  uint16 = 0x27
	VK_DOWN   uint16 = 0x28
	VK_INSERT uint16 = 0x2D
	VK_DELETE uint16 = 0x2E

	VK_RETURN uint16 = 0x0D
	VK_ESCAPE uint16 = 0x1B
	VK_TAB    uint16 = 0x09

	VK_SCROLL uint16 = 0x91

	VK_F1  uint16 = 0x70
	VK_F15 uint16 = 0x7E
	VK_F24 uint16 = 0x87
)

// DefaultKey is the key sent on every keep-alive tick
const DefaultKey = "F15"

var namedKeys = map[string]uint16{
	"shift":    VK_SHIFT,
	"ctrl":     VK_CONTROL,
	"control":  VK_CONTROL,
	"alt":      VK_MENU,
	"menu":     VK_MENU,
	"space":    VK_SPACE,
	"pageup":   VK_PRIOR,
	"prior":    VK_PRIOR,
	"pagedown": VK_NEXT,
	"next":     VK_NEXT,
	"end":      VK_END,
	"home":     VK_HOME,
	"left":     VK_LEFT,
	"up":       VK_UP,
	"right":    VK_RIGHT,
	"down":     VK_DOWN,
	"insert":   VK_INSERT,
	"delete":   VK_DELETE,
	"enter":    VK_RETURN,
	"escape":   VK_ESCAPE,
	"tab":      VK_TAB,
	"scroll":   VK_SCROLL,
}

var modifierKeys = map[uint16]bool{
	VK_SHIFT:   true,
	VK_CONTROL: true,
	VK_MENU:    true,
	VK_LWIN:    true,
}

// ParseKey resolves a key name such as "F15", "Home" or "A" to its virtual-key code.
// Names are case-insensitive.
func ParseKey(name string) (uint16, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return 0, fmt.Errorf("empty key name")
	}

	if vk, ok := namedKeys[n]; ok {
		return vk, nil
	}

	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint16(c - 'a' + 'A'), nil
		case c >= '0' && c <= '9':
			return uint16(c), nil
		}
	}

	var num int
	if _, err := fmt.Sscanf(n, "f%d", &num); err == nil && fmt.Sprintf("f%d", num) == n && num >= 1 && num <= 24 {
		return VK_F1 + uint16(num-1), nil
	}

	return 0, fmt.Errorf("unknown key %q (known: F1-F24, A-Z, 0-9, %s)", name, strings.Join(knownNames(), ", "))
}

// IsModifier reports whether vk is a modifier key
func IsModifier(vk uint16) bool {
	return modifierKeys[vk]
}

func knownNames() []string {
	names := make([]string, 0, len(namedKeys))
	for n := range namedKeys {
		names = append(names, n)
	}

	sort.Strings(names)
	return names
}

// ParseCombo resolves a combination such as "Ctrl+Shift+F15" into the key and
// its modifiers. A single name parses to a key with no modifiers.
func ParseCombo(combo string) (uint16, []uint16, error) {
	parts := strings.Split(combo, "+")

	var modifiers []uint16
	for _, p := range parts[:len(parts)-1] {
		vk, err := ParseKey(p)
		if err != nil {
			return 0, nil, err
		}

		if !IsModifier(vk) {
			return 0, nil, fmt.Errorf("%q is not a modifier key", strings.TrimSpace(p))
		}

		modifiers = append(modifiers, vk)
	}

	key, err := ParseKey(parts[len(parts)-1])
	if err != nil {
		return 0, nil, err
	}

	return key, modifiers, nil
}

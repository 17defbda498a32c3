package windows

import (
	"errors"
	"strings"

	"github.com/Norgate-AV/kta/internal/logger"
)

// ErrAlreadyRunning is returned by AcquireSingleInstance when another instance holds the mutex
var ErrAlreadyRunning = errors.New("another instance is already running")

// Client bundles the OS services the application depends on
type Client struct {
	Window  *RealWindowManager
	Input   *RealInputInjector
	Power   *RealPowerManager
	Process *RealProcessManager
}

// NewClient creates a new client with real OS implementations
func NewClient(log logger.LoggerInterface) *Client {
	return &Client{
		Window:  NewRealWindowManager(log),
		Input:   NewRealInputInjector(log),
		Power:   NewRealPowerManager(log),
		Process: NewRealProcessManager(log),
	}
}

func formatFlags(flags uint32) string {
	if flags == 0 {
		return "0"
	}

	var names []string
	if flags&ES_CONTINUOUS != 0 {
		names = append(names, "ES_CONTINUOUS")
	}

	if flags&ES_SYSTEM_REQUIRED != 0 {
		names = append(names, "ES_SYSTEM_REQUIRED")
	}

	if flags&ES_DISPLAY_REQUIRED != 0 {
		names = append(names, "ES_DISPLAY_REQUIRED")
	}

	return strings.Join(names, "|")
}

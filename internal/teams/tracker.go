package teams

import (
	"log/slog"
	"sync"

	"github.com/Norgate-AV/kta/internal/logger"
)

// Tracker holds the current target and re-resolves its window while it is unknown
type Tracker struct {
	log    logger.LoggerInterface
	client *Client
	names  []string

	mu     sync.Mutex
	target *Target
}

func NewTracker(log logger.LoggerInterface, client *Client, names []string, target *Target) *Tracker {
	return &Tracker{log: log, client: client, names: names, target: target}
}

// Window returns the tracked window handle. While it is zero the processes are
// located again, which picks up a Teams instance launched after startup.
func (t *Tracker) Window() uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.target != nil && t.target.Hwnd != 0 {
		return t.target.Hwnd
	}

	target, err := t.client.Locate(t.names)
	if err != nil {
		t.log.Debug("Could not re-locate Teams", slog.Any("error", err))
		return 0
	}

	t.target = target
	return target.Hwnd
}

// Track replaces the tracked target
func (t *Tracker) Track(target *Target) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.target = target
}

// Target returns a copy of the tracked target
func (t *Tracker) Target() *Target {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.target == nil {
		return nil
	}

	cp := *t.target
	cp.Pids = append([]uint32(nil), t.target.Pids...)
	return &cp
}

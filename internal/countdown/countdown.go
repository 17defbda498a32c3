// Package countdown counts down to a time of day and fires an action when it is reached.
package countdown

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Norgate-AV/kta/internal/interfaces"
	"github.com/Norgate-AV/kta/internal/logger"
)

// ErrTimeInPast is returned when the target is earlier than the current time of day
var ErrTimeInPast = errors.New("Cannot set a time before current date time")

var timeOfDayLayouts = []string{"15:04", "15:04:05", "3:04PM", "3:04:05PM"}

// Timer is the countdown state machine. It is Stopped until Start succeeds and
// returns to Stopped on Stop or expiry.
type Timer struct {
	log      logger.LoggerInterface
	display  interfaces.Display
	now      func() time.Time
	onExpire func()

	mu      sync.Mutex
	running bool
	target  time.Duration
}

// NewTimer creates a stopped timer. now defaults to time.Now.
func NewTimer(log logger.LoggerInterface, display interfaces.Display, now func() time.Time, onExpire func()) *Timer {
	if now == nil {
		now = time.Now
	}

	return &Timer{
		log:      log,
		display:  display,
		now:      now,
		onExpire: onExpire,
	}
}

// Start begins counting down to target, a duration since midnight
func (t *Timer) Start(target time.Duration) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	current := TimeOfDay(t.now())
	if target < current {
		return ErrTimeInPast
	}

	t.target = target
	t.running = true
	t.display.SetCountdown(FormatRemaining(target - current))

	t.log.Info("Countdown started", slog.String("until", FormatRemaining(target)))

	return nil
}

// Tick updates the display and fires the expiry action once the target is reached
func (t *Timer) Tick() {
	t.mu.Lock()

	if !t.running {
		t.mu.Unlock()
		return
	}

	remaining := t.target - TimeOfDay(t.now())
	if remaining > 0 {
		t.display.SetCountdown(FormatRemaining(remaining))
		t.mu.Unlock()
		return
	}

	t.running = false
	t.display.SetCountdown(FormatRemaining(0))
	t.mu.Unlock()

	t.log.Info("Countdown reached")

	if t.onExpire != nil {
		t.onExpire()
	}
}

// Stop cancels the countdown and hides the display
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	wasRunning := t.running
	t.running = false
	t.display.HideCountdown()

	if wasRunning {
		t.log.Info("Countdown stopped")
	}
}

// Running reports whether a countdown is in progress
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.running
}

// Target returns the time of day being counted down to
func (t *Timer) Target() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.target
}

// TimeOfDay returns the time elapsed since midnight
func TimeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// FormatRemaining renders d as hh:mm:ss, truncated to whole seconds. Negative
// values render as 00:00:00.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// ParseTimeOfDay parses a clock time such as "17:30", "17:30:15" or "5:30PM"
func ParseTimeOfDay(s string) (time.Duration, error) {
	value := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))

	for _, layout := range timeOfDayLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return TimeOfDay(parsed), nil
		}
	}

	return 0, fmt.Errorf("invalid time %q, expected HH:MM, HH:MM:SS or H:MMPM", s)
}

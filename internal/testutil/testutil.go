package testutil

import (
	"sync"
	"time"
)

// MockDisplay captures everything shown to the user
type MockDisplay struct {
	mu         sync.Mutex
	Statuses   []string
	Messages   []Message
	Countdowns []string
	Hidden     int
}

type Message struct {
	Text    string
	Caption string
}

func NewMockDisplay() *MockDisplay {
	return &MockDisplay{}
}

func (d *MockDisplay) SetStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Statuses = append(d.Statuses, text)
}

func (d *MockDisplay) ShowMessage(text, caption string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Messages = append(d.Messages, Message{Text: text, Caption: caption})
}

func (d *MockDisplay) SetCountdown(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Countdowns = append(d.Countdowns, text)
}

func (d *MockDisplay) HideCountdown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.Hidden++
}

// LastStatus returns the most recent status line, or "" if none
func (d *MockDisplay) LastStatus() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.Statuses) == 0 {
		return ""
	}

	return d.Statuses[len(d.Statuses)-1]
}

// MessageList returns a copy of the shown messages
func (d *MockDisplay) MessageList() []Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]Message(nil), d.Messages...)
}

// CountdownList returns a copy of the countdown values
func (d *MockDisplay) CountdownList() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.Countdowns...)
}

// FakeClock is a settable time source
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock creates a clock fixed at hh:mm:ss on an arbitrary day
func NewFakeClock(hour, minute, second int) *FakeClock {
	return &FakeClock{now: time.Date(2024, time.March, 4, hour, minute, second, 0, time.Local)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}


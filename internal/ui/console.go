// Package ui renders the status, messages and countdown on the console.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// CountdownPrefix precedes the remaining time on the countdown line
const CountdownPrefix = "Time remaining: "

// Console writes user-facing output. Warnings and errors go to the error writer.
type Console struct {
	mu            sync.Mutex
	out           io.Writer
	err           io.Writer
	countdownOpen bool
}

// NewConsole creates a console. Nil writers default to stdout and stderr.
func NewConsole(out, err io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}

	if err == nil {
		err = os.Stderr
	}

	return &Console{out: out, err: err}
}

func (c *Console) SetStatus(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endCountdownLine()
	_, _ = fmt.Fprintln(c.out, text)
}

func (c *Console) ShowMessage(text, caption string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endCountdownLine()

	w := c.out
	if strings.EqualFold(caption, "Warning") || strings.EqualFold(caption, "Error") {
		w = c.err
	}

	if caption == "" {
		_, _ = fmt.Fprintln(w, text)
		return
	}

	_, _ = fmt.Fprintf(w, "%s: %s\n", caption, text)
}

// SetCountdown rewrites the countdown line in place
func (c *Console) SetCountdown(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprintf(c.out, "\r%s%s", CountdownPrefix, text)
	c.countdownOpen = true
}

func (c *Console) HideCountdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endCountdownLine()
}

func (c *Console) endCountdownLine() {
	if c.countdownOpen {
		_, _ = fmt.Fprintln(c.out)
		c.countdownOpen = false
	}
}

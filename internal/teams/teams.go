// Package teams finds, launches and terminates the Teams processes.
package teams

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Norgate-AV/kta/internal/interfaces"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/windows"
)

// ErrNotRunning is returned when no process matches any candidate name
var ErrNotRunning = errors.New("Teams is not running!")

// DefaultProcessNames are tried in order, classic Teams first
var DefaultProcessNames = []string{"Teams", "ms-teams"}

// DefaultExecutable is launched when Teams runs without a main window
const DefaultExecutable = "ms-teams.exe"

// Target is the set of processes being kept alive
type Target struct {
	Name string
	Pids []uint32
	Hwnd uintptr
}

// Client provides methods for interacting with Teams processes
type Client struct {
	log  logger.LoggerInterface
	proc interfaces.ProcessManager
	win  interfaces.WindowManager
}

// NewClient creates a new Teams client
func NewClient(log logger.LoggerInterface, proc interfaces.ProcessManager, win interfaces.WindowManager) *Client {
	return &Client{log: log, proc: proc, win: win}
}

// Locate returns every process matching the first candidate name that has any
// match, together with its main window. The window may be zero.
func (c *Client) Locate(names []string) (*Target, error) {
	processes, err := c.proc.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	for _, name := range names {
		var pids []uint32
		for _, p := range processes {
			if matchesName(p.ExeName, name) {
				pids = append(pids, p.Pid)
			}
		}

		if len(pids) == 0 {
			c.log.Debug("No process found", slog.String("name", name))
			continue
		}

		target := &Target{Name: name, Pids: pids, Hwnd: c.MainWindow(pids)}

		c.log.Debug("Found Teams",
			slog.String("name", name),
			slog.Int("processes", len(pids)),
			slog.Uint64("hwnd", uint64(target.Hwnd)))

		return target, nil
	}

	return nil, ErrNotRunning
}

// MainWindow returns the first visible, unowned top-level window owned by any of pids
func (c *Client) MainWindow(pids []uint32) uintptr {
	owned := make(map[uint32]bool, len(pids))
	for _, pid := range pids {
		owned[pid] = true
	}

	for _, w := range c.win.TopLevelWindows() {
		if owned[w.Pid] {
			c.log.Debug("Main window found",
				slog.String("title", w.Title),
				slog.Uint64("hwnd", uint64(w.Hwnd)))

			return w.Hwnd
		}
	}

	return 0
}

// Launch starts Teams through the shell. Success of the spawned process is not verified.
func (c *Client) Launch(executable string) error {
	if executable == "" {
		executable = DefaultExecutable
	}

	c.log.Info("Starting Teams", slog.String("executable", executable))

	if err := c.proc.Launch(executable); err != nil {
		return fmt.Errorf("failed to launch %s: %w", executable, err)
	}

	return nil
}

// Terminate kills every tracked process together with its descendants.
// Failures are logged per process and joined into the returned error.
func (c *Client) Terminate(t *Target) error {
	if t == nil || len(t.Pids) == 0 {
		return nil
	}

	var parents map[uint32][]uint32
	if processes, err := c.proc.Snapshot(); err != nil {
		c.log.Warn("Could not list child processes", slog.Any("error", err))
	} else {
		parents = childrenByParent(processes)
	}

	var errs []error
	for _, pid := range processTree(t.Pids, parents) {
		if err := c.proc.Terminate(pid); err != nil {
			c.log.Warn("Failed to terminate process", slog.Uint64("pid", uint64(pid)), slog.Any("error", err))
			errs = append(errs, err)
			continue
		}

		c.log.Info("Terminated process", slog.Uint64("pid", uint64(pid)))
	}

	return errors.Join(errs...)
}

func matchesName(exeName, name string) bool {
	return strings.EqualFold(trimExe(exeName), trimExe(name))
}

func trimExe(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > 4 && strings.EqualFold(name[len(name)-4:], ".exe") {
		return name[:len(name)-4]
	}

	return name
}

func childrenByParent(processes []windows.ProcessInfo) map[uint32][]uint32 {
	children := make(map[uint32][]uint32)
	for _, p := range processes {
		if p.Pid == 0 || p.Pid == p.ParentPid {
			continue
		}

		children[p.ParentPid] = append(children[p.ParentPid], p.Pid)
	}

	return children
}

// processTree lists roots and their descendants breadth first, each pid once
func processTree(roots []uint32, children map[uint32][]uint32) []uint32 {
	seen := make(map[uint32]bool)
	var order []uint32

	queue := append([]uint32(nil), roots...)
	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]

		if pid == 0 || seen[pid] {
			continue
		}

		seen[pid] = true
		order = append(order, pid)
		queue = append(queue, children[pid]...)
	}

	return order
}

// Package app wires the keep-alive and countdown state machines into a single
// event loop that owns every thread-affine OS call.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/Norgate-AV/kta/internal/countdown"
	"github.com/Norgate-AV/kta/internal/focus"
	"github.com/Norgate-AV/kta/internal/interfaces"
	"github.com/Norgate-AV/kta/internal/keepalive"
	"github.com/Norgate-AV/kta/internal/keyboard"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/teams"
	"github.com/Norgate-AV/kta/internal/timeouts"
)

// Status texts shown to the user
const (
	StatusStarting = "Starting teams..."
	StatusReady    = "Close this application if you want to back to work."
)

// ErrClosed is returned by Submit once the loop has exited
var ErrClosed = errors.New("application is closed")

// Options configures the application
type Options struct {
	ProcessNames      []string
	Executable        string
	Key               keepalive.Key
	Interval          time.Duration
	CountdownInterval time.Duration
	LaunchSettleDelay time.Duration
}

// Deps are the OS services the application drives
type Deps struct {
	Window  interfaces.WindowManager
	Input   interfaces.InputInjector
	Power   interfaces.PowerManager
	Process interfaces.ProcessManager
	Display interfaces.Display
	Now     func() time.Time
}

// App is the keep-alive application
type App struct {
	log     logger.LoggerInterface
	opts    Options
	display interfaces.Display

	teams     *teams.Client
	tracker   *teams.Tracker
	focus     *focus.Focuser
	monitor   *keepalive.Monitor
	countdown *countdown.Timer

	commands     chan Command
	done         chan struct{}
	stopped      chan struct{}
	closeOnce    sync.Once
	shutdownOnce sync.Once
}

// New creates an application. Zero options fall back to their defaults.
func New(log logger.LoggerInterface, opts Options, deps Deps) *App {
	if len(opts.ProcessNames) == 0 {
		opts.ProcessNames = teams.DefaultProcessNames
	}

	if opts.Executable == "" {
		opts.Executable = teams.DefaultExecutable
	}

	if opts.Key.VK == 0 {
		opts.Key.VK = keyboard.VK_F15
	}

	if opts.Interval <= 0 {
		opts.Interval = timeouts.KeepAliveInterval
	}

	if opts.CountdownInterval <= 0 {
		opts.CountdownInterval = timeouts.CountdownInterval
	}

	a := &App{
		log:      log,
		opts:     opts,
		display:  deps.Display,
		commands: make(chan Command, 8),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	a.teams = teams.NewClient(log, deps.Process, deps.Window)
	a.tracker = teams.NewTracker(log, a.teams, opts.ProcessNames, nil)
	a.focus = focus.NewFocuser(log, deps.Window)

	injector := keyboard.NewInjector(log, a.focus, deps.Input)
	a.monitor = keepalive.NewMonitor(log, a.tracker, injector, deps.Power, opts.Key)
	a.countdown = countdown.NewTimer(log, deps.Display, deps.Now, a.expire)

	return a
}

// Load locates Teams, brings it forward and starts monitoring. When Teams is
// not running the warning is shown and teams.ErrNotRunning is returned.
func (a *App) Load() error {
	target, err := a.teams.Locate(a.opts.ProcessNames)
	if errors.Is(err, teams.ErrNotRunning) {
		a.display.ShowMessage(err.Error(), "Warning")
		return err
	}

	if err != nil {
		return fmt.Errorf("failed to locate Teams: %w", err)
	}

	a.tracker.Track(target)

	if target.Hwnd != 0 {
		a.focus.Activate(target.Hwnd)
	} else {
		a.launch()
	}

	a.display.SetStatus(StatusReady)
	a.monitor.Start()

	a.log.Info("Monitoring Teams",
		slog.String("process", target.Name),
		slog.Int("processes", len(target.Pids)),
		slog.String("interval", a.opts.Interval.String()))

	return nil
}

func (a *App) launch() {
	a.display.SetStatus(StatusStarting)

	if err := a.teams.Launch(a.opts.Executable); err != nil {
		a.log.Warn("Could not start Teams", slog.Any("error", err))
		return
	}

	if a.opts.LaunchSettleDelay > 0 {
		time.Sleep(a.opts.LaunchSettleDelay)
	}

	if hwnd := a.tracker.Window(); hwnd != 0 {
		a.focus.Activate(hwnd)
	}
}

// Run drives both tickers and queued commands until ctx is cancelled, Close is
// called or the countdown expires. It pins the calling goroutine to its OS
// thread because the execution state belongs to that thread, and always runs
// Shutdown from it before returning.
func (a *App) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer close(a.stopped)
	defer a.Shutdown()

	keepAlive := time.NewTicker(a.opts.Interval)
	defer keepAlive.Stop()

	tick := time.NewTicker(a.opts.CountdownInterval)
	defer tick.Stop()

	a.log.Debug("Event loop started")

	for {
		select {
		case <-ctx.Done():
			a.log.Debug("Event loop cancelled")
			return nil
		case <-a.done:
			a.log.Debug("Event loop closed")
			return nil
		case <-keepAlive.C:
			a.monitor.Tick()
		case <-tick.C:
			a.countdown.Tick()
		case cmd := <-a.commands:
			a.handle(cmd)
		}
	}
}

// Close asks the event loop to exit
func (a *App) Close() {
	a.closeOnce.Do(func() { close(a.done) })
}

// Stopped is closed once Run has shut down
func (a *App) Stopped() <-chan struct{} {
	return a.stopped
}

// Shutdown stops the countdown and releases the awake state. It is safe to call
// more than once and makes no OS call if monitoring never started.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.log.Debug("Shutting down")

		if a.countdown.Running() {
			a.countdown.Stop()
		}

		a.monitor.Stop()
	})
}

// StartCountdown starts counting down to a time of day. Validation errors are
// shown to the user and leave the countdown unchanged.
func (a *App) StartCountdown(tod time.Duration) error {
	if err := a.countdown.Start(tod); err != nil {
		a.display.ShowMessage(err.Error(), "Error")
		return err
	}

	return nil
}

// StopCountdown cancels the countdown. Monitoring continues.
func (a *App) StopCountdown() {
	a.countdown.Stop()
}

// Submit hands a command to the event loop
func (a *App) Submit(cmd Command) error {
	select {
	case <-a.done:
		return ErrClosed
	default:
	}

	select {
	case a.commands <- cmd:
		return nil
	case <-a.done:
		return ErrClosed
	}
}

// Monitoring reports whether keep-alive monitoring is active
func (a *App) Monitoring() bool {
	return a.monitor.Monitoring()
}

// CountdownRunning reports whether a countdown is in progress
func (a *App) CountdownRunning() bool {
	return a.countdown.Running()
}

// expire terminates the tracked processes and closes the application
func (a *App) expire() {
	target := a.tracker.Target()

	a.log.Info("Countdown finished, closing Teams")

	if err := a.teams.Terminate(target); err != nil {
		a.log.Warn("Some Teams processes could not be terminated", slog.Any("error", err))
	}

	a.Close()
}

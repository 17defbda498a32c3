package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Norgate-AV/kta/internal/countdown"
)

// CommandKind identifies a console command
type CommandKind int

const (
	CommandUntil CommandKind = iota
	CommandStop
	CommandStatus
	CommandQuit
)

func (k CommandKind) String() string {
	switch k {
	case CommandUntil:
		return "until"
	case CommandStop:
		return "stop"
	case CommandStatus:
		return "status"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is a request for the event loop
type Command struct {
	Kind CommandKind
	Arg  string
}

// ParseCommand parses one console line such as "until 17:30" or "quit"
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	name := strings.ToLower(fields[0])
	arg := strings.Join(fields[1:], " ")

	switch name {
	case "until", "start":
		if arg == "" {
			return Command{}, fmt.Errorf("usage: %s <time>", name)
		}

		return Command{Kind: CommandUntil, Arg: arg}, nil
	case "stop":
		return Command{Kind: CommandStop}, nil
	case "status":
		return Command{Kind: CommandStatus}, nil
	case "quit", "exit":
		return Command{Kind: CommandQuit}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q (try: until <time>, stop, status, quit)", fields[0])
	}
}

func (a *App) handle(cmd Command) {
	a.log.Debug("Command received", slog.String("command", cmd.Kind.String()), slog.String("arg", cmd.Arg))

	switch cmd.Kind {
	case CommandUntil:
		tod, err := countdown.ParseTimeOfDay(cmd.Arg)
		if err != nil {
			a.display.ShowMessage(err.Error(), "Error")
			return
		}

		_ = a.StartCountdown(tod)
	case CommandStop:
		a.StopCountdown()
	case CommandStatus:
		a.display.ShowMessage(a.status(), "Status")
	case CommandQuit:
		a.Close()
	}
}

func (a *App) status() string {
	target := a.tracker.Target()

	var b strings.Builder
	if target == nil || !a.monitor.Monitoring() {
		b.WriteString("not monitoring")
	} else {
		fmt.Fprintf(&b, "monitoring %s (%d processes, window %d) every %s",
			target.Name, len(target.Pids), target.Hwnd, a.opts.Interval)
	}

	if a.countdown.Running() {
		fmt.Fprintf(&b, ", closing Teams at %s", countdown.FormatRemaining(a.countdown.Target()))
	}

	return b.String()
}

// ReadCommands submits each line read from r until EOF, ctx is cancelled or the
// application closes. Invalid lines are reported on the display.
func (a *App) ReadCommands(ctx context.Context, r io.Reader) {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			a.display.ShowMessage(err.Error(), "Error")
			continue
		}

		if err := a.Submit(cmd); err != nil {
			return
		}
	}
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/kta/internal/app"
	"github.com/Norgate-AV/kta/internal/config"
	"github.com/Norgate-AV/kta/internal/keepalive"
	"github.com/Norgate-AV/kta/internal/logger"
	"github.com/Norgate-AV/kta/internal/timeouts"
	"github.com/Norgate-AV/kta/internal/ui"
	"github.com/Norgate-AV/kta/internal/version"
	"github.com/Norgate-AV/kta/internal/windows"
)

// InstanceMutexName marks the running instance for the current session
const InstanceMutexName = `Local\kta-single-instance`

// ExitAlreadyRunning is the exit code when another instance owns the mutex
const ExitAlreadyRunning = -9

var (
	verbose    bool
	showLogs   bool
	until      string
	interval   string
	key        string
	configPath string

	// osExit is swapped out in tests
	osExit = os.Exit
)

var RootCmd = &cobra.Command{
	Use:   "kta",
	Short: "kta - Keep Microsoft Teams from going idle",
	Long: `kta periodically sends a harmless key press to the Teams window and keeps
the system awake. Optionally it closes Teams at a chosen time of day.

While running, type a command and press Enter:
  until <time>   close Teams at the given time (e.g. 17:30 or 5:30PM)
  stop           cancel the countdown
  status         show what is being monitored
  quit           exit`,
	Version:       version.GetVersion(),
	Args:          cobra.NoArgs,
	RunE:          Execute,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&showLogs, "logs", "l", false, "print the log file and exit")
	RootCmd.Flags().StringVarP(&until, "until", "u", "", "close Teams at this time of day (e.g. 17:30)")
	RootCmd.Flags().StringVar(&interval, "interval", "", "time between key presses (default 4m)")
	RootCmd.Flags().StringVar(&key, "key", "", "key sent to Teams, e.g. F15 or Shift+F14 (default F15)")
	RootCmd.Flags().StringVar(&configPath, "config", "", "config file (default %APPDATA%\\kta\\config.yaml)")
}

func Execute(cmd *cobra.Command, args []string) error {
	if showLogs {
		if err := logger.PrintLogFile(cmd.OutOrStdout(), logger.LoggerOptions{}); err != nil {
			return err
		}

		osExit(0)
		return nil
	}

	log, err := logger.NewLogger(logger.LoggerOptions{Verbose: verbose, Console: cmd.OutOrStdout()})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Debug("Starting kta", slog.String("version", version.GetFullVersion()))

	release, err := windows.AcquireSingleInstance(InstanceMutexName)
	if errors.Is(err, windows.ErrAlreadyRunning) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Cannot run this application multiple times")
		log.Close()
		osExit(ExitAlreadyRunning)
		return nil
	}

	if err != nil {
		return err
	}
	defer release()

	cfg, err := config.Load(config.Flags{
		ConfigPath: configPath,
		Key:        key,
		Interval:   interval,
		Until:      until,
	})
	if err != nil {
		return err
	}

	log.Debug("Configuration loaded",
		slog.String("source", cfg.Source),
		slog.String("key", cfg.Key),
		slog.String("interval", cfg.Interval.String()),
		slog.Any("processes", cfg.ProcessNames))
	log.Debug("Elevation", slog.Bool("elevated", windows.IsElevated()))

	client := windows.NewClient(log)
	display := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr())

	a := app.New(log, appOptions(cfg), app.Deps{
		Window:  client.Window,
		Input:   client.Input,
		Power:   client.Power,
		Process: client.Process,
		Display: display,
	})

	return run(cmd.Context(), log, a, cfg, cmd.InOrStdin())
}

func appOptions(cfg *config.Config) app.Options {
	return app.Options{
		ProcessNames:      cfg.ProcessNames,
		Executable:        cfg.Executable,
		Key:               keepalive.Key{VK: cfg.KeyCode, Modifiers: cfg.Modifiers},
		Interval:          cfg.Interval,
		CountdownInterval: timeouts.CountdownInterval,
		LaunchSettleDelay: timeouts.LaunchSettleDelay,
	}
}

// run loads the application and drives it until it is closed, interrupted or
// the countdown expires
func run(ctx context.Context, log logger.LoggerInterface, a *app.App, cfg *config.Config, in io.Reader) error {
	if err := a.Load(); err != nil {
		a.Shutdown()
		return err
	}

	if cfg.HasUntil {
		_ = a.StartCountdown(cfg.Until)
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Close, logoff and shutdown events end the process once the handler
	// returns, so wait for the loop to release the execution state first
	if err := windows.SetConsoleCtrlHandler(func(ctrlType uint32) bool {
		log.Info("Received console control event, cleaning up", slog.String("type", windows.GetCtrlTypeName(ctrlType)))
		cancel()

		if ctrlType == windows.CTRL_C_EVENT || ctrlType == windows.CTRL_BREAK_EVENT {
			return true
		}

		select {
		case <-a.Stopped():
		case <-time.After(timeouts.ShutdownGrace):
			log.Warn("Timed out waiting for shutdown")
		}

		return true
	}); err != nil {
		log.Debug("Could not install console control handler", slog.Any("error", err))
	} else {
		defer func() { _ = windows.SetConsoleCtrlHandler(nil) }()
	}

	go a.ReadCommands(ctx, in)

	return a.Run(ctx)
}

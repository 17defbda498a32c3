// Package timeouts defines timing constants used throughout the application.
// These values follow the cadence Teams needs to stay in the "Available" state
// and the pacing required for reliable interaction with the Windows API.
package timeouts

import "time"

const (
	// Keep-Alive Timing

	// KeepAliveInterval is the period between synthetic keystrokes sent to the
	// Teams window. Teams flips presence to "Away" after roughly five minutes
	// without input, so one keystroke every four minutes keeps it active.
	KeepAliveInterval = 4 * time.Minute

	// MinKeepAliveInterval is the smallest interval accepted from configuration.
	// Anything faster would steal focus from the user continuously.
	MinKeepAliveInterval = 1 * time.Second

	// Countdown Timing

	// CountdownInterval is the period at which the remaining time until the
	// selected shutdown time is recomputed and displayed.
	CountdownInterval = 1 * time.Second

	// Lifecycle Delays

	// LaunchSettleDelay allows a freshly spawned Teams process to create its
	// main window before the utility tries to bring it to the foreground.
	LaunchSettleDelay = 2 * time.Second

	// ShutdownGrace is the maximum time a console control handler waits for the
	// event loop to release the execution state before the process is torn down.
	ShutdownGrace = 2 * time.Second
)

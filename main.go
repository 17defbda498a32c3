package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Norgate-AV/kta/cmd"
	"github.com/Norgate-AV/kta/internal/teams"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		// The warning for a missing Teams process has already been shown
		if !errors.Is(err, teams.ErrNotRunning) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}

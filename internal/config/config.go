// Package config resolves settings from flags, environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Norgate-AV/kta/internal/countdown"
	"github.com/Norgate-AV/kta/internal/keyboard"
	"github.com/Norgate-AV/kta/internal/teams"
	"github.com/Norgate-AV/kta/internal/timeouts"
)

// Environment variables that override the config file
const (
	EnvTeamsPath = "KTA_TEAMS_PATH"
	EnvKey       = "KTA_KEY"
	EnvInterval  = "KTA_INTERVAL"
	EnvUntil     = "KTA_UNTIL"
)

// FileName is the config file looked up under the user config directory
const FileName = "config.yaml"

// File is the on-disk configuration. It is only ever read.
type File struct {
	ProcessNames []string `yaml:"process_names"`
	Executable   string   `yaml:"executable"`
	Key          string   `yaml:"key"`
	Interval     string   `yaml:"interval"`
	Until        string   `yaml:"until"`
}

// Flags holds values given on the command line. Empty values are unset.
type Flags struct {
	ConfigPath string
	Key        string
	Interval   string
	Until      string
}

// Config is the resolved and validated configuration
type Config struct {
	ProcessNames []string
	Executable   string
	Key          string
	KeyCode      uint16
	Modifiers    []uint16
	Interval     time.Duration
	Until        time.Duration
	HasUntil     bool
	Source       string
}

// Load resolves configuration from flags > env > config file > defaults
func Load(flags Flags) (*Config, error) {
	raw := File{}

	path, explicit := flags.ConfigPath, flags.ConfigPath != ""
	if !explicit {
		path = DefaultPath()
	}

	source := ""
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}

			source = path
		case explicit || !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if v := os.Getenv(EnvTeamsPath); v != "" {
		raw.Executable = v
	}
	if v := os.Getenv(EnvKey); v != "" {
		raw.Key = v
	}
	if v := os.Getenv(EnvInterval); v != "" {
		raw.Interval = v
	}
	if v := os.Getenv(EnvUntil); v != "" {
		raw.Until = v
	}

	if flags.Key != "" {
		raw.Key = flags.Key
	}
	if flags.Interval != "" {
		raw.Interval = flags.Interval
	}
	if flags.Until != "" {
		raw.Until = flags.Until
	}

	cfg, err := resolve(raw)
	if err != nil {
		return nil, err
	}

	cfg.Source = source
	return cfg, nil
}

func resolve(raw File) (*Config, error) {
	cfg := &Config{
		ProcessNames: teams.DefaultProcessNames,
		Executable:   teams.DefaultExecutable,
		Key:          keyboard.DefaultKey,
		Interval:     timeouts.KeepAliveInterval,
	}

	var names []string
	for _, n := range raw.ProcessNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) > 0 {
		cfg.ProcessNames = names
	}

	if raw.Executable != "" {
		cfg.Executable = raw.Executable
	}

	if raw.Key != "" {
		cfg.Key = raw.Key
	}

	code, modifiers, err := keyboard.ParseCombo(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	cfg.KeyCode = code
	cfg.Modifiers = modifiers

	if raw.Interval != "" {
		interval, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", raw.Interval, err)
		}

		cfg.Interval = interval
	}

	if cfg.Interval < timeouts.MinKeepAliveInterval {
		return nil, fmt.Errorf("interval %s is shorter than the minimum of %s", cfg.Interval, timeouts.MinKeepAliveInterval)
	}

	if raw.Until != "" {
		until, err := countdown.ParseTimeOfDay(raw.Until)
		if err != nil {
			return nil, fmt.Errorf("invalid until: %w", err)
		}

		cfg.Until = until
		cfg.HasUntil = true
	}

	return cfg, nil
}

// DefaultPath returns %APPDATA%\kta\config.yaml, or "" if the directory is unknown
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "kta", FileName)
}

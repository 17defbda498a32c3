package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/kta/internal/keyboard"
)

func isolate(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("APPDATA", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	for _, env := range []string{EnvTeamsPath, EnvKey, EnvInterval, EnvUntil} {
		t.Setenv(env, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(Flags{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Teams", "ms-teams"}, cfg.ProcessNames)
	assert.Equal(t, "ms-teams.exe", cfg.Executable)
	assert.Equal(t, keyboard.VK_F15, cfg.KeyCode)
	assert.Empty(t, cfg.Modifiers)
	assert.Equal(t, 4*time.Minute, cfg.Interval)
	assert.False(t, cfg.HasUntil)
	assert.Empty(t, cfg.Source)
}

func TestLoad_File(t *testing.T) {
	isolate(t)

	path := writeConfig(t, `
process_names: [ms-teams]
executable: C:\Apps\ms-teams.exe
key: Shift+F14
interval: 90s
until: "17:30"
`)

	cfg, err := Load(Flags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"ms-teams"}, cfg.ProcessNames)
	assert.Equal(t, `C:\Apps\ms-teams.exe`, cfg.Executable)
	assert.Equal(t, keyboard.VK_F1+13, cfg.KeyCode)
	assert.Equal(t, []uint16{keyboard.VK_SHIFT}, cfg.Modifiers)
	assert.Equal(t, 90*time.Second, cfg.Interval)
	assert.True(t, cfg.HasUntil)
	assert.Equal(t, 17*time.Hour+30*time.Minute, cfg.Until)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_DefaultPath(t *testing.T) {
	isolate(t)

	path := DefaultPath()
	require.NotEmpty(t, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("interval: 2m\n"), 0o644))

	cfg, err := Load(Flags{})
	require.NoError(t, err)
	assert.Equal(t, 2*time.Minute, cfg.Interval)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	path := writeConfig(t, "key: F13\ninterval: 3m\nuntil: \"16:00\"\nexecutable: file.exe\n")
	t.Setenv(EnvKey, "F14")
	t.Setenv(EnvInterval, "2m")
	t.Setenv(EnvTeamsPath, "env.exe")

	cfg, err := Load(Flags{ConfigPath: path, Interval: "1m", Until: "18:00"})
	require.NoError(t, err)

	assert.Equal(t, "F14", cfg.Key, "env beats file")
	assert.Equal(t, time.Minute, cfg.Interval, "flag beats env")
	assert.Equal(t, 18*time.Hour, cfg.Until, "flag beats file")
	assert.Equal(t, "env.exe", cfg.Executable)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		flags   Flags
		wantErr string
	}{
		{"missing explicit file", Flags{ConfigPath: filepath.Join(os.TempDir(), "kta-does-not-exist.yaml")}, "failed to read config file"},
		{"unknown key", Flags{Key: "Hyper"}, "invalid key"},
		{"bad interval", Flags{Interval: "soon"}, "invalid interval"},
		{"short interval", Flags{Interval: "500ms"}, "shorter than the minimum"},
		{"bad until", Flags{Until: "25:99"}, "invalid until"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := Load(tt.flags)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)

	path := writeConfig(t, "process_names: [unclosed\n")

	_, err := Load(Flags{ConfigPath: path})
	assert.ErrorContains(t, err, "failed to parse config file")
}

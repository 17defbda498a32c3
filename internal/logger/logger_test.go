package logger_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/kta/internal/logger"
)

func TestGetLogPath_CustomDir(t *testing.T) {
	dir := t.TempDir()

	path := logger.GetLogPath(logger.LoggerOptions{LogDir: dir})
	assert.Equal(t, filepath.Join(dir, "kta.log"), path)
}

func TestGetLogPath_LocalAppData(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", tmpDir)

	path := logger.GetLogPath(logger.LoggerOptions{})
	assert.Equal(t, filepath.Join(tmpDir, "kta", "kta.log"), path)
}

func TestGetLogPath_FallbackToUserProfile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("LOCALAPPDATA", "")
	t.Setenv("USERPROFILE", tmpDir)

	path := logger.GetLogPath(logger.LoggerOptions{})
	assert.Equal(t, filepath.Join(tmpDir, "AppData", "Local", "kta", "kta.log"), path)
}

func TestNewLogger_CreatesLogDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "kta.log"), log.GetLogPath())
}

func TestLogger_WritesFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: dir, Console: &console})
	require.NoError(t, err)

	log.Info("Monitoring Teams", "hwnd", 42)
	log.Warn("SetThreadExecutionState failed")
	log.Debug("hidden from console")
	log.Close()

	out := console.String()
	assert.Contains(t, out, "Monitoring Teams hwnd=42")
	assert.Contains(t, out, "WARNING: SetThreadExecutionState failed")
	assert.NotContains(t, out, "hidden from console")

	var file bytes.Buffer
	require.NoError(t, logger.PrintLogFile(&file, logger.LoggerOptions{LogDir: dir}))
	assert.Contains(t, file.String(), "Monitoring Teams")
	assert.Contains(t, file.String(), "hidden from console", "debug records always reach the file")
}

func TestLogger_VerboseShowsDebug(t *testing.T) {
	var console bytes.Buffer

	log, err := logger.NewLogger(logger.LoggerOptions{LogDir: t.TempDir(), Console: &console, Verbose: true})
	require.NoError(t, err)
	defer log.Close()

	log.Debug("Attaching thread input")
	assert.True(t, strings.HasPrefix(console.String(), "[DEBUG] Attaching thread input"))
}

func TestPrintLogFile_Missing(t *testing.T) {
	err := logger.PrintLogFile(&bytes.Buffer{}, logger.LoggerOptions{LogDir: t.TempDir()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestNoOpLogger(t *testing.T) {
	var log logger.LoggerInterface = logger.NewNoOpLogger()

	assert.NotPanics(t, func() {
		log.Debug("x")
		log.Info("x")
		log.Warn("x")
		log.Error("x")
		log.Close()
	})
	assert.Empty(t, log.GetLogPath())
}

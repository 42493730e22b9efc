package logger_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/vkeyboard/internal/logger"
)

func TestNew_CustomDir(t *testing.T) {
	dir := t.TempDir()

	log, err := logger.New(logger.Options{Dir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.Equal(t, filepath.Join(dir, logger.FileName), log.Path())
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	log, err := logger.New(logger.Options{Dir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	defer log.Close()

	assert.DirExists(t, dir)
}

func TestPathFor_DefaultUsesCacheDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", tmp)
	t.Setenv("HOME", tmp)

	path := logger.PathFor(logger.Options{})
	assert.True(t, filepath.IsAbs(path), "log path should be absolute")
	assert.Equal(t, logger.FileName, filepath.Base(path))
	assert.Equal(t, "vkeyboard", filepath.Base(filepath.Dir(path)))
}

func TestLogger_WritesFile(t *testing.T) {
	dir := t.TempDir()
	console := &bytes.Buffer{}

	log, err := logger.New(logger.Options{Dir: dir, Console: console})
	require.NoError(t, err)

	log.Info("theme changed", "theme", "dark")
	log.Debug("key pressed", "code", "Q")
	log.Close()

	data, err := os.ReadFile(log.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme changed")
	assert.Contains(t, string(data), "key pressed")

	assert.Contains(t, console.String(), "theme changed theme=dark")
	assert.NotContains(t, console.String(), "key pressed", "debug goes to the file only unless verbose")
}

func TestConsoleHandler_Verbose(t *testing.T) {
	color.NoColor = true
	buf := &bytes.Buffer{}
	l := slog.New(logger.NewConsoleHandler(buf, true))

	l.Debug("layout loaded", "keys", 61)
	l.Warn("font size clamped")
	l.Error("bad layout")

	out := buf.String()
	assert.Contains(t, out, "VERBOSE: layout loaded keys=61")
	assert.Contains(t, out, "WARNING: font size clamped")
	assert.Contains(t, out, "ERROR: bad layout")
}

func TestNop(t *testing.T) {
	var l logger.Interface = logger.Nop{}
	l.Info("ignored")
	l.Close()
	assert.Empty(t, l.Path())
}

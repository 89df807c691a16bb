package storage

import (
	"os"
	"path/filepath"
	"testing"

	"focustimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_MissingFileReturnsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	settings, err := LoadSettings(path, model.DefaultTimeKeeperConfig())

	require.NoError(t, err)
	assert.Equal(t, model.DefaultTimeKeeperConfig(), settings)
}

func TestLoadSettings_AppliesFileValues(t *testing.T) {
	path := writeSettings(t, "focus_minutes: 50\nbreak_minutes: 10\nnotification: Bell\n")

	settings, err := LoadSettings(path, model.DefaultTimeKeeperConfig())

	require.NoError(t, err)
	assert.Equal(t, model.Durations{FocusMinutes: 50, BreakMinutes: 10}, settings.Durations)
	assert.Equal(t, model.NotifyBell, settings.Notification)
}

func TestLoadSettings_PartialFileKeepsBase(t *testing.T) {
	path := writeSettings(t, "break_minutes: 15\n")

	settings, err := LoadSettings(path, model.DefaultTimeKeeperConfig())

	require.NoError(t, err)
	assert.Equal(t, model.Durations{FocusMinutes: 25, BreakMinutes: 15}, settings.Durations)
	assert.Equal(t, model.NotifyNone, settings.Notification)
}

func TestLoadSettings_ClampsAndNormalizes(t *testing.T) {
	path := writeSettings(t, "focus_minutes: 240\nbreak_minutes: -4\nnotification: foghorn\n")

	settings, err := LoadSettings(path, model.DefaultTimeKeeperConfig())

	require.NoError(t, err)
	assert.Equal(t, model.Durations{FocusMinutes: 60, BreakMinutes: 1}, settings.Durations)
	assert.Equal(t, model.NotifyNone, settings.Notification)
}

func TestLoadSettings_InvalidYaml(t *testing.T) {
	path := writeSettings(t, "focus_minutes: [oops\n")

	settings, err := LoadSettings(path, model.DefaultTimeKeeperConfig())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse settings yaml")
	assert.Equal(t, model.DefaultTimeKeeperConfig(), settings)
}

func TestDefaultSettingsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/focustimer-config")
	t.Setenv("HOME", "/tmp/focustimer-home")

	path, err := DefaultSettingsPath("FocusTimer")

	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", filepath.Base(path))
	assert.Equal(t, "FocusTimer", filepath.Base(filepath.Dir(path)))
}

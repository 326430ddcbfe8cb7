package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuswave/internal/ui/preferences"
)

// redirectConfigDir points os.UserConfigDir at a temp dir for the test.
func redirectConfigDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("config dir redirection relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	redirectConfigDir(t)

	settings, err := LoadSettings("focuswave-test")

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	redirectConfigDir(t)

	saved := preferences.DefaultSettings()
	saved.FocusMinutes = 50
	saved.BreakMinutes = 10
	saved.ReminderMinutes = 25
	saved.LaunchAtLogin = true
	require.NoError(t, SaveSettings("focuswave-test", saved))

	loaded, err := LoadSettings("focuswave-test")
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoadSettings_ClampsHandEditedValues(t *testing.T) {
	dir := redirectConfigDir(t)

	configDir := filepath.Join(dir, "focuswave-test")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	raw := []byte("focus_minutes: 9000\nbreak_minutes: -2\nreminder_minutes: 600\nwindow_opacity: 0.2\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.yaml"), raw, 0o644))

	settings, err := LoadSettings("focuswave-test")

	require.NoError(t, err)
	assert.Equal(t, preferences.MaxFocusMinutes, settings.FocusMinutes)
	assert.Equal(t, preferences.DefaultSettings().BreakMinutes, settings.BreakMinutes, "non-positive values fall back to defaults")
	assert.Equal(t, settings.FocusMinutes, settings.ReminderMinutes, "reminder capped by focus length")
	assert.Equal(t, preferences.MinWindowOpacity, settings.WindowOpacity)
}

func TestLoadSettings_MalformedYAMLReturnsDefaultsAndError(t *testing.T) {
	dir := redirectConfigDir(t)

	configDir := filepath.Join(dir, "focuswave-test")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "settings.yaml"), []byte("{not yaml"), 0o644))

	settings, err := LoadSettings("focuswave-test")

	require.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

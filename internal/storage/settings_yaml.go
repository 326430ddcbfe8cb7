// Package storage persists user preferences. Session state itself is never
// written: a restart always begins with a fresh idle session.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"focuswave/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes     int     `yaml:"focus_minutes"`
	BreakMinutes     int     `yaml:"break_minutes"`
	ReminderMinutes  int     `yaml:"reminder_minutes"`
	IdlePauseEnabled bool    `yaml:"idle_pause_enabled"`
	LaunchAtLogin    bool    `yaml:"launch_at_login"`
	WindowOpacity    float64 `yaml:"window_opacity"`
}

// LoadSettings reads user preferences from YAML. A missing file returns the
// defaults; hand-edited out-of-range values are clamped back into bounds.
func LoadSettings(appName string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()
	settingsPath, err := resolveSettingsPath(appName)
	if err != nil {
		return settings, err
	}

	rawData, err := os.ReadFile(settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	return mergeSettings(settings, fileData), nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	settingsPath, err := resolveSettingsPath(appName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Clamped()
	serialized, err := yaml.Marshal(yamlSettings{
		FocusMinutes:     settings.FocusMinutes,
		BreakMinutes:     settings.BreakMinutes,
		ReminderMinutes:  settings.ReminderMinutes,
		IdlePauseEnabled: settings.IdlePauseEnabled,
		LaunchAtLogin:    settings.LaunchAtLogin,
		WindowOpacity:    settings.WindowOpacity,
	})
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(settingsPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func resolveSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func mergeSettings(settings preferences.Settings, fileData yamlSettings) preferences.Settings {
	if fileData.FocusMinutes > 0 {
		settings.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.BreakMinutes > 0 {
		settings.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.ReminderMinutes > 0 {
		settings.ReminderMinutes = fileData.ReminderMinutes
	}
	if fileData.WindowOpacity > 0 {
		settings.WindowOpacity = fileData.WindowOpacity
	}
	settings.IdlePauseEnabled = fileData.IdlePauseEnabled
	settings.LaunchAtLogin = fileData.LaunchAtLogin
	return settings.Clamped()
}

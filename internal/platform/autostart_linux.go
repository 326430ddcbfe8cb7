package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func enableAutostart(appName, execPath string) error {
	autostartDir, err := xdgAutostartDir()
	if err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		return fmt.Errorf("enable autostart: create autostart dir: %w", err)
	}

	entry := desktopEntry(appName, execPath)
	entryPath := filepath.Join(autostartDir, desktopFileName(appName))
	if err := os.WriteFile(entryPath, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("enable autostart: write desktop entry: %w", err)
	}
	return nil
}

func disableAutostart(appName string) error {
	autostartDir, err := xdgAutostartDir()
	if err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	entryPath := filepath.Join(autostartDir, desktopFileName(appName))
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disable autostart: remove desktop entry: %w", err)
	}
	return nil
}

func xdgAutostartDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "autostart"), nil
}

func desktopFileName(appName string) string {
	return slugify(appName) + ".desktop"
}

func slugify(appName string) string {
	slug := strings.ToLower(strings.TrimSpace(appName))
	return strings.ReplaceAll(slug, " ", "-")
}

func desktopEntry(appName, execPath string) string {
	execLine := execPath
	if strings.Contains(execLine, " ") {
		execLine = `"` + strings.Trim(execLine, `"`) + `"`
	}
	return fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\nTerminal=false\n", appName, execLine)
}

package platform

import (
	"fmt"
	"os"
)

// SyncAutostart enables or disables launching the current executable at
// login, using whatever the platform offers (XDG autostart entry, registry
// run key, LaunchAgent plist).
func SyncAutostart(appName string, enabled bool) error {
	if appName == "" {
		return fmt.Errorf("autostart: app name is empty")
	}
	if !enabled {
		return disableAutostart(appName)
	}

	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("autostart: resolve executable: %w", err)
	}
	return enableAutostart(appName, execPath)
}

package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowWave    func()
	OnTogglePause func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	pauseItem  *fyne.MenuItem

	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	app.SetSystemTrayMenu(manager.buildMenu())
	return manager
}

// SetStatus updates the status label ("focus 24:12", "break 04:10", "idle").
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refresh()
}

// SetPaused flips the pause/resume entry.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	manager.refresh()
}

// SetRunning updates the toggle entry for an active session.
func (manager *Manager) SetRunning(running bool) {
	if running {
		manager.pauseItem.Label = "Pause"
	} else if manager.paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Start"
	}
	manager.refresh()
}

func (manager *Manager) refresh() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.app.SetSystemTrayMenu(manager.buildMenu())
}

func (manager *Manager) buildMenu() *fyne.Menu {
	return fyne.NewMenu("FocusWave",
		manager.statusItem,
		fyne.NewMenuItem("Show wave", func() {
			if manager.callbacks.OnShowWave != nil {
				manager.callbacks.OnShowWave()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem("Reset session", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	)
}

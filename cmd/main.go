package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"

	"focuswave/internal/core/session"
	"focuswave/internal/platform"
	"focuswave/internal/storage"
	"focuswave/internal/ui/preferences"
	"focuswave/internal/ui/tray"
	"focuswave/internal/ui/wave"
	"focuswave/resources"
)

const appName = "FocusWave"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	guard, err := platform.AcquireGuard(appName)
	if err != nil {
		logger.Error().Err(err).Msg("another instance is already running")
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("app.focuswave")
	fyneApp.SetIcon(resources.MustLogo("wave_active.png"))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		logger.Error().Msg("system tray unsupported on this platform")
		return
	}

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn().Err(err).Msg("loading settings failed, using defaults")
	}

	controller := session.New(settings.SessionConfig(), session.Config{TickInterval: time.Second}, logger)
	controller.SetIdleChecker(platform.NewIdleSource())

	var prefsWindow *preferences.Window
	waveWindow := wave.New(fyneApp, controller, wave.Callbacks{
		OnStart: controller.Start,
		OnPause: controller.Pause,
		OnReset: controller.Reset,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})
	waveWindow.SetOpacity(settings.WindowOpacity)

	activeIcon := resources.MustLogo("wave_active.png")
	pausedIcon := resources.MustLogo("wave_paused.png")
	breakIcon := resources.MustLogo("wave_break.png")

	var trayManager *tray.Manager
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShowWave: waveWindow.Show,
		OnTogglePause: func() {
			if controller.Snapshot().Running {
				controller.Pause()
			} else {
				controller.Start()
			}
		},
		OnReset: controller.Reset,
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnQuit: func() {
			controller.Close()
			fyneApp.Quit()
		},
	})
	desktopApp.SetSystemTrayIcon(activeIcon)

	prefsWindow = preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Error().Err(err).Msg("saving settings failed")
		}
		controller.UpdateConfig(settings.SessionConfig())
		waveWindow.SetOpacity(settings.WindowOpacity)
		if err := platform.SyncAutostart(appName, settings.LaunchAtLogin); err != nil {
			logger.Warn().Err(err).Msg("autostart update failed")
		}
	})

	events := controller.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, controller, fyneApp, desktopApp, waveWindow, trayManager, activeIcon, pausedIcon, breakIcon)
		}
	}()

	// Closing the surface keeps the timer alive in the tray.
	waveWindow.SetOnClose(nil)

	waveWindow.Show()
	fyneApp.Run()
}

func handleEvent(
	event session.Event,
	controller *session.Controller,
	fyneApp fyne.App,
	desktopApp desktop.App,
	waveWindow *wave.Window,
	trayManager *tray.Manager,
	activeIcon, pausedIcon, breakIcon fyne.Resource,
) {
	snapshot := controller.Snapshot()

	switch event.Type {
	case session.EventTick:
		waveWindow.SetRemaining(event.Remaining)
		waveWindow.SetTransportState(snapshot.Running, snapshot.Paused)
		trayManager.SetPaused(snapshot.Paused)
		trayManager.SetRunning(snapshot.Running)
		trayManager.SetStatus(statusLabel(snapshot))
		desktopApp.SetSystemTrayIcon(stateIcon(snapshot, activeIcon, pausedIcon, breakIcon))

	case session.EventPhaseChange:
		waveWindow.SetRemaining(event.Remaining)
		waveWindow.SetCaption(event.Message)
		waveWindow.SetTransportState(snapshot.Running, snapshot.Paused)
		trayManager.SetRunning(snapshot.Running)
		trayManager.SetStatus(statusLabel(snapshot))
		desktopApp.SetSystemTrayIcon(stateIcon(snapshot, activeIcon, pausedIcon, breakIcon))
		fyneApp.SendNotification(fyne.NewNotification(appName, event.Message))

	case session.EventReminder:
		waveWindow.SetCaption(event.Message)
		fyneApp.SendNotification(fyne.NewNotification(appName, event.Message))

	case session.EventAutoPause:
		waveWindow.SetCaption(event.Message)
		waveWindow.SetTransportState(snapshot.Running, snapshot.Paused)
		trayManager.SetPaused(true)
		trayManager.SetRunning(false)
		desktopApp.SetSystemTrayIcon(pausedIcon)
		fyneApp.SendNotification(fyne.NewNotification(appName, event.Message))
	}
}

func statusLabel(snapshot session.Snapshot) string {
	if !snapshot.Running && !snapshot.Paused {
		return "idle"
	}
	minutes := snapshot.Remaining / 60
	seconds := snapshot.Remaining % 60
	return fmt.Sprintf("%s %02d:%02d", snapshot.Phase, minutes, seconds)
}

func stateIcon(snapshot session.Snapshot, activeIcon, pausedIcon, breakIcon fyne.Resource) fyne.Resource {
	if snapshot.Paused {
		return pausedIcon
	}
	if snapshot.Phase == session.PhaseBreak {
		return breakIcon
	}
	return activeIcon
}

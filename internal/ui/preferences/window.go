package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)

	focusEntry    *widget.Entry
	breakEntry    *widget.Entry
	reminderEntry *widget.Entry
	idlePause     *widget.Check
	launchAtLogin *widget.Check
	opacity       *widget.Slider
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("FocusWave Settings")

	focusEntry := widget.NewEntry()
	breakEntry := widget.NewEntry()
	reminderEntry := widget.NewEntry()

	idlePause := widget.NewCheck("Pause automatically when I step away", nil)
	launchAtLogin := widget.NewCheck("Launch at login", nil)

	opacity := widget.NewSlider(MinWindowOpacity, MaxWindowOpacity)
	opacity.Step = 0.01

	form := container.NewVBox(
		widget.NewLabelWithStyle("Sessions", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Focus length"), focusEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break length"), breakEntry, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Wave reminder every"), reminderEntry, widget.NewLabel("min")),
		idlePause,
		widget.NewLabelWithStyle("Appearance", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Window opacity"),
		opacity,
		launchAtLogin,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(400, 380))

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		focusEntry:    focusEntry,
		breakEntry:    breakEntry,
		reminderEntry: reminderEntry,
		idlePause:     idlePause,
		launchAtLogin: launchAtLogin,
		opacity:       opacity,
	}
	prefs.applySettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.applySettings(settings)
}

func (prefs *Window) applySettings(settings Settings) {
	prefs.focusEntry.SetText(fmt.Sprintf("%d", settings.FocusMinutes))
	prefs.breakEntry.SetText(fmt.Sprintf("%d", settings.BreakMinutes))
	prefs.reminderEntry.SetText(fmt.Sprintf("%d", settings.ReminderMinutes))
	prefs.idlePause.SetChecked(settings.IdlePauseEnabled)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
	prefs.opacity.Value = settings.WindowOpacity
	prefs.opacity.Refresh()
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.focusEntry.Text); ok {
		settings.FocusMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.breakEntry.Text); ok {
		settings.BreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.reminderEntry.Text); ok {
		settings.ReminderMinutes = minutes
	}
	settings.IdlePauseEnabled = prefs.idlePause.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked
	settings.WindowOpacity = prefs.opacity.Value

	settings = settings.Clamped()
	prefs.settings = settings
	prefs.applySettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

package preferences

import (
	"time"

	"focuswave/internal/core/model"
)

// Bounds for user-editable values. The session controller assumes minute
// counts were validated here, so every entry path must go through Clamped.
const (
	MinFocusMinutes = 1
	MaxFocusMinutes = 180
	MinBreakMinutes = 1
	MaxBreakMinutes = 30

	MinWindowOpacity = 0.70
	MaxWindowOpacity = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	FocusMinutes    int
	BreakMinutes    int
	ReminderMinutes int

	IdlePauseEnabled bool
	LaunchAtLogin    bool

	WindowOpacity float64
}

// DefaultSettings returns the out-of-the-box pomodoro configuration.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes:     25,
		BreakMinutes:     5,
		ReminderMinutes:  5,
		IdlePauseEnabled: true,
		LaunchAtLogin:    false,
		WindowOpacity:    0.92,
	}
}

// Clamped returns a copy with every value forced into its valid range.
// The reminder interval may never exceed the focus duration.
func (settings Settings) Clamped() Settings {
	settings.FocusMinutes = clampInt(settings.FocusMinutes, MinFocusMinutes, MaxFocusMinutes)
	settings.BreakMinutes = clampInt(settings.BreakMinutes, MinBreakMinutes, MaxBreakMinutes)
	settings.ReminderMinutes = clampInt(settings.ReminderMinutes, 1, settings.FocusMinutes)
	settings.WindowOpacity = clampFloat(settings.WindowOpacity, MinWindowOpacity, MaxWindowOpacity)
	return settings
}

// SessionConfig converts settings to the controller configuration.
func (settings Settings) SessionConfig() model.SessionConfig {
	clamped := settings.Clamped()
	return model.SessionConfig{
		FocusDuration:     time.Duration(clamped.FocusMinutes) * time.Minute,
		BreakDuration:     time.Duration(clamped.BreakMinutes) * time.Minute,
		ReminderInterval:  time.Duration(clamped.ReminderMinutes) * time.Minute,
		IdlePauseEnabled:  clamped.IdlePauseEnabled,
		IdlePauseAfter:    5 * time.Minute,
		IdleCheckInterval: 5 * time.Second,
	}
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func clampFloat(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

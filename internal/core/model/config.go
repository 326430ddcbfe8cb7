package model

import "time"

// SessionConfig contains runtime settings for the session Controller.
type SessionConfig struct {
	FocusDuration    time.Duration
	BreakDuration    time.Duration
	ReminderInterval time.Duration

	IdlePauseEnabled  bool
	IdlePauseAfter    time.Duration
	IdleCheckInterval time.Duration
}

// Normalized returns a copy with unusable values replaced by safe defaults.
// Inputs are clamped to whole minutes by the preferences layer before they
// reach the controller; this only guards against a zero value sneaking in.
func (config SessionConfig) Normalized() SessionConfig {
	if config.FocusDuration <= 0 {
		config.FocusDuration = 25 * time.Minute
	}
	if config.BreakDuration <= 0 {
		config.BreakDuration = 5 * time.Minute
	}
	if config.ReminderInterval <= 0 {
		config.ReminderInterval = 5 * time.Minute
	}
	if config.ReminderInterval > config.FocusDuration {
		config.ReminderInterval = config.FocusDuration
	}
	if config.IdleCheckInterval <= 0 {
		config.IdleCheckInterval = 5 * time.Second
	}
	if config.IdlePauseAfter <= 0 {
		config.IdlePauseAfter = 5 * time.Minute
	}
	return config
}

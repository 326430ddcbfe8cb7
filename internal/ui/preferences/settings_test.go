package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClamped_BoundsEveryField(t *testing.T) {
	settings := Settings{
		FocusMinutes:    500,
		BreakMinutes:    0,
		ReminderMinutes: -3,
		WindowOpacity:   0.1,
	}

	clamped := settings.Clamped()

	assert.Equal(t, MaxFocusMinutes, clamped.FocusMinutes)
	assert.Equal(t, MinBreakMinutes, clamped.BreakMinutes)
	assert.Equal(t, 1, clamped.ReminderMinutes)
	assert.Equal(t, MinWindowOpacity, clamped.WindowOpacity)
}

func TestClamped_ReminderCappedByFocusDuration(t *testing.T) {
	settings := DefaultSettings()
	settings.FocusMinutes = 10
	settings.ReminderMinutes = 25

	clamped := settings.Clamped()

	assert.Equal(t, 10, clamped.ReminderMinutes)
}

func TestClamped_InRangeValuesUntouched(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, settings, settings.Clamped())
}

func TestSessionConfig_ConvertsMinutes(t *testing.T) {
	settings := DefaultSettings()
	settings.FocusMinutes = 50
	settings.ReminderMinutes = 10

	config := settings.SessionConfig()

	assert.Equal(t, 50*time.Minute, config.FocusDuration)
	assert.Equal(t, 5*time.Minute, config.BreakDuration)
	assert.Equal(t, 10*time.Minute, config.ReminderInterval)
	assert.True(t, config.IdlePauseEnabled)
}

package platform

import (
	"time"

	"focuswave/internal/core/session"
)

// IdleSource reports the duration since the last user input. It feeds the
// session controller's auto-pause; platforms without a usable signal return
// session.ErrIdleUnsupported and the controller stops asking.
type IdleSource interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleSource returns the idle source for the current platform.
func NewIdleSource() IdleSource {
	return newIdleSource()
}

type unsupportedIdleSource struct{}

func (unsupportedIdleSource) IdleDuration() (time.Duration, error) {
	return 0, session.ErrIdleUnsupported
}

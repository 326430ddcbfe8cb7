package session

import "time"

// Phase represents the current session type.
type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

// EventType defines the type of Controller event.
type EventType string

const (
	EventTick        EventType = "tick"
	EventPhaseChange EventType = "phase_change"
	EventReminder    EventType = "reminder"
	EventRipple      EventType = "ripple"
	EventAutoPause   EventType = "auto_pause"
	EventIdleError   EventType = "idle_error"
)

// Event represents a Controller update for observers.
type Event struct {
	Type      EventType
	Phase     Phase
	Remaining int
	Total     int
	Intensity float64
	Message   string
	Ripple    *Ripple
	At        time.Time
}

// RippleKind distinguishes what spawned a ripple.
type RippleKind string

const (
	RippleReminder   RippleKind = "reminder"
	RippleTransition RippleKind = "transition"
)

// Ripple is an ephemeral visual trigger. The controller owns membership;
// the renderer animates radius and opacity from the creation parameters.
// Radii are normalized to the shorter surface dimension.
type Ripple struct {
	ID         int
	Kind       RippleKind
	CreatedAt  time.Time
	MaxRadius  float64
	GrowthRate float64
}

// Lifetime returns how long the ripple takes to reach its maximum radius.
func (ripple Ripple) Lifetime() time.Duration {
	if ripple.GrowthRate <= 0 {
		return 0
	}
	return time.Duration(ripple.MaxRadius / ripple.GrowthRate * float64(time.Second))
}

// Expired reports whether the ripple has outgrown its maximum radius.
func (ripple Ripple) Expired(now time.Time) bool {
	return now.Sub(ripple.CreatedAt) >= ripple.Lifetime()
}

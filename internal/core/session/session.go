package session

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"focuswave/internal/core/model"
)

// ErrIdleUnsupported indicates idle detection is not available on this system.
var ErrIdleUnsupported = errors.New("idle detection unsupported")

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Config contains runtime options for the Controller.
type Config struct {
	TickInterval time.Duration
}

const (
	// attentionGraceSeconds is how long after a boost the intensity holds at 1.0.
	attentionGraceSeconds = 30
	// attentionDecaySpan is the elapsed-seconds span over which intensity
	// decays linearly toward the floor.
	attentionDecaySpan = 300
	attentionFloor     = 0.7

	// surgeWindow is how long the wave speed stays elevated after a reminder.
	surgeWindow = 3 * time.Second
)

// Controller is a state machine that alternates focus and break phases,
// tracks a simulated attention intensity, and fires periodic reminders
// during focus. Commands that make no sense in the current state are no-ops.
type Controller struct {
	mu      sync.Mutex
	config  model.SessionConfig
	options Config
	log     zerolog.Logger

	phase     Phase
	remaining int
	total     int
	running   bool
	paused    bool

	intensity float64
	lastBoost int

	lastFired int

	ripples   []Ripple
	rippleSeq int

	surge bool
	// generation invalidates deferred effects (the surge reversion timer)
	// armed before a pause, reset, or phase switch.
	generation uint64

	idleChecker   IdleChecker
	lastIdleCheck time.Time

	events      []chan Event
	stopCh      chan struct{}
	loopStarted bool
	closed      bool
}

// Snapshot is a read-only copy of the controller state for the renderer.
type Snapshot struct {
	Phase     Phase
	Remaining int
	Total     int
	Running   bool
	Paused    bool
	Intensity float64
	Surge     bool
}

// New creates a Controller with the provided configuration.
func New(config model.SessionConfig, options Config, log zerolog.Logger) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}

	controller := &Controller{
		config:  config.Normalized(),
		options: options,
		log:     log,
		stopCh:  make(chan struct{}),
	}
	controller.initFocusLocked()
	return controller
}

// SetIdleChecker injects an idle checker.
func (controller *Controller) SetIdleChecker(checker IdleChecker) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.idleChecker = checker
}

// Subscribe registers a new observer channel. Slow observers drop events.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	controller.events = append(controller.events, ch)
	controller.mu.Unlock()
	return ch
}

// Start begins or resumes the countdown. From idle it initializes a fresh
// focus phase; from paused it continues where it left off; while running
// it does nothing.
func (controller *Controller) Start() {
	controller.mu.Lock()
	if controller.closed || controller.running {
		controller.mu.Unlock()
		return
	}

	fresh := !controller.paused
	if fresh {
		controller.initFocusLocked()
	}
	controller.running = true
	controller.paused = false
	if !controller.loopStarted {
		controller.loopStarted = true
		go controller.run()
	}

	if fresh {
		controller.log.Info().
			Int("focus_seconds", controller.total).
			Msg("focus session started")
		controller.emitLocked(Event{
			Type:      EventPhaseChange,
			Phase:     controller.phase,
			Remaining: controller.remaining,
			Total:     controller.total,
			Intensity: controller.intensity,
			Message:   "Focus session started. Watch the wave.",
			At:        time.Now(),
		})
	} else {
		controller.log.Debug().Msg("session resumed")
		controller.emitLocked(controller.tickEventLocked(time.Now()))
	}
	controller.mu.Unlock()
}

// Pause freezes the countdown. Valid only while running.
func (controller *Controller) Pause() {
	controller.mu.Lock()
	if !controller.running {
		controller.mu.Unlock()
		return
	}
	controller.running = false
	controller.paused = true
	controller.surge = false
	controller.generation++
	controller.log.Debug().Int("remaining", controller.remaining).Msg("session paused")
	controller.emitLocked(controller.tickEventLocked(time.Now()))
	controller.mu.Unlock()
}

// Reset returns the controller to idle: focus phase, full durations,
// attention and reminder state cleared, all ripples dropped.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	controller.running = false
	controller.paused = false
	controller.surge = false
	controller.generation++
	controller.initFocusLocked()
	controller.log.Debug().Msg("session reset")
	controller.emitLocked(controller.tickEventLocked(time.Now()))
	controller.mu.Unlock()
}

// UpdateConfig replaces the session configuration. Durations take effect on
// the next phase entry, or immediately while the controller is idle. The
// reminder interval applies from the next tick.
func (controller *Controller) UpdateConfig(config model.SessionConfig) {
	controller.mu.Lock()
	controller.config = config.Normalized()
	if !controller.running && !controller.paused {
		controller.initFocusLocked()
		controller.emitLocked(controller.tickEventLocked(time.Now()))
	}
	controller.mu.Unlock()
}

// Close terminates the ticking loop and closes observer channels.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.running = false
	close(controller.stopCh)
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Snapshot returns a copy of the observable state.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.snapshotLocked()
}

// ActiveRipples returns the ripples that have not yet outgrown their radius.
func (controller *Controller) ActiveRipples() []Ripple {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.pruneRipplesLocked(time.Now())
	return append([]Ripple(nil), controller.ripples...)
}

func (controller *Controller) run() {
	ticker := time.NewTicker(controller.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-controller.stopCh:
			return
		case tickTime := <-ticker.C:
			controller.tick(tickTime)
		}
	}
}

func (controller *Controller) tick(now time.Time) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if !controller.running || controller.paused {
		return
	}

	if controller.phase == PhaseFocus {
		controller.handleIdleCheckLocked(now)
		if controller.paused {
			return
		}
	}

	if controller.remaining <= 0 {
		// Only reachable if a config swap zeroed the phase underneath us.
		controller.switchPhaseLocked(now)
		return
	}

	controller.remaining--
	if controller.remaining == 0 {
		controller.switchPhaseLocked(now)
		return
	}

	if controller.phase == PhaseFocus {
		controller.evaluateReminderLocked(now)
		controller.updateAttentionLocked()
	}
	controller.pruneRipplesLocked(now)
	controller.emitLocked(controller.tickEventLocked(now))
}

func (controller *Controller) switchPhaseLocked(now time.Time) {
	controller.surge = false
	controller.generation++

	var message string
	if controller.phase == PhaseFocus {
		controller.phase = PhaseBreak
		controller.total = int(controller.config.BreakDuration.Seconds())
		message = "Focus complete. Let the wave carry you."
	} else {
		controller.phase = PhaseFocus
		controller.total = int(controller.config.FocusDuration.Seconds())
		controller.intensity = 1.0
		controller.lastBoost = controller.total
		controller.lastFired = controller.total
		message = "Break over. Back to deep water."
	}
	controller.remaining = controller.total

	controller.log.Info().
		Str("phase", string(controller.phase)).
		Int("total_seconds", controller.total).
		Msg("phase switched")

	controller.spawnRippleLocked(RippleTransition, now)
	controller.emitLocked(Event{
		Type:      EventPhaseChange,
		Phase:     controller.phase,
		Remaining: controller.remaining,
		Total:     controller.total,
		Intensity: controller.intensity,
		Message:   message,
		At:        now,
	})
}

func (controller *Controller) evaluateReminderLocked(now time.Time) {
	interval := int(controller.config.ReminderInterval.Seconds())
	if interval < 1 || controller.remaining <= 0 {
		return
	}
	if controller.remaining%interval != 0 || controller.remaining >= controller.lastFired {
		return
	}

	controller.lastFired = controller.remaining
	controller.intensity = 1.0
	controller.lastBoost = controller.remaining
	controller.beginSurgeLocked()
	controller.spawnRippleLocked(RippleReminder, now)

	controller.log.Debug().Int("remaining", controller.remaining).Msg("reminder fired")
	controller.emitLocked(Event{
		Type:      EventReminder,
		Phase:     controller.phase,
		Remaining: controller.remaining,
		Total:     controller.total,
		Intensity: controller.intensity,
		Message:   "Notice the wave. Take a breath.",
		At:        now,
	})
}

func (controller *Controller) updateAttentionLocked() {
	elapsed := controller.lastBoost - controller.remaining
	if elapsed <= attentionGraceSeconds {
		return
	}
	decay := 1 - float64(elapsed)/attentionDecaySpan
	if decay < attentionFloor {
		decay = attentionFloor
	}
	controller.intensity = decay
}

// beginSurgeLocked arms the 3-second elevated-speed window. The reversion
// runs on its own timer because the tick loop only has 1-second granularity;
// it checks the generation so a pause or reset in between wins.
func (controller *Controller) beginSurgeLocked() {
	controller.surge = true
	generation := controller.generation
	time.AfterFunc(surgeWindow, func() {
		controller.mu.Lock()
		if controller.generation == generation {
			controller.surge = false
		}
		controller.mu.Unlock()
	})
}

func (controller *Controller) spawnRippleLocked(kind RippleKind, now time.Time) {
	controller.rippleSeq++
	ripple := Ripple{
		ID:        controller.rippleSeq,
		Kind:      kind,
		CreatedAt: now,
	}
	switch kind {
	case RippleTransition:
		ripple.MaxRadius = transitionRippleRadius
		ripple.GrowthRate = transitionRippleGrowth
	default:
		ripple.MaxRadius = reminderRippleRadius
		ripple.GrowthRate = reminderRippleGrowth
	}
	controller.ripples = append(controller.ripples, ripple)

	event := Event{
		Type:      EventRipple,
		Phase:     controller.phase,
		Remaining: controller.remaining,
		Total:     controller.total,
		Ripple:    &ripple,
		At:        now,
	}
	controller.emitLocked(event)
}

func (controller *Controller) pruneRipplesLocked(now time.Time) {
	if len(controller.ripples) == 0 {
		return
	}
	kept := controller.ripples[:0]
	for _, ripple := range controller.ripples {
		if !ripple.Expired(now) {
			kept = append(kept, ripple)
		}
	}
	controller.ripples = kept
}

func (controller *Controller) handleIdleCheckLocked(now time.Time) {
	if !controller.config.IdlePauseEnabled || controller.idleChecker == nil {
		return
	}
	if !controller.lastIdleCheck.IsZero() && now.Sub(controller.lastIdleCheck) < controller.config.IdleCheckInterval {
		return
	}
	controller.lastIdleCheck = now

	idleDuration, err := controller.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			controller.config.IdlePauseEnabled = false
		}
		controller.log.Warn().Err(err).Msg("idle check failed")
		controller.emitLocked(Event{
			Type:    EventIdleError,
			Phase:   controller.phase,
			Message: err.Error(),
			At:      now,
		})
		return
	}
	if idleDuration >= controller.config.IdlePauseAfter {
		controller.running = false
		controller.paused = true
		controller.surge = false
		controller.generation++
		controller.log.Info().Dur("idle", idleDuration).Msg("auto-paused for inactivity")
		controller.emitLocked(Event{
			Type:      EventAutoPause,
			Phase:     controller.phase,
			Remaining: controller.remaining,
			Total:     controller.total,
			Intensity: controller.intensity,
			Message:   "Paused while you were away.",
			At:        now,
		})
	}
}

func (controller *Controller) initFocusLocked() {
	controller.phase = PhaseFocus
	controller.total = int(controller.config.FocusDuration.Seconds())
	controller.remaining = controller.total
	controller.intensity = 1.0
	controller.lastBoost = controller.total
	controller.lastFired = controller.total
	controller.ripples = nil
	controller.lastIdleCheck = time.Time{}
}

func (controller *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Phase:     controller.phase,
		Remaining: controller.remaining,
		Total:     controller.total,
		Running:   controller.running,
		Paused:    controller.paused,
		Intensity: controller.intensity,
		Surge:     controller.surge,
	}
}

func (controller *Controller) tickEventLocked(now time.Time) Event {
	return Event{
		Type:      EventTick,
		Phase:     controller.phase,
		Remaining: controller.remaining,
		Total:     controller.total,
		Intensity: controller.intensity,
		At:        now,
	}
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

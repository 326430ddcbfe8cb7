package wave

import (
	"context"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"focuswave/internal/core/session"
)

// Frame loop constants. The renderer runs far faster than the 1-second
// session tick; it only ever reads snapshots.
const (
	frameInterval = 33 * time.Millisecond
	// baseAngularVelocity is the wave scroll rate in radians per second at
	// speed multiplier 1.0.
	baseAngularVelocity = 2.4
	// heightSmoothing eases the rendered amplitude toward the derived target
	// so 1-second ticks do not read as steps.
	heightSmoothing = 4.0
)

// renderer drives the per-frame animation of a Window.
type renderer struct {
	mu      sync.Mutex
	surface *Window
	cancel  context.CancelFunc
}

func newRenderer(surface *Window) *renderer {
	return &renderer{surface: surface}
}

// Start launches the frame loop. Restarting while running is a no-op.
func (engine *renderer) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(context.Background())
	engine.cancel = cancel
	go engine.run(runCtx)
}

// Stop terminates the frame loop.
func (engine *renderer) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *renderer) run(ctx context.Context) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			snapshot := engine.surface.source.Snapshot()
			params := session.DeriveWaveParams(snapshot)
			engine.surface.advanceFrame(params, dt)

			ripples := engine.surface.source.ActiveRipples()
			fyne.Do(func() {
				engine.surface.paintFrame(ripples, now)
			})
		}
	}
}

// rippleRadius returns the normalized radius of a ripple at the given time,
// grown from zero at the creation-time rate and capped at the maximum.
func rippleRadius(ripple session.Ripple, now time.Time) float64 {
	age := now.Sub(ripple.CreatedAt).Seconds()
	if age < 0 {
		age = 0
	}
	radius := ripple.GrowthRate * age
	if radius > ripple.MaxRadius {
		radius = ripple.MaxRadius
	}
	return radius
}

// rippleAlpha fades the ring out linearly as it approaches max radius.
func rippleAlpha(ripple session.Ripple, now time.Time) float64 {
	if ripple.MaxRadius <= 0 {
		return 0
	}
	return 1 - rippleRadius(ripple, now)/ripple.MaxRadius
}

// placeRipple positions a ripple ring at the surface center, scaled to the
// shorter surface dimension. Must run on the UI thread.
func placeRipple(shape *canvas.Circle, ripple session.Ripple, now time.Time, size fyne.Size, crest color.NRGBA) {
	shorter := size.Width
	if size.Height < shorter {
		shorter = size.Height
	}
	radius := float32(rippleRadius(ripple, now)) * shorter

	crest.A = uint8(rippleAlpha(ripple, now) * 255)
	shape.StrokeColor = crest
	shape.FillColor = color.NRGBA{}

	centerX := size.Width / 2
	centerY := size.Height * waterlineFraction
	shape.Move(fyne.NewPos(centerX-radius, centerY-radius))
	shape.Resize(fyne.NewSize(radius*2, radius*2))
	shape.Refresh()
}

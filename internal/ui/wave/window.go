package wave

import (
	"fmt"
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"focuswave/internal/core/session"
)

// StateSource is the read-only view of the session controller the renderer
// pulls from at frame cadence.
type StateSource interface {
	Snapshot() session.Snapshot
	ActiveRipples() []session.Ripple
}

// Callbacks defines transport action handlers.
type Callbacks struct {
	OnStart       func()
	OnPause       func()
	OnReset       func()
	OnPreferences func()
}

// Window is the main wave surface window.
type Window struct {
	window fyne.Window
	source StateSource

	raster       *canvas.Raster
	rippleLayer  *fyne.Container
	rippleShapes map[int]*canvas.Circle

	timerLabel   *canvas.Text
	captionLabel *canvas.Text

	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button

	renderer *renderer

	mu    sync.Mutex
	state frameState
}

// New creates the wave window and wires the transport buttons.
func New(app fyne.App, source StateSource, callbacks Callbacks) *Window {
	mainWindow := app.NewWindow("FocusWave")
	if app.Icon() != nil {
		mainWindow.SetIcon(app.Icon())
	}
	mainWindow.SetPadded(false)

	surface := &Window{
		window:       mainWindow,
		source:       source,
		rippleShapes: make(map[int]*canvas.Circle),
		state: frameState{
			height: 1,
			colors: toneColors(session.ToneNeutral),
		},
	}

	surface.raster = canvas.NewRaster(surface.generateSurface)
	surface.rippleLayer = container.NewWithoutLayout()

	surface.timerLabel = canvas.NewText(formatSeconds(source.Snapshot().Remaining), toneColors(session.ToneNeutral).crest)
	surface.timerLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	surface.timerLabel.TextSize = 42

	surface.captionLabel = canvas.NewText("Press start to begin a focus session", toneColors(session.ToneNeutral).crest)
	surface.captionLabel.TextSize = 14

	surface.startButton = widget.NewButton("Start", func() {
		if callbacks.OnStart != nil {
			callbacks.OnStart()
		}
	})
	surface.pauseButton = widget.NewButton("Pause", func() {
		if callbacks.OnPause != nil {
			callbacks.OnPause()
		}
	})
	surface.resetButton = widget.NewButton("Reset", func() {
		if callbacks.OnReset != nil {
			callbacks.OnReset()
		}
	})
	preferencesButton := widget.NewButton("Settings", func() {
		if callbacks.OnPreferences != nil {
			callbacks.OnPreferences()
		}
	})
	surface.pauseButton.Disable()

	hud := container.New(&hudLayout{},
		surface.timerLabel,
		surface.captionLabel,
		container.NewHBox(surface.startButton, surface.pauseButton, surface.resetButton, preferencesButton),
	)

	mainWindow.SetContent(container.NewMax(surface.raster, surface.rippleLayer, hud))
	mainWindow.Resize(fyne.NewSize(760, 440))

	surface.renderer = newRenderer(surface)
	return surface
}

// Show displays the window and starts the frame loop.
func (surface *Window) Show() {
	surface.window.Show()
	surface.renderer.Start()
}

// SetOnClose registers the close handler. Closing hides the surface and
// stops the frame loop; the session keeps running headless.
func (surface *Window) SetOnClose(handler func()) {
	surface.window.SetCloseIntercept(func() {
		surface.renderer.Stop()
		surface.window.Hide()
		if handler != nil {
			handler()
		}
	})
}

// SetRemaining updates the countdown readout.
func (surface *Window) SetRemaining(remaining int) {
	fyne.Do(func() {
		surface.timerLabel.Text = formatSeconds(remaining)
		surface.timerLabel.Refresh()
	})
}

// SetCaption updates the status line under the countdown.
func (surface *Window) SetCaption(caption string) {
	fyne.Do(func() {
		surface.captionLabel.Text = caption
		surface.captionLabel.Refresh()
	})
}

// SetTransportState flips button availability for the running/paused state.
func (surface *Window) SetTransportState(running, paused bool) {
	fyne.Do(func() {
		if running {
			surface.startButton.Disable()
			surface.pauseButton.Enable()
		} else {
			surface.startButton.Enable()
			surface.pauseButton.Disable()
		}
		if paused {
			surface.startButton.SetText("Resume")
		} else {
			surface.startButton.SetText("Start")
		}
	})
}

// SetOpacity applies window translucency where the platform supports it.
func (surface *Window) SetOpacity(opacity float64) {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	surface.applyNativeOpacity(uint8(opacity * 255))
}

// generateSurface is the raster generator; fyne calls it on the UI thread
// whenever the raster refreshes.
func (surface *Window) generateSurface(width, height int) image.Image {
	surface.mu.Lock()
	state := surface.state
	surface.mu.Unlock()
	return paintSurface(width, height, state)
}

func (surface *Window) advanceFrame(params session.WaveParams, dt float64) {
	surface.mu.Lock()
	surface.state.phase += dt * baseAngularVelocity * params.Speed
	surface.state.height += (params.Height - surface.state.height) * clampUnit(dt*heightSmoothing)
	surface.state.colors = toneColors(params.Tone)
	surface.mu.Unlock()
}

// paintFrame refreshes the raster and reconciles ripple shapes. Must run on
// the UI thread.
func (surface *Window) paintFrame(ripples []session.Ripple, now time.Time) {
	surface.raster.Refresh()

	surface.mu.Lock()
	crest := surface.state.colors.crest
	surface.mu.Unlock()

	size := surface.rippleLayer.Size()
	alive := make(map[int]bool, len(ripples))
	for _, ripple := range ripples {
		alive[ripple.ID] = true
		shape, ok := surface.rippleShapes[ripple.ID]
		if !ok {
			shape = canvas.NewCircle(nil)
			shape.StrokeWidth = 2.5
			surface.rippleShapes[ripple.ID] = shape
			surface.rippleLayer.Add(shape)
		}
		placeRipple(shape, ripple, now, size, crest)
	}
	for id, shape := range surface.rippleShapes {
		if !alive[id] {
			surface.rippleLayer.Remove(shape)
			delete(surface.rippleShapes, id)
		}
	}
}

func formatSeconds(value int) string {
	if value < 0 {
		value = 0
	}
	return fmt.Sprintf("%02d:%02d", value/60, value%60)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// hudLayout places the countdown top-left, the caption under it, and the
// transport row along the bottom edge.
type hudLayout struct{}

func (layout *hudLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	timer := objects[0]
	caption := objects[1]
	transport := objects[2]

	pad := float32(18)
	timerSize := timer.MinSize()
	timer.Move(fyne.NewPos(pad, pad))
	timer.Resize(timerSize)

	captionSize := caption.MinSize()
	caption.Move(fyne.NewPos(pad, pad+timerSize.Height+6))
	caption.Resize(captionSize)

	transportSize := transport.MinSize()
	transportY := size.Height - pad - transportSize.Height
	if transportY < 0 {
		transportY = 0
	}
	transport.Move(fyne.NewPos(pad, transportY))
	transport.Resize(transportSize)
}

func (layout *hudLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	timerSize := objects[0].MinSize()
	captionSize := objects[1].MinSize()
	transportSize := objects[2].MinSize()

	width := timerSize.Width
	if captionSize.Width > width {
		width = captionSize.Width
	}
	if transportSize.Width > width {
		width = transportSize.Width
	}
	return fyne.NewSize(width+36, timerSize.Height+captionSize.Height+transportSize.Height+60)
}

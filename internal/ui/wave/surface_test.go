package wave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focuswave/internal/core/session"
)

func TestLayerSurfaceY_StaysWithinAmplitudeBand(t *testing.T) {
	state := frameState{height: 1, colors: toneColors(session.ToneFocus)}
	waterline := 400 * waterlineFraction
	amplitude := 400 * maxAmplitudeFraction

	for x := 0.0; x < 800; x += 7 {
		for _, layer := range waveLayers {
			y := layerSurfaceY(x, 800, 400, layer, state)
			require.GreaterOrEqual(t, y, waterline-amplitude-1e-9)
			require.LessOrEqual(t, y, waterline+amplitude+1e-9)
		}
	}
}

func TestLayerSurfaceY_FlatAtZeroHeight(t *testing.T) {
	state := frameState{height: 0, colors: toneColors(session.ToneFocus)}

	first := layerSurfaceY(13, 800, 400, waveLayers[0], state)
	second := layerSurfaceY(612, 800, 400, waveLayers[0], state)

	assert.InDelta(t, first, second, 1e-9, "zero height flattens the surface to the waterline")
	assert.InDelta(t, 400*waterlineFraction, first, 1e-9)
}

func TestPaintSurface_FillsBelowWaterline(t *testing.T) {
	state := frameState{height: 0.5, phase: 1.2, colors: toneColors(session.ToneFocus)}

	img := paintSurface(200, 100, state)

	sky := img.NRGBAAt(100, 2)
	assert.Equal(t, backgroundColor, sky, "pixels above every layer keep the background")

	water := img.NRGBAAt(100, 98)
	assert.NotEqual(t, backgroundColor, water, "pixels below the waterline are tinted")
}

func TestPaintSurface_DegenerateSizes(t *testing.T) {
	state := frameState{height: 1, colors: toneColors(session.ToneNeutral)}
	assert.NotPanics(t, func() {
		paintSurface(0, 0, state)
		paintSurface(-1, 40, state)
	})
}

func TestRippleRadius_GrowsAndCaps(t *testing.T) {
	created := time.Now()
	ripple := session.Ripple{ID: 1, CreatedAt: created, MaxRadius: 0.4, GrowthRate: 0.2}

	assert.InDelta(t, 0.2, rippleRadius(ripple, created.Add(time.Second)), 1e-9)
	assert.InDelta(t, 0.4, rippleRadius(ripple, created.Add(time.Minute)), 1e-9, "radius caps at max")
	assert.Zero(t, rippleRadius(ripple, created.Add(-time.Second)), "clock skew never yields negative radius")
}

func TestRippleAlpha_FadesToZeroAtMaxRadius(t *testing.T) {
	created := time.Now()
	ripple := session.Ripple{ID: 1, CreatedAt: created, MaxRadius: 0.4, GrowthRate: 0.2}

	assert.InDelta(t, 1.0, rippleAlpha(ripple, created), 1e-9)
	assert.InDelta(t, 0.5, rippleAlpha(ripple, created.Add(time.Second)), 1e-9)
	assert.InDelta(t, 0.0, rippleAlpha(ripple, created.Add(2*time.Second)), 1e-9)
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "25:00", formatSeconds(1500))
	assert.Equal(t, "04:07", formatSeconds(247))
	assert.Equal(t, "00:00", formatSeconds(-5))
}

func TestToneColors_UnknownToneFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, palettes[session.ToneNeutral], toneColors(session.Tone("lava")))
}

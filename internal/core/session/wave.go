package session

// Tone selects the wave palette; the renderer maps tones to actual colors.
type Tone string

const (
	ToneFocus   Tone = "focus"
	ToneBreak   Tone = "break"
	ToneNeutral Tone = "neutral"
)

// Wave baselines. Speed is a multiplier over the renderer's base scroll
// rate; height is normalized to the surface's maximum amplitude.
const (
	focusWaveSpeed   = 1.0
	breakWaveSpeed   = 0.55
	neutralWaveSpeed = 0.35
	pausedSpeedScale = 0.4
	surgeSpeedScale  = 2.2
)

// Ripple geometry, normalized to the shorter surface dimension.
const (
	reminderRippleRadius   = 0.42
	reminderRippleGrowth   = 0.30
	transitionRippleRadius = 0.65
	transitionRippleGrowth = 0.26
)

// WaveParams is the derived presentation state the renderer pulls each frame.
type WaveParams struct {
	Height float64
	Tone   Tone
	Speed  float64
}

// WaveParams derives the current wave presentation values.
func (controller *Controller) WaveParams() WaveParams {
	return DeriveWaveParams(controller.Snapshot())
}

// DeriveWaveParams computes wave presentation values from a state snapshot.
// It is a pure function so the renderer can recompute it at frame cadence
// without touching controller internals.
func DeriveWaveParams(snapshot Snapshot) WaveParams {
	params := WaveParams{
		Height: waveHeight(snapshot),
		Tone:   ToneNeutral,
		Speed:  neutralWaveSpeed,
	}

	switch {
	case snapshot.Running && snapshot.Phase == PhaseFocus:
		params.Tone = ToneFocus
		params.Speed = focusWaveSpeed
	case snapshot.Running && snapshot.Phase == PhaseBreak:
		params.Tone = ToneBreak
		params.Speed = breakWaveSpeed
	case snapshot.Paused && snapshot.Phase == PhaseBreak:
		params.Speed = breakWaveSpeed * pausedSpeedScale
	case snapshot.Paused:
		params.Speed = focusWaveSpeed * pausedSpeedScale
	}

	if snapshot.Surge && snapshot.Running {
		params.Speed *= surgeSpeedScale
	}
	return params
}

func waveHeight(snapshot Snapshot) float64 {
	if snapshot.Total <= 0 {
		return 0
	}
	progress := float64(snapshot.Remaining) / float64(snapshot.Total)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	// Ease-out: full sessions swell, the last minutes flatten slowly.
	height := progress * (2 - progress)

	if snapshot.Phase == PhaseFocus {
		height *= snapshot.Intensity
	}
	if height < 0 {
		height = 0
	}
	if height > 1 {
		height = 1
	}
	return height
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveWaveParams_Tones(t *testing.T) {
	focus := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Equal(t, ToneFocus, focus.Tone)

	breakWave := DeriveWaveParams(Snapshot{Phase: PhaseBreak, Running: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Equal(t, ToneBreak, breakWave.Tone)

	paused := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Paused: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Equal(t, ToneNeutral, paused.Tone)

	idle := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Remaining: 60, Total: 60, Intensity: 1})
	assert.Equal(t, ToneNeutral, idle.Tone)
}

func TestDeriveWaveParams_SpeedBaselines(t *testing.T) {
	focus := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 30, Total: 60, Intensity: 1})
	breakWave := DeriveWaveParams(Snapshot{Phase: PhaseBreak, Running: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Greater(t, focus.Speed, breakWave.Speed, "focus waves move faster than break waves")

	paused := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Paused: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Less(t, paused.Speed, breakWave.Speed, "paused waves are slower than any running baseline")
}

func TestDeriveWaveParams_SurgeElevatesSpeedOnlyWhileRunning(t *testing.T) {
	base := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 30, Total: 60, Intensity: 1})
	surging := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Surge: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Greater(t, surging.Speed, base.Speed)

	pausedSurge := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Paused: true, Surge: true, Remaining: 30, Total: 60, Intensity: 1})
	pausedBase := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Paused: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.Equal(t, pausedBase.Speed, pausedSurge.Speed, "a stale surge flag has no effect while paused")
}

func TestWaveHeight_EaseOutCurve(t *testing.T) {
	full := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 60, Total: 60, Intensity: 1})
	assert.InDelta(t, 1.0, full.Height, 1e-9)

	half := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 30, Total: 60, Intensity: 1})
	assert.InDelta(t, 0.75, half.Height, 1e-9, "p*(2-p) at p=0.5")

	empty := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 0, Total: 60, Intensity: 1})
	assert.InDelta(t, 0.0, empty.Height, 1e-9)
}

func TestWaveHeight_ScaledByIntensityDuringFocusOnly(t *testing.T) {
	tired := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 30, Total: 60, Intensity: 0.7})
	assert.InDelta(t, 0.75*0.7, tired.Height, 1e-9)

	breakWave := DeriveWaveParams(Snapshot{Phase: PhaseBreak, Running: true, Remaining: 30, Total: 60, Intensity: 0.7})
	assert.InDelta(t, 0.75, breakWave.Height, 1e-9, "intensity is a focus-only concept")
}

func TestWaveHeight_DegenerateTotal(t *testing.T) {
	params := DeriveWaveParams(Snapshot{Phase: PhaseFocus, Running: true, Remaining: 0, Total: 0, Intensity: 1})
	assert.Zero(t, params.Height)
}

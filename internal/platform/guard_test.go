package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireGuard_SecondAcquireFails(t *testing.T) {
	guard, err := AcquireGuard("focuswave-guard-test")
	require.NoError(t, err)
	defer guard.Release()

	_, err = AcquireGuard("focuswave-guard-test")
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAcquireGuard_ReleasedLockCanBeRetaken(t *testing.T) {
	guard, err := AcquireGuard("focuswave-guard-retake")
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	retaken, err := AcquireGuard("focuswave-guard-retake")
	require.NoError(t, err)
	defer retaken.Release()
	assert.NotEmpty(t, retaken.Address())
}

func TestLockPort_DeterministicAndInRange(t *testing.T) {
	first := lockPort("FocusWave")
	second := lockPort("FocusWave")
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 20000)
	assert.Less(t, first, 40000)

	assert.NotEqual(t, lockPort("FocusWave"), lockPort("focuswave"), "lock is name-sensitive")
}

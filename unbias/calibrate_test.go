package unbias_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textnoise/unbias"
)

// TestSeveralActions_SingleActionPassthrough verifies n=1 leaves the
// level untouched.
func TestSeveralActions_SingleActionPassthrough(t *testing.T) {
	p, err := unbias.SeveralActions(0.37, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.37, p, "one pass needs no compounding correction")
}

// TestSeveralActions_TwoPasses checks the exact inverse of two-pass
// compounding: 1-(1-0.19)^(1/2) = 0.1, since 0.9² = 0.81.
func TestSeveralActions_TwoPasses(t *testing.T) {
	p, err := unbias.SeveralActions(0.19, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, p, 1e-12)
}

// TestSeveralActions_Compounding round-trips: applying the compounding
// formula to the calibrated p must reproduce the requested level.
func TestSeveralActions_Compounding(t *testing.T) {
	for _, level := range []float64{0, 0.05, 0.1, 0.5, 0.9, 1} {
		for n := 1; n <= 4; n++ {
			p, err := unbias.SeveralActions(level, n)
			require.NoError(t, err)

			compounded := 1.0
			for i := 0; i < n; i++ {
				compounded *= 1 - p
			}
			assert.InDelta(t, level, 1-compounded, 1e-12,
				"level=%v n=%d", level, n)
		}
	}
}

// TestSeveralActions_Errors covers the configuration sentinels.
func TestSeveralActions_Errors(t *testing.T) {
	_, err := unbias.SeveralActions(-0.1, 2)
	assert.ErrorIs(t, err, unbias.ErrProbabilityRange)

	_, err = unbias.SeveralActions(1.1, 2)
	assert.ErrorIs(t, err, unbias.ErrProbabilityRange)

	_, err = unbias.SeveralActions(0.5, 0)
	assert.ErrorIs(t, err, unbias.ErrBadActionCount)
}

// TestSplitIntoWords_Adjustment checks p' = p·(1+spaces/chars) on a
// two-token list: 4 chars, 1 space ⇒ factor 1.25.
func TestSplitIntoWords_Adjustment(t *testing.T) {
	p, err := unbias.SplitIntoWords(0.2, []string{"ab", "cd"})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, p, 1e-12)
}

// TestSplitIntoWords_ClampsToOne verifies the adjustment-overflow policy:
// probabilities above 1 cap at 1 instead of erroring.
func TestSplitIntoWords_ClampsToOne(t *testing.T) {
	p, err := unbias.SplitIntoWords(0.9, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p, "0.9·(1+1/2) exceeds 1 and must clamp")
}

// TestSplitIntoWords_Degenerate leaves the level unchanged when there is
// nothing to compensate for.
func TestSplitIntoWords_Degenerate(t *testing.T) {
	p, err := unbias.SplitIntoWords(0.3, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.3, p, "no tokens")

	p, err = unbias.SplitIntoWords(0.3, []string{"", ""})
	require.NoError(t, err)
	assert.Equal(t, 0.3, p, "zero total characters")

	p, err = unbias.SplitIntoWords(0.3, []string{"solo"})
	require.NoError(t, err)
	assert.Equal(t, 0.3, p, "single token has no separators")
}

// TestSplitIntoWords_Errors covers the range sentinel.
func TestSplitIntoWords_Errors(t *testing.T) {
	_, err := unbias.SplitIntoWords(1.5, []string{"ab"})
	assert.ErrorIs(t, err, unbias.ErrProbabilityRange)
}

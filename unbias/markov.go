package unbias

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// The swap scan is modeled as a Markov chain over pairs of consecutive
// outcomes. An outcome is one of:
//
//	P — a swap happened at this position,
//	Q — a swap was allowed but did not happen,
//	1 — a swap was disallowed (the position was the target of the
//	    previous swap, so no draw takes place).
//
// A state XY encodes (previous outcome, current outcome); 0 marks the
// start of the scan. A 1-outcome can only follow a P, so states 11, PQ
// and PP are unreachable and omitted. Each state carries the Levenshtein
// contribution of entering it: a fresh swap (QP, 0P) costs 2 edits, a
// swap right after the forced skip of a previous swap (1P) costs only 1
// because overlapping transpositions partially cancel, everything else
// costs 0.
const (
	state1P = iota // swap immediately after the forced skip, weight 1
	state1Q        // no swap after the forced skip
	stateP1        // forced skip following a swap
	stateQP        // fresh swap, weight 2
	stateQQ        // two idle draws in a row
	state0P        // swap at the first position, weight 2
	state0Q        // idle draw at the first position
	stateStart     // before the first draw

	swapStateCount = 8
)

// swapLevWeights is the per-state Levenshtein contribution vector c(s).
var swapLevWeights = mat.NewVecDense(swapStateCount, []float64{
	1, // state1P
	0, // state1Q
	0, // stateP1
	2, // stateQP
	0, // stateQQ
	2, // state0P
	0, // state0Q
	0, // stateStart
})

// swapTransition builds the transition matrix T of the chain for a given
// per-draw swap probability p. Row s holds the distribution over
// successor states; every row sums to 1.
func swapTransition(p float64) *mat.Dense {
	q := 1 - p
	return mat.NewDense(swapStateCount, swapStateCount, []float64{
		//  1P 1Q P1 QP QQ 0P 0Q start
		0, 0, 1, 0, 0, 0, 0, 0, // 1P: a swap forces a skip next
		0, 0, 0, p, q, 0, 0, 0, // 1Q: free draw
		p, q, 0, 0, 0, 0, 0, 0, // P1: the skip is over, free draw
		0, 0, 1, 0, 0, 0, 0, 0, // QP: a swap forces a skip next
		0, 0, 0, p, q, 0, 0, 0, // QQ: free draw
		0, 0, 1, 0, 0, 0, 0, 0, // 0P: a swap forces a skip next
		0, 0, 0, p, q, 0, 0, 0, // 0Q: free draw
		0, 0, 0, 0, 0, p, q, 0, // start: first draw of the scan
	})
}

// ExpectedCER computes the expected normalized edit contribution of one
// swap pass with per-draw probability p over a string of n characters.
//
// The start distribution (all mass on the start state) is advanced one
// step per position — n-1 vector–matrix products, never matrix powers, so
// cost stays linear in n — and the weighted probability mass is summed
// along the way, then normalized by n.
//
// Contracts:
//   - p ∈ [0,1], otherwise ErrProbabilityRange.
//   - n ≤ 1 yields 0: a swap needs two characters.
//
// Complexity: O(n) steps of fixed 8×8 work, O(1) memory.
func ExpectedCER(p float64, n int) (float64, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, ErrProbabilityRange
	}
	if n <= 1 {
		return 0, nil
	}

	trans := swapTransition(p)
	state := mat.NewVecDense(swapStateCount, nil)
	state.SetVec(stateStart, 1)

	var (
		lev  float64
		next = mat.NewVecDense(swapStateCount, nil)
	)
	for step := 0; step < n-1; step++ {
		// Row vector times T is Tᵀ times column vector.
		next.MulVec(trans.T(), state)
		state.CopyVec(next)
		lev += mat.Dot(state, swapLevWeights)
	}
	return lev / float64(n), nil
}

// stationaryInverse inverts the closed-form expected CER of the reduced
// 5-state chain {1P,1Q,P1,QP,QQ} in its stationary regime, valid for long
// strings. The forward curve is (2p - p²)/(p + 1), peaking at p = √3-1
// with value 4 - 2√3; on the increasing branch p ∈ [0, √3-1] the inverse
// is p = (2-cer)/2 - √(cer² - 8·cer + 4)/2.
// The caller guarantees cer ≤ MaxSwapCER so the discriminant is
// non-negative up to rounding; it is floored at zero to be safe.
func stationaryInverse(cer float64) float64 {
	disc := math.Max(cer*cer-8*cer+4, 0)
	return (2-cer)/2 - math.Sqrt(disc)/2
}

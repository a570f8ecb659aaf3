package unbias

import (
	"errors"
	"math"
)

var (
	// ErrProbabilityRange indicates a probability or noise level outside [0,1].
	ErrProbabilityRange = errors.New("unbias: probability must be within [0,1]")
	// ErrCERRange indicates a target CER outside [0, MaxSwapCER].
	ErrCERRange = errors.New("unbias: target CER is not reachable by swap")
	// ErrBadActionCount indicates a non-positive number of actions.
	ErrBadActionCount = errors.New("unbias: action count must be at least 1")
	// ErrCorrectionRange indicates a non-positive correction factor.
	ErrCorrectionRange = errors.New("unbias: correction factor must be positive")
)

// MaxSwapCER is the supremum of the expected CER reachable by the swap
// action alone. It is the maximum of the stationary curve
// (2p - p²)/(1 + p) over p ∈ [0,1], attained at p = √3 - 1, nudged one
// step toward zero so the closed-form inverse keeps a non-negative
// discriminant at the boundary.
var MaxSwapCER = math.Nextafter(4-2*math.Sqrt(3), 0)

// maxSwapProbability is the argmax of the stationary expected-CER curve.
// The curve increases on [0, maxSwapProbability] and decreases beyond it,
// so inversion is only meaningful on this branch.
var maxSwapProbability = math.Sqrt(3) - 1

// AsymptoticLength is the string length above which the stationary
// closed form replaces the exact finite-chain model. Past this length the
// start-boundary effect is below the calibration tolerance.
const AsymptoticLength = 50

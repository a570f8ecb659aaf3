package unbias

import (
	"math"
	"sync"
)

// Bisection bounds. The forward model is smooth, so plain bisection on
// the monotone branch converges a bit beyond float precision well within
// the iteration cap.
const (
	bisectTolerance = 1e-12
	bisectMaxIter   = 200
)

// bisect finds x ∈ [lo, hi] with f(x) ≈ target, assuming f is
// non-decreasing on the bracket. If target is at or beyond f(hi) the
// upper bound is returned (clamp semantics — the caller asked for more
// than the bracket can deliver).
//
// Any bisection/Brent-style bounded scalar solver would do here; this one
// is kept dependency-free since the numeric stack carries no scalar
// root-finder.
//
// Complexity: O(log((hi-lo)/tol)) evaluations of f.
func bisect(f func(float64) float64, lo, hi, target float64) float64 {
	if f(hi) <= target {
		return hi
	}
	if f(lo) >= target {
		return lo
	}
	for iter := 0; iter < bisectMaxIter && hi-lo > bisectTolerance; iter++ {
		mid := lo + (hi-lo)/2
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

// cacheKey identifies one memoized inversion. Lengths above
// AsymptoticLength collapse into a single bucket: the stationary closed
// form no longer depends on n there.
type cacheKey struct {
	cer    float64
	bucket int
}

func lengthBucket(n int) int {
	if n > AsymptoticLength {
		return AsymptoticLength + 1
	}
	return n
}

// Solver inverts the swap forward model, memoizing results per
// (target CER, length bucket).
//
// The cache is append-only and write-once: entries never change after
// insertion. Concurrent callers racing on the same key may both compute
// the value; LoadOrStore keeps exactly one, which is safe because the
// computation is deterministic. No lock is held during computation.
//
// The zero value is ready to use.
type Solver struct {
	cache sync.Map // cacheKey → float64
}

// NewSolver returns an empty solver with its own cache. Most callers can
// use the package-level functions, which share a process-wide solver.
func NewSolver() *Solver { return &Solver{} }

// NoiseLevelForCER computes the per-draw swap probability whose expected
// CER over a string of n characters equals cer.
//
// For n > AsymptoticLength the stationary closed form is used; otherwise
// the exact finite-chain model is inverted by bisection over the
// increasing branch [0, √3-1]. Results are memoized.
//
// Contracts:
//   - cer ∈ [0, MaxSwapCER], otherwise ErrCERRange.
//   - n ≤ 1 yields 0 (a swap needs two characters).
//
// Complexity: O(1) on a cache hit; otherwise O(n · log(1/tol)).
func (s *Solver) NoiseLevelForCER(cer float64, n int) (float64, error) {
	if cer < 0 || cer > MaxSwapCER || math.IsNaN(cer) {
		return 0, ErrCERRange
	}
	if n <= 1 || cer == 0 {
		return 0, nil
	}

	key := cacheKey{cer: cer, bucket: lengthBucket(n)}
	if v, ok := s.cache.Load(key); ok {
		return v.(float64), nil
	}

	var p float64
	if n > AsymptoticLength {
		p = stationaryInverse(cer)
	} else {
		p = bisect(func(x float64) float64 {
			e, _ := ExpectedCER(x, n) // x stays within [0,1] by construction
			return e
		}, 0, maxSwapProbability, cer)
	}

	v, _ := s.cache.LoadOrStore(key, p)
	return v.(float64), nil
}

// Swap computes the probability to hand to the mutation engine so that a
// swap pass over n characters realizes an expected CER of level.
//
// Pipeline: clamp the target to MaxSwapCER (requests beyond the reachable
// maximum degrade to it rather than fabricating an out-of-model
// probability), invert the forward model, then scale by the
// natural-language correction factor — consecutive characters of real
// text are not always distinct, which the model assumes — and clamp the
// final probability to [0,1].
//
// Contracts:
//   - level ∈ [0,1], otherwise ErrProbabilityRange.
//   - correction > 0, otherwise ErrCorrectionRange.
//   - n == 0 or level == 0 short-circuits to 0 before the solver runs.
//
// Complexity: as NoiseLevelForCER.
func (s *Solver) Swap(level float64, n int, correction float64) (float64, error) {
	if level < 0 || level > 1 || math.IsNaN(level) {
		return 0, ErrProbabilityRange
	}
	if correction <= 0 || math.IsNaN(correction) {
		return 0, ErrCorrectionRange
	}
	if n == 0 || level == 0 {
		return 0, nil
	}

	target := math.Min(level, MaxSwapCER)
	p, err := s.NoiseLevelForCER(target, n)
	if err != nil {
		return 0, err
	}
	return math.Min(p*correction, 1), nil
}

// defaultSolver backs the package-level helpers; its cache is shared
// process-wide, which is what a dataset pass over many documents wants.
var defaultSolver = NewSolver()

// NoiseLevelForCER calls Solver.NoiseLevelForCER on the shared solver.
func NoiseLevelForCER(cer float64, n int) (float64, error) {
	return defaultSolver.NoiseLevelForCER(cer, n)
}

// Swap calls Solver.Swap on the shared solver.
func Swap(level float64, n int, correction float64) (float64, error) {
	return defaultSolver.Swap(level, n, correction)
}

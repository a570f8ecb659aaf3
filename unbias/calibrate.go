package unbias

import "math"

// SeveralActions computes the per-pass probability p such that n
// independent sequential passes at p corrupt with overall probability
// level: p = 1 - (1-level)^(1/n).
//
// At first order this is level/n; the exact form matters for high levels.
//
// Contracts:
//   - level ∈ [0,1], otherwise ErrProbabilityRange.
//   - n ≥ 1, otherwise ErrBadActionCount.
//
// Complexity: O(1).
func SeveralActions(level float64, n int) (float64, error) {
	if level < 0 || level > 1 || math.IsNaN(level) {
		return 0, ErrProbabilityRange
	}
	if n < 1 {
		return 0, ErrBadActionCount
	}
	if n == 1 {
		return level, nil
	}
	return 1 - math.Pow(1-level, 1/float64(n)), nil
}

// SplitIntoWords raises level to compensate for the inter-token
// separators that are never mutated when noise is applied token by token:
// p' = level · (1 + spaces/chars), where spaces = len(tokens)-1 and chars
// is the total rune count across tokens (single-space joins assumed).
//
// The result is clamped to 1: a per-token probability above 1 is not
// realizable, so the achievable CER is capped rather than erroring.
//
// Degenerate inputs (no tokens, or only empty tokens) leave level
// unchanged: there is nothing to compensate for.
//
// Complexity: O(total token bytes).
func SplitIntoWords(level float64, tokens []string) (float64, error) {
	if level < 0 || level > 1 || math.IsNaN(level) {
		return 0, ErrProbabilityRange
	}
	if len(tokens) == 0 {
		return level, nil
	}
	var chars int
	for _, tok := range tokens {
		chars += len([]rune(tok))
	}
	if chars == 0 {
		return level, nil
	}
	spaces := len(tokens) - 1
	p := level * (1 + float64(spaces)/float64(chars))
	return math.Min(p, 1), nil
}

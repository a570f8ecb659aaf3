package noise

import "math/rand"

// The mutation engine: one action, one already-calibrated probability,
// one pass over a rune sequence. All calibration lives in package unbias
// and is orchestrated by Augmenter; the functions here draw with p as
// given.

// Insert scans left to right and, with probability p at each original
// position, inserts one character drawn uniformly from alphabet
// immediately before it. Draws are independent per position.
//
// Output length ≥ input length. The input slice is never modified.
//
// Contract: alphabet must be non-empty.
//
// Complexity: O(n) time, O(n) space.
func Insert(text []rune, p float64, alphabet []rune, rng *rand.Rand) []rune {
	out := make([]rune, 0, len(text)+len(text)/4)
	for _, r := range text {
		if rng.Float64() < p {
			out = append(out, alphabet[rng.Intn(len(alphabet))])
		}
		out = append(out, r)
	}
	return out
}

// Delete scans left to right and omits each character from the output
// with probability p. Draws are independent per position; the output may
// become empty.
//
// Complexity: O(n) time, O(n) space.
func Delete(text []rune, p float64, rng *rand.Rand) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if rng.Float64() < p {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Substitute scans left to right and, with probability p, replaces each
// character with one drawn uniformly from alphabet minus the original
// character. Draws are independent per position.
//
// Contract: alphabet must contain at least two distinct characters
// (enforced with ErrAlphabetTooSmall on the length, deduplication is the
// caller's job — Augmenter deduplicates at construction). The replacement
// never equals the original.
//
// Complexity: O(n) expected time, O(n) space.
func Substitute(text []rune, p float64, alphabet []rune, rng *rand.Rand) ([]rune, error) {
	if len(alphabet) < 2 {
		return nil, ErrAlphabetTooSmall
	}
	out := make([]rune, len(text))
	for i, r := range text {
		if rng.Float64() < p {
			out[i] = otherRune(r, alphabet, rng)
			continue
		}
		out[i] = r
	}
	return out, nil
}

// otherRune draws uniformly from alphabet until the result differs from r.
// Terminates because alphabet holds ≥ 2 distinct runes.
func otherRune(r rune, alphabet []rune, rng *rand.Rand) rune {
	other := alphabet[rng.Intn(len(alphabet))]
	for other == r {
		other = alphabet[rng.Intn(len(alphabet))]
	}
	return other
}

// Swap scans positions 0..len-2 carrying a single "previous position was
// the target of a swap" flag. When the flag is clear, one draw decides
// with probability p whether to transpose the characters at i and i+1;
// a transposition sets the flag so position i+1 is skipped without a
// draw. The flag then clears before the next position.
//
// This two-state scan — not independent per-position trials — guarantees
// that no character participates in two swaps within one pass, and is the
// source of swap's statistical bias that unbias.Swap corrects for.
//
// Complexity: O(n) time, O(n) space.
func Swap(text []rune, p float64, rng *rand.Rand) []rune {
	out := append([]rune(nil), text...)
	swapped := false
	for i := 0; i+1 < len(out); i++ {
		if swapped {
			swapped = false
			continue
		}
		if rng.Float64() < p {
			out[i], out[i+1] = out[i+1], out[i]
			swapped = true
		}
	}
	return out
}

// Apply routes one action through the engine with a calibrated
// probability p ∈ [0,1]. Only Substitute can fail (ErrAlphabetTooSmall);
// unknown actions return ErrUnknownAction.
func Apply(action Action, text []rune, p float64, alphabet []rune, rng *rand.Rand) ([]rune, error) {
	switch action {
	case ActionDelete:
		return Delete(text, p, rng), nil
	case ActionInsert:
		return Insert(text, p, alphabet, rng), nil
	case ActionSubstitute:
		return Substitute(text, p, alphabet, rng)
	case ActionSwap:
		return Swap(text, p, rng), nil
	default:
		return nil, ErrUnknownAction
	}
}

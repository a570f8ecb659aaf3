// Package cer measures the Character Error Rate between a reference text
// and a hypothesis: Levenshtein edit distance divided by reference length.
//
// The distance uses a rolling two-row dynamic program, so memory stays
// O(min(n,m)) regardless of input size; no alignment path is recovered.
package cer

import "errors"

var (
	// ErrEmptyReference indicates a CER request against an empty reference.
	ErrEmptyReference = errors.New("cer: reference must be non-empty")
	// ErrLengthMismatch indicates ragged reference/hypothesis corpora.
	ErrLengthMismatch = errors.New("cer: references and hypotheses must have equal length")
)

// Distance computes the Levenshtein distance between ref and hyp in
// runes: the minimum number of single-character insertions, deletions and
// substitutions transforming one into the other.
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func Distance(ref, hyp string) int {
	a, b := []rune(ref), []rune(hyp)
	// Keep the shorter sequence on the row axis to bound memory.
	if len(b) > len(a) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// Rate computes Distance(ref, hyp) normalized by the rune length of ref.
// Returns ErrEmptyReference when ref is empty: the rate is undefined.
func Rate(ref, hyp string) (float64, error) {
	n := len([]rune(ref))
	if n == 0 {
		return 0, ErrEmptyReference
	}
	return float64(Distance(ref, hyp)) / float64(n), nil
}

// MacroAverage computes the corpus-level CER: total edit distance across
// all pairs divided by total reference length. This weighs long documents
// proportionally, matching how CER is reported for datasets.
//
// Errors: ErrLengthMismatch on ragged input, ErrEmptyReference when the
// corpus holds zero reference characters.
func MacroAverage(refs, hyps []string) (float64, error) {
	if len(refs) != len(hyps) {
		return 0, ErrLengthMismatch
	}
	var edits, chars int
	for i := range refs {
		edits += Distance(refs[i], hyps[i])
		chars += len([]rune(refs[i]))
	}
	if chars == 0 {
		return 0, ErrEmptyReference
	}
	return float64(edits) / float64(chars), nil
}

func minInt(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

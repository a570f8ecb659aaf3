package cer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textnoise/cer"
)

// TestDistance_Known pins classic and boundary cases.
func TestDistance_Known(t *testing.T) {
	cases := []struct {
		ref, hyp string
		want     int
	}{
		{"kitten", "sitting", 3},
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"ab", "ba", 2},
		{"0123", "1032", 3}, // two overlapping transpositions cost 3, not 4
		{"flaw", "lawn", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, cer.Distance(tc.ref, tc.hyp), "%q vs %q", tc.ref, tc.hyp)
		assert.Equal(t, tc.want, cer.Distance(tc.hyp, tc.ref), "distance must be symmetric")
	}
}

// TestDistance_Runes counts runes, not bytes.
func TestDistance_Runes(t *testing.T) {
	assert.Equal(t, 1, cer.Distance("héllo", "hello"))
	assert.Equal(t, 2, cer.Distance("日本語", "日語本"))
}

// TestRate_Normalization divides by the reference rune length.
func TestRate_Normalization(t *testing.T) {
	r, err := cer.Rate("abcd", "abcz")
	require.NoError(t, err)
	assert.Equal(t, 0.25, r)

	r, err = cer.Rate("ab", "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)

	// Insertions can push the rate beyond 1; that is expected.
	r, err = cer.Rate("a", "xyz")
	require.NoError(t, err)
	assert.Equal(t, 3.0, r)
}

// TestRate_EmptyReference is undefined and must error.
func TestRate_EmptyReference(t *testing.T) {
	_, err := cer.Rate("", "anything")
	assert.ErrorIs(t, err, cer.ErrEmptyReference)
}

// TestMacroAverage weighs documents by reference length.
func TestMacroAverage(t *testing.T) {
	refs := []string{"aaaa", "bb"}
	hyps := []string{"aaaa", "cc"} // 0 + 2 edits over 6 chars
	rate, err := cer.MacroAverage(refs, hyps)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/6.0, rate, 1e-12)
}

// TestMacroAverage_Errors covers ragged corpora and empty references.
func TestMacroAverage_Errors(t *testing.T) {
	_, err := cer.MacroAverage([]string{"a"}, []string{"a", "b"})
	assert.ErrorIs(t, err, cer.ErrLengthMismatch)

	_, err = cer.MacroAverage([]string{"", ""}, []string{"", ""})
	assert.ErrorIs(t, err, cer.ErrEmptyReference)
}

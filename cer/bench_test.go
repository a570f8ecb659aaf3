package cer_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/textnoise/cer"
)

// benchmarkDistance runs Distance on two n-character strings that differ
// throughout, the worst case for the DP.
func benchmarkDistance(b *testing.B, n int) {
	ref := strings.Repeat("ab", n/2)
	hyp := strings.Repeat("ba", n/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cer.Distance(ref, hyp)
	}
}

func BenchmarkDistance_100(b *testing.B)  { benchmarkDistance(b, 100) }
func BenchmarkDistance_1000(b *testing.B) { benchmarkDistance(b, 1000) }

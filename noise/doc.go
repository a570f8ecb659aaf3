// Package noise injects calibrated random character-level noise into text
// so that the expected Character Error Rate (CER) of the output converges
// to a configured noise level. Use it to corrupt datasets for robustness
// training and evaluation.
//
// 🚀 What does it do?
//
//	Four elementary edits are applied per-character under a probability
//	that package unbias calibrates from the requested level:
//	  • delete     — drop a character
//	  • insert     — inject a random alphabet character
//	  • substitute — replace a character with a different one
//	  • swap       — transpose two adjacent characters (never the same
//	    character twice in one pass)
//
// ✨ Key properties:
//   - Calibrated: with enough samples, output CER → NoiseLevel, including
//     the Markov-model correction for swap's structural bias.
//   - Shape-preserving: string in → string out; token list in → token list
//     of the same length out (noise never crosses token boundaries).
//   - Deterministic: explicit seeds, injected RNGs, forkable per-worker
//     streams; no global randomness.
//   - Config-time failures only: invalid options error in NewAugmenter,
//     runtime edge cases clamp instead of corrupting output shape.
//
// ⚙️ Usage:
//
//	aug, err := noise.NewAugmenter(noise.Options{
//	  NoiseLevel: 0.1,
//	  Actions:    []noise.Action{noise.ActionDelete, noise.ActionSwap},
//	  Seed:       42,
//	})
//	if err != nil {
//	  // invalid configuration
//	}
//	noised, err := aug.AugmentString("the quick brown fox")
//
// Swap alone cannot corrupt past unbias.MaxSwapCER (≈0.536); requests
// above it degrade to the maximum instead of erroring mid-dataset.
//
// See package unbias for the calibration model and package dataset for
// applying an Augmenter across record collections in parallel.
package noise

// Package textnoise adds calibrated character-level noise to text so that
// the measured Character Error Rate (CER) of the output converges to the
// level you ask for — not merely "some" noise, but a controlled amount.
//
// 🚀 What is textnoise?
//
//	A small, deterministic library for corrupting text datasets:
//		• Mutation engine: delete, insert, substitute, swap — per-character
//		  Bernoulli edits plus a no-double-swap adjacent transposition
//		• Bias correction: sequential-pass compounding, token-split loss,
//		  and a Markov-chain model that inverts swap's structural bias
//		• CER metric: rolling-row Levenshtein distance and corpus averages
//		• Dataset pass: parallel, reproducible augmentation of one feature
//		  across record collections
//
// ✨ Why choose textnoise?
//
//   - Calibrated – output CER converges to the requested noise level
//   - Deterministic – explicit seeds, forkable RNG streams, no globals
//   - Robust – config errors fail at build time, runtime edges clamp
//   - Concurrent – documents are independent; the solver cache is shared
//     and race-safe
//
// Everything is organized under four subpackages:
//
//	noise/   — mutation engine, Augmenter, options & YAML config
//	unbias/  — probability calibrators, swap bias solver, solver cache
//	cer/     — Character Error Rate metric
//	dataset/ — record-collection wrapper around the Augmenter
//
// Quick example:
//
//	aug, _ := noise.NewAugmenter(noise.Options{NoiseLevel: 0.1, Seed: 42})
//	out, _ := aug.AugmentString("calibrate me")
//
//	go get github.com/katalvlaran/textnoise
package textnoise

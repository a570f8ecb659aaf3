// Package unbias turns a requested noise level into the probability that
// must actually be fed to the mutation engine so that the observed
// Character Error Rate (CER) converges to the request.
//
// Three independent biases are corrected here:
//
//   - Sequential application. Running k independent noise passes at
//     per-pass probability p corrupts with overall probability 1-(1-p)^k.
//     SeveralActions inverts that compounding.
//
//   - Token splitting. When noise is applied token by token, the spaces
//     between tokens are never mutated, so the CER of the re-joined string
//     falls short of the request. SplitIntoWords scales the level up by
//     the share of untouched separators.
//
//   - Swap structure. The swap pass forbids a character from being swapped
//     twice, which makes consecutive scan outcomes dependent and breaks
//     the law-of-large-numbers argument the other actions rely on. The
//     realized expected CER is modeled as an 8-state Markov chain
//     (ExpectedCER) and inverted (Solver, Swap): exactly via bisection for
//     short strings, via the stationary closed form for strings longer
//     than AsymptoticLength. Swap alone can never reach a CER of
//     MaxSwapCER ≈ 0.5359; requests above it are clamped.
//
// Inversions are memoized in a process-wide, append-only cache that is
// safe for concurrent use; redundant computation on a racing key is
// accepted, corruption is not.
//
// All functions are pure and deterministic: no global randomness, no
// logging, only sentinel errors from types.go.
package unbias

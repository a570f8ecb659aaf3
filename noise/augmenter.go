package noise

import (
	"math/rand"

	"github.com/katalvlaran/textnoise/unbias"
)

// Augmenter applies calibrated character-level noise so that the expected
// CER of its output converges to the configured noise level. It is
// immutable after construction apart from RNG draws and solver-cache
// reads.
//
// Concurrency: one Augmenter is NOT safe for concurrent use (it owns a
// *rand.Rand). Use Fork to derive independent per-worker augmenters; the
// underlying solver cache is shared and concurrency-safe.
type Augmenter struct {
	noiseLevel     float64
	actions        []Action
	alphabet       []rune
	swapCorrection float64
	rng            *rand.Rand
}

// NewAugmenter validates opts and builds an Augmenter.
//
// Configuration errors are surfaced here, never deferred to first use:
// ErrNoiseLevelRange, ErrNoActions, ErrUnknownAction, ErrCorrectionRange,
// and ErrAlphabetTooSmall when substitute is configured with fewer than
// two distinct alphabet characters.
func NewAugmenter(opts Options) (*Augmenter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	actions := opts.Actions
	if actions == nil {
		actions = DefaultActions()
	}
	actions = dedupeActions(actions)

	alphabetSrc := opts.Alphabet
	if alphabetSrc == "" {
		alphabetSrc = DefaultAlphabet
	}
	alphabet := dedupeAlphabet(alphabetSrc)

	for _, a := range actions {
		if a == ActionSubstitute && len(alphabet) < 2 {
			return nil, ErrAlphabetTooSmall
		}
	}

	correction := opts.SwapCorrection
	if correction == 0 {
		correction = DefaultSwapCorrection
	}

	rng := opts.Rand
	if rng == nil {
		rng = NewSeededRand(opts.Seed)
	}

	return &Augmenter{
		noiseLevel:     opts.NoiseLevel,
		actions:        actions,
		alphabet:       alphabet,
		swapCorrection: correction,
		rng:            rng,
	}, nil
}

// Fork returns a copy of the augmenter with an independent RNG stream
// derived from this one and the stream id. Configuration is shared
// (it is immutable); the solver cache stays shared too.
//
// Call during setup, sequentially: deriving advances the parent RNG.
func (a *Augmenter) Fork(stream uint64) *Augmenter {
	clone := *a
	clone.rng = DeriveRand(a.rng, stream)
	return &clone
}

// NoiseLevel reports the configured target expected CER.
func (a *Augmenter) NoiseLevel() float64 { return a.noiseLevel }

// Actions reports the configured action order.
func (a *Augmenter) Actions() []Action {
	return append([]Action(nil), a.actions...)
}

// AugmentString applies the configured actions, in order, to text: each
// action's output feeds the next. The per-pass probability is calibrated
// once per call so the expected CER of the result converges to
// NoiseLevel over many calls.
//
// Degenerate inputs pass through: empty text, or a zero noise level,
// return the input unchanged.
func (a *Augmenter) AugmentString(text string) (string, error) {
	base, err := unbias.SeveralActions(a.noiseLevel, len(a.actions))
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	for _, action := range a.actions {
		runes, err = a.applyCalibrated(action, runes, base)
		if err != nil {
			return "", err
		}
	}
	return string(runes), nil
}

// AugmentTokens applies noise independently within each token, never
// crossing token boundaries, and returns a list of the same length.
// Because inter-token separators are never mutated, the base probability
// is raised by the word-list rate adjustment before the action passes.
func (a *Augmenter) AugmentTokens(tokens []string) ([]string, error) {
	level, err := unbias.SplitIntoWords(a.noiseLevel, tokens)
	if err != nil {
		return nil, err
	}
	base, err := unbias.SeveralActions(level, len(a.actions))
	if err != nil {
		return nil, err
	}

	out := make([][]rune, len(tokens))
	for i, tok := range tokens {
		out[i] = []rune(tok)
	}
	// Action passes stay outermost so every token sees the same action
	// order, with each action's output feeding the next pass.
	for _, action := range a.actions {
		for i := range out {
			out[i], err = a.applyCalibrated(action, out[i], base)
			if err != nil {
				return nil, err
			}
		}
	}

	result := make([]string, len(out))
	for i, runes := range out {
		result[i] = string(runes)
	}
	return result, nil
}

// applyCalibrated runs one engine pass. Swap carries a structural bias,
// so its probability goes through the bias solver against the current
// sequence length; the other actions use the base probability directly.
func (a *Augmenter) applyCalibrated(action Action, runes []rune, base float64) ([]rune, error) {
	p := base
	if action == ActionSwap {
		var err error
		p, err = unbias.Swap(base, len(runes), a.swapCorrection)
		if err != nil {
			return nil, err
		}
	}
	return Apply(action, runes, p, a.alphabet, a.rng)
}

package noise

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultAlphabet is the character set insert and substitute draw from
	// when none is configured: ASCII letters, both cases.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultSwapCorrection compensates for adjacent repeated characters in
	// natural text, which the swap model assumes away. Calibrated on
	// English corpora.
	DefaultSwapCorrection = 1.0655
)

// DefaultActions returns the canonical action order used when Options
// leaves Actions unset: delete, insert, substitute, swap.
func DefaultActions() []Action {
	return []Action{ActionDelete, ActionInsert, ActionSubstitute, ActionSwap}
}

// Options configures an Augmenter.
//
// Fields:
//   - NoiseLevel     — target expected CER in [0,1].
//   - Actions        — ordered edit actions to apply; nil means the
//     canonical order (DefaultActions). Duplicates are dropped, first
//     occurrence wins. An explicitly empty (non-nil) list is an error.
//   - Alphabet       — characters insert/substitute draw from; empty means
//     DefaultAlphabet. Duplicates are dropped.
//   - SwapCorrection — natural-language correction factor for the solved
//     swap probability; 0 means DefaultSwapCorrection.
//   - Seed           — RNG seed; 0 means the fixed default stream.
//   - Rand           — optional explicit RNG, overrides Seed when non-nil.
//     Not representable in YAML.
type Options struct {
	NoiseLevel     float64    `yaml:"noise_level"`
	Actions        []Action   `yaml:"actions"`
	Alphabet       string     `yaml:"alphabet"`
	SwapCorrection float64    `yaml:"swap_correction"`
	Seed           int64      `yaml:"seed"`
	Rand           *rand.Rand `yaml:"-"`
}

// DefaultOptions returns Options with every default made explicit.
// The zero Options value behaves identically after normalization.
func DefaultOptions() Options {
	return Options{
		NoiseLevel:     0,
		Actions:        DefaultActions(),
		Alphabet:       DefaultAlphabet,
		SwapCorrection: DefaultSwapCorrection,
	}
}

// LoadOptions reads an Options YAML document from path. Unknown action
// tags surface ErrUnknownAction; range checks happen in NewAugmenter.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("noise: read %s: %w", path, err)
	}
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("noise: unmarshal %s: %w", path, err)
	}
	return opts, nil
}

// validate checks option invariants that must fail at construction time,
// never at first use.
func (o Options) validate() error {
	if o.NoiseLevel < 0 || o.NoiseLevel > 1 || math.IsNaN(o.NoiseLevel) {
		return ErrNoiseLevelRange
	}
	if o.Actions != nil && len(o.Actions) == 0 {
		return ErrNoActions
	}
	for _, a := range o.Actions {
		if int(a) >= actionCount {
			return fmt.Errorf("%w: %d", ErrUnknownAction, a)
		}
	}
	if o.SwapCorrection < 0 || math.IsNaN(o.SwapCorrection) {
		return ErrCorrectionRange
	}
	return nil
}

// dedupeActions drops repeated actions, keeping first occurrences in order.
func dedupeActions(actions []Action) []Action {
	var seen [actionCount]bool
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

// dedupeAlphabet drops repeated runes, keeping first occurrences in order.
func dedupeAlphabet(alphabet string) []rune {
	seen := make(map[rune]struct{}, len(alphabet))
	out := make([]rune, 0, len(alphabet))
	for _, r := range alphabet {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}

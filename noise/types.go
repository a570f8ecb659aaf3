package noise

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoiseLevelRange indicates a noise level outside [0,1].
	ErrNoiseLevelRange = errors.New("noise: noise level must be within [0,1]")
	// ErrNoActions indicates an explicitly empty action list.
	ErrNoActions = errors.New("noise: at least one action is required")
	// ErrUnknownAction indicates an unrecognized action tag.
	ErrUnknownAction = errors.New("noise: unknown action")
	// ErrAlphabetTooSmall indicates substitute is configured with fewer than
	// two distinct alphabet characters, so no replacement ever differs from
	// the original.
	ErrAlphabetTooSmall = errors.New("noise: substitute requires at least two distinct alphabet characters")
	// ErrCorrectionRange indicates a non-positive swap correction factor.
	ErrCorrectionRange = errors.New("noise: swap correction factor must be positive")
)

// Action is one elementary character-level edit applied by the mutation
// engine. It is a closed set: exactly the Levenshtein single-character
// edits plus the adjacent transposition.
type Action uint8

const (
	// ActionDelete omits a character with the configured probability.
	ActionDelete Action = iota
	// ActionInsert inserts a random alphabet character before a position.
	ActionInsert
	// ActionSubstitute replaces a character with a different alphabet character.
	ActionSubstitute
	// ActionSwap transposes two adjacent characters; a character never
	// participates in two swaps within one pass.
	ActionSwap

	actionCount = 4
)

// actionNames are the canonical wire tags, indexed by Action.
var actionNames = [actionCount]string{"delete", "insert", "substitute", "swap"}

// String returns the canonical tag of the action, or "invalid" for values
// outside the closed set.
func (a Action) String() string {
	if int(a) >= actionCount {
		return "invalid"
	}
	return actionNames[a]
}

// ParseAction maps a tag back to its Action. Unknown tags return
// ErrUnknownAction.
func ParseAction(tag string) (Action, error) {
	for i, name := range actionNames {
		if name == tag {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, tag)
}

// UnmarshalYAML decodes an action from its tag so configuration files can
// spell actions as ["delete", "swap"].
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var tag string
	if err := value.Decode(&tag); err != nil {
		return err
	}
	parsed, err := ParseAction(tag)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalYAML encodes the action as its tag.
func (a Action) MarshalYAML() (interface{}, error) {
	if int(a) >= actionCount {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, a)
	}
	return a.String(), nil
}

package ladder

import "errors"

// Sentinel errors for ladder validation.
var (
	// ErrEmpty is returned when validating a nil or zero-length ladder.
	ErrEmpty = errors.New("ladder: empty ladder")

	// ErrNotAdjacent is returned when two consecutive words do not differ
	// in exactly one position (or have different lengths).
	ErrNotAdjacent = errors.New("ladder: consecutive words are not one substitution apart")

	// ErrRepeatedWord is returned when a word appears more than once.
	ErrRepeatedWord = errors.New("ladder: word appears more than once")
)

// Separator joins words in String().
const Separator = " -> "

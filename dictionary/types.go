package dictionary

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for dictionary loading and validation.
var (
	// ErrDictionaryUnavailable is returned when the word source cannot be opened or read.
	ErrDictionaryUnavailable = errors.New("dictionary: source unavailable")

	// ErrInvalidWordSize is returned for a word size below 1.
	ErrInvalidWordSize = errors.New("dictionary: word size must be positive")

	// ErrUnsorted is returned when the filtered words are not in sorted order
	// and sorting was not requested.
	ErrUnsorted = errors.New("dictionary: words are not sorted")

	// ErrInsufficientEntries is returned by Validate when fewer than MinEntries words qualify.
	ErrInsufficientEntries = errors.New("dictionary: insufficient words of the requested size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dictionary: invalid option supplied")
)

// MinEntries is the smallest table a ladder can be searched in: a distinct
// start and goal.
const MinEntries = 2

// Option configures loading via functional arguments.
type Option func(*Options)

// Options holds loader settings.
type Options struct {
	// Sort sorts the table after loading instead of rejecting unsorted input.
	Sort bool

	// Lowercase folds every token to lower case before length filtering.
	Lowercase bool

	// Logger receives load summaries at debug level.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no sorting, no case folding and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithSort sorts the loaded words, making unsorted sources acceptable.
func WithSort() Option {
	return func(o *Options) {
		o.Sort = true
	}
}

// WithLowercase folds tokens to lower case before filtering.
func WithLowercase() Option {
	return func(o *Options) {
		o.Lowercase = true
	}
}

// WithLogger sets the logger used for load diagnostics.
// A nil logger is an option violation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger cannot be nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

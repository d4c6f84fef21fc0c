// Package wordladder provides tunable options, strategies and error
// definitions for the shortest word-ladder search.
package wordladder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/wordladder/ladder"
)

// Sentinel errors for ladder search.
var (
	// ErrTableNil is returned if a nil word table is passed.
	ErrTableNil = errors.New("wordladder: word table is nil")

	// ErrWordNotFound is returned when the start or goal word is absent from the table.
	ErrWordNotFound = errors.New("wordladder: word not found in table")

	// ErrSameWord is returned when start and goal are the same word.
	ErrSameWord = errors.New("wordladder: start and goal are the same word")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wordladder: invalid option supplied")
)

// Strategy selects how substitution neighbors are enumerated.
type Strategy int

const (
	// StrategyScan compares the current word against every table entry.
	StrategyScan Strategy = iota
	// StrategyBuckets looks neighbors up in a wildcard-pattern index.
	StrategyBuckets
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyBuckets:
		return "buckets"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "scan" or "buckets" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "scan":
		return StrategyScan, nil
	case "buckets", "bucket":
		return StrategyBuckets, nil
	default:
		return StrategyScan, fmt.Errorf("%w: unknown neighbor strategy %q", ErrOptionViolation, name)
	}
}

// Option configures Search behavior via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued ladder.
	Ctx context.Context

	// MaxDepth, if > 0, stops generating ladders deeper than this many
	// substitutions. A value of 0 disables the limit.
	MaxDepth int

	// Strategy picks the neighbor generator.
	Strategy Strategy

	// Index, if set, is reused by StrategyBuckets instead of building one.
	Index *BucketIndex

	// OnLevel is called at the start of each BFS level with the level's
	// depth and the number of ladders captured for it.
	OnLevel func(depth, size int)

	// OnDequeue is called with a ladder's head word and depth when it is
	// taken off the frontier.
	OnDequeue func(word string, depth int)

	// OnEnqueue is called with the new head word and its depth each time a
	// ladder is pushed for the next level.
	OnEnqueue func(word string, depth int)

	// Logger receives per-level debug events and a search summary.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit
//   - StrategyScan
//   - no-op hooks and a discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  0,
		Strategy:  StrategyScan,
		OnLevel:   func(int, int) {},
		OnDequeue: func(string, int) {},
		OnEnqueue: func(string, int) {},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the number of substitutions a ladder may contain.
//
//	d > 0: ladders hold at most d+1 words
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithStrategy selects the neighbor generator.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyScan, StrategyBuckets:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithBucketIndex reuses a prebuilt index and implies StrategyBuckets.
// The index must have been built from the table being searched.
func WithBucketIndex(ix *BucketIndex) Option {
	return func(o *Options) {
		if ix == nil {
			o.err = fmt.Errorf("%w: bucket index cannot be nil", ErrOptionViolation)
			return
		}
		o.Strategy = StrategyBuckets
		o.Index = ix
	}
}

// WithOnLevel registers a callback run at the start of every level.
func WithOnLevel(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// WithOnDequeue registers a callback run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnEnqueue registers a callback run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search:
//   - Found: whether a ladder reached the goal. false is the "no ladder
//     exists" outcome, not an error.
//   - Ladder: the shortest ladder, head = goal, tail = start (nil if not found).
//   - Levels: BFS levels started.
//   - Expanded: ladders dequeued.
//   - Claimed: words claimed in the visited set, start included.
type Result struct {
	Ladder   *ladder.Ladder
	Found    bool
	Levels   int
	Expanded int
	Claimed  int
}

// Length returns the number of words in the ladder, 0 when not found.
func (r *Result) Length() int {
	if r == nil || !r.Found {
		return 0
	}
	return r.Ladder.Len()
}

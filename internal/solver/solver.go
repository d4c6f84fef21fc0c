// Package solver drives ladder searches end to end: it loads the word
// table, resolves and validates the requested words, runs the search, and
// turns the outcome into a Report while recording logs, metrics and spans.
package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/logging"
	"github.com/katalvlaran/wordladder/internal/telemetry"
	"github.com/katalvlaran/wordladder/wordgraph"
	"github.com/katalvlaran/wordladder/wordladder"
)

// randomTries bounds rejection sampling in RandomWord before falling back
// to a linear scan.
const randomTries = 32

// Report is the outcome of one start/goal query.
type Report struct {
	Start    string
	Goal     string
	Found    bool
	Path     []string // start → goal; nil when not found
	Length   int      // words in the ladder; 0 when not found
	Levels   int
	Expanded int
	Duration time.Duration
	Err      error // set for per-pair failures in batch mode

	// Separated is set when no ladder was found because start and goal lie
	// in different components. When a depth limit cut the search short
	// instead, it is false and MinLength holds the unlimited ladder length.
	Separated bool
	MinLength int
}

// Solver holds a loaded table and the collaborators used around searches.
// It is safe for concurrent use.
type Solver struct {
	table    *dictionary.Table
	strategy wordladder.Strategy
	maxDepth int
	index    *wordladder.BucketIndex
	logger   *slog.Logger
	metrics  *telemetry.Metrics
	tracer   trace.Tracer

	rngMu sync.Mutex
	rng   *rand.Rand

	graphOnce sync.Once
	graph     *wordgraph.Graph
	graphErr  error
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records every search on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Solver) { s.metrics = m }
}

// WithTracer overrides the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithStrategy selects the neighbor strategy for every search.
func WithStrategy(st wordladder.Strategy) Option {
	return func(s *Solver) { s.strategy = st }
}

// WithMaxDepth limits ladder depth for every search (0 = unlimited).
func WithMaxDepth(d int) Option {
	return func(s *Solver) { s.maxDepth = d }
}

// WithRand sets the generator used for random words.
func WithRand(r *rand.Rand) Option {
	return func(s *Solver) {
		if r != nil {
			s.rng = r
		}
	}
}

// New wraps table. Tables that cannot hold a distinct start and goal are
// rejected with dictionary.ErrInsufficientEntries.
func New(table *dictionary.Table, opts ...Option) (*Solver, error) {
	if table == nil {
		return nil, wordladder.ErrTableNil
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		table:  table,
		logger: logging.Discard(),
		tracer: telemetry.Tracer(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxDepth < 0 {
		return nil, fmt.Errorf("%w: MaxDepth cannot be negative (%d)", wordladder.ErrOptionViolation, s.maxDepth)
	}
	if s.strategy == wordladder.StrategyBuckets {
		// shared by every search on this solver
		s.index = wordladder.NewBucketIndex(table)
	}
	return s, nil
}

// FromConfig loads the dictionary described by cfg and builds a Solver with
// the configured search settings.
func FromConfig(cfg config.Config, opts ...Option) (*Solver, error) {
	strategy, err := wordladder.ParseStrategy(cfg.Search.Strategy)
	if err != nil {
		return nil, err
	}
	base := &Solver{logger: logging.Discard()}
	for _, opt := range opts {
		opt(base)
	}

	var loadOpts []dictionary.Option
	loadOpts = append(loadOpts, dictionary.WithLogger(base.logger))
	if cfg.Dictionary.Sort {
		loadOpts = append(loadOpts, dictionary.WithSort())
	}
	if cfg.Dictionary.Lowercase {
		loadOpts = append(loadOpts, dictionary.WithLowercase())
	}

	began := time.Now()
	table, err := dictionary.Load(cfg.Dictionary.Path, cfg.Dictionary.WordSize, loadOpts...)
	if err != nil {
		return nil, err
	}
	base.metrics.ObserveLoad(table.Len(), time.Since(began))
	base.logger.Info("dictionary ready",
		"path", cfg.Dictionary.Path,
		"word_size", cfg.Dictionary.WordSize,
		"words", table.Len(),
	)

	all := append([]Option{WithStrategy(strategy), WithMaxDepth(cfg.Search.MaxDepth)}, opts...)
	return New(table, all...)
}

// Table returns the loaded word table.
func (s *Solver) Table() *dictionary.Table { return s.table }

// Solve runs one search. Invalid queries (unknown or equal words) return an
// error; a missing ladder is a Report with Found == false and a nil error.
func (s *Solver) Solve(ctx context.Context, start, goal string) (Report, error) {
	ctx, span := s.tracer.Start(ctx, "wordladder.Solve",
		trace.WithAttributes(
			attribute.String("wordladder.start", start),
			attribute.String("wordladder.goal", goal),
			attribute.String("wordladder.strategy", s.strategy.String()),
			attribute.Int("wordladder.table_words", s.table.Len()),
		),
	)
	defer span.End()

	rep := Report{Start: start, Goal: goal}
	began := time.Now()
	res, err := wordladder.Search(s.table, start, goal, s.searchOptions(ctx)...)
	rep.Duration = time.Since(began)

	outcome := classify(res, err)
	if res != nil {
		rep.Levels, rep.Expanded = res.Levels, res.Expanded
	}
	s.metrics.ObserveSearch(outcome, rep.Duration, res.Length(), rep.Expanded)
	span.SetAttributes(attribute.String("wordladder.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		s.logger.Warn("ladder search rejected", "start", start, "goal", goal, "outcome", outcome, "error", err)
		rep.Err = err
		return rep, err
	}

	rep.Found = res.Found
	if res.Found {
		rep.Path = res.Ladder.Path()
		rep.Length = res.Length()
	} else {
		rep.Separated, rep.MinLength = s.explainMiss(start, goal)
	}
	span.SetAttributes(
		attribute.Bool("wordladder.found", rep.Found),
		attribute.Int("wordladder.length", rep.Length),
		attribute.Int("wordladder.expanded", rep.Expanded),
	)
	s.logger.Info("ladder search",
		"start", start,
		"goal", goal,
		"found", rep.Found,
		"length", rep.Length,
		"levels", rep.Levels,
		"expanded", rep.Expanded,
		"separated", rep.Separated,
		"duration", rep.Duration,
	)
	return rep, nil
}

// explainMiss tells a separated pair from one cut off by the depth limit.
// Without a limit an exhausted search already proves separation.
func (s *Solver) explainMiss(start, goal string) (bool, int) {
	if s.maxDepth == 0 {
		return true, 0
	}
	g, err := s.Graph()
	if err != nil {
		s.logger.Warn("word graph unavailable", "error", err)
		return false, 0
	}
	d, ok := wordgraph.Distance(g, start, goal)
	if !ok {
		return true, 0
	}
	return false, d + 1
}

func (s *Solver) searchOptions(ctx context.Context) []wordladder.Option {
	opts := []wordladder.Option{
		wordladder.WithContext(ctx),
		wordladder.WithMaxDepth(s.maxDepth),
		wordladder.WithLogger(s.logger),
	}
	if s.index != nil {
		opts = append(opts, wordladder.WithBucketIndex(s.index))
	}
	return opts
}

func classify(res *wordladder.Result, err error) string {
	switch {
	case err == nil && res.Found:
		return telemetry.OutcomeFound
	case err == nil:
		return telemetry.OutcomeNoLadder
	case errors.Is(err, wordladder.ErrWordNotFound):
		return telemetry.OutcomeWordNotFound
	case errors.Is(err, wordladder.ErrSameWord):
		return telemetry.OutcomeSameWord
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return telemetry.OutcomeCanceled
	default:
		return telemetry.OutcomeError
	}
}

// RandomWord returns a random table word different from exclude, or "" if
// the table holds no such word.
func (s *Solver) RandomWord(exclude string) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	for i := 0; i < randomTries; i++ {
		if w := s.table.Random(s.rng); w != exclude {
			return w
		}
	}
	for _, w := range s.table.Words() {
		if w != exclude {
			return w
		}
	}
	return ""
}

// ResolvePair fills in missing endpoints with random table words. A
// supplied word that is not in the table is replaced too when fallback is
// true. A random word never repeats the other endpoint when the table
// holds another word.
func (s *Solver) ResolvePair(start, goal string, fallback bool) (string, string) {
	pick := func(word, exclude, role string) string {
		if word != "" && (!fallback || s.table.Contains(word)) {
			return word
		}
		w := s.RandomWord(exclude)
		s.logger.Warn("picking a random word", "role", role, "requested", word, "word", w)
		return w
	}
	start = pick(start, goal, "start")
	goal = pick(goal, start, "goal")
	return start, goal
}

// Graph returns the explicit word graph, built on first use.
func (s *Solver) Graph() (*wordgraph.Graph, error) {
	s.graphOnce.Do(func() {
		s.graph, s.graphErr = wordgraph.Build(s.table)
	})
	return s.graph, s.graphErr
}

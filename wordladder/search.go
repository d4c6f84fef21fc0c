package wordladder

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/ladder"
)

// session encapsulates the mutable state of one search. Nothing in it
// outlives the Search call that created it.
type session struct {
	table     *dictionary.Table
	opts      Options
	ctx       context.Context
	goal      string
	queue     frontier
	visited   *visitedSet
	neighbors func(word string) iter.Seq[int]
	res       *Result
}

// Search runs the ladder search on t from start to goal, applying any number
// of functional Options.
//
// A nil error with res.Found == false means no ladder exists. Errors are
// ErrTableNil, ErrWordNotFound, ErrSameWord, ErrOptionViolation, or the
// context's error if the search was cancelled.
func Search(t *dictionary.Table, start, goal string, opts ...Option) (*Result, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Index != nil && o.Index.Table() != t {
		return nil, fmt.Errorf("%w: bucket index was built for a different table", ErrOptionViolation)
	}

	startIdx, ok := t.Find(start)
	if !ok {
		return nil, fmt.Errorf("%w: start word %q", ErrWordNotFound, start)
	}
	if _, ok := t.Find(goal); !ok {
		return nil, fmt.Errorf("%w: goal word %q", ErrWordNotFound, goal)
	}
	if start == goal {
		return nil, fmt.Errorf("%w: %q", ErrSameWord, start)
	}

	s := newSession(t, o, goal)
	s.seed(startIdx)
	err := s.run()
	s.res.Claimed = s.visited.count()

	o.Logger.Debug("ladder search finished",
		"start", start,
		"goal", goal,
		"found", s.res.Found,
		"length", s.res.Length(),
		"levels", s.res.Levels,
		"expanded", s.res.Expanded,
		"claimed", s.res.Claimed,
	)
	return s.res, err
}

// FindShortestLadder is Search with default options, reduced to the ladder
// (goal → start) and whether one exists.
func FindShortestLadder(t *dictionary.Table, start, goal string) (*ladder.Ladder, bool, error) {
	res, err := Search(t, start, goal)
	if err != nil {
		return nil, false, err
	}
	return res.Ladder, res.Found, nil
}

func newSession(t *dictionary.Table, o Options, goal string) *session {
	s := &session{
		table:   t,
		opts:    o,
		ctx:     o.Ctx,
		goal:    goal,
		visited: newVisitedSet(t.Len()),
		res:     &Result{},
	}

	var source func(word string) iter.Seq[int]
	switch o.Strategy {
	case StrategyBuckets:
		ix := o.Index
		if ix == nil {
			ix = NewBucketIndex(t)
		}
		source = ix.Neighbors
	default:
		source = func(word string) iter.Seq[int] { return Neighbors(t, word) }
	}
	s.neighbors = func(word string) iter.Seq[int] {
		return unclaimed(source(word), s.visited)
	}
	return s
}

// seed claims the start word and queues the singleton ladder.
func (s *session) seed(startIdx int) {
	s.visited.claim(startIdx)
	s.enqueue(ladder.New(s.table.Word(startIdx)), 0)
}

func (s *session) enqueue(l *ladder.Ladder, depth int) {
	s.queue.push(l)
	s.opts.OnEnqueue(l.Head(), depth)
}

// run processes the frontier one level at a time until the goal is reached,
// the frontier empties, or the context is cancelled.
func (s *session) run() error {
	for s.queue.len() > 0 {
		// ladders pushed during this level belong to the next one
		levelSize := s.queue.len()
		depth := s.res.Levels
		s.res.Levels++
		s.opts.OnLevel(depth, levelSize)
		s.opts.Logger.Debug("ladder search level",
			"depth", depth,
			"ladders", levelSize,
			"claimed", s.visited.count(),
		)

		for i := 0; i < levelSize; i++ {
			select {
			case <-s.ctx.Done():
				s.queue.reset()
				return s.ctx.Err()
			default:
			}

			cur := s.queue.pop()
			s.res.Expanded++
			s.opts.OnDequeue(cur.Head(), depth)

			if cur.Head() == s.goal {
				s.queue.reset()
				s.res.Ladder = cur
				s.res.Found = true
				return nil
			}
			s.expand(cur, depth)
		}
	}
	return nil
}

// expand claims every unclaimed neighbor of cur's head and queues a copy of
// cur extended by it.
func (s *session) expand(cur *ladder.Ladder, depth int) {
	next := depth + 1
	if s.opts.MaxDepth > 0 && next > s.opts.MaxDepth {
		return
	}
	for j := range s.neighbors(cur.Head()) {
		if !s.visited.claim(j) {
			continue
		}
		s.enqueue(cur.Prepend(s.table.Word(j)), next)
	}
}

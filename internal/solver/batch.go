package solver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrMalformedPair is returned by ParsePairs for a line that is not exactly
// two words.
var ErrMalformedPair = errors.New("solver: malformed start/goal line")

// Pair is one start/goal query.
type Pair struct {
	Start string
	Goal  string
}

// ParsePairs reads one "START GOAL" pair per line. Blank lines and lines
// starting with '#' are skipped.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedPair, line, text)
		}
		pairs = append(pairs, Pair{Start: fields[0], Goal: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pairs: %w", err)
	}
	return pairs, nil
}

// SolveBatch solves every pair with at most workers searches in flight.
// Reports are returned in input order. Invalid pairs are recorded in their
// Report's Err and do not stop the batch; cancelling ctx does.
func (s *Solver) SolveBatch(ctx context.Context, pairs []Pair, workers int) ([]Report, error) {
	if workers < 1 {
		workers = 1
	}
	reports := make([]Report, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				reports[i] = Report{Start: p.Start, Goal: p.Goal, Err: err}
				return err
			}
			rep, err := s.Solve(gctx, p.Start, p.Goal)
			reports[i] = rep
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, fmt.Errorf("batch interrupted: %w", err)
	}

	found := 0
	for _, r := range reports {
		if r.Found {
			found++
		}
	}
	s.logger.Info("batch finished", "pairs", len(pairs), "found", found, "workers", workers)
	return reports, nil
}

package wordladder

import "github.com/katalvlaran/wordladder/ladder"

// frontier is the FIFO queue of in-progress ladders. Popped slots are
// cleared so that the ladders they held become unreachable immediately.
type frontier struct {
	items []*ladder.Ladder
	head  int
}

func (q *frontier) len() int {
	return len(q.items) - q.head
}

func (q *frontier) push(l *ladder.Ladder) {
	q.items = append(q.items, l)
}

// pop removes and returns the front ladder, or nil if the queue is empty.
func (q *frontier) pop() *ladder.Ladder {
	if q.len() == 0 {
		return nil
	}
	l := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 64 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}
	return l
}

// reset drops every queued ladder.
func (q *frontier) reset() {
	clear(q.items)
	q.items = nil
	q.head = 0
}

// visitedSet marks table indices claimed by some ladder in one search.
type visitedSet struct {
	used []bool
	n    int
}

func newVisitedSet(size int) *visitedSet {
	return &visitedSet{used: make([]bool, size)}
}

func (v *visitedSet) claimed(i int) bool {
	return v.used[i]
}

// claim marks i and reports whether it was previously unclaimed. Check and
// mark are one step.
func (v *visitedSet) claim(i int) bool {
	if v.used[i] {
		return false
	}
	v.used[i] = true
	v.n++
	return true
}

func (v *visitedSet) count() int {
	return v.n
}

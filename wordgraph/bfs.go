package wordgraph

import (
	"context"
	"fmt"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from vertex start, applying
// any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 0 || start >= g.Order() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks v reached at depth d and records its parent.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[head]
		d := w.res.Depth[v]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, d); err != nil {
			return fmt.Errorf("wordgraph: OnVisit error at %q: %w", w.graph.Word(v), err)
		}

		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		for _, u := range w.graph.adj[v] {
			if w.res.Depth[u] < 0 {
				w.enqueue(u, d+1, v)
			}
		}
	}
	return nil
}

// Distance returns the number of substitutions between words a and b, or
// false if either word is absent or b is unreachable from a.
func Distance(g *Graph, a, b string) (int, bool) {
	if g == nil {
		return 0, false
	}
	va, ok := g.Vertex(a)
	if !ok {
		return 0, false
	}
	vb, ok := g.Vertex(b)
	if !ok {
		return 0, false
	}
	res, err := BFS(g, va)
	if err != nil || !res.Reached(vb) {
		return 0, false
	}
	return res.Depth[vb], true
}

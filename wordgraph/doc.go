// Package wordgraph materialises the implicit substitution graph of a
// dictionary.Table as adjacency lists, and runs whole-graph breadth-first
// search and connectivity analysis on it.
//
// Where package wordladder answers one start/goal query with a frontier of
// ladders, wordgraph computes distances, parents and components for every
// vertex reachable from a start. It is the independent reference for ladder
// lengths and the engine behind connectivity reports.
//
// What
//
//   - Build: adjacency lists from a wildcard BucketIndex, ascending order.
//   - BFS:   visit Order, Depth and Parent per vertex; OnVisit hook,
//     MaxDepth limit and context cancellation.
//   - Labels / Components / Connected: connected components.
//   - Distance: substitution distance between two words.
//
// Determinism
//
//	Adjacency lists are sorted by vertex id and BFS enqueues neighbors in that
//	order, so visit order and parents are reproducible.
//
// Complexity (V = words, E = substitution pairs, k = word length)
//
//   - Build: O(V·k + E)
//   - BFS, Labels: O(V + E)
//
// Usage
//
//	g, err := wordgraph.Build(table)
//	res, err := wordgraph.BFS(g, start, wordgraph.WithMaxDepth(5))
//	path, err := res.PathTo(goal)
//	comps := wordgraph.Components(g)
package wordgraph

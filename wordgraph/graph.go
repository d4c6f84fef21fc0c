package wordgraph

import (
	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/wordladder"
)

// Graph is the explicit substitution graph of a word table: vertex i is
// table word i, and an undirected edge joins words one substitution apart.
// It is immutable once built.
type Graph struct {
	table *dictionary.Table
	adj   [][]int
	edges int
}

// Build materialises the adjacency lists of t using a wildcard BucketIndex.
// Each list is in ascending vertex order.
//
// Time: O(n·k + E). Memory: O(n + E).
func Build(t *dictionary.Table) (*Graph, error) {
	if t == nil {
		return nil, ErrTableNil
	}
	ix := wordladder.NewBucketIndex(t)
	g := &Graph{table: t, adj: make([][]int, t.Len())}
	for v := 0; v < t.Len(); v++ {
		for u := range ix.Neighbors(t.Word(v)) {
			g.adj[v] = append(g.adj[v], u)
		}
		g.edges += len(g.adj[v])
	}
	g.edges /= 2
	return g, nil
}

// Table returns the underlying word table.
func (g *Graph) Table() *dictionary.Table { return g.table }

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.edges }

// Vertex resolves a word to its vertex id.
func (g *Graph) Vertex(word string) (int, bool) { return g.table.Find(word) }

// Word returns the word of vertex v.
func (g *Graph) Word(v int) string { return g.table.Word(v) }

// Neighbors returns a copy of v's adjacency list.
func (g *Graph) Neighbors(v int) []int {
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out
}

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return len(g.adj[v]) }

// Words maps vertex ids to their words.
func (g *Graph) Words(vs []int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = g.table.Word(v)
	}
	return out
}

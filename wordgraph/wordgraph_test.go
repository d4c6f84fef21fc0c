package wordgraph_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/wordgraph"
	"github.com/katalvlaran/wordladder/wordladder"
)

// WordGraphSuite exercises graph construction, BFS and connectivity.
type WordGraphSuite struct {
	suite.Suite
	table *dictionary.Table
	graph *wordgraph.Graph
}

// SetupTest builds the cat/dog reference graph plus an isolated component.
func (s *WordGraphSuite) SetupTest() {
	tbl, err := dictionary.FromWords(
		[]string{"bat", "cat", "cog", "cot", "dog", "dot", "emu", "emo"}, 3,
		dictionary.WithSort(),
	)
	require.NoError(s.T(), err)
	g, err := wordgraph.Build(tbl)
	require.NoError(s.T(), err)
	s.table, s.graph = tbl, g
}

// TestBuild checks vertex and edge counts and sorted adjacency.
func (s *WordGraphSuite) TestBuild() {
	g := s.graph
	require.Equal(s.T(), 8, g.Order())
	// bat-cat, cat-cot, cot-cog, cot-dot, cog-dog, dot-dog, emo-emu
	require.Equal(s.T(), 7, g.Size())

	cot, ok := g.Vertex("cot")
	require.True(s.T(), ok)
	require.Equal(s.T(), []string{"cat", "cog", "dot"}, g.Words(g.Neighbors(cot)))
	require.Equal(s.T(), 3, g.Degree(cot))
	require.Same(s.T(), s.table, g.Table())

	_, err := wordgraph.Build(nil)
	require.ErrorIs(s.T(), err, wordgraph.ErrTableNil)
}

// TestBFS checks depths, parents and path reconstruction.
func (s *WordGraphSuite) TestBFS() {
	cat, _ := s.graph.Vertex("cat")
	dog, _ := s.graph.Vertex("dog")
	emu, _ := s.graph.Vertex("emu")

	res, err := wordgraph.BFS(s.graph, cat)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Depth[dog])
	require.False(s.T(), res.Reached(emu))
	require.Equal(s.T(), -1, res.Parent[cat])

	path, err := res.PathTo(dog)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"cat", "cot", "cog", "dog"}, s.graph.Words(path))

	_, err = res.PathTo(emu)
	require.Error(s.T(), err)

	self, err := res.PathTo(cat)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{cat}, self)
}

// TestBFS_Errors covers invalid graphs, vertices and options.
func (s *WordGraphSuite) TestBFS_Errors() {
	_, err := wordgraph.BFS(nil, 0)
	require.ErrorIs(s.T(), err, wordgraph.ErrGraphNil)

	_, err = wordgraph.BFS(s.graph, 99)
	require.ErrorIs(s.T(), err, wordgraph.ErrStartVertexNotFound)

	_, err = wordgraph.BFS(s.graph, 0, wordgraph.WithMaxDepth(-2))
	require.ErrorIs(s.T(), err, wordgraph.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = wordgraph.BFS(s.graph, 0, wordgraph.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)

	boom := errors.New("boom")
	_, err = wordgraph.BFS(s.graph, 0, wordgraph.WithOnVisit(func(v, d int) error {
		if d == 1 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(s.T(), err, boom)
}

// TestBFS_MaxDepth limits exploration.
func (s *WordGraphSuite) TestBFS_MaxDepth() {
	cat, _ := s.graph.Vertex("cat")
	res, err := wordgraph.BFS(s.graph, cat, wordgraph.WithMaxDepth(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"cat", "bat", "cot"}, s.graph.Words(res.Order))
}

// TestComponents groups the dictionary into its two islands.
func (s *WordGraphSuite) TestComponents() {
	comps := wordgraph.Components(s.graph)
	require.Len(s.T(), comps, 2)
	require.Equal(s.T(), []string{"bat", "cat", "cog", "cot", "dog", "dot"}, s.graph.Words(comps[0]))
	require.Equal(s.T(), []string{"emo", "emu"}, s.graph.Words(comps[1]))

	require.True(s.T(), wordgraph.Connected(s.graph, "bat", "dog"))
	require.False(s.T(), wordgraph.Connected(s.graph, "cat", "emu"))
	require.False(s.T(), wordgraph.Connected(s.graph, "cat", "zzz"))

	d, ok := wordgraph.Distance(s.graph, "bat", "dog")
	require.True(s.T(), ok)
	require.Equal(s.T(), 4, d)

	labels, n := wordgraph.Labels(nil)
	require.Nil(s.T(), labels)
	require.Zero(s.T(), n)
}

func TestWordGraphSuite(t *testing.T) {
	suite.Run(t, new(WordGraphSuite))
}

// TestLadderLengthMatchesGraphDistance cross-checks the frontier search
// against whole-graph BFS on random four-letter dictionaries.
func TestLadderLengthMatchesGraphDistance(t *testing.T) {
	r := rand.New(rand.NewPCG(2024, 4))
	for round := 0; round < 3; round++ {
		var words []string
		for i := 0; i < 400; i++ {
			b := make([]byte, 4)
			for k := range b {
				b[k] = byte('a' + r.IntN(5))
			}
			words = append(words, string(b))
		}
		tbl, err := dictionary.FromWords(words, 4, dictionary.WithSort())
		require.NoError(t, err)
		g, err := wordgraph.Build(tbl)
		require.NoError(t, err)

		for q := 0; q < 50; q++ {
			start, goal := tbl.Random(r), tbl.Random(r)
			if start == goal {
				continue
			}
			res, err := wordladder.Search(tbl, start, goal)
			require.NoError(t, err)
			d, ok := wordgraph.Distance(g, start, goal)
			require.Equal(t, ok, res.Found, "%s→%s", start, goal)
			if ok {
				require.Equal(t, d+1, res.Length(), "%s→%s", start, goal)
				require.NoError(t, res.Ladder.Validate())
			}
		}
	}
}

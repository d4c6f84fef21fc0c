package solver

import "github.com/katalvlaran/wordladder/wordgraph"

// Component summarises one connected component of the word graph.
type Component struct {
	Size   int
	Sample []string // up to sampleSize smallest words
}

// Summary describes how the table splits into ladder-connected groups.
type Summary struct {
	Words      int
	Edges      int
	Count      int         // components in the whole graph
	Components []Component // largest first, possibly truncated
	Isolated   int         // words with no neighbor at all
}

const sampleSize = 5

// Components builds the word graph on first use and summarises its
// connected components. limit caps the number of components listed
// (0 lists all); Isolated always counts every singleton.
func (s *Solver) Components(limit int) (Summary, error) {
	g, err := s.Graph()
	if err != nil {
		return Summary{}, err
	}
	comps := wordgraph.Components(g)
	sum := Summary{Words: g.Order(), Edges: g.Size(), Count: len(comps)}
	for _, c := range comps {
		if len(c) == 1 {
			sum.Isolated++
		}
	}
	if limit > 0 && len(comps) > limit {
		comps = comps[:limit]
	}
	for _, c := range comps {
		n := min(len(c), sampleSize)
		sum.Components = append(sum.Components, Component{
			Size:   len(c),
			Sample: g.Words(c[:n]),
		})
	}
	s.logger.Debug("components summarised", "words", sum.Words, "edges", sum.Edges, "isolated", sum.Isolated)
	return sum, nil
}

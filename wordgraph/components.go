package wordgraph

import "sort"

// Labels assigns every vertex the id of its connected component. Ids are
// dense, starting at 0, in order of each component's smallest vertex.
//
// Time:   O(V + E).
// Memory: O(V).
func Labels(g *Graph) ([]int, int) {
	if g == nil {
		return nil, 0
	}
	n := g.Order()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	count := 0
	queue := make([]int, 0, n)
	for v0 := 0; v0 < n; v0++ {
		if label[v0] >= 0 {
			continue
		}
		// BFS to label the component
		queue = append(queue[:0], v0)
		label[v0] = count
		for qi := 0; qi < len(queue); qi++ {
			for _, u := range g.adj[queue[qi]] {
				if label[u] < 0 {
					label[u] = count
					queue = append(queue, u)
				}
			}
		}
		count++
	}
	return label, count
}

// Components returns the connected components of g, each sorted ascending,
// largest first (ties broken by smallest vertex).
func Components(g *Graph) [][]int {
	label, count := Labels(g)
	comps := make([][]int, count)
	for v, c := range label {
		comps[c] = append(comps[c], v)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		return len(comps[i]) > len(comps[j])
	})
	return comps
}

// Connected reports whether words a and b lie in the same component.
// Absent words are never connected.
func Connected(g *Graph, a, b string) bool {
	_, ok := Distance(g, a, b)
	return ok
}

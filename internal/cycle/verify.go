package cycle

import (
	mapset "github.com/deckarep/golang-set/v2"

	"longcycle/internal/graph"
)

// VerifyCycle checks a decoded path against the graph: at least 3 distinct
// in-range vertices with an edge between every consecutive pair, wrapping
// around. The solver's model is otherwise trusted, so this is the one place a
// solver bug would surface.
func VerifyCycle(g graph.Graph, path []int64) bool {
	if len(path) < 3 {
		return false
	}

	visited := mapset.NewSet[int64]()
	for _, vertex := range path {
		if vertex < 1 || vertex > g.Nodes {
			return false
		}
		if !visited.Add(vertex) {
			return false
		}
	}

	for i, vertex := range path {
		next := path[(i+1)%len(path)]
		if !g.Adjacent(vertex, next) {
			return false
		}
	}

	return true
}

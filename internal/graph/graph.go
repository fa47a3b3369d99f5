package graph

// Edge is an undirected endpoint pair taken from an instance file.
type Edge struct {
	U, V int64
}

// Graph is an immutable symmetric adjacency relation over vertices 1..Nodes.
type Graph struct {
	Nodes     int64
	adjacency [][]bool
}

// Build constructs the adjacency matrix from an edge list. Endpoints outside
// [1, nodes] are ignored, self-loops are stored but never consulted and duplicate
// edges are no-ops on the relation.
func Build(nodes int64, edges []Edge) Graph {
	adjacency := make([][]bool, nodes+1)
	for i := range adjacency {
		adjacency[i] = make([]bool, nodes+1)
	}

	for _, edge := range edges {
		if edge.U < 1 || edge.U > nodes || edge.V < 1 || edge.V > nodes {
			continue
		}
		adjacency[edge.U][edge.V] = true
		adjacency[edge.V][edge.U] = true
	}

	return Graph{Nodes: nodes, adjacency: adjacency}
}

// Adjacent reports whether u and v share an edge. Symmetric by construction.
func (g Graph) Adjacent(u, v int64) bool {
	return g.adjacency[u][v]
}

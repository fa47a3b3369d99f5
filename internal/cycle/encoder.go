package cycle

import (
	"longcycle/internal/graph"
	"longcycle/internal/sat"
)

type encoder struct {
	graph   graph.Graph
	length  int64
	indexer Indexer
}

// Encode builds the CNF instance that is satisfiable exactly when the graph
// contains a simple cycle visiting length distinct vertices: positions 1..length
// each hold exactly one vertex, no vertex repeats, and consecutive positions
// (wrapping from the last back to the first) are joined by a real edge.
func Encode(g graph.Graph, length int64) sat.SAT {
	enc := encoder{graph: g, length: length, indexer: NewIndexer(length)}

	instance := sat.SAT{
		Variables: uint64(g.Nodes * length),
		Clauses:   [][]int64{},
	}
	instance.Clauses = append(instance.Clauses, enc.coverageClauses()...)
	instance.Clauses = append(instance.Clauses, enc.positionExclusivityClauses()...)
	instance.Clauses = append(instance.Clauses, enc.vertexExclusivityClauses()...)
	instance.Clauses = append(instance.Clauses, enc.adjacencyClauses()...)

	return instance
}

// Every position is occupied by at least one vertex.
func (enc encoder) coverageClauses() [][]int64 {
	clauses := make([][]int64, 0, enc.length)
	for position := int64(1); position <= enc.length; position++ {
		clause := make([]int64, 0, enc.graph.Nodes)
		for vertex := int64(1); vertex <= enc.graph.Nodes; vertex++ {
			clause = append(clause, enc.indexer.Index(vertex, position))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// No two vertices share a position.
func (enc encoder) positionExclusivityClauses() [][]int64 {
	clauses := [][]int64{}
	for position := int64(1); position <= enc.length; position++ {
		for first := int64(1); first <= enc.graph.Nodes; first++ {
			for second := first + 1; second <= enc.graph.Nodes; second++ {
				clauses = append(clauses, []int64{
					-enc.indexer.Index(first, position),
					-enc.indexer.Index(second, position),
				})
			}
		}
	}
	return clauses
}

// No vertex occupies two positions. Together with coverage and position
// exclusivity this forces a bijection between positions and a length-sized
// subset of vertices.
func (enc encoder) vertexExclusivityClauses() [][]int64 {
	clauses := [][]int64{}
	for vertex := int64(1); vertex <= enc.graph.Nodes; vertex++ {
		for first := int64(1); first <= enc.length; first++ {
			for second := first + 1; second <= enc.length; second++ {
				clauses = append(clauses, []int64{
					-enc.indexer.Index(vertex, first),
					-enc.indexer.Index(vertex, second),
				})
			}
		}
	}
	return clauses
}

// Consecutive positions hold adjacent vertices: every ordered non-edge pair is
// forbidden, with the last position wrapping back to the first to close the walk.
func (enc encoder) adjacencyClauses() [][]int64 {
	clauses := [][]int64{}
	for position := int64(1); position <= enc.length; position++ {
		next := position + 1
		if position == enc.length {
			next = 1
		}

		for from := int64(1); from <= enc.graph.Nodes; from++ {
			for to := int64(1); to <= enc.graph.Nodes; to++ {
				if from == to || enc.graph.Adjacent(from, to) {
					continue
				}
				clauses = append(clauses, []int64{
					-enc.indexer.Index(from, position),
					-enc.indexer.Index(to, next),
				})
			}
		}
	}
	return clauses
}

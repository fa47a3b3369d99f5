package cycle

import "longcycle/internal/sat"

// Decode maps a satisfying model back onto the position sequence: every positive
// literal places its vertex, negative literals only assert absence and are
// ignored. The model is taken on trust; adjacency is not re-checked here (see
// VerifyCycle for that).
func Decode(model sat.Solution, length int64) []int64 {
	indexer := NewIndexer(length)
	path := make([]int64, length+1) // 1-based positions, slot 0 unused

	for _, literal := range model {
		if literal <= 0 {
			continue
		}
		vertex, position := indexer.Attributes(literal)
		if position >= 1 && position <= length {
			path[position] = vertex
		}
	}

	return path[1:]
}

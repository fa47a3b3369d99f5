package cycle

// Indexer bijects a (vertex, position) pair onto the dense 1-based variable range
// of a trial with a fixed cycle length. The encoder and the decoder must share
// the same mapping or decoding silently corrupts.
type Indexer interface {
	// Index returns the propositional variable standing for "vertex occupies position".
	Index(vertex, position int64) int64
	// Attributes recovers the (vertex, position) pair of a variable.
	Attributes(index int64) (vertex int64, position int64)
}

func NewIndexer(length int64) Indexer {
	return &positionalIndexer{length: length}
}

type positionalIndexer struct {
	length int64
}

func (indexer *positionalIndexer) Index(vertex, position int64) int64 {
	return (vertex-1)*indexer.length + position
}

func (indexer *positionalIndexer) Attributes(index int64) (vertex int64, position int64) {
	index--
	vertex = index/indexer.length + 1
	position = index%indexer.length + 1
	return vertex, position
}

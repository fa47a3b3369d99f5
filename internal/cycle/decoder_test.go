package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"longcycle/internal/sat"
)

func TestDecodePlacesPositiveLiterals(t *testing.T) {
	// Arrange: vertex 2 at position 1, vertex 3 at position 2, vertex 1 at position 3
	indexer := NewIndexer(3)
	model := sat.Solution{
		indexer.Index(2, 1),
		indexer.Index(3, 2),
		indexer.Index(1, 3),
		-indexer.Index(1, 1),
		-indexer.Index(3, 3),
	}

	// Act
	path := Decode(model, 3)

	// Assert: negative literals leave no trace
	assert.Equal(t, []int64{2, 3, 1}, path)
}

func TestDecodeIgnoresNegativeOnlyModel(t *testing.T) {
	indexer := NewIndexer(4)
	model := sat.Solution{-indexer.Index(1, 1), -indexer.Index(2, 3)}

	path := Decode(model, 4)

	assert.Equal(t, []int64{0, 0, 0, 0}, path)
}

func TestVerifyCycleRejectsCorruptPaths(t *testing.T) {
	g := triangleGraph()

	assert.True(t, VerifyCycle(g, []int64{1, 2, 3}))
	assert.True(t, VerifyCycle(g, []int64{3, 2, 1}))

	assert.False(t, VerifyCycle(g, []int64{1, 2}))          // too short
	assert.False(t, VerifyCycle(g, []int64{1, 2, 2}))       // repeated vertex
	assert.False(t, VerifyCycle(g, []int64{1, 2, 4}))       // out of range
	assert.False(t, VerifyCycle(g, []int64{1, 2, 0}))       // unplaced position
	assert.False(t, VerifyCycle(pathGraph(), []int64{1, 2, 3})) // missing wraparound edge
}

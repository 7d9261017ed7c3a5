package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilaritySelfMatch(t *testing.T) {
	v := []float64{0.2, -0.5, 0.8, 0.1}

	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestCosineSimilarityOrthogonal(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{0, 1, 0}

	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
}

func TestCosineSimilarityNearMatch(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{0.99, 0.1, 0}

	sim := CosineSimilarity(a, b)
	assert.Greater(t, sim, 0.95)
	assert.Less(t, sim, 1.0)
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float64{1, 0}, []float64{1, 0, 0}))
}

func TestValidEmbedding(t *testing.T) {
	assert.True(t, ValidEmbedding([]float64{0.1, 0.2}))
	assert.False(t, ValidEmbedding(nil))
	assert.False(t, ValidEmbedding([]float64{0, 0, 0}))
}

package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b Embedding
		mode SimilarityMode
		want float64
	}{
		{"cosine identical", Embedding{1, 0}, Embedding{1, 0}, SimilarityCosine, 1},
		{"cosine orthogonal", Embedding{1, 0}, Embedding{0, 1}, SimilarityCosine, 0},
		{"cosine default mode", Embedding{1, 1}, Embedding{2, 2}, "", 1},
		{"cosine zero vector", Embedding{0, 0}, Embedding{1, 0}, SimilarityCosine, 0},
		{"dot product unnormalized", Embedding{1, 2}, Embedding{3, 4}, SimilarityDotProduct, 11},
		{"euclidean identical", Embedding{1, 2}, Embedding{1, 2}, SimilarityEuclidean, 0},
		{"euclidean distinct", Embedding{0, 0}, Embedding{3, 4}, SimilarityEuclidean, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Similarity(tt.a, tt.b, tt.mode)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSimilarityEuclideanOrdering(t *testing.T) {
	near, err := Similarity(Embedding{0, 0}, Embedding{1, 0}, SimilarityEuclidean)
	require.NoError(t, err)
	far, err := Similarity(Embedding{0, 0}, Embedding{5, 0}, SimilarityEuclidean)
	require.NoError(t, err)

	assert.Negative(t, near)
	assert.Greater(t, near, far)
}

func TestSimilarityErrors(t *testing.T) {
	_, err := Similarity(Embedding{1}, Embedding{1, 2}, SimilarityCosine)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Similarity(Embedding{1}, Embedding{1}, "manhattan")
	assert.ErrorIs(t, err, ErrUnknownSimilarityMode)
}

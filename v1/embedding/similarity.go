package embedding

import (
	"errors"
	"fmt"
	"math"
)

// SimilarityMode selects how Similarity compares embeddings.
type SimilarityMode string

const (
	SimilarityCosine     SimilarityMode = "cosine"
	SimilarityDotProduct SimilarityMode = "dot_product"
	SimilarityEuclidean  SimilarityMode = "euclidean"
)

var (
	// ErrDimensionMismatch is returned for embeddings of different lengths.
	ErrDimensionMismatch = errors.New("embedding: dimension mismatch")

	// ErrUnknownSimilarityMode is returned for an unsupported mode.
	ErrUnknownSimilarityMode = errors.New("embedding: unknown similarity mode")
)

// Similarity compares a and b. An empty mode means SimilarityCosine.
// The cosine similarity of a zero vector is 0.
func Similarity(a, b Embedding, mode SimilarityMode) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	switch mode {
	case SimilarityEuclidean:
		var sum float64
		for i := range a {
			d := a[i] - b[i]
			sum += d * d
		}
		return -math.Sqrt(sum), nil
	case SimilarityDotProduct:
		return dot(a, b), nil
	case SimilarityCosine, "":
		norm := math.Sqrt(dot(a, a)) * math.Sqrt(dot(b, b))
		if norm == 0 {
			return 0, nil
		}
		return dot(a, b) / norm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSimilarityMode, mode)
	}
}

func dot(a, b Embedding) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Package embedding holds the face-embedding vector type and the distance
// metric shared by the verification and proctoring engines.
package embedding

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch reports an attempt to compare embeddings of unequal
// length. Two embeddings from the same model always have the same
// dimensionality, so this is a programming or data-corruption error, never a
// classification outcome.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Vector is a fixed-length face embedding produced by the extractor model.
type Vector []float64

// Distance returns the Euclidean distance between two embeddings. Lower means
// more likely the same person.
func Distance(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}
	return floats.Distance(a, b, 2), nil
}

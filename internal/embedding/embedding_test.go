package embedding

import (
	"errors"
	"math"
	"testing"
)

func TestDistanceIsSymmetric(t *testing.T) {
	a := Vector{0.1, 0.2, 0.3, 0.4}
	b := Vector{0.5, -0.1, 0.0, 0.2}

	ab, err := Distance(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := Distance(b, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ab != ba {
		t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceToSelfIsZero(t *testing.T) {
	a := make(Vector, 128)
	for i := range a {
		a[i] = 0.1 * float64(i%10)
	}

	d, err := Distance(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("expected zero distance, got %f", d)
	}
}

func TestDistanceKnownValue(t *testing.T) {
	a := Vector{0, 0, 0}
	b := Vector{1, 2, 2}

	d, err := Distance(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-3) > 1e-12 {
		t.Fatalf("expected distance 3, got %f", d)
	}
}

func TestDistanceRejectsUnequalLengths(t *testing.T) {
	cases := []struct {
		name string
		a, b Vector
	}{
		{"short vs long", Vector{1, 2}, Vector{1, 2, 3}},
		{"empty vs nonempty", Vector{}, Vector{1}},
		{"long vs short", Vector{1, 2, 3, 4}, Vector{1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Distance(tc.a, tc.b); !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("expected ErrDimensionMismatch, got %v", err)
			}
		})
	}
}

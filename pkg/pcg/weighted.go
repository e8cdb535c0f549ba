package pcg

import (
	"math"

	"github.com/pkg/errors"
)

// WeightedIndex returns an index into weights, drawn with probability
// proportional to its weight. It consumes exactly one output.
//
// Weights must be finite and non-negative with a positive sum.
func (g *Generator) WeightedIndex(weights []float64) (int, error) {
	total, err := sumWeights(weights)
	if err != nil {
		return 0, err
	}

	r := g.Float64() * total

	var cumulative float64
	last := 0
	for i, w := range weights {
		cumulative += w
		if cumulative > r {
			return i, nil
		}
		if w > 0 {
			last = i
		}
	}

	// Rounding left every partial sum at or below r.
	return last, nil
}

// WeightedChoice returns the element of items at the index WeightedIndex
// draws for weights. items and weights must have the same length.
func WeightedChoice[T any](g *Generator, weights []float64, items []T) (T, error) {
	var zero T
	if len(items) != len(weights) {
		return zero, errors.Wrapf(ErrLengthMismatch, "%d items, %d weights", len(items), len(weights))
	}

	i, err := g.WeightedIndex(weights)
	if err != nil {
		return zero, err
	}
	return items[i], nil
}

func sumWeights(weights []float64) (float64, error) {
	if len(weights) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "no weights")
	}

	var total float64
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, errors.Wrapf(ErrInvalidWeight, "weight %d is %v", i, w)
		}
		total += w
	}

	if total <= 0 || math.IsInf(total, 0) {
		return 0, errors.Wrapf(ErrInvalidWeight, "weights sum to %v", total)
	}
	return total, nil
}

package pcg

import "errors"

// ErrInvalidRange is returned when a bound is zero, the maximum is not
// greater than the minimum, or a float bound is not finite.
var ErrInvalidRange = errors.New("pcg: invalid range")

// ErrLengthMismatch is returned when the items passed to WeightedChoice do not
// line up with the weights.
var ErrLengthMismatch = errors.New("pcg: items and weights differ in length")

// ErrEmptyInput is returned for a weighted choice over no weights.
var ErrEmptyInput = errors.New("pcg: empty input")

// ErrInvalidWeight is returned when a weight is negative or not finite, or
// when all weights are zero.
var ErrInvalidWeight = errors.New("pcg: invalid weight")

package pcg

import (
	"math"

	"github.com/pkg/errors"
)

// Int returns the next raw output widened to an int64 in [0, 2^32).
func (g *Generator) Int() int64 {
	return int64(g.Uint32())
}

// Intn returns an int64 in [0, bound) for a positive bound and in [bound, 0)
// for a negative one.
//
// The value is the raw output reduced modulo |bound|, which carries a small
// bias when |bound| does not divide 2^32. Use Uint32n for an unbiased value.
// No output is consumed when an error is returned.
func (g *Generator) Intn(bound int64) (int64, error) {
	switch {
	case bound > 0:
		return int64(uint64(g.Uint32()) % uint64(bound)), nil
	case bound < 0:
		span := -uint64(bound)
		return int64(uint64(g.Uint32())%span + uint64(bound)), nil
	default:
		return 0, errors.Wrap(ErrInvalidRange, "bound must not be zero")
	}
}

// IntRange returns an int64 in [min, max). It has the same modulo bias as
// Intn.
func (g *Generator) IntRange(min, max int64) (int64, error) {
	if max <= min {
		return 0, errors.Wrapf(ErrInvalidRange, "max %d <= min %d", max, min)
	}

	// The difference of two int64 always fits in a uint64.
	span := uint64(max) - uint64(min)
	return int64(uint64(min) + uint64(g.Uint32())%span), nil
}

// Uint32n returns a uint32 in [0, bound) without modulo bias, using Lemire's
// multiply-and-reject method. It may consume more than one output and its
// sequence differs from Intn for the same state.
//
// Uint32n panics if bound is zero.
func (g *Generator) Uint32n(bound uint32) uint32 {
	if bound == 0 {
		panic("pcg: invalid bound == 0")
	}

	prod := uint64(g.Uint32()) * uint64(bound)
	if low := uint32(prod); low < bound {
		threshold := -bound % bound
		for low < threshold {
			prod = uint64(g.Uint32()) * uint64(bound)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Float64 returns a float64 in [0, 1) carrying 32 bits of entropy.
func (g *Generator) Float64() float64 {
	return float64(g.Uint32()) * (1.0 / (1 << 32))
}

// Float64n returns base*bound where base is drawn by Float64. The result lies
// in [0, bound) for a positive bound and in (bound, 0] for a negative one.
func (g *Generator) Float64n(bound float64) (float64, error) {
	if bound == 0 || !finite(bound) {
		return 0, errors.Wrapf(ErrInvalidRange, "bound %v", bound)
	}
	return g.Float64() * bound, nil
}

// Float64Range returns a float64 in [min, max).
func (g *Generator) Float64Range(min, max float64) (float64, error) {
	if !finite(min) || !finite(max) || max <= min {
		return 0, errors.Wrapf(ErrInvalidRange, "[%v, %v)", min, max)
	}

	base := g.Float64()
	span := max - min
	if math.IsInf(span, 0) {
		// Only reachable for bounds near ±MaxFloat64.
		return min*(1-base) + max*base, nil
	}

	v := base*span + min
	if v >= max {
		// Adding min can round up to max.
		v = math.Nextafter(max, min)
	}
	return v, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

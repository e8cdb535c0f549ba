package pcg

import "github.com/pkg/errors"

// index returns the next output reduced modulo n. It is Intn for n > 0.
func (g *Generator) index(n int) int {
	return int(uint64(g.Uint32()) % uint64(n))
}

// SamplePermutation returns a random permutation of in. in is not modified.
//
// An element is drawn from the remaining ones and removed, keeping the order
// of the rest, and the output is filled from the back. A slice of length n
// consumes n-1 outputs; an empty slice yields an empty result.
func SamplePermutation[T any](g *Generator, in []T) []T {
	n := len(in)
	out := make([]T, n)
	if n == 0 {
		return out
	}

	remaining := append(make([]T, 0, n), in...)
	for k := n; k > 1; k-- {
		i := g.index(k)
		out[k-1] = remaining[i]
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	out[0] = remaining[0]

	return out
}

// Shuffle permutes s in place. For the same generator state it leaves s in
// the order SamplePermutation would have returned.
func Shuffle[T any](g *Generator, s []T) {
	for k := len(s); k > 1; k-- {
		i := g.index(k)
		v := s[i]
		copy(s[i:k-1], s[i+1:k])
		s[k-1] = v
	}
}

// Perm returns a random permutation of [0, n).
func (g *Generator) Perm(n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidRange, "permutation size %d", n)
	}

	seq := make([]int, n)
	for i := range seq {
		seq[i] = i
	}
	Shuffle(g, seq)

	return seq, nil
}

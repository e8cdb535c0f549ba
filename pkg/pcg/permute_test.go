package pcg

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePermutationGolden(t *testing.T) {
	g := NewSeeded(42)
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	out := SamplePermutation(g, in)
	require.Equal(t, []int{8, 5, 9, 0, 1, 7, 3, 4, 2, 6}, out)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, in, "input must not be modified")

	// n-1 draws were consumed.
	require.Equal(t, uint32(0xff133ab5), g.Uint32())

	out2 := SamplePermutation(NewSeeded(5), []string{"a", "b", "c", "d", "e"})
	require.Equal(t, []string{"e", "c", "d", "b", "a"}, out2)
}

func TestShuffleMatchesSamplePermutation(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		in := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		want := SamplePermutation(NewSeeded(seed), in)

		got := append([]string(nil), in...)
		Shuffle(NewSeeded(seed), got)
		require.Equal(t, want, got, "seed %d", seed)
	}
}

func TestPermutationIsBijection(t *testing.T) {
	g := NewSeeded(11)
	in := []int{1, 1, 2, 3, 3, 3, 7, 9, 9, 0}

	for i := 0; i < 100; i++ {
		out := SamplePermutation(g, in)
		assert.Equal(t, sorted(in), sorted(out))

		s := append([]int(nil), in...)
		Shuffle(g, s)
		assert.Equal(t, sorted(in), sorted(s))
	}
}

func TestPermutationDegenerate(t *testing.T) {
	g := NewSeeded(1)
	want := draw(NewSeeded(1), 1)[0]

	out := SamplePermutation(g, []int{})
	require.NotNil(t, out)
	require.Len(t, out, 0)

	out = SamplePermutation(g, []int(nil))
	require.Len(t, out, 0)

	require.Equal(t, []string{"x"}, SamplePermutation(g, []string{"x"}))

	s := []string{"x"}
	Shuffle(g, s)
	require.Equal(t, []string{"x"}, s)
	Shuffle(g, []string{})

	// None of the above draws.
	require.Equal(t, want, g.Uint32())
}

func TestPerm(t *testing.T) {
	p, err := NewSeeded(42).Perm(10)
	require.Nil(t, err)
	require.Equal(t, []int{8, 5, 9, 0, 1, 7, 3, 4, 2, 6}, p)

	p, err = NewSeeded(42).Perm(0)
	require.Nil(t, err)
	require.Len(t, p, 0)

	_, err = NewSeeded(42).Perm(-1)
	require.True(t, errors.Is(err, ErrInvalidRange))
}

func TestPermPositions(t *testing.T) {
	// Every element should land in every position about equally often.
	const (
		n      = 4
		trials = 24000
	)

	g := NewSeeded(2024)
	var counts [n][n]int
	for i := 0; i < trials; i++ {
		p, err := g.Perm(n)
		require.Nil(t, err)
		for pos, v := range p {
			counts[v][pos]++
		}
	}

	for v := range counts {
		for pos := range counts[v] {
			assert.InDelta(t, trials/n, counts[v][pos], trials/n/10, "element %d at %d", v, pos)
		}
	}
}

func sorted(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)
	return out
}

func BenchmarkSamplePermutation(b *testing.B) {
	g := NewSeeded(2345)
	in := make([]int, 64)
	for i := range in {
		in[i] = i
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = SamplePermutation(g, in)
	}
}

func BenchmarkShuffle(b *testing.B) {
	g := NewSeeded(2345)
	s := make([]int, 64)
	for i := range s {
		s[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Shuffle(g, s)
	}
}

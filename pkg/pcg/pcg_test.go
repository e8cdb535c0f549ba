package pcg

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var goldenTests = []struct {
	name     string
	gen      func() *Generator
	expected []uint32
}{
	{
		name: "default",
		gen:  New,
		expected: []uint32{
			0x152ca78d, 0x3eeae017, 0xc010fd86, 0xad5f8e80,
			0x68d47530, 0x9fe2bc34, 0x3a31038b, 0xea5c5da5,
		},
	}, {
		name: "seed 42",
		gen:  func() *Generator { return NewSeeded(42) },
		expected: []uint32{
			0xc2f57bd6, 0x6b07c4a9, 0x72b7b29b, 0x44215383,
			0xf5af5ead, 0x68beb632, 0xcbc7312c, 0xd5efc7d7,
		},
	}, {
		name: "seed 0",
		gen:  func() *Generator { return NewSeeded(0) },
		expected: []uint32{
			0xe823a24e, 0x7a7ecbd9, 0x89fd6c06, 0xae646aa8,
		},
	},
}

func TestGolden(t *testing.T) {
	for _, tt := range goldenTests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.gen()
			got := make([]uint32, len(tt.expected))
			for i := range got {
				got[i] = g.Uint32()
			}
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestDeterminism(t *testing.T) {
	a, b := NewSeeded(12345), NewSeeded(12345)
	for i := 0; i < 10000; i++ {
		require.Equal(t, a.Uint32(), b.Uint32(), "diverged at output %d", i)
	}
}

var outputTests = []struct {
	x        uint64
	count    uint32
	expected uint32
}{
	{0x0000000000000000, 0, 0x00000000},
	{0x853c49e6748fea9b, 16, 0x152ca78d},
	{0xffffffffffffffff, 31, 0xfff00001},
	{0x8000000123456789, 16, 0x00240004},
	{0x080deadbeef00000, 1, 0x00de8d89},
}

func TestOutput(t *testing.T) {
	for _, tt := range outputTests {
		t.Run(fmt.Sprintf("%#x", tt.x), func(t *testing.T) {
			require.Equal(t, tt.count, uint32(tt.x>>59))
			assert.Equal(t, tt.expected, output(tt.x))
		})
	}
}

func TestRotr32(t *testing.T) {
	var table = []struct {
		y, count, expected uint32
	}{
		{0x12345678, 0, 0x12345678},
		{0x80000001, 1, 0xc0000000},
		{0x12345678, 8, 0x78123456},
		{0x00000001, 31, 0x00000002},
		{0xa78d152c, 16, 0x152ca78d},
	}

	for _, tt := range table {
		assert.Equal(t, tt.expected, rotr32(tt.y, tt.count), "rotr32(%#x, %d)", tt.y, tt.count)
	}
}

func TestSeedIndependence(t *testing.T) {
	seeds := []uint64{0, 1, 2, 3, 42, 1 << 32, 0xdeadbeef, ^uint64(0)}
	const n = 1000

	seqs := make([][]uint32, 0, len(seeds)+1)
	for _, seed := range seeds {
		seqs = append(seqs, draw(NewSeeded(seed), n))
	}
	seqs = append(seqs, draw(New(), n))

	for i := range seqs {
		for j := i + 1; j < len(seqs); j++ {
			for k := 0; k < n; k++ {
				require.NotEqual(t, seqs[i][k], seqs[j][k], "streams %d and %d collide at output %d", i, j, k)
			}
		}
	}
}

func TestSeedDiscardsHistory(t *testing.T) {
	g := NewSeeded(7)
	for i := 0; i < 100; i++ {
		g.Uint32()
	}
	g.Seed(42)

	require.Equal(t, draw(NewSeeded(42), 16), draw(g, 16))
}

func TestNewWithConfig(t *testing.T) {
	g := NewWithConfig(Config{Multiplier: DefaultMultiplier, Increment: DefaultIncrement})
	require.Equal(t, draw(New(), 8), draw(g, 8))

	cfg := Config{}.Validate()
	require.Equal(t, DefaultMultiplier, cfg.Multiplier)
	require.Equal(t, DefaultIncrement, cfg.Increment)

	odd := Config{Multiplier: 3, Increment: 5}.Validate()
	require.Equal(t, Config{Multiplier: 3, Increment: 5}, odd)

	g = NewWithConfig(odd)
	require.Equal(t, uint64(3), g.Multiplier())
	require.Equal(t, uint64(5), g.Increment())
	require.NotEqual(t, draw(New(), 8), draw(g, 8))
}

func TestSource(t *testing.T) {
	s := NewSeeded(42).Source()
	require.Equal(t, uint64(0xc2f57bd66b07c4a9), s.Uint64())

	s.Seed(42)
	require.Equal(t, int64(0xc2f57bd66b07c4a9>>1), s.Int63())
}

func draw(g *Generator, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = g.Uint32()
	}
	return out
}

var blackholeUint32 uint32

func BenchmarkGenerator_Uint32(b *testing.B) {
	g := NewSeeded(2345)
	for i := 0; i < b.N; i++ {
		blackholeUint32 += g.Uint32()
	}
}

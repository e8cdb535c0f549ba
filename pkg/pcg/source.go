package pcg

import "math/rand"

type source struct {
	g *Generator
}

var _ rand.Source64 = source{}

// Source returns a math/rand source drawing from g. Outputs drawn through the
// source advance g.
func (g *Generator) Source() rand.Source64 {
	return source{g: g}
}

// Uint64 combines two outputs, the first one in the high half.
func (s source) Uint64() uint64 {
	hi := uint64(s.g.Uint32())
	return hi<<32 | uint64(s.g.Uint32())
}

func (s source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

func (s source) Seed(seed int64) {
	s.g.Seed(uint64(seed))
}

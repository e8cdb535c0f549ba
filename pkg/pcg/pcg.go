// Package pcg implements the PCG-XSH-RR 64/32 pseudo-random number generator
// and the sampling helpers built on top of its raw output.
//
// A Generator is not safe for concurrent use. Keep one Generator per
// independent stream of numbers.
package pcg

import (
	"math/bits"

	"github.com/chihaya/pcgrand/pkg/log"
)

// Default generator parameters.
const (
	DefaultMultiplier uint64 = 6364136223846793005
	DefaultIncrement  uint64 = 1442695040888963407
	DefaultState      uint64 = 0x853c49e6748fea9b
)

// Config holds the constants a Generator is built with.
//
// Increment must be odd for the generator to have its full period of 2^64.
// This is not enforced.
type Config struct {
	Multiplier uint64 `yaml:"multiplier"`
	Increment  uint64 `yaml:"increment"`
}

// LogFields renders the current config as a set of Logrus fields.
func (cfg Config) LogFields() log.Fields {
	return log.Fields{
		"multiplier": cfg.Multiplier,
		"increment":  cfg.Increment,
	}
}

// Validate sanitizes and validates the configuration.
//
// Zero values are replaced with the defaults. An even increment is kept but
// logged as a warning.
func (cfg Config) Validate() Config {
	validcfg := cfg

	if cfg.Multiplier == 0 {
		validcfg.Multiplier = DefaultMultiplier
		log.Debug("falling back to default configuration", log.Fields{
			"name":     "pcg.Multiplier",
			"provided": cfg.Multiplier,
			"default":  validcfg.Multiplier,
		})
	}

	if cfg.Increment == 0 {
		validcfg.Increment = DefaultIncrement
		log.Debug("falling back to default configuration", log.Fields{
			"name":     "pcg.Increment",
			"provided": cfg.Increment,
			"default":  validcfg.Increment,
		})
	} else if cfg.Increment&1 == 0 {
		log.Warn("even increment does not give the generator its full period", log.Fields{
			"name":     "pcg.Increment",
			"provided": cfg.Increment,
		})
	}

	return validcfg
}

// Generator holds the state of a PCG-XSH-RR generator.
type Generator struct {
	state      uint64
	multiplier uint64
	increment  uint64
}

// New creates a Generator with the default constants and the default state.
//
// The default state is used as is; it is not passed through Seed. New and
// NewSeeded therefore produce different sequences for every seed.
func New() *Generator {
	return &Generator{
		state:      DefaultState,
		multiplier: DefaultMultiplier,
		increment:  DefaultIncrement,
	}
}

// NewSeeded creates a Generator with the default constants and seeds it.
func NewSeeded(seed uint64) *Generator {
	g := New()
	g.Seed(seed)
	return g
}

// NewWithConfig creates a Generator from the given constants, starting at the
// default state. Zero constants are taken as-is; call cfg.Validate first to
// apply the defaults.
func NewWithConfig(cfg Config) *Generator {
	return &Generator{
		state:      DefaultState,
		multiplier: cfg.Multiplier,
		increment:  cfg.Increment,
	}
}

// Seed replaces the state of g with one derived from seed and discards one
// output to mix the seed in. Anything drawn before is unrelated to what is
// drawn after.
func (g *Generator) Seed(seed uint64) {
	g.state = seed + g.increment
	g.Uint32()
}

// Multiplier returns the LCG multiplier of g.
func (g *Generator) Multiplier() uint64 { return g.multiplier }

// Increment returns the LCG increment of g.
func (g *Generator) Increment() uint64 { return g.increment }

// Uint32 returns the next pseudo-random 32-bit value and advances the state.
func (g *Generator) Uint32() uint32 {
	x := g.state
	g.state = x*g.multiplier + g.increment
	return output(x)
}

// output applies the XSH-RR permutation to a state.
func output(x uint64) uint32 {
	count := uint32(x >> 59)
	// xor-shift on the full 64 bits, truncate only after the final shift.
	xorshifted := uint32((x ^ (x >> 18)) >> 27)
	return rotr32(xorshifted, count)
}

// rotr32 rotates y right by count bits within 32 bits.
func rotr32(y, count uint32) uint32 {
	return bits.RotateLeft32(y, -int(count&31))
}

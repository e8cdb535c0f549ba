// Package random builds deterministic strings on top of a pcg.Generator.
package random

import "github.com/chihaya/pcgrand/pkg/pcg"

// AlphaNumeric is an alphabet with all lower- and uppercase letters and
// numbers.
const AlphaNumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphaNumericString is a shorthand for String(g, l, AlphaNumeric).
func AlphaNumericString(g *pcg.Generator, l int) string {
	return String(g, l, AlphaNumeric)
}

// String generates a random string of length l, containing only bytes from
// the alphabet, using one output of g per byte.
//
// String panics if the alphabet is empty.
func String(g *pcg.Generator, l int, alphabet string) string {
	if len(alphabet) == 0 {
		panic("random: empty alphabet")
	}
	if l <= 0 {
		return ""
	}

	b := make([]byte, l)
	for i := range b {
		k, _ := g.Intn(int64(len(alphabet)))
		b[i] = alphabet[k]
	}
	return string(b)
}

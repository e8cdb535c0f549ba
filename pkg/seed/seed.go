// Package seed derives generator seeds from names and byte strings.
//
// Deriving a seed from the same input always yields the same value, so a
// stream can be addressed by a stable name instead of a number.
package seed

import (
	"encoding/binary"

	sha256 "github.com/minio/sha256-simd"
)

// FromBytes derives a seed from b: the first 8 bytes, big endian, of the
// SHA-256 digest of b.
func FromBytes(b []byte) uint64 {
	sum := sha256.Sum256(b)
	return binary.BigEndian.Uint64(sum[:8])
}

// FromString derives a seed from s. It equals FromBytes([]byte(s)).
func FromString(s string) uint64 {
	return FromBytes([]byte(s))
}

// FromParts derives a seed from an ordered list of parts. Every part is
// prefixed with its length, so ("ab", "c") and ("a", "bc") differ.
func FromParts(parts ...string) uint64 {
	h := sha256.New()
	var length [8]byte
	for _, p := range parts {
		binary.BigEndian.PutUint64(length[:], uint64(len(p)))
		h.Write(length[:])
		h.Write([]byte(p))
	}

	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

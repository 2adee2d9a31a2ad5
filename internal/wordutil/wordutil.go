// Package wordutil collects the byte/word conversions, rotations, and
// byte-run XOR helpers shared by the aes, sha3, and sha1x packages.
//
// These are pure functions with no error conditions.
package wordutil

import "encoding/binary"

// LoadBE32 reads a big-endian uint32 from the front of b.
func LoadBE32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// StoreBE32 writes v into the front of b as big-endian.
func StoreBE32(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// LoadBE64 reads a big-endian uint64 from the front of b.
func LoadBE64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// StoreBE64 writes v into the front of b as big-endian.
func StoreBE64(b []byte, v uint64) {
	binary.BigEndian.PutUint64(b, v)
}

// LoadLE32 reads a little-endian uint32 from the front of b.
func LoadLE32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// StoreLE32 writes v into the front of b as little-endian.
func StoreLE32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// LoadLE64 reads a little-endian uint64 from the front of b.
func LoadLE64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// StoreLE64 writes v into the front of b as little-endian.
func StoreLE64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// RotL32 rotates v left by n bits, 0 <= n < 32.
func RotL32(v uint32, n uint) uint32 {
	return (v << n) | (v >> (32 - n))
}

// RotL64 rotates v left by n bits, 0 <= n < 64. n == 0 is a no-op, which
// this formulation handles directly (v>>64 is undefined in Go for a
// constant shift but n is always a runtime value here, so the two shifts
// never both degenerate).
func RotL64(v uint64, n uint) uint64 {
	if n == 0 {
		return v
	}
	return (v << n) | (v >> (64 - n))
}

// XORBytes XORs the first min(len(a), len(b)) bytes of a and b into dst.
// dst may alias a or b.
func XORBytes(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

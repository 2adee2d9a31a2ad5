// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sha3

import "hash"

// The four standard SHA3 instances share capacity = 2*outputSize and
// domain-separation byte 0x06.

// New224 returns a new SHA3-224 hash.Hash.
func New224() hash.Hash { return newFixed(224/8, 0x06) }

// New256 returns a new SHA3-256 hash.Hash.
func New256() hash.Hash { return newFixed(256/8, 0x06) }

// New384 returns a new SHA3-384 hash.Hash.
func New384() hash.Hash { return newFixed(384/8, 0x06) }

// New512 returns a new SHA3-512 hash.Hash.
func New512() hash.Hash { return newFixed(512/8, 0x06) }

func newFixed(outputSize int, dsbyte byte) *state {
	return &state{
		rate:       200 - 2*outputSize,
		dsbyte:     dsbyte,
		outputSize: outputSize,
	}
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (out [224 / 8]byte) {
	d := newFixed(224/8, 0x06)
	d.Write(data)
	copy(out[:], d.Sum(nil))
	return
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (out [256 / 8]byte) {
	d := newFixed(256/8, 0x06)
	d.Write(data)
	copy(out[:], d.Sum(nil))
	return
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (out [384 / 8]byte) {
	d := newFixed(384/8, 0x06)
	d.Write(data)
	copy(out[:], d.Sum(nil))
	return
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (out [512 / 8]byte) {
	d := newFixed(512/8, 0x06)
	d.Write(data)
	copy(out[:], d.Sum(nil))
	return
}

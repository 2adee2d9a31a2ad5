// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sha3

import (
	"errors"

	"github.com/djboni/emb-crypto/internal/wordutil"
)

// maxRate is the largest rate this package's named constructors use
// (SHAKE128's 168 bytes); NewSponge refuses larger rates so the buffer
// below never needs to grow.
const maxRate = 168

// ErrInvalidPhase is the value Absorb, and therefore Write, panics with
// when a sponge is written to after it has started squeezing, matching
// the convention golang.org/x/crypto/sha3's ShakeHash already uses for the
// same invariant. No function returns it as an error value. Squeezing or
// reading from a sponge that is still absorbing is not an error: Squeeze
// finishes the sponge first with the dsbyte given at construction.
var ErrInvalidPhase = errors.New("sha3: sponge used out of phase")

// state is the single canonical sponge used by every construction in
// this package: a lane-addressed [25]uint64 permutation state with one
// little-endian byte view, never duplicated per algorithm variant.
type state struct {
	a   [25]uint64     // the permutation state, addressed a[x+5*y]
	buf [maxRate]byte  // pending input (absorbing) or ready output (squeezing)
	pos int            // bytes buffered (absorbing) or already emitted from buf (squeezing)
	dir direction

	rate   int
	dsbyte byte

	outputSize int // bytes; zero for unbounded XOFs
}

func (d *state) Rate() int { return d.rate }

func (d *state) SecurityStrength() int { return 4 * (200 - d.rate) }

// BlockSize satisfies hash.Hash; for a sponge this is the rate.
func (d *state) BlockSize() int { return d.rate }

// Size satisfies hash.Hash; zero for unbounded XOFs.
func (d *state) Size() int { return d.outputSize }

func (d *state) Reset() {
	for i := range d.a {
		d.a[i] = 0
	}
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
	d.dir = absorbing
}

func (d *state) permute() { keccakF1600(&d.a) }

// xorBufIntoState XORs the first d.rate bytes of buf into the rate
// region of the state; buf beyond what was explicitly written must be
// zero, which Absorb (by clearing buf after each permutation) and Reset
// guarantee.
func (d *state) xorBufIntoState() {
	for i := 0; i < d.rate/8; i++ {
		d.a[i] ^= wordutil.LoadLE64(d.buf[i*8:])
	}
}

func (d *state) copyStateIntoBuf() {
	for i := 0; i < d.rate/8; i++ {
		wordutil.StoreLE64(d.buf[i*8:], d.a[i])
	}
}

func (d *state) clearBuf() {
	for i := range d.buf[:d.rate] {
		d.buf[i] = 0
	}
}

// Absorb XORs up to Rate() bytes of p into the state per permutation,
// repeating until all of p is absorbed. It panics if the sponge is
// already squeezing.
func (d *state) Absorb(p []byte) int {
	if d.dir != absorbing {
		panic(ErrInvalidPhase)
	}
	total := len(p)
	for len(p) > 0 {
		n := copy(d.buf[d.pos:d.rate], p)
		d.pos += n
		p = p[n:]
		if d.pos == d.rate {
			d.xorBufIntoState()
			d.permute()
			d.clearBuf()
			d.pos = 0
		}
	}
	return total
}

// Write implements hash.Hash / io.Writer on top of Absorb. It panics
// under the same condition as Absorb; this mirrors the documented
// behavior of golang.org/x/crypto/sha3's ShakeHash.Write.
func (d *state) Write(p []byte) (int, error) {
	return d.Absorb(p), nil
}

// Finish XORs dsbyte into the pending input buffer at the current
// offset, XORs 0x80 into the last byte of the rate region (the
// multi-rate padding rule), applies one permutation, and transitions to
// Squeezing. If offset == rate-1 exactly, both bits land in the same
// byte and only one permutation runs. Calling Finish again after
// squeezing has begun is a no-op.
func (d *state) Finish(dsbyte byte) {
	if d.dir == squeezing {
		return
	}
	d.buf[d.pos] ^= dsbyte
	d.buf[d.rate-1] ^= 0x80
	d.xorBufIntoState()
	d.permute()
	d.dir = squeezing
	d.pos = 0
	d.copyStateIntoBuf()
}

// Squeeze appends n bytes of output to in, applying the permutation
// whenever the rate region has been fully emitted. It auto-finishes with
// d.dsbyte if the sponge is still absorbing, matching hash.Sum's usual
// "finalize implicitly" ergonomics.
func (d *state) Squeeze(in []byte, n int) []byte {
	if d.dir == absorbing {
		d.Finish(d.dsbyte)
	}
	out := make([]byte, n)
	written := 0
	for written < n {
		avail := d.rate - d.pos
		if avail == 0 {
			d.permute()
			d.copyStateIntoBuf()
			d.pos = 0
			avail = d.rate
		}
		take := n - written
		if take > avail {
			take = avail
		}
		copy(out[written:written+take], d.buf[d.pos:d.pos+take])
		d.pos += take
		written += take
	}
	return append(in, out...)
}

// Read implements io.Reader / ShakeHash.Read on top of Squeeze.
func (d *state) Read(p []byte) (int, error) {
	out := d.Squeeze(nil, len(p))
	copy(p, out)
	return len(p), nil
}

// Sum applies padding (on a copy, so the receiver can keep absorbing)
// and squeezes out exactly Size() bytes, per hash.Hash's contract.
func (d *state) Sum(in []byte) []byte {
	dup := *d
	return dup.Squeeze(in, dup.outputSize)
}

func (d *state) Clone() Sponge {
	dup := *d
	return &dup
}

// Zero overwrites the permutation state and pending buffer with zeros;
// the rate, dsbyte, and output-size configuration survive so the sponge
// can be reused via Reset.
func (d *state) Zero() {
	for i := range d.a {
		d.a[i] = 0
	}
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
	d.dir = absorbing
}

// NewSponge creates a Keccak-based sponge of the given rate (in bytes)
// and domain-separation byte. rate must be a positive multiple of 8 that
// fits within this package's internal buffer (at most 168, SHAKE128's
// rate); NewSponge returns nil otherwise. The resulting sponge is *not*
// one of the standard SHA3/SHAKE instances unless rate and dsbyte match
// the FIPS-202 parameter table for those instances.
func NewSponge(rate int, dsbyte byte) Sponge {
	if rate <= 0 || rate > maxRate || rate%8 != 0 {
		return nil
	}
	return &state{rate: rate, dsbyte: dsbyte, outputSize: rate}
}

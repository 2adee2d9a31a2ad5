// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package sha3

import (
	"hash"
	"io"
)

// direction tracks which phase of the sponge life cycle a state is in:
// Absorbing while input is being mixed in, Squeezing once output has
// started being read.
type direction int

const (
	absorbing direction = iota
	squeezing
)

// Sponge defines the interface to cryptographic sponges: init / absorb /
// finish / squeeze, plus the rate and security-strength introspection
// associated with every instance.
type Sponge interface {
	hash.Hash
	io.Reader

	// Rate returns the number of bytes that can be absorbed or squeezed
	// before the permutation is applied.
	Rate() int

	// SecurityStrength returns the generic security strength, in bits,
	// of this sponge instance: half the capacity, 4 * (200 - Rate()).
	SecurityStrength() int

	// Absorb XORs up to Rate() bytes from p into the state per call,
	// applying the permutation whenever the rate region fills, until
	// all of p has been absorbed. It panics if the sponge is already
	// squeezing.
	Absorb(p []byte) int

	// Finish XORs the domain-separation byte dsbyte into the state,
	// applies multi-rate padding, and transitions the sponge to
	// Squeezing. Calling Finish again is a no-op once already
	// squeezing.
	Finish(dsbyte byte)

	// Squeeze appends n bytes of output to in and returns the result,
	// applying the permutation whenever the rate region is exhausted.
	// If the sponge is still absorbing, Squeeze finishes it first using
	// the dsbyte supplied at construction, the same implicit-finalize
	// convention hash.Hash's Sum gives callers.
	Squeeze(in []byte, n int) []byte

	// Clone returns an independent copy of the sponge in its current
	// state.
	Clone() Sponge

	// Zero overwrites the permutation state and pending buffer with
	// zeros.
	Zero()
}

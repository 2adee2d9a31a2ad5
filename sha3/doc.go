// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sha3 implements the Keccak-f[1600] permutation, the sponge
// construction built on it, and the SHA3/SHAKE functions FIPS-202 derives
// from that sponge.
//
// Both the fixed-output SHA3-224/256/384/512 hashes and the variable-
// output SHAKE128/256 functions share one sponge implementation; they
// differ only in their domain separation byte and output-length policy.
//
// For a detailed specification, see http://keccak.noekeon.org/
//
// # Guidance
//
// If you aren't sure what function you need, use SHAKE256 with at least
// 64 bytes of output. SHA3-224/256/384/512 are drop-in replacements for
// the SHA-2 functions of the same output length.
//
//	           output  collision-resistance  preimage-resistance
//	SHA3-224     28B              112 bits             224 bits
//	SHA3-256     32B              128 bits             256 bits
//	SHA3-384     48B              192 bits             384 bits
//	SHA3-512     64B              256 bits             512 bits
//	SHAKE128  >= 32B              128 bits             128 bits
//	SHAKE256  >= 64B              256 bits             256 bits
package sha3

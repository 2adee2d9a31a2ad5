// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aes implements the AES (Rijndael) block cipher in ECB and CBC
// modes, for the three standard key sizes (128/192/256 bits).
//
// Every entry point is a pure function of its inputs: there is no package
// level state, and a RoundKeys value may be shared across goroutines once
// it has been built (ExpandKey never mutates the key it is given).
//
// Padding schemes for CBC and any authenticated mode are out of scope;
// CBCEncrypt and CBCDecrypt consume only block-aligned input.
package aes

import (
	"errors"

	"github.com/djboni/emb-crypto/internal/wordutil"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// KeyLen is the compile-time-selected AES key length, in bytes.
type KeyLen int

// The three standard AES key lengths.
const (
	AES128 KeyLen = 16
	AES192 KeyLen = 24
	AES256 KeyLen = 32
)

// nr returns the number of encryption rounds for a key length, or 0 if
// the length is not one of the three standard sizes.
func (k KeyLen) nr() int {
	switch k {
	case AES128:
		return 10
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 0
	}
}

// ErrInvalidLength is returned by the CBC driver when the buffer length is
// zero or not a multiple of BlockSize, and by ExpandKey when the key is
// not one of the three standard lengths.
var ErrInvalidLength = errors.New("aes: invalid length")

// RoundKeys holds the expanded key schedule for one AES key. It has no
// other state, and is safe to share across goroutines once built.
type RoundKeys struct {
	nr    int
	words [60]uint32 // 4*(Nr+1) words; max Nr=14 -> 60 words
}

// Zero overwrites the expanded key schedule with zeros. Callers that want
// to limit the lifetime of secret material in memory may call this once
// the RoundKeys value is no longer needed; it is not required for
// correctness.
func (rk *RoundKeys) Zero() {
	for i := range rk.words {
		rk.words[i] = 0
	}
	rk.nr = 0
}

// ExpandKey runs the Rijndael key schedule over key, producing 4*(Nr+1)
// round-key words. key must be 16, 24, or 32 bytes long.
func ExpandKey(key []byte) (*RoundKeys, error) {
	nk := len(key) / 4
	nr := KeyLen(len(key)).nr()
	if nr == 0 || len(key)%4 != 0 {
		return nil, ErrInvalidLength
	}

	rk := &RoundKeys{nr: nr}
	nw := 4 * (nr + 1)

	for i := 0; i < nk; i++ {
		rk.words[i] = wordutil.LoadBE32(key[4*i:])
	}

	for i := nk; i < nw; i++ {
		temp := rk.words[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp)) ^ (uint32(rcon[i/nk]) << 24)
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		rk.words[i] = rk.words[i-nk] ^ temp
	}

	return rk, nil
}

func rotWord(w uint32) uint32 {
	return wordutil.RotL32(w, 8)
}

func subWord(w uint32) uint32 {
	return uint32(sbox[byte(w>>24)])<<24 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w)])
}

// rcon holds RC[i] = x^(i-1) in GF(2^8), reduced by x^8+x^4+x^3+x+1.
// rcon[0] is unused; the schedule only ever indexes from 1.
var rcon = [15]byte{
	0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40,
	0x80, 0x1b, 0x36, 0x6c, 0xd8, 0xab, 0x4d,
}

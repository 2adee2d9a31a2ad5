// Package sha1x implements the SHA-1 message digest with its
// Merkle-Damgard compression function and explicit big/little-endian
// digest conversion.
//
// Named sha1x to avoid colliding with the standard library's crypto/sha1,
// which this module does not use in production code; crypto/sha1 is
// imported only as the trusted reference in this package's equivalence
// tests.
package sha1x

import "github.com/djboni/emb-crypto/internal/wordutil"

// Size is the length, in bytes, of a SHA-1 digest.
const Size = 20

// BlockSize is the block size, in bytes, of the SHA-1 compression
// function.
const BlockSize = 64

// Context holds the streaming state of a SHA-1 computation: the five
// chaining variables, a 64-byte block buffer with its fill count, and the
// total message length in bits. It is a caller-allocated value type;
// distinct contexts share no state.
type Context struct {
	h      [5]uint32
	buf    [BlockSize]byte
	fill   int
	length uint64 // bits
}

// Init resets ctx to the standard SHA-1 initial chaining state.
func (ctx *Context) Init() {
	ctx.h[0] = 0x67452301
	ctx.h[1] = 0xEFCDAB89
	ctx.h[2] = 0x98BADCFE
	ctx.h[3] = 0x10325476
	ctx.h[4] = 0xC3D2E1F0
	ctx.fill = 0
	ctx.length = 0
}

// Write appends p to the buffered message, compressing any complete
// 64-byte blocks as they accumulate. It always returns len(p), nil.
func (ctx *Context) Write(p []byte) (int, error) {
	ctx.Update(p)
	return len(p), nil
}

// Update appends data to the buffered message.
func (ctx *Context) Update(data []byte) {
	ctx.length += 8 * uint64(len(data))
	ctx.absorb(data)
}

// absorb feeds bytes through the block buffer without touching the bit
// counter, so Finish's padding bytes can be fed back through the same
// compression path without inflating the recorded message length.
func (ctx *Context) absorb(data []byte) {
	for len(data) > 0 {
		n := copy(ctx.buf[ctx.fill:], data)
		ctx.fill += n
		data = data[n:]
		if ctx.fill == BlockSize {
			ctx.compress(ctx.buf[:])
			ctx.fill = 0
		}
	}
}

// Finish applies the 0x80/zero/length padding, compresses the resulting
// final block(s), and leaves the digest ready to be read via Sum160. The
// context must not be reused for further Update calls afterward without
// a fresh Init.
func (ctx *Context) Finish() {
	bitLen := ctx.length

	var pad [BlockSize]byte
	pad[0] = 0x80
	padLen := 56 - ctx.fill
	if padLen <= 0 {
		padLen += BlockSize
	}
	ctx.absorb(pad[:padLen])

	var lenBytes [8]byte
	wordutil.StoreBE64(lenBytes[:], bitLen)
	ctx.absorb(lenBytes[:])
}

// Sum160 returns the big-endian digest without mutating ctx, mirroring
// hash.Hash's Sum-makes-a-copy convention.
func (ctx *Context) Sum160() [Size]byte {
	var out [Size]byte
	for i, v := range ctx.h {
		wordutil.StoreBE32(out[i*4:], v)
	}
	return out
}

// SwapEndian returns the current chaining state serialized as five
// little-endian words instead of SHA-1's native big-endian layout. It
// does not mutate ctx.
func (ctx *Context) SwapEndian() [Size]byte {
	var out [Size]byte
	for i, v := range ctx.h {
		wordutil.StoreLE32(out[i*4:], v)
	}
	return out
}

// Zero clears ctx's chaining state and buffer.
func (ctx *Context) Zero() {
	*ctx = Context{}
}

var k = [4]uint32{0x5A827999, 0x6ED9EBA1, 0x8F1BBCDC, 0xCA62C1D6}

func f(t int, b, c, d uint32) uint32 {
	switch {
	case t < 20:
		return (b & c) | (^b & d)
	case t < 40:
		return b ^ c ^ d
	case t < 60:
		return (b & c) | (b & d) | (c & d)
	default:
		return b ^ c ^ d
	}
}

// compress runs the SHA-1 compression function on a single 64-byte block.
func (ctx *Context) compress(block []byte) {
	var w [80]uint32
	for t := 0; t < 16; t++ {
		w[t] = wordutil.LoadBE32(block[t*4:])
	}
	for t := 16; t < 80; t++ {
		w[t] = wordutil.RotL32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, e := ctx.h[0], ctx.h[1], ctx.h[2], ctx.h[3], ctx.h[4]
	for t := 0; t < 80; t++ {
		temp := wordutil.RotL32(a, 5) + f(t, b, c, d) + e + k[t/20] + w[t]
		e = d
		d = c
		c = wordutil.RotL32(b, 30)
		b = a
		a = temp
	}

	ctx.h[0] += a
	ctx.h[1] += b
	ctx.h[2] += c
	ctx.h[3] += d
	ctx.h[4] += e
}

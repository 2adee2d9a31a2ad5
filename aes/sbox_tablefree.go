//go:build tablefree

package aes

// sbox and invSbox are computed at package init from GF(2^8) inversion
// plus the AES affine maps instead of being written out as literal
// tables. SubBytes, InvSubBytes and the key schedule still read them by
// indexing with state and key bytes, so memory accesses during encryption
// and decryption remain indexed by secret byte values in this build too.
// Selected at build time with `go build -tags tablefree`.
var sbox [256]byte
var invSbox [256]byte

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		sbox[i] = affineTransform(gfInverse(b))
		invSbox[i] = gfInverse(invAffineTransform(b))
	}
}

// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sha3

// These tests are a subset of those provided by the Keccak web site
// (http://keccak.noekeon.org/).

import (
	"bytes"
	"encoding/hex"
	"math/rand"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %s", s, err)
	}
	return b
}

// TestEmptyVectors checks SHA3-256 and SHA3-512 of the empty string
// against the published FIPS-202 conformance vectors.
func TestEmptyVectors(t *testing.T) {
	cases := []struct {
		name string
		new  func() interface{ Sum([]byte) []byte }
		want string
	}{
		{"SHA3-256", func() interface{ Sum([]byte) []byte } { return New256() }, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"},
		{"SHA3-512", func() interface{ Sum([]byte) []byte } { return New512() }, "a69f73cca23a9ac5c8b567dc185a756e97c982164fe25859e0d1dcc1475c80a615b2123af1f5f94c11e3e9402c3ac558f500199d95b6d3e301758586281dcd26"},
	}
	for _, c := range cases {
		got := hex.EncodeToString(c.new().Sum(nil))
		if got != c.want {
			t.Errorf("%s(\"\") = %s, want %s", c.name, got, c.want)
		}
	}
}

// TestShakeEmptyVector checks SHAKE128 of the empty string against the
// published FIPS-202 conformance vector.
func TestShakeEmptyVector(t *testing.T) {
	want := decodeHex(t, "7f9c2ba4e88f827d616045507605853ed73b8093f6efbc88eb1a6eacfa66ef26")
	h := NewShake128()
	out := make([]byte, 32)
	h.Read(out)
	if !bytes.Equal(out, want) {
		t.Errorf("SHAKE128(\"\")[:32] = %x, want %x", out, want)
	}
}

// TestShortKeccakVector is the Keccak test-site "short-8b" vector, the
// single byte 0xCC, across all four fixed output sizes.
func TestShortKeccakVector(t *testing.T) {
	input := decodeHex(t, "CC")
	want := map[string]string{
		"SHA3-224": "df70adc49b2e76eee3a6931b93fa41841c3af2cdf5b32a18b5478c39",
		"SHA3-256": "677035391cd3701293d385f037ba32796252bb7ce180b00b582dd9b20aaad7f0",
		"SHA3-384": "5ee7f374973cd4bb3dc41e3081346798497ff6e36cb9352281dfe07d07fc530ca9ad8ef7aad56ef5d41be83d5e543807",
		"SHA3-512": "3939fcc8b57b63612542da31a834e5dcc36e2ee0f652ac72e02624fa2e5adeecc7dd6bb3580224b4d6138706fc6e80597b528051230b00621cc2b22999eaa205",
	}
	for name, hexWant := range want {
		var got []byte
		switch name {
		case "SHA3-224":
			d := New224()
			d.Write(input)
			got = d.Sum(nil)
		case "SHA3-256":
			d := New256()
			d.Write(input)
			got = d.Sum(nil)
		case "SHA3-384":
			d := New384()
			d.Write(input)
			got = d.Sum(nil)
		case "SHA3-512":
			d := New512()
			d.Write(input)
			got = d.Sum(nil)
		}
		if hex.EncodeToString(got) != hexWant {
			t.Errorf("%s(CC) = %x, want %s", name, got, hexWant)
		}
	}
}

// TestShortShakeVector checks SHAKE128/256 squeeze output on the same
// single-byte "CC" input.
func TestShortShakeVector(t *testing.T) {
	input := decodeHex(t, "CC")

	h128 := NewShake128()
	h128.Write(input)
	got128 := make([]byte, 32)
	h128.Read(got128)
	want128 := decodeHex(t, "4dd4b0004a7d9e613a0f488b4846f804015f0f8ccdba5f7c16810bbc5a1c6fb2")
	if !bytes.Equal(got128, want128) {
		t.Errorf("SHAKE128(CC)[:32] = %x, want %x", got128, want128)
	}

	h256 := NewShake256()
	h256.Write(input)
	got256 := make([]byte, 64)
	h256.Read(got256)
	want256 := decodeHex(t, "ddbf55dbf65977e3e2a3674d33e479f78163d592666bc576feb5e4c404ea5e5329c3a416be758687de1a55e23d9e48a7d3f3ce6d8f0b2006a935800eca9c9fc9")
	if !bytes.Equal(got256, want256) {
		t.Errorf("SHAKE256(CC)[:64] = %x, want %x", got256, want256)
	}
}

func TestStreamingIndifference(t *testing.T) {
	msg := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 37)

	whole := New256()
	whole.Write(msg)
	want := whole.Sum(nil)

	for _, chunkSize := range []int{1, 3, 7, 17, 64, 136, 137, 500} {
		d := New256()
		for off := 0; off < len(msg); off += chunkSize {
			end := off + chunkSize
			if end > len(msg) {
				end = len(msg)
			}
			d.Write(msg[off:end])
		}
		got := d.Sum(nil)
		if !bytes.Equal(got, want) {
			t.Errorf("chunkSize=%d: streaming digest mismatch", chunkSize)
		}
	}
}

func TestShakeSplitting(t *testing.T) {
	msg := []byte("shake splitting test message")

	whole := NewShake256()
	whole.Write(msg)
	want := make([]byte, 200)
	whole.Read(want)

	splits := [][2]int{{0, 200}, {1, 199}, {64, 136}, {135, 65}, {136, 64}, {137, 63}}
	for _, sp := range splits {
		d := NewShake256()
		d.Write(msg)
		got := make([]byte, sp[0]+sp[1])
		d.Read(got[:sp[0]])
		d.Read(got[sp[0]:])
		if !bytes.Equal(got, want) {
			t.Errorf("split %v: SHAKE256 squeeze splitting mismatch", sp)
		}
	}
}

// TestFinishBoundary exercises the "offset == rate-1" padding edge case:
// input lengths exactly rate-1, rate, and rate+1 for each fixed hash,
// each compared against golang.org/x/crypto/sha3.
func TestFinishBoundary(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rates := map[string]int{"SHA3-224": 144, "SHA3-256": 136, "SHA3-384": 104, "SHA3-512": 72}
	for name, rate := range rates {
		for _, length := range []int{rate - 1, rate, rate + 1} {
			msg := make([]byte, length)
			rng.Read(msg)

			var got, want []byte
			switch name {
			case "SHA3-224":
				d := New224()
				d.Write(msg)
				got = d.Sum(nil)
				w := xsha3.Sum224(msg)
				want = w[:]
			case "SHA3-256":
				d := New256()
				d.Write(msg)
				got = d.Sum(nil)
				w := xsha3.Sum256(msg)
				want = w[:]
			case "SHA3-384":
				d := New384()
				d.Write(msg)
				got = d.Sum(nil)
				w := xsha3.Sum384(msg)
				want = w[:]
			case "SHA3-512":
				d := New512()
				d.Write(msg)
				got = d.Sum(nil)
				w := xsha3.Sum512(msg)
				want = w[:]
			}
			if !bytes.Equal(got, want) {
				t.Errorf("%s length=%d: got %x want %x", name, length, got, want)
			}
		}
	}
}

// TestEquivalenceAgainstXCrypto checks SHA3-256 against
// golang.org/x/crypto/sha3 as the trusted reference implementation, for
// random lengths in [0, 1024].
func TestEquivalenceAgainstXCrypto(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 1024; iter++ {
		msg := make([]byte, rng.Intn(1025))
		rng.Read(msg)

		d := New256()
		d.Write(msg)
		got := d.Sum(nil)
		want := xsha3.Sum256(msg)
		if !bytes.Equal(got, want[:]) {
			t.Fatalf("iter %d len=%d: SHA3-256 mismatch", iter, len(msg))
		}
	}
}

func TestNewSpongeRejectsBadRate(t *testing.T) {
	for _, rate := range []int{0, -1, 169, 7, 1000} {
		if s := NewSponge(rate, 0x1f); s != nil {
			t.Errorf("NewSponge(%d, ...) = %v, want nil", rate, s)
		}
	}
}

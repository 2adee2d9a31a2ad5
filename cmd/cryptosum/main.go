// cryptosum is a flag-driven digest and block-cipher utility: read stdin
// or named files, write hex to stdout, log errors through glog.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"golang.org/x/sys/cpu"

	"github.com/djboni/emb-crypto/aes"
	"github.com/djboni/emb-crypto/sha1x"
	"github.com/djboni/emb-crypto/sha3"
)

var (
	algo     string
	keyHex   string
	ivHex    string
	shakeLen int
	cpuinfo  bool
)

func init() {
	flag.StringVar(&algo, "algo", "sha3-256",
		"one of: sha1, sha3-224, sha3-256, sha3-384, sha3-512, shake128, shake256, "+
			"aes-ecb-encrypt, aes-ecb-decrypt, aes-cbc-encrypt, aes-cbc-decrypt")
	flag.StringVar(&keyHex, "key", "", "hex-encoded AES key (16/24/32 bytes)")
	flag.StringVar(&ivHex, "iv", "", "hex-encoded AES CBC IV (16 bytes)")
	flag.IntVar(&shakeLen, "shake-len", 32, "output length in bytes for shake128/shake256")
	flag.BoolVar(&cpuinfo, "cpuinfo", false, "report AVX2 availability and exit; "+
		"this module's Keccak permutation is always the portable scalar form regardless")
}

func digest(algo string, data []byte) ([]byte, error) {
	switch algo {
	case "sha1":
		var ctx sha1x.Context
		ctx.Init()
		ctx.Update(data)
		ctx.Finish()
		sum := ctx.Sum160()
		return sum[:], nil
	case "sha3-224":
		sum := sha3.Sum224(data)
		return sum[:], nil
	case "sha3-256":
		sum := sha3.Sum256(data)
		return sum[:], nil
	case "sha3-384":
		sum := sha3.Sum384(data)
		return sum[:], nil
	case "sha3-512":
		sum := sha3.Sum512(data)
		return sum[:], nil
	case "shake128":
		out := make([]byte, shakeLen)
		sha3.ShakeSum128(out, data)
		return out, nil
	case "shake256":
		out := make([]byte, shakeLen)
		sha3.ShakeSum256(out, data)
		return out, nil
	default:
		return nil, fmt.Errorf("unknown digest algorithm %q", algo)
	}
}

func blockCipher(algo string, data []byte) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("-key: %s", err)
	}
	out := make([]byte, len(data))

	switch algo {
	case "aes-ecb-encrypt", "aes-ecb-decrypt":
		if len(data) == 0 || len(data)%aes.BlockSize != 0 {
			return nil, aes.ErrInvalidLength
		}
		for off := 0; off < len(data); off += aes.BlockSize {
			if algo == "aes-ecb-encrypt" {
				err = aes.ECBEncrypt(key, data[off:off+aes.BlockSize], out[off:off+aes.BlockSize])
			} else {
				err = aes.ECBDecrypt(key, data[off:off+aes.BlockSize], out[off:off+aes.BlockSize])
			}
			if err != nil {
				return nil, err
			}
		}
	case "aes-cbc-encrypt", "aes-cbc-decrypt":
		iv, err := hex.DecodeString(ivHex)
		if err != nil {
			return nil, fmt.Errorf("-iv: %s", err)
		}
		if algo == "aes-cbc-encrypt" {
			err = aes.CBCEncrypt(key, iv, out, data)
		} else {
			err = aes.CBCDecrypt(key, iv, out, data)
		}
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown cipher algorithm %q", algo)
	}
	return out, nil
}

func isBlockCipherAlgo(algo string) bool {
	switch algo {
	case "aes-ecb-encrypt", "aes-ecb-decrypt", "aes-cbc-encrypt", "aes-cbc-decrypt":
		return true
	}
	return false
}

func run(data []byte) (string, error) {
	var out []byte
	var err error
	if isBlockCipherAlgo(algo) {
		out, err = blockCipher(algo, data)
	} else {
		out, err = digest(algo, data)
	}
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(out), nil
}

func main() {
	flag.Parse()
	defer glog.Flush()

	if cpuinfo {
		fmt.Printf("AVX2 = %v\n", cpu.X86.HasAVX2)
		return
	}

	if flag.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			glog.Fatalf("reading stdin: %s", err)
		}
		checksum, err := run(data)
		if err != nil {
			glog.Fatalf("%s", err)
		}
		fmt.Println(checksum)
		return
	}

	for _, filename := range flag.Args() {
		f, err := os.Open(filename)
		if err != nil {
			glog.Errorf("couldn't open %s: %s", filename, err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			glog.Errorf("reading %s: %s", filename, err)
			continue
		}
		checksum, err := run(data)
		if err != nil {
			glog.Errorf("%s: %s", filename, err)
			continue
		}
		fmt.Printf("%s(%s) = %s\n", algo, filename, checksum)
	}
}

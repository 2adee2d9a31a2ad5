package sha1x

import (
	"bytes"
	"testing"

	"github.com/djboni/emb-crypto/internal/katvectors"
)

// shortMsgKAT is a SHA-1 ShortMsg-style known-answer-test file in the
// same Len/Msg/MD format as the NIST CAVP ShortMsgKAT_SHA1.rsp files
// internal/katvectors is built to read.
const shortMsgKAT = `
Len = 0
Msg = 00
MD = da39a3ee5e6b4b0d3255bfef95601890afd80709

Len = 8
Msg = fa
MD = 3acead9c86f231ec128194b50def7a93c1620403

Len = 16
Msg = 237d
MD = ee7766a185a4e41a62b1eee734e933bc95780a16

Len = 24
Msg = 57c859
MD = f6075d67453e81a8531c170a1c54d3337ab86a7f

Len = 32
Msg = a5913d0f
MD = 02f19cb83f1b588a14f346d535f794f2c22492b0

Len = 40
Msg = 92e40c263b
MD = 5303dd61c76a7b0b20424e2aaf9fd77849a97de7

Len = 64
Msg = 626a2711e2bea2c6
MD = c36db30d4f99b0a02452aed223dae6aa0100aa5e

Len = 128
Msg = 6115f529105dcac2d8a3ad292e579512
MD = e0dfc8d80c669225f2e0b28d62f725aa6fdca3bc

Len = 136
Msg = a2f26356aa1e2f1623846386f4d93f559f
MD = 7bfa0dfcd4b698d9c5db08afc384cf4db7afaf8b

Len = 440
Msg = 1483a7ce4f8c57152ab5b19db6a993719ce9718077639d8fe920522100cf88f5488a196866ade56eabdaba9069997f3a53aa127363191b
MD = 82ed57e2b624128c7f3f1fb9f04fdb9f62bf8d80

Len = 448
Msg = 4e5b3b1a82204a7a38851d7378fbe2fc9ae1e7a3e0030761f968f98c5b453dd47432d130fea5ceaffb5dd0f3d785a774398beb892faaad0b
MD = 9654eb46baff18e969ccec2227defcb1fd443f7b

Len = 504
Msg = 59ac90a69bf2cfc60086825111573fcf77c7a9e101871b19cf1403a29c5c25cf3fad7cbe516785824399715a057a5f809602516f88612d70b0e7efd91d25dd
MD = ca67b8a1ad49be943df2dc9eeb327ae19d7921d1

Len = 512
Msg = ad41b45a6a17dd45df0e650ff2891d376ac5816a8c446ff51490aec01a6b68a9fa485b67e1201e73ab265e343367019b5d76937fb0e3be25ef2e4d5b7f27649c
MD = ba135a7890b41715636a0b3bbce96e93825c24d2

Len = 520
Msg = d0e7efdac50c3a8c1dccbc6baa62251f404e32b31e2b4d48c73eab5c5c945ceb240c1b65fbe897ddf5495a190fff609d0bc3e9785c6884b5846f7b29e666923563
MD = f9d9b779c94eb89ea19d7e26e31a3c2fbbba5ca3

Len = 800
Msg = 5e5b17fab221533448401e617ab6b1cb6c84d158ee710d1955fd0bb10f7519dd7511177f9f15d42c4e551e13b9abd468fdbc4671e55bd677265af1d784445056db6e0d58bdf136bba584b430b23a725ed817803610ccbbcff213ffa89caeb4d54b83d43f
MD = 594caa2826375de18879f5101b46fce46b0f177b

Len = 952
Msg = 4af88ef97cc94ef68ec73de50ae6ffabce97e7c08345a5e043091725365fe488aec42582767449b3465b6d3a538a5259cfb3b4feb5be90f3d03d2fed98714b3e1f9b74e0d8496d6a9de920d11e968fc41d20255225fc2dec843b940a27d6a3e0f3bf317293e2cd9d76d5c83e33911bb3cf6a611a59f411
MD = 4138c57eb12f4998bd813845e7145b859f9c8b98

Len = 960
Msg = 37a9d27d9c0a8baf895b347e1cc0164487905aafdb7c4782252799987197fe0e21ccf821bb4a78cb747cf30a722f05e98b2f93b4f9f2fe842e74d1550f5d2881c0667f6d064245ebc6cc5381a892cc6510dec4e5494bec928d23c350f58a897690b6c55208c0801bb76bd6068194821bd448c435176ce876
MD = c25dc871a387016e1fe5c6d783396ed066c46513

Len = 968
Msg = e05ca4d70a6399b9bada349309568170961371cbd88ed33bce7e3ce0da73f9ef70f8c2f2e21a3b8806dceaa608d6088f2666ceece327a419d3d1843fce50c39e38f1add828212166f01bdc8cf98c8f4f22dd3cd00aa5cff5f1b0002fc603d1a701272d7e05eed63f86951286930368af182849a11f4e4abb69
MD = 4b45d77b5e998810db1417fc368fec5e46efaa60

Len = 1600
Msg = 7ce82072d0059604715ffd5fd1f8f06b0b1537d5d15dd03712f70b7f6ceb43afe5f11e5e3b499f6bee9f5851b7ff8747f004c28ba5a6c98cf7a827aeb79579002ad36146d4a65fc7c67aaf02d6534b07d833c105b84621c7d8dfd29c361a67da7da519682eecd33c95e47970ae4d88a217387237f4edea7b5fe6c0acb3f533f03508576f290ee8e0200e4c9a3e8f6fac039d66c721e13f92a6ae41d33693a33e1fb40d7031932c5ee47be83b341a4a9813dcdbb4688951e3274d404b32f121a5d338f71b3b021ad4
MD = 5cb5c201462ccd71f0b7e6e69cbc9d2f948fe109
`

// TestShortMsgKAT loads the SHA-1 ShortMsg vectors through
// internal/katvectors and checks each one against Context.
func TestShortMsgKAT(t *testing.T) {
	vectors, err := katvectors.Parse([]byte(shortMsgKAT))
	if err != nil {
		t.Fatalf("katvectors.Parse: %s", err)
	}
	if len(vectors) != 19 {
		t.Fatalf("got %d vectors, want 19", len(vectors))
	}

	for _, v := range vectors {
		msg := v.Msg
		if v.BitLen == 0 {
			msg = nil
		}
		var ctx Context
		ctx.Init()
		ctx.Update(msg)
		ctx.Finish()
		got := ctx.Sum160()
		if !bytes.Equal(got[:], v.Digest) {
			t.Errorf("Len=%d: SHA1 = %x, want %x", v.BitLen, got, v.Digest)
		}
	}
}

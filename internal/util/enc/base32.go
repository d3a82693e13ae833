package enc

import (
	"fmt"
)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters using the RFC 4648 alphabet. With Padding the
// final group is filled up to 8 characters with '='.
type Base32Encoder struct {
	Padding bool
}

func (b *Base32Encoder) Name() string {
	if b.Padding {
		return "base32_std"
	}
	return "base32_std_nopad"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	if b.Padding {
		return 'T'
	}
	return 't'
}

func (b *Base32Encoder) EncodedLen(n int) int {
	return encodedGroupLen(n, 5, 8, 5, b.Padding)
}

func (b *Base32Encoder) DecodedLen(n int) int {
	return n * 5 / 8
}

func (b *Base32Encoder) Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	if err := checkCapacity(b.Name(), dst, b.EncodedLen(len(src))); err != nil {
		return 0, err
	}
	return encodeGroups(dst, src, base32Std, 5, 8, 5, b.Padding), nil
}

// Decode accepts padded input even when Padding is off; without it the final group may be short.
func (b *Base32Encoder) Decode(dst, src []byte) (int, error) {
	return decodeGroups(b.Name(), dst, src, base32Std, 5, 8, 5, b.Padding)
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}

func (b *Base32Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte("f"), []byte("fo"), []byte("foo"), []byte("foob"), []byte("fooba"), []byte("foobar"),
		[]byte("aA" + cb32),
	}
}

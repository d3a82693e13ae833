package enc

import (
	"fmt"
)

// base58Zero is the character standing in for a leading zero byte.
const base58Zero = '1'

// -------------------------------------------------------

// Base58Encoder encodes the input as one big-endian number, written with the Bitcoin alphabet
// (no 0, O, I or l). Leading zero bytes are kept as leading '1' characters.
//
// The conversion is a byte-by-byte long division, so encoding and decoding are quadratic in the
// input length. It is meant for short values such as keys and identifiers.
type Base58Encoder struct {
}

func (b *Base58Encoder) Name() string {
	return "base58"
}

func (b *Base58Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base58Encoder) Code() byte {
	return 'B'
}

// EncodedLen is an estimate based on log(256)/log(58) ~ 1.366. It holds for every input, but
// Encode still reports the exact size if dst is too short.
func (b *Base58Encoder) EncodedLen(n int) int {
	return n*138/100 + 1
}

// DecodedLen: every character carries less than one byte, leading '1's exactly one.
func (b *Base58Encoder) DecodedLen(n int) int {
	return n
}

func (b *Base58Encoder) Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}

	zeros := 0
	for zeros < len(src) && src[zeros] == 0 {
		zeros++
	}

	// digits holds the number in base 58, most significant digit first
	size := (len(src)-zeros)*138/100 + 1
	digits := make([]byte, size)

	high := size - 1
	for _, v := range src[zeros:] {
		carry := int(v)
		j := size - 1
		for ; j >= 0 && (j > high || carry != 0); j-- {
			carry += 256 * int(digits[j])
			digits[j] = byte(carry % 58)
			carry /= 58
		}
		high = j
	}

	j := 0
	for j < size && digits[j] == 0 {
		j++
	}

	required := zeros + size - j
	if err := checkCapacity(b.Name(), dst, required); err != nil {
		return 0, err
	}

	i := 0
	for ; i < zeros; i++ {
		dst[i] = base58Zero
	}
	for ; j < size; i, j = i+1, j+1 {
		dst[i] = base58Bitcoin.encode[digits[j]]
	}
	return i, nil
}

func (b *Base58Encoder) Decode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}

	zeros := 0
	for zeros < len(src) && src[zeros] == base58Zero {
		zeros++
	}

	// log(58)/log(256) ~ 0.732
	size := (len(src)-zeros)*733/1000 + 1
	num := make([]byte, size)

	for i := zeros; i < len(src); i++ {
		v := base58Bitcoin.decode[src[i]]
		if v == invalid {
			return 0, corrupt(b.Name(), src, i, "")
		}

		carry := int(v)
		for j := size - 1; j >= 0; j-- {
			carry += 58 * int(num[j])
			num[j] = byte(carry)
			carry >>= 8
		}
	}

	j := 0
	for j < size && num[j] == 0 {
		j++
	}

	required := zeros + size - j
	if err := checkCapacity(b.Name(), dst, required); err != nil {
		return 0, err
	}

	i := 0
	for ; i < zeros; i++ {
		dst[i] = 0
	}
	i += copy(dst[i:], num[j:])
	return i, nil
}

func (b *Base58Encoder) Ratio() float64 {
	return 1.37
}

func (b *Base58Encoder) TestPatterns() [][]byte {
	return [][]byte{
		{0x00}, {0x00, 0x00, 0x01}, {0xff},
		[]byte("hello world"),
		[]byte(cb58),
	}
}

package enc

import (
	"fmt"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,./:;<=>?@[]^_`{|}~\""
)

var base91Encoding = base91.NewEncoding(cb91)

// -------------------------------------------------------

// Base91Encoder when encoding, each group of 13 bits is converted into 2 radix-91 digits.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

// EncodedLen: at worst 13 bits per pair of digits.
func (b *Base91Encoder) EncodedLen(n int) int {
	return (n*8 + 12) / 13 * 2
}

// DecodedLen: at best 14 bits per pair of digits.
func (b *Base91Encoder) DecodedLen(n int) int {
	return (n+1)/2*14/8 + 1
}

func (b *Base91Encoder) Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	res := base91Encoding.EncodeToString(src)
	if err := checkCapacity(b.Name(), dst, len(res)); err != nil {
		return 0, err
	}
	return copy(dst, res), nil
}

func (b *Base91Encoder) Decode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	res, err := base91Encoding.DecodeString(string(src))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCharacter, "%s: %v", b.Name(), err)
	}
	if err := checkCapacity(b.Name(), dst, len(res)); err != nil {
		return 0, err
	}
	return copy(dst, res), nil
}

func (b *Base91Encoder) Ratio() float64 {
	return 16.0 / 13.0
}

func (b *Base91Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(cb91),
		{0x00, 0x00, 0x00},
	}
}

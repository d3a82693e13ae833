package enc

import "fmt"

// Base16Case selects the letters used by the Base16 encoder. Decoding is always case-insensitive.
type Base16Case int

const (
	UpperCase Base16Case = iota
	LowerCase
)

// -------------------------------------------------------

// Base16Encoder encodes 1 byte to 2 characters
type Base16Encoder struct {
	Case Base16Case
}

func (b *Base16Encoder) Name() string {
	if b.Case == LowerCase {
		return "base16_lower"
	}
	return "base16_upper"
}

func (b *Base16Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base16Encoder) Code() byte {
	if b.Case == LowerCase {
		return 'h'
	}
	return 'H'
}

func (b *Base16Encoder) alphabet() *alphabet {
	if b.Case == LowerCase {
		return base16Lower
	}
	return base16Upper
}

func (b *Base16Encoder) EncodedLen(n int) int {
	return n * 2
}

func (b *Base16Encoder) DecodedLen(n int) int {
	return n / 2
}

func (b *Base16Encoder) Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	if err := checkCapacity(b.Name(), dst, b.EncodedLen(len(src))); err != nil {
		return 0, err
	}

	table := b.alphabet().encode
	for i, v := range src {
		dst[i*2] = table[v>>4]
		dst[i*2+1] = table[v&0x0F]
	}
	return len(src) * 2, nil
}

func (b *Base16Encoder) Decode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, emptyInput(b.Name())
	}
	if len(src)%2 != 0 {
		return 0, malformed(b.Name(), len(src), "must be even")
	}
	if err := checkCapacity(b.Name(), dst, b.DecodedLen(len(src))); err != nil {
		return 0, err
	}

	table := &b.alphabet().decode
	for i := 0; i < len(src)/2; i++ {
		hi := table[src[i*2]]
		if hi == invalid {
			return i, corrupt(b.Name(), src, i*2, "")
		}
		lo := table[src[i*2+1]]
		if lo == invalid {
			return i, corrupt(b.Name(), src, i*2+1, "")
		}
		dst[i] = hi<<4 | lo
	}
	return len(src) / 2, nil
}

func (b *Base16Encoder) Ratio() float64 {
	return 2.0
}

func (b *Base16Encoder) TestPatterns() [][]byte {
	return [][]byte{
		[]byte(cb16 + cb16Lcase),
		{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff},
	}
}
